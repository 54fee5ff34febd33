package todo

import (
	"slices"
	"testing"
)

func TestFilter(t *testing.T) {
	tasks := sampleTasks(t)

	tests := []struct {
		mode FilterMode
		want []int
	}{
		{FilterAll, []int{1, 2, 3}},
		{FilterActive, []int{1, 2}},
		{FilterCompleted, []int{3}},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			if got := ids(Filter(tasks, tt.mode)); !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFilterPartition(t *testing.T) {
	tasks := sampleTasks(t)
	tasks = append(tasks, Task{ID: 4, Title: "D", Completed: true}, Task{ID: 5, Title: "E"})

	active := Filter(tasks, FilterActive)
	completed := Filter(tasks, FilterCompleted)
	all := Filter(tasks, FilterAll)

	union := make(map[int]int)
	for _, task := range active {
		union[task.ID]++
	}
	for _, task := range completed {
		union[task.ID]++
	}

	if len(union) != len(all) {
		t.Fatalf("expected union of %d ids, got %d", len(all), len(union))
	}
	for _, task := range all {
		if union[task.ID] != 1 {
			t.Errorf("task %d appears %d times across active/completed", task.ID, union[task.ID])
		}
	}
}

func TestSortPriorityStable(t *testing.T) {
	tasks := []Task{
		{ID: 1, Priority: PriorityMedium},
		{ID: 2, Priority: PriorityLow},
		{ID: 3, Priority: PriorityHigh},
		{ID: 4, Priority: PriorityMedium},
		{ID: 5, Priority: PriorityHigh},
		{ID: 6, Priority: PriorityMedium},
	}

	got := ids(Sort(tasks, SortPriority))
	want := []int{3, 5, 1, 4, 6, 2}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortDueDate(t *testing.T) {
	tasks := sampleTasks(t)
	tasks = append(tasks, Task{ID: 4, DueDate: tasks[1].DueDate, Priority: PriorityLow})

	got := ids(Sort(tasks, SortDueDate))
	want := []int{2, 4, 3, 1}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	tasks := sampleTasks(t)
	before := ids(tasks)

	Sort(tasks, SortPriority)
	Sort(tasks, SortDueDate)

	if got := ids(tasks); !slices.Equal(got, before) {
		t.Errorf("input reordered: expected %v, got %v", before, got)
	}
	if got := ids(Sort(tasks, SortManual)); !slices.Equal(got, before) {
		t.Errorf("manual sort should keep input order, got %v", got)
	}
}

func TestView(t *testing.T) {
	tasks := sampleTasks(t)

	if got := ids(View(tasks, FilterActive, SortPriority)); !slices.Equal(got, []int{2, 1}) {
		t.Errorf("active by priority: expected [2 1], got %v", got)
	}
	if got := ids(View(tasks, FilterAll, SortDueDate)); !slices.Equal(got, []int{2, 3, 1}) {
		t.Errorf("all by due date: expected [2 3 1], got %v", got)
	}
}

func TestParseModes(t *testing.T) {
	if m, err := ParseFilterMode("Active"); err != nil || m != FilterActive {
		t.Errorf("ParseFilterMode(Active) = %q, %v", m, err)
	}
	if _, err := ParseFilterMode("done"); err == nil {
		t.Error("expected error for unknown filter")
	}
	if k, err := ParseSortKey("dueDate"); err != nil || k != SortDueDate {
		t.Errorf("ParseSortKey(dueDate) = %q, %v", k, err)
	}
	if k, _ := ParseSortKey(""); k != SortPriority {
		t.Errorf("empty sort should default to priority, got %q", k)
	}
	if FilterCompleted.Next() != FilterAll {
		t.Error("filter cycle should wrap to all")
	}
	if SortManual.Next() != SortPriority {
		t.Error("sort cycle should wrap to priority")
	}
}

func TestDragDrop(t *testing.T) {
	s := NewStore()
	s.Load(sampleTasks(t))

	var d Drag
	if d.Drop(s, 0) {
		t.Error("drop without a drag should be a no-op")
	}

	d.Start(3)
	if id, ok := d.Dragging(); !ok || id != 3 {
		t.Fatalf("expected dragging 3, got %d %v", id, ok)
	}
	if !d.Drop(s, 0) {
		t.Fatal("expected drop to move task")
	}
	if got := ids(s.Tasks()); !slices.Equal(got, []int{3, 1, 2}) {
		t.Errorf("expected [3 1 2], got %v", got)
	}
	if _, ok := d.Dragging(); ok {
		t.Error("drag should end after drop")
	}

	d.Start(1)
	if d.Drop(s, 1) {
		t.Error("dropping onto own index should be a no-op")
	}

	d.Start(2)
	d.Cancel()
	if d.Drop(s, 0) {
		t.Error("cancelled drag should not drop")
	}
}

// The drop index is a view position, but it is applied to store order.
func TestDragDropUnderSortedView(t *testing.T) {
	s := NewStore()
	s.Load(sampleTasks(t))

	view := View(s.Tasks(), FilterAll, SortPriority) // [2 3 1]
	var d Drag
	d.Start(view[0].ID)
	if !d.Drop(s, 2) {
		t.Fatal("expected drop to move task 2")
	}

	if got := ids(s.Tasks()); !slices.Equal(got, []int{1, 3, 2}) {
		t.Errorf("expected store order [1 3 2], got %v", got)
	}
	if got := ids(View(s.Tasks(), FilterAll, SortPriority)); !slices.Equal(got, []int{2, 3, 1}) {
		t.Errorf("sorted view should override manual position, got %v", got)
	}
}
