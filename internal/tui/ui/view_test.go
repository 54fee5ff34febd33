package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hy4ri/campus-tui/internal/api"
	"github.com/hy4ri/campus-tui/internal/config"
	"github.com/hy4ri/campus-tui/internal/todo"
	"github.com/hy4ri/campus-tui/internal/tui/state"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestRenderer(tasks ...todo.Task) *Renderer {
	store := todo.NewStore()
	store.Load(tasks)
	s := state.New(api.NewClient(), store, config.DefaultConfig())
	s.Now = func() time.Time { return testNow }
	s.Calendar.Today()
	s.SortKey = todo.SortManual
	s.Width = 120
	s.Height = 40
	return NewRenderer(s)
}

func lineWith(view, needle string) string {
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	return ""
}

func TestViewBeforeResize(t *testing.T) {
	r := newTestRenderer()
	r.Width = 0
	if got := r.View(); got != "Loading..." {
		t.Errorf("expected placeholder, got %q", got)
	}
}

func TestViewEmptyTasks(t *testing.T) {
	r := newTestRenderer()
	view := r.View()
	if !strings.Contains(view, "No tasks found.") {
		t.Errorf("expected empty message, got:\n%s", view)
	}
	if !strings.Contains(view, "[1] Tasks") {
		t.Error("expected tab bar")
	}
}

func TestViewLoadingTasks(t *testing.T) {
	r := newTestRenderer()
	r.LoadingTasks = true
	if view := r.View(); !strings.Contains(view, "Loading tasks...") {
		t.Errorf("expected loading indicator, got:\n%s", view)
	}
}

func TestViewTaskRows(t *testing.T) {
	r := newTestRenderer(
		todo.Task{ID: 1, Title: "Essay", DueDate: testNow, Priority: todo.PriorityHigh, Tags: []string{"writing"}},
		todo.Task{ID: 2, Title: "Lab report", DueDate: testNow.AddDate(0, 0, -1), Priority: todo.PriorityLow},
		todo.Task{ID: 3, Title: "Reading", DueDate: testNow.AddDate(0, 0, -1), Priority: todo.PriorityLow, Completed: true},
		todo.Task{ID: 4, Title: "Exam", DueDate: testNow.AddDate(0, 0, 1), Priority: todo.PriorityMedium},
	)
	view := r.View()

	tests := []struct {
		title   string
		want    []string
		notWant []string
	}{
		{"Essay", []string{"> [ ]", "HIGH", "Today", "#writing"}, []string{"(Overdue)"}},
		{"Lab report", []string{"[ ]", "LOW", "6/9/2024 (Overdue)"}, nil},
		{"Reading", []string{"[x]", "6/9/2024"}, []string{"(Overdue)"}},
		{"Exam", []string{"Tomorrow"}, []string{"(Overdue)"}},
	}
	for _, tt := range tests {
		line := lineWith(view, tt.title)
		if line == "" {
			t.Errorf("%s: row not rendered", tt.title)
			continue
		}
		for _, w := range tt.want {
			if !strings.Contains(line, w) {
				t.Errorf("%s: expected %q in %q", tt.title, w, line)
			}
		}
		for _, w := range tt.notWant {
			if strings.Contains(line, w) {
				t.Errorf("%s: unexpected %q in %q", tt.title, w, line)
			}
		}
	}

	if !strings.Contains(view, "4 of 4") {
		t.Error("expected task count in header")
	}
}

func TestViewDragMarker(t *testing.T) {
	r := newTestRenderer(
		todo.Task{ID: 1, Title: "Essay", DueDate: testNow, Priority: todo.PriorityHigh},
		todo.Task{ID: 2, Title: "Lab report", DueDate: testNow, Priority: todo.PriorityLow},
	)
	r.Drag.Start(2)
	view := r.View()

	if line := lineWith(view, "Lab report"); !strings.Contains(line, "↕") {
		t.Errorf("expected drag marker, got %q", line)
	}
	if !strings.Contains(view, "drop") {
		t.Error("expected drop hint in status bar")
	}
}

func TestViewToast(t *testing.T) {
	r := newTestRenderer()
	r.StatusMsg = "Filter: Active"
	r.Toast = &state.Toast{ID: 1, Title: "Task Added", Message: "New task has been added successfully."}

	view := r.View()
	if !strings.Contains(view, "Task Added: New task has been added successfully.") {
		t.Errorf("expected toast in status bar, got:\n%s", view)
	}
	if strings.Contains(view, "Filter: Active") {
		t.Error("toast should take precedence over the status message")
	}
}

func TestViewTaskForm(t *testing.T) {
	r := newTestRenderer()
	r.TaskForm = state.NewTaskForm(testNow)
	r.TaskForm.Err = "Task title is required."
	r.CurrentView = state.ViewTaskForm

	view := r.View()
	for _, want := range []string{"Add Task", "Title", "Due Date", "[MEDIUM]", "Task title is required."} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in form:\n%s", want, view)
		}
	}
}

func TestViewHelp(t *testing.T) {
	r := newTestRenderer()
	r.CurrentView = state.ViewHelp
	if view := r.View(); !strings.Contains(view, "Keyboard Shortcuts") {
		t.Errorf("expected help, got:\n%s", view)
	}
}

func TestViewCatalogTabs(t *testing.T) {
	r := newTestRenderer()
	client := api.NewClient(api.WithSource(api.NewFixtureSource(api.WithLatency(0))))
	ctx := context.Background()

	courses, err := client.GetCourses(ctx)
	if err != nil {
		t.Fatal(err)
	}
	projects, err := client.GetProjects(ctx)
	if err != nil {
		t.Fatal(err)
	}
	events, err := client.GetEvents(ctx)
	if err != nil {
		t.Fatal(err)
	}
	r.Courses = courses
	r.Projects = projects
	r.Events = events
	r.Calendar.SetEvents(events)

	r.CurrentTab = state.TabCourses
	if view := r.View(); !strings.Contains(view, courses[0].Title) || !strings.Contains(view, courses[0].Instructor) {
		t.Errorf("expected first course with details, got:\n%s", view)
	}

	r.CurrentTab = state.TabProjects
	if view := r.View(); !strings.Contains(view, projects[0].Title) {
		t.Errorf("expected first project, got:\n%s", view)
	}

	r.CurrentTab = state.TabCalendar
	if view := r.View(); !strings.Contains(view, "June 2024") {
		t.Errorf("expected June 2024 grid, got:\n%s", view)
	}
}

func TestViewApplyForm(t *testing.T) {
	r := newTestRenderer()
	r.ApplyForm = state.NewApplicationForm(api.Project{ID: 3, Title: "Campus map", Tags: []string{"react", "maps"}})
	r.ApplyForm.Selected["maps"] = true
	r.ApplyForm.Experience = api.ExperienceBeginner
	r.ApplyForm.Err = "Invalid email address"
	r.CurrentView = state.ViewApplyForm

	view := r.View()
	for _, want := range []string{"Apply to Project", "Campus map", "Full Name", "[Beginner]", "Beginner (0-1 years)",
		"[ ] react", "[x] maps", "< 10 >", "Submit Application", "Invalid email address"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in form:\n%s", want, view)
		}
	}

	r.Submitting = true
	if view := r.View(); !strings.Contains(view, "Submitting...") {
		t.Errorf("expected progress while submitting, got:\n%s", view)
	}
}

func TestViewProjectDaysRemaining(t *testing.T) {
	r := newTestRenderer()
	r.Projects = []api.Project{{ID: 1, Title: "Study planner", Difficulty: "beginner", Deadline: testNow.AddDate(0, 0, 8)}}
	r.CurrentTab = state.TabProjects

	if view := r.View(); !strings.Contains(view, "8 days left") {
		t.Errorf("expected days remaining in detail, got:\n%s", view)
	}
}

func TestDaysLeft(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{8, "8 days left"},
		{1, "1 day left"},
		{0, "0 days left"},
		{-1, "1 day overdue"},
		{-4, "4 days overdue"},
	}
	for _, tt := range tests {
		if got := daysLeft(tt.days); !strings.Contains(got, tt.want) {
			t.Errorf("daysLeft(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 8, "this is…"},
		{"日本語テキスト", 7, "日本語…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
