package todo

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortKey selects the ordering of the task list.
type SortKey string

const (
	SortPriority SortKey = "priority"
	SortDueDate  SortKey = "dueDate"
	// SortManual keeps store order, so reorders show up as dropped.
	SortManual SortKey = "manual"
)

// SortKeys lists the keys in the order the screen cycles through them.
var SortKeys = []SortKey{SortPriority, SortDueDate, SortManual}

// ParseSortKey parses a sort key name case-insensitively. Empty means priority.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "priority":
		return SortPriority, nil
	case "duedate", "due_date", "due":
		return SortDueDate, nil
	case "manual", "none":
		return SortManual, nil
	}
	return "", fmt.Errorf("unknown sort %q (want priority, dueDate or manual)", s)
}

// Next returns the key after k, wrapping around.
func (k SortKey) Next() SortKey {
	for i, s := range SortKeys {
		if s == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortPriority
}

// Label is the human name of the key.
func (k SortKey) Label() string {
	switch k {
	case SortDueDate:
		return "Due Date"
	case SortManual:
		return "Manual"
	}
	return "Priority"
}

// Sort returns a stably sorted copy of tasks. The input is not modified.
func Sort(tasks []Task, key SortKey) []Task {
	out := slices.Clone(tasks)
	switch key {
	case SortPriority:
		slices.SortStableFunc(out, func(a, b Task) int {
			return cmp.Compare(b.Priority.Rank(), a.Priority.Rank())
		})
	case SortDueDate:
		slices.SortStableFunc(out, func(a, b Task) int {
			return a.DueDate.Compare(b.DueDate)
		})
	}
	return out
}

// View is the filtered-then-sorted projection the task list renders.
func View(tasks []Task, mode FilterMode, key SortKey) []Task {
	return Sort(Filter(tasks, mode), key)
}
