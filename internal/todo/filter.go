package todo

import (
	"fmt"
	"strings"
)

// FilterMode selects which tasks the list shows.
type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterActive    FilterMode = "active"
	FilterCompleted FilterMode = "completed"
)

// FilterModes lists the modes in the order the screen cycles through them.
var FilterModes = []FilterMode{FilterAll, FilterActive, FilterCompleted}

// ParseFilterMode parses a filter name. Empty means all.
func ParseFilterMode(s string) (FilterMode, error) {
	switch m := FilterMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return FilterAll, nil
	case FilterAll, FilterActive, FilterCompleted:
		return m, nil
	}
	return "", fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

// Next returns the mode after m, wrapping around.
func (m FilterMode) Next() FilterMode {
	for i, f := range FilterModes {
		if f == m {
			return FilterModes[(i+1)%len(FilterModes)]
		}
	}
	return FilterAll
}

// Label is the human name of the mode.
func (m FilterMode) Label() string {
	switch m {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	}
	return "All Tasks"
}

// Match reports whether t passes the filter.
func (m FilterMode) Match(t Task) bool {
	switch m {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	}
	return true
}

// Filter returns the tasks matching mode, in input order.
// The result never aliases the input slice.
func Filter(tasks []Task, mode FilterMode) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if mode.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
