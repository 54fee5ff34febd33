// Package todo implements the personal task list: an ordered in-memory store
// plus the filter, sort, reorder and due-date stages the task screen renders.
package todo

import (
	"fmt"
	"strings"
	"time"
)

// Priority is the urgency of a task. The wire form is the uppercase name.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Priorities lists every priority from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Rank returns the sort weight of p (HIGH=3, MEDIUM=2, LOW=1, unknown=0).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// Next returns the priority after p in Priorities, wrapping around.
func (p Priority) Next() Priority {
	for i, q := range Priorities {
		if q == p {
			return Priorities[(i+1)%len(Priorities)]
		}
	}
	return PriorityMedium
}

// Prev returns the priority before p in Priorities, wrapping around.
func (p Priority) Prev() Priority {
	for i, q := range Priorities {
		if q == p {
			return Priorities[(i-1+len(Priorities))%len(Priorities)]
		}
	}
	return PriorityMedium
}

// ParsePriority parses a priority name case-insensitively.
// An empty string yields PriorityMedium.
func ParsePriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PriorityMedium, nil
	}
	p := Priority(strings.ToUpper(s))
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

// UnmarshalText implements encoding.TextUnmarshaler so malformed priorities
// are rejected during JSON decoding.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed := Priority(string(text))
	if !parsed.Valid() {
		return fmt.Errorf("unknown priority %q", string(text))
	}
	*p = parsed
	return nil
}

// Task is a single to-do item.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Priority    Priority  `json:"priority"`
	Completed   bool      `json:"completed"`
	Tags        []string  `json:"tags"`
	CourseID    *int      `json:"courseId"`
}

// Clone returns a deep copy of t.
func (t Task) Clone() Task {
	c := t
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	if t.CourseID != nil {
		id := *t.CourseID
		c.CourseID = &id
	}
	return c
}

// Validate checks the invariants every stored task must hold.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Field: "title", Reason: "Task title is required."}
	}
	if t.DueDate.IsZero() {
		return &ValidationError{Field: "dueDate", Reason: "due date is missing"}
	}
	if !t.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown priority %q", t.Priority)}
	}
	for _, tag := range t.Tags {
		if strings.TrimSpace(tag) == "" {
			return &ValidationError{Field: "tags", Reason: "tags cannot be blank"}
		}
	}
	return nil
}

// ParseTags splits comma-separated input into trimmed, non-empty tags.
// Repeated tags keep only their first occurrence.
func ParseTags(input string) []string {
	tags := make([]string, 0)
	seen := make(map[string]bool)
	for _, part := range strings.Split(input, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
