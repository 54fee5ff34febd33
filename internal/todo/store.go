package todo

import (
	"slices"
	"strings"
	"time"
)

// DateLayout is the calendar-date form accepted by Create.
const DateLayout = "2006-01-02"

// endOfDay is the time of day a picked due date is pinned to.
const (
	endOfDayHour   = 23
	endOfDayMinute = 59
)

// CreateInput is the raw content of the add-task form.
type CreateInput struct {
	Title       string
	Description string
	// DueDate is a calendar date in DateLayout. Empty means today (UTC).
	DueDate string
	// Priority is a priority name. Empty means MEDIUM.
	Priority string
	// Tags is comma-separated.
	Tags string
}

// Store owns the ordered task collection of one session.
// A Store is not safe for concurrent use; the TUI mutates it from its
// update loop only.
type Store struct {
	tasks []Task
	now   func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// SetClock overrides the clock used for default due dates.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Load replaces the store contents wholesale.
func (s *Store) Load(tasks []Task) {
	s.tasks = make([]Task, 0, len(tasks))
	for _, t := range tasks {
		s.tasks = append(s.tasks, t.Clone())
	}
}

// Reset empties the store.
func (s *Store) Reset() {
	s.tasks = nil
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the tasks in store order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// IndexOf returns the store position of id, or -1.
func (s *Store) IndexOf(id int) int {
	return s.indexOf(id)
}

// Create validates input and appends a new task.
// On a *ValidationError the store is left unchanged.
func (s *Store) Create(in CreateInput) (Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Task{}, &ValidationError{Field: "title", Reason: "Task title is required."}
	}

	due, err := s.parseDueDate(in.DueDate)
	if err != nil {
		return Task{}, err
	}

	priority, err := ParsePriority(in.Priority)
	if err != nil {
		return Task{}, &ValidationError{Field: "priority", Reason: err.Error()}
	}

	task := Task{
		ID:          s.nextID(),
		Title:       title,
		Description: in.Description,
		DueDate:     due,
		Priority:    priority,
		Completed:   false,
		Tags:        ParseTags(in.Tags),
		CourseID:    nil,
	}
	s.tasks = append(s.tasks, task)
	return task.Clone(), nil
}

// ToggleComplete flips the completion flag of id.
// It reports whether the task was found; a missing id is not an error.
func (s *Store) ToggleComplete(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return true
}

// Delete removes id. It reports whether the task was found.
func (s *Store) Delete(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return true
}

// Reorder moves id to targetIndex in the full store order. The index
// applies to the order with the task removed: a target past the end
// appends and a negative target counts back from the end.
// It reports whether the task changed position.
func (s *Store) Reorder(id, targetIndex int) bool {
	from := s.indexOf(id)
	if from < 0 {
		return false
	}
	rest := len(s.tasks) - 1
	if targetIndex < 0 {
		targetIndex = max(0, rest+targetIndex)
	}
	targetIndex = min(targetIndex, rest)
	if targetIndex == from {
		return false
	}

	task := s.tasks[from]
	s.tasks = slices.Delete(s.tasks, from, from+1)
	s.tasks = slices.Insert(s.tasks, targetIndex, task)
	return true
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

func (s *Store) nextID() int {
	highest := 0
	for _, t := range s.tasks {
		highest = max(highest, t.ID)
	}
	return highest + 1
}

func (s *Store) parseDueDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = s.now().UTC().Format(DateLayout)
	}
	day, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "dueDate", Reason: "use YYYY-MM-DD"}
	}
	return EndOfDay(day), nil
}

// EndOfDay pins the calendar date of t to 23:59:00 UTC.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, endOfDayHour, endOfDayMinute, 0, 0, time.UTC)
}
