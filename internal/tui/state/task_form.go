package state

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/campus-tui/internal/todo"
)

// FormField constants for focus management
const (
	FormFieldTitle = iota
	FormFieldDescription
	FormFieldDue
	FormFieldPriority
	FormFieldTags
	FormFieldSubmit
)

const formFieldCount = 6

// TaskForm represents the state of the add-task form.
type TaskForm struct {
	Title       textinput.Model
	Description textinput.Model
	DueDate     textinput.Model
	Priority    todo.Priority
	Tags        textinput.Model

	FocusIndex int

	// Err is the last validation message, shown under the form.
	Err string
}

// NewTaskForm creates an empty form whose due date defaults to today (UTC).
func NewTaskForm(now time.Time) *TaskForm {
	title := textinput.New()
	title.Placeholder = "Task title"
	title.Focus()
	title.CharLimit = 200
	title.Width = 50

	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 1000
	desc.Width = 50

	due := textinput.New()
	due.Placeholder = todo.DateLayout
	due.CharLimit = len(todo.DateLayout)
	due.Width = 12
	due.SetValue(now.UTC().Format(todo.DateLayout))

	tags := textinput.New()
	tags.Placeholder = "work, urgent"
	tags.CharLimit = 200
	tags.Width = 50

	return &TaskForm{
		Title:       title,
		Description: desc,
		DueDate:     due,
		Priority:    todo.PriorityMedium,
		Tags:        tags,
		FocusIndex:  FormFieldTitle,
	}
}

// Update updates the form models. It reports submit=true when the user
// confirms the form; validation is left to the caller.
func (f *TaskForm) Update(msg tea.Msg) (cmd tea.Cmd, submit bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+s":
			return nil, true
		case "tab", "down":
			f.NextField()
			return nil, false
		case "shift+tab", "up":
			f.PrevField()
			return nil, false
		case "enter":
			if f.FocusIndex == FormFieldSubmit {
				return nil, true
			}
			f.NextField()
			return nil, false
		}

		if f.FocusIndex == FormFieldPriority {
			switch msg.String() {
			case "1":
				f.Priority = todo.PriorityHigh
			case "2":
				f.Priority = todo.PriorityMedium
			case "3":
				f.Priority = todo.PriorityLow
			case "h", "left":
				f.Priority = f.Priority.Prev()
			case "l", "right", " ":
				f.Priority = f.Priority.Next()
			}
			return nil, false
		}
	}

	// Only update text inputs if focused
	switch f.FocusIndex {
	case FormFieldTitle:
		f.Title, cmd = f.Title.Update(msg)
	case FormFieldDescription:
		f.Description, cmd = f.Description.Update(msg)
	case FormFieldDue:
		f.DueDate, cmd = f.DueDate.Update(msg)
	case FormFieldTags:
		f.Tags, cmd = f.Tags.Update(msg)
	}
	return cmd, false
}

// NextField moves focus to the next field.
func (f *TaskForm) NextField() {
	f.Focus((f.FocusIndex + 1) % formFieldCount)
}

// PrevField moves focus to the previous field.
func (f *TaskForm) PrevField() {
	f.Focus((f.FocusIndex - 1 + formFieldCount) % formFieldCount)
}

// Focus moves focus to the field at index.
func (f *TaskForm) Focus(index int) {
	f.FocusIndex = index
	f.Title.Blur()
	f.Description.Blur()
	f.DueDate.Blur()
	f.Tags.Blur()

	switch index {
	case FormFieldTitle:
		f.Title.Focus()
	case FormFieldDescription:
		f.Description.Focus()
	case FormFieldDue:
		f.DueDate.Focus()
	case FormFieldTags:
		f.Tags.Focus()
	}
}

// IsValid checks if the form has a title.
func (f *TaskForm) IsValid() bool {
	return strings.TrimSpace(f.Title.Value()) != ""
}

// Input converts the form to a store create request.
func (f *TaskForm) Input() todo.CreateInput {
	return todo.CreateInput{
		Title:       f.Title.Value(),
		Description: strings.TrimSpace(f.Description.Value()),
		DueDate:     strings.TrimSpace(f.DueDate.Value()),
		Priority:    string(f.Priority),
		Tags:        f.Tags.Value(),
	}
}

// SetWidth sets width of inputs
func (f *TaskForm) SetWidth(width int) {
	f.Title.Width = width
	f.Description.Width = width
	f.Tags.Width = width
}
