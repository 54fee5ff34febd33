package ui

import (
	"strings"

	"github.com/hy4ri/campus-tui/internal/todo"
	"github.com/hy4ri/campus-tui/internal/tui/state"
	"github.com/hy4ri/campus-tui/internal/tui/styles"
)

// renderTaskForm renders the add task form.
func (r *Renderer) renderTaskForm() string {
	if r.TaskForm == nil {
		return styles.Dialog.Width(r.Width - 4).Render("Form not initialized")
	}

	var b strings.Builder
	f := r.TaskForm

	b.WriteString(styles.Title.Render("Add Task") + "\n\n")

	field := func(label string, index int, view string) {
		style := styles.Input
		if f.FocusIndex == index {
			style = styles.InputFocused
		}
		b.WriteString(styles.InputLabel.Render(label) + "\n")
		b.WriteString(style.Render(view) + "\n\n")
	}

	field("Title", state.FormFieldTitle, f.Title.View())
	field("Description", state.FormFieldDescription, f.Description.View())
	field("Due Date ("+todo.DateLayout+")", state.FormFieldDue, f.DueDate.View())

	// Priority selector
	var opts []string
	for _, p := range todo.Priorities {
		label := " " + string(p) + " "
		if p == f.Priority {
			label = styles.GetPriorityStyle(p).Bold(true).Underline(true).Render("[" + string(p) + "]")
		}
		opts = append(opts, label)
	}
	field("Priority (1-3, h/l)", state.FormFieldPriority, strings.Join(opts, " "))

	field("Tags (comma separated)", state.FormFieldTags, f.Tags.View())

	button := styles.Button
	if f.FocusIndex == state.FormFieldSubmit {
		button = styles.ButtonFocused
	}
	b.WriteString(button.Render("Add Task") + "\n\n")

	if f.Err != "" {
		b.WriteString(styles.StatusBarError.Render(f.Err) + "\n\n")
	}

	b.WriteString(styles.HelpDesc.Render("Ctrl+S: save | Esc: cancel | Tab: next field"))

	return styles.Dialog.Width(min(r.Width-4, 72)).Render(b.String())
}
