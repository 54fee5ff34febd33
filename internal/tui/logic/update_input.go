package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/campus-tui/internal/todo"
	"github.com/hy4ri/campus-tui/internal/tui/state"
)

func (h *Handler) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	if h.TaskForm == nil {
		h.CurrentView = state.ViewMain
		return nil
	}
	if msg.String() == "esc" {
		h.closeTaskForm()
		return nil
	}

	cmd, submit := h.TaskForm.Update(msg)
	if !submit {
		return cmd
	}
	return h.submitTaskForm()
}

// submitTaskForm creates the task. A rejected input keeps the form open
// with the reason shown under it.
func (h *Handler) submitTaskForm() tea.Cmd {
	task, err := h.Store.Create(h.TaskForm.Input())
	if err != nil {
		reason := err.Error()
		if vErr, ok := todo.IsValidationError(err); ok {
			reason = vErr.Reason
		}
		h.TaskForm.Err = reason
		return h.showError(reason)
	}

	h.Logger.Printf("Created task %d %q", task.ID, task.Title)
	h.closeTaskForm()
	h.focusTask(task.ID)
	return tea.Batch(
		h.showToast("Task Added", "New task has been added successfully.", false),
		tea.Batch(h.dueReminders(h.Now())...),
	)
}

func (h *Handler) closeTaskForm() {
	h.TaskForm = nil
	h.CurrentView = state.ViewMain
}
