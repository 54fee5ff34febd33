package logic

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/campus-tui/internal/todo"
	"github.com/hy4ri/campus-tui/internal/tui/state"
)

func (h *Handler) handleTasksAction(action string) tea.Cmd {
	if h.LoadingTasks {
		return nil
	}

	tasks := h.VisibleTasks()
	switch action {
	case "up":
		if h.TaskCursor > 0 {
			h.TaskCursor--
		}
	case "down":
		if h.TaskCursor < len(tasks)-1 {
			h.TaskCursor++
		}
	case "top":
		h.TaskCursor = 0
	case "bottom":
		h.TaskCursor = max(0, len(tasks)-1)
	case "add":
		return h.openTaskForm()
	case "complete":
		return h.toggleSelected()
	case "delete":
		return h.deleteSelected()
	case "copy":
		return h.copySelected()
	case "filter":
		h.Filter = h.Filter.Next()
		h.ClampTaskCursor()
		h.StatusMsg = "Filter: " + h.Filter.Label()
	case "sort":
		h.SortKey = h.SortKey.Next()
		h.ClampTaskCursor()
		h.StatusMsg = "Sort: " + h.SortKey.Label()
	case "move":
		h.moveSelected()
	case "back":
		if _, dragging := h.Drag.Dragging(); dragging {
			h.Drag.Cancel()
			h.StatusMsg = "Move cancelled"
		}
	}
	return nil
}

func (h *Handler) openTaskForm() tea.Cmd {
	h.Drag.Cancel()
	h.TaskForm = state.NewTaskForm(h.Now())
	if h.Width > 0 {
		h.TaskForm.SetWidth(min(60, max(20, h.Width-8)))
	}
	h.CurrentView = state.ViewTaskForm
	return textinput.Blink
}

func (h *Handler) toggleSelected() tea.Cmd {
	task, ok := h.SelectedTask()
	if !ok {
		return nil
	}
	if !h.Store.ToggleComplete(task.ID) {
		return nil
	}
	h.ClampTaskCursor()
	return h.showToast("Task Updated", "Task completion status has been updated.", false)
}

func (h *Handler) deleteSelected() tea.Cmd {
	task, ok := h.SelectedTask()
	if !ok {
		return nil
	}
	if id, dragging := h.Drag.Dragging(); dragging && id == task.ID {
		h.Drag.Cancel()
	}
	if !h.Store.Delete(task.ID) {
		return nil
	}
	delete(h.NotifiedTasks, task.ID)
	h.ClampTaskCursor()
	return h.showToast("Task Deleted", "Task has been removed successfully.", false)
}

func (h *Handler) copySelected() tea.Cmd {
	task, ok := h.SelectedTask()
	if !ok {
		return nil
	}
	return h.copyCmd(h.clipboardText(task))
}

// clipboardText renders a task as a single line, e.g.
// "Write report [HIGH] due Today #work #urgent".
func (h *Handler) clipboardText(task todo.Task) string {
	var b strings.Builder
	b.WriteString(task.Title)
	fmt.Fprintf(&b, " [%s] due %s", task.Priority, h.Classifier.Label(task.DueDate, h.Now()))
	for _, tag := range task.Tags {
		b.WriteString(" #")
		b.WriteString(tag)
	}
	return b.String()
}

// moveSelected picks up the task under the cursor, or drops the one being
// dragged at the cursor position.
func (h *Handler) moveSelected() {
	if id, dragging := h.Drag.Dragging(); dragging {
		if !h.Drag.Drop(h.Store, h.TaskCursor) {
			h.StatusMsg = "Task not moved"
			return
		}
		h.focusTask(id)
		h.StatusMsg = "Task moved"
		return
	}

	task, ok := h.SelectedTask()
	if !ok {
		return
	}
	h.Drag.Start(task.ID)
	h.StatusMsg = fmt.Sprintf("Moving %q: %s to drop, %s to cancel",
		task.Title, h.Keymap.MoveTask.Key, h.Keymap.Back.Key)
}

// focusTask puts the cursor on id if it is visible.
func (h *Handler) focusTask(id int) {
	for i, t := range h.VisibleTasks() {
		if t.ID == id {
			h.TaskCursor = i
			return
		}
	}
	h.ClampTaskCursor()
}
