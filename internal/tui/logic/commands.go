package logic

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/campus-tui/internal/api"
	"github.com/hy4ri/campus-tui/internal/tui/state"
)

// ToastDuration is how long a toast stays in the status bar.
const ToastDuration = 3 * time.Second

type toastExpiredMsg struct {
	id int
}

type clipboardMsg struct {
	err error
}

// showToast replaces the current toast and schedules its expiry. With
// desktop notifications on, the toast is mirrored to the desktop.
func (h *Handler) showToast(title, message string, isErr bool) tea.Cmd {
	h.NextToast++
	id := h.NextToast
	h.Toast = &state.Toast{ID: id, Title: title, Message: message, Error: isErr}

	cmds := []tea.Cmd{
		tea.Tick(ToastDuration, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		}),
	}
	if h.Config.Notifications.Desktop {
		cmds = append(cmds, h.notifyCmd(title, message))
	}
	return tea.Batch(cmds...)
}

func (h *Handler) showError(message string) tea.Cmd {
	return h.showToast("Error", message, true)
}

func (h *Handler) copyCmd(text string) tea.Cmd {
	copyFn := h.CopyToClipboard
	return func() tea.Msg {
		return clipboardMsg{err: copyFn(text)}
	}
}

// loadFailure is the user-facing message for a failed fetch of what.
func loadFailure(what string, err error) string {
	if apiErr, ok := api.IsAPIError(err); ok && apiErr.IsUnauthorized() {
		return "Authentication failed. Check your access token."
	}
	return "Failed to load " + what + ". Please try again later."
}

func (h *Handler) handleTasksLoaded(msg tasksLoadedMsg) tea.Cmd {
	h.LoadingTasks = false
	if msg.err != nil {
		h.Logger.Printf("Error loading tasks: %v", msg.err)
		h.Err = msg.err
		h.Store.Reset()
		h.Drag.Cancel()
		h.TaskCursor = 0
		return h.showError(loadFailure("tasks", msg.err))
	}

	h.Err = nil
	h.Store.Load(msg.tasks)
	h.ClampTaskCursor()
	h.Logger.Printf("Loaded %d tasks", len(msg.tasks))
	return tea.Batch(h.dueReminders(h.Now())...)
}

func (h *Handler) handleCatalogLoaded(msg catalogLoadedMsg) tea.Cmd {
	h.LoadingCatalog = false

	var failed []string
	if msg.coursesErr != nil {
		h.Logger.Printf("Error loading courses: %v", msg.coursesErr)
		failed = append(failed, "courses")
	} else {
		h.Courses = msg.courses
		h.CourseCursor = clampCursor(h.CourseCursor, len(h.FilteredCourses()))
	}
	if msg.projectsErr != nil {
		h.Logger.Printf("Error loading projects: %v", msg.projectsErr)
		failed = append(failed, "projects")
	} else {
		h.Projects = msg.projects
		h.ProjectCursor = clampCursor(h.ProjectCursor, len(h.FilteredProjects()))
	}
	if msg.eventsErr != nil {
		h.Logger.Printf("Error loading events: %v", msg.eventsErr)
		failed = append(failed, "events")
	} else {
		h.Events = msg.events
		h.Calendar.SetEvents(msg.events)
	}

	if len(failed) == 0 {
		return nil
	}
	first := msg.coursesErr
	if first == nil {
		first = msg.projectsErr
	}
	if first == nil {
		first = msg.eventsErr
	}
	return h.showError(loadFailure(strings.Join(failed, ", "), first))
}

func clampCursor(cursor, n int) int {
	return max(0, min(cursor, n-1))
}
