package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/campus-tui/internal/todo"
)

// DueCheckInterval is how often due reminders are evaluated.
const DueCheckInterval = time.Minute

type checkDueMsg time.Time

func checkDueCmd() tea.Cmd {
	return tea.Tick(DueCheckInterval, func(t time.Time) tea.Msg {
		return checkDueMsg(t)
	})
}

func (h *Handler) handleCheckDue(t time.Time) tea.Cmd {
	cmds := h.dueReminders(t)
	// Always schedule the next check
	cmds = append(cmds, checkDueCmd())
	return tea.Batch(cmds...)
}

// dueReminders returns one desktop notification per incomplete task due on
// the day of now. Each task is reminded about at most once per session.
func (h *Handler) dueReminders(now time.Time) []tea.Cmd {
	n := h.Config.Notifications
	if !n.Desktop || !n.DueReminders {
		return nil
	}

	var cmds []tea.Cmd
	for _, task := range h.Store.Tasks() {
		if task.Completed || h.NotifiedTasks[task.ID] {
			continue
		}
		if !todo.IsDueToday(task.DueDate, now) {
			continue
		}
		h.NotifiedTasks[task.ID] = true
		h.Logger.Printf("Sending due reminder for task %d %q", task.ID, task.Title)
		cmds = append(cmds, h.notifyCmd("Task due today", task.Title))
	}
	return cmds
}

func (h *Handler) notifyCmd(title, message string) tea.Cmd {
	notify := h.Notify
	logger := h.Logger
	return func() tea.Msg {
		if err := notify(title, message); err != nil {
			logger.Printf("Error sending notification: %v", err)
		}
		return nil
	}
}
