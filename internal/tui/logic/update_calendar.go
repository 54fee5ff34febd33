package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/campus-tui/internal/api"
	"github.com/hy4ri/campus-tui/internal/tui/state"
)

func (h *Handler) handleCalendarAction(action string, msg tea.KeyMsg) tea.Cmd {
	switch action {
	case "up", "down", "left", "right", "prev_month", "next_month", "today", "calendar_view":
		_, cmd := h.Calendar.Update(msg)
		return cmd
	case "category":
		cats := api.Categories(h.Events, func(e api.Event) string { return e.Category })
		next := state.NextCategory(h.Calendar.Category(), cats)
		h.Calendar.SetCategory(next)
		h.StatusMsg = categoryStatus(next)
	}
	return nil
}

func categoryStatus(category string) string {
	if category == "" {
		return "Category: all"
	}
	return "Category: " + category
}
