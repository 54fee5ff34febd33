package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/campus-tui/internal/api"
	"github.com/hy4ri/campus-tui/internal/tui/state"
)

func (h *Handler) handleCoursesAction(action string) tea.Cmd {
	if action == "category" {
		cats := api.Categories(h.Courses, func(c api.Course) string { return c.Category })
		h.CourseCategory = state.NextCategory(h.CourseCategory, cats)
		h.CourseCursor = 0
		h.StatusMsg = categoryStatus(h.CourseCategory)
		return nil
	}
	h.CourseCursor = moveCursor(action, h.CourseCursor, len(h.FilteredCourses()))
	return nil
}

func (h *Handler) handleProjectsAction(action string) tea.Cmd {
	switch action {
	case "add", "select":
		return h.openApplyForm()
	case "category":
		cats := api.Categories(h.Projects, func(p api.Project) string { return p.Category })
		h.ProjectCategory = state.NextCategory(h.ProjectCategory, cats)
		h.ProjectCursor = 0
		h.StatusMsg = categoryStatus(h.ProjectCategory)
		return nil
	}
	h.ProjectCursor = moveCursor(action, h.ProjectCursor, len(h.FilteredProjects()))
	return nil
}

// moveCursor applies a list navigation action to cursor over n rows.
func moveCursor(action string, cursor, n int) int {
	switch action {
	case "up":
		cursor--
	case "down":
		cursor++
	case "top":
		cursor = 0
	case "bottom":
		cursor = n - 1
	}
	return clampCursor(cursor, n)
}
