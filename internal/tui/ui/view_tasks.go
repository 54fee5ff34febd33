package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/campus-tui/internal/todo"
	"github.com/hy4ri/campus-tui/internal/tui/styles"
)

// EmptyTasksMessage is shown when the filtered list has no rows.
const EmptyTasksMessage = "No tasks found. Try changing the filter or add a new task to get started."

// renderTaskList renders the task screen header and rows.
func (r *Renderer) renderTaskList(width, height int) string {
	var b strings.Builder

	tasks := r.VisibleTasks()
	b.WriteString(styles.Title.Render("Tasks"))
	b.WriteString("  ")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("Filter: %s | Sort: %s | %d of %d",
		r.Filter.Label(), r.SortKey.Label(), len(tasks), r.Store.Len())))
	b.WriteString("\n\n")

	switch {
	case r.LoadingTasks:
		b.WriteString(r.Spinner.View())
		b.WriteString(" Loading tasks...")
	case len(tasks) == 0:
		b.WriteString(styles.HelpDesc.Render(EmptyTasksMessage))
	default:
		b.WriteString(r.renderTaskRows(tasks, width, height-2))
	}
	return b.String()
}

// renderTaskRows renders every row into the viewport and scrolls it so the
// cursor line stays visible.
func (r *Renderer) renderTaskRows(tasks []todo.Task, width, height int) string {
	draggedID, dragging := r.Drag.Dragging()

	var lines []string
	cursorLine := 0
	for i, t := range tasks {
		selected := i == r.TaskCursor
		if selected {
			cursorLine = len(lines)
		}
		lines = append(lines, r.renderTaskRow(t, selected, dragging && t.ID == draggedID, width))
		if selected && t.Description != "" {
			lines = append(lines, styles.TaskListDescription.Render("      "+truncateString(t.Description, width-8)))
		}
	}
	content := strings.Join(lines, "\n")

	if !r.ViewportReady {
		return content
	}
	if height > 0 {
		r.TaskViewport.Height = height
	}
	r.TaskViewport.SetContent(content)
	r.syncViewportToCursor(cursorLine)
	return r.TaskViewport.View()
}

func (r *Renderer) syncViewportToCursor(cursorLine int) {
	vp := &r.TaskViewport
	if cursorLine < vp.YOffset {
		vp.SetYOffset(cursorLine)
	} else if cursorLine >= vp.YOffset+vp.Height {
		vp.SetYOffset(cursorLine - vp.Height + 1)
	}
}

// renderTaskRow renders one task: cursor, checkbox, title, priority, due
// label and tags.
func (r *Renderer) renderTaskRow(t todo.Task, selected, dragged bool, width int) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	if dragged {
		cursor = "↕ "
	}

	checkbox := styles.CheckboxUnchecked
	if t.Completed {
		checkbox = styles.CheckboxChecked
	}

	info := r.Classifier.Describe(t, r.Now())
	dueStr := "| " + info.Label
	if info.Overdue {
		dueStr += " (Overdue)"
	}

	var tagStr string
	if len(t.Tags) > 0 {
		tags := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			tags[i] = "#" + tag
		}
		tagStr = strings.Join(tags, " ")
	}

	priority := string(t.Priority)

	// "> [ ] " plus one space between each part.
	overhead := 2 + len(checkbox) + 1 + len(priority) + 1 + lipgloss.Width(dueStr) + 1 + lipgloss.Width(tagStr) + 2
	maxTitleWidth := max(5, width-overhead)
	title := truncateString(t.Title, maxTitleWidth)

	styledPriority := styles.GetPriorityStyle(t.Priority).Render(priority)

	var styledDue string
	switch {
	case info.Overdue:
		styledDue = styles.TaskDueOverdue.Render(dueStr)
	case info.Bucket == todo.BucketToday:
		styledDue = styles.TaskDueToday.Render(dueStr)
	default:
		styledDue = styles.TaskDue.Render(dueStr)
	}

	line := fmt.Sprintf("%s%s %s %s %s", cursor, checkbox, title, styledPriority, styledDue)
	if tagStr != "" {
		line += " " + styles.TaskTag.Render(tagStr)
	}

	style := styles.TaskItem
	switch {
	case dragged:
		style = styles.TaskDragging
	case selected:
		style = styles.TaskSelected
	case t.Completed:
		style = styles.TaskCompleted
	}
	return style.MaxWidth(width).Render(line)
}
