package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/campus-tui/internal/api"
	"github.com/hy4ri/campus-tui/internal/tui/styles"
)

// renderCourses renders the course catalogue with details of the selected course.
func (r *Renderer) renderCourses(width, height int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Courses"))
	b.WriteString("  ")
	b.WriteString(categoryLine(r.CourseCategory))
	b.WriteString("\n\n")

	courses := r.FilteredCourses()
	switch {
	case r.LoadingCatalog && len(r.Courses) == 0:
		b.WriteString(r.Spinner.View() + " Loading courses...")
		return b.String()
	case len(courses) == 0:
		b.WriteString(styles.HelpDesc.Render("No courses found."))
		return b.String()
	}

	listWidth := width
	if width >= 80 {
		listWidth = width / 2
	}

	var rows []string
	start, end := scrollWindow(r.CourseCursor, len(courses), max(1, (height-2)/2))
	for i := start; i < end; i++ {
		rows = append(rows, renderCourseRow(courses[i], i == r.CourseCursor, listWidth))
	}
	list := strings.Join(rows, "\n")

	if listWidth == width {
		b.WriteString(list)
		return b.String()
	}
	detail := renderCourseDetail(courses[clampIndex(r.CourseCursor, len(courses))])
	detail = styles.DetailPanel.Width(width - listWidth - 4).Render(detail)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail))
	return b.String()
}

func renderCourseRow(c api.Course, selected bool, width int) string {
	style := styles.ListItem
	cursor := "  "
	if selected {
		style = styles.ListSelected
		cursor = "> "
	}
	title := cursor + truncateString(c.Title, width-4)
	if c.Instructor != "" {
		title += "  " + styles.TaskListDescription.Render(c.Instructor)
	}
	bar := "  " + progressBar(c.Progress, max(10, min(20, width-40)))
	meta := fmt.Sprintf("  %d/%d lessons", c.CompletedLessons, c.TotalLessons)
	if c.Level != "" {
		meta += " · " + c.Level
	}
	return style.MaxWidth(width).Render(title) + "\n" +
		lipgloss.NewStyle().MaxWidth(width).Render(bar+styles.TaskListDescription.Render(meta))
}

func renderCourseDetail(c api.Course) string {
	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render(c.Title) + "\n\n")
	detailRow(&b, "Instructor", c.Instructor)
	detailRow(&b, "Category", c.Category)
	detailRow(&b, "Level", c.Level)
	detailRow(&b, "Lessons", fmt.Sprintf("%d / %d", c.CompletedLessons, c.TotalLessons))
	detailRow(&b, "Progress", fmt.Sprintf("%d%%", c.Progress))
	return strings.TrimRight(b.String(), "\n")
}

// renderProjects renders the project marketplace with details of the selected project.
func (r *Renderer) renderProjects(width, height int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Projects"))
	b.WriteString("  ")
	b.WriteString(categoryLine(r.ProjectCategory))
	b.WriteString("\n\n")

	projects := r.FilteredProjects()
	switch {
	case r.LoadingCatalog && len(r.Projects) == 0:
		b.WriteString(r.Spinner.View() + " Loading projects...")
		return b.String()
	case len(projects) == 0:
		b.WriteString(styles.HelpDesc.Render("No projects found."))
		return b.String()
	}

	listWidth := width
	if width >= 80 {
		listWidth = width / 2
	}

	now := r.Now()
	var rows []string
	start, end := scrollWindow(r.ProjectCursor, len(projects), max(1, (height-2)/2))
	for i := start; i < end; i++ {
		p := projects[i]
		style := styles.ListItem
		cursor := "  "
		if i == r.ProjectCursor {
			style = styles.ListSelected
			cursor = "> "
		}
		meta := fmt.Sprintf("  %s · %dh · due %s", p.Difficulty, p.EstimatedHours, r.Classifier.Label(p.Deadline, now))
		rows = append(rows,
			style.MaxWidth(listWidth).Render(cursor+truncateString(p.Title, listWidth-4))+"\n"+
				styles.TaskListDescription.Render(truncateString(meta, listWidth)))
	}
	list := strings.Join(rows, "\n")

	if listWidth == width {
		b.WriteString(list)
		return b.String()
	}
	detail := r.renderProjectDetail(projects[clampIndex(r.ProjectCursor, len(projects))])
	detail = styles.DetailPanel.Width(width - listWidth - 4).Render(detail)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail))
	return b.String()
}

func (r *Renderer) renderProjectDetail(p api.Project) string {
	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render(p.Title) + "\n\n")
	if p.ShortDescription != "" {
		b.WriteString(p.ShortDescription + "\n\n")
	}
	detailRow(&b, "Category", p.Category)
	detailRow(&b, "Difficulty", p.Difficulty)
	detailRow(&b, "Estimate", fmt.Sprintf("%d hours", p.EstimatedHours))
	detailRow(&b, "Deadline", r.Classifier.Label(p.Deadline, r.Now()))
	detailRow(&b, "Remaining", daysLeft(p.DaysRemaining(r.Now())))
	detailRow(&b, "Team", fmt.Sprintf("%d collaborators, %d applications", p.Collaborators, p.Applications))
	if len(p.Tags) > 0 {
		detailRow(&b, "Tags", styles.TaskTag.Render(strings.Join(p.Tags, ", ")))
	}
	return strings.TrimRight(b.String(), "\n")
}

// daysLeft renders a day count, highlighted when fewer than three remain.
func daysLeft(days int) string {
	unit := "days"
	if days == 1 || days == -1 {
		unit = "day"
	}
	var text string
	if days < 0 {
		text = fmt.Sprintf("%d %s overdue", -days, unit)
	} else {
		text = fmt.Sprintf("%d %s left", days, unit)
	}
	if days < 3 {
		return styles.TaskDueOverdue.UnsetPaddingLeft().Render(text)
	}
	return text
}

func detailRow(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(styles.DetailLabel.Render(label+":") + " " + styles.DetailValue.Render(value) + "\n")
}

func clampIndex(i, n int) int {
	return max(0, min(i, n-1))
}
