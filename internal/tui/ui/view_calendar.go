package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/campus-tui/internal/api"
	"github.com/hy4ri/campus-tui/internal/tui/components"
	"github.com/hy4ri/campus-tui/internal/tui/styles"
)

// renderCalendar renders the month grid with the selected day's events.
func (r *Renderer) renderCalendar(width, height int) string {
	if r.LoadingCatalog && len(r.Events) == 0 {
		return r.Spinner.View() + " Loading events..."
	}

	var b strings.Builder
	grid := r.Calendar.View()
	agenda := r.renderAgenda(r.Calendar.SelectedEvents())

	// Compact grids leave room for the agenda on the right.
	if r.Calendar.ViewMode() == components.CalendarViewModeCompact && width >= 70 {
		gridWidth := lipgloss.Width(grid) + 4
		agenda = styles.DetailPanel.Width(max(20, width-gridWidth-4)).Render(agenda)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, grid, "    ", agenda))
		return b.String()
	}

	b.WriteString(grid)
	b.WriteString("\n\n")
	b.WriteString(agenda)
	return b.String()
}

func (r *Renderer) renderAgenda(events []api.Event) string {
	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render(r.Calendar.SelectedDate().Format("Monday, January 2")))
	b.WriteString("\n")

	if len(events) == 0 {
		b.WriteString(styles.HelpDesc.Render("No events"))
		return b.String()
	}

	loc := r.Now().Location()
	for _, ev := range events {
		start := ev.StartDate.In(loc).Format("15:04")
		end := ev.EndDate.In(loc).Format("15:04")
		b.WriteString(styles.DetailLabel.Render(start+"-"+end) + " ")
		b.WriteString(styles.DetailValue.Render(ev.Title))
		b.WriteString("\n")

		var meta []string
		if ev.Location != "" {
			meta = append(meta, "@ "+ev.Location)
		}
		if ev.Speaker != "" {
			meta = append(meta, ev.Speaker)
		}
		if ev.Capacity > 0 {
			meta = append(meta, fmt.Sprintf("%d seats left", ev.SeatsLeft()))
		}
		if len(meta) > 0 {
			b.WriteString(styles.TaskListDescription.Render("            " + strings.Join(meta, " · ")))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
