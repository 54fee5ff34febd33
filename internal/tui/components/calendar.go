package components

import (
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/campus-tui/internal/api"
	"github.com/hy4ri/campus-tui/internal/tui/styles"
)

// CalendarViewModeType represents the calendar display mode.
type CalendarViewModeType int

const (
	CalendarViewModeCompact  CalendarViewModeType = iota // Small grid view
	CalendarViewModeExpanded                             // Grid with event names in cells
)

// ParseCalendarViewMode maps the config value to a mode. Anything but
// "expanded" is compact.
func ParseCalendarViewMode(s string) CalendarViewModeType {
	if s == "expanded" {
		return CalendarViewModeExpanded
	}
	return CalendarViewModeCompact
}

// CalendarModel is a month grid of events with a selected day.
type CalendarModel struct {
	date          time.Time
	day           int
	viewMode      CalendarViewModeType
	events        []api.Event
	category      string
	now           func() time.Time
	width, height int
}

// NewCalendar creates a CalendarModel showing the current month.
// Days are computed in the location of now().
func NewCalendar(now func() time.Time) *CalendarModel {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &CalendarModel{
		date:     t,
		day:      t.Day(),
		viewMode: CalendarViewModeCompact,
		now:      now,
	}
}

// Init implements Component.
func (c *CalendarModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (c *CalendarModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		c.handleKeyMsg(msg)
	}
	return c, nil
}

func (c *CalendarModel) loc() *time.Location {
	return c.now().Location()
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// shiftMonth moves the viewed month by n, clamping the selected day.
func (c *CalendarModel) shiftMonth(n int) {
	first := time.Date(c.date.Year(), c.date.Month(), 1, 0, 0, 0, 0, c.loc())
	c.date = first.AddDate(0, n, 0)
	c.day = min(c.day, daysIn(c.date.Year(), c.date.Month(), c.loc()))
}

// shiftDays moves the selection by n days, crossing month boundaries.
func (c *CalendarModel) shiftDays(n int) {
	selected := c.SelectedDate().AddDate(0, 0, n)
	c.date = selected
	c.day = selected.Day()
}

// handleKeyMsg processes keyboard input for calendar navigation.
func (c *CalendarModel) handleKeyMsg(msg tea.KeyMsg) {
	switch msg.String() {
	case "h", "left":
		c.shiftDays(-1)
	case "l", "right":
		c.shiftDays(1)
	case "k", "up":
		c.shiftDays(-7)
	case "j", "down":
		c.shiftDays(7)
	case "[":
		c.shiftMonth(-1)
	case "]":
		c.shiftMonth(1)
	case "t":
		c.Today()
	case "v":
		c.ToggleViewMode()
	}
}

// Today jumps to the current day.
func (c *CalendarModel) Today() {
	t := c.now()
	c.date = t
	c.day = t.Day()
}

// ToggleViewMode switches between compact and expanded grids.
func (c *CalendarModel) ToggleViewMode() {
	if c.viewMode == CalendarViewModeCompact {
		c.viewMode = CalendarViewModeExpanded
	} else {
		c.viewMode = CalendarViewModeCompact
	}
}

// View implements Component.
func (c *CalendarModel) View() string {
	if c.viewMode == CalendarViewModeExpanded {
		return c.renderExpanded()
	}
	return c.renderCompact()
}

// SetSize implements Component.
func (c *CalendarModel) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// SetEvents replaces the events shown on the grid.
func (c *CalendarModel) SetEvents(events []api.Event) {
	c.events = events
}

// SetCategory restricts the grid to one category. Empty shows all.
func (c *CalendarModel) SetCategory(category string) {
	c.category = category
}

// Category returns the active category filter.
func (c *CalendarModel) Category() string {
	return c.category
}

// SelectedDate returns the currently selected date.
func (c *CalendarModel) SelectedDate() time.Time {
	return time.Date(c.date.Year(), c.date.Month(), c.day, 0, 0, 0, 0, c.loc())
}

// ViewMode returns the current view mode.
func (c *CalendarModel) ViewMode() CalendarViewModeType {
	return c.viewMode
}

// SetViewMode sets the view mode.
func (c *CalendarModel) SetViewMode(mode CalendarViewModeType) {
	c.viewMode = mode
}

// visible returns the events passing the category filter.
func (c *CalendarModel) visible() []api.Event {
	if c.category == "" {
		return c.events
	}
	var out []api.Event
	for _, e := range c.events {
		if strings.EqualFold(e.Category, c.category) {
			out = append(out, e)
		}
	}
	return out
}

// eventsByDay groups the viewed month's events by the day they start.
func (c *CalendarModel) eventsByDay() map[int][]api.Event {
	byDay := make(map[int][]api.Event)
	for _, e := range c.visible() {
		start := e.StartDate.In(c.loc())
		if start.Year() == c.date.Year() && start.Month() == c.date.Month() {
			byDay[start.Day()] = append(byDay[start.Day()], e)
		}
	}
	for _, events := range byDay {
		slices.SortStableFunc(events, func(a, b api.Event) int {
			return a.StartDate.Compare(b.StartDate)
		})
	}
	return byDay
}

// SelectedEvents returns the events starting on the selected day, earliest first.
func (c *CalendarModel) SelectedEvents() []api.Event {
	return c.eventsByDay()[c.day]
}

func (c *CalendarModel) dayStyle(day, weekday int, hasEvents bool) (isSelected bool, render func(string) string) {
	today := c.now()
	isToday := today.Year() == c.date.Year() &&
		today.Month() == c.date.Month() &&
		today.Day() == day
	isSelected = day == c.day
	isWeekend := weekday == 0 || weekday == 6

	style := styles.CalendarDay
	switch {
	case isSelected:
		style = styles.CalendarDaySelected
	case isToday:
		style = styles.CalendarDayToday
	case hasEvents:
		style = styles.CalendarDayWithEvents
	case isWeekend:
		style = styles.CalendarDayWeekend
	}
	return isSelected, func(s string) string { return style.Render(s) }
}

func (c *CalendarModel) header(b *strings.Builder) {
	monthYear := c.date.Format("January 2006")
	b.WriteString(styles.Title.Render(monthYear))
	if c.category != "" {
		b.WriteString("  " + styles.CategoryBadge.Render("["+c.category+"]"))
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("[ ] prev/next month | h l prev/next day | t today | v toggle view | c category"))
	b.WriteString("\n\n")
}

// renderCompact renders the compact calendar view.
func (c *CalendarModel) renderCompact() string {
	var b strings.Builder
	c.header(&b)

	weekdays := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for _, wd := range weekdays {
		b.WriteString(styles.CalendarWeekday.Render(fmt.Sprintf(" %s ", wd)))
	}
	b.WriteString("\n")

	firstOfMonth := time.Date(c.date.Year(), c.date.Month(), 1, 0, 0, 0, 0, c.loc())
	startWeekday := int(firstOfMonth.Weekday())
	daysInMonth := daysIn(c.date.Year(), c.date.Month(), c.loc())
	byDay := c.eventsByDay()

	day := 1
	for week := 0; week < 6 && day <= daysInMonth; week++ {
		for weekday := 0; weekday < 7; weekday++ {
			if (week == 0 && weekday < startWeekday) || day > daysInMonth {
				b.WriteString("     ")
				continue
			}

			hasEvents := len(byDay[day]) > 0
			isSelected, render := c.dayStyle(day, weekday, hasEvents)

			dayStr := fmt.Sprintf(" %2d ", day)
			if hasEvents && !isSelected {
				dayStr = fmt.Sprintf(" %2d*", day)
			}

			b.WriteString(render(dayStr))
			b.WriteString(" ")
			day++
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderExpanded renders the expanded calendar view with event names.
func (c *CalendarModel) renderExpanded() string {
	var b strings.Builder
	c.header(&b)

	// Calculate cell dimensions
	availableWidth := max(c.width-8, 35)
	cellWidth := min(max(availableWidth/7, 5), 20)

	weekdays := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	headerLine := "│"
	for _, wd := range weekdays {
		header := fmt.Sprintf(" %-*s", cellWidth-1, wd)
		headerLine += styles.CalendarWeekday.Render(header) + "│"
	}
	b.WriteString(headerLine)
	b.WriteString("\n")

	separator := "├" + strings.Repeat(strings.Repeat("─", cellWidth)+"┼", 6) + strings.Repeat("─", cellWidth) + "┤\n"
	b.WriteString(separator)

	firstOfMonth := time.Date(c.date.Year(), c.date.Month(), 1, 0, 0, 0, 0, c.loc())
	startWeekday := int(firstOfMonth.Weekday())
	daysInMonth := daysIn(c.date.Year(), c.date.Month(), c.loc())
	byDay := c.eventsByDay()
	blank := strings.Repeat(" ", cellWidth)

	const maxEventsPerCell = 2

	day := 1
	for week := 0; week < 6 && day <= daysInMonth; week++ {
		// Day numbers row
		dayNumLine := "│"
		weekStart := day
		for weekday := 0; weekday < 7; weekday++ {
			if (week == 0 && weekday < startWeekday) || day > daysInMonth {
				dayNumLine += blank + "│"
				continue
			}
			_, render := c.dayStyle(day, weekday, len(byDay[day]) > 0)
			dayNumLine += render(fmt.Sprintf("%-*s", cellWidth, fmt.Sprintf(" %2d", day))) + "│"
			day++
		}
		b.WriteString(dayNumLine)
		b.WriteString("\n")

		// Event rows
		for line := 0; line < maxEventsPerCell; line++ {
			row := "│"
			cellDay := weekStart
			for weekday := 0; weekday < 7; weekday++ {
				if (week == 0 && weekday < startWeekday) || cellDay > daysInMonth {
					row += blank + "│"
					continue
				}

				events := byDay[cellDay]
				cell := blank
				switch {
				case line == maxEventsPerCell-1 && len(events) > maxEventsPerCell:
					more := fmt.Sprintf("+%d more", len(events)-maxEventsPerCell+1)
					cell = styles.CalendarMoreEvents.Render(padCell(more, cellWidth))
				case line < len(events):
					cell = styles.CalendarEventPreview.Render(padCell(events[line].Title, cellWidth))
				}

				row += cell + "│"
				cellDay++
			}
			b.WriteString(row)
			b.WriteString("\n")
		}

		if day <= daysInMonth {
			b.WriteString(separator)
		}
	}

	bottomBorder := "└" + strings.Repeat(strings.Repeat("─", cellWidth)+"┴", 6) + strings.Repeat("─", cellWidth) + "┘\n"
	b.WriteString(bottomBorder)

	return b.String()
}

// padCell fits s into a cell of the given width with a leading space.
func padCell(s string, width int) string {
	s = runewidth.Truncate(s, width-1, "…")
	return " " + runewidth.FillRight(s, width-1)
}
