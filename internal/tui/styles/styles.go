// Package styles holds the Lip Gloss palette and styles shared by every screen.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/campus-tui/internal/todo"
)

// Palette. Every color adapts to light and dark terminals.
var (
	Subtle       = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	Highlight    = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

	PriorityHighColor   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#FCA5A5"}
	PriorityMediumColor = lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#FDE047"}
	PriorityLowColor    = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#86EFAC"}

	inverse       = lipgloss.Color("#FFFFFF")
	rowBackground = lipgloss.AdaptiveColor{Light: "#EEF2FF", Dark: "#1E1B4B"}
	barBackground = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#111827"}
	barForeground = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"}
	eventPreview  = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#D1D5DB"}
)

func fg(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func boxed(border lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// pill is a filled label, used for the active tab and the focused button.
func pill() lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(inverse).Background(Highlight)
}

// marked is a row with a colored bar on its left edge.
func marked(border lipgloss.Border, c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		PaddingLeft(1).
		BorderLeft(true).
		BorderStyle(border).
		BorderLeftForeground(c).
		Bold(true)
}

func onBar(c lipgloss.TerminalColor) lipgloss.Style {
	return fg(c).Background(barBackground)
}

// Headings carry no margins so viewport line counts stay exact.
var (
	Title         = fg(Highlight).Bold(true)
	Subtitle      = fg(Subtle).Bold(true)
	SectionHeader = fg(Subtle).Bold(true).Underline(true)
	Spinner       = fg(Highlight)
)

// Rows of the task list.
var (
	TaskItem      = lipgloss.NewStyle().PaddingLeft(2)
	TaskSelected  = marked(lipgloss.NormalBorder(), Highlight).Background(rowBackground)
	TaskDragging  = marked(lipgloss.ThickBorder(), WarningColor)
	TaskCompleted = TaskItem.Faint(true).Strikethrough(true)

	TaskDue        = fg(Subtle).PaddingLeft(1)
	TaskDueOverdue = fg(ErrorColor).PaddingLeft(1)
	TaskDueToday   = fg(SuccessColor).PaddingLeft(1)
	TaskTag        = fg(Highlight).PaddingLeft(1)

	// TaskListDescription is the dim second line under a row.
	TaskListDescription = fg(Subtle).Faint(true).Italic(true).PaddingLeft(8)

	TaskPriorityHigh   = fg(PriorityHighColor).Bold(true)
	TaskPriorityMedium = fg(PriorityMediumColor)
	TaskPriorityLow    = fg(PriorityLowColor)
)

const (
	CheckboxUnchecked = "[ ]"
	CheckboxChecked   = "[x]"
)

// GetPriorityStyle returns the badge style for p.
func GetPriorityStyle(p todo.Priority) lipgloss.Style {
	switch p {
	case todo.PriorityHigh:
		return TaskPriorityHigh
	case todo.PriorityLow:
		return TaskPriorityLow
	default:
		return TaskPriorityMedium
	}
}

// Course and project rows.
var (
	ListItem       = lipgloss.NewStyle().PaddingLeft(2)
	ListSelected   = marked(lipgloss.NormalBorder(), Highlight)
	ProgressFilled = fg(Highlight)
	ProgressEmpty  = fg(Subtle).Faint(true)
	CategoryBadge  = fg(Highlight).Bold(true)
)

// Frames and detail panels.
var (
	MainContent = boxed(Subtle)
	DetailPanel = boxed(Subtle)
	Dialog      = boxed(Highlight).Padding(1, 2)
	DetailLabel = fg(Subtle).Bold(true).Width(12)
	DetailValue = lipgloss.NewStyle().PaddingLeft(1)
)

// Status bar segments share the bar background.
var (
	StatusBar        = onBar(barForeground).Padding(0, 1)
	StatusBarKey     = onBar(Highlight).Bold(true)
	StatusBarText    = onBar(Subtle)
	StatusBarError   = onBar(ErrorColor).Bold(true)
	StatusBarSuccess = onBar(SuccessColor).Bold(true)
)

// Help screen and the task form.
var (
	HelpKey  = fg(Highlight).Bold(true)
	HelpDesc = fg(Subtle)

	Input         = boxed(Subtle)
	InputFocused  = boxed(Highlight)
	InputLabel    = lipgloss.NewStyle().Bold(true)
	Button        = boxed(Subtle).Padding(0, 2).Foreground(Subtle)
	ButtonFocused = pill()
)

// Calendar cells. Cell widths are computed by the calendar itself.
var (
	CalendarWeekday       = fg(Subtle)
	CalendarDay           = lipgloss.NewStyle()
	CalendarDaySelected   = lipgloss.NewStyle().Bold(true).Foreground(inverse).Background(Highlight)
	CalendarDayToday      = fg(SuccessColor).Bold(true)
	CalendarDayWithEvents = fg(WarningColor)
	CalendarDayWeekend    = fg(Subtle)
	CalendarEventPreview  = fg(eventPreview)
	CalendarMoreEvents    = fg(Subtle).Italic(true)
)

// Screen tabs.
var (
	TabBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Subtle).
		Padding(0, 1)
	Tab       = fg(Subtle).Padding(0, 2)
	TabActive = pill()
)
