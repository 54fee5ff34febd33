package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/campus-tui/internal/tui/state"
	"github.com/hy4ri/campus-tui/internal/tui/styles"
)

// Renderer implements the view half of the application over the shared state.
type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	switch r.CurrentView {
	case state.ViewHelp:
		r.HelpComp.SetSections(r.Keymap.HelpSections())
		r.HelpComp.SetSize(r.Width, r.Height)
		return r.HelpComp.View()
	case state.ViewTaskForm:
		return r.renderTaskForm()
	case state.ViewApplyForm:
		return r.renderApplyForm()
	}
	return r.renderMainView()
}

// renderMainView renders the main layout with tab bar and content.
func (r *Renderer) renderMainView() string {
	tabBar := r.renderTabBar()
	statusBar := r.renderStatusBar()

	contentHeight := r.Height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	innerHeight := max(5, contentHeight-2)
	innerWidth := r.Width - 2 - styles.MainContent.GetHorizontalFrameSize()

	var content string
	switch r.CurrentTab {
	case state.TabCalendar:
		content = r.renderCalendar(innerWidth, innerHeight)
	case state.TabCourses:
		content = r.renderCourses(innerWidth, innerHeight)
	case state.TabProjects:
		content = r.renderProjects(innerWidth, innerHeight)
	default:
		content = r.renderTaskList(innerWidth, innerHeight)
	}

	mainContent := styles.MainContent.Width(r.Width - 2).Height(innerHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, mainContent, statusBar)
}

// renderTabBar renders the top tab bar.
func (r *Renderer) renderTabBar() string {
	useShortLabels := r.Width < 60

	var tabStrs []string
	for _, t := range state.GetTabDefinitions() {
		label := fmt.Sprintf("%s %s", t.Icon, t.Name)
		if useShortLabels {
			label = fmt.Sprintf("%s %s", t.Icon, t.ShortName)
		}
		if r.CurrentTab == t.Tab {
			tabStrs = append(tabStrs, styles.TabActive.Render(label))
		} else {
			tabStrs = append(tabStrs, styles.Tab.Render(label))
		}
	}

	tabLine := strings.Join(tabStrs, " ")
	maxWidth := r.Width - 4
	if lipgloss.Width(tabLine) > maxWidth && maxWidth > 0 {
		tabLine = lipgloss.NewStyle().MaxWidth(maxWidth).Render(tabLine)
	}
	return styles.TabBar.Width(r.Width).Render(tabLine)
}

// renderStatusBar shows the toast, or the last status message, and key hints.
func (r *Renderer) renderStatusBar() string {
	left := ""
	switch {
	case r.Toast != nil:
		text := oneLine(r.Toast.Title + ": " + r.Toast.Message)
		if r.Toast.Error {
			left = styles.StatusBarError.Render(text)
		} else {
			left = styles.StatusBarSuccess.Render(text)
		}
	case r.StatusMsg != "":
		left = styles.StatusBarText.Render(oneLine(r.StatusMsg))
	}

	right := strings.Join(r.contextualHints(), " ")

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	padding := styles.StatusBar.GetHorizontalFrameSize()

	maxLeftWidth := r.Width - rightWidth - padding - 4
	if leftWidth > maxLeftWidth && maxLeftWidth > 10 {
		left = truncateString(left, maxLeftWidth)
		leftWidth = lipgloss.Width(left)
	}

	spacing := max(0, r.Width-leftWidth-rightWidth-padding)
	return styles.StatusBar.Width(r.Width).Render(left + strings.Repeat(" ", spacing) + right)
}

func (r *Renderer) contextualHints() []string {
	key := func(k string) string { return styles.StatusBarKey.Render(k) }
	desc := func(d string) string { return styles.StatusBarText.Render(d) }
	km := r.Keymap

	var hints []string
	switch r.CurrentTab {
	case state.TabTasks:
		if _, dragging := r.Drag.Dragging(); dragging {
			return []string{
				key(km.MoveTask.Key) + desc(":drop"),
				key(km.Back.Key) + desc(":cancel"),
			}
		}
		hints = []string{
			key(km.AddTask.Key) + desc(":add"),
			key(km.CompleteTask.Key) + desc(":done"),
			key(km.CycleFilter.Key) + desc(":filter"),
			key(km.CycleSort.Key) + desc(":sort"),
		}
	case state.TabCalendar:
		hints = []string{
			key(km.PrevMonth.Key+km.NextMonth.Key) + desc(":month"),
			key(km.CalendarView.Key) + desc(":view"),
			key(km.CycleCategory.Key) + desc(":category"),
		}
	case state.TabProjects:
		hints = []string{
			key(km.AddTask.Key) + desc(":apply"),
			key(km.CycleCategory.Key) + desc(":category"),
		}
	default:
		hints = []string{
			key(km.CycleCategory.Key) + desc(":category"),
		}
	}
	return append(hints, key(km.Help.Key)+desc(":help"))
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
