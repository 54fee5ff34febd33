package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/campus-tui/internal/tui/styles"
)

// HelpEntry is one key binding line of the help screen.
type HelpEntry struct {
	Keys string
	Desc string
}

// HelpSection groups related bindings under a heading.
type HelpSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpModel renders the keyboard shortcut overview in two columns.
type HelpModel struct {
	width, height int
	sections      []HelpSection
}

// NewHelp creates an empty HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component. Closing the help screen is up to the caller.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	return h, nil
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetSections replaces the bindings shown.
func (h *HelpModel) SetSections(sections []HelpSection) {
	h.sections = sections
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.sections) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	left, right := splitSections(h.sections)
	column := lipgloss.NewStyle().Width(min(h.width/2, 50)).Padding(0, 2)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		column.Render(renderSections(left)),
		column.Render(renderSections(right)),
	)
	footer := lipgloss.NewStyle().Width(h.width).Align(lipgloss.Center).
		Render(styles.HelpDesc.Render("Press ESC or ? to close"))

	return styles.Title.Render("Keyboard Shortcuts") + "\n" + body + "\n\n" + footer
}

// splitSections fills the left column until it holds about half the lines.
func splitSections(sections []HelpSection) (left, right []HelpSection) {
	total := 0
	for _, s := range sections {
		total += len(s.Entries) + 2
	}
	lines := 0
	for i, s := range sections {
		if i > 0 && lines >= total/2 {
			return sections[:i], sections[i:]
		}
		lines += len(s.Entries) + 2
	}
	return sections, nil
}

func renderSections(sections []HelpSection) string {
	keyStyle := styles.HelpKey.Width(12).Align(lipgloss.Right).PaddingRight(2)

	var b strings.Builder
	for _, s := range sections {
		b.WriteString("\n" + styles.SectionHeader.Render(" "+s.Title+" ") + "\n")
		for _, e := range s.Entries {
			b.WriteString(keyStyle.Render(e.Keys) + styles.HelpDesc.Render(e.Desc) + "\n")
		}
	}
	return b.String()
}
