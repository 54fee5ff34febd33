package ui

import (
	"fmt"
	"strings"

	"github.com/hy4ri/campus-tui/internal/api"
	"github.com/hy4ri/campus-tui/internal/tui/state"
	"github.com/hy4ri/campus-tui/internal/tui/styles"
)

// renderApplyForm renders the apply-to-project dialog.
func (r *Renderer) renderApplyForm() string {
	f := r.ApplyForm
	if f == nil {
		return styles.Dialog.Width(r.Width - 4).Render("Form not initialized")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Apply to Project") + "\n")
	b.WriteString(styles.Subtitle.Render(f.ProjectTitle) + "\n\n")

	field := func(label string, index int, view string) {
		style := styles.Input
		if f.FocusIndex == index {
			style = styles.InputFocused
		}
		b.WriteString(styles.InputLabel.Render(label) + "\n")
		b.WriteString(style.Render(view) + "\n")
	}

	field("Full Name", state.AppFieldName, f.FullName.View())
	field("Email", state.AppFieldEmail, f.Email.View())

	var levels []string
	for _, l := range api.ExperienceLevels {
		name := strings.ToUpper(string(l[:1])) + string(l[1:])
		label := " " + name + " "
		if l == f.Experience {
			label = styles.CategoryBadge.Underline(true).Render("[" + name + "]")
		}
		levels = append(levels, label)
	}
	field("Experience Level (1-3, h/l)", state.AppFieldExperience, strings.Join(levels, " "))
	b.WriteString(styles.HelpDesc.Render(f.Experience.Label()) + "\n")

	field("Relevant Skills (h/l, space)", state.AppFieldSkills, renderSkills(f))
	field(fmt.Sprintf("Motivation (%d/%d chars)", len([]rune(strings.TrimSpace(f.Motivation.Value()))), api.MinMotivationLength),
		state.AppFieldMotivation, f.Motivation.View())
	field(fmt.Sprintf("Weekly Availability (hours, %d-%d)", api.MinAvailability, api.MaxAvailability),
		state.AppFieldAvailability, fmt.Sprintf("< %d >", f.Availability))

	box := styles.CheckboxUnchecked
	if f.TermsAgreed {
		box = styles.CheckboxChecked
	}
	field("Terms", state.AppFieldTerms, box+" I agree to the project terms and conditions")
	b.WriteString("\n")

	button := styles.Button
	if f.FocusIndex == state.AppFieldSubmit {
		button = styles.ButtonFocused
	}
	if r.Submitting {
		b.WriteString(r.Spinner.View() + " Submitting...\n\n")
	} else {
		b.WriteString(button.Render("Submit Application") + "\n\n")
	}

	if f.Err != "" {
		b.WriteString(styles.StatusBarError.Render(f.Err) + "\n\n")
	}

	b.WriteString(styles.HelpDesc.Render("Ctrl+S: submit | Esc: cancel | Tab: next field"))

	return styles.Dialog.Width(min(r.Width-4, 72)).Render(b.String())
}

func renderSkills(f *state.ApplicationForm) string {
	if len(f.Skills) == 0 {
		return styles.HelpDesc.Render("This project lists no skills")
	}
	var parts []string
	for i, skill := range f.Skills {
		box := styles.CheckboxUnchecked
		if f.Selected[skill] {
			box = styles.CheckboxChecked
		}
		label := box + " " + skill
		if f.FocusIndex == state.AppFieldSkills && i == f.SkillCursor {
			label = styles.CategoryBadge.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}
