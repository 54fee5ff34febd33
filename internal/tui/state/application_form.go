package state

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/campus-tui/internal/api"
)

// Application form fields in focus order.
const (
	AppFieldName = iota
	AppFieldEmail
	AppFieldExperience
	AppFieldSkills
	AppFieldMotivation
	AppFieldAvailability
	AppFieldTerms
	AppFieldSubmit
	appFieldCount
)

// ApplicationForm is the apply-to-project dialog.
type ApplicationForm struct {
	ProjectID    int
	ProjectTitle string

	FullName   textinput.Model
	Email      textinput.Model
	Motivation textinput.Model

	Experience   api.ExperienceLevel
	Skills       []string // offered skills, the project's tags
	Selected     map[string]bool
	SkillCursor  int
	Availability int
	TermsAgreed  bool

	FocusIndex int
	Err        string
}

// NewApplicationForm creates an empty application for p.
func NewApplicationForm(p api.Project) *ApplicationForm {
	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 100
	name.Width = 40
	name.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.edu"
	email.CharLimit = 100
	email.Width = 40

	motivation := textinput.New()
	motivation.Placeholder = "Why do you want to join this project?"
	motivation.CharLimit = 1000
	motivation.Width = 50

	return &ApplicationForm{
		ProjectID:    p.ID,
		ProjectTitle: p.Title,
		FullName:     name,
		Email:        email,
		Motivation:   motivation,
		Skills:       slices.Clone(p.Tags),
		Selected:     make(map[string]bool),
		Availability: api.DefaultAvailability,
		FocusIndex:   AppFieldName,
	}
}

// Update feeds msg to the focused field. It reports submit=true when the
// user confirms the form.
func (f *ApplicationForm) Update(msg tea.Msg) (cmd tea.Cmd, submit bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+s":
			return nil, true
		case "tab", "down":
			f.Focus((f.FocusIndex + 1) % appFieldCount)
			return nil, false
		case "shift+tab", "up":
			f.Focus((f.FocusIndex - 1 + appFieldCount) % appFieldCount)
			return nil, false
		case "enter":
			if f.FocusIndex == AppFieldSubmit {
				return nil, true
			}
			f.Focus(f.FocusIndex + 1)
			return nil, false
		}

		switch f.FocusIndex {
		case AppFieldExperience:
			f.updateExperience(msg.String())
			return nil, false
		case AppFieldSkills:
			f.updateSkills(msg.String())
			return nil, false
		case AppFieldAvailability:
			f.updateAvailability(msg.String())
			return nil, false
		case AppFieldTerms:
			if msg.String() == " " || msg.String() == "x" {
				f.TermsAgreed = !f.TermsAgreed
			}
			return nil, false
		}
	}

	switch f.FocusIndex {
	case AppFieldName:
		f.FullName, cmd = f.FullName.Update(msg)
	case AppFieldEmail:
		f.Email, cmd = f.Email.Update(msg)
	case AppFieldMotivation:
		f.Motivation, cmd = f.Motivation.Update(msg)
	}
	return cmd, false
}

func (f *ApplicationForm) updateExperience(key string) {
	levels := api.ExperienceLevels
	i := slices.Index(levels, f.Experience)
	switch key {
	case "1", "2", "3":
		f.Experience = levels[key[0]-'1']
	case "l", "right", " ":
		f.Experience = levels[(i+1)%len(levels)]
	case "h", "left":
		if i <= 0 {
			i = len(levels)
		}
		f.Experience = levels[i-1]
	}
}

func (f *ApplicationForm) updateSkills(key string) {
	if len(f.Skills) == 0 {
		return
	}
	switch key {
	case "l", "right":
		f.SkillCursor = (f.SkillCursor + 1) % len(f.Skills)
	case "h", "left":
		f.SkillCursor = (f.SkillCursor - 1 + len(f.Skills)) % len(f.Skills)
	case " ", "x":
		skill := f.Skills[f.SkillCursor]
		f.Selected[skill] = !f.Selected[skill]
	}
}

func (f *ApplicationForm) updateAvailability(key string) {
	switch key {
	case "l", "right", "+":
		f.Availability++
	case "h", "left", "-":
		f.Availability--
	}
	f.Availability = max(0, min(f.Availability, 168))
}

// Focus moves focus to the field at index.
func (f *ApplicationForm) Focus(index int) {
	f.FocusIndex = index
	f.FullName.Blur()
	f.Email.Blur()
	f.Motivation.Blur()

	switch index {
	case AppFieldName:
		f.FullName.Focus()
	case AppFieldEmail:
		f.Email.Focus()
	case AppFieldMotivation:
		f.Motivation.Focus()
	}
}

// SelectedSkills returns the checked skills in the order offered.
func (f *ApplicationForm) SelectedSkills() []string {
	var out []string
	for _, s := range f.Skills {
		if f.Selected[s] {
			out = append(out, s)
		}
	}
	return out
}

// Application converts the form to a submission.
func (f *ApplicationForm) Application() api.Application {
	return api.Application{
		ProjectID:       f.ProjectID,
		FullName:        strings.TrimSpace(f.FullName.Value()),
		Email:           strings.TrimSpace(f.Email.Value()),
		ExperienceLevel: f.Experience,
		Skills:          f.SelectedSkills(),
		Motivation:      strings.TrimSpace(f.Motivation.Value()),
		Availability:    f.Availability,
		TermsAgreed:     f.TermsAgreed,
	}
}

// SetWidth sets the width of the text inputs.
func (f *ApplicationForm) SetWidth(width int) {
	f.FullName.Width = width
	f.Email.Width = width
	f.Motivation.Width = width
}
