package state

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/hy4ri/campus-tui/internal/api"
)

func sampleProject() api.Project {
	return api.Project{
		ID:       4,
		Title:    "Campus map",
		Tags:     []string{"react", "maps", "ux"},
		Deadline: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func typeInto(f *ApplicationForm, text string) {
	for _, r := range text {
		f.Update(keyMsg(string(r)))
	}
}

func TestApplicationFormDefaults(t *testing.T) {
	f := NewApplicationForm(sampleProject())

	if f.ProjectID != 4 || f.ProjectTitle != "Campus map" {
		t.Errorf("unexpected project %d %q", f.ProjectID, f.ProjectTitle)
	}
	if f.Availability != api.DefaultAvailability {
		t.Errorf("expected %d hours, got %d", api.DefaultAvailability, f.Availability)
	}
	if f.Experience != "" || f.TermsAgreed || len(f.SelectedSkills()) != 0 {
		t.Error("expected an empty application")
	}
	if f.FocusIndex != AppFieldName || !f.FullName.Focused() {
		t.Error("expected focus on the name field")
	}
}

func TestApplicationFormFill(t *testing.T) {
	f := NewApplicationForm(sampleProject())

	typeInto(f, "Ada Lovelace")
	f.Update(keyMsg("tab"))
	typeInto(f, "ada@example.edu")
	f.Update(keyMsg("tab"))

	f.Update(keyMsg("3"))
	if f.Experience != api.ExperienceAdvanced {
		t.Errorf("expected advanced, got %q", f.Experience)
	}
	f.Update(keyMsg("right"))
	if f.Experience != api.ExperienceBeginner {
		t.Errorf("expected wrap to beginner, got %q", f.Experience)
	}
	f.Update(keyMsg("left"))
	if f.Experience != api.ExperienceAdvanced {
		t.Errorf("expected wrap back to advanced, got %q", f.Experience)
	}
	f.Update(keyMsg("tab"))

	f.Update(keyMsg(" "))
	f.Update(keyMsg("l"))
	f.Update(keyMsg("l"))
	f.Update(keyMsg("x"))
	if got := f.SelectedSkills(); !slices.Equal(got, []string{"react", "ux"}) {
		t.Errorf("expected react and ux, got %v", got)
	}
	f.Update(keyMsg("tab"))

	typeInto(f, strings.Repeat("a", api.MinMotivationLength))
	f.Update(keyMsg("tab"))

	f.Update(keyMsg("+"))
	f.Update(keyMsg("+"))
	f.Update(keyMsg("h"))
	if f.Availability != api.DefaultAvailability+1 {
		t.Errorf("expected %d hours, got %d", api.DefaultAvailability+1, f.Availability)
	}
	f.Update(keyMsg("tab"))

	f.Update(keyMsg(" "))
	if !f.TermsAgreed {
		t.Error("expected terms agreed")
	}

	f.Update(keyMsg("enter"))
	if f.FocusIndex != AppFieldSubmit {
		t.Fatalf("expected focus on submit, got %d", f.FocusIndex)
	}
	if _, submit := f.Update(keyMsg("enter")); !submit {
		t.Error("expected enter on submit to submit")
	}

	app := f.Application()
	if err := app.Validate(); err != nil {
		t.Fatalf("expected a valid application, got %v", err)
	}
	if app.ProjectID != 4 || app.FullName != "Ada Lovelace" || app.Email != "ada@example.edu" {
		t.Errorf("unexpected application %+v", app)
	}
}

func TestApplicationFormCtrlSSubmits(t *testing.T) {
	f := NewApplicationForm(sampleProject())
	if _, submit := f.Update(keyMsg("ctrl+s")); !submit {
		t.Error("expected ctrl+s to submit")
	}
}

func TestApplicationFormFocusWraps(t *testing.T) {
	f := NewApplicationForm(sampleProject())
	f.Update(keyMsg("shift+tab"))
	if f.FocusIndex != AppFieldSubmit {
		t.Errorf("expected wrap to submit, got %d", f.FocusIndex)
	}
	f.Update(keyMsg("tab"))
	if f.FocusIndex != AppFieldName || !f.FullName.Focused() {
		t.Errorf("expected wrap to name, got %d", f.FocusIndex)
	}
}

func TestApplicationFormNoSkills(t *testing.T) {
	p := sampleProject()
	p.Tags = nil
	f := NewApplicationForm(p)
	f.Focus(AppFieldSkills)
	f.Update(keyMsg(" "))
	f.Update(keyMsg("l"))
	if len(f.SelectedSkills()) != 0 {
		t.Error("expected no skills to select")
	}
}
