package logic

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/campus-tui/internal/api"
	"github.com/hy4ri/campus-tui/internal/tui/state"
)

// collect runs cmd and any batched commands, returning their messages.
// Timer commands are skipped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(100 * time.Millisecond):
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func submitted(msgs []tea.Msg) (applicationSubmittedMsg, bool) {
	for _, m := range msgs {
		if s, ok := m.(applicationSubmittedMsg); ok {
			return s, true
		}
	}
	return applicationSubmittedMsg{}, false
}

func newProjectsHandler(t *testing.T, src *api.FixtureSource) *Handler {
	t.Helper()
	h := newTestHandler(t, src)
	h.Projects = []api.Project{
		{ID: 1, Title: "Study planner", Tags: []string{"go"}, Deadline: testNow.AddDate(0, 0, 10)},
		{ID: 2, Title: "Campus map", Tags: []string{"react", "maps"}, Deadline: testNow.AddDate(0, 0, 2)},
	}
	h.switchTab(state.TabProjects)
	return h
}

// fillApplication completes every field of the open form.
func fillApplication(h *Handler) {
	press(h, "Ada Lovelace", "tab", "ada@example.edu", "tab", "2", "tab", " ", "tab",
		strings.Repeat("m", api.MinMotivationLength), "tab", "tab", " ")
}

func TestApplyOpensForSelectedProject(t *testing.T) {
	h := newProjectsHandler(t, nil)

	press(h, "j", "a")
	if h.CurrentView != state.ViewApplyForm || h.ApplyForm == nil {
		t.Fatal("expected the application form to open")
	}
	if h.ApplyForm.ProjectID != 2 {
		t.Errorf("expected project 2, got %d", h.ApplyForm.ProjectID)
	}

	press(h, "esc")
	if h.CurrentView != state.ViewMain || h.ApplyForm != nil {
		t.Error("expected esc to close the form")
	}

	h.Update(keyMsg("enter"))
	if h.CurrentView != state.ViewApplyForm {
		t.Error("expected enter to open the form")
	}
}

func TestApplyNeedsAProject(t *testing.T) {
	h := newTestHandler(t, nil)
	h.switchTab(state.TabProjects)

	press(h, "a")
	if h.CurrentView != state.ViewMain || h.ApplyForm != nil {
		t.Error("expected no form without projects")
	}
}

func TestApplySubmitSuccess(t *testing.T) {
	src := api.NewFixtureSource(api.WithLatency(0))
	h := newProjectsHandler(t, src)

	press(h, "j", "a")
	fillApplication(h)
	cmd := press(h, "ctrl+s")
	if !h.Submitting {
		t.Fatal("expected the submission to start")
	}
	if h.ApplyForm.Err != "" {
		t.Fatalf("unexpected form error %q", h.ApplyForm.Err)
	}

	msg, ok := submitted(collect(cmd))
	if !ok {
		t.Fatal("expected a submission result")
	}
	h.Update(msg)

	if h.Submitting || h.ApplyForm != nil || h.CurrentView != state.ViewMain {
		t.Error("expected the form to close after submitting")
	}
	if h.Toast == nil || h.Toast.Title != "Application Submitted" || h.Toast.Error {
		t.Errorf("unexpected toast %+v", h.Toast)
	}
	if n := len(src.Submitted(api.EndpointApplications)); n != 1 {
		t.Errorf("expected 1 submission, got %d", n)
	}
}

func TestApplySubmitFailure(t *testing.T) {
	src := api.NewFixtureSource(api.WithLatency(0))
	src.FailNext(api.EndpointApplications, errors.New("connection reset"))
	h := newProjectsHandler(t, src)

	press(h, "a")
	fillApplication(h)
	msg, ok := submitted(collect(press(h, "ctrl+s")))
	if !ok {
		t.Fatal("expected a submission result")
	}
	h.Update(msg)

	want := "Failed to submit application. Please try again later."
	if h.Toast == nil || !h.Toast.Error || h.Toast.Message != want {
		t.Errorf("unexpected toast %+v", h.Toast)
	}
	if h.CurrentView != state.ViewApplyForm || h.ApplyForm == nil {
		t.Fatal("expected the form to stay open for a retry")
	}
	if h.ApplyForm.Err != want || h.Submitting {
		t.Errorf("unexpected form state err=%q submitting=%v", h.ApplyForm.Err, h.Submitting)
	}
}

func TestApplyValidationKeepsFormOpen(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		reason string
	}{
		{"empty form", nil, "Name must be at least 3 characters"},
		{"bad email", []string{"Ada Lovelace", "tab", "ada"}, "Invalid email address"},
		{"no experience", []string{"Ada Lovelace", "tab", "ada@example.edu"}, "Please select your experience level"},
		{"no skill", []string{"Ada Lovelace", "tab", "ada@example.edu", "tab", "1"}, "Select at least one skill"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := api.NewFixtureSource(api.WithLatency(0))
			h := newProjectsHandler(t, src)

			press(h, "a")
			press(h, tt.keys...)
			if cmd := press(h, "ctrl+s"); cmd == nil {
				t.Fatal("expected an error toast command")
			}

			if h.Submitting {
				t.Error("invalid application must not be submitted")
			}
			if h.ApplyForm == nil || h.ApplyForm.Err != tt.reason {
				t.Fatalf("expected reason %q, got %+v", tt.reason, h.ApplyForm)
			}
			if h.Toast == nil || !h.Toast.Error || h.Toast.Message != tt.reason {
				t.Errorf("unexpected toast %+v", h.Toast)
			}
			if n := len(src.Submitted(api.EndpointApplications)); n != 0 {
				t.Errorf("expected nothing posted, got %d", n)
			}
		})
	}
}

func TestApplyEscIgnoredWhileSubmitting(t *testing.T) {
	h := newProjectsHandler(t, nil)
	press(h, "a")
	h.Submitting = true

	press(h, "esc")
	if h.ApplyForm == nil {
		t.Error("expected the form to stay open while submitting")
	}
	if cmd := press(h, "ctrl+s"); cmd != nil {
		t.Error("expected a second submit to be ignored")
	}
}
