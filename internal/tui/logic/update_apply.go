package logic

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/campus-tui/internal/api"
	"github.com/hy4ri/campus-tui/internal/tui/state"
)

type applicationSubmittedMsg struct {
	projectID int
	err       error
}

func (h *Handler) openApplyForm() tea.Cmd {
	p, ok := h.SelectedProject()
	if !ok {
		return nil
	}
	h.ApplyForm = state.NewApplicationForm(p)
	if h.Width > 0 {
		h.ApplyForm.SetWidth(min(60, max(20, h.Width-8)))
	}
	h.CurrentView = state.ViewApplyForm
	return textinput.Blink
}

func (h *Handler) closeApplyForm() {
	h.ApplyForm = nil
	h.CurrentView = state.ViewMain
}

func (h *Handler) handleApplyKey(msg tea.KeyMsg) tea.Cmd {
	if h.ApplyForm == nil {
		h.CurrentView = state.ViewMain
		return nil
	}
	if msg.String() == "esc" {
		if !h.Submitting {
			h.closeApplyForm()
		}
		return nil
	}

	cmd, submit := h.ApplyForm.Update(msg)
	if !submit {
		return cmd
	}
	return h.submitApplication()
}

// submitApplication validates locally and posts in the background. A
// rejected form stays open with the reason shown under it.
func (h *Handler) submitApplication() tea.Cmd {
	if h.Submitting {
		return nil
	}
	app := h.ApplyForm.Application()
	if err := app.Validate(); err != nil {
		reason := err.Error()
		if appErr, ok := api.IsApplicationError(err); ok {
			reason = appErr.Reason
		}
		h.ApplyForm.Err = reason
		return h.showError(reason)
	}

	h.ApplyForm.Err = ""
	h.Submitting = true
	client := h.Client
	return tea.Batch(h.Spinner.Tick, func() tea.Msg {
		err := client.SubmitApplication(context.Background(), app)
		return applicationSubmittedMsg{projectID: app.ProjectID, err: err}
	})
}

func (h *Handler) handleApplicationSubmitted(msg applicationSubmittedMsg) tea.Cmd {
	h.Submitting = false
	if msg.err != nil {
		h.Logger.Printf("Error submitting application for project %d: %v", msg.projectID, msg.err)
		const failure = "Failed to submit application. Please try again later."
		if h.ApplyForm != nil {
			h.ApplyForm.Err = failure
		}
		return h.showError(failure)
	}

	h.Logger.Printf("Submitted application for project %d", msg.projectID)
	h.closeApplyForm()
	return h.showToast("Application Submitted", "Your application has been successfully submitted.", false)
}
