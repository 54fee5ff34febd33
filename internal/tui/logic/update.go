package logic

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/campus-tui/internal/tui/state"
)

// Handler implements the update half of the application over the shared state.
type Handler struct {
	*state.State
}

// NewHandler creates a handler for s.
func NewHandler(s *state.State) *Handler {
	return &Handler{State: s}
}

// Update applies msg to the state and returns the follow-up command.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return h.handleWindowSizeMsg(msg)

	case spinner.TickMsg:
		if !h.LoadingTasks && !h.LoadingCatalog && !h.Submitting {
			return nil
		}
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case checkDueMsg:
		return h.handleCheckDue(time.Time(msg))

	case tasksLoadedMsg:
		return h.handleTasksLoaded(msg)

	case catalogLoadedMsg:
		return h.handleCatalogLoaded(msg)

	case applicationSubmittedMsg:
		return h.handleApplicationSubmitted(msg)

	case toastExpiredMsg:
		if h.Toast != nil && h.Toast.ID == msg.id {
			h.Toast = nil
		}
		return nil

	case clipboardMsg:
		if msg.err != nil {
			h.Logger.Printf("clipboard: %v", msg.err)
			h.StatusMsg = "Failed to copy: " + msg.err.Error()
			return nil
		}
		h.StatusMsg = "Copied to clipboard"
		return nil
	}

	if h.CurrentView == state.ViewTaskForm && h.TaskForm != nil {
		cmd, _ := h.TaskForm.Update(msg)
		return cmd
	}
	if h.CurrentView == state.ViewApplyForm && h.ApplyForm != nil {
		cmd, _ := h.ApplyForm.Update(msg)
		return cmd
	}
	return nil
}

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	switch h.CurrentView {
	case state.ViewTaskForm:
		return h.handleFormKey(msg)
	case state.ViewApplyForm:
		return h.handleApplyKey(msg)
	case state.ViewHelp:
		switch msg.String() {
		case "esc", "?", "q":
			h.CurrentView = state.ViewMain
		}
		return nil
	}

	action, ok := h.KeyState.HandleKey(msg, h.Keymap)
	if !ok || action == "" {
		return nil
	}

	switch action {
	case "quit":
		return tea.Quit
	case "help":
		h.HelpComp.SetSections(h.Keymap.HelpSections())
		h.CurrentView = state.ViewHelp
		return nil
	case "next_tab":
		h.switchTab((h.CurrentTab + 1) % tabCount)
		return nil
	case "prev_tab":
		h.switchTab((h.CurrentTab + tabCount - 1) % tabCount)
		return nil
	case "tab_tasks":
		h.switchTab(state.TabTasks)
		return nil
	case "tab_calendar":
		h.switchTab(state.TabCalendar)
		return nil
	case "tab_courses":
		h.switchTab(state.TabCourses)
		return nil
	case "tab_projects":
		h.switchTab(state.TabProjects)
		return nil
	case "refresh":
		return h.refresh()
	}

	switch h.CurrentTab {
	case state.TabTasks:
		return h.handleTasksAction(action)
	case state.TabCalendar:
		return h.handleCalendarAction(action, msg)
	case state.TabCourses:
		return h.handleCoursesAction(action)
	case state.TabProjects:
		return h.handleProjectsAction(action)
	}
	return nil
}

const tabCount = state.TabProjects + 1

func (h *Handler) switchTab(tab state.Tab) {
	if tab == h.CurrentTab {
		return
	}
	h.CurrentTab = tab
	h.KeyState.Reset()
	h.Drag.Cancel()
	h.StatusMsg = ""
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	h.Width = msg.Width
	h.Height = msg.Height

	// Tab bar, header, status bar and borders.
	vpHeight := max(5, msg.Height-8)
	vpWidth := max(20, msg.Width-4)
	if !h.ViewportReady {
		h.TaskViewport = viewport.New(vpWidth, vpHeight)
		h.TaskViewport.Style = lipgloss.NewStyle()
		h.ViewportReady = true
	} else {
		h.TaskViewport.Width = vpWidth
		h.TaskViewport.Height = vpHeight
	}

	h.HelpComp.SetSize(msg.Width, msg.Height)
	h.Calendar.SetSize(vpWidth, vpHeight)
	if h.ApplyForm != nil {
		h.ApplyForm.SetWidth(min(60, vpWidth-4))
	}
	if h.TaskForm != nil {
		h.TaskForm.SetWidth(min(60, vpWidth-4))
	}
	return nil
}
