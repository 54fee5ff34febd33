package logic

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/campus-tui/internal/api"
	"github.com/hy4ri/campus-tui/internal/todo"
	"github.com/hy4ri/campus-tui/internal/tui/state"
)

type tasksLoadedMsg struct {
	tasks []todo.Task
	err   error
}

type catalogLoadedMsg struct {
	courses     []api.Course
	projects    []api.Project
	events      []api.Event
	coursesErr  error
	projectsErr error
	eventsErr   error
}

// Init starts the initial loads and the reminder ticker.
func (h *Handler) Init() tea.Cmd {
	h.LoadingTasks = true
	h.LoadingCatalog = true
	return tea.Batch(
		h.Spinner.Tick,
		h.loadTasks(),
		h.loadCatalog(),
		checkDueCmd(),
	)
}

func (h *Handler) loadTasks() tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		tasks, err := client.GetTasks(context.Background())
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

// loadCatalog loads courses, projects and events concurrently.
func (h *Handler) loadCatalog() tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		ctx := context.Background()

		type courseResult struct {
			data []api.Course
			err  error
		}
		type projectResult struct {
			data []api.Project
			err  error
		}
		type eventResult struct {
			data []api.Event
			err  error
		}

		courseChan := make(chan courseResult, 1)
		projChan := make(chan projectResult, 1)
		eventChan := make(chan eventResult, 1)

		go func() {
			c, e := client.GetCourses(ctx)
			courseChan <- courseResult{data: c, err: e}
		}()

		go func() {
			p, e := client.GetProjects(ctx)
			projChan <- projectResult{data: p, err: e}
		}()

		go func() {
			ev, e := client.GetEvents(ctx)
			eventChan <- eventResult{data: ev, err: e}
		}()

		cRes := <-courseChan
		pRes := <-projChan
		eRes := <-eventChan

		return catalogLoadedMsg{
			courses:     cRes.data,
			projects:    pRes.data,
			events:      eRes.data,
			coursesErr:  cRes.err,
			projectsErr: pRes.err,
			eventsErr:   eRes.err,
		}
	}
}

// refresh reloads the data behind the current tab.
func (h *Handler) refresh() tea.Cmd {
	if h.CurrentTab == state.TabTasks {
		if h.LoadingTasks {
			return nil
		}
		h.LoadingTasks = true
		h.Drag.Cancel()
		return tea.Batch(h.Spinner.Tick, h.loadTasks())
	}
	if h.LoadingCatalog {
		return nil
	}
	h.LoadingCatalog = true
	return tea.Batch(h.Spinner.Tick, h.loadCatalog())
}
