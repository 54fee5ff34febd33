// Package tui provides the terminal user interface for the campus hub.
package tui

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/hy4ri/campus-tui/internal/api"
	"github.com/hy4ri/campus-tui/internal/config"
	"github.com/hy4ri/campus-tui/internal/todo"
	"github.com/hy4ri/campus-tui/internal/tui/logic"
	"github.com/hy4ri/campus-tui/internal/tui/state"
	"github.com/hy4ri/campus-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// Option configures an App.
type Option func(*state.State)

// WithLogger sets the logger for UI events.
func WithLogger(l *log.Logger) Option {
	return func(s *state.State) {
		if l != nil {
			s.Logger = l
		}
	}
}

// WithClock sets the clock used for due labels, reminders and the calendar.
func WithClock(now func() time.Time) Option {
	return func(s *state.State) {
		if now != nil {
			s.Now = now
		}
	}
}

// WithNotifier sets the desktop notification sink.
func WithNotifier(notify func(title, message string) error) Option {
	return func(s *state.State) {
		if notify != nil {
			s.Notify = notify
		}
	}
}

// WithClipboard sets the clipboard writer.
func WithClipboard(copyFn func(text string) error) Option {
	return func(s *state.State) {
		if copyFn != nil {
			s.CopyToClipboard = copyFn
		}
	}
}

// NewApp creates a new App instance starting on initialView
// ("tasks", "calendar", "courses" or "projects").
func NewApp(client *api.Client, store *todo.Store, cfg *config.Config, initialView string, opts ...Option) *App {
	s := state.New(client, store, cfg)
	s.Notify = func(title, message string) error {
		return beeep.Notify(title, message, "")
	}
	s.CopyToClipboard = clipboard.WriteAll
	s.CurrentTab = state.ParseTab(initialView)

	for _, opt := range opts {
		opt(s)
	}
	store.SetClock(s.Now)
	s.Calendar.Today()

	return &App{
		state:    s,
		handler:  logic.NewHandler(s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
