package state

import (
	"io"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/hy4ri/campus-tui/internal/api"
	"github.com/hy4ri/campus-tui/internal/config"
	"github.com/hy4ri/campus-tui/internal/todo"
	"github.com/hy4ri/campus-tui/internal/tui/components"
	"github.com/hy4ri/campus-tui/internal/tui/styles"
)

// View represents the current view/screen.
type View int

const (
	ViewMain View = iota
	ViewTaskForm
	ViewApplyForm
	ViewHelp
)

// Tab represents a top-level tab.
type Tab int

const (
	TabTasks Tab = iota
	TabCalendar
	TabCourses
	TabProjects
)

// ParseTab maps a start-up view name to a tab. Unknown names yield TabTasks.
func ParseTab(name string) Tab {
	switch name {
	case "calendar":
		return TabCalendar
	case "courses":
		return TabCourses
	case "projects":
		return TabProjects
	}
	return TabTasks
}

// Toast is a transient notification shown in the status bar.
type Toast struct {
	ID      int
	Title   string
	Message string
	Error   bool
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Client *api.Client
	Config *config.Config
	Store  *todo.Store
	Logger *log.Logger

	// Now is the session clock.
	Now func() time.Time
	// Notify posts a desktop notification.
	Notify func(title, message string) error
	// CopyToClipboard writes text to the system clipboard.
	CopyToClipboard func(text string) error

	// View state
	CurrentView View
	CurrentTab  Tab

	// Task screen
	Filter     todo.FilterMode
	SortKey    todo.SortKey
	Classifier todo.Classifier
	TaskCursor int
	Drag       todo.Drag
	TaskForm   *TaskForm

	// Catalogue data
	Courses         []api.Course
	Projects        []api.Project
	Events          []api.Event
	CourseCursor    int
	ProjectCursor   int
	CourseCategory  string
	ProjectCategory string
	ApplyForm       *ApplicationForm
	Submitting      bool

	// Calendar
	Calendar *components.CalendarModel

	// Loading state
	LoadingTasks   bool
	LoadingCatalog bool
	Err            error

	// UI state
	StatusMsg string
	Toast     *Toast
	NextToast int
	Width     int
	Height    int

	// Components
	Spinner  spinner.Model
	Keymap   KeymapData
	KeyState *KeyState
	HelpComp *components.HelpModel

	// Viewport for the scrollable task list
	TaskViewport  viewport.Model
	ViewportReady bool

	// NotifiedTasks holds the ids already reminded about this session.
	NotifiedTasks map[int]bool
}

// New creates the session state with defaults taken from cfg. Notifications
// and clipboard writes are no-ops until replaced.
func New(client *api.Client, store *todo.Store, cfg *config.Config) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	s := &State{
		Client:          client,
		Config:          cfg,
		Store:           store,
		Logger:          log.New(io.Discard, "", 0),
		Now:             time.Now,
		Notify:          func(string, string) error { return nil },
		CopyToClipboard: func(string) error { return nil },
		CurrentView:     ViewMain,
		CurrentTab:      TabTasks,
		Filter:          cfg.FilterMode(),
		SortKey:         cfg.SortKey(),
		Classifier:      todo.Classifier{DateFormat: cfg.DateFormat()},
		Spinner:         sp,
		Keymap:          DefaultKeymap(cfg.UI.VimMode),
		KeyState:        &KeyState{},
		HelpComp:        components.NewHelp(),
		NotifiedTasks:   make(map[int]bool),
	}
	s.Calendar = components.NewCalendar(func() time.Time { return s.Now() })
	s.Calendar.SetViewMode(components.ParseCalendarViewMode(cfg.UI.CalendarDefaultView))
	return s
}

// VisibleTasks returns the filtered and sorted projection of the store.
func (s *State) VisibleTasks() []todo.Task {
	return todo.View(s.Store.Tasks(), s.Filter, s.SortKey)
}

// SelectedProject returns the project under the cursor.
func (s *State) SelectedProject() (api.Project, bool) {
	projects := s.FilteredProjects()
	if s.ProjectCursor < 0 || s.ProjectCursor >= len(projects) {
		return api.Project{}, false
	}
	return projects[s.ProjectCursor], true
}

// SelectedTask returns the task under the cursor.
func (s *State) SelectedTask() (todo.Task, bool) {
	tasks := s.VisibleTasks()
	if s.TaskCursor < 0 || s.TaskCursor >= len(tasks) {
		return todo.Task{}, false
	}
	return tasks[s.TaskCursor], true
}

// ClampTaskCursor keeps the cursor on a visible row.
func (s *State) ClampTaskCursor() {
	n := len(s.VisibleTasks())
	s.TaskCursor = max(0, min(s.TaskCursor, n-1))
}

// FilteredCourses returns the courses matching the category filter.
func (s *State) FilteredCourses() []api.Course {
	return filterByCategory(s.Courses, s.CourseCategory, func(c api.Course) string { return c.Category })
}

// FilteredProjects returns the projects matching the category filter.
func (s *State) FilteredProjects() []api.Project {
	return filterByCategory(s.Projects, s.ProjectCategory, func(p api.Project) string { return p.Category })
}

func filterByCategory[T any](items []T, category string, get func(T) string) []T {
	if category == "" {
		return items
	}
	var out []T
	for _, item := range items {
		if strings.EqualFold(get(item), category) {
			out = append(out, item)
		}
	}
	return out
}

// NextCategory cycles "" (all) through the categories present in order.
func NextCategory(current string, categories []string) string {
	if current == "" {
		if len(categories) == 0 {
			return ""
		}
		return categories[0]
	}
	for i, c := range categories {
		if strings.EqualFold(c, current) {
			if i+1 < len(categories) {
				return categories[i+1]
			}
			return ""
		}
	}
	return ""
}

// TabInfo holds tab metadata.
type TabInfo struct {
	Tab       Tab
	Icon      string
	Name      string
	ShortName string
}

// GetTabDefinitions returns the tab definitions.
func GetTabDefinitions() []TabInfo {
	return []TabInfo{
		{TabTasks, "[1]", "Tasks", "Tsk"},
		{TabCalendar, "[2]", "Calendar", "Cal"},
		{TabCourses, "[3]", "Courses", "Crs"},
		{TabProjects, "[4]", "Projects", "Prj"},
	}
}
