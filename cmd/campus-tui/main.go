// Package main is the entry point for the campus hub TUI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/campus-tui/internal/api"
	"github.com/hy4ri/campus-tui/internal/config"
	"github.com/hy4ri/campus-tui/internal/todo"
	"github.com/hy4ri/campus-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `campus-tui - Terminal campus hub: tasks, calendar, courses and projects

USAGE:
    campus-tui [OPTIONS]

OPTIONS:
    -h, --help        Show this help message
    -v, --version     Show version information
    --init            Create a template config file
    --token <token>   Store the bearer token for the configured backend
    --logout          Remove the stored bearer token
    --tasks           Start on the tasks screen (default)
    --calendar        Start on the calendar
    --courses         Start on the course catalogue
    --projects        Start on the project marketplace

CONFIGURATION:
    Config file: ~/.config/campus-tui/config.yaml

    Without a config file the bundled sample data is used. Set data.base_url
    to fetch collections from a backend instead; the bearer token is read from
    CAMPUS_TOKEN, auth.token, the system keyring or the credentials file.

KEYBINDINGS:
    Navigation:
        j/k         Move down/up
        gg/G        Go to top/bottom
        Tab         Next screen
        1-4         Tasks, Calendar, Courses, Projects

    Task Actions:
        a           Add new task
        x           Complete/uncomplete task
        dd          Delete task
        yy          Copy task to clipboard
        f / s       Cycle filter / sort
        m           Pick up task, m again to drop at cursor

    Projects:
        a / Enter   Apply to the selected project
        c           Cycle category

    Other:
        r           Reload
        ?           Show help
        q           Quit
`

const configTemplate = `# Campus TUI Configuration
# Location: ~/.config/campus-tui/config.yaml

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true
  # all, active or completed
  default_filter: all
  # priority, dueDate or manual
  default_sort: priority
  # Go time layout for dates that are not today or tomorrow
  date_format: "1/2/2006"
  # compact or expanded
  calendar_default_view: compact

data:
  # Directory with courses.json, projects.json, events.json and tasks.json.
  # Empty uses the bundled sample data.
  # fixtures_dir: ""
  # Artificial delay for fixture reads
  latency: 500ms
  # Fetch collections from a backend instead of fixtures
  # base_url: "https://campus.example.edu"

# auth:
#   token: ""

notifications:
  # Mirror toasts and due-today reminders to the desktop
  desktop: false
  due_reminders: true

log:
  # Relative paths live next to this file. Empty disables logging.
  file: debug.log
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp     bool
		showVersion  bool
		initConfig   bool
		token        string
		logout       bool
		viewTasks    bool
		viewCalendar bool
		viewCourses  bool
		viewProjects bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&token, "token", "", "Store the backend bearer token")
	flag.BoolVar(&logout, "logout", false, "Remove the stored bearer token")
	flag.BoolVar(&viewTasks, "tasks", false, "Start on the tasks screen")
	flag.BoolVar(&viewCalendar, "calendar", false, "Start on the calendar")
	flag.BoolVar(&viewCourses, "courses", false, "Start on the course catalogue")
	flag.BoolVar(&viewProjects, "projects", false, "Start on the project marketplace")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	switch {
	case showHelp:
		fmt.Print(helpText)
		return nil
	case showVersion:
		fmt.Printf("campus-tui version %s\n", version)
		return nil
	case initConfig:
		return createConfigTemplate()
	case token != "":
		if err := config.SaveToken(token); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		fmt.Println("Token saved.")
		return nil
	case logout:
		if err := config.ClearToken(); err != nil {
			return fmt.Errorf("failed to remove token: %w", err)
		}
		fmt.Println("Token removed.")
		return nil
	}

	initialView := "tasks"
	switch {
	case viewCalendar:
		initialView = "calendar"
	case viewCourses:
		initialView = "courses"
	case viewProjects:
		initialView = "projects"
	}

	return runApp(initialView)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if _, err := config.ConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// openLog opens the debug log, or returns a discarding writer when logging is off.
func openLog(cfg *config.Config) (io.WriteCloser, error) {
	path, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// newSource picks the collection source from the data section of cfg.
func newSource(cfg *config.Config) (api.Source, error) {
	if cfg.UsesRemote() {
		token, err := cfg.GetToken()
		if err != nil {
			return nil, fmt.Errorf("failed to read token: %w", err)
		}
		return api.NewHTTPSource(cfg.Data.BaseURL, token), nil
	}

	latency, err := cfg.Latency()
	if err != nil {
		return nil, err
	}
	opts := []api.FixtureOption{api.WithLatency(latency)}
	if cfg.Data.FixturesDir != "" {
		opts = append(opts, api.WithFixtures(os.DirFS(cfg.Data.FixturesDir)))
	}
	return api.NewFixtureSource(opts...), nil
}

// runApp starts the main TUI application.
func runApp(initialView string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := openLog(cfg)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	flags := log.Ltime | log.Lshortfile
	apiLog := log.New(logFile, "API: ", flags)
	tuiLog := log.New(logFile, "TUI: ", flags)

	source, err := newSource(cfg)
	if err != nil {
		return err
	}

	client := api.NewClient(api.WithSource(source), api.WithLogger(apiLog))
	app := tui.NewApp(client, todo.NewStore(), cfg, initialView, tui.WithLogger(tuiLog))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
