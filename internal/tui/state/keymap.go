package state

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/campus-tui/internal/tui/components"
)

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key
	Left   Key
	Right  Key

	// Actions
	Select  Key
	Back    Key
	Quit    Key
	Help    Key
	Refresh Key
	NextTab Key
	PrevTab Key

	// Task actions
	AddTask      Key
	DeleteTask   Key
	CompleteTask Key
	CopyTask     Key
	CycleFilter  Key
	CycleSort    Key
	MoveTask     Key

	// Catalogue and calendar
	CycleCategory Key
	CalendarView  Key
	Today         Key
	PrevMonth     Key
	NextMonth     Key

	// VimMode enables hjkl, gg and G.
	VimMode bool
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap(vimMode bool) KeymapData {
	return KeymapData{
		// Navigation
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top (gg)"},
		Bottom: Key{Key: "G", Help: "bottom"},
		Left:   Key{Key: "h", Help: "left"},
		Right:  Key{Key: "l", Help: "right"},

		// Actions
		Select:  Key{Key: "enter", Help: "select"},
		Back:    Key{Key: "esc", Help: "back"},
		Quit:    Key{Key: "q", Help: "quit"},
		Help:    Key{Key: "?", Help: "help"},
		Refresh: Key{Key: "r", Help: "reload"},
		NextTab: Key{Key: "tab", Help: "next screen"},
		PrevTab: Key{Key: "shift+tab", Help: "previous screen"},

		// Task actions
		AddTask:      Key{Key: "a", Help: "add task"},
		DeleteTask:   Key{Key: "d", Help: "delete (dd)"},
		CompleteTask: Key{Key: "x", Help: "complete/uncomplete"},
		CopyTask:     Key{Key: "y", Help: "copy (yy)"},
		CycleFilter:  Key{Key: "f", Help: "cycle filter"},
		CycleSort:    Key{Key: "s", Help: "cycle sort"},
		MoveTask:     Key{Key: "m", Help: "pick up / drop"},

		// Catalogue and calendar
		CycleCategory: Key{Key: "c", Help: "cycle category"},
		CalendarView:  Key{Key: "v", Help: "switch calendar view"},
		Today:         Key{Key: "t", Help: "today"},
		PrevMonth:     Key{Key: "[", Help: "previous month"},
		NextMonth:     Key{Key: "]", Help: "next month"},

		VimMode: vimMode,
	}
}

// KeyState tracks the first key of a doubled sequence (gg, dd, yy).
type KeyState struct {
	Pending string
}

// doubled maps a sequence key to the action its second press triggers.
func doubled(keymap KeymapData) map[string]string {
	seq := map[string]string{
		keymap.DeleteTask.Key: "delete",
		keymap.CopyTask.Key:   "copy",
	}
	if keymap.VimMode {
		seq[keymap.Top.Key] = "top"
	}
	return seq
}

// HandleKey maps a key press to an action name. A key that starts a
// sequence is consumed with an empty action.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap KeymapData) (string, bool) {
	key := msg.String()
	seq := doubled(keymap)

	pending := ks.Pending
	ks.Pending = ""
	if pending != "" && key == pending {
		return seq[key], true
	}
	if _, ok := seq[key]; ok {
		ks.Pending = key
		return "", true
	}

	if keymap.VimMode {
		switch key {
		case keymap.Up.Key:
			return "up", true
		case keymap.Down.Key:
			return "down", true
		case keymap.Left.Key:
			return "left", true
		case keymap.Right.Key:
			return "right", true
		case keymap.Bottom.Key:
			return "bottom", true
		}
	}

	switch key {
	case "up":
		return "up", true
	case "down":
		return "down", true
	case "left":
		return "left", true
	case "right":
		return "right", true
	case "home":
		return "top", true
	case "end":
		return "bottom", true
	case "delete":
		return "delete", true
	case " ", "space":
		return "complete", true
	case "ctrl+c":
		return "quit", true
	case "1":
		return "tab_tasks", true
	case "2":
		return "tab_calendar", true
	case "3":
		return "tab_courses", true
	case "4":
		return "tab_projects", true
	case keymap.Select.Key:
		return "select", true
	case keymap.Back.Key:
		return "back", true
	case keymap.Quit.Key:
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	case keymap.Refresh.Key:
		return "refresh", true
	case keymap.NextTab.Key:
		return "next_tab", true
	case keymap.PrevTab.Key:
		return "prev_tab", true
	case keymap.AddTask.Key:
		return "add", true
	case keymap.CompleteTask.Key:
		return "complete", true
	case keymap.CycleFilter.Key:
		return "filter", true
	case keymap.CycleSort.Key:
		return "sort", true
	case keymap.MoveTask.Key:
		return "move", true
	case keymap.CycleCategory.Key:
		return "category", true
	case keymap.CalendarView.Key:
		return "calendar_view", true
	case keymap.Today.Key:
		return "today", true
	case keymap.PrevMonth.Key:
		return "prev_month", true
	case keymap.NextMonth.Key:
		return "next_month", true
	}

	return "", false
}

// Reset drops a half-typed sequence.
func (ks *KeyState) Reset() {
	ks.Pending = ""
}

// HelpSections describes the bindings for the help screen.
func (k KeymapData) HelpSections() []components.HelpSection {
	nav := []components.HelpEntry{
		{Keys: "↑/↓", Desc: "Move up/down"},
		{Keys: "home/end", Desc: "Go to top/bottom"},
	}
	if k.VimMode {
		nav = append([]components.HelpEntry{
			{Keys: k.Up.Key + "/" + k.Down.Key, Desc: "Move up/down"},
			{Keys: k.Top.Key + k.Top.Key + "/" + k.Bottom.Key, Desc: "Go to top/bottom"},
		}, nav...)
	}
	nav = append(nav,
		components.HelpEntry{Keys: k.NextTab.Key + "/" + k.PrevTab.Key, Desc: "Next/previous screen"},
		components.HelpEntry{Keys: "1-4", Desc: "Tasks, Calendar, Courses, Projects"},
	)

	return []components.HelpSection{
		{Title: "Navigation", Entries: nav},
		{Title: "General", Entries: []components.HelpEntry{
			{Keys: k.Refresh.Key, Desc: "Reload data"},
			{Keys: k.Help.Key, Desc: "Toggle help"},
			{Keys: k.Quit.Key, Desc: "Quit"},
		}},
		{Title: "Task Actions", Entries: []components.HelpEntry{
			{Keys: k.AddTask.Key, Desc: "Add new task"},
			{Keys: k.CompleteTask.Key + "/space", Desc: "Complete/uncomplete task"},
			{Keys: k.DeleteTask.Key + k.DeleteTask.Key, Desc: "Delete task"},
			{Keys: k.CopyTask.Key + k.CopyTask.Key, Desc: "Copy task to clipboard"},
			{Keys: k.CycleFilter.Key, Desc: "Cycle filter (all/active/completed)"},
			{Keys: k.CycleSort.Key, Desc: "Cycle sort (priority/due date/manual)"},
			{Keys: k.MoveTask.Key, Desc: "Pick up task / drop at cursor"},
			{Keys: k.Back.Key, Desc: "Cancel move"},
		}},
		{Title: "Calendar", Entries: []components.HelpEntry{
			{Keys: k.CalendarView.Key, Desc: "Switch calendar view (Compact/Expanded)"},
			{Keys: k.Left.Key + "/" + k.Right.Key, Desc: "Previous/next day"},
			{Keys: k.Down.Key + "/" + k.Up.Key, Desc: "Next/previous week"},
			{Keys: k.PrevMonth.Key + "/" + k.NextMonth.Key, Desc: "Previous/next month"},
			{Keys: k.Today.Key, Desc: "Jump to today"},
		}},
		{Title: "Courses & Projects", Entries: []components.HelpEntry{
			{Keys: k.CycleCategory.Key, Desc: "Cycle category filter"},
			{Keys: k.AddTask.Key + "/" + k.Select.Key, Desc: "Apply to selected project"},
		}},
	}
}
