package state

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyStateSequences(t *testing.T) {
	tests := []struct {
		name    string
		vim     bool
		keys    []string
		actions []string
	}{
		{"gg goes to top", true, []string{"g", "g"}, []string{"", "top"}},
		{"dd deletes", true, []string{"d", "d"}, []string{"", "delete"}},
		{"yy copies", true, []string{"y", "y"}, []string{"", "copy"}},
		{"broken sequence falls through", true, []string{"d", "j"}, []string{"", "down"}},
		{"vim motions", true, []string{"j", "k", "G"}, []string{"down", "up", "bottom"}},
		{"vim off ignores hjkl", false, []string{"j", "g"}, []string{"", ""}},
		{"vim off keeps dd", false, []string{"d", "d"}, []string{"", "delete"}},
		{"task actions", true, []string{"a", "x", "f", "s", "m"}, []string{"add", "complete", "filter", "sort", "move"}},
		{"tab shortcuts", true, []string{"1", "2", "3", "4"}, []string{"tab_tasks", "tab_calendar", "tab_courses", "tab_projects"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks := &KeyState{}
			km := DefaultKeymap(tt.vim)
			for i, k := range tt.keys {
				action, _ := ks.HandleKey(keyMsg(k), km)
				if action != tt.actions[i] {
					t.Errorf("key %d (%q): expected %q, got %q", i, k, tt.actions[i], action)
				}
			}
		})
	}
}

func TestKeyStateSpecialKeys(t *testing.T) {
	ks := &KeyState{}
	km := DefaultKeymap(true)

	cases := map[tea.KeyType]string{
		tea.KeySpace:    "complete",
		tea.KeyEsc:      "back",
		tea.KeyTab:      "next_tab",
		tea.KeyShiftTab: "prev_tab",
		tea.KeyHome:     "top",
		tea.KeyEnd:      "bottom",
		tea.KeyCtrlC:    "quit",
	}
	for typ, want := range cases {
		msg := tea.KeyMsg{Type: typ}
		if got, _ := ks.HandleKey(msg, km); got != want {
			t.Errorf("%s: expected %q, got %q", msg.String(), want, got)
		}
	}
}

func TestKeyStateReset(t *testing.T) {
	ks := &KeyState{}
	km := DefaultKeymap(true)
	ks.HandleKey(keyMsg("d"), km)
	ks.Reset()
	if action, _ := ks.HandleKey(keyMsg("d"), km); action != "" {
		t.Errorf("expected a fresh sequence after reset, got %q", action)
	}
}

func TestNextCategory(t *testing.T) {
	cats := []string{"design", "mathematics"}
	steps := []string{"design", "mathematics", "", "design"}
	current := ""
	for _, want := range steps {
		current = NextCategory(current, cats)
		if current != want {
			t.Fatalf("expected %q, got %q", want, current)
		}
	}
	if got := NextCategory("", nil); got != "" {
		t.Errorf("expected empty category with no data, got %q", got)
	}
}

func TestHelpSectionsVimEntries(t *testing.T) {
	has := func(km KeymapData, keys string) bool {
		for _, s := range km.HelpSections() {
			for _, e := range s.Entries {
				if e.Keys == keys {
					return true
				}
			}
		}
		return false
	}

	if !has(DefaultKeymap(true), "k/j") {
		t.Error("expected vim motions in help when vim mode is on")
	}
	if has(DefaultKeymap(false), "k/j") {
		t.Error("expected no vim motions in help when vim mode is off")
	}
	if !has(DefaultKeymap(false), "dd") {
		t.Error("expected dd in help")
	}
}
