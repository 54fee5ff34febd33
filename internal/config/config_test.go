package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zalando/go-keyring"

	"github.com/hy4ri/campus-tui/internal/todo"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.UI.VimMode {
		t.Error("expected vim mode on by default")
	}
	if cfg.FilterMode() != todo.FilterAll || cfg.SortKey() != todo.SortPriority {
		t.Errorf("unexpected defaults: %s %s", cfg.FilterMode(), cfg.SortKey())
	}
	if cfg.DateFormat() != todo.DefaultDateFormat {
		t.Errorf("unexpected date format %q", cfg.DateFormat())
	}
	if d, _ := cfg.Latency(); d != 500*time.Millisecond {
		t.Errorf("expected 500ms latency, got %v", d)
	}
	if cfg.Notifications.Desktop || !cfg.Notifications.DueReminders {
		t.Errorf("unexpected notification defaults: %+v", cfg.Notifications)
	}
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "overrides",
			content: `
ui:
  vim_mode: false
  default_filter: active
  default_sort: manual
  date_format: "Jan 2"
data:
  latency: 0s
notifications:
  desktop: true
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.UI.VimMode {
					t.Error("expected vim mode off")
				}
				if cfg.FilterMode() != todo.FilterActive {
					t.Errorf("expected active, got %s", cfg.FilterMode())
				}
				if cfg.SortKey() != todo.SortManual {
					t.Errorf("expected manual, got %s", cfg.SortKey())
				}
				if cfg.DateFormat() != "Jan 2" {
					t.Errorf("unexpected date format %q", cfg.DateFormat())
				}
				if d, _ := cfg.Latency(); d != 0 {
					t.Errorf("expected no latency, got %v", d)
				}
				// Unset keys keep their defaults.
				if !cfg.Notifications.DueReminders {
					t.Error("expected due reminders to stay on")
				}
			},
		},
		{
			name:    "unknown filter",
			content: "ui:\n  default_filter: starred\n",
			wantErr: "ui.default_filter",
		},
		{
			name:    "unknown sort",
			content: "ui:\n  default_sort: alphabetical\n",
			wantErr: "ui.default_sort",
		},
		{
			name:    "bad latency",
			content: "data:\n  latency: soon\n",
			wantErr: "data.latency",
		},
		{
			name:    "negative latency",
			content: "data:\n  latency: -1s\n",
			wantErr: "data.latency",
		},
		{
			name:    "bad calendar view",
			content: "ui:\n  calendar_default_view: weekly\n",
			wantErr: "calendar_default_view",
		},
		{
			name:    "both sources",
			content: "data:\n  base_url: http://localhost:8080\n  fixtures_dir: /tmp/fx\n",
			wantErr: "mutually exclusive",
		},
		{
			name:    "malformed yaml",
			content: "ui: [",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFile(writeConfig(t, tt.content))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Data.BaseURL = "http://localhost:8080"

	if err := SaveFile(path, cfg); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600, got %o", perm)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !loaded.UsesRemote() {
		t.Error("expected remote backend")
	}
}

func TestLogPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Log.File = ""
	if p, err := cfg.LogPath(); err != nil || p != "" {
		t.Errorf("expected logging off, got %q %v", p, err)
	}

	cfg.Log.File = "/var/tmp/campus.log"
	if p, _ := cfg.LogPath(); p != "/var/tmp/campus.log" {
		t.Errorf("unexpected absolute path %q", p)
	}

	cfg.Log.File = "debug.log"
	p, err := cfg.LogPath()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(p, filepath.Join(".config", AppName, "debug.log")) {
		t.Errorf("unexpected relative path %q", p)
	}
}

func TestGetToken(t *testing.T) {
	keyring.MockInit()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv(TokenEnv, "")

	cfg := DefaultConfig()
	if token, err := cfg.GetToken(); err != nil || token != "" {
		t.Fatalf("expected no token, got %q %v", token, err)
	}

	if err := SaveToken("  stored  "); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	if token, _ := cfg.GetToken(); token != "stored" {
		t.Errorf("expected keyring token, got %q", token)
	}

	cfg.Auth.Token = "from-config"
	if token, _ := cfg.GetToken(); token != "from-config" {
		t.Errorf("expected config token, got %q", token)
	}

	t.Setenv(TokenEnv, "from-env")
	if token, _ := cfg.GetToken(); token != "from-env" {
		t.Errorf("expected env token, got %q", token)
	}

	t.Setenv(TokenEnv, "")
	cfg.Auth.Token = ""
	if err := ClearToken(); err != nil {
		t.Fatalf("ClearToken: %v", err)
	}
	if token, _ := cfg.GetToken(); token != "" {
		t.Errorf("expected token cleared, got %q", token)
	}
}

func TestSaveTokenEmpty(t *testing.T) {
	if err := SaveToken("   "); err == nil {
		t.Error("expected error for empty token")
	}
}
