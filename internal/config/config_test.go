package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const validYAML = `
data_dir: "/tmp/matwork-test"
database: "sessions.db"
log:
  level: "debug"
  file: "/var/log/matwork.log"
player:
  tick_interval: "500ms"
  autostart: false
presets:
  include_test: true
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataDir != "/tmp/matwork-test" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
	if got := cfg.DatabasePath(); got != filepath.Join("/tmp/matwork-test", "sessions.db") {
		t.Errorf("database path = %q", got)
	}
	if got := cfg.LogPath(); got != "/var/log/matwork.log" {
		t.Errorf("log path = %q, want absolute path kept", got)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Player.TickInterval.Std() != 500*time.Millisecond {
		t.Errorf("tick_interval = %v, want 500ms", cfg.Player.TickInterval.Std())
	}
	if cfg.Player.Autostart {
		t.Error("autostart should be false")
	}
	if !cfg.Presets.IncludeTest {
		t.Error("include_test should be true")
	}
}

// TestLoadMissingFile verifies that defaults apply when no file exists.
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database != "matwork.db" || cfg.Log.Level != "info" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Player.TickInterval.Std() != time.Second || !cfg.Player.Autostart {
		t.Errorf("player defaults not applied: %+v", cfg.Player)
	}
}

// TestEnvOverride verifies that MATWORK_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("MATWORK_DATA_DIR", "/srv/matwork")
	t.Setenv("MATWORK_LOG_LEVEL", "warn")
	t.Setenv("MATWORK_TICK_INTERVAL", "2s")
	t.Setenv("MATWORK_ENV", "production")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataDir != "/srv/matwork" {
		t.Errorf("data_dir = %q, want /srv/matwork", cfg.DataDir)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Player.TickInterval.Std() != 2*time.Second {
		t.Errorf("tick_interval = %v, want 2s", cfg.Player.TickInterval.Std())
	}
	if cfg.Presets.IncludeTest {
		t.Error("MATWORK_ENV=production should disable the test preset")
	}
}

func TestAutostartOverride(t *testing.T) {
	t.Setenv("MATWORK_AUTOSTART", "true")
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Player.Autostart {
		t.Error("MATWORK_AUTOSTART=true should override autostart: false from the file")
	}
}

func TestInvalidEnvOverride(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		value   string
		wantErr string
	}{
		{"bad tick interval", "MATWORK_TICK_INTERVAL", "soon", "MATWORK_TICK_INTERVAL"},
		{"bad autostart", "MATWORK_AUTOSTART", "sometimes", "MATWORK_AUTOSTART"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := Load(writeTemp(t, validYAML))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"zero interval", "player:\n  tick_interval: 0s\n", "tick_interval"},
		{"empty database", "database: \"\"\n", "database is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTemp(t, tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestInvalidYAML(t *testing.T) {
	if _, err := Load(writeTemp(t, "player:\n  tick_interval: soon\n")); err == nil {
		t.Fatal("expected parse error for bad duration")
	}
	if _, err := Load(writeTemp(t, ":\n\t- not yaml")); err == nil {
		t.Fatal("expected parse error")
	}
}
