package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "matwork.log")
	logger, closer, err := New(path, "debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("phase change", "phase", "rest(0)")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "phase=rest(0)") {
		t.Fatalf("log file = %q, want the debug record", data)
	}
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := New("", "info")
	if err != nil || logger == nil || closer == nil {
		t.Fatalf("New(\"\") = %v, %v, %v", logger, closer, err)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := Discard()
	ctx := ContextWithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Fatal("expected the attached logger")
	}
	if FromContext(context.Background()) == nil {
		t.Fatal("expected a fallback logger")
	}
}
