package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, "info", "json").With("run_id", "r1")
	log.Debug("hidden")
	log.Info("feed written", "products", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON log line: %v", err)
	}

	if entry["msg"] != "feed written" || entry["run_id"] != "r1" || entry["products"] != float64(3) {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestLogger_SetLevelAffectsChildren(t *testing.T) {
	var buf bytes.Buffer

	parent := New(&buf, "error", "text")
	child := parent.With("component", "encoder")

	child.Info("before")
	parent.SetLevel("debug")
	child.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("info logged at error level: %q", out)
	}

	if !strings.Contains(out, "after") || !strings.Contains(out, "component=encoder") {
		t.Errorf("debug line missing after SetLevel: %q", out)
	}
}
