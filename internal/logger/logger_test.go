package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "text")

	l.Info("hidden")
	l.Warn("shown", "row", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info message logged at warn level: %s", out)
	}

	if !strings.Contains(out, "shown") || !strings.Contains(out, "row=3") {
		t.Errorf("Warn message missing: %s", out)
	}

	l.SetLevel("debug")
	l.Debug("now visible")

	if !strings.Contains(buf.String(), "now visible") {
		t.Error("Debug message missing after SetLevel")
	}
}

func TestLogger_JSONWith(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", "json").With("component", "pipeline")

	l.Info("converted", "documents", 2)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not JSON: %v (%s)", err, buf.String())
	}

	if entry["component"] != "pipeline" {
		t.Errorf("component = %v, want pipeline", entry["component"])
	}

	if entry["documents"] != float64(2) {
		t.Errorf("documents = %v, want 2", entry["documents"])
	}
}
