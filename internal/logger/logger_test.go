package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInit(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	var buf bytes.Buffer
	Init(slog.LevelWarn, &buf)

	Info("hidden message")
	Warn("visible message", "module", "test")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Error("Info message should be filtered at warn level")
	}
	if !strings.Contains(out, "visible message") {
		t.Errorf("Expected warn message in output, got %q", out)
	}
	if !strings.Contains(out, "level=warn") {
		t.Errorf("Expected lower-case level attribute, got %q", out)
	}
	if !strings.Contains(out, "module=test") {
		t.Errorf("Expected module attribute, got %q", out)
	}
}
