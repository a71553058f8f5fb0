package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/mote/internal/config"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"Warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestNewLogger_DefaultOutput(t *testing.T) {
	logger := NewLogger(LoggerConfig{})
	if logger.output == nil {
		t.Error("expected default output to be set")
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf, Prefix: "mote"})
	logger.now = fixedClock

	logger.Info("opened %s", "notes.txt")

	want := "2024-03-01T12:30:45.000 [INFO] mote: opened notes.txt\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	out := buf.String()
	if strings.Contains(out, "[DEBUG]") || strings.Contains(out, "[INFO]") {
		t.Errorf("messages below warn were written: %q", out)
	}
	if !strings.Contains(out, "[WARN] warn") || !strings.Contains(out, "[ERROR] error") {
		t.Errorf("expected warn and error lines, got %q", out)
	}
}

func TestLogger_FieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})
	logger.now = fixedClock

	logger.WithFields(map[string]any{"zeta": 1, "alpha": "a"}).
		WithComponent("renderer").
		Info("frame")

	want := "2024-03-01T12:30:45.000 [INFO] frame {alpha=a, component=renderer, zeta=1}\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestLogger_WithFieldDoesNotModifyParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})
	_ = parent.WithField("session", "abc")

	parent.Info("plain")
	if strings.Contains(buf.String(), "session") {
		t.Errorf("parent logger gained a field: %q", buf.String())
	}
}

func TestLogger_Enabled(t *testing.T) {
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo})
	if logger.Enabled(LogLevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	if !logger.Enabled(LogLevelError) {
		t.Error("error should be enabled at info level")
	}
	if NullLogger.Enabled(LogLevelError) {
		t.Error("NullLogger should be disabled")
	}
}

func TestNullLogger(t *testing.T) {
	// Must not panic.
	NullLogger.Info("test")
	NullLogger.WithField("k", "v").Error("test")
}

func TestOpenLogger_Discard(t *testing.T) {
	logger, closer, err := OpenLogger(config.LoggingConfig{Level: "debug"})
	if err != nil {
		t.Fatalf("OpenLogger() error = %v", err)
	}
	defer closer.Close()

	if logger.Level() != LogLevelDebug {
		t.Errorf("Level() = %v, want DEBUG", logger.Level())
	}
}

func TestOpenLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mote.log")

	logger, closer, err := OpenLogger(config.LoggingConfig{Level: "info", File: path})
	if err != nil {
		t.Fatalf("OpenLogger() error = %v", err)
	}
	logger.Info("first")
	logger.Debug("hidden")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[INFO] mote: first") {
		t.Errorf("log file = %q", data)
	}
	if strings.Contains(string(data), "hidden") {
		t.Errorf("debug line written at info level: %q", data)
	}
}

func TestOpenLogger_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "mote.log")

	_, _, err := OpenLogger(config.LoggingConfig{File: path})
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *OperationError, got %v", err)
	}
	if opErr.Target != path {
		t.Errorf("Target = %q, want %q", opErr.Target, path)
	}
}
