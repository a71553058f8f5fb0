package config

import (
	"strings"

	"github.com/dshills/mote/internal/renderer/core"
)

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration.

// LoggingConfig provides type-safe access to logging settings.
type LoggingConfig struct {
	// Level is the minimum log level, lower-cased.
	Level string

	// File is the log destination. Empty discards log output.
	File string
}

// EditorConfig provides type-safe access to editor settings.
type EditorConfig struct {
	// ClampMovement keeps the cursor inside the buffer after a move.
	ClampMovement bool
}

// UIConfig provides type-safe access to UI settings.
type UIConfig struct {
	StatusForeground core.Color
	StatusBackground core.Color
}

// StatusStyle returns the style used for the status line.
func (u UIConfig) StatusStyle() core.Style {
	return core.DefaultStyle().
		WithForeground(u.StatusForeground).
		WithBackground(u.StatusBackground)
}

// Logging returns type-safe access to logging settings.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: strings.ToLower(c.getStringOr("logging.level", "info")),
		File:  c.getStringOr("logging.file", ""),
	}
}

// Editor returns type-safe access to editor settings.
func (c *Config) Editor() EditorConfig {
	return EditorConfig{
		ClampMovement: c.getBoolOr("editor.clamp_movement", false),
	}
}

// UI returns type-safe access to UI settings.
func (c *Config) UI() UIConfig {
	return UIConfig{
		StatusForeground: c.getColorOr("ui.status_foreground"),
		StatusBackground: c.getColorOr("ui.status_background"),
	}
}

func (c *Config) getColorOr(path string) core.Color {
	col, err := core.ColorFromHex(c.getStringOr(path, ""))
	if err != nil {
		return core.ColorDefault
	}
	return col
}
