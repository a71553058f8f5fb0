// Package config provides the configuration system for mote.
//
// Configuration is organized in two layers, the file overriding defaults:
//
//	┌─────────────────────────────┐
//	│  2. Config File             │  ← ~/.config/mote/config.toml or -config
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Files are TOML or JSON, selected by extension. Every key is validated
// when loaded; an invalid value is reported with its dotted path.
//
// # Settings
//
//	logging.level          debug | info | warn | error (default info)
//	logging.file           log file path (default: logs discarded)
//	editor.clamp_movement  clamp the cursor to the buffer after moves (default false)
//	ui.status_foreground   status line foreground, hex color (default terminal)
//	ui.status_background   status line background, hex color (default terminal)
//
// # Sub-packages
//
//   - loader: Configuration file loading (TOML, JSON)
package config
