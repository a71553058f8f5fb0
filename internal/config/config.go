package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dshills/mote/internal/config/loader"
	"github.com/dshills/mote/internal/renderer/core"
)

// Config provides access to the merged mote configuration.
// It is populated once at startup and read-only afterwards.
type Config struct {
	fs     loader.FileSystem
	merged map[string]any
	source string
}

// Option configures a Config instance.
type Option func(*Config)

// WithFileSystem sets the file system used to read config files.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// New creates a Config holding only the built-in defaults.
func New(opts ...Option) *Config {
	c := &Config{
		fs:     loader.DefaultFS(),
		merged: defaultConfig(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// DefaultPath returns <user config dir>/mote/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mote", "config.toml"), nil
}

// LoadFile merges the file at path over the current settings.
// A missing file is reported as ErrFileNotFound.
func (c *Config) LoadFile(path string) error {
	l, err := loader.ForPath(c.fs, path)
	if err != nil {
		return err
	}

	data, err := l.Load()
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	if err := c.apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	c.source = path
	return nil
}

// LoadDefault loads the file at DefaultPath if it exists.
// Having no user config directory or no file is not an error.
func (c *Config) LoadDefault() error {
	path, err := DefaultPath()
	if err != nil {
		return nil
	}

	err = c.LoadFile(path)
	if errors.Is(err, ErrFileNotFound) {
		return nil
	}
	return err
}

// LoadMap merges m over the current settings after validating it.
func (c *Config) LoadMap(m map[string]any) error {
	return c.apply(m)
}

func (c *Config) apply(m map[string]any) error {
	if err := validate(m, ""); err != nil {
		return err
	}
	c.merged = loader.DeepMerge(c.merged, loader.Clone(m))
	return nil
}

// Source returns the path of the last file loaded, or "" for defaults only.
func (c *Config) Source() string {
	return c.source
}

// Merged returns a copy of the merged configuration map.
func (c *Config) Merged() map[string]any {
	return loader.Clone(c.merged)
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	return getPath(c.merged, path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

func (c *Config) getStringOr(path, def string) string {
	if s, err := c.GetString(path); err == nil {
		return s
	}
	return def
}

func (c *Config) getBoolOr(path string, def bool) bool {
	if b, err := c.GetBool(path); err == nil {
		return b
	}
	return def
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
		"editor": map[string]any{
			"clamp_movement": false,
		},
		"ui": map[string]any{
			"status_foreground": "",
			"status_background": "",
		},
	}
}

// settingKind selects the validation applied to a setting.
type settingKind uint8

const (
	kindString settingKind = iota
	kindBool
	kindLogLevel
	kindColor
)

// settings lists every recognized setting path.
var settings = map[string]settingKind{
	"logging.level":         kindLogLevel,
	"logging.file":          kindString,
	"editor.clamp_movement": kindBool,
	"ui.status_foreground":  kindColor,
	"ui.status_background":  kindColor,
}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// validate walks m and checks every leaf against settings.
// Keys are visited in sorted order so the first error is deterministic.
func validate(m map[string]any, prefix string) error {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		v := m[key]

		if kind, ok := settings[path]; ok {
			if err := validateValue(path, kind, v); err != nil {
				return err
			}
			continue
		}

		if sub, ok := v.(map[string]any); ok && isSection(path) {
			if err := validate(sub, path); err != nil {
				return err
			}
			continue
		}

		return &ValidationError{Path: path, Problem: ProblemUnknownKey, Value: v}
	}
	return nil
}

func validateValue(path string, kind settingKind, v any) error {
	if kind == kindBool {
		if _, ok := v.(bool); !ok {
			return &ValidationError{Path: path, Problem: ProblemWrongType, Value: typeName(v), Want: "bool"}
		}
		return nil
	}

	s, ok := v.(string)
	if !ok {
		return &ValidationError{Path: path, Problem: ProblemWrongType, Value: typeName(v), Want: "string"}
	}

	switch kind {
	case kindLogLevel:
		if !slices.Contains(logLevels, strings.ToLower(s)) {
			return &ValidationError{Path: path, Problem: ProblemNotInSet, Value: s, Want: "debug, info, warn or error"}
		}
	case kindColor:
		if _, err := core.ColorFromHex(s); err != nil {
			return &ValidationError{Path: path, Problem: ProblemBadColor, Value: s, Want: "a hex color like #1e1e2e"}
		}
	}
	return nil
}

// isSection reports whether path is a prefix of some setting.
func isSection(path string) bool {
	for name := range settings {
		if strings.HasPrefix(name, path+".") {
			return true
		}
	}
	return false
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	if path == "" {
		return nil, false
	}

	current := any(m)
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = cm[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
