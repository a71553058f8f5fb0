// Package key provides key event types for the input system.
//
// This package defines the terminal-independent representation of
// keyboard input:
//
//   - Key: Identifies a keyboard key (special keys or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers
//
// The renderer backend converts terminal events into Event values; the
// input mapper resolves them against the current mode.
package key
