// Package mode provides the modal editing states of mote.
//
// There are exactly two modes:
//   - Normal mode: navigation and commands (the initial mode)
//   - Insert mode: literal text entry
//
// # Transitions
//
//	┌─────────┐   i    ┌─────────┐
//	│ Normal  │ ─────▶ │ Insert  │
//	└─────────┘        └─────────┘
//	     ▲       Esc        │
//	     └──────────────────┘
//
// The mode value itself carries no behavior beyond naming and cursor
// style. Which keys are meaningful in each mode is decided by the input
// mapper, and only the dispatcher changes the current mode.
package mode
