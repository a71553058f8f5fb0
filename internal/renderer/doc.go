// Package renderer provides the display layer for the mote editor.
//
// The renderer draws one full frame per call:
//   - every buffer line at its own screen row, one rune per column
//   - the status line on the last row
//   - the terminal cursor at the buffer cursor's (column, row)
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Frame)              │
//	├─────────────────────────────────────────┤
//	│  Lines    │ StatusLine │ Cursor/Prompt  │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend (tests) │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	err := r.Render(renderer.Frame{Lines: buf, Cursor: cur, Mode: m})
package renderer
