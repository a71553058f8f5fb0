// Package cursor provides the logical edit point of the editor.
//
// A Cursor is a (Column, Row) pair expressed in buffer coordinates, not
// screen coordinates. The renderer translates it to a terminal position.
//
// Movement follows two rules:
//
//   - MoveUp and MoveLeft saturate at zero and never go negative.
//   - MoveDown and MoveRight increment unconditionally.
//
// The cursor knows nothing about buffer contents. Keeping it inside the
// buffer is the dispatcher's job; Clamp is provided for callers that want
// to enforce bounds after a move.
//
// Thread Safety:
//
// Cursor is a small mutable value. It is owned by a single dispatcher and
// must not be shared between goroutines.
package cursor
