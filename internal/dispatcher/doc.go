// Package dispatcher applies input actions to the editor state.
//
// The Dispatcher owns a State (cursor, buffer, mode) and is the only
// component that mutates it. Each call to Dispatch applies exactly one
// action and reports a handler.Result.
//
// # Boundary rules
//
// A column is valid for a line when it lies in [0, len(line)], so the
// position just past the last character is a normal editing position.
// Edits that reference a row or column outside the buffer are silent
// no-ops: the state is left untouched and the result status is
// handler.StatusNoOp. There is no error channel.
//
// Plain cursor moves are not checked against the buffer unless
// Config.ClampMovement is set; MoveUp and MoveLeft only saturate at zero.
//
// # Hooks
//
// Post-dispatch hooks observe every action after it has been applied.
// The application uses them for logging and for tracking unsaved changes.
//
// Thread Safety:
//
// Dispatcher is not safe for concurrent use. It is driven by the single
// editor goroutine.
package dispatcher
