// Package handler defines the outcome reported for every dispatched action.
package handler

// ResultStatus indicates the outcome of an action.
type ResultStatus uint8

const (
	// StatusOK indicates the action changed editor state.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the action had no effect, either because it was
	// out of range or because there was nothing to change.
	StatusNoOp
	// StatusQuit indicates the host loop should stop.
	StatusQuit
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Result represents the outcome of handling an action.
type Result struct {
	// Status indicates the result status.
	Status ResultStatus

	// Edited is true when buffer content changed.
	Edited bool

	// ModeChanged is true when the current mode changed.
	ModeChanged bool

	// Message is an optional description, used for logging no-ops.
	Message string
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsNoOp returns true if the action had no effect.
func (r Result) IsNoOp() bool {
	return r.Status == StatusNoOp
}

// IsQuit returns true if the host loop should stop.
func (r Result) IsQuit() bool {
	return r.Status == StatusQuit
}

// Success creates a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// Edit creates a successful result for a buffer modification.
func Edit() Result {
	return Result{Status: StatusOK, Edited: true}
}

// ModeChange creates a successful result for a mode transition.
func ModeChange() Result {
	return Result{Status: StatusOK, ModeChanged: true}
}

// NoOp creates a no-operation result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// NoOpWithMessage creates a no-operation result with a message.
func NoOpWithMessage(msg string) Result {
	return Result{Status: StatusNoOp, Message: msg}
}

// Quit creates a result asking the host loop to stop.
func Quit() Result {
	return Result{Status: StatusQuit}
}
