package app

import (
	"errors"
	"fmt"
)

var (
	// ErrQuit ends the editing loop and leads to the save prompt.
	ErrQuit = errors.New("quit requested")

	ErrNoFile         = errors.New("no file given")
	ErrNotUTF8        = errors.New("file is not valid UTF-8")
	ErrNotTerminal    = errors.New("standard input is not a terminal")
	ErrInterrupted    = errors.New("interrupted")
	ErrBackendClosed  = errors.New("backend closed")
	ErrAlreadyRunning = errors.New("application already running")
)

// OperationError reports a failed file operation, e.g. "save notes.txt".
type OperationError struct {
	Op     string
	Target string
	Err    error
}

func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg += " " + e.Target
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ComponentError reports a failure inside the backend or renderer.
type ComponentError struct {
	Component string
	Action    string
	Err       error
}

func NewComponentError(component, action string, err error) *ComponentError {
	return &ComponentError{Component: component, Action: action, Err: err}
}

func (e *ComponentError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Component
	if e.Action != "" {
		msg += ": " + e.Action
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ComponentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RecoveredPanicError carries a panic out of the event loop.
// Error includes the stack, so it belongs in the log file. Summary is the
// one line printed on stderr.
type RecoveredPanicError struct {
	Value any
	Stack string
}

func NewRecoveredPanicError(value any, stack string) *RecoveredPanicError {
	return &RecoveredPanicError{Value: value, Stack: stack}
}

func (e *RecoveredPanicError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stack == "" {
		return e.Summary()
	}
	return e.Summary() + "\n" + e.Stack
}

func (e *RecoveredPanicError) Summary() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("panic: %v", e.Value)
}
