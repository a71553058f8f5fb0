package config

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned by LoadFile when the path does not exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrSettingNotFound is returned by the typed getters for unset paths.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrTypeMismatch matches both ValidationError and TypeError when a
	// value has the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidSetting matches every ValidationError.
	ErrInvalidSetting = errors.New("invalid setting")
)

// Problem says what was wrong with a rejected setting.
type Problem uint8

const (
	ProblemUnknownKey Problem = iota
	ProblemWrongType
	ProblemNotInSet
	ProblemBadColor
)

func (p Problem) String() string {
	switch p {
	case ProblemUnknownKey:
		return "unknown key"
	case ProblemWrongType:
		return "wrong type"
	case ProblemNotInSet:
		return "not allowed"
	case ProblemBadColor:
		return "bad color"
	default:
		return fmt.Sprintf("Problem(%d)", uint8(p))
	}
}

// ValidationError rejects one value from a config file. Path is the dotted
// setting name, e.g. "logging.level". Want describes the accepted values and
// is empty for unknown keys.
type ValidationError struct {
	Path    string
	Problem Problem
	Value   any
	Want    string
}

func (e *ValidationError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Problem)
	}
	return fmt.Sprintf("%s: %s %v, want %s", e.Path, e.Problem, e.Value, e.Want)
}

func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrInvalidSetting:
		return true
	case ErrTypeMismatch:
		return e.Problem == ProblemWrongType
	}
	return false
}

// TypeError is returned by GetString and GetBool.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s is a %s, not a %s", e.Path, e.Actual, e.Expected)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}
