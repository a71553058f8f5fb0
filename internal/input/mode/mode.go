package mode

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mode is the modal-editing state governing how key events are interpreted.
type Mode uint8

const (
	// Normal is the navigation mode. It is the zero value.
	Normal Mode = iota

	// Insert is the text entry mode.
	Insert
)

// Standard mode names.
const (
	NameNormal = "normal"
	NameInsert = "insert"
)

var titleCaser = cases.Title(language.English)

// Name returns the mode identifier ("normal" or "insert").
func (m Mode) Name() string {
	switch m {
	case Normal:
		return NameNormal
	case Insert:
		return NameInsert
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// DisplayName returns the name shown on the status line ("Normal" or "Insert").
func (m Mode) DisplayName() string {
	return titleCaser.String(m.Name())
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return m.DisplayName()
}

// Valid returns true if m is one of the defined modes.
func (m Mode) Valid() bool {
	return m == Normal || m == Insert
}

// CursorStyle returns the cursor style for this mode.
func (m Mode) CursorStyle() CursorStyle {
	if m == Insert {
		return CursorBar
	}
	return CursorBlock
}

// Parse returns the mode with the given name.
func Parse(name string) (Mode, error) {
	switch name {
	case NameNormal:
		return Normal, nil
	case NameInsert:
		return Insert, nil
	default:
		return Normal, fmt.Errorf("unknown mode %q", name)
	}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	default:
		return "unknown"
	}
}
