package input

import (
	"fmt"

	"github.com/dshills/mote/internal/input/mode"
)

// ActionKind identifies an Action variant.
type ActionKind uint8

const (
	// ActionNone is the zero kind. It is never produced by Resolve.
	ActionNone ActionKind = iota
	// ActionQuit ends the host loop.
	ActionQuit
	// ActionMoveUp moves the cursor one row up.
	ActionMoveUp
	// ActionMoveDown moves the cursor one row down.
	ActionMoveDown
	// ActionMoveLeft moves the cursor one column left.
	ActionMoveLeft
	// ActionMoveRight moves the cursor one column right.
	ActionMoveRight
	// ActionInsertChar inserts Action.Char at the cursor.
	ActionInsertChar
	// ActionRemoveChar removes the character before the cursor,
	// joining with the previous line at column 0.
	ActionRemoveChar
	// ActionNewLine splits the current line at the cursor.
	ActionNewLine
	// ActionChangeMode switches to Action.Mode.
	ActionChangeMode
)

// String returns the action name used in logs (e.g. "cursor.moveUp").
func (k ActionKind) String() string {
	switch k {
	case ActionQuit:
		return "app.quit"
	case ActionMoveUp:
		return "cursor.moveUp"
	case ActionMoveDown:
		return "cursor.moveDown"
	case ActionMoveLeft:
		return "cursor.moveLeft"
	case ActionMoveRight:
		return "cursor.moveRight"
	case ActionInsertChar:
		return "editor.insertChar"
	case ActionRemoveChar:
		return "editor.removeChar"
	case ActionNewLine:
		return "editor.newLine"
	case ActionChangeMode:
		return "mode.change"
	default:
		return "none"
	}
}

// IsEdit returns true if the action can modify buffer content.
func (k ActionKind) IsEdit() bool {
	return k == ActionInsertChar || k == ActionRemoveChar || k == ActionNewLine
}

// Action is a single instruction produced from one key event.
// Only the payload field matching Kind is meaningful.
type Action struct {
	// Kind is the action variant.
	Kind ActionKind

	// Char is the rune to insert for ActionInsertChar.
	Char rune

	// Mode is the target mode for ActionChangeMode.
	Mode mode.Mode
}

// Quit returns a quit action.
func Quit() Action { return Action{Kind: ActionQuit} }

// MoveUp returns a move-up action.
func MoveUp() Action { return Action{Kind: ActionMoveUp} }

// MoveDown returns a move-down action.
func MoveDown() Action { return Action{Kind: ActionMoveDown} }

// MoveLeft returns a move-left action.
func MoveLeft() Action { return Action{Kind: ActionMoveLeft} }

// MoveRight returns a move-right action.
func MoveRight() Action { return Action{Kind: ActionMoveRight} }

// InsertChar returns an action inserting ch.
func InsertChar(ch rune) Action { return Action{Kind: ActionInsertChar, Char: ch} }

// RemoveChar returns a remove-character action.
func RemoveChar() Action { return Action{Kind: ActionRemoveChar} }

// NewLine returns a line-split action.
func NewLine() Action { return Action{Kind: ActionNewLine} }

// ChangeMode returns an action switching to m.
func ChangeMode(m mode.Mode) Action { return Action{Kind: ActionChangeMode, Mode: m} }

// String returns a representation including the payload, for logs.
func (a Action) String() string {
	switch a.Kind {
	case ActionInsertChar:
		return fmt.Sprintf("%s(%q)", a.Kind, a.Char)
	case ActionChangeMode:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Mode.Name())
	default:
		return a.Kind.String()
	}
}
