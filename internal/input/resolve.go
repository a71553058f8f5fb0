package input

import (
	"github.com/dshills/mote/internal/input/key"
	"github.com/dshills/mote/internal/input/mode"
)

// Resolve maps a key event to an action under the given mode.
// It returns false for keys that have no meaning in that mode.
func Resolve(event key.Event, m mode.Mode) (Action, bool) {
	switch m {
	case mode.Normal:
		return resolveNormal(event)
	case mode.Insert:
		return resolveInsert(event)
	default:
		return Action{}, false
	}
}

func resolveNormal(event key.Event) (Action, bool) {
	if !event.IsRune() || event.IsModified() {
		return Action{}, false
	}

	switch event.Rune {
	case 'q':
		return Quit(), true
	case 'h':
		return MoveLeft(), true
	case 'j':
		return MoveDown(), true
	case 'k':
		return MoveUp(), true
	case 'l':
		return MoveRight(), true
	case 'i':
		return ChangeMode(mode.Insert), true
	default:
		return Action{}, false
	}
}

func resolveInsert(event key.Event) (Action, bool) {
	if event.IsChar() {
		return InsertChar(event.Rune), true
	}

	switch {
	case event.Is(key.KeyEscape):
		return ChangeMode(mode.Normal), true
	case event.Is(key.KeyBackspace):
		return RemoveChar(), true
	case event.Is(key.KeyEnter):
		return NewLine(), true
	default:
		return Action{}, false
	}
}
