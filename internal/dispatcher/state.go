package dispatcher

import (
	"github.com/dshills/mote/internal/engine/buffer"
	"github.com/dshills/mote/internal/engine/cursor"
	"github.com/dshills/mote/internal/input/mode"
)

// State is the editor state mutated by actions.
type State struct {
	Cursor cursor.Cursor
	Buffer *buffer.Buffer
	Mode   mode.Mode
}

// NewState creates the initial state for buf: cursor at (0, 0), normal mode.
// A nil buffer is replaced by an empty one.
func NewState(buf *buffer.Buffer) State {
	if buf == nil {
		buf = buffer.NewBuffer()
	}
	return State{Buffer: buf, Mode: mode.Normal}
}

// CursorInBounds reports whether the cursor addresses a line and a column
// in [0, LineLen(row)].
func (s *State) CursorInBounds() bool {
	if !s.Buffer.HasLine(s.Cursor.Row) {
		return false
	}
	return s.Cursor.Column >= 0 && s.Cursor.Column <= s.Buffer.LineLen(s.Cursor.Row)
}
