package dispatcher

import (
	"github.com/dshills/mote/internal/dispatcher/handler"
	"github.com/dshills/mote/internal/engine/cursor"
)

// move applies a cursor movement, clamping afterwards if configured.
func (d *Dispatcher) move(fn func(*cursor.Cursor)) handler.Result {
	before := d.state.Cursor
	fn(&d.state.Cursor)

	if d.config.ClampMovement {
		d.clampCursor()
	}

	if d.state.Cursor.Equals(before) {
		return handler.NoOp()
	}
	return handler.Success()
}

// clampCursor keeps the cursor on an existing line and within [0, len(line)].
// In an empty buffer the cursor is held at (0, 0).
func (d *Dispatcher) clampCursor() {
	buf := d.state.Buffer
	lastRow := buf.LineCount() - 1
	c := d.state.Cursor.Clamp(d.state.Cursor.Column, lastRow)
	d.state.Cursor = c.Clamp(buf.LineLen(c.Row), lastRow)
}
