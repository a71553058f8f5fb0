package dispatcher

import (
	"github.com/dshills/mote/internal/dispatcher/handler"
)

// insertChar inserts ch at the cursor and advances the cursor.
func (d *Dispatcher) insertChar(ch rune) handler.Result {
	c := &d.state.Cursor
	if err := d.state.Buffer.InsertRune(c.Row, c.Column, ch); err != nil {
		return handler.NoOpWithMessage(err.Error())
	}
	c.MoveRight()
	return handler.Edit()
}

// removeChar deletes the character before the cursor. At column 0 it joins
// the current line onto the previous one and moves the cursor to the join point.
func (d *Dispatcher) removeChar() handler.Result {
	c := &d.state.Cursor
	buf := d.state.Buffer

	if c.Column == 0 {
		if c.Row == 0 {
			return handler.NoOpWithMessage("start of buffer")
		}
		joinAt, err := buf.JoinLine(c.Row)
		if err != nil {
			return handler.NoOpWithMessage(err.Error())
		}
		c.MoveUp()
		c.Column = joinAt
		return handler.Edit()
	}

	if !buf.HasLine(c.Row) {
		return handler.NoOpWithMessage("row out of range")
	}
	if c.Column > buf.LineLen(c.Row) {
		return handler.NoOpWithMessage("column out of range")
	}

	c.MoveLeft()
	if _, err := buf.DeleteRune(c.Row, c.Column); err != nil {
		c.MoveRight()
		return handler.NoOpWithMessage(err.Error())
	}
	return handler.Edit()
}

// newLine splits the current line at the cursor and moves to the start of
// the second fragment.
func (d *Dispatcher) newLine() handler.Result {
	c := &d.state.Cursor
	if err := d.state.Buffer.SplitLine(c.Row, c.Column); err != nil {
		return handler.NoOpWithMessage(err.Error())
	}
	c.Column = 0
	c.MoveDown()
	return handler.Edit()
}
