package cursor

import "fmt"

// Cursor represents an insertion point in the buffer.
type Cursor struct {
	Column int
	Row    int
}

// New creates a cursor at the given position.
// Negative coordinates are clamped to 0.
func New(column, row int) Cursor {
	return Cursor{Column: max(column, 0), Row: max(row, 0)}
}

// MoveUp moves the cursor one row up, stopping at row 0.
func (c *Cursor) MoveUp() {
	if c.Row > 0 {
		c.Row--
	}
}

// MoveDown moves the cursor one row down.
func (c *Cursor) MoveDown() {
	c.Row++
}

// MoveLeft moves the cursor one column left, stopping at column 0.
func (c *Cursor) MoveLeft() {
	if c.Column > 0 {
		c.Column--
	}
}

// MoveRight moves the cursor one column right.
func (c *Cursor) MoveRight() {
	c.Column++
}

// MoveTo places the cursor at the given position.
// Negative coordinates are clamped to 0.
func (c *Cursor) MoveTo(column, row int) {
	c.Column = max(column, 0)
	c.Row = max(row, 0)
}

// Pos returns the cursor position as (column, row).
func (c Cursor) Pos() (column, row int) {
	return c.Column, c.Row
}

// Clamp returns a cursor clamped to rows [0, maxRow] and columns [0, maxColumn].
// Negative limits are treated as 0.
func (c Cursor) Clamp(maxColumn, maxRow int) Cursor {
	maxColumn = max(maxColumn, 0)
	maxRow = max(maxRow, 0)
	return Cursor{
		Column: min(max(c.Column, 0), maxColumn),
		Row:    min(max(c.Row, 0), maxRow),
	}
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d, %d)", c.Column, c.Row)
}

// Equals returns true if two cursors are at the same position.
func (c Cursor) Equals(other Cursor) bool {
	return c.Column == other.Column && c.Row == other.Row
}

// Compare orders cursors in document order: by row, then by column.
// Returns -1 if c < other, 0 if c == other, 1 if c > other.
func (c Cursor) Compare(other Cursor) int {
	switch {
	case c.Row < other.Row:
		return -1
	case c.Row > other.Row:
		return 1
	case c.Column < other.Column:
		return -1
	case c.Column > other.Column:
		return 1
	default:
		return 0
	}
}

// Before returns true if c is before other in document order.
func (c Cursor) Before(other Cursor) bool {
	return c.Compare(other) < 0
}
