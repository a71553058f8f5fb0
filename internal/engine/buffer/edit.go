package buffer

import "slices"

// InsertRune inserts r at column in the line at row, shifting later runes right.
func (b *Buffer) InsertRune(row, column int, r rune) error {
	if err := b.validPosition(row, column); err != nil {
		return err
	}
	b.lines[row] = slices.Insert(b.lines[row], column, r)
	b.revision++
	return nil
}

// DeleteRune removes the rune at column in the line at row and returns it.
// The column must address an existing rune, so column == LineLen(row) fails.
func (b *Buffer) DeleteRune(row, column int) (rune, error) {
	if !b.HasLine(row) {
		return 0, ErrRowOutOfRange
	}
	line := b.lines[row]
	if column < 0 || column >= len(line) {
		return 0, ErrColumnOutOfRange
	}
	r := line[column]
	b.lines[row] = slices.Delete(line, column, column+1)
	b.revision++
	return r, nil
}

// SplitLine splits the line at row into two lines at column.
// The left part stays at row and the right part becomes row+1. Both keep
// the original line's terminator.
func (b *Buffer) SplitLine(row, column int) error {
	if err := b.validPosition(row, column); err != nil {
		return err
	}
	line := b.lines[row]
	left := slices.Clone(line[:column])
	right := slices.Clone(line[column:])

	b.lines[row] = left
	b.lines = slices.Insert(b.lines, row+1, right)
	b.ends = slices.Insert(b.ends, row+1, b.ends[row])
	b.revision++
	return nil
}

// JoinLine appends the line at row onto the end of the line at row-1 and
// removes it. The joined line takes the terminator of the line at row.
// It returns the length the previous line had before the join,
// which is the column of the join point. Row 0 cannot be joined.
func (b *Buffer) JoinLine(row int) (int, error) {
	if row <= 0 || !b.HasLine(row) {
		return 0, ErrRowOutOfRange
	}
	joinAt := len(b.lines[row-1])
	b.lines[row-1] = append(b.lines[row-1], b.lines[row]...)
	b.lines = slices.Delete(b.lines, row, row+1)
	b.ends = slices.Delete(b.ends, row-1, row)
	b.revision++
	return joinAt, nil
}
