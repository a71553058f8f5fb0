// Package buffer provides the line buffer edited by mote.
//
// A Buffer is an ordered sequence of lines. Each Line is a slice of runes
// with no line terminator stored, and every rune counts as one column.
// Row and column arguments are 0-indexed; a column is valid when it lies in
// [0, LineLen(row)], so the position just past the last rune is a normal
// insertion point.
//
// The buffer provides:
//
//   - Construction from file text, splitting on line endings
//   - Serialization back to text joined with the detected line ending
//   - Rune insertion and deletion within a line
//   - Structural edits: splitting a line in two and joining a line onto the
//     previous one
//   - A revision counter that increases on every successful edit
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("hello")
//	_ = buf.SplitLine(0, 2)     // ["he", "llo"]
//	_, _ = buf.JoinLine(1)      // ["hello"]
//	_ = buf.InsertRune(0, 0, 'X') // ["Xhello"]
//
// Out-of-range arguments are rejected with ErrRowOutOfRange or
// ErrColumnOutOfRange and leave the buffer untouched.
//
// Thread Safety:
//
// Buffer is not safe for concurrent use. It is owned by the dispatcher,
// which runs on the single editor goroutine.
package buffer
