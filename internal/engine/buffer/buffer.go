package buffer

import (
	"errors"
	"io"
	"strings"
)

// Errors returned by buffer operations.
var (
	ErrRowOutOfRange    = errors.New("row out of range")
	ErrColumnOutOfRange = errors.New("column out of range")
)

// LineEnding specifies the line ending style used when serializing.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	default:
		return "\n"
	}
}

// Line is a single line of text without its terminator.
type Line []rune

// String returns the line as a string.
func (l Line) String() string {
	return string(l)
}

// Len returns the number of columns in the line.
func (l Line) Len() int {
	return len(l)
}

// Buffer is an ordered sequence of lines. ends[i] is the terminator
// written after lines[i]; loaded lines keep the terminator they had, so
// files with mixed endings save unchanged. lineEnding is used for lines
// that had none.
type Buffer struct {
	lines           []Line
	ends            []LineEnding
	lineEnding      LineEnding
	trailingNewline bool
	revision        uint64
}

// NewBuffer creates a new buffer with no lines.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{lineEnding: LineEndingLF}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromString creates a buffer from file content.
//
// The text is split on "\n", and a "\r" directly before a "\n" belongs to
// the terminator. A final terminator does not produce an extra empty line,
// so "" yields an empty buffer and "a\n" yields ["a"]. Each line's
// terminator and the presence of a final one are remembered for Text.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(append([]Option{WithDetectedLineEnding(s)}, opts...)...)
	b.lines, b.ends = splitLines(s, b.lineEnding)
	b.trailingNewline = strings.HasSuffix(s, "\n")
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferFromString(string(data), opts...), nil
}

// NewBufferFromLines creates a buffer holding the given lines.
func NewBufferFromLines(lines ...string) *Buffer {
	b := NewBuffer()
	b.lines = make([]Line, len(lines))
	b.ends = make([]LineEnding, len(lines))
	for i, s := range lines {
		b.lines[i] = Line(s)
		b.ends[i] = b.lineEnding
	}
	return b
}

// splitLines splits text into lines the way NewBufferFromString documents.
// An unterminated last line keeps any "\r" and gets def as its ending.
func splitLines(s string, def LineEnding) ([]Line, []LineEnding) {
	parts := strings.Split(s, "\n")
	last := len(parts) - 1
	if parts[last] == "" {
		parts = parts[:last]
	}

	lines := make([]Line, len(parts))
	ends := make([]LineEnding, len(parts))
	for i, p := range parts {
		ends[i] = def
		if i < last {
			ends[i] = LineEndingLF
			if trimmed, ok := strings.CutSuffix(p, "\r"); ok {
				p, ends[i] = trimmed, LineEndingCRLF
			}
		}
		lines[i] = Line(p)
	}
	return lines, ends
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// IsEmpty returns true if the buffer has no lines.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// HasLine returns true if row indexes an existing line.
func (b *Buffer) HasLine(row int) bool {
	return row >= 0 && row < len(b.lines)
}

// Line returns a copy of the line at row, or nil if row is out of range.
func (b *Buffer) Line(row int) Line {
	if !b.HasLine(row) {
		return nil
	}
	out := make(Line, len(b.lines[row]))
	copy(out, b.lines[row])
	return out
}

// LineText returns the text of the line at row, or "" if row is out of range.
func (b *Buffer) LineText(row int) string {
	if !b.HasLine(row) {
		return ""
	}
	return string(b.lines[row])
}

// LineLen returns the number of columns in the line at row,
// or 0 if row is out of range.
func (b *Buffer) LineLen(row int) int {
	if !b.HasLine(row) {
		return 0
	}
	return len(b.lines[row])
}

// Lines returns the text of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// Text returns the lines joined with their terminators. The last line
// is terminated only if the loaded content was.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, l := range b.lines {
		sb.WriteString(string(l))
		if i < len(b.lines)-1 || b.trailingNewline {
			sb.WriteString(b.ends[i].Sequence())
		}
	}
	return sb.String()
}

// LineEndingAt returns the terminator written after the line at row.
func (b *Buffer) LineEndingAt(row int) LineEnding {
	if !b.HasLine(row) {
		return b.lineEnding
	}
	return b.ends[row]
}

// LineEnding returns the ending used for lines that were not loaded
// with one.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// TrailingNewline reports whether Text ends with a line terminator.
func (b *Buffer) TrailingNewline() bool {
	return b.trailingNewline
}

// SetTrailingNewline controls whether Text ends with a line terminator.
func (b *Buffer) SetTrailingNewline(v bool) {
	b.trailingNewline = v
}

// Revision returns a counter that increases on every successful edit.
func (b *Buffer) Revision() uint64 {
	return b.revision
}

// validPosition checks that row indexes a line and column lies in [0, len(line)].
func (b *Buffer) validPosition(row, column int) error {
	if !b.HasLine(row) {
		return ErrRowOutOfRange
	}
	if column < 0 || column > len(b.lines[row]) {
		return ErrColumnOutOfRange
	}
	return nil
}
