package buffer

import "strings"

// Option configures a Buffer at construction.
type Option func(*Buffer)

// WithLineEnding fixes the separator Text writes between lines.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

func WithLF() Option   { return WithLineEnding(LineEndingLF) }
func WithCRLF() Option { return WithLineEnding(LineEndingCRLF) }

// DetectLineEnding picks CRLF when the text has more "\r\n" than bare
// "\n" separators, and LF otherwise.
func DetectLineEnding(text string) LineEnding {
	crlf := strings.Count(text, "\r\n")
	if crlf > strings.Count(text, "\n")-crlf {
		return LineEndingCRLF
	}
	return LineEndingLF
}

// WithDetectedLineEnding uses the separator most common in text.
func WithDetectedLineEnding(text string) Option {
	return WithLineEnding(DetectLineEnding(text))
}
