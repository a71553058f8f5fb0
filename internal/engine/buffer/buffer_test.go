package buffer

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func assertLines(t *testing.T, b *Buffer, want ...string) {
	t.Helper()
	if got := b.Lines(); !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.LineCount() != 0 {
		t.Errorf("expected 0 lines, got %d", b.LineCount())
	}
	if b.Text() != "" {
		t.Errorf("expected empty text, got %q", b.Text())
	}
}

func TestNewBufferFromString(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []string
	}{
		{"empty", "", []string{}},
		{"single line", "Hello, World!", []string{"Hello, World!"}},
		{"trailing newline", "a\n", []string{"a"}},
		{"multiline", "line1\nline2\nline3", []string{"line1", "line2", "line3"}},
		{"blank line kept", "a\n\nb", []string{"a", "", "b"}},
		{"final blank line", "a\n\n", []string{"a", ""}},
		{"only newline", "\n", []string{""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"mixed endings", "a\r\nb\nc\r\n", []string{"a", "b", "c"}},
		{"unterminated carriage return", "a\r", []string{"a\r"}},
		{"carriage return before last newline only", "a\rb\r\n", []string{"a\rb"}},
		{"unicode", "héllo\n世界", []string{"héllo", "世界"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.text)
			assertLines(t, b, tt.lines...)
		})
	}
}

func TestNewBufferFromReader(t *testing.T) {
	b, err := NewBufferFromReader(strings.NewReader("one\ntwo\n"))
	if err != nil {
		t.Fatalf("NewBufferFromReader failed: %v", err)
	}
	assertLines(t, b, "one", "two")
}

func TestTextRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"abc\n",
		"a\nb\nc",
		"a\n\nb\n",
		"\n",
		"win\r\ndows\r\n",
		"a\r",
		"a\r\nb\nc\r\n",
		"a\r\nb\nc\n",
		"a\nb\r\nc",
		"\r\n\n",
		"tab\there\n",
	}

	for _, in := range inputs {
		b := NewBufferFromString(in)
		if got := b.Text(); got != in {
			t.Errorf("round trip of %q produced %q", in, got)
		}
	}
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		text string
		want LineEnding
	}{
		{"", LineEndingLF},
		{"a\nb", LineEndingLF},
		{"a\r\nb\r\n", LineEndingCRLF},
		{"a\r\nb\nc\n", LineEndingLF},
	}
	for _, tt := range tests {
		if got := DetectLineEnding(tt.text); got != tt.want {
			t.Errorf("DetectLineEnding(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestLineEndingOption(t *testing.T) {
	b := NewBufferFromString("a\nb", WithCRLF())
	if b.LineEnding() != LineEndingCRLF {
		t.Fatalf("expected CRLF, got %v", b.LineEnding())
	}
	if got := b.Text(); got != "a\nb" {
		t.Errorf("Text() = %q, loaded terminators should be kept", got)
	}

	// The unterminated last line takes the option's ending when split.
	if err := b.SplitLine(1, 1); err != nil {
		t.Fatal(err)
	}
	if got := b.Text(); got != "a\nb\r\n" {
		t.Errorf("Text() after split = %q", got)
	}
}

func TestEditsKeepLineEndings(t *testing.T) {
	b := NewBufferFromString("ab\r\ncd\nef\r\n")

	if err := b.SplitLine(0, 1); err != nil {
		t.Fatal(err)
	}
	if got := b.Text(); got != "a\r\nb\r\ncd\nef\r\n" {
		t.Errorf("after split Text() = %q", got)
	}
	if b.LineEndingAt(1) != LineEndingCRLF || b.LineEndingAt(2) != LineEndingLF {
		t.Errorf("endings = %v %v", b.LineEndingAt(1), b.LineEndingAt(2))
	}

	// Joining "cd" onto "b" keeps the LF that followed "cd".
	if _, err := b.JoinLine(2); err != nil {
		t.Fatal(err)
	}
	if got := b.Text(); got != "a\r\nbcd\nef\r\n" {
		t.Errorf("after join Text() = %q", got)
	}
	if _, err := b.JoinLine(1); err != nil {
		t.Fatal(err)
	}
	if got := b.Text(); got != "abcd\nef\r\n" {
		t.Errorf("after second join Text() = %q", got)
	}
}

func TestLineAccessors(t *testing.T) {
	b := NewBufferFromLines("abc", "")

	if !b.HasLine(1) || b.HasLine(2) || b.HasLine(-1) {
		t.Error("HasLine returned wrong result")
	}
	if b.LineLen(0) != 3 || b.LineLen(1) != 0 || b.LineLen(5) != 0 {
		t.Error("LineLen returned wrong result")
	}
	if b.LineText(0) != "abc" || b.LineText(9) != "" {
		t.Error("LineText returned wrong result")
	}
	if b.Line(9) != nil {
		t.Error("Line out of range should be nil")
	}

	l := b.Line(0)
	l[0] = 'z'
	if b.LineText(0) != "abc" {
		t.Error("Line should return a copy")
	}
}

func TestInsertRune(t *testing.T) {
	b := NewBufferFromLines("abc", "def")

	if err := b.InsertRune(0, 0, 'X'); err != nil {
		t.Fatalf("InsertRune failed: %v", err)
	}
	assertLines(t, b, "Xabc", "def")

	if err := b.InsertRune(1, 3, '!'); err != nil {
		t.Fatalf("InsertRune at end of line failed: %v", err)
	}
	assertLines(t, b, "Xabc", "def!")

	if err := b.InsertRune(0, 2, 'é'); err != nil {
		t.Fatalf("InsertRune failed: %v", err)
	}
	assertLines(t, b, "Xaébc", "def!")
}

func TestInsertRuneOutOfRange(t *testing.T) {
	b := NewBufferFromLines("abc")
	rev := b.Revision()

	if err := b.InsertRune(1, 0, 'x'); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("expected ErrRowOutOfRange, got %v", err)
	}
	if err := b.InsertRune(0, 4, 'x'); !errors.Is(err, ErrColumnOutOfRange) {
		t.Errorf("expected ErrColumnOutOfRange, got %v", err)
	}
	assertLines(t, b, "abc")
	if b.Revision() != rev {
		t.Error("failed edits should not bump the revision")
	}
}

func TestDeleteRune(t *testing.T) {
	b := NewBufferFromLines("abc")

	r, err := b.DeleteRune(0, 1)
	if err != nil {
		t.Fatalf("DeleteRune failed: %v", err)
	}
	if r != 'b' {
		t.Errorf("expected deleted rune 'b', got %q", r)
	}
	assertLines(t, b, "ac")

	if _, err := b.DeleteRune(0, 2); !errors.Is(err, ErrColumnOutOfRange) {
		t.Errorf("deleting past the last rune should fail, got %v", err)
	}
	if _, err := b.DeleteRune(3, 0); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("expected ErrRowOutOfRange, got %v", err)
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		row    int
		column int
		want   []string
	}{
		{"middle", []string{"hello"}, 0, 2, []string{"he", "llo"}},
		{"start", []string{"hello"}, 0, 0, []string{"", "hello"}},
		{"end", []string{"hello"}, 0, 5, []string{"hello", ""}},
		{"keeps order", []string{"a", "bc", "d"}, 1, 1, []string{"a", "b", "c", "d"}},
		{"empty line", []string{""}, 0, 0, []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromLines(tt.lines...)
			if err := b.SplitLine(tt.row, tt.column); err != nil {
				t.Fatalf("SplitLine failed: %v", err)
			}
			assertLines(t, b, tt.want...)
		})
	}
}

func TestSplitLineFragmentsAreIndependent(t *testing.T) {
	b := NewBufferFromLines("abcd")
	if err := b.SplitLine(0, 2); err != nil {
		t.Fatal(err)
	}
	if err := b.InsertRune(0, 2, 'X'); err != nil {
		t.Fatal(err)
	}
	assertLines(t, b, "abX", "cd")
}

func TestSplitLineOutOfRange(t *testing.T) {
	b := NewBufferFromLines("abc")

	if err := b.SplitLine(1, 0); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("expected ErrRowOutOfRange, got %v", err)
	}
	if err := b.SplitLine(0, 4); !errors.Is(err, ErrColumnOutOfRange) {
		t.Errorf("expected ErrColumnOutOfRange, got %v", err)
	}
	if err := NewBuffer().SplitLine(0, 0); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("split on empty buffer should fail, got %v", err)
	}
	assertLines(t, b, "abc")
}

func TestJoinLine(t *testing.T) {
	b := NewBufferFromLines("ab", "cd", "ef")

	at, err := b.JoinLine(1)
	if err != nil {
		t.Fatalf("JoinLine failed: %v", err)
	}
	if at != 2 {
		t.Errorf("expected join point 2, got %d", at)
	}
	assertLines(t, b, "abcd", "ef")

	at, err = b.JoinLine(1)
	if err != nil {
		t.Fatalf("JoinLine failed: %v", err)
	}
	if at != 4 {
		t.Errorf("expected join point 4, got %d", at)
	}
	assertLines(t, b, "abcdef")
}

func TestJoinLineOutOfRange(t *testing.T) {
	b := NewBufferFromLines("ab", "cd")

	if _, err := b.JoinLine(0); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("joining row 0 should fail, got %v", err)
	}
	if _, err := b.JoinLine(2); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("joining past the end should fail, got %v", err)
	}
	assertLines(t, b, "ab", "cd")
}

func TestSplitThenJoinRestores(t *testing.T) {
	for col := 0; col <= 5; col++ {
		b := NewBufferFromLines("x", "hello", "y")
		if err := b.SplitLine(1, col); err != nil {
			t.Fatal(err)
		}
		at, err := b.JoinLine(2)
		if err != nil {
			t.Fatal(err)
		}
		if at != col {
			t.Errorf("join point = %d, want %d", at, col)
		}
		assertLines(t, b, "x", "hello", "y")
	}
}

func TestRevision(t *testing.T) {
	b := NewBufferFromLines("a")
	start := b.Revision()

	_ = b.InsertRune(0, 1, 'b')
	_ = b.SplitLine(0, 1)
	_, _ = b.JoinLine(1)
	_, _ = b.DeleteRune(0, 0)

	if got := b.Revision() - start; got != 4 {
		t.Errorf("expected 4 revisions, got %d", got)
	}
}

func TestTrailingNewline(t *testing.T) {
	b := NewBufferFromString("a")
	if b.TrailingNewline() {
		t.Fatal("no trailing newline expected")
	}
	b.SetTrailingNewline(true)
	if b.Text() != "a\n" {
		t.Errorf("Text() = %q", b.Text())
	}
}
