package renderer

import (
	"errors"

	"github.com/dshills/mote/internal/engine/cursor"
	"github.com/dshills/mote/internal/input/mode"
	"github.com/dshills/mote/internal/renderer/backend"
	"github.com/dshills/mote/internal/renderer/core"
	"github.com/dshills/mote/internal/renderer/statusline"
)

// ErrNoScreen is returned when the backend reports a zero-sized screen.
var ErrNoScreen = errors.New("renderer: screen has no drawable area")

// LineReader provides read access to buffer content.
type LineReader interface {
	// LineCount returns the total number of lines in the buffer.
	LineCount() int

	// LineText returns the text content of a line (0-indexed).
	LineText(row int) string
}

// Frame is the editor state drawn by a single Render call.
type Frame struct {
	Lines  LineReader
	Cursor cursor.Cursor
	Mode   mode.Mode
}

// Options configures the renderer.
type Options struct {
	// TextStyle is used for buffer text.
	TextStyle core.Style

	// StatusStyle is used for the status line.
	StatusStyle core.Style

	// PromptColumn and PromptRow locate the save prompt.
	PromptColumn int
	PromptRow    int
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		TextStyle:    core.DefaultStyle(),
		StatusStyle:  core.DefaultStyle(),
		PromptColumn: 2,
		PromptRow:    2,
	}
}

// Renderer draws frames to a backend.
// It is not safe for concurrent use.
type Renderer struct {
	backend backend.Backend
	opts    Options
	status  *statusline.StatusLine

	width  int
	height int
}

// New creates a renderer drawing to b.
func New(b backend.Backend, opts Options) *Renderer {
	return &Renderer{
		backend: b,
		opts:    opts,
		status:  statusline.New(opts.StatusStyle),
	}
}

// Options returns the renderer options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Size returns the dimensions used for the last frame.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// TextRows returns how many buffer rows fit above the status line.
func (r *Renderer) TextRows() int {
	return max(r.height-1, 0)
}

// Render clears the screen and draws f, then flushes it.
// The screen size is re-read every frame so resizes need no extra handling.
func (r *Renderer) Render(f Frame) error {
	r.width, r.height = r.backend.Size()
	if r.width <= 0 || r.height <= 0 {
		return ErrNoScreen
	}

	r.backend.Clear()

	if f.Lines != nil {
		rows := min(f.Lines.LineCount(), r.TextRows())
		for row := range rows {
			r.renderLine(row, f.Lines.LineText(row))
		}
	}

	r.status.Resize(r.width)
	r.status.SetMode(f.Mode.DisplayName())
	r.status.SetPosition(f.Cursor.Column, f.Cursor.Row)
	r.status.Render(r.backend, r.height-1)

	r.backend.SetCursorStyle(cursorStyle(f.Mode))
	r.backend.ShowCursor(f.Cursor.Column, f.Cursor.Row)

	r.backend.Show()
	return nil
}

// RenderPrompt draws text over the current frame at the prompt position
// and parks the cursor after it.
func (r *Renderer) RenderPrompt(text string) error {
	r.width, r.height = r.backend.Size()
	if r.width <= 0 || r.height <= 0 {
		return ErrNoScreen
	}

	x, y := r.opts.PromptColumn, r.opts.PromptRow
	for _, ch := range text {
		r.backend.SetCell(x, y, core.NewStyledCell(ch, r.opts.TextStyle))
		x++
	}

	r.backend.SetCursorStyle(backend.CursorBlock)
	r.backend.ShowCursor(x, y)
	r.backend.Show()
	return nil
}

// renderLine draws one buffer line, one rune per column, clipped to the screen.
func (r *Renderer) renderLine(row int, text string) {
	x := 0
	for _, ch := range text {
		if x >= r.width {
			return
		}
		if core.RuneWidth(ch) == 0 {
			ch = ' '
		}
		r.backend.SetCell(x, row, core.NewStyledCell(ch, r.opts.TextStyle))
		x++
	}
}

func cursorStyle(m mode.Mode) backend.CursorStyle {
	switch m.CursorStyle() {
	case mode.CursorBar:
		return backend.CursorBar
	default:
		return backend.CursorBlock
	}
}
