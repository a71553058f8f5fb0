// Package statusline renders the bottom status line: the mode indicator
// on the left and the cursor coordinates on the right.
package statusline

import (
	"strconv"

	"github.com/dshills/mote/internal/renderer/backend"
	"github.com/dshills/mote/internal/renderer/core"
)

// StatusLine renders the bottom status line.
type StatusLine struct {
	mode   string // Mode display name (e.g., "Normal", "Insert")
	column int
	row    int

	style     core.Style
	modeStyle core.Style

	width int
}

// New creates a new status line drawn in style.
// The mode indicator uses the same colors in bold.
func New(style core.Style) *StatusLine {
	return &StatusLine{
		mode:      "Normal",
		style:     style,
		modeStyle: style.Bold(),
	}
}

// SetMode updates the displayed mode name.
func (s *StatusLine) SetMode(mode string) {
	s.mode = mode
}

// SetPosition updates the cursor position shown on the right.
func (s *StatusLine) SetPosition(column, row int) {
	s.column = column
	s.row = row
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// ModeText returns the left-hand mode indicator.
func (s *StatusLine) ModeText() string {
	return "-- " + s.mode + " --"
}

// PositionText returns the right-hand coordinates.
func (s *StatusLine) PositionText() string {
	return strconv.Itoa(s.column) + ", " + strconv.Itoa(s.row)
}

// Render draws the status line to the backend at the given row.
// When the line is too narrow for both parts, the mode indicator wins.
func (s *StatusLine) Render(b backend.Backend, row int) {
	b.Fill(core.RectFromSize(row, 0, 1, s.width), core.NewStyledCell(' ', s.style))

	col := 0
	for _, r := range s.ModeText() {
		if col >= s.width {
			break
		}
		b.SetCell(col, row, core.NewStyledCell(r, s.modeStyle))
		col++
	}

	posInfo := s.PositionText()
	posStart := s.width - core.StringWidth(posInfo) - 1
	if posStart <= col {
		return
	}
	for i, r := range []rune(posInfo) {
		b.SetCell(posStart+i, row, core.NewStyledCell(r, s.style))
	}
}
