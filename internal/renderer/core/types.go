// Package core holds the cell and style types shared by the renderer and
// its backends.
package core

import "github.com/rivo/uniseg"

// Attribute is a set of text attributes.
type Attribute uint8

const (
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrUnderline
	AttrReverse

	AttrNone Attribute = 0
)

func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Style is the look of one cell.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

func (s Style) Bold() Style {
	s.Attributes = s.Attributes.With(AttrBold)
	return s
}

func (s Style) Equals(other Style) bool {
	return s.Attributes == other.Attributes &&
		s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background)
}

// Cell is one screen position. Width is the display width of Rune; the
// renderer still advances one column per rune.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// EmptyCell is a default-styled space.
func EmptyCell() Cell {
	return NewCell(' ')
}

func NewCell(r rune) Cell {
	return NewStyledCell(r, DefaultStyle())
}

func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune && c.Width == other.Width && c.Style.Equals(other.Style)
}

// RuneWidth is the terminal width of r. Control runes are 0.
func RuneWidth(r rune) int {
	switch {
	case r < 0x20 || r == 0x7F:
		return 0
	case r < 0x7F:
		return 1
	}
	return uniseg.StringWidth(string(r))
}

func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// ScreenRect is a half-open region: Top and Left are inside, Bottom and
// Right are not.
type ScreenRect struct {
	Top, Left     int
	Bottom, Right int
}

func RectFromSize(top, left, height, width int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

func (r ScreenRect) Width() int  { return r.Right - r.Left }
func (r ScreenRect) Height() int { return r.Bottom - r.Top }

func (r ScreenRect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}
