package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a true color, a palette index held in R, or the terminal default.
type Color struct {
	R, G, B uint8
	Indexed bool
	Default bool
}

// ColorDefault leaves the terminal's own color in place.
var ColorDefault = Color{Default: true}

func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

func ColorFromIndex(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// ColorFromHex parses "#rrggbb" or "#rgb"; the '#' is optional.
// "" and "default" give ColorDefault.
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" || strings.EqualFold(hex, "default") {
		return ColorDefault, nil
	}
	c, err := colorful.Hex("#" + strings.TrimPrefix(hex, "#"))
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return ColorFromRGB(c.RGB255()), nil
}

func (c Color) IsDefault() bool {
	return c.Default
}

func (c Color) Equals(other Color) bool {
	switch {
	case c.Default || other.Default:
		return c.Default == other.Default
	case c.Indexed || other.Indexed:
		return c.Indexed == other.Indexed && c.R == other.R
	}
	return c == other
}

func (c Color) String() string {
	switch {
	case c.Default:
		return "default"
	case c.Indexed:
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
