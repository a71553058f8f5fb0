package key

import "strings"

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta

	ModNone Modifier = 0
)

// modifierTags is the order modifiers appear in String.
var modifierTags = []struct {
	mod Modifier
	tag string
}{
	{ModCtrl, "C"},
	{ModAlt, "A"},
	{ModShift, "S"},
	{ModMeta, "M"},
}

func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// String joins the held modifiers, e.g. "C-S".
func (m Modifier) String() string {
	var tags []string
	for _, t := range modifierTags {
		if m.Has(t.mod) {
			tags = append(tags, t.tag)
		}
	}
	return strings.Join(tags, "-")
}
