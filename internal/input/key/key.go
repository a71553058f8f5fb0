package key

import "strconv"

// Key identifies a named key. Characters use KeyRune with the character
// carried in Event.Rune.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune

	KeyEscape
	KeyEnter
	KeyBackspace
	KeyTab
	KeyDelete

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

var keyNames = [...]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// IsSpecial reports whether k is a named key other than KeyNone and KeyRune.
func (k Key) IsSpecial() bool {
	return k > KeyRune && int(k) < len(keyNames)
}

// IsArrowKey reports whether k is one of the four arrows.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}
