package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/mote/internal/input/key"
	"github.com/dshills/mote/internal/renderer/core"
)

// Terminal is the tcell Backend. Drawing happens on the event loop
// goroutine; only Interrupt is called from elsewhere, and tcell's
// PostEvent is safe for that.
type Terminal struct {
	screen tcell.Screen
	closed bool
}

// NewTerminal opens the controlling terminal. Nothing is drawn until Init.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing screen, such as
// tcell.NewSimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.closed = false
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()
	return nil
}

// Shutdown restores the terminal. Calling it twice is harmless.
func (t *Terminal) Shutdown() {
	if !t.closed {
		t.closed = true
		t.screen.Fini()
	}
}

func (t *Terminal) Size() (int, int) { return t.screen.Size() }

func (t *Terminal) Clear() { t.screen.Clear() }

func (t *Terminal) Show() { t.screen.Show() }

func (t *Terminal) ShowCursor(x, y int) { t.screen.ShowCursor(x, y) }

func (t *Terminal) HideCursor() { t.screen.HideCursor() }

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

// GetCell reads back what was drawn; off-screen positions are empty.
func (t *Terminal) GetCell(x, y int) core.Cell {
	if !core.RectFromSize(0, 0, t.height(), t.width()).Contains(x, y) {
		return core.EmptyCell()
	}
	r, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return core.Cell{Rune: r, Width: core.RuneWidth(r), Style: convertTcellStyle(style)}
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	style := convertStyle(cell.Style)
	for y := max(rect.Top, 0); y < min(rect.Bottom, t.height()); y++ {
		for x := max(rect.Left, 0); x < min(rect.Right, t.width()); x++ {
			t.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}

func (t *Terminal) width() int {
	w, _ := t.screen.Size()
	return w
}

func (t *Terminal) height() int {
	_, h := t.screen.Size()
	return h
}

var tcellCursorStyles = map[CursorStyle]tcell.CursorStyle{
	CursorBlock:     tcell.CursorStyleSteadyBlock,
	CursorUnderline: tcell.CursorStyleSteadyUnderline,
	CursorBar:       tcell.CursorStyleSteadyBar,
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	if style == CursorHidden {
		t.screen.HideCursor()
		return
	}
	ts, ok := tcellCursorStyles[style]
	if !ok {
		ts = tcell.CursorStyleDefault
	}
	t.screen.SetCursorStyle(ts)
}

// PollEvent blocks until the next event. Events that carry no meaning for
// the editor (mouse, paste, focus) are reported as EventNone.
func (t *Terminal) PollEvent() Event {
	return convertEvent(t.screen.PollEvent())
}

func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort; queue may be full
}

// attrPairs maps cell attributes to tcell's, in both directions.
var attrPairs = []struct {
	core  core.Attribute
	tcell tcell.AttrMask
}{
	{core.AttrBold, tcell.AttrBold},
	{core.AttrDim, tcell.AttrDim},
	{core.AttrUnderline, tcell.AttrUnderline},
	{core.AttrReverse, tcell.AttrReverse},
}

func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault
	if !s.Foreground.IsDefault() {
		style = style.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(convertColor(s.Background))
	}

	var attrs tcell.AttrMask
	for _, p := range attrPairs {
		if s.Attributes.Has(p.core) {
			attrs |= p.tcell
		}
	}
	return style.Attributes(attrs)
}

func convertColor(c core.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func convertTcellStyle(ts tcell.Style) core.Style {
	fg, bg, attrs := ts.Decompose()
	s := core.Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
	}
	for _, p := range attrPairs {
		if attrs&p.tcell != 0 {
			s.Attributes = s.Attributes.With(p.core)
		}
	}
	return s
}

func convertTcellColor(tc tcell.Color) core.Color {
	switch {
	case tc == tcell.ColorDefault:
		return core.ColorDefault
	case tc >= tcell.ColorValid && tc < tcell.ColorValid+256:
		return core.ColorFromIndex(uint8(tc - tcell.ColorValid))
	}
	r, g, b := tc.RGB()
	return core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case nil:
		// PollEvent returns nil after Fini.
		return Event{Type: EventClosed}
	case *tcell.EventKey:
		return KeyEvent(convertKeyEvent(e))
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}
	}
	return Event{Type: EventNone}
}

var namedKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape: key.KeyEscape,
	tcell.KeyEnter:  key.KeyEnter,
	tcell.KeyTab:    key.KeyTab,
	tcell.KeyDelete: key.KeyDelete,
	tcell.KeyHome:   key.KeyHome,
	tcell.KeyEnd:    key.KeyEnd,
	tcell.KeyPgUp:   key.KeyPageUp,
	tcell.KeyPgDn:   key.KeyPageDown,
	tcell.KeyUp:     key.KeyUp,
	tcell.KeyDown:   key.KeyDown,
	tcell.KeyLeft:   key.KeyLeft,
	tcell.KeyRight:  key.KeyRight,
}

// convertKeyEvent maps a tcell key event onto the editor's key model.
// Control letters arrive from tcell as dedicated keys and are reported
// as the lowercase rune with ModCtrl.
func convertKeyEvent(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())

	k := e.Key()
	if named, ok := namedKeys[k]; ok {
		return key.NewSpecialEvent(named, mods)
	}
	switch {
	case k == tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods)
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		// Terminals send Backspace as ^H or DEL; neither is a Ctrl chord.
		return key.NewSpecialEvent(key.KeyBackspace, mods&^key.ModCtrl)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods|key.ModCtrl)
	}
	return key.NewSpecialEvent(key.KeyNone, mods)
}

var modPairs = []struct {
	tcell tcell.ModMask
	key   key.Modifier
}{
	{tcell.ModShift, key.ModShift},
	{tcell.ModCtrl, key.ModCtrl},
	{tcell.ModAlt, key.ModAlt},
	{tcell.ModMeta, key.ModMeta},
}

func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	for _, p := range modPairs {
		if m&p.tcell != 0 {
			result = result.With(p.key)
		}
	}
	return result
}
