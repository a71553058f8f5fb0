// Package backend is the terminal side of the editor: drawing cells,
// placing the cursor and delivering key and resize events.
package backend

import (
	"github.com/dshills/mote/internal/input/key"
	"github.com/dshills/mote/internal/renderer/core"
)

type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
	CursorHidden
)

var cursorStyleNames = [...]string{"block", "underline", "bar", "hidden"}

func (s CursorStyle) String() string {
	if s < 0 || int(s) >= len(cursorStyleNames) {
		return "unknown"
	}
	return cursorStyleNames[s]
}

type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventInterrupt answers a call to Interrupt.
	EventInterrupt
	// EventClosed means no further events will arrive.
	EventClosed
)

var eventTypeNames = [...]string{"none", "key", "resize", "interrupt", "closed"}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventTypeNames) {
		return "unknown"
	}
	return eventTypeNames[t]
}

// Event is one input from the terminal. Key is set for EventKey, Width and
// Height for EventResize.
type Event struct {
	Type          EventType
	Key           key.Event
	Width, Height int
}

func KeyEvent(ev key.Event) Event {
	return Event{Type: EventKey, Key: ev}
}

// Backend is a drawable screen with an event source. Cells written
// outside the screen are dropped and read back as EmptyCell. Nothing is
// visible until Show.
type Backend interface {
	// Init must be called first.
	Init() error
	// Shutdown restores the terminal. It may be called more than once.
	Shutdown()

	Size() (width, height int)
	SetCell(x, y int, cell core.Cell)
	GetCell(x, y int) core.Cell
	Fill(rect core.ScreenRect, cell core.Cell)
	Clear()
	Show()

	ShowCursor(x, y int)
	HideCursor()
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until the next event.
	PollEvent() Event
	// Interrupt makes a blocked PollEvent return EventInterrupt. It is the
	// only method safe to call from another goroutine.
	Interrupt()
}

// NullBackend is an in-memory backend for testing.
// PollEvent returns queued events in order and EventClosed once the
// queue is drained, so scripted sessions always terminate.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	shows         int
	shutdown      bool
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 256),
	}
}

func (b *NullBackend) Init() error {
	b.cells = newGrid(b.width, b.height)
	b.shutdown = false
	return nil
}

func (b *NullBackend) Shutdown() {
	b.shutdown = true
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if b.inBounds(x, y) {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	if b.inBounds(x, y) {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; x++ {
			b.SetCell(x, y, cell)
		}
	}
}

func (b *NullBackend) Clear() {
	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() {
	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.cursorStyle = style
}

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	default:
		return Event{Type: EventClosed}
	}
}

func (b *NullBackend) Interrupt() {
	b.PostEvent(Event{Type: EventInterrupt})
}

// PostEvent queues an event for PollEvent.
// Events are dropped if the queue is full.
func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
	}
}

// PostKeys queues one key event per argument.
func (b *NullBackend) PostKeys(events ...key.Event) {
	for _, ev := range events {
		b.PostEvent(KeyEvent(ev))
	}
}

// PostRunes queues an unmodified rune event for each rune of s.
func (b *NullBackend) PostRunes(s string) {
	for _, r := range s {
		b.PostEvent(KeyEvent(key.NewRuneEvent(r, key.ModNone)))
	}
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyleValue returns the current cursor style for testing.
func (b *NullBackend) CursorStyleValue() CursorStyle {
	return b.cursorStyle
}

// ShowCount returns how many times Show was called.
func (b *NullBackend) ShowCount() int {
	return b.shows
}

// IsShutdown reports whether Shutdown was called since the last Init.
func (b *NullBackend) IsShutdown() bool {
	return b.shutdown
}

// RowText returns the runes of row y as a string, trailing spaces included.
func (b *NullBackend) RowText(y int) string {
	if y < 0 || y >= len(b.cells) {
		return ""
	}
	runes := make([]rune, 0, len(b.cells[y]))
	for _, c := range b.cells[y] {
		runes = append(runes, c.Rune)
	}
	return string(runes)
}

// Resize simulates a terminal resize for testing.
// The grid is cleared and an EventResize is queued.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.cells = newGrid(width, height)
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

func (b *NullBackend) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height && y < len(b.cells)
}

func newGrid(width, height int) [][]core.Cell {
	cells := make([][]core.Cell, height)
	for i := range cells {
		cells[i] = make([]core.Cell, width)
		for j := range cells[i] {
			cells[i][j] = core.EmptyCell()
		}
	}
	return cells
}
