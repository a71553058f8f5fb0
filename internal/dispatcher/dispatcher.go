package dispatcher

import (
	"github.com/dshills/mote/internal/dispatcher/handler"
	"github.com/dshills/mote/internal/engine/buffer"
	"github.com/dshills/mote/internal/engine/cursor"
	"github.com/dshills/mote/internal/input"
	"github.com/dshills/mote/internal/input/mode"
)

// Dispatcher applies actions to the editor state.
type Dispatcher struct {
	state     State
	config    Config
	metrics   *Metrics
	postHooks []PostDispatchHook
}

// New creates a dispatcher editing buf with the given configuration.
func New(buf *buffer.Buffer, config Config) *Dispatcher {
	d := &Dispatcher{
		state:  NewState(buf),
		config: config,
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a dispatcher with the default configuration.
func NewWithDefaults(buf *buffer.Buffer) *Dispatcher {
	return New(buf, DefaultConfig())
}

// State returns a pointer to the current state for reading.
// Callers must not mutate it.
func (d *Dispatcher) State() *State {
	return &d.state
}

// Cursor returns the current cursor.
func (d *Dispatcher) Cursor() cursor.Cursor {
	return d.state.Cursor
}

// Buffer returns the edited buffer.
func (d *Dispatcher) Buffer() *buffer.Buffer {
	return d.state.Buffer
}

// Mode returns the current mode.
func (d *Dispatcher) Mode() mode.Mode {
	return d.state.Mode
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

// Metrics returns the metrics collector, or nil if metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// AddPostHook registers a hook called after every dispatch.
func (d *Dispatcher) AddPostHook(h PostDispatchHook) {
	d.postHooks = append(d.postHooks, h)
}

// Dispatch applies one action and returns its outcome.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	result := d.apply(action)

	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Kind.String(), result)
	}
	for _, h := range d.postHooks {
		h.PostDispatch(action, &d.state, result)
	}
	return result
}

// DispatchAll applies actions in order and stops after a quit result.
// It returns the last result, or a no-op result for an empty slice.
func (d *Dispatcher) DispatchAll(actions ...input.Action) handler.Result {
	result := handler.NoOp()
	for _, a := range actions {
		result = d.Dispatch(a)
		if result.IsQuit() {
			break
		}
	}
	return result
}

func (d *Dispatcher) apply(action input.Action) handler.Result {
	switch action.Kind {
	case input.ActionQuit:
		return handler.Quit()
	case input.ActionMoveUp:
		return d.move((*cursor.Cursor).MoveUp)
	case input.ActionMoveDown:
		return d.move((*cursor.Cursor).MoveDown)
	case input.ActionMoveLeft:
		return d.move((*cursor.Cursor).MoveLeft)
	case input.ActionMoveRight:
		return d.move((*cursor.Cursor).MoveRight)
	case input.ActionInsertChar:
		return d.insertChar(action.Char)
	case input.ActionRemoveChar:
		return d.removeChar()
	case input.ActionNewLine:
		return d.newLine()
	case input.ActionChangeMode:
		return d.changeMode(action.Mode)
	case input.ActionNone:
		return handler.NoOp()
	default:
		return handler.NoOpWithMessage("unknown action")
	}
}
