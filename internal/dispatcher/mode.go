package dispatcher

import (
	"github.com/dshills/mote/internal/dispatcher/handler"
	"github.com/dshills/mote/internal/input/mode"
)

// changeMode switches to m. Switching to the current mode is a no-op.
func (d *Dispatcher) changeMode(m mode.Mode) handler.Result {
	if !m.Valid() {
		return handler.NoOpWithMessage("unknown mode")
	}
	if d.state.Mode == m {
		return handler.NoOp()
	}
	d.state.Mode = m
	return handler.ModeChange()
}
