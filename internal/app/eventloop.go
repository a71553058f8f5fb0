package app

import (
	"github.com/dshills/mote/internal/dispatcher"
	"github.com/dshills/mote/internal/dispatcher/handler"
	"github.com/dshills/mote/internal/input"
	"github.com/dshills/mote/internal/input/key"
	"github.com/dshills/mote/internal/renderer"
	"github.com/dshills/mote/internal/renderer/backend"
)

// eventLoop draws a frame, waits for one event and handles it, until the
// session ends. It returns ErrQuit after a quit action.
func (app *Application) eventLoop() error {
	for {
		if err := app.draw(); err != nil {
			return err
		}

		ev := app.backend.PollEvent()
		if err := app.handleBackendEvent(ev); err != nil {
			return err
		}
	}
}

// handleBackendEvent processes one backend event.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKeyEvent(ev.Key)
	case backend.EventResize:
		app.metrics.RecordResize()
		app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
		return nil
	case backend.EventInterrupt:
		return ErrInterrupted
	case backend.EventClosed:
		return ErrBackendClosed
	default:
		return nil
	}
}

// handleKeyEvent resolves a key under the current mode and dispatches it.
func (app *Application) handleKeyEvent(ev key.Event) error {
	timer := StartTimer()

	action, ok := input.Resolve(ev, app.dispatcher.Mode())
	if !ok {
		app.metrics.RecordUnresolved()
		app.logger.Debug("unmapped key %s in %s mode", ev, app.dispatcher.Mode().Name())
		return nil
	}

	result := app.dispatcher.Dispatch(action)
	app.metrics.RecordInput(timer.Elapsed())

	if result.IsQuit() {
		return ErrQuit
	}
	return nil
}

// draw renders the current editor state.
func (app *Application) draw() error {
	timer := StartTimer()
	state := app.dispatcher.State()

	err := app.renderer.Render(renderer.Frame{
		Lines:  state.Buffer,
		Cursor: state.Cursor,
		Mode:   state.Mode,
	})
	if err != nil {
		return NewComponentError("renderer", "render", err)
	}

	app.metrics.RecordFrame(timer.Elapsed())
	return nil
}

// logDispatch is the dispatcher post hook. Every result, no-ops included,
// is logged at debug level.
func (app *Application) logDispatch(action input.Action, state *dispatcher.State, result handler.Result) {
	if !app.logger.Enabled(LogLevelDebug) {
		return
	}

	l := app.logger.WithFields(map[string]any{
		"action": action.String(),
		"status": result.Status,
		"cursor": state.Cursor,
		"mode":   state.Mode.Name(),
	})
	if result.Message != "" {
		l.Debug("dispatch: %s", result.Message)
		return
	}
	l.Debug("dispatch")
}
