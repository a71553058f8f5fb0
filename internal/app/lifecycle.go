package app

import (
	"github.com/dshills/mote/internal/input/key"
	"github.com/dshills/mote/internal/renderer/backend"
)

// SavePrompt is shown after quit. Only the SaveKey answer writes the file.
const (
	SavePrompt = "Write to file?"
	SaveKey    = 'w'
)

// promptSave shows the save prompt and waits for one key.
// Resizes redraw the prompt and keep waiting. An interrupt or a closed
// backend ends the session without writing.
func (app *Application) promptSave() error {
	for {
		if err := app.drawPrompt(); err != nil {
			return err
		}

		ev := app.backend.PollEvent()
		switch ev.Type {
		case backend.EventKey:
			if !isSaveAnswer(ev.Key) {
				app.logger.Info("changes discarded (answer %s)", ev.Key)
				return nil
			}
			return app.SaveDocument()
		case backend.EventResize:
			app.metrics.RecordResize()
		case backend.EventInterrupt:
			return ErrInterrupted
		case backend.EventClosed:
			return ErrBackendClosed
		}
	}
}

// drawPrompt shows the prompt alone on a cleared screen.
func (app *Application) drawPrompt() error {
	app.backend.Clear()
	if err := app.renderer.RenderPrompt(SavePrompt); err != nil {
		return NewComponentError("renderer", "prompt", err)
	}
	return nil
}

func isSaveAnswer(ev key.Event) bool {
	return ev.IsRuneKey(SaveKey)
}

// SaveDocument writes the buffer back to its file.
func (app *Application) SaveDocument() error {
	if err := app.document.Save(); err != nil {
		app.logger.Error("%v", err)
		return err
	}
	app.saved = true
	app.logger.Info("wrote %s (%d lines)", app.document.Path, app.document.Buffer().LineCount())
	return nil
}
