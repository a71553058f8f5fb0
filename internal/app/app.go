// Package app hosts an editing session for mote. It wires the document,
// dispatcher, renderer and backend together and runs the event loop.
package app

import (
	"errors"
	"runtime/debug"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/mote/internal/config"
	"github.com/dshills/mote/internal/dispatcher"
	"github.com/dshills/mote/internal/renderer"
	"github.com/dshills/mote/internal/renderer/backend"
)

// Application is one editing session over a single file.
// Run must be called from one goroutine; Interrupt may be called from any.
type Application struct {
	config     *config.Config
	backend    backend.Backend
	renderer   *renderer.Renderer
	dispatcher *dispatcher.Dispatcher
	document   *Document

	logger    *Logger
	metrics   *Metrics
	sessionID string

	running atomic.Bool
	saved   bool
}

// Options configures the application.
type Options struct {
	// Path is the file to edit.
	Path string

	// Config supplies settings. Defaults are used when nil.
	Config *config.Config

	// Backend is the terminal to draw to and read keys from.
	Backend backend.Backend

	// Logger receives session logs. NullLogger is used when nil.
	Logger *Logger

	// Metrics collects timing. A fresh collector is used when nil.
	Metrics *Metrics
}

// New loads the document and builds a session around it.
// A file that cannot be read is an error.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, NewComponentError("backend", "init", errors.New("no backend"))
	}

	doc, err := OpenDocument(opts.Path)
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}

	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	app := &Application{
		config:    cfg,
		backend:   opts.Backend,
		document:  doc,
		metrics:   metrics,
		sessionID: uuid.NewString(),
	}
	app.logger = logger.WithField("session", app.sessionID)

	dispatcherConfig := dispatcher.DefaultConfig().
		WithClampMovement(cfg.Editor().ClampMovement)
	app.dispatcher = dispatcher.New(doc.Buffer(), dispatcherConfig)
	app.dispatcher.AddPostHook(dispatcher.PostDispatchFunc(app.logDispatch))

	renderOpts := renderer.DefaultOptions()
	renderOpts.StatusStyle = cfg.UI().StatusStyle()
	app.renderer = renderer.New(app.backend, renderOpts)

	app.logger.Info("opened %s (%d lines)", doc.Path, doc.Buffer().LineCount())
	return app, nil
}

// Run initializes the backend, runs the editing loop until quit, then asks
// whether to write the file. The backend is shut down before Run returns.
//
// Run returns nil after a normal quit, whether or not the file was written.
// It returns ErrInterrupted when Interrupt ended the session and
// ErrBackendClosed when the backend stopped delivering events.
func (app *Application) Run() (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer app.backend.Shutdown()

	defer func() {
		if r := recover(); r != nil {
			perr := NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("%v", perr)
			err = perr
		}
	}()

	defer app.logSummary()

	err = app.eventLoop()
	if errors.Is(err, ErrQuit) {
		return app.promptSave()
	}
	if err != nil {
		app.logger.Warn("session ended: %v", err)
	}
	return err
}

// Interrupt ends a running session without the save prompt.
func (app *Application) Interrupt() {
	app.backend.Interrupt()
}

// IsRunning returns true while Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Document returns the edited document.
func (app *Application) Document() *Document {
	return app.document
}

// Dispatcher returns the dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Config returns the configuration in use.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the session logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Metrics returns the session metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// SessionID returns the identifier logged with every session message.
func (app *Application) SessionID() string {
	return app.sessionID
}

// Saved reports whether the last Run wrote the file.
func (app *Application) Saved() bool {
	return app.saved
}

func (app *Application) logSummary() {
	fields := app.metrics.Snapshot().Fields()
	if dm := app.dispatcher.Metrics(); dm != nil {
		fields["actions"] = dm.TotalDispatches()
		fields["noops"] = dm.TotalNoOps()
		fields["edits"] = dm.TotalEdits()
	}
	fields["modified"] = app.document.IsModified()
	app.logger.WithFields(fields).Info("session summary")
}
