// Package main is the entry point for the mote editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/mote/internal/app"
	"github.com/dshills/mote/internal/config"
	"github.com/dshills/mote/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// exitInterrupted is returned when a signal ends the session.
const exitInterrupted = 130

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	path        string
	configPath  string
	showVersion bool
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 1
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "mote %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger, closer, err := app.OpenLogger(cfg.Logging())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(stderr, "Error: %v\n", app.ErrNotTerminal)
		return 1
	}

	screen, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{
		Path:    opts.path,
		Config:  cfg,
		Backend: screen,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if src := cfg.Source(); src != "" {
		application.Logger().Info("config loaded from %s", src)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			application.Interrupt()
		}
	}()

	return exitCode(application.Run(), stderr)
}

// exitCode reports err on stderr and maps it to a process exit status.
func exitCode(err error, stderr io.Writer) int {
	var panicErr *app.RecoveredPanicError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, app.ErrInterrupted):
		return exitInterrupted
	case errors.As(err, &panicErr):
		fmt.Fprintf(stderr, "Error: %s\n", panicErr.Summary())
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("mote", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml or .json)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "mote - a minimal modal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: mote [options] <filename>\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  normal  h j k l move, i insert, q quit\n")
		fmt.Fprintf(stderr, "  insert  type to insert, Enter split, Backspace delete, Esc normal\n")
		fmt.Fprintf(stderr, "  on quit, answer w to write the file\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.showVersion {
		return opts, nil
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return opts, app.ErrNoFile
	}
	opts.path = fs.Arg(0)
	return opts, nil
}

// loadConfig loads an explicit config file, or the default one if present.
func loadConfig(path string) (*config.Config, error) {
	cfg := config.New()
	if path != "" {
		return cfg, cfg.LoadFile(path)
	}
	return cfg, cfg.LoadDefault()
}
