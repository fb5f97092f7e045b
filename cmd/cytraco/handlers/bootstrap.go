package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"

	"github.com/cytraco/cytraco/internal/bootstrap"
	"github.com/cytraco/cytraco/internal/config"
	"github.com/cytraco/cytraco/internal/logging"
	"github.com/cytraco/cytraco/internal/metrics"
	"github.com/cytraco/cytraco/internal/trainer"
	"github.com/cytraco/cytraco/internal/ui/setup"
	"github.com/cytraco/cytraco/internal/ui/tui"
)

// ErrInterrupted is returned when setup was cancelled by Ctrl+C or a
// signal. main maps it to exit code 130.
var ErrInterrupted = errors.New("setup interrupted")

// Options carries the root command flags.
type Options struct {
	ConfigPath      string
	Demo            bool
	ScanTimeout     time.Duration
	ConnectTimeout  time.Duration
	LogLevel        string
	LogFormat       string
	MetricsTextfile string
}

// Factory function variables - can be replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	// isTerminal reports whether prompts can use the interactive form.
	isTerminal = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	}

	newStore = func(path string) bootstrap.Store {
		return config.NewFileStore(path)
	}

	newDirectory = func(opts trainer.Options) bootstrap.Directory {
		return trainer.NewBLEDirectory(opts)
	}

	newPrompter = func(interactive bool) bootstrap.Prompter {
		if interactive {
			return setup.NewForm()
		}
		return setup.NewLine(stdin, stdout)
	}
)

// Bootstrap loads or creates the configuration and pairs a trainer, or
// completes in demo mode when opts.Demo is set.
func Bootstrap(ctx context.Context, opts Options) error {
	log, err := logging.New(logging.Options{
		Level:  opts.LogLevel,
		Format: opts.LogFormat,
		Output: stderr,
	})
	if err != nil {
		return err
	}

	path := resolveConfigPath(opts.ConfigPath)
	interactive := isTerminal()
	log.V(1).Info("starting setup", "config", path, "demo", opts.Demo, "interactive", interactive)

	var dir bootstrap.Directory = newDirectory(trainer.Options{
		ScanTimeout:    opts.ScanTimeout,
		ConnectTimeout: opts.ConnectTimeout,
		ConnectRetries: trainer.DefaultConnectRetries,
		Logger:         log.WithName("trainer"),
	})
	if interactive {
		dir = tui.NewProgressDirectory(dir, stdout, scanTimeout(opts), log.WithName("tui"))
	}

	rec := metrics.New()
	orch := bootstrap.New(newStore(path), dir, newPrompter(interactive),
		bootstrap.WithLogger(log.WithName("bootstrap")),
		bootstrap.WithMetrics(rec),
	)

	run := orch.Run
	if opts.Demo {
		run = orch.RunDemo
	}
	outcome, err := run(ctx)

	writeMetrics(log, rec, opts.MetricsTextfile)
	if err != nil {
		return err
	}

	printSummary(outcome, interactive)
	if outcome.Interrupted {
		return ErrInterrupted
	}
	return nil
}

func resolveConfigPath(path string) string {
	if path == "" {
		return config.DefaultPath()
	}
	return path
}

func scanTimeout(opts Options) time.Duration {
	if opts.ScanTimeout <= 0 {
		return trainer.DefaultScanTimeout
	}
	return opts.ScanTimeout
}

func writeMetrics(log logr.Logger, rec *metrics.Recorder, path string) {
	if path == "" {
		return
	}
	if err := rec.WriteTextfile(path); err != nil {
		log.Error(err, "failed to write metrics textfile", "path", path)
	}
}

func printSummary(outcome bootstrap.Outcome, styled bool) {
	if styled {
		_, _ = fmt.Fprint(stdout, "\n"+tui.RenderSummary(outcome))
		return
	}
	_, _ = fmt.Fprintln(stdout)
	for _, line := range tui.SummaryLines(outcome) {
		_, _ = fmt.Fprintln(stdout, line)
	}
}
