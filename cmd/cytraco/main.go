// Package main is the entry point for the cytraco CLI.
//
// cytraco sets up indoor cycling sessions: it keeps the rider's FTP and the
// paired BLE trainer in a small configuration file, reconnects to that
// trainer on start, or scans for FTMS trainers and lets the rider pick one.
//
// For detailed usage information, run:
//
//	cytraco --help
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cytraco/cytraco/cmd/cytraco/commands"
	"github.com/cytraco/cytraco/cmd/cytraco/handlers"
	"github.com/cytraco/cytraco/internal/ui/tui"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Root().ExecuteContext(ctx)
	stop()

	os.Exit(exitCode(err, os.Stderr))
}

// exitCode maps the command result to a process exit code and reports
// fatal errors on w.
func exitCode(err error, w io.Writer) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, handlers.ErrInterrupted):
		return exitInterrupted
	default:
		fmt.Fprint(w, tui.RenderError(err))
		return exitError
	}
}
