package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/cytraco/cytraco/internal/bootstrap"
	"github.com/cytraco/cytraco/internal/trainer"
)

// ProgressDirectory shows a ScanModel while the wrapped directory scans.
type ProgressDirectory struct {
	inner   bootstrap.Directory
	out     io.Writer
	timeout time.Duration
	log     logr.Logger
}

// NewProgressDirectory wraps inner. The spinner is drawn on out.
func NewProgressDirectory(inner bootstrap.Directory, out io.Writer, timeout time.Duration, log logr.Logger) *ProgressDirectory {
	return &ProgressDirectory{inner: inner, out: out, timeout: timeout, log: log}
}

// Scan implements bootstrap.Directory.
func (d *ProgressDirectory) Scan(ctx context.Context) ([]trainer.Device, error) {
	p := tea.NewProgram(NewScanModel(d.timeout),
		tea.WithContext(ctx),
		tea.WithOutput(d.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	var (
		devices []trainer.Device
		scanErr error
		done    = make(chan struct{})
	)
	go func() {
		defer close(done)
		devices, scanErr = d.inner.Scan(ctx)
		p.Send(ScanDoneMsg{Found: len(devices), Err: scanErr})
	}()

	if _, err := p.Run(); err != nil {
		d.log.V(1).Info("scan progress view stopped", "error", err.Error())
	}
	<-done
	return devices, scanErr
}

// Reachable implements bootstrap.Directory.
func (d *ProgressDirectory) Reachable(ctx context.Context, address string) bool {
	return d.inner.Reachable(ctx, address)
}
