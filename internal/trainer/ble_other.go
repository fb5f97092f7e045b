//go:build !linux

package trainer

import (
	"context"
	"fmt"
	"runtime"
)

// BLEDirectory is unavailable on this platform: Scan fails with ErrScan
// and Reachable reports false.
type BLEDirectory struct {
	opts Options
}

// NewBLEDirectory returns a directory that reports the platform as unsupported.
func NewBLEDirectory(opts Options) *BLEDirectory {
	return &BLEDirectory{opts: opts.withDefaults()}
}

// Scan always fails with ErrScan.
func (d *BLEDirectory) Scan(_ context.Context) ([]Device, error) {
	return nil, fmt.Errorf("%w: bluetooth is not supported on %s", ErrScan, runtime.GOOS)
}

// Reachable always reports false.
func (d *BLEDirectory) Reachable(_ context.Context, address string) bool {
	d.opts.Logger.Info("bluetooth is not supported on this platform", "os", runtime.GOOS, "address", address)
	return false
}
