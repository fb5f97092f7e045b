//go:build linux

package trainer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tinygo.org/x/bluetooth"

	"github.com/cytraco/cytraco/internal/util/retry"
)

var ftmsUUID = bluetooth.New16BitUUID(FTMSServiceUUID)

// BLEDirectory discovers FTMS trainers through the host's default adapter.
type BLEDirectory struct {
	adapter *bluetooth.Adapter
	opts    Options

	enableOnce sync.Once
	enableErr  error

	// connect opens and closes one connection. Replaced in tests.
	connect func(bluetooth.Address) error

	// pending is closed when the last connect attempt returns. BlueZ
	// rejects a second connect to an address with one in progress.
	mu      sync.Mutex
	pending chan struct{}
}

// NewBLEDirectory returns a directory bound to bluetooth.DefaultAdapter.
// The adapter is enabled lazily on first use.
func NewBLEDirectory(opts Options) *BLEDirectory {
	d := &BLEDirectory{
		adapter: bluetooth.DefaultAdapter,
		opts:    opts.withDefaults(),
	}
	d.connect = d.connectAdapter
	return d
}

func (d *BLEDirectory) enable() error {
	d.enableOnce.Do(func() {
		d.enableErr = d.adapter.Enable()
	})
	return d.enableErr
}

// Scan listens for FTMS advertisements for the configured scan window.
// An empty result is not an error. Adapter failures wrap ErrScan; a
// cancelled ctx returns ctx.Err().
func (d *BLEDirectory) Scan(ctx context.Context) ([]Device, error) {
	if err := d.enable(); err != nil {
		return nil, fmt.Errorf("%w: enable adapter: %v", ErrScan, err)
	}

	scanCtx, cancel := context.WithTimeout(ctx, d.opts.ScanTimeout)
	defer cancel()

	found := NewCollector()
	done := make(chan error, 1)
	go func() {
		done <- d.adapter.Scan(func(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
			if !result.HasServiceUUID(ftmsUUID) {
				return
			}
			found.Add(result.LocalName(), result.Address.String(), int(result.RSSI))
		})
	}()

	d.opts.Logger.V(1).Info("scanning for trainers", "timeout", d.opts.ScanTimeout)

	select {
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScan, err)
		}
	case <-scanCtx.Done():
		if err := d.adapter.StopScan(); err != nil {
			return nil, fmt.Errorf("%w: stop scan: %v", ErrScan, err)
		}
		if err := <-done; err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScan, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	devices := found.Devices()
	d.opts.Logger.V(1).Info("scan finished", "devices", len(devices))
	return devices, nil
}

// Reachable reports whether a connection to address can be opened. The
// connection is closed again immediately. Every failure, including an
// unparsable address, yields false.
func (d *BLEDirectory) Reachable(ctx context.Context, address string) bool {
	mac, err := bluetooth.ParseMAC(address)
	if err != nil {
		d.opts.Logger.Info("configured trainer address is invalid", "address", address, "error", err.Error())
		return false
	}
	if err := d.enable(); err != nil {
		d.opts.Logger.Info("bluetooth adapter unavailable", "error", err.Error())
		return false
	}

	addr := bluetooth.Address{MACAddress: bluetooth.MACAddress{MAC: mac}}

	err = retry.Do(ctx, func(attempt int) error {
		d.opts.Logger.V(1).Info("probing trainer", "address", address, "attempt", attempt)
		return d.connectOnce(ctx, addr)
	}, retry.WithMaxRetries(d.opts.ConnectRetries))
	if err != nil {
		d.opts.Logger.Info("trainer not reachable", "address", address, "error", err.Error())
		return false
	}
	return true
}

func (d *BLEDirectory) connectOnce(ctx context.Context, addr bluetooth.Address) error {
	if err := d.waitPending(ctx); err != nil {
		return retry.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(ctx, d.opts.ConnectTimeout)
	defer cancel()

	finished := make(chan struct{})
	d.mu.Lock()
	d.pending = finished
	d.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		defer close(finished)
		done <- d.connect(addr)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("connect timed out after %s", d.opts.ConnectTimeout)
		}
		return retry.Fatal(ctx.Err())
	}
}

// waitPending blocks until a connect attempt abandoned by an earlier
// timeout has returned.
func (d *BLEDirectory) waitPending(ctx context.Context) error {
	d.mu.Lock()
	pending := d.pending
	d.mu.Unlock()
	if pending == nil {
		return nil
	}

	select {
	case <-pending:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *BLEDirectory) connectAdapter(addr bluetooth.Address) error {
	device, err := d.adapter.Connect(addr, bluetooth.ConnectionParams{})
	if err != nil {
		return err
	}
	// Reachability only; a late connection after a timeout is closed too.
	_ = device.Disconnect()
	return nil
}
