package trainer

import (
	"time"

	"github.com/go-logr/logr"
)

// Defaults for BLE discovery.
const (
	DefaultScanTimeout    = 10 * time.Second
	DefaultConnectTimeout = 10 * time.Second
	DefaultConnectRetries = 1
)

// Options configures a BLEDirectory.
type Options struct {
	// ScanTimeout bounds one discovery window.
	ScanTimeout time.Duration

	// ConnectTimeout bounds one reachability connection attempt.
	ConnectTimeout time.Duration

	// ConnectRetries is the number of extra attempts after a failed probe.
	ConnectRetries int

	Logger logr.Logger
}

func (o Options) withDefaults() Options {
	if o.ScanTimeout <= 0 {
		o.ScanTimeout = DefaultScanTimeout
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = DefaultConnectTimeout
	}
	if o.ConnectRetries < 0 {
		o.ConnectRetries = 0
	}
	if o.Logger.GetSink() == nil {
		o.Logger = logr.Discard()
	}
	return o
}
