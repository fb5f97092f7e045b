package bootstrap

import "github.com/cytraco/cytraco/internal/config"

// Status tells a completed run from a cancelled one.
type Status int

const (
	StatusCompleted Status = iota + 1
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Outcome is the result of a bootstrap run that did not fail.
type Outcome struct {
	Status Status

	// Config is the persisted configuration. Zero when cancelled.
	Config config.Config

	// DemoMode is set when setup completed without a trainer.
	DemoMode bool

	// Interrupted is set when cancellation came from Ctrl+C or a signal
	// rather than an explicit exit choice or end of input.
	Interrupted bool
}

// Completed reports whether setup finished and the configuration was saved.
func (o Outcome) Completed() bool {
	return o.Status == StatusCompleted
}

// Cancelled reports whether the rider abandoned setup.
func (o Outcome) Cancelled() bool {
	return o.Status == StatusCancelled
}
