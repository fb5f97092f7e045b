package bootstrap

import (
	"context"

	"github.com/cytraco/cytraco/internal/config"
	"github.com/cytraco/cytraco/internal/trainer"
)

// Store loads and saves the configuration.
//
// Load returns an error matching config.ErrNotFound when nothing has been
// saved yet and config.ErrMalformed when the stored record is invalid.
type Store interface {
	Load() (config.Config, error)
	Save(cfg config.Config) error
}

// Directory discovers trainers.
//
// Scan returns an empty slice, not an error, when nothing is found. A
// transport failure is an error. Reachable must report false instead of
// failing when the device cannot be reached.
type Directory interface {
	Scan(ctx context.Context) ([]trainer.Device, error)
	Reachable(ctx context.Context, address string) bool
}

// Prompter asks the rider to decide. Each method returns one choice from
// that prompt's closed set. End of input is reported as ChoiceExit; an
// interrupt (Ctrl+C) is reported as ErrInterrupted.
type Prompter interface {
	PromptThreshold(ctx context.Context) (ThresholdAnswer, error)
	PromptNoDevices(ctx context.Context) (Choice, error)
	PromptSingleDevice(ctx context.Context, device trainer.Device) (Choice, error)
	PromptMultipleDevices(ctx context.Context, devices []trainer.Device) (DeviceAnswer, error)
	PromptReconnectFailed(ctx context.Context, address string) (Choice, error)
}
