package setup

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/cytraco/cytraco/internal/bootstrap"
	"github.com/cytraco/cytraco/internal/trainer"
)

// Device list values for the non-device options.
const (
	listRetry = -1
	listExit  = -2
)

// Form is the interactive terminal Prompter.
type Form struct {
	// Accessible renders prompts as plain questions for screen readers.
	Accessible bool
}

// NewForm returns a Form prompter.
func NewForm() *Form {
	return &Form{}
}

// PromptThreshold implements bootstrap.Prompter.
func (f *Form) PromptThreshold(ctx context.Context) (bootstrap.ThresholdAnswer, error) {
	var input string

	err := f.run(ctx, huh.NewGroup(
		huh.NewInput().
			Title("FTP (Functional Threshold Power)").
			Description("Your FTP in watts. Type \"exit\" to cancel.").
			Placeholder("250").
			Value(&input).
			Validate(validateThreshold),
	).Title("Threshold"))
	if err != nil {
		return bootstrap.ThresholdAnswer{}, err
	}

	watts, exit, err := parseThreshold(input)
	if err != nil {
		return bootstrap.ThresholdAnswer{}, err
	}
	if exit {
		return bootstrap.ThresholdAnswer{Choice: bootstrap.ChoiceExit}, nil
	}
	return bootstrap.ThresholdValue(watts), nil
}

// PromptNoDevices implements bootstrap.Prompter.
func (f *Form) PromptNoDevices(ctx context.Context) (bootstrap.Choice, error) {
	return f.choose(ctx, "No trainers found", "Make sure the trainer is awake and not paired elsewhere.",
		bootstrap.NoDevicesChoices())
}

// PromptSingleDevice implements bootstrap.Prompter.
func (f *Form) PromptSingleDevice(ctx context.Context, device trainer.Device) (bootstrap.Choice, error) {
	return f.choose(ctx, "Found trainer", device.String(), bootstrap.SingleDeviceChoices())
}

// PromptMultipleDevices implements bootstrap.Prompter.
func (f *Form) PromptMultipleDevices(ctx context.Context, devices []trainer.Device) (bootstrap.DeviceAnswer, error) {
	value := 0

	err := f.run(ctx, huh.NewGroup(
		huh.NewSelect[int]().
			Title(fmt.Sprintf("Found %d trainers", len(devices))).
			Description("Choose the trainer to pair").
			Options(deviceOptions(devices)...).
			Value(&value),
	))
	if err != nil {
		return bootstrap.DeviceAnswer{}, err
	}
	return deviceAnswer(value), nil
}

// PromptReconnectFailed implements bootstrap.Prompter.
func (f *Form) PromptReconnectFailed(ctx context.Context, address string) (bootstrap.Choice, error) {
	return f.choose(ctx, "Could not connect to trainer", address, bootstrap.ReconnectChoices())
}

func (f *Form) choose(ctx context.Context, title, description string, set []bootstrap.Choice) (bootstrap.Choice, error) {
	choice := set[0]

	err := f.run(ctx, huh.NewGroup(
		huh.NewSelect[bootstrap.Choice]().
			Title(title).
			Description(description).
			Options(choiceOptions(set)...).
			Value(&choice),
	))
	if err != nil {
		return 0, err
	}
	return choice, nil
}

func (f *Form) run(ctx context.Context, group *huh.Group) error {
	err := huh.NewForm(group).
		WithAccessible(f.Accessible).
		RunWithContext(ctx)
	return formError(ctx, err)
}

// formError maps an aborted form to bootstrap.ErrInterrupted.
func formError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) || ctx.Err() != nil {
		return bootstrap.ErrInterrupted
	}
	return fmt.Errorf("prompt: %w", err)
}

// choiceOptions converts a choice set to huh options.
func choiceOptions(set []bootstrap.Choice) []huh.Option[bootstrap.Choice] {
	opts := make([]huh.Option[bootstrap.Choice], len(set))
	for i, c := range set {
		opts[i] = huh.NewOption(choiceTitle(c), c)
	}
	return opts
}

func choiceTitle(c bootstrap.Choice) string {
	switch c {
	case bootstrap.ChoiceContinue:
		return "Use this trainer"
	case bootstrap.ChoiceRetry:
		return "Scan again"
	case bootstrap.ChoiceScan:
		return "Scan for another trainer"
	case bootstrap.ChoiceDemo:
		return "Continue in demo mode"
	case bootstrap.ChoiceExit:
		return "Exit"
	default:
		return c.String()
	}
}

// deviceOptions lists devices in scan order followed by retry and exit.
func deviceOptions(devices []trainer.Device) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(devices)+2)
	for i, d := range devices {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d. %s", i+1, d), i))
	}
	return append(opts,
		huh.NewOption(choiceTitle(bootstrap.ChoiceRetry), listRetry),
		huh.NewOption(choiceTitle(bootstrap.ChoiceExit), listExit),
	)
}

func deviceAnswer(value int) bootstrap.DeviceAnswer {
	switch value {
	case listRetry:
		return bootstrap.DeviceAnswer{Choice: bootstrap.ChoiceRetry}
	case listExit:
		return bootstrap.DeviceAnswer{Choice: bootstrap.ChoiceExit}
	default:
		return bootstrap.SelectDevice(value)
	}
}
