package bootstrap

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/oklog/ulid/v2"

	"github.com/cytraco/cytraco/internal/config"
	"github.com/cytraco/cytraco/internal/metrics"
	"github.com/cytraco/cytraco/internal/trainer"
)

// Orchestrator runs the setup state machine against its collaborators.
// One Orchestrator may run several times, but not concurrently.
type Orchestrator struct {
	store    Store
	dir      Directory
	prompter Prompter
	log      logr.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger. Transitions are logged at V(1).
func WithLogger(log logr.Logger) Option {
	return func(o *Orchestrator) {
		o.log = log
	}
}

// WithMetrics records run metrics into rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(o *Orchestrator) {
		o.metrics = rec
	}
}

// New returns an Orchestrator over the given collaborators.
func New(store Store, dir Directory, prompter Prompter, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:    store,
		dir:      dir,
		prompter: prompter,
		log:      logr.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run performs the interactive setup: it loads or acquires the threshold,
// then reconnects to the configured trainer or lets the rider pick one.
func (o *Orchestrator) Run(ctx context.Context) (Outcome, error) {
	return o.run(ctx, false)
}

// RunDemo is the forced demo entry point. It only makes sure a threshold is
// known, then completes in demo mode without touching any device state. A
// stored trainer address is kept.
func (o *Orchestrator) RunDemo(ctx context.Context) (Outcome, error) {
	return o.run(ctx, true)
}

// session is the mutable state of one run.
type session struct {
	o           *Orchestrator
	log         logr.Logger
	forceDemo   bool
	cfg         config.Config
	devices     []trainer.Device
	demo        bool
	interrupted bool
}

func (o *Orchestrator) run(ctx context.Context, forceDemo bool) (Outcome, error) {
	started := o.now()
	runID := ulid.MustNew(ulid.Timestamp(started), rand.Reader).String()
	s := &session{
		o:         o,
		log:       o.log.WithValues("run", runID),
		forceDemo: forceDemo,
	}

	outcome, err := s.drive(ctx)

	label := outcome.Status.String()
	if err != nil {
		label = "failed"
	}
	o.metrics.Finished(label, o.now().Sub(started))
	return outcome, err
}

func (s *session) drive(ctx context.Context) (Outcome, error) {
	state, err := s.start()
	if err != nil {
		return Outcome{}, err
	}

	for {
		if state.Terminal() {
			return s.finish(state)
		}

		next, err := s.step(ctx, state)
		if err != nil {
			s.log.Info("bootstrap failed", "state", state.String(), "error", err.Error())
			return Outcome{}, err
		}
		s.log.V(1).Info("transition", "state", state.String(), "next", next.String())
		state = next
	}
}

// start loads the stored configuration and picks the initial state.
func (s *session) start() (State, error) {
	cfg, err := s.o.store.Load()
	switch {
	case err == nil:
		s.cfg = cfg
		return StateLoadedConfiguration, nil
	case errors.Is(err, config.ErrNotFound):
		s.log.V(1).Info("no stored configuration")
		return StateAcquireThreshold, nil
	case errors.Is(err, config.ErrMalformed):
		return 0, newError(KindValidation, "stored configuration is invalid", err)
	default:
		return 0, newError(KindPersistence, "failed to read configuration", err)
	}
}

func (s *session) step(ctx context.Context, state State) (State, error) {
	switch state {
	case StateAcquireThreshold:
		return s.acquireThreshold(ctx)
	case StateLoadedConfiguration:
		return s.afterThreshold(), nil
	case StateTestConfiguredDevice:
		return s.testConfiguredDevice(ctx), nil
	case StatePromptReconnect:
		return s.promptReconnect(ctx)
	case StateScanForDevices:
		return s.scan(ctx)
	case StatePromptNoDevices:
		return s.promptNoDevices(ctx)
	case StatePromptSingleDevice:
		return s.promptSingleDevice(ctx)
	case StatePromptMultipleDevices:
		return s.promptMultipleDevices(ctx)
	default:
		return 0, newError(KindPrompt, fmt.Sprintf("no transition from %s", state), nil)
	}
}

// finish performs the terminal transition. Completion persists the
// configuration exactly once; cancellation writes nothing.
func (s *session) finish(state State) (Outcome, error) {
	if state == StateCancelled {
		s.log.Info("setup cancelled", "interrupted", s.interrupted)
		return Outcome{Status: StatusCancelled, Interrupted: s.interrupted}, nil
	}

	err := s.o.store.Save(s.cfg)
	s.o.metrics.ConfigWritten(err)
	if err != nil {
		if errors.Is(err, config.ErrMalformed) {
			return Outcome{}, newError(KindValidation, "refusing to save invalid configuration", err)
		}
		return Outcome{}, newError(KindPersistence, "failed to save configuration", err)
	}

	s.log.Info("setup completed", "ftp", s.cfg.ThresholdPower, "device", s.cfg.DeviceAddress, "demo", s.demo)
	return Outcome{Status: StatusCompleted, Config: s.cfg, DemoMode: s.demo}, nil
}

// afterThreshold routes once a threshold is known.
func (s *session) afterThreshold() State {
	if s.forceDemo {
		s.demo = true
		return StateCompleted
	}
	if s.cfg.HasDevice() {
		return StateTestConfiguredDevice
	}
	return StateScanForDevices
}

func (s *session) acquireThreshold(ctx context.Context) (State, error) {
	answer, err := s.o.prompter.PromptThreshold(ctx)
	if err != nil {
		return s.promptFailed(ctx, StateAcquireThreshold, err)
	}
	if err := s.checkChoice(StateAcquireThreshold, answer.Choice, thresholdChoices); err != nil {
		return 0, err
	}
	if answer.Choice == ChoiceExit {
		return StateCancelled, nil
	}

	cfg, err := config.New(answer.Watts)
	if err != nil {
		return 0, newError(KindPrompt, "threshold prompt returned an invalid value", err)
	}
	s.cfg = cfg
	return s.afterThreshold(), nil
}

func (s *session) testConfiguredDevice(ctx context.Context) State {
	address := s.cfg.DeviceAddress
	reachable := s.o.dir.Reachable(ctx, address)
	s.o.metrics.ReachabilityChecked(reachable)

	if ctx.Err() != nil {
		s.interrupted = true
		return StateCancelled
	}
	if !reachable {
		s.log.Info("configured trainer is not reachable", "address", address)
		return StatePromptReconnect
	}
	s.demo = false
	return StateCompleted
}

func (s *session) promptReconnect(ctx context.Context) (State, error) {
	choice, err := s.o.prompter.PromptReconnectFailed(ctx, s.cfg.DeviceAddress)
	if err != nil {
		return s.promptFailed(ctx, StatePromptReconnect, err)
	}
	if err := s.checkChoice(StatePromptReconnect, choice, reconnectChoices); err != nil {
		return 0, err
	}

	switch choice {
	case ChoiceRetry:
		return StateTestConfiguredDevice, nil
	case ChoiceScan:
		// In memory only; persisted with the next completion.
		s.cfg = s.cfg.WithoutDevice()
		return StateScanForDevices, nil
	case ChoiceDemo:
		return s.completeDemo(), nil
	default:
		return StateCancelled, nil
	}
}

func (s *session) scan(ctx context.Context) (State, error) {
	devices, err := s.o.dir.Scan(ctx)
	s.o.metrics.ScanCompleted(len(devices), err)
	if err != nil {
		if ctx.Err() != nil {
			s.interrupted = true
			return StateCancelled, nil
		}
		return 0, newError(KindTransport, "trainer scan failed", err)
	}

	s.devices = devices
	switch len(devices) {
	case 0:
		s.log.Info("no trainers found")
		return StatePromptNoDevices, nil
	case 1:
		return StatePromptSingleDevice, nil
	default:
		return StatePromptMultipleDevices, nil
	}
}

func (s *session) promptNoDevices(ctx context.Context) (State, error) {
	choice, err := s.o.prompter.PromptNoDevices(ctx)
	if err != nil {
		return s.promptFailed(ctx, StatePromptNoDevices, err)
	}
	if err := s.checkChoice(StatePromptNoDevices, choice, noDevicesChoices); err != nil {
		return 0, err
	}

	switch choice {
	case ChoiceRetry:
		return StateScanForDevices, nil
	case ChoiceDemo:
		return s.completeDemo(), nil
	default:
		return StateCancelled, nil
	}
}

func (s *session) promptSingleDevice(ctx context.Context) (State, error) {
	device := s.devices[0]
	choice, err := s.o.prompter.PromptSingleDevice(ctx, device)
	if err != nil {
		return s.promptFailed(ctx, StatePromptSingleDevice, err)
	}
	if err := s.checkChoice(StatePromptSingleDevice, choice, singleDeviceChoices); err != nil {
		return 0, err
	}

	switch choice {
	case ChoiceContinue:
		return s.pair(device), nil
	case ChoiceRetry:
		return StateScanForDevices, nil
	default:
		return StateCancelled, nil
	}
}

func (s *session) promptMultipleDevices(ctx context.Context) (State, error) {
	offered := append([]trainer.Device(nil), s.devices...)
	answer, err := s.o.prompter.PromptMultipleDevices(ctx, offered)
	if err != nil {
		return s.promptFailed(ctx, StatePromptMultipleDevices, err)
	}
	if err := s.checkChoice(StatePromptMultipleDevices, answer.Choice, multipleDeviceChoices); err != nil {
		return 0, err
	}

	switch answer.Choice {
	case ChoiceSelect:
		if answer.Index < 0 || answer.Index >= len(s.devices) {
			return 0, newError(KindPrompt,
				fmt.Sprintf("device index %d out of range [0,%d)", answer.Index, len(s.devices)), nil)
		}
		return s.pair(s.devices[answer.Index]), nil
	case ChoiceRetry:
		return StateScanForDevices, nil
	default:
		return StateCancelled, nil
	}
}

func (s *session) pair(device trainer.Device) State {
	s.log.Info("trainer selected", "name", device.Name, "address", device.Address)
	s.cfg = s.cfg.WithDevice(device.Address)
	s.demo = false
	return StateCompleted
}

func (s *session) completeDemo() State {
	s.cfg = s.cfg.WithoutDevice()
	s.demo = true
	return StateCompleted
}

// checkChoice rejects answers outside the prompt's closed set and records
// accepted ones.
func (s *session) checkChoice(state State, c Choice, set []Choice) error {
	if !allowed(c, set) {
		return newError(KindPrompt, fmt.Sprintf("unexpected choice %s at %s", c, state), nil)
	}
	s.o.metrics.Prompted(state.promptName(), c.String())
	return nil
}

// promptFailed maps a prompter error: interrupts cancel the run, anything
// else is fatal.
func (s *session) promptFailed(ctx context.Context, state State, err error) (State, error) {
	if errors.Is(err, ErrInterrupted) || ctx.Err() != nil {
		s.interrupted = true
		s.o.metrics.Prompted(state.promptName(), "interrupt")
		return StateCancelled, nil
	}
	return 0, newError(KindPrompt, fmt.Sprintf("%s prompt failed", state), err)
}
