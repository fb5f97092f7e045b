package testing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cytraco/cytraco/internal/bootstrap"
	"github.com/cytraco/cytraco/internal/config"
	"github.com/cytraco/cytraco/internal/trainer"
)

// MemoryStore is an in-memory bootstrap.Store.
type MemoryStore struct {
	mu      sync.Mutex
	cfg     *config.Config
	loadErr error
	saveErr error
	saves   []config.Config
}

// NewMemoryStore returns an empty store; Load reports config.ErrNotFound.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// With seeds the stored configuration.
func (s *MemoryStore) With(cfg config.Config) *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = &cfg
	return s
}

// WithLoadError makes Load fail with err.
func (s *MemoryStore) WithLoadError(err error) *MemoryStore {
	s.loadErr = err
	return s
}

// WithSaveError makes Save fail with err.
func (s *MemoryStore) WithSaveError(err error) *MemoryStore {
	s.saveErr = err
	return s
}

// Load implements bootstrap.Store.
func (s *MemoryStore) Load() (config.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return config.Config{}, s.loadErr
	}
	if s.cfg == nil {
		return config.Config{}, fmt.Errorf("memory store: %w", config.ErrNotFound)
	}
	return *s.cfg, nil
}

// Save implements bootstrap.Store.
func (s *MemoryStore) Save(cfg config.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.saves = append(s.saves, cfg)
	s.cfg = &cfg
	return nil
}

// Saves returns every configuration written so far.
func (s *MemoryStore) Saves() []config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]config.Config(nil), s.saves...)
}

// Stored returns the current record and whether one exists.
func (s *MemoryStore) Stored() (config.Config, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg == nil {
		return config.Config{}, false
	}
	return *s.cfg, true
}

// FakeDirectory is a scripted bootstrap.Directory. Each Scan call consumes
// the next scripted result; the last one repeats.
type FakeDirectory struct {
	mu         sync.Mutex
	scans      []scanResult
	reachable  []bool
	scanCalls  int
	reachCalls []string
	onScan     func()
}

type scanResult struct {
	devices []trainer.Device
	err     error
}

// NewFakeDirectory returns a directory that finds nothing and reaches
// nothing.
func NewFakeDirectory() *FakeDirectory {
	return &FakeDirectory{}
}

// WithScan queues one scan result.
func (d *FakeDirectory) WithScan(devices ...trainer.Device) *FakeDirectory {
	d.scans = append(d.scans, scanResult{devices: devices})
	return d
}

// WithScanError queues one failed scan.
func (d *FakeDirectory) WithScanError(err error) *FakeDirectory {
	d.scans = append(d.scans, scanResult{err: err})
	return d
}

// WithReachable queues reachability answers in call order; the last one
// repeats.
func (d *FakeDirectory) WithReachable(answers ...bool) *FakeDirectory {
	d.reachable = append(d.reachable, answers...)
	return d
}

// OnScan runs fn at the start of every Scan call.
func (d *FakeDirectory) OnScan(fn func()) *FakeDirectory {
	d.onScan = fn
	return d
}

// Scan implements bootstrap.Directory.
func (d *FakeDirectory) Scan(ctx context.Context) ([]trainer.Device, error) {
	if d.onScan != nil {
		d.onScan()
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scanCalls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(d.scans) == 0 {
		return []trainer.Device{}, nil
	}
	next := d.scans[0]
	if len(d.scans) > 1 {
		d.scans = d.scans[1:]
	}
	if next.err != nil {
		return nil, next.err
	}
	return append([]trainer.Device{}, next.devices...), nil
}

// Reachable implements bootstrap.Directory.
func (d *FakeDirectory) Reachable(_ context.Context, address string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reachCalls = append(d.reachCalls, address)
	if len(d.reachable) == 0 {
		return false
	}
	answer := d.reachable[0]
	if len(d.reachable) > 1 {
		d.reachable = d.reachable[1:]
	}
	return answer
}

// ScanCalls returns how many scans ran.
func (d *FakeDirectory) ScanCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scanCalls
}

// ReachableCalls returns the addresses probed, in order.
func (d *FakeDirectory) ReachableCalls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.reachCalls...)
}

// ErrScriptExhausted is returned by ScriptedPrompter when a prompt has no
// queued answer left.
var ErrScriptExhausted = errors.New("scripted prompter: no answer queued")

// Prompt names recorded by ScriptedPrompter.
const (
	PromptThreshold       = "threshold"
	PromptNoDevices       = "no_devices"
	PromptSingleDevice    = "single_device"
	PromptMultipleDevices = "multiple_devices"
	PromptReconnectFailed = "reconnect_failed"
)

type answer struct {
	threshold bootstrap.ThresholdAnswer
	device    bootstrap.DeviceAnswer
	choice    bootstrap.Choice
	err       error
}

// ScriptedPrompter is a bootstrap.Prompter that replays queued answers in
// order regardless of which prompt asks.
type ScriptedPrompter struct {
	mu      sync.Mutex
	queue   []answer
	shown   []string
	offered [][]trainer.Device
}

// NewScriptedPrompter returns a prompter with nothing queued.
func NewScriptedPrompter() *ScriptedPrompter {
	return &ScriptedPrompter{}
}

// Threshold queues a threshold value.
func (p *ScriptedPrompter) Threshold(watts int) *ScriptedPrompter {
	return p.push(answer{threshold: bootstrap.ThresholdValue(watts)})
}

// Choose queues a discrete choice. For the threshold prompt only
// ChoiceExit is meaningful; for the device list Choose queues
// DeviceAnswer{Choice: c}.
func (p *ScriptedPrompter) Choose(c bootstrap.Choice) *ScriptedPrompter {
	return p.push(answer{
		threshold: bootstrap.ThresholdAnswer{Choice: c},
		device:    bootstrap.DeviceAnswer{Choice: c},
		choice:    c,
	})
}

// SelectDevice queues a zero-based selection from the device list.
func (p *ScriptedPrompter) SelectDevice(index int) *ScriptedPrompter {
	return p.push(answer{device: bootstrap.SelectDevice(index), choice: bootstrap.ChoiceSelect})
}

// Fail queues an error, such as bootstrap.ErrInterrupted.
func (p *ScriptedPrompter) Fail(err error) *ScriptedPrompter {
	return p.push(answer{err: err})
}

func (p *ScriptedPrompter) push(a answer) *ScriptedPrompter {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue, a)
	return p
}

func (p *ScriptedPrompter) next(prompt string) (answer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shown = append(p.shown, prompt)
	if len(p.queue) == 0 {
		return answer{}, fmt.Errorf("%s: %w", prompt, ErrScriptExhausted)
	}
	a := p.queue[0]
	p.queue = p.queue[1:]
	return a, a.err
}

// Shown returns the prompts asked so far, in order.
func (p *ScriptedPrompter) Shown() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.shown...)
}

// Offered returns the device lists passed to PromptMultipleDevices.
func (p *ScriptedPrompter) Offered() [][]trainer.Device {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([][]trainer.Device(nil), p.offered...)
}

// Remaining returns how many answers are still queued.
func (p *ScriptedPrompter) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// PromptThreshold implements bootstrap.Prompter.
func (p *ScriptedPrompter) PromptThreshold(_ context.Context) (bootstrap.ThresholdAnswer, error) {
	a, err := p.next(PromptThreshold)
	return a.threshold, err
}

// PromptNoDevices implements bootstrap.Prompter.
func (p *ScriptedPrompter) PromptNoDevices(_ context.Context) (bootstrap.Choice, error) {
	a, err := p.next(PromptNoDevices)
	return a.choice, err
}

// PromptSingleDevice implements bootstrap.Prompter.
func (p *ScriptedPrompter) PromptSingleDevice(_ context.Context, _ trainer.Device) (bootstrap.Choice, error) {
	a, err := p.next(PromptSingleDevice)
	return a.choice, err
}

// PromptMultipleDevices implements bootstrap.Prompter.
func (p *ScriptedPrompter) PromptMultipleDevices(_ context.Context, devices []trainer.Device) (bootstrap.DeviceAnswer, error) {
	p.mu.Lock()
	p.offered = append(p.offered, append([]trainer.Device(nil), devices...))
	p.mu.Unlock()
	a, err := p.next(PromptMultipleDevices)
	return a.device, err
}

// PromptReconnectFailed implements bootstrap.Prompter.
func (p *ScriptedPrompter) PromptReconnectFailed(_ context.Context, _ string) (bootstrap.Choice, error) {
	a, err := p.next(PromptReconnectFailed)
	return a.choice, err
}
