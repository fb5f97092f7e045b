package testing

import (
	"fmt"

	"github.com/cytraco/cytraco/internal/config"
	"github.com/cytraco/cytraco/internal/trainer"
)

// ConfigBuilder provides a fluent interface for constructing test configs.
// Each method returns a new builder (immutable) for chaining.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfigBuilder creates a ConfigBuilder with a 250W threshold and no
// device.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: config.Config{ThresholdPower: 250}}
}

// WithThreshold sets the threshold power in watts.
func (b *ConfigBuilder) WithThreshold(watts int) *ConfigBuilder {
	next := *b
	next.cfg.ThresholdPower = watts
	return &next
}

// WithDevice sets the paired device address.
func (b *ConfigBuilder) WithDevice(address string) *ConfigBuilder {
	next := *b
	next.cfg.DeviceAddress = address
	return &next
}

// Build returns the constructed config.
func (b *ConfigBuilder) Build() config.Config {
	return b.cfg
}

// MinimalConfig returns a threshold-only config.
func MinimalConfig() config.Config {
	return NewConfigBuilder().Build()
}

// PairedConfig returns a config with a device address.
func PairedConfig(address string) config.Config {
	return NewConfigBuilder().WithDevice(address).Build()
}

// TrainerX is the single trainer used across scenarios.
func TrainerX() trainer.Device {
	return trainer.Device{Name: "Trainer X", Address: "AA:BB:CC:DD:EE:FF", RSSI: -60}
}

// Devices returns n distinct trainers in a stable order.
func Devices(n int) []trainer.Device {
	devices := make([]trainer.Device, n)
	for i := range devices {
		devices[i] = trainer.Device{
			Name:    fmt.Sprintf("Trainer %d", i+1),
			Address: fmt.Sprintf("00:11:22:33:44:%02X", i+1),
			RSSI:    -50 - 5*i,
		}
	}
	return devices
}
