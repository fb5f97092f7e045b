package config

import (
	"fmt"
	"math"
)

// MaxThresholdPower is the largest threshold a configuration may hold.
const MaxThresholdPower = math.MaxInt32

// Config is the persisted application configuration.
type Config struct {
	// ThresholdPower is the rider's functional threshold power in watts.
	ThresholdPower int `toml:"ftp" yaml:"ftp" json:"ftp"`

	// DeviceAddress is the BLE address of the paired trainer. Empty means
	// no trainer is paired.
	DeviceAddress string `toml:"device_address,omitempty" yaml:"device_address,omitempty" json:"device_address,omitempty"`
}

// New returns a configuration with the given threshold and no paired trainer.
func New(thresholdPower int) (Config, error) {
	cfg := Config{ThresholdPower: thresholdPower}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the configuration may be persisted.
func (c Config) Validate() error {
	if c.ThresholdPower <= 0 {
		return fmt.Errorf("%w (got %d)", errThresholdPositive, c.ThresholdPower)
	}
	if c.ThresholdPower > MaxThresholdPower {
		return fmt.Errorf("%w (got %d)", errThresholdRange, c.ThresholdPower)
	}
	return nil
}

// HasDevice reports whether a trainer address is configured.
func (c Config) HasDevice() bool {
	return c.DeviceAddress != ""
}

// WithDevice returns a copy paired with the given trainer address.
func (c Config) WithDevice(address string) Config {
	c.DeviceAddress = address
	return c
}

// WithoutDevice returns a copy with the trainer address cleared.
func (c Config) WithoutDevice() Config {
	c.DeviceAddress = ""
	return c
}
