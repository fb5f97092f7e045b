package config

import (
	"errors"
	"fmt"
)

// Store errors. Callers match them with errors.Is.
var (
	// ErrNotFound means no configuration file exists yet.
	ErrNotFound = errors.New("configuration not found")

	// ErrMalformed means the file exists but does not hold a valid configuration.
	ErrMalformed = errors.New("malformed configuration")

	// ErrRead means the file exists but could not be read.
	ErrRead = errors.New("configuration read failed")

	// ErrWrite means the configuration could not be written durably.
	ErrWrite = errors.New("configuration write failed")
)

// Validation errors.
var (
	errThresholdRequired = errors.New("ftp is required")
	errThresholdPositive = errors.New("ftp must be a positive integer")
	errThresholdRange    = fmt.Errorf("ftp must not exceed %d", MaxThresholdPower)
)
