package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileRecord mirrors the on-disk layout. Pointer fields let Load tell a
// missing key from a zero value.
type fileRecord struct {
	FTP           *int64  `toml:"ftp"`
	DeviceAddress *string `toml:"device_address"`
}

// FileStore persists a Config as a TOML file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and validates the configuration file.
//
// It returns ErrNotFound when the file does not exist and ErrMalformed when
// the content cannot be parsed into a valid Config.
func (s *FileStore) Load() (Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return Config{}, fmt.Errorf("%w: %s: %v", ErrRead, s.path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", s.path, err)
	}
	return cfg, nil
}

// Parse decodes TOML content into a validated Config.
func Parse(data []byte) (Config, error) {
	var rec fileRecord
	if _, err := toml.Decode(string(data), &rec); err != nil {
		return Config{}, fmt.Errorf("%w: invalid TOML: %v", ErrMalformed, err)
	}

	if rec.FTP == nil {
		return Config{}, fmt.Errorf("%w: %v", ErrMalformed, errThresholdRequired)
	}
	if *rec.FTP > MaxThresholdPower {
		return Config{}, fmt.Errorf("%w: %v (got %d)", ErrMalformed, errThresholdRange, *rec.FTP)
	}

	cfg := Config{ThresholdPower: int(*rec.FTP)}
	if rec.DeviceAddress != nil {
		cfg.DeviceAddress = *rec.DeviceAddress
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return cfg, nil
}

// Encode renders the configuration as TOML. The output is deterministic
// for a given Config.
func Encode(cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save validates cfg and replaces the configuration file with it.
//
// The parent directory is created when missing. Content is written to a
// temporary sibling and renamed into place, so readers see either the old
// or the new file, never a partial one.
func (s *FileStore) Save(cfg Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrWrite, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op after a successful rename.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
