package testing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cytraco/cytraco/internal/bootstrap"
	"github.com/cytraco/cytraco/internal/config"
	"github.com/cytraco/cytraco/internal/trainer"
)

// MockStore is a testify mock of bootstrap.Store.
type MockStore struct {
	mock.Mock
}

// Load returns the mocked configuration.
func (m *MockStore) Load() (config.Config, error) {
	args := m.Called()
	return args.Get(0).(config.Config), args.Error(1)
}

// Save records the configuration.
func (m *MockStore) Save(cfg config.Config) error {
	args := m.Called(cfg)
	return args.Error(0)
}

// MockDirectory is a testify mock of bootstrap.Directory.
type MockDirectory struct {
	mock.Mock
}

// Scan returns the mocked device list.
func (m *MockDirectory) Scan(ctx context.Context) ([]trainer.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.Device), args.Error(1)
}

// Reachable returns the mocked reachability.
func (m *MockDirectory) Reachable(ctx context.Context, address string) bool {
	args := m.Called(ctx, address)
	return args.Bool(0)
}

// NewMockStore returns a MockStore whose Load reports no configuration.
func NewMockStore() *MockStore {
	m := &MockStore{}
	m.On("Load").Return(config.Config{}, config.ErrNotFound).Maybe()
	return m
}

// WithConfig makes Load return cfg.
func (m *MockStore) WithConfig(cfg config.Config) *MockStore {
	m.ExpectedCalls = nil
	m.On("Load").Return(cfg, nil)
	return m
}

// ExpectSave expects exactly one Save of cfg.
func (m *MockStore) ExpectSave(cfg config.Config) *MockStore {
	m.On("Save", cfg).Return(nil).Once()
	return m
}

// compile-time interface checks
var (
	_ bootstrap.Store     = (*MockStore)(nil)
	_ bootstrap.Directory = (*MockDirectory)(nil)
	_ bootstrap.Store     = (*MemoryStore)(nil)
	_ bootstrap.Directory = (*FakeDirectory)(nil)
	_ bootstrap.Prompter  = (*ScriptedPrompter)(nil)
)
