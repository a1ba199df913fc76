// internal/state/mock.go
package state

import "sync"

// Mock is an in-memory settings store for testing.
type Mock struct {
	mu       sync.Mutex
	settings Settings
	saves    int
	saveErr  error
	closed   bool
}

// NewMock creates a new mock store holding the default settings.
func NewMock() *Mock {
	return &Mock{settings: DefaultSettings()}
}

func (m *Mock) LoadSettings() (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, nil
}

func (m *Mock) SaveSettings(s Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.settings = s
	m.saves++
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
