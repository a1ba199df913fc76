// internal/player/mock.go
package player

import (
	"sync"
	"time"
)

// Mock is a test double for Player. It is safe for concurrent use so that
// observers may sample it while a session drives it.
type Mock struct {
	mu         sync.Mutex
	state      State
	position   time.Duration
	duration   time.Duration
	loadErr    map[string]error
	loadCalls  []string
	seekCalls  []time.Duration
	stopCalls  int
	finishedCh chan struct{}
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:      Stopped,
		duration:   3 * time.Minute,
		loadErr:    make(map[string]error),
		finishedCh: make(chan struct{}, 1),
	}
}

func (m *Mock) Load(uri string) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loadCalls = append(m.loadCalls, uri)
	m.stopLocked()
	select {
	case <-m.finishedCh:
	default:
	}
	if err := m.loadErr[uri]; err != nil {
		return 0, err
	}
	m.state = Paused
	m.position = 0
	return m.duration, nil
}

func (m *Mock) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
}

func (m *Mock) stopLocked() {
	if m.state == Stopped {
		return
	}
	m.stopCalls++
	m.state = Stopped
	m.position = 0
}

func (m *Mock) SeekTo(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, d)
	if m.state != Stopped {
		m.position = d
	}
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Stopped {
		return 0
	}
	return m.duration
}

func (m *Mock) Finished() <-chan struct{} {
	return m.finishedCh
}

// Test helpers

func (m *Mock) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

// SetLoadError makes Load fail for uri.
func (m *Mock) SetLoadError(uri string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr[uri] = err
}

// SetDuration sets the duration reported by subsequent loads.
func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.loadCalls))
	copy(out, m.loadCalls)
	return out
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.seekCalls))
	copy(out, m.seekCalls)
	return out
}

func (m *Mock) StopCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopCalls
}

// SimulateFinished simulates the loaded track playing to its end.
func (m *Mock) SimulateFinished() {
	m.mu.Lock()
	m.position = m.duration
	m.mu.Unlock()

	select {
	case m.finishedCh <- struct{}{}:
	default:
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
