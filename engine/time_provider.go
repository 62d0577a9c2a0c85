package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies the current time to the clock and effects
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider reads the real system time with its monotonic reading
type SystemTimeProvider struct{}

func (SystemTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a controllable time source for tests
// With a non-zero step every Now call advances time by step after reading it
type MockTimeProvider struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewMockTimeProvider creates a mock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.now
	m.now = m.now.Add(m.step)
	return t
}

// SetTime jumps to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// SetStep enables auto-advance on read
func (m *MockTimeProvider) SetStep(d time.Duration) {
	m.mu.Lock()
	m.step = d
	m.mu.Unlock()
}
