package engine

import (
	"sync"
	"time"
)

var (
	_ Clock = (*TimeProvider)(nil)
	_ Clock = (*MockTimeProvider)(nil)
)

// MockTimeProvider is a manually driven Clock for loop and game tests
// Callbacks may advance it from inside the loop goroutine while the test reads it
type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockTimeProvider creates a clock stopped at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d, which is how tests simulate a slow update
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
