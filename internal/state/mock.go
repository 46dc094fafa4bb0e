package state

import "sync"

// Mock is a test double for Manager. Saves are recorded synchronously.
type Mock struct {
	mu       sync.Mutex
	navState *NavigationState
	saves    []NavigationState
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveNavigation(state NavigationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves = append(m.saves, state)
	m.navState = &state
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.navState, nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetNavigation(state *NavigationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.navState = state
}

// Saves returns every state passed to SaveNavigation, oldest first.
func (m *Mock) Saves() []NavigationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]NavigationState(nil), m.saves...)
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
