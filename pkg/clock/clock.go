package clock

import (
	"sync"
	"time"
)

// Clock abstrae la hora actual para que los casos de uso sean testeables.
type Clock interface {
	Now() time.Time
}

// RealClock usa la hora del sistema en UTC.
type RealClock struct{}

// NewRealClock construye el reloj del sistema.
func NewRealClock() Clock { return RealClock{} }

// Now devuelve la hora actual en UTC.
func (RealClock) Now() time.Time { return time.Now().UTC() }

// MockClock reloj fijo para tests; Advance lo mueve hacia adelante.
type MockClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewMockClock construye un reloj fijo en start.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

// Now devuelve la hora simulada.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Set fija la hora simulada.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	m.current = t
	m.mu.Unlock()
}

// Advance adelanta el reloj d.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.current = m.current.Add(d)
	m.mu.Unlock()
}
