package memory

import "sync"

// Memory - ячейка памяти калькулятора (M+, M-, MR, MC)
type Memory struct {
	mu    sync.RWMutex
	value float64
}

func NewMemory() *Memory {
	return &Memory{}
}

// Add - M+
func (m *Memory) Add(v float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value += v
	return m.value
}

// Subtract - M-
func (m *Memory) Subtract(v float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value -= v
	return m.value
}

// Recall - MR
func (m *Memory) Recall() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value
}

// Clear - MC
func (m *Memory) Clear() {
	m.Set(0)
}

// Set - восстановление сохраненного значения
func (m *Memory) Set(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = v
}
