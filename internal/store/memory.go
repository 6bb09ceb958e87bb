package store

import "sync"

// Memory is an in-memory Store used by tests and by any embedding that does
// not need durability. It honors the same contract as File, including
// insertion order.
type Memory[R any] struct {
	mu      sync.Mutex
	records []R
}

func NewMemory[R any](seed ...R) *Memory[R] {
	m := &Memory[R]{}
	m.records = append(m.records, seed...)
	return m
}

func (m *Memory[R]) LoadAll() ([]R, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]R, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *Memory[R]) Append(record R) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, record)
	return nil
}

func (m *Memory[R]) ReplaceAll(records []R) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = make([]R, len(records))
	copy(m.records, records)
	return nil
}
