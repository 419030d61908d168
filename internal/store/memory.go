// internal/store/memory.go
package store

import (
	"context"
	"sync"
)

// MemoryStore keeps values in a process-local map. It backs tests and
// local development; nothing written here outlives the process.
type MemoryStore struct {
	mtx    sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	delete(m.values, key)
	return nil
}
