package repositoryImp

import (
	"context"
	"sync"

	"pasture/pkg/layout/repository"
)

type memoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory returns a process-local store. Layouts are lost on exit.
func NewMemory() repository.Store { return &memoryStore{blobs: map[string][]byte{}} }

func (m *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.blobs[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (m *memoryStore) Set(_ context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = append([]byte(nil), blob...)
	return nil
}
