package domains

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-study-sync/internal/store"
)

// memStore is an in-memory LocalStore.
type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	readErr error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) ReadBlob(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readErr != nil {
		return nil, m.readErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, store.ErrBlobNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *memStore) WriteBlob(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *memStore) DeleteBlob(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *memStore) get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	return string(v), ok
}

func (m *memStore) set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = []byte(value)
}

var errDisk = errors.New("disk on fire")
