package kv

import "sync"

// MemoryStore keeps values in process memory. A positive MaxBytes caps the
// total size of stored values, like a browser storage quota.
type MemoryStore struct {
	MaxBytes int

	mu   sync.RWMutex
	data map[string][]byte
	size int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	size := m.size - len(m.data[key]) + len(value)
	if m.MaxBytes > 0 && size > m.MaxBytes {
		return ErrQuotaExceeded
	}
	m.data[key] = append([]byte(nil), value...)
	m.size = size
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.size -= len(m.data[key])
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = map[string][]byte{}
	m.size = 0
	return nil
}

func (m *MemoryStore) Close() error { return nil }
