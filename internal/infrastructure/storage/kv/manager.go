package kv

import (
	"encoding/json"

	"golang.org/x/exp/slog"
)

// Manager stores JSON-encoded values in a Store. Storage and encoding
// failures are logged and reported as false, never returned.
type Manager struct {
	store Store
	log   *slog.Logger
}

func NewManager(store Store, log *slog.Logger) *Manager {
	return &Manager{
		store: store,
		log:   log.With("component", "kv"),
	}
}

func (m *Manager) Set(key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		m.log.Error("failed to encode value", "key", key, "error", err)
		return false
	}
	if err := m.store.Set(key, data); err != nil {
		m.log.Error("failed to save value", "key", key, "error", err)
		return false
	}
	return true
}

// Get decodes the value of key into dst. It returns false when the key is
// missing or the stored value cannot be decoded.
func (m *Manager) Get(key string, dst any) bool {
	data, ok, err := m.store.Get(key)
	if err != nil {
		m.log.Error("failed to read value", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		m.log.Error("failed to decode value", "key", key, "error", err)
		return false
	}
	return true
}

func (m *Manager) Remove(key string) bool {
	if err := m.store.Delete(key); err != nil {
		m.log.Error("failed to remove value", "key", key, "error", err)
		return false
	}
	return true
}

func (m *Manager) Clear() bool {
	if err := m.store.Clear(); err != nil {
		m.log.Error("failed to clear storage", "error", err)
		return false
	}
	return true
}

func (m *Manager) Close() error {
	return m.store.Close()
}
