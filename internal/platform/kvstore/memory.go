package kvstore

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is an in-process Store. Values are stored as encoded JSON so reads
// never alias the caller's value.
type Memory struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]json.RawMessage)}
}

// Get decodes the stored value into out.
func (m *Memory) Get(key string, out any) (bool, error) {
	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("kvstore: decode %q: %w", key, err)
	}
	return true, nil
}

// Put stores the encoded value.
func (m *Memory) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore: encode %q: %w", key, err)
	}
	m.mu.Lock()
	m.values[key] = raw
	m.mu.Unlock()
	return nil
}

// Delete removes the key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	return nil
}
