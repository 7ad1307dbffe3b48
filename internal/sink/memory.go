package sink

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Memory keeps encoded documents in memory for quick inspection and dry runs.
type Memory struct {
	mu    sync.Mutex
	names []string
	docs  map[string][]byte
}

// NewMemory creates an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// Write stores the indented JSON encoding of v under name.
func (m *Memory) Write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	m.mu.Lock()
	if _, ok := m.docs[name]; !ok {
		m.names = append(m.names, name)
	}
	m.docs[name] = data
	m.mu.Unlock()
	return nil
}

// Names returns document names in first-write order.
func (m *Memory) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Bytes returns a copy of the stored document.
func (m *Memory) Bytes(name string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.docs[name]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true
}

// Reset clears all stored documents.
func (m *Memory) Reset() {
	m.mu.Lock()
	m.names = m.names[:0]
	m.docs = make(map[string][]byte)
	m.mu.Unlock()
}
