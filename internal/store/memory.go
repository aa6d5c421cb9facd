package store

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is an in-memory DocumentStore with the same upsert-merge
// semantics as the Firestore adapter. Used as a test substitute.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]map[string]interface{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]map[string]interface{})}
}

func (m *MemoryStore) Set(_ context.Context, path string, data map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[path]
	if !ok {
		doc = make(map[string]interface{}, len(data))
		m.docs[path] = doc
	}
	for k, v := range data {
		doc[k] = v
	}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, path string) (map[string]interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[path]
	if !ok {
		return nil, ErrNotFound
	}
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out, nil
}

// Paths returns the sorted document paths matching the prefix.
func (m *MemoryStore) Paths(prefix string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []string
	for p := range m.docs {
		if strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}
