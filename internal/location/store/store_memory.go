package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"dsld/internal/location/models"
	"dsld/pkg/platform/sentinel"
)

// InMemoryStore holds a fixed ubigeo table. Used by tests and local runs
// without a database.
type InMemoryStore struct {
	mu    sync.RWMutex
	names map[string]string
}

// NewInMemory creates a store seeded with code → name pairs.
func NewInMemory(names map[string]string) *InMemoryStore {
	s := &InMemoryStore{names: make(map[string]string, len(names))}
	for code, name := range names {
		s.names[code] = name
	}
	return s
}

// Put adds or replaces one row.
func (s *InMemoryStore) Put(code, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[code] = name
}

func (s *InMemoryStore) List(_ context.Context, scope models.Scope) ([]models.Option, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Option{}
	for code, name := range s.names {
		if scope.Matches(code) {
			out = append(out, models.Option{Label: name, Value: code})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label != out[j].Label {
			return strings.Compare(out[i].Label, out[j].Label) < 0
		}
		return out[i].Value < out[j].Value
	})
	return out, nil
}

func (s *InMemoryStore) Name(_ context.Context, code string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name, ok := s.names[code]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return name, nil
}
