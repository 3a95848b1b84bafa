package tables

import (
	"sort"
	"sync"
)

// Store holds published dictionaries by composed key.
type Store interface {
	Get(key string) (*Dictionary, bool)
	// Publish stores d under key unless a dictionary is already published
	// there, and returns whichever one the key now maps to.
	Publish(key string, d *Dictionary) *Dictionary
	Keys() []string
}

// MemoryStore is a map-backed Store safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*Dictionary
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]*Dictionary)}
}

func (s *MemoryStore) Get(key string) (*Dictionary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.items[key]
	return d, ok
}

func (s *MemoryStore) Publish(key string, d *Dictionary) *Dictionary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.items[key]; ok {
		return existing
	}
	s.items[key] = d
	return d
}

func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	sort.Strings(keys)
	return keys
}
