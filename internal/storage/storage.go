// Package storage provides the injected key-value store backing per-session
// state (auth session, last validated connection). The store is deliberately
// private to one process, the way each browser tab gets its own
// sessionStorage; nothing here is shared across sessions.
package storage

import "sync"

// Store is a best-effort string key-value store. Get returns "" for a
// missing key; writes never report failure to callers, a failed write just
// means the value will not survive a restart.
type Store interface {
	Get(key string) string
	Set(key, value string)
	Remove(key string)
}

// MemoryStore is the default per-process store.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m[key]
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

// Len reports the number of stored keys.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
