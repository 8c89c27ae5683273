package storage

import (
	"encoding/json"
	"os"
	"sync"
)

// FileStore persists keys to a JSON file so a session survives a process
// restart. Every filesystem error is swallowed: a failed read behaves as
// "entry not found", a failed write is best effort. That matches the
// contract of the browser storage it stands in for, where quota or denied
// storage must never block the flow.
type FileStore struct {
	mu   sync.Mutex
	path string
	m    map[string]string
}

func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path, m: make(map[string]string)}
	if raw, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(raw, &s.m)
	}
	return s
}

func (s *FileStore) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[key]
}

func (s *FileStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	s.flush()
}

func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	s.flush()
}

// flush writes the whole map; callers hold the lock.
func (s *FileStore) flush() {
	raw, err := json.Marshal(s.m)
	if err != nil {
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return
	}
	_ = os.Rename(tmp, s.path)
}
