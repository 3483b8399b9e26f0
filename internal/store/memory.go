package store

import "sync"

// MemoryBlobStore keeps blobs in a map. Used by tests and for ephemeral runs
// where nothing should touch disk.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string]string
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{
		blobs: make(map[string]string),
	}
}

func (s *MemoryBlobStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.blobs[key]
	return value, exists, nil
}

func (s *MemoryBlobStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = value
	return nil
}

func (s *MemoryBlobStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}

func (s *MemoryBlobStore) Close() error {
	return nil
}
