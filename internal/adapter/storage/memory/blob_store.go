package memory

import (
	"context"
	"sync"
)

// BlobStore implements ports.BlobStore in process memory. Nothing survives a
// restart; it backs tests and the "memory" storage driver.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	saves int
}

// NewBlobStore creates an empty in-memory blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string][]byte)}
}

// Load returns a copy of the blob under key, or nil, nil when absent.
func (s *BlobStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), blob...), nil
}

// Save replaces the blob under key.
func (s *BlobStore) Save(_ context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = append([]byte(nil), blob...)
	s.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (s *BlobStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
