package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// BlobStore implements ports.BlobStore with one Redis string per key.
// Values never expire.
type BlobStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewBlobStore creates a new Redis-backed blob store.
func NewBlobStore(client goredis.UniversalClient) *BlobStore {
	return &BlobStore{
		client: client,
		prefix: "ruleteo:state:",
	}
}

// Load retrieves the blob stored under key.
// Returns nil, nil if the key does not exist.
func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis blob get: %w", err)
	}
	return val, nil
}

// Save replaces the blob stored under key.
func (s *BlobStore) Save(ctx context.Context, key string, blob []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, blob, 0).Err(); err != nil {
		return fmt.Errorf("redis blob set: %w", err)
	}
	return nil
}
