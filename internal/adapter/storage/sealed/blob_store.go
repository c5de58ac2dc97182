// Package sealed encrypts blobs on their way into another BlobStore.
package sealed

import (
	"context"
	"fmt"

	"ruleteo/internal/core/ports"
)

// BlobStore wraps a BlobStore and seals every blob with a BlobCipher.
type BlobStore struct {
	inner  ports.BlobStore
	cipher ports.BlobCipher
}

// NewBlobStore creates a sealing decorator around inner.
func NewBlobStore(inner ports.BlobStore, cipher ports.BlobCipher) *BlobStore {
	return &BlobStore{inner: inner, cipher: cipher}
}

// Load reads and opens the blob for key. Content that cannot be opened
// (wrong key, tampering, plaintext from before sealing was enabled) is
// reported as ports.ErrCorruptBlob.
func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.inner.Load(ctx, key)
	if err != nil || raw == nil {
		return nil, err
	}
	plain, err := s.cipher.Open(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrCorruptBlob, err)
	}
	return plain, nil
}

// Save seals blob and writes it to the inner store.
func (s *BlobStore) Save(ctx context.Context, key string, blob []byte) error {
	sealed, err := s.cipher.Seal(blob)
	if err != nil {
		return fmt.Errorf("sealing blob: %w", err)
	}
	return s.inner.Save(ctx, key, sealed)
}
