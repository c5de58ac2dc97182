package ports

import (
	"context"
	"errors"
)

// ErrCorruptBlob marks stored content that exists but cannot be read back.
// The store treats it like unparsable JSON and reseeds.
var ErrCorruptBlob = errors.New("stored blob is corrupt")

// BlobStore persists the whole AppState as one opaque value per key.
// Implementations replace the value wholesale on Save; there is no
// partial update and no locking across processes.
type BlobStore interface {
	// Load returns the stored blob, or nil, nil when the key is absent.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}

// BlobCipher seals blobs before they reach a BlobStore.
type BlobCipher interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}
