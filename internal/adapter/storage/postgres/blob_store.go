package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const createStateTable = `CREATE TABLE IF NOT EXISTS app_state (
	key        TEXT PRIMARY KEY,
	blob       BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// BlobStore implements ports.BlobStore on a single key/value table.
type BlobStore struct {
	pool Pool
}

// NewBlobStore creates a new BlobStore.
func NewBlobStore(pool Pool) *BlobStore {
	return &BlobStore{pool: pool}
}

// EnsureSchema creates the app_state table if it does not exist.
func (s *BlobStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createStateTable); err != nil {
		return fmt.Errorf("create app_state table: %w", err)
	}
	return nil
}

// Load fetches the blob for key. Returns nil, nil when no row exists.
func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT blob FROM app_state WHERE key = $1`

	var blob []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get app state: %w", err)
	}
	return blob, nil
}

// Save upserts the blob for key.
func (s *BlobStore) Save(ctx context.Context, key string, blob []byte) error {
	query := `INSERT INTO app_state (key, blob, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET blob = EXCLUDED.blob, updated_at = EXCLUDED.updated_at`

	_, err := s.pool.Exec(ctx, query, key, blob, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert app state: %w", err)
	}
	return nil
}
