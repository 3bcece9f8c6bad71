package storage

import "context"

// CacheStore persists one opaque embedding cache blob.
// Implementations must be thread-safe and support concurrent access.
type CacheStore interface {
	// LoadCache returns the stored blob.
	// Returns ErrNotFound if nothing has been saved.
	LoadCache(ctx context.Context) ([]byte, error)

	// SaveCache replaces the stored blob. A concurrent LoadCache observes
	// either the previous blob or the new one, never a mix.
	SaveCache(ctx context.Context, data []byte) error

	// DeleteCache removes the stored blob. Deleting an absent blob is not an error.
	DeleteCache(ctx context.Context) error

	// Close releases resources held by the store.
	Close() error
}
