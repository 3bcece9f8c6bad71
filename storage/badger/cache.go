package badger

import (
	"context"
	"encoding/binary"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/faqit/storage"
)

// CacheRepository implements storage.CacheStore on a BadgerDB backend.
// Several namespaces may share one backend, one per corpus.
type CacheRepository struct {
	backend   *Backend
	namespace string
	ownsDB    bool
}

var _ storage.CacheStore = (*CacheRepository)(nil)

// NewCacheRepository creates a repository over an already opened backend.
// The caller keeps ownership of the backend. An empty namespace means "default".
func NewCacheRepository(backend *Backend, namespace string) *CacheRepository {
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &CacheRepository{backend: backend, namespace: namespace}
}

// NewStore opens a BadgerDB database at dirPath and returns a cache store
// that owns it. Closing the store closes the database.
//
// Returns storage.CacheStore interface to enforce abstraction.
func NewStore(dirPath, namespace string) (storage.CacheStore, error) {
	backend, err := OpenBackend(dirPath, false)
	if err != nil {
		return nil, err
	}
	repo := NewCacheRepository(backend, namespace)
	repo.ownsDB = true
	return repo, nil
}

// LoadCache retrieves the record blob for the namespace.
func (r *CacheRepository) LoadCache(ctx context.Context) ([]byte, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var data []byte
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCacheKey(r.namespace))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	}, false)

	return data, err
}

// SaveCache writes the blob and its save time in one transaction.
func (r *CacheRepository) SaveCache(ctx context.Context, data []byte) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeCacheKey(r.namespace), data); err != nil {
			return err
		}
		ts := make([]byte, 8)
		binary.BigEndian.PutUint64(ts, uint64(time.Now().UTC().UnixMicro()))
		if err := tx.Set(makeCacheSavedKey(r.namespace), ts); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteCache removes the blob and its save time.
func (r *CacheRepository) DeleteCache(ctx context.Context) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeCacheKey(r.namespace)); err != nil {
			return err
		}
		if err := tx.Delete(makeCacheSavedKey(r.namespace)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// SavedAt returns when the namespace was last saved.
// Returns storage.ErrNotFound if it never was.
func (r *CacheRepository) SavedAt(ctx context.Context) (time.Time, error) {
	var saved time.Time
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCacheSavedKey(r.namespace))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return storage.ErrTruncatedData
			}
			saved = time.UnixMicro(int64(binary.BigEndian.Uint64(val))).UTC()
			return nil
		})
	}, false)
	return saved, err
}

// Close closes the backend if this repository opened it.
func (r *CacheRepository) Close() error {
	if r.ownsDB && !r.backend.IsClosed() {
		return r.backend.Close()
	}
	return nil
}
