package embedcache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/corpus"
	"github.com/poiesic/faqit/storage"
)

// RegenerateFunc embeds texts and returns one vector per text, in order.
// Failed entries are empty vectors; an error aborts regeneration.
type RegenerateFunc func(ctx context.Context, texts []string) ([]core.Vector, error)

// Cache validates, loads and saves embedding records through a CacheStore.
type Cache struct {
	store  storage.CacheStore
	logger *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// New creates a cache over store.
func New(store storage.CacheStore, opts ...Option) *Cache {
	c := &Cache{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "embedcache")
	return c
}

// Fingerprint computes the content hash of raw corpus bytes.
func Fingerprint(raw []byte) core.Fingerprint {
	return core.FingerprintOf(raw)
}

// Validate reports whether record may be used for the given corpus state.
func Validate(record *core.CacheRecord, fp core.Fingerprint, modelIdentity string, entryCount int) bool {
	if core.ValidateCacheRecord(record) != nil {
		return false
	}
	return record.Fingerprint == fp &&
		record.ModelIdentity == modelIdentity &&
		record.EntryCount == entryCount
}

// Load reads and decodes the persisted record. It reports false when nothing
// is stored or the stored bytes cannot be decoded; neither is an error.
func (c *Cache) Load(ctx context.Context) (*core.CacheRecord, bool) {
	data, err := c.store.LoadCache(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.Warn("failed to read cache", "err", err)
		}
		return nil, false
	}

	record, err := storage.UnmarshalCacheRecord(data)
	if err != nil {
		c.logger.Warn("discarding undecodable cache", "bytes", len(data), "err", err)
		return nil, false
	}
	return record, true
}

// Save encodes and persists the full record.
func (c *Cache) Save(ctx context.Context, record *core.CacheRecord) error {
	if err := core.ValidateCacheRecord(record); err != nil {
		return err
	}
	data, err := storage.MarshalCacheRecord(record)
	if err != nil {
		return err
	}
	if err := c.store.SaveCache(ctx, data); err != nil {
		return fmt.Errorf("save cache: %w", err)
	}
	c.logger.Info("saved embeddings cache",
		"entries", record.EntryCount,
		"available", record.Available(),
		"bytes", len(data))
	return nil
}

// Invalidate deletes the persisted record so the next Ensure regenerates it.
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.store.DeleteCache(ctx)
}

// Ensure returns a record valid for corp and modelIdentity, reusing the
// persisted one when possible. Otherwise regenerate is called with every
// question in corpus order and the new record is saved before returning.
// A failed save is logged and the in-memory record is still returned.
// The boolean reports whether regeneration happened.
func (c *Cache) Ensure(ctx context.Context, corp *corpus.Corpus, modelIdentity string, regenerate RegenerateFunc) (*core.CacheRecord, bool, error) {
	fp := corp.Fingerprint()
	count := corp.Count()

	if record, ok := c.Load(ctx); ok {
		if Validate(record, fp, modelIdentity, count) {
			c.logger.Info("using cached embeddings", "entries", count, "fingerprint", fp.String()[:12])
			return record, false, nil
		}
		c.logger.Warn("cache invalid, regenerating",
			"fingerprint_match", record.Fingerprint == fp,
			"model_match", record.ModelIdentity == modelIdentity,
			"count_match", record.EntryCount == count)
	}

	vectors, err := regenerate(ctx, corp.Questions())
	if err != nil {
		return nil, false, fmt.Errorf("regenerate embeddings: %w", err)
	}
	if len(vectors) != count {
		return nil, false, fmt.Errorf("%w: regenerated %d vectors for %d entries",
			core.ErrInvalidCacheRecord, len(vectors), count)
	}

	record := core.NewCacheRecord(fp, modelIdentity, vectors)
	if err := c.Save(ctx, record); err != nil {
		c.logger.Error("failed to persist embeddings cache", "err", err)
	}
	return record, true, nil
}
