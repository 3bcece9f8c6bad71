// Package valkey implements storage.CacheStore on a Valkey (or Redis) server.
//
// The record lives under a single key; a SET replaces it atomically for
// readers. Several engines can share one cache this way.
package valkey

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/faqit/storage"
	"github.com/valkey-io/valkey-go"
)

const defaultPrefix = "faqit"

// Store persists the cache blob in Valkey.
type Store struct {
	client valkey.Client
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

var _ storage.CacheStore = (*Store)(nil)

// Options configures NewStore.
type Options struct {
	// Addr is "host:port" or a redis:// / valkey:// URL.
	Addr string
	// Prefix namespaces the key. Default: "faqit"
	Prefix string
	// Namespace distinguishes corpora sharing a server. Default: "default"
	Namespace string
	// TTL expires the record; zero keeps it forever. A positive TTL lets the
	// server drop a still-valid record, so the next start regenerates every
	// embedding even though nothing changed.
	TTL time.Duration
}

// ClientOption converts an address into valkey client options.
func ClientOption(addr string) (valkey.ClientOption, error) {
	if addr == "" {
		return valkey.ClientOption{}, fmt.Errorf("valkey store: address is required")
	}
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

// NewStore connects to Valkey and verifies the connection with PING.
//
// Returns storage.CacheStore interface to enforce abstraction.
func NewStore(ctx context.Context, opts Options) (storage.CacheStore, error) {
	clientOpt, err := ClientOption(opts.Addr)
	if err != nil {
		return nil, err
	}
	client, err := valkey.NewClient(clientOpt)
	if err != nil {
		return nil, fmt.Errorf("valkey store: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Do(pingCtx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("valkey store: ping: %w", err)
	}

	return NewStoreWithClient(client, opts), nil
}

// NewStoreWithClient wraps an existing client. The store takes ownership
// of the client and closes it in Close.
func NewStoreWithClient(client valkey.Client, opts Options) *Store {
	key := cacheKey(opts.Prefix, opts.Namespace)
	return &Store{
		client: client,
		key:    key,
		ttl:    opts.TTL,
		logger: slog.Default().With("component", "valkey-store", "key", key),
	}
}

func cacheKey(prefix, namespace string) string {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if namespace == "" {
		namespace = "default"
	}
	return prefix + ":embeddings:" + namespace
}

// LoadCache fetches the blob.
func (s *Store) LoadCache(ctx context.Context) ([]byte, error) {
	data, err := s.client.Do(ctx, s.client.B().Get().Key(s.key).Build()).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("valkey store: get: %w", err)
	}
	return data, nil
}

// SaveCache replaces the blob with a single SET.
func (s *Store) SaveCache(ctx context.Context, data []byte) error {
	builder := s.client.B().Set().Key(s.key).Value(valkey.BinaryString(data))
	var cmd valkey.Completed
	if s.ttl > 0 {
		ttl := s.ttl
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("valkey store: set: %w", err)
	}
	s.logger.Debug("saved cache", "bytes", len(data))
	return nil
}

// DeleteCache removes the key.
func (s *Store) DeleteCache(ctx context.Context) error {
	if err := s.client.Do(ctx, s.client.B().Del().Key(s.key).Build()).Error(); err != nil {
		return fmt.Errorf("valkey store: del: %w", err)
	}
	return nil
}

// Close closes the client.
func (s *Store) Close() error {
	s.client.Close()
	return nil
}
