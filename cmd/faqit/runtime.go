package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/poiesic/faqit"
	"github.com/poiesic/faqit/ai"
	"github.com/poiesic/faqit/ai/openai"
	"github.com/poiesic/faqit/config"
	"github.com/poiesic/faqit/storage"
	"github.com/poiesic/faqit/storage/badger"
	"github.com/poiesic/faqit/storage/file"
	"github.com/poiesic/faqit/storage/valkey"
	"github.com/urfave/cli/v2"
)

// newProvider is replaced in tests.
var newProvider = func(cfg *ai.Config) (ai.AIProvider, error) {
	return openai.NewProvider(cfg)
}

// loadConfig reads the configuration and applies global flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"), c.String("env-file"))
	if err != nil {
		return nil, err
	}

	if v := c.String("corpus"); v != "" {
		cfg.Corpus.Path = v
	}
	if v := c.String("cache-backend"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := c.String("locale"); v != "" {
		cfg.Messages.Locale = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openCacheStore opens the backend selected by cfg.
func openCacheStore(ctx context.Context, cfg config.CacheConfig) (storage.CacheStore, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return file.NewStore(cfg.Path)
	case config.BackendBadger:
		return badger.NewStore(cfg.Dir, cfg.Namespace)
	case config.BackendValkey:
		return valkey.NewStore(ctx, valkey.Options{
			Addr:      cfg.Valkey.Addr,
			Prefix:    cfg.Valkey.Prefix,
			Namespace: cfg.Namespace,
			TTL:       cfg.Valkey.TTL,
		})
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// openEngine builds a ready engine from cfg. Regeneration progress goes to
// progress when it is not nil.
func openEngine(ctx context.Context, cfg *config.Config, progress io.Writer) (*faqit.Engine, error) {
	providerCfg, err := cfg.ProviderConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	messages, err := cfg.MessageCatalog()
	if err != nil {
		return nil, err
	}

	provider, err := newProvider(providerCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI provider: %w", err)
	}

	store, err := openCacheStore(ctx, cfg.Cache)
	if err != nil {
		provider.Close()
		return nil, fmt.Errorf("failed to open embedding cache: %w", err)
	}

	opts := []faqit.Option{
		faqit.WithThresholds(cfg.Search.Thresholds),
		faqit.WithTopK(cfg.Search.TopK),
		faqit.WithPoolSize(cfg.Cache.PoolSize),
		faqit.WithMessages(messages),
		faqit.WithLogger(slog.Default()),
	}
	if progress != nil {
		opts = append(opts, faqit.WithProgress(progress))
	}

	engine, err := faqit.New(ctx, cfg.Corpus.Path, provider, store, opts...)
	if err != nil {
		provider.Close()
		store.Close()
		return nil, err
	}
	return engine, nil
}
