package config

import (
	"strconv"
	"strings"
	"time"
)

func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	str := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	integer := func(key string, dst *int) {
		if v := getenv(key); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	float := func(key string, dst *float64) {
		if v := getenv(key); v != "" {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	duration := func(key string, dst *time.Duration) {
		if v := getenv(key); v != "" {
			if parsed, err := time.ParseDuration(v); err == nil {
				*dst = parsed
			}
		}
	}

	switch cfg.Profile {
	case ProfileAzure:
		str("AZURE_OPENAI_ENDPOINT", &cfg.AI.Endpoint)
		str("AZURE_OPENAI_API_KEY", &cfg.AI.APIKey)
		str("AZURE_OPENAI_API_VERSION", &cfg.AI.ChatAPIVersion)
		str("AZURE_OPENAI_EMBEDDINGS_API_VERSION", &cfg.AI.EmbeddingAPIVersion)
		str("CHAT_DEPLOYMENT", &cfg.AI.ChatModel)
		str("EMBEDDING_DEPLOYMENT", &cfg.AI.EmbeddingModel)
	default:
		str("OPENAI_BASE_URL", &cfg.AI.Endpoint)
		str("OPENAI_API_KEY", &cfg.AI.APIKey)
		str("OPENAI_MODEL", &cfg.AI.ChatModel)
		str("OPENAI_EMBEDDING_MODEL", &cfg.AI.EmbeddingModel)
	}

	float("FAQIT_TEMPERATURE", &cfg.AI.Temperature)
	integer("FAQIT_MAX_TOKENS", &cfg.AI.MaxTokens)
	integer("FAQIT_MAX_RETRIES", &cfg.AI.MaxRetries)
	duration("FAQIT_RETRY_DELAY", &cfg.AI.RetryDelay)

	str("FAQIT_CORPUS_PATH", &cfg.Corpus.Path)
	integer("FAQIT_TOP_K", &cfg.Search.TopK)
	float("FAQIT_THRESHOLD_LOW", &cfg.Search.Thresholds.Low)
	float("FAQIT_THRESHOLD_HIGH", &cfg.Search.Thresholds.High)

	if v := getenv("FAQIT_CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = strings.ToLower(v)
	}
	str("FAQIT_CACHE_PATH", &cfg.Cache.Path)
	str("FAQIT_CACHE_DIR", &cfg.Cache.Dir)
	str("FAQIT_CACHE_NAMESPACE", &cfg.Cache.Namespace)
	integer("FAQIT_POOL_SIZE", &cfg.Cache.PoolSize)
	str("FAQIT_VALKEY_ADDR", &cfg.Cache.Valkey.Addr)
	str("FAQIT_VALKEY_PREFIX", &cfg.Cache.Valkey.Prefix)
	duration("FAQIT_VALKEY_TTL", &cfg.Cache.Valkey.TTL)

	str("FAQIT_LOCALE", &cfg.Messages.Locale)
	str("FAQIT_HTTP_ADDRESS", &cfg.HTTP.Address)
}
