package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/faqit/ai"
	"github.com/poiesic/faqit/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestDefault(t *testing.T) {
	cfg := Default("")
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ProfileOpenAI, cfg.Profile)
	assert.Equal(t, search.DefaultThresholds(), cfg.Search.Thresholds)
	assert.Equal(t, 3, cfg.Search.TopK)
	assert.Equal(t, BackendFile, cfg.Cache.Backend)
	assert.Zero(t, cfg.Cache.Valkey.TTL, "records must not expire unless asked to")
	assert.Equal(t, 0.7, cfg.AI.Temperature)
	assert.Equal(t, 300, cfg.AI.MaxTokens)
}

func TestDefault_Azure(t *testing.T) {
	cfg := Default("Azure")

	assert.Equal(t, ProfileAzure, cfg.Profile)
	assert.Equal(t, 0.35, cfg.Search.Thresholds.Low)
	assert.Equal(t, 0.85, cfg.Search.Thresholds.High)
	assert.Equal(t, "gpt-5-chat", cfg.AI.ChatModel)
	assert.Equal(t, "2025-01-01-preview", cfg.AI.ChatAPIVersion)
	assert.Equal(t, "2023-05-15", cfg.AI.EmbeddingAPIVersion)
	assert.Equal(t, "pl", cfg.Messages.Locale)
}

func TestBuild_YAML(t *testing.T) {
	data := []byte(`
corpus:
  path: /srv/faq.json
search:
  topK: 5
  thresholds:
    low: 0.4
    high: 0.9
cache:
  backend: badger
  dir: /var/lib/faqit
  namespace: press
messages:
  locale: pl
http:
  address: ":9000"
  readTimeout: 3s
`)

	cfg, err := build(data, env(nil))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/srv/faq.json", cfg.Corpus.Path)
	assert.Equal(t, 5, cfg.Search.TopK)
	assert.Equal(t, search.Thresholds{Low: 0.4, High: 0.9}, cfg.Search.Thresholds)
	assert.Equal(t, BackendBadger, cfg.Cache.Backend)
	assert.Equal(t, "press", cfg.Cache.Namespace)
	assert.Equal(t, "pl", cfg.Messages.Locale)
	assert.Equal(t, ":9000", cfg.HTTP.Address)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	// Untouched values keep their defaults
	assert.Equal(t, "text-embedding-3-small", cfg.AI.EmbeddingModel)
}

func TestBuild_ProfileSelection(t *testing.T) {
	t.Run("profile from file", func(t *testing.T) {
		cfg, err := build([]byte("profile: azure\n"), env(nil))
		require.NoError(t, err)
		assert.Equal(t, ProfileAzure, cfg.Profile)
		assert.Equal(t, 0.35, cfg.Search.Thresholds.Low)
	})

	t.Run("file overrides profile defaults", func(t *testing.T) {
		cfg, err := build([]byte("profile: azure\nsearch:\n  thresholds:\n    low: 0.5\n    high: 0.9\n"), env(nil))
		require.NoError(t, err)
		assert.Equal(t, 0.5, cfg.Search.Thresholds.Low)
	})

	t.Run("profile from environment", func(t *testing.T) {
		cfg, err := build(nil, env(map[string]string{"FAQIT_PROFILE": "azure"}))
		require.NoError(t, err)
		assert.Equal(t, ProfileAzure, cfg.Profile)
	})

	t.Run("azure endpoint implies azure", func(t *testing.T) {
		cfg, err := build(nil, env(map[string]string{
			"AZURE_OPENAI_ENDPOINT": "https://res.openai.azure.com/",
			"AZURE_OPENAI_API_KEY":  "k",
			"CHAT_DEPLOYMENT":       "chat",
			"EMBEDDING_DEPLOYMENT":  "embed",
		}))
		require.NoError(t, err)
		assert.Equal(t, ProfileAzure, cfg.Profile)
		assert.Equal(t, "https://res.openai.azure.com/", cfg.AI.Endpoint)
		assert.Equal(t, "k", cfg.AI.APIKey)
		assert.Equal(t, "chat", cfg.AI.ChatModel)
		assert.Equal(t, "embed", cfg.AI.EmbeddingModel)
	})

	t.Run("explicit openai profile wins over azure endpoint", func(t *testing.T) {
		cfg, err := build([]byte("profile: openai\n"), env(map[string]string{
			"AZURE_OPENAI_ENDPOINT": "https://res.openai.azure.com/",
		}))
		require.NoError(t, err)
		assert.Equal(t, ProfileOpenAI, cfg.Profile)
	})
}

func TestBuild_EnvOverrides(t *testing.T) {
	cfg, err := build([]byte("search:\n  topK: 5\n"), env(map[string]string{
		"OPENAI_API_KEY":         "sk-test",
		"OPENAI_MODEL":           "gpt-4.1-mini",
		"OPENAI_EMBEDDING_MODEL": "text-embedding-3-large",
		"FAQIT_TOP_K":            "7",
		"FAQIT_THRESHOLD_LOW":    "0.25",
		"FAQIT_CACHE_BACKEND":    "VALKEY",
		"FAQIT_VALKEY_ADDR":      "localhost:6379",
		"FAQIT_VALKEY_TTL":       "1h",
		"FAQIT_LOCALE":           "pl",
		"FAQIT_MAX_TOKENS":       "not-a-number",
	}))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "sk-test", cfg.AI.APIKey)
	assert.Equal(t, "gpt-4.1-mini", cfg.AI.ChatModel)
	assert.Equal(t, "text-embedding-3-large", cfg.AI.EmbeddingModel)
	assert.Equal(t, 7, cfg.Search.TopK)
	assert.Equal(t, 0.25, cfg.Search.Thresholds.Low)
	assert.Equal(t, BackendValkey, cfg.Cache.Backend)
	assert.Equal(t, "localhost:6379", cfg.Cache.Valkey.Addr)
	assert.Equal(t, time.Hour, cfg.Cache.Valkey.TTL)
	assert.Equal(t, "pl", cfg.Messages.Locale)
	assert.Equal(t, 300, cfg.AI.MaxTokens, "unparsable values are ignored")
}

func TestBuild_InvalidYAML(t *testing.T) {
	_, err := build([]byte("search: [unclosed"), env(nil))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty corpus path", func(c *Config) { c.Corpus.Path = "" }},
		{"inverted thresholds", func(c *Config) { c.Search.Thresholds = search.Thresholds{Low: 0.9, High: 0.1} }},
		{"zero top k", func(c *Config) { c.Search.TopK = 0 }},
		{"negative pool", func(c *Config) { c.Cache.PoolSize = -1 }},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "s3" }},
		{"file without path", func(c *Config) { c.Cache.Path = "" }},
		{"badger without dir", func(c *Config) { c.Cache.Backend = BackendBadger; c.Cache.Dir = "" }},
		{"valkey without addr", func(c *Config) { c.Cache.Backend = BackendValkey }},
		{"unknown locale", func(c *Config) { c.Messages.Locale = "fr" }},
		{"empty address", func(c *Config) { c.HTTP.Address = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default(ProfileOpenAI)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestProviderConfig(t *testing.T) {
	t.Run("openai", func(t *testing.T) {
		cfg := Default(ProfileOpenAI)
		cfg.AI.APIKey = "sk-test"

		pc, err := cfg.ProviderConfig()
		require.NoError(t, err)
		assert.Equal(t, ai.APITypeOpenAI, pc.APIType)
		assert.Equal(t, "https://api.openai.com/v1", pc.ChatHost)
		assert.Equal(t, "sk-test", pc.Token)
		assert.Equal(t, "openai:text-embedding-3-small", pc.ModelIdentity())
	})

	t.Run("azure", func(t *testing.T) {
		cfg := Default(ProfileAzure)
		cfg.AI.Endpoint = "https://res.openai.azure.com/"
		cfg.AI.APIKey = "k"

		pc, err := cfg.ProviderConfig()
		require.NoError(t, err)
		assert.Equal(t, ai.APITypeAzure, pc.APIType)
		assert.Equal(t, "https://res.openai.azure.com", pc.EmbeddingHost)
		assert.Equal(t, "2023-05-15", pc.EmbeddingAPIVersion)
	})

	t.Run("azure without key", func(t *testing.T) {
		cfg := Default(ProfileAzure)
		cfg.AI.Endpoint = "https://res.openai.azure.com/"

		_, err := cfg.ProviderConfig()
		assert.ErrorIs(t, err, ai.ErrInvalidConfig)
	})
}

func TestMessageCatalog(t *testing.T) {
	m, err := Default(ProfileAzure).MessageCatalog()
	require.NoError(t, err)
	assert.Equal(t, "pl", m.Locale)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "faqit.yaml")
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(configPath, []byte("corpus:\n  path: from-file.json\n"), 0644))
	require.NoError(t, os.WriteFile(envPath, []byte("FAQIT_TOP_K=4\n"), 0644))

	// godotenv does not override variables that are already set
	t.Setenv("FAQIT_TOP_K", "")
	os.Unsetenv("FAQIT_TOP_K")

	cfg, err := Load(configPath, envPath)
	require.NoError(t, err)
	assert.Equal(t, "from-file.json", cfg.Corpus.Path)
	assert.Equal(t, 4, cfg.Search.TopK)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing config file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
		assert.Error(t, err)
	})

	t.Run("missing env file is ignored", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "faqit.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("profile: openai\n"), 0644))

		_, err := Load(configPath, filepath.Join(dir, "missing.env"))
		assert.NoError(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "faqit.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("search:\n  topK: -1\n"), 0644))

		_, err := Load(configPath, "")
		assert.ErrorContains(t, err, "invalid config")
	})
}
