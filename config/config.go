package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/faqit/ai"
	"github.com/poiesic/faqit/search"
	"github.com/poiesic/faqit/synth"
	"gopkg.in/yaml.v3"
)

// Deployment profiles.
const (
	ProfileOpenAI = "openai"
	ProfileAzure  = "azure"
)

// Cache backends.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendValkey = "valkey"
)

// DefaultFile is read when no config path is given and it exists.
const DefaultFile = "faqit.yaml"

// Config aggregates runtime configuration.
type Config struct {
	Profile  string         `yaml:"profile"`
	Corpus   CorpusConfig   `yaml:"corpus"`
	AI       AIConfig       `yaml:"ai"`
	Search   SearchConfig   `yaml:"search"`
	Cache    CacheConfig    `yaml:"cache"`
	Messages MessagesConfig `yaml:"messages"`
	HTTP     HTTPConfig     `yaml:"http"`
}

// CorpusConfig locates the FAQ source.
type CorpusConfig struct {
	Path string `yaml:"path"`
}

// AIConfig holds provider settings. Endpoint and APIKey come from the
// environment in most deployments.
type AIConfig struct {
	Endpoint            string        `yaml:"endpoint"`
	APIKey              string        `yaml:"apiKey"`
	ChatModel           string        `yaml:"chatModel"`
	EmbeddingModel      string        `yaml:"embeddingModel"`
	ChatAPIVersion      string        `yaml:"chatApiVersion"`
	EmbeddingAPIVersion string        `yaml:"embeddingApiVersion"`
	Temperature         float64       `yaml:"temperature"`
	MaxTokens           int           `yaml:"maxTokens"`
	MaxRetries          int           `yaml:"maxRetries"`
	RetryDelay          time.Duration `yaml:"retryDelay"`
}

// SearchConfig controls ranking and confidence tiers.
type SearchConfig struct {
	TopK       int               `yaml:"topK"`
	Thresholds search.Thresholds `yaml:"thresholds"`
}

// CacheConfig selects and configures the embedding cache backend.
type CacheConfig struct {
	Backend   string       `yaml:"backend"`
	Path      string       `yaml:"path"` // file backend
	Dir       string       `yaml:"dir"`  // badger backend
	Namespace string       `yaml:"namespace"`
	PoolSize  int          `yaml:"poolSize"`
	Valkey    ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig configures the valkey backend.
type ValkeyConfig struct {
	Addr   string        `yaml:"addr"`
	Prefix string        `yaml:"prefix"`
	// TTL lets valkey expire the record. Zero (the default) never expires it.
	TTL time.Duration `yaml:"ttl"`
}

// MessagesConfig selects the user-facing language.
type MessagesConfig struct {
	Locale string `yaml:"locale"`
}

// HTTPConfig controls the API server.
type HTTPConfig struct {
	Address         string        `yaml:"address"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// Default returns the configuration of profile. Unknown profiles fall back
// to ProfileOpenAI.
func Default(profile string) *Config {
	base := ai.DefaultConfig()
	cfg := &Config{
		Profile: ProfileOpenAI,
		Corpus:  CorpusConfig{Path: "faq_data.json"},
		AI: AIConfig{
			Endpoint:       base.ChatHost,
			ChatModel:      base.ChatModel,
			EmbeddingModel: base.EmbeddingModel,
			Temperature:    base.Temperature,
			MaxTokens:      base.MaxTokens,
			MaxRetries:     base.MaxRetries,
			RetryDelay:     base.RetryDelay,
		},
		Search: SearchConfig{
			TopK:       search.DefaultTopK,
			Thresholds: search.DefaultThresholds(),
		},
		Cache: CacheConfig{
			Backend: BackendFile,
			Path:    "faq_embeddings.cache",
			Dir:     "faq_embeddings.db",
			Valkey:  ValkeyConfig{Prefix: "faqit"},
		},
		Messages: MessagesConfig{Locale: "en"},
		HTTP: HTTPConfig{
			Address:         ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}

	if strings.EqualFold(strings.TrimSpace(profile), ProfileAzure) {
		cfg.Profile = ProfileAzure
		azure := ai.AzureConfig("")
		cfg.AI.Endpoint = ""
		cfg.AI.ChatModel = azure.ChatModel
		cfg.AI.ChatAPIVersion = azure.ChatAPIVersion
		cfg.AI.EmbeddingAPIVersion = azure.EmbeddingAPIVersion
		cfg.Search.Thresholds.Low = 0.35
		cfg.Messages.Locale = "pl"
	}
	return cfg
}

// Load builds the configuration from envFile, the YAML file at path and the
// environment. An empty path reads DefaultFile when it exists; an empty
// envFile skips .env loading, and a missing one is ignored.
func Load(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	var data []byte
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		data = raw
	}

	cfg, err := build(data, os.Getenv)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// build layers data and the environment over the defaults of the profile the
// two of them select.
func build(data []byte, getenv func(string) string) (*Config, error) {
	declared := Default(ProfileOpenAI)
	if err := hydrate(declared, data); err != nil {
		return nil, err
	}
	profile := declared.Profile
	if v := getenv("FAQIT_PROFILE"); v != "" {
		profile = v
	} else if declared.Profile == ProfileOpenAI && getenv("AZURE_OPENAI_ENDPOINT") != "" && !declaresProfile(data) {
		profile = ProfileAzure
	}

	cfg := Default(profile)
	if err := hydrate(cfg, data); err != nil {
		return nil, err
	}
	cfg.Profile = Default(profile).Profile
	applyEnvOverrides(cfg, getenv)
	return cfg, nil
}

func hydrate(cfg *Config, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func declaresProfile(data []byte) bool {
	var doc struct {
		Profile string `yaml:"profile"`
	}
	return len(data) > 0 && yaml.Unmarshal(data, &doc) == nil && doc.Profile != ""
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Corpus.Path) == "" {
		return errors.New("corpus.path cannot be empty")
	}
	if err := c.Search.Thresholds.Validate(); err != nil {
		return fmt.Errorf("search.thresholds: %w", err)
	}
	if c.Search.TopK <= 0 {
		return errors.New("search.topK must be positive")
	}
	if c.Cache.PoolSize < 0 {
		return errors.New("cache.poolSize cannot be negative")
	}
	switch c.Cache.Backend {
	case BackendFile:
		if strings.TrimSpace(c.Cache.Path) == "" {
			return errors.New("cache.path cannot be empty for the file backend")
		}
	case BackendBadger:
		if strings.TrimSpace(c.Cache.Dir) == "" {
			return errors.New("cache.dir cannot be empty for the badger backend")
		}
	case BackendValkey:
		if strings.TrimSpace(c.Cache.Valkey.Addr) == "" {
			return errors.New("cache.valkey.addr cannot be empty for the valkey backend")
		}
		if c.Cache.Valkey.TTL < 0 {
			return errors.New("cache.valkey.ttl cannot be negative")
		}
	default:
		return fmt.Errorf("cache.backend %q is not one of file, badger, valkey", c.Cache.Backend)
	}
	if _, err := synth.Catalog(c.Messages.Locale); err != nil {
		return fmt.Errorf("messages.locale: %w", err)
	}
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	return nil
}

// ProviderConfig converts the AI settings into a validated ai.Config.
func (c *Config) ProviderConfig() (*ai.Config, error) {
	apiType := ai.APITypeOpenAI
	if c.Profile == ProfileAzure {
		apiType = ai.APITypeAzure
	}

	cfg := ai.NewConfig(
		ai.WithAPIType(apiType),
		ai.WithHost(c.AI.Endpoint),
		ai.WithToken(c.AI.APIKey),
		ai.WithChatModel(c.AI.ChatModel),
		ai.WithEmbeddingModel(c.AI.EmbeddingModel),
		ai.WithAPIVersions(c.AI.ChatAPIVersion, c.AI.EmbeddingAPIVersion),
		ai.WithTemperature(c.AI.Temperature),
		ai.WithMaxTokens(c.AI.MaxTokens),
		ai.WithRetry(c.AI.MaxRetries, c.AI.RetryDelay),
	)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MessageCatalog returns the messages for the configured locale.
func (c *Config) MessageCatalog() (synth.Messages, error) {
	return synth.Catalog(c.Messages.Locale)
}
