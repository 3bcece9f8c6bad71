// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ai

import (
	"fmt"
	"strings"
	"time"
)

// API types understood by the provider implementations.
const (
	APITypeOpenAI = "openai"
	APITypeAzure  = "azure"
)

// Config holds configuration for AI service providers.
type Config struct {
	// APIType selects the wire dialect: "openai" or "azure".
	// Default: "openai"
	APIType string

	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "https://api.openai.com/v1", "https://my-resource.openai.azure.com"
	EmbeddingHost string

	// ChatHost is the base URL for the chat completion service API.
	ChatHost string

	// Token is the API key. Local OpenAI-compatible servers accept any value.
	Token string

	// EmbeddingModel is the model (or Azure deployment) used for embeddings.
	// Example: "text-embedding-3-small"
	EmbeddingModel string

	// ChatModel is the model (or Azure deployment) used for answer generation.
	// Example: "gpt-4o-mini", "gpt-5-chat"
	ChatModel string

	// ChatAPIVersion is required by Azure for chat completions.
	ChatAPIVersion string

	// EmbeddingAPIVersion is required by Azure for embeddings.
	EmbeddingAPIVersion string

	// Temperature is the sampling temperature for generation.
	// Default: 0.7
	Temperature float64

	// MaxTokens bounds the length of a generated answer.
	// Default: 300
	MaxTokens int

	// MaxRetries is the number of attempts for each remote call.
	// Default: 3
	MaxRetries int

	// RetryDelay is the base delay between attempts; it doubles each retry.
	// Default: 500ms
	RetryDelay time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAPIType sets the wire dialect.
func WithAPIType(apiType string) ConfigOption {
	return func(c *Config) {
		c.APIType = apiType
	}
}

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithChatHost sets the chat service host URL.
func WithChatHost(host string) ConfigOption {
	return func(c *Config) {
		c.ChatHost = host
	}
}

// WithHost sets both embedding and chat hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.ChatHost = host
	}
}

// WithToken sets the API key.
func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithChatModel sets the chat model identifier.
func WithChatModel(model string) ConfigOption {
	return func(c *Config) {
		c.ChatModel = model
	}
}

// WithAPIVersions sets the Azure API versions for chat and embeddings.
func WithAPIVersions(chat, embedding string) ConfigOption {
	return func(c *Config) {
		c.ChatAPIVersion = chat
		c.EmbeddingAPIVersion = embedding
	}
}

// WithTemperature sets the generation temperature.
func WithTemperature(t float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = t
	}
}

// WithMaxTokens sets the generation length limit.
func WithMaxTokens(n int) ConfigOption {
	return func(c *Config) {
		c.MaxTokens = n
	}
}

// WithRetry sets the retry policy for remote calls.
func WithRetry(maxAttempts int, baseDelay time.Duration) ConfigOption {
	return func(c *Config) {
		c.MaxRetries = maxAttempts
		c.RetryDelay = baseDelay
	}
}

// DefaultConfig returns a Config with defaults for the public OpenAI API.
// The token is left empty and must be supplied.
func DefaultConfig() *Config {
	defaultHost := "https://api.openai.com/v1"
	return &Config{
		APIType:        APITypeOpenAI,
		EmbeddingHost:  defaultHost,
		ChatHost:       defaultHost,
		EmbeddingModel: "text-embedding-3-small",
		ChatModel:      "gpt-4o-mini",
		Temperature:    0.7,
		MaxTokens:      300,
		MaxRetries:     3,
		RetryDelay:     500 * time.Millisecond,
	}
}

// AzureConfig returns a Config with the Azure OpenAI defaults. The endpoint
// is used for both services.
func AzureConfig(endpoint string) *Config {
	cfg := DefaultConfig()
	cfg.APIType = APITypeAzure
	cfg.EmbeddingHost = endpoint
	cfg.ChatHost = endpoint
	cfg.ChatModel = "gpt-5-chat"
	cfg.ChatAPIVersion = "2025-01-01-preview"
	cfg.EmbeddingAPIVersion = "2023-05-15"
	return cfg
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithToken(os.Getenv("OPENAI_API_KEY")),
//	    WithChatModel("gpt-4o"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// For the openai dialect it adds the /v1 suffix to hosts if missing, which is
// required by OpenAI-compatible APIs. Azure endpoints are only trimmed.
func (c *Config) Normalize() {
	c.APIType = strings.ToLower(strings.TrimSpace(c.APIType))
	if c.APIType == "" {
		c.APIType = APITypeOpenAI
	}
	c.EmbeddingHost = normalizeHost(c.APIType, c.EmbeddingHost)
	c.ChatHost = normalizeHost(c.APIType, c.ChatHost)
}

func normalizeHost(apiType, host string) string {
	if host == "" {
		return host
	}
	host = strings.TrimSuffix(host, "/")
	if apiType == APITypeOpenAI && !strings.HasSuffix(host, "/v1") {
		host += "/v1"
	}
	return host
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	switch c.APIType {
	case APITypeOpenAI, APITypeAzure:
	default:
		return fmt.Errorf("%w: unknown APIType %q", ErrInvalidConfig, c.APIType)
	}
	if c.EmbeddingHost == "" {
		return fmt.Errorf("%w: EmbeddingHost is required", ErrInvalidConfig)
	}
	if c.ChatHost == "" {
		return fmt.Errorf("%w: ChatHost is required", ErrInvalidConfig)
	}
	if c.EmbeddingModel == "" {
		return fmt.Errorf("%w: EmbeddingModel is required", ErrInvalidConfig)
	}
	if c.ChatModel == "" {
		return fmt.Errorf("%w: ChatModel is required", ErrInvalidConfig)
	}
	if c.APIType == APITypeAzure {
		if c.Token == "" {
			return fmt.Errorf("%w: Token is required for azure", ErrInvalidConfig)
		}
		if c.ChatAPIVersion == "" || c.EmbeddingAPIVersion == "" {
			return fmt.Errorf("%w: API versions are required for azure", ErrInvalidConfig)
		}
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("%w: Temperature must be between 0 and 2", ErrInvalidConfig)
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("%w: MaxTokens must be positive", ErrInvalidConfig)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("%w: MaxRetries must be at least 1", ErrInvalidConfig)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("%w: RetryDelay cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// ModelIdentity returns "<api type>:<embedding model>".
func (c *Config) ModelIdentity() string {
	return c.APIType + ":" + c.EmbeddingModel
}
