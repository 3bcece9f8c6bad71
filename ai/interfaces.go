package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// Generator produces a single text completion from a system instruction and a
// user message. Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Complete returns the model's reply. An empty reply is not an error.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and Generator instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Generator returns the text completion service.
	Generator() Generator

	// ModelIdentity names the embedding model in a form stable across runs.
	// Vectors produced under different identities are not comparable.
	ModelIdentity() string

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
