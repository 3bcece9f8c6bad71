package ai

import "errors"

var (
	// ErrInvalidConfig indicates the provider configuration is incomplete or inconsistent.
	ErrInvalidConfig = errors.New("ai config")

	// ErrInvalidMaxAttempts indicates a retry was requested with no attempts.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrEmptyEmbedding indicates the service answered without a vector.
	ErrEmptyEmbedding = errors.New("embedding service returned no vector")
)
