// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.Generator
// and ai.AIProvider for use in unit tests. The mocks run without external
// services, are deterministic, and record their calls.
//
// # Usage in Tests
//
//	provider := mock.NewMockProvider()
//	provider.GetMockEmbedder().WithVectors(map[string][]float32{
//	    "How do I upload a photo?": {1, 0, 0},
//	})
//	provider.GetMockGenerator().WithReply("", errors.New("rate limited"))
//
//	count := provider.GetMockEmbedder().CallCount()
//
// # Default Behavior
//
//   - MockEmbedder: unit vectors derived from an FNV hash of the text
//   - MockGenerator: returns DefaultReply
//   - MockProvider: reports DefaultModelIdentity
package mock
