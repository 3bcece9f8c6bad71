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

// Package ai provides abstractions for the AI services used by faqit.
//
// The package defines two narrow interfaces the retrieval engine depends on:
//
//   - Embedder: turns text into a vector for similarity ranking
//   - Generator: produces one completion from a system and a user prompt
//
// AIProvider aggregates both and reports the ModelIdentity under which
// vectors are cached. Vectors from different identities are never compared.
//
// # Implementation Packages
//
//   - ai/openai: OpenAI and Azure OpenAI via langchaingo
//   - ai/mock: test doubles with call counters and injectable behavior
//
// Public constructors in ai/openai return interface types. Mock constructors
// return concrete types so tests can inject behavior and assert on calls:
//
//	provider := mock.NewMockProvider()
//	provider.GetMockEmbedder().WithEmbedTextFunc(...)
//	count := provider.GetMockEmbedder().CallCount()
//
// # Retries
//
// Remote calls are wrapped in Retry, an exponential backoff loop configured
// by Config.MaxRetries and Config.RetryDelay. Context errors are returned
// immediately.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithToken(os.Getenv("OPENAI_API_KEY")))
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vec, err := provider.Embedder().EmbedText(ctx, "How do I upload a photo?")
//	reply, err := provider.Generator().Complete(ctx, system, user)
package ai
