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

// Package openai provides AI service implementations using OpenAI-compatible APIs.
//
// This package implements the ai.AIProvider interface using the langchaingo
// library. The same code serves the public OpenAI API, Azure OpenAI
// deployments (APIType "azure", which requires API versions) and local
// OpenAI-compatible servers such as Ollama or vLLM.
//
// # Usage
//
//	config := ai.AzureConfig(os.Getenv("AZURE_OPENAI_ENDPOINT"))
//	config.Token = os.Getenv("AZURE_OPENAI_API_KEY")
//
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vec, err := provider.Embedder().EmbedText(ctx, "How do I upload a photo?")
//	reply, err := provider.Generator().Complete(ctx, systemPrompt, userPrompt)
package openai
