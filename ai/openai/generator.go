package openai

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/poiesic/faqit/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Generator implements ai.Generator using OpenAI-compatible chat APIs.
type Generator struct {
	client      llms.Model
	temperature float64
	maxTokens   int
	policy      ai.RetryPolicy
	logger      *slog.Logger
}

func newGenerator(config *ai.Config, httpClient *http.Client) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := clientOptions(config, config.ChatHost, config.ChatAPIVersion, httpClient)
	opts = append(opts, openai.WithModel(config.ChatModel))
	client, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}

	return &Generator{
		client:      client,
		temperature: config.Temperature,
		maxTokens:   config.MaxTokens,
		policy:      config.Policy(),
		logger:      slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewGenerator creates a new chat completion service.
//
// Returns ai.Generator interface to enforce abstraction.
func NewGenerator(config *ai.Config) (ai.Generator, error) {
	return newGenerator(config, nil)
}

// Complete sends one system and one human message and returns the first choice.
func (g *Generator) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	}

	response, err := ai.Retry(ctx, g.policy, g.logger, func(ctx context.Context) (*llms.ContentResponse, error) {
		return g.client.GenerateContent(ctx, content,
			llms.WithTemperature(g.temperature),
			llms.WithMaxTokens(g.maxTokens),
		)
	})
	if err != nil {
		g.logger.Error("failed to generate content", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		g.logger.Debug("no choices returned from model")
		return "", nil
	}

	text := cleanCompletion(response.Choices[0].Content)
	g.logger.Debug("generated completion", "length", len(text), "stop", response.Choices[0].StopReason)
	return text, nil
}
