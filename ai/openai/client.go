package openai

import (
	"net/http"

	"github.com/poiesic/faqit/ai"
	"github.com/tmc/langchaingo/llms/openai"
)

// clientOptions builds the langchaingo options shared by the embedding and
// chat clients. host and apiVersion differ per service.
func clientOptions(config *ai.Config, host, apiVersion string, httpClient *http.Client) []openai.Option {
	token := config.Token
	if token == "" {
		// Local OpenAI-compatible servers ignore the token but the client requires one
		token = "none"
	}

	opts := []openai.Option{
		openai.WithBaseURL(host),
		openai.WithToken(token),
	}
	if config.APIType == ai.APITypeAzure {
		opts = append(opts,
			openai.WithAPIType(openai.APITypeAzure),
			openai.WithAPIVersion(apiVersion),
		)
	}
	if httpClient != nil {
		opts = append(opts, openai.WithHTTPClient(httpClient))
	}
	return opts
}
