package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient builds a go-openai client. An empty baseURL keeps the default
// endpoint; any OpenAI-compatible server works otherwise.
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}
