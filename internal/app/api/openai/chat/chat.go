package chat

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
	openai2 "github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/openai"
)

// BackendName is the registry key of the OpenAI chat backend.
const BackendName = "openai"

// Backend answers LLM tasks with the chat completions API.
type Backend struct {
	client      *openai.Client
	model       string
	transcripts provider.Transcriber
}

func init() {
	provider.RegisterLLM(BackendName, func(settings provider.LLMSettings, transcripts provider.Transcriber) (provider.LLM, error) {
		if settings.APIKey == "" {
			return nil, fmt.Errorf("openai backend requires an api key")
		}
		return NewBackend(openai2.NewClient(settings.APIKey, settings.BaseURL), settings.Model, transcripts), nil
	})
}

// NewBackend creates a chat backend. An empty model selects GPT-4o mini.
func NewBackend(client *openai.Client, model string, transcripts provider.Transcriber) *Backend {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Backend{client: client, model: model, transcripts: transcripts}
}

func (b *Backend) RunTask(ctx context.Context, request *provider.TaskRequest) (*provider.TaskResponse, error) {
	system, user, err := provider.InlinePrompt(ctx, b.transcripts, request)
	if err != nil {
		return nil, err
	}

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:      "llm_error",
			Message:   fmt.Sprintf("chat completion failed: %v", err),
			Provider:  BackendName,
			Retryable: true,
		}
	}
	if len(resp.Choices) == 0 {
		return nil, &provider.TranscriptionError{
			Code:     "empty_response",
			Message:  "chat completion returned no choices",
			Provider: BackendName,
		}
	}

	return &provider.TaskResponse{
		RequestID: resp.ID,
		Response:  resp.Choices[0].Message.Content,
	}, nil
}

func (b *Backend) Summarize(ctx context.Context, request *provider.SummaryRequest) (*provider.TaskResponse, error) {
	return b.RunTask(ctx, provider.SummaryTask(request))
}
