package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
)

// BackendName is the registry key of the Gemini backend.
const BackendName = "gemini"

const defaultModel = "gemini-2.0-flash"

// Backend answers LLM tasks with Gemini generateContent.
type Backend struct {
	client      *genai.Client
	model       string
	transcripts provider.Transcriber
}

func init() {
	provider.RegisterLLM(BackendName, func(settings provider.LLMSettings, transcripts provider.Transcriber) (provider.LLM, error) {
		if settings.APIKey == "" {
			return nil, fmt.Errorf("gemini backend requires an api key")
		}
		return NewBackend(context.Background(), settings, transcripts)
	})
}

// NewBackend creates a Gemini backend. BaseURL overrides the API endpoint.
func NewBackend(ctx context.Context, settings provider.LLMSettings, transcripts provider.Transcriber) (*Backend, error) {
	config := &genai.ClientConfig{
		APIKey:  settings.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if settings.BaseURL != "" {
		config.HTTPOptions = genai.HTTPOptions{BaseURL: settings.BaseURL}
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := settings.Model
	if model == "" {
		model = defaultModel
	}
	return &Backend{client: client, model: model, transcripts: transcripts}, nil
}

func (b *Backend) RunTask(ctx context.Context, request *provider.TaskRequest) (*provider.TaskResponse, error) {
	system, user, err := provider.InlinePrompt(ctx, b.transcripts, request)
	if err != nil {
		return nil, err
	}

	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(user), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	})
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:      "llm_error",
			Message:   fmt.Sprintf("generate content failed: %v", err),
			Provider:  BackendName,
			Retryable: true,
		}
	}

	return &provider.TaskResponse{
		RequestID: resp.ResponseID,
		Response:  resp.Text(),
	}, nil
}

func (b *Backend) Summarize(ctx context.Context, request *provider.SummaryRequest) (*provider.TaskResponse, error) {
	return b.RunTask(ctx, provider.SummaryTask(request))
}
