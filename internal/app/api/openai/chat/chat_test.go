package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
	openai2 "github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/openai"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/testutil"
)

func newChatServer(t *testing.T, reply string, captured *openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID: "chatcmpl-1",
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply}},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRunTaskInlinesTranscripts(t *testing.T) {
	var captured openai.ChatCompletionRequest
	server := newChatServer(t, `{"A":"Ana"}`, &captured)

	transcripts := testutil.NewFakeTranscriber().WithTranscript("tx-1", "Speaker A (00:00): hi")
	backend := NewBackend(openai2.NewClient("test-key", server.URL), "", transcripts)

	resp, err := backend.RunTask(context.Background(), &provider.TaskRequest{
		Prompt:  "Who is speaking?",
		JobIDs:  []string{"tx-1"},
		Context: "a podcast",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"A":"Ana"}`, resp.Response)
	assert.Equal(t, "chatcmpl-1", resp.RequestID)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, openai.GPT4oMini, captured.Model)
	assert.Contains(t, captured.Messages[0].Content, "a podcast")
	assert.Contains(t, captured.Messages[1].Content, "Speaker A (00:00): hi")
	assert.Contains(t, captured.Messages[1].Content, "Who is speaking?")
}

func TestSummarizeUsesAnswerFormat(t *testing.T) {
	var captured openai.ChatCompletionRequest
	server := newChatServer(t, "short summary", &captured)

	backend := NewBackend(openai2.NewClient("test-key", server.URL), "gpt-4o", nil)
	resp, err := backend.Summarize(context.Background(), &provider.SummaryRequest{AnswerFormat: "one sentence"})
	require.NoError(t, err)
	assert.Equal(t, "short summary", resp.Response)
	assert.Equal(t, "gpt-4o", captured.Model)
	assert.Contains(t, captured.Messages[1].Content, "Answer format: one sentence")
}

func TestRegisteredBackendRequiresKey(t *testing.T) {
	_, err := provider.NewLLM(BackendName, provider.LLMSettings{}, nil)
	assert.Error(t, err)

	llm, err := provider.NewLLM(BackendName, provider.LLMSettings{APIKey: "k"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Backend{}, llm)
}
