package transcript

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/testutil"
)

func TestSummarize(t *testing.T) {
	llm := &testutil.MockLLM{}
	llm.On("Summarize", context.Background(), &provider.SummaryRequest{
		JobIDs:     []string{"tx-1"},
		FinalModel: "m",
	}).Return(testutil.Reply("A short summary."), nil).Once()

	summary, err := NewSummarizer(llm, "m").Summarize(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", summary)
	llm.AssertExpectations(t)
}

func TestSummarizeError(t *testing.T) {
	llm := &testutil.MockLLM{}
	llm.On("Summarize", context.Background(), &provider.SummaryRequest{JobIDs: []string{"tx-1"}}).
		Return(nil, errors.New("unavailable"))

	_, err := NewSummarizer(llm, "").Summarize(context.Background(), "tx-1")
	assert.EqualError(t, err, "unavailable")
	llm.AssertNumberOfCalls(t, "Summarize", 1)
}

func TestAnswer(t *testing.T) {
	llm := &testutil.MockLLM{}
	llm.On("RunTask", context.Background(), &provider.TaskRequest{
		Prompt: "What was decided?",
		JobIDs: []string{"tx-1"},
	}).Return(testutil.Reply("Ship on Friday."), nil)

	answer, err := NewSummarizer(llm, "").Answer(context.Background(), "tx-1", "What was decided?")
	require.NoError(t, err)
	assert.Equal(t, "Ship on Friday.", answer)
}
