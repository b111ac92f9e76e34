package transcript

import (
	"context"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
)

// Summarizer asks the LLM for one summary per call. It does not retry or cache.
type Summarizer struct {
	llm        provider.LLM
	finalModel string
}

func NewSummarizer(llm provider.LLM, finalModel string) *Summarizer {
	return &Summarizer{llm: llm, finalModel: finalModel}
}

// Summarize returns the summary of a completed job verbatim.
func (s *Summarizer) Summarize(ctx context.Context, jobID string) (string, error) {
	resp, err := s.llm.Summarize(ctx, &provider.SummaryRequest{
		JobIDs:     []string{jobID},
		FinalModel: s.finalModel,
	})
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}

// Answer runs a free-form question over a completed job.
func (s *Summarizer) Answer(ctx context.Context, jobID, question string) (string, error) {
	resp, err := s.llm.RunTask(ctx, &provider.TaskRequest{
		Prompt:     question,
		JobIDs:     []string{jobID},
		FinalModel: s.finalModel,
	})
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}
