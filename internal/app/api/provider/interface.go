package provider

import (
	"context"
	"io"
	"time"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
)

// Transcriber is the speech-to-text side of the provider. Implementations
// hold credentials only and are safe for concurrent use by many runs.
type Transcriber interface {
	// UploadAudio pushes raw audio to the provider and returns an opaque URL.
	UploadAudio(ctx context.Context, audio io.Reader) (string, error)

	// SubmitTranscription starts a job. The returned job carries the id.
	SubmitTranscription(ctx context.Context, request *SubmitRequest) (*model.TranscriptionJob, error)

	// WaitUntilReady blocks until the job is ready or failed, or timeout elapses.
	// A zero timeout means no upper bound beyond ctx.
	WaitUntilReady(ctx context.Context, jobID string, timeout time.Duration) (*model.TranscriptionJob, error)

	// GetTranscript returns the current state of a job.
	GetTranscript(ctx context.Context, jobID string) (*model.TranscriptionJob, error)

	// FetchParagraphs returns provider-segmented paragraph texts in order.
	FetchParagraphs(ctx context.Context, jobID string) ([]string, error)
}

// LLM runs prompt-completion tasks over text or completed transcripts.
type LLM interface {
	RunTask(ctx context.Context, request *TaskRequest) (*TaskResponse, error)
	Summarize(ctx context.Context, request *SummaryRequest) (*TaskResponse, error)
}

// TranscriptText returns the plain text of every job, joined by blank lines.
// LLM backends that cannot reference transcripts by id use it to inline them.
func TranscriptText(ctx context.Context, transcripts Transcriber, jobIDs []string) (string, error) {
	var text string
	for i, id := range jobIDs {
		job, err := transcripts.GetTranscript(ctx, id)
		if err != nil {
			return "", err
		}
		if i > 0 {
			text += "\n\n"
		}
		text += job.Text
	}
	return text, nil
}
