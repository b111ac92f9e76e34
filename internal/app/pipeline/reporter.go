package pipeline

import (
	"context"
	"sync"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
)

// Reporter receives every progress snapshot of a run, in stage order. Report
// is called synchronously; the next stage starts only after it returns.
type Reporter interface {
	Report(ctx context.Context, snapshot model.TranscriptMessage) error
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(ctx context.Context, snapshot model.TranscriptMessage) error

func (f ReporterFunc) Report(ctx context.Context, snapshot model.TranscriptMessage) error {
	return f(ctx, snapshot)
}

// RecordingReporter keeps every snapshot it receives.
type RecordingReporter struct {
	mu        sync.Mutex
	snapshots []model.TranscriptMessage
}

func (r *RecordingReporter) Report(_ context.Context, snapshot model.TranscriptMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

// Snapshots returns a copy of the recorded snapshots
func (r *RecordingReporter) Snapshots() []model.TranscriptMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.TranscriptMessage(nil), r.snapshots...)
}

// Statuses returns the status label of every recorded snapshot
func (r *RecordingReporter) Statuses() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	statuses := make([]string, 0, len(r.snapshots))
	for _, s := range r.snapshots {
		statuses = append(statuses, s.Status)
	}
	return statuses
}
