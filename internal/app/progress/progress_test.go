package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
)

func TestBarReporterRecordsLastSnapshot(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		var out bytes.Buffer
		r := NewBarReporter(Config{Enabled: enabled, Writer: &out}, "standup.mp3", 3)

		for _, status := range []string{model.StatusUploading, model.StatusTranscribing, model.StatusFormatting} {
			require.NoError(t, r.Report(context.Background(), model.TranscriptMessage{Status: status}))
		}
		require.NoError(t, r.Report(context.Background(), model.TranscriptMessage{
			Status:     model.StatusCompleted,
			Transcript: "hello",
		}))
		r.Wait()

		assert.Equal(t, "hello", r.Last().Transcript)
		assert.Equal(t, model.StatusCompleted, r.currentStatus())
		if enabled {
			assert.Contains(t, out.String(), "standup.mp3")
		}
	}
}

func TestBarReporterFailure(t *testing.T) {
	var out bytes.Buffer
	r := NewBarReporter(Config{Enabled: true, Writer: &out}, "a.wav", 4)
	require.NoError(t, r.Report(context.Background(), model.TranscriptMessage{Status: model.StatusUploading}))
	require.NoError(t, r.Report(context.Background(), model.TranscriptMessage{Status: model.StatusFailed}))
	r.Wait()

	assert.Equal(t, model.StatusFailed, r.Last().Status)
	assert.Contains(t, out.String(), "a.wav")
	assert.Contains(t, out.String(), model.StatusFailed)
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
	assert.True(t, ShouldShowProgress(true))
}
