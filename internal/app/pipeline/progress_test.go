package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
)

func TestNewProgressStatuses(t *testing.T) {
	tests := []struct {
		name string
		opts model.TranscriptionOptions
		want []string
	}{
		{
			name: "defaults",
			opts: model.TranscriptionOptions{},
			want: []string{"Uploading file", "Transcribing", "Formatting", "Completed"},
		},
		{
			name: "labels and identification",
			opts: model.TranscriptionOptions{EnableSpeakerLabels: true, EnableSpeakerIdentification: true},
			want: []string{"Uploading file", "Transcribing", "Identifying speakers", "Completed"},
		},
		{
			name: "identification without labels formats",
			opts: model.TranscriptionOptions{EnableSpeakerIdentification: true, EnableSummary: true},
			want: []string{"Uploading file", "Transcribing", "Formatting", "Generating summary", "Completed"},
		},
		{
			name: "everything",
			opts: model.TranscriptionOptions{EnableSpeakerLabels: true, EnableSpeakerIdentification: true, EnableSummary: true},
			want: []string{"Uploading file", "Transcribing", "Identifying speakers", "Generating summary", "Completed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewProgress(tt.opts).Statuses())
		})
	}
}

func TestProgressInvariantForAllOptionCombinations(t *testing.T) {
	for _, labels := range []bool{false, true} {
		for _, identify := range []bool{false, true} {
			for _, summary := range []bool{false, true} {
				opts := model.TranscriptionOptions{
					EnableSpeakerLabels:         labels,
					EnableSpeakerIdentification: identify,
					EnableSummary:               summary,
				}
				t.Run(fmt.Sprintf("labels=%v/identify=%v/summary=%v", labels, identify, summary), func(t *testing.T) {
					progress := NewProgress(opts)

					want := 4
					if summary {
						want++
					}
					require.Len(t, progress.Statuses(), want)
					assert.Equal(t, want, progress.Remaining())

					var last string
					for i := 0; i < want; i++ {
						label, ok := progress.Advance()
						require.True(t, ok)
						assert.Equal(t, want-i-1, progress.Remaining())
						last = label
					}
					assert.Equal(t, model.StatusCompleted, last)

					_, ok := progress.Advance()
					assert.False(t, ok)
					assert.Equal(t, 0, progress.Remaining())
				})
			}
		}
	}
}

func TestProgressCurrent(t *testing.T) {
	progress := NewProgress(model.TranscriptionOptions{})
	assert.Empty(t, progress.Current())

	progress.Advance()
	progress.Advance()
	assert.Equal(t, model.StatusTranscribing, progress.Current())
	assert.Len(t, progress.Statuses(), 4)
}

func TestDisplayText(t *testing.T) {
	assert.Equal(t, "Working on it...", DisplayText(model.StatusUploading))
	assert.Equal(t, "Working on it...", DisplayText(model.StatusGeneratingSummary))
	assert.Equal(t, "Here is the transcript:", DisplayText(model.StatusCompleted))
	assert.Equal(t, "Something went wrong.", DisplayText(model.StatusFailed))
}
