// Package transcript turns completed transcription jobs into the text posted
// back to users.
package transcript

import (
	"context"
	"fmt"
	"strings"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
)

const hourMillis = 3_600_000

// IncludeHour reports whether timestamps of a job of this length need an
// hour field. It is decided once per job so every line has the same width.
func IncludeHour(durationMillis int64) bool {
	return durationMillis > hourMillis
}

// FormatTimestamp renders milliseconds as MM:SS, or HH:MM:SS when includeHour
// is set. Without the hour field minutes are not wrapped at 60.
func FormatTimestamp(millis int64, includeHour bool) string {
	if millis < 0 {
		millis = 0
	}
	total := millis / 1000
	seconds := total % 60

	if includeHour {
		return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, seconds)
	}
	return fmt.Sprintf("%02d:%02d", total/60, seconds)
}

// BuildDiarizedText renders one "Speaker <id> (<timestamp>): <text>" line per
// utterance in the order the provider returned them.
func BuildDiarizedText(job *model.TranscriptionJob) string {
	if job == nil {
		return ""
	}
	includeHour := IncludeHour(job.DurationMillis)

	var b strings.Builder
	for _, u := range job.Utterances {
		fmt.Fprintf(&b, "Speaker %s (%s): %s\n", u.SpeakerID, FormatTimestamp(u.StartMillis, includeHour), u.Text)
	}
	return b.String()
}

// BuildParagraphText terminates every paragraph with a blank line.
func BuildParagraphText(paragraphs []string) string {
	var b strings.Builder
	for _, p := range paragraphs {
		b.WriteString(p)
		b.WriteString("\n\n")
	}
	return b.String()
}

// ParagraphText fetches the job's paragraphs and assembles them.
func ParagraphText(ctx context.Context, transcripts provider.Transcriber, jobID string) (string, error) {
	paragraphs, err := transcripts.FetchParagraphs(ctx, jobID)
	if err != nil {
		return "", err
	}
	return BuildParagraphText(paragraphs), nil
}
