package pipeline

import "github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"

// Progress is the ordered list of status labels for one run plus a cursor.
// The list is fixed when the run starts; advancing never removes entries.
type Progress struct {
	statuses []string
	cursor   int
}

// NewProgress computes the labels for the selected options. The last label
// is always "Completed".
func NewProgress(opts model.TranscriptionOptions) *Progress {
	statuses := []string{model.StatusUploading, model.StatusTranscribing}
	if opts.IdentifySpeakers() {
		statuses = append(statuses, model.StatusIdentifyingSpeakers)
	} else {
		statuses = append(statuses, model.StatusFormatting)
	}
	if opts.EnableSummary {
		statuses = append(statuses, model.StatusGeneratingSummary)
	}
	statuses = append(statuses, model.StatusCompleted)

	return &Progress{statuses: statuses}
}

// Statuses returns a copy of every label, consumed or not.
func (p *Progress) Statuses() []string {
	return append([]string(nil), p.statuses...)
}

// Remaining is the number of labels not yet consumed.
func (p *Progress) Remaining() int {
	return len(p.statuses) - p.cursor
}

// Current returns the last consumed label, or "" before the first Advance.
func (p *Progress) Current() string {
	if p.cursor == 0 {
		return ""
	}
	return p.statuses[p.cursor-1]
}

// Advance consumes the next label. It reports false once all are consumed.
func (p *Progress) Advance() (string, bool) {
	if p.cursor >= len(p.statuses) {
		return "", false
	}
	label := p.statuses[p.cursor]
	p.cursor++
	return label, true
}

// DisplayText is the message text that goes with a label.
func DisplayText(label string) string {
	switch label {
	case model.StatusCompleted:
		return model.TextCompleted
	case model.StatusFailed:
		return model.TextFailed
	default:
		return model.TextWorking
	}
}
