package model

// JobStatus is the lifecycle state of a transcription job on the provider side.
type JobStatus string

const (
	JobStatusSubmitted  JobStatus = "submitted"
	JobStatusProcessing JobStatus = "processing"
	JobStatusReady      JobStatus = "ready"
	JobStatusFailed     JobStatus = "failed"
)

// IsTerminal reports whether the provider will no longer change the job.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusReady || s == JobStatusFailed
}

// Utterance is one continuous speech segment attributed to a single speaker.
type Utterance struct {
	SpeakerID   string `json:"speaker"`
	StartMillis int64  `json:"start"`
	Text        string `json:"text"`
}

// TranscriptionJob is the provider's view of a submitted transcription.
// Utterances are only present when speaker labels were requested and are
// kept in the chronological order the provider returned them.
type TranscriptionJob struct {
	ID             string      `json:"id"`
	AudioURL       string      `json:"audio_url"`
	Status         JobStatus   `json:"status"`
	DurationMillis int64       `json:"duration_ms"`
	Text           string      `json:"text,omitempty"`
	Utterances     []Utterance `json:"utterances,omitempty"`
	Error          string      `json:"error,omitempty"`
}

// HasUtterances reports whether the job carries speaker-attributed segments.
func (j *TranscriptionJob) HasUtterances() bool {
	return j != nil && len(j.Utterances) > 0
}
