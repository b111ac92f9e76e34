package model

// Status labels shown on the transcript message.
const (
	StatusUploading           = "Uploading file"
	StatusTranscribing        = "Transcribing"
	StatusIdentifyingSpeakers = "Identifying speakers"
	StatusFormatting          = "Formatting"
	StatusGeneratingSummary   = "Generating summary"
	StatusCompleted           = "Completed"
	StatusFailed              = "Failed"
)

// Display texts for the transcript message.
const (
	TextWorking   = "Working on it..."
	TextCompleted = "Here is the transcript:"
	TextFailed    = "Something went wrong."
)

// TranscriptMessage is the current progress projection of one run. It is
// rebuilt after every stage and rendered by the chat layer.
type TranscriptMessage struct {
	Text                         string `json:"text"`
	FileName                     string `json:"file_name"`
	Status                       string `json:"status"`
	JobID                        string `json:"job_id,omitempty"`
	Transcript                   string `json:"transcript,omitempty"`
	SpeakerIdentificationContext string `json:"speaker_identification_context,omitempty"`
	Summary                      string `json:"summary,omitempty"`
}

// IsCompleted reports whether the message shows a finished transcript.
func (m TranscriptMessage) IsCompleted() bool {
	return m.Status == StatusCompleted
}

// SpeakerIdentificationResult is the output of one identification request.
type SpeakerIdentificationResult struct {
	Text        string `json:"text"`
	Explanation string `json:"explanation,omitempty"`
}

// TranscriptActions is carried in follow-up button values so the bot can act
// on a finished transcript without any server-side state.
type TranscriptActions struct {
	HasSpeakerLabels         bool   `json:"hasSpeakerLabels"`
	HasBeenSpeakerIdentified bool   `json:"hasBeenSpeakerIdentified"`
	HasBeenSummarized        bool   `json:"hasBeenSummarized"`
	TranscriptID             string `json:"transcriptId"`
	ChannelID                string `json:"channelId"`
	ThreadTS                 string `json:"threadTs"`
	MessageTS                string `json:"messageTs"`
	FileName                 string `json:"fileName"`
}
