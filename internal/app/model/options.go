package model

// Values of the options checkbox group on the transcribe form.
const (
	OptionSpeakerLabels    = "speaker_labels"
	OptionIdentifySpeakers = "identify_speakers"
	OptionGenerateSummary  = "generate_summary"
)

// TranscriptionOptions are the user selections for one pipeline run.
type TranscriptionOptions struct {
	LanguageCode                string `json:"language_code,omitempty"`
	EnableSpeakerLabels         bool   `json:"speaker_labels"`
	EnableSpeakerIdentification bool   `json:"identify_speakers"`
	EnableSummary               bool   `json:"generate_summary"`
}

// NewTranscriptionOptions builds options from a language code (empty means
// auto-detect) and the selected checkbox values.
func NewTranscriptionOptions(languageCode string, selected []string) TranscriptionOptions {
	opts := TranscriptionOptions{LanguageCode: languageCode}
	for _, value := range selected {
		switch value {
		case OptionSpeakerLabels:
			opts.EnableSpeakerLabels = true
		case OptionIdentifySpeakers:
			opts.EnableSpeakerIdentification = true
		case OptionGenerateSummary:
			opts.EnableSummary = true
		}
	}
	return opts
}

// DetectLanguage is true iff no explicit language code was chosen.
func (o TranscriptionOptions) DetectLanguage() bool {
	return o.LanguageCode == ""
}

// IdentifySpeakers reports whether speaker identification will actually run.
// Identification needs speaker labels, so the flag alone is not enough.
func (o TranscriptionOptions) IdentifySpeakers() bool {
	return o.EnableSpeakerLabels && o.EnableSpeakerIdentification
}
