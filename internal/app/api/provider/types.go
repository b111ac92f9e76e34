package provider

import (
	"errors"
	"fmt"
)

// SubmitRequest holds the options sent when starting a transcription job.
type SubmitRequest struct {
	AudioURL          string  `json:"audio_url"`
	LanguageCode      *string `json:"language_code"`
	LanguageDetection bool    `json:"language_detection"`
	SpeakerLabels     bool    `json:"speaker_labels"`
}

// TaskRequest is a free-form prompt over either inline text or transcripts.
type TaskRequest struct {
	Prompt     string   `json:"prompt"`
	InputText  string   `json:"input_text,omitempty"`
	JobIDs     []string `json:"transcript_ids,omitempty"`
	Context    string   `json:"context,omitempty"`
	FinalModel string   `json:"final_model,omitempty"`
}

// SummaryRequest asks for a summary of one or more completed transcripts.
type SummaryRequest struct {
	JobIDs       []string `json:"transcript_ids"`
	Context      string   `json:"context,omitempty"`
	AnswerFormat string   `json:"answer_format,omitempty"`
	FinalModel   string   `json:"final_model,omitempty"`
}

// TaskResponse is the raw completion text.
type TaskResponse struct {
	RequestID string `json:"request_id"`
	Response  string `json:"response"`
}

// TranscriptionError represents provider-specific errors
type TranscriptionError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Provider    string   `json:"provider"`
	StatusCode  int      `json:"status_code,omitempty"`
	Retryable   bool     `json:"retryable"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (e *TranscriptionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Provider, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// IsRetryable reports whether err is a provider error worth retrying.
func IsRetryable(err error) bool {
	var providerErr *TranscriptionError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}
	return false
}
