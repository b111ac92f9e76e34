package errors

import (
	stderrors "errors"
	"fmt"
)

// Common error types
var (
	// Attachment errors
	ErrNoAttachment   = New("no attachment found in thread")
	ErrDownloadFailed = New("attachment download failed")

	// Provider errors
	ErrUploadFailed = New("audio upload failed")
	ErrSubmitFailed = New("transcription submit failed")
	ErrJobFailed    = New("transcription job failed")
	ErrWaitTimeout  = New("timed out waiting for transcription")
	ErrFetchFailed  = New("transcript fetch failed")
	ErrLLMFailed    = New("llm request failed")

	// Contract errors
	ErrMalformedResponse = New("malformed llm response")
	ErrMissingFormValue  = New("form value missing")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Mark attaches a sentinel to cause. The result matches the sentinel under
// errors.Is and keeps cause in its chain.
func Mark(sentinel *Error, cause error) error {
	if cause == nil {
		return sentinel
	}
	return &Error{
		message: sentinel.message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// Kind classifies a pipeline failure for the user-facing policy.
type Kind string

const (
	// KindAttachment: no file on the thread, or the download failed. Fatal.
	KindAttachment Kind = "attachment"
	// KindProvider: upload, submit, wait or fetch failed. Fatal.
	KindProvider Kind = "provider"
	// KindLLMContract: the LLM reply did not match the expected shape. Recovered.
	KindLLMContract Kind = "llm_contract"
	// KindInteractionState: a form field was absent. Defaults are used.
	KindInteractionState Kind = "interaction_state"
)

// StageError records which pipeline stage failed and for which job.
type StageError struct {
	Kind  Kind
	Stage string
	JobID string
	Err   error
}

// NewStageError creates a stage error
func NewStageError(kind Kind, stage, jobID string, err error) *StageError {
	return &StageError{Kind: kind, Stage: stage, JobID: jobID, Err: err}
}

func (e *StageError) Error() string {
	if e.JobID != "" {
		return fmt.Sprintf("%s stage %q (job %s): %v", e.Kind, e.Stage, e.JobID, e.Err)
	}
	return fmt.Sprintf("%s stage %q: %v", e.Kind, e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *StageError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first StageError in err's chain.
func KindOf(err error) (Kind, bool) {
	var stageErr *StageError
	if stderrors.As(err, &stageErr) {
		return stageErr.Kind, true
	}
	return "", false
}

// IsAttachmentError checks if err is a fatal attachment failure
func IsAttachmentError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindAttachment
}

// IsProviderError checks if err is a fatal provider failure
func IsProviderError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindProvider
}
