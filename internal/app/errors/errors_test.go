package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(fmt.Errorf("connection reset"), "uploading audio")
	wrapped := Wrap(ErrUploadFailed, "stage upload")

	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, stderrors.Is(wrapped, ErrUploadFailed))
	assert.False(t, stderrors.Is(wrapped, ErrSubmitFailed))
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestStageErrorKinds(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		isAttachment bool
		isProvider   bool
	}{
		{
			name:         "attachment",
			err:          NewStageError(KindAttachment, "download", "", ErrDownloadFailed),
			isAttachment: true,
		},
		{
			name:       "provider wrapped by fmt",
			err:        fmt.Errorf("run failed: %w", NewStageError(KindProvider, "Transcribing", "job-1", ErrWaitTimeout)),
			isProvider: true,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.isAttachment, IsAttachmentError(tc.err))
			assert.Equal(t, tc.isProvider, IsProviderError(tc.err))
		})
	}
}

func TestStageErrorMessage(t *testing.T) {
	err := NewStageError(KindProvider, "Transcribing", "job-42", ErrJobFailed)

	assert.Equal(t, `provider stage "Transcribing" (job job-42): transcription job failed`, err.Error())
	assert.True(t, stderrors.Is(err, ErrJobFailed))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindProvider, kind)
}

func TestMark(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := Mark(ErrUploadFailed, cause)

	assert.Equal(t, "audio upload failed: connection reset", err.Error())
	assert.True(t, stderrors.Is(err, ErrUploadFailed))
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, ErrUploadFailed, Mark(ErrUploadFailed, nil))
}
