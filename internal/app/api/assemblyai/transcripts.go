package assemblyai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
	apperrors "github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/errors"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
)

type uploadResponse struct {
	UploadURL string `json:"upload_url"`
}

type transcriptResponse struct {
	ID            string      `json:"id"`
	Status        string      `json:"status"`
	AudioURL      string      `json:"audio_url"`
	Text          *string     `json:"text"`
	AudioDuration *float64    `json:"audio_duration"`
	Utterances    []utterance `json:"utterances"`
	Error         *string     `json:"error"`
}

type utterance struct {
	Speaker string `json:"speaker"`
	Start   int64  `json:"start"`
	End     int64  `json:"end"`
	Text    string `json:"text"`
}

type paragraphsResponse struct {
	Paragraphs []struct {
		Text string `json:"text"`
	} `json:"paragraphs"`
}

// UploadAudio streams the audio to the upload endpoint. The body is consumed
// once, so uploads are not retried.
func (c *Client) UploadAudio(ctx context.Context, audio io.Reader) (string, error) {
	var resp uploadResponse
	if err := c.do(ctx, http.MethodPost, "/v2/upload", audio, "application/octet-stream", &resp); err != nil {
		return "", err
	}
	if resp.UploadURL == "" {
		return "", &provider.TranscriptionError{
			Code:     "response_parse_error",
			Message:  "upload response has no upload_url",
			Provider: providerName,
		}
	}
	return resp.UploadURL, nil
}

// SubmitTranscription starts a transcription job.
func (c *Client) SubmitTranscription(ctx context.Context, request *provider.SubmitRequest) (*model.TranscriptionJob, error) {
	if request == nil || request.AudioURL == "" {
		return nil, &provider.TranscriptionError{
			Code:     "invalid_input",
			Message:  "audio url is required",
			Provider: providerName,
		}
	}

	var resp transcriptResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v2/transcript", request, &resp); err != nil {
		return nil, err
	}
	c.logger.Debug("transcription submitted", zap.String("job_id", resp.ID))
	return resp.toJob(), nil
}

// GetTranscript returns the current state of a job.
func (c *Client) GetTranscript(ctx context.Context, jobID string) (*model.TranscriptionJob, error) {
	var resp transcriptResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v2/transcript/"+url.PathEscape(jobID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.toJob(), nil
}

// WaitUntilReady polls until the job reaches a terminal status. A failed job
// is returned together with an error wrapping ErrJobFailed.
func (c *Client) WaitUntilReady(ctx context.Context, jobID string, timeout time.Duration) (*model.TranscriptionJob, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ticker := time.NewTicker(c.config.PollInterval)
	defer ticker.Stop()

	for {
		job, err := c.GetTranscript(ctx, jobID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, c.waitError(ctx, jobID)
			}
			return nil, err
		}

		switch job.Status {
		case model.JobStatusReady:
			return job, nil
		case model.JobStatusFailed:
			return job, apperrors.Mark(apperrors.ErrJobFailed, fmt.Errorf("job %s: %s", jobID, job.Error))
		}

		select {
		case <-ctx.Done():
			return nil, c.waitError(ctx, jobID)
		case <-ticker.C:
		}
	}
}

func (c *Client) waitError(ctx context.Context, jobID string) error {
	if ctx.Err() == context.DeadlineExceeded {
		return apperrors.Mark(apperrors.ErrWaitTimeout, fmt.Errorf("job %s: %w", jobID, ctx.Err()))
	}
	return ctx.Err()
}

// FetchParagraphs returns the provider's paragraph segmentation in order.
func (c *Client) FetchParagraphs(ctx context.Context, jobID string) ([]string, error) {
	var resp paragraphsResponse
	path := fmt.Sprintf("/v2/transcript/%s/paragraphs", url.PathEscape(jobID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	paragraphs := make([]string, 0, len(resp.Paragraphs))
	for _, p := range resp.Paragraphs {
		paragraphs = append(paragraphs, p.Text)
	}
	return paragraphs, nil
}

func (r *transcriptResponse) toJob() *model.TranscriptionJob {
	job := &model.TranscriptionJob{
		ID:       r.ID,
		AudioURL: r.AudioURL,
		Status:   mapStatus(r.Status),
	}
	if r.Text != nil {
		job.Text = *r.Text
	}
	if r.AudioDuration != nil {
		job.DurationMillis = int64(*r.AudioDuration * 1000)
	}
	if r.Error != nil {
		job.Error = *r.Error
	}
	if len(r.Utterances) > 0 {
		job.Utterances = make([]model.Utterance, 0, len(r.Utterances))
		for _, u := range r.Utterances {
			job.Utterances = append(job.Utterances, model.Utterance{
				SpeakerID:   u.Speaker,
				StartMillis: u.Start,
				Text:        u.Text,
			})
		}
	}
	return job
}

func mapStatus(status string) model.JobStatus {
	switch status {
	case "queued":
		return model.JobStatusSubmitted
	case "processing":
		return model.JobStatusProcessing
	case "completed":
		return model.JobStatusReady
	case "error":
		return model.JobStatusFailed
	default:
		return model.JobStatusProcessing
	}
}
