package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
)

// FakeTranscriber is an in-memory provider.Transcriber. Each call sleeps for
// the configured latency of its method before answering.
type FakeTranscriber struct {
	mu sync.Mutex

	jobs       map[string]*model.TranscriptionJob
	paragraphs map[string][]string
	errors     map[string]error
	latency    map[string]time.Duration
	nextID     int

	Uploads  [][]byte
	Submits  []provider.SubmitRequest
	Calls    []string
	SubmitID string
	Ready    *model.TranscriptionJob
}

// NewFakeTranscriber creates an empty fake
func NewFakeTranscriber() *FakeTranscriber {
	return &FakeTranscriber{
		jobs:       make(map[string]*model.TranscriptionJob),
		paragraphs: make(map[string][]string),
		errors:     make(map[string]error),
		latency:    make(map[string]time.Duration),
	}
}

// WithTranscript stores a ready job with the given text
func (f *FakeTranscriber) WithTranscript(jobID, text string) *FakeTranscriber {
	f.jobs[jobID] = &model.TranscriptionJob{ID: jobID, Status: model.JobStatusReady, Text: text}
	return f
}

// WithReadyJob sets the job returned by WaitUntilReady for the next submit
func (f *FakeTranscriber) WithReadyJob(job *model.TranscriptionJob) *FakeTranscriber {
	f.Ready = job
	f.SubmitID = job.ID
	f.jobs[job.ID] = job
	return f
}

// WithParagraphs sets the paragraphs of a job
func (f *FakeTranscriber) WithParagraphs(jobID string, paragraphs ...string) *FakeTranscriber {
	f.paragraphs[jobID] = paragraphs
	return f
}

// WithError makes method fail with err
func (f *FakeTranscriber) WithError(method string, err error) *FakeTranscriber {
	f.errors[method] = err
	return f
}

// WithLatency delays every call to method
func (f *FakeTranscriber) WithLatency(method string, d time.Duration) *FakeTranscriber {
	f.latency[method] = d
	return f
}

// CallLog returns a copy of the method names called so far, in order
func (f *FakeTranscriber) CallLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Calls...)
}

func (f *FakeTranscriber) enter(ctx context.Context, method string) error {
	f.mu.Lock()
	f.Calls = append(f.Calls, method)
	d := f.latency[method]
	err := f.errors[method]
	f.mu.Unlock()

	if d > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
	return err
}

func (f *FakeTranscriber) UploadAudio(ctx context.Context, audio io.Reader) (string, error) {
	if err := f.enter(ctx, "UploadAudio"); err != nil {
		return "", err
	}
	data, err := io.ReadAll(audio)
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.Uploads = append(f.Uploads, data)
	return fmt.Sprintf("https://upload.test/%d", len(f.Uploads)), nil
}

func (f *FakeTranscriber) SubmitTranscription(ctx context.Context, request *provider.SubmitRequest) (*model.TranscriptionJob, error) {
	if err := f.enter(ctx, "SubmitTranscription"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.Submits = append(f.Submits, *request)
	id := f.SubmitID
	if id == "" {
		f.nextID++
		id = fmt.Sprintf("job-%d", f.nextID)
	}
	return &model.TranscriptionJob{ID: id, AudioURL: request.AudioURL, Status: model.JobStatusSubmitted}, nil
}

func (f *FakeTranscriber) WaitUntilReady(ctx context.Context, jobID string, _ time.Duration) (*model.TranscriptionJob, error) {
	if err := f.enter(ctx, "WaitUntilReady"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if job, ok := f.jobs[jobID]; ok {
		return job, nil
	}
	return &model.TranscriptionJob{ID: jobID, Status: model.JobStatusReady}, nil
}

func (f *FakeTranscriber) GetTranscript(ctx context.Context, jobID string) (*model.TranscriptionJob, error) {
	if err := f.enter(ctx, "GetTranscript"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, &provider.TranscriptionError{Code: "not_found", Message: "transcript not found: " + jobID, Provider: "fake"}
	}
	return job, nil
}

func (f *FakeTranscriber) FetchParagraphs(ctx context.Context, jobID string) ([]string, error) {
	if err := f.enter(ctx, "FetchParagraphs"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paragraphs[jobID], nil
}
