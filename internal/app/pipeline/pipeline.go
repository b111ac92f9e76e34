// Package pipeline drives one audio file through upload, transcription,
// formatting, optional speaker identification and optional summarization,
// reporting a progress snapshot as each stage begins.
package pipeline

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
	apperrors "github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/errors"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/metrics"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/transcript"
)

// Config holds the pipeline's tunables
type Config struct {
	WaitTimeout time.Duration
}

// FinalReportTimeout bounds the terminal report of a run whose own context
// may already be done.
const FinalReportTimeout = 10 * time.Second

// Detach returns a context that ignores ctx's cancellation and deadline,
// bounded by FinalReportTimeout. Values such as the request id carry over.
func Detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), FinalReportTimeout)
}

// Input is one run's request
type Input struct {
	FileName   string
	Audio      io.Reader
	Options    model.TranscriptionOptions
	UserPrompt string
}

// Pipeline is shared by all runs; per-run state lives in a run value.
type Pipeline struct {
	transcripts provider.Transcriber
	identifier  *transcript.SpeakerIdentifier
	summarizer  *transcript.Summarizer
	config      Config
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// New creates a pipeline. metrics may be nil.
func New(
	transcripts provider.Transcriber,
	identifier *transcript.SpeakerIdentifier,
	summarizer *transcript.Summarizer,
	config Config,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		transcripts: transcripts,
		identifier:  identifier,
		summarizer:  summarizer,
		config:      config,
		metrics:     m,
		logger:      logger,
	}
}

type run struct {
	*Pipeline
	input    Input
	reporter Reporter
	progress *Progress
	message  model.TranscriptMessage
	logger   *zap.Logger

	stage        string
	stageStarted time.Time
}

// Run executes every stage in order and returns the final snapshot. On a
// fatal error the reporter receives one last "Failed" snapshot and the
// returned error is an *errors.StageError naming the stage.
func (p *Pipeline) Run(ctx context.Context, input Input, reporter Reporter) (model.TranscriptMessage, error) {
	r := &run{
		Pipeline: p,
		input:    input,
		reporter: reporter,
		progress: NewProgress(input.Options),
		message:  model.TranscriptMessage{FileName: input.FileName},
		logger: p.logger.With(
			zap.String("run_id", uuid.NewString()),
			zap.String("file_name", input.FileName),
		),
	}

	err := r.execute(ctx)
	r.finishStage()
	if err != nil {
		r.fail(ctx, err)
		p.metrics.RecordRun(metrics.OutcomeFailure)
		return r.message, err
	}

	p.metrics.RecordRun(metrics.OutcomeSuccess)
	r.logger.Info("transcription completed", zap.String("job_id", r.message.JobID))
	return r.message, nil
}

func (r *run) execute(ctx context.Context) error {
	opts := r.input.Options

	r.advance(ctx)
	audioURL, err := r.transcripts.UploadAudio(ctx, r.input.Audio)
	if err != nil {
		return r.stageError(model.StatusUploading, apperrors.Mark(apperrors.ErrUploadFailed, err))
	}

	request := &provider.SubmitRequest{
		AudioURL:          audioURL,
		LanguageDetection: opts.DetectLanguage(),
		SpeakerLabels:     opts.EnableSpeakerLabels,
	}
	if !opts.DetectLanguage() {
		code := opts.LanguageCode
		request.LanguageCode = &code
	}
	submitted, err := r.transcripts.SubmitTranscription(ctx, request)
	if err != nil {
		return r.stageError(model.StatusTranscribing, apperrors.Mark(apperrors.ErrSubmitFailed, err))
	}
	r.message.JobID = submitted.ID
	r.advance(ctx)

	job, err := r.transcripts.WaitUntilReady(ctx, submitted.ID, r.config.WaitTimeout)
	if err != nil {
		return r.stageError(model.StatusTranscribing, waitError(err))
	}

	r.advance(ctx)
	if opts.EnableSpeakerLabels && job.HasUtterances() {
		text := transcript.BuildDiarizedText(job)
		if opts.IdentifySpeakers() {
			result := r.identifier.Identify(ctx, text, r.input.UserPrompt)
			text = result.Text
			r.message.SpeakerIdentificationContext = result.Explanation
		}
		r.message.Transcript = text
	} else {
		if opts.EnableSpeakerLabels {
			r.logger.Warn("speaker labels requested but no utterances returned", zap.String("job_id", job.ID))
		}
		text, err := transcript.ParagraphText(ctx, r.transcripts, job.ID)
		if err != nil {
			return r.stageError(model.StatusFormatting, apperrors.Mark(apperrors.ErrFetchFailed, err))
		}
		r.message.Transcript = text
	}

	if opts.EnableSummary {
		r.advance(ctx)
		summary, err := r.summarizer.Summarize(ctx, job.ID)
		if err != nil {
			return r.stageError(model.StatusGeneratingSummary, apperrors.Mark(apperrors.ErrLLMFailed, err))
		}
		r.message.Summary = summary
	}

	r.advance(ctx)
	return nil
}

// advance consumes the next label and reports the snapshot before the stage
// it names starts.
func (r *run) advance(ctx context.Context) {
	r.finishStage()

	label, ok := r.progress.Advance()
	if !ok {
		return
	}
	r.message.Status = label
	r.message.Text = DisplayText(label)
	r.stage = label
	r.stageStarted = time.Now()

	r.logger.Info("pipeline stage", zap.String("stage", label), zap.String("job_id", r.message.JobID))
	r.report(ctx)
}

func (r *run) finishStage() {
	if r.stage == "" || r.stage == model.StatusCompleted {
		return
	}
	r.metrics.ObserveStage(r.stage, time.Since(r.stageStarted))
	r.stage = ""
}

func (r *run) report(ctx context.Context) {
	if r.reporter == nil {
		return
	}
	if err := r.reporter.Report(ctx, r.message); err != nil {
		r.logger.Warn("failed to report progress",
			zap.String("stage", r.message.Status),
			zap.Error(err))
	}
}

func (r *run) fail(ctx context.Context, err error) {
	stage := r.progress.Current()
	var stageErr *apperrors.StageError
	if stderrors.As(err, &stageErr) {
		stage = stageErr.Stage
	}
	r.logger.Error("transcription failed",
		zap.String("stage", stage),
		zap.String("job_id", r.message.JobID),
		zap.Error(err))

	r.message.Status = model.StatusFailed
	r.message.Text = DisplayText(model.StatusFailed)
	r.message.Transcript = ""
	r.message.SpeakerIdentificationContext = ""
	r.message.Summary = ""

	reportCtx, cancel := Detach(ctx)
	defer cancel()
	r.report(reportCtx)
}

// Every fatal stage failure is a provider failure; attachment errors happen
// before a run starts.
func (r *run) stageError(stage string, err error) error {
	return apperrors.NewStageError(apperrors.KindProvider, stage, r.message.JobID, err)
}

func waitError(err error) error {
	if stderrors.Is(err, apperrors.ErrWaitTimeout) || stderrors.Is(err, apperrors.ErrJobFailed) {
		return err
	}
	return apperrors.Mark(apperrors.ErrFetchFailed, err)
}
