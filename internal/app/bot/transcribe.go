package bot

import (
	"bytes"
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	apperrors "github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/errors"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/messaging"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/pipeline"
)

// Transcribe handles the form's Transcribe button. It returns immediately.
func (b *Bot) Transcribe(ctx context.Context, in Interaction) {
	b.Go(ctx, "transcribe", func(ctx context.Context) {
		defer func() {
			// Go logs the panic; the user still gets their one notice.
			if r := recover(); r != nil {
				b.notify(ctx, in.ChannelID, in.UserID, in.ThreadTS, messaging.FailureNotice)
				panic(r)
			}
		}()
		b.transcribe(ctx, in)
	})
}

func (b *Bot) transcribe(ctx context.Context, in Interaction) {
	logger := b.logger.With(zap.String("channel_id", in.ChannelID), zap.String("thread_ts", in.ThreadTS))

	opts, err := messaging.ReadFormValues(in.State)
	if err != nil {
		logger.Debug("using default options", zap.Error(err))
	}

	file, err := b.messenger.FetchThreadAttachment(ctx, in.ChannelID, in.ThreadTS)
	if err != nil {
		logger.Warn("no attachment to transcribe",
			zap.Error(apperrors.NewStageError(apperrors.KindAttachment, "attachment", "", err)))
		b.notify(ctx, in.ChannelID, in.UserID, in.ThreadTS, messaging.NoFileNotice)
		return
	}
	logger = logger.With(zap.String("file_name", file.Name))

	ref, err := b.messenger.PostMessage(ctx, in.ChannelID, in.ThreadTS, messaging.TextContent(model.TextWorking))
	if err != nil {
		logger.Error("failed to post progress message", zap.Error(err))
		return
	}

	reporter := pipeline.ReporterFunc(func(ctx context.Context, snapshot model.TranscriptMessage) error {
		return b.messenger.UpdateMessage(ctx, ref, messaging.TranscriptContent(snapshot))
	})

	var audio bytes.Buffer
	if err := b.messenger.DownloadAttachment(ctx, file.DownloadURL, &audio); err != nil {
		logger.Error("transcription failed",
			zap.Error(apperrors.NewStageError(apperrors.KindAttachment, "download", "", err)))
		failed := model.TranscriptMessage{
			Text:     pipeline.DisplayText(model.StatusFailed),
			FileName: file.Name,
			Status:   model.StatusFailed,
		}
		reportCtx, cancel := pipeline.Detach(ctx)
		defer cancel()
		if err := reporter.Report(reportCtx, failed); err != nil {
			logger.Warn("failed to report progress", zap.Error(err))
		}
		b.notify(ctx, in.ChannelID, in.UserID, in.ThreadTS, messaging.FailureNotice)
		return
	}

	final, err := b.pipeline.Run(ctx, pipeline.Input{
		FileName: file.Name,
		Audio:    &audio,
		Options:  opts,
	}, reporter)
	if err != nil {
		var stageErr *apperrors.StageError
		if !stderrors.As(err, &stageErr) {
			logger.Error("transcription failed", zap.Error(err))
		}
		b.notify(ctx, in.ChannelID, in.UserID, in.ThreadTS, messaging.FailureNotice)
		return
	}

	if final.SpeakerIdentificationContext != "" {
		if _, err := b.messenger.PostMessage(ctx, in.ChannelID, in.ThreadTS, messaging.TextContent(final.SpeakerIdentificationContext)); err != nil {
			logger.Warn("failed to post speaker identification context", zap.Error(err))
		}
	}

	actions := model.TranscriptActions{
		HasSpeakerLabels:         opts.EnableSpeakerLabels,
		HasBeenSpeakerIdentified: opts.IdentifySpeakers(),
		HasBeenSummarized:        opts.EnableSummary,
		TranscriptID:             final.JobID,
		ChannelID:                in.ChannelID,
		ThreadTS:                 in.ThreadTS,
		MessageTS:                ref.TS,
		FileName:                 file.Name,
	}
	if _, err := b.messenger.PostMessage(ctx, in.ChannelID, in.ThreadTS, messaging.ActionsContent(actions)); err != nil {
		logger.Warn("failed to post follow-up actions", zap.Error(err))
	}
}
