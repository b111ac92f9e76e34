// Package bot reacts to Slack interactions: it posts the transcribe form,
// runs the transcription pipeline for a thread's audio file and handles the
// follow-up buttons on finished transcripts.
package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/messaging"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/pipeline"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/transcript"
)

// Config holds the bot's tunables
type Config struct {
	RunTimeout time.Duration
}

// Bot is shared by all requests. Work started by a handler outlives the HTTP
// request and is tracked so shutdown can wait for it.
type Bot struct {
	messenger   messaging.Messenger
	pipeline    *pipeline.Pipeline
	transcripts provider.Transcriber
	identifier  *transcript.SpeakerIdentifier
	summarizer  *transcript.Summarizer
	config      Config
	logger      *zap.Logger

	wg sync.WaitGroup
}

// New creates a bot
func New(
	messenger messaging.Messenger,
	p *pipeline.Pipeline,
	transcripts provider.Transcriber,
	identifier *transcript.SpeakerIdentifier,
	summarizer *transcript.Summarizer,
	config Config,
	logger *zap.Logger,
) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{
		messenger:   messenger,
		pipeline:    p,
		transcripts: transcripts,
		identifier:  identifier,
		summarizer:  summarizer,
		config:      config,
		logger:      logger,
	}
}

// Interaction is a button click on one of the bot's messages.
type Interaction struct {
	ChannelID string
	UserID    string
	ThreadTS  string
	// Message is the message holding the clicked button.
	Message messaging.MessageRef
	// Value is the clicked button's value.
	Value string
	State *slack.BlockActionStates
}

// ShowForm posts the transcribe form to the user who asked for it.
func (b *Bot) ShowForm(ctx context.Context, channelID, userID, threadTS string) error {
	return b.messenger.PostEphemeral(ctx, channelID, userID, threadTS, messaging.TranscribeForm())
}

// Go runs fn in the background, detached from ctx's cancellation but
// bounded by the run timeout.
func (b *Bot) Go(ctx context.Context, name string, fn func(ctx context.Context)) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		runCtx := context.WithoutCancel(ctx)
		if b.config.RunTimeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(runCtx, b.config.RunTimeout)
			defer cancel()
		}

		defer func() {
			if r := recover(); r != nil {
				b.logger.Error("background task panicked",
					zap.String("task", name),
					zap.Any("panic", r),
					zap.Stack("stack"))
			}
		}()
		fn(runCtx)
	}()
}

// Wait blocks until background work finishes or ctx is done.
func (b *Bot) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for in-flight runs: %w", ctx.Err())
	}
}

// notify posts the single user-facing notice for a failed request. The run's
// own deadline may have passed, so the post gets a fresh one.
func (b *Bot) notify(ctx context.Context, channelID, userID, threadTS, text string) {
	ctx, cancel := pipeline.Detach(ctx)
	defer cancel()
	if err := b.messenger.PostEphemeral(ctx, channelID, userID, threadTS, messaging.TextContent(text)); err != nil {
		b.logger.Error("failed to post notice",
			zap.String("channel_id", channelID),
			zap.Error(err))
	}
}
