package services

import (
	"context"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/bot"
)

// SlackBot is the work started by Slack requests. Every method except
// ShowForm returns immediately and runs in the background.
type SlackBot interface {
	ShowForm(ctx context.Context, channelID, userID, threadTS string) error
	Transcribe(ctx context.Context, in bot.Interaction)
	IdentifySpeakers(ctx context.Context, in bot.Interaction)
	Summarize(ctx context.Context, in bot.Interaction)
	AskQuestion(ctx context.Context, in bot.Interaction)
	SubmitQuestion(ctx context.Context, in bot.Interaction)
}

var _ SlackBot = (*bot.Bot)(nil)
