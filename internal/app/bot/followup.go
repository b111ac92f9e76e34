package bot

import (
	"context"

	"go.uber.org/zap"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/messaging"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/transcript"
)

// IdentifySpeakers handles the Identify Speakers button. The renamed
// transcript is posted as a new thread message.
func (b *Bot) IdentifySpeakers(ctx context.Context, in Interaction) {
	b.followUp(ctx, in, "identify_speakers", func(ctx context.Context, actions *model.TranscriptActions) error {
		job, err := b.transcripts.GetTranscript(ctx, actions.TranscriptID)
		if err != nil {
			return err
		}

		result := b.identifier.Identify(ctx, transcript.BuildDiarizedText(job), "")
		_, err = b.messenger.PostMessage(ctx, actions.ChannelID, actions.ThreadTS, messaging.TranscriptContent(model.TranscriptMessage{
			Text:                         model.TextCompleted,
			FileName:                     actions.FileName,
			Status:                       model.StatusCompleted,
			JobID:                        job.ID,
			Transcript:                   result.Text,
			SpeakerIdentificationContext: result.Explanation,
		}))
		if err != nil {
			return err
		}

		actions.HasBeenSpeakerIdentified = true
		return b.messenger.UpdateMessage(ctx, in.Message, messaging.ActionsContent(*actions))
	})
}

// Summarize handles the Summarize button.
func (b *Bot) Summarize(ctx context.Context, in Interaction) {
	b.followUp(ctx, in, "summarize", func(ctx context.Context, actions *model.TranscriptActions) error {
		summary, err := b.summarizer.Summarize(ctx, actions.TranscriptID)
		if err != nil {
			return err
		}
		if _, err := b.messenger.PostMessage(ctx, actions.ChannelID, actions.ThreadTS, messaging.TranscriptContent(model.TranscriptMessage{
			Text:     "Here is the summary:",
			FileName: actions.FileName,
			Status:   model.StatusCompleted,
			JobID:    actions.TranscriptID,
			Summary:  summary,
		})); err != nil {
			return err
		}

		actions.HasBeenSummarized = true
		return b.messenger.UpdateMessage(ctx, in.Message, messaging.ActionsContent(*actions))
	})
}

// AskQuestion swaps the actions for a question input.
func (b *Bot) AskQuestion(ctx context.Context, in Interaction) {
	b.followUp(ctx, in, "ask_question", func(ctx context.Context, actions *model.TranscriptActions) error {
		return b.messenger.UpdateMessage(ctx, in.Message, messaging.QuestionContent(*actions))
	})
}

// SubmitQuestion answers the typed question and restores the actions.
func (b *Bot) SubmitQuestion(ctx context.Context, in Interaction) {
	b.followUp(ctx, in, "submit_question", func(ctx context.Context, actions *model.TranscriptActions) error {
		question, err := messaging.ReadQuestion(in.State)
		if err != nil {
			b.notify(ctx, in.ChannelID, in.UserID, actions.ThreadTS, "Please type a question first.")
			return nil
		}

		answer, err := b.summarizer.Answer(ctx, actions.TranscriptID, question)
		if err != nil {
			return err
		}
		if _, err := b.messenger.PostMessage(ctx, actions.ChannelID, actions.ThreadTS, messaging.AnswerContent(question, answer)); err != nil {
			return err
		}
		return b.messenger.UpdateMessage(ctx, in.Message, messaging.ActionsContent(*actions))
	})
}

func (b *Bot) followUp(ctx context.Context, in Interaction, name string, fn func(ctx context.Context, actions *model.TranscriptActions) error) {
	b.Go(ctx, name, func(ctx context.Context) {
		actions, err := messaging.DecodeActions(in.Value)
		if err != nil {
			b.logger.Warn("malformed follow-up button value", zap.String("action", name), zap.Error(err))
			b.notify(ctx, in.ChannelID, in.UserID, in.ThreadTS, messaging.FailureNotice)
			return
		}

		if err := fn(ctx, &actions); err != nil {
			b.logger.Error("follow-up failed",
				zap.String("action", name),
				zap.String("job_id", actions.TranscriptID),
				zap.Error(err))
			b.notify(ctx, in.ChannelID, in.UserID, actions.ThreadTS, messaging.FailureNotice)
		}
	})
}
