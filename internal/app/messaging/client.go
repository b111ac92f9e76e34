package messaging

import (
	"context"
	"io"
	"strings"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	apperrors "github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/errors"
)

// SlackMessenger implements Messenger with the Slack Web API.
type SlackMessenger struct {
	api    *slack.Client
	logger *zap.Logger
}

// NewSlackMessenger creates a messenger for the bot token. apiURL overrides
// the Web API endpoint and must end with a slash.
func NewSlackMessenger(token, apiURL string, logger *zap.Logger) *SlackMessenger {
	var options []slack.Option
	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		options = append(options, slack.OptionAPIURL(apiURL))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SlackMessenger{
		api:    slack.New(token, options...),
		logger: logger.Named("slack"),
	}
}

var _ Messenger = (*SlackMessenger)(nil)

func (m *SlackMessenger) PostMessage(ctx context.Context, channelID, threadTS string, content Content) (MessageRef, error) {
	options := content.options()
	if threadTS != "" {
		options = append(options, slack.MsgOptionTS(threadTS))
	}

	channel, ts, err := m.api.PostMessageContext(ctx, channelID, options...)
	if err != nil {
		return MessageRef{}, err
	}
	return MessageRef{ChannelID: channel, TS: ts}, nil
}

func (m *SlackMessenger) UpdateMessage(ctx context.Context, ref MessageRef, content Content) error {
	_, _, _, err := m.api.UpdateMessageContext(ctx, ref.ChannelID, ref.TS, content.options()...)
	return err
}

func (m *SlackMessenger) PostEphemeral(ctx context.Context, channelID, userID, threadTS string, content Content) error {
	options := content.options()
	if threadTS != "" {
		options = append(options, slack.MsgOptionTS(threadTS))
	}
	_, err := m.api.PostEphemeralContext(ctx, channelID, userID, options...)
	return err
}

// FetchThreadAttachment returns the first file shared in the thread.
func (m *SlackMessenger) FetchThreadAttachment(ctx context.Context, channelID, threadTS string) (File, error) {
	if threadTS == "" {
		return File{}, apperrors.Mark(apperrors.ErrNoAttachment, apperrors.New("not in a thread"))
	}

	messages, _, _, err := m.api.GetConversationRepliesContext(ctx, &slack.GetConversationRepliesParameters{
		ChannelID: channelID,
		Timestamp: threadTS,
	})
	if err != nil {
		return File{}, apperrors.Mark(apperrors.ErrNoAttachment, err)
	}

	for _, message := range messages {
		for _, file := range message.Files {
			if file.URLPrivateDownload == "" {
				continue
			}
			return File{
				Name:        file.Name,
				MimeType:    file.Mimetype,
				DownloadURL: file.URLPrivateDownload,
			}, nil
		}
	}
	return File{}, apperrors.ErrNoAttachment
}

// DownloadAttachment streams a private file using the bot token.
func (m *SlackMessenger) DownloadAttachment(ctx context.Context, downloadURL string, w io.Writer) error {
	if err := m.api.GetFileContext(ctx, downloadURL, w); err != nil {
		return apperrors.Mark(apperrors.ErrDownloadFailed, err)
	}
	return nil
}
