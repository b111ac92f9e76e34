// Package messaging is the bot's view of Slack: posting and updating thread
// messages, reading thread attachments, and the Block Kit layouts it sends.
package messaging

import (
	"context"
	"io"

	"github.com/slack-go/slack"
)

// Content is one message body. Empty fields are omitted.
type Content struct {
	Text        string
	Blocks      []slack.Block
	Attachments []slack.Attachment
}

// MessageRef identifies a posted message
type MessageRef struct {
	ChannelID string
	TS        string
}

// File is an attachment shared in a thread
type File struct {
	Name        string
	MimeType    string
	DownloadURL string
}

// Messenger is everything the bot needs from the chat platform.
type Messenger interface {
	PostMessage(ctx context.Context, channelID, threadTS string, content Content) (MessageRef, error)
	UpdateMessage(ctx context.Context, ref MessageRef, content Content) error
	PostEphemeral(ctx context.Context, channelID, userID, threadTS string, content Content) error
	FetchThreadAttachment(ctx context.Context, channelID, threadTS string) (File, error)
	DownloadAttachment(ctx context.Context, downloadURL string, w io.Writer) error
}

func (c Content) options() []slack.MsgOption {
	options := []slack.MsgOption{slack.MsgOptionText(c.Text, false)}
	if len(c.Blocks) > 0 {
		options = append(options, slack.MsgOptionBlocks(c.Blocks...))
	}
	if len(c.Attachments) > 0 {
		options = append(options, slack.MsgOptionAttachments(c.Attachments...))
	}
	return options
}
