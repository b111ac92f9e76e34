package bot

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/messaging"
)

type postedMessage struct {
	ChannelID string
	ThreadTS  string
	UserID    string
	Content   messaging.Content
}

type updatedMessage struct {
	Ref     messaging.MessageRef
	Content messaging.Content
}

// fakeMessenger records every call. Files are keyed by download URL.
type fakeMessenger struct {
	mu sync.Mutex

	file        messaging.File
	fileErr     error
	files       map[string]string
	downloadErr error
	// downloadPanic, when set, is raised from DownloadAttachment.
	downloadPanic any
	// honourContext makes Slack calls fail once their context is done.
	honourContext bool

	posts      []postedMessage
	updates    []updatedMessage
	ephemerals []postedMessage
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{
		file:  messaging.File{Name: "standup.mp3", DownloadURL: "https://files.test/standup.mp3"},
		files: map[string]string{"https://files.test/standup.mp3": "audio-bytes"},
	}
}

func (f *fakeMessenger) PostMessage(ctx context.Context, channelID, threadTS string, content messaging.Content) (messaging.MessageRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.contextErr(ctx); err != nil {
		return messaging.MessageRef{}, err
	}
	f.posts = append(f.posts, postedMessage{ChannelID: channelID, ThreadTS: threadTS, Content: content})
	return messaging.MessageRef{ChannelID: channelID, TS: fmt.Sprintf("200.%d", len(f.posts))}, nil
}

func (f *fakeMessenger) UpdateMessage(ctx context.Context, ref messaging.MessageRef, content messaging.Content) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.contextErr(ctx); err != nil {
		return err
	}
	f.updates = append(f.updates, updatedMessage{Ref: ref, Content: content})
	return nil
}

func (f *fakeMessenger) PostEphemeral(ctx context.Context, channelID, userID, threadTS string, content messaging.Content) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.contextErr(ctx); err != nil {
		return err
	}
	f.ephemerals = append(f.ephemerals, postedMessage{ChannelID: channelID, UserID: userID, ThreadTS: threadTS, Content: content})
	return nil
}

func (f *fakeMessenger) FetchThreadAttachment(context.Context, string, string) (messaging.File, error) {
	return f.file, f.fileErr
}

func (f *fakeMessenger) DownloadAttachment(_ context.Context, downloadURL string, w io.Writer) error {
	if f.downloadPanic != nil {
		panic(f.downloadPanic)
	}
	if f.downloadErr != nil {
		return f.downloadErr
	}
	_, err := io.WriteString(w, f.files[downloadURL])
	return err
}

func (f *fakeMessenger) contextErr(ctx context.Context) error {
	if !f.honourContext {
		return nil
	}
	return ctx.Err()
}

// statuses returns the Status field of every update, in order.
func (f *fakeMessenger) statuses() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var statuses []string
	for _, u := range f.updates {
		if len(u.Content.Attachments) == 0 || len(u.Content.Attachments[0].Fields) == 0 {
			continue
		}
		statuses = append(statuses, u.Content.Attachments[0].Fields[0].Value)
	}
	return statuses
}
