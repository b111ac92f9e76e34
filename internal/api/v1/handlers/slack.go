package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/api/errors"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/api/middleware"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/api/v1/services"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/bot"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/dedup"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/languages"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/messaging"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/metrics"
)

const languageOptionsLimit = 10

// SlackHandler handles Slack's Events API, interactivity and slash command
// requests. Every request is acknowledged before the work it starts completes.
type SlackHandler struct {
	bot     services.SlackBot
	dedup   dedup.Store
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewSlackHandler creates a new slack handler
func NewSlackHandler(b services.SlackBot, store dedup.Store, m *metrics.Metrics, logger *zap.Logger) *SlackHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SlackHandler{bot: b, dedup: store, metrics: m, logger: logger}
}

// Events handles POST /slack/events
func (h *SlackHandler) Events(c *gin.Context) {
	h.metrics.RecordSlackRequest("events")

	body, err := middleware.ReadBody(c.Request)
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("unreadable request body"))
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("malformed event payload"))
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			middleware.HandleError(c, errors.NewBadRequestError("malformed challenge"))
			return
		}
		c.String(http.StatusOK, challenge.Challenge)
		return

	case slackevents.CallbackEvent:
		if callback, ok := event.Data.(*slackevents.EventsAPICallbackEvent); ok {
			if !h.firstSeen(c.Request.Context(), "event:"+callback.EventID) {
				c.Status(http.StatusOK)
				return
			}
		}

		if mention, ok := event.InnerEvent.Data.(*slackevents.AppMentionEvent); ok {
			threadTS := mention.ThreadTimeStamp
			if threadTS == "" {
				threadTS = mention.TimeStamp
			}
			if err := h.bot.ShowForm(c.Request.Context(), mention.Channel, mention.User, threadTS); err != nil {
				h.logger.Error("failed to post transcribe form",
					zap.String("request_id", middleware.GetRequestID(c)),
					zap.String("channel_id", mention.Channel),
					zap.Error(err))
			}
		}
	}

	c.Status(http.StatusOK)
}

// Interactions handles POST /slack/interactions
func (h *SlackHandler) Interactions(c *gin.Context) {
	h.metrics.RecordSlackRequest("interactions")

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(c.PostForm("payload")), &callback); err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("malformed interaction payload"))
		return
	}

	switch callback.Type {
	case slack.InteractionTypeBlockSuggestion:
		h.languageOptions(c, callback)
	case slack.InteractionTypeBlockActions:
		h.blockActions(c, callback)
	default:
		c.Status(http.StatusOK)
	}
}

func (h *SlackHandler) languageOptions(c *gin.Context, callback slack.InteractionCallback) {
	var options []*slack.OptionBlockObject
	if callback.ActionID == messaging.LanguageActionID {
		options = messaging.LanguageOptions(languages.Search(callback.Value, languageOptionsLimit))
	}
	c.JSON(http.StatusOK, slack.OptionsResponse{Options: options})
}

func (h *SlackHandler) blockActions(c *gin.Context, callback slack.InteractionCallback) {
	c.Status(http.StatusOK)

	if len(callback.ActionCallback.BlockActions) == 0 {
		return
	}
	action := callback.ActionCallback.BlockActions[0]
	if !h.firstSeen(c.Request.Context(), "interaction:"+callback.TriggerID+":"+action.ActionID) {
		return
	}

	channelID := callback.Channel.ID
	if channelID == "" {
		channelID = callback.Container.ChannelID
	}
	in := bot.Interaction{
		ChannelID: channelID,
		UserID:    callback.User.ID,
		ThreadTS:  callback.Container.ThreadTs,
		Message:   messaging.MessageRef{ChannelID: channelID, TS: callback.Container.MessageTs},
		Value:     action.Value,
		State:     callback.BlockActionState,
	}

	ctx := c.Request.Context()
	switch action.ActionID {
	case messaging.TranscribeActionID:
		h.bot.Transcribe(ctx, in)
	case messaging.IdentifySpeakersAction:
		h.bot.IdentifySpeakers(ctx, in)
	case messaging.SummarizeActionID:
		h.bot.Summarize(ctx, in)
	case messaging.AskQuestionActionID:
		h.bot.AskQuestion(ctx, in)
	case messaging.SubmitQuestionActionID:
		h.bot.SubmitQuestion(ctx, in)
	default:
		h.logger.Debug("ignoring block action", zap.String("action_id", action.ActionID))
	}
}

// Commands handles POST /slack/commands
func (h *SlackHandler) Commands(c *gin.Context) {
	h.metrics.RecordSlackRequest("commands")

	command, err := slack.SlashCommandParse(c.Request)
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("malformed slash command"))
		return
	}

	if err := h.bot.ShowForm(c.Request.Context(), command.ChannelID, command.UserID, ""); err != nil {
		h.logger.Error("failed to post transcribe form",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("channel_id", command.ChannelID),
			zap.Error(err))
	}
	c.Status(http.StatusOK)
}

// firstSeen reports whether key is new. Store failures let the request through.
func (h *SlackHandler) firstSeen(ctx context.Context, key string) bool {
	if h.dedup == nil {
		return true
	}
	first, err := h.dedup.FirstSeen(ctx, key)
	if err != nil {
		h.logger.Warn("dedup store unavailable", zap.Error(err))
		return true
	}
	if !first {
		h.metrics.RecordDuplicate()
		h.logger.Info("dropping duplicate slack delivery", zap.String("key", key))
	}
	return first
}

// Logger returns the handler's logger
func (h *SlackHandler) Logger() *zap.Logger {
	return h.logger
}
