package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/api/v1/handlers"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/bot"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/dedup"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/messaging"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/metrics"
)

type mockSlackBot struct {
	mock.Mock
}

func (m *mockSlackBot) ShowForm(ctx context.Context, channelID, userID, threadTS string) error {
	return m.Called(ctx, channelID, userID, threadTS).Error(0)
}

func (m *mockSlackBot) Transcribe(ctx context.Context, in bot.Interaction) { m.Called(ctx, in) }

func (m *mockSlackBot) IdentifySpeakers(ctx context.Context, in bot.Interaction) { m.Called(ctx, in) }

func (m *mockSlackBot) Summarize(ctx context.Context, in bot.Interaction) { m.Called(ctx, in) }

func (m *mockSlackBot) AskQuestion(ctx context.Context, in bot.Interaction) { m.Called(ctx, in) }

func (m *mockSlackBot) SubmitQuestion(ctx context.Context, in bot.Interaction) { m.Called(ctx, in) }

func setupTestRouter(t *testing.T) (*gin.Engine, *mockSlackBot, *metrics.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockBot := &mockSlackBot{}
	m := metrics.New()
	handler := handlers.NewSlackHandler(mockBot, dedup.NewMemoryStore(time.Minute), m, zap.NewNop())

	router := gin.New()
	router.POST("/slack/events", handler.Events)
	router.POST("/slack/interactions", handler.Interactions)
	router.POST("/slack/commands", handler.Commands)
	return router, mockBot, m
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postForm(router *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSlackHandler_URLVerification(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := postJSON(router, "/slack/events", `{"token":"t","challenge":"3eZbrw1aBm2rZgRNFdxV2595E9CY3gmdALWMmHkvFXO7tYXAYM8P","type":"url_verification"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3eZbrw1aBm2rZgRNFdxV2595E9CY3gmdALWMmHkvFXO7tYXAYM8P", w.Body.String())
}

func appMention(eventID, threadTS string) string {
	event := map[string]any{
		"type":     "event_callback",
		"token":    "t",
		"team_id":  "T1",
		"event_id": eventID,
		"event": map[string]any{
			"type":    "app_mention",
			"user":    "U1",
			"text":    "<@B1> transcribe",
			"ts":      "111.222",
			"channel": "C1",
		},
	}
	if threadTS != "" {
		event["event"].(map[string]any)["thread_ts"] = threadTS
	}
	data, _ := json.Marshal(event)
	return string(data)
}

func TestSlackHandler_AppMention(t *testing.T) {
	tests := []struct {
		name     string
		threadTS string
		expected string
	}{
		{name: "top-level mention starts a thread", expected: "111.222"},
		{name: "mention inside a thread", threadTS: "100.001", expected: "100.001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockBot, _ := setupTestRouter(t)
			mockBot.On("ShowForm", mock.Anything, "C1", "U1", tt.expected).Return(nil).Once()

			w := postJSON(router, "/slack/events", appMention("Ev1", tt.threadTS))

			assert.Equal(t, http.StatusOK, w.Code)
			mockBot.AssertExpectations(t)
		})
	}
}

func TestSlackHandler_DuplicateEventsAreDropped(t *testing.T) {
	router, mockBot, m := setupTestRouter(t)
	mockBot.On("ShowForm", mock.Anything, "C1", "U1", "111.222").Return(nil).Once()

	assert.Equal(t, http.StatusOK, postJSON(router, "/slack/events", appMention("Ev9", "")).Code)
	assert.Equal(t, http.StatusOK, postJSON(router, "/slack/events", appMention("Ev9", "")).Code)

	mockBot.AssertNumberOfCalls(t, "ShowForm", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DuplicateDeliveries))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.SlackRequests.WithLabelValues("events")))
}

func TestSlackHandler_MalformedEvent(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := postJSON(router, "/slack/events", `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func interactionPayload(t *testing.T, callbackType slack.InteractionType, actionID, value string) url.Values {
	t.Helper()
	payload := map[string]any{
		"type":       callbackType,
		"trigger_id": "trig-" + actionID,
		"user":       map[string]any{"id": "U1"},
		"channel":    map[string]any{"id": "C1"},
		"container": map[string]any{
			"type":       "message",
			"message_ts": "300.1",
			"channel_id": "C1",
			"thread_ts":  "100.1",
		},
	}
	if callbackType == slack.InteractionTypeBlockSuggestion {
		payload["action_id"] = actionID
		payload["value"] = value
	} else {
		payload["actions"] = []map[string]any{{"block_id": "transcript-actions", "action_id": actionID, "value": value, "type": "button"}}
		payload["state"] = map[string]any{"values": map[string]any{
			messaging.OptionsBlockID: map[string]any{
				messaging.OptionsActionID: map[string]any{
					"type":             "checkboxes",
					"selected_options": []map[string]any{{"value": "speaker_labels"}},
				},
			},
		}}
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return url.Values{"payload": {string(data)}}
}

func TestSlackHandler_BlockActionsDispatch(t *testing.T) {
	tests := []struct {
		actionID string
		method   string
	}{
		{actionID: messaging.TranscribeActionID, method: "Transcribe"},
		{actionID: messaging.IdentifySpeakersAction, method: "IdentifySpeakers"},
		{actionID: messaging.SummarizeActionID, method: "Summarize"},
		{actionID: messaging.AskQuestionActionID, method: "AskQuestion"},
		{actionID: messaging.SubmitQuestionActionID, method: "SubmitQuestion"},
	}

	for _, tt := range tests {
		t.Run(tt.actionID, func(t *testing.T) {
			router, mockBot, _ := setupTestRouter(t)
			mockBot.On(tt.method, mock.Anything, mock.MatchedBy(func(in bot.Interaction) bool {
				return in.ChannelID == "C1" &&
					in.UserID == "U1" &&
					in.ThreadTS == "100.1" &&
					in.Message == messaging.MessageRef{ChannelID: "C1", TS: "300.1"} &&
					in.Value == "v" &&
					in.State != nil
			})).Once()

			w := postForm(router, "/slack/interactions", interactionPayload(t, slack.InteractionTypeBlockActions, tt.actionID, "v"))

			assert.Equal(t, http.StatusOK, w.Code)
			mockBot.AssertExpectations(t)
		})
	}
}

func TestSlackHandler_RepeatedClickIsDropped(t *testing.T) {
	router, mockBot, _ := setupTestRouter(t)
	mockBot.On("Summarize", mock.Anything, mock.Anything).Once()

	values := interactionPayload(t, slack.InteractionTypeBlockActions, messaging.SummarizeActionID, "v")
	postForm(router, "/slack/interactions", values)
	postForm(router, "/slack/interactions", values)

	mockBot.AssertNumberOfCalls(t, "Summarize", 1)
}

func TestSlackHandler_ActionWithoutBlockIDIsNotDispatched(t *testing.T) {
	router, mockBot, _ := setupTestRouter(t)

	// slack-go files actions without a block_id under attachment actions.
	payload := `{"type":"block_actions","trigger_id":"trig-x","user":{"id":"U1"},"channel":{"id":"C1"},` +
		`"actions":[{"action_id":"` + messaging.SummarizeActionID + `","value":"v","type":"button"}]}`
	w := postForm(router, "/slack/interactions", url.Values{"payload": {payload}})

	assert.Equal(t, http.StatusOK, w.Code)
	mockBot.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
}

func TestSlackHandler_LanguageSuggestions(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := postForm(router, "/slack/interactions", interactionPayload(t, slack.InteractionTypeBlockSuggestion, messaging.LanguageActionID, "germ"))

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Options []struct {
			Value string `json:"value"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Options)
	assert.Equal(t, "de", response.Options[0].Value)
}

func TestSlackHandler_MalformedInteraction(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := postForm(router, "/slack/interactions", url.Values{"payload": {"{broken"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSlackHandler_SlashCommand(t *testing.T) {
	router, mockBot, _ := setupTestRouter(t)
	mockBot.On("ShowForm", mock.Anything, "C7", "U7", "").Return(nil).Once()

	w := postForm(router, "/slack/commands", url.Values{
		"command":    {"/transcribe"},
		"channel_id": {"C7"},
		"user_id":    {"U7"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	mockBot.AssertExpectations(t)
}
