package assemblyai

import (
	"context"
	"net/http"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
)

// DefaultFinalModel is used when a request does not name one.
const DefaultFinalModel = "anthropic/claude-3-5-sonnet"

// RunTask runs a LeMUR task over the given transcripts or inline text.
func (c *Client) RunTask(ctx context.Context, request *provider.TaskRequest) (*provider.TaskResponse, error) {
	body := *request
	if body.FinalModel == "" {
		body.FinalModel = DefaultFinalModel
	}

	var resp provider.TaskResponse
	if err := c.doJSON(ctx, http.MethodPost, "/lemur/v3/generate/task", &body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Summarize runs a LeMUR summary over completed transcripts.
func (c *Client) Summarize(ctx context.Context, request *provider.SummaryRequest) (*provider.TaskResponse, error) {
	body := *request
	if body.FinalModel == "" {
		body.FinalModel = DefaultFinalModel
	}

	var resp provider.TaskResponse
	if err := c.doJSON(ctx, http.MethodPost, "/lemur/v3/generate/summary", &body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
