package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
)

// MockLLM is a mock implementation of provider.LLM
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) RunTask(ctx context.Context, request *provider.TaskRequest) (*provider.TaskResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.TaskResponse), args.Error(1)
}

func (m *MockLLM) Summarize(ctx context.Context, request *provider.SummaryRequest) (*provider.TaskResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.TaskResponse), args.Error(1)
}

// Reply is shorthand for a successful LLM response
func Reply(text string) *provider.TaskResponse {
	return &provider.TaskResponse{RequestID: "req-test", Response: text}
}

