package provider

import (
	"context"
	"fmt"
	"strings"
)

// SummaryTask rewrites a summary request as a task, for backends that have
// no dedicated summary endpoint.
func SummaryTask(request *SummaryRequest) *TaskRequest {
	prompt := "Summarize the transcript."
	if request.AnswerFormat != "" {
		prompt = fmt.Sprintf("Summarize the transcript. Answer format: %s", request.AnswerFormat)
	}
	return &TaskRequest{
		Prompt:     prompt,
		JobIDs:     request.JobIDs,
		Context:    request.Context,
		FinalModel: request.FinalModel,
	}
}

// InlinePrompt resolves a task into a system and user message pair. When the
// task references transcripts their text is fetched and inlined.
func InlinePrompt(ctx context.Context, transcripts Transcriber, request *TaskRequest) (string, string, error) {
	input := request.InputText
	if input == "" && len(request.JobIDs) > 0 {
		if transcripts == nil {
			return "", "", fmt.Errorf("task references transcripts but no transcriber is configured")
		}
		text, err := TranscriptText(ctx, transcripts, request.JobIDs)
		if err != nil {
			return "", "", err
		}
		input = text
	}

	system := "You are a helpful assistant working with audio transcripts."
	if request.Context != "" {
		system += "\n\nContext: " + request.Context
	}

	var user strings.Builder
	if input != "" {
		user.WriteString("<transcript>\n")
		user.WriteString(input)
		user.WriteString("\n</transcript>\n\n")
	}
	user.WriteString(request.Prompt)
	return system, user.String(), nil
}
