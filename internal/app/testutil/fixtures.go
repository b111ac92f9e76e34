package testutil

import "github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"

// TwoSpeakerJob is a ready job with two alternating speakers.
func TwoSpeakerJob(id string) *model.TranscriptionJob {
	return &model.TranscriptionJob{
		ID:             id,
		Status:         model.JobStatusReady,
		DurationMillis: 75000,
		Text:           "Hello and welcome. Thanks for having me. Let's begin.",
		Utterances: []model.Utterance{
			{SpeakerID: "A", StartMillis: 0, Text: "Hello and welcome."},
			{SpeakerID: "B", StartMillis: 65000, Text: "Thanks for having me."},
			{SpeakerID: "A", StartMillis: 3725000, Text: "Let's begin."},
		},
	}
}

// PlainJob is a ready job without speaker labels.
func PlainJob(id string) *model.TranscriptionJob {
	return &model.TranscriptionJob{
		ID:             id,
		Status:         model.JobStatusReady,
		DurationMillis: 4000,
		Text:           "First paragraph. Second paragraph.",
	}
}
