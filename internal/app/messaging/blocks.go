package messaging

import (
	"encoding/json"

	"github.com/slack-go/slack"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/languages"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
)

// Block and action ids used by the interactive messages.
const (
	LanguageBlockID        = "language-input"
	LanguageActionID       = "language-options-action"
	OptionsBlockID         = "transcribe-options-input"
	OptionsActionID        = "transcribe-options-action"
	TranscribeActionID     = "transcribe-action"
	IdentifySpeakersAction = "identify-speakers-action"
	SummarizeActionID      = "summarize-action"
	AskQuestionActionID    = "ask-question-action"
	QuestionBlockID        = "ask-question-input"
	QuestionInputActionID  = "ask-question-input"
	SubmitQuestionActionID = "submit-question-action"
)

const (
	formText      = "Transcribe the audio file in this thread"
	actionsText   = "What would you like to do next?"
	questionText  = "Ask your question"
	FailureNotice = "Sorry, something went wrong while transcribing your file. Please try again."
	NoFileNotice  = "I couldn't find an audio file in this thread. Share one and mention me in its thread."
)

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, false, false)
}

// LanguageOptions converts languages to select menu options.
func LanguageOptions(langs []languages.Language) []*slack.OptionBlockObject {
	options := make([]*slack.OptionBlockObject, 0, len(langs))
	for _, l := range langs {
		options = append(options, slack.NewOptionBlockObject(l.Code, plainText(l.Label), nil))
	}
	return options
}

// TranscribeForm is the ephemeral form posted when the bot is mentioned.
func TranscribeForm() Content {
	languageSelect := slack.NewOptionsSelectBlockElement(slack.OptTypeExternal, plainText("Select a language"), LanguageActionID)
	minQuery := 1
	languageSelect.MinQueryLength = &minQuery
	languageInput := slack.NewInputBlock(LanguageBlockID, plainText("What language is the file?"),
		plainText("If you leave it blank we'll try to detect it for you."), languageSelect)
	languageInput.Optional = true

	checkboxes := slack.NewCheckboxGroupsBlockElement(OptionsActionID,
		slack.NewOptionBlockObject(model.OptionSpeakerLabels, plainText("Add speaker labels"), nil),
		slack.NewOptionBlockObject(model.OptionIdentifySpeakers, plainText("Identify speakers (needs speaker labels)"), nil),
		slack.NewOptionBlockObject(model.OptionGenerateSummary, plainText("Generate a summary"), nil),
	)
	optionsInput := slack.NewInputBlock(OptionsBlockID, plainText("Options"), nil, checkboxes)
	optionsInput.Optional = true

	transcribe := slack.NewButtonBlockElement(TranscribeActionID, "", plainText("Transcribe")).
		WithStyle(slack.StylePrimary)

	return Content{
		Text: formText,
		Blocks: []slack.Block{
			languageInput,
			optionsInput,
			slack.NewActionBlock("", transcribe),
		},
	}
}

// TranscriptContent renders one progress snapshot. The transcript body and
// the long fields are only shown once the run has completed.
func TranscriptContent(msg model.TranscriptMessage) Content {
	fields := []slack.AttachmentField{
		{Title: "Status", Value: msg.Status, Short: true},
	}
	if msg.JobID != "" {
		fields = append(fields, slack.AttachmentField{Title: "ID", Value: msg.JobID, Short: true})
	}

	attachment := slack.Attachment{
		Footer: "Transcript for " + msg.FileName,
	}
	if msg.IsCompleted() {
		attachment.Text = msg.Transcript
		if msg.SpeakerIdentificationContext != "" {
			fields = append(fields, slack.AttachmentField{Title: "Speaker Identification Context", Value: msg.SpeakerIdentificationContext})
		}
		if msg.Summary != "" {
			fields = append(fields, slack.AttachmentField{Title: "Summary", Value: msg.Summary})
		}
	}
	attachment.Fields = fields

	return Content{
		Text:        msg.Text,
		Attachments: []slack.Attachment{attachment},
	}
}

// ActionsContent offers the follow-ups still available for a transcript.
// Every button carries the actions state so no server-side state is needed.
func ActionsContent(actions model.TranscriptActions) Content {
	value := encodeActions(actions)

	var elements []slack.BlockElement
	if actions.HasSpeakerLabels && !actions.HasBeenSpeakerIdentified {
		elements = append(elements, slack.NewButtonBlockElement(IdentifySpeakersAction, value, plainText("Identify Speakers")))
	}
	if !actions.HasBeenSummarized {
		elements = append(elements, slack.NewButtonBlockElement(SummarizeActionID, value, plainText("Summarize")))
	}
	elements = append(elements, slack.NewButtonBlockElement(AskQuestionActionID, value, plainText("Ask a question")))

	return Content{
		Text: actionsText,
		Blocks: []slack.Block{
			slack.NewSectionBlock(plainText(actionsText), nil, nil),
			slack.NewActionBlock("", elements...),
		},
	}
}

// QuestionContent replaces the actions with a question input.
func QuestionContent(actions model.TranscriptActions) Content {
	input := slack.NewInputBlock(QuestionBlockID, plainText(questionText), nil,
		slack.NewPlainTextInputBlockElement(nil, QuestionInputActionID))
	submit := slack.NewButtonBlockElement(SubmitQuestionActionID, encodeActions(actions), plainText("Submit"))

	return Content{
		Text: questionText,
		Blocks: []slack.Block{
			input,
			slack.NewActionBlock("", submit),
		},
	}
}

// AnswerContent posts an answer to a question about a transcript.
func AnswerContent(question, answer string) Content {
	return Content{
		Text: answer,
		Blocks: []slack.Block{
			slack.NewContextBlock("", slack.NewTextBlockObject(slack.MarkdownType, "*Q:* "+question, false, false)),
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, answer, false, false), nil, nil),
		},
	}
}

// TextContent is a plain text message.
func TextContent(text string) Content {
	return Content{Text: text}
}

func encodeActions(actions model.TranscriptActions) string {
	data, _ := json.Marshal(actions)
	return string(data)
}

// DecodeActions parses a button value written by ActionsContent.
func DecodeActions(value string) (model.TranscriptActions, error) {
	var actions model.TranscriptActions
	err := json.Unmarshal([]byte(value), &actions)
	return actions, err
}
