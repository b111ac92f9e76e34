package messaging

import (
	"strings"

	"github.com/slack-go/slack"

	apperrors "github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/errors"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
)

// ReadFormValues extracts the transcribe options from a form's state. Absent
// fields fall back to defaults (auto-detect, no options); the returned error
// only describes what was missing and never invalidates the options.
func ReadFormValues(state *slack.BlockActionStates) (model.TranscriptionOptions, error) {
	var missing []string
	var languageCode string
	var selected []string

	if action, ok := lookup(state, LanguageBlockID, LanguageActionID); ok {
		languageCode = action.SelectedOption.Value
	} else {
		missing = append(missing, LanguageBlockID)
	}

	if action, ok := lookup(state, OptionsBlockID, OptionsActionID); ok {
		for _, option := range action.SelectedOptions {
			selected = append(selected, option.Value)
		}
	} else {
		missing = append(missing, OptionsBlockID)
	}

	opts := model.NewTranscriptionOptions(languageCode, selected)
	if len(missing) > 0 {
		return opts, missingValues(missing)
	}
	return opts, nil
}

// ReadQuestion returns the text typed into the question input.
func ReadQuestion(state *slack.BlockActionStates) (string, error) {
	action, ok := lookup(state, QuestionBlockID, QuestionInputActionID)
	if !ok || strings.TrimSpace(action.Value) == "" {
		return "", missingValues([]string{QuestionBlockID})
	}
	return strings.TrimSpace(action.Value), nil
}

func lookup(state *slack.BlockActionStates, blockID, actionID string) (slack.BlockAction, bool) {
	if state == nil {
		return slack.BlockAction{}, false
	}
	block, ok := state.Values[blockID]
	if !ok {
		return slack.BlockAction{}, false
	}
	action, ok := block[actionID]
	return action, ok
}

func missingValues(blocks []string) error {
	return apperrors.NewStageError(apperrors.KindInteractionState, "form", "",
		apperrors.Mark(apperrors.ErrMissingFormValue, apperrors.Newf("missing %s", strings.Join(blocks, ", "))))
}
