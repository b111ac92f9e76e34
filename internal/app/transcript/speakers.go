package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
	apperrors "github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/errors"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/metrics"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
)

// FallbackExplanation replaces the explanation when the reply is unusable.
const FallbackExplanation = "Something went wrong trying to identify the speakers. Please try again."

const (
	explanationKey = "context"
	speakersKey    = "speakers"
	speakerPrefix  = "Speaker "
)

const identifyPrompt = `Be succinct and don't include a preamble.
Please identify the speakers in the following transcript.
Return a JSON object with two keys:
1. "context": Explanation of how you deduced the speaker names.
2. "speakers": An object with the speaker ID as the key and the identified speaker name as the value.
   If you cannot identify the speaker or are not certain, set the original speaker ID as the value.

Transcript:
%s`

// SpeakerIdentifier infers speaker names with an LLM task and rewrites the
// "Speaker <id>" labels of diarized text.
type SpeakerIdentifier struct {
	llm        provider.LLM
	finalModel string
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewSpeakerIdentifier creates an identifier. metrics may be nil.
func NewSpeakerIdentifier(llm provider.LLM, finalModel string, m *metrics.Metrics, logger *zap.Logger) *SpeakerIdentifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpeakerIdentifier{llm: llm, finalModel: finalModel, metrics: m, logger: logger}
}

// Identify never fails: an LLM error or a malformed reply yields the input
// text unchanged with FallbackExplanation. userPrompt, when set, is passed to
// the model as context.
func (s *SpeakerIdentifier) Identify(ctx context.Context, diarizedText, userPrompt string) model.SpeakerIdentificationResult {
	request := &provider.TaskRequest{
		Prompt:     fmt.Sprintf(identifyPrompt, diarizedText),
		InputText:  diarizedText,
		FinalModel: s.finalModel,
	}
	if userPrompt != "" {
		request.Context = "Here is the original user prompt that triggered this task: " + userPrompt
	}

	resp, err := s.llm.RunTask(ctx, request)
	if err != nil {
		return s.fallback(diarizedText, apperrors.Mark(apperrors.ErrLLMFailed, err))
	}

	explanation, mapping, err := ParseSpeakerMapping(resp.Response, s.logger)
	if err != nil {
		return s.fallback(diarizedText, err)
	}

	return model.SpeakerIdentificationResult{
		Text:        RenameSpeakers(diarizedText, mapping),
		Explanation: explanation,
	}
}

func (s *SpeakerIdentifier) fallback(text string, err error) model.SpeakerIdentificationResult {
	s.metrics.RecordIdentifyFallback()
	s.logger.Warn("speaker identification fell back to original text",
		zap.String("stage", model.StatusIdentifyingSpeakers),
		zap.Error(apperrors.NewStageError(apperrors.KindLLMContract, model.StatusIdentifyingSpeakers, "", err)))
	return model.SpeakerIdentificationResult{Text: text, Explanation: FallbackExplanation}
}

// ParseSpeakerMapping decodes the identification reply. Every top-level key
// except "context" maps a speaker id to a name; a nested "speakers" object is
// merged in. Keys are normalised to bare ids. Non-string names are ignored.
//
// When several keys name the same id, entries in "speakers" beat top-level
// ones and "Speaker A" beats "A". logger may be nil.
func ParseSpeakerMapping(response string, logger *zap.Logger) (string, map[string]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(response)), &raw); err != nil {
		return "", nil, apperrors.Mark(apperrors.ErrMalformedResponse, err)
	}
	if raw == nil {
		return "", nil, apperrors.Mark(apperrors.ErrMalformedResponse, fmt.Errorf("reply is not a JSON object"))
	}

	var explanation string
	names := make(map[string]speakerName)
	for key, value := range raw {
		switch key {
		case explanationKey:
			if err := json.Unmarshal(value, &explanation); err != nil {
				logger.Debug("ignoring non-string speaker identification context",
					zap.ByteString("context", value),
					zap.Error(err))
			}
		case speakersKey:
			var nested map[string]json.RawMessage
			if err := json.Unmarshal(value, &nested); err == nil {
				for id, name := range nested {
					addSpeaker(names, id, name, rankNested)
				}
				continue
			}
			addSpeaker(names, key, value, 0)
		default:
			addSpeaker(names, key, value, 0)
		}
	}

	mapping := make(map[string]string, len(names))
	for id, n := range names {
		mapping[id] = n.name
	}
	return explanation, mapping, nil
}

const (
	rankPrefixed = 1
	rankNested   = 2
)

type speakerName struct {
	name string
	rank int
	key  string
}

func addSpeaker(names map[string]speakerName, key string, value json.RawMessage, rank int) {
	var name string
	if err := json.Unmarshal(value, &name); err != nil {
		return
	}
	id := strings.TrimSpace(key)
	if trimmed := strings.TrimPrefix(id, speakerPrefix); trimmed != id {
		id = trimmed
		rank += rankPrefixed
	}
	name = strings.TrimSpace(name)
	if id == "" || name == "" || name == id || name == speakerPrefix+id {
		return
	}
	// Ties between keys that differ only in whitespace go to the smaller key.
	if current, ok := names[id]; ok && (current.rank > rank || current.rank == rank && current.key < key) {
		return
	}
	names[id] = speakerName{name: name, rank: rank, key: key}
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

// RenameSpeakers replaces the "Speaker <id>" label at the start of each line
// with the mapped name. Text after the label is never touched, so a name or id
// occurring inside an utterance cannot be corrupted.
func RenameSpeakers(text string, mapping map[string]string) string {
	if len(mapping) == 0 {
		return text
	}

	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, speakerPrefix) {
			continue
		}
		rest := line[len(speakerPrefix):]
		end := strings.Index(rest, " (")
		if end < 0 {
			continue
		}
		if name, ok := mapping[rest[:end]]; ok {
			lines[i] = name + rest[end:]
		}
	}
	return strings.Join(lines, "")
}
