package assemblyai

import (
	"fmt"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
)

// BackendName is the registry key of the LeMUR backend.
const BackendName = "lemur"

func init() {
	provider.RegisterLLM(BackendName, createLeMURBackend)
}

// LeMUR runs on the same client as transcription, so the backend reuses it.
func createLeMURBackend(_ provider.LLMSettings, transcripts provider.Transcriber) (provider.LLM, error) {
	llm, ok := transcripts.(provider.LLM)
	if !ok {
		return nil, fmt.Errorf("lemur backend requires an AssemblyAI transcriber, got %T", transcripts)
	}
	return llm, nil
}
