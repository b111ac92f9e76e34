package provider

import (
	"fmt"
	"sort"
	"sync"
)

// LLMSettings configures one LLM backend.
type LLMSettings struct {
	APIKey  string
	BaseURL string
	Model   string
}

// LLMCreator builds an LLM backend. transcripts lets backends that cannot
// address transcripts by id fetch their text instead.
type LLMCreator func(settings LLMSettings, transcripts Transcriber) (LLM, error)

// llmRegistry stores backend creation functions
var (
	llmRegistry   = make(map[string]LLMCreator)
	registryMutex sync.RWMutex
)

// RegisterLLM registers a backend creator function
func RegisterLLM(backend string, creator LLMCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	llmRegistry[backend] = creator
}

// GetLLMCreator returns the creator function for a backend
func GetLLMCreator(backend string) (LLMCreator, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	creator, ok := llmRegistry[backend]
	if !ok {
		return nil, fmt.Errorf("llm backend %s not registered", backend)
	}
	return creator, nil
}

// NewLLM builds the named backend.
func NewLLM(backend string, settings LLMSettings, transcripts Transcriber) (LLM, error) {
	creator, err := GetLLMCreator(backend)
	if err != nil {
		return nil, err
	}
	return creator(settings, transcripts)
}

// ListRegisteredLLMs returns all registered backends, sorted
func ListRegisteredLLMs() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	backends := make([]string, 0, len(llmRegistry))
	for backend := range llmRegistry {
		backends = append(backends, backend)
	}
	sort.Strings(backends)
	return backends
}
