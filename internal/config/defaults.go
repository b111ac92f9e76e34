package config

import "time"

// Default configuration values
const (
	DefaultHost          = "0.0.0.0"
	DefaultPort          = "3000"
	DefaultEnvironment   = "development"
	DefaultLogLevel      = "info"
	DefaultLLMBackend    = "lemur"
	DefaultFinalModel    = "anthropic/claude-3-5-sonnet"
	DefaultAssemblyAIURL = "https://api.assemblyai.com"

	DefaultWaitTimeout  = 30 * time.Minute
	DefaultPollInterval = 3 * time.Second
	DefaultMaxRetries   = 3
	DefaultRunTimeout   = 45 * time.Minute
	DefaultDedupTTL     = 10 * time.Minute
)
