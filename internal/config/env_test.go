package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HOST", "PORT", "ENVIRONMENT", "LOG_LEVEL",
		"SLACK_BOT_TOKEN", "SLACK_SIGNING_SECRET", "SLACK_API_URL",
		"ASSEMBLYAI_API_KEY", "ASSEMBLYAI_BASE_URL",
		"LLM_BACKEND", "LLM_FINAL_MODEL", "OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL",
		"GEMINI_API_KEY", "GEMINI_MODEL",
		"TRANSCRIPT_WAIT_TIMEOUT", "TRANSCRIPT_POLL_INTERVAL", "PROVIDER_MAX_RETRIES",
		"RUN_TIMEOUT", "REDIS_URL", "DEDUP_TTL",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ASSEMBLYAI_API_KEY", "aai-key")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultAssemblyAIURL, cfg.AssemblyAI.BaseURL)
	assert.Equal(t, DefaultLLMBackend, cfg.LLM.Backend)
	assert.Equal(t, DefaultFinalModel, cfg.LLM.FinalModel)
	assert.Equal(t, 30*time.Minute, cfg.Pipeline.WaitTimeout)
	assert.Equal(t, 3*time.Second, cfg.AssemblyAI.PollInterval)
	assert.Equal(t, 3, cfg.AssemblyAI.MaxRetries)
	assert.Equal(t, 10*time.Minute, cfg.Dedup.TTL)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvInvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "duration", key: "TRANSCRIPT_WAIT_TIMEOUT", val: "soon"},
		{name: "int", key: "PROVIDER_MAX_RETRIES", val: "three"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)
			_, err := FromEnv()
			assert.ErrorContains(t, err, tc.key)
		})
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(c *Config)
		errorContains string
	}{
		{name: "valid"},
		{
			name:          "missing assemblyai key",
			mutate:        func(c *Config) { c.AssemblyAI.APIKey = "" },
			errorContains: "APIKey is required",
		},
		{
			name:          "unknown backend",
			mutate:        func(c *Config) { c.LLM.Backend = "claude" },
			errorContains: "must be one of",
		},
		{
			name:          "openai backend without key",
			mutate:        func(c *Config) { c.LLM.Backend = "openai" },
			errorContains: "OpenAIAPIKey is required",
		},
		{
			name: "openai key format",
			mutate: func(c *Config) {
				c.LLM.Backend = "openai"
				c.LLM.OpenAIAPIKey = "invalid-key"
			},
			errorContains: "must start with 'sk-'",
		},
		{
			name: "gemini key",
			mutate: func(c *Config) {
				c.LLM.Backend = "gemini"
				c.LLM.GeminiAPIKey = "AIzaTest-1234567890abcdef1234567890"
			},
		},
		{
			name:          "bad redis url",
			mutate:        func(c *Config) { c.Dedup.RedisURL = "not a url" },
			errorContains: "RedisURL must be a valid URL",
		},
		{
			name:          "poll interval too small",
			mutate:        func(c *Config) { c.AssemblyAI.PollInterval = time.Millisecond },
			errorContains: "PollInterval must be min",
		},
		{
			name:          "run timeout not above wait timeout",
			mutate:        func(c *Config) { c.Pipeline.RunTimeout = c.Pipeline.WaitTimeout },
			errorContains: "RunTimeout must be greater than WaitTimeout",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("ASSEMBLYAI_API_KEY", "aai-key")
			cfg, err := FromEnv()
			require.NoError(t, err)
			if tc.mutate != nil {
				tc.mutate(cfg)
			}

			err = cfg.Validate()
			if tc.errorContains == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.errorContains)
			}
		})
	}
}

func TestValidateForServe(t *testing.T) {
	cfg := &Config{}
	assert.ErrorContains(t, cfg.ValidateForServe(), "SLACK_BOT_TOKEN and SLACK_SIGNING_SECRET")

	cfg.Slack = SlackConfig{BotToken: "token", SigningSecret: "secret"}
	assert.ErrorContains(t, cfg.ValidateForServe(), "xoxb-")

	cfg.Slack.BotToken = "xoxb-123"
	assert.NoError(t, cfg.ValidateForServe())
}

func TestApplyFileOverridesNonZeroFields(t *testing.T) {
	clearEnv(t)
	t.Setenv("ASSEMBLYAI_API_KEY", "aai-key")
	t.Setenv("PORT", "4000")

	path := filepath.Join(t.TempDir(), "slackbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  environment: production
llm:
  backend: gemini
  gemini_api_key: AIzaTest-1234567890abcdef1234567890
pipeline:
  wait_timeout: 5m
`), 0o600))

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.NoError(t, cfg.ApplyFile(path))

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, "gemini", cfg.LLM.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Pipeline.WaitTimeout)
	assert.Equal(t, DefaultRunTimeout, cfg.Pipeline.RunTimeout)
	assert.NoError(t, cfg.Validate())

	assert.Error(t, cfg.ApplyFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestLoadEnvFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ASSEMBLYAI_API_KEY=from-dotenv\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	// godotenv does not override variables that are already set
	require.NoError(t, os.Unsetenv("ASSEMBLYAI_API_KEY"))
	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "from-dotenv", os.Getenv("ASSEMBLYAI_API_KEY"))
	os.Unsetenv("ASSEMBLYAI_API_KEY")
}
