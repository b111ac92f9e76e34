// Package config loads the bot configuration from the environment, an
// optional .env file and an optional YAML overlay.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete runtime configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Slack      SlackConfig      `yaml:"slack"`
	AssemblyAI AssemblyAIConfig `yaml:"assemblyai"`
	LLM        LLMConfig        `yaml:"llm"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Dedup      DedupConfig      `yaml:"dedup"`
}

type ServerConfig struct {
	Host        string `yaml:"host" validate:"required"`
	Port        string `yaml:"port" validate:"required,numeric"`
	Environment string `yaml:"environment" validate:"oneof=development production"`
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// IsDevelopment reports whether the bot runs in development mode
func (s ServerConfig) IsDevelopment() bool {
	return s.Environment != "production"
}

type SlackConfig struct {
	BotToken      string `yaml:"bot_token"`
	SigningSecret string `yaml:"signing_secret"`
	APIURL        string `yaml:"api_url" validate:"omitempty,url"`
}

type AssemblyAIConfig struct {
	APIKey       string        `yaml:"api_key" validate:"required"`
	BaseURL      string        `yaml:"base_url" validate:"required,url"`
	PollInterval time.Duration `yaml:"poll_interval" validate:"min=100ms"`
	MaxRetries   int           `yaml:"max_retries" validate:"min=0,max=10"`
}

type LLMConfig struct {
	Backend       string `yaml:"backend" validate:"oneof=lemur openai gemini"`
	FinalModel    string `yaml:"final_model"`
	OpenAIAPIKey  string `yaml:"openai_api_key" validate:"required_if=Backend openai"`
	OpenAIBaseURL string `yaml:"openai_base_url" validate:"omitempty,url"`
	OpenAIModel   string `yaml:"openai_model"`
	GeminiAPIKey  string `yaml:"gemini_api_key" validate:"required_if=Backend gemini"`
	GeminiModel   string `yaml:"gemini_model"`
}

type PipelineConfig struct {
	WaitTimeout time.Duration `yaml:"wait_timeout" validate:"min=1s"`
	RunTimeout  time.Duration `yaml:"run_timeout" validate:"min=1s,gtfield=WaitTimeout"`
}

type DedupConfig struct {
	RedisURL string        `yaml:"redis_url" validate:"omitempty,url"`
	TTL      time.Duration `yaml:"ttl" validate:"min=1s"`
}

// FromEnv builds a Config from environment variables and defaults.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:        getEnvOrDefault("HOST", DefaultHost),
			Port:        getEnvOrDefault("PORT", DefaultPort),
			Environment: getEnvOrDefault("ENVIRONMENT", DefaultEnvironment),
			LogLevel:    getEnvOrDefault("LOG_LEVEL", DefaultLogLevel),
		},
		Slack: SlackConfig{
			BotToken:      getEnvOrDefault("SLACK_BOT_TOKEN", ""),
			SigningSecret: getEnvOrDefault("SLACK_SIGNING_SECRET", ""),
			APIURL:        getEnvOrDefault("SLACK_API_URL", ""),
		},
		AssemblyAI: AssemblyAIConfig{
			APIKey:  getEnvOrDefault("ASSEMBLYAI_API_KEY", ""),
			BaseURL: getEnvOrDefault("ASSEMBLYAI_BASE_URL", DefaultAssemblyAIURL),
		},
		LLM: LLMConfig{
			Backend:       getEnvOrDefault("LLM_BACKEND", DefaultLLMBackend),
			FinalModel:    getEnvOrDefault("LLM_FINAL_MODEL", DefaultFinalModel),
			OpenAIAPIKey:  getEnvOrDefault("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnvOrDefault("OPENAI_BASE_URL", ""),
			OpenAIModel:   getEnvOrDefault("OPENAI_MODEL", ""),
			GeminiAPIKey:  getEnvOrDefault("GEMINI_API_KEY", ""),
			GeminiModel:   getEnvOrDefault("GEMINI_MODEL", ""),
		},
		Dedup: DedupConfig{
			RedisURL: getEnvOrDefault("REDIS_URL", ""),
		},
	}

	var err error
	if cfg.AssemblyAI.PollInterval, err = getDurationOrDefault("TRANSCRIPT_POLL_INTERVAL", DefaultPollInterval); err != nil {
		return nil, err
	}
	if cfg.AssemblyAI.MaxRetries, err = getIntOrDefault("PROVIDER_MAX_RETRIES", DefaultMaxRetries); err != nil {
		return nil, err
	}
	if cfg.Pipeline.WaitTimeout, err = getDurationOrDefault("TRANSCRIPT_WAIT_TIMEOUT", DefaultWaitTimeout); err != nil {
		return nil, err
	}
	if cfg.Pipeline.RunTimeout, err = getDurationOrDefault("RUN_TIMEOUT", DefaultRunTimeout); err != nil {
		return nil, err
	}
	if cfg.Dedup.TTL, err = getDurationOrDefault("DEDUP_TTL", DefaultDedupTTL); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyFile overlays the non-zero fields of a YAML file onto cfg.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	c.merge(&overlay)
	return nil
}

func (c *Config) merge(o *Config) {
	setString(&c.Server.Host, o.Server.Host)
	setString(&c.Server.Port, o.Server.Port)
	setString(&c.Server.Environment, o.Server.Environment)
	setString(&c.Server.LogLevel, o.Server.LogLevel)

	setString(&c.Slack.BotToken, o.Slack.BotToken)
	setString(&c.Slack.SigningSecret, o.Slack.SigningSecret)
	setString(&c.Slack.APIURL, o.Slack.APIURL)

	setString(&c.AssemblyAI.APIKey, o.AssemblyAI.APIKey)
	setString(&c.AssemblyAI.BaseURL, o.AssemblyAI.BaseURL)
	setDuration(&c.AssemblyAI.PollInterval, o.AssemblyAI.PollInterval)
	if o.AssemblyAI.MaxRetries != 0 {
		c.AssemblyAI.MaxRetries = o.AssemblyAI.MaxRetries
	}

	setString(&c.LLM.Backend, o.LLM.Backend)
	setString(&c.LLM.FinalModel, o.LLM.FinalModel)
	setString(&c.LLM.OpenAIAPIKey, o.LLM.OpenAIAPIKey)
	setString(&c.LLM.OpenAIBaseURL, o.LLM.OpenAIBaseURL)
	setString(&c.LLM.OpenAIModel, o.LLM.OpenAIModel)
	setString(&c.LLM.GeminiAPIKey, o.LLM.GeminiAPIKey)
	setString(&c.LLM.GeminiModel, o.LLM.GeminiModel)

	setDuration(&c.Pipeline.WaitTimeout, o.Pipeline.WaitTimeout)
	setDuration(&c.Pipeline.RunTimeout, o.Pipeline.RunTimeout)

	setString(&c.Dedup.RedisURL, o.Dedup.RedisURL)
	setDuration(&c.Dedup.TTL, o.Dedup.TTL)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}

// Load is the main entry point: .env, environment, then the optional YAML
// overlay at path, then validation.
func Load(path string) (*Config, error) {
	if _, err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := cfg.ApplyFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
