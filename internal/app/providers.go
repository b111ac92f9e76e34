package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/api/server"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/api/v1/handlers"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/assemblyai"
	_ "github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/gemini"
	_ "github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/openai/chat"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/bot"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/dedup"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/logging"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/messaging"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/metrics"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/pipeline"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/transcript"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/config"
)

// Application is everything `slackbot serve` runs
type Application struct {
	Server *server.Server
	Bot    *bot.Bot
	Logger *zap.Logger
}

// Runner is everything `slackbot transcribe` runs
type Runner struct {
	Pipeline *pipeline.Pipeline
	Logger   *zap.Logger
}

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, err := logging.NewLogger(cfg.Server.IsDevelopment(), cfg.Server.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func provideAssemblyAI(cfg *config.Config, logger *zap.Logger) *assemblyai.Client {
	return assemblyai.NewClient(assemblyai.Config{
		APIKey:       cfg.AssemblyAI.APIKey,
		BaseURL:      cfg.AssemblyAI.BaseURL,
		PollInterval: cfg.AssemblyAI.PollInterval,
		MaxRetries:   cfg.AssemblyAI.MaxRetries,
	}, logger)
}

func provideLLM(cfg *config.Config, transcripts provider.Transcriber, logger *zap.Logger) (provider.LLM, error) {
	settings := provider.LLMSettings{}
	switch cfg.LLM.Backend {
	case "openai":
		settings = provider.LLMSettings{APIKey: cfg.LLM.OpenAIAPIKey, BaseURL: cfg.LLM.OpenAIBaseURL, Model: cfg.LLM.OpenAIModel}
	case "gemini":
		settings = provider.LLMSettings{APIKey: cfg.LLM.GeminiAPIKey, Model: cfg.LLM.GeminiModel}
	}

	llm, err := provider.NewLLM(cfg.LLM.Backend, settings, transcripts)
	if err != nil {
		return nil, fmt.Errorf("llm backend %q (registered: %v): %w", cfg.LLM.Backend, provider.ListRegisteredLLMs(), err)
	}
	logger.Info("llm backend ready", zap.String("backend", cfg.LLM.Backend))
	return llm, nil
}

func provideSpeakerIdentifier(cfg *config.Config, llm provider.LLM, m *metrics.Metrics, logger *zap.Logger) *transcript.SpeakerIdentifier {
	return transcript.NewSpeakerIdentifier(llm, cfg.LLM.FinalModel, m, logger)
}

func provideSummarizer(cfg *config.Config, llm provider.LLM) *transcript.Summarizer {
	return transcript.NewSummarizer(llm, cfg.LLM.FinalModel)
}

func providePipelineConfig(cfg *config.Config) pipeline.Config {
	return pipeline.Config{WaitTimeout: cfg.Pipeline.WaitTimeout}
}

func provideMessenger(cfg *config.Config, logger *zap.Logger) messaging.Messenger {
	return messaging.NewSlackMessenger(cfg.Slack.BotToken, cfg.Slack.APIURL, logger)
}

func provideBotConfig(cfg *config.Config) bot.Config {
	return bot.Config{RunTimeout: cfg.Pipeline.RunTimeout}
}

func provideDedupStore(cfg *config.Config, logger *zap.Logger) (dedup.Store, func(), error) {
	store, closeStore, err := dedup.New(context.Background(), cfg.Dedup.RedisURL, cfg.Dedup.TTL)
	if err != nil {
		return nil, nil, fmt.Errorf("dedup store: %w", err)
	}
	return store, func() {
		if err := closeStore(); err != nil {
			logger.Warn("failed to close dedup store", zap.Error(err))
		}
	}, nil
}

func provideServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Host:          cfg.Server.Host,
		Port:          cfg.Server.Port,
		Environment:   cfg.Server.Environment,
		SigningSecret: cfg.Slack.SigningSecret,
	}
}

func provideSlackHandler(b *bot.Bot, store dedup.Store, m *metrics.Metrics, logger *zap.Logger) *handlers.SlackHandler {
	return handlers.NewSlackHandler(b, store, m, logger)
}
