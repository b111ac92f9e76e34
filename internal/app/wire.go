//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/api/server"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/assemblyai"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/api/provider"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/bot"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/metrics"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/pipeline"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/config"
)

var pipelineSet = wire.NewSet(
	provideLogger,
	metrics.New,
	provideAssemblyAI,
	wire.Bind(new(provider.Transcriber), new(*assemblyai.Client)),
	provideLLM,
	provideSpeakerIdentifier,
	provideSummarizer,
	providePipelineConfig,
	pipeline.New,
)

// InitializeApplication wires the HTTP server and the bot behind it
func InitializeApplication(cfg *config.Config) (*Application, func(), error) {
	wire.Build(
		pipelineSet,
		provideMessenger,
		provideBotConfig,
		bot.New,
		provideDedupStore,
		provideSlackHandler,
		provideServerConfig,
		server.NewServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}

// InitializeRunner wires the pipeline for local files
func InitializeRunner(cfg *config.Config) (*Runner, func(), error) {
	wire.Build(
		pipelineSet,
		wire.Struct(new(Runner), "*"),
	)
	return nil, nil, nil
}
