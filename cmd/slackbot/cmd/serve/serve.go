package serve

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/config"
)

var drainTimeout time.Duration

func init() {
	Cmd.Flags().DurationVar(&drainTimeout, "drain-timeout", 5*time.Minute,
		"how long shutdown waits for in-flight transcriptions")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Slack webhook server",
	Long: `Start the Slack webhook server

- Receives events, interactions and slash commands from Slack
- Runs transcriptions in the background and posts results to the thread
- On SIGINT/SIGTERM stops accepting requests and waits for running transcriptions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.ValidateForServe(); err != nil {
			return err
		}

		application, cleanup, err := app.InitializeApplication(cfg)
		if err != nil {
			return fmt.Errorf("initializing: %w", err)
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh, err := application.Server.Start()
		if err != nil {
			return err
		}

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		defer cancel()

		if err := application.Server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := application.Bot.Wait(shutdownCtx); err != nil {
			application.Logger.Warn("abandoning in-flight transcriptions", zap.Error(err))
			return err
		}
		return nil
	},
}
