package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/cmd/slackbot/cmd/languages"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/cmd/slackbot/cmd/serve"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/cmd/slackbot/cmd/transcribe"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/cmd/slackbot/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slackbot",
	Short: "A Slack bot that transcribes audio files shared in threads",
	Long: `A Slack bot that transcribes audio files shared in threads with AssemblyAI.
- Mention the bot in a thread with an audio file, or use /transcribe
- Pick a language and options in the form it posts
- The transcript is posted back to the thread with follow-up actions.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(languages.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML file overriding environment configuration")
}
