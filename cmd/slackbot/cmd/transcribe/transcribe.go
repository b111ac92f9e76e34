package transcribe

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/languages"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/pipeline"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/progress"
	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/config"
)

var (
	languageCode     string
	speakerLabels    bool
	identifySpeakers bool
	summary          bool
	prompt           string
	showProgress     bool
)

func init() {
	Cmd.Flags().StringVarP(&languageCode, "language", "l", "", "language code of the audio, detected when empty")
	Cmd.Flags().BoolVar(&speakerLabels, "speaker-labels", false, "label each utterance with its speaker")
	Cmd.Flags().BoolVar(&identifySpeakers, "identify-speakers", false, "replace speaker labels with names (needs --speaker-labels)")
	Cmd.Flags().BoolVar(&summary, "summary", false, "generate a summary")
	Cmd.Flags().StringVar(&prompt, "prompt", "", "extra context for speaker identification")
	Cmd.Flags().BoolVar(&showProgress, "progress", false, "force the progress bar even when not on a terminal")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <file>",
	Short: "Transcribe a local audio file with the same pipeline the bot uses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if languageCode != "" {
			if _, ok := languages.Lookup(languageCode); !ok {
				return fmt.Errorf("unsupported language code %q, see `slackbot languages`", languageCode)
			}
		}

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		runner, cleanup, err := app.InitializeRunner(cfg)
		if err != nil {
			return fmt.Errorf("initializing: %w", err)
		}
		defer cleanup()

		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		opts := model.NewTranscriptionOptions(languageCode, selectedOptions())
		fileName := filepath.Base(args[0])
		reporter := progress.NewBarReporter(progress.Config{
			Enabled: progress.ShouldShowProgress(showProgress),
			Writer:  cmd.ErrOrStderr(),
		}, fileName, len(pipeline.NewProgress(opts).Statuses()))

		final, err := runner.Pipeline.Run(cmd.Context(), pipeline.Input{
			FileName:   fileName,
			Audio:      file,
			Options:    opts,
			UserPrompt: prompt,
		}, reporter)
		reporter.Wait()
		if err != nil {
			return err
		}

		printResult(cmd.OutOrStdout(), final)
		return nil
	},
}

func selectedOptions() []string {
	var selected []string
	if speakerLabels {
		selected = append(selected, model.OptionSpeakerLabels)
	}
	if identifySpeakers {
		selected = append(selected, model.OptionIdentifySpeakers)
	}
	if summary {
		selected = append(selected, model.OptionGenerateSummary)
	}
	return selected
}

func printResult(w io.Writer, msg model.TranscriptMessage) {
	fmt.Fprintf(w, "Transcript ID: %s\n\n%s", msg.JobID, msg.Transcript)
	if msg.SpeakerIdentificationContext != "" {
		fmt.Fprintf(w, "\nSpeaker identification:\n%s\n", msg.SpeakerIdentificationContext)
	}
	if msg.Summary != "" {
		fmt.Fprintf(w, "\nSummary:\n%s\n", msg.Summary)
	}
}
