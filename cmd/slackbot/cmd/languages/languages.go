package languages

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/languages"
)

var limit int

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of languages to list")
}

// Cmd represents the languages command
var Cmd = &cobra.Command{
	Use:   "languages [query]",
	Short: "Search the supported transcription languages",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		matches := languages.Search(query, limit)
		if len(matches) == 0 {
			return fmt.Errorf("no language matches %q", query)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, l := range matches {
			fmt.Fprintf(w, "%s\t%s\n", l.Code, l.Label)
		}
		return w.Flush()
	},
}
