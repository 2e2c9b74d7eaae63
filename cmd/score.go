package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/peptrace/internal/domain"
	m "github.com/mouse-blink/peptrace/internal/model"
)

var scoreTopPairsFlag int

// scoreCmd represents the score command.
var scoreCmd = newScoreCmd()

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <input>",
		Short: "Rank candidate CA-CA links against the density",
		Long:  "Score finds the candidate peptide links of an input document and lists them best first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if scoreTopPairsFlag > 0 {
				cfg.Ranking.TopPairs = scoreTopPairsFlag
			}

			return workflow.Score(cmd.Context(), domain.ScoreArgs{
				Input:  m.Path(args[0]),
				Config: cfg,
			})
		},
	}
	cmd.Flags().IntVarP(&scoreTopPairsFlag, "top-pairs", "n", 0, "number of best links kept (0 keeps the config value)")

	return cmd
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
