package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/peptrace/internal/domain"
	m "github.com/mouse-blink/peptrace/internal/model"
)

var traceOutFlag string
var traceTopFragmentsFlag int

// traceCmd represents the trace command.
var traceCmd = newTraceCmd()

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <input>",
		Short: "Trace main chains from density peaks",
		Long: `Trace runs the whole pipeline on one input document and saves the model,
named by the hash of its content, in the output directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if traceTopFragmentsFlag > 0 {
				cfg.Build.TopFragments = traceTopFragmentsFlag
			}

			return workflow.Trace(cmd.Context(), domain.TraceArgs{
				Input:  m.Path(args[0]),
				Output: m.Path(traceOutFlag),
				Config: cfg,
			})
		},
	}
	cmd.Flags().StringVarP(&traceOutFlag, "out", "o", ".peptrace-models", "directory the model document is written to")
	cmd.Flags().IntVarP(&traceTopFragmentsFlag, "top-fragments", "f", 0, "number of best traces built into chains (0 keeps the config value)")

	return cmd
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
