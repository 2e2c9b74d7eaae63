package cmd

import (
	"github.com/mouse-blink/peptrace/internal/domain"
	m "github.com/mouse-blink/peptrace/internal/model"
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <model>",
		Short: "View a previously saved model document",
		Long:  "View prints the chain table of a model document written by trace.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.View(domain.ViewArgs{Model: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
