// Package cmd provides the root command and CLI setup for peptrace.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mouse-blink/peptrace/internal/adapter"
	"github.com/mouse-blink/peptrace/internal/config"
	"github.com/mouse-blink/peptrace/internal/controller"
	"github.com/mouse-blink/peptrace/internal/domain"
	"github.com/spf13/cobra"
)

var inputStore adapter.InputStore
var modelStore adapter.ModelStore
var workflow domain.Workflow
var ui controller.UI
var logLevel = new(slog.LevelVar)

func init() {
	logLevel.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	mode, err := controller.ParseMode(os.Getenv(controller.ModeEnv))
	if err != nil {
		logger.Warn("ignoring UI mode", "error", err)
	}

	ui = controller.NewUI(rootCmd, mode)
	inputStore = adapter.NewInputStore()
	modelStore = adapter.NewModelStore()
	workflow = domain.NewWorkflow(
		inputStore,
		modelStore,
		ui,
		adapter.NewNoopRefiner(),
		adapter.NewNoopSequenceAssigner(),
		logger,
	)
}

var configFlag string
var parallelFlag int
var noRefineFlag bool
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peptrace",
		Short: "De novo protein main chain tracing",
		Long: `Peptrace builds protein main chain models from the peaks of an electron
density map. Candidate CA-CA links are scored against the density, grown
into traces, built into chains with N, CA, C, O and CB atoms and filtered
for overlap, weak termini and twisted peptides.

Input documents are YAML files carrying the peaks, the density grid and,
optionally, the unit cell and symmetry operators.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "YAML file with tracing thresholds (defaults are used when empty)")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 0, "number of parallel workers (0 uses every CPU)")
	cmd.PersistentFlags().BoolVar(&noRefineFlag, "no-refine", false, "skip per chain refinement")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every stage to stderr")

	return cmd
}

// loadConfig reads the config file, if any, and applies the command line overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Default()

	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return config.Config{}, err
		}

		cfg = loaded
	}

	if parallelFlag > 0 {
		cfg.Threads = parallelFlag
	}

	if noRefineFlag {
		cfg.Refine.Enabled = false
	}

	return cfg, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
