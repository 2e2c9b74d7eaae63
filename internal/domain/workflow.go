package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mouse-blink/peptrace/internal/adapter"
	"github.com/mouse-blink/peptrace/internal/config"
	"github.com/mouse-blink/peptrace/internal/controller"
	m "github.com/mouse-blink/peptrace/internal/model"
)

// TraceArgs contains the arguments for a full tracing run.
type TraceArgs struct {
	Input  m.Path
	Output m.Path
	Config config.Config
}

// ScoreArgs contains the arguments for ranking candidate links only.
type ScoreArgs struct {
	Input  m.Path
	Config config.Config
}

// ViewArgs contains the arguments for showing a saved model document.
type ViewArgs struct {
	Model m.Path
}

// Workflow defines the user facing tracing operations.
type Workflow interface {
	Trace(ctx context.Context, args TraceArgs) error
	Score(ctx context.Context, args ScoreArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	inputs   adapter.InputStore
	models   adapter.ModelStore
	ui       controller.UI
	refiner  adapter.Refiner
	assigner adapter.SequenceAssigner
	logger   *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	inputs adapter.InputStore,
	models adapter.ModelStore,
	ui controller.UI,
	refiner adapter.Refiner,
	assigner adapter.SequenceAssigner,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.Default()
	}

	return &workflow{
		inputs:   inputs,
		models:   models,
		ui:       ui,
		refiner:  refiner,
		assigner: assigner,
		logger:   logger,
	}
}

func (w *workflow) prepare(path m.Path, cfg config.Config) (m.Input, adapter.DensitySampler, error) {
	if err := cfg.Validate(); err != nil {
		return m.Input{}, nil, err
	}

	input, err := w.inputs.LoadInput(path)
	if err != nil {
		return m.Input{}, nil, fmt.Errorf("failed to load input: %w", err)
	}

	density, err := adapter.NewGridDensity(input.Map)
	if errors.Is(err, adapter.ErrEmptyMap) {
		return input, nil, fmt.Errorf("%w: %w", ErrNothingToBuild, err)
	}

	if err != nil {
		return m.Input{}, nil, fmt.Errorf("failed to build density map: %w", err)
	}

	return input, density, nil
}

func (w *workflow) newTracer(cfg config.Config, input m.Input, density adapter.DensitySampler) *Tracer {
	return NewTracer(cfg, density,
		WithLogger(w.logger),
		WithRefiner(w.refiner),
		WithSequenceAssigner(w.assigner),
		WithObserver(w.ui),
		WithSymmetry(input.Cell, input.Symops),
	)
}

// Trace runs the whole pipeline, saves the model document and shows the chains.
func (w *workflow) Trace(ctx context.Context, args TraceArgs) error {
	input, density, err := w.prepare(args.Input, args.Config)
	if err != nil && !errors.Is(err, ErrNothingToBuild) {
		return err
	}

	if err := w.ui.Start(controller.WithTraceMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayRunInfo(args.Input, len(input.Peaks), args.Config.Workers())
	w.logger.Info("tracing started", "input", args.Input, "peaks", len(input.Peaks))

	var res Result
	if err == nil {
		res, err = w.newTracer(args.Config, input, density).Run(ctx, input.Peaks)
	}

	if errors.Is(err, ErrNothingToBuild) {
		w.logger.Info("no chain could be traced", "input", args.Input, "reason", err)

		if err := w.ui.DisplayModel(newReport(input, Result{}), "", nil); err != nil {
			return err
		}

		w.ui.Wait()

		return nil
	}

	if err != nil {
		return w.ui.DisplayModel(m.Report{}, "", fmt.Errorf("failed to trace %s: %w", args.Input, err))
	}

	report := newReport(input, res)

	saved, err := w.models.SaveReport(args.Output, report)
	if err != nil {
		return w.ui.DisplayModel(report, "", fmt.Errorf("failed to save model: %w", err))
	}

	w.logger.Info("tracing finished", "chains", len(report.Chains), "residues", report.Model.ResidueCount(), "saved", saved)

	if err := w.ui.DisplayModel(report, saved, nil); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// Score ranks the candidate links of the input and shows them.
func (w *workflow) Score(ctx context.Context, args ScoreArgs) error {
	input, density, err := w.prepare(args.Input, args.Config)
	if err != nil && !errors.Is(err, ErrNothingToBuild) {
		return err
	}

	if err := w.ui.Start(controller.WithScoreMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayRunInfo(args.Input, len(input.Peaks), args.Config.Workers())

	var res Result
	if err == nil {
		res, err = w.newTracer(args.Config, input, density).RankLinks(ctx, input.Peaks)
	}

	if errors.Is(err, ErrNothingToBuild) {
		w.logger.Info("no links could be scored", "input", args.Input, "reason", err)
	} else if err != nil {
		return w.ui.DisplayRankedLinks(nil, fmt.Errorf("failed to score %s: %w", args.Input, err))
	}

	if err := w.ui.DisplayRankedLinks(res.Links, nil); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// View shows the chain table of a previously saved model document.
func (w *workflow) View(args ViewArgs) error {
	report, err := w.models.LoadReport(args.Model)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}

	if err := w.ui.Start(controller.WithTraceMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	if err := w.ui.DisplayModel(report, args.Model, nil); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

func newReport(input m.Input, res Result) m.Report {
	report := m.Report{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Source:    input.Source,
		Peaks:     len(input.Peaks),
		Model:     res.Model,
	}

	for _, frag := range res.Model.Fragments {
		report.Chains = append(report.Chains, m.ChainSummary{
			ID:       frag.ID,
			Residues: len(frag.Residues),
			Score:    res.Scores[frag.ID],
		})
	}

	return report
}
