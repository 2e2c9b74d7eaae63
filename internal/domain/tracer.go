package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mouse-blink/peptrace/internal/adapter"
	"github.com/mouse-blink/peptrace/internal/config"
	m "github.com/mouse-blink/peptrace/internal/model"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNothingToBuild is returned when no chain can be traced from the peaks.
var ErrNothingToBuild = errors.New("nothing to build")

// Pipeline stage names, in run order.
const (
	StageGlobularize = "globularize"
	StageContacts    = "contacts"
	StageRank        = "rank"
	StageGrow        = "grow"
	StageBuild       = "build"
	StageOverlap     = "overlap"
	StageRefine      = "refine"
	StageTrim        = "trim"
	StageShortChains = "short-chains"
	StageRescore     = "rescore-overlap"
	StageTwisted     = "twisted"
	StageSequence    = "sequence"
)

// Stages lists every stage of a full run.
var Stages = []string{
	StageGlobularize, StageContacts, StageRank, StageGrow, StageBuild, StageOverlap,
	StageRefine, StageTrim, StageShortChains, StageRescore, StageTwisted, StageSequence,
}

// Result is everything a tracing run produced.
type Result struct {
	Peaks  []r3.Vec
	Pairs  int
	Links  []m.DirectedLink
	Traces []m.ScoredTrace
	Model  m.Model
	// Scores are the density fit of the final chains.
	Scores map[string]float64
}

// Tracer runs the main chain tracing pipeline over one density map.
type Tracer struct {
	cfg     config.Config
	density adapter.DensitySampler
	opts    tracerOptions
}

// NewTracer creates a tracer.
func NewTracer(cfg config.Config, density adapter.DensitySampler, opts ...Option) *Tracer {
	return &Tracer{cfg: cfg, density: density, opts: newTracerOptions(opts)}
}

func (t *Tracer) stage(ctx context.Context, index int, total int, name string, fn func(context.Context) (int, error)) error {
	t.opts.observer.DisplayStageStarted(name, index, total)

	ctx, span := startStageSpan(ctx, name)
	defer span.End()

	start := time.Now()
	items, err := fn(ctx)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	span.SetAttributes(attribute.Int("peptrace.items", items))
	recordStageMetrics(ctx, name, elapsed, items)
	t.opts.logger.Info("stage done", "stage", name, "items", items, "elapsed", elapsed)
	t.opts.observer.DisplayStageCompleted(name, items, elapsed)

	return nil
}

// RankLinks runs the stages up to pair ranking.
func (t *Tracer) RankLinks(ctx context.Context, peaks []r3.Vec) (Result, error) {
	return t.rank(ctx, peaks, 3)
}

func (t *Tracer) rank(ctx context.Context, peaks []r3.Vec, total int) (Result, error) {
	res := Result{Peaks: peaks}
	workers := t.cfg.Workers()

	var pairs []m.Pair

	err := t.stage(ctx, 1, total, StageGlobularize, func(context.Context) (int, error) {
		if !t.cfg.Globularize.Enabled || t.opts.cell == nil {
			return 0, nil
		}

		var centre *r3.Vec
		if c := t.cfg.Globularize.Centre; c != nil {
			centre = &r3.Vec{X: c[0], Y: c[1], Z: c[2]}
		}

		res.Peaks = Globularize(peaks, *t.opts.cell, t.opts.symops, centre)

		return len(res.Peaks), nil
	})
	if err != nil {
		return res, err
	}

	err = t.stage(ctx, 2, total, StageContacts, func(context.Context) (int, error) {
		pairs = FindPeptideContacts(res.Peaks, t.cfg.Contact.Distance, t.cfg.Contact.Variation)
		res.Pairs = len(pairs)

		return len(pairs), nil
	})
	if err != nil {
		return res, err
	}

	if len(pairs) == 0 {
		return res, ErrNothingToBuild
	}

	scorer, err := NewSpinScorer(res.Peaks, t.density)
	if errors.Is(err, ErrFlatMap) {
		t.opts.logger.Warn("density map is flat, no links can be scored", "pairs", len(pairs))

		return res, fmt.Errorf("%w: %w", ErrNothingToBuild, err)
	}

	if err != nil {
		return res, fmt.Errorf("failed to score links: %w", err)
	}

	err = t.stage(ctx, 3, total, StageRank, func(ctx context.Context) (int, error) {
		var err error

		res.Links, err = NewPairRanker(scorer, workers).Rank(ctx, pairs, t.cfg.Ranking.TopPairs)
		if err != nil {
			return 0, fmt.Errorf("failed to rank links: %w", err)
		}

		return len(res.Links), nil
	})

	return res, err
}

// Run traces chains from the peaks. ErrNothingToBuild comes back, with the
// partial result, when the map is flat or no chain survives.
func (t *Tracer) Run(ctx context.Context, peaks []r3.Vec) (Result, error) {
	total := len(Stages)

	res, err := t.rank(ctx, peaks, total)
	if err != nil {
		return res, err
	}

	steps := []struct {
		name string
		fn   func(context.Context, *Result) (int, error)
	}{
		{StageGrow, t.grow},
		{StageBuild, t.build},
		{StageOverlap, t.resolveByTraceScore},
		{StageRefine, t.refine},
		{StageTrim, t.trim},
		{StageShortChains, t.rejectShort},
		{StageRescore, t.resolveByDensityFit},
		{StageTwisted, t.rejectTwisted},
		{StageSequence, t.assignSequences},
	}

	for i, step := range steps {
		err := t.stage(ctx, i+4, total, step.name, func(ctx context.Context) (int, error) {
			return step.fn(ctx, &res)
		})
		if err != nil {
			return res, err
		}

		if step.name != StageGrow && len(res.Model.Fragments) == 0 {
			return res, ErrNothingToBuild
		}
	}

	res.Scores = DensityFitScores(res.Model, t.density)

	return res, nil
}

func (t *Tracer) grow(ctx context.Context, res *Result) (int, error) {
	limits := GrowthLimits{
		MinRefoldDistance:         t.cfg.Growth.MinRefoldDistance,
		DuplicateGeometryDistance: t.cfg.Growth.DuplicateGeometryDistance,
		ProgenitorMargin:          t.cfg.Growth.ProgenitorMargin,
		MinTraceLength:            t.cfg.Growth.MinTraceLength,
	}

	growth, err := NewTreeGrower(res.Peaks, limits, t.cfg.Workers()).Grow(ctx, res.Links)
	if err != nil {
		return 0, fmt.Errorf("failed to grow traces: %w", err)
	}

	t.opts.logger.Debug("growth finished", "rounds", growth.Rounds, "created", growth.Created, "kept", len(growth.Traces))

	if len(growth.Traces) == 0 {
		return 0, ErrNothingToBuild
	}

	res.Traces = make([]m.ScoredTrace, len(growth.Traces))
	for i, tr := range growth.Traces {
		res.Traces[i] = m.NewScoredTrace(i, tr)
	}

	return len(res.Traces), nil
}

func (t *Tracer) build(_ context.Context, res *Result) (int, error) {
	builder := NewChainBuilder(res.Peaks, t.density, t.opts.logger)
	res.Model = builder.BuildModel(res.Traces, t.cfg.Build.TopFragments)

	return len(res.Model.Fragments), nil
}

func (t *Tracer) overlapResolver() *OverlapResolver {
	return NewOverlapResolver(OverlapLimits{
		ContactDistance:     t.cfg.Overlap.ContactDistance,
		MinOverlapFraction:  t.cfg.Overlap.MinOverlapFraction,
		BigOverlapFraction:  t.cfg.Overlap.BigOverlapFraction,
		SameDirectionStdDev: t.cfg.Overlap.SameDirectionStdDev,
	})
}

func (t *Tracer) filters() *PostFilters {
	return NewPostFilters(FilterLimits{
		MinChainResidues:    t.cfg.Filters.MinChainResidues,
		TwistedPerChainMax:  t.cfg.Filters.TwistedPerChainMax,
		TwistLimitDegrees:   t.cfg.Filters.TwistLimitDegrees,
		TrimDensityFraction: t.cfg.Filters.TrimDensityFraction,
		TrimOmegaDegrees:    t.cfg.Filters.TrimOmegaDegrees,
	}, t.opts.logger)
}

func (t *Tracer) resolve(ctx context.Context, res *Result, scores map[string]float64, reason string) int {
	resolver := t.overlapResolver()
	deletions := resolver.Resolve(res.Model, scores)
	before := len(res.Model.Fragments)
	res.Model = resolver.Apply(res.Model, deletions)
	recordDeletedChains(ctx, reason, before-len(res.Model.Fragments))

	return len(res.Model.Fragments)
}

func (t *Tracer) resolveByTraceScore(ctx context.Context, res *Result) (int, error) {
	scores := make(map[string]float64, len(res.Traces))
	for _, st := range res.Traces {
		scores[st.Label] = st.ForwardScore
	}

	return t.resolve(ctx, res, scores, "overlap"), nil
}

func (t *Tracer) resolveByDensityFit(ctx context.Context, res *Result) (int, error) {
	return t.resolve(ctx, res, DensityFitScores(res.Model, t.density), "overlap-density-fit"), nil
}

func (t *Tracer) refine(ctx context.Context, res *Result) (int, error) {
	if !t.cfg.Refine.Enabled {
		return 0, nil
	}

	r := &chainRefiner{
		refiner: t.opts.refiner,
		density: t.density,
		weight:  t.cfg.Refine.Weight,
		workers: t.cfg.Workers(),
		logger:  t.opts.logger,
	}
	res.Model = r.refineModel(ctx, res.Model)

	return len(res.Model.Fragments), nil
}

func (t *Tracer) trim(ctx context.Context, res *Result) (int, error) {
	before := res.Model.ResidueCount()
	res.Model = t.filters().TrimTermini(res.Model, t.density)
	t.opts.logger.Debug("termini trimmed", "residues_removed", before-res.Model.ResidueCount())

	return res.Model.ResidueCount(), nil
}

func (t *Tracer) rejectShort(ctx context.Context, res *Result) (int, error) {
	var deleted []string

	res.Model, deleted = t.filters().RejectShort(res.Model)
	recordDeletedChains(ctx, "short", len(deleted))

	return len(res.Model.Fragments), nil
}

func (t *Tracer) rejectTwisted(ctx context.Context, res *Result) (int, error) {
	var deleted []string

	res.Model, deleted = t.filters().RejectTwisted(res.Model)
	recordDeletedChains(ctx, "twisted", len(deleted))

	return len(res.Model.Fragments), nil
}

func (t *Tracer) assignSequences(ctx context.Context, res *Result) (int, error) {
	assigned := 0

	for fi := range res.Model.Fragments {
		frag := &res.Model.Fragments[fi]
		if len(frag.Residues) < t.cfg.Filters.SequenceMinResidues {
			continue
		}

		seq, err := t.opts.assigner.AssignSequence(ctx, *frag, t.density)
		if err != nil {
			t.opts.logger.Warn("sequence assignment failed", "chain", frag.ID, "error", err)
			continue
		}

		if seq == "" {
			continue
		}

		if len(seq) != len(frag.Residues) {
			t.opts.logger.Warn("sequence length does not match chain", "chain", frag.ID, "sequence", len(seq), "residues", len(frag.Residues))
			continue
		}

		for ri := range frag.Residues {
			frag.Residues[ri].Name = adapter.ResidueName(seq[ri])
		}

		assigned++
	}

	return assigned, nil
}
