package domain

import (
	"log/slog"
	"time"

	"github.com/mouse-blink/peptrace/internal/adapter"
	m "github.com/mouse-blink/peptrace/internal/model"
)

// StageObserver is told about pipeline progress.
type StageObserver interface {
	DisplayStageStarted(stage string, index, total int)
	DisplayStageCompleted(stage string, items int, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) DisplayStageStarted(string, int, int) {}
func (nopObserver) DisplayStageCompleted(string, int, time.Duration) {}

type tracerOptions struct {
	logger   *slog.Logger
	refiner  adapter.Refiner
	assigner adapter.SequenceAssigner
	observer StageObserver
	cell     *m.Cell
	symops   []m.Symop
}

// Option configures a Tracer.
type Option func(*tracerOptions)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *tracerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRefiner sets the per chain refiner.
func WithRefiner(refiner adapter.Refiner) Option {
	return func(o *tracerOptions) {
		if refiner != nil {
			o.refiner = refiner
		}
	}
}

// WithSequenceAssigner sets the sequence assigner.
func WithSequenceAssigner(assigner adapter.SequenceAssigner) Option {
	return func(o *tracerOptions) {
		if assigner != nil {
			o.assigner = assigner
		}
	}
}

// WithObserver reports stage progress to observer.
func WithObserver(observer StageObserver) Option {
	return func(o *tracerOptions) {
		if observer != nil {
			o.observer = observer
		}
	}
}

// WithSymmetry supplies the cell and operators used to globularize peaks.
func WithSymmetry(cell *m.Cell, symops []m.Symop) Option {
	return func(o *tracerOptions) {
		o.cell = cell
		o.symops = symops
	}
}

func newTracerOptions(opts []Option) tracerOptions {
	o := tracerOptions{
		logger:   slog.Default(),
		refiner:  adapter.NewNoopRefiner(),
		assigner: adapter.NewNoopSequenceAssigner(),
		observer: nopObserver{},
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
