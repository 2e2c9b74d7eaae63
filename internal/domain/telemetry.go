package domain

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("peptrace.domain")
	meter  = otel.Meter("peptrace.domain")
)

var (
	stageLatency  metric.Float64Histogram
	stageItems    metric.Int64Histogram
	chainsDeleted metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		stageLatency, err = meter.Float64Histogram(
			"peptrace_stage_duration_seconds",
			metric.WithDescription("Duration of tracing pipeline stages"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		stageItems, err = meter.Int64Histogram(
			"peptrace_stage_items",
			metric.WithDescription("Items produced by each tracing pipeline stage"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		chainsDeleted, err = meter.Int64Counter(
			"peptrace_chains_deleted_total",
			metric.WithDescription("Chains removed by the model filters"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

func startStageSpan(ctx context.Context, stage string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Tracer."+stage,
		trace.WithAttributes(
			attribute.String("peptrace.stage", stage),
		),
	)
}

func recordStageMetrics(ctx context.Context, stage string, duration time.Duration, items int) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("stage", stage))

	stageLatency.Record(ctx, duration.Seconds(), attrs)
	stageItems.Record(ctx, int64(items), attrs)
}

func recordDeletedChains(ctx context.Context, reason string, n int) {
	if n == 0 {
		return
	}

	if err := initMetrics(); err != nil {
		return
	}

	chainsDeleted.Add(ctx, int64(n), metric.WithAttributes(
		attribute.String("reason", reason),
	))
}
