package assertions

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("pagespec.assertions")

var (
	evaluations metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		evaluations, metricsErr = meter.Int64Counter(
			"assertions_evaluated_total",
			metric.WithDescription("Total number of assertion evaluations by kind and verdict"),
		)
	})
	return metricsErr
}

func recordVerdict(ctx context.Context, kind Kind, passed bool) {
	if err := initMetrics(); err != nil {
		return
	}
	evaluations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind.String()),
		attribute.Bool("passed", passed),
	))
}
