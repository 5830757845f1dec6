package equation

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("pagespec.equation")

var (
	renderCacheHits   metric.Int64Counter
	renderCacheMisses metric.Int64Counter
	renderDuration    metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		renderCacheHits, err = meter.Int64Counter(
			"render_cache_hits_total",
			metric.WithDescription("Total number of equation renders served from cache"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		renderCacheMisses, err = meter.Int64Counter(
			"render_cache_misses_total",
			metric.WithDescription("Total number of equation renders that ran the renderer"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		renderDuration, err = meter.Float64Histogram(
			"render_duration_seconds",
			metric.WithDescription("Duration of uncached equation renders"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordCacheHit(ctx context.Context) {
	if err := initMetrics(); err != nil {
		return
	}
	renderCacheHits.Add(ctx, 1)
}

func recordCacheMiss(ctx context.Context, elapsed time.Duration, err error) {
	if initMetrics() != nil {
		return
	}
	renderCacheMisses.Add(ctx, 1)
	renderDuration.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(attribute.Bool("success", err == nil)))
}
