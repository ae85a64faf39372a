package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "player-relations/internal/usecase"

type ruleMetrics struct {
	duration metric.Float64Histogram
	results  metric.Int64Histogram
}

func newRuleMetrics() *ruleMetrics {
	return newRuleMetricsWithMeter(otel.Meter(meterName))
}

// newRuleMetricsWithMeter falls back to nil instruments when the meter rejects
// them; record treats a nil instrument as disabled.
func newRuleMetricsWithMeter(meter metric.Meter) *ruleMetrics {
	duration, err := meter.Float64Histogram(
		"rules.evaluation.duration",
		metric.WithDescription("Rule evaluation time over one dataset snapshot."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		duration = nil
	}
	results, err := meter.Int64Histogram(
		"rules.result.size",
		metric.WithDescription("Number of tuples or rows produced by a rule."),
	)
	if err != nil {
		results = nil
	}

	return &ruleMetrics{duration: duration, results: results}
}

func (m *ruleMetrics) record(ctx context.Context, rule string, elapsed time.Duration, size int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("rule", rule))
	if m.duration != nil {
		m.duration.Record(ctx, float64(elapsed)/float64(time.Millisecond), attrs)
	}
	if m.results != nil {
		m.results.Record(ctx, int64(size), attrs)
	}
}
