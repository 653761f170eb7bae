package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ScoringMetrics holds the instruments recorded per scored customer. A nil
// *ScoringMetrics is valid and records nothing.
type ScoringMetrics struct {
	scored   metric.Int64Counter
	duration metric.Float64Histogram
}

// NewScoringMetrics creates the scoring instruments on the given meter.
func NewScoringMetrics(meter metric.Meter) (*ScoringMetrics, error) {
	scored, err := meter.Int64Counter("predictions_scored",
		metric.WithDescription("Number of customers scored, by risk band"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scored counter: %w", err)
	}

	duration, err := meter.Float64Histogram("scoring_duration",
		metric.WithUnit("s"),
		metric.WithDescription("End-to-end latency of one scoring call"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &ScoringMetrics{
		scored:   scored,
		duration: duration,
	}, nil
}

// recordScore counts one scored customer and records its latency.
func (m *ScoringMetrics) recordScore(ctx context.Context, riskLevel string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("risk_level", riskLevel))
	m.scored.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
}
