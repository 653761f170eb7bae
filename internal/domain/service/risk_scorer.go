package service

import (
	"fmt"
	"math"

	"github.com/telelink/customer-analytics/internal/domain/valueobject"
)

// RiskBands holds the cut points partitioning [0,1] into the three risk
// bands. Probabilities at or below MediumCut are LOW, above HighCut are
// HIGH, and MEDIUM in between. They are configuration, re-tunable without
// touching the scoring algorithm.
type RiskBands struct {
	MediumCut float64
	HighCut   float64
}

// DefaultRiskBands returns the cut points the deployed models were validated
// against.
func DefaultRiskBands() RiskBands {
	return RiskBands{MediumCut: 0.2, HighCut: 0.4}
}

// Validate checks that the cut points form three non-empty, contiguous bands.
func (b RiskBands) Validate() error {
	if math.IsNaN(b.MediumCut) || math.IsNaN(b.HighCut) {
		return fmt.Errorf("risk bands: cut points must be finite")
	}
	if b.MediumCut <= 0 || b.HighCut >= 1 || b.MediumCut >= b.HighCut {
		return fmt.Errorf("risk bands: require 0 < medium cut < high cut < 1, got %f and %f", b.MediumCut, b.HighCut)
	}
	return nil
}

// RiskScorer maps a churn probability to a risk band and a confidence score.
// Immutable after construction, safe for concurrent use.
type RiskScorer struct {
	bands RiskBands

	// halfBand is half the width of the narrowest band; a probability at
	// least this far from every boundary gets full confidence.
	halfBand float64
}

// NewRiskScorer creates a scorer for the given bands.
func NewRiskScorer(bands RiskBands) (*RiskScorer, error) {
	if err := bands.Validate(); err != nil {
		return nil, err
	}

	narrowest := math.Min(bands.MediumCut, math.Min(bands.HighCut-bands.MediumCut, 1-bands.HighCut))

	return &RiskScorer{
		bands:    bands,
		halfBand: narrowest / 2,
	}, nil
}

// Score derives the risk band and confidence for a churn probability.
// Confidence is the distance to the nearest band boundary, normalized so
// that it is 0 exactly on a boundary and saturates at 1 half a band away:
// monotonic and symmetric around each boundary, maximal at 0 and 1.
func (s *RiskScorer) Score(probability float64) (valueobject.RiskLevel, float64, error) {
	if probability < 0 || probability > 1 || math.IsNaN(probability) {
		return valueobject.RiskLevel{}, 0, fmt.Errorf("risk scorer: probability must be in [0,1], got %f", probability)
	}

	var level valueobject.RiskLevel
	switch {
	case probability > s.bands.HighCut:
		level = valueobject.RiskLevelHigh
	case probability > s.bands.MediumCut:
		level = valueobject.RiskLevelMedium
	default:
		level = valueobject.RiskLevelLow
	}

	boundaryDist := math.Min(
		math.Abs(probability-s.bands.MediumCut),
		math.Abs(probability-s.bands.HighCut),
	)
	confidence := math.Min(1, boundaryDist/s.halfBand)

	return level, confidence, nil
}

// Bands returns the configured cut points.
func (s *RiskScorer) Bands() RiskBands {
	return s.bands
}
