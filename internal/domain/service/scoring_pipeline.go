package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/telelink/customer-analytics/internal/domain/model"
	"github.com/telelink/customer-analytics/internal/domain/valueobject"
)

// ScoreOutcome is the joined result of one scoring call.
type ScoreOutcome struct {
	ChurnProbability float64
	RiskLevel        valueobject.RiskLevel
	Confidence       float64
	CLVEstimate      decimal.Decimal
	Recommendation   valueobject.Recommendation
}

// ScoringPipeline composes the feature encoder, the two model wrappers, the
// risk scorer, and the recommendation mapping into one request-scoped
// transaction. Every component it holds is immutable, so one pipeline is
// shared by all concurrent requests without coordination.
type ScoringPipeline struct {
	encoder    *FeatureEncoder
	classifier *ChurnClassifier
	regressor  *CLVRegressor
	scorer     *RiskScorer
}

// NewScoringPipeline wires the pipeline and checks that the encoder's views
// match the widths the models were trained on.
func NewScoringPipeline(
	encoder *FeatureEncoder,
	classifier *ChurnClassifier,
	regressor *CLVRegressor,
	scorer *RiskScorer,
) (*ScoringPipeline, error) {
	if encoder == nil || classifier == nil || regressor == nil || scorer == nil {
		return nil, fmt.Errorf("scoring pipeline: all components are required")
	}
	return &ScoringPipeline{
		encoder:    encoder,
		classifier: classifier,
		regressor:  regressor,
		scorer:     scorer,
	}, nil
}

// Score runs one customer record through the full pipeline: encode once,
// run both inferences concurrently, band the classifier output, derive the
// recommendation from the band, and pass the CLV estimate through. The two
// inferences are joined; a failure in either aborts the call with no
// partial result.
func (p *ScoringPipeline) Score(ctx context.Context, rec model.CustomerRecord) (ScoreOutcome, error) {
	vector, err := p.encoder.Encode(rec)
	if err != nil {
		return ScoreOutcome{}, err
	}

	var (
		probability float64
		clvEstimate float64
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		probability, err = p.classifier.Predict(vector.ClassifierView())
		return err
	})
	g.Go(func() error {
		var err error
		clvEstimate, err = p.regressor.Predict(vector.RegressorView())
		return err
	})
	if err := g.Wait(); err != nil {
		return ScoreOutcome{}, fmt.Errorf("scoring pipeline: %w", err)
	}

	level, confidence, err := p.scorer.Score(probability)
	if err != nil {
		return ScoreOutcome{}, fmt.Errorf("scoring pipeline: %w", err)
	}

	return ScoreOutcome{
		ChurnProbability: probability,
		RiskLevel:        level,
		Confidence:       confidence,
		CLVEstimate:      decimal.NewFromFloat(clvEstimate),
		Recommendation:   valueobject.RecommendationForRiskLevel(level),
	}, nil
}

// SpecVersion reports the feature spec version the pipeline encodes with.
func (p *ScoringPipeline) SpecVersion() string {
	return p.encoder.SpecVersion()
}
