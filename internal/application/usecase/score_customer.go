package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/telelink/customer-analytics/internal/application/dto"
	"github.com/telelink/customer-analytics/internal/domain/model"
	"github.com/telelink/customer-analytics/internal/domain/port"
	"github.com/telelink/customer-analytics/internal/domain/service"
)

// ScoreCustomer is the use case for scoring a single customer.
type ScoreCustomer struct {
	repo      port.PredictionRepository
	publisher port.EventPublisher
	pipeline  *service.ScoringPipeline
	metrics   *ScoringMetrics
}

// NewScoreCustomer creates a new ScoreCustomer use case. Metrics may be nil,
// in which case nothing is recorded.
func NewScoreCustomer(
	repo port.PredictionRepository,
	publisher port.EventPublisher,
	pipeline *service.ScoringPipeline,
	metrics *ScoringMetrics,
) *ScoreCustomer {
	return &ScoreCustomer{
		repo:      repo,
		publisher: publisher,
		pipeline:  pipeline,
		metrics:   metrics,
	}
}

// Execute runs the scoring pipeline, creates the prediction aggregate,
// persists it, and publishes the resulting domain events.
func (uc *ScoreCustomer) Execute(ctx context.Context, req dto.ScoreCustomerRequest) (dto.PredictionResponse, error) {
	start := time.Now()

	outcome, err := uc.pipeline.Score(ctx, req.Record())
	if err != nil {
		// Keep ValidationError unwrapped for the presentation layer.
		return dto.PredictionResponse{}, err
	}

	return uc.persist(ctx, req.CustomerID, outcome, time.Since(start))
}

// persist turns a scoring outcome into the stored aggregate, publishes its
// events, and records the scoring metrics. Shared with the batch use case,
// which scores every record before persisting any.
func (uc *ScoreCustomer) persist(ctx context.Context, customerID uuid.UUID, outcome service.ScoreOutcome, elapsed time.Duration) (dto.PredictionResponse, error) {
	prediction, err := model.NewPrediction(
		customerID,
		outcome.ChurnProbability,
		outcome.RiskLevel,
		outcome.Confidence,
		outcome.CLVEstimate,
		outcome.Recommendation,
	)
	if err != nil {
		return dto.PredictionResponse{}, fmt.Errorf("failed to create prediction: %w", err)
	}

	if err := uc.repo.Save(ctx, prediction); err != nil {
		return dto.PredictionResponse{}, fmt.Errorf("failed to save prediction: %w", err)
	}

	evts := prediction.DomainEvents()
	if len(evts) > 0 {
		if err := uc.publisher.Publish(ctx, evts...); err != nil {
			return dto.PredictionResponse{}, fmt.Errorf("failed to publish events: %w", err)
		}
	}

	uc.metrics.recordScore(ctx, outcome.RiskLevel.String(), elapsed)

	return dto.FromModel(prediction), nil
}
