package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/telelink/customer-analytics/internal/application/dto"
	"github.com/telelink/customer-analytics/internal/domain/service"
)

// defaultBatchConcurrency bounds how many customers are scored in parallel
// within one batch request.
const defaultBatchConcurrency = 8

// BatchScore is the use case for scoring many customers in one request.
type BatchScore struct {
	score       *ScoreCustomer
	concurrency int
}

// NewBatchScore creates a new BatchScore use case. A non-positive
// concurrency falls back to the default.
func NewBatchScore(score *ScoreCustomer, concurrency int) *BatchScore {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}
	return &BatchScore{
		score:       score,
		concurrency: concurrency,
	}
}

// Execute scores every customer in the batch with bounded concurrency.
// Scoring is side-effect-free and runs first for the whole batch; nothing
// is persisted or published until every record has scored cleanly, so a
// validation or model failure anywhere leaves no partial writes. Results
// are returned in request order.
func (uc *BatchScore) Execute(ctx context.Context, req dto.BatchScoreRequest) (dto.BatchScoreResponse, error) {
	if len(req.Customers) == 0 {
		return dto.BatchScoreResponse{}, fmt.Errorf("batch score: at least one customer is required")
	}

	outcomes := make([]service.ScoreOutcome, len(req.Customers))
	elapsed := make([]time.Duration, len(req.Customers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for i, customer := range req.Customers {
		g.Go(func() error {
			start := time.Now()
			outcome, err := uc.score.pipeline.Score(gctx, customer.Record())
			if err != nil {
				return fmt.Errorf("customer %s: %w", customer.CustomerID, err)
			}
			outcomes[i] = outcome
			elapsed[i] = time.Since(start)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return dto.BatchScoreResponse{}, err
	}

	results := make([]dto.PredictionResponse, len(req.Customers))
	for i, customer := range req.Customers {
		resp, err := uc.score.persist(ctx, customer.CustomerID, outcomes[i], elapsed[i])
		if err != nil {
			return dto.BatchScoreResponse{}, fmt.Errorf("customer %s: %w", customer.CustomerID, err)
		}
		results[i] = resp
	}

	return dto.BatchScoreResponse{
		Predictions: results,
		Count:       len(results),
	}, nil
}
