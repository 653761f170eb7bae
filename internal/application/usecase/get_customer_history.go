package usecase

import (
	"context"
	"fmt"

	"github.com/telelink/customer-analytics/internal/application/dto"
	"github.com/telelink/customer-analytics/internal/domain/port"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// GetCustomerHistory is the use case for listing a customer's past
// predictions, most recent first.
type GetCustomerHistory struct {
	repo port.PredictionRepository
}

// NewGetCustomerHistory creates a new GetCustomerHistory use case.
func NewGetCustomerHistory(repo port.PredictionRepository) *GetCustomerHistory {
	return &GetCustomerHistory{repo: repo}
}

// Execute fetches a page of predictions for one customer. A non-positive
// limit falls back to the default; the limit is capped.
func (uc *GetCustomerHistory) Execute(ctx context.Context, req dto.CustomerHistoryRequest) (dto.CustomerHistoryResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	predictions, err := uc.repo.FindByCustomerID(ctx, req.CustomerID, limit, offset)
	if err != nil {
		return dto.CustomerHistoryResponse{}, fmt.Errorf("failed to load customer history: %w", err)
	}

	results := make([]dto.PredictionResponse, 0, len(predictions))
	for _, p := range predictions {
		results = append(results, dto.FromModel(p))
	}

	return dto.CustomerHistoryResponse{
		CustomerID:  req.CustomerID,
		Predictions: results,
		Count:       len(results),
	}, nil
}
