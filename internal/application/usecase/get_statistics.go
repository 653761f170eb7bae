package usecase

import (
	"context"
	"fmt"

	"github.com/telelink/customer-analytics/internal/application/dto"
	"github.com/telelink/customer-analytics/internal/domain/port"
)

// GetStatistics is the use case for the aggregate reporting view.
type GetStatistics struct {
	repo port.PredictionRepository
}

// NewGetStatistics creates a new GetStatistics use case.
func NewGetStatistics(repo port.PredictionRepository) *GetStatistics {
	return &GetStatistics{repo: repo}
}

// Execute returns prediction counts by risk band and the average CLV.
func (uc *GetStatistics) Execute(ctx context.Context) (dto.StatisticsResponse, error) {
	stats, err := uc.repo.Statistics(ctx)
	if err != nil {
		return dto.StatisticsResponse{}, fmt.Errorf("failed to load statistics: %w", err)
	}

	return dto.StatisticsResponse{
		TotalPredictions: stats.TotalPredictions,
		ByRiskLevel:      stats.ByRiskLevel,
		AverageCLV:       stats.AverageCLV.String(),
	}, nil
}
