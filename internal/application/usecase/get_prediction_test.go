package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telelink/customer-analytics/internal/application/dto"
	"github.com/telelink/customer-analytics/internal/application/usecase"
	"github.com/telelink/customer-analytics/internal/domain/model"
	"github.com/telelink/customer-analytics/internal/domain/valueobject"
)

func TestGetPrediction_Execute(t *testing.T) {
	stored, err := model.NewPrediction(
		uuid.New(), 0.72, valueobject.RiskLevelHigh, 0.8,
		decimal.NewFromInt(9000), valueobject.RecommendationImmediateOutreach,
	)
	require.NoError(t, err)

	repo := &mockPredictionRepo{findResult: stored}
	uc := usecase.NewGetPrediction(repo)

	resp, err := uc.Execute(context.Background(), dto.GetPredictionRequest{PredictionID: stored.ID()})
	require.NoError(t, err)

	assert.Equal(t, stored.ID(), resp.ID)
	assert.Equal(t, "HIGH", resp.RiskLevel)
	assert.Equal(t, "9000", resp.CLVEstimate)
	assert.Equal(t, "VERY_HIGH", resp.ConfidenceLabel)
}

func TestGetPrediction_Execute_NotFound(t *testing.T) {
	uc := usecase.NewGetPrediction(&mockPredictionRepo{})

	_, err := uc.Execute(context.Background(), dto.GetPredictionRequest{PredictionID: uuid.New()})
	assert.ErrorIs(t, err, usecase.ErrPredictionNotFound)
}

func TestGetPrediction_Execute_RepositoryFailure(t *testing.T) {
	uc := usecase.NewGetPrediction(&mockPredictionRepo{findErr: fmt.Errorf("connection refused")})

	_, err := uc.Execute(context.Background(), dto.GetPredictionRequest{PredictionID: uuid.New()})
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrPredictionNotFound)
}
