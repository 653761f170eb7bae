package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telelink/customer-analytics/internal/domain/event"
	"github.com/telelink/customer-analytics/internal/domain/model"
	"github.com/telelink/customer-analytics/internal/domain/valueobject"
)

func TestNewPrediction(t *testing.T) {
	customerID := uuid.New()

	p, err := model.NewPrediction(
		customerID, 0.12, valueobject.RiskLevelLow, 0.9,
		decimal.NewFromInt(42000), valueobject.RecommendationStandardMaintenance,
	)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, p.ID())
	assert.Equal(t, customerID, p.CustomerID())
	assert.Equal(t, 0.12, p.ChurnProbability())
	assert.True(t, valueobject.RiskLevelLow.Equal(p.RiskLevel()))
	assert.Equal(t, 0.9, p.Confidence())
	assert.True(t, decimal.NewFromInt(42000).Equal(p.CLVEstimate()))
	assert.Equal(t, 1, p.Version())
	assert.False(t, p.ScoredAt().IsZero())
}

func TestNewPrediction_EmitsCompletedEvent(t *testing.T) {
	p, err := model.NewPrediction(
		uuid.New(), 0.12, valueobject.RiskLevelLow, 0.9,
		decimal.NewFromInt(42000), valueobject.RecommendationStandardMaintenance,
	)
	require.NoError(t, err)

	evts := p.DomainEvents()
	require.Len(t, evts, 1)
	assert.Equal(t, event.EventTypePredictionCompleted, evts[0].EventType())
	assert.Equal(t, p.ID().String(), evts[0].AggregateID())

	// Events are drained on read.
	assert.Empty(t, p.DomainEvents())
}

func TestNewPrediction_HighRiskEmitsAlertEvent(t *testing.T) {
	p, err := model.NewPrediction(
		uuid.New(), 0.72, valueobject.RiskLevelHigh, 0.8,
		decimal.NewFromInt(9000), valueobject.RecommendationImmediateOutreach,
	)
	require.NoError(t, err)

	evts := p.DomainEvents()
	require.Len(t, evts, 2)
	assert.Equal(t, event.EventTypePredictionCompleted, evts[0].EventType())
	assert.Equal(t, event.EventTypeHighChurnRiskDetected, evts[1].EventType())
}

func TestNewPrediction_Invalid(t *testing.T) {
	validCLV := decimal.NewFromInt(1000)

	tests := []struct {
		name           string
		customerID     uuid.UUID
		probability    float64
		riskLevel      valueobject.RiskLevel
		confidence     float64
		clv            decimal.Decimal
		recommendation valueobject.Recommendation
	}{
		{"nil customer", uuid.Nil, 0.5, valueobject.RiskLevelMedium, 0.5, validCLV, valueobject.RecommendationProactiveEngagement},
		{"probability above one", uuid.New(), 1.2, valueobject.RiskLevelHigh, 0.5, validCLV, valueobject.RecommendationImmediateOutreach},
		{"negative probability", uuid.New(), -0.1, valueobject.RiskLevelLow, 0.5, validCLV, valueobject.RecommendationStandardMaintenance},
		{"confidence above one", uuid.New(), 0.5, valueobject.RiskLevelMedium, 1.5, validCLV, valueobject.RecommendationProactiveEngagement},
		{"negative clv", uuid.New(), 0.5, valueobject.RiskLevelMedium, 0.5, decimal.NewFromInt(-1), valueobject.RecommendationProactiveEngagement},
		{"zero risk level", uuid.New(), 0.5, valueobject.RiskLevel{}, 0.5, validCLV, valueobject.RecommendationProactiveEngagement},
		{"zero recommendation", uuid.New(), 0.5, valueobject.RiskLevelMedium, 0.5, validCLV, valueobject.Recommendation{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.NewPrediction(tt.customerID, tt.probability, tt.riskLevel, tt.confidence, tt.clv, tt.recommendation)
			assert.Error(t, err)
		})
	}
}

func TestReconstruct_NoEvents(t *testing.T) {
	p, err := model.NewPrediction(
		uuid.New(), 0.72, valueobject.RiskLevelHigh, 0.8,
		decimal.NewFromInt(9000), valueobject.RecommendationImmediateOutreach,
	)
	require.NoError(t, err)

	rebuilt := model.Reconstruct(
		p.ID(), p.CustomerID(), p.ChurnProbability(), p.RiskLevel(),
		p.Confidence(), p.CLVEstimate(), p.Recommendation(),
		p.ScoredAt(), p.Version(), p.CreatedAt(),
	)

	assert.Equal(t, p.ID(), rebuilt.ID())
	assert.Equal(t, p.ChurnProbability(), rebuilt.ChurnProbability())
	assert.Empty(t, rebuilt.DomainEvents())
}
