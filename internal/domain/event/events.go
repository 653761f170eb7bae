package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/telelink/customer-analytics/pkg/events"
)

const (
	// EventTypePredictionCompleted is emitted when a customer has been scored.
	EventTypePredictionCompleted = "analytics.prediction.completed"

	// EventTypeHighChurnRiskDetected is emitted when a customer lands in the
	// HIGH risk band, triggering the retention workflow downstream.
	EventTypeHighChurnRiskDetected = "analytics.high_churn_risk.detected"

	aggregateTypePrediction = "Prediction"
)

// PredictionCompleted is published when a churn/CLV prediction has been
// produced for a customer.
type PredictionCompleted struct {
	events.BaseEvent
	PredictionID     uuid.UUID `json:"prediction_id"`
	CustomerID       uuid.UUID `json:"customer_id"`
	ChurnProbability float64   `json:"churn_probability"`
	RiskLevel        string    `json:"risk_level"`
	Confidence       float64   `json:"confidence"`
	CLVEstimate      string    `json:"clv_estimate"`
	Recommendation   string    `json:"recommendation"`
	ScoredAt         time.Time `json:"scored_at"`
}

// NewPredictionCompleted creates a PredictionCompleted event.
func NewPredictionCompleted(
	predictionID, customerID uuid.UUID,
	churnProbability float64,
	riskLevel string,
	confidence float64,
	clvEstimate string,
	recommendation string,
	scoredAt time.Time,
) PredictionCompleted {
	e := PredictionCompleted{
		PredictionID:     predictionID,
		CustomerID:       customerID,
		ChurnProbability: churnProbability,
		RiskLevel:        riskLevel,
		Confidence:       confidence,
		CLVEstimate:      clvEstimate,
		Recommendation:   recommendation,
		ScoredAt:         scoredAt,
	}
	payload, _ := json.Marshal(e)
	e.BaseEvent = events.NewBaseEvent(EventTypePredictionCompleted, predictionID.String(), aggregateTypePrediction, payload)
	return e
}

// HighChurnRiskDetected is published when a prediction lands in the HIGH
// risk band.
type HighChurnRiskDetected struct {
	events.BaseEvent
	PredictionID     uuid.UUID `json:"prediction_id"`
	CustomerID       uuid.UUID `json:"customer_id"`
	ChurnProbability float64   `json:"churn_probability"`
	CLVEstimate      string    `json:"clv_estimate"`
	DetectedAt       time.Time `json:"detected_at"`
}

// NewHighChurnRiskDetected creates a HighChurnRiskDetected event.
func NewHighChurnRiskDetected(
	predictionID, customerID uuid.UUID,
	churnProbability float64,
	clvEstimate string,
	detectedAt time.Time,
) HighChurnRiskDetected {
	e := HighChurnRiskDetected{
		PredictionID:     predictionID,
		CustomerID:       customerID,
		ChurnProbability: churnProbability,
		CLVEstimate:      clvEstimate,
		DetectedAt:       detectedAt,
	}
	payload, _ := json.Marshal(e)
	e.BaseEvent = events.NewBaseEvent(EventTypeHighChurnRiskDetected, predictionID.String(), aggregateTypePrediction, payload)
	return e
}
