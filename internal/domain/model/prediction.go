package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/telelink/customer-analytics/internal/domain/event"
	"github.com/telelink/customer-analytics/internal/domain/valueobject"
	"github.com/telelink/customer-analytics/pkg/events"
)

// Prediction is the aggregate root for customer scoring results. It is
// created and consumed within a single request; only the model artifacts
// survive across requests.
type Prediction struct {
	scoredAt         time.Time
	createdAt        time.Time
	clvEstimate      decimal.Decimal
	riskLevel        valueobject.RiskLevel
	recommendation   valueobject.Recommendation
	domainEvents     []events.DomainEvent
	churnProbability float64
	confidence       float64
	version          int
	customerID       uuid.UUID
	id               uuid.UUID
}

// NewPrediction creates a scored prediction for a customer. All score
// invariants are enforced here: probability and confidence in [0,1], a
// non-negative CLV estimate, and a set risk level and recommendation.
func NewPrediction(
	customerID uuid.UUID,
	churnProbability float64,
	riskLevel valueobject.RiskLevel,
	confidence float64,
	clvEstimate decimal.Decimal,
	recommendation valueobject.Recommendation,
) (*Prediction, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("customer ID is required")
	}
	if churnProbability < 0 || churnProbability > 1 {
		return nil, fmt.Errorf("churn probability must be in [0,1], got %f", churnProbability)
	}
	if confidence < 0 || confidence > 1 {
		return nil, fmt.Errorf("confidence must be in [0,1], got %f", confidence)
	}
	if clvEstimate.IsNegative() {
		return nil, fmt.Errorf("CLV estimate must be non-negative, got %s", clvEstimate)
	}
	if riskLevel.IsZero() {
		return nil, fmt.Errorf("risk level is required")
	}
	if recommendation.IsZero() {
		return nil, fmt.Errorf("recommendation is required")
	}

	now := time.Now().UTC()

	p := &Prediction{
		id:               uuid.New(),
		customerID:       customerID,
		churnProbability: churnProbability,
		riskLevel:        riskLevel,
		confidence:       confidence,
		clvEstimate:      clvEstimate,
		recommendation:   recommendation,
		scoredAt:         now,
		createdAt:        now,
		version:          1,
	}

	p.domainEvents = append(p.domainEvents, event.NewPredictionCompleted(
		p.id, p.customerID, p.churnProbability, p.riskLevel.String(),
		p.confidence, p.clvEstimate.String(), p.recommendation.String(), p.scoredAt,
	))

	if p.riskLevel.Equal(valueobject.RiskLevelHigh) {
		p.domainEvents = append(p.domainEvents, event.NewHighChurnRiskDetected(
			p.id, p.customerID, p.churnProbability, p.clvEstimate.String(), p.scoredAt,
		))
	}

	return p, nil
}

// Reconstruct rebuilds a Prediction from persisted data (no validation, no events).
func Reconstruct(
	id, customerID uuid.UUID,
	churnProbability float64,
	riskLevel valueobject.RiskLevel,
	confidence float64,
	clvEstimate decimal.Decimal,
	recommendation valueobject.Recommendation,
	scoredAt time.Time,
	version int,
	createdAt time.Time,
) *Prediction {
	return &Prediction{
		id:               id,
		customerID:       customerID,
		churnProbability: churnProbability,
		riskLevel:        riskLevel,
		confidence:       confidence,
		clvEstimate:      clvEstimate,
		recommendation:   recommendation,
		scoredAt:         scoredAt,
		version:          version,
		createdAt:        createdAt,
		domainEvents:     make([]events.DomainEvent, 0),
	}
}

// --- Accessors ---

func (p *Prediction) ID() uuid.UUID                              { return p.id }
func (p *Prediction) CustomerID() uuid.UUID                      { return p.customerID }
func (p *Prediction) ChurnProbability() float64                  { return p.churnProbability }
func (p *Prediction) RiskLevel() valueobject.RiskLevel           { return p.riskLevel }
func (p *Prediction) Confidence() float64                        { return p.confidence }
func (p *Prediction) CLVEstimate() decimal.Decimal               { return p.clvEstimate }
func (p *Prediction) Recommendation() valueobject.Recommendation { return p.recommendation }
func (p *Prediction) ScoredAt() time.Time                        { return p.scoredAt }
func (p *Prediction) Version() int                               { return p.version }
func (p *Prediction) CreatedAt() time.Time                       { return p.createdAt }

// DomainEvents returns all accumulated domain events and clears them.
func (p *Prediction) DomainEvents() []events.DomainEvent {
	evts := p.domainEvents
	p.domainEvents = make([]events.DomainEvent, 0)
	return evts
}
