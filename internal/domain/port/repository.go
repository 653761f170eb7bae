package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/telelink/customer-analytics/internal/domain/model"
	"github.com/telelink/customer-analytics/pkg/events"
)

// Statistics is the aggregate view over stored predictions.
type Statistics struct {
	TotalPredictions int64
	ByRiskLevel      map[string]int64
	AverageCLV       decimal.Decimal
}

// PredictionRepository defines the persistence port for predictions.
type PredictionRepository interface {
	// Save persists a new or re-scored prediction.
	Save(ctx context.Context, prediction *model.Prediction) error

	// FindByID retrieves a prediction by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Prediction, error)

	// FindByCustomerID retrieves the most recent predictions for a customer.
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*model.Prediction, error)

	// Statistics returns aggregate counts by risk band and the average CLV.
	Statistics(ctx context.Context) (Statistics, error)
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, domainEvents ...events.DomainEvent) error
}
