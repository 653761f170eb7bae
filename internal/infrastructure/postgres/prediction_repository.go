package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/telelink/customer-analytics/internal/domain/model"
	"github.com/telelink/customer-analytics/internal/domain/port"
	"github.com/telelink/customer-analytics/internal/domain/valueobject"
)

// PredictionRepository implements port.PredictionRepository using PostgreSQL.
type PredictionRepository struct {
	pool *pgxpool.Pool
}

// NewPredictionRepository creates a new PostgreSQL-backed prediction repository.
func NewPredictionRepository(pool *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{pool: pool}
}

const predictionColumns = `
	id, customer_id, churn_probability, risk_level, confidence,
	clv_estimate, recommendation, scored_at, version, created_at
`

// Save persists a prediction. Re-scoring a customer inserts a new row; the
// upsert only fires when the same prediction is saved twice.
func (r *PredictionRepository) Save(ctx context.Context, prediction *model.Prediction) error {
	query := `
		INSERT INTO predictions (
			id, customer_id, churn_probability, risk_level, confidence,
			clv_estimate, recommendation, scored_at, version, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			churn_probability = EXCLUDED.churn_probability,
			risk_level = EXCLUDED.risk_level,
			confidence = EXCLUDED.confidence,
			clv_estimate = EXCLUDED.clv_estimate,
			recommendation = EXCLUDED.recommendation,
			scored_at = EXCLUDED.scored_at,
			version = EXCLUDED.version
	`

	_, err := r.pool.Exec(ctx, query,
		prediction.ID(),
		prediction.CustomerID(),
		prediction.ChurnProbability(),
		prediction.RiskLevel().String(),
		prediction.Confidence(),
		prediction.CLVEstimate(),
		prediction.Recommendation().String(),
		prediction.ScoredAt(),
		prediction.Version(),
		prediction.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save prediction: %w", err)
	}

	return nil
}

// FindByID retrieves a prediction by its unique identifier. Returns nil
// when no prediction exists.
func (r *PredictionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Prediction, error) {
	query := `SELECT ` + predictionColumns + ` FROM predictions WHERE id = $1`

	prediction, err := scanPrediction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return prediction, nil
}

// FindByCustomerID retrieves the most recent predictions for a customer.
func (r *PredictionRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*model.Prediction, error) {
	query := `
		SELECT ` + predictionColumns + `
		FROM predictions
		WHERE customer_id = $1
		ORDER BY scored_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var predictions []*model.Prediction
	for rows.Next() {
		prediction, err := scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, prediction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read prediction rows: %w", err)
	}

	return predictions, nil
}

// Statistics returns aggregate counts by risk band and the average CLV.
func (r *PredictionRepository) Statistics(ctx context.Context) (port.Statistics, error) {
	stats := port.Statistics{
		ByRiskLevel: make(map[string]int64),
		AverageCLV:  decimal.Zero,
	}

	rows, err := r.pool.Query(ctx,
		`SELECT risk_level, COUNT(*) FROM predictions GROUP BY risk_level`)
	if err != nil {
		return port.Statistics{}, fmt.Errorf("failed to query risk level counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level string
		var count int64
		if err := rows.Scan(&level, &count); err != nil {
			return port.Statistics{}, fmt.Errorf("failed to scan risk level count: %w", err)
		}
		stats.ByRiskLevel[level] = count
		stats.TotalPredictions += count
	}
	if err := rows.Err(); err != nil {
		return port.Statistics{}, fmt.Errorf("failed to read risk level counts: %w", err)
	}

	if stats.TotalPredictions > 0 {
		var avg decimal.Decimal
		err = r.pool.QueryRow(ctx,
			`SELECT COALESCE(AVG(clv_estimate), 0) FROM predictions`).Scan(&avg)
		if err != nil {
			return port.Statistics{}, fmt.Errorf("failed to query average CLV: %w", err)
		}
		stats.AverageCLV = avg
	}

	return stats, nil
}

func scanPrediction(row pgx.Row) (*model.Prediction, error) {
	var (
		id               uuid.UUID
		customerID       uuid.UUID
		churnProbability float64
		riskLevelStr     string
		confidence       float64
		clvEstimate      decimal.Decimal
		recommendationSt string
		scoredAt         time.Time
		version          int
		createdAt        time.Time
	)

	err := row.Scan(
		&id, &customerID, &churnProbability, &riskLevelStr, &confidence,
		&clvEstimate, &recommendationSt, &scoredAt, &version, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan prediction: %w", err)
	}

	riskLevel, err := valueobject.RiskLevelFromString(riskLevelStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse risk level: %w", err)
	}

	recommendation, err := valueobject.RecommendationFromString(recommendationSt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recommendation: %w", err)
	}

	return model.Reconstruct(
		id, customerID, churnProbability, riskLevel, confidence,
		clvEstimate, recommendation, scoredAt, version, createdAt,
	), nil
}
