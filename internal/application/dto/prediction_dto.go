package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/telelink/customer-analytics/internal/domain/model"
)

// PeriodUsage carries the call metrics for one billing period.
type PeriodUsage struct {
	Minutes float64 `json:"minutes"`
	Calls   int     `json:"calls"`
	Charge  float64 `json:"charge"`
}

// ScoreCustomerRequest is the input DTO for the ScoreCustomer use case.
type ScoreCustomerRequest struct {
	CustomerID           uuid.UUID   `json:"customer_id"`
	AccountLength        int         `json:"account_length"`
	State                string      `json:"state"`
	AreaCode             string      `json:"area_code"`
	InternationalPlan    bool        `json:"international_plan"`
	VoicemailPlan        bool        `json:"voicemail_plan"`
	VoicemailMessages    int         `json:"voicemail_messages"`
	Day                  PeriodUsage `json:"day"`
	Evening              PeriodUsage `json:"evening"`
	Night                PeriodUsage `json:"night"`
	International        PeriodUsage `json:"international"`
	CustomerServiceCalls int         `json:"customer_service_calls"`
}

// Record maps the request to the domain customer record.
func (r ScoreCustomerRequest) Record() model.CustomerRecord {
	return model.CustomerRecord{
		AccountLength:        r.AccountLength,
		State:                r.State,
		AreaCode:             r.AreaCode,
		InternationalPlan:    r.InternationalPlan,
		VoicemailPlan:        r.VoicemailPlan,
		VoicemailMessages:    r.VoicemailMessages,
		Day:                  model.PeriodUsage(r.Day),
		Evening:              model.PeriodUsage(r.Evening),
		Night:                model.PeriodUsage(r.Night),
		International:        model.PeriodUsage(r.International),
		CustomerServiceCalls: r.CustomerServiceCalls,
	}
}

// PredictionResponse is the output DTO returned after scoring.
type PredictionResponse struct {
	ScoredAt         time.Time `json:"scored_at"`
	ID               uuid.UUID `json:"id"`
	CustomerID       uuid.UUID `json:"customer_id"`
	ChurnProbability float64   `json:"churn_probability"`
	RiskLevel        string    `json:"risk_level"`
	ConfidenceScore  float64   `json:"confidence_score"`
	ConfidenceLabel  string    `json:"confidence_label"`
	CLVEstimate      string    `json:"clv_estimate"`
	Recommendation   string    `json:"recommendation"`
}

// GetPredictionRequest is the input DTO for retrieving a stored prediction.
type GetPredictionRequest struct {
	PredictionID uuid.UUID `json:"prediction_id"`
}

// StatisticsResponse is the aggregate view over stored predictions.
type StatisticsResponse struct {
	TotalPredictions int64            `json:"total_predictions"`
	ByRiskLevel      map[string]int64 `json:"by_risk_level"`
	AverageCLV       string           `json:"average_clv"`
}

// CustomerHistoryRequest is the input DTO for listing a customer's past
// predictions.
type CustomerHistoryRequest struct {
	CustomerID uuid.UUID `json:"customer_id"`
	Limit      int       `json:"limit"`
	Offset     int       `json:"offset"`
}

// CustomerHistoryResponse is a page of one customer's predictions, most
// recent first.
type CustomerHistoryResponse struct {
	CustomerID  uuid.UUID            `json:"customer_id"`
	Predictions []PredictionResponse `json:"predictions"`
	Count       int                  `json:"count"`
}

// BatchScoreRequest is the input DTO for the BatchScore use case.
type BatchScoreRequest struct {
	Customers []ScoreCustomerRequest `json:"customers"`
}

// BatchScoreResponse carries the per-customer results of a batch scoring run.
type BatchScoreResponse struct {
	Predictions []PredictionResponse `json:"predictions"`
	Count       int                  `json:"count"`
}

// FromModel maps a domain prediction to the response DTO.
func FromModel(p *model.Prediction) PredictionResponse {
	return PredictionResponse{
		ID:               p.ID(),
		CustomerID:       p.CustomerID(),
		ChurnProbability: p.ChurnProbability(),
		RiskLevel:        p.RiskLevel().String(),
		ConfidenceScore:  p.Confidence(),
		ConfidenceLabel:  ConfidenceLabel(p.Confidence()),
		CLVEstimate:      p.CLVEstimate().String(),
		Recommendation:   p.Recommendation().String(),
		ScoredAt:         p.ScoredAt(),
	}
}

// ConfidenceLabel buckets a confidence score into the reporting labels used
// by the retention dashboards.
func ConfidenceLabel(confidence float64) string {
	switch {
	case confidence >= 0.75:
		return "VERY_HIGH"
	case confidence >= 0.5:
		return "HIGH"
	case confidence >= 0.25:
		return "MODERATE"
	default:
		return "LOW"
	}
}
