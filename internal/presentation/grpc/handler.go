package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/telelink/customer-analytics/internal/application/dto"
	"github.com/telelink/customer-analytics/internal/application/usecase"
	"github.com/telelink/customer-analytics/internal/domain/model"
)

// Compile-time assertion that AnalyticsHandler implements CustomerAnalyticsServer.
var _ CustomerAnalyticsServer = (*AnalyticsHandler)(nil)

// AnalyticsHandler implements the gRPC CustomerAnalyticsServer interface.
type AnalyticsHandler struct {
	UnimplementedCustomerAnalyticsServer
	scoreCustomer *usecase.ScoreCustomer
	getPrediction *usecase.GetPrediction
	logger        *slog.Logger
}

// NewAnalyticsHandler creates a new gRPC handler.
func NewAnalyticsHandler(
	scoreCustomer *usecase.ScoreCustomer,
	getPrediction *usecase.GetPrediction,
	logger *slog.Logger,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		scoreCustomer: scoreCustomer,
		getPrediction: getPrediction,
		logger:        logger,
	}
}

// Proto-aligned request/response message types.

// PeriodUsageMsg represents the proto PeriodUsage message.
type PeriodUsageMsg struct {
	Minutes float64 `json:"minutes"`
	Calls   int32   `json:"calls"`
	Charge  float64 `json:"charge"`
}

// ScoreCustomerRequest represents the proto ScoreCustomerRequest message.
type ScoreCustomerRequest struct {
	CustomerID           string          `json:"customer_id"`
	AccountLength        int32           `json:"account_length"`
	State                string          `json:"state"`
	AreaCode             string          `json:"area_code"`
	InternationalPlan    bool            `json:"international_plan"`
	VoicemailPlan        bool            `json:"voicemail_plan"`
	VoicemailMessages    int32           `json:"voicemail_messages"`
	Day                  *PeriodUsageMsg `json:"day"`
	Evening              *PeriodUsageMsg `json:"evening"`
	Night                *PeriodUsageMsg `json:"night"`
	International        *PeriodUsageMsg `json:"international"`
	CustomerServiceCalls int32           `json:"customer_service_calls"`
}

// PredictionMsg represents the proto Prediction message.
type PredictionMsg struct {
	ID               string  `json:"id"`
	CustomerID       string  `json:"customer_id"`
	ChurnProbability float64 `json:"churn_probability"`
	RiskLevel        string  `json:"risk_level"`
	ConfidenceScore  float64 `json:"confidence_score"`
	CLVEstimate      string  `json:"clv_estimate"`
	Recommendation   string  `json:"recommendation"`
}

// ScoreCustomerResponse represents the proto ScoreCustomerResponse message.
type ScoreCustomerResponse struct {
	Prediction *PredictionMsg `json:"prediction"`
}

// GetPredictionRequest represents the proto GetPredictionRequest message.
type GetPredictionRequest struct {
	ID string `json:"id"`
}

// GetPredictionResponse represents the proto GetPredictionResponse message.
type GetPredictionResponse struct {
	Prediction *PredictionMsg `json:"prediction"`
}

// ScoreCustomer handles a customer scoring request.
func (h *AnalyticsHandler) ScoreCustomer(ctx context.Context, req *ScoreCustomerRequest) (*ScoreCustomerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid customer_id")
	}

	resp, err := h.scoreCustomer.Execute(ctx, dto.ScoreCustomerRequest{
		CustomerID:           customerID,
		AccountLength:        int(req.AccountLength),
		State:                req.State,
		AreaCode:             req.AreaCode,
		InternationalPlan:    req.InternationalPlan,
		VoicemailPlan:        req.VoicemailPlan,
		VoicemailMessages:    int(req.VoicemailMessages),
		Day:                  usageFromMsg(req.Day),
		Evening:              usageFromMsg(req.Evening),
		Night:                usageFromMsg(req.Night),
		International:        usageFromMsg(req.International),
		CustomerServiceCalls: int(req.CustomerServiceCalls),
	})
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			return nil, status.Error(codes.InvalidArgument, validationErr.Error())
		}
		h.logger.ErrorContext(ctx, "scoring failed", slog.String("error", err.Error()))
		return nil, status.Error(codes.Internal, "failed to score customer")
	}

	return &ScoreCustomerResponse{Prediction: predictionToMsg(resp)}, nil
}

// GetPrediction handles a prediction lookup request.
func (h *AnalyticsHandler) GetPrediction(ctx context.Context, req *GetPredictionRequest) (*GetPredictionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid prediction id")
	}

	resp, err := h.getPrediction.Execute(ctx, dto.GetPredictionRequest{PredictionID: id})
	if err != nil {
		if errors.Is(err, usecase.ErrPredictionNotFound) {
			return nil, status.Error(codes.NotFound, "prediction not found")
		}
		h.logger.ErrorContext(ctx, "failed to load prediction", slog.String("error", err.Error()))
		return nil, status.Error(codes.Internal, "failed to load prediction")
	}

	return &GetPredictionResponse{Prediction: predictionToMsg(resp)}, nil
}

func usageFromMsg(msg *PeriodUsageMsg) dto.PeriodUsage {
	if msg == nil {
		return dto.PeriodUsage{}
	}
	return dto.PeriodUsage{
		Minutes: msg.Minutes,
		Calls:   int(msg.Calls),
		Charge:  msg.Charge,
	}
}

func predictionToMsg(resp dto.PredictionResponse) *PredictionMsg {
	return &PredictionMsg{
		ID:               resp.ID.String(),
		CustomerID:       resp.CustomerID.String(),
		ChurnProbability: resp.ChurnProbability,
		RiskLevel:        resp.RiskLevel,
		ConfidenceScore:  resp.ConfidenceScore,
		CLVEstimate:      resp.CLVEstimate,
		Recommendation:   resp.Recommendation,
	}
}
