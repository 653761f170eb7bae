package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/telelink/customer-analytics/internal/application/dto"
	"github.com/telelink/customer-analytics/internal/application/usecase"
	"github.com/telelink/customer-analytics/internal/domain/model"
)

// PredictHandler exposes the scoring pipeline over HTTP.
type PredictHandler struct {
	score   *usecase.ScoreCustomer
	batch   *usecase.BatchScore
	get     *usecase.GetPrediction
	history *usecase.GetCustomerHistory
	stats   *usecase.GetStatistics
	logger  *slog.Logger
}

// NewPredictHandler creates a new prediction HTTP handler.
func NewPredictHandler(
	score *usecase.ScoreCustomer,
	batch *usecase.BatchScore,
	get *usecase.GetPrediction,
	history *usecase.GetCustomerHistory,
	stats *usecase.GetStatistics,
	logger *slog.Logger,
) *PredictHandler {
	return &PredictHandler{
		score:   score,
		batch:   batch,
		get:     get,
		history: history,
		stats:   stats,
		logger:  logger,
	}
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// RegisterRoutes registers prediction endpoints on the provided ServeMux.
func (h *PredictHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /predict", h.Predict)
	mux.HandleFunc("POST /batch-predict", h.BatchPredict)
	mux.HandleFunc("GET /predictions/{id}", h.GetPrediction)
	mux.HandleFunc("GET /customers/{id}/predictions", h.CustomerHistory)
	mux.HandleFunc("GET /stats", h.Stats)
}

// Predict scores a single customer.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req dto.ScoreCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: "malformed request body"})
		return
	}

	resp, err := h.score.Execute(r.Context(), req)
	if err != nil {
		h.writeScoringError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// BatchPredict scores multiple customers in one request.
func (h *PredictHandler) BatchPredict(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: "malformed request body"})
		return
	}

	resp, err := h.batch.Execute(r.Context(), req)
	if err != nil {
		h.writeScoringError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetPrediction returns a stored prediction by ID.
func (h *PredictHandler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: "invalid prediction id"})
		return
	}

	resp, err := h.get.Execute(r.Context(), dto.GetPredictionRequest{PredictionID: id})
	if err != nil {
		if errors.Is(err, usecase.ErrPredictionNotFound) {
			writeError(w, http.StatusNotFound, ErrorResponse{Error: "prediction not found"})
			return
		}
		h.logger.Error("failed to load prediction", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// CustomerHistory lists a customer's predictions, most recent first.
func (h *PredictHandler) CustomerHistory(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: "invalid customer id"})
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: "offset must be an integer"})
		return
	}

	resp, err := h.history.Execute(r.Context(), dto.CustomerHistoryRequest{
		CustomerID: customerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		h.logger.Error("failed to load customer history", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Stats returns aggregate prediction statistics.
func (h *PredictHandler) Stats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.stats.Execute(r.Context())
	if err != nil {
		h.logger.Error("failed to load statistics", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeScoringError maps pipeline failures to HTTP statuses. Validation
// failures are the caller's to fix; anything else is server-side.
func (h *PredictHandler) writeScoringError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: validationErr.Error(),
			Field: validationErr.Field,
		})
		return
	}

	h.logger.ErrorContext(r.Context(), "scoring failed", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// queryInt parses an optional integer query parameter. A missing or empty
// parameter is zero; a malformed one is an error.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, body ErrorResponse) {
	writeJSON(w, status, body)
}
