package service

import (
	"fmt"
	"math"
)

// CLVRegressor wraps a trained linear model over the monetary feature view.
// Immutable after construction, safe for concurrent use.
type CLVRegressor struct {
	intercept float64
	weights   []float64
}

// NewCLVRegressor creates a regressor from trained coefficients.
func NewCLVRegressor(intercept float64, weights []float64) (*CLVRegressor, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("clv regressor: at least one weight is required")
	}
	if math.IsNaN(intercept) || math.IsInf(intercept, 0) {
		return nil, fmt.Errorf("clv regressor: intercept is not finite")
	}
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("clv regressor: weight %d is not finite", i)
		}
	}
	return &CLVRegressor{
		intercept: intercept,
		weights:   weights,
	}, nil
}

// Predict returns the estimated customer lifetime value for an encoded
// regressor view. Raw regression output may be negative for low-usage
// customers; lifetime value cannot be, so negative predictions are clamped
// to exactly zero. The clamp is part of the contract, not an error.
func (r *CLVRegressor) Predict(features []float64) (float64, error) {
	if len(features) != len(r.weights) {
		return 0, fmt.Errorf("clv regressor: expected %d features, got %d", len(r.weights), len(features))
	}

	estimate := r.intercept
	for i, w := range r.weights {
		estimate += w * features[i]
	}

	if estimate < 0 {
		return 0, nil
	}
	return estimate, nil
}

// FeatureCount returns the expected width of the regressor view.
func (r *CLVRegressor) FeatureCount() int {
	return len(r.weights)
}
