package service_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telelink/customer-analytics/internal/domain/service"
)

func TestCLVRegressor_Predict(t *testing.T) {
	regressor, err := service.NewCLVRegressor(10, []float64{2, -3})
	require.NoError(t, err)

	estimate, err := regressor.Predict([]float64{1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 9, estimate, 1e-9)
}

func TestCLVRegressor_Predict_ClampsNegativeToZero(t *testing.T) {
	regressor, err := service.NewCLVRegressor(10, []float64{2, -3})
	require.NoError(t, err)

	estimate, err := regressor.Predict([]float64{-10, 10})
	require.NoError(t, err)
	assert.Equal(t, 0.0, estimate)
}

func TestCLVRegressor_Predict_WidthMismatch(t *testing.T) {
	regressor, err := service.NewCLVRegressor(10, []float64{2, -3})
	require.NoError(t, err)

	_, err = regressor.Predict([]float64{1})
	assert.Error(t, err)
}

func TestNewCLVRegressor_Invalid(t *testing.T) {
	_, err := service.NewCLVRegressor(10, nil)
	assert.Error(t, err)

	_, err = service.NewCLVRegressor(math.NaN(), []float64{1})
	assert.Error(t, err)

	_, err = service.NewCLVRegressor(10, []float64{math.Inf(1)})
	assert.Error(t, err)
}

func TestCLVRegressor_FeatureCount(t *testing.T) {
	regressor, err := service.NewCLVRegressor(0, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, regressor.FeatureCount())
}
