package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telelink/customer-analytics/internal/domain/valueobject"
)

func TestRecommendationForRiskLevel(t *testing.T) {
	assert.True(t, valueobject.RecommendationForRiskLevel(valueobject.RiskLevelHigh).
		Equal(valueobject.RecommendationImmediateOutreach))
	assert.True(t, valueobject.RecommendationForRiskLevel(valueobject.RiskLevelMedium).
		Equal(valueobject.RecommendationProactiveEngagement))
	assert.True(t, valueobject.RecommendationForRiskLevel(valueobject.RiskLevelLow).
		Equal(valueobject.RecommendationStandardMaintenance))
}

func TestRecommendationForRiskLevel_Stable(t *testing.T) {
	// Same band always yields the same action.
	first := valueobject.RecommendationForRiskLevel(valueobject.RiskLevelHigh)
	for i := 0; i < 10; i++ {
		assert.True(t, first.Equal(valueobject.RecommendationForRiskLevel(valueobject.RiskLevelHigh)))
	}
}

func TestRecommendationFromString(t *testing.T) {
	rec, err := valueobject.RecommendationFromString("PROACTIVE_ENGAGEMENT")
	require.NoError(t, err)
	assert.True(t, rec.Equal(valueobject.RecommendationProactiveEngagement))

	_, err = valueobject.RecommendationFromString("DO_NOTHING")
	assert.Error(t, err)
}
