package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telelink/customer-analytics/internal/domain/valueobject"
)

func TestRiskLevelFromString(t *testing.T) {
	level, err := valueobject.RiskLevelFromString("MEDIUM")
	require.NoError(t, err)
	assert.True(t, level.Equal(valueobject.RiskLevelMedium))
}

func TestRiskLevelFromString_Invalid(t *testing.T) {
	_, err := valueobject.RiskLevelFromString("SEVERE")
	assert.Error(t, err)
}

func TestRiskLevelRank_Ordering(t *testing.T) {
	assert.Less(t, valueobject.RiskLevelLow.Rank(), valueobject.RiskLevelMedium.Rank())
	assert.Less(t, valueobject.RiskLevelMedium.Rank(), valueobject.RiskLevelHigh.Rank())
}

func TestRiskLevelIsZero(t *testing.T) {
	var level valueobject.RiskLevel
	assert.True(t, level.IsZero())
	assert.False(t, valueobject.RiskLevelLow.IsZero())
}
