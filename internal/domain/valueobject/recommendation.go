package valueobject

import "fmt"

// Recommendation is an immutable value object representing the retention
// action for a scored customer. The set of actions is closed.
type Recommendation struct {
	value string
}

var (
	// RecommendationImmediateOutreach is assigned to HIGH risk customers.
	RecommendationImmediateOutreach = Recommendation{value: "IMMEDIATE_RETENTION_OUTREACH"}

	// RecommendationProactiveEngagement is assigned to MEDIUM risk customers.
	RecommendationProactiveEngagement = Recommendation{value: "PROACTIVE_ENGAGEMENT"}

	// RecommendationStandardMaintenance is assigned to LOW risk customers.
	RecommendationStandardMaintenance = Recommendation{value: "STANDARD_MAINTENANCE"}
)

// RecommendationForRiskLevel maps a risk level to its retention action.
// The mapping is total over the three risk bands; nothing else feeds into it.
func RecommendationForRiskLevel(level RiskLevel) Recommendation {
	switch level {
	case RiskLevelHigh:
		return RecommendationImmediateOutreach
	case RiskLevelMedium:
		return RecommendationProactiveEngagement
	default:
		return RecommendationStandardMaintenance
	}
}

// RecommendationFromString reconstructs a Recommendation from its string
// representation.
func RecommendationFromString(s string) (Recommendation, error) {
	switch s {
	case "IMMEDIATE_RETENTION_OUTREACH":
		return RecommendationImmediateOutreach, nil
	case "PROACTIVE_ENGAGEMENT":
		return RecommendationProactiveEngagement, nil
	case "STANDARD_MAINTENANCE":
		return RecommendationStandardMaintenance, nil
	default:
		return Recommendation{}, fmt.Errorf("invalid recommendation: %s", s)
	}
}

// String returns the string representation.
func (r Recommendation) String() string {
	return r.value
}

// IsZero returns true if the Recommendation has not been set.
func (r Recommendation) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another Recommendation.
func (r Recommendation) Equal(other Recommendation) bool {
	return r.value == other.value
}
