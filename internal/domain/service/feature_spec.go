package service

import (
	"fmt"
	"math"
)

// Canonical feature column names. The order of Columns in a FeatureSpec
// determines feature indexes across both models.
const (
	ColAccountLength        = "account_length"
	ColState                = "state"
	ColAreaCode             = "area_code"
	ColInternationalPlan    = "international_plan"
	ColVoicemailPlan        = "voicemail_plan"
	ColVoicemailMessages    = "voicemail_messages"
	ColDayMinutes           = "day_minutes"
	ColDayCalls             = "day_calls"
	ColDayCharge            = "day_charge"
	ColEveningMinutes       = "evening_minutes"
	ColEveningCalls         = "evening_calls"
	ColEveningCharge        = "evening_charge"
	ColNightMinutes         = "night_minutes"
	ColNightCalls           = "night_calls"
	ColNightCharge          = "night_charge"
	ColInternationalMinutes = "international_minutes"
	ColInternationalCalls   = "international_calls"
	ColInternationalCharge  = "international_charge"
	ColCustomerServiceCalls = "customer_service_calls"
)

// Scaling holds the training-time standardization parameters for one column.
// Values are frozen when the models are trained, never recomputed at
// inference time.
type Scaling struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
}

// FeatureSpec is the single, versioned description of the feature encoding
// shared by the churn classifier and the CLV regressor. Both inference paths
// consume views derived from the same spec, so the two models can never
// drift apart in how a record is encoded.
type FeatureSpec struct {
	Version           string             `yaml:"version"`
	Columns           []string           `yaml:"columns"`
	States            map[string]float64 `yaml:"states"`
	AreaCodes         map[string]float64 `yaml:"area_codes"`
	Scaling           map[string]Scaling `yaml:"scaling"`
	ClassifierColumns []string           `yaml:"classifier_columns"`
	RegressorColumns  []string           `yaml:"regressor_columns"`
}

// Validate checks internal consistency of the spec: every view column must
// be a known column, vocabularies must be non-empty, and scaling parameters
// must be finite with a positive standard deviation.
func (s *FeatureSpec) Validate() error {
	if s.Version == "" {
		return fmt.Errorf("feature spec: version is required")
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("feature spec: columns are required")
	}
	if len(s.States) == 0 {
		return fmt.Errorf("feature spec: state vocabulary is empty")
	}
	if len(s.AreaCodes) == 0 {
		return fmt.Errorf("feature spec: area code vocabulary is empty")
	}
	if len(s.ClassifierColumns) == 0 {
		return fmt.Errorf("feature spec: classifier columns are required")
	}
	if len(s.RegressorColumns) == 0 {
		return fmt.Errorf("feature spec: regressor columns are required")
	}

	known := make(map[string]bool, len(s.Columns))
	for _, col := range s.Columns {
		if known[col] {
			return fmt.Errorf("feature spec: duplicate column %q", col)
		}
		known[col] = true
	}
	for _, col := range s.ClassifierColumns {
		if !known[col] {
			return fmt.Errorf("feature spec: classifier column %q is not a known column", col)
		}
	}
	for _, col := range s.RegressorColumns {
		if !known[col] {
			return fmt.Errorf("feature spec: regressor column %q is not a known column", col)
		}
	}
	for col, sc := range s.Scaling {
		if !known[col] {
			return fmt.Errorf("feature spec: scaling for unknown column %q", col)
		}
		if math.IsNaN(sc.Mean) || math.IsInf(sc.Mean, 0) {
			return fmt.Errorf("feature spec: scaling mean for %q is not finite", col)
		}
		if math.IsNaN(sc.StdDev) || math.IsInf(sc.StdDev, 0) || sc.StdDev <= 0 {
			return fmt.Errorf("feature spec: scaling std_dev for %q must be positive", col)
		}
	}

	return nil
}
