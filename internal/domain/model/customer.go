package model

import (
	"fmt"
	"math"
)

// ValidationError reports a malformed, missing, or out-of-vocabulary input
// field. It is recoverable per request and never affects process state.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// PeriodUsage holds the call metrics for one billing period
// (day, evening, night, or international).
type PeriodUsage struct {
	Minutes float64
	Calls   int
	Charge  float64
}

// CustomerRecord is the immutable input to the scoring pipeline, one per
// request. Categorical fields must belong to the vocabulary frozen at
// training time; that check is owned by the feature encoder.
type CustomerRecord struct {
	AccountLength        int
	State                string
	AreaCode             string
	InternationalPlan    bool
	VoicemailPlan        bool
	VoicemailMessages    int
	Day                  PeriodUsage
	Evening              PeriodUsage
	Night                PeriodUsage
	International        PeriodUsage
	CustomerServiceCalls int
}

// Validate checks the structural invariants of the record: every numeric
// field must be finite and non-negative, and the categorical codes must be
// present. Returns a *ValidationError describing the first violation.
func (r CustomerRecord) Validate() error {
	if r.AccountLength < 0 {
		return NewValidationError("account_length", "must be non-negative")
	}
	if r.State == "" {
		return NewValidationError("state", "is required")
	}
	if r.AreaCode == "" {
		return NewValidationError("area_code", "is required")
	}
	if r.VoicemailMessages < 0 {
		return NewValidationError("voicemail_messages", "must be non-negative")
	}
	if r.CustomerServiceCalls < 0 {
		return NewValidationError("customer_service_calls", "must be non-negative")
	}

	periods := []struct {
		name  string
		usage PeriodUsage
	}{
		{"day", r.Day},
		{"evening", r.Evening},
		{"night", r.Night},
		{"international", r.International},
	}
	for _, p := range periods {
		if err := validateUsage(p.name, p.usage); err != nil {
			return err
		}
	}

	return nil
}

func validateUsage(period string, u PeriodUsage) error {
	if math.IsNaN(u.Minutes) || math.IsInf(u.Minutes, 0) || u.Minutes < 0 {
		return NewValidationError(period+"_minutes", "must be finite and non-negative")
	}
	if u.Calls < 0 {
		return NewValidationError(period+"_calls", "must be non-negative")
	}
	if math.IsNaN(u.Charge) || math.IsInf(u.Charge, 0) || u.Charge < 0 {
		return NewValidationError(period+"_charge", "must be finite and non-negative")
	}
	return nil
}
