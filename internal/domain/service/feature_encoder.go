package service

import (
	"fmt"

	"github.com/telelink/customer-analytics/internal/domain/model"
)

// FeatureVector holds the encoded views of one customer record. It exists
// only for the duration of one scoring call and is owned by the invocation
// that created it.
type FeatureVector struct {
	classifier []float64
	regressor  []float64
}

// ClassifierView returns the feature subset consumed by the churn classifier.
func (v FeatureVector) ClassifierView() []float64 {
	return v.classifier
}

// RegressorView returns the feature subset consumed by the CLV regressor.
func (v FeatureVector) RegressorView() []float64 {
	return v.regressor
}

// FeatureEncoder is a deterministic, side-effect-free transform from a raw
// customer record to the feature views expected by the trained models. It
// reproduces exactly the encoding used at training time: the categorical
// vocabularies, the boolean-to-{0,1} mapping, and the frozen standardization
// parameters all come from the FeatureSpec.
type FeatureEncoder struct {
	spec *FeatureSpec
}

// NewFeatureEncoder creates an encoder for the given spec. The spec is
// validated once here so Encode never has to re-check it.
func NewFeatureEncoder(spec *FeatureSpec) (*FeatureEncoder, error) {
	if spec == nil {
		return nil, fmt.Errorf("feature spec is required")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &FeatureEncoder{spec: spec}, nil
}

// SpecVersion returns the version of the feature spec the encoder was built
// with.
func (e *FeatureEncoder) SpecVersion() string {
	return e.spec.Version
}

// Encode validates the record and produces both model views from a single
// pass. An unseen category is an encoding error, never a silent default:
// guessing a value would invisibly bias both models.
func (e *FeatureEncoder) Encode(rec model.CustomerRecord) (FeatureVector, error) {
	if err := rec.Validate(); err != nil {
		return FeatureVector{}, err
	}

	raw := make(map[string]float64, len(e.spec.Columns))
	for _, col := range e.spec.Columns {
		value, err := e.rawValue(col, rec)
		if err != nil {
			return FeatureVector{}, err
		}
		raw[col] = value
	}

	return FeatureVector{
		classifier: e.view(e.spec.ClassifierColumns, raw),
		regressor:  e.view(e.spec.RegressorColumns, raw),
	}, nil
}

// rawValue maps one spec column to its unscaled numeric value.
func (e *FeatureEncoder) rawValue(col string, rec model.CustomerRecord) (float64, error) {
	switch col {
	case ColAccountLength:
		return float64(rec.AccountLength), nil
	case ColState:
		encoded, ok := e.spec.States[rec.State]
		if !ok {
			return 0, model.NewValidationError("state", fmt.Sprintf("unknown state code %q", rec.State))
		}
		return encoded, nil
	case ColAreaCode:
		encoded, ok := e.spec.AreaCodes[rec.AreaCode]
		if !ok {
			return 0, model.NewValidationError("area_code", fmt.Sprintf("unknown area code %q", rec.AreaCode))
		}
		return encoded, nil
	case ColInternationalPlan:
		return boolToFloat(rec.InternationalPlan), nil
	case ColVoicemailPlan:
		return boolToFloat(rec.VoicemailPlan), nil
	case ColVoicemailMessages:
		return float64(rec.VoicemailMessages), nil
	case ColDayMinutes:
		return rec.Day.Minutes, nil
	case ColDayCalls:
		return float64(rec.Day.Calls), nil
	case ColDayCharge:
		return rec.Day.Charge, nil
	case ColEveningMinutes:
		return rec.Evening.Minutes, nil
	case ColEveningCalls:
		return float64(rec.Evening.Calls), nil
	case ColEveningCharge:
		return rec.Evening.Charge, nil
	case ColNightMinutes:
		return rec.Night.Minutes, nil
	case ColNightCalls:
		return float64(rec.Night.Calls), nil
	case ColNightCharge:
		return rec.Night.Charge, nil
	case ColInternationalMinutes:
		return rec.International.Minutes, nil
	case ColInternationalCalls:
		return float64(rec.International.Calls), nil
	case ColInternationalCharge:
		return rec.International.Charge, nil
	case ColCustomerServiceCalls:
		return float64(rec.CustomerServiceCalls), nil
	default:
		return 0, fmt.Errorf("feature encoder: unsupported column %q", col)
	}
}

// view selects and standardizes the columns for one model.
func (e *FeatureEncoder) view(columns []string, raw map[string]float64) []float64 {
	out := make([]float64, len(columns))
	for i, col := range columns {
		value := raw[col]
		if sc, ok := e.spec.Scaling[col]; ok {
			value = (value - sc.Mean) / sc.StdDev
		}
		out[i] = value
	}
	return out
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
