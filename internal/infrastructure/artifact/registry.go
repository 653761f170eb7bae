package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/telelink/customer-analytics/internal/domain/service"
)

// Artifact file names within the artifact directory. The three files are
// produced together by the training pipeline and versioned as a unit.
const (
	FeatureSpecFile = "feature_spec.yaml"
	ChurnModelFile  = "churn_model.yaml"
	CLVModelFile    = "clv_model.yaml"
)

// ModelLoadError reports a missing, corrupt, or version-mismatched model
// artifact at startup. It is fatal: the service must not start with a
// partial or skewed model set, and artifacts are never reloaded mid-request.
type ModelLoadError struct {
	Artifact string
	Err      error
}

// Error implements the error interface.
func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("model artifact %q: %v", e.Artifact, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ModelLoadError) Unwrap() error {
	return e.Err
}

// Registry holds the loaded, immutable model state shared by all concurrent
// scoring calls. It is constructed once at startup and read-only for the
// process lifetime; no locks are needed because nothing is mutated after
// load.
type Registry struct {
	Spec       *service.FeatureSpec
	Encoder    *service.FeatureEncoder
	Classifier *service.ChurnClassifier
	Regressor  *service.CLVRegressor
}

// churnArtifact is the on-disk shape of the churn classifier artifact.
type churnArtifact struct {
	Version            string                 `yaml:"version"`
	FeatureSpecVersion string                 `yaml:"feature_spec_version"`
	DecisionThreshold  float64                `yaml:"decision_threshold"`
	Trees              []service.DecisionTree `yaml:"trees"`
}

// clvArtifact is the on-disk shape of the CLV regressor artifact.
type clvArtifact struct {
	Version            string    `yaml:"version"`
	FeatureSpecVersion string    `yaml:"feature_spec_version"`
	Intercept          float64   `yaml:"intercept"`
	Weights            []float64 `yaml:"weights"`
}

// LoadRegistry reads the three artifact files from dir, validates them, and
// cross-checks that both models were trained against the same feature spec
// version. A mismatch silently corrupts predictions, so it is rejected here.
func LoadRegistry(dir string) (*Registry, error) {
	var spec service.FeatureSpec
	if err := readYAML(filepath.Join(dir, FeatureSpecFile), &spec); err != nil {
		return nil, &ModelLoadError{Artifact: FeatureSpecFile, Err: err}
	}

	encoder, err := service.NewFeatureEncoder(&spec)
	if err != nil {
		return nil, &ModelLoadError{Artifact: FeatureSpecFile, Err: err}
	}

	var churn churnArtifact
	if err := readYAML(filepath.Join(dir, ChurnModelFile), &churn); err != nil {
		return nil, &ModelLoadError{Artifact: ChurnModelFile, Err: err}
	}
	if churn.FeatureSpecVersion != spec.Version {
		return nil, &ModelLoadError{
			Artifact: ChurnModelFile,
			Err: fmt.Errorf("trained against feature spec %q, loaded spec is %q",
				churn.FeatureSpecVersion, spec.Version),
		}
	}

	classifier, err := service.NewChurnClassifier(churn.Trees, churn.DecisionThreshold, len(spec.ClassifierColumns))
	if err != nil {
		return nil, &ModelLoadError{Artifact: ChurnModelFile, Err: err}
	}

	var clv clvArtifact
	if err := readYAML(filepath.Join(dir, CLVModelFile), &clv); err != nil {
		return nil, &ModelLoadError{Artifact: CLVModelFile, Err: err}
	}
	if clv.FeatureSpecVersion != spec.Version {
		return nil, &ModelLoadError{
			Artifact: CLVModelFile,
			Err: fmt.Errorf("trained against feature spec %q, loaded spec is %q",
				clv.FeatureSpecVersion, spec.Version),
		}
	}
	if len(clv.Weights) != len(spec.RegressorColumns) {
		return nil, &ModelLoadError{
			Artifact: CLVModelFile,
			Err: fmt.Errorf("has %d weights, feature spec defines %d regressor columns",
				len(clv.Weights), len(spec.RegressorColumns)),
		}
	}

	regressor, err := service.NewCLVRegressor(clv.Intercept, clv.Weights)
	if err != nil {
		return nil, &ModelLoadError{Artifact: CLVModelFile, Err: err}
	}

	return &Registry{
		Spec:       &spec,
		Encoder:    encoder,
		Classifier: classifier,
		Regressor:  regressor,
	}, nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return nil
}
