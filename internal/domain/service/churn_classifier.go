package service

import (
	"fmt"
	"math"
)

// TreeNode is one node of a trained decision tree. Interior nodes split on
// Feature at Threshold (<= goes left); leaves carry the churn probability
// observed at that leaf during training.
type TreeNode struct {
	Feature   int     `yaml:"feature"`
	Threshold float64 `yaml:"threshold"`
	Left      int     `yaml:"left"`
	Right     int     `yaml:"right"`
	Leaf      bool    `yaml:"leaf"`
	Value     float64 `yaml:"value"`
}

// DecisionTree is a single tree of the churn ensemble. Node 0 is the root.
type DecisionTree struct {
	Nodes []TreeNode `yaml:"nodes"`
}

func (t DecisionTree) predict(features []float64) float64 {
	node := t.Nodes[0]
	for !node.Leaf {
		if features[node.Feature] <= node.Threshold {
			node = t.Nodes[node.Left]
		} else {
			node = t.Nodes[node.Right]
		}
	}
	return node.Value
}

// validate checks structural soundness against the expected feature width.
func (t DecisionTree) validate(featureCount int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("tree has no nodes")
	}
	for i, n := range t.Nodes {
		if n.Leaf {
			if n.Value < 0 || n.Value > 1 || math.IsNaN(n.Value) {
				return fmt.Errorf("node %d: leaf value %f outside [0,1]", i, n.Value)
			}
			continue
		}
		if n.Feature < 0 || n.Feature >= featureCount {
			return fmt.Errorf("node %d: feature index %d out of range", i, n.Feature)
		}
		if math.IsNaN(n.Threshold) || math.IsInf(n.Threshold, 0) {
			return fmt.Errorf("node %d: threshold is not finite", i)
		}
		if n.Left <= i || n.Left >= len(t.Nodes) || n.Right <= i || n.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d: child index out of range", i)
		}
	}
	return nil
}

// ChurnClassifier wraps a trained tree ensemble. The model was trained with
// oversampling of the churn class, and its operating point was tuned against
// that resampled distribution; the tuned decision threshold therefore ships
// with the artifact instead of assuming the 0.5 midpoint.
//
// The classifier is immutable after construction and safe for concurrent use.
type ChurnClassifier struct {
	trees        []DecisionTree
	threshold    float64
	featureCount int
}

// NewChurnClassifier creates a classifier from trained trees. The trees and
// threshold are validated once here; inference assumes a sound model.
func NewChurnClassifier(trees []DecisionTree, threshold float64, featureCount int) (*ChurnClassifier, error) {
	if len(trees) == 0 {
		return nil, fmt.Errorf("churn classifier: at least one tree is required")
	}
	if featureCount <= 0 {
		return nil, fmt.Errorf("churn classifier: feature count must be positive")
	}
	if threshold <= 0 || threshold >= 1 || math.IsNaN(threshold) {
		return nil, fmt.Errorf("churn classifier: decision threshold must be in (0,1), got %f", threshold)
	}
	for i, t := range trees {
		if err := t.validate(featureCount); err != nil {
			return nil, fmt.Errorf("churn classifier: tree %d: %w", i, err)
		}
	}
	return &ChurnClassifier{
		trees:        trees,
		threshold:    threshold,
		featureCount: featureCount,
	}, nil
}

// Predict returns the churn probability for an encoded classifier view as
// the mean of the per-tree leaf probabilities. Deterministic given fixed
// model weights.
func (c *ChurnClassifier) Predict(features []float64) (float64, error) {
	if len(features) != c.featureCount {
		return 0, fmt.Errorf("churn classifier: expected %d features, got %d", c.featureCount, len(features))
	}

	var sum float64
	for _, t := range c.trees {
		sum += t.predict(features)
	}
	return sum / float64(len(c.trees)), nil
}

// Label converts a probability into a binary churn label using the tuned
// operating point, not the naive midpoint.
func (c *ChurnClassifier) Label(probability float64) bool {
	return probability >= c.threshold
}

// Threshold returns the tuned decision threshold.
func (c *ChurnClassifier) Threshold() float64 {
	return c.threshold
}

// FeatureCount returns the expected width of the classifier view.
func (c *ChurnClassifier) FeatureCount() int {
	return c.featureCount
}
