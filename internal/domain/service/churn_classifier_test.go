package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telelink/customer-analytics/internal/domain/service"
)

func testTrees() []service.DecisionTree {
	return []service.DecisionTree{
		{Nodes: []service.TreeNode{
			{Feature: 0, Threshold: 0.5, Left: 1, Right: 2},
			{Leaf: true, Value: 0.2},
			{Leaf: true, Value: 0.8},
		}},
		{Nodes: []service.TreeNode{
			{Leaf: true, Value: 0.4},
		}},
	}
}

func TestChurnClassifier_Predict(t *testing.T) {
	classifier, err := service.NewChurnClassifier(testTrees(), 0.31, 1)
	require.NoError(t, err)

	low, err := classifier.Predict([]float64{0})
	require.NoError(t, err)
	assert.InDelta(t, 0.3, low, 1e-9)

	high, err := classifier.Predict([]float64{1})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, high, 1e-9)
}

func TestChurnClassifier_Predict_InRange(t *testing.T) {
	classifier, err := service.NewChurnClassifier(testTrees(), 0.31, 1)
	require.NoError(t, err)

	for _, v := range []float64{-5, -0.5, 0, 0.5, 1, 5} {
		p, err := classifier.Predict([]float64{v})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestChurnClassifier_Label_TunedThreshold(t *testing.T) {
	classifier, err := service.NewChurnClassifier(testTrees(), 0.31, 1)
	require.NoError(t, err)

	assert.False(t, classifier.Label(0.3))
	assert.True(t, classifier.Label(0.31))
	assert.True(t, classifier.Label(0.6))
	assert.Equal(t, 0.31, classifier.Threshold())
}

func TestChurnClassifier_Predict_WidthMismatch(t *testing.T) {
	classifier, err := service.NewChurnClassifier(testTrees(), 0.31, 1)
	require.NoError(t, err)

	_, err = classifier.Predict([]float64{1, 2})
	assert.Error(t, err)
}

func TestNewChurnClassifier_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		trees     []service.DecisionTree
		threshold float64
	}{
		{"no trees", nil, 0.31},
		{"threshold at zero", testTrees(), 0},
		{"threshold at one", testTrees(), 1},
		{
			"leaf value out of range",
			[]service.DecisionTree{{Nodes: []service.TreeNode{{Leaf: true, Value: 1.5}}}},
			0.31,
		},
		{
			"feature index out of range",
			[]service.DecisionTree{{Nodes: []service.TreeNode{
				{Feature: 7, Threshold: 0.5, Left: 1, Right: 2},
				{Leaf: true, Value: 0.2},
				{Leaf: true, Value: 0.8},
			}}},
			0.31,
		},
		{
			"child index not after parent",
			[]service.DecisionTree{{Nodes: []service.TreeNode{
				{Feature: 0, Threshold: 0.5, Left: 0, Right: 1},
				{Leaf: true, Value: 0.2},
			}}},
			0.31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.NewChurnClassifier(tt.trees, tt.threshold, 1)
			assert.Error(t, err)
		})
	}
}
