package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telelink/customer-analytics/internal/application/dto"
)

func TestConfidenceLabel(t *testing.T) {
	tests := []struct {
		confidence float64
		want       string
	}{
		{1, "VERY_HIGH"},
		{0.75, "VERY_HIGH"},
		{0.74, "HIGH"},
		{0.5, "HIGH"},
		{0.49, "MODERATE"},
		{0.25, "MODERATE"},
		{0.24, "LOW"},
		{0, "LOW"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, dto.ConfidenceLabel(tt.confidence), "confidence %f", tt.confidence)
	}
}
