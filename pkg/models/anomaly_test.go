package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityFromScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected Severity
	}{
		{0.0, SeverityInfo},
		{0.1499, SeverityInfo},
		{0.15, SeverityLow},
		{0.34, SeverityLow},
		{0.35, SeverityMedium},
		{0.64, SeverityMedium},
		{0.65, SeverityHigh},
		{0.84, SeverityHigh},
		{0.85, SeverityCritical},
		{1.0, SeverityCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, SeverityFromScore(tt.score), "score %v", tt.score)
	}
}

func TestSeveritiesOrdered(t *testing.T) {
	s := Severities()
	assert.Equal(t, []Severity{SeverityInfo, SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}, s)
}
