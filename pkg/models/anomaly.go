package models

import (
	"encoding/json"
	"time"
)

// Severity buckets a final anomaly score for human consumption.
type Severity string

// Severity levels, lowest to highest.
const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severity thresholds over the final score.
const (
	CriticalThreshold = 0.85
	HighThreshold     = 0.65
	MediumThreshold   = 0.35
	LowThreshold      = 0.15
)

// SeverityFromScore buckets a final score.
func SeverityFromScore(score float64) Severity {
	switch {
	case score >= CriticalThreshold:
		return SeverityCritical
	case score >= HighThreshold:
		return SeverityHigh
	case score >= MediumThreshold:
		return SeverityMedium
	case score >= LowThreshold:
		return SeverityLow
	default:
		return SeverityInfo
	}
}

// Severities lists all buckets, lowest to highest.
func Severities() []Severity {
	return []Severity{SeverityInfo, SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}

// AnomalyReport is the stable wire shape of a persisted anomaly record,
// published to subscribers and returned by the REST API.
type AnomalyReport struct {
	EventID        string    `json:"event_id"`
	RepositoryName string    `json:"repository_name"`
	UserLogin      string    `json:"user_login"`
	EventType      string    `json:"event_type"`
	Timestamp      time.Time `json:"timestamp"`

	BehavioralAnomalyScore     float64 `json:"behavioral_anomaly_score"`
	ContentRiskScore           float64 `json:"content_risk_score"`
	TemporalAnomalyScore       float64 `json:"temporal_anomaly_score"`
	RepositoryCriticalityScore float64 `json:"repository_criticality_score"`
	FinalAnomalyScore          float64 `json:"final_anomaly_score"`
	SeverityLevel              Severity `json:"severity_level"`
	PrimaryMethod              string  `json:"primary_method"`

	BehavioralAnalysis json.RawMessage `json:"behavioral_analysis,omitempty"`
	ContentAnalysis    json.RawMessage `json:"content_analysis,omitempty"`
	TemporalAnalysis   json.RawMessage `json:"temporal_analysis,omitempty"`
	RepositoryContext  json.RawMessage `json:"repository_context,omitempty"`

	HighRiskIndicators []string `json:"high_risk_indicators,omitempty"`
	AISummary          string   `json:"ai_summary,omitempty"`
	Degraded           bool     `json:"degraded,omitempty"`

	DetectionTimestamp time.Time `json:"detection_timestamp"`
}
