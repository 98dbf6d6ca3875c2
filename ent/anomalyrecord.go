// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgewatch/forgewatch/ent/anomalyrecord"
)

// AnomalyRecord is the model entity for the AnomalyRecord schema.
type AnomalyRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// RepositoryName holds the value of the "repository_name" field.
	RepositoryName string `json:"repository_name,omitempty"`
	// UserLogin holds the value of the "user_login" field.
	UserLogin string `json:"user_login,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// Upstream event timestamp (UTC)
	EventTimestamp time.Time `json:"event_timestamp,omitempty"`
	// BehavioralAnomalyScore holds the value of the "behavioral_anomaly_score" field.
	BehavioralAnomalyScore float64 `json:"behavioral_anomaly_score,omitempty"`
	// ContentRiskScore holds the value of the "content_risk_score" field.
	ContentRiskScore float64 `json:"content_risk_score,omitempty"`
	// TemporalAnomalyScore holds the value of the "temporal_anomaly_score" field.
	TemporalAnomalyScore float64 `json:"temporal_anomaly_score,omitempty"`
	// RepositoryCriticalityScore holds the value of the "repository_criticality_score" field.
	RepositoryCriticalityScore float64 `json:"repository_criticality_score,omitempty"`
	// FinalAnomalyScore holds the value of the "final_anomaly_score" field.
	FinalAnomalyScore float64 `json:"final_anomaly_score,omitempty"`
	// SeverityLevel holds the value of the "severity_level" field.
	SeverityLevel anomalyrecord.SeverityLevel `json:"severity_level,omitempty"`
	// Detector with the largest weighted contribution
	PrimaryMethod string `json:"primary_method,omitempty"`
	// BehavioralAnalysis holds the value of the "behavioral_analysis" field.
	BehavioralAnalysis json.RawMessage `json:"behavioral_analysis,omitempty"`
	// ContentAnalysis holds the value of the "content_analysis" field.
	ContentAnalysis json.RawMessage `json:"content_analysis,omitempty"`
	// TemporalAnalysis holds the value of the "temporal_analysis" field.
	TemporalAnalysis json.RawMessage `json:"temporal_analysis,omitempty"`
	// RepositoryContext holds the value of the "repository_context" field.
	RepositoryContext json.RawMessage `json:"repository_context,omitempty"`
	// HighRiskIndicators holds the value of the "high_risk_indicators" field.
	HighRiskIndicators []string `json:"high_risk_indicators,omitempty"`
	// AiSummary holds the value of the "ai_summary" field.
	AiSummary string `json:"ai_summary,omitempty"`
	// True when any detector errored or timed out
	Degraded bool `json:"degraded,omitempty"`
	// DetectionTimestamp holds the value of the "detection_timestamp" field.
	DetectionTimestamp time.Time `json:"detection_timestamp,omitempty"`
	selectValues       sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnomalyRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case anomalyrecord.FieldBehavioralAnalysis, anomalyrecord.FieldContentAnalysis, anomalyrecord.FieldTemporalAnalysis, anomalyrecord.FieldRepositoryContext, anomalyrecord.FieldHighRiskIndicators:
			values[i] = new([]byte)
		case anomalyrecord.FieldDegraded:
			values[i] = new(sql.NullBool)
		case anomalyrecord.FieldBehavioralAnomalyScore, anomalyrecord.FieldContentRiskScore, anomalyrecord.FieldTemporalAnomalyScore, anomalyrecord.FieldRepositoryCriticalityScore, anomalyrecord.FieldFinalAnomalyScore:
			values[i] = new(sql.NullFloat64)
		case anomalyrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case anomalyrecord.FieldEventID, anomalyrecord.FieldRepositoryName, anomalyrecord.FieldUserLogin, anomalyrecord.FieldEventType, anomalyrecord.FieldSeverityLevel, anomalyrecord.FieldPrimaryMethod, anomalyrecord.FieldAiSummary:
			values[i] = new(sql.NullString)
		case anomalyrecord.FieldEventTimestamp, anomalyrecord.FieldDetectionTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnomalyRecord fields.
func (_m *AnomalyRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case anomalyrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case anomalyrecord.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case anomalyrecord.FieldRepositoryName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repository_name", values[i])
			} else if value.Valid {
				_m.RepositoryName = value.String
			}
		case anomalyrecord.FieldUserLogin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_login", values[i])
			} else if value.Valid {
				_m.UserLogin = value.String
			}
		case anomalyrecord.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case anomalyrecord.FieldEventTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field event_timestamp", values[i])
			} else if value.Valid {
				_m.EventTimestamp = value.Time
			}
		case anomalyrecord.FieldBehavioralAnomalyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field behavioral_anomaly_score", values[i])
			} else if value.Valid {
				_m.BehavioralAnomalyScore = value.Float64
			}
		case anomalyrecord.FieldContentRiskScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field content_risk_score", values[i])
			} else if value.Valid {
				_m.ContentRiskScore = value.Float64
			}
		case anomalyrecord.FieldTemporalAnomalyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temporal_anomaly_score", values[i])
			} else if value.Valid {
				_m.TemporalAnomalyScore = value.Float64
			}
		case anomalyrecord.FieldRepositoryCriticalityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field repository_criticality_score", values[i])
			} else if value.Valid {
				_m.RepositoryCriticalityScore = value.Float64
			}
		case anomalyrecord.FieldFinalAnomalyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field final_anomaly_score", values[i])
			} else if value.Valid {
				_m.FinalAnomalyScore = value.Float64
			}
		case anomalyrecord.FieldSeverityLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity_level", values[i])
			} else if value.Valid {
				_m.SeverityLevel = anomalyrecord.SeverityLevel(value.String)
			}
		case anomalyrecord.FieldPrimaryMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_method", values[i])
			} else if value.Valid {
				_m.PrimaryMethod = value.String
			}
		case anomalyrecord.FieldBehavioralAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field behavioral_analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BehavioralAnalysis); err != nil {
					return fmt.Errorf("unmarshal field behavioral_analysis: %w", err)
				}
			}
		case anomalyrecord.FieldContentAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContentAnalysis); err != nil {
					return fmt.Errorf("unmarshal field content_analysis: %w", err)
				}
			}
		case anomalyrecord.FieldTemporalAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field temporal_analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TemporalAnalysis); err != nil {
					return fmt.Errorf("unmarshal field temporal_analysis: %w", err)
				}
			}
		case anomalyrecord.FieldRepositoryContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field repository_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RepositoryContext); err != nil {
					return fmt.Errorf("unmarshal field repository_context: %w", err)
				}
			}
		case anomalyrecord.FieldHighRiskIndicators:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field high_risk_indicators", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.HighRiskIndicators); err != nil {
					return fmt.Errorf("unmarshal field high_risk_indicators: %w", err)
				}
			}
		case anomalyrecord.FieldAiSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_summary", values[i])
			} else if value.Valid {
				_m.AiSummary = value.String
			}
		case anomalyrecord.FieldDegraded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field degraded", values[i])
			} else if value.Valid {
				_m.Degraded = value.Bool
			}
		case anomalyrecord.FieldDetectionTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field detection_timestamp", values[i])
			} else if value.Valid {
				_m.DetectionTimestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnomalyRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AnomalyRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnomalyRecord.
// Note that you need to call AnomalyRecord.Unwrap() before calling this method if this AnomalyRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnomalyRecord) Update() *AnomalyRecordUpdateOne {
	return NewAnomalyRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnomalyRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnomalyRecord) Unwrap() *AnomalyRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnomalyRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnomalyRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AnomalyRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("repository_name=")
	builder.WriteString(_m.RepositoryName)
	builder.WriteString(", ")
	builder.WriteString("user_login=")
	builder.WriteString(_m.UserLogin)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("event_timestamp=")
	builder.WriteString(_m.EventTimestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("behavioral_anomaly_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.BehavioralAnomalyScore))
	builder.WriteString(", ")
	builder.WriteString("content_risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentRiskScore))
	builder.WriteString(", ")
	builder.WriteString("temporal_anomaly_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TemporalAnomalyScore))
	builder.WriteString(", ")
	builder.WriteString("repository_criticality_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RepositoryCriticalityScore))
	builder.WriteString(", ")
	builder.WriteString("final_anomaly_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalAnomalyScore))
	builder.WriteString(", ")
	builder.WriteString("severity_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeverityLevel))
	builder.WriteString(", ")
	builder.WriteString("primary_method=")
	builder.WriteString(_m.PrimaryMethod)
	builder.WriteString(", ")
	builder.WriteString("behavioral_analysis=")
	builder.WriteString(fmt.Sprintf("%v", _m.BehavioralAnalysis))
	builder.WriteString(", ")
	builder.WriteString("content_analysis=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentAnalysis))
	builder.WriteString(", ")
	builder.WriteString("temporal_analysis=")
	builder.WriteString(fmt.Sprintf("%v", _m.TemporalAnalysis))
	builder.WriteString(", ")
	builder.WriteString("repository_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.RepositoryContext))
	builder.WriteString(", ")
	builder.WriteString("high_risk_indicators=")
	builder.WriteString(fmt.Sprintf("%v", _m.HighRiskIndicators))
	builder.WriteString(", ")
	builder.WriteString("ai_summary=")
	builder.WriteString(_m.AiSummary)
	builder.WriteString(", ")
	builder.WriteString("degraded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Degraded))
	builder.WriteString(", ")
	builder.WriteString("detection_timestamp=")
	builder.WriteString(_m.DetectionTimestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnomalyRecords is a parsable slice of AnomalyRecord.
type AnomalyRecords []*AnomalyRecord
