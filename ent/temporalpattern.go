// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgewatch/forgewatch/ent/temporalpattern"
)

// TemporalPattern is the model entity for the TemporalPattern schema.
type TemporalPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PatternType holds the value of the "pattern_type" field.
	PatternType temporalpattern.PatternType `json:"pattern_type,omitempty"`
	// Event that triggered the emission
	EventID string `json:"event_id,omitempty"`
	// RepoName holds the value of the "repo_name" field.
	RepoName string `json:"repo_name,omitempty"`
	// Empty for multi-actor coordination patterns
	ActorLogin string `json:"actor_login,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity float64 `json:"severity,omitempty"`
	// EventCount holds the value of the "event_count" field.
	EventCount int `json:"event_count,omitempty"`
	// ActorCount holds the value of the "actor_count" field.
	ActorCount int `json:"actor_count,omitempty"`
	// WindowStart holds the value of the "window_start" field.
	WindowStart time.Time `json:"window_start,omitempty"`
	// WindowEnd holds the value of the "window_end" field.
	WindowEnd time.Time `json:"window_end,omitempty"`
	// DetectedAt holds the value of the "detected_at" field.
	DetectedAt   time.Time `json:"detected_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TemporalPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case temporalpattern.FieldSeverity:
			values[i] = new(sql.NullFloat64)
		case temporalpattern.FieldID, temporalpattern.FieldEventCount, temporalpattern.FieldActorCount:
			values[i] = new(sql.NullInt64)
		case temporalpattern.FieldPatternType, temporalpattern.FieldEventID, temporalpattern.FieldRepoName, temporalpattern.FieldActorLogin:
			values[i] = new(sql.NullString)
		case temporalpattern.FieldWindowStart, temporalpattern.FieldWindowEnd, temporalpattern.FieldDetectedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TemporalPattern fields.
func (_m *TemporalPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case temporalpattern.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case temporalpattern.FieldPatternType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_type", values[i])
			} else if value.Valid {
				_m.PatternType = temporalpattern.PatternType(value.String)
			}
		case temporalpattern.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case temporalpattern.FieldRepoName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_name", values[i])
			} else if value.Valid {
				_m.RepoName = value.String
			}
		case temporalpattern.FieldActorLogin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_login", values[i])
			} else if value.Valid {
				_m.ActorLogin = value.String
			}
		case temporalpattern.FieldSeverity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.Float64
			}
		case temporalpattern.FieldEventCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_count", values[i])
			} else if value.Valid {
				_m.EventCount = int(value.Int64)
			}
		case temporalpattern.FieldActorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actor_count", values[i])
			} else if value.Valid {
				_m.ActorCount = int(value.Int64)
			}
		case temporalpattern.FieldWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_start", values[i])
			} else if value.Valid {
				_m.WindowStart = value.Time
			}
		case temporalpattern.FieldWindowEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_end", values[i])
			} else if value.Valid {
				_m.WindowEnd = value.Time
			}
		case temporalpattern.FieldDetectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field detected_at", values[i])
			} else if value.Valid {
				_m.DetectedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TemporalPattern.
// This includes values selected through modifiers, order, etc.
func (_m *TemporalPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TemporalPattern.
// Note that you need to call TemporalPattern.Unwrap() before calling this method if this TemporalPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TemporalPattern) Update() *TemporalPatternUpdateOne {
	return NewTemporalPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TemporalPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TemporalPattern) Unwrap() *TemporalPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TemporalPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TemporalPattern) String() string {
	var builder strings.Builder
	builder.WriteString("TemporalPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pattern_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatternType))
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("repo_name=")
	builder.WriteString(_m.RepoName)
	builder.WriteString(", ")
	builder.WriteString("actor_login=")
	builder.WriteString(_m.ActorLogin)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("event_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventCount))
	builder.WriteString(", ")
	builder.WriteString("actor_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActorCount))
	builder.WriteString(", ")
	builder.WriteString("window_start=")
	builder.WriteString(_m.WindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("window_end=")
	builder.WriteString(_m.WindowEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("detected_at=")
	builder.WriteString(_m.DetectedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TemporalPatterns is a parsable slice of TemporalPattern.
type TemporalPatterns []*TemporalPattern
