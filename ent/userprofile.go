// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgewatch/forgewatch/ent/userprofile"
)

// UserProfile is the model entity for the UserProfile schema.
type UserProfile struct {
	config `json:"-"`
	// ID of the ent.
	// Actor login
	ID string `json:"id,omitempty"`
	// EWMA mean vector (10 dims)
	MeanFeatures []float64 `json:"mean_features,omitempty"`
	// EWMA variance vector, floored at epsilon
	VarianceFeatures []float64 `json:"variance_features,omitempty"`
	// SampleCount holds the value of the "sample_count" field.
	SampleCount int64 `json:"sample_count,omitempty"`
	// Bounded ring of recent feature vectors for covariance rebuilds
	FeatureHistory [][]float64 `json:"feature_history,omitempty"`
	// 24-bin decayed hourly activity histogram (7-day horizon)
	HourCounts []float64 `json:"hour_counts,omitempty"`
	// EWMA events/min over the trailing 7 days
	WeekRate float64 `json:"week_rate,omitempty"`
	// Per-type event counts, used by the low-priority prefilter
	EventTypeCounts map[string]int64 `json:"event_type_counts,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userprofile.FieldMeanFeatures, userprofile.FieldVarianceFeatures, userprofile.FieldFeatureHistory, userprofile.FieldHourCounts, userprofile.FieldEventTypeCounts:
			values[i] = new([]byte)
		case userprofile.FieldWeekRate:
			values[i] = new(sql.NullFloat64)
		case userprofile.FieldSampleCount:
			values[i] = new(sql.NullInt64)
		case userprofile.FieldID:
			values[i] = new(sql.NullString)
		case userprofile.FieldFirstSeen, userprofile.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserProfile fields.
func (_m *UserProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userprofile.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case userprofile.FieldMeanFeatures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mean_features", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MeanFeatures); err != nil {
					return fmt.Errorf("unmarshal field mean_features: %w", err)
				}
			}
		case userprofile.FieldVarianceFeatures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field variance_features", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VarianceFeatures); err != nil {
					return fmt.Errorf("unmarshal field variance_features: %w", err)
				}
			}
		case userprofile.FieldSampleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sample_count", values[i])
			} else if value.Valid {
				_m.SampleCount = value.Int64
			}
		case userprofile.FieldFeatureHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field feature_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FeatureHistory); err != nil {
					return fmt.Errorf("unmarshal field feature_history: %w", err)
				}
			}
		case userprofile.FieldHourCounts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field hour_counts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.HourCounts); err != nil {
					return fmt.Errorf("unmarshal field hour_counts: %w", err)
				}
			}
		case userprofile.FieldWeekRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field week_rate", values[i])
			} else if value.Valid {
				_m.WeekRate = value.Float64
			}
		case userprofile.FieldEventTypeCounts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field event_type_counts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EventTypeCounts); err != nil {
					return fmt.Errorf("unmarshal field event_type_counts: %w", err)
				}
			}
		case userprofile.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case userprofile.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserProfile.
// This includes values selected through modifiers, order, etc.
func (_m *UserProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserProfile.
// Note that you need to call UserProfile.Unwrap() before calling this method if this UserProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserProfile) Update() *UserProfileUpdateOne {
	return NewUserProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserProfile) Unwrap() *UserProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserProfile) String() string {
	var builder strings.Builder
	builder.WriteString("UserProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("mean_features=")
	builder.WriteString(fmt.Sprintf("%v", _m.MeanFeatures))
	builder.WriteString(", ")
	builder.WriteString("variance_features=")
	builder.WriteString(fmt.Sprintf("%v", _m.VarianceFeatures))
	builder.WriteString(", ")
	builder.WriteString("sample_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SampleCount))
	builder.WriteString(", ")
	builder.WriteString("feature_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeatureHistory))
	builder.WriteString(", ")
	builder.WriteString("hour_counts=")
	builder.WriteString(fmt.Sprintf("%v", _m.HourCounts))
	builder.WriteString(", ")
	builder.WriteString("week_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeekRate))
	builder.WriteString(", ")
	builder.WriteString("event_type_counts=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventTypeCounts))
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserProfiles is a parsable slice of UserProfile.
type UserProfiles []*UserProfile
