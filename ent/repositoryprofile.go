// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgewatch/forgewatch/ent/repositoryprofile"
)

// RepositoryProfile is the model entity for the RepositoryProfile schema.
type RepositoryProfile struct {
	config `json:"-"`
	// ID of the ent.
	// Repository full name (owner/name)
	ID string `json:"id,omitempty"`
	// EWMA of observed event rate
	EventsPerHour float64 `json:"events_per_hour,omitempty"`
	// Decayed distinct-actor estimate
	ContributorEstimate float64 `json:"contributor_estimate,omitempty"`
	// Stars holds the value of the "stars" field.
	Stars int `json:"stars,omitempty"`
	// Forks holds the value of the "forks" field.
	Forks int `json:"forks,omitempty"`
	// HasSecurityPolicy holds the value of the "has_security_policy" field.
	HasSecurityPolicy bool `json:"has_security_policy,omitempty"`
	// ProtectedBranches holds the value of the "protected_branches" field.
	ProtectedBranches int `json:"protected_branches,omitempty"`
	// Cached criticality score in [0,1]
	Criticality float64 `json:"criticality,omitempty"`
	// Cache timestamp; recomputed after TTL
	CriticalityUpdatedAt time.Time `json:"criticality_updated_at,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RepositoryProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case repositoryprofile.FieldHasSecurityPolicy:
			values[i] = new(sql.NullBool)
		case repositoryprofile.FieldEventsPerHour, repositoryprofile.FieldContributorEstimate, repositoryprofile.FieldCriticality:
			values[i] = new(sql.NullFloat64)
		case repositoryprofile.FieldStars, repositoryprofile.FieldForks, repositoryprofile.FieldProtectedBranches:
			values[i] = new(sql.NullInt64)
		case repositoryprofile.FieldID:
			values[i] = new(sql.NullString)
		case repositoryprofile.FieldCriticalityUpdatedAt, repositoryprofile.FieldFirstSeen, repositoryprofile.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RepositoryProfile fields.
func (_m *RepositoryProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case repositoryprofile.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case repositoryprofile.FieldEventsPerHour:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field events_per_hour", values[i])
			} else if value.Valid {
				_m.EventsPerHour = value.Float64
			}
		case repositoryprofile.FieldContributorEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field contributor_estimate", values[i])
			} else if value.Valid {
				_m.ContributorEstimate = value.Float64
			}
		case repositoryprofile.FieldStars:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stars", values[i])
			} else if value.Valid {
				_m.Stars = int(value.Int64)
			}
		case repositoryprofile.FieldForks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field forks", values[i])
			} else if value.Valid {
				_m.Forks = int(value.Int64)
			}
		case repositoryprofile.FieldHasSecurityPolicy:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_security_policy", values[i])
			} else if value.Valid {
				_m.HasSecurityPolicy = value.Bool
			}
		case repositoryprofile.FieldProtectedBranches:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field protected_branches", values[i])
			} else if value.Valid {
				_m.ProtectedBranches = int(value.Int64)
			}
		case repositoryprofile.FieldCriticality:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field criticality", values[i])
			} else if value.Valid {
				_m.Criticality = value.Float64
			}
		case repositoryprofile.FieldCriticalityUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field criticality_updated_at", values[i])
			} else if value.Valid {
				_m.CriticalityUpdatedAt = value.Time
			}
		case repositoryprofile.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case repositoryprofile.FieldLastUpdated:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RepositoryProfile.
// This includes values selected through modifiers, order, etc.
func (_m *RepositoryProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RepositoryProfile.
// Note that you need to call RepositoryProfile.Unwrap() before calling this method if this RepositoryProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RepositoryProfile) Update() *RepositoryProfileUpdateOne {
	return NewRepositoryProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RepositoryProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RepositoryProfile) Unwrap() *RepositoryProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RepositoryProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RepositoryProfile) String() string {
	var builder strings.Builder
	builder.WriteString("RepositoryProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("events_per_hour=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventsPerHour))
	builder.WriteString(", ")
	builder.WriteString("contributor_estimate=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContributorEstimate))
	builder.WriteString(", ")
	builder.WriteString("stars=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stars))
	builder.WriteString(", ")
	builder.WriteString("forks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Forks))
	builder.WriteString(", ")
	builder.WriteString("has_security_policy=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasSecurityPolicy))
	builder.WriteString(", ")
	builder.WriteString("protected_branches=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProtectedBranches))
	builder.WriteString(", ")
	builder.WriteString("criticality=")
	builder.WriteString(fmt.Sprintf("%v", _m.Criticality))
	builder.WriteString(", ")
	builder.WriteString("criticality_updated_at=")
	builder.WriteString(_m.CriticalityUpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RepositoryProfiles is a parsable slice of RepositoryProfile.
type RepositoryProfiles []*RepositoryProfile
