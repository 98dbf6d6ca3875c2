// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgewatch/forgewatch/ent/githubevent"
)

// GitHubEvent is the model entity for the GitHubEvent schema.
type GitHubEvent struct {
	config `json:"-"`
	// ID of the ent.
	// Upstream event id (monotonically increasing string)
	ID string `json:"id,omitempty"`
	// Upstream type tag (PushEvent, DeleteEvent, ...)
	EventType string `json:"event_type,omitempty"`
	// ActorLogin holds the value of the "actor_login" field.
	ActorLogin string `json:"actor_login,omitempty"`
	// ActorID holds the value of the "actor_id" field.
	ActorID int64 `json:"actor_id,omitempty"`
	// Repository full name (owner/name)
	RepoName string `json:"repo_name,omitempty"`
	// RepoID holds the value of the "repo_id" field.
	RepoID int64 `json:"repo_id,omitempty"`
	// Upstream timestamp (UTC)
	EventCreatedAt time.Time `json:"event_created_at,omitempty"`
	// Opaque per-type payload, re-serialized into anomaly records
	Payload json.RawMessage `json:"payload,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority githubevent.Priority `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status githubevent.Status `json:"status,omitempty"`
	// Replica that claimed the event
	PodID string `json:"pod_id,omitempty"`
	// ClaimedAt holds the value of the "claimed_at" field.
	ClaimedAt time.Time `json:"claimed_at,omitempty"`
	// Updated while a claim is being processed; drives orphan recovery
	LastHeartbeatAt time.Time `json:"last_heartbeat_at,omitempty"`
	// When the poller enqueued the event
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GitHubEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case githubevent.FieldPayload:
			values[i] = new([]byte)
		case githubevent.FieldActorID, githubevent.FieldRepoID:
			values[i] = new(sql.NullInt64)
		case githubevent.FieldID, githubevent.FieldEventType, githubevent.FieldActorLogin, githubevent.FieldRepoName, githubevent.FieldPriority, githubevent.FieldStatus, githubevent.FieldPodID:
			values[i] = new(sql.NullString)
		case githubevent.FieldEventCreatedAt, githubevent.FieldClaimedAt, githubevent.FieldLastHeartbeatAt, githubevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GitHubEvent fields.
func (_m *GitHubEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case githubevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case githubevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case githubevent.FieldActorLogin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_login", values[i])
			} else if value.Valid {
				_m.ActorLogin = value.String
			}
		case githubevent.FieldActorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value.Valid {
				_m.ActorID = value.Int64
			}
		case githubevent.FieldRepoName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_name", values[i])
			} else if value.Valid {
				_m.RepoName = value.String
			}
		case githubevent.FieldRepoID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repo_id", values[i])
			} else if value.Valid {
				_m.RepoID = value.Int64
			}
		case githubevent.FieldEventCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field event_created_at", values[i])
			} else if value.Valid {
				_m.EventCreatedAt = value.Time
			}
		case githubevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case githubevent.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = githubevent.Priority(value.String)
			}
		case githubevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = githubevent.Status(value.String)
			}
		case githubevent.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = value.String
			}
		case githubevent.FieldClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_at", values[i])
			} else if value.Valid {
				_m.ClaimedAt = value.Time
			}
		case githubevent.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = value.Time
			}
		case githubevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GitHubEvent.
// This includes values selected through modifiers, order, etc.
func (_m *GitHubEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GitHubEvent.
// Note that you need to call GitHubEvent.Unwrap() before calling this method if this GitHubEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GitHubEvent) Update() *GitHubEventUpdateOne {
	return NewGitHubEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GitHubEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GitHubEvent) Unwrap() *GitHubEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GitHubEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GitHubEvent) String() string {
	var builder strings.Builder
	builder.WriteString("GitHubEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("actor_login=")
	builder.WriteString(_m.ActorLogin)
	builder.WriteString(", ")
	builder.WriteString("actor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActorID))
	builder.WriteString(", ")
	builder.WriteString("repo_name=")
	builder.WriteString(_m.RepoName)
	builder.WriteString(", ")
	builder.WriteString("repo_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RepoID))
	builder.WriteString(", ")
	builder.WriteString("event_created_at=")
	builder.WriteString(_m.EventCreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("pod_id=")
	builder.WriteString(_m.PodID)
	builder.WriteString(", ")
	builder.WriteString("claimed_at=")
	builder.WriteString(_m.ClaimedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_heartbeat_at=")
	builder.WriteString(_m.LastHeartbeatAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GitHubEvents is a parsable slice of GitHubEvent.
type GitHubEvents []*GitHubEvent
