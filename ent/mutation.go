// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgewatch/forgewatch/ent/anomalyrecord"
	"github.com/forgewatch/forgewatch/ent/githubevent"
	"github.com/forgewatch/forgewatch/ent/predicate"
	"github.com/forgewatch/forgewatch/ent/repositoryprofile"
	"github.com/forgewatch/forgewatch/ent/streamevent"
	"github.com/forgewatch/forgewatch/ent/temporalpattern"
	"github.com/forgewatch/forgewatch/ent/userprofile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnomalyRecord     = "AnomalyRecord"
	TypeGitHubEvent       = "GitHubEvent"
	TypeRepositoryProfile = "RepositoryProfile"
	TypeStreamEvent       = "StreamEvent"
	TypeTemporalPattern   = "TemporalPattern"
	TypeUserProfile       = "UserProfile"
)

// AnomalyRecordMutation represents an operation that mutates the AnomalyRecord nodes in the graph.
type AnomalyRecordMutation struct {
	config
	op                              Op
	typ                             string
	id                              *int
	event_id                        *string
	repository_name                 *string
	user_login                      *string
	event_type                      *string
	event_timestamp                 *time.Time
	behavioral_anomaly_score        *float64
	addbehavioral_anomaly_score     *float64
	content_risk_score              *float64
	addcontent_risk_score           *float64
	temporal_anomaly_score          *float64
	addtemporal_anomaly_score       *float64
	repository_criticality_score    *float64
	addrepository_criticality_score *float64
	final_anomaly_score             *float64
	addfinal_anomaly_score          *float64
	severity_level                  *anomalyrecord.SeverityLevel
	primary_method                  *string
	behavioral_analysis             *json.RawMessage
	appendbehavioral_analysis       json.RawMessage
	content_analysis                *json.RawMessage
	appendcontent_analysis          json.RawMessage
	temporal_analysis               *json.RawMessage
	appendtemporal_analysis         json.RawMessage
	repository_context              *json.RawMessage
	appendrepository_context        json.RawMessage
	high_risk_indicators            *[]string
	appendhigh_risk_indicators      []string
	ai_summary                      *string
	degraded                        *bool
	detection_timestamp             *time.Time
	clearedFields                   map[string]struct{}
	done                            bool
	oldValue                        func(context.Context) (*AnomalyRecord, error)
	predicates                      []predicate.AnomalyRecord
}

var _ ent.Mutation = (*AnomalyRecordMutation)(nil)

// anomalyrecordOption allows management of the mutation configuration using functional options.
type anomalyrecordOption func(*AnomalyRecordMutation)

// newAnomalyRecordMutation creates new mutation for the AnomalyRecord entity.
func newAnomalyRecordMutation(c config, op Op, opts ...anomalyrecordOption) *AnomalyRecordMutation {
	m := &AnomalyRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAnomalyRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnomalyRecordID sets the ID field of the mutation.
func withAnomalyRecordID(id int) anomalyrecordOption {
	return func(m *AnomalyRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AnomalyRecord
		)
		m.oldValue = func(ctx context.Context) (*AnomalyRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnomalyRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnomalyRecord sets the old AnomalyRecord of the mutation.
func withAnomalyRecord(node *AnomalyRecord) anomalyrecordOption {
	return func(m *AnomalyRecordMutation) {
		m.oldValue = func(context.Context) (*AnomalyRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnomalyRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnomalyRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnomalyRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnomalyRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnomalyRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *AnomalyRecordMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *AnomalyRecordMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *AnomalyRecordMutation) ResetEventID() {
	m.event_id = nil
}

// SetRepositoryName sets the "repository_name" field.
func (m *AnomalyRecordMutation) SetRepositoryName(s string) {
	m.repository_name = &s
}

// RepositoryName returns the value of the "repository_name" field in the mutation.
func (m *AnomalyRecordMutation) RepositoryName() (r string, exists bool) {
	v := m.repository_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRepositoryName returns the old "repository_name" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldRepositoryName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepositoryName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepositoryName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepositoryName: %w", err)
	}
	return oldValue.RepositoryName, nil
}

// ResetRepositoryName resets all changes to the "repository_name" field.
func (m *AnomalyRecordMutation) ResetRepositoryName() {
	m.repository_name = nil
}

// SetUserLogin sets the "user_login" field.
func (m *AnomalyRecordMutation) SetUserLogin(s string) {
	m.user_login = &s
}

// UserLogin returns the value of the "user_login" field in the mutation.
func (m *AnomalyRecordMutation) UserLogin() (r string, exists bool) {
	v := m.user_login
	if v == nil {
		return
	}
	return *v, true
}

// OldUserLogin returns the old "user_login" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldUserLogin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserLogin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserLogin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserLogin: %w", err)
	}
	return oldValue.UserLogin, nil
}

// ResetUserLogin resets all changes to the "user_login" field.
func (m *AnomalyRecordMutation) ResetUserLogin() {
	m.user_login = nil
}

// SetEventType sets the "event_type" field.
func (m *AnomalyRecordMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *AnomalyRecordMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *AnomalyRecordMutation) ResetEventType() {
	m.event_type = nil
}

// SetEventTimestamp sets the "event_timestamp" field.
func (m *AnomalyRecordMutation) SetEventTimestamp(t time.Time) {
	m.event_timestamp = &t
}

// EventTimestamp returns the value of the "event_timestamp" field in the mutation.
func (m *AnomalyRecordMutation) EventTimestamp() (r time.Time, exists bool) {
	v := m.event_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldEventTimestamp returns the old "event_timestamp" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldEventTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventTimestamp: %w", err)
	}
	return oldValue.EventTimestamp, nil
}

// ResetEventTimestamp resets all changes to the "event_timestamp" field.
func (m *AnomalyRecordMutation) ResetEventTimestamp() {
	m.event_timestamp = nil
}

// SetBehavioralAnomalyScore sets the "behavioral_anomaly_score" field.
func (m *AnomalyRecordMutation) SetBehavioralAnomalyScore(f float64) {
	m.behavioral_anomaly_score = &f
	m.addbehavioral_anomaly_score = nil
}

// BehavioralAnomalyScore returns the value of the "behavioral_anomaly_score" field in the mutation.
func (m *AnomalyRecordMutation) BehavioralAnomalyScore() (r float64, exists bool) {
	v := m.behavioral_anomaly_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBehavioralAnomalyScore returns the old "behavioral_anomaly_score" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldBehavioralAnomalyScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBehavioralAnomalyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBehavioralAnomalyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBehavioralAnomalyScore: %w", err)
	}
	return oldValue.BehavioralAnomalyScore, nil
}

// AddBehavioralAnomalyScore adds f to the "behavioral_anomaly_score" field.
func (m *AnomalyRecordMutation) AddBehavioralAnomalyScore(f float64) {
	if m.addbehavioral_anomaly_score != nil {
		*m.addbehavioral_anomaly_score += f
	} else {
		m.addbehavioral_anomaly_score = &f
	}
}

// AddedBehavioralAnomalyScore returns the value that was added to the "behavioral_anomaly_score" field in this mutation.
func (m *AnomalyRecordMutation) AddedBehavioralAnomalyScore() (r float64, exists bool) {
	v := m.addbehavioral_anomaly_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetBehavioralAnomalyScore resets all changes to the "behavioral_anomaly_score" field.
func (m *AnomalyRecordMutation) ResetBehavioralAnomalyScore() {
	m.behavioral_anomaly_score = nil
	m.addbehavioral_anomaly_score = nil
}

// SetContentRiskScore sets the "content_risk_score" field.
func (m *AnomalyRecordMutation) SetContentRiskScore(f float64) {
	m.content_risk_score = &f
	m.addcontent_risk_score = nil
}

// ContentRiskScore returns the value of the "content_risk_score" field in the mutation.
func (m *AnomalyRecordMutation) ContentRiskScore() (r float64, exists bool) {
	v := m.content_risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldContentRiskScore returns the old "content_risk_score" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldContentRiskScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentRiskScore: %w", err)
	}
	return oldValue.ContentRiskScore, nil
}

// AddContentRiskScore adds f to the "content_risk_score" field.
func (m *AnomalyRecordMutation) AddContentRiskScore(f float64) {
	if m.addcontent_risk_score != nil {
		*m.addcontent_risk_score += f
	} else {
		m.addcontent_risk_score = &f
	}
}

// AddedContentRiskScore returns the value that was added to the "content_risk_score" field in this mutation.
func (m *AnomalyRecordMutation) AddedContentRiskScore() (r float64, exists bool) {
	v := m.addcontent_risk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetContentRiskScore resets all changes to the "content_risk_score" field.
func (m *AnomalyRecordMutation) ResetContentRiskScore() {
	m.content_risk_score = nil
	m.addcontent_risk_score = nil
}

// SetTemporalAnomalyScore sets the "temporal_anomaly_score" field.
func (m *AnomalyRecordMutation) SetTemporalAnomalyScore(f float64) {
	m.temporal_anomaly_score = &f
	m.addtemporal_anomaly_score = nil
}

// TemporalAnomalyScore returns the value of the "temporal_anomaly_score" field in the mutation.
func (m *AnomalyRecordMutation) TemporalAnomalyScore() (r float64, exists bool) {
	v := m.temporal_anomaly_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTemporalAnomalyScore returns the old "temporal_anomaly_score" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldTemporalAnomalyScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemporalAnomalyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemporalAnomalyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemporalAnomalyScore: %w", err)
	}
	return oldValue.TemporalAnomalyScore, nil
}

// AddTemporalAnomalyScore adds f to the "temporal_anomaly_score" field.
func (m *AnomalyRecordMutation) AddTemporalAnomalyScore(f float64) {
	if m.addtemporal_anomaly_score != nil {
		*m.addtemporal_anomaly_score += f
	} else {
		m.addtemporal_anomaly_score = &f
	}
}

// AddedTemporalAnomalyScore returns the value that was added to the "temporal_anomaly_score" field in this mutation.
func (m *AnomalyRecordMutation) AddedTemporalAnomalyScore() (r float64, exists bool) {
	v := m.addtemporal_anomaly_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemporalAnomalyScore resets all changes to the "temporal_anomaly_score" field.
func (m *AnomalyRecordMutation) ResetTemporalAnomalyScore() {
	m.temporal_anomaly_score = nil
	m.addtemporal_anomaly_score = nil
}

// SetRepositoryCriticalityScore sets the "repository_criticality_score" field.
func (m *AnomalyRecordMutation) SetRepositoryCriticalityScore(f float64) {
	m.repository_criticality_score = &f
	m.addrepository_criticality_score = nil
}

// RepositoryCriticalityScore returns the value of the "repository_criticality_score" field in the mutation.
func (m *AnomalyRecordMutation) RepositoryCriticalityScore() (r float64, exists bool) {
	v := m.repository_criticality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRepositoryCriticalityScore returns the old "repository_criticality_score" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldRepositoryCriticalityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepositoryCriticalityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepositoryCriticalityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepositoryCriticalityScore: %w", err)
	}
	return oldValue.RepositoryCriticalityScore, nil
}

// AddRepositoryCriticalityScore adds f to the "repository_criticality_score" field.
func (m *AnomalyRecordMutation) AddRepositoryCriticalityScore(f float64) {
	if m.addrepository_criticality_score != nil {
		*m.addrepository_criticality_score += f
	} else {
		m.addrepository_criticality_score = &f
	}
}

// AddedRepositoryCriticalityScore returns the value that was added to the "repository_criticality_score" field in this mutation.
func (m *AnomalyRecordMutation) AddedRepositoryCriticalityScore() (r float64, exists bool) {
	v := m.addrepository_criticality_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepositoryCriticalityScore resets all changes to the "repository_criticality_score" field.
func (m *AnomalyRecordMutation) ResetRepositoryCriticalityScore() {
	m.repository_criticality_score = nil
	m.addrepository_criticality_score = nil
}

// SetFinalAnomalyScore sets the "final_anomaly_score" field.
func (m *AnomalyRecordMutation) SetFinalAnomalyScore(f float64) {
	m.final_anomaly_score = &f
	m.addfinal_anomaly_score = nil
}

// FinalAnomalyScore returns the value of the "final_anomaly_score" field in the mutation.
func (m *AnomalyRecordMutation) FinalAnomalyScore() (r float64, exists bool) {
	v := m.final_anomaly_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalAnomalyScore returns the old "final_anomaly_score" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldFinalAnomalyScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalAnomalyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalAnomalyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalAnomalyScore: %w", err)
	}
	return oldValue.FinalAnomalyScore, nil
}

// AddFinalAnomalyScore adds f to the "final_anomaly_score" field.
func (m *AnomalyRecordMutation) AddFinalAnomalyScore(f float64) {
	if m.addfinal_anomaly_score != nil {
		*m.addfinal_anomaly_score += f
	} else {
		m.addfinal_anomaly_score = &f
	}
}

// AddedFinalAnomalyScore returns the value that was added to the "final_anomaly_score" field in this mutation.
func (m *AnomalyRecordMutation) AddedFinalAnomalyScore() (r float64, exists bool) {
	v := m.addfinal_anomaly_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetFinalAnomalyScore resets all changes to the "final_anomaly_score" field.
func (m *AnomalyRecordMutation) ResetFinalAnomalyScore() {
	m.final_anomaly_score = nil
	m.addfinal_anomaly_score = nil
}

// SetSeverityLevel sets the "severity_level" field.
func (m *AnomalyRecordMutation) SetSeverityLevel(al anomalyrecord.SeverityLevel) {
	m.severity_level = &al
}

// SeverityLevel returns the value of the "severity_level" field in the mutation.
func (m *AnomalyRecordMutation) SeverityLevel() (r anomalyrecord.SeverityLevel, exists bool) {
	v := m.severity_level
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverityLevel returns the old "severity_level" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldSeverityLevel(ctx context.Context) (v anomalyrecord.SeverityLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverityLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverityLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverityLevel: %w", err)
	}
	return oldValue.SeverityLevel, nil
}

// ResetSeverityLevel resets all changes to the "severity_level" field.
func (m *AnomalyRecordMutation) ResetSeverityLevel() {
	m.severity_level = nil
}

// SetPrimaryMethod sets the "primary_method" field.
func (m *AnomalyRecordMutation) SetPrimaryMethod(s string) {
	m.primary_method = &s
}

// PrimaryMethod returns the value of the "primary_method" field in the mutation.
func (m *AnomalyRecordMutation) PrimaryMethod() (r string, exists bool) {
	v := m.primary_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryMethod returns the old "primary_method" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldPrimaryMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryMethod: %w", err)
	}
	return oldValue.PrimaryMethod, nil
}

// ResetPrimaryMethod resets all changes to the "primary_method" field.
func (m *AnomalyRecordMutation) ResetPrimaryMethod() {
	m.primary_method = nil
}

// SetBehavioralAnalysis sets the "behavioral_analysis" field.
func (m *AnomalyRecordMutation) SetBehavioralAnalysis(jm json.RawMessage) {
	m.behavioral_analysis = &jm
	m.appendbehavioral_analysis = nil
}

// BehavioralAnalysis returns the value of the "behavioral_analysis" field in the mutation.
func (m *AnomalyRecordMutation) BehavioralAnalysis() (r json.RawMessage, exists bool) {
	v := m.behavioral_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldBehavioralAnalysis returns the old "behavioral_analysis" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldBehavioralAnalysis(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBehavioralAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBehavioralAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBehavioralAnalysis: %w", err)
	}
	return oldValue.BehavioralAnalysis, nil
}

// AppendBehavioralAnalysis adds jm to the "behavioral_analysis" field.
func (m *AnomalyRecordMutation) AppendBehavioralAnalysis(jm json.RawMessage) {
	m.appendbehavioral_analysis = append(m.appendbehavioral_analysis, jm...)
}

// AppendedBehavioralAnalysis returns the list of values that were appended to the "behavioral_analysis" field in this mutation.
func (m *AnomalyRecordMutation) AppendedBehavioralAnalysis() (json.RawMessage, bool) {
	if len(m.appendbehavioral_analysis) == 0 {
		return nil, false
	}
	return m.appendbehavioral_analysis, true
}

// ClearBehavioralAnalysis clears the value of the "behavioral_analysis" field.
func (m *AnomalyRecordMutation) ClearBehavioralAnalysis() {
	m.behavioral_analysis = nil
	m.appendbehavioral_analysis = nil
	m.clearedFields[anomalyrecord.FieldBehavioralAnalysis] = struct{}{}
}

// BehavioralAnalysisCleared returns if the "behavioral_analysis" field was cleared in this mutation.
func (m *AnomalyRecordMutation) BehavioralAnalysisCleared() bool {
	_, ok := m.clearedFields[anomalyrecord.FieldBehavioralAnalysis]
	return ok
}

// ResetBehavioralAnalysis resets all changes to the "behavioral_analysis" field.
func (m *AnomalyRecordMutation) ResetBehavioralAnalysis() {
	m.behavioral_analysis = nil
	m.appendbehavioral_analysis = nil
	delete(m.clearedFields, anomalyrecord.FieldBehavioralAnalysis)
}

// SetContentAnalysis sets the "content_analysis" field.
func (m *AnomalyRecordMutation) SetContentAnalysis(jm json.RawMessage) {
	m.content_analysis = &jm
	m.appendcontent_analysis = nil
}

// ContentAnalysis returns the value of the "content_analysis" field in the mutation.
func (m *AnomalyRecordMutation) ContentAnalysis() (r json.RawMessage, exists bool) {
	v := m.content_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldContentAnalysis returns the old "content_analysis" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldContentAnalysis(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentAnalysis: %w", err)
	}
	return oldValue.ContentAnalysis, nil
}

// AppendContentAnalysis adds jm to the "content_analysis" field.
func (m *AnomalyRecordMutation) AppendContentAnalysis(jm json.RawMessage) {
	m.appendcontent_analysis = append(m.appendcontent_analysis, jm...)
}

// AppendedContentAnalysis returns the list of values that were appended to the "content_analysis" field in this mutation.
func (m *AnomalyRecordMutation) AppendedContentAnalysis() (json.RawMessage, bool) {
	if len(m.appendcontent_analysis) == 0 {
		return nil, false
	}
	return m.appendcontent_analysis, true
}

// ClearContentAnalysis clears the value of the "content_analysis" field.
func (m *AnomalyRecordMutation) ClearContentAnalysis() {
	m.content_analysis = nil
	m.appendcontent_analysis = nil
	m.clearedFields[anomalyrecord.FieldContentAnalysis] = struct{}{}
}

// ContentAnalysisCleared returns if the "content_analysis" field was cleared in this mutation.
func (m *AnomalyRecordMutation) ContentAnalysisCleared() bool {
	_, ok := m.clearedFields[anomalyrecord.FieldContentAnalysis]
	return ok
}

// ResetContentAnalysis resets all changes to the "content_analysis" field.
func (m *AnomalyRecordMutation) ResetContentAnalysis() {
	m.content_analysis = nil
	m.appendcontent_analysis = nil
	delete(m.clearedFields, anomalyrecord.FieldContentAnalysis)
}

// SetTemporalAnalysis sets the "temporal_analysis" field.
func (m *AnomalyRecordMutation) SetTemporalAnalysis(jm json.RawMessage) {
	m.temporal_analysis = &jm
	m.appendtemporal_analysis = nil
}

// TemporalAnalysis returns the value of the "temporal_analysis" field in the mutation.
func (m *AnomalyRecordMutation) TemporalAnalysis() (r json.RawMessage, exists bool) {
	v := m.temporal_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldTemporalAnalysis returns the old "temporal_analysis" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldTemporalAnalysis(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemporalAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemporalAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemporalAnalysis: %w", err)
	}
	return oldValue.TemporalAnalysis, nil
}

// AppendTemporalAnalysis adds jm to the "temporal_analysis" field.
func (m *AnomalyRecordMutation) AppendTemporalAnalysis(jm json.RawMessage) {
	m.appendtemporal_analysis = append(m.appendtemporal_analysis, jm...)
}

// AppendedTemporalAnalysis returns the list of values that were appended to the "temporal_analysis" field in this mutation.
func (m *AnomalyRecordMutation) AppendedTemporalAnalysis() (json.RawMessage, bool) {
	if len(m.appendtemporal_analysis) == 0 {
		return nil, false
	}
	return m.appendtemporal_analysis, true
}

// ClearTemporalAnalysis clears the value of the "temporal_analysis" field.
func (m *AnomalyRecordMutation) ClearTemporalAnalysis() {
	m.temporal_analysis = nil
	m.appendtemporal_analysis = nil
	m.clearedFields[anomalyrecord.FieldTemporalAnalysis] = struct{}{}
}

// TemporalAnalysisCleared returns if the "temporal_analysis" field was cleared in this mutation.
func (m *AnomalyRecordMutation) TemporalAnalysisCleared() bool {
	_, ok := m.clearedFields[anomalyrecord.FieldTemporalAnalysis]
	return ok
}

// ResetTemporalAnalysis resets all changes to the "temporal_analysis" field.
func (m *AnomalyRecordMutation) ResetTemporalAnalysis() {
	m.temporal_analysis = nil
	m.appendtemporal_analysis = nil
	delete(m.clearedFields, anomalyrecord.FieldTemporalAnalysis)
}

// SetRepositoryContext sets the "repository_context" field.
func (m *AnomalyRecordMutation) SetRepositoryContext(jm json.RawMessage) {
	m.repository_context = &jm
	m.appendrepository_context = nil
}

// RepositoryContext returns the value of the "repository_context" field in the mutation.
func (m *AnomalyRecordMutation) RepositoryContext() (r json.RawMessage, exists bool) {
	v := m.repository_context
	if v == nil {
		return
	}
	return *v, true
}

// OldRepositoryContext returns the old "repository_context" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldRepositoryContext(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepositoryContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepositoryContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepositoryContext: %w", err)
	}
	return oldValue.RepositoryContext, nil
}

// AppendRepositoryContext adds jm to the "repository_context" field.
func (m *AnomalyRecordMutation) AppendRepositoryContext(jm json.RawMessage) {
	m.appendrepository_context = append(m.appendrepository_context, jm...)
}

// AppendedRepositoryContext returns the list of values that were appended to the "repository_context" field in this mutation.
func (m *AnomalyRecordMutation) AppendedRepositoryContext() (json.RawMessage, bool) {
	if len(m.appendrepository_context) == 0 {
		return nil, false
	}
	return m.appendrepository_context, true
}

// ClearRepositoryContext clears the value of the "repository_context" field.
func (m *AnomalyRecordMutation) ClearRepositoryContext() {
	m.repository_context = nil
	m.appendrepository_context = nil
	m.clearedFields[anomalyrecord.FieldRepositoryContext] = struct{}{}
}

// RepositoryContextCleared returns if the "repository_context" field was cleared in this mutation.
func (m *AnomalyRecordMutation) RepositoryContextCleared() bool {
	_, ok := m.clearedFields[anomalyrecord.FieldRepositoryContext]
	return ok
}

// ResetRepositoryContext resets all changes to the "repository_context" field.
func (m *AnomalyRecordMutation) ResetRepositoryContext() {
	m.repository_context = nil
	m.appendrepository_context = nil
	delete(m.clearedFields, anomalyrecord.FieldRepositoryContext)
}

// SetHighRiskIndicators sets the "high_risk_indicators" field.
func (m *AnomalyRecordMutation) SetHighRiskIndicators(s []string) {
	m.high_risk_indicators = &s
	m.appendhigh_risk_indicators = nil
}

// HighRiskIndicators returns the value of the "high_risk_indicators" field in the mutation.
func (m *AnomalyRecordMutation) HighRiskIndicators() (r []string, exists bool) {
	v := m.high_risk_indicators
	if v == nil {
		return
	}
	return *v, true
}

// OldHighRiskIndicators returns the old "high_risk_indicators" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldHighRiskIndicators(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHighRiskIndicators is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHighRiskIndicators requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHighRiskIndicators: %w", err)
	}
	return oldValue.HighRiskIndicators, nil
}

// AppendHighRiskIndicators adds s to the "high_risk_indicators" field.
func (m *AnomalyRecordMutation) AppendHighRiskIndicators(s []string) {
	m.appendhigh_risk_indicators = append(m.appendhigh_risk_indicators, s...)
}

// AppendedHighRiskIndicators returns the list of values that were appended to the "high_risk_indicators" field in this mutation.
func (m *AnomalyRecordMutation) AppendedHighRiskIndicators() ([]string, bool) {
	if len(m.appendhigh_risk_indicators) == 0 {
		return nil, false
	}
	return m.appendhigh_risk_indicators, true
}

// ClearHighRiskIndicators clears the value of the "high_risk_indicators" field.
func (m *AnomalyRecordMutation) ClearHighRiskIndicators() {
	m.high_risk_indicators = nil
	m.appendhigh_risk_indicators = nil
	m.clearedFields[anomalyrecord.FieldHighRiskIndicators] = struct{}{}
}

// HighRiskIndicatorsCleared returns if the "high_risk_indicators" field was cleared in this mutation.
func (m *AnomalyRecordMutation) HighRiskIndicatorsCleared() bool {
	_, ok := m.clearedFields[anomalyrecord.FieldHighRiskIndicators]
	return ok
}

// ResetHighRiskIndicators resets all changes to the "high_risk_indicators" field.
func (m *AnomalyRecordMutation) ResetHighRiskIndicators() {
	m.high_risk_indicators = nil
	m.appendhigh_risk_indicators = nil
	delete(m.clearedFields, anomalyrecord.FieldHighRiskIndicators)
}

// SetAiSummary sets the "ai_summary" field.
func (m *AnomalyRecordMutation) SetAiSummary(s string) {
	m.ai_summary = &s
}

// AiSummary returns the value of the "ai_summary" field in the mutation.
func (m *AnomalyRecordMutation) AiSummary() (r string, exists bool) {
	v := m.ai_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldAiSummary returns the old "ai_summary" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldAiSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiSummary: %w", err)
	}
	return oldValue.AiSummary, nil
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (m *AnomalyRecordMutation) ClearAiSummary() {
	m.ai_summary = nil
	m.clearedFields[anomalyrecord.FieldAiSummary] = struct{}{}
}

// AiSummaryCleared returns if the "ai_summary" field was cleared in this mutation.
func (m *AnomalyRecordMutation) AiSummaryCleared() bool {
	_, ok := m.clearedFields[anomalyrecord.FieldAiSummary]
	return ok
}

// ResetAiSummary resets all changes to the "ai_summary" field.
func (m *AnomalyRecordMutation) ResetAiSummary() {
	m.ai_summary = nil
	delete(m.clearedFields, anomalyrecord.FieldAiSummary)
}

// SetDegraded sets the "degraded" field.
func (m *AnomalyRecordMutation) SetDegraded(b bool) {
	m.degraded = &b
}

// Degraded returns the value of the "degraded" field in the mutation.
func (m *AnomalyRecordMutation) Degraded() (r bool, exists bool) {
	v := m.degraded
	if v == nil {
		return
	}
	return *v, true
}

// OldDegraded returns the old "degraded" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldDegraded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDegraded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDegraded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDegraded: %w", err)
	}
	return oldValue.Degraded, nil
}

// ResetDegraded resets all changes to the "degraded" field.
func (m *AnomalyRecordMutation) ResetDegraded() {
	m.degraded = nil
}

// SetDetectionTimestamp sets the "detection_timestamp" field.
func (m *AnomalyRecordMutation) SetDetectionTimestamp(t time.Time) {
	m.detection_timestamp = &t
}

// DetectionTimestamp returns the value of the "detection_timestamp" field in the mutation.
func (m *AnomalyRecordMutation) DetectionTimestamp() (r time.Time, exists bool) {
	v := m.detection_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectionTimestamp returns the old "detection_timestamp" field's value of the AnomalyRecord entity.
// If the AnomalyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnomalyRecordMutation) OldDetectionTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectionTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectionTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectionTimestamp: %w", err)
	}
	return oldValue.DetectionTimestamp, nil
}

// ResetDetectionTimestamp resets all changes to the "detection_timestamp" field.
func (m *AnomalyRecordMutation) ResetDetectionTimestamp() {
	m.detection_timestamp = nil
}

// Where appends a list predicates to the AnomalyRecordMutation builder.
func (m *AnomalyRecordMutation) Where(ps ...predicate.AnomalyRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnomalyRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnomalyRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnomalyRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnomalyRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnomalyRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnomalyRecord).
func (m *AnomalyRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnomalyRecordMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.event_id != nil {
		fields = append(fields, anomalyrecord.FieldEventID)
	}
	if m.repository_name != nil {
		fields = append(fields, anomalyrecord.FieldRepositoryName)
	}
	if m.user_login != nil {
		fields = append(fields, anomalyrecord.FieldUserLogin)
	}
	if m.event_type != nil {
		fields = append(fields, anomalyrecord.FieldEventType)
	}
	if m.event_timestamp != nil {
		fields = append(fields, anomalyrecord.FieldEventTimestamp)
	}
	if m.behavioral_anomaly_score != nil {
		fields = append(fields, anomalyrecord.FieldBehavioralAnomalyScore)
	}
	if m.content_risk_score != nil {
		fields = append(fields, anomalyrecord.FieldContentRiskScore)
	}
	if m.temporal_anomaly_score != nil {
		fields = append(fields, anomalyrecord.FieldTemporalAnomalyScore)
	}
	if m.repository_criticality_score != nil {
		fields = append(fields, anomalyrecord.FieldRepositoryCriticalityScore)
	}
	if m.final_anomaly_score != nil {
		fields = append(fields, anomalyrecord.FieldFinalAnomalyScore)
	}
	if m.severity_level != nil {
		fields = append(fields, anomalyrecord.FieldSeverityLevel)
	}
	if m.primary_method != nil {
		fields = append(fields, anomalyrecord.FieldPrimaryMethod)
	}
	if m.behavioral_analysis != nil {
		fields = append(fields, anomalyrecord.FieldBehavioralAnalysis)
	}
	if m.content_analysis != nil {
		fields = append(fields, anomalyrecord.FieldContentAnalysis)
	}
	if m.temporal_analysis != nil {
		fields = append(fields, anomalyrecord.FieldTemporalAnalysis)
	}
	if m.repository_context != nil {
		fields = append(fields, anomalyrecord.FieldRepositoryContext)
	}
	if m.high_risk_indicators != nil {
		fields = append(fields, anomalyrecord.FieldHighRiskIndicators)
	}
	if m.ai_summary != nil {
		fields = append(fields, anomalyrecord.FieldAiSummary)
	}
	if m.degraded != nil {
		fields = append(fields, anomalyrecord.FieldDegraded)
	}
	if m.detection_timestamp != nil {
		fields = append(fields, anomalyrecord.FieldDetectionTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnomalyRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case anomalyrecord.FieldEventID:
		return m.EventID()
	case anomalyrecord.FieldRepositoryName:
		return m.RepositoryName()
	case anomalyrecord.FieldUserLogin:
		return m.UserLogin()
	case anomalyrecord.FieldEventType:
		return m.EventType()
	case anomalyrecord.FieldEventTimestamp:
		return m.EventTimestamp()
	case anomalyrecord.FieldBehavioralAnomalyScore:
		return m.BehavioralAnomalyScore()
	case anomalyrecord.FieldContentRiskScore:
		return m.ContentRiskScore()
	case anomalyrecord.FieldTemporalAnomalyScore:
		return m.TemporalAnomalyScore()
	case anomalyrecord.FieldRepositoryCriticalityScore:
		return m.RepositoryCriticalityScore()
	case anomalyrecord.FieldFinalAnomalyScore:
		return m.FinalAnomalyScore()
	case anomalyrecord.FieldSeverityLevel:
		return m.SeverityLevel()
	case anomalyrecord.FieldPrimaryMethod:
		return m.PrimaryMethod()
	case anomalyrecord.FieldBehavioralAnalysis:
		return m.BehavioralAnalysis()
	case anomalyrecord.FieldContentAnalysis:
		return m.ContentAnalysis()
	case anomalyrecord.FieldTemporalAnalysis:
		return m.TemporalAnalysis()
	case anomalyrecord.FieldRepositoryContext:
		return m.RepositoryContext()
	case anomalyrecord.FieldHighRiskIndicators:
		return m.HighRiskIndicators()
	case anomalyrecord.FieldAiSummary:
		return m.AiSummary()
	case anomalyrecord.FieldDegraded:
		return m.Degraded()
	case anomalyrecord.FieldDetectionTimestamp:
		return m.DetectionTimestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnomalyRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case anomalyrecord.FieldEventID:
		return m.OldEventID(ctx)
	case anomalyrecord.FieldRepositoryName:
		return m.OldRepositoryName(ctx)
	case anomalyrecord.FieldUserLogin:
		return m.OldUserLogin(ctx)
	case anomalyrecord.FieldEventType:
		return m.OldEventType(ctx)
	case anomalyrecord.FieldEventTimestamp:
		return m.OldEventTimestamp(ctx)
	case anomalyrecord.FieldBehavioralAnomalyScore:
		return m.OldBehavioralAnomalyScore(ctx)
	case anomalyrecord.FieldContentRiskScore:
		return m.OldContentRiskScore(ctx)
	case anomalyrecord.FieldTemporalAnomalyScore:
		return m.OldTemporalAnomalyScore(ctx)
	case anomalyrecord.FieldRepositoryCriticalityScore:
		return m.OldRepositoryCriticalityScore(ctx)
	case anomalyrecord.FieldFinalAnomalyScore:
		return m.OldFinalAnomalyScore(ctx)
	case anomalyrecord.FieldSeverityLevel:
		return m.OldSeverityLevel(ctx)
	case anomalyrecord.FieldPrimaryMethod:
		return m.OldPrimaryMethod(ctx)
	case anomalyrecord.FieldBehavioralAnalysis:
		return m.OldBehavioralAnalysis(ctx)
	case anomalyrecord.FieldContentAnalysis:
		return m.OldContentAnalysis(ctx)
	case anomalyrecord.FieldTemporalAnalysis:
		return m.OldTemporalAnalysis(ctx)
	case anomalyrecord.FieldRepositoryContext:
		return m.OldRepositoryContext(ctx)
	case anomalyrecord.FieldHighRiskIndicators:
		return m.OldHighRiskIndicators(ctx)
	case anomalyrecord.FieldAiSummary:
		return m.OldAiSummary(ctx)
	case anomalyrecord.FieldDegraded:
		return m.OldDegraded(ctx)
	case anomalyrecord.FieldDetectionTimestamp:
		return m.OldDetectionTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown AnomalyRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnomalyRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case anomalyrecord.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case anomalyrecord.FieldRepositoryName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepositoryName(v)
		return nil
	case anomalyrecord.FieldUserLogin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserLogin(v)
		return nil
	case anomalyrecord.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case anomalyrecord.FieldEventTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventTimestamp(v)
		return nil
	case anomalyrecord.FieldBehavioralAnomalyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBehavioralAnomalyScore(v)
		return nil
	case anomalyrecord.FieldContentRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentRiskScore(v)
		return nil
	case anomalyrecord.FieldTemporalAnomalyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemporalAnomalyScore(v)
		return nil
	case anomalyrecord.FieldRepositoryCriticalityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepositoryCriticalityScore(v)
		return nil
	case anomalyrecord.FieldFinalAnomalyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalAnomalyScore(v)
		return nil
	case anomalyrecord.FieldSeverityLevel:
		v, ok := value.(anomalyrecord.SeverityLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverityLevel(v)
		return nil
	case anomalyrecord.FieldPrimaryMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryMethod(v)
		return nil
	case anomalyrecord.FieldBehavioralAnalysis:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBehavioralAnalysis(v)
		return nil
	case anomalyrecord.FieldContentAnalysis:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentAnalysis(v)
		return nil
	case anomalyrecord.FieldTemporalAnalysis:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemporalAnalysis(v)
		return nil
	case anomalyrecord.FieldRepositoryContext:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepositoryContext(v)
		return nil
	case anomalyrecord.FieldHighRiskIndicators:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHighRiskIndicators(v)
		return nil
	case anomalyrecord.FieldAiSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiSummary(v)
		return nil
	case anomalyrecord.FieldDegraded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDegraded(v)
		return nil
	case anomalyrecord.FieldDetectionTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectionTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown AnomalyRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnomalyRecordMutation) AddedFields() []string {
	var fields []string
	if m.addbehavioral_anomaly_score != nil {
		fields = append(fields, anomalyrecord.FieldBehavioralAnomalyScore)
	}
	if m.addcontent_risk_score != nil {
		fields = append(fields, anomalyrecord.FieldContentRiskScore)
	}
	if m.addtemporal_anomaly_score != nil {
		fields = append(fields, anomalyrecord.FieldTemporalAnomalyScore)
	}
	if m.addrepository_criticality_score != nil {
		fields = append(fields, anomalyrecord.FieldRepositoryCriticalityScore)
	}
	if m.addfinal_anomaly_score != nil {
		fields = append(fields, anomalyrecord.FieldFinalAnomalyScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnomalyRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case anomalyrecord.FieldBehavioralAnomalyScore:
		return m.AddedBehavioralAnomalyScore()
	case anomalyrecord.FieldContentRiskScore:
		return m.AddedContentRiskScore()
	case anomalyrecord.FieldTemporalAnomalyScore:
		return m.AddedTemporalAnomalyScore()
	case anomalyrecord.FieldRepositoryCriticalityScore:
		return m.AddedRepositoryCriticalityScore()
	case anomalyrecord.FieldFinalAnomalyScore:
		return m.AddedFinalAnomalyScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnomalyRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case anomalyrecord.FieldBehavioralAnomalyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBehavioralAnomalyScore(v)
		return nil
	case anomalyrecord.FieldContentRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContentRiskScore(v)
		return nil
	case anomalyrecord.FieldTemporalAnomalyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemporalAnomalyScore(v)
		return nil
	case anomalyrecord.FieldRepositoryCriticalityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepositoryCriticalityScore(v)
		return nil
	case anomalyrecord.FieldFinalAnomalyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalAnomalyScore(v)
		return nil
	}
	return fmt.Errorf("unknown AnomalyRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnomalyRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(anomalyrecord.FieldBehavioralAnalysis) {
		fields = append(fields, anomalyrecord.FieldBehavioralAnalysis)
	}
	if m.FieldCleared(anomalyrecord.FieldContentAnalysis) {
		fields = append(fields, anomalyrecord.FieldContentAnalysis)
	}
	if m.FieldCleared(anomalyrecord.FieldTemporalAnalysis) {
		fields = append(fields, anomalyrecord.FieldTemporalAnalysis)
	}
	if m.FieldCleared(anomalyrecord.FieldRepositoryContext) {
		fields = append(fields, anomalyrecord.FieldRepositoryContext)
	}
	if m.FieldCleared(anomalyrecord.FieldHighRiskIndicators) {
		fields = append(fields, anomalyrecord.FieldHighRiskIndicators)
	}
	if m.FieldCleared(anomalyrecord.FieldAiSummary) {
		fields = append(fields, anomalyrecord.FieldAiSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnomalyRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnomalyRecordMutation) ClearField(name string) error {
	switch name {
	case anomalyrecord.FieldBehavioralAnalysis:
		m.ClearBehavioralAnalysis()
		return nil
	case anomalyrecord.FieldContentAnalysis:
		m.ClearContentAnalysis()
		return nil
	case anomalyrecord.FieldTemporalAnalysis:
		m.ClearTemporalAnalysis()
		return nil
	case anomalyrecord.FieldRepositoryContext:
		m.ClearRepositoryContext()
		return nil
	case anomalyrecord.FieldHighRiskIndicators:
		m.ClearHighRiskIndicators()
		return nil
	case anomalyrecord.FieldAiSummary:
		m.ClearAiSummary()
		return nil
	}
	return fmt.Errorf("unknown AnomalyRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnomalyRecordMutation) ResetField(name string) error {
	switch name {
	case anomalyrecord.FieldEventID:
		m.ResetEventID()
		return nil
	case anomalyrecord.FieldRepositoryName:
		m.ResetRepositoryName()
		return nil
	case anomalyrecord.FieldUserLogin:
		m.ResetUserLogin()
		return nil
	case anomalyrecord.FieldEventType:
		m.ResetEventType()
		return nil
	case anomalyrecord.FieldEventTimestamp:
		m.ResetEventTimestamp()
		return nil
	case anomalyrecord.FieldBehavioralAnomalyScore:
		m.ResetBehavioralAnomalyScore()
		return nil
	case anomalyrecord.FieldContentRiskScore:
		m.ResetContentRiskScore()
		return nil
	case anomalyrecord.FieldTemporalAnomalyScore:
		m.ResetTemporalAnomalyScore()
		return nil
	case anomalyrecord.FieldRepositoryCriticalityScore:
		m.ResetRepositoryCriticalityScore()
		return nil
	case anomalyrecord.FieldFinalAnomalyScore:
		m.ResetFinalAnomalyScore()
		return nil
	case anomalyrecord.FieldSeverityLevel:
		m.ResetSeverityLevel()
		return nil
	case anomalyrecord.FieldPrimaryMethod:
		m.ResetPrimaryMethod()
		return nil
	case anomalyrecord.FieldBehavioralAnalysis:
		m.ResetBehavioralAnalysis()
		return nil
	case anomalyrecord.FieldContentAnalysis:
		m.ResetContentAnalysis()
		return nil
	case anomalyrecord.FieldTemporalAnalysis:
		m.ResetTemporalAnalysis()
		return nil
	case anomalyrecord.FieldRepositoryContext:
		m.ResetRepositoryContext()
		return nil
	case anomalyrecord.FieldHighRiskIndicators:
		m.ResetHighRiskIndicators()
		return nil
	case anomalyrecord.FieldAiSummary:
		m.ResetAiSummary()
		return nil
	case anomalyrecord.FieldDegraded:
		m.ResetDegraded()
		return nil
	case anomalyrecord.FieldDetectionTimestamp:
		m.ResetDetectionTimestamp()
		return nil
	}
	return fmt.Errorf("unknown AnomalyRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnomalyRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnomalyRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnomalyRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnomalyRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnomalyRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnomalyRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnomalyRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnomalyRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnomalyRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnomalyRecord edge %s", name)
}

// GitHubEventMutation represents an operation that mutates the GitHubEvent nodes in the graph.
type GitHubEventMutation struct {
	config
	op                Op
	typ               string
	id                *string
	event_type        *string
	actor_login       *string
	actor_id          *int64
	addactor_id       *int64
	repo_name         *string
	repo_id           *int64
	addrepo_id        *int64
	event_created_at  *time.Time
	payload           *json.RawMessage
	appendpayload     json.RawMessage
	priority          *githubevent.Priority
	status            *githubevent.Status
	pod_id            *string
	claimed_at        *time.Time
	last_heartbeat_at *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*GitHubEvent, error)
	predicates        []predicate.GitHubEvent
}

var _ ent.Mutation = (*GitHubEventMutation)(nil)

// githubeventOption allows management of the mutation configuration using functional options.
type githubeventOption func(*GitHubEventMutation)

// newGitHubEventMutation creates new mutation for the GitHubEvent entity.
func newGitHubEventMutation(c config, op Op, opts ...githubeventOption) *GitHubEventMutation {
	m := &GitHubEventMutation{
		config:        c,
		op:            op,
		typ:           TypeGitHubEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGitHubEventID sets the ID field of the mutation.
func withGitHubEventID(id string) githubeventOption {
	return func(m *GitHubEventMutation) {
		var (
			err   error
			once  sync.Once
			value *GitHubEvent
		)
		m.oldValue = func(ctx context.Context) (*GitHubEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GitHubEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGitHubEvent sets the old GitHubEvent of the mutation.
func withGitHubEvent(node *GitHubEvent) githubeventOption {
	return func(m *GitHubEventMutation) {
		m.oldValue = func(context.Context) (*GitHubEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GitHubEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GitHubEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GitHubEvent entities.
func (m *GitHubEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GitHubEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GitHubEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GitHubEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *GitHubEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *GitHubEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the GitHubEvent entity.
// If the GitHubEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GitHubEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *GitHubEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetActorLogin sets the "actor_login" field.
func (m *GitHubEventMutation) SetActorLogin(s string) {
	m.actor_login = &s
}

// ActorLogin returns the value of the "actor_login" field in the mutation.
func (m *GitHubEventMutation) ActorLogin() (r string, exists bool) {
	v := m.actor_login
	if v == nil {
		return
	}
	return *v, true
}

// OldActorLogin returns the old "actor_login" field's value of the GitHubEvent entity.
// If the GitHubEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GitHubEventMutation) OldActorLogin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorLogin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorLogin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorLogin: %w", err)
	}
	return oldValue.ActorLogin, nil
}

// ResetActorLogin resets all changes to the "actor_login" field.
func (m *GitHubEventMutation) ResetActorLogin() {
	m.actor_login = nil
}

// SetActorID sets the "actor_id" field.
func (m *GitHubEventMutation) SetActorID(i int64) {
	m.actor_id = &i
	m.addactor_id = nil
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *GitHubEventMutation) ActorID() (r int64, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the GitHubEvent entity.
// If the GitHubEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GitHubEventMutation) OldActorID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// AddActorID adds i to the "actor_id" field.
func (m *GitHubEventMutation) AddActorID(i int64) {
	if m.addactor_id != nil {
		*m.addactor_id += i
	} else {
		m.addactor_id = &i
	}
}

// AddedActorID returns the value that was added to the "actor_id" field in this mutation.
func (m *GitHubEventMutation) AddedActorID() (r int64, exists bool) {
	v := m.addactor_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *GitHubEventMutation) ResetActorID() {
	m.actor_id = nil
	m.addactor_id = nil
}

// SetRepoName sets the "repo_name" field.
func (m *GitHubEventMutation) SetRepoName(s string) {
	m.repo_name = &s
}

// RepoName returns the value of the "repo_name" field in the mutation.
func (m *GitHubEventMutation) RepoName() (r string, exists bool) {
	v := m.repo_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoName returns the old "repo_name" field's value of the GitHubEvent entity.
// If the GitHubEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GitHubEventMutation) OldRepoName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoName: %w", err)
	}
	return oldValue.RepoName, nil
}

// ResetRepoName resets all changes to the "repo_name" field.
func (m *GitHubEventMutation) ResetRepoName() {
	m.repo_name = nil
}

// SetRepoID sets the "repo_id" field.
func (m *GitHubEventMutation) SetRepoID(i int64) {
	m.repo_id = &i
	m.addrepo_id = nil
}

// RepoID returns the value of the "repo_id" field in the mutation.
func (m *GitHubEventMutation) RepoID() (r int64, exists bool) {
	v := m.repo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoID returns the old "repo_id" field's value of the GitHubEvent entity.
// If the GitHubEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GitHubEventMutation) OldRepoID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoID: %w", err)
	}
	return oldValue.RepoID, nil
}

// AddRepoID adds i to the "repo_id" field.
func (m *GitHubEventMutation) AddRepoID(i int64) {
	if m.addrepo_id != nil {
		*m.addrepo_id += i
	} else {
		m.addrepo_id = &i
	}
}

// AddedRepoID returns the value that was added to the "repo_id" field in this mutation.
func (m *GitHubEventMutation) AddedRepoID() (r int64, exists bool) {
	v := m.addrepo_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepoID resets all changes to the "repo_id" field.
func (m *GitHubEventMutation) ResetRepoID() {
	m.repo_id = nil
	m.addrepo_id = nil
}

// SetEventCreatedAt sets the "event_created_at" field.
func (m *GitHubEventMutation) SetEventCreatedAt(t time.Time) {
	m.event_created_at = &t
}

// EventCreatedAt returns the value of the "event_created_at" field in the mutation.
func (m *GitHubEventMutation) EventCreatedAt() (r time.Time, exists bool) {
	v := m.event_created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEventCreatedAt returns the old "event_created_at" field's value of the GitHubEvent entity.
// If the GitHubEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GitHubEventMutation) OldEventCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventCreatedAt: %w", err)
	}
	return oldValue.EventCreatedAt, nil
}

// ResetEventCreatedAt resets all changes to the "event_created_at" field.
func (m *GitHubEventMutation) ResetEventCreatedAt() {
	m.event_created_at = nil
}

// SetPayload sets the "payload" field.
func (m *GitHubEventMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *GitHubEventMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the GitHubEvent entity.
// If the GitHubEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GitHubEventMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *GitHubEventMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *GitHubEventMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ClearPayload clears the value of the "payload" field.
func (m *GitHubEventMutation) ClearPayload() {
	m.payload = nil
	m.appendpayload = nil
	m.clearedFields[githubevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *GitHubEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[githubevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *GitHubEventMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
	delete(m.clearedFields, githubevent.FieldPayload)
}

// SetPriority sets the "priority" field.
func (m *GitHubEventMutation) SetPriority(gi githubevent.Priority) {
	m.priority = &gi
}

// Priority returns the value of the "priority" field in the mutation.
func (m *GitHubEventMutation) Priority() (r githubevent.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the GitHubEvent entity.
// If the GitHubEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GitHubEventMutation) OldPriority(ctx context.Context) (v githubevent.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *GitHubEventMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *GitHubEventMutation) SetStatus(gi githubevent.Status) {
	m.status = &gi
}

// Status returns the value of the "status" field in the mutation.
func (m *GitHubEventMutation) Status() (r githubevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GitHubEvent entity.
// If the GitHubEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GitHubEventMutation) OldStatus(ctx context.Context) (v githubevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GitHubEventMutation) ResetStatus() {
	m.status = nil
}

// SetPodID sets the "pod_id" field.
func (m *GitHubEventMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *GitHubEventMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the GitHubEvent entity.
// If the GitHubEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GitHubEventMutation) OldPodID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *GitHubEventMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[githubevent.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *GitHubEventMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[githubevent.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *GitHubEventMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, githubevent.FieldPodID)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *GitHubEventMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *GitHubEventMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the GitHubEvent entity.
// If the GitHubEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GitHubEventMutation) OldClaimedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *GitHubEventMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[githubevent.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *GitHubEventMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[githubevent.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *GitHubEventMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, githubevent.FieldClaimedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *GitHubEventMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *GitHubEventMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the GitHubEvent entity.
// If the GitHubEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GitHubEventMutation) OldLastHeartbeatAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *GitHubEventMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[githubevent.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *GitHubEventMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[githubevent.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *GitHubEventMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, githubevent.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *GitHubEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GitHubEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GitHubEvent entity.
// If the GitHubEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GitHubEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GitHubEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the GitHubEventMutation builder.
func (m *GitHubEventMutation) Where(ps ...predicate.GitHubEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GitHubEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GitHubEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GitHubEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GitHubEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GitHubEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GitHubEvent).
func (m *GitHubEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GitHubEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.event_type != nil {
		fields = append(fields, githubevent.FieldEventType)
	}
	if m.actor_login != nil {
		fields = append(fields, githubevent.FieldActorLogin)
	}
	if m.actor_id != nil {
		fields = append(fields, githubevent.FieldActorID)
	}
	if m.repo_name != nil {
		fields = append(fields, githubevent.FieldRepoName)
	}
	if m.repo_id != nil {
		fields = append(fields, githubevent.FieldRepoID)
	}
	if m.event_created_at != nil {
		fields = append(fields, githubevent.FieldEventCreatedAt)
	}
	if m.payload != nil {
		fields = append(fields, githubevent.FieldPayload)
	}
	if m.priority != nil {
		fields = append(fields, githubevent.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, githubevent.FieldStatus)
	}
	if m.pod_id != nil {
		fields = append(fields, githubevent.FieldPodID)
	}
	if m.claimed_at != nil {
		fields = append(fields, githubevent.FieldClaimedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, githubevent.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, githubevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GitHubEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case githubevent.FieldEventType:
		return m.EventType()
	case githubevent.FieldActorLogin:
		return m.ActorLogin()
	case githubevent.FieldActorID:
		return m.ActorID()
	case githubevent.FieldRepoName:
		return m.RepoName()
	case githubevent.FieldRepoID:
		return m.RepoID()
	case githubevent.FieldEventCreatedAt:
		return m.EventCreatedAt()
	case githubevent.FieldPayload:
		return m.Payload()
	case githubevent.FieldPriority:
		return m.Priority()
	case githubevent.FieldStatus:
		return m.Status()
	case githubevent.FieldPodID:
		return m.PodID()
	case githubevent.FieldClaimedAt:
		return m.ClaimedAt()
	case githubevent.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case githubevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GitHubEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case githubevent.FieldEventType:
		return m.OldEventType(ctx)
	case githubevent.FieldActorLogin:
		return m.OldActorLogin(ctx)
	case githubevent.FieldActorID:
		return m.OldActorID(ctx)
	case githubevent.FieldRepoName:
		return m.OldRepoName(ctx)
	case githubevent.FieldRepoID:
		return m.OldRepoID(ctx)
	case githubevent.FieldEventCreatedAt:
		return m.OldEventCreatedAt(ctx)
	case githubevent.FieldPayload:
		return m.OldPayload(ctx)
	case githubevent.FieldPriority:
		return m.OldPriority(ctx)
	case githubevent.FieldStatus:
		return m.OldStatus(ctx)
	case githubevent.FieldPodID:
		return m.OldPodID(ctx)
	case githubevent.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case githubevent.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case githubevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GitHubEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GitHubEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case githubevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case githubevent.FieldActorLogin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorLogin(v)
		return nil
	case githubevent.FieldActorID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case githubevent.FieldRepoName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoName(v)
		return nil
	case githubevent.FieldRepoID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoID(v)
		return nil
	case githubevent.FieldEventCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventCreatedAt(v)
		return nil
	case githubevent.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case githubevent.FieldPriority:
		v, ok := value.(githubevent.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case githubevent.FieldStatus:
		v, ok := value.(githubevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case githubevent.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case githubevent.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case githubevent.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case githubevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GitHubEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GitHubEventMutation) AddedFields() []string {
	var fields []string
	if m.addactor_id != nil {
		fields = append(fields, githubevent.FieldActorID)
	}
	if m.addrepo_id != nil {
		fields = append(fields, githubevent.FieldRepoID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GitHubEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case githubevent.FieldActorID:
		return m.AddedActorID()
	case githubevent.FieldRepoID:
		return m.AddedRepoID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GitHubEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case githubevent.FieldActorID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActorID(v)
		return nil
	case githubevent.FieldRepoID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepoID(v)
		return nil
	}
	return fmt.Errorf("unknown GitHubEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GitHubEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(githubevent.FieldPayload) {
		fields = append(fields, githubevent.FieldPayload)
	}
	if m.FieldCleared(githubevent.FieldPodID) {
		fields = append(fields, githubevent.FieldPodID)
	}
	if m.FieldCleared(githubevent.FieldClaimedAt) {
		fields = append(fields, githubevent.FieldClaimedAt)
	}
	if m.FieldCleared(githubevent.FieldLastHeartbeatAt) {
		fields = append(fields, githubevent.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GitHubEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GitHubEventMutation) ClearField(name string) error {
	switch name {
	case githubevent.FieldPayload:
		m.ClearPayload()
		return nil
	case githubevent.FieldPodID:
		m.ClearPodID()
		return nil
	case githubevent.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case githubevent.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown GitHubEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GitHubEventMutation) ResetField(name string) error {
	switch name {
	case githubevent.FieldEventType:
		m.ResetEventType()
		return nil
	case githubevent.FieldActorLogin:
		m.ResetActorLogin()
		return nil
	case githubevent.FieldActorID:
		m.ResetActorID()
		return nil
	case githubevent.FieldRepoName:
		m.ResetRepoName()
		return nil
	case githubevent.FieldRepoID:
		m.ResetRepoID()
		return nil
	case githubevent.FieldEventCreatedAt:
		m.ResetEventCreatedAt()
		return nil
	case githubevent.FieldPayload:
		m.ResetPayload()
		return nil
	case githubevent.FieldPriority:
		m.ResetPriority()
		return nil
	case githubevent.FieldStatus:
		m.ResetStatus()
		return nil
	case githubevent.FieldPodID:
		m.ResetPodID()
		return nil
	case githubevent.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case githubevent.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case githubevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GitHubEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GitHubEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GitHubEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GitHubEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GitHubEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GitHubEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GitHubEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GitHubEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GitHubEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GitHubEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GitHubEvent edge %s", name)
}

// RepositoryProfileMutation represents an operation that mutates the RepositoryProfile nodes in the graph.
type RepositoryProfileMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	events_per_hour         *float64
	addevents_per_hour      *float64
	contributor_estimate    *float64
	addcontributor_estimate *float64
	stars                   *int
	addstars                *int
	forks                   *int
	addforks                *int
	has_security_policy     *bool
	protected_branches      *int
	addprotected_branches   *int
	criticality             *float64
	addcriticality          *float64
	criticality_updated_at  *time.Time
	first_seen              *time.Time
	last_updated            *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*RepositoryProfile, error)
	predicates              []predicate.RepositoryProfile
}

var _ ent.Mutation = (*RepositoryProfileMutation)(nil)

// repositoryprofileOption allows management of the mutation configuration using functional options.
type repositoryprofileOption func(*RepositoryProfileMutation)

// newRepositoryProfileMutation creates new mutation for the RepositoryProfile entity.
func newRepositoryProfileMutation(c config, op Op, opts ...repositoryprofileOption) *RepositoryProfileMutation {
	m := &RepositoryProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeRepositoryProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRepositoryProfileID sets the ID field of the mutation.
func withRepositoryProfileID(id string) repositoryprofileOption {
	return func(m *RepositoryProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *RepositoryProfile
		)
		m.oldValue = func(ctx context.Context) (*RepositoryProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RepositoryProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRepositoryProfile sets the old RepositoryProfile of the mutation.
func withRepositoryProfile(node *RepositoryProfile) repositoryprofileOption {
	return func(m *RepositoryProfileMutation) {
		m.oldValue = func(context.Context) (*RepositoryProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RepositoryProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RepositoryProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RepositoryProfile entities.
func (m *RepositoryProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RepositoryProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RepositoryProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RepositoryProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventsPerHour sets the "events_per_hour" field.
func (m *RepositoryProfileMutation) SetEventsPerHour(f float64) {
	m.events_per_hour = &f
	m.addevents_per_hour = nil
}

// EventsPerHour returns the value of the "events_per_hour" field in the mutation.
func (m *RepositoryProfileMutation) EventsPerHour() (r float64, exists bool) {
	v := m.events_per_hour
	if v == nil {
		return
	}
	return *v, true
}

// OldEventsPerHour returns the old "events_per_hour" field's value of the RepositoryProfile entity.
// If the RepositoryProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryProfileMutation) OldEventsPerHour(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventsPerHour is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventsPerHour requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventsPerHour: %w", err)
	}
	return oldValue.EventsPerHour, nil
}

// AddEventsPerHour adds f to the "events_per_hour" field.
func (m *RepositoryProfileMutation) AddEventsPerHour(f float64) {
	if m.addevents_per_hour != nil {
		*m.addevents_per_hour += f
	} else {
		m.addevents_per_hour = &f
	}
}

// AddedEventsPerHour returns the value that was added to the "events_per_hour" field in this mutation.
func (m *RepositoryProfileMutation) AddedEventsPerHour() (r float64, exists bool) {
	v := m.addevents_per_hour
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventsPerHour resets all changes to the "events_per_hour" field.
func (m *RepositoryProfileMutation) ResetEventsPerHour() {
	m.events_per_hour = nil
	m.addevents_per_hour = nil
}

// SetContributorEstimate sets the "contributor_estimate" field.
func (m *RepositoryProfileMutation) SetContributorEstimate(f float64) {
	m.contributor_estimate = &f
	m.addcontributor_estimate = nil
}

// ContributorEstimate returns the value of the "contributor_estimate" field in the mutation.
func (m *RepositoryProfileMutation) ContributorEstimate() (r float64, exists bool) {
	v := m.contributor_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldContributorEstimate returns the old "contributor_estimate" field's value of the RepositoryProfile entity.
// If the RepositoryProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryProfileMutation) OldContributorEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributorEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributorEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributorEstimate: %w", err)
	}
	return oldValue.ContributorEstimate, nil
}

// AddContributorEstimate adds f to the "contributor_estimate" field.
func (m *RepositoryProfileMutation) AddContributorEstimate(f float64) {
	if m.addcontributor_estimate != nil {
		*m.addcontributor_estimate += f
	} else {
		m.addcontributor_estimate = &f
	}
}

// AddedContributorEstimate returns the value that was added to the "contributor_estimate" field in this mutation.
func (m *RepositoryProfileMutation) AddedContributorEstimate() (r float64, exists bool) {
	v := m.addcontributor_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ResetContributorEstimate resets all changes to the "contributor_estimate" field.
func (m *RepositoryProfileMutation) ResetContributorEstimate() {
	m.contributor_estimate = nil
	m.addcontributor_estimate = nil
}

// SetStars sets the "stars" field.
func (m *RepositoryProfileMutation) SetStars(i int) {
	m.stars = &i
	m.addstars = nil
}

// Stars returns the value of the "stars" field in the mutation.
func (m *RepositoryProfileMutation) Stars() (r int, exists bool) {
	v := m.stars
	if v == nil {
		return
	}
	return *v, true
}

// OldStars returns the old "stars" field's value of the RepositoryProfile entity.
// If the RepositoryProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryProfileMutation) OldStars(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStars: %w", err)
	}
	return oldValue.Stars, nil
}

// AddStars adds i to the "stars" field.
func (m *RepositoryProfileMutation) AddStars(i int) {
	if m.addstars != nil {
		*m.addstars += i
	} else {
		m.addstars = &i
	}
}

// AddedStars returns the value that was added to the "stars" field in this mutation.
func (m *RepositoryProfileMutation) AddedStars() (r int, exists bool) {
	v := m.addstars
	if v == nil {
		return
	}
	return *v, true
}

// ResetStars resets all changes to the "stars" field.
func (m *RepositoryProfileMutation) ResetStars() {
	m.stars = nil
	m.addstars = nil
}

// SetForks sets the "forks" field.
func (m *RepositoryProfileMutation) SetForks(i int) {
	m.forks = &i
	m.addforks = nil
}

// Forks returns the value of the "forks" field in the mutation.
func (m *RepositoryProfileMutation) Forks() (r int, exists bool) {
	v := m.forks
	if v == nil {
		return
	}
	return *v, true
}

// OldForks returns the old "forks" field's value of the RepositoryProfile entity.
// If the RepositoryProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryProfileMutation) OldForks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForks: %w", err)
	}
	return oldValue.Forks, nil
}

// AddForks adds i to the "forks" field.
func (m *RepositoryProfileMutation) AddForks(i int) {
	if m.addforks != nil {
		*m.addforks += i
	} else {
		m.addforks = &i
	}
}

// AddedForks returns the value that was added to the "forks" field in this mutation.
func (m *RepositoryProfileMutation) AddedForks() (r int, exists bool) {
	v := m.addforks
	if v == nil {
		return
	}
	return *v, true
}

// ResetForks resets all changes to the "forks" field.
func (m *RepositoryProfileMutation) ResetForks() {
	m.forks = nil
	m.addforks = nil
}

// SetHasSecurityPolicy sets the "has_security_policy" field.
func (m *RepositoryProfileMutation) SetHasSecurityPolicy(b bool) {
	m.has_security_policy = &b
}

// HasSecurityPolicy returns the value of the "has_security_policy" field in the mutation.
func (m *RepositoryProfileMutation) HasSecurityPolicy() (r bool, exists bool) {
	v := m.has_security_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldHasSecurityPolicy returns the old "has_security_policy" field's value of the RepositoryProfile entity.
// If the RepositoryProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryProfileMutation) OldHasSecurityPolicy(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasSecurityPolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasSecurityPolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasSecurityPolicy: %w", err)
	}
	return oldValue.HasSecurityPolicy, nil
}

// ResetHasSecurityPolicy resets all changes to the "has_security_policy" field.
func (m *RepositoryProfileMutation) ResetHasSecurityPolicy() {
	m.has_security_policy = nil
}

// SetProtectedBranches sets the "protected_branches" field.
func (m *RepositoryProfileMutation) SetProtectedBranches(i int) {
	m.protected_branches = &i
	m.addprotected_branches = nil
}

// ProtectedBranches returns the value of the "protected_branches" field in the mutation.
func (m *RepositoryProfileMutation) ProtectedBranches() (r int, exists bool) {
	v := m.protected_branches
	if v == nil {
		return
	}
	return *v, true
}

// OldProtectedBranches returns the old "protected_branches" field's value of the RepositoryProfile entity.
// If the RepositoryProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryProfileMutation) OldProtectedBranches(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtectedBranches is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtectedBranches requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtectedBranches: %w", err)
	}
	return oldValue.ProtectedBranches, nil
}

// AddProtectedBranches adds i to the "protected_branches" field.
func (m *RepositoryProfileMutation) AddProtectedBranches(i int) {
	if m.addprotected_branches != nil {
		*m.addprotected_branches += i
	} else {
		m.addprotected_branches = &i
	}
}

// AddedProtectedBranches returns the value that was added to the "protected_branches" field in this mutation.
func (m *RepositoryProfileMutation) AddedProtectedBranches() (r int, exists bool) {
	v := m.addprotected_branches
	if v == nil {
		return
	}
	return *v, true
}

// ResetProtectedBranches resets all changes to the "protected_branches" field.
func (m *RepositoryProfileMutation) ResetProtectedBranches() {
	m.protected_branches = nil
	m.addprotected_branches = nil
}

// SetCriticality sets the "criticality" field.
func (m *RepositoryProfileMutation) SetCriticality(f float64) {
	m.criticality = &f
	m.addcriticality = nil
}

// Criticality returns the value of the "criticality" field in the mutation.
func (m *RepositoryProfileMutation) Criticality() (r float64, exists bool) {
	v := m.criticality
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticality returns the old "criticality" field's value of the RepositoryProfile entity.
// If the RepositoryProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryProfileMutation) OldCriticality(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticality: %w", err)
	}
	return oldValue.Criticality, nil
}

// AddCriticality adds f to the "criticality" field.
func (m *RepositoryProfileMutation) AddCriticality(f float64) {
	if m.addcriticality != nil {
		*m.addcriticality += f
	} else {
		m.addcriticality = &f
	}
}

// AddedCriticality returns the value that was added to the "criticality" field in this mutation.
func (m *RepositoryProfileMutation) AddedCriticality() (r float64, exists bool) {
	v := m.addcriticality
	if v == nil {
		return
	}
	return *v, true
}

// ResetCriticality resets all changes to the "criticality" field.
func (m *RepositoryProfileMutation) ResetCriticality() {
	m.criticality = nil
	m.addcriticality = nil
}

// SetCriticalityUpdatedAt sets the "criticality_updated_at" field.
func (m *RepositoryProfileMutation) SetCriticalityUpdatedAt(t time.Time) {
	m.criticality_updated_at = &t
}

// CriticalityUpdatedAt returns the value of the "criticality_updated_at" field in the mutation.
func (m *RepositoryProfileMutation) CriticalityUpdatedAt() (r time.Time, exists bool) {
	v := m.criticality_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticalityUpdatedAt returns the old "criticality_updated_at" field's value of the RepositoryProfile entity.
// If the RepositoryProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryProfileMutation) OldCriticalityUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticalityUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticalityUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticalityUpdatedAt: %w", err)
	}
	return oldValue.CriticalityUpdatedAt, nil
}

// ClearCriticalityUpdatedAt clears the value of the "criticality_updated_at" field.
func (m *RepositoryProfileMutation) ClearCriticalityUpdatedAt() {
	m.criticality_updated_at = nil
	m.clearedFields[repositoryprofile.FieldCriticalityUpdatedAt] = struct{}{}
}

// CriticalityUpdatedAtCleared returns if the "criticality_updated_at" field was cleared in this mutation.
func (m *RepositoryProfileMutation) CriticalityUpdatedAtCleared() bool {
	_, ok := m.clearedFields[repositoryprofile.FieldCriticalityUpdatedAt]
	return ok
}

// ResetCriticalityUpdatedAt resets all changes to the "criticality_updated_at" field.
func (m *RepositoryProfileMutation) ResetCriticalityUpdatedAt() {
	m.criticality_updated_at = nil
	delete(m.clearedFields, repositoryprofile.FieldCriticalityUpdatedAt)
}

// SetFirstSeen sets the "first_seen" field.
func (m *RepositoryProfileMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *RepositoryProfileMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the RepositoryProfile entity.
// If the RepositoryProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryProfileMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *RepositoryProfileMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *RepositoryProfileMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *RepositoryProfileMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the RepositoryProfile entity.
// If the RepositoryProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryProfileMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *RepositoryProfileMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// Where appends a list predicates to the RepositoryProfileMutation builder.
func (m *RepositoryProfileMutation) Where(ps ...predicate.RepositoryProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RepositoryProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RepositoryProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RepositoryProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RepositoryProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RepositoryProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RepositoryProfile).
func (m *RepositoryProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RepositoryProfileMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.events_per_hour != nil {
		fields = append(fields, repositoryprofile.FieldEventsPerHour)
	}
	if m.contributor_estimate != nil {
		fields = append(fields, repositoryprofile.FieldContributorEstimate)
	}
	if m.stars != nil {
		fields = append(fields, repositoryprofile.FieldStars)
	}
	if m.forks != nil {
		fields = append(fields, repositoryprofile.FieldForks)
	}
	if m.has_security_policy != nil {
		fields = append(fields, repositoryprofile.FieldHasSecurityPolicy)
	}
	if m.protected_branches != nil {
		fields = append(fields, repositoryprofile.FieldProtectedBranches)
	}
	if m.criticality != nil {
		fields = append(fields, repositoryprofile.FieldCriticality)
	}
	if m.criticality_updated_at != nil {
		fields = append(fields, repositoryprofile.FieldCriticalityUpdatedAt)
	}
	if m.first_seen != nil {
		fields = append(fields, repositoryprofile.FieldFirstSeen)
	}
	if m.last_updated != nil {
		fields = append(fields, repositoryprofile.FieldLastUpdated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RepositoryProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case repositoryprofile.FieldEventsPerHour:
		return m.EventsPerHour()
	case repositoryprofile.FieldContributorEstimate:
		return m.ContributorEstimate()
	case repositoryprofile.FieldStars:
		return m.Stars()
	case repositoryprofile.FieldForks:
		return m.Forks()
	case repositoryprofile.FieldHasSecurityPolicy:
		return m.HasSecurityPolicy()
	case repositoryprofile.FieldProtectedBranches:
		return m.ProtectedBranches()
	case repositoryprofile.FieldCriticality:
		return m.Criticality()
	case repositoryprofile.FieldCriticalityUpdatedAt:
		return m.CriticalityUpdatedAt()
	case repositoryprofile.FieldFirstSeen:
		return m.FirstSeen()
	case repositoryprofile.FieldLastUpdated:
		return m.LastUpdated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RepositoryProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case repositoryprofile.FieldEventsPerHour:
		return m.OldEventsPerHour(ctx)
	case repositoryprofile.FieldContributorEstimate:
		return m.OldContributorEstimate(ctx)
	case repositoryprofile.FieldStars:
		return m.OldStars(ctx)
	case repositoryprofile.FieldForks:
		return m.OldForks(ctx)
	case repositoryprofile.FieldHasSecurityPolicy:
		return m.OldHasSecurityPolicy(ctx)
	case repositoryprofile.FieldProtectedBranches:
		return m.OldProtectedBranches(ctx)
	case repositoryprofile.FieldCriticality:
		return m.OldCriticality(ctx)
	case repositoryprofile.FieldCriticalityUpdatedAt:
		return m.OldCriticalityUpdatedAt(ctx)
	case repositoryprofile.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case repositoryprofile.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	}
	return nil, fmt.Errorf("unknown RepositoryProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RepositoryProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case repositoryprofile.FieldEventsPerHour:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventsPerHour(v)
		return nil
	case repositoryprofile.FieldContributorEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributorEstimate(v)
		return nil
	case repositoryprofile.FieldStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStars(v)
		return nil
	case repositoryprofile.FieldForks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForks(v)
		return nil
	case repositoryprofile.FieldHasSecurityPolicy:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasSecurityPolicy(v)
		return nil
	case repositoryprofile.FieldProtectedBranches:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtectedBranches(v)
		return nil
	case repositoryprofile.FieldCriticality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticality(v)
		return nil
	case repositoryprofile.FieldCriticalityUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticalityUpdatedAt(v)
		return nil
	case repositoryprofile.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case repositoryprofile.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown RepositoryProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RepositoryProfileMutation) AddedFields() []string {
	var fields []string
	if m.addevents_per_hour != nil {
		fields = append(fields, repositoryprofile.FieldEventsPerHour)
	}
	if m.addcontributor_estimate != nil {
		fields = append(fields, repositoryprofile.FieldContributorEstimate)
	}
	if m.addstars != nil {
		fields = append(fields, repositoryprofile.FieldStars)
	}
	if m.addforks != nil {
		fields = append(fields, repositoryprofile.FieldForks)
	}
	if m.addprotected_branches != nil {
		fields = append(fields, repositoryprofile.FieldProtectedBranches)
	}
	if m.addcriticality != nil {
		fields = append(fields, repositoryprofile.FieldCriticality)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RepositoryProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case repositoryprofile.FieldEventsPerHour:
		return m.AddedEventsPerHour()
	case repositoryprofile.FieldContributorEstimate:
		return m.AddedContributorEstimate()
	case repositoryprofile.FieldStars:
		return m.AddedStars()
	case repositoryprofile.FieldForks:
		return m.AddedForks()
	case repositoryprofile.FieldProtectedBranches:
		return m.AddedProtectedBranches()
	case repositoryprofile.FieldCriticality:
		return m.AddedCriticality()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RepositoryProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case repositoryprofile.FieldEventsPerHour:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventsPerHour(v)
		return nil
	case repositoryprofile.FieldContributorEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContributorEstimate(v)
		return nil
	case repositoryprofile.FieldStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStars(v)
		return nil
	case repositoryprofile.FieldForks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddForks(v)
		return nil
	case repositoryprofile.FieldProtectedBranches:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProtectedBranches(v)
		return nil
	case repositoryprofile.FieldCriticality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCriticality(v)
		return nil
	}
	return fmt.Errorf("unknown RepositoryProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RepositoryProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(repositoryprofile.FieldCriticalityUpdatedAt) {
		fields = append(fields, repositoryprofile.FieldCriticalityUpdatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RepositoryProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RepositoryProfileMutation) ClearField(name string) error {
	switch name {
	case repositoryprofile.FieldCriticalityUpdatedAt:
		m.ClearCriticalityUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RepositoryProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RepositoryProfileMutation) ResetField(name string) error {
	switch name {
	case repositoryprofile.FieldEventsPerHour:
		m.ResetEventsPerHour()
		return nil
	case repositoryprofile.FieldContributorEstimate:
		m.ResetContributorEstimate()
		return nil
	case repositoryprofile.FieldStars:
		m.ResetStars()
		return nil
	case repositoryprofile.FieldForks:
		m.ResetForks()
		return nil
	case repositoryprofile.FieldHasSecurityPolicy:
		m.ResetHasSecurityPolicy()
		return nil
	case repositoryprofile.FieldProtectedBranches:
		m.ResetProtectedBranches()
		return nil
	case repositoryprofile.FieldCriticality:
		m.ResetCriticality()
		return nil
	case repositoryprofile.FieldCriticalityUpdatedAt:
		m.ResetCriticalityUpdatedAt()
		return nil
	case repositoryprofile.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case repositoryprofile.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown RepositoryProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RepositoryProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RepositoryProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RepositoryProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RepositoryProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RepositoryProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RepositoryProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RepositoryProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RepositoryProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RepositoryProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RepositoryProfile edge %s", name)
}

// StreamEventMutation represents an operation that mutates the StreamEvent nodes in the graph.
type StreamEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	payload       *json.RawMessage
	appendpayload json.RawMessage
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StreamEvent, error)
	predicates    []predicate.StreamEvent
}

var _ ent.Mutation = (*StreamEventMutation)(nil)

// streameventOption allows management of the mutation configuration using functional options.
type streameventOption func(*StreamEventMutation)

// newStreamEventMutation creates new mutation for the StreamEvent entity.
func newStreamEventMutation(c config, op Op, opts ...streameventOption) *StreamEventMutation {
	m := &StreamEventMutation{
		config:        c,
		op:            op,
		typ:           TypeStreamEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStreamEventID sets the ID field of the mutation.
func withStreamEventID(id int) streameventOption {
	return func(m *StreamEventMutation) {
		var (
			err   error
			once  sync.Once
			value *StreamEvent
		)
		m.oldValue = func(ctx context.Context) (*StreamEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StreamEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStreamEvent sets the old StreamEvent of the mutation.
func withStreamEvent(node *StreamEvent) streameventOption {
	return func(m *StreamEventMutation) {
		m.oldValue = func(context.Context) (*StreamEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StreamEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StreamEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StreamEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StreamEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StreamEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *StreamEventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *StreamEventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the StreamEvent entity.
// If the StreamEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamEventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *StreamEventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *StreamEventMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StreamEventMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StreamEvent entity.
// If the StreamEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamEventMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *StreamEventMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *StreamEventMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ResetPayload resets all changes to the "payload" field.
func (m *StreamEventMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StreamEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StreamEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StreamEvent entity.
// If the StreamEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StreamEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StreamEventMutation builder.
func (m *StreamEventMutation) Where(ps ...predicate.StreamEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StreamEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StreamEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StreamEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StreamEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StreamEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StreamEvent).
func (m *StreamEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StreamEventMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.channel != nil {
		fields = append(fields, streamevent.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, streamevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, streamevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StreamEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case streamevent.FieldChannel:
		return m.Channel()
	case streamevent.FieldPayload:
		return m.Payload()
	case streamevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StreamEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case streamevent.FieldChannel:
		return m.OldChannel(ctx)
	case streamevent.FieldPayload:
		return m.OldPayload(ctx)
	case streamevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StreamEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StreamEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case streamevent.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case streamevent.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case streamevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StreamEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StreamEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StreamEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StreamEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StreamEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StreamEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StreamEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StreamEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StreamEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StreamEventMutation) ResetField(name string) error {
	switch name {
	case streamevent.FieldChannel:
		m.ResetChannel()
		return nil
	case streamevent.FieldPayload:
		m.ResetPayload()
		return nil
	case streamevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StreamEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StreamEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StreamEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StreamEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StreamEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StreamEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StreamEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StreamEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StreamEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StreamEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StreamEvent edge %s", name)
}

// TemporalPatternMutation represents an operation that mutates the TemporalPattern nodes in the graph.
type TemporalPatternMutation struct {
	config
	op             Op
	typ            string
	id             *int
	pattern_type   *temporalpattern.PatternType
	event_id       *string
	repo_name      *string
	actor_login    *string
	severity       *float64
	addseverity    *float64
	event_count    *int
	addevent_count *int
	actor_count    *int
	addactor_count *int
	window_start   *time.Time
	window_end     *time.Time
	detected_at    *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*TemporalPattern, error)
	predicates     []predicate.TemporalPattern
}

var _ ent.Mutation = (*TemporalPatternMutation)(nil)

// temporalpatternOption allows management of the mutation configuration using functional options.
type temporalpatternOption func(*TemporalPatternMutation)

// newTemporalPatternMutation creates new mutation for the TemporalPattern entity.
func newTemporalPatternMutation(c config, op Op, opts ...temporalpatternOption) *TemporalPatternMutation {
	m := &TemporalPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeTemporalPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTemporalPatternID sets the ID field of the mutation.
func withTemporalPatternID(id int) temporalpatternOption {
	return func(m *TemporalPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *TemporalPattern
		)
		m.oldValue = func(ctx context.Context) (*TemporalPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TemporalPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTemporalPattern sets the old TemporalPattern of the mutation.
func withTemporalPattern(node *TemporalPattern) temporalpatternOption {
	return func(m *TemporalPatternMutation) {
		m.oldValue = func(context.Context) (*TemporalPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TemporalPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TemporalPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TemporalPatternMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TemporalPatternMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TemporalPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatternType sets the "pattern_type" field.
func (m *TemporalPatternMutation) SetPatternType(tt temporalpattern.PatternType) {
	m.pattern_type = &tt
}

// PatternType returns the value of the "pattern_type" field in the mutation.
func (m *TemporalPatternMutation) PatternType() (r temporalpattern.PatternType, exists bool) {
	v := m.pattern_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternType returns the old "pattern_type" field's value of the TemporalPattern entity.
// If the TemporalPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemporalPatternMutation) OldPatternType(ctx context.Context) (v temporalpattern.PatternType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternType: %w", err)
	}
	return oldValue.PatternType, nil
}

// ResetPatternType resets all changes to the "pattern_type" field.
func (m *TemporalPatternMutation) ResetPatternType() {
	m.pattern_type = nil
}

// SetEventID sets the "event_id" field.
func (m *TemporalPatternMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *TemporalPatternMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the TemporalPattern entity.
// If the TemporalPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemporalPatternMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *TemporalPatternMutation) ResetEventID() {
	m.event_id = nil
}

// SetRepoName sets the "repo_name" field.
func (m *TemporalPatternMutation) SetRepoName(s string) {
	m.repo_name = &s
}

// RepoName returns the value of the "repo_name" field in the mutation.
func (m *TemporalPatternMutation) RepoName() (r string, exists bool) {
	v := m.repo_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoName returns the old "repo_name" field's value of the TemporalPattern entity.
// If the TemporalPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemporalPatternMutation) OldRepoName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoName: %w", err)
	}
	return oldValue.RepoName, nil
}

// ResetRepoName resets all changes to the "repo_name" field.
func (m *TemporalPatternMutation) ResetRepoName() {
	m.repo_name = nil
}

// SetActorLogin sets the "actor_login" field.
func (m *TemporalPatternMutation) SetActorLogin(s string) {
	m.actor_login = &s
}

// ActorLogin returns the value of the "actor_login" field in the mutation.
func (m *TemporalPatternMutation) ActorLogin() (r string, exists bool) {
	v := m.actor_login
	if v == nil {
		return
	}
	return *v, true
}

// OldActorLogin returns the old "actor_login" field's value of the TemporalPattern entity.
// If the TemporalPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemporalPatternMutation) OldActorLogin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorLogin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorLogin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorLogin: %w", err)
	}
	return oldValue.ActorLogin, nil
}

// ClearActorLogin clears the value of the "actor_login" field.
func (m *TemporalPatternMutation) ClearActorLogin() {
	m.actor_login = nil
	m.clearedFields[temporalpattern.FieldActorLogin] = struct{}{}
}

// ActorLoginCleared returns if the "actor_login" field was cleared in this mutation.
func (m *TemporalPatternMutation) ActorLoginCleared() bool {
	_, ok := m.clearedFields[temporalpattern.FieldActorLogin]
	return ok
}

// ResetActorLogin resets all changes to the "actor_login" field.
func (m *TemporalPatternMutation) ResetActorLogin() {
	m.actor_login = nil
	delete(m.clearedFields, temporalpattern.FieldActorLogin)
}

// SetSeverity sets the "severity" field.
func (m *TemporalPatternMutation) SetSeverity(f float64) {
	m.severity = &f
	m.addseverity = nil
}

// Severity returns the value of the "severity" field in the mutation.
func (m *TemporalPatternMutation) Severity() (r float64, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the TemporalPattern entity.
// If the TemporalPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemporalPatternMutation) OldSeverity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// AddSeverity adds f to the "severity" field.
func (m *TemporalPatternMutation) AddSeverity(f float64) {
	if m.addseverity != nil {
		*m.addseverity += f
	} else {
		m.addseverity = &f
	}
}

// AddedSeverity returns the value that was added to the "severity" field in this mutation.
func (m *TemporalPatternMutation) AddedSeverity() (r float64, exists bool) {
	v := m.addseverity
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeverity resets all changes to the "severity" field.
func (m *TemporalPatternMutation) ResetSeverity() {
	m.severity = nil
	m.addseverity = nil
}

// SetEventCount sets the "event_count" field.
func (m *TemporalPatternMutation) SetEventCount(i int) {
	m.event_count = &i
	m.addevent_count = nil
}

// EventCount returns the value of the "event_count" field in the mutation.
func (m *TemporalPatternMutation) EventCount() (r int, exists bool) {
	v := m.event_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEventCount returns the old "event_count" field's value of the TemporalPattern entity.
// If the TemporalPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemporalPatternMutation) OldEventCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventCount: %w", err)
	}
	return oldValue.EventCount, nil
}

// AddEventCount adds i to the "event_count" field.
func (m *TemporalPatternMutation) AddEventCount(i int) {
	if m.addevent_count != nil {
		*m.addevent_count += i
	} else {
		m.addevent_count = &i
	}
}

// AddedEventCount returns the value that was added to the "event_count" field in this mutation.
func (m *TemporalPatternMutation) AddedEventCount() (r int, exists bool) {
	v := m.addevent_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventCount resets all changes to the "event_count" field.
func (m *TemporalPatternMutation) ResetEventCount() {
	m.event_count = nil
	m.addevent_count = nil
}

// SetActorCount sets the "actor_count" field.
func (m *TemporalPatternMutation) SetActorCount(i int) {
	m.actor_count = &i
	m.addactor_count = nil
}

// ActorCount returns the value of the "actor_count" field in the mutation.
func (m *TemporalPatternMutation) ActorCount() (r int, exists bool) {
	v := m.actor_count
	if v == nil {
		return
	}
	return *v, true
}

// OldActorCount returns the old "actor_count" field's value of the TemporalPattern entity.
// If the TemporalPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemporalPatternMutation) OldActorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorCount: %w", err)
	}
	return oldValue.ActorCount, nil
}

// AddActorCount adds i to the "actor_count" field.
func (m *TemporalPatternMutation) AddActorCount(i int) {
	if m.addactor_count != nil {
		*m.addactor_count += i
	} else {
		m.addactor_count = &i
	}
}

// AddedActorCount returns the value that was added to the "actor_count" field in this mutation.
func (m *TemporalPatternMutation) AddedActorCount() (r int, exists bool) {
	v := m.addactor_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetActorCount resets all changes to the "actor_count" field.
func (m *TemporalPatternMutation) ResetActorCount() {
	m.actor_count = nil
	m.addactor_count = nil
}

// SetWindowStart sets the "window_start" field.
func (m *TemporalPatternMutation) SetWindowStart(t time.Time) {
	m.window_start = &t
}

// WindowStart returns the value of the "window_start" field in the mutation.
func (m *TemporalPatternMutation) WindowStart() (r time.Time, exists bool) {
	v := m.window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStart returns the old "window_start" field's value of the TemporalPattern entity.
// If the TemporalPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemporalPatternMutation) OldWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStart: %w", err)
	}
	return oldValue.WindowStart, nil
}

// ResetWindowStart resets all changes to the "window_start" field.
func (m *TemporalPatternMutation) ResetWindowStart() {
	m.window_start = nil
}

// SetWindowEnd sets the "window_end" field.
func (m *TemporalPatternMutation) SetWindowEnd(t time.Time) {
	m.window_end = &t
}

// WindowEnd returns the value of the "window_end" field in the mutation.
func (m *TemporalPatternMutation) WindowEnd() (r time.Time, exists bool) {
	v := m.window_end
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowEnd returns the old "window_end" field's value of the TemporalPattern entity.
// If the TemporalPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemporalPatternMutation) OldWindowEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowEnd: %w", err)
	}
	return oldValue.WindowEnd, nil
}

// ResetWindowEnd resets all changes to the "window_end" field.
func (m *TemporalPatternMutation) ResetWindowEnd() {
	m.window_end = nil
}

// SetDetectedAt sets the "detected_at" field.
func (m *TemporalPatternMutation) SetDetectedAt(t time.Time) {
	m.detected_at = &t
}

// DetectedAt returns the value of the "detected_at" field in the mutation.
func (m *TemporalPatternMutation) DetectedAt() (r time.Time, exists bool) {
	v := m.detected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedAt returns the old "detected_at" field's value of the TemporalPattern entity.
// If the TemporalPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemporalPatternMutation) OldDetectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedAt: %w", err)
	}
	return oldValue.DetectedAt, nil
}

// ResetDetectedAt resets all changes to the "detected_at" field.
func (m *TemporalPatternMutation) ResetDetectedAt() {
	m.detected_at = nil
}

// Where appends a list predicates to the TemporalPatternMutation builder.
func (m *TemporalPatternMutation) Where(ps ...predicate.TemporalPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TemporalPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TemporalPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TemporalPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TemporalPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TemporalPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TemporalPattern).
func (m *TemporalPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TemporalPatternMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.pattern_type != nil {
		fields = append(fields, temporalpattern.FieldPatternType)
	}
	if m.event_id != nil {
		fields = append(fields, temporalpattern.FieldEventID)
	}
	if m.repo_name != nil {
		fields = append(fields, temporalpattern.FieldRepoName)
	}
	if m.actor_login != nil {
		fields = append(fields, temporalpattern.FieldActorLogin)
	}
	if m.severity != nil {
		fields = append(fields, temporalpattern.FieldSeverity)
	}
	if m.event_count != nil {
		fields = append(fields, temporalpattern.FieldEventCount)
	}
	if m.actor_count != nil {
		fields = append(fields, temporalpattern.FieldActorCount)
	}
	if m.window_start != nil {
		fields = append(fields, temporalpattern.FieldWindowStart)
	}
	if m.window_end != nil {
		fields = append(fields, temporalpattern.FieldWindowEnd)
	}
	if m.detected_at != nil {
		fields = append(fields, temporalpattern.FieldDetectedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TemporalPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case temporalpattern.FieldPatternType:
		return m.PatternType()
	case temporalpattern.FieldEventID:
		return m.EventID()
	case temporalpattern.FieldRepoName:
		return m.RepoName()
	case temporalpattern.FieldActorLogin:
		return m.ActorLogin()
	case temporalpattern.FieldSeverity:
		return m.Severity()
	case temporalpattern.FieldEventCount:
		return m.EventCount()
	case temporalpattern.FieldActorCount:
		return m.ActorCount()
	case temporalpattern.FieldWindowStart:
		return m.WindowStart()
	case temporalpattern.FieldWindowEnd:
		return m.WindowEnd()
	case temporalpattern.FieldDetectedAt:
		return m.DetectedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TemporalPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case temporalpattern.FieldPatternType:
		return m.OldPatternType(ctx)
	case temporalpattern.FieldEventID:
		return m.OldEventID(ctx)
	case temporalpattern.FieldRepoName:
		return m.OldRepoName(ctx)
	case temporalpattern.FieldActorLogin:
		return m.OldActorLogin(ctx)
	case temporalpattern.FieldSeverity:
		return m.OldSeverity(ctx)
	case temporalpattern.FieldEventCount:
		return m.OldEventCount(ctx)
	case temporalpattern.FieldActorCount:
		return m.OldActorCount(ctx)
	case temporalpattern.FieldWindowStart:
		return m.OldWindowStart(ctx)
	case temporalpattern.FieldWindowEnd:
		return m.OldWindowEnd(ctx)
	case temporalpattern.FieldDetectedAt:
		return m.OldDetectedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TemporalPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemporalPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case temporalpattern.FieldPatternType:
		v, ok := value.(temporalpattern.PatternType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternType(v)
		return nil
	case temporalpattern.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case temporalpattern.FieldRepoName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoName(v)
		return nil
	case temporalpattern.FieldActorLogin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorLogin(v)
		return nil
	case temporalpattern.FieldSeverity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case temporalpattern.FieldEventCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventCount(v)
		return nil
	case temporalpattern.FieldActorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorCount(v)
		return nil
	case temporalpattern.FieldWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStart(v)
		return nil
	case temporalpattern.FieldWindowEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowEnd(v)
		return nil
	case temporalpattern.FieldDetectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TemporalPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TemporalPatternMutation) AddedFields() []string {
	var fields []string
	if m.addseverity != nil {
		fields = append(fields, temporalpattern.FieldSeverity)
	}
	if m.addevent_count != nil {
		fields = append(fields, temporalpattern.FieldEventCount)
	}
	if m.addactor_count != nil {
		fields = append(fields, temporalpattern.FieldActorCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TemporalPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case temporalpattern.FieldSeverity:
		return m.AddedSeverity()
	case temporalpattern.FieldEventCount:
		return m.AddedEventCount()
	case temporalpattern.FieldActorCount:
		return m.AddedActorCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemporalPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case temporalpattern.FieldSeverity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeverity(v)
		return nil
	case temporalpattern.FieldEventCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventCount(v)
		return nil
	case temporalpattern.FieldActorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActorCount(v)
		return nil
	}
	return fmt.Errorf("unknown TemporalPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TemporalPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(temporalpattern.FieldActorLogin) {
		fields = append(fields, temporalpattern.FieldActorLogin)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TemporalPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TemporalPatternMutation) ClearField(name string) error {
	switch name {
	case temporalpattern.FieldActorLogin:
		m.ClearActorLogin()
		return nil
	}
	return fmt.Errorf("unknown TemporalPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TemporalPatternMutation) ResetField(name string) error {
	switch name {
	case temporalpattern.FieldPatternType:
		m.ResetPatternType()
		return nil
	case temporalpattern.FieldEventID:
		m.ResetEventID()
		return nil
	case temporalpattern.FieldRepoName:
		m.ResetRepoName()
		return nil
	case temporalpattern.FieldActorLogin:
		m.ResetActorLogin()
		return nil
	case temporalpattern.FieldSeverity:
		m.ResetSeverity()
		return nil
	case temporalpattern.FieldEventCount:
		m.ResetEventCount()
		return nil
	case temporalpattern.FieldActorCount:
		m.ResetActorCount()
		return nil
	case temporalpattern.FieldWindowStart:
		m.ResetWindowStart()
		return nil
	case temporalpattern.FieldWindowEnd:
		m.ResetWindowEnd()
		return nil
	case temporalpattern.FieldDetectedAt:
		m.ResetDetectedAt()
		return nil
	}
	return fmt.Errorf("unknown TemporalPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TemporalPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TemporalPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TemporalPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TemporalPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TemporalPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TemporalPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TemporalPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TemporalPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TemporalPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TemporalPattern edge %s", name)
}

// UserProfileMutation represents an operation that mutates the UserProfile nodes in the graph.
type UserProfileMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	mean_features           *[]float64
	appendmean_features     []float64
	variance_features       *[]float64
	appendvariance_features []float64
	sample_count            *int64
	addsample_count         *int64
	feature_history         *[][]float64
	appendfeature_history   [][]float64
	hour_counts             *[]float64
	appendhour_counts       []float64
	week_rate               *float64
	addweek_rate            *float64
	event_type_counts       *map[string]int64
	first_seen              *time.Time
	last_updated            *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*UserProfile, error)
	predicates              []predicate.UserProfile
}

var _ ent.Mutation = (*UserProfileMutation)(nil)

// userprofileOption allows management of the mutation configuration using functional options.
type userprofileOption func(*UserProfileMutation)

// newUserProfileMutation creates new mutation for the UserProfile entity.
func newUserProfileMutation(c config, op Op, opts ...userprofileOption) *UserProfileMutation {
	m := &UserProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeUserProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserProfileID sets the ID field of the mutation.
func withUserProfileID(id string) userprofileOption {
	return func(m *UserProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *UserProfile
		)
		m.oldValue = func(ctx context.Context) (*UserProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserProfile sets the old UserProfile of the mutation.
func withUserProfile(node *UserProfile) userprofileOption {
	return func(m *UserProfileMutation) {
		m.oldValue = func(context.Context) (*UserProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserProfile entities.
func (m *UserProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMeanFeatures sets the "mean_features" field.
func (m *UserProfileMutation) SetMeanFeatures(f []float64) {
	m.mean_features = &f
	m.appendmean_features = nil
}

// MeanFeatures returns the value of the "mean_features" field in the mutation.
func (m *UserProfileMutation) MeanFeatures() (r []float64, exists bool) {
	v := m.mean_features
	if v == nil {
		return
	}
	return *v, true
}

// OldMeanFeatures returns the old "mean_features" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldMeanFeatures(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeanFeatures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeanFeatures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeanFeatures: %w", err)
	}
	return oldValue.MeanFeatures, nil
}

// AppendMeanFeatures adds f to the "mean_features" field.
func (m *UserProfileMutation) AppendMeanFeatures(f []float64) {
	m.appendmean_features = append(m.appendmean_features, f...)
}

// AppendedMeanFeatures returns the list of values that were appended to the "mean_features" field in this mutation.
func (m *UserProfileMutation) AppendedMeanFeatures() ([]float64, bool) {
	if len(m.appendmean_features) == 0 {
		return nil, false
	}
	return m.appendmean_features, true
}

// ResetMeanFeatures resets all changes to the "mean_features" field.
func (m *UserProfileMutation) ResetMeanFeatures() {
	m.mean_features = nil
	m.appendmean_features = nil
}

// SetVarianceFeatures sets the "variance_features" field.
func (m *UserProfileMutation) SetVarianceFeatures(f []float64) {
	m.variance_features = &f
	m.appendvariance_features = nil
}

// VarianceFeatures returns the value of the "variance_features" field in the mutation.
func (m *UserProfileMutation) VarianceFeatures() (r []float64, exists bool) {
	v := m.variance_features
	if v == nil {
		return
	}
	return *v, true
}

// OldVarianceFeatures returns the old "variance_features" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldVarianceFeatures(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVarianceFeatures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVarianceFeatures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVarianceFeatures: %w", err)
	}
	return oldValue.VarianceFeatures, nil
}

// AppendVarianceFeatures adds f to the "variance_features" field.
func (m *UserProfileMutation) AppendVarianceFeatures(f []float64) {
	m.appendvariance_features = append(m.appendvariance_features, f...)
}

// AppendedVarianceFeatures returns the list of values that were appended to the "variance_features" field in this mutation.
func (m *UserProfileMutation) AppendedVarianceFeatures() ([]float64, bool) {
	if len(m.appendvariance_features) == 0 {
		return nil, false
	}
	return m.appendvariance_features, true
}

// ResetVarianceFeatures resets all changes to the "variance_features" field.
func (m *UserProfileMutation) ResetVarianceFeatures() {
	m.variance_features = nil
	m.appendvariance_features = nil
}

// SetSampleCount sets the "sample_count" field.
func (m *UserProfileMutation) SetSampleCount(i int64) {
	m.sample_count = &i
	m.addsample_count = nil
}

// SampleCount returns the value of the "sample_count" field in the mutation.
func (m *UserProfileMutation) SampleCount() (r int64, exists bool) {
	v := m.sample_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleCount returns the old "sample_count" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldSampleCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleCount: %w", err)
	}
	return oldValue.SampleCount, nil
}

// AddSampleCount adds i to the "sample_count" field.
func (m *UserProfileMutation) AddSampleCount(i int64) {
	if m.addsample_count != nil {
		*m.addsample_count += i
	} else {
		m.addsample_count = &i
	}
}

// AddedSampleCount returns the value that was added to the "sample_count" field in this mutation.
func (m *UserProfileMutation) AddedSampleCount() (r int64, exists bool) {
	v := m.addsample_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSampleCount resets all changes to the "sample_count" field.
func (m *UserProfileMutation) ResetSampleCount() {
	m.sample_count = nil
	m.addsample_count = nil
}

// SetFeatureHistory sets the "feature_history" field.
func (m *UserProfileMutation) SetFeatureHistory(f [][]float64) {
	m.feature_history = &f
	m.appendfeature_history = nil
}

// FeatureHistory returns the value of the "feature_history" field in the mutation.
func (m *UserProfileMutation) FeatureHistory() (r [][]float64, exists bool) {
	v := m.feature_history
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureHistory returns the old "feature_history" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldFeatureHistory(ctx context.Context) (v [][]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureHistory: %w", err)
	}
	return oldValue.FeatureHistory, nil
}

// AppendFeatureHistory adds f to the "feature_history" field.
func (m *UserProfileMutation) AppendFeatureHistory(f [][]float64) {
	m.appendfeature_history = append(m.appendfeature_history, f...)
}

// AppendedFeatureHistory returns the list of values that were appended to the "feature_history" field in this mutation.
func (m *UserProfileMutation) AppendedFeatureHistory() ([][]float64, bool) {
	if len(m.appendfeature_history) == 0 {
		return nil, false
	}
	return m.appendfeature_history, true
}

// ClearFeatureHistory clears the value of the "feature_history" field.
func (m *UserProfileMutation) ClearFeatureHistory() {
	m.feature_history = nil
	m.appendfeature_history = nil
	m.clearedFields[userprofile.FieldFeatureHistory] = struct{}{}
}

// FeatureHistoryCleared returns if the "feature_history" field was cleared in this mutation.
func (m *UserProfileMutation) FeatureHistoryCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldFeatureHistory]
	return ok
}

// ResetFeatureHistory resets all changes to the "feature_history" field.
func (m *UserProfileMutation) ResetFeatureHistory() {
	m.feature_history = nil
	m.appendfeature_history = nil
	delete(m.clearedFields, userprofile.FieldFeatureHistory)
}

// SetHourCounts sets the "hour_counts" field.
func (m *UserProfileMutation) SetHourCounts(f []float64) {
	m.hour_counts = &f
	m.appendhour_counts = nil
}

// HourCounts returns the value of the "hour_counts" field in the mutation.
func (m *UserProfileMutation) HourCounts() (r []float64, exists bool) {
	v := m.hour_counts
	if v == nil {
		return
	}
	return *v, true
}

// OldHourCounts returns the old "hour_counts" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldHourCounts(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHourCounts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHourCounts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHourCounts: %w", err)
	}
	return oldValue.HourCounts, nil
}

// AppendHourCounts adds f to the "hour_counts" field.
func (m *UserProfileMutation) AppendHourCounts(f []float64) {
	m.appendhour_counts = append(m.appendhour_counts, f...)
}

// AppendedHourCounts returns the list of values that were appended to the "hour_counts" field in this mutation.
func (m *UserProfileMutation) AppendedHourCounts() ([]float64, bool) {
	if len(m.appendhour_counts) == 0 {
		return nil, false
	}
	return m.appendhour_counts, true
}

// ClearHourCounts clears the value of the "hour_counts" field.
func (m *UserProfileMutation) ClearHourCounts() {
	m.hour_counts = nil
	m.appendhour_counts = nil
	m.clearedFields[userprofile.FieldHourCounts] = struct{}{}
}

// HourCountsCleared returns if the "hour_counts" field was cleared in this mutation.
func (m *UserProfileMutation) HourCountsCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldHourCounts]
	return ok
}

// ResetHourCounts resets all changes to the "hour_counts" field.
func (m *UserProfileMutation) ResetHourCounts() {
	m.hour_counts = nil
	m.appendhour_counts = nil
	delete(m.clearedFields, userprofile.FieldHourCounts)
}

// SetWeekRate sets the "week_rate" field.
func (m *UserProfileMutation) SetWeekRate(f float64) {
	m.week_rate = &f
	m.addweek_rate = nil
}

// WeekRate returns the value of the "week_rate" field in the mutation.
func (m *UserProfileMutation) WeekRate() (r float64, exists bool) {
	v := m.week_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekRate returns the old "week_rate" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldWeekRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekRate: %w", err)
	}
	return oldValue.WeekRate, nil
}

// AddWeekRate adds f to the "week_rate" field.
func (m *UserProfileMutation) AddWeekRate(f float64) {
	if m.addweek_rate != nil {
		*m.addweek_rate += f
	} else {
		m.addweek_rate = &f
	}
}

// AddedWeekRate returns the value that was added to the "week_rate" field in this mutation.
func (m *UserProfileMutation) AddedWeekRate() (r float64, exists bool) {
	v := m.addweek_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeekRate resets all changes to the "week_rate" field.
func (m *UserProfileMutation) ResetWeekRate() {
	m.week_rate = nil
	m.addweek_rate = nil
}

// SetEventTypeCounts sets the "event_type_counts" field.
func (m *UserProfileMutation) SetEventTypeCounts(value map[string]int64) {
	m.event_type_counts = &value
}

// EventTypeCounts returns the value of the "event_type_counts" field in the mutation.
func (m *UserProfileMutation) EventTypeCounts() (r map[string]int64, exists bool) {
	v := m.event_type_counts
	if v == nil {
		return
	}
	return *v, true
}

// OldEventTypeCounts returns the old "event_type_counts" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldEventTypeCounts(ctx context.Context) (v map[string]int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventTypeCounts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventTypeCounts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventTypeCounts: %w", err)
	}
	return oldValue.EventTypeCounts, nil
}

// ClearEventTypeCounts clears the value of the "event_type_counts" field.
func (m *UserProfileMutation) ClearEventTypeCounts() {
	m.event_type_counts = nil
	m.clearedFields[userprofile.FieldEventTypeCounts] = struct{}{}
}

// EventTypeCountsCleared returns if the "event_type_counts" field was cleared in this mutation.
func (m *UserProfileMutation) EventTypeCountsCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldEventTypeCounts]
	return ok
}

// ResetEventTypeCounts resets all changes to the "event_type_counts" field.
func (m *UserProfileMutation) ResetEventTypeCounts() {
	m.event_type_counts = nil
	delete(m.clearedFields, userprofile.FieldEventTypeCounts)
}

// SetFirstSeen sets the "first_seen" field.
func (m *UserProfileMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *UserProfileMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *UserProfileMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *UserProfileMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *UserProfileMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *UserProfileMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// Where appends a list predicates to the UserProfileMutation builder.
func (m *UserProfileMutation) Where(ps ...predicate.UserProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserProfile).
func (m *UserProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserProfileMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.mean_features != nil {
		fields = append(fields, userprofile.FieldMeanFeatures)
	}
	if m.variance_features != nil {
		fields = append(fields, userprofile.FieldVarianceFeatures)
	}
	if m.sample_count != nil {
		fields = append(fields, userprofile.FieldSampleCount)
	}
	if m.feature_history != nil {
		fields = append(fields, userprofile.FieldFeatureHistory)
	}
	if m.hour_counts != nil {
		fields = append(fields, userprofile.FieldHourCounts)
	}
	if m.week_rate != nil {
		fields = append(fields, userprofile.FieldWeekRate)
	}
	if m.event_type_counts != nil {
		fields = append(fields, userprofile.FieldEventTypeCounts)
	}
	if m.first_seen != nil {
		fields = append(fields, userprofile.FieldFirstSeen)
	}
	if m.last_updated != nil {
		fields = append(fields, userprofile.FieldLastUpdated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userprofile.FieldMeanFeatures:
		return m.MeanFeatures()
	case userprofile.FieldVarianceFeatures:
		return m.VarianceFeatures()
	case userprofile.FieldSampleCount:
		return m.SampleCount()
	case userprofile.FieldFeatureHistory:
		return m.FeatureHistory()
	case userprofile.FieldHourCounts:
		return m.HourCounts()
	case userprofile.FieldWeekRate:
		return m.WeekRate()
	case userprofile.FieldEventTypeCounts:
		return m.EventTypeCounts()
	case userprofile.FieldFirstSeen:
		return m.FirstSeen()
	case userprofile.FieldLastUpdated:
		return m.LastUpdated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userprofile.FieldMeanFeatures:
		return m.OldMeanFeatures(ctx)
	case userprofile.FieldVarianceFeatures:
		return m.OldVarianceFeatures(ctx)
	case userprofile.FieldSampleCount:
		return m.OldSampleCount(ctx)
	case userprofile.FieldFeatureHistory:
		return m.OldFeatureHistory(ctx)
	case userprofile.FieldHourCounts:
		return m.OldHourCounts(ctx)
	case userprofile.FieldWeekRate:
		return m.OldWeekRate(ctx)
	case userprofile.FieldEventTypeCounts:
		return m.OldEventTypeCounts(ctx)
	case userprofile.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case userprofile.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	}
	return nil, fmt.Errorf("unknown UserProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userprofile.FieldMeanFeatures:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeanFeatures(v)
		return nil
	case userprofile.FieldVarianceFeatures:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVarianceFeatures(v)
		return nil
	case userprofile.FieldSampleCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleCount(v)
		return nil
	case userprofile.FieldFeatureHistory:
		v, ok := value.([][]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureHistory(v)
		return nil
	case userprofile.FieldHourCounts:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHourCounts(v)
		return nil
	case userprofile.FieldWeekRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekRate(v)
		return nil
	case userprofile.FieldEventTypeCounts:
		v, ok := value.(map[string]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventTypeCounts(v)
		return nil
	case userprofile.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case userprofile.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserProfileMutation) AddedFields() []string {
	var fields []string
	if m.addsample_count != nil {
		fields = append(fields, userprofile.FieldSampleCount)
	}
	if m.addweek_rate != nil {
		fields = append(fields, userprofile.FieldWeekRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userprofile.FieldSampleCount:
		return m.AddedSampleCount()
	case userprofile.FieldWeekRate:
		return m.AddedWeekRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userprofile.FieldSampleCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSampleCount(v)
		return nil
	case userprofile.FieldWeekRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeekRate(v)
		return nil
	}
	return fmt.Errorf("unknown UserProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userprofile.FieldFeatureHistory) {
		fields = append(fields, userprofile.FieldFeatureHistory)
	}
	if m.FieldCleared(userprofile.FieldHourCounts) {
		fields = append(fields, userprofile.FieldHourCounts)
	}
	if m.FieldCleared(userprofile.FieldEventTypeCounts) {
		fields = append(fields, userprofile.FieldEventTypeCounts)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserProfileMutation) ClearField(name string) error {
	switch name {
	case userprofile.FieldFeatureHistory:
		m.ClearFeatureHistory()
		return nil
	case userprofile.FieldHourCounts:
		m.ClearHourCounts()
		return nil
	case userprofile.FieldEventTypeCounts:
		m.ClearEventTypeCounts()
		return nil
	}
	return fmt.Errorf("unknown UserProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserProfileMutation) ResetField(name string) error {
	switch name {
	case userprofile.FieldMeanFeatures:
		m.ResetMeanFeatures()
		return nil
	case userprofile.FieldVarianceFeatures:
		m.ResetVarianceFeatures()
		return nil
	case userprofile.FieldSampleCount:
		m.ResetSampleCount()
		return nil
	case userprofile.FieldFeatureHistory:
		m.ResetFeatureHistory()
		return nil
	case userprofile.FieldHourCounts:
		m.ResetHourCounts()
		return nil
	case userprofile.FieldWeekRate:
		m.ResetWeekRate()
		return nil
	case userprofile.FieldEventTypeCounts:
		m.ResetEventTypeCounts()
		return nil
	case userprofile.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case userprofile.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserProfile edge %s", name)
}
