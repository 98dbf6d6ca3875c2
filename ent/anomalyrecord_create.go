// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgewatch/forgewatch/ent/anomalyrecord"
)

// AnomalyRecordCreate is the builder for creating a AnomalyRecord entity.
type AnomalyRecordCreate struct {
	config
	mutation *AnomalyRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *AnomalyRecordCreate) SetEventID(v string) *AnomalyRecordCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetRepositoryName sets the "repository_name" field.
func (_c *AnomalyRecordCreate) SetRepositoryName(v string) *AnomalyRecordCreate {
	_c.mutation.SetRepositoryName(v)
	return _c
}

// SetUserLogin sets the "user_login" field.
func (_c *AnomalyRecordCreate) SetUserLogin(v string) *AnomalyRecordCreate {
	_c.mutation.SetUserLogin(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *AnomalyRecordCreate) SetEventType(v string) *AnomalyRecordCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetEventTimestamp sets the "event_timestamp" field.
func (_c *AnomalyRecordCreate) SetEventTimestamp(v time.Time) *AnomalyRecordCreate {
	_c.mutation.SetEventTimestamp(v)
	return _c
}

// SetBehavioralAnomalyScore sets the "behavioral_anomaly_score" field.
func (_c *AnomalyRecordCreate) SetBehavioralAnomalyScore(v float64) *AnomalyRecordCreate {
	_c.mutation.SetBehavioralAnomalyScore(v)
	return _c
}

// SetContentRiskScore sets the "content_risk_score" field.
func (_c *AnomalyRecordCreate) SetContentRiskScore(v float64) *AnomalyRecordCreate {
	_c.mutation.SetContentRiskScore(v)
	return _c
}

// SetTemporalAnomalyScore sets the "temporal_anomaly_score" field.
func (_c *AnomalyRecordCreate) SetTemporalAnomalyScore(v float64) *AnomalyRecordCreate {
	_c.mutation.SetTemporalAnomalyScore(v)
	return _c
}

// SetRepositoryCriticalityScore sets the "repository_criticality_score" field.
func (_c *AnomalyRecordCreate) SetRepositoryCriticalityScore(v float64) *AnomalyRecordCreate {
	_c.mutation.SetRepositoryCriticalityScore(v)
	return _c
}

// SetFinalAnomalyScore sets the "final_anomaly_score" field.
func (_c *AnomalyRecordCreate) SetFinalAnomalyScore(v float64) *AnomalyRecordCreate {
	_c.mutation.SetFinalAnomalyScore(v)
	return _c
}

// SetSeverityLevel sets the "severity_level" field.
func (_c *AnomalyRecordCreate) SetSeverityLevel(v anomalyrecord.SeverityLevel) *AnomalyRecordCreate {
	_c.mutation.SetSeverityLevel(v)
	return _c
}

// SetPrimaryMethod sets the "primary_method" field.
func (_c *AnomalyRecordCreate) SetPrimaryMethod(v string) *AnomalyRecordCreate {
	_c.mutation.SetPrimaryMethod(v)
	return _c
}

// SetBehavioralAnalysis sets the "behavioral_analysis" field.
func (_c *AnomalyRecordCreate) SetBehavioralAnalysis(v json.RawMessage) *AnomalyRecordCreate {
	_c.mutation.SetBehavioralAnalysis(v)
	return _c
}

// SetContentAnalysis sets the "content_analysis" field.
func (_c *AnomalyRecordCreate) SetContentAnalysis(v json.RawMessage) *AnomalyRecordCreate {
	_c.mutation.SetContentAnalysis(v)
	return _c
}

// SetTemporalAnalysis sets the "temporal_analysis" field.
func (_c *AnomalyRecordCreate) SetTemporalAnalysis(v json.RawMessage) *AnomalyRecordCreate {
	_c.mutation.SetTemporalAnalysis(v)
	return _c
}

// SetRepositoryContext sets the "repository_context" field.
func (_c *AnomalyRecordCreate) SetRepositoryContext(v json.RawMessage) *AnomalyRecordCreate {
	_c.mutation.SetRepositoryContext(v)
	return _c
}

// SetHighRiskIndicators sets the "high_risk_indicators" field.
func (_c *AnomalyRecordCreate) SetHighRiskIndicators(v []string) *AnomalyRecordCreate {
	_c.mutation.SetHighRiskIndicators(v)
	return _c
}

// SetAiSummary sets the "ai_summary" field.
func (_c *AnomalyRecordCreate) SetAiSummary(v string) *AnomalyRecordCreate {
	_c.mutation.SetAiSummary(v)
	return _c
}

// SetNillableAiSummary sets the "ai_summary" field if the given value is not nil.
func (_c *AnomalyRecordCreate) SetNillableAiSummary(v *string) *AnomalyRecordCreate {
	if v != nil {
		_c.SetAiSummary(*v)
	}
	return _c
}

// SetDegraded sets the "degraded" field.
func (_c *AnomalyRecordCreate) SetDegraded(v bool) *AnomalyRecordCreate {
	_c.mutation.SetDegraded(v)
	return _c
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_c *AnomalyRecordCreate) SetNillableDegraded(v *bool) *AnomalyRecordCreate {
	if v != nil {
		_c.SetDegraded(*v)
	}
	return _c
}

// SetDetectionTimestamp sets the "detection_timestamp" field.
func (_c *AnomalyRecordCreate) SetDetectionTimestamp(v time.Time) *AnomalyRecordCreate {
	_c.mutation.SetDetectionTimestamp(v)
	return _c
}

// SetNillableDetectionTimestamp sets the "detection_timestamp" field if the given value is not nil.
func (_c *AnomalyRecordCreate) SetNillableDetectionTimestamp(v *time.Time) *AnomalyRecordCreate {
	if v != nil {
		_c.SetDetectionTimestamp(*v)
	}
	return _c
}

// Mutation returns the AnomalyRecordMutation object of the builder.
func (_c *AnomalyRecordCreate) Mutation() *AnomalyRecordMutation {
	return _c.mutation
}

// Save creates the AnomalyRecord in the database.
func (_c *AnomalyRecordCreate) Save(ctx context.Context) (*AnomalyRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnomalyRecordCreate) SaveX(ctx context.Context) *AnomalyRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnomalyRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnomalyRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnomalyRecordCreate) defaults() {
	if _, ok := _c.mutation.Degraded(); !ok {
		v := anomalyrecord.DefaultDegraded
		_c.mutation.SetDegraded(v)
	}
	if _, ok := _c.mutation.DetectionTimestamp(); !ok {
		v := anomalyrecord.DefaultDetectionTimestamp()
		_c.mutation.SetDetectionTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnomalyRecordCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "AnomalyRecord.event_id"`)}
	}
	if _, ok := _c.mutation.RepositoryName(); !ok {
		return &ValidationError{Name: "repository_name", err: errors.New(`ent: missing required field "AnomalyRecord.repository_name"`)}
	}
	if _, ok := _c.mutation.UserLogin(); !ok {
		return &ValidationError{Name: "user_login", err: errors.New(`ent: missing required field "AnomalyRecord.user_login"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "AnomalyRecord.event_type"`)}
	}
	if _, ok := _c.mutation.EventTimestamp(); !ok {
		return &ValidationError{Name: "event_timestamp", err: errors.New(`ent: missing required field "AnomalyRecord.event_timestamp"`)}
	}
	if _, ok := _c.mutation.BehavioralAnomalyScore(); !ok {
		return &ValidationError{Name: "behavioral_anomaly_score", err: errors.New(`ent: missing required field "AnomalyRecord.behavioral_anomaly_score"`)}
	}
	if _, ok := _c.mutation.ContentRiskScore(); !ok {
		return &ValidationError{Name: "content_risk_score", err: errors.New(`ent: missing required field "AnomalyRecord.content_risk_score"`)}
	}
	if _, ok := _c.mutation.TemporalAnomalyScore(); !ok {
		return &ValidationError{Name: "temporal_anomaly_score", err: errors.New(`ent: missing required field "AnomalyRecord.temporal_anomaly_score"`)}
	}
	if _, ok := _c.mutation.RepositoryCriticalityScore(); !ok {
		return &ValidationError{Name: "repository_criticality_score", err: errors.New(`ent: missing required field "AnomalyRecord.repository_criticality_score"`)}
	}
	if _, ok := _c.mutation.FinalAnomalyScore(); !ok {
		return &ValidationError{Name: "final_anomaly_score", err: errors.New(`ent: missing required field "AnomalyRecord.final_anomaly_score"`)}
	}
	if _, ok := _c.mutation.SeverityLevel(); !ok {
		return &ValidationError{Name: "severity_level", err: errors.New(`ent: missing required field "AnomalyRecord.severity_level"`)}
	}
	if v, ok := _c.mutation.SeverityLevel(); ok {
		if err := anomalyrecord.SeverityLevelValidator(v); err != nil {
			return &ValidationError{Name: "severity_level", err: fmt.Errorf(`ent: validator failed for field "AnomalyRecord.severity_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PrimaryMethod(); !ok {
		return &ValidationError{Name: "primary_method", err: errors.New(`ent: missing required field "AnomalyRecord.primary_method"`)}
	}
	if _, ok := _c.mutation.Degraded(); !ok {
		return &ValidationError{Name: "degraded", err: errors.New(`ent: missing required field "AnomalyRecord.degraded"`)}
	}
	if _, ok := _c.mutation.DetectionTimestamp(); !ok {
		return &ValidationError{Name: "detection_timestamp", err: errors.New(`ent: missing required field "AnomalyRecord.detection_timestamp"`)}
	}
	return nil
}

func (_c *AnomalyRecordCreate) sqlSave(ctx context.Context) (*AnomalyRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnomalyRecordCreate) createSpec() (*AnomalyRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AnomalyRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(anomalyrecord.Table, sqlgraph.NewFieldSpec(anomalyrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(anomalyrecord.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.RepositoryName(); ok {
		_spec.SetField(anomalyrecord.FieldRepositoryName, field.TypeString, value)
		_node.RepositoryName = value
	}
	if value, ok := _c.mutation.UserLogin(); ok {
		_spec.SetField(anomalyrecord.FieldUserLogin, field.TypeString, value)
		_node.UserLogin = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(anomalyrecord.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.EventTimestamp(); ok {
		_spec.SetField(anomalyrecord.FieldEventTimestamp, field.TypeTime, value)
		_node.EventTimestamp = value
	}
	if value, ok := _c.mutation.BehavioralAnomalyScore(); ok {
		_spec.SetField(anomalyrecord.FieldBehavioralAnomalyScore, field.TypeFloat64, value)
		_node.BehavioralAnomalyScore = value
	}
	if value, ok := _c.mutation.ContentRiskScore(); ok {
		_spec.SetField(anomalyrecord.FieldContentRiskScore, field.TypeFloat64, value)
		_node.ContentRiskScore = value
	}
	if value, ok := _c.mutation.TemporalAnomalyScore(); ok {
		_spec.SetField(anomalyrecord.FieldTemporalAnomalyScore, field.TypeFloat64, value)
		_node.TemporalAnomalyScore = value
	}
	if value, ok := _c.mutation.RepositoryCriticalityScore(); ok {
		_spec.SetField(anomalyrecord.FieldRepositoryCriticalityScore, field.TypeFloat64, value)
		_node.RepositoryCriticalityScore = value
	}
	if value, ok := _c.mutation.FinalAnomalyScore(); ok {
		_spec.SetField(anomalyrecord.FieldFinalAnomalyScore, field.TypeFloat64, value)
		_node.FinalAnomalyScore = value
	}
	if value, ok := _c.mutation.SeverityLevel(); ok {
		_spec.SetField(anomalyrecord.FieldSeverityLevel, field.TypeEnum, value)
		_node.SeverityLevel = value
	}
	if value, ok := _c.mutation.PrimaryMethod(); ok {
		_spec.SetField(anomalyrecord.FieldPrimaryMethod, field.TypeString, value)
		_node.PrimaryMethod = value
	}
	if value, ok := _c.mutation.BehavioralAnalysis(); ok {
		_spec.SetField(anomalyrecord.FieldBehavioralAnalysis, field.TypeJSON, value)
		_node.BehavioralAnalysis = value
	}
	if value, ok := _c.mutation.ContentAnalysis(); ok {
		_spec.SetField(anomalyrecord.FieldContentAnalysis, field.TypeJSON, value)
		_node.ContentAnalysis = value
	}
	if value, ok := _c.mutation.TemporalAnalysis(); ok {
		_spec.SetField(anomalyrecord.FieldTemporalAnalysis, field.TypeJSON, value)
		_node.TemporalAnalysis = value
	}
	if value, ok := _c.mutation.RepositoryContext(); ok {
		_spec.SetField(anomalyrecord.FieldRepositoryContext, field.TypeJSON, value)
		_node.RepositoryContext = value
	}
	if value, ok := _c.mutation.HighRiskIndicators(); ok {
		_spec.SetField(anomalyrecord.FieldHighRiskIndicators, field.TypeJSON, value)
		_node.HighRiskIndicators = value
	}
	if value, ok := _c.mutation.AiSummary(); ok {
		_spec.SetField(anomalyrecord.FieldAiSummary, field.TypeString, value)
		_node.AiSummary = value
	}
	if value, ok := _c.mutation.Degraded(); ok {
		_spec.SetField(anomalyrecord.FieldDegraded, field.TypeBool, value)
		_node.Degraded = value
	}
	if value, ok := _c.mutation.DetectionTimestamp(); ok {
		_spec.SetField(anomalyrecord.FieldDetectionTimestamp, field.TypeTime, value)
		_node.DetectionTimestamp = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnomalyRecord.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnomalyRecordUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *AnomalyRecordCreate) OnConflict(opts ...sql.ConflictOption) *AnomalyRecordUpsertOne {
	_c.conflict = opts
	return &AnomalyRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnomalyRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnomalyRecordCreate) OnConflictColumns(columns ...string) *AnomalyRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnomalyRecordUpsertOne{
		create: _c,
	}
}

type (
	// AnomalyRecordUpsertOne is the builder for "upsert"-ing
	//  one AnomalyRecord node.
	AnomalyRecordUpsertOne struct {
		create *AnomalyRecordCreate
	}

	// AnomalyRecordUpsert is the "OnConflict" setter.
	AnomalyRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetRepositoryName sets the "repository_name" field.
func (u *AnomalyRecordUpsert) SetRepositoryName(v string) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldRepositoryName, v)
	return u
}

// UpdateRepositoryName sets the "repository_name" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateRepositoryName() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldRepositoryName)
	return u
}

// SetUserLogin sets the "user_login" field.
func (u *AnomalyRecordUpsert) SetUserLogin(v string) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldUserLogin, v)
	return u
}

// UpdateUserLogin sets the "user_login" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateUserLogin() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldUserLogin)
	return u
}

// SetEventType sets the "event_type" field.
func (u *AnomalyRecordUpsert) SetEventType(v string) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateEventType() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldEventType)
	return u
}

// SetEventTimestamp sets the "event_timestamp" field.
func (u *AnomalyRecordUpsert) SetEventTimestamp(v time.Time) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldEventTimestamp, v)
	return u
}

// UpdateEventTimestamp sets the "event_timestamp" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateEventTimestamp() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldEventTimestamp)
	return u
}

// SetBehavioralAnomalyScore sets the "behavioral_anomaly_score" field.
func (u *AnomalyRecordUpsert) SetBehavioralAnomalyScore(v float64) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldBehavioralAnomalyScore, v)
	return u
}

// UpdateBehavioralAnomalyScore sets the "behavioral_anomaly_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateBehavioralAnomalyScore() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldBehavioralAnomalyScore)
	return u
}

// AddBehavioralAnomalyScore adds v to the "behavioral_anomaly_score" field.
func (u *AnomalyRecordUpsert) AddBehavioralAnomalyScore(v float64) *AnomalyRecordUpsert {
	u.Add(anomalyrecord.FieldBehavioralAnomalyScore, v)
	return u
}

// SetContentRiskScore sets the "content_risk_score" field.
func (u *AnomalyRecordUpsert) SetContentRiskScore(v float64) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldContentRiskScore, v)
	return u
}

// UpdateContentRiskScore sets the "content_risk_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateContentRiskScore() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldContentRiskScore)
	return u
}

// AddContentRiskScore adds v to the "content_risk_score" field.
func (u *AnomalyRecordUpsert) AddContentRiskScore(v float64) *AnomalyRecordUpsert {
	u.Add(anomalyrecord.FieldContentRiskScore, v)
	return u
}

// SetTemporalAnomalyScore sets the "temporal_anomaly_score" field.
func (u *AnomalyRecordUpsert) SetTemporalAnomalyScore(v float64) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldTemporalAnomalyScore, v)
	return u
}

// UpdateTemporalAnomalyScore sets the "temporal_anomaly_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateTemporalAnomalyScore() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldTemporalAnomalyScore)
	return u
}

// AddTemporalAnomalyScore adds v to the "temporal_anomaly_score" field.
func (u *AnomalyRecordUpsert) AddTemporalAnomalyScore(v float64) *AnomalyRecordUpsert {
	u.Add(anomalyrecord.FieldTemporalAnomalyScore, v)
	return u
}

// SetRepositoryCriticalityScore sets the "repository_criticality_score" field.
func (u *AnomalyRecordUpsert) SetRepositoryCriticalityScore(v float64) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldRepositoryCriticalityScore, v)
	return u
}

// UpdateRepositoryCriticalityScore sets the "repository_criticality_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateRepositoryCriticalityScore() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldRepositoryCriticalityScore)
	return u
}

// AddRepositoryCriticalityScore adds v to the "repository_criticality_score" field.
func (u *AnomalyRecordUpsert) AddRepositoryCriticalityScore(v float64) *AnomalyRecordUpsert {
	u.Add(anomalyrecord.FieldRepositoryCriticalityScore, v)
	return u
}

// SetFinalAnomalyScore sets the "final_anomaly_score" field.
func (u *AnomalyRecordUpsert) SetFinalAnomalyScore(v float64) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldFinalAnomalyScore, v)
	return u
}

// UpdateFinalAnomalyScore sets the "final_anomaly_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateFinalAnomalyScore() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldFinalAnomalyScore)
	return u
}

// AddFinalAnomalyScore adds v to the "final_anomaly_score" field.
func (u *AnomalyRecordUpsert) AddFinalAnomalyScore(v float64) *AnomalyRecordUpsert {
	u.Add(anomalyrecord.FieldFinalAnomalyScore, v)
	return u
}

// SetSeverityLevel sets the "severity_level" field.
func (u *AnomalyRecordUpsert) SetSeverityLevel(v anomalyrecord.SeverityLevel) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldSeverityLevel, v)
	return u
}

// UpdateSeverityLevel sets the "severity_level" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateSeverityLevel() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldSeverityLevel)
	return u
}

// SetPrimaryMethod sets the "primary_method" field.
func (u *AnomalyRecordUpsert) SetPrimaryMethod(v string) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldPrimaryMethod, v)
	return u
}

// UpdatePrimaryMethod sets the "primary_method" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdatePrimaryMethod() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldPrimaryMethod)
	return u
}

// SetBehavioralAnalysis sets the "behavioral_analysis" field.
func (u *AnomalyRecordUpsert) SetBehavioralAnalysis(v json.RawMessage) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldBehavioralAnalysis, v)
	return u
}

// UpdateBehavioralAnalysis sets the "behavioral_analysis" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateBehavioralAnalysis() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldBehavioralAnalysis)
	return u
}

// ClearBehavioralAnalysis clears the value of the "behavioral_analysis" field.
func (u *AnomalyRecordUpsert) ClearBehavioralAnalysis() *AnomalyRecordUpsert {
	u.SetNull(anomalyrecord.FieldBehavioralAnalysis)
	return u
}

// SetContentAnalysis sets the "content_analysis" field.
func (u *AnomalyRecordUpsert) SetContentAnalysis(v json.RawMessage) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldContentAnalysis, v)
	return u
}

// UpdateContentAnalysis sets the "content_analysis" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateContentAnalysis() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldContentAnalysis)
	return u
}

// ClearContentAnalysis clears the value of the "content_analysis" field.
func (u *AnomalyRecordUpsert) ClearContentAnalysis() *AnomalyRecordUpsert {
	u.SetNull(anomalyrecord.FieldContentAnalysis)
	return u
}

// SetTemporalAnalysis sets the "temporal_analysis" field.
func (u *AnomalyRecordUpsert) SetTemporalAnalysis(v json.RawMessage) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldTemporalAnalysis, v)
	return u
}

// UpdateTemporalAnalysis sets the "temporal_analysis" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateTemporalAnalysis() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldTemporalAnalysis)
	return u
}

// ClearTemporalAnalysis clears the value of the "temporal_analysis" field.
func (u *AnomalyRecordUpsert) ClearTemporalAnalysis() *AnomalyRecordUpsert {
	u.SetNull(anomalyrecord.FieldTemporalAnalysis)
	return u
}

// SetRepositoryContext sets the "repository_context" field.
func (u *AnomalyRecordUpsert) SetRepositoryContext(v json.RawMessage) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldRepositoryContext, v)
	return u
}

// UpdateRepositoryContext sets the "repository_context" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateRepositoryContext() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldRepositoryContext)
	return u
}

// ClearRepositoryContext clears the value of the "repository_context" field.
func (u *AnomalyRecordUpsert) ClearRepositoryContext() *AnomalyRecordUpsert {
	u.SetNull(anomalyrecord.FieldRepositoryContext)
	return u
}

// SetHighRiskIndicators sets the "high_risk_indicators" field.
func (u *AnomalyRecordUpsert) SetHighRiskIndicators(v []string) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldHighRiskIndicators, v)
	return u
}

// UpdateHighRiskIndicators sets the "high_risk_indicators" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateHighRiskIndicators() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldHighRiskIndicators)
	return u
}

// ClearHighRiskIndicators clears the value of the "high_risk_indicators" field.
func (u *AnomalyRecordUpsert) ClearHighRiskIndicators() *AnomalyRecordUpsert {
	u.SetNull(anomalyrecord.FieldHighRiskIndicators)
	return u
}

// SetAiSummary sets the "ai_summary" field.
func (u *AnomalyRecordUpsert) SetAiSummary(v string) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldAiSummary, v)
	return u
}

// UpdateAiSummary sets the "ai_summary" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateAiSummary() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldAiSummary)
	return u
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (u *AnomalyRecordUpsert) ClearAiSummary() *AnomalyRecordUpsert {
	u.SetNull(anomalyrecord.FieldAiSummary)
	return u
}

// SetDegraded sets the "degraded" field.
func (u *AnomalyRecordUpsert) SetDegraded(v bool) *AnomalyRecordUpsert {
	u.Set(anomalyrecord.FieldDegraded, v)
	return u
}

// UpdateDegraded sets the "degraded" field to the value that was provided on create.
func (u *AnomalyRecordUpsert) UpdateDegraded() *AnomalyRecordUpsert {
	u.SetExcluded(anomalyrecord.FieldDegraded)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AnomalyRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnomalyRecordUpsertOne) UpdateNewValues() *AnomalyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.EventID(); exists {
			s.SetIgnore(anomalyrecord.FieldEventID)
		}
		if _, exists := u.create.mutation.DetectionTimestamp(); exists {
			s.SetIgnore(anomalyrecord.FieldDetectionTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnomalyRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnomalyRecordUpsertOne) Ignore() *AnomalyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnomalyRecordUpsertOne) DoNothing() *AnomalyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnomalyRecordCreate.OnConflict
// documentation for more info.
func (u *AnomalyRecordUpsertOne) Update(set func(*AnomalyRecordUpsert)) *AnomalyRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnomalyRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetRepositoryName sets the "repository_name" field.
func (u *AnomalyRecordUpsertOne) SetRepositoryName(v string) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetRepositoryName(v)
	})
}

// UpdateRepositoryName sets the "repository_name" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateRepositoryName() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateRepositoryName()
	})
}

// SetUserLogin sets the "user_login" field.
func (u *AnomalyRecordUpsertOne) SetUserLogin(v string) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetUserLogin(v)
	})
}

// UpdateUserLogin sets the "user_login" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateUserLogin() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateUserLogin()
	})
}

// SetEventType sets the "event_type" field.
func (u *AnomalyRecordUpsertOne) SetEventType(v string) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateEventType() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateEventType()
	})
}

// SetEventTimestamp sets the "event_timestamp" field.
func (u *AnomalyRecordUpsertOne) SetEventTimestamp(v time.Time) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetEventTimestamp(v)
	})
}

// UpdateEventTimestamp sets the "event_timestamp" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateEventTimestamp() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateEventTimestamp()
	})
}

// SetBehavioralAnomalyScore sets the "behavioral_anomaly_score" field.
func (u *AnomalyRecordUpsertOne) SetBehavioralAnomalyScore(v float64) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetBehavioralAnomalyScore(v)
	})
}

// AddBehavioralAnomalyScore adds v to the "behavioral_anomaly_score" field.
func (u *AnomalyRecordUpsertOne) AddBehavioralAnomalyScore(v float64) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.AddBehavioralAnomalyScore(v)
	})
}

// UpdateBehavioralAnomalyScore sets the "behavioral_anomaly_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateBehavioralAnomalyScore() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateBehavioralAnomalyScore()
	})
}

// SetContentRiskScore sets the "content_risk_score" field.
func (u *AnomalyRecordUpsertOne) SetContentRiskScore(v float64) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetContentRiskScore(v)
	})
}

// AddContentRiskScore adds v to the "content_risk_score" field.
func (u *AnomalyRecordUpsertOne) AddContentRiskScore(v float64) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.AddContentRiskScore(v)
	})
}

// UpdateContentRiskScore sets the "content_risk_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateContentRiskScore() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateContentRiskScore()
	})
}

// SetTemporalAnomalyScore sets the "temporal_anomaly_score" field.
func (u *AnomalyRecordUpsertOne) SetTemporalAnomalyScore(v float64) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetTemporalAnomalyScore(v)
	})
}

// AddTemporalAnomalyScore adds v to the "temporal_anomaly_score" field.
func (u *AnomalyRecordUpsertOne) AddTemporalAnomalyScore(v float64) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.AddTemporalAnomalyScore(v)
	})
}

// UpdateTemporalAnomalyScore sets the "temporal_anomaly_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateTemporalAnomalyScore() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateTemporalAnomalyScore()
	})
}

// SetRepositoryCriticalityScore sets the "repository_criticality_score" field.
func (u *AnomalyRecordUpsertOne) SetRepositoryCriticalityScore(v float64) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetRepositoryCriticalityScore(v)
	})
}

// AddRepositoryCriticalityScore adds v to the "repository_criticality_score" field.
func (u *AnomalyRecordUpsertOne) AddRepositoryCriticalityScore(v float64) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.AddRepositoryCriticalityScore(v)
	})
}

// UpdateRepositoryCriticalityScore sets the "repository_criticality_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateRepositoryCriticalityScore() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateRepositoryCriticalityScore()
	})
}

// SetFinalAnomalyScore sets the "final_anomaly_score" field.
func (u *AnomalyRecordUpsertOne) SetFinalAnomalyScore(v float64) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetFinalAnomalyScore(v)
	})
}

// AddFinalAnomalyScore adds v to the "final_anomaly_score" field.
func (u *AnomalyRecordUpsertOne) AddFinalAnomalyScore(v float64) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.AddFinalAnomalyScore(v)
	})
}

// UpdateFinalAnomalyScore sets the "final_anomaly_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateFinalAnomalyScore() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateFinalAnomalyScore()
	})
}

// SetSeverityLevel sets the "severity_level" field.
func (u *AnomalyRecordUpsertOne) SetSeverityLevel(v anomalyrecord.SeverityLevel) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetSeverityLevel(v)
	})
}

// UpdateSeverityLevel sets the "severity_level" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateSeverityLevel() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateSeverityLevel()
	})
}

// SetPrimaryMethod sets the "primary_method" field.
func (u *AnomalyRecordUpsertOne) SetPrimaryMethod(v string) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetPrimaryMethod(v)
	})
}

// UpdatePrimaryMethod sets the "primary_method" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdatePrimaryMethod() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdatePrimaryMethod()
	})
}

// SetBehavioralAnalysis sets the "behavioral_analysis" field.
func (u *AnomalyRecordUpsertOne) SetBehavioralAnalysis(v json.RawMessage) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetBehavioralAnalysis(v)
	})
}

// UpdateBehavioralAnalysis sets the "behavioral_analysis" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateBehavioralAnalysis() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateBehavioralAnalysis()
	})
}

// ClearBehavioralAnalysis clears the value of the "behavioral_analysis" field.
func (u *AnomalyRecordUpsertOne) ClearBehavioralAnalysis() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.ClearBehavioralAnalysis()
	})
}

// SetContentAnalysis sets the "content_analysis" field.
func (u *AnomalyRecordUpsertOne) SetContentAnalysis(v json.RawMessage) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetContentAnalysis(v)
	})
}

// UpdateContentAnalysis sets the "content_analysis" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateContentAnalysis() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateContentAnalysis()
	})
}

// ClearContentAnalysis clears the value of the "content_analysis" field.
func (u *AnomalyRecordUpsertOne) ClearContentAnalysis() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.ClearContentAnalysis()
	})
}

// SetTemporalAnalysis sets the "temporal_analysis" field.
func (u *AnomalyRecordUpsertOne) SetTemporalAnalysis(v json.RawMessage) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetTemporalAnalysis(v)
	})
}

// UpdateTemporalAnalysis sets the "temporal_analysis" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateTemporalAnalysis() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateTemporalAnalysis()
	})
}

// ClearTemporalAnalysis clears the value of the "temporal_analysis" field.
func (u *AnomalyRecordUpsertOne) ClearTemporalAnalysis() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.ClearTemporalAnalysis()
	})
}

// SetRepositoryContext sets the "repository_context" field.
func (u *AnomalyRecordUpsertOne) SetRepositoryContext(v json.RawMessage) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetRepositoryContext(v)
	})
}

// UpdateRepositoryContext sets the "repository_context" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateRepositoryContext() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateRepositoryContext()
	})
}

// ClearRepositoryContext clears the value of the "repository_context" field.
func (u *AnomalyRecordUpsertOne) ClearRepositoryContext() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.ClearRepositoryContext()
	})
}

// SetHighRiskIndicators sets the "high_risk_indicators" field.
func (u *AnomalyRecordUpsertOne) SetHighRiskIndicators(v []string) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetHighRiskIndicators(v)
	})
}

// UpdateHighRiskIndicators sets the "high_risk_indicators" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateHighRiskIndicators() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateHighRiskIndicators()
	})
}

// ClearHighRiskIndicators clears the value of the "high_risk_indicators" field.
func (u *AnomalyRecordUpsertOne) ClearHighRiskIndicators() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.ClearHighRiskIndicators()
	})
}

// SetAiSummary sets the "ai_summary" field.
func (u *AnomalyRecordUpsertOne) SetAiSummary(v string) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetAiSummary(v)
	})
}

// UpdateAiSummary sets the "ai_summary" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateAiSummary() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateAiSummary()
	})
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (u *AnomalyRecordUpsertOne) ClearAiSummary() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.ClearAiSummary()
	})
}

// SetDegraded sets the "degraded" field.
func (u *AnomalyRecordUpsertOne) SetDegraded(v bool) *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetDegraded(v)
	})
}

// UpdateDegraded sets the "degraded" field to the value that was provided on create.
func (u *AnomalyRecordUpsertOne) UpdateDegraded() *AnomalyRecordUpsertOne {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateDegraded()
	})
}

// Exec executes the query.
func (u *AnomalyRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnomalyRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnomalyRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnomalyRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnomalyRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnomalyRecordCreateBulk is the builder for creating many AnomalyRecord entities in bulk.
type AnomalyRecordCreateBulk struct {
	config
	err      error
	builders []*AnomalyRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the AnomalyRecord entities in the database.
func (_c *AnomalyRecordCreateBulk) Save(ctx context.Context) ([]*AnomalyRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnomalyRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnomalyRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnomalyRecordCreateBulk) SaveX(ctx context.Context) []*AnomalyRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnomalyRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnomalyRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnomalyRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnomalyRecordUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *AnomalyRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnomalyRecordUpsertBulk {
	_c.conflict = opts
	return &AnomalyRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnomalyRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnomalyRecordCreateBulk) OnConflictColumns(columns ...string) *AnomalyRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnomalyRecordUpsertBulk{
		create: _c,
	}
}

// AnomalyRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of AnomalyRecord nodes.
type AnomalyRecordUpsertBulk struct {
	create *AnomalyRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AnomalyRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnomalyRecordUpsertBulk) UpdateNewValues() *AnomalyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.EventID(); exists {
				s.SetIgnore(anomalyrecord.FieldEventID)
			}
			if _, exists := b.mutation.DetectionTimestamp(); exists {
				s.SetIgnore(anomalyrecord.FieldDetectionTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnomalyRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnomalyRecordUpsertBulk) Ignore() *AnomalyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnomalyRecordUpsertBulk) DoNothing() *AnomalyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnomalyRecordCreateBulk.OnConflict
// documentation for more info.
func (u *AnomalyRecordUpsertBulk) Update(set func(*AnomalyRecordUpsert)) *AnomalyRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnomalyRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetRepositoryName sets the "repository_name" field.
func (u *AnomalyRecordUpsertBulk) SetRepositoryName(v string) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetRepositoryName(v)
	})
}

// UpdateRepositoryName sets the "repository_name" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateRepositoryName() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateRepositoryName()
	})
}

// SetUserLogin sets the "user_login" field.
func (u *AnomalyRecordUpsertBulk) SetUserLogin(v string) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetUserLogin(v)
	})
}

// UpdateUserLogin sets the "user_login" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateUserLogin() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateUserLogin()
	})
}

// SetEventType sets the "event_type" field.
func (u *AnomalyRecordUpsertBulk) SetEventType(v string) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateEventType() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateEventType()
	})
}

// SetEventTimestamp sets the "event_timestamp" field.
func (u *AnomalyRecordUpsertBulk) SetEventTimestamp(v time.Time) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetEventTimestamp(v)
	})
}

// UpdateEventTimestamp sets the "event_timestamp" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateEventTimestamp() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateEventTimestamp()
	})
}

// SetBehavioralAnomalyScore sets the "behavioral_anomaly_score" field.
func (u *AnomalyRecordUpsertBulk) SetBehavioralAnomalyScore(v float64) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetBehavioralAnomalyScore(v)
	})
}

// AddBehavioralAnomalyScore adds v to the "behavioral_anomaly_score" field.
func (u *AnomalyRecordUpsertBulk) AddBehavioralAnomalyScore(v float64) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.AddBehavioralAnomalyScore(v)
	})
}

// UpdateBehavioralAnomalyScore sets the "behavioral_anomaly_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateBehavioralAnomalyScore() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateBehavioralAnomalyScore()
	})
}

// SetContentRiskScore sets the "content_risk_score" field.
func (u *AnomalyRecordUpsertBulk) SetContentRiskScore(v float64) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetContentRiskScore(v)
	})
}

// AddContentRiskScore adds v to the "content_risk_score" field.
func (u *AnomalyRecordUpsertBulk) AddContentRiskScore(v float64) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.AddContentRiskScore(v)
	})
}

// UpdateContentRiskScore sets the "content_risk_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateContentRiskScore() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateContentRiskScore()
	})
}

// SetTemporalAnomalyScore sets the "temporal_anomaly_score" field.
func (u *AnomalyRecordUpsertBulk) SetTemporalAnomalyScore(v float64) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetTemporalAnomalyScore(v)
	})
}

// AddTemporalAnomalyScore adds v to the "temporal_anomaly_score" field.
func (u *AnomalyRecordUpsertBulk) AddTemporalAnomalyScore(v float64) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.AddTemporalAnomalyScore(v)
	})
}

// UpdateTemporalAnomalyScore sets the "temporal_anomaly_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateTemporalAnomalyScore() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateTemporalAnomalyScore()
	})
}

// SetRepositoryCriticalityScore sets the "repository_criticality_score" field.
func (u *AnomalyRecordUpsertBulk) SetRepositoryCriticalityScore(v float64) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetRepositoryCriticalityScore(v)
	})
}

// AddRepositoryCriticalityScore adds v to the "repository_criticality_score" field.
func (u *AnomalyRecordUpsertBulk) AddRepositoryCriticalityScore(v float64) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.AddRepositoryCriticalityScore(v)
	})
}

// UpdateRepositoryCriticalityScore sets the "repository_criticality_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateRepositoryCriticalityScore() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateRepositoryCriticalityScore()
	})
}

// SetFinalAnomalyScore sets the "final_anomaly_score" field.
func (u *AnomalyRecordUpsertBulk) SetFinalAnomalyScore(v float64) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetFinalAnomalyScore(v)
	})
}

// AddFinalAnomalyScore adds v to the "final_anomaly_score" field.
func (u *AnomalyRecordUpsertBulk) AddFinalAnomalyScore(v float64) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.AddFinalAnomalyScore(v)
	})
}

// UpdateFinalAnomalyScore sets the "final_anomaly_score" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateFinalAnomalyScore() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateFinalAnomalyScore()
	})
}

// SetSeverityLevel sets the "severity_level" field.
func (u *AnomalyRecordUpsertBulk) SetSeverityLevel(v anomalyrecord.SeverityLevel) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetSeverityLevel(v)
	})
}

// UpdateSeverityLevel sets the "severity_level" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateSeverityLevel() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateSeverityLevel()
	})
}

// SetPrimaryMethod sets the "primary_method" field.
func (u *AnomalyRecordUpsertBulk) SetPrimaryMethod(v string) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetPrimaryMethod(v)
	})
}

// UpdatePrimaryMethod sets the "primary_method" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdatePrimaryMethod() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdatePrimaryMethod()
	})
}

// SetBehavioralAnalysis sets the "behavioral_analysis" field.
func (u *AnomalyRecordUpsertBulk) SetBehavioralAnalysis(v json.RawMessage) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetBehavioralAnalysis(v)
	})
}

// UpdateBehavioralAnalysis sets the "behavioral_analysis" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateBehavioralAnalysis() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateBehavioralAnalysis()
	})
}

// ClearBehavioralAnalysis clears the value of the "behavioral_analysis" field.
func (u *AnomalyRecordUpsertBulk) ClearBehavioralAnalysis() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.ClearBehavioralAnalysis()
	})
}

// SetContentAnalysis sets the "content_analysis" field.
func (u *AnomalyRecordUpsertBulk) SetContentAnalysis(v json.RawMessage) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetContentAnalysis(v)
	})
}

// UpdateContentAnalysis sets the "content_analysis" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateContentAnalysis() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateContentAnalysis()
	})
}

// ClearContentAnalysis clears the value of the "content_analysis" field.
func (u *AnomalyRecordUpsertBulk) ClearContentAnalysis() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.ClearContentAnalysis()
	})
}

// SetTemporalAnalysis sets the "temporal_analysis" field.
func (u *AnomalyRecordUpsertBulk) SetTemporalAnalysis(v json.RawMessage) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetTemporalAnalysis(v)
	})
}

// UpdateTemporalAnalysis sets the "temporal_analysis" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateTemporalAnalysis() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateTemporalAnalysis()
	})
}

// ClearTemporalAnalysis clears the value of the "temporal_analysis" field.
func (u *AnomalyRecordUpsertBulk) ClearTemporalAnalysis() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.ClearTemporalAnalysis()
	})
}

// SetRepositoryContext sets the "repository_context" field.
func (u *AnomalyRecordUpsertBulk) SetRepositoryContext(v json.RawMessage) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetRepositoryContext(v)
	})
}

// UpdateRepositoryContext sets the "repository_context" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateRepositoryContext() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateRepositoryContext()
	})
}

// ClearRepositoryContext clears the value of the "repository_context" field.
func (u *AnomalyRecordUpsertBulk) ClearRepositoryContext() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.ClearRepositoryContext()
	})
}

// SetHighRiskIndicators sets the "high_risk_indicators" field.
func (u *AnomalyRecordUpsertBulk) SetHighRiskIndicators(v []string) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetHighRiskIndicators(v)
	})
}

// UpdateHighRiskIndicators sets the "high_risk_indicators" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateHighRiskIndicators() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateHighRiskIndicators()
	})
}

// ClearHighRiskIndicators clears the value of the "high_risk_indicators" field.
func (u *AnomalyRecordUpsertBulk) ClearHighRiskIndicators() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.ClearHighRiskIndicators()
	})
}

// SetAiSummary sets the "ai_summary" field.
func (u *AnomalyRecordUpsertBulk) SetAiSummary(v string) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetAiSummary(v)
	})
}

// UpdateAiSummary sets the "ai_summary" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateAiSummary() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateAiSummary()
	})
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (u *AnomalyRecordUpsertBulk) ClearAiSummary() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.ClearAiSummary()
	})
}

// SetDegraded sets the "degraded" field.
func (u *AnomalyRecordUpsertBulk) SetDegraded(v bool) *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.SetDegraded(v)
	})
}

// UpdateDegraded sets the "degraded" field to the value that was provided on create.
func (u *AnomalyRecordUpsertBulk) UpdateDegraded() *AnomalyRecordUpsertBulk {
	return u.Update(func(s *AnomalyRecordUpsert) {
		s.UpdateDegraded()
	})
}

// Exec executes the query.
func (u *AnomalyRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnomalyRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnomalyRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnomalyRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
