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
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/forgewatch/forgewatch/ent/anomalyrecord"
	"github.com/forgewatch/forgewatch/ent/predicate"
)

// AnomalyRecordUpdate is the builder for updating AnomalyRecord entities.
type AnomalyRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AnomalyRecordMutation
}

// Where appends a list predicates to the AnomalyRecordUpdate builder.
func (_u *AnomalyRecordUpdate) Where(ps ...predicate.AnomalyRecord) *AnomalyRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRepositoryName sets the "repository_name" field.
func (_u *AnomalyRecordUpdate) SetRepositoryName(v string) *AnomalyRecordUpdate {
	_u.mutation.SetRepositoryName(v)
	return _u
}

// SetNillableRepositoryName sets the "repository_name" field if the given value is not nil.
func (_u *AnomalyRecordUpdate) SetNillableRepositoryName(v *string) *AnomalyRecordUpdate {
	if v != nil {
		_u.SetRepositoryName(*v)
	}
	return _u
}

// SetUserLogin sets the "user_login" field.
func (_u *AnomalyRecordUpdate) SetUserLogin(v string) *AnomalyRecordUpdate {
	_u.mutation.SetUserLogin(v)
	return _u
}

// SetNillableUserLogin sets the "user_login" field if the given value is not nil.
func (_u *AnomalyRecordUpdate) SetNillableUserLogin(v *string) *AnomalyRecordUpdate {
	if v != nil {
		_u.SetUserLogin(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *AnomalyRecordUpdate) SetEventType(v string) *AnomalyRecordUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *AnomalyRecordUpdate) SetNillableEventType(v *string) *AnomalyRecordUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetEventTimestamp sets the "event_timestamp" field.
func (_u *AnomalyRecordUpdate) SetEventTimestamp(v time.Time) *AnomalyRecordUpdate {
	_u.mutation.SetEventTimestamp(v)
	return _u
}

// SetNillableEventTimestamp sets the "event_timestamp" field if the given value is not nil.
func (_u *AnomalyRecordUpdate) SetNillableEventTimestamp(v *time.Time) *AnomalyRecordUpdate {
	if v != nil {
		_u.SetEventTimestamp(*v)
	}
	return _u
}

// SetBehavioralAnomalyScore sets the "behavioral_anomaly_score" field.
func (_u *AnomalyRecordUpdate) SetBehavioralAnomalyScore(v float64) *AnomalyRecordUpdate {
	_u.mutation.ResetBehavioralAnomalyScore()
	_u.mutation.SetBehavioralAnomalyScore(v)
	return _u
}

// SetNillableBehavioralAnomalyScore sets the "behavioral_anomaly_score" field if the given value is not nil.
func (_u *AnomalyRecordUpdate) SetNillableBehavioralAnomalyScore(v *float64) *AnomalyRecordUpdate {
	if v != nil {
		_u.SetBehavioralAnomalyScore(*v)
	}
	return _u
}

// AddBehavioralAnomalyScore adds value to the "behavioral_anomaly_score" field.
func (_u *AnomalyRecordUpdate) AddBehavioralAnomalyScore(v float64) *AnomalyRecordUpdate {
	_u.mutation.AddBehavioralAnomalyScore(v)
	return _u
}

// SetContentRiskScore sets the "content_risk_score" field.
func (_u *AnomalyRecordUpdate) SetContentRiskScore(v float64) *AnomalyRecordUpdate {
	_u.mutation.ResetContentRiskScore()
	_u.mutation.SetContentRiskScore(v)
	return _u
}

// SetNillableContentRiskScore sets the "content_risk_score" field if the given value is not nil.
func (_u *AnomalyRecordUpdate) SetNillableContentRiskScore(v *float64) *AnomalyRecordUpdate {
	if v != nil {
		_u.SetContentRiskScore(*v)
	}
	return _u
}

// AddContentRiskScore adds value to the "content_risk_score" field.
func (_u *AnomalyRecordUpdate) AddContentRiskScore(v float64) *AnomalyRecordUpdate {
	_u.mutation.AddContentRiskScore(v)
	return _u
}

// SetTemporalAnomalyScore sets the "temporal_anomaly_score" field.
func (_u *AnomalyRecordUpdate) SetTemporalAnomalyScore(v float64) *AnomalyRecordUpdate {
	_u.mutation.ResetTemporalAnomalyScore()
	_u.mutation.SetTemporalAnomalyScore(v)
	return _u
}

// SetNillableTemporalAnomalyScore sets the "temporal_anomaly_score" field if the given value is not nil.
func (_u *AnomalyRecordUpdate) SetNillableTemporalAnomalyScore(v *float64) *AnomalyRecordUpdate {
	if v != nil {
		_u.SetTemporalAnomalyScore(*v)
	}
	return _u
}

// AddTemporalAnomalyScore adds value to the "temporal_anomaly_score" field.
func (_u *AnomalyRecordUpdate) AddTemporalAnomalyScore(v float64) *AnomalyRecordUpdate {
	_u.mutation.AddTemporalAnomalyScore(v)
	return _u
}

// SetRepositoryCriticalityScore sets the "repository_criticality_score" field.
func (_u *AnomalyRecordUpdate) SetRepositoryCriticalityScore(v float64) *AnomalyRecordUpdate {
	_u.mutation.ResetRepositoryCriticalityScore()
	_u.mutation.SetRepositoryCriticalityScore(v)
	return _u
}

// SetNillableRepositoryCriticalityScore sets the "repository_criticality_score" field if the given value is not nil.
func (_u *AnomalyRecordUpdate) SetNillableRepositoryCriticalityScore(v *float64) *AnomalyRecordUpdate {
	if v != nil {
		_u.SetRepositoryCriticalityScore(*v)
	}
	return _u
}

// AddRepositoryCriticalityScore adds value to the "repository_criticality_score" field.
func (_u *AnomalyRecordUpdate) AddRepositoryCriticalityScore(v float64) *AnomalyRecordUpdate {
	_u.mutation.AddRepositoryCriticalityScore(v)
	return _u
}

// SetFinalAnomalyScore sets the "final_anomaly_score" field.
func (_u *AnomalyRecordUpdate) SetFinalAnomalyScore(v float64) *AnomalyRecordUpdate {
	_u.mutation.ResetFinalAnomalyScore()
	_u.mutation.SetFinalAnomalyScore(v)
	return _u
}

// SetNillableFinalAnomalyScore sets the "final_anomaly_score" field if the given value is not nil.
func (_u *AnomalyRecordUpdate) SetNillableFinalAnomalyScore(v *float64) *AnomalyRecordUpdate {
	if v != nil {
		_u.SetFinalAnomalyScore(*v)
	}
	return _u
}

// AddFinalAnomalyScore adds value to the "final_anomaly_score" field.
func (_u *AnomalyRecordUpdate) AddFinalAnomalyScore(v float64) *AnomalyRecordUpdate {
	_u.mutation.AddFinalAnomalyScore(v)
	return _u
}

// SetSeverityLevel sets the "severity_level" field.
func (_u *AnomalyRecordUpdate) SetSeverityLevel(v anomalyrecord.SeverityLevel) *AnomalyRecordUpdate {
	_u.mutation.SetSeverityLevel(v)
	return _u
}

// SetNillableSeverityLevel sets the "severity_level" field if the given value is not nil.
func (_u *AnomalyRecordUpdate) SetNillableSeverityLevel(v *anomalyrecord.SeverityLevel) *AnomalyRecordUpdate {
	if v != nil {
		_u.SetSeverityLevel(*v)
	}
	return _u
}

// SetPrimaryMethod sets the "primary_method" field.
func (_u *AnomalyRecordUpdate) SetPrimaryMethod(v string) *AnomalyRecordUpdate {
	_u.mutation.SetPrimaryMethod(v)
	return _u
}

// SetNillablePrimaryMethod sets the "primary_method" field if the given value is not nil.
func (_u *AnomalyRecordUpdate) SetNillablePrimaryMethod(v *string) *AnomalyRecordUpdate {
	if v != nil {
		_u.SetPrimaryMethod(*v)
	}
	return _u
}

// SetBehavioralAnalysis sets the "behavioral_analysis" field.
func (_u *AnomalyRecordUpdate) SetBehavioralAnalysis(v json.RawMessage) *AnomalyRecordUpdate {
	_u.mutation.SetBehavioralAnalysis(v)
	return _u
}

// AppendBehavioralAnalysis appends value to the "behavioral_analysis" field.
func (_u *AnomalyRecordUpdate) AppendBehavioralAnalysis(v json.RawMessage) *AnomalyRecordUpdate {
	_u.mutation.AppendBehavioralAnalysis(v)
	return _u
}

// ClearBehavioralAnalysis clears the value of the "behavioral_analysis" field.
func (_u *AnomalyRecordUpdate) ClearBehavioralAnalysis() *AnomalyRecordUpdate {
	_u.mutation.ClearBehavioralAnalysis()
	return _u
}

// SetContentAnalysis sets the "content_analysis" field.
func (_u *AnomalyRecordUpdate) SetContentAnalysis(v json.RawMessage) *AnomalyRecordUpdate {
	_u.mutation.SetContentAnalysis(v)
	return _u
}

// AppendContentAnalysis appends value to the "content_analysis" field.
func (_u *AnomalyRecordUpdate) AppendContentAnalysis(v json.RawMessage) *AnomalyRecordUpdate {
	_u.mutation.AppendContentAnalysis(v)
	return _u
}

// ClearContentAnalysis clears the value of the "content_analysis" field.
func (_u *AnomalyRecordUpdate) ClearContentAnalysis() *AnomalyRecordUpdate {
	_u.mutation.ClearContentAnalysis()
	return _u
}

// SetTemporalAnalysis sets the "temporal_analysis" field.
func (_u *AnomalyRecordUpdate) SetTemporalAnalysis(v json.RawMessage) *AnomalyRecordUpdate {
	_u.mutation.SetTemporalAnalysis(v)
	return _u
}

// AppendTemporalAnalysis appends value to the "temporal_analysis" field.
func (_u *AnomalyRecordUpdate) AppendTemporalAnalysis(v json.RawMessage) *AnomalyRecordUpdate {
	_u.mutation.AppendTemporalAnalysis(v)
	return _u
}

// ClearTemporalAnalysis clears the value of the "temporal_analysis" field.
func (_u *AnomalyRecordUpdate) ClearTemporalAnalysis() *AnomalyRecordUpdate {
	_u.mutation.ClearTemporalAnalysis()
	return _u
}

// SetRepositoryContext sets the "repository_context" field.
func (_u *AnomalyRecordUpdate) SetRepositoryContext(v json.RawMessage) *AnomalyRecordUpdate {
	_u.mutation.SetRepositoryContext(v)
	return _u
}

// AppendRepositoryContext appends value to the "repository_context" field.
func (_u *AnomalyRecordUpdate) AppendRepositoryContext(v json.RawMessage) *AnomalyRecordUpdate {
	_u.mutation.AppendRepositoryContext(v)
	return _u
}

// ClearRepositoryContext clears the value of the "repository_context" field.
func (_u *AnomalyRecordUpdate) ClearRepositoryContext() *AnomalyRecordUpdate {
	_u.mutation.ClearRepositoryContext()
	return _u
}

// SetHighRiskIndicators sets the "high_risk_indicators" field.
func (_u *AnomalyRecordUpdate) SetHighRiskIndicators(v []string) *AnomalyRecordUpdate {
	_u.mutation.SetHighRiskIndicators(v)
	return _u
}

// AppendHighRiskIndicators appends value to the "high_risk_indicators" field.
func (_u *AnomalyRecordUpdate) AppendHighRiskIndicators(v []string) *AnomalyRecordUpdate {
	_u.mutation.AppendHighRiskIndicators(v)
	return _u
}

// ClearHighRiskIndicators clears the value of the "high_risk_indicators" field.
func (_u *AnomalyRecordUpdate) ClearHighRiskIndicators() *AnomalyRecordUpdate {
	_u.mutation.ClearHighRiskIndicators()
	return _u
}

// SetAiSummary sets the "ai_summary" field.
func (_u *AnomalyRecordUpdate) SetAiSummary(v string) *AnomalyRecordUpdate {
	_u.mutation.SetAiSummary(v)
	return _u
}

// SetNillableAiSummary sets the "ai_summary" field if the given value is not nil.
func (_u *AnomalyRecordUpdate) SetNillableAiSummary(v *string) *AnomalyRecordUpdate {
	if v != nil {
		_u.SetAiSummary(*v)
	}
	return _u
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (_u *AnomalyRecordUpdate) ClearAiSummary() *AnomalyRecordUpdate {
	_u.mutation.ClearAiSummary()
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *AnomalyRecordUpdate) SetDegraded(v bool) *AnomalyRecordUpdate {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *AnomalyRecordUpdate) SetNillableDegraded(v *bool) *AnomalyRecordUpdate {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// Mutation returns the AnomalyRecordMutation object of the builder.
func (_u *AnomalyRecordUpdate) Mutation() *AnomalyRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnomalyRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnomalyRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnomalyRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnomalyRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnomalyRecordUpdate) check() error {
	if v, ok := _u.mutation.SeverityLevel(); ok {
		if err := anomalyrecord.SeverityLevelValidator(v); err != nil {
			return &ValidationError{Name: "severity_level", err: fmt.Errorf(`ent: validator failed for field "AnomalyRecord.severity_level": %w`, err)}
		}
	}
	return nil
}

func (_u *AnomalyRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(anomalyrecord.Table, anomalyrecord.Columns, sqlgraph.NewFieldSpec(anomalyrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RepositoryName(); ok {
		_spec.SetField(anomalyrecord.FieldRepositoryName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserLogin(); ok {
		_spec.SetField(anomalyrecord.FieldUserLogin, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(anomalyrecord.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventTimestamp(); ok {
		_spec.SetField(anomalyrecord.FieldEventTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BehavioralAnomalyScore(); ok {
		_spec.SetField(anomalyrecord.FieldBehavioralAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBehavioralAnomalyScore(); ok {
		_spec.AddField(anomalyrecord.FieldBehavioralAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContentRiskScore(); ok {
		_spec.SetField(anomalyrecord.FieldContentRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContentRiskScore(); ok {
		_spec.AddField(anomalyrecord.FieldContentRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TemporalAnomalyScore(); ok {
		_spec.SetField(anomalyrecord.FieldTemporalAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemporalAnomalyScore(); ok {
		_spec.AddField(anomalyrecord.FieldTemporalAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RepositoryCriticalityScore(); ok {
		_spec.SetField(anomalyrecord.FieldRepositoryCriticalityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRepositoryCriticalityScore(); ok {
		_spec.AddField(anomalyrecord.FieldRepositoryCriticalityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinalAnomalyScore(); ok {
		_spec.SetField(anomalyrecord.FieldFinalAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalAnomalyScore(); ok {
		_spec.AddField(anomalyrecord.FieldFinalAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SeverityLevel(); ok {
		_spec.SetField(anomalyrecord.FieldSeverityLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PrimaryMethod(); ok {
		_spec.SetField(anomalyrecord.FieldPrimaryMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.BehavioralAnalysis(); ok {
		_spec.SetField(anomalyrecord.FieldBehavioralAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBehavioralAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, anomalyrecord.FieldBehavioralAnalysis, value)
		})
	}
	if _u.mutation.BehavioralAnalysisCleared() {
		_spec.ClearField(anomalyrecord.FieldBehavioralAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContentAnalysis(); ok {
		_spec.SetField(anomalyrecord.FieldContentAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContentAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, anomalyrecord.FieldContentAnalysis, value)
		})
	}
	if _u.mutation.ContentAnalysisCleared() {
		_spec.ClearField(anomalyrecord.FieldContentAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.TemporalAnalysis(); ok {
		_spec.SetField(anomalyrecord.FieldTemporalAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTemporalAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, anomalyrecord.FieldTemporalAnalysis, value)
		})
	}
	if _u.mutation.TemporalAnalysisCleared() {
		_spec.ClearField(anomalyrecord.FieldTemporalAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.RepositoryContext(); ok {
		_spec.SetField(anomalyrecord.FieldRepositoryContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRepositoryContext(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, anomalyrecord.FieldRepositoryContext, value)
		})
	}
	if _u.mutation.RepositoryContextCleared() {
		_spec.ClearField(anomalyrecord.FieldRepositoryContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.HighRiskIndicators(); ok {
		_spec.SetField(anomalyrecord.FieldHighRiskIndicators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHighRiskIndicators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, anomalyrecord.FieldHighRiskIndicators, value)
		})
	}
	if _u.mutation.HighRiskIndicatorsCleared() {
		_spec.ClearField(anomalyrecord.FieldHighRiskIndicators, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiSummary(); ok {
		_spec.SetField(anomalyrecord.FieldAiSummary, field.TypeString, value)
	}
	if _u.mutation.AiSummaryCleared() {
		_spec.ClearField(anomalyrecord.FieldAiSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(anomalyrecord.FieldDegraded, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anomalyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnomalyRecordUpdateOne is the builder for updating a single AnomalyRecord entity.
type AnomalyRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnomalyRecordMutation
}

// SetRepositoryName sets the "repository_name" field.
func (_u *AnomalyRecordUpdateOne) SetRepositoryName(v string) *AnomalyRecordUpdateOne {
	_u.mutation.SetRepositoryName(v)
	return _u
}

// SetNillableRepositoryName sets the "repository_name" field if the given value is not nil.
func (_u *AnomalyRecordUpdateOne) SetNillableRepositoryName(v *string) *AnomalyRecordUpdateOne {
	if v != nil {
		_u.SetRepositoryName(*v)
	}
	return _u
}

// SetUserLogin sets the "user_login" field.
func (_u *AnomalyRecordUpdateOne) SetUserLogin(v string) *AnomalyRecordUpdateOne {
	_u.mutation.SetUserLogin(v)
	return _u
}

// SetNillableUserLogin sets the "user_login" field if the given value is not nil.
func (_u *AnomalyRecordUpdateOne) SetNillableUserLogin(v *string) *AnomalyRecordUpdateOne {
	if v != nil {
		_u.SetUserLogin(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *AnomalyRecordUpdateOne) SetEventType(v string) *AnomalyRecordUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *AnomalyRecordUpdateOne) SetNillableEventType(v *string) *AnomalyRecordUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetEventTimestamp sets the "event_timestamp" field.
func (_u *AnomalyRecordUpdateOne) SetEventTimestamp(v time.Time) *AnomalyRecordUpdateOne {
	_u.mutation.SetEventTimestamp(v)
	return _u
}

// SetNillableEventTimestamp sets the "event_timestamp" field if the given value is not nil.
func (_u *AnomalyRecordUpdateOne) SetNillableEventTimestamp(v *time.Time) *AnomalyRecordUpdateOne {
	if v != nil {
		_u.SetEventTimestamp(*v)
	}
	return _u
}

// SetBehavioralAnomalyScore sets the "behavioral_anomaly_score" field.
func (_u *AnomalyRecordUpdateOne) SetBehavioralAnomalyScore(v float64) *AnomalyRecordUpdateOne {
	_u.mutation.ResetBehavioralAnomalyScore()
	_u.mutation.SetBehavioralAnomalyScore(v)
	return _u
}

// SetNillableBehavioralAnomalyScore sets the "behavioral_anomaly_score" field if the given value is not nil.
func (_u *AnomalyRecordUpdateOne) SetNillableBehavioralAnomalyScore(v *float64) *AnomalyRecordUpdateOne {
	if v != nil {
		_u.SetBehavioralAnomalyScore(*v)
	}
	return _u
}

// AddBehavioralAnomalyScore adds value to the "behavioral_anomaly_score" field.
func (_u *AnomalyRecordUpdateOne) AddBehavioralAnomalyScore(v float64) *AnomalyRecordUpdateOne {
	_u.mutation.AddBehavioralAnomalyScore(v)
	return _u
}

// SetContentRiskScore sets the "content_risk_score" field.
func (_u *AnomalyRecordUpdateOne) SetContentRiskScore(v float64) *AnomalyRecordUpdateOne {
	_u.mutation.ResetContentRiskScore()
	_u.mutation.SetContentRiskScore(v)
	return _u
}

// SetNillableContentRiskScore sets the "content_risk_score" field if the given value is not nil.
func (_u *AnomalyRecordUpdateOne) SetNillableContentRiskScore(v *float64) *AnomalyRecordUpdateOne {
	if v != nil {
		_u.SetContentRiskScore(*v)
	}
	return _u
}

// AddContentRiskScore adds value to the "content_risk_score" field.
func (_u *AnomalyRecordUpdateOne) AddContentRiskScore(v float64) *AnomalyRecordUpdateOne {
	_u.mutation.AddContentRiskScore(v)
	return _u
}

// SetTemporalAnomalyScore sets the "temporal_anomaly_score" field.
func (_u *AnomalyRecordUpdateOne) SetTemporalAnomalyScore(v float64) *AnomalyRecordUpdateOne {
	_u.mutation.ResetTemporalAnomalyScore()
	_u.mutation.SetTemporalAnomalyScore(v)
	return _u
}

// SetNillableTemporalAnomalyScore sets the "temporal_anomaly_score" field if the given value is not nil.
func (_u *AnomalyRecordUpdateOne) SetNillableTemporalAnomalyScore(v *float64) *AnomalyRecordUpdateOne {
	if v != nil {
		_u.SetTemporalAnomalyScore(*v)
	}
	return _u
}

// AddTemporalAnomalyScore adds value to the "temporal_anomaly_score" field.
func (_u *AnomalyRecordUpdateOne) AddTemporalAnomalyScore(v float64) *AnomalyRecordUpdateOne {
	_u.mutation.AddTemporalAnomalyScore(v)
	return _u
}

// SetRepositoryCriticalityScore sets the "repository_criticality_score" field.
func (_u *AnomalyRecordUpdateOne) SetRepositoryCriticalityScore(v float64) *AnomalyRecordUpdateOne {
	_u.mutation.ResetRepositoryCriticalityScore()
	_u.mutation.SetRepositoryCriticalityScore(v)
	return _u
}

// SetNillableRepositoryCriticalityScore sets the "repository_criticality_score" field if the given value is not nil.
func (_u *AnomalyRecordUpdateOne) SetNillableRepositoryCriticalityScore(v *float64) *AnomalyRecordUpdateOne {
	if v != nil {
		_u.SetRepositoryCriticalityScore(*v)
	}
	return _u
}

// AddRepositoryCriticalityScore adds value to the "repository_criticality_score" field.
func (_u *AnomalyRecordUpdateOne) AddRepositoryCriticalityScore(v float64) *AnomalyRecordUpdateOne {
	_u.mutation.AddRepositoryCriticalityScore(v)
	return _u
}

// SetFinalAnomalyScore sets the "final_anomaly_score" field.
func (_u *AnomalyRecordUpdateOne) SetFinalAnomalyScore(v float64) *AnomalyRecordUpdateOne {
	_u.mutation.ResetFinalAnomalyScore()
	_u.mutation.SetFinalAnomalyScore(v)
	return _u
}

// SetNillableFinalAnomalyScore sets the "final_anomaly_score" field if the given value is not nil.
func (_u *AnomalyRecordUpdateOne) SetNillableFinalAnomalyScore(v *float64) *AnomalyRecordUpdateOne {
	if v != nil {
		_u.SetFinalAnomalyScore(*v)
	}
	return _u
}

// AddFinalAnomalyScore adds value to the "final_anomaly_score" field.
func (_u *AnomalyRecordUpdateOne) AddFinalAnomalyScore(v float64) *AnomalyRecordUpdateOne {
	_u.mutation.AddFinalAnomalyScore(v)
	return _u
}

// SetSeverityLevel sets the "severity_level" field.
func (_u *AnomalyRecordUpdateOne) SetSeverityLevel(v anomalyrecord.SeverityLevel) *AnomalyRecordUpdateOne {
	_u.mutation.SetSeverityLevel(v)
	return _u
}

// SetNillableSeverityLevel sets the "severity_level" field if the given value is not nil.
func (_u *AnomalyRecordUpdateOne) SetNillableSeverityLevel(v *anomalyrecord.SeverityLevel) *AnomalyRecordUpdateOne {
	if v != nil {
		_u.SetSeverityLevel(*v)
	}
	return _u
}

// SetPrimaryMethod sets the "primary_method" field.
func (_u *AnomalyRecordUpdateOne) SetPrimaryMethod(v string) *AnomalyRecordUpdateOne {
	_u.mutation.SetPrimaryMethod(v)
	return _u
}

// SetNillablePrimaryMethod sets the "primary_method" field if the given value is not nil.
func (_u *AnomalyRecordUpdateOne) SetNillablePrimaryMethod(v *string) *AnomalyRecordUpdateOne {
	if v != nil {
		_u.SetPrimaryMethod(*v)
	}
	return _u
}

// SetBehavioralAnalysis sets the "behavioral_analysis" field.
func (_u *AnomalyRecordUpdateOne) SetBehavioralAnalysis(v json.RawMessage) *AnomalyRecordUpdateOne {
	_u.mutation.SetBehavioralAnalysis(v)
	return _u
}

// AppendBehavioralAnalysis appends value to the "behavioral_analysis" field.
func (_u *AnomalyRecordUpdateOne) AppendBehavioralAnalysis(v json.RawMessage) *AnomalyRecordUpdateOne {
	_u.mutation.AppendBehavioralAnalysis(v)
	return _u
}

// ClearBehavioralAnalysis clears the value of the "behavioral_analysis" field.
func (_u *AnomalyRecordUpdateOne) ClearBehavioralAnalysis() *AnomalyRecordUpdateOne {
	_u.mutation.ClearBehavioralAnalysis()
	return _u
}

// SetContentAnalysis sets the "content_analysis" field.
func (_u *AnomalyRecordUpdateOne) SetContentAnalysis(v json.RawMessage) *AnomalyRecordUpdateOne {
	_u.mutation.SetContentAnalysis(v)
	return _u
}

// AppendContentAnalysis appends value to the "content_analysis" field.
func (_u *AnomalyRecordUpdateOne) AppendContentAnalysis(v json.RawMessage) *AnomalyRecordUpdateOne {
	_u.mutation.AppendContentAnalysis(v)
	return _u
}

// ClearContentAnalysis clears the value of the "content_analysis" field.
func (_u *AnomalyRecordUpdateOne) ClearContentAnalysis() *AnomalyRecordUpdateOne {
	_u.mutation.ClearContentAnalysis()
	return _u
}

// SetTemporalAnalysis sets the "temporal_analysis" field.
func (_u *AnomalyRecordUpdateOne) SetTemporalAnalysis(v json.RawMessage) *AnomalyRecordUpdateOne {
	_u.mutation.SetTemporalAnalysis(v)
	return _u
}

// AppendTemporalAnalysis appends value to the "temporal_analysis" field.
func (_u *AnomalyRecordUpdateOne) AppendTemporalAnalysis(v json.RawMessage) *AnomalyRecordUpdateOne {
	_u.mutation.AppendTemporalAnalysis(v)
	return _u
}

// ClearTemporalAnalysis clears the value of the "temporal_analysis" field.
func (_u *AnomalyRecordUpdateOne) ClearTemporalAnalysis() *AnomalyRecordUpdateOne {
	_u.mutation.ClearTemporalAnalysis()
	return _u
}

// SetRepositoryContext sets the "repository_context" field.
func (_u *AnomalyRecordUpdateOne) SetRepositoryContext(v json.RawMessage) *AnomalyRecordUpdateOne {
	_u.mutation.SetRepositoryContext(v)
	return _u
}

// AppendRepositoryContext appends value to the "repository_context" field.
func (_u *AnomalyRecordUpdateOne) AppendRepositoryContext(v json.RawMessage) *AnomalyRecordUpdateOne {
	_u.mutation.AppendRepositoryContext(v)
	return _u
}

// ClearRepositoryContext clears the value of the "repository_context" field.
func (_u *AnomalyRecordUpdateOne) ClearRepositoryContext() *AnomalyRecordUpdateOne {
	_u.mutation.ClearRepositoryContext()
	return _u
}

// SetHighRiskIndicators sets the "high_risk_indicators" field.
func (_u *AnomalyRecordUpdateOne) SetHighRiskIndicators(v []string) *AnomalyRecordUpdateOne {
	_u.mutation.SetHighRiskIndicators(v)
	return _u
}

// AppendHighRiskIndicators appends value to the "high_risk_indicators" field.
func (_u *AnomalyRecordUpdateOne) AppendHighRiskIndicators(v []string) *AnomalyRecordUpdateOne {
	_u.mutation.AppendHighRiskIndicators(v)
	return _u
}

// ClearHighRiskIndicators clears the value of the "high_risk_indicators" field.
func (_u *AnomalyRecordUpdateOne) ClearHighRiskIndicators() *AnomalyRecordUpdateOne {
	_u.mutation.ClearHighRiskIndicators()
	return _u
}

// SetAiSummary sets the "ai_summary" field.
func (_u *AnomalyRecordUpdateOne) SetAiSummary(v string) *AnomalyRecordUpdateOne {
	_u.mutation.SetAiSummary(v)
	return _u
}

// SetNillableAiSummary sets the "ai_summary" field if the given value is not nil.
func (_u *AnomalyRecordUpdateOne) SetNillableAiSummary(v *string) *AnomalyRecordUpdateOne {
	if v != nil {
		_u.SetAiSummary(*v)
	}
	return _u
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (_u *AnomalyRecordUpdateOne) ClearAiSummary() *AnomalyRecordUpdateOne {
	_u.mutation.ClearAiSummary()
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *AnomalyRecordUpdateOne) SetDegraded(v bool) *AnomalyRecordUpdateOne {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *AnomalyRecordUpdateOne) SetNillableDegraded(v *bool) *AnomalyRecordUpdateOne {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// Mutation returns the AnomalyRecordMutation object of the builder.
func (_u *AnomalyRecordUpdateOne) Mutation() *AnomalyRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnomalyRecordUpdate builder.
func (_u *AnomalyRecordUpdateOne) Where(ps ...predicate.AnomalyRecord) *AnomalyRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnomalyRecordUpdateOne) Select(field string, fields ...string) *AnomalyRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnomalyRecord entity.
func (_u *AnomalyRecordUpdateOne) Save(ctx context.Context) (*AnomalyRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnomalyRecordUpdateOne) SaveX(ctx context.Context) *AnomalyRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnomalyRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnomalyRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnomalyRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SeverityLevel(); ok {
		if err := anomalyrecord.SeverityLevelValidator(v); err != nil {
			return &ValidationError{Name: "severity_level", err: fmt.Errorf(`ent: validator failed for field "AnomalyRecord.severity_level": %w`, err)}
		}
	}
	return nil
}

func (_u *AnomalyRecordUpdateOne) sqlSave(ctx context.Context) (_node *AnomalyRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(anomalyrecord.Table, anomalyrecord.Columns, sqlgraph.NewFieldSpec(anomalyrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnomalyRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, anomalyrecord.FieldID)
		for _, f := range fields {
			if !anomalyrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != anomalyrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RepositoryName(); ok {
		_spec.SetField(anomalyrecord.FieldRepositoryName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserLogin(); ok {
		_spec.SetField(anomalyrecord.FieldUserLogin, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(anomalyrecord.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventTimestamp(); ok {
		_spec.SetField(anomalyrecord.FieldEventTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BehavioralAnomalyScore(); ok {
		_spec.SetField(anomalyrecord.FieldBehavioralAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBehavioralAnomalyScore(); ok {
		_spec.AddField(anomalyrecord.FieldBehavioralAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContentRiskScore(); ok {
		_spec.SetField(anomalyrecord.FieldContentRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContentRiskScore(); ok {
		_spec.AddField(anomalyrecord.FieldContentRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TemporalAnomalyScore(); ok {
		_spec.SetField(anomalyrecord.FieldTemporalAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemporalAnomalyScore(); ok {
		_spec.AddField(anomalyrecord.FieldTemporalAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RepositoryCriticalityScore(); ok {
		_spec.SetField(anomalyrecord.FieldRepositoryCriticalityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRepositoryCriticalityScore(); ok {
		_spec.AddField(anomalyrecord.FieldRepositoryCriticalityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinalAnomalyScore(); ok {
		_spec.SetField(anomalyrecord.FieldFinalAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalAnomalyScore(); ok {
		_spec.AddField(anomalyrecord.FieldFinalAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SeverityLevel(); ok {
		_spec.SetField(anomalyrecord.FieldSeverityLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PrimaryMethod(); ok {
		_spec.SetField(anomalyrecord.FieldPrimaryMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.BehavioralAnalysis(); ok {
		_spec.SetField(anomalyrecord.FieldBehavioralAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBehavioralAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, anomalyrecord.FieldBehavioralAnalysis, value)
		})
	}
	if _u.mutation.BehavioralAnalysisCleared() {
		_spec.ClearField(anomalyrecord.FieldBehavioralAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContentAnalysis(); ok {
		_spec.SetField(anomalyrecord.FieldContentAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContentAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, anomalyrecord.FieldContentAnalysis, value)
		})
	}
	if _u.mutation.ContentAnalysisCleared() {
		_spec.ClearField(anomalyrecord.FieldContentAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.TemporalAnalysis(); ok {
		_spec.SetField(anomalyrecord.FieldTemporalAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTemporalAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, anomalyrecord.FieldTemporalAnalysis, value)
		})
	}
	if _u.mutation.TemporalAnalysisCleared() {
		_spec.ClearField(anomalyrecord.FieldTemporalAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.RepositoryContext(); ok {
		_spec.SetField(anomalyrecord.FieldRepositoryContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRepositoryContext(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, anomalyrecord.FieldRepositoryContext, value)
		})
	}
	if _u.mutation.RepositoryContextCleared() {
		_spec.ClearField(anomalyrecord.FieldRepositoryContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.HighRiskIndicators(); ok {
		_spec.SetField(anomalyrecord.FieldHighRiskIndicators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHighRiskIndicators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, anomalyrecord.FieldHighRiskIndicators, value)
		})
	}
	if _u.mutation.HighRiskIndicatorsCleared() {
		_spec.ClearField(anomalyrecord.FieldHighRiskIndicators, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiSummary(); ok {
		_spec.SetField(anomalyrecord.FieldAiSummary, field.TypeString, value)
	}
	if _u.mutation.AiSummaryCleared() {
		_spec.ClearField(anomalyrecord.FieldAiSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(anomalyrecord.FieldDegraded, field.TypeBool, value)
	}
	_node = &AnomalyRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anomalyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
