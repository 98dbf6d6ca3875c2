// Code generated by ent, DO NOT EDIT.

package anomalyrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgewatch/forgewatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldEventID, v))
}

// RepositoryName applies equality check predicate on the "repository_name" field. It's identical to RepositoryNameEQ.
func RepositoryName(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldRepositoryName, v))
}

// UserLogin applies equality check predicate on the "user_login" field. It's identical to UserLoginEQ.
func UserLogin(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldUserLogin, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldEventType, v))
}

// EventTimestamp applies equality check predicate on the "event_timestamp" field. It's identical to EventTimestampEQ.
func EventTimestamp(v time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldEventTimestamp, v))
}

// BehavioralAnomalyScore applies equality check predicate on the "behavioral_anomaly_score" field. It's identical to BehavioralAnomalyScoreEQ.
func BehavioralAnomalyScore(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldBehavioralAnomalyScore, v))
}

// ContentRiskScore applies equality check predicate on the "content_risk_score" field. It's identical to ContentRiskScoreEQ.
func ContentRiskScore(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldContentRiskScore, v))
}

// TemporalAnomalyScore applies equality check predicate on the "temporal_anomaly_score" field. It's identical to TemporalAnomalyScoreEQ.
func TemporalAnomalyScore(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldTemporalAnomalyScore, v))
}

// RepositoryCriticalityScore applies equality check predicate on the "repository_criticality_score" field. It's identical to RepositoryCriticalityScoreEQ.
func RepositoryCriticalityScore(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldRepositoryCriticalityScore, v))
}

// FinalAnomalyScore applies equality check predicate on the "final_anomaly_score" field. It's identical to FinalAnomalyScoreEQ.
func FinalAnomalyScore(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldFinalAnomalyScore, v))
}

// PrimaryMethod applies equality check predicate on the "primary_method" field. It's identical to PrimaryMethodEQ.
func PrimaryMethod(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldPrimaryMethod, v))
}

// AiSummary applies equality check predicate on the "ai_summary" field. It's identical to AiSummaryEQ.
func AiSummary(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldAiSummary, v))
}

// Degraded applies equality check predicate on the "degraded" field. It's identical to DegradedEQ.
func Degraded(v bool) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldDegraded, v))
}

// DetectionTimestamp applies equality check predicate on the "detection_timestamp" field. It's identical to DetectionTimestampEQ.
func DetectionTimestamp(v time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldDetectionTimestamp, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldContainsFold(FieldEventID, v))
}

// RepositoryNameEQ applies the EQ predicate on the "repository_name" field.
func RepositoryNameEQ(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldRepositoryName, v))
}

// RepositoryNameNEQ applies the NEQ predicate on the "repository_name" field.
func RepositoryNameNEQ(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldRepositoryName, v))
}

// RepositoryNameIn applies the In predicate on the "repository_name" field.
func RepositoryNameIn(vs ...string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldRepositoryName, vs...))
}

// RepositoryNameNotIn applies the NotIn predicate on the "repository_name" field.
func RepositoryNameNotIn(vs ...string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldRepositoryName, vs...))
}

// RepositoryNameGT applies the GT predicate on the "repository_name" field.
func RepositoryNameGT(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGT(FieldRepositoryName, v))
}

// RepositoryNameGTE applies the GTE predicate on the "repository_name" field.
func RepositoryNameGTE(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGTE(FieldRepositoryName, v))
}

// RepositoryNameLT applies the LT predicate on the "repository_name" field.
func RepositoryNameLT(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLT(FieldRepositoryName, v))
}

// RepositoryNameLTE applies the LTE predicate on the "repository_name" field.
func RepositoryNameLTE(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLTE(FieldRepositoryName, v))
}

// RepositoryNameContains applies the Contains predicate on the "repository_name" field.
func RepositoryNameContains(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldContains(FieldRepositoryName, v))
}

// RepositoryNameHasPrefix applies the HasPrefix predicate on the "repository_name" field.
func RepositoryNameHasPrefix(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldHasPrefix(FieldRepositoryName, v))
}

// RepositoryNameHasSuffix applies the HasSuffix predicate on the "repository_name" field.
func RepositoryNameHasSuffix(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldHasSuffix(FieldRepositoryName, v))
}

// RepositoryNameEqualFold applies the EqualFold predicate on the "repository_name" field.
func RepositoryNameEqualFold(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEqualFold(FieldRepositoryName, v))
}

// RepositoryNameContainsFold applies the ContainsFold predicate on the "repository_name" field.
func RepositoryNameContainsFold(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldContainsFold(FieldRepositoryName, v))
}

// UserLoginEQ applies the EQ predicate on the "user_login" field.
func UserLoginEQ(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldUserLogin, v))
}

// UserLoginNEQ applies the NEQ predicate on the "user_login" field.
func UserLoginNEQ(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldUserLogin, v))
}

// UserLoginIn applies the In predicate on the "user_login" field.
func UserLoginIn(vs ...string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldUserLogin, vs...))
}

// UserLoginNotIn applies the NotIn predicate on the "user_login" field.
func UserLoginNotIn(vs ...string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldUserLogin, vs...))
}

// UserLoginGT applies the GT predicate on the "user_login" field.
func UserLoginGT(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGT(FieldUserLogin, v))
}

// UserLoginGTE applies the GTE predicate on the "user_login" field.
func UserLoginGTE(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGTE(FieldUserLogin, v))
}

// UserLoginLT applies the LT predicate on the "user_login" field.
func UserLoginLT(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLT(FieldUserLogin, v))
}

// UserLoginLTE applies the LTE predicate on the "user_login" field.
func UserLoginLTE(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLTE(FieldUserLogin, v))
}

// UserLoginContains applies the Contains predicate on the "user_login" field.
func UserLoginContains(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldContains(FieldUserLogin, v))
}

// UserLoginHasPrefix applies the HasPrefix predicate on the "user_login" field.
func UserLoginHasPrefix(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldHasPrefix(FieldUserLogin, v))
}

// UserLoginHasSuffix applies the HasSuffix predicate on the "user_login" field.
func UserLoginHasSuffix(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldHasSuffix(FieldUserLogin, v))
}

// UserLoginEqualFold applies the EqualFold predicate on the "user_login" field.
func UserLoginEqualFold(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEqualFold(FieldUserLogin, v))
}

// UserLoginContainsFold applies the ContainsFold predicate on the "user_login" field.
func UserLoginContainsFold(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldContainsFold(FieldUserLogin, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldContainsFold(FieldEventType, v))
}

// EventTimestampEQ applies the EQ predicate on the "event_timestamp" field.
func EventTimestampEQ(v time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldEventTimestamp, v))
}

// EventTimestampNEQ applies the NEQ predicate on the "event_timestamp" field.
func EventTimestampNEQ(v time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldEventTimestamp, v))
}

// EventTimestampIn applies the In predicate on the "event_timestamp" field.
func EventTimestampIn(vs ...time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldEventTimestamp, vs...))
}

// EventTimestampNotIn applies the NotIn predicate on the "event_timestamp" field.
func EventTimestampNotIn(vs ...time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldEventTimestamp, vs...))
}

// EventTimestampGT applies the GT predicate on the "event_timestamp" field.
func EventTimestampGT(v time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGT(FieldEventTimestamp, v))
}

// EventTimestampGTE applies the GTE predicate on the "event_timestamp" field.
func EventTimestampGTE(v time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGTE(FieldEventTimestamp, v))
}

// EventTimestampLT applies the LT predicate on the "event_timestamp" field.
func EventTimestampLT(v time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLT(FieldEventTimestamp, v))
}

// EventTimestampLTE applies the LTE predicate on the "event_timestamp" field.
func EventTimestampLTE(v time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLTE(FieldEventTimestamp, v))
}

// BehavioralAnomalyScoreEQ applies the EQ predicate on the "behavioral_anomaly_score" field.
func BehavioralAnomalyScoreEQ(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldBehavioralAnomalyScore, v))
}

// BehavioralAnomalyScoreNEQ applies the NEQ predicate on the "behavioral_anomaly_score" field.
func BehavioralAnomalyScoreNEQ(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldBehavioralAnomalyScore, v))
}

// BehavioralAnomalyScoreIn applies the In predicate on the "behavioral_anomaly_score" field.
func BehavioralAnomalyScoreIn(vs ...float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldBehavioralAnomalyScore, vs...))
}

// BehavioralAnomalyScoreNotIn applies the NotIn predicate on the "behavioral_anomaly_score" field.
func BehavioralAnomalyScoreNotIn(vs ...float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldBehavioralAnomalyScore, vs...))
}

// BehavioralAnomalyScoreGT applies the GT predicate on the "behavioral_anomaly_score" field.
func BehavioralAnomalyScoreGT(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGT(FieldBehavioralAnomalyScore, v))
}

// BehavioralAnomalyScoreGTE applies the GTE predicate on the "behavioral_anomaly_score" field.
func BehavioralAnomalyScoreGTE(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGTE(FieldBehavioralAnomalyScore, v))
}

// BehavioralAnomalyScoreLT applies the LT predicate on the "behavioral_anomaly_score" field.
func BehavioralAnomalyScoreLT(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLT(FieldBehavioralAnomalyScore, v))
}

// BehavioralAnomalyScoreLTE applies the LTE predicate on the "behavioral_anomaly_score" field.
func BehavioralAnomalyScoreLTE(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLTE(FieldBehavioralAnomalyScore, v))
}

// ContentRiskScoreEQ applies the EQ predicate on the "content_risk_score" field.
func ContentRiskScoreEQ(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldContentRiskScore, v))
}

// ContentRiskScoreNEQ applies the NEQ predicate on the "content_risk_score" field.
func ContentRiskScoreNEQ(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldContentRiskScore, v))
}

// ContentRiskScoreIn applies the In predicate on the "content_risk_score" field.
func ContentRiskScoreIn(vs ...float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldContentRiskScore, vs...))
}

// ContentRiskScoreNotIn applies the NotIn predicate on the "content_risk_score" field.
func ContentRiskScoreNotIn(vs ...float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldContentRiskScore, vs...))
}

// ContentRiskScoreGT applies the GT predicate on the "content_risk_score" field.
func ContentRiskScoreGT(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGT(FieldContentRiskScore, v))
}

// ContentRiskScoreGTE applies the GTE predicate on the "content_risk_score" field.
func ContentRiskScoreGTE(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGTE(FieldContentRiskScore, v))
}

// ContentRiskScoreLT applies the LT predicate on the "content_risk_score" field.
func ContentRiskScoreLT(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLT(FieldContentRiskScore, v))
}

// ContentRiskScoreLTE applies the LTE predicate on the "content_risk_score" field.
func ContentRiskScoreLTE(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLTE(FieldContentRiskScore, v))
}

// TemporalAnomalyScoreEQ applies the EQ predicate on the "temporal_anomaly_score" field.
func TemporalAnomalyScoreEQ(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldTemporalAnomalyScore, v))
}

// TemporalAnomalyScoreNEQ applies the NEQ predicate on the "temporal_anomaly_score" field.
func TemporalAnomalyScoreNEQ(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldTemporalAnomalyScore, v))
}

// TemporalAnomalyScoreIn applies the In predicate on the "temporal_anomaly_score" field.
func TemporalAnomalyScoreIn(vs ...float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldTemporalAnomalyScore, vs...))
}

// TemporalAnomalyScoreNotIn applies the NotIn predicate on the "temporal_anomaly_score" field.
func TemporalAnomalyScoreNotIn(vs ...float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldTemporalAnomalyScore, vs...))
}

// TemporalAnomalyScoreGT applies the GT predicate on the "temporal_anomaly_score" field.
func TemporalAnomalyScoreGT(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGT(FieldTemporalAnomalyScore, v))
}

// TemporalAnomalyScoreGTE applies the GTE predicate on the "temporal_anomaly_score" field.
func TemporalAnomalyScoreGTE(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGTE(FieldTemporalAnomalyScore, v))
}

// TemporalAnomalyScoreLT applies the LT predicate on the "temporal_anomaly_score" field.
func TemporalAnomalyScoreLT(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLT(FieldTemporalAnomalyScore, v))
}

// TemporalAnomalyScoreLTE applies the LTE predicate on the "temporal_anomaly_score" field.
func TemporalAnomalyScoreLTE(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLTE(FieldTemporalAnomalyScore, v))
}

// RepositoryCriticalityScoreEQ applies the EQ predicate on the "repository_criticality_score" field.
func RepositoryCriticalityScoreEQ(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldRepositoryCriticalityScore, v))
}

// RepositoryCriticalityScoreNEQ applies the NEQ predicate on the "repository_criticality_score" field.
func RepositoryCriticalityScoreNEQ(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldRepositoryCriticalityScore, v))
}

// RepositoryCriticalityScoreIn applies the In predicate on the "repository_criticality_score" field.
func RepositoryCriticalityScoreIn(vs ...float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldRepositoryCriticalityScore, vs...))
}

// RepositoryCriticalityScoreNotIn applies the NotIn predicate on the "repository_criticality_score" field.
func RepositoryCriticalityScoreNotIn(vs ...float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldRepositoryCriticalityScore, vs...))
}

// RepositoryCriticalityScoreGT applies the GT predicate on the "repository_criticality_score" field.
func RepositoryCriticalityScoreGT(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGT(FieldRepositoryCriticalityScore, v))
}

// RepositoryCriticalityScoreGTE applies the GTE predicate on the "repository_criticality_score" field.
func RepositoryCriticalityScoreGTE(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGTE(FieldRepositoryCriticalityScore, v))
}

// RepositoryCriticalityScoreLT applies the LT predicate on the "repository_criticality_score" field.
func RepositoryCriticalityScoreLT(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLT(FieldRepositoryCriticalityScore, v))
}

// RepositoryCriticalityScoreLTE applies the LTE predicate on the "repository_criticality_score" field.
func RepositoryCriticalityScoreLTE(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLTE(FieldRepositoryCriticalityScore, v))
}

// FinalAnomalyScoreEQ applies the EQ predicate on the "final_anomaly_score" field.
func FinalAnomalyScoreEQ(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldFinalAnomalyScore, v))
}

// FinalAnomalyScoreNEQ applies the NEQ predicate on the "final_anomaly_score" field.
func FinalAnomalyScoreNEQ(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldFinalAnomalyScore, v))
}

// FinalAnomalyScoreIn applies the In predicate on the "final_anomaly_score" field.
func FinalAnomalyScoreIn(vs ...float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldFinalAnomalyScore, vs...))
}

// FinalAnomalyScoreNotIn applies the NotIn predicate on the "final_anomaly_score" field.
func FinalAnomalyScoreNotIn(vs ...float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldFinalAnomalyScore, vs...))
}

// FinalAnomalyScoreGT applies the GT predicate on the "final_anomaly_score" field.
func FinalAnomalyScoreGT(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGT(FieldFinalAnomalyScore, v))
}

// FinalAnomalyScoreGTE applies the GTE predicate on the "final_anomaly_score" field.
func FinalAnomalyScoreGTE(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGTE(FieldFinalAnomalyScore, v))
}

// FinalAnomalyScoreLT applies the LT predicate on the "final_anomaly_score" field.
func FinalAnomalyScoreLT(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLT(FieldFinalAnomalyScore, v))
}

// FinalAnomalyScoreLTE applies the LTE predicate on the "final_anomaly_score" field.
func FinalAnomalyScoreLTE(v float64) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLTE(FieldFinalAnomalyScore, v))
}

// SeverityLevelEQ applies the EQ predicate on the "severity_level" field.
func SeverityLevelEQ(v SeverityLevel) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldSeverityLevel, v))
}

// SeverityLevelNEQ applies the NEQ predicate on the "severity_level" field.
func SeverityLevelNEQ(v SeverityLevel) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldSeverityLevel, v))
}

// SeverityLevelIn applies the In predicate on the "severity_level" field.
func SeverityLevelIn(vs ...SeverityLevel) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldSeverityLevel, vs...))
}

// SeverityLevelNotIn applies the NotIn predicate on the "severity_level" field.
func SeverityLevelNotIn(vs ...SeverityLevel) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldSeverityLevel, vs...))
}

// PrimaryMethodEQ applies the EQ predicate on the "primary_method" field.
func PrimaryMethodEQ(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldPrimaryMethod, v))
}

// PrimaryMethodNEQ applies the NEQ predicate on the "primary_method" field.
func PrimaryMethodNEQ(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldPrimaryMethod, v))
}

// PrimaryMethodIn applies the In predicate on the "primary_method" field.
func PrimaryMethodIn(vs ...string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldPrimaryMethod, vs...))
}

// PrimaryMethodNotIn applies the NotIn predicate on the "primary_method" field.
func PrimaryMethodNotIn(vs ...string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldPrimaryMethod, vs...))
}

// PrimaryMethodGT applies the GT predicate on the "primary_method" field.
func PrimaryMethodGT(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGT(FieldPrimaryMethod, v))
}

// PrimaryMethodGTE applies the GTE predicate on the "primary_method" field.
func PrimaryMethodGTE(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGTE(FieldPrimaryMethod, v))
}

// PrimaryMethodLT applies the LT predicate on the "primary_method" field.
func PrimaryMethodLT(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLT(FieldPrimaryMethod, v))
}

// PrimaryMethodLTE applies the LTE predicate on the "primary_method" field.
func PrimaryMethodLTE(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLTE(FieldPrimaryMethod, v))
}

// PrimaryMethodContains applies the Contains predicate on the "primary_method" field.
func PrimaryMethodContains(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldContains(FieldPrimaryMethod, v))
}

// PrimaryMethodHasPrefix applies the HasPrefix predicate on the "primary_method" field.
func PrimaryMethodHasPrefix(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldHasPrefix(FieldPrimaryMethod, v))
}

// PrimaryMethodHasSuffix applies the HasSuffix predicate on the "primary_method" field.
func PrimaryMethodHasSuffix(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldHasSuffix(FieldPrimaryMethod, v))
}

// PrimaryMethodEqualFold applies the EqualFold predicate on the "primary_method" field.
func PrimaryMethodEqualFold(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEqualFold(FieldPrimaryMethod, v))
}

// PrimaryMethodContainsFold applies the ContainsFold predicate on the "primary_method" field.
func PrimaryMethodContainsFold(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldContainsFold(FieldPrimaryMethod, v))
}

// BehavioralAnalysisIsNil applies the IsNil predicate on the "behavioral_analysis" field.
func BehavioralAnalysisIsNil() predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIsNull(FieldBehavioralAnalysis))
}

// BehavioralAnalysisNotNil applies the NotNil predicate on the "behavioral_analysis" field.
func BehavioralAnalysisNotNil() predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotNull(FieldBehavioralAnalysis))
}

// ContentAnalysisIsNil applies the IsNil predicate on the "content_analysis" field.
func ContentAnalysisIsNil() predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIsNull(FieldContentAnalysis))
}

// ContentAnalysisNotNil applies the NotNil predicate on the "content_analysis" field.
func ContentAnalysisNotNil() predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotNull(FieldContentAnalysis))
}

// TemporalAnalysisIsNil applies the IsNil predicate on the "temporal_analysis" field.
func TemporalAnalysisIsNil() predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIsNull(FieldTemporalAnalysis))
}

// TemporalAnalysisNotNil applies the NotNil predicate on the "temporal_analysis" field.
func TemporalAnalysisNotNil() predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotNull(FieldTemporalAnalysis))
}

// RepositoryContextIsNil applies the IsNil predicate on the "repository_context" field.
func RepositoryContextIsNil() predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIsNull(FieldRepositoryContext))
}

// RepositoryContextNotNil applies the NotNil predicate on the "repository_context" field.
func RepositoryContextNotNil() predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotNull(FieldRepositoryContext))
}

// HighRiskIndicatorsIsNil applies the IsNil predicate on the "high_risk_indicators" field.
func HighRiskIndicatorsIsNil() predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIsNull(FieldHighRiskIndicators))
}

// HighRiskIndicatorsNotNil applies the NotNil predicate on the "high_risk_indicators" field.
func HighRiskIndicatorsNotNil() predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotNull(FieldHighRiskIndicators))
}

// AiSummaryEQ applies the EQ predicate on the "ai_summary" field.
func AiSummaryEQ(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldAiSummary, v))
}

// AiSummaryNEQ applies the NEQ predicate on the "ai_summary" field.
func AiSummaryNEQ(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldAiSummary, v))
}

// AiSummaryIn applies the In predicate on the "ai_summary" field.
func AiSummaryIn(vs ...string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldAiSummary, vs...))
}

// AiSummaryNotIn applies the NotIn predicate on the "ai_summary" field.
func AiSummaryNotIn(vs ...string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldAiSummary, vs...))
}

// AiSummaryGT applies the GT predicate on the "ai_summary" field.
func AiSummaryGT(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGT(FieldAiSummary, v))
}

// AiSummaryGTE applies the GTE predicate on the "ai_summary" field.
func AiSummaryGTE(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGTE(FieldAiSummary, v))
}

// AiSummaryLT applies the LT predicate on the "ai_summary" field.
func AiSummaryLT(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLT(FieldAiSummary, v))
}

// AiSummaryLTE applies the LTE predicate on the "ai_summary" field.
func AiSummaryLTE(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLTE(FieldAiSummary, v))
}

// AiSummaryContains applies the Contains predicate on the "ai_summary" field.
func AiSummaryContains(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldContains(FieldAiSummary, v))
}

// AiSummaryHasPrefix applies the HasPrefix predicate on the "ai_summary" field.
func AiSummaryHasPrefix(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldHasPrefix(FieldAiSummary, v))
}

// AiSummaryHasSuffix applies the HasSuffix predicate on the "ai_summary" field.
func AiSummaryHasSuffix(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldHasSuffix(FieldAiSummary, v))
}

// AiSummaryIsNil applies the IsNil predicate on the "ai_summary" field.
func AiSummaryIsNil() predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIsNull(FieldAiSummary))
}

// AiSummaryNotNil applies the NotNil predicate on the "ai_summary" field.
func AiSummaryNotNil() predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotNull(FieldAiSummary))
}

// AiSummaryEqualFold applies the EqualFold predicate on the "ai_summary" field.
func AiSummaryEqualFold(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEqualFold(FieldAiSummary, v))
}

// AiSummaryContainsFold applies the ContainsFold predicate on the "ai_summary" field.
func AiSummaryContainsFold(v string) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldContainsFold(FieldAiSummary, v))
}

// DegradedEQ applies the EQ predicate on the "degraded" field.
func DegradedEQ(v bool) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldDegraded, v))
}

// DegradedNEQ applies the NEQ predicate on the "degraded" field.
func DegradedNEQ(v bool) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldDegraded, v))
}

// DetectionTimestampEQ applies the EQ predicate on the "detection_timestamp" field.
func DetectionTimestampEQ(v time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldEQ(FieldDetectionTimestamp, v))
}

// DetectionTimestampNEQ applies the NEQ predicate on the "detection_timestamp" field.
func DetectionTimestampNEQ(v time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNEQ(FieldDetectionTimestamp, v))
}

// DetectionTimestampIn applies the In predicate on the "detection_timestamp" field.
func DetectionTimestampIn(vs ...time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldIn(FieldDetectionTimestamp, vs...))
}

// DetectionTimestampNotIn applies the NotIn predicate on the "detection_timestamp" field.
func DetectionTimestampNotIn(vs ...time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldNotIn(FieldDetectionTimestamp, vs...))
}

// DetectionTimestampGT applies the GT predicate on the "detection_timestamp" field.
func DetectionTimestampGT(v time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGT(FieldDetectionTimestamp, v))
}

// DetectionTimestampGTE applies the GTE predicate on the "detection_timestamp" field.
func DetectionTimestampGTE(v time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldGTE(FieldDetectionTimestamp, v))
}

// DetectionTimestampLT applies the LT predicate on the "detection_timestamp" field.
func DetectionTimestampLT(v time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLT(FieldDetectionTimestamp, v))
}

// DetectionTimestampLTE applies the LTE predicate on the "detection_timestamp" field.
func DetectionTimestampLTE(v time.Time) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.FieldLTE(FieldDetectionTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnomalyRecord) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnomalyRecord) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnomalyRecord) predicate.AnomalyRecord {
	return predicate.AnomalyRecord(sql.NotPredicates(p))
}
