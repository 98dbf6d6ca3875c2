// Code generated by ent, DO NOT EDIT.

package temporalpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgewatch/forgewatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldEventID, v))
}

// RepoName applies equality check predicate on the "repo_name" field. It's identical to RepoNameEQ.
func RepoName(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldRepoName, v))
}

// ActorLogin applies equality check predicate on the "actor_login" field. It's identical to ActorLoginEQ.
func ActorLogin(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldActorLogin, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v float64) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldSeverity, v))
}

// EventCount applies equality check predicate on the "event_count" field. It's identical to EventCountEQ.
func EventCount(v int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldEventCount, v))
}

// ActorCount applies equality check predicate on the "actor_count" field. It's identical to ActorCountEQ.
func ActorCount(v int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldActorCount, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldWindowStart, v))
}

// WindowEnd applies equality check predicate on the "window_end" field. It's identical to WindowEndEQ.
func WindowEnd(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldWindowEnd, v))
}

// DetectedAt applies equality check predicate on the "detected_at" field. It's identical to DetectedAtEQ.
func DetectedAt(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldDetectedAt, v))
}

// PatternTypeEQ applies the EQ predicate on the "pattern_type" field.
func PatternTypeEQ(v PatternType) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldPatternType, v))
}

// PatternTypeNEQ applies the NEQ predicate on the "pattern_type" field.
func PatternTypeNEQ(v PatternType) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNEQ(FieldPatternType, v))
}

// PatternTypeIn applies the In predicate on the "pattern_type" field.
func PatternTypeIn(vs ...PatternType) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldIn(FieldPatternType, vs...))
}

// PatternTypeNotIn applies the NotIn predicate on the "pattern_type" field.
func PatternTypeNotIn(vs ...PatternType) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNotIn(FieldPatternType, vs...))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldContainsFold(FieldEventID, v))
}

// RepoNameEQ applies the EQ predicate on the "repo_name" field.
func RepoNameEQ(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldRepoName, v))
}

// RepoNameNEQ applies the NEQ predicate on the "repo_name" field.
func RepoNameNEQ(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNEQ(FieldRepoName, v))
}

// RepoNameIn applies the In predicate on the "repo_name" field.
func RepoNameIn(vs ...string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldIn(FieldRepoName, vs...))
}

// RepoNameNotIn applies the NotIn predicate on the "repo_name" field.
func RepoNameNotIn(vs ...string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNotIn(FieldRepoName, vs...))
}

// RepoNameGT applies the GT predicate on the "repo_name" field.
func RepoNameGT(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGT(FieldRepoName, v))
}

// RepoNameGTE applies the GTE predicate on the "repo_name" field.
func RepoNameGTE(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGTE(FieldRepoName, v))
}

// RepoNameLT applies the LT predicate on the "repo_name" field.
func RepoNameLT(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLT(FieldRepoName, v))
}

// RepoNameLTE applies the LTE predicate on the "repo_name" field.
func RepoNameLTE(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLTE(FieldRepoName, v))
}

// RepoNameContains applies the Contains predicate on the "repo_name" field.
func RepoNameContains(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldContains(FieldRepoName, v))
}

// RepoNameHasPrefix applies the HasPrefix predicate on the "repo_name" field.
func RepoNameHasPrefix(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldHasPrefix(FieldRepoName, v))
}

// RepoNameHasSuffix applies the HasSuffix predicate on the "repo_name" field.
func RepoNameHasSuffix(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldHasSuffix(FieldRepoName, v))
}

// RepoNameEqualFold applies the EqualFold predicate on the "repo_name" field.
func RepoNameEqualFold(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEqualFold(FieldRepoName, v))
}

// RepoNameContainsFold applies the ContainsFold predicate on the "repo_name" field.
func RepoNameContainsFold(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldContainsFold(FieldRepoName, v))
}

// ActorLoginEQ applies the EQ predicate on the "actor_login" field.
func ActorLoginEQ(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldActorLogin, v))
}

// ActorLoginNEQ applies the NEQ predicate on the "actor_login" field.
func ActorLoginNEQ(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNEQ(FieldActorLogin, v))
}

// ActorLoginIn applies the In predicate on the "actor_login" field.
func ActorLoginIn(vs ...string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldIn(FieldActorLogin, vs...))
}

// ActorLoginNotIn applies the NotIn predicate on the "actor_login" field.
func ActorLoginNotIn(vs ...string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNotIn(FieldActorLogin, vs...))
}

// ActorLoginGT applies the GT predicate on the "actor_login" field.
func ActorLoginGT(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGT(FieldActorLogin, v))
}

// ActorLoginGTE applies the GTE predicate on the "actor_login" field.
func ActorLoginGTE(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGTE(FieldActorLogin, v))
}

// ActorLoginLT applies the LT predicate on the "actor_login" field.
func ActorLoginLT(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLT(FieldActorLogin, v))
}

// ActorLoginLTE applies the LTE predicate on the "actor_login" field.
func ActorLoginLTE(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLTE(FieldActorLogin, v))
}

// ActorLoginContains applies the Contains predicate on the "actor_login" field.
func ActorLoginContains(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldContains(FieldActorLogin, v))
}

// ActorLoginHasPrefix applies the HasPrefix predicate on the "actor_login" field.
func ActorLoginHasPrefix(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldHasPrefix(FieldActorLogin, v))
}

// ActorLoginHasSuffix applies the HasSuffix predicate on the "actor_login" field.
func ActorLoginHasSuffix(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldHasSuffix(FieldActorLogin, v))
}

// ActorLoginIsNil applies the IsNil predicate on the "actor_login" field.
func ActorLoginIsNil() predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldIsNull(FieldActorLogin))
}

// ActorLoginNotNil applies the NotNil predicate on the "actor_login" field.
func ActorLoginNotNil() predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNotNull(FieldActorLogin))
}

// ActorLoginEqualFold applies the EqualFold predicate on the "actor_login" field.
func ActorLoginEqualFold(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEqualFold(FieldActorLogin, v))
}

// ActorLoginContainsFold applies the ContainsFold predicate on the "actor_login" field.
func ActorLoginContainsFold(v string) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldContainsFold(FieldActorLogin, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v float64) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v float64) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...float64) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...float64) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v float64) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v float64) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v float64) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v float64) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLTE(FieldSeverity, v))
}

// EventCountEQ applies the EQ predicate on the "event_count" field.
func EventCountEQ(v int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldEventCount, v))
}

// EventCountNEQ applies the NEQ predicate on the "event_count" field.
func EventCountNEQ(v int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNEQ(FieldEventCount, v))
}

// EventCountIn applies the In predicate on the "event_count" field.
func EventCountIn(vs ...int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldIn(FieldEventCount, vs...))
}

// EventCountNotIn applies the NotIn predicate on the "event_count" field.
func EventCountNotIn(vs ...int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNotIn(FieldEventCount, vs...))
}

// EventCountGT applies the GT predicate on the "event_count" field.
func EventCountGT(v int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGT(FieldEventCount, v))
}

// EventCountGTE applies the GTE predicate on the "event_count" field.
func EventCountGTE(v int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGTE(FieldEventCount, v))
}

// EventCountLT applies the LT predicate on the "event_count" field.
func EventCountLT(v int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLT(FieldEventCount, v))
}

// EventCountLTE applies the LTE predicate on the "event_count" field.
func EventCountLTE(v int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLTE(FieldEventCount, v))
}

// ActorCountEQ applies the EQ predicate on the "actor_count" field.
func ActorCountEQ(v int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldActorCount, v))
}

// ActorCountNEQ applies the NEQ predicate on the "actor_count" field.
func ActorCountNEQ(v int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNEQ(FieldActorCount, v))
}

// ActorCountIn applies the In predicate on the "actor_count" field.
func ActorCountIn(vs ...int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldIn(FieldActorCount, vs...))
}

// ActorCountNotIn applies the NotIn predicate on the "actor_count" field.
func ActorCountNotIn(vs ...int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNotIn(FieldActorCount, vs...))
}

// ActorCountGT applies the GT predicate on the "actor_count" field.
func ActorCountGT(v int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGT(FieldActorCount, v))
}

// ActorCountGTE applies the GTE predicate on the "actor_count" field.
func ActorCountGTE(v int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGTE(FieldActorCount, v))
}

// ActorCountLT applies the LT predicate on the "actor_count" field.
func ActorCountLT(v int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLT(FieldActorCount, v))
}

// ActorCountLTE applies the LTE predicate on the "actor_count" field.
func ActorCountLTE(v int) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLTE(FieldActorCount, v))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLTE(FieldWindowStart, v))
}

// WindowEndEQ applies the EQ predicate on the "window_end" field.
func WindowEndEQ(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldWindowEnd, v))
}

// WindowEndNEQ applies the NEQ predicate on the "window_end" field.
func WindowEndNEQ(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNEQ(FieldWindowEnd, v))
}

// WindowEndIn applies the In predicate on the "window_end" field.
func WindowEndIn(vs ...time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldIn(FieldWindowEnd, vs...))
}

// WindowEndNotIn applies the NotIn predicate on the "window_end" field.
func WindowEndNotIn(vs ...time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNotIn(FieldWindowEnd, vs...))
}

// WindowEndGT applies the GT predicate on the "window_end" field.
func WindowEndGT(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGT(FieldWindowEnd, v))
}

// WindowEndGTE applies the GTE predicate on the "window_end" field.
func WindowEndGTE(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGTE(FieldWindowEnd, v))
}

// WindowEndLT applies the LT predicate on the "window_end" field.
func WindowEndLT(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLT(FieldWindowEnd, v))
}

// WindowEndLTE applies the LTE predicate on the "window_end" field.
func WindowEndLTE(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLTE(FieldWindowEnd, v))
}

// DetectedAtEQ applies the EQ predicate on the "detected_at" field.
func DetectedAtEQ(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldEQ(FieldDetectedAt, v))
}

// DetectedAtNEQ applies the NEQ predicate on the "detected_at" field.
func DetectedAtNEQ(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNEQ(FieldDetectedAt, v))
}

// DetectedAtIn applies the In predicate on the "detected_at" field.
func DetectedAtIn(vs ...time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldIn(FieldDetectedAt, vs...))
}

// DetectedAtNotIn applies the NotIn predicate on the "detected_at" field.
func DetectedAtNotIn(vs ...time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldNotIn(FieldDetectedAt, vs...))
}

// DetectedAtGT applies the GT predicate on the "detected_at" field.
func DetectedAtGT(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGT(FieldDetectedAt, v))
}

// DetectedAtGTE applies the GTE predicate on the "detected_at" field.
func DetectedAtGTE(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldGTE(FieldDetectedAt, v))
}

// DetectedAtLT applies the LT predicate on the "detected_at" field.
func DetectedAtLT(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLT(FieldDetectedAt, v))
}

// DetectedAtLTE applies the LTE predicate on the "detected_at" field.
func DetectedAtLTE(v time.Time) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.FieldLTE(FieldDetectedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TemporalPattern) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TemporalPattern) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TemporalPattern) predicate.TemporalPattern {
	return predicate.TemporalPattern(sql.NotPredicates(p))
}
