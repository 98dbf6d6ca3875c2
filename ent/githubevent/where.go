// Code generated by ent, DO NOT EDIT.

package githubevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgewatch/forgewatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldContainsFold(FieldID, id))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldEventType, v))
}

// ActorLogin applies equality check predicate on the "actor_login" field. It's identical to ActorLoginEQ.
func ActorLogin(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldActorLogin, v))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldActorID, v))
}

// RepoName applies equality check predicate on the "repo_name" field. It's identical to RepoNameEQ.
func RepoName(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldRepoName, v))
}

// RepoID applies equality check predicate on the "repo_id" field. It's identical to RepoIDEQ.
func RepoID(v int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldRepoID, v))
}

// EventCreatedAt applies equality check predicate on the "event_created_at" field. It's identical to EventCreatedAtEQ.
func EventCreatedAt(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldEventCreatedAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldPodID, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldClaimedAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldContainsFold(FieldEventType, v))
}

// ActorLoginEQ applies the EQ predicate on the "actor_login" field.
func ActorLoginEQ(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldActorLogin, v))
}

// ActorLoginNEQ applies the NEQ predicate on the "actor_login" field.
func ActorLoginNEQ(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNEQ(FieldActorLogin, v))
}

// ActorLoginIn applies the In predicate on the "actor_login" field.
func ActorLoginIn(vs ...string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIn(FieldActorLogin, vs...))
}

// ActorLoginNotIn applies the NotIn predicate on the "actor_login" field.
func ActorLoginNotIn(vs ...string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotIn(FieldActorLogin, vs...))
}

// ActorLoginGT applies the GT predicate on the "actor_login" field.
func ActorLoginGT(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGT(FieldActorLogin, v))
}

// ActorLoginGTE applies the GTE predicate on the "actor_login" field.
func ActorLoginGTE(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGTE(FieldActorLogin, v))
}

// ActorLoginLT applies the LT predicate on the "actor_login" field.
func ActorLoginLT(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLT(FieldActorLogin, v))
}

// ActorLoginLTE applies the LTE predicate on the "actor_login" field.
func ActorLoginLTE(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLTE(FieldActorLogin, v))
}

// ActorLoginContains applies the Contains predicate on the "actor_login" field.
func ActorLoginContains(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldContains(FieldActorLogin, v))
}

// ActorLoginHasPrefix applies the HasPrefix predicate on the "actor_login" field.
func ActorLoginHasPrefix(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldHasPrefix(FieldActorLogin, v))
}

// ActorLoginHasSuffix applies the HasSuffix predicate on the "actor_login" field.
func ActorLoginHasSuffix(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldHasSuffix(FieldActorLogin, v))
}

// ActorLoginEqualFold applies the EqualFold predicate on the "actor_login" field.
func ActorLoginEqualFold(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEqualFold(FieldActorLogin, v))
}

// ActorLoginContainsFold applies the ContainsFold predicate on the "actor_login" field.
func ActorLoginContainsFold(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldContainsFold(FieldActorLogin, v))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLTE(FieldActorID, v))
}

// RepoNameEQ applies the EQ predicate on the "repo_name" field.
func RepoNameEQ(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldRepoName, v))
}

// RepoNameNEQ applies the NEQ predicate on the "repo_name" field.
func RepoNameNEQ(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNEQ(FieldRepoName, v))
}

// RepoNameIn applies the In predicate on the "repo_name" field.
func RepoNameIn(vs ...string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIn(FieldRepoName, vs...))
}

// RepoNameNotIn applies the NotIn predicate on the "repo_name" field.
func RepoNameNotIn(vs ...string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotIn(FieldRepoName, vs...))
}

// RepoNameGT applies the GT predicate on the "repo_name" field.
func RepoNameGT(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGT(FieldRepoName, v))
}

// RepoNameGTE applies the GTE predicate on the "repo_name" field.
func RepoNameGTE(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGTE(FieldRepoName, v))
}

// RepoNameLT applies the LT predicate on the "repo_name" field.
func RepoNameLT(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLT(FieldRepoName, v))
}

// RepoNameLTE applies the LTE predicate on the "repo_name" field.
func RepoNameLTE(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLTE(FieldRepoName, v))
}

// RepoNameContains applies the Contains predicate on the "repo_name" field.
func RepoNameContains(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldContains(FieldRepoName, v))
}

// RepoNameHasPrefix applies the HasPrefix predicate on the "repo_name" field.
func RepoNameHasPrefix(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldHasPrefix(FieldRepoName, v))
}

// RepoNameHasSuffix applies the HasSuffix predicate on the "repo_name" field.
func RepoNameHasSuffix(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldHasSuffix(FieldRepoName, v))
}

// RepoNameEqualFold applies the EqualFold predicate on the "repo_name" field.
func RepoNameEqualFold(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEqualFold(FieldRepoName, v))
}

// RepoNameContainsFold applies the ContainsFold predicate on the "repo_name" field.
func RepoNameContainsFold(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldContainsFold(FieldRepoName, v))
}

// RepoIDEQ applies the EQ predicate on the "repo_id" field.
func RepoIDEQ(v int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldRepoID, v))
}

// RepoIDNEQ applies the NEQ predicate on the "repo_id" field.
func RepoIDNEQ(v int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNEQ(FieldRepoID, v))
}

// RepoIDIn applies the In predicate on the "repo_id" field.
func RepoIDIn(vs ...int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIn(FieldRepoID, vs...))
}

// RepoIDNotIn applies the NotIn predicate on the "repo_id" field.
func RepoIDNotIn(vs ...int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotIn(FieldRepoID, vs...))
}

// RepoIDGT applies the GT predicate on the "repo_id" field.
func RepoIDGT(v int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGT(FieldRepoID, v))
}

// RepoIDGTE applies the GTE predicate on the "repo_id" field.
func RepoIDGTE(v int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGTE(FieldRepoID, v))
}

// RepoIDLT applies the LT predicate on the "repo_id" field.
func RepoIDLT(v int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLT(FieldRepoID, v))
}

// RepoIDLTE applies the LTE predicate on the "repo_id" field.
func RepoIDLTE(v int64) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLTE(FieldRepoID, v))
}

// EventCreatedAtEQ applies the EQ predicate on the "event_created_at" field.
func EventCreatedAtEQ(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldEventCreatedAt, v))
}

// EventCreatedAtNEQ applies the NEQ predicate on the "event_created_at" field.
func EventCreatedAtNEQ(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNEQ(FieldEventCreatedAt, v))
}

// EventCreatedAtIn applies the In predicate on the "event_created_at" field.
func EventCreatedAtIn(vs ...time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIn(FieldEventCreatedAt, vs...))
}

// EventCreatedAtNotIn applies the NotIn predicate on the "event_created_at" field.
func EventCreatedAtNotIn(vs ...time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotIn(FieldEventCreatedAt, vs...))
}

// EventCreatedAtGT applies the GT predicate on the "event_created_at" field.
func EventCreatedAtGT(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGT(FieldEventCreatedAt, v))
}

// EventCreatedAtGTE applies the GTE predicate on the "event_created_at" field.
func EventCreatedAtGTE(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGTE(FieldEventCreatedAt, v))
}

// EventCreatedAtLT applies the LT predicate on the "event_created_at" field.
func EventCreatedAtLT(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLT(FieldEventCreatedAt, v))
}

// EventCreatedAtLTE applies the LTE predicate on the "event_created_at" field.
func EventCreatedAtLTE(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLTE(FieldEventCreatedAt, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotNull(FieldPayload))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotIn(FieldPriority, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldContainsFold(FieldPodID, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotNull(FieldClaimedAt))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GitHubEvent) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GitHubEvent) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GitHubEvent) predicate.GitHubEvent {
	return predicate.GitHubEvent(sql.NotPredicates(p))
}
