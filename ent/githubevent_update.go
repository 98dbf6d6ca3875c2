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
	"github.com/forgewatch/forgewatch/ent/githubevent"
	"github.com/forgewatch/forgewatch/ent/predicate"
)

// GitHubEventUpdate is the builder for updating GitHubEvent entities.
type GitHubEventUpdate struct {
	config
	hooks    []Hook
	mutation *GitHubEventMutation
}

// Where appends a list predicates to the GitHubEventUpdate builder.
func (_u *GitHubEventUpdate) Where(ps ...predicate.GitHubEvent) *GitHubEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *GitHubEventUpdate) SetEventType(v string) *GitHubEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *GitHubEventUpdate) SetNillableEventType(v *string) *GitHubEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetActorLogin sets the "actor_login" field.
func (_u *GitHubEventUpdate) SetActorLogin(v string) *GitHubEventUpdate {
	_u.mutation.SetActorLogin(v)
	return _u
}

// SetNillableActorLogin sets the "actor_login" field if the given value is not nil.
func (_u *GitHubEventUpdate) SetNillableActorLogin(v *string) *GitHubEventUpdate {
	if v != nil {
		_u.SetActorLogin(*v)
	}
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *GitHubEventUpdate) SetActorID(v int64) *GitHubEventUpdate {
	_u.mutation.ResetActorID()
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *GitHubEventUpdate) SetNillableActorID(v *int64) *GitHubEventUpdate {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// AddActorID adds value to the "actor_id" field.
func (_u *GitHubEventUpdate) AddActorID(v int64) *GitHubEventUpdate {
	_u.mutation.AddActorID(v)
	return _u
}

// SetRepoName sets the "repo_name" field.
func (_u *GitHubEventUpdate) SetRepoName(v string) *GitHubEventUpdate {
	_u.mutation.SetRepoName(v)
	return _u
}

// SetNillableRepoName sets the "repo_name" field if the given value is not nil.
func (_u *GitHubEventUpdate) SetNillableRepoName(v *string) *GitHubEventUpdate {
	if v != nil {
		_u.SetRepoName(*v)
	}
	return _u
}

// SetRepoID sets the "repo_id" field.
func (_u *GitHubEventUpdate) SetRepoID(v int64) *GitHubEventUpdate {
	_u.mutation.ResetRepoID()
	_u.mutation.SetRepoID(v)
	return _u
}

// SetNillableRepoID sets the "repo_id" field if the given value is not nil.
func (_u *GitHubEventUpdate) SetNillableRepoID(v *int64) *GitHubEventUpdate {
	if v != nil {
		_u.SetRepoID(*v)
	}
	return _u
}

// AddRepoID adds value to the "repo_id" field.
func (_u *GitHubEventUpdate) AddRepoID(v int64) *GitHubEventUpdate {
	_u.mutation.AddRepoID(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *GitHubEventUpdate) SetPayload(v json.RawMessage) *GitHubEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *GitHubEventUpdate) AppendPayload(v json.RawMessage) *GitHubEventUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *GitHubEventUpdate) ClearPayload() *GitHubEventUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *GitHubEventUpdate) SetPriority(v githubevent.Priority) *GitHubEventUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *GitHubEventUpdate) SetNillablePriority(v *githubevent.Priority) *GitHubEventUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GitHubEventUpdate) SetStatus(v githubevent.Status) *GitHubEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GitHubEventUpdate) SetNillableStatus(v *githubevent.Status) *GitHubEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *GitHubEventUpdate) SetPodID(v string) *GitHubEventUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *GitHubEventUpdate) SetNillablePodID(v *string) *GitHubEventUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *GitHubEventUpdate) ClearPodID() *GitHubEventUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *GitHubEventUpdate) SetClaimedAt(v time.Time) *GitHubEventUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *GitHubEventUpdate) SetNillableClaimedAt(v *time.Time) *GitHubEventUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *GitHubEventUpdate) ClearClaimedAt() *GitHubEventUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *GitHubEventUpdate) SetLastHeartbeatAt(v time.Time) *GitHubEventUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *GitHubEventUpdate) SetNillableLastHeartbeatAt(v *time.Time) *GitHubEventUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *GitHubEventUpdate) ClearLastHeartbeatAt() *GitHubEventUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// Mutation returns the GitHubEventMutation object of the builder.
func (_u *GitHubEventUpdate) Mutation() *GitHubEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GitHubEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GitHubEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GitHubEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GitHubEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GitHubEventUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := githubevent.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "GitHubEvent.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := githubevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GitHubEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GitHubEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(githubevent.Table, githubevent.Columns, sqlgraph.NewFieldSpec(githubevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(githubevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorLogin(); ok {
		_spec.SetField(githubevent.FieldActorLogin, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(githubevent.FieldActorID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedActorID(); ok {
		_spec.AddField(githubevent.FieldActorID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RepoName(); ok {
		_spec.SetField(githubevent.FieldRepoName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoID(); ok {
		_spec.SetField(githubevent.FieldRepoID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRepoID(); ok {
		_spec.AddField(githubevent.FieldRepoID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(githubevent.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, githubevent.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(githubevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(githubevent.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(githubevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(githubevent.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(githubevent.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(githubevent.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(githubevent.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(githubevent.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(githubevent.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{githubevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GitHubEventUpdateOne is the builder for updating a single GitHubEvent entity.
type GitHubEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GitHubEventMutation
}

// SetEventType sets the "event_type" field.
func (_u *GitHubEventUpdateOne) SetEventType(v string) *GitHubEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *GitHubEventUpdateOne) SetNillableEventType(v *string) *GitHubEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetActorLogin sets the "actor_login" field.
func (_u *GitHubEventUpdateOne) SetActorLogin(v string) *GitHubEventUpdateOne {
	_u.mutation.SetActorLogin(v)
	return _u
}

// SetNillableActorLogin sets the "actor_login" field if the given value is not nil.
func (_u *GitHubEventUpdateOne) SetNillableActorLogin(v *string) *GitHubEventUpdateOne {
	if v != nil {
		_u.SetActorLogin(*v)
	}
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *GitHubEventUpdateOne) SetActorID(v int64) *GitHubEventUpdateOne {
	_u.mutation.ResetActorID()
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *GitHubEventUpdateOne) SetNillableActorID(v *int64) *GitHubEventUpdateOne {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// AddActorID adds value to the "actor_id" field.
func (_u *GitHubEventUpdateOne) AddActorID(v int64) *GitHubEventUpdateOne {
	_u.mutation.AddActorID(v)
	return _u
}

// SetRepoName sets the "repo_name" field.
func (_u *GitHubEventUpdateOne) SetRepoName(v string) *GitHubEventUpdateOne {
	_u.mutation.SetRepoName(v)
	return _u
}

// SetNillableRepoName sets the "repo_name" field if the given value is not nil.
func (_u *GitHubEventUpdateOne) SetNillableRepoName(v *string) *GitHubEventUpdateOne {
	if v != nil {
		_u.SetRepoName(*v)
	}
	return _u
}

// SetRepoID sets the "repo_id" field.
func (_u *GitHubEventUpdateOne) SetRepoID(v int64) *GitHubEventUpdateOne {
	_u.mutation.ResetRepoID()
	_u.mutation.SetRepoID(v)
	return _u
}

// SetNillableRepoID sets the "repo_id" field if the given value is not nil.
func (_u *GitHubEventUpdateOne) SetNillableRepoID(v *int64) *GitHubEventUpdateOne {
	if v != nil {
		_u.SetRepoID(*v)
	}
	return _u
}

// AddRepoID adds value to the "repo_id" field.
func (_u *GitHubEventUpdateOne) AddRepoID(v int64) *GitHubEventUpdateOne {
	_u.mutation.AddRepoID(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *GitHubEventUpdateOne) SetPayload(v json.RawMessage) *GitHubEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *GitHubEventUpdateOne) AppendPayload(v json.RawMessage) *GitHubEventUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *GitHubEventUpdateOne) ClearPayload() *GitHubEventUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *GitHubEventUpdateOne) SetPriority(v githubevent.Priority) *GitHubEventUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *GitHubEventUpdateOne) SetNillablePriority(v *githubevent.Priority) *GitHubEventUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GitHubEventUpdateOne) SetStatus(v githubevent.Status) *GitHubEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GitHubEventUpdateOne) SetNillableStatus(v *githubevent.Status) *GitHubEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *GitHubEventUpdateOne) SetPodID(v string) *GitHubEventUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *GitHubEventUpdateOne) SetNillablePodID(v *string) *GitHubEventUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *GitHubEventUpdateOne) ClearPodID() *GitHubEventUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *GitHubEventUpdateOne) SetClaimedAt(v time.Time) *GitHubEventUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *GitHubEventUpdateOne) SetNillableClaimedAt(v *time.Time) *GitHubEventUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *GitHubEventUpdateOne) ClearClaimedAt() *GitHubEventUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *GitHubEventUpdateOne) SetLastHeartbeatAt(v time.Time) *GitHubEventUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *GitHubEventUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *GitHubEventUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *GitHubEventUpdateOne) ClearLastHeartbeatAt() *GitHubEventUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// Mutation returns the GitHubEventMutation object of the builder.
func (_u *GitHubEventUpdateOne) Mutation() *GitHubEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GitHubEventUpdate builder.
func (_u *GitHubEventUpdateOne) Where(ps ...predicate.GitHubEvent) *GitHubEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GitHubEventUpdateOne) Select(field string, fields ...string) *GitHubEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GitHubEvent entity.
func (_u *GitHubEventUpdateOne) Save(ctx context.Context) (*GitHubEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GitHubEventUpdateOne) SaveX(ctx context.Context) *GitHubEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GitHubEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GitHubEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GitHubEventUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := githubevent.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "GitHubEvent.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := githubevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GitHubEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GitHubEventUpdateOne) sqlSave(ctx context.Context) (_node *GitHubEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(githubevent.Table, githubevent.Columns, sqlgraph.NewFieldSpec(githubevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GitHubEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, githubevent.FieldID)
		for _, f := range fields {
			if !githubevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != githubevent.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(githubevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorLogin(); ok {
		_spec.SetField(githubevent.FieldActorLogin, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(githubevent.FieldActorID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedActorID(); ok {
		_spec.AddField(githubevent.FieldActorID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RepoName(); ok {
		_spec.SetField(githubevent.FieldRepoName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoID(); ok {
		_spec.SetField(githubevent.FieldRepoID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRepoID(); ok {
		_spec.AddField(githubevent.FieldRepoID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(githubevent.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, githubevent.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(githubevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(githubevent.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(githubevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(githubevent.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(githubevent.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(githubevent.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(githubevent.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(githubevent.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(githubevent.FieldLastHeartbeatAt, field.TypeTime)
	}
	_node = &GitHubEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{githubevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
