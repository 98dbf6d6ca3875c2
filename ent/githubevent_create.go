// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgewatch/forgewatch/ent/githubevent"
)

// GitHubEventCreate is the builder for creating a GitHubEvent entity.
type GitHubEventCreate struct {
	config
	mutation *GitHubEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventType sets the "event_type" field.
func (_c *GitHubEventCreate) SetEventType(v string) *GitHubEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetActorLogin sets the "actor_login" field.
func (_c *GitHubEventCreate) SetActorLogin(v string) *GitHubEventCreate {
	_c.mutation.SetActorLogin(v)
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *GitHubEventCreate) SetActorID(v int64) *GitHubEventCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetRepoName sets the "repo_name" field.
func (_c *GitHubEventCreate) SetRepoName(v string) *GitHubEventCreate {
	_c.mutation.SetRepoName(v)
	return _c
}

// SetRepoID sets the "repo_id" field.
func (_c *GitHubEventCreate) SetRepoID(v int64) *GitHubEventCreate {
	_c.mutation.SetRepoID(v)
	return _c
}

// SetEventCreatedAt sets the "event_created_at" field.
func (_c *GitHubEventCreate) SetEventCreatedAt(v time.Time) *GitHubEventCreate {
	_c.mutation.SetEventCreatedAt(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *GitHubEventCreate) SetPayload(v json.RawMessage) *GitHubEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *GitHubEventCreate) SetPriority(v githubevent.Priority) *GitHubEventCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *GitHubEventCreate) SetNillablePriority(v *githubevent.Priority) *GitHubEventCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *GitHubEventCreate) SetStatus(v githubevent.Status) *GitHubEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GitHubEventCreate) SetNillableStatus(v *githubevent.Status) *GitHubEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *GitHubEventCreate) SetPodID(v string) *GitHubEventCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *GitHubEventCreate) SetNillablePodID(v *string) *GitHubEventCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *GitHubEventCreate) SetClaimedAt(v time.Time) *GitHubEventCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *GitHubEventCreate) SetNillableClaimedAt(v *time.Time) *GitHubEventCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *GitHubEventCreate) SetLastHeartbeatAt(v time.Time) *GitHubEventCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *GitHubEventCreate) SetNillableLastHeartbeatAt(v *time.Time) *GitHubEventCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GitHubEventCreate) SetCreatedAt(v time.Time) *GitHubEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GitHubEventCreate) SetNillableCreatedAt(v *time.Time) *GitHubEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GitHubEventCreate) SetID(v string) *GitHubEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GitHubEventMutation object of the builder.
func (_c *GitHubEventCreate) Mutation() *GitHubEventMutation {
	return _c.mutation
}

// Save creates the GitHubEvent in the database.
func (_c *GitHubEventCreate) Save(ctx context.Context) (*GitHubEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GitHubEventCreate) SaveX(ctx context.Context) *GitHubEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GitHubEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GitHubEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GitHubEventCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := githubevent.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := githubevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := githubevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GitHubEventCreate) check() error {
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "GitHubEvent.event_type"`)}
	}
	if _, ok := _c.mutation.ActorLogin(); !ok {
		return &ValidationError{Name: "actor_login", err: errors.New(`ent: missing required field "GitHubEvent.actor_login"`)}
	}
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "GitHubEvent.actor_id"`)}
	}
	if _, ok := _c.mutation.RepoName(); !ok {
		return &ValidationError{Name: "repo_name", err: errors.New(`ent: missing required field "GitHubEvent.repo_name"`)}
	}
	if _, ok := _c.mutation.RepoID(); !ok {
		return &ValidationError{Name: "repo_id", err: errors.New(`ent: missing required field "GitHubEvent.repo_id"`)}
	}
	if _, ok := _c.mutation.EventCreatedAt(); !ok {
		return &ValidationError{Name: "event_created_at", err: errors.New(`ent: missing required field "GitHubEvent.event_created_at"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "GitHubEvent.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := githubevent.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "GitHubEvent.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GitHubEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := githubevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GitHubEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GitHubEvent.created_at"`)}
	}
	return nil
}

func (_c *GitHubEventCreate) sqlSave(ctx context.Context) (*GitHubEvent, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected GitHubEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GitHubEventCreate) createSpec() (*GitHubEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GitHubEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(githubevent.Table, sqlgraph.NewFieldSpec(githubevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(githubevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ActorLogin(); ok {
		_spec.SetField(githubevent.FieldActorLogin, field.TypeString, value)
		_node.ActorLogin = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(githubevent.FieldActorID, field.TypeInt64, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.RepoName(); ok {
		_spec.SetField(githubevent.FieldRepoName, field.TypeString, value)
		_node.RepoName = value
	}
	if value, ok := _c.mutation.RepoID(); ok {
		_spec.SetField(githubevent.FieldRepoID, field.TypeInt64, value)
		_node.RepoID = value
	}
	if value, ok := _c.mutation.EventCreatedAt(); ok {
		_spec.SetField(githubevent.FieldEventCreatedAt, field.TypeTime, value)
		_node.EventCreatedAt = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(githubevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(githubevent.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(githubevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(githubevent.FieldPodID, field.TypeString, value)
		_node.PodID = value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(githubevent.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(githubevent.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(githubevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GitHubEvent.Create().
//		SetEventType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GitHubEventUpsert) {
//			SetEventType(v+v).
//		}).
//		Exec(ctx)
func (_c *GitHubEventCreate) OnConflict(opts ...sql.ConflictOption) *GitHubEventUpsertOne {
	_c.conflict = opts
	return &GitHubEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GitHubEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GitHubEventCreate) OnConflictColumns(columns ...string) *GitHubEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GitHubEventUpsertOne{
		create: _c,
	}
}

type (
	// GitHubEventUpsertOne is the builder for "upsert"-ing
	//  one GitHubEvent node.
	GitHubEventUpsertOne struct {
		create *GitHubEventCreate
	}

	// GitHubEventUpsert is the "OnConflict" setter.
	GitHubEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventType sets the "event_type" field.
func (u *GitHubEventUpsert) SetEventType(v string) *GitHubEventUpsert {
	u.Set(githubevent.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *GitHubEventUpsert) UpdateEventType() *GitHubEventUpsert {
	u.SetExcluded(githubevent.FieldEventType)
	return u
}

// SetActorLogin sets the "actor_login" field.
func (u *GitHubEventUpsert) SetActorLogin(v string) *GitHubEventUpsert {
	u.Set(githubevent.FieldActorLogin, v)
	return u
}

// UpdateActorLogin sets the "actor_login" field to the value that was provided on create.
func (u *GitHubEventUpsert) UpdateActorLogin() *GitHubEventUpsert {
	u.SetExcluded(githubevent.FieldActorLogin)
	return u
}

// SetActorID sets the "actor_id" field.
func (u *GitHubEventUpsert) SetActorID(v int64) *GitHubEventUpsert {
	u.Set(githubevent.FieldActorID, v)
	return u
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *GitHubEventUpsert) UpdateActorID() *GitHubEventUpsert {
	u.SetExcluded(githubevent.FieldActorID)
	return u
}

// AddActorID adds v to the "actor_id" field.
func (u *GitHubEventUpsert) AddActorID(v int64) *GitHubEventUpsert {
	u.Add(githubevent.FieldActorID, v)
	return u
}

// SetRepoName sets the "repo_name" field.
func (u *GitHubEventUpsert) SetRepoName(v string) *GitHubEventUpsert {
	u.Set(githubevent.FieldRepoName, v)
	return u
}

// UpdateRepoName sets the "repo_name" field to the value that was provided on create.
func (u *GitHubEventUpsert) UpdateRepoName() *GitHubEventUpsert {
	u.SetExcluded(githubevent.FieldRepoName)
	return u
}

// SetRepoID sets the "repo_id" field.
func (u *GitHubEventUpsert) SetRepoID(v int64) *GitHubEventUpsert {
	u.Set(githubevent.FieldRepoID, v)
	return u
}

// UpdateRepoID sets the "repo_id" field to the value that was provided on create.
func (u *GitHubEventUpsert) UpdateRepoID() *GitHubEventUpsert {
	u.SetExcluded(githubevent.FieldRepoID)
	return u
}

// AddRepoID adds v to the "repo_id" field.
func (u *GitHubEventUpsert) AddRepoID(v int64) *GitHubEventUpsert {
	u.Add(githubevent.FieldRepoID, v)
	return u
}

// SetPayload sets the "payload" field.
func (u *GitHubEventUpsert) SetPayload(v json.RawMessage) *GitHubEventUpsert {
	u.Set(githubevent.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *GitHubEventUpsert) UpdatePayload() *GitHubEventUpsert {
	u.SetExcluded(githubevent.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *GitHubEventUpsert) ClearPayload() *GitHubEventUpsert {
	u.SetNull(githubevent.FieldPayload)
	return u
}

// SetPriority sets the "priority" field.
func (u *GitHubEventUpsert) SetPriority(v githubevent.Priority) *GitHubEventUpsert {
	u.Set(githubevent.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *GitHubEventUpsert) UpdatePriority() *GitHubEventUpsert {
	u.SetExcluded(githubevent.FieldPriority)
	return u
}

// SetStatus sets the "status" field.
func (u *GitHubEventUpsert) SetStatus(v githubevent.Status) *GitHubEventUpsert {
	u.Set(githubevent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GitHubEventUpsert) UpdateStatus() *GitHubEventUpsert {
	u.SetExcluded(githubevent.FieldStatus)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *GitHubEventUpsert) SetPodID(v string) *GitHubEventUpsert {
	u.Set(githubevent.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *GitHubEventUpsert) UpdatePodID() *GitHubEventUpsert {
	u.SetExcluded(githubevent.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *GitHubEventUpsert) ClearPodID() *GitHubEventUpsert {
	u.SetNull(githubevent.FieldPodID)
	return u
}

// SetClaimedAt sets the "claimed_at" field.
func (u *GitHubEventUpsert) SetClaimedAt(v time.Time) *GitHubEventUpsert {
	u.Set(githubevent.FieldClaimedAt, v)
	return u
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *GitHubEventUpsert) UpdateClaimedAt() *GitHubEventUpsert {
	u.SetExcluded(githubevent.FieldClaimedAt)
	return u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *GitHubEventUpsert) ClearClaimedAt() *GitHubEventUpsert {
	u.SetNull(githubevent.FieldClaimedAt)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *GitHubEventUpsert) SetLastHeartbeatAt(v time.Time) *GitHubEventUpsert {
	u.Set(githubevent.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *GitHubEventUpsert) UpdateLastHeartbeatAt() *GitHubEventUpsert {
	u.SetExcluded(githubevent.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *GitHubEventUpsert) ClearLastHeartbeatAt() *GitHubEventUpsert {
	u.SetNull(githubevent.FieldLastHeartbeatAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GitHubEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(githubevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GitHubEventUpsertOne) UpdateNewValues() *GitHubEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(githubevent.FieldID)
		}
		if _, exists := u.create.mutation.EventCreatedAt(); exists {
			s.SetIgnore(githubevent.FieldEventCreatedAt)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(githubevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GitHubEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GitHubEventUpsertOne) Ignore() *GitHubEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GitHubEventUpsertOne) DoNothing() *GitHubEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GitHubEventCreate.OnConflict
// documentation for more info.
func (u *GitHubEventUpsertOne) Update(set func(*GitHubEventUpsert)) *GitHubEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GitHubEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventType sets the "event_type" field.
func (u *GitHubEventUpsertOne) SetEventType(v string) *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *GitHubEventUpsertOne) UpdateEventType() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateEventType()
	})
}

// SetActorLogin sets the "actor_login" field.
func (u *GitHubEventUpsertOne) SetActorLogin(v string) *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetActorLogin(v)
	})
}

// UpdateActorLogin sets the "actor_login" field to the value that was provided on create.
func (u *GitHubEventUpsertOne) UpdateActorLogin() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateActorLogin()
	})
}

// SetActorID sets the "actor_id" field.
func (u *GitHubEventUpsertOne) SetActorID(v int64) *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetActorID(v)
	})
}

// AddActorID adds v to the "actor_id" field.
func (u *GitHubEventUpsertOne) AddActorID(v int64) *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.AddActorID(v)
	})
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *GitHubEventUpsertOne) UpdateActorID() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateActorID()
	})
}

// SetRepoName sets the "repo_name" field.
func (u *GitHubEventUpsertOne) SetRepoName(v string) *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetRepoName(v)
	})
}

// UpdateRepoName sets the "repo_name" field to the value that was provided on create.
func (u *GitHubEventUpsertOne) UpdateRepoName() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateRepoName()
	})
}

// SetRepoID sets the "repo_id" field.
func (u *GitHubEventUpsertOne) SetRepoID(v int64) *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetRepoID(v)
	})
}

// AddRepoID adds v to the "repo_id" field.
func (u *GitHubEventUpsertOne) AddRepoID(v int64) *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.AddRepoID(v)
	})
}

// UpdateRepoID sets the "repo_id" field to the value that was provided on create.
func (u *GitHubEventUpsertOne) UpdateRepoID() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateRepoID()
	})
}

// SetPayload sets the "payload" field.
func (u *GitHubEventUpsertOne) SetPayload(v json.RawMessage) *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *GitHubEventUpsertOne) UpdatePayload() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *GitHubEventUpsertOne) ClearPayload() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.ClearPayload()
	})
}

// SetPriority sets the "priority" field.
func (u *GitHubEventUpsertOne) SetPriority(v githubevent.Priority) *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *GitHubEventUpsertOne) UpdatePriority() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *GitHubEventUpsertOne) SetStatus(v githubevent.Status) *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GitHubEventUpsertOne) UpdateStatus() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateStatus()
	})
}

// SetPodID sets the "pod_id" field.
func (u *GitHubEventUpsertOne) SetPodID(v string) *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *GitHubEventUpsertOne) UpdatePodID() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *GitHubEventUpsertOne) ClearPodID() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.ClearPodID()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *GitHubEventUpsertOne) SetClaimedAt(v time.Time) *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *GitHubEventUpsertOne) UpdateClaimedAt() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *GitHubEventUpsertOne) ClearClaimedAt() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.ClearClaimedAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *GitHubEventUpsertOne) SetLastHeartbeatAt(v time.Time) *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *GitHubEventUpsertOne) UpdateLastHeartbeatAt() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *GitHubEventUpsertOne) ClearLastHeartbeatAt() *GitHubEventUpsertOne {
	return u.Update(func(s *GitHubEventUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// Exec executes the query.
func (u *GitHubEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GitHubEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GitHubEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GitHubEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GitHubEventUpsertOne.ID is not supported by MySQL driver. Use GitHubEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GitHubEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GitHubEventCreateBulk is the builder for creating many GitHubEvent entities in bulk.
type GitHubEventCreateBulk struct {
	config
	err      error
	builders []*GitHubEventCreate
	conflict []sql.ConflictOption
}

// Save creates the GitHubEvent entities in the database.
func (_c *GitHubEventCreateBulk) Save(ctx context.Context) ([]*GitHubEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GitHubEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GitHubEventMutation)
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
func (_c *GitHubEventCreateBulk) SaveX(ctx context.Context) []*GitHubEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GitHubEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GitHubEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GitHubEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GitHubEventUpsert) {
//			SetEventType(v+v).
//		}).
//		Exec(ctx)
func (_c *GitHubEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *GitHubEventUpsertBulk {
	_c.conflict = opts
	return &GitHubEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GitHubEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GitHubEventCreateBulk) OnConflictColumns(columns ...string) *GitHubEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GitHubEventUpsertBulk{
		create: _c,
	}
}

// GitHubEventUpsertBulk is the builder for "upsert"-ing
// a bulk of GitHubEvent nodes.
type GitHubEventUpsertBulk struct {
	create *GitHubEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GitHubEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(githubevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GitHubEventUpsertBulk) UpdateNewValues() *GitHubEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(githubevent.FieldID)
			}
			if _, exists := b.mutation.EventCreatedAt(); exists {
				s.SetIgnore(githubevent.FieldEventCreatedAt)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(githubevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GitHubEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GitHubEventUpsertBulk) Ignore() *GitHubEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GitHubEventUpsertBulk) DoNothing() *GitHubEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GitHubEventCreateBulk.OnConflict
// documentation for more info.
func (u *GitHubEventUpsertBulk) Update(set func(*GitHubEventUpsert)) *GitHubEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GitHubEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventType sets the "event_type" field.
func (u *GitHubEventUpsertBulk) SetEventType(v string) *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *GitHubEventUpsertBulk) UpdateEventType() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateEventType()
	})
}

// SetActorLogin sets the "actor_login" field.
func (u *GitHubEventUpsertBulk) SetActorLogin(v string) *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetActorLogin(v)
	})
}

// UpdateActorLogin sets the "actor_login" field to the value that was provided on create.
func (u *GitHubEventUpsertBulk) UpdateActorLogin() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateActorLogin()
	})
}

// SetActorID sets the "actor_id" field.
func (u *GitHubEventUpsertBulk) SetActorID(v int64) *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetActorID(v)
	})
}

// AddActorID adds v to the "actor_id" field.
func (u *GitHubEventUpsertBulk) AddActorID(v int64) *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.AddActorID(v)
	})
}

// UpdateActorID sets the "actor_id" field to the value that was provided on create.
func (u *GitHubEventUpsertBulk) UpdateActorID() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateActorID()
	})
}

// SetRepoName sets the "repo_name" field.
func (u *GitHubEventUpsertBulk) SetRepoName(v string) *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetRepoName(v)
	})
}

// UpdateRepoName sets the "repo_name" field to the value that was provided on create.
func (u *GitHubEventUpsertBulk) UpdateRepoName() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateRepoName()
	})
}

// SetRepoID sets the "repo_id" field.
func (u *GitHubEventUpsertBulk) SetRepoID(v int64) *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetRepoID(v)
	})
}

// AddRepoID adds v to the "repo_id" field.
func (u *GitHubEventUpsertBulk) AddRepoID(v int64) *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.AddRepoID(v)
	})
}

// UpdateRepoID sets the "repo_id" field to the value that was provided on create.
func (u *GitHubEventUpsertBulk) UpdateRepoID() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateRepoID()
	})
}

// SetPayload sets the "payload" field.
func (u *GitHubEventUpsertBulk) SetPayload(v json.RawMessage) *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *GitHubEventUpsertBulk) UpdatePayload() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *GitHubEventUpsertBulk) ClearPayload() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.ClearPayload()
	})
}

// SetPriority sets the "priority" field.
func (u *GitHubEventUpsertBulk) SetPriority(v githubevent.Priority) *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *GitHubEventUpsertBulk) UpdatePriority() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *GitHubEventUpsertBulk) SetStatus(v githubevent.Status) *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GitHubEventUpsertBulk) UpdateStatus() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateStatus()
	})
}

// SetPodID sets the "pod_id" field.
func (u *GitHubEventUpsertBulk) SetPodID(v string) *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *GitHubEventUpsertBulk) UpdatePodID() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *GitHubEventUpsertBulk) ClearPodID() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.ClearPodID()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *GitHubEventUpsertBulk) SetClaimedAt(v time.Time) *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *GitHubEventUpsertBulk) UpdateClaimedAt() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *GitHubEventUpsertBulk) ClearClaimedAt() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.ClearClaimedAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *GitHubEventUpsertBulk) SetLastHeartbeatAt(v time.Time) *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *GitHubEventUpsertBulk) UpdateLastHeartbeatAt() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *GitHubEventUpsertBulk) ClearLastHeartbeatAt() *GitHubEventUpsertBulk {
	return u.Update(func(s *GitHubEventUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// Exec executes the query.
func (u *GitHubEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GitHubEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GitHubEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GitHubEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
