// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgewatch/forgewatch/ent/temporalpattern"
)

// TemporalPatternCreate is the builder for creating a TemporalPattern entity.
type TemporalPatternCreate struct {
	config
	mutation *TemporalPatternMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPatternType sets the "pattern_type" field.
func (_c *TemporalPatternCreate) SetPatternType(v temporalpattern.PatternType) *TemporalPatternCreate {
	_c.mutation.SetPatternType(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *TemporalPatternCreate) SetEventID(v string) *TemporalPatternCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetRepoName sets the "repo_name" field.
func (_c *TemporalPatternCreate) SetRepoName(v string) *TemporalPatternCreate {
	_c.mutation.SetRepoName(v)
	return _c
}

// SetActorLogin sets the "actor_login" field.
func (_c *TemporalPatternCreate) SetActorLogin(v string) *TemporalPatternCreate {
	_c.mutation.SetActorLogin(v)
	return _c
}

// SetNillableActorLogin sets the "actor_login" field if the given value is not nil.
func (_c *TemporalPatternCreate) SetNillableActorLogin(v *string) *TemporalPatternCreate {
	if v != nil {
		_c.SetActorLogin(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *TemporalPatternCreate) SetSeverity(v float64) *TemporalPatternCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetEventCount sets the "event_count" field.
func (_c *TemporalPatternCreate) SetEventCount(v int) *TemporalPatternCreate {
	_c.mutation.SetEventCount(v)
	return _c
}

// SetActorCount sets the "actor_count" field.
func (_c *TemporalPatternCreate) SetActorCount(v int) *TemporalPatternCreate {
	_c.mutation.SetActorCount(v)
	return _c
}

// SetNillableActorCount sets the "actor_count" field if the given value is not nil.
func (_c *TemporalPatternCreate) SetNillableActorCount(v *int) *TemporalPatternCreate {
	if v != nil {
		_c.SetActorCount(*v)
	}
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *TemporalPatternCreate) SetWindowStart(v time.Time) *TemporalPatternCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetWindowEnd sets the "window_end" field.
func (_c *TemporalPatternCreate) SetWindowEnd(v time.Time) *TemporalPatternCreate {
	_c.mutation.SetWindowEnd(v)
	return _c
}

// SetDetectedAt sets the "detected_at" field.
func (_c *TemporalPatternCreate) SetDetectedAt(v time.Time) *TemporalPatternCreate {
	_c.mutation.SetDetectedAt(v)
	return _c
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_c *TemporalPatternCreate) SetNillableDetectedAt(v *time.Time) *TemporalPatternCreate {
	if v != nil {
		_c.SetDetectedAt(*v)
	}
	return _c
}

// Mutation returns the TemporalPatternMutation object of the builder.
func (_c *TemporalPatternCreate) Mutation() *TemporalPatternMutation {
	return _c.mutation
}

// Save creates the TemporalPattern in the database.
func (_c *TemporalPatternCreate) Save(ctx context.Context) (*TemporalPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TemporalPatternCreate) SaveX(ctx context.Context) *TemporalPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TemporalPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TemporalPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TemporalPatternCreate) defaults() {
	if _, ok := _c.mutation.ActorCount(); !ok {
		v := temporalpattern.DefaultActorCount
		_c.mutation.SetActorCount(v)
	}
	if _, ok := _c.mutation.DetectedAt(); !ok {
		v := temporalpattern.DefaultDetectedAt()
		_c.mutation.SetDetectedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TemporalPatternCreate) check() error {
	if _, ok := _c.mutation.PatternType(); !ok {
		return &ValidationError{Name: "pattern_type", err: errors.New(`ent: missing required field "TemporalPattern.pattern_type"`)}
	}
	if v, ok := _c.mutation.PatternType(); ok {
		if err := temporalpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "TemporalPattern.pattern_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "TemporalPattern.event_id"`)}
	}
	if _, ok := _c.mutation.RepoName(); !ok {
		return &ValidationError{Name: "repo_name", err: errors.New(`ent: missing required field "TemporalPattern.repo_name"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "TemporalPattern.severity"`)}
	}
	if _, ok := _c.mutation.EventCount(); !ok {
		return &ValidationError{Name: "event_count", err: errors.New(`ent: missing required field "TemporalPattern.event_count"`)}
	}
	if _, ok := _c.mutation.ActorCount(); !ok {
		return &ValidationError{Name: "actor_count", err: errors.New(`ent: missing required field "TemporalPattern.actor_count"`)}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "TemporalPattern.window_start"`)}
	}
	if _, ok := _c.mutation.WindowEnd(); !ok {
		return &ValidationError{Name: "window_end", err: errors.New(`ent: missing required field "TemporalPattern.window_end"`)}
	}
	if _, ok := _c.mutation.DetectedAt(); !ok {
		return &ValidationError{Name: "detected_at", err: errors.New(`ent: missing required field "TemporalPattern.detected_at"`)}
	}
	return nil
}

func (_c *TemporalPatternCreate) sqlSave(ctx context.Context) (*TemporalPattern, error) {
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

func (_c *TemporalPatternCreate) createSpec() (*TemporalPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &TemporalPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(temporalpattern.Table, sqlgraph.NewFieldSpec(temporalpattern.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.PatternType(); ok {
		_spec.SetField(temporalpattern.FieldPatternType, field.TypeEnum, value)
		_node.PatternType = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(temporalpattern.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.RepoName(); ok {
		_spec.SetField(temporalpattern.FieldRepoName, field.TypeString, value)
		_node.RepoName = value
	}
	if value, ok := _c.mutation.ActorLogin(); ok {
		_spec.SetField(temporalpattern.FieldActorLogin, field.TypeString, value)
		_node.ActorLogin = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(temporalpattern.FieldSeverity, field.TypeFloat64, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.EventCount(); ok {
		_spec.SetField(temporalpattern.FieldEventCount, field.TypeInt, value)
		_node.EventCount = value
	}
	if value, ok := _c.mutation.ActorCount(); ok {
		_spec.SetField(temporalpattern.FieldActorCount, field.TypeInt, value)
		_node.ActorCount = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(temporalpattern.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.WindowEnd(); ok {
		_spec.SetField(temporalpattern.FieldWindowEnd, field.TypeTime, value)
		_node.WindowEnd = value
	}
	if value, ok := _c.mutation.DetectedAt(); ok {
		_spec.SetField(temporalpattern.FieldDetectedAt, field.TypeTime, value)
		_node.DetectedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TemporalPattern.Create().
//		SetPatternType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TemporalPatternUpsert) {
//			SetPatternType(v+v).
//		}).
//		Exec(ctx)
func (_c *TemporalPatternCreate) OnConflict(opts ...sql.ConflictOption) *TemporalPatternUpsertOne {
	_c.conflict = opts
	return &TemporalPatternUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TemporalPattern.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TemporalPatternCreate) OnConflictColumns(columns ...string) *TemporalPatternUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TemporalPatternUpsertOne{
		create: _c,
	}
}

type (
	// TemporalPatternUpsertOne is the builder for "upsert"-ing
	//  one TemporalPattern node.
	TemporalPatternUpsertOne struct {
		create *TemporalPatternCreate
	}

	// TemporalPatternUpsert is the "OnConflict" setter.
	TemporalPatternUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatternType sets the "pattern_type" field.
func (u *TemporalPatternUpsert) SetPatternType(v temporalpattern.PatternType) *TemporalPatternUpsert {
	u.Set(temporalpattern.FieldPatternType, v)
	return u
}

// UpdatePatternType sets the "pattern_type" field to the value that was provided on create.
func (u *TemporalPatternUpsert) UpdatePatternType() *TemporalPatternUpsert {
	u.SetExcluded(temporalpattern.FieldPatternType)
	return u
}

// SetEventID sets the "event_id" field.
func (u *TemporalPatternUpsert) SetEventID(v string) *TemporalPatternUpsert {
	u.Set(temporalpattern.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *TemporalPatternUpsert) UpdateEventID() *TemporalPatternUpsert {
	u.SetExcluded(temporalpattern.FieldEventID)
	return u
}

// SetRepoName sets the "repo_name" field.
func (u *TemporalPatternUpsert) SetRepoName(v string) *TemporalPatternUpsert {
	u.Set(temporalpattern.FieldRepoName, v)
	return u
}

// UpdateRepoName sets the "repo_name" field to the value that was provided on create.
func (u *TemporalPatternUpsert) UpdateRepoName() *TemporalPatternUpsert {
	u.SetExcluded(temporalpattern.FieldRepoName)
	return u
}

// SetActorLogin sets the "actor_login" field.
func (u *TemporalPatternUpsert) SetActorLogin(v string) *TemporalPatternUpsert {
	u.Set(temporalpattern.FieldActorLogin, v)
	return u
}

// UpdateActorLogin sets the "actor_login" field to the value that was provided on create.
func (u *TemporalPatternUpsert) UpdateActorLogin() *TemporalPatternUpsert {
	u.SetExcluded(temporalpattern.FieldActorLogin)
	return u
}

// ClearActorLogin clears the value of the "actor_login" field.
func (u *TemporalPatternUpsert) ClearActorLogin() *TemporalPatternUpsert {
	u.SetNull(temporalpattern.FieldActorLogin)
	return u
}

// SetSeverity sets the "severity" field.
func (u *TemporalPatternUpsert) SetSeverity(v float64) *TemporalPatternUpsert {
	u.Set(temporalpattern.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *TemporalPatternUpsert) UpdateSeverity() *TemporalPatternUpsert {
	u.SetExcluded(temporalpattern.FieldSeverity)
	return u
}

// AddSeverity adds v to the "severity" field.
func (u *TemporalPatternUpsert) AddSeverity(v float64) *TemporalPatternUpsert {
	u.Add(temporalpattern.FieldSeverity, v)
	return u
}

// SetEventCount sets the "event_count" field.
func (u *TemporalPatternUpsert) SetEventCount(v int) *TemporalPatternUpsert {
	u.Set(temporalpattern.FieldEventCount, v)
	return u
}

// UpdateEventCount sets the "event_count" field to the value that was provided on create.
func (u *TemporalPatternUpsert) UpdateEventCount() *TemporalPatternUpsert {
	u.SetExcluded(temporalpattern.FieldEventCount)
	return u
}

// AddEventCount adds v to the "event_count" field.
func (u *TemporalPatternUpsert) AddEventCount(v int) *TemporalPatternUpsert {
	u.Add(temporalpattern.FieldEventCount, v)
	return u
}

// SetActorCount sets the "actor_count" field.
func (u *TemporalPatternUpsert) SetActorCount(v int) *TemporalPatternUpsert {
	u.Set(temporalpattern.FieldActorCount, v)
	return u
}

// UpdateActorCount sets the "actor_count" field to the value that was provided on create.
func (u *TemporalPatternUpsert) UpdateActorCount() *TemporalPatternUpsert {
	u.SetExcluded(temporalpattern.FieldActorCount)
	return u
}

// AddActorCount adds v to the "actor_count" field.
func (u *TemporalPatternUpsert) AddActorCount(v int) *TemporalPatternUpsert {
	u.Add(temporalpattern.FieldActorCount, v)
	return u
}

// SetWindowStart sets the "window_start" field.
func (u *TemporalPatternUpsert) SetWindowStart(v time.Time) *TemporalPatternUpsert {
	u.Set(temporalpattern.FieldWindowStart, v)
	return u
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *TemporalPatternUpsert) UpdateWindowStart() *TemporalPatternUpsert {
	u.SetExcluded(temporalpattern.FieldWindowStart)
	return u
}

// SetWindowEnd sets the "window_end" field.
func (u *TemporalPatternUpsert) SetWindowEnd(v time.Time) *TemporalPatternUpsert {
	u.Set(temporalpattern.FieldWindowEnd, v)
	return u
}

// UpdateWindowEnd sets the "window_end" field to the value that was provided on create.
func (u *TemporalPatternUpsert) UpdateWindowEnd() *TemporalPatternUpsert {
	u.SetExcluded(temporalpattern.FieldWindowEnd)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TemporalPattern.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TemporalPatternUpsertOne) UpdateNewValues() *TemporalPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.DetectedAt(); exists {
			s.SetIgnore(temporalpattern.FieldDetectedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TemporalPattern.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TemporalPatternUpsertOne) Ignore() *TemporalPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TemporalPatternUpsertOne) DoNothing() *TemporalPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TemporalPatternCreate.OnConflict
// documentation for more info.
func (u *TemporalPatternUpsertOne) Update(set func(*TemporalPatternUpsert)) *TemporalPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TemporalPatternUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatternType sets the "pattern_type" field.
func (u *TemporalPatternUpsertOne) SetPatternType(v temporalpattern.PatternType) *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetPatternType(v)
	})
}

// UpdatePatternType sets the "pattern_type" field to the value that was provided on create.
func (u *TemporalPatternUpsertOne) UpdatePatternType() *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdatePatternType()
	})
}

// SetEventID sets the "event_id" field.
func (u *TemporalPatternUpsertOne) SetEventID(v string) *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *TemporalPatternUpsertOne) UpdateEventID() *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateEventID()
	})
}

// SetRepoName sets the "repo_name" field.
func (u *TemporalPatternUpsertOne) SetRepoName(v string) *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetRepoName(v)
	})
}

// UpdateRepoName sets the "repo_name" field to the value that was provided on create.
func (u *TemporalPatternUpsertOne) UpdateRepoName() *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateRepoName()
	})
}

// SetActorLogin sets the "actor_login" field.
func (u *TemporalPatternUpsertOne) SetActorLogin(v string) *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetActorLogin(v)
	})
}

// UpdateActorLogin sets the "actor_login" field to the value that was provided on create.
func (u *TemporalPatternUpsertOne) UpdateActorLogin() *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateActorLogin()
	})
}

// ClearActorLogin clears the value of the "actor_login" field.
func (u *TemporalPatternUpsertOne) ClearActorLogin() *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.ClearActorLogin()
	})
}

// SetSeverity sets the "severity" field.
func (u *TemporalPatternUpsertOne) SetSeverity(v float64) *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetSeverity(v)
	})
}

// AddSeverity adds v to the "severity" field.
func (u *TemporalPatternUpsertOne) AddSeverity(v float64) *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.AddSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *TemporalPatternUpsertOne) UpdateSeverity() *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateSeverity()
	})
}

// SetEventCount sets the "event_count" field.
func (u *TemporalPatternUpsertOne) SetEventCount(v int) *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetEventCount(v)
	})
}

// AddEventCount adds v to the "event_count" field.
func (u *TemporalPatternUpsertOne) AddEventCount(v int) *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.AddEventCount(v)
	})
}

// UpdateEventCount sets the "event_count" field to the value that was provided on create.
func (u *TemporalPatternUpsertOne) UpdateEventCount() *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateEventCount()
	})
}

// SetActorCount sets the "actor_count" field.
func (u *TemporalPatternUpsertOne) SetActorCount(v int) *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetActorCount(v)
	})
}

// AddActorCount adds v to the "actor_count" field.
func (u *TemporalPatternUpsertOne) AddActorCount(v int) *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.AddActorCount(v)
	})
}

// UpdateActorCount sets the "actor_count" field to the value that was provided on create.
func (u *TemporalPatternUpsertOne) UpdateActorCount() *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateActorCount()
	})
}

// SetWindowStart sets the "window_start" field.
func (u *TemporalPatternUpsertOne) SetWindowStart(v time.Time) *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetWindowStart(v)
	})
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *TemporalPatternUpsertOne) UpdateWindowStart() *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateWindowStart()
	})
}

// SetWindowEnd sets the "window_end" field.
func (u *TemporalPatternUpsertOne) SetWindowEnd(v time.Time) *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetWindowEnd(v)
	})
}

// UpdateWindowEnd sets the "window_end" field to the value that was provided on create.
func (u *TemporalPatternUpsertOne) UpdateWindowEnd() *TemporalPatternUpsertOne {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateWindowEnd()
	})
}

// Exec executes the query.
func (u *TemporalPatternUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TemporalPatternCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TemporalPatternUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TemporalPatternUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TemporalPatternUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TemporalPatternCreateBulk is the builder for creating many TemporalPattern entities in bulk.
type TemporalPatternCreateBulk struct {
	config
	err      error
	builders []*TemporalPatternCreate
	conflict []sql.ConflictOption
}

// Save creates the TemporalPattern entities in the database.
func (_c *TemporalPatternCreateBulk) Save(ctx context.Context) ([]*TemporalPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TemporalPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TemporalPatternMutation)
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
func (_c *TemporalPatternCreateBulk) SaveX(ctx context.Context) []*TemporalPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TemporalPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TemporalPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TemporalPattern.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TemporalPatternUpsert) {
//			SetPatternType(v+v).
//		}).
//		Exec(ctx)
func (_c *TemporalPatternCreateBulk) OnConflict(opts ...sql.ConflictOption) *TemporalPatternUpsertBulk {
	_c.conflict = opts
	return &TemporalPatternUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TemporalPattern.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TemporalPatternCreateBulk) OnConflictColumns(columns ...string) *TemporalPatternUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TemporalPatternUpsertBulk{
		create: _c,
	}
}

// TemporalPatternUpsertBulk is the builder for "upsert"-ing
// a bulk of TemporalPattern nodes.
type TemporalPatternUpsertBulk struct {
	create *TemporalPatternCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TemporalPattern.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TemporalPatternUpsertBulk) UpdateNewValues() *TemporalPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.DetectedAt(); exists {
				s.SetIgnore(temporalpattern.FieldDetectedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TemporalPattern.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TemporalPatternUpsertBulk) Ignore() *TemporalPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TemporalPatternUpsertBulk) DoNothing() *TemporalPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TemporalPatternCreateBulk.OnConflict
// documentation for more info.
func (u *TemporalPatternUpsertBulk) Update(set func(*TemporalPatternUpsert)) *TemporalPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TemporalPatternUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatternType sets the "pattern_type" field.
func (u *TemporalPatternUpsertBulk) SetPatternType(v temporalpattern.PatternType) *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetPatternType(v)
	})
}

// UpdatePatternType sets the "pattern_type" field to the value that was provided on create.
func (u *TemporalPatternUpsertBulk) UpdatePatternType() *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdatePatternType()
	})
}

// SetEventID sets the "event_id" field.
func (u *TemporalPatternUpsertBulk) SetEventID(v string) *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *TemporalPatternUpsertBulk) UpdateEventID() *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateEventID()
	})
}

// SetRepoName sets the "repo_name" field.
func (u *TemporalPatternUpsertBulk) SetRepoName(v string) *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetRepoName(v)
	})
}

// UpdateRepoName sets the "repo_name" field to the value that was provided on create.
func (u *TemporalPatternUpsertBulk) UpdateRepoName() *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateRepoName()
	})
}

// SetActorLogin sets the "actor_login" field.
func (u *TemporalPatternUpsertBulk) SetActorLogin(v string) *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetActorLogin(v)
	})
}

// UpdateActorLogin sets the "actor_login" field to the value that was provided on create.
func (u *TemporalPatternUpsertBulk) UpdateActorLogin() *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateActorLogin()
	})
}

// ClearActorLogin clears the value of the "actor_login" field.
func (u *TemporalPatternUpsertBulk) ClearActorLogin() *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.ClearActorLogin()
	})
}

// SetSeverity sets the "severity" field.
func (u *TemporalPatternUpsertBulk) SetSeverity(v float64) *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetSeverity(v)
	})
}

// AddSeverity adds v to the "severity" field.
func (u *TemporalPatternUpsertBulk) AddSeverity(v float64) *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.AddSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *TemporalPatternUpsertBulk) UpdateSeverity() *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateSeverity()
	})
}

// SetEventCount sets the "event_count" field.
func (u *TemporalPatternUpsertBulk) SetEventCount(v int) *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetEventCount(v)
	})
}

// AddEventCount adds v to the "event_count" field.
func (u *TemporalPatternUpsertBulk) AddEventCount(v int) *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.AddEventCount(v)
	})
}

// UpdateEventCount sets the "event_count" field to the value that was provided on create.
func (u *TemporalPatternUpsertBulk) UpdateEventCount() *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateEventCount()
	})
}

// SetActorCount sets the "actor_count" field.
func (u *TemporalPatternUpsertBulk) SetActorCount(v int) *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetActorCount(v)
	})
}

// AddActorCount adds v to the "actor_count" field.
func (u *TemporalPatternUpsertBulk) AddActorCount(v int) *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.AddActorCount(v)
	})
}

// UpdateActorCount sets the "actor_count" field to the value that was provided on create.
func (u *TemporalPatternUpsertBulk) UpdateActorCount() *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateActorCount()
	})
}

// SetWindowStart sets the "window_start" field.
func (u *TemporalPatternUpsertBulk) SetWindowStart(v time.Time) *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetWindowStart(v)
	})
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *TemporalPatternUpsertBulk) UpdateWindowStart() *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateWindowStart()
	})
}

// SetWindowEnd sets the "window_end" field.
func (u *TemporalPatternUpsertBulk) SetWindowEnd(v time.Time) *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.SetWindowEnd(v)
	})
}

// UpdateWindowEnd sets the "window_end" field to the value that was provided on create.
func (u *TemporalPatternUpsertBulk) UpdateWindowEnd() *TemporalPatternUpsertBulk {
	return u.Update(func(s *TemporalPatternUpsert) {
		s.UpdateWindowEnd()
	})
}

// Exec executes the query.
func (u *TemporalPatternUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TemporalPatternCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TemporalPatternCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TemporalPatternUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
