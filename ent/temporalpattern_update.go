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
	"github.com/forgewatch/forgewatch/ent/predicate"
	"github.com/forgewatch/forgewatch/ent/temporalpattern"
)

// TemporalPatternUpdate is the builder for updating TemporalPattern entities.
type TemporalPatternUpdate struct {
	config
	hooks    []Hook
	mutation *TemporalPatternMutation
}

// Where appends a list predicates to the TemporalPatternUpdate builder.
func (_u *TemporalPatternUpdate) Where(ps ...predicate.TemporalPattern) *TemporalPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *TemporalPatternUpdate) SetPatternType(v temporalpattern.PatternType) *TemporalPatternUpdate {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *TemporalPatternUpdate) SetNillablePatternType(v *temporalpattern.PatternType) *TemporalPatternUpdate {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *TemporalPatternUpdate) SetEventID(v string) *TemporalPatternUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *TemporalPatternUpdate) SetNillableEventID(v *string) *TemporalPatternUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetRepoName sets the "repo_name" field.
func (_u *TemporalPatternUpdate) SetRepoName(v string) *TemporalPatternUpdate {
	_u.mutation.SetRepoName(v)
	return _u
}

// SetNillableRepoName sets the "repo_name" field if the given value is not nil.
func (_u *TemporalPatternUpdate) SetNillableRepoName(v *string) *TemporalPatternUpdate {
	if v != nil {
		_u.SetRepoName(*v)
	}
	return _u
}

// SetActorLogin sets the "actor_login" field.
func (_u *TemporalPatternUpdate) SetActorLogin(v string) *TemporalPatternUpdate {
	_u.mutation.SetActorLogin(v)
	return _u
}

// SetNillableActorLogin sets the "actor_login" field if the given value is not nil.
func (_u *TemporalPatternUpdate) SetNillableActorLogin(v *string) *TemporalPatternUpdate {
	if v != nil {
		_u.SetActorLogin(*v)
	}
	return _u
}

// ClearActorLogin clears the value of the "actor_login" field.
func (_u *TemporalPatternUpdate) ClearActorLogin() *TemporalPatternUpdate {
	_u.mutation.ClearActorLogin()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *TemporalPatternUpdate) SetSeverity(v float64) *TemporalPatternUpdate {
	_u.mutation.ResetSeverity()
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *TemporalPatternUpdate) SetNillableSeverity(v *float64) *TemporalPatternUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// AddSeverity adds value to the "severity" field.
func (_u *TemporalPatternUpdate) AddSeverity(v float64) *TemporalPatternUpdate {
	_u.mutation.AddSeverity(v)
	return _u
}

// SetEventCount sets the "event_count" field.
func (_u *TemporalPatternUpdate) SetEventCount(v int) *TemporalPatternUpdate {
	_u.mutation.ResetEventCount()
	_u.mutation.SetEventCount(v)
	return _u
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (_u *TemporalPatternUpdate) SetNillableEventCount(v *int) *TemporalPatternUpdate {
	if v != nil {
		_u.SetEventCount(*v)
	}
	return _u
}

// AddEventCount adds value to the "event_count" field.
func (_u *TemporalPatternUpdate) AddEventCount(v int) *TemporalPatternUpdate {
	_u.mutation.AddEventCount(v)
	return _u
}

// SetActorCount sets the "actor_count" field.
func (_u *TemporalPatternUpdate) SetActorCount(v int) *TemporalPatternUpdate {
	_u.mutation.ResetActorCount()
	_u.mutation.SetActorCount(v)
	return _u
}

// SetNillableActorCount sets the "actor_count" field if the given value is not nil.
func (_u *TemporalPatternUpdate) SetNillableActorCount(v *int) *TemporalPatternUpdate {
	if v != nil {
		_u.SetActorCount(*v)
	}
	return _u
}

// AddActorCount adds value to the "actor_count" field.
func (_u *TemporalPatternUpdate) AddActorCount(v int) *TemporalPatternUpdate {
	_u.mutation.AddActorCount(v)
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *TemporalPatternUpdate) SetWindowStart(v time.Time) *TemporalPatternUpdate {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *TemporalPatternUpdate) SetNillableWindowStart(v *time.Time) *TemporalPatternUpdate {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *TemporalPatternUpdate) SetWindowEnd(v time.Time) *TemporalPatternUpdate {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *TemporalPatternUpdate) SetNillableWindowEnd(v *time.Time) *TemporalPatternUpdate {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// Mutation returns the TemporalPatternMutation object of the builder.
func (_u *TemporalPatternUpdate) Mutation() *TemporalPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TemporalPatternUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TemporalPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TemporalPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TemporalPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TemporalPatternUpdate) check() error {
	if v, ok := _u.mutation.PatternType(); ok {
		if err := temporalpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "TemporalPattern.pattern_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TemporalPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(temporalpattern.Table, temporalpattern.Columns, sqlgraph.NewFieldSpec(temporalpattern.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(temporalpattern.FieldPatternType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(temporalpattern.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoName(); ok {
		_spec.SetField(temporalpattern.FieldRepoName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorLogin(); ok {
		_spec.SetField(temporalpattern.FieldActorLogin, field.TypeString, value)
	}
	if _u.mutation.ActorLoginCleared() {
		_spec.ClearField(temporalpattern.FieldActorLogin, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(temporalpattern.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverity(); ok {
		_spec.AddField(temporalpattern.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EventCount(); ok {
		_spec.SetField(temporalpattern.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventCount(); ok {
		_spec.AddField(temporalpattern.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActorCount(); ok {
		_spec.SetField(temporalpattern.FieldActorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActorCount(); ok {
		_spec.AddField(temporalpattern.FieldActorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(temporalpattern.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(temporalpattern.FieldWindowEnd, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{temporalpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TemporalPatternUpdateOne is the builder for updating a single TemporalPattern entity.
type TemporalPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TemporalPatternMutation
}

// SetPatternType sets the "pattern_type" field.
func (_u *TemporalPatternUpdateOne) SetPatternType(v temporalpattern.PatternType) *TemporalPatternUpdateOne {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *TemporalPatternUpdateOne) SetNillablePatternType(v *temporalpattern.PatternType) *TemporalPatternUpdateOne {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *TemporalPatternUpdateOne) SetEventID(v string) *TemporalPatternUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *TemporalPatternUpdateOne) SetNillableEventID(v *string) *TemporalPatternUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetRepoName sets the "repo_name" field.
func (_u *TemporalPatternUpdateOne) SetRepoName(v string) *TemporalPatternUpdateOne {
	_u.mutation.SetRepoName(v)
	return _u
}

// SetNillableRepoName sets the "repo_name" field if the given value is not nil.
func (_u *TemporalPatternUpdateOne) SetNillableRepoName(v *string) *TemporalPatternUpdateOne {
	if v != nil {
		_u.SetRepoName(*v)
	}
	return _u
}

// SetActorLogin sets the "actor_login" field.
func (_u *TemporalPatternUpdateOne) SetActorLogin(v string) *TemporalPatternUpdateOne {
	_u.mutation.SetActorLogin(v)
	return _u
}

// SetNillableActorLogin sets the "actor_login" field if the given value is not nil.
func (_u *TemporalPatternUpdateOne) SetNillableActorLogin(v *string) *TemporalPatternUpdateOne {
	if v != nil {
		_u.SetActorLogin(*v)
	}
	return _u
}

// ClearActorLogin clears the value of the "actor_login" field.
func (_u *TemporalPatternUpdateOne) ClearActorLogin() *TemporalPatternUpdateOne {
	_u.mutation.ClearActorLogin()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *TemporalPatternUpdateOne) SetSeverity(v float64) *TemporalPatternUpdateOne {
	_u.mutation.ResetSeverity()
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *TemporalPatternUpdateOne) SetNillableSeverity(v *float64) *TemporalPatternUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// AddSeverity adds value to the "severity" field.
func (_u *TemporalPatternUpdateOne) AddSeverity(v float64) *TemporalPatternUpdateOne {
	_u.mutation.AddSeverity(v)
	return _u
}

// SetEventCount sets the "event_count" field.
func (_u *TemporalPatternUpdateOne) SetEventCount(v int) *TemporalPatternUpdateOne {
	_u.mutation.ResetEventCount()
	_u.mutation.SetEventCount(v)
	return _u
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (_u *TemporalPatternUpdateOne) SetNillableEventCount(v *int) *TemporalPatternUpdateOne {
	if v != nil {
		_u.SetEventCount(*v)
	}
	return _u
}

// AddEventCount adds value to the "event_count" field.
func (_u *TemporalPatternUpdateOne) AddEventCount(v int) *TemporalPatternUpdateOne {
	_u.mutation.AddEventCount(v)
	return _u
}

// SetActorCount sets the "actor_count" field.
func (_u *TemporalPatternUpdateOne) SetActorCount(v int) *TemporalPatternUpdateOne {
	_u.mutation.ResetActorCount()
	_u.mutation.SetActorCount(v)
	return _u
}

// SetNillableActorCount sets the "actor_count" field if the given value is not nil.
func (_u *TemporalPatternUpdateOne) SetNillableActorCount(v *int) *TemporalPatternUpdateOne {
	if v != nil {
		_u.SetActorCount(*v)
	}
	return _u
}

// AddActorCount adds value to the "actor_count" field.
func (_u *TemporalPatternUpdateOne) AddActorCount(v int) *TemporalPatternUpdateOne {
	_u.mutation.AddActorCount(v)
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *TemporalPatternUpdateOne) SetWindowStart(v time.Time) *TemporalPatternUpdateOne {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *TemporalPatternUpdateOne) SetNillableWindowStart(v *time.Time) *TemporalPatternUpdateOne {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *TemporalPatternUpdateOne) SetWindowEnd(v time.Time) *TemporalPatternUpdateOne {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *TemporalPatternUpdateOne) SetNillableWindowEnd(v *time.Time) *TemporalPatternUpdateOne {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// Mutation returns the TemporalPatternMutation object of the builder.
func (_u *TemporalPatternUpdateOne) Mutation() *TemporalPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the TemporalPatternUpdate builder.
func (_u *TemporalPatternUpdateOne) Where(ps ...predicate.TemporalPattern) *TemporalPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TemporalPatternUpdateOne) Select(field string, fields ...string) *TemporalPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TemporalPattern entity.
func (_u *TemporalPatternUpdateOne) Save(ctx context.Context) (*TemporalPattern, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TemporalPatternUpdateOne) SaveX(ctx context.Context) *TemporalPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TemporalPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TemporalPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TemporalPatternUpdateOne) check() error {
	if v, ok := _u.mutation.PatternType(); ok {
		if err := temporalpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "TemporalPattern.pattern_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TemporalPatternUpdateOne) sqlSave(ctx context.Context) (_node *TemporalPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(temporalpattern.Table, temporalpattern.Columns, sqlgraph.NewFieldSpec(temporalpattern.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TemporalPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, temporalpattern.FieldID)
		for _, f := range fields {
			if !temporalpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != temporalpattern.FieldID {
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
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(temporalpattern.FieldPatternType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(temporalpattern.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoName(); ok {
		_spec.SetField(temporalpattern.FieldRepoName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActorLogin(); ok {
		_spec.SetField(temporalpattern.FieldActorLogin, field.TypeString, value)
	}
	if _u.mutation.ActorLoginCleared() {
		_spec.ClearField(temporalpattern.FieldActorLogin, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(temporalpattern.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverity(); ok {
		_spec.AddField(temporalpattern.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EventCount(); ok {
		_spec.SetField(temporalpattern.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventCount(); ok {
		_spec.AddField(temporalpattern.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActorCount(); ok {
		_spec.SetField(temporalpattern.FieldActorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActorCount(); ok {
		_spec.AddField(temporalpattern.FieldActorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(temporalpattern.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(temporalpattern.FieldWindowEnd, field.TypeTime, value)
	}
	_node = &TemporalPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{temporalpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
