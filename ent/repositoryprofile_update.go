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
	"github.com/forgewatch/forgewatch/ent/repositoryprofile"
)

// RepositoryProfileUpdate is the builder for updating RepositoryProfile entities.
type RepositoryProfileUpdate struct {
	config
	hooks    []Hook
	mutation *RepositoryProfileMutation
}

// Where appends a list predicates to the RepositoryProfileUpdate builder.
func (_u *RepositoryProfileUpdate) Where(ps ...predicate.RepositoryProfile) *RepositoryProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventsPerHour sets the "events_per_hour" field.
func (_u *RepositoryProfileUpdate) SetEventsPerHour(v float64) *RepositoryProfileUpdate {
	_u.mutation.ResetEventsPerHour()
	_u.mutation.SetEventsPerHour(v)
	return _u
}

// SetNillableEventsPerHour sets the "events_per_hour" field if the given value is not nil.
func (_u *RepositoryProfileUpdate) SetNillableEventsPerHour(v *float64) *RepositoryProfileUpdate {
	if v != nil {
		_u.SetEventsPerHour(*v)
	}
	return _u
}

// AddEventsPerHour adds value to the "events_per_hour" field.
func (_u *RepositoryProfileUpdate) AddEventsPerHour(v float64) *RepositoryProfileUpdate {
	_u.mutation.AddEventsPerHour(v)
	return _u
}

// SetContributorEstimate sets the "contributor_estimate" field.
func (_u *RepositoryProfileUpdate) SetContributorEstimate(v float64) *RepositoryProfileUpdate {
	_u.mutation.ResetContributorEstimate()
	_u.mutation.SetContributorEstimate(v)
	return _u
}

// SetNillableContributorEstimate sets the "contributor_estimate" field if the given value is not nil.
func (_u *RepositoryProfileUpdate) SetNillableContributorEstimate(v *float64) *RepositoryProfileUpdate {
	if v != nil {
		_u.SetContributorEstimate(*v)
	}
	return _u
}

// AddContributorEstimate adds value to the "contributor_estimate" field.
func (_u *RepositoryProfileUpdate) AddContributorEstimate(v float64) *RepositoryProfileUpdate {
	_u.mutation.AddContributorEstimate(v)
	return _u
}

// SetStars sets the "stars" field.
func (_u *RepositoryProfileUpdate) SetStars(v int) *RepositoryProfileUpdate {
	_u.mutation.ResetStars()
	_u.mutation.SetStars(v)
	return _u
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_u *RepositoryProfileUpdate) SetNillableStars(v *int) *RepositoryProfileUpdate {
	if v != nil {
		_u.SetStars(*v)
	}
	return _u
}

// AddStars adds value to the "stars" field.
func (_u *RepositoryProfileUpdate) AddStars(v int) *RepositoryProfileUpdate {
	_u.mutation.AddStars(v)
	return _u
}

// SetForks sets the "forks" field.
func (_u *RepositoryProfileUpdate) SetForks(v int) *RepositoryProfileUpdate {
	_u.mutation.ResetForks()
	_u.mutation.SetForks(v)
	return _u
}

// SetNillableForks sets the "forks" field if the given value is not nil.
func (_u *RepositoryProfileUpdate) SetNillableForks(v *int) *RepositoryProfileUpdate {
	if v != nil {
		_u.SetForks(*v)
	}
	return _u
}

// AddForks adds value to the "forks" field.
func (_u *RepositoryProfileUpdate) AddForks(v int) *RepositoryProfileUpdate {
	_u.mutation.AddForks(v)
	return _u
}

// SetHasSecurityPolicy sets the "has_security_policy" field.
func (_u *RepositoryProfileUpdate) SetHasSecurityPolicy(v bool) *RepositoryProfileUpdate {
	_u.mutation.SetHasSecurityPolicy(v)
	return _u
}

// SetNillableHasSecurityPolicy sets the "has_security_policy" field if the given value is not nil.
func (_u *RepositoryProfileUpdate) SetNillableHasSecurityPolicy(v *bool) *RepositoryProfileUpdate {
	if v != nil {
		_u.SetHasSecurityPolicy(*v)
	}
	return _u
}

// SetProtectedBranches sets the "protected_branches" field.
func (_u *RepositoryProfileUpdate) SetProtectedBranches(v int) *RepositoryProfileUpdate {
	_u.mutation.ResetProtectedBranches()
	_u.mutation.SetProtectedBranches(v)
	return _u
}

// SetNillableProtectedBranches sets the "protected_branches" field if the given value is not nil.
func (_u *RepositoryProfileUpdate) SetNillableProtectedBranches(v *int) *RepositoryProfileUpdate {
	if v != nil {
		_u.SetProtectedBranches(*v)
	}
	return _u
}

// AddProtectedBranches adds value to the "protected_branches" field.
func (_u *RepositoryProfileUpdate) AddProtectedBranches(v int) *RepositoryProfileUpdate {
	_u.mutation.AddProtectedBranches(v)
	return _u
}

// SetCriticality sets the "criticality" field.
func (_u *RepositoryProfileUpdate) SetCriticality(v float64) *RepositoryProfileUpdate {
	_u.mutation.ResetCriticality()
	_u.mutation.SetCriticality(v)
	return _u
}

// SetNillableCriticality sets the "criticality" field if the given value is not nil.
func (_u *RepositoryProfileUpdate) SetNillableCriticality(v *float64) *RepositoryProfileUpdate {
	if v != nil {
		_u.SetCriticality(*v)
	}
	return _u
}

// AddCriticality adds value to the "criticality" field.
func (_u *RepositoryProfileUpdate) AddCriticality(v float64) *RepositoryProfileUpdate {
	_u.mutation.AddCriticality(v)
	return _u
}

// SetCriticalityUpdatedAt sets the "criticality_updated_at" field.
func (_u *RepositoryProfileUpdate) SetCriticalityUpdatedAt(v time.Time) *RepositoryProfileUpdate {
	_u.mutation.SetCriticalityUpdatedAt(v)
	return _u
}

// SetNillableCriticalityUpdatedAt sets the "criticality_updated_at" field if the given value is not nil.
func (_u *RepositoryProfileUpdate) SetNillableCriticalityUpdatedAt(v *time.Time) *RepositoryProfileUpdate {
	if v != nil {
		_u.SetCriticalityUpdatedAt(*v)
	}
	return _u
}

// ClearCriticalityUpdatedAt clears the value of the "criticality_updated_at" field.
func (_u *RepositoryProfileUpdate) ClearCriticalityUpdatedAt() *RepositoryProfileUpdate {
	_u.mutation.ClearCriticalityUpdatedAt()
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *RepositoryProfileUpdate) SetLastUpdated(v time.Time) *RepositoryProfileUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the RepositoryProfileMutation object of the builder.
func (_u *RepositoryProfileUpdate) Mutation() *RepositoryProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RepositoryProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepositoryProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RepositoryProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepositoryProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RepositoryProfileUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := repositoryprofile.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

func (_u *RepositoryProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(repositoryprofile.Table, repositoryprofile.Columns, sqlgraph.NewFieldSpec(repositoryprofile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventsPerHour(); ok {
		_spec.SetField(repositoryprofile.FieldEventsPerHour, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEventsPerHour(); ok {
		_spec.AddField(repositoryprofile.FieldEventsPerHour, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContributorEstimate(); ok {
		_spec.SetField(repositoryprofile.FieldContributorEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContributorEstimate(); ok {
		_spec.AddField(repositoryprofile.FieldContributorEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Stars(); ok {
		_spec.SetField(repositoryprofile.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStars(); ok {
		_spec.AddField(repositoryprofile.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Forks(); ok {
		_spec.SetField(repositoryprofile.FieldForks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedForks(); ok {
		_spec.AddField(repositoryprofile.FieldForks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasSecurityPolicy(); ok {
		_spec.SetField(repositoryprofile.FieldHasSecurityPolicy, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProtectedBranches(); ok {
		_spec.SetField(repositoryprofile.FieldProtectedBranches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProtectedBranches(); ok {
		_spec.AddField(repositoryprofile.FieldProtectedBranches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Criticality(); ok {
		_spec.SetField(repositoryprofile.FieldCriticality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCriticality(); ok {
		_spec.AddField(repositoryprofile.FieldCriticality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CriticalityUpdatedAt(); ok {
		_spec.SetField(repositoryprofile.FieldCriticalityUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CriticalityUpdatedAtCleared() {
		_spec.ClearField(repositoryprofile.FieldCriticalityUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(repositoryprofile.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repositoryprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RepositoryProfileUpdateOne is the builder for updating a single RepositoryProfile entity.
type RepositoryProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RepositoryProfileMutation
}

// SetEventsPerHour sets the "events_per_hour" field.
func (_u *RepositoryProfileUpdateOne) SetEventsPerHour(v float64) *RepositoryProfileUpdateOne {
	_u.mutation.ResetEventsPerHour()
	_u.mutation.SetEventsPerHour(v)
	return _u
}

// SetNillableEventsPerHour sets the "events_per_hour" field if the given value is not nil.
func (_u *RepositoryProfileUpdateOne) SetNillableEventsPerHour(v *float64) *RepositoryProfileUpdateOne {
	if v != nil {
		_u.SetEventsPerHour(*v)
	}
	return _u
}

// AddEventsPerHour adds value to the "events_per_hour" field.
func (_u *RepositoryProfileUpdateOne) AddEventsPerHour(v float64) *RepositoryProfileUpdateOne {
	_u.mutation.AddEventsPerHour(v)
	return _u
}

// SetContributorEstimate sets the "contributor_estimate" field.
func (_u *RepositoryProfileUpdateOne) SetContributorEstimate(v float64) *RepositoryProfileUpdateOne {
	_u.mutation.ResetContributorEstimate()
	_u.mutation.SetContributorEstimate(v)
	return _u
}

// SetNillableContributorEstimate sets the "contributor_estimate" field if the given value is not nil.
func (_u *RepositoryProfileUpdateOne) SetNillableContributorEstimate(v *float64) *RepositoryProfileUpdateOne {
	if v != nil {
		_u.SetContributorEstimate(*v)
	}
	return _u
}

// AddContributorEstimate adds value to the "contributor_estimate" field.
func (_u *RepositoryProfileUpdateOne) AddContributorEstimate(v float64) *RepositoryProfileUpdateOne {
	_u.mutation.AddContributorEstimate(v)
	return _u
}

// SetStars sets the "stars" field.
func (_u *RepositoryProfileUpdateOne) SetStars(v int) *RepositoryProfileUpdateOne {
	_u.mutation.ResetStars()
	_u.mutation.SetStars(v)
	return _u
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_u *RepositoryProfileUpdateOne) SetNillableStars(v *int) *RepositoryProfileUpdateOne {
	if v != nil {
		_u.SetStars(*v)
	}
	return _u
}

// AddStars adds value to the "stars" field.
func (_u *RepositoryProfileUpdateOne) AddStars(v int) *RepositoryProfileUpdateOne {
	_u.mutation.AddStars(v)
	return _u
}

// SetForks sets the "forks" field.
func (_u *RepositoryProfileUpdateOne) SetForks(v int) *RepositoryProfileUpdateOne {
	_u.mutation.ResetForks()
	_u.mutation.SetForks(v)
	return _u
}

// SetNillableForks sets the "forks" field if the given value is not nil.
func (_u *RepositoryProfileUpdateOne) SetNillableForks(v *int) *RepositoryProfileUpdateOne {
	if v != nil {
		_u.SetForks(*v)
	}
	return _u
}

// AddForks adds value to the "forks" field.
func (_u *RepositoryProfileUpdateOne) AddForks(v int) *RepositoryProfileUpdateOne {
	_u.mutation.AddForks(v)
	return _u
}

// SetHasSecurityPolicy sets the "has_security_policy" field.
func (_u *RepositoryProfileUpdateOne) SetHasSecurityPolicy(v bool) *RepositoryProfileUpdateOne {
	_u.mutation.SetHasSecurityPolicy(v)
	return _u
}

// SetNillableHasSecurityPolicy sets the "has_security_policy" field if the given value is not nil.
func (_u *RepositoryProfileUpdateOne) SetNillableHasSecurityPolicy(v *bool) *RepositoryProfileUpdateOne {
	if v != nil {
		_u.SetHasSecurityPolicy(*v)
	}
	return _u
}

// SetProtectedBranches sets the "protected_branches" field.
func (_u *RepositoryProfileUpdateOne) SetProtectedBranches(v int) *RepositoryProfileUpdateOne {
	_u.mutation.ResetProtectedBranches()
	_u.mutation.SetProtectedBranches(v)
	return _u
}

// SetNillableProtectedBranches sets the "protected_branches" field if the given value is not nil.
func (_u *RepositoryProfileUpdateOne) SetNillableProtectedBranches(v *int) *RepositoryProfileUpdateOne {
	if v != nil {
		_u.SetProtectedBranches(*v)
	}
	return _u
}

// AddProtectedBranches adds value to the "protected_branches" field.
func (_u *RepositoryProfileUpdateOne) AddProtectedBranches(v int) *RepositoryProfileUpdateOne {
	_u.mutation.AddProtectedBranches(v)
	return _u
}

// SetCriticality sets the "criticality" field.
func (_u *RepositoryProfileUpdateOne) SetCriticality(v float64) *RepositoryProfileUpdateOne {
	_u.mutation.ResetCriticality()
	_u.mutation.SetCriticality(v)
	return _u
}

// SetNillableCriticality sets the "criticality" field if the given value is not nil.
func (_u *RepositoryProfileUpdateOne) SetNillableCriticality(v *float64) *RepositoryProfileUpdateOne {
	if v != nil {
		_u.SetCriticality(*v)
	}
	return _u
}

// AddCriticality adds value to the "criticality" field.
func (_u *RepositoryProfileUpdateOne) AddCriticality(v float64) *RepositoryProfileUpdateOne {
	_u.mutation.AddCriticality(v)
	return _u
}

// SetCriticalityUpdatedAt sets the "criticality_updated_at" field.
func (_u *RepositoryProfileUpdateOne) SetCriticalityUpdatedAt(v time.Time) *RepositoryProfileUpdateOne {
	_u.mutation.SetCriticalityUpdatedAt(v)
	return _u
}

// SetNillableCriticalityUpdatedAt sets the "criticality_updated_at" field if the given value is not nil.
func (_u *RepositoryProfileUpdateOne) SetNillableCriticalityUpdatedAt(v *time.Time) *RepositoryProfileUpdateOne {
	if v != nil {
		_u.SetCriticalityUpdatedAt(*v)
	}
	return _u
}

// ClearCriticalityUpdatedAt clears the value of the "criticality_updated_at" field.
func (_u *RepositoryProfileUpdateOne) ClearCriticalityUpdatedAt() *RepositoryProfileUpdateOne {
	_u.mutation.ClearCriticalityUpdatedAt()
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *RepositoryProfileUpdateOne) SetLastUpdated(v time.Time) *RepositoryProfileUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the RepositoryProfileMutation object of the builder.
func (_u *RepositoryProfileUpdateOne) Mutation() *RepositoryProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the RepositoryProfileUpdate builder.
func (_u *RepositoryProfileUpdateOne) Where(ps ...predicate.RepositoryProfile) *RepositoryProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RepositoryProfileUpdateOne) Select(field string, fields ...string) *RepositoryProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RepositoryProfile entity.
func (_u *RepositoryProfileUpdateOne) Save(ctx context.Context) (*RepositoryProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepositoryProfileUpdateOne) SaveX(ctx context.Context) *RepositoryProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RepositoryProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepositoryProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RepositoryProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := repositoryprofile.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

func (_u *RepositoryProfileUpdateOne) sqlSave(ctx context.Context) (_node *RepositoryProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(repositoryprofile.Table, repositoryprofile.Columns, sqlgraph.NewFieldSpec(repositoryprofile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RepositoryProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, repositoryprofile.FieldID)
		for _, f := range fields {
			if !repositoryprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != repositoryprofile.FieldID {
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
	if value, ok := _u.mutation.EventsPerHour(); ok {
		_spec.SetField(repositoryprofile.FieldEventsPerHour, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEventsPerHour(); ok {
		_spec.AddField(repositoryprofile.FieldEventsPerHour, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContributorEstimate(); ok {
		_spec.SetField(repositoryprofile.FieldContributorEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContributorEstimate(); ok {
		_spec.AddField(repositoryprofile.FieldContributorEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Stars(); ok {
		_spec.SetField(repositoryprofile.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStars(); ok {
		_spec.AddField(repositoryprofile.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Forks(); ok {
		_spec.SetField(repositoryprofile.FieldForks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedForks(); ok {
		_spec.AddField(repositoryprofile.FieldForks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasSecurityPolicy(); ok {
		_spec.SetField(repositoryprofile.FieldHasSecurityPolicy, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProtectedBranches(); ok {
		_spec.SetField(repositoryprofile.FieldProtectedBranches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProtectedBranches(); ok {
		_spec.AddField(repositoryprofile.FieldProtectedBranches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Criticality(); ok {
		_spec.SetField(repositoryprofile.FieldCriticality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCriticality(); ok {
		_spec.AddField(repositoryprofile.FieldCriticality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CriticalityUpdatedAt(); ok {
		_spec.SetField(repositoryprofile.FieldCriticalityUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CriticalityUpdatedAtCleared() {
		_spec.ClearField(repositoryprofile.FieldCriticalityUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(repositoryprofile.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &RepositoryProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repositoryprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
