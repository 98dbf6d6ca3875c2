// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgewatch/forgewatch/ent/repositoryprofile"
)

// RepositoryProfileCreate is the builder for creating a RepositoryProfile entity.
type RepositoryProfileCreate struct {
	config
	mutation *RepositoryProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventsPerHour sets the "events_per_hour" field.
func (_c *RepositoryProfileCreate) SetEventsPerHour(v float64) *RepositoryProfileCreate {
	_c.mutation.SetEventsPerHour(v)
	return _c
}

// SetNillableEventsPerHour sets the "events_per_hour" field if the given value is not nil.
func (_c *RepositoryProfileCreate) SetNillableEventsPerHour(v *float64) *RepositoryProfileCreate {
	if v != nil {
		_c.SetEventsPerHour(*v)
	}
	return _c
}

// SetContributorEstimate sets the "contributor_estimate" field.
func (_c *RepositoryProfileCreate) SetContributorEstimate(v float64) *RepositoryProfileCreate {
	_c.mutation.SetContributorEstimate(v)
	return _c
}

// SetNillableContributorEstimate sets the "contributor_estimate" field if the given value is not nil.
func (_c *RepositoryProfileCreate) SetNillableContributorEstimate(v *float64) *RepositoryProfileCreate {
	if v != nil {
		_c.SetContributorEstimate(*v)
	}
	return _c
}

// SetStars sets the "stars" field.
func (_c *RepositoryProfileCreate) SetStars(v int) *RepositoryProfileCreate {
	_c.mutation.SetStars(v)
	return _c
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_c *RepositoryProfileCreate) SetNillableStars(v *int) *RepositoryProfileCreate {
	if v != nil {
		_c.SetStars(*v)
	}
	return _c
}

// SetForks sets the "forks" field.
func (_c *RepositoryProfileCreate) SetForks(v int) *RepositoryProfileCreate {
	_c.mutation.SetForks(v)
	return _c
}

// SetNillableForks sets the "forks" field if the given value is not nil.
func (_c *RepositoryProfileCreate) SetNillableForks(v *int) *RepositoryProfileCreate {
	if v != nil {
		_c.SetForks(*v)
	}
	return _c
}

// SetHasSecurityPolicy sets the "has_security_policy" field.
func (_c *RepositoryProfileCreate) SetHasSecurityPolicy(v bool) *RepositoryProfileCreate {
	_c.mutation.SetHasSecurityPolicy(v)
	return _c
}

// SetNillableHasSecurityPolicy sets the "has_security_policy" field if the given value is not nil.
func (_c *RepositoryProfileCreate) SetNillableHasSecurityPolicy(v *bool) *RepositoryProfileCreate {
	if v != nil {
		_c.SetHasSecurityPolicy(*v)
	}
	return _c
}

// SetProtectedBranches sets the "protected_branches" field.
func (_c *RepositoryProfileCreate) SetProtectedBranches(v int) *RepositoryProfileCreate {
	_c.mutation.SetProtectedBranches(v)
	return _c
}

// SetNillableProtectedBranches sets the "protected_branches" field if the given value is not nil.
func (_c *RepositoryProfileCreate) SetNillableProtectedBranches(v *int) *RepositoryProfileCreate {
	if v != nil {
		_c.SetProtectedBranches(*v)
	}
	return _c
}

// SetCriticality sets the "criticality" field.
func (_c *RepositoryProfileCreate) SetCriticality(v float64) *RepositoryProfileCreate {
	_c.mutation.SetCriticality(v)
	return _c
}

// SetNillableCriticality sets the "criticality" field if the given value is not nil.
func (_c *RepositoryProfileCreate) SetNillableCriticality(v *float64) *RepositoryProfileCreate {
	if v != nil {
		_c.SetCriticality(*v)
	}
	return _c
}

// SetCriticalityUpdatedAt sets the "criticality_updated_at" field.
func (_c *RepositoryProfileCreate) SetCriticalityUpdatedAt(v time.Time) *RepositoryProfileCreate {
	_c.mutation.SetCriticalityUpdatedAt(v)
	return _c
}

// SetNillableCriticalityUpdatedAt sets the "criticality_updated_at" field if the given value is not nil.
func (_c *RepositoryProfileCreate) SetNillableCriticalityUpdatedAt(v *time.Time) *RepositoryProfileCreate {
	if v != nil {
		_c.SetCriticalityUpdatedAt(*v)
	}
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *RepositoryProfileCreate) SetFirstSeen(v time.Time) *RepositoryProfileCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *RepositoryProfileCreate) SetNillableFirstSeen(v *time.Time) *RepositoryProfileCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *RepositoryProfileCreate) SetLastUpdated(v time.Time) *RepositoryProfileCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *RepositoryProfileCreate) SetNillableLastUpdated(v *time.Time) *RepositoryProfileCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RepositoryProfileCreate) SetID(v string) *RepositoryProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RepositoryProfileMutation object of the builder.
func (_c *RepositoryProfileCreate) Mutation() *RepositoryProfileMutation {
	return _c.mutation
}

// Save creates the RepositoryProfile in the database.
func (_c *RepositoryProfileCreate) Save(ctx context.Context) (*RepositoryProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RepositoryProfileCreate) SaveX(ctx context.Context) *RepositoryProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RepositoryProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RepositoryProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RepositoryProfileCreate) defaults() {
	if _, ok := _c.mutation.EventsPerHour(); !ok {
		v := repositoryprofile.DefaultEventsPerHour
		_c.mutation.SetEventsPerHour(v)
	}
	if _, ok := _c.mutation.ContributorEstimate(); !ok {
		v := repositoryprofile.DefaultContributorEstimate
		_c.mutation.SetContributorEstimate(v)
	}
	if _, ok := _c.mutation.Stars(); !ok {
		v := repositoryprofile.DefaultStars
		_c.mutation.SetStars(v)
	}
	if _, ok := _c.mutation.Forks(); !ok {
		v := repositoryprofile.DefaultForks
		_c.mutation.SetForks(v)
	}
	if _, ok := _c.mutation.HasSecurityPolicy(); !ok {
		v := repositoryprofile.DefaultHasSecurityPolicy
		_c.mutation.SetHasSecurityPolicy(v)
	}
	if _, ok := _c.mutation.ProtectedBranches(); !ok {
		v := repositoryprofile.DefaultProtectedBranches
		_c.mutation.SetProtectedBranches(v)
	}
	if _, ok := _c.mutation.Criticality(); !ok {
		v := repositoryprofile.DefaultCriticality
		_c.mutation.SetCriticality(v)
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := repositoryprofile.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := repositoryprofile.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RepositoryProfileCreate) check() error {
	if _, ok := _c.mutation.EventsPerHour(); !ok {
		return &ValidationError{Name: "events_per_hour", err: errors.New(`ent: missing required field "RepositoryProfile.events_per_hour"`)}
	}
	if _, ok := _c.mutation.ContributorEstimate(); !ok {
		return &ValidationError{Name: "contributor_estimate", err: errors.New(`ent: missing required field "RepositoryProfile.contributor_estimate"`)}
	}
	if _, ok := _c.mutation.Stars(); !ok {
		return &ValidationError{Name: "stars", err: errors.New(`ent: missing required field "RepositoryProfile.stars"`)}
	}
	if _, ok := _c.mutation.Forks(); !ok {
		return &ValidationError{Name: "forks", err: errors.New(`ent: missing required field "RepositoryProfile.forks"`)}
	}
	if _, ok := _c.mutation.HasSecurityPolicy(); !ok {
		return &ValidationError{Name: "has_security_policy", err: errors.New(`ent: missing required field "RepositoryProfile.has_security_policy"`)}
	}
	if _, ok := _c.mutation.ProtectedBranches(); !ok {
		return &ValidationError{Name: "protected_branches", err: errors.New(`ent: missing required field "RepositoryProfile.protected_branches"`)}
	}
	if _, ok := _c.mutation.Criticality(); !ok {
		return &ValidationError{Name: "criticality", err: errors.New(`ent: missing required field "RepositoryProfile.criticality"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "RepositoryProfile.first_seen"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "RepositoryProfile.last_updated"`)}
	}
	return nil
}

func (_c *RepositoryProfileCreate) sqlSave(ctx context.Context) (*RepositoryProfile, error) {
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
			return nil, fmt.Errorf("unexpected RepositoryProfile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RepositoryProfileCreate) createSpec() (*RepositoryProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &RepositoryProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(repositoryprofile.Table, sqlgraph.NewFieldSpec(repositoryprofile.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventsPerHour(); ok {
		_spec.SetField(repositoryprofile.FieldEventsPerHour, field.TypeFloat64, value)
		_node.EventsPerHour = value
	}
	if value, ok := _c.mutation.ContributorEstimate(); ok {
		_spec.SetField(repositoryprofile.FieldContributorEstimate, field.TypeFloat64, value)
		_node.ContributorEstimate = value
	}
	if value, ok := _c.mutation.Stars(); ok {
		_spec.SetField(repositoryprofile.FieldStars, field.TypeInt, value)
		_node.Stars = value
	}
	if value, ok := _c.mutation.Forks(); ok {
		_spec.SetField(repositoryprofile.FieldForks, field.TypeInt, value)
		_node.Forks = value
	}
	if value, ok := _c.mutation.HasSecurityPolicy(); ok {
		_spec.SetField(repositoryprofile.FieldHasSecurityPolicy, field.TypeBool, value)
		_node.HasSecurityPolicy = value
	}
	if value, ok := _c.mutation.ProtectedBranches(); ok {
		_spec.SetField(repositoryprofile.FieldProtectedBranches, field.TypeInt, value)
		_node.ProtectedBranches = value
	}
	if value, ok := _c.mutation.Criticality(); ok {
		_spec.SetField(repositoryprofile.FieldCriticality, field.TypeFloat64, value)
		_node.Criticality = value
	}
	if value, ok := _c.mutation.CriticalityUpdatedAt(); ok {
		_spec.SetField(repositoryprofile.FieldCriticalityUpdatedAt, field.TypeTime, value)
		_node.CriticalityUpdatedAt = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(repositoryprofile.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(repositoryprofile.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RepositoryProfile.Create().
//		SetEventsPerHour(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RepositoryProfileUpsert) {
//			SetEventsPerHour(v+v).
//		}).
//		Exec(ctx)
func (_c *RepositoryProfileCreate) OnConflict(opts ...sql.ConflictOption) *RepositoryProfileUpsertOne {
	_c.conflict = opts
	return &RepositoryProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RepositoryProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RepositoryProfileCreate) OnConflictColumns(columns ...string) *RepositoryProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RepositoryProfileUpsertOne{
		create: _c,
	}
}

type (
	// RepositoryProfileUpsertOne is the builder for "upsert"-ing
	//  one RepositoryProfile node.
	RepositoryProfileUpsertOne struct {
		create *RepositoryProfileCreate
	}

	// RepositoryProfileUpsert is the "OnConflict" setter.
	RepositoryProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventsPerHour sets the "events_per_hour" field.
func (u *RepositoryProfileUpsert) SetEventsPerHour(v float64) *RepositoryProfileUpsert {
	u.Set(repositoryprofile.FieldEventsPerHour, v)
	return u
}

// UpdateEventsPerHour sets the "events_per_hour" field to the value that was provided on create.
func (u *RepositoryProfileUpsert) UpdateEventsPerHour() *RepositoryProfileUpsert {
	u.SetExcluded(repositoryprofile.FieldEventsPerHour)
	return u
}

// AddEventsPerHour adds v to the "events_per_hour" field.
func (u *RepositoryProfileUpsert) AddEventsPerHour(v float64) *RepositoryProfileUpsert {
	u.Add(repositoryprofile.FieldEventsPerHour, v)
	return u
}

// SetContributorEstimate sets the "contributor_estimate" field.
func (u *RepositoryProfileUpsert) SetContributorEstimate(v float64) *RepositoryProfileUpsert {
	u.Set(repositoryprofile.FieldContributorEstimate, v)
	return u
}

// UpdateContributorEstimate sets the "contributor_estimate" field to the value that was provided on create.
func (u *RepositoryProfileUpsert) UpdateContributorEstimate() *RepositoryProfileUpsert {
	u.SetExcluded(repositoryprofile.FieldContributorEstimate)
	return u
}

// AddContributorEstimate adds v to the "contributor_estimate" field.
func (u *RepositoryProfileUpsert) AddContributorEstimate(v float64) *RepositoryProfileUpsert {
	u.Add(repositoryprofile.FieldContributorEstimate, v)
	return u
}

// SetStars sets the "stars" field.
func (u *RepositoryProfileUpsert) SetStars(v int) *RepositoryProfileUpsert {
	u.Set(repositoryprofile.FieldStars, v)
	return u
}

// UpdateStars sets the "stars" field to the value that was provided on create.
func (u *RepositoryProfileUpsert) UpdateStars() *RepositoryProfileUpsert {
	u.SetExcluded(repositoryprofile.FieldStars)
	return u
}

// AddStars adds v to the "stars" field.
func (u *RepositoryProfileUpsert) AddStars(v int) *RepositoryProfileUpsert {
	u.Add(repositoryprofile.FieldStars, v)
	return u
}

// SetForks sets the "forks" field.
func (u *RepositoryProfileUpsert) SetForks(v int) *RepositoryProfileUpsert {
	u.Set(repositoryprofile.FieldForks, v)
	return u
}

// UpdateForks sets the "forks" field to the value that was provided on create.
func (u *RepositoryProfileUpsert) UpdateForks() *RepositoryProfileUpsert {
	u.SetExcluded(repositoryprofile.FieldForks)
	return u
}

// AddForks adds v to the "forks" field.
func (u *RepositoryProfileUpsert) AddForks(v int) *RepositoryProfileUpsert {
	u.Add(repositoryprofile.FieldForks, v)
	return u
}

// SetHasSecurityPolicy sets the "has_security_policy" field.
func (u *RepositoryProfileUpsert) SetHasSecurityPolicy(v bool) *RepositoryProfileUpsert {
	u.Set(repositoryprofile.FieldHasSecurityPolicy, v)
	return u
}

// UpdateHasSecurityPolicy sets the "has_security_policy" field to the value that was provided on create.
func (u *RepositoryProfileUpsert) UpdateHasSecurityPolicy() *RepositoryProfileUpsert {
	u.SetExcluded(repositoryprofile.FieldHasSecurityPolicy)
	return u
}

// SetProtectedBranches sets the "protected_branches" field.
func (u *RepositoryProfileUpsert) SetProtectedBranches(v int) *RepositoryProfileUpsert {
	u.Set(repositoryprofile.FieldProtectedBranches, v)
	return u
}

// UpdateProtectedBranches sets the "protected_branches" field to the value that was provided on create.
func (u *RepositoryProfileUpsert) UpdateProtectedBranches() *RepositoryProfileUpsert {
	u.SetExcluded(repositoryprofile.FieldProtectedBranches)
	return u
}

// AddProtectedBranches adds v to the "protected_branches" field.
func (u *RepositoryProfileUpsert) AddProtectedBranches(v int) *RepositoryProfileUpsert {
	u.Add(repositoryprofile.FieldProtectedBranches, v)
	return u
}

// SetCriticality sets the "criticality" field.
func (u *RepositoryProfileUpsert) SetCriticality(v float64) *RepositoryProfileUpsert {
	u.Set(repositoryprofile.FieldCriticality, v)
	return u
}

// UpdateCriticality sets the "criticality" field to the value that was provided on create.
func (u *RepositoryProfileUpsert) UpdateCriticality() *RepositoryProfileUpsert {
	u.SetExcluded(repositoryprofile.FieldCriticality)
	return u
}

// AddCriticality adds v to the "criticality" field.
func (u *RepositoryProfileUpsert) AddCriticality(v float64) *RepositoryProfileUpsert {
	u.Add(repositoryprofile.FieldCriticality, v)
	return u
}

// SetCriticalityUpdatedAt sets the "criticality_updated_at" field.
func (u *RepositoryProfileUpsert) SetCriticalityUpdatedAt(v time.Time) *RepositoryProfileUpsert {
	u.Set(repositoryprofile.FieldCriticalityUpdatedAt, v)
	return u
}

// UpdateCriticalityUpdatedAt sets the "criticality_updated_at" field to the value that was provided on create.
func (u *RepositoryProfileUpsert) UpdateCriticalityUpdatedAt() *RepositoryProfileUpsert {
	u.SetExcluded(repositoryprofile.FieldCriticalityUpdatedAt)
	return u
}

// ClearCriticalityUpdatedAt clears the value of the "criticality_updated_at" field.
func (u *RepositoryProfileUpsert) ClearCriticalityUpdatedAt() *RepositoryProfileUpsert {
	u.SetNull(repositoryprofile.FieldCriticalityUpdatedAt)
	return u
}

// SetLastUpdated sets the "last_updated" field.
func (u *RepositoryProfileUpsert) SetLastUpdated(v time.Time) *RepositoryProfileUpsert {
	u.Set(repositoryprofile.FieldLastUpdated, v)
	return u
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *RepositoryProfileUpsert) UpdateLastUpdated() *RepositoryProfileUpsert {
	u.SetExcluded(repositoryprofile.FieldLastUpdated)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RepositoryProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(repositoryprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RepositoryProfileUpsertOne) UpdateNewValues() *RepositoryProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(repositoryprofile.FieldID)
		}
		if _, exists := u.create.mutation.FirstSeen(); exists {
			s.SetIgnore(repositoryprofile.FieldFirstSeen)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RepositoryProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RepositoryProfileUpsertOne) Ignore() *RepositoryProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RepositoryProfileUpsertOne) DoNothing() *RepositoryProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RepositoryProfileCreate.OnConflict
// documentation for more info.
func (u *RepositoryProfileUpsertOne) Update(set func(*RepositoryProfileUpsert)) *RepositoryProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RepositoryProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventsPerHour sets the "events_per_hour" field.
func (u *RepositoryProfileUpsertOne) SetEventsPerHour(v float64) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetEventsPerHour(v)
	})
}

// AddEventsPerHour adds v to the "events_per_hour" field.
func (u *RepositoryProfileUpsertOne) AddEventsPerHour(v float64) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.AddEventsPerHour(v)
	})
}

// UpdateEventsPerHour sets the "events_per_hour" field to the value that was provided on create.
func (u *RepositoryProfileUpsertOne) UpdateEventsPerHour() *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateEventsPerHour()
	})
}

// SetContributorEstimate sets the "contributor_estimate" field.
func (u *RepositoryProfileUpsertOne) SetContributorEstimate(v float64) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetContributorEstimate(v)
	})
}

// AddContributorEstimate adds v to the "contributor_estimate" field.
func (u *RepositoryProfileUpsertOne) AddContributorEstimate(v float64) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.AddContributorEstimate(v)
	})
}

// UpdateContributorEstimate sets the "contributor_estimate" field to the value that was provided on create.
func (u *RepositoryProfileUpsertOne) UpdateContributorEstimate() *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateContributorEstimate()
	})
}

// SetStars sets the "stars" field.
func (u *RepositoryProfileUpsertOne) SetStars(v int) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetStars(v)
	})
}

// AddStars adds v to the "stars" field.
func (u *RepositoryProfileUpsertOne) AddStars(v int) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.AddStars(v)
	})
}

// UpdateStars sets the "stars" field to the value that was provided on create.
func (u *RepositoryProfileUpsertOne) UpdateStars() *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateStars()
	})
}

// SetForks sets the "forks" field.
func (u *RepositoryProfileUpsertOne) SetForks(v int) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetForks(v)
	})
}

// AddForks adds v to the "forks" field.
func (u *RepositoryProfileUpsertOne) AddForks(v int) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.AddForks(v)
	})
}

// UpdateForks sets the "forks" field to the value that was provided on create.
func (u *RepositoryProfileUpsertOne) UpdateForks() *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateForks()
	})
}

// SetHasSecurityPolicy sets the "has_security_policy" field.
func (u *RepositoryProfileUpsertOne) SetHasSecurityPolicy(v bool) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetHasSecurityPolicy(v)
	})
}

// UpdateHasSecurityPolicy sets the "has_security_policy" field to the value that was provided on create.
func (u *RepositoryProfileUpsertOne) UpdateHasSecurityPolicy() *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateHasSecurityPolicy()
	})
}

// SetProtectedBranches sets the "protected_branches" field.
func (u *RepositoryProfileUpsertOne) SetProtectedBranches(v int) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetProtectedBranches(v)
	})
}

// AddProtectedBranches adds v to the "protected_branches" field.
func (u *RepositoryProfileUpsertOne) AddProtectedBranches(v int) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.AddProtectedBranches(v)
	})
}

// UpdateProtectedBranches sets the "protected_branches" field to the value that was provided on create.
func (u *RepositoryProfileUpsertOne) UpdateProtectedBranches() *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateProtectedBranches()
	})
}

// SetCriticality sets the "criticality" field.
func (u *RepositoryProfileUpsertOne) SetCriticality(v float64) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetCriticality(v)
	})
}

// AddCriticality adds v to the "criticality" field.
func (u *RepositoryProfileUpsertOne) AddCriticality(v float64) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.AddCriticality(v)
	})
}

// UpdateCriticality sets the "criticality" field to the value that was provided on create.
func (u *RepositoryProfileUpsertOne) UpdateCriticality() *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateCriticality()
	})
}

// SetCriticalityUpdatedAt sets the "criticality_updated_at" field.
func (u *RepositoryProfileUpsertOne) SetCriticalityUpdatedAt(v time.Time) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetCriticalityUpdatedAt(v)
	})
}

// UpdateCriticalityUpdatedAt sets the "criticality_updated_at" field to the value that was provided on create.
func (u *RepositoryProfileUpsertOne) UpdateCriticalityUpdatedAt() *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateCriticalityUpdatedAt()
	})
}

// ClearCriticalityUpdatedAt clears the value of the "criticality_updated_at" field.
func (u *RepositoryProfileUpsertOne) ClearCriticalityUpdatedAt() *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.ClearCriticalityUpdatedAt()
	})
}

// SetLastUpdated sets the "last_updated" field.
func (u *RepositoryProfileUpsertOne) SetLastUpdated(v time.Time) *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetLastUpdated(v)
	})
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *RepositoryProfileUpsertOne) UpdateLastUpdated() *RepositoryProfileUpsertOne {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateLastUpdated()
	})
}

// Exec executes the query.
func (u *RepositoryProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RepositoryProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RepositoryProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RepositoryProfileUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RepositoryProfileUpsertOne.ID is not supported by MySQL driver. Use RepositoryProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RepositoryProfileUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RepositoryProfileCreateBulk is the builder for creating many RepositoryProfile entities in bulk.
type RepositoryProfileCreateBulk struct {
	config
	err      error
	builders []*RepositoryProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the RepositoryProfile entities in the database.
func (_c *RepositoryProfileCreateBulk) Save(ctx context.Context) ([]*RepositoryProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RepositoryProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RepositoryProfileMutation)
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
func (_c *RepositoryProfileCreateBulk) SaveX(ctx context.Context) []*RepositoryProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RepositoryProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RepositoryProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RepositoryProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RepositoryProfileUpsert) {
//			SetEventsPerHour(v+v).
//		}).
//		Exec(ctx)
func (_c *RepositoryProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *RepositoryProfileUpsertBulk {
	_c.conflict = opts
	return &RepositoryProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RepositoryProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RepositoryProfileCreateBulk) OnConflictColumns(columns ...string) *RepositoryProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RepositoryProfileUpsertBulk{
		create: _c,
	}
}

// RepositoryProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of RepositoryProfile nodes.
type RepositoryProfileUpsertBulk struct {
	create *RepositoryProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RepositoryProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(repositoryprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RepositoryProfileUpsertBulk) UpdateNewValues() *RepositoryProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(repositoryprofile.FieldID)
			}
			if _, exists := b.mutation.FirstSeen(); exists {
				s.SetIgnore(repositoryprofile.FieldFirstSeen)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RepositoryProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RepositoryProfileUpsertBulk) Ignore() *RepositoryProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RepositoryProfileUpsertBulk) DoNothing() *RepositoryProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RepositoryProfileCreateBulk.OnConflict
// documentation for more info.
func (u *RepositoryProfileUpsertBulk) Update(set func(*RepositoryProfileUpsert)) *RepositoryProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RepositoryProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventsPerHour sets the "events_per_hour" field.
func (u *RepositoryProfileUpsertBulk) SetEventsPerHour(v float64) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetEventsPerHour(v)
	})
}

// AddEventsPerHour adds v to the "events_per_hour" field.
func (u *RepositoryProfileUpsertBulk) AddEventsPerHour(v float64) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.AddEventsPerHour(v)
	})
}

// UpdateEventsPerHour sets the "events_per_hour" field to the value that was provided on create.
func (u *RepositoryProfileUpsertBulk) UpdateEventsPerHour() *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateEventsPerHour()
	})
}

// SetContributorEstimate sets the "contributor_estimate" field.
func (u *RepositoryProfileUpsertBulk) SetContributorEstimate(v float64) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetContributorEstimate(v)
	})
}

// AddContributorEstimate adds v to the "contributor_estimate" field.
func (u *RepositoryProfileUpsertBulk) AddContributorEstimate(v float64) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.AddContributorEstimate(v)
	})
}

// UpdateContributorEstimate sets the "contributor_estimate" field to the value that was provided on create.
func (u *RepositoryProfileUpsertBulk) UpdateContributorEstimate() *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateContributorEstimate()
	})
}

// SetStars sets the "stars" field.
func (u *RepositoryProfileUpsertBulk) SetStars(v int) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetStars(v)
	})
}

// AddStars adds v to the "stars" field.
func (u *RepositoryProfileUpsertBulk) AddStars(v int) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.AddStars(v)
	})
}

// UpdateStars sets the "stars" field to the value that was provided on create.
func (u *RepositoryProfileUpsertBulk) UpdateStars() *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateStars()
	})
}

// SetForks sets the "forks" field.
func (u *RepositoryProfileUpsertBulk) SetForks(v int) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetForks(v)
	})
}

// AddForks adds v to the "forks" field.
func (u *RepositoryProfileUpsertBulk) AddForks(v int) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.AddForks(v)
	})
}

// UpdateForks sets the "forks" field to the value that was provided on create.
func (u *RepositoryProfileUpsertBulk) UpdateForks() *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateForks()
	})
}

// SetHasSecurityPolicy sets the "has_security_policy" field.
func (u *RepositoryProfileUpsertBulk) SetHasSecurityPolicy(v bool) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetHasSecurityPolicy(v)
	})
}

// UpdateHasSecurityPolicy sets the "has_security_policy" field to the value that was provided on create.
func (u *RepositoryProfileUpsertBulk) UpdateHasSecurityPolicy() *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateHasSecurityPolicy()
	})
}

// SetProtectedBranches sets the "protected_branches" field.
func (u *RepositoryProfileUpsertBulk) SetProtectedBranches(v int) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetProtectedBranches(v)
	})
}

// AddProtectedBranches adds v to the "protected_branches" field.
func (u *RepositoryProfileUpsertBulk) AddProtectedBranches(v int) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.AddProtectedBranches(v)
	})
}

// UpdateProtectedBranches sets the "protected_branches" field to the value that was provided on create.
func (u *RepositoryProfileUpsertBulk) UpdateProtectedBranches() *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateProtectedBranches()
	})
}

// SetCriticality sets the "criticality" field.
func (u *RepositoryProfileUpsertBulk) SetCriticality(v float64) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetCriticality(v)
	})
}

// AddCriticality adds v to the "criticality" field.
func (u *RepositoryProfileUpsertBulk) AddCriticality(v float64) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.AddCriticality(v)
	})
}

// UpdateCriticality sets the "criticality" field to the value that was provided on create.
func (u *RepositoryProfileUpsertBulk) UpdateCriticality() *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateCriticality()
	})
}

// SetCriticalityUpdatedAt sets the "criticality_updated_at" field.
func (u *RepositoryProfileUpsertBulk) SetCriticalityUpdatedAt(v time.Time) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetCriticalityUpdatedAt(v)
	})
}

// UpdateCriticalityUpdatedAt sets the "criticality_updated_at" field to the value that was provided on create.
func (u *RepositoryProfileUpsertBulk) UpdateCriticalityUpdatedAt() *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateCriticalityUpdatedAt()
	})
}

// ClearCriticalityUpdatedAt clears the value of the "criticality_updated_at" field.
func (u *RepositoryProfileUpsertBulk) ClearCriticalityUpdatedAt() *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.ClearCriticalityUpdatedAt()
	})
}

// SetLastUpdated sets the "last_updated" field.
func (u *RepositoryProfileUpsertBulk) SetLastUpdated(v time.Time) *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.SetLastUpdated(v)
	})
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *RepositoryProfileUpsertBulk) UpdateLastUpdated() *RepositoryProfileUpsertBulk {
	return u.Update(func(s *RepositoryProfileUpsert) {
		s.UpdateLastUpdated()
	})
}

// Exec executes the query.
func (u *RepositoryProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RepositoryProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RepositoryProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RepositoryProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
