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
	"github.com/forgewatch/forgewatch/ent/userprofile"
)

// UserProfileCreate is the builder for creating a UserProfile entity.
type UserProfileCreate struct {
	config
	mutation *UserProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMeanFeatures sets the "mean_features" field.
func (_c *UserProfileCreate) SetMeanFeatures(v []float64) *UserProfileCreate {
	_c.mutation.SetMeanFeatures(v)
	return _c
}

// SetVarianceFeatures sets the "variance_features" field.
func (_c *UserProfileCreate) SetVarianceFeatures(v []float64) *UserProfileCreate {
	_c.mutation.SetVarianceFeatures(v)
	return _c
}

// SetSampleCount sets the "sample_count" field.
func (_c *UserProfileCreate) SetSampleCount(v int64) *UserProfileCreate {
	_c.mutation.SetSampleCount(v)
	return _c
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableSampleCount(v *int64) *UserProfileCreate {
	if v != nil {
		_c.SetSampleCount(*v)
	}
	return _c
}

// SetFeatureHistory sets the "feature_history" field.
func (_c *UserProfileCreate) SetFeatureHistory(v [][]float64) *UserProfileCreate {
	_c.mutation.SetFeatureHistory(v)
	return _c
}

// SetHourCounts sets the "hour_counts" field.
func (_c *UserProfileCreate) SetHourCounts(v []float64) *UserProfileCreate {
	_c.mutation.SetHourCounts(v)
	return _c
}

// SetWeekRate sets the "week_rate" field.
func (_c *UserProfileCreate) SetWeekRate(v float64) *UserProfileCreate {
	_c.mutation.SetWeekRate(v)
	return _c
}

// SetNillableWeekRate sets the "week_rate" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableWeekRate(v *float64) *UserProfileCreate {
	if v != nil {
		_c.SetWeekRate(*v)
	}
	return _c
}

// SetEventTypeCounts sets the "event_type_counts" field.
func (_c *UserProfileCreate) SetEventTypeCounts(v map[string]int64) *UserProfileCreate {
	_c.mutation.SetEventTypeCounts(v)
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *UserProfileCreate) SetFirstSeen(v time.Time) *UserProfileCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableFirstSeen(v *time.Time) *UserProfileCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *UserProfileCreate) SetLastUpdated(v time.Time) *UserProfileCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableLastUpdated(v *time.Time) *UserProfileCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserProfileCreate) SetID(v string) *UserProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserProfileMutation object of the builder.
func (_c *UserProfileCreate) Mutation() *UserProfileMutation {
	return _c.mutation
}

// Save creates the UserProfile in the database.
func (_c *UserProfileCreate) Save(ctx context.Context) (*UserProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserProfileCreate) SaveX(ctx context.Context) *UserProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserProfileCreate) defaults() {
	if _, ok := _c.mutation.SampleCount(); !ok {
		v := userprofile.DefaultSampleCount
		_c.mutation.SetSampleCount(v)
	}
	if _, ok := _c.mutation.WeekRate(); !ok {
		v := userprofile.DefaultWeekRate
		_c.mutation.SetWeekRate(v)
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := userprofile.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := userprofile.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserProfileCreate) check() error {
	if _, ok := _c.mutation.MeanFeatures(); !ok {
		return &ValidationError{Name: "mean_features", err: errors.New(`ent: missing required field "UserProfile.mean_features"`)}
	}
	if _, ok := _c.mutation.VarianceFeatures(); !ok {
		return &ValidationError{Name: "variance_features", err: errors.New(`ent: missing required field "UserProfile.variance_features"`)}
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		return &ValidationError{Name: "sample_count", err: errors.New(`ent: missing required field "UserProfile.sample_count"`)}
	}
	if _, ok := _c.mutation.WeekRate(); !ok {
		return &ValidationError{Name: "week_rate", err: errors.New(`ent: missing required field "UserProfile.week_rate"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "UserProfile.first_seen"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "UserProfile.last_updated"`)}
	}
	return nil
}

func (_c *UserProfileCreate) sqlSave(ctx context.Context) (*UserProfile, error) {
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
			return nil, fmt.Errorf("unexpected UserProfile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserProfileCreate) createSpec() (*UserProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &UserProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userprofile.Table, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MeanFeatures(); ok {
		_spec.SetField(userprofile.FieldMeanFeatures, field.TypeJSON, value)
		_node.MeanFeatures = value
	}
	if value, ok := _c.mutation.VarianceFeatures(); ok {
		_spec.SetField(userprofile.FieldVarianceFeatures, field.TypeJSON, value)
		_node.VarianceFeatures = value
	}
	if value, ok := _c.mutation.SampleCount(); ok {
		_spec.SetField(userprofile.FieldSampleCount, field.TypeInt64, value)
		_node.SampleCount = value
	}
	if value, ok := _c.mutation.FeatureHistory(); ok {
		_spec.SetField(userprofile.FieldFeatureHistory, field.TypeJSON, value)
		_node.FeatureHistory = value
	}
	if value, ok := _c.mutation.HourCounts(); ok {
		_spec.SetField(userprofile.FieldHourCounts, field.TypeJSON, value)
		_node.HourCounts = value
	}
	if value, ok := _c.mutation.WeekRate(); ok {
		_spec.SetField(userprofile.FieldWeekRate, field.TypeFloat64, value)
		_node.WeekRate = value
	}
	if value, ok := _c.mutation.EventTypeCounts(); ok {
		_spec.SetField(userprofile.FieldEventTypeCounts, field.TypeJSON, value)
		_node.EventTypeCounts = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(userprofile.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(userprofile.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserProfile.Create().
//		SetMeanFeatures(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserProfileUpsert) {
//			SetMeanFeatures(v+v).
//		}).
//		Exec(ctx)
func (_c *UserProfileCreate) OnConflict(opts ...sql.ConflictOption) *UserProfileUpsertOne {
	_c.conflict = opts
	return &UserProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserProfileCreate) OnConflictColumns(columns ...string) *UserProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserProfileUpsertOne{
		create: _c,
	}
}

type (
	// UserProfileUpsertOne is the builder for "upsert"-ing
	//  one UserProfile node.
	UserProfileUpsertOne struct {
		create *UserProfileCreate
	}

	// UserProfileUpsert is the "OnConflict" setter.
	UserProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetMeanFeatures sets the "mean_features" field.
func (u *UserProfileUpsert) SetMeanFeatures(v []float64) *UserProfileUpsert {
	u.Set(userprofile.FieldMeanFeatures, v)
	return u
}

// UpdateMeanFeatures sets the "mean_features" field to the value that was provided on create.
func (u *UserProfileUpsert) UpdateMeanFeatures() *UserProfileUpsert {
	u.SetExcluded(userprofile.FieldMeanFeatures)
	return u
}

// SetVarianceFeatures sets the "variance_features" field.
func (u *UserProfileUpsert) SetVarianceFeatures(v []float64) *UserProfileUpsert {
	u.Set(userprofile.FieldVarianceFeatures, v)
	return u
}

// UpdateVarianceFeatures sets the "variance_features" field to the value that was provided on create.
func (u *UserProfileUpsert) UpdateVarianceFeatures() *UserProfileUpsert {
	u.SetExcluded(userprofile.FieldVarianceFeatures)
	return u
}

// SetSampleCount sets the "sample_count" field.
func (u *UserProfileUpsert) SetSampleCount(v int64) *UserProfileUpsert {
	u.Set(userprofile.FieldSampleCount, v)
	return u
}

// UpdateSampleCount sets the "sample_count" field to the value that was provided on create.
func (u *UserProfileUpsert) UpdateSampleCount() *UserProfileUpsert {
	u.SetExcluded(userprofile.FieldSampleCount)
	return u
}

// AddSampleCount adds v to the "sample_count" field.
func (u *UserProfileUpsert) AddSampleCount(v int64) *UserProfileUpsert {
	u.Add(userprofile.FieldSampleCount, v)
	return u
}

// SetFeatureHistory sets the "feature_history" field.
func (u *UserProfileUpsert) SetFeatureHistory(v [][]float64) *UserProfileUpsert {
	u.Set(userprofile.FieldFeatureHistory, v)
	return u
}

// UpdateFeatureHistory sets the "feature_history" field to the value that was provided on create.
func (u *UserProfileUpsert) UpdateFeatureHistory() *UserProfileUpsert {
	u.SetExcluded(userprofile.FieldFeatureHistory)
	return u
}

// ClearFeatureHistory clears the value of the "feature_history" field.
func (u *UserProfileUpsert) ClearFeatureHistory() *UserProfileUpsert {
	u.SetNull(userprofile.FieldFeatureHistory)
	return u
}

// SetHourCounts sets the "hour_counts" field.
func (u *UserProfileUpsert) SetHourCounts(v []float64) *UserProfileUpsert {
	u.Set(userprofile.FieldHourCounts, v)
	return u
}

// UpdateHourCounts sets the "hour_counts" field to the value that was provided on create.
func (u *UserProfileUpsert) UpdateHourCounts() *UserProfileUpsert {
	u.SetExcluded(userprofile.FieldHourCounts)
	return u
}

// ClearHourCounts clears the value of the "hour_counts" field.
func (u *UserProfileUpsert) ClearHourCounts() *UserProfileUpsert {
	u.SetNull(userprofile.FieldHourCounts)
	return u
}

// SetWeekRate sets the "week_rate" field.
func (u *UserProfileUpsert) SetWeekRate(v float64) *UserProfileUpsert {
	u.Set(userprofile.FieldWeekRate, v)
	return u
}

// UpdateWeekRate sets the "week_rate" field to the value that was provided on create.
func (u *UserProfileUpsert) UpdateWeekRate() *UserProfileUpsert {
	u.SetExcluded(userprofile.FieldWeekRate)
	return u
}

// AddWeekRate adds v to the "week_rate" field.
func (u *UserProfileUpsert) AddWeekRate(v float64) *UserProfileUpsert {
	u.Add(userprofile.FieldWeekRate, v)
	return u
}

// SetEventTypeCounts sets the "event_type_counts" field.
func (u *UserProfileUpsert) SetEventTypeCounts(v map[string]int64) *UserProfileUpsert {
	u.Set(userprofile.FieldEventTypeCounts, v)
	return u
}

// UpdateEventTypeCounts sets the "event_type_counts" field to the value that was provided on create.
func (u *UserProfileUpsert) UpdateEventTypeCounts() *UserProfileUpsert {
	u.SetExcluded(userprofile.FieldEventTypeCounts)
	return u
}

// ClearEventTypeCounts clears the value of the "event_type_counts" field.
func (u *UserProfileUpsert) ClearEventTypeCounts() *UserProfileUpsert {
	u.SetNull(userprofile.FieldEventTypeCounts)
	return u
}

// SetLastUpdated sets the "last_updated" field.
func (u *UserProfileUpsert) SetLastUpdated(v time.Time) *UserProfileUpsert {
	u.Set(userprofile.FieldLastUpdated, v)
	return u
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *UserProfileUpsert) UpdateLastUpdated() *UserProfileUpsert {
	u.SetExcluded(userprofile.FieldLastUpdated)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UserProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserProfileUpsertOne) UpdateNewValues() *UserProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(userprofile.FieldID)
		}
		if _, exists := u.create.mutation.FirstSeen(); exists {
			s.SetIgnore(userprofile.FieldFirstSeen)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserProfileUpsertOne) Ignore() *UserProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserProfileUpsertOne) DoNothing() *UserProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserProfileCreate.OnConflict
// documentation for more info.
func (u *UserProfileUpsertOne) Update(set func(*UserProfileUpsert)) *UserProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetMeanFeatures sets the "mean_features" field.
func (u *UserProfileUpsertOne) SetMeanFeatures(v []float64) *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetMeanFeatures(v)
	})
}

// UpdateMeanFeatures sets the "mean_features" field to the value that was provided on create.
func (u *UserProfileUpsertOne) UpdateMeanFeatures() *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateMeanFeatures()
	})
}

// SetVarianceFeatures sets the "variance_features" field.
func (u *UserProfileUpsertOne) SetVarianceFeatures(v []float64) *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetVarianceFeatures(v)
	})
}

// UpdateVarianceFeatures sets the "variance_features" field to the value that was provided on create.
func (u *UserProfileUpsertOne) UpdateVarianceFeatures() *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateVarianceFeatures()
	})
}

// SetSampleCount sets the "sample_count" field.
func (u *UserProfileUpsertOne) SetSampleCount(v int64) *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetSampleCount(v)
	})
}

// AddSampleCount adds v to the "sample_count" field.
func (u *UserProfileUpsertOne) AddSampleCount(v int64) *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.AddSampleCount(v)
	})
}

// UpdateSampleCount sets the "sample_count" field to the value that was provided on create.
func (u *UserProfileUpsertOne) UpdateSampleCount() *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateSampleCount()
	})
}

// SetFeatureHistory sets the "feature_history" field.
func (u *UserProfileUpsertOne) SetFeatureHistory(v [][]float64) *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetFeatureHistory(v)
	})
}

// UpdateFeatureHistory sets the "feature_history" field to the value that was provided on create.
func (u *UserProfileUpsertOne) UpdateFeatureHistory() *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateFeatureHistory()
	})
}

// ClearFeatureHistory clears the value of the "feature_history" field.
func (u *UserProfileUpsertOne) ClearFeatureHistory() *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.ClearFeatureHistory()
	})
}

// SetHourCounts sets the "hour_counts" field.
func (u *UserProfileUpsertOne) SetHourCounts(v []float64) *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetHourCounts(v)
	})
}

// UpdateHourCounts sets the "hour_counts" field to the value that was provided on create.
func (u *UserProfileUpsertOne) UpdateHourCounts() *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateHourCounts()
	})
}

// ClearHourCounts clears the value of the "hour_counts" field.
func (u *UserProfileUpsertOne) ClearHourCounts() *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.ClearHourCounts()
	})
}

// SetWeekRate sets the "week_rate" field.
func (u *UserProfileUpsertOne) SetWeekRate(v float64) *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetWeekRate(v)
	})
}

// AddWeekRate adds v to the "week_rate" field.
func (u *UserProfileUpsertOne) AddWeekRate(v float64) *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.AddWeekRate(v)
	})
}

// UpdateWeekRate sets the "week_rate" field to the value that was provided on create.
func (u *UserProfileUpsertOne) UpdateWeekRate() *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateWeekRate()
	})
}

// SetEventTypeCounts sets the "event_type_counts" field.
func (u *UserProfileUpsertOne) SetEventTypeCounts(v map[string]int64) *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetEventTypeCounts(v)
	})
}

// UpdateEventTypeCounts sets the "event_type_counts" field to the value that was provided on create.
func (u *UserProfileUpsertOne) UpdateEventTypeCounts() *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateEventTypeCounts()
	})
}

// ClearEventTypeCounts clears the value of the "event_type_counts" field.
func (u *UserProfileUpsertOne) ClearEventTypeCounts() *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.ClearEventTypeCounts()
	})
}

// SetLastUpdated sets the "last_updated" field.
func (u *UserProfileUpsertOne) SetLastUpdated(v time.Time) *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetLastUpdated(v)
	})
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *UserProfileUpsertOne) UpdateLastUpdated() *UserProfileUpsertOne {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateLastUpdated()
	})
}

// Exec executes the query.
func (u *UserProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserProfileUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UserProfileUpsertOne.ID is not supported by MySQL driver. Use UserProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserProfileUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserProfileCreateBulk is the builder for creating many UserProfile entities in bulk.
type UserProfileCreateBulk struct {
	config
	err      error
	builders []*UserProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the UserProfile entities in the database.
func (_c *UserProfileCreateBulk) Save(ctx context.Context) ([]*UserProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserProfileMutation)
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
func (_c *UserProfileCreateBulk) SaveX(ctx context.Context) []*UserProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserProfileUpsert) {
//			SetMeanFeatures(v+v).
//		}).
//		Exec(ctx)
func (_c *UserProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserProfileUpsertBulk {
	_c.conflict = opts
	return &UserProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserProfileCreateBulk) OnConflictColumns(columns ...string) *UserProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserProfileUpsertBulk{
		create: _c,
	}
}

// UserProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of UserProfile nodes.
type UserProfileUpsertBulk struct {
	create *UserProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserProfileUpsertBulk) UpdateNewValues() *UserProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(userprofile.FieldID)
			}
			if _, exists := b.mutation.FirstSeen(); exists {
				s.SetIgnore(userprofile.FieldFirstSeen)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserProfileUpsertBulk) Ignore() *UserProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserProfileUpsertBulk) DoNothing() *UserProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserProfileCreateBulk.OnConflict
// documentation for more info.
func (u *UserProfileUpsertBulk) Update(set func(*UserProfileUpsert)) *UserProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetMeanFeatures sets the "mean_features" field.
func (u *UserProfileUpsertBulk) SetMeanFeatures(v []float64) *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetMeanFeatures(v)
	})
}

// UpdateMeanFeatures sets the "mean_features" field to the value that was provided on create.
func (u *UserProfileUpsertBulk) UpdateMeanFeatures() *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateMeanFeatures()
	})
}

// SetVarianceFeatures sets the "variance_features" field.
func (u *UserProfileUpsertBulk) SetVarianceFeatures(v []float64) *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetVarianceFeatures(v)
	})
}

// UpdateVarianceFeatures sets the "variance_features" field to the value that was provided on create.
func (u *UserProfileUpsertBulk) UpdateVarianceFeatures() *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateVarianceFeatures()
	})
}

// SetSampleCount sets the "sample_count" field.
func (u *UserProfileUpsertBulk) SetSampleCount(v int64) *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetSampleCount(v)
	})
}

// AddSampleCount adds v to the "sample_count" field.
func (u *UserProfileUpsertBulk) AddSampleCount(v int64) *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.AddSampleCount(v)
	})
}

// UpdateSampleCount sets the "sample_count" field to the value that was provided on create.
func (u *UserProfileUpsertBulk) UpdateSampleCount() *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateSampleCount()
	})
}

// SetFeatureHistory sets the "feature_history" field.
func (u *UserProfileUpsertBulk) SetFeatureHistory(v [][]float64) *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetFeatureHistory(v)
	})
}

// UpdateFeatureHistory sets the "feature_history" field to the value that was provided on create.
func (u *UserProfileUpsertBulk) UpdateFeatureHistory() *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateFeatureHistory()
	})
}

// ClearFeatureHistory clears the value of the "feature_history" field.
func (u *UserProfileUpsertBulk) ClearFeatureHistory() *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.ClearFeatureHistory()
	})
}

// SetHourCounts sets the "hour_counts" field.
func (u *UserProfileUpsertBulk) SetHourCounts(v []float64) *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetHourCounts(v)
	})
}

// UpdateHourCounts sets the "hour_counts" field to the value that was provided on create.
func (u *UserProfileUpsertBulk) UpdateHourCounts() *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateHourCounts()
	})
}

// ClearHourCounts clears the value of the "hour_counts" field.
func (u *UserProfileUpsertBulk) ClearHourCounts() *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.ClearHourCounts()
	})
}

// SetWeekRate sets the "week_rate" field.
func (u *UserProfileUpsertBulk) SetWeekRate(v float64) *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetWeekRate(v)
	})
}

// AddWeekRate adds v to the "week_rate" field.
func (u *UserProfileUpsertBulk) AddWeekRate(v float64) *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.AddWeekRate(v)
	})
}

// UpdateWeekRate sets the "week_rate" field to the value that was provided on create.
func (u *UserProfileUpsertBulk) UpdateWeekRate() *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateWeekRate()
	})
}

// SetEventTypeCounts sets the "event_type_counts" field.
func (u *UserProfileUpsertBulk) SetEventTypeCounts(v map[string]int64) *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetEventTypeCounts(v)
	})
}

// UpdateEventTypeCounts sets the "event_type_counts" field to the value that was provided on create.
func (u *UserProfileUpsertBulk) UpdateEventTypeCounts() *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateEventTypeCounts()
	})
}

// ClearEventTypeCounts clears the value of the "event_type_counts" field.
func (u *UserProfileUpsertBulk) ClearEventTypeCounts() *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.ClearEventTypeCounts()
	})
}

// SetLastUpdated sets the "last_updated" field.
func (u *UserProfileUpsertBulk) SetLastUpdated(v time.Time) *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.SetLastUpdated(v)
	})
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *UserProfileUpsertBulk) UpdateLastUpdated() *UserProfileUpsertBulk {
	return u.Update(func(s *UserProfileUpsert) {
		s.UpdateLastUpdated()
	})
}

// Exec executes the query.
func (u *UserProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
