// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/forgewatch/forgewatch/ent/predicate"
	"github.com/forgewatch/forgewatch/ent/userprofile"
)

// UserProfileUpdate is the builder for updating UserProfile entities.
type UserProfileUpdate struct {
	config
	hooks    []Hook
	mutation *UserProfileMutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdate) Where(ps ...predicate.UserProfile) *UserProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMeanFeatures sets the "mean_features" field.
func (_u *UserProfileUpdate) SetMeanFeatures(v []float64) *UserProfileUpdate {
	_u.mutation.SetMeanFeatures(v)
	return _u
}

// AppendMeanFeatures appends value to the "mean_features" field.
func (_u *UserProfileUpdate) AppendMeanFeatures(v []float64) *UserProfileUpdate {
	_u.mutation.AppendMeanFeatures(v)
	return _u
}

// SetVarianceFeatures sets the "variance_features" field.
func (_u *UserProfileUpdate) SetVarianceFeatures(v []float64) *UserProfileUpdate {
	_u.mutation.SetVarianceFeatures(v)
	return _u
}

// AppendVarianceFeatures appends value to the "variance_features" field.
func (_u *UserProfileUpdate) AppendVarianceFeatures(v []float64) *UserProfileUpdate {
	_u.mutation.AppendVarianceFeatures(v)
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *UserProfileUpdate) SetSampleCount(v int64) *UserProfileUpdate {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableSampleCount(v *int64) *UserProfileUpdate {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *UserProfileUpdate) AddSampleCount(v int64) *UserProfileUpdate {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetFeatureHistory sets the "feature_history" field.
func (_u *UserProfileUpdate) SetFeatureHistory(v [][]float64) *UserProfileUpdate {
	_u.mutation.SetFeatureHistory(v)
	return _u
}

// AppendFeatureHistory appends value to the "feature_history" field.
func (_u *UserProfileUpdate) AppendFeatureHistory(v [][]float64) *UserProfileUpdate {
	_u.mutation.AppendFeatureHistory(v)
	return _u
}

// ClearFeatureHistory clears the value of the "feature_history" field.
func (_u *UserProfileUpdate) ClearFeatureHistory() *UserProfileUpdate {
	_u.mutation.ClearFeatureHistory()
	return _u
}

// SetHourCounts sets the "hour_counts" field.
func (_u *UserProfileUpdate) SetHourCounts(v []float64) *UserProfileUpdate {
	_u.mutation.SetHourCounts(v)
	return _u
}

// AppendHourCounts appends value to the "hour_counts" field.
func (_u *UserProfileUpdate) AppendHourCounts(v []float64) *UserProfileUpdate {
	_u.mutation.AppendHourCounts(v)
	return _u
}

// ClearHourCounts clears the value of the "hour_counts" field.
func (_u *UserProfileUpdate) ClearHourCounts() *UserProfileUpdate {
	_u.mutation.ClearHourCounts()
	return _u
}

// SetWeekRate sets the "week_rate" field.
func (_u *UserProfileUpdate) SetWeekRate(v float64) *UserProfileUpdate {
	_u.mutation.ResetWeekRate()
	_u.mutation.SetWeekRate(v)
	return _u
}

// SetNillableWeekRate sets the "week_rate" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableWeekRate(v *float64) *UserProfileUpdate {
	if v != nil {
		_u.SetWeekRate(*v)
	}
	return _u
}

// AddWeekRate adds value to the "week_rate" field.
func (_u *UserProfileUpdate) AddWeekRate(v float64) *UserProfileUpdate {
	_u.mutation.AddWeekRate(v)
	return _u
}

// SetEventTypeCounts sets the "event_type_counts" field.
func (_u *UserProfileUpdate) SetEventTypeCounts(v map[string]int64) *UserProfileUpdate {
	_u.mutation.SetEventTypeCounts(v)
	return _u
}

// ClearEventTypeCounts clears the value of the "event_type_counts" field.
func (_u *UserProfileUpdate) ClearEventTypeCounts() *UserProfileUpdate {
	_u.mutation.ClearEventTypeCounts()
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *UserProfileUpdate) SetLastUpdated(v time.Time) *UserProfileUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdate) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProfileUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := userprofile.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

func (_u *UserProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MeanFeatures(); ok {
		_spec.SetField(userprofile.FieldMeanFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMeanFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprofile.FieldMeanFeatures, value)
		})
	}
	if value, ok := _u.mutation.VarianceFeatures(); ok {
		_spec.SetField(userprofile.FieldVarianceFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVarianceFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprofile.FieldVarianceFeatures, value)
		})
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(userprofile.FieldSampleCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(userprofile.FieldSampleCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FeatureHistory(); ok {
		_spec.SetField(userprofile.FieldFeatureHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatureHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprofile.FieldFeatureHistory, value)
		})
	}
	if _u.mutation.FeatureHistoryCleared() {
		_spec.ClearField(userprofile.FieldFeatureHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.HourCounts(); ok {
		_spec.SetField(userprofile.FieldHourCounts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHourCounts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprofile.FieldHourCounts, value)
		})
	}
	if _u.mutation.HourCountsCleared() {
		_spec.ClearField(userprofile.FieldHourCounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeekRate(); ok {
		_spec.SetField(userprofile.FieldWeekRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeekRate(); ok {
		_spec.AddField(userprofile.FieldWeekRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EventTypeCounts(); ok {
		_spec.SetField(userprofile.FieldEventTypeCounts, field.TypeJSON, value)
	}
	if _u.mutation.EventTypeCountsCleared() {
		_spec.ClearField(userprofile.FieldEventTypeCounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(userprofile.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProfileUpdateOne is the builder for updating a single UserProfile entity.
type UserProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProfileMutation
}

// SetMeanFeatures sets the "mean_features" field.
func (_u *UserProfileUpdateOne) SetMeanFeatures(v []float64) *UserProfileUpdateOne {
	_u.mutation.SetMeanFeatures(v)
	return _u
}

// AppendMeanFeatures appends value to the "mean_features" field.
func (_u *UserProfileUpdateOne) AppendMeanFeatures(v []float64) *UserProfileUpdateOne {
	_u.mutation.AppendMeanFeatures(v)
	return _u
}

// SetVarianceFeatures sets the "variance_features" field.
func (_u *UserProfileUpdateOne) SetVarianceFeatures(v []float64) *UserProfileUpdateOne {
	_u.mutation.SetVarianceFeatures(v)
	return _u
}

// AppendVarianceFeatures appends value to the "variance_features" field.
func (_u *UserProfileUpdateOne) AppendVarianceFeatures(v []float64) *UserProfileUpdateOne {
	_u.mutation.AppendVarianceFeatures(v)
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *UserProfileUpdateOne) SetSampleCount(v int64) *UserProfileUpdateOne {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableSampleCount(v *int64) *UserProfileUpdateOne {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *UserProfileUpdateOne) AddSampleCount(v int64) *UserProfileUpdateOne {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetFeatureHistory sets the "feature_history" field.
func (_u *UserProfileUpdateOne) SetFeatureHistory(v [][]float64) *UserProfileUpdateOne {
	_u.mutation.SetFeatureHistory(v)
	return _u
}

// AppendFeatureHistory appends value to the "feature_history" field.
func (_u *UserProfileUpdateOne) AppendFeatureHistory(v [][]float64) *UserProfileUpdateOne {
	_u.mutation.AppendFeatureHistory(v)
	return _u
}

// ClearFeatureHistory clears the value of the "feature_history" field.
func (_u *UserProfileUpdateOne) ClearFeatureHistory() *UserProfileUpdateOne {
	_u.mutation.ClearFeatureHistory()
	return _u
}

// SetHourCounts sets the "hour_counts" field.
func (_u *UserProfileUpdateOne) SetHourCounts(v []float64) *UserProfileUpdateOne {
	_u.mutation.SetHourCounts(v)
	return _u
}

// AppendHourCounts appends value to the "hour_counts" field.
func (_u *UserProfileUpdateOne) AppendHourCounts(v []float64) *UserProfileUpdateOne {
	_u.mutation.AppendHourCounts(v)
	return _u
}

// ClearHourCounts clears the value of the "hour_counts" field.
func (_u *UserProfileUpdateOne) ClearHourCounts() *UserProfileUpdateOne {
	_u.mutation.ClearHourCounts()
	return _u
}

// SetWeekRate sets the "week_rate" field.
func (_u *UserProfileUpdateOne) SetWeekRate(v float64) *UserProfileUpdateOne {
	_u.mutation.ResetWeekRate()
	_u.mutation.SetWeekRate(v)
	return _u
}

// SetNillableWeekRate sets the "week_rate" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableWeekRate(v *float64) *UserProfileUpdateOne {
	if v != nil {
		_u.SetWeekRate(*v)
	}
	return _u
}

// AddWeekRate adds value to the "week_rate" field.
func (_u *UserProfileUpdateOne) AddWeekRate(v float64) *UserProfileUpdateOne {
	_u.mutation.AddWeekRate(v)
	return _u
}

// SetEventTypeCounts sets the "event_type_counts" field.
func (_u *UserProfileUpdateOne) SetEventTypeCounts(v map[string]int64) *UserProfileUpdateOne {
	_u.mutation.SetEventTypeCounts(v)
	return _u
}

// ClearEventTypeCounts clears the value of the "event_type_counts" field.
func (_u *UserProfileUpdateOne) ClearEventTypeCounts() *UserProfileUpdateOne {
	_u.mutation.ClearEventTypeCounts()
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *UserProfileUpdateOne) SetLastUpdated(v time.Time) *UserProfileUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdateOne) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdateOne) Where(ps ...predicate.UserProfile) *UserProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProfileUpdateOne) Select(field string, fields ...string) *UserProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProfile entity.
func (_u *UserProfileUpdateOne) Save(ctx context.Context) (*UserProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdateOne) SaveX(ctx context.Context) *UserProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := userprofile.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

func (_u *UserProfileUpdateOne) sqlSave(ctx context.Context) (_node *UserProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprofile.FieldID)
		for _, f := range fields {
			if !userprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userprofile.FieldID {
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
	if value, ok := _u.mutation.MeanFeatures(); ok {
		_spec.SetField(userprofile.FieldMeanFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMeanFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprofile.FieldMeanFeatures, value)
		})
	}
	if value, ok := _u.mutation.VarianceFeatures(); ok {
		_spec.SetField(userprofile.FieldVarianceFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVarianceFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprofile.FieldVarianceFeatures, value)
		})
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(userprofile.FieldSampleCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(userprofile.FieldSampleCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FeatureHistory(); ok {
		_spec.SetField(userprofile.FieldFeatureHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatureHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprofile.FieldFeatureHistory, value)
		})
	}
	if _u.mutation.FeatureHistoryCleared() {
		_spec.ClearField(userprofile.FieldFeatureHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.HourCounts(); ok {
		_spec.SetField(userprofile.FieldHourCounts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHourCounts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprofile.FieldHourCounts, value)
		})
	}
	if _u.mutation.HourCountsCleared() {
		_spec.ClearField(userprofile.FieldHourCounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeekRate(); ok {
		_spec.SetField(userprofile.FieldWeekRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeekRate(); ok {
		_spec.AddField(userprofile.FieldWeekRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EventTypeCounts(); ok {
		_spec.SetField(userprofile.FieldEventTypeCounts, field.TypeJSON, value)
	}
	if _u.mutation.EventTypeCountsCleared() {
		_spec.ClearField(userprofile.FieldEventTypeCounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(userprofile.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &UserProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
