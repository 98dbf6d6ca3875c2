// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgewatch/forgewatch/ent/anomalyrecord"
	"github.com/forgewatch/forgewatch/ent/predicate"
)

// AnomalyRecordDelete is the builder for deleting a AnomalyRecord entity.
type AnomalyRecordDelete struct {
	config
	hooks    []Hook
	mutation *AnomalyRecordMutation
}

// Where appends a list predicates to the AnomalyRecordDelete builder.
func (_d *AnomalyRecordDelete) Where(ps ...predicate.AnomalyRecord) *AnomalyRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnomalyRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnomalyRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnomalyRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(anomalyrecord.Table, sqlgraph.NewFieldSpec(anomalyrecord.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnomalyRecordDeleteOne is the builder for deleting a single AnomalyRecord entity.
type AnomalyRecordDeleteOne struct {
	_d *AnomalyRecordDelete
}

// Where appends a list predicates to the AnomalyRecordDelete builder.
func (_d *AnomalyRecordDeleteOne) Where(ps ...predicate.AnomalyRecord) *AnomalyRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnomalyRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{anomalyrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnomalyRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
