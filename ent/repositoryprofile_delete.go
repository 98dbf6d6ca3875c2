// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgewatch/forgewatch/ent/predicate"
	"github.com/forgewatch/forgewatch/ent/repositoryprofile"
)

// RepositoryProfileDelete is the builder for deleting a RepositoryProfile entity.
type RepositoryProfileDelete struct {
	config
	hooks    []Hook
	mutation *RepositoryProfileMutation
}

// Where appends a list predicates to the RepositoryProfileDelete builder.
func (_d *RepositoryProfileDelete) Where(ps ...predicate.RepositoryProfile) *RepositoryProfileDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RepositoryProfileDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RepositoryProfileDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RepositoryProfileDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(repositoryprofile.Table, sqlgraph.NewFieldSpec(repositoryprofile.FieldID, field.TypeString))
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

// RepositoryProfileDeleteOne is the builder for deleting a single RepositoryProfile entity.
type RepositoryProfileDeleteOne struct {
	_d *RepositoryProfileDelete
}

// Where appends a list predicates to the RepositoryProfileDelete builder.
func (_d *RepositoryProfileDeleteOne) Where(ps ...predicate.RepositoryProfile) *RepositoryProfileDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RepositoryProfileDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{repositoryprofile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RepositoryProfileDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
