// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgewatch/forgewatch/ent/githubevent"
	"github.com/forgewatch/forgewatch/ent/predicate"
)

// GitHubEventDelete is the builder for deleting a GitHubEvent entity.
type GitHubEventDelete struct {
	config
	hooks    []Hook
	mutation *GitHubEventMutation
}

// Where appends a list predicates to the GitHubEventDelete builder.
func (_d *GitHubEventDelete) Where(ps ...predicate.GitHubEvent) *GitHubEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GitHubEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GitHubEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GitHubEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(githubevent.Table, sqlgraph.NewFieldSpec(githubevent.FieldID, field.TypeString))
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

// GitHubEventDeleteOne is the builder for deleting a single GitHubEvent entity.
type GitHubEventDeleteOne struct {
	_d *GitHubEventDelete
}

// Where appends a list predicates to the GitHubEventDelete builder.
func (_d *GitHubEventDeleteOne) Where(ps ...predicate.GitHubEvent) *GitHubEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GitHubEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{githubevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GitHubEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
