// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/riskdrill/ent/corpusbuildevent"
	"github.com/abhisek/riskdrill/ent/predicate"
)

// CorpusBuildEventDelete is the builder for deleting a CorpusBuildEvent entity.
type CorpusBuildEventDelete struct {
	config
	hooks    []Hook
	mutation *CorpusBuildEventMutation
}

// Where appends a list predicates to the CorpusBuildEventDelete builder.
func (_d *CorpusBuildEventDelete) Where(ps ...predicate.CorpusBuildEvent) *CorpusBuildEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CorpusBuildEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CorpusBuildEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CorpusBuildEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(corpusbuildevent.Table, sqlgraph.NewFieldSpec(corpusbuildevent.FieldID, field.TypeInt))
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

// CorpusBuildEventDeleteOne is the builder for deleting a single CorpusBuildEvent entity.
type CorpusBuildEventDeleteOne struct {
	_d *CorpusBuildEventDelete
}

// Where appends a list predicates to the CorpusBuildEventDelete builder.
func (_d *CorpusBuildEventDeleteOne) Where(ps ...predicate.CorpusBuildEvent) *CorpusBuildEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CorpusBuildEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{corpusbuildevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CorpusBuildEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
