// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/riskdrill/ent/proficiencyevent"
)

// ProficiencyEventCreate is the builder for creating a ProficiencyEvent entity.
type ProficiencyEventCreate struct {
	config
	mutation *ProficiencyEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ProficiencyEventCreate) SetSequence(v int64) *ProficiencyEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ProficiencyEventCreate) SetTimestamp(v time.Time) *ProficiencyEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ProficiencyEventCreate) SetNillableTimestamp(v *time.Time) *ProficiencyEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ProficiencyEventCreate) SetUserID(v string) *ProficiencyEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *ProficiencyEventCreate) SetTopic(v string) *ProficiencyEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *ProficiencyEventCreate) SetPassed(v bool) *ProficiencyEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetLevelBefore sets the "level_before" field.
func (_c *ProficiencyEventCreate) SetLevelBefore(v int) *ProficiencyEventCreate {
	_c.mutation.SetLevelBefore(v)
	return _c
}

// SetLevelAfter sets the "level_after" field.
func (_c *ProficiencyEventCreate) SetLevelAfter(v int) *ProficiencyEventCreate {
	_c.mutation.SetLevelAfter(v)
	return _c
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_c *ProficiencyEventCreate) SetConsecutiveCorrect(v int) *ProficiencyEventCreate {
	_c.mutation.SetConsecutiveCorrect(v)
	return _c
}

// SetConsecutiveIncorrect sets the "consecutive_incorrect" field.
func (_c *ProficiencyEventCreate) SetConsecutiveIncorrect(v int) *ProficiencyEventCreate {
	_c.mutation.SetConsecutiveIncorrect(v)
	return _c
}

// Mutation returns the ProficiencyEventMutation object of the builder.
func (_c *ProficiencyEventCreate) Mutation() *ProficiencyEventMutation {
	return _c.mutation
}

// Save creates the ProficiencyEvent in the database.
func (_c *ProficiencyEventCreate) Save(ctx context.Context) (*ProficiencyEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProficiencyEventCreate) SaveX(ctx context.Context) *ProficiencyEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProficiencyEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProficiencyEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProficiencyEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := proficiencyevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProficiencyEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProficiencyEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ProficiencyEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProficiencyEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := proficiencyevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProficiencyEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "ProficiencyEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := proficiencyevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProficiencyEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "ProficiencyEvent.passed"`)}
	}
	if _, ok := _c.mutation.LevelBefore(); !ok {
		return &ValidationError{Name: "level_before", err: errors.New(`ent: missing required field "ProficiencyEvent.level_before"`)}
	}
	if _, ok := _c.mutation.LevelAfter(); !ok {
		return &ValidationError{Name: "level_after", err: errors.New(`ent: missing required field "ProficiencyEvent.level_after"`)}
	}
	if _, ok := _c.mutation.ConsecutiveCorrect(); !ok {
		return &ValidationError{Name: "consecutive_correct", err: errors.New(`ent: missing required field "ProficiencyEvent.consecutive_correct"`)}
	}
	if _, ok := _c.mutation.ConsecutiveIncorrect(); !ok {
		return &ValidationError{Name: "consecutive_incorrect", err: errors.New(`ent: missing required field "ProficiencyEvent.consecutive_incorrect"`)}
	}
	return nil
}

func (_c *ProficiencyEventCreate) sqlSave(ctx context.Context) (*ProficiencyEvent, error) {
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

func (_c *ProficiencyEventCreate) createSpec() (*ProficiencyEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProficiencyEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proficiencyevent.Table, sqlgraph.NewFieldSpec(proficiencyevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(proficiencyevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(proficiencyevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(proficiencyevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(proficiencyevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(proficiencyevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.LevelBefore(); ok {
		_spec.SetField(proficiencyevent.FieldLevelBefore, field.TypeInt, value)
		_node.LevelBefore = value
	}
	if value, ok := _c.mutation.LevelAfter(); ok {
		_spec.SetField(proficiencyevent.FieldLevelAfter, field.TypeInt, value)
		_node.LevelAfter = value
	}
	if value, ok := _c.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(proficiencyevent.FieldConsecutiveCorrect, field.TypeInt, value)
		_node.ConsecutiveCorrect = value
	}
	if value, ok := _c.mutation.ConsecutiveIncorrect(); ok {
		_spec.SetField(proficiencyevent.FieldConsecutiveIncorrect, field.TypeInt, value)
		_node.ConsecutiveIncorrect = value
	}
	return _node, _spec
}

// ProficiencyEventCreateBulk is the builder for creating many ProficiencyEvent entities in bulk.
type ProficiencyEventCreateBulk struct {
	config
	err      error
	builders []*ProficiencyEventCreate
}

// Save creates the ProficiencyEvent entities in the database.
func (_c *ProficiencyEventCreateBulk) Save(ctx context.Context) ([]*ProficiencyEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProficiencyEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProficiencyEventMutation)
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
func (_c *ProficiencyEventCreateBulk) SaveX(ctx context.Context) []*ProficiencyEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProficiencyEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProficiencyEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
