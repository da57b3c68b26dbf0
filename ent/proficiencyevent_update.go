// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/riskdrill/ent/predicate"
	"github.com/abhisek/riskdrill/ent/proficiencyevent"
)

// ProficiencyEventUpdate is the builder for updating ProficiencyEvent entities.
type ProficiencyEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProficiencyEventMutation
}

// Where appends a list predicates to the ProficiencyEventUpdate builder.
func (_u *ProficiencyEventUpdate) Where(ps ...predicate.ProficiencyEvent) *ProficiencyEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProficiencyEventUpdate) SetUserID(v string) *ProficiencyEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProficiencyEventUpdate) SetNillableUserID(v *string) *ProficiencyEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ProficiencyEventUpdate) SetTopic(v string) *ProficiencyEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ProficiencyEventUpdate) SetNillableTopic(v *string) *ProficiencyEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ProficiencyEventUpdate) SetPassed(v bool) *ProficiencyEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ProficiencyEventUpdate) SetNillablePassed(v *bool) *ProficiencyEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetLevelBefore sets the "level_before" field.
func (_u *ProficiencyEventUpdate) SetLevelBefore(v int) *ProficiencyEventUpdate {
	_u.mutation.ResetLevelBefore()
	_u.mutation.SetLevelBefore(v)
	return _u
}

// SetNillableLevelBefore sets the "level_before" field if the given value is not nil.
func (_u *ProficiencyEventUpdate) SetNillableLevelBefore(v *int) *ProficiencyEventUpdate {
	if v != nil {
		_u.SetLevelBefore(*v)
	}
	return _u
}

// AddLevelBefore adds value to the "level_before" field.
func (_u *ProficiencyEventUpdate) AddLevelBefore(v int) *ProficiencyEventUpdate {
	_u.mutation.AddLevelBefore(v)
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *ProficiencyEventUpdate) SetLevelAfter(v int) *ProficiencyEventUpdate {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *ProficiencyEventUpdate) SetNillableLevelAfter(v *int) *ProficiencyEventUpdate {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *ProficiencyEventUpdate) AddLevelAfter(v int) *ProficiencyEventUpdate {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_u *ProficiencyEventUpdate) SetConsecutiveCorrect(v int) *ProficiencyEventUpdate {
	_u.mutation.ResetConsecutiveCorrect()
	_u.mutation.SetConsecutiveCorrect(v)
	return _u
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_u *ProficiencyEventUpdate) SetNillableConsecutiveCorrect(v *int) *ProficiencyEventUpdate {
	if v != nil {
		_u.SetConsecutiveCorrect(*v)
	}
	return _u
}

// AddConsecutiveCorrect adds value to the "consecutive_correct" field.
func (_u *ProficiencyEventUpdate) AddConsecutiveCorrect(v int) *ProficiencyEventUpdate {
	_u.mutation.AddConsecutiveCorrect(v)
	return _u
}

// SetConsecutiveIncorrect sets the "consecutive_incorrect" field.
func (_u *ProficiencyEventUpdate) SetConsecutiveIncorrect(v int) *ProficiencyEventUpdate {
	_u.mutation.ResetConsecutiveIncorrect()
	_u.mutation.SetConsecutiveIncorrect(v)
	return _u
}

// SetNillableConsecutiveIncorrect sets the "consecutive_incorrect" field if the given value is not nil.
func (_u *ProficiencyEventUpdate) SetNillableConsecutiveIncorrect(v *int) *ProficiencyEventUpdate {
	if v != nil {
		_u.SetConsecutiveIncorrect(*v)
	}
	return _u
}

// AddConsecutiveIncorrect adds value to the "consecutive_incorrect" field.
func (_u *ProficiencyEventUpdate) AddConsecutiveIncorrect(v int) *ProficiencyEventUpdate {
	_u.mutation.AddConsecutiveIncorrect(v)
	return _u
}

// Mutation returns the ProficiencyEventMutation object of the builder.
func (_u *ProficiencyEventUpdate) Mutation() *ProficiencyEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProficiencyEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProficiencyEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProficiencyEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProficiencyEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProficiencyEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := proficiencyevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProficiencyEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := proficiencyevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProficiencyEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *ProficiencyEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proficiencyevent.Table, proficiencyevent.Columns, sqlgraph.NewFieldSpec(proficiencyevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(proficiencyevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(proficiencyevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(proficiencyevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LevelBefore(); ok {
		_spec.SetField(proficiencyevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelBefore(); ok {
		_spec.AddField(proficiencyevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(proficiencyevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(proficiencyevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(proficiencyevent.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(proficiencyevent.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveIncorrect(); ok {
		_spec.SetField(proficiencyevent.FieldConsecutiveIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveIncorrect(); ok {
		_spec.AddField(proficiencyevent.FieldConsecutiveIncorrect, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proficiencyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProficiencyEventUpdateOne is the builder for updating a single ProficiencyEvent entity.
type ProficiencyEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProficiencyEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProficiencyEventUpdateOne) SetUserID(v string) *ProficiencyEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProficiencyEventUpdateOne) SetNillableUserID(v *string) *ProficiencyEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ProficiencyEventUpdateOne) SetTopic(v string) *ProficiencyEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ProficiencyEventUpdateOne) SetNillableTopic(v *string) *ProficiencyEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ProficiencyEventUpdateOne) SetPassed(v bool) *ProficiencyEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ProficiencyEventUpdateOne) SetNillablePassed(v *bool) *ProficiencyEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetLevelBefore sets the "level_before" field.
func (_u *ProficiencyEventUpdateOne) SetLevelBefore(v int) *ProficiencyEventUpdateOne {
	_u.mutation.ResetLevelBefore()
	_u.mutation.SetLevelBefore(v)
	return _u
}

// SetNillableLevelBefore sets the "level_before" field if the given value is not nil.
func (_u *ProficiencyEventUpdateOne) SetNillableLevelBefore(v *int) *ProficiencyEventUpdateOne {
	if v != nil {
		_u.SetLevelBefore(*v)
	}
	return _u
}

// AddLevelBefore adds value to the "level_before" field.
func (_u *ProficiencyEventUpdateOne) AddLevelBefore(v int) *ProficiencyEventUpdateOne {
	_u.mutation.AddLevelBefore(v)
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *ProficiencyEventUpdateOne) SetLevelAfter(v int) *ProficiencyEventUpdateOne {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *ProficiencyEventUpdateOne) SetNillableLevelAfter(v *int) *ProficiencyEventUpdateOne {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *ProficiencyEventUpdateOne) AddLevelAfter(v int) *ProficiencyEventUpdateOne {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (_u *ProficiencyEventUpdateOne) SetConsecutiveCorrect(v int) *ProficiencyEventUpdateOne {
	_u.mutation.ResetConsecutiveCorrect()
	_u.mutation.SetConsecutiveCorrect(v)
	return _u
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (_u *ProficiencyEventUpdateOne) SetNillableConsecutiveCorrect(v *int) *ProficiencyEventUpdateOne {
	if v != nil {
		_u.SetConsecutiveCorrect(*v)
	}
	return _u
}

// AddConsecutiveCorrect adds value to the "consecutive_correct" field.
func (_u *ProficiencyEventUpdateOne) AddConsecutiveCorrect(v int) *ProficiencyEventUpdateOne {
	_u.mutation.AddConsecutiveCorrect(v)
	return _u
}

// SetConsecutiveIncorrect sets the "consecutive_incorrect" field.
func (_u *ProficiencyEventUpdateOne) SetConsecutiveIncorrect(v int) *ProficiencyEventUpdateOne {
	_u.mutation.ResetConsecutiveIncorrect()
	_u.mutation.SetConsecutiveIncorrect(v)
	return _u
}

// SetNillableConsecutiveIncorrect sets the "consecutive_incorrect" field if the given value is not nil.
func (_u *ProficiencyEventUpdateOne) SetNillableConsecutiveIncorrect(v *int) *ProficiencyEventUpdateOne {
	if v != nil {
		_u.SetConsecutiveIncorrect(*v)
	}
	return _u
}

// AddConsecutiveIncorrect adds value to the "consecutive_incorrect" field.
func (_u *ProficiencyEventUpdateOne) AddConsecutiveIncorrect(v int) *ProficiencyEventUpdateOne {
	_u.mutation.AddConsecutiveIncorrect(v)
	return _u
}

// Mutation returns the ProficiencyEventMutation object of the builder.
func (_u *ProficiencyEventUpdateOne) Mutation() *ProficiencyEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProficiencyEventUpdate builder.
func (_u *ProficiencyEventUpdateOne) Where(ps ...predicate.ProficiencyEvent) *ProficiencyEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProficiencyEventUpdateOne) Select(field string, fields ...string) *ProficiencyEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProficiencyEvent entity.
func (_u *ProficiencyEventUpdateOne) Save(ctx context.Context) (*ProficiencyEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProficiencyEventUpdateOne) SaveX(ctx context.Context) *ProficiencyEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProficiencyEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProficiencyEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProficiencyEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := proficiencyevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProficiencyEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := proficiencyevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProficiencyEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *ProficiencyEventUpdateOne) sqlSave(ctx context.Context) (_node *ProficiencyEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proficiencyevent.Table, proficiencyevent.Columns, sqlgraph.NewFieldSpec(proficiencyevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProficiencyEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proficiencyevent.FieldID)
		for _, f := range fields {
			if !proficiencyevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proficiencyevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(proficiencyevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(proficiencyevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(proficiencyevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LevelBefore(); ok {
		_spec.SetField(proficiencyevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelBefore(); ok {
		_spec.AddField(proficiencyevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(proficiencyevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(proficiencyevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(proficiencyevent.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(proficiencyevent.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveIncorrect(); ok {
		_spec.SetField(proficiencyevent.FieldConsecutiveIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveIncorrect(); ok {
		_spec.AddField(proficiencyevent.FieldConsecutiveIncorrect, field.TypeInt, value)
	}
	_node = &ProficiencyEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proficiencyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
