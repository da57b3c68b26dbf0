// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/riskdrill/ent/answerevent"
	"github.com/abhisek/riskdrill/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnswerEventUpdate) SetUserID(v string) *AnswerEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableUserID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AnswerEventUpdate) SetTopic(v string) *AnswerEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTopic(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdate) SetDifficulty(v int) *AnswerEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableDifficulty(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AnswerEventUpdate) AddDifficulty(v int) *AnswerEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AnswerEventUpdate) SetQuestionText(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionText(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetReferenceAnswer sets the "reference_answer" field.
func (_u *AnswerEventUpdate) SetReferenceAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetReferenceAnswer(v)
	return _u
}

// SetNillableReferenceAnswer sets the "reference_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableReferenceAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetReferenceAnswer(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AnswerEventUpdate) SetUserAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableUserAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AnswerEventUpdate) SetScore(v float64) *AnswerEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableScore(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AnswerEventUpdate) AddScore(v float64) *AnswerEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AnswerEventUpdate) SetPassed(v bool) *AnswerEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillablePassed(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *AnswerEventUpdate) SetRationale(v string) *AnswerEventUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableRationale(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetSupportingChunks sets the "supporting_chunks" field.
func (_u *AnswerEventUpdate) SetSupportingChunks(v []string) *AnswerEventUpdate {
	_u.mutation.SetSupportingChunks(v)
	return _u
}

// AppendSupportingChunks appends value to the "supporting_chunks" field.
func (_u *AnswerEventUpdate) AppendSupportingChunks(v []string) *AnswerEventUpdate {
	_u.mutation.AppendSupportingChunks(v)
	return _u
}

// ClearSupportingChunks clears the value of the "supporting_chunks" field.
func (_u *AnswerEventUpdate) ClearSupportingChunks() *AnswerEventUpdate {
	_u.mutation.ClearSupportingChunks()
	return _u
}

// SetMatchedChunks sets the "matched_chunks" field.
func (_u *AnswerEventUpdate) SetMatchedChunks(v []string) *AnswerEventUpdate {
	_u.mutation.SetMatchedChunks(v)
	return _u
}

// AppendMatchedChunks appends value to the "matched_chunks" field.
func (_u *AnswerEventUpdate) AppendMatchedChunks(v []string) *AnswerEventUpdate {
	_u.mutation.AppendMatchedChunks(v)
	return _u
}

// ClearMatchedChunks clears the value of the "matched_chunks" field.
func (_u *AnswerEventUpdate) ClearMatchedChunks() *AnswerEventUpdate {
	_u.mutation.ClearMatchedChunks()
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := answerevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := answerevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := answerevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReferenceAnswer(); ok {
		if err := answerevent.ReferenceAnswerValidator(v); err != nil {
			return &ValidationError{Name: "reference_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.reference_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAnswer(); ok {
		if err := answerevent.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(answerevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(answerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(answerevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReferenceAnswer(); ok {
		_spec.SetField(answerevent.FieldReferenceAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(answerevent.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(answerevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(answerevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(answerevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(answerevent.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.SupportingChunks(); ok {
		_spec.SetField(answerevent.FieldSupportingChunks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupportingChunks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answerevent.FieldSupportingChunks, value)
		})
	}
	if _u.mutation.SupportingChunksCleared() {
		_spec.ClearField(answerevent.FieldSupportingChunks, field.TypeJSON)
	}
	if value, ok := _u.mutation.MatchedChunks(); ok {
		_spec.SetField(answerevent.FieldMatchedChunks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMatchedChunks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answerevent.FieldMatchedChunks, value)
		})
	}
	if _u.mutation.MatchedChunksCleared() {
		_spec.ClearField(answerevent.FieldMatchedChunks, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnswerEventUpdateOne) SetUserID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableUserID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AnswerEventUpdateOne) SetTopic(v string) *AnswerEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTopic(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdateOne) SetDifficulty(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableDifficulty(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AnswerEventUpdateOne) AddDifficulty(v int) *AnswerEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AnswerEventUpdateOne) SetQuestionText(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionText(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetReferenceAnswer sets the "reference_answer" field.
func (_u *AnswerEventUpdateOne) SetReferenceAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetReferenceAnswer(v)
	return _u
}

// SetNillableReferenceAnswer sets the "reference_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableReferenceAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetReferenceAnswer(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AnswerEventUpdateOne) SetUserAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableUserAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AnswerEventUpdateOne) SetScore(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableScore(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AnswerEventUpdateOne) AddScore(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AnswerEventUpdateOne) SetPassed(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillablePassed(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *AnswerEventUpdateOne) SetRationale(v string) *AnswerEventUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableRationale(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetSupportingChunks sets the "supporting_chunks" field.
func (_u *AnswerEventUpdateOne) SetSupportingChunks(v []string) *AnswerEventUpdateOne {
	_u.mutation.SetSupportingChunks(v)
	return _u
}

// AppendSupportingChunks appends value to the "supporting_chunks" field.
func (_u *AnswerEventUpdateOne) AppendSupportingChunks(v []string) *AnswerEventUpdateOne {
	_u.mutation.AppendSupportingChunks(v)
	return _u
}

// ClearSupportingChunks clears the value of the "supporting_chunks" field.
func (_u *AnswerEventUpdateOne) ClearSupportingChunks() *AnswerEventUpdateOne {
	_u.mutation.ClearSupportingChunks()
	return _u
}

// SetMatchedChunks sets the "matched_chunks" field.
func (_u *AnswerEventUpdateOne) SetMatchedChunks(v []string) *AnswerEventUpdateOne {
	_u.mutation.SetMatchedChunks(v)
	return _u
}

// AppendMatchedChunks appends value to the "matched_chunks" field.
func (_u *AnswerEventUpdateOne) AppendMatchedChunks(v []string) *AnswerEventUpdateOne {
	_u.mutation.AppendMatchedChunks(v)
	return _u
}

// ClearMatchedChunks clears the value of the "matched_chunks" field.
func (_u *AnswerEventUpdateOne) ClearMatchedChunks() *AnswerEventUpdateOne {
	_u.mutation.ClearMatchedChunks()
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := answerevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := answerevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := answerevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReferenceAnswer(); ok {
		if err := answerevent.ReferenceAnswerValidator(v); err != nil {
			return &ValidationError{Name: "reference_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.reference_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAnswer(); ok {
		if err := answerevent.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(answerevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(answerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(answerevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReferenceAnswer(); ok {
		_spec.SetField(answerevent.FieldReferenceAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(answerevent.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(answerevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(answerevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(answerevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(answerevent.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.SupportingChunks(); ok {
		_spec.SetField(answerevent.FieldSupportingChunks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupportingChunks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answerevent.FieldSupportingChunks, value)
		})
	}
	if _u.mutation.SupportingChunksCleared() {
		_spec.ClearField(answerevent.FieldSupportingChunks, field.TypeJSON)
	}
	if value, ok := _u.mutation.MatchedChunks(); ok {
		_spec.SetField(answerevent.FieldMatchedChunks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMatchedChunks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answerevent.FieldMatchedChunks, value)
		})
	}
	if _u.mutation.MatchedChunksCleared() {
		_spec.ClearField(answerevent.FieldMatchedChunks, field.TypeJSON)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
