// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/riskdrill/ent/corpusbuildevent"
	"github.com/abhisek/riskdrill/ent/predicate"
)

// CorpusBuildEventUpdate is the builder for updating CorpusBuildEvent entities.
type CorpusBuildEventUpdate struct {
	config
	hooks    []Hook
	mutation *CorpusBuildEventMutation
}

// Where appends a list predicates to the CorpusBuildEventUpdate builder.
func (_u *CorpusBuildEventUpdate) Where(ps ...predicate.CorpusBuildEvent) *CorpusBuildEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *CorpusBuildEventUpdate) SetVersion(v int64) *CorpusBuildEventUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CorpusBuildEventUpdate) SetNillableVersion(v *int64) *CorpusBuildEventUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CorpusBuildEventUpdate) AddVersion(v int64) *CorpusBuildEventUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *CorpusBuildEventUpdate) SetSource(v string) *CorpusBuildEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CorpusBuildEventUpdate) SetNillableSource(v *string) *CorpusBuildEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetRecordCount sets the "record_count" field.
func (_u *CorpusBuildEventUpdate) SetRecordCount(v int) *CorpusBuildEventUpdate {
	_u.mutation.ResetRecordCount()
	_u.mutation.SetRecordCount(v)
	return _u
}

// SetNillableRecordCount sets the "record_count" field if the given value is not nil.
func (_u *CorpusBuildEventUpdate) SetNillableRecordCount(v *int) *CorpusBuildEventUpdate {
	if v != nil {
		_u.SetRecordCount(*v)
	}
	return _u
}

// AddRecordCount adds value to the "record_count" field.
func (_u *CorpusBuildEventUpdate) AddRecordCount(v int) *CorpusBuildEventUpdate {
	_u.mutation.AddRecordCount(v)
	return _u
}

// SetChunkCount sets the "chunk_count" field.
func (_u *CorpusBuildEventUpdate) SetChunkCount(v int) *CorpusBuildEventUpdate {
	_u.mutation.ResetChunkCount()
	_u.mutation.SetChunkCount(v)
	return _u
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_u *CorpusBuildEventUpdate) SetNillableChunkCount(v *int) *CorpusBuildEventUpdate {
	if v != nil {
		_u.SetChunkCount(*v)
	}
	return _u
}

// AddChunkCount adds value to the "chunk_count" field.
func (_u *CorpusBuildEventUpdate) AddChunkCount(v int) *CorpusBuildEventUpdate {
	_u.mutation.AddChunkCount(v)
	return _u
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_u *CorpusBuildEventUpdate) SetEmbeddingModel(v string) *CorpusBuildEventUpdate {
	_u.mutation.SetEmbeddingModel(v)
	return _u
}

// SetNillableEmbeddingModel sets the "embedding_model" field if the given value is not nil.
func (_u *CorpusBuildEventUpdate) SetNillableEmbeddingModel(v *string) *CorpusBuildEventUpdate {
	if v != nil {
		_u.SetEmbeddingModel(*v)
	}
	return _u
}

// Mutation returns the CorpusBuildEventMutation object of the builder.
func (_u *CorpusBuildEventUpdate) Mutation() *CorpusBuildEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CorpusBuildEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CorpusBuildEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CorpusBuildEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CorpusBuildEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CorpusBuildEventUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := corpusbuildevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CorpusBuildEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *CorpusBuildEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(corpusbuildevent.Table, corpusbuildevent.Columns, sqlgraph.NewFieldSpec(corpusbuildevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(corpusbuildevent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(corpusbuildevent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(corpusbuildevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordCount(); ok {
		_spec.SetField(corpusbuildevent.FieldRecordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordCount(); ok {
		_spec.AddField(corpusbuildevent.FieldRecordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChunkCount(); ok {
		_spec.SetField(corpusbuildevent.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCount(); ok {
		_spec.AddField(corpusbuildevent.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmbeddingModel(); ok {
		_spec.SetField(corpusbuildevent.FieldEmbeddingModel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{corpusbuildevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CorpusBuildEventUpdateOne is the builder for updating a single CorpusBuildEvent entity.
type CorpusBuildEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CorpusBuildEventMutation
}

// SetVersion sets the "version" field.
func (_u *CorpusBuildEventUpdateOne) SetVersion(v int64) *CorpusBuildEventUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CorpusBuildEventUpdateOne) SetNillableVersion(v *int64) *CorpusBuildEventUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CorpusBuildEventUpdateOne) AddVersion(v int64) *CorpusBuildEventUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *CorpusBuildEventUpdateOne) SetSource(v string) *CorpusBuildEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CorpusBuildEventUpdateOne) SetNillableSource(v *string) *CorpusBuildEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetRecordCount sets the "record_count" field.
func (_u *CorpusBuildEventUpdateOne) SetRecordCount(v int) *CorpusBuildEventUpdateOne {
	_u.mutation.ResetRecordCount()
	_u.mutation.SetRecordCount(v)
	return _u
}

// SetNillableRecordCount sets the "record_count" field if the given value is not nil.
func (_u *CorpusBuildEventUpdateOne) SetNillableRecordCount(v *int) *CorpusBuildEventUpdateOne {
	if v != nil {
		_u.SetRecordCount(*v)
	}
	return _u
}

// AddRecordCount adds value to the "record_count" field.
func (_u *CorpusBuildEventUpdateOne) AddRecordCount(v int) *CorpusBuildEventUpdateOne {
	_u.mutation.AddRecordCount(v)
	return _u
}

// SetChunkCount sets the "chunk_count" field.
func (_u *CorpusBuildEventUpdateOne) SetChunkCount(v int) *CorpusBuildEventUpdateOne {
	_u.mutation.ResetChunkCount()
	_u.mutation.SetChunkCount(v)
	return _u
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_u *CorpusBuildEventUpdateOne) SetNillableChunkCount(v *int) *CorpusBuildEventUpdateOne {
	if v != nil {
		_u.SetChunkCount(*v)
	}
	return _u
}

// AddChunkCount adds value to the "chunk_count" field.
func (_u *CorpusBuildEventUpdateOne) AddChunkCount(v int) *CorpusBuildEventUpdateOne {
	_u.mutation.AddChunkCount(v)
	return _u
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_u *CorpusBuildEventUpdateOne) SetEmbeddingModel(v string) *CorpusBuildEventUpdateOne {
	_u.mutation.SetEmbeddingModel(v)
	return _u
}

// SetNillableEmbeddingModel sets the "embedding_model" field if the given value is not nil.
func (_u *CorpusBuildEventUpdateOne) SetNillableEmbeddingModel(v *string) *CorpusBuildEventUpdateOne {
	if v != nil {
		_u.SetEmbeddingModel(*v)
	}
	return _u
}

// Mutation returns the CorpusBuildEventMutation object of the builder.
func (_u *CorpusBuildEventUpdateOne) Mutation() *CorpusBuildEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CorpusBuildEventUpdate builder.
func (_u *CorpusBuildEventUpdateOne) Where(ps ...predicate.CorpusBuildEvent) *CorpusBuildEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CorpusBuildEventUpdateOne) Select(field string, fields ...string) *CorpusBuildEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CorpusBuildEvent entity.
func (_u *CorpusBuildEventUpdateOne) Save(ctx context.Context) (*CorpusBuildEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CorpusBuildEventUpdateOne) SaveX(ctx context.Context) *CorpusBuildEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CorpusBuildEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CorpusBuildEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CorpusBuildEventUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := corpusbuildevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CorpusBuildEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *CorpusBuildEventUpdateOne) sqlSave(ctx context.Context) (_node *CorpusBuildEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(corpusbuildevent.Table, corpusbuildevent.Columns, sqlgraph.NewFieldSpec(corpusbuildevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CorpusBuildEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, corpusbuildevent.FieldID)
		for _, f := range fields {
			if !corpusbuildevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != corpusbuildevent.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(corpusbuildevent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(corpusbuildevent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(corpusbuildevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordCount(); ok {
		_spec.SetField(corpusbuildevent.FieldRecordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordCount(); ok {
		_spec.AddField(corpusbuildevent.FieldRecordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChunkCount(); ok {
		_spec.SetField(corpusbuildevent.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCount(); ok {
		_spec.AddField(corpusbuildevent.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmbeddingModel(); ok {
		_spec.SetField(corpusbuildevent.FieldEmbeddingModel, field.TypeString, value)
	}
	_node = &CorpusBuildEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{corpusbuildevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
