// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/riskdrill/ent/corpusbuildevent"
)

// CorpusBuildEventCreate is the builder for creating a CorpusBuildEvent entity.
type CorpusBuildEventCreate struct {
	config
	mutation *CorpusBuildEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CorpusBuildEventCreate) SetSequence(v int64) *CorpusBuildEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CorpusBuildEventCreate) SetTimestamp(v time.Time) *CorpusBuildEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CorpusBuildEventCreate) SetNillableTimestamp(v *time.Time) *CorpusBuildEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *CorpusBuildEventCreate) SetVersion(v int64) *CorpusBuildEventCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *CorpusBuildEventCreate) SetSource(v string) *CorpusBuildEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetRecordCount sets the "record_count" field.
func (_c *CorpusBuildEventCreate) SetRecordCount(v int) *CorpusBuildEventCreate {
	_c.mutation.SetRecordCount(v)
	return _c
}

// SetChunkCount sets the "chunk_count" field.
func (_c *CorpusBuildEventCreate) SetChunkCount(v int) *CorpusBuildEventCreate {
	_c.mutation.SetChunkCount(v)
	return _c
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_c *CorpusBuildEventCreate) SetEmbeddingModel(v string) *CorpusBuildEventCreate {
	_c.mutation.SetEmbeddingModel(v)
	return _c
}

// Mutation returns the CorpusBuildEventMutation object of the builder.
func (_c *CorpusBuildEventCreate) Mutation() *CorpusBuildEventMutation {
	return _c.mutation
}

// Save creates the CorpusBuildEvent in the database.
func (_c *CorpusBuildEventCreate) Save(ctx context.Context) (*CorpusBuildEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CorpusBuildEventCreate) SaveX(ctx context.Context) *CorpusBuildEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CorpusBuildEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CorpusBuildEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CorpusBuildEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := corpusbuildevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CorpusBuildEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CorpusBuildEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CorpusBuildEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "CorpusBuildEvent.version"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "CorpusBuildEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := corpusbuildevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CorpusBuildEvent.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordCount(); !ok {
		return &ValidationError{Name: "record_count", err: errors.New(`ent: missing required field "CorpusBuildEvent.record_count"`)}
	}
	if _, ok := _c.mutation.ChunkCount(); !ok {
		return &ValidationError{Name: "chunk_count", err: errors.New(`ent: missing required field "CorpusBuildEvent.chunk_count"`)}
	}
	if _, ok := _c.mutation.EmbeddingModel(); !ok {
		return &ValidationError{Name: "embedding_model", err: errors.New(`ent: missing required field "CorpusBuildEvent.embedding_model"`)}
	}
	return nil
}

func (_c *CorpusBuildEventCreate) sqlSave(ctx context.Context) (*CorpusBuildEvent, error) {
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

func (_c *CorpusBuildEventCreate) createSpec() (*CorpusBuildEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CorpusBuildEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(corpusbuildevent.Table, sqlgraph.NewFieldSpec(corpusbuildevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(corpusbuildevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(corpusbuildevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(corpusbuildevent.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(corpusbuildevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.RecordCount(); ok {
		_spec.SetField(corpusbuildevent.FieldRecordCount, field.TypeInt, value)
		_node.RecordCount = value
	}
	if value, ok := _c.mutation.ChunkCount(); ok {
		_spec.SetField(corpusbuildevent.FieldChunkCount, field.TypeInt, value)
		_node.ChunkCount = value
	}
	if value, ok := _c.mutation.EmbeddingModel(); ok {
		_spec.SetField(corpusbuildevent.FieldEmbeddingModel, field.TypeString, value)
		_node.EmbeddingModel = value
	}
	return _node, _spec
}

// CorpusBuildEventCreateBulk is the builder for creating many CorpusBuildEvent entities in bulk.
type CorpusBuildEventCreateBulk struct {
	config
	err      error
	builders []*CorpusBuildEventCreate
}

// Save creates the CorpusBuildEvent entities in the database.
func (_c *CorpusBuildEventCreateBulk) Save(ctx context.Context) ([]*CorpusBuildEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CorpusBuildEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CorpusBuildEventMutation)
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
func (_c *CorpusBuildEventCreateBulk) SaveX(ctx context.Context) []*CorpusBuildEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CorpusBuildEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CorpusBuildEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
