// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/riskdrill/ent/corpusbuildevent"
)

// CorpusBuildEvent is the model entity for the CorpusBuildEvent schema.
type CorpusBuildEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Monotonic corpus version
	Version int64 `json:"version,omitempty"`
	// Path or name of the JSONL source
	Source string `json:"source,omitempty"`
	// Raw records ingested
	RecordCount int `json:"record_count,omitempty"`
	// Chunks produced after splitting
	ChunkCount int `json:"chunk_count,omitempty"`
	// Embedder model ID used for the build
	EmbeddingModel string `json:"embedding_model,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CorpusBuildEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case corpusbuildevent.FieldID, corpusbuildevent.FieldSequence, corpusbuildevent.FieldVersion, corpusbuildevent.FieldRecordCount, corpusbuildevent.FieldChunkCount:
			values[i] = new(sql.NullInt64)
		case corpusbuildevent.FieldSource, corpusbuildevent.FieldEmbeddingModel:
			values[i] = new(sql.NullString)
		case corpusbuildevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CorpusBuildEvent fields.
func (_m *CorpusBuildEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case corpusbuildevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case corpusbuildevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case corpusbuildevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case corpusbuildevent.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case corpusbuildevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case corpusbuildevent.FieldRecordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field record_count", values[i])
			} else if value.Valid {
				_m.RecordCount = int(value.Int64)
			}
		case corpusbuildevent.FieldChunkCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_count", values[i])
			} else if value.Valid {
				_m.ChunkCount = int(value.Int64)
			}
		case corpusbuildevent.FieldEmbeddingModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field embedding_model", values[i])
			} else if value.Valid {
				_m.EmbeddingModel = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CorpusBuildEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CorpusBuildEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CorpusBuildEvent.
// Note that you need to call CorpusBuildEvent.Unwrap() before calling this method if this CorpusBuildEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CorpusBuildEvent) Update() *CorpusBuildEventUpdateOne {
	return NewCorpusBuildEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CorpusBuildEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CorpusBuildEvent) Unwrap() *CorpusBuildEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CorpusBuildEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CorpusBuildEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CorpusBuildEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("record_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordCount))
	builder.WriteString(", ")
	builder.WriteString("chunk_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkCount))
	builder.WriteString(", ")
	builder.WriteString("embedding_model=")
	builder.WriteString(_m.EmbeddingModel)
	builder.WriteByte(')')
	return builder.String()
}

// CorpusBuildEvents is a parsable slice of CorpusBuildEvent.
type CorpusBuildEvents []*CorpusBuildEvent
