// Code generated by ent, DO NOT EDIT.

package corpusbuildevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/riskdrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldVersion, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldSource, v))
}

// RecordCount applies equality check predicate on the "record_count" field. It's identical to RecordCountEQ.
func RecordCount(v int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldRecordCount, v))
}

// ChunkCount applies equality check predicate on the "chunk_count" field. It's identical to ChunkCountEQ.
func ChunkCount(v int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldChunkCount, v))
}

// EmbeddingModel applies equality check predicate on the "embedding_model" field. It's identical to EmbeddingModelEQ.
func EmbeddingModel(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldEmbeddingModel, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLTE(FieldTimestamp, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLTE(FieldVersion, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldContainsFold(FieldSource, v))
}

// RecordCountEQ applies the EQ predicate on the "record_count" field.
func RecordCountEQ(v int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldRecordCount, v))
}

// RecordCountNEQ applies the NEQ predicate on the "record_count" field.
func RecordCountNEQ(v int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNEQ(FieldRecordCount, v))
}

// RecordCountIn applies the In predicate on the "record_count" field.
func RecordCountIn(vs ...int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldIn(FieldRecordCount, vs...))
}

// RecordCountNotIn applies the NotIn predicate on the "record_count" field.
func RecordCountNotIn(vs ...int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNotIn(FieldRecordCount, vs...))
}

// RecordCountGT applies the GT predicate on the "record_count" field.
func RecordCountGT(v int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGT(FieldRecordCount, v))
}

// RecordCountGTE applies the GTE predicate on the "record_count" field.
func RecordCountGTE(v int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGTE(FieldRecordCount, v))
}

// RecordCountLT applies the LT predicate on the "record_count" field.
func RecordCountLT(v int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLT(FieldRecordCount, v))
}

// RecordCountLTE applies the LTE predicate on the "record_count" field.
func RecordCountLTE(v int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLTE(FieldRecordCount, v))
}

// ChunkCountEQ applies the EQ predicate on the "chunk_count" field.
func ChunkCountEQ(v int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldChunkCount, v))
}

// ChunkCountNEQ applies the NEQ predicate on the "chunk_count" field.
func ChunkCountNEQ(v int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNEQ(FieldChunkCount, v))
}

// ChunkCountIn applies the In predicate on the "chunk_count" field.
func ChunkCountIn(vs ...int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldIn(FieldChunkCount, vs...))
}

// ChunkCountNotIn applies the NotIn predicate on the "chunk_count" field.
func ChunkCountNotIn(vs ...int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNotIn(FieldChunkCount, vs...))
}

// ChunkCountGT applies the GT predicate on the "chunk_count" field.
func ChunkCountGT(v int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGT(FieldChunkCount, v))
}

// ChunkCountGTE applies the GTE predicate on the "chunk_count" field.
func ChunkCountGTE(v int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGTE(FieldChunkCount, v))
}

// ChunkCountLT applies the LT predicate on the "chunk_count" field.
func ChunkCountLT(v int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLT(FieldChunkCount, v))
}

// ChunkCountLTE applies the LTE predicate on the "chunk_count" field.
func ChunkCountLTE(v int) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLTE(FieldChunkCount, v))
}

// EmbeddingModelEQ applies the EQ predicate on the "embedding_model" field.
func EmbeddingModelEQ(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEQ(FieldEmbeddingModel, v))
}

// EmbeddingModelNEQ applies the NEQ predicate on the "embedding_model" field.
func EmbeddingModelNEQ(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNEQ(FieldEmbeddingModel, v))
}

// EmbeddingModelIn applies the In predicate on the "embedding_model" field.
func EmbeddingModelIn(vs ...string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldIn(FieldEmbeddingModel, vs...))
}

// EmbeddingModelNotIn applies the NotIn predicate on the "embedding_model" field.
func EmbeddingModelNotIn(vs ...string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldNotIn(FieldEmbeddingModel, vs...))
}

// EmbeddingModelGT applies the GT predicate on the "embedding_model" field.
func EmbeddingModelGT(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGT(FieldEmbeddingModel, v))
}

// EmbeddingModelGTE applies the GTE predicate on the "embedding_model" field.
func EmbeddingModelGTE(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldGTE(FieldEmbeddingModel, v))
}

// EmbeddingModelLT applies the LT predicate on the "embedding_model" field.
func EmbeddingModelLT(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLT(FieldEmbeddingModel, v))
}

// EmbeddingModelLTE applies the LTE predicate on the "embedding_model" field.
func EmbeddingModelLTE(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldLTE(FieldEmbeddingModel, v))
}

// EmbeddingModelContains applies the Contains predicate on the "embedding_model" field.
func EmbeddingModelContains(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldContains(FieldEmbeddingModel, v))
}

// EmbeddingModelHasPrefix applies the HasPrefix predicate on the "embedding_model" field.
func EmbeddingModelHasPrefix(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldHasPrefix(FieldEmbeddingModel, v))
}

// EmbeddingModelHasSuffix applies the HasSuffix predicate on the "embedding_model" field.
func EmbeddingModelHasSuffix(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldHasSuffix(FieldEmbeddingModel, v))
}

// EmbeddingModelEqualFold applies the EqualFold predicate on the "embedding_model" field.
func EmbeddingModelEqualFold(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldEqualFold(FieldEmbeddingModel, v))
}

// EmbeddingModelContainsFold applies the ContainsFold predicate on the "embedding_model" field.
func EmbeddingModelContainsFold(v string) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.FieldContainsFold(FieldEmbeddingModel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CorpusBuildEvent) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CorpusBuildEvent) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CorpusBuildEvent) predicate.CorpusBuildEvent {
	return predicate.CorpusBuildEvent(sql.NotPredicates(p))
}
