package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CorpusBuildEvent records each corpus index build for versioning and
// stats. Chunks themselves are rebuilt from source, not persisted here.
type CorpusBuildEvent struct {
	ent.Schema
}

func (CorpusBuildEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CorpusBuildEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("version").
			Comment("Monotonic corpus version"),
		field.String("source").
			NotEmpty().
			Comment("Path or name of the JSONL source"),
		field.Int("record_count").
			Comment("Raw records ingested"),
		field.Int("chunk_count").
			Comment("Chunks produced after splitting"),
		field.String("embedding_model").
			Comment("Embedder model ID used for the build"),
	}
}

func (CorpusBuildEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("version"),
	}
}
