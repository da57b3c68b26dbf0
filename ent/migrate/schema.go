// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString},
		{Name: "reference_answer", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "passed", Type: field.TypeBool},
		{Name: "rationale", Type: field.TypeString, Default: ""},
		{Name: "supporting_chunks", Type: field.TypeJSON, Nullable: true},
		{Name: "matched_chunks", Type: field.TypeJSON, Nullable: true},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_user_id_topic",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4], AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_passed",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[11]},
			},
		},
	}
	// CorpusBuildEventsColumns holds the columns for the "corpus_build_events" table.
	CorpusBuildEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "version", Type: field.TypeInt64},
		{Name: "source", Type: field.TypeString},
		{Name: "record_count", Type: field.TypeInt},
		{Name: "chunk_count", Type: field.TypeInt},
		{Name: "embedding_model", Type: field.TypeString},
	}
	// CorpusBuildEventsTable holds the schema information for the "corpus_build_events" table.
	CorpusBuildEventsTable = &schema.Table{
		Name:       "corpus_build_events",
		Columns:    CorpusBuildEventsColumns,
		PrimaryKey: []*schema.Column{CorpusBuildEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "corpusbuildevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CorpusBuildEventsColumns[1]},
			},
			{
				Name:    "corpusbuildevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CorpusBuildEventsColumns[2]},
			},
			{
				Name:    "corpusbuildevent_version",
				Unique:  false,
				Columns: []*schema.Column{CorpusBuildEventsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ProficiencyEventsColumns holds the columns for the "proficiency_events" table.
	ProficiencyEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "passed", Type: field.TypeBool},
		{Name: "level_before", Type: field.TypeInt},
		{Name: "level_after", Type: field.TypeInt},
		{Name: "consecutive_correct", Type: field.TypeInt},
		{Name: "consecutive_incorrect", Type: field.TypeInt},
	}
	// ProficiencyEventsTable holds the schema information for the "proficiency_events" table.
	ProficiencyEventsTable = &schema.Table{
		Name:       "proficiency_events",
		Columns:    ProficiencyEventsColumns,
		PrimaryKey: []*schema.Column{ProficiencyEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "proficiencyevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProficiencyEventsColumns[1]},
			},
			{
				Name:    "proficiencyevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProficiencyEventsColumns[2]},
			},
			{
				Name:    "proficiencyevent_user_id_topic",
				Unique:  false,
				Columns: []*schema.Column{ProficiencyEventsColumns[3], ProficiencyEventsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "success_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "passed", Type: field.TypeBool, Default: false},
		{Name: "final_difficulty", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		CorpusBuildEventsTable,
		LlmRequestEventsTable,
		ProficiencyEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
