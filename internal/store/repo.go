package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// TopicProficiencyData is the persisted proficiency state for one topic.
type TopicProficiencyData struct {
	Level                int       `json:"level"`
	ConsecutiveCorrect   int       `json:"consecutive_correct"`
	ConsecutiveIncorrect int       `json:"consecutive_incorrect"`
	QuestionsAnswered    int       `json:"questions_answered"`
	CorrectAnswers       int       `json:"correct_answers"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// PendingQuestionData is a question that was issued but not yet answered
// when the snapshot was taken.
type PendingQuestionData struct {
	QuestionText       string   `json:"question_text"`
	ReferenceAnswer    string   `json:"reference_answer"`
	Difficulty         int      `json:"difficulty"`
	SupportingChunkIDs []string `json:"supporting_chunk_ids"`
}

// LessonSnapshotData captures an in-flight lesson so it can be resumed
// after a restart.
type LessonSnapshotData struct {
	SessionID         string               `json:"session_id"`
	Topic             string               `json:"topic"`
	Phase             string               `json:"phase"`
	QuestionsAnswered int                  `json:"questions_answered"`
	CorrectAnswers    int                  `json:"correct_answers"`
	Pending           *PendingQuestionData `json:"pending,omitempty"`
}

// SnapshotData captures one learner's full state at a point in time.
type SnapshotData struct {
	Version     int                             `json:"version"`
	Proficiency map[string]TopicProficiencyData `json:"proficiency,omitempty"`
	Lesson      *LessonSnapshotData             `json:"lesson,omitempty"`
}

// Snapshot represents a point-in-time capture of one learner's state.
type Snapshot struct {
	ID        int
	UserID    string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots, keyed by user.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the user's most recent snapshot, or nil if none exist.
	Latest(ctx context.Context, userID string) (*Snapshot, error)

	// Prune deletes all but the user's N most recent snapshots.
	Prune(ctx context.Context, userID string, keep int) error
}

// AnswerEventData captures one evaluated answer within a lesson.
type AnswerEventData struct {
	SessionID          string
	UserID             string
	Topic              string
	Difficulty         int
	QuestionText       string
	ReferenceAnswer    string
	UserAnswer         string
	Score              float64
	Passed             bool
	Rationale          string
	SupportingChunkIDs []string
	MatchedChunkIDs    []string
}

// SessionEventData captures a lesson lifecycle transition.
type SessionEventData struct {
	SessionID         string
	UserID            string
	Action            string // start, complete, abandon
	Topic             string
	QuestionsAnswered int
	CorrectAnswers    int
	SuccessRate       float64
	Passed            bool
	FinalDifficulty   int
}

// ProficiencyEventData captures one proficiency update.
type ProficiencyEventData struct {
	UserID               string
	Topic                string
	Passed               bool
	LevelBefore          int
	LevelAfter           int
	ConsecutiveCorrect   int
	ConsecutiveIncorrect int
}

// CorpusBuildEventData captures one corpus index build.
type CorpusBuildEventData struct {
	Version        int64
	Source         string
	RecordCount    int
	ChunkCount     int
	EmbeddingModel string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event, as read back for inspection.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// LessonSummary is a completed or abandoned lesson, as read back for stats.
type LessonSummary struct {
	SessionID         string
	Timestamp         time.Time
	Topic             string
	Action            string
	QuestionsAnswered int
	CorrectAnswers    int
	SuccessRate       float64
	Passed            bool
	FinalDifficulty   int
}

// CorpusBuild is a stored corpus build event, as read back for stats.
type CorpusBuild struct {
	Timestamp      time.Time
	Version        int64
	Source         string
	RecordCount    int
	ChunkCount     int
	EmbeddingModel string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswerEvent records one evaluated answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendSessionEvent records a lesson lifecycle transition.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendProficiencyEvent records a proficiency update.
	AppendProficiencyEvent(ctx context.Context, data ProficiencyEventData) error

	// AppendCorpusBuildEvent records a corpus index build.
	AppendCorpusBuildEvent(ctx context.Context, data CorpusBuildEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// TopicAccuracy returns the pass rate and answer count for a user/topic.
	TopicAccuracy(ctx context.Context, userID, topic string) (float64, int, error)

	// LessonSummaries returns the user's most recent lessons, newest first.
	LessonSummaries(ctx context.Context, userID string, limit int) ([]LessonSummary, error)

	// LatestCorpusBuild returns the most recent corpus build, or nil if
	// no corpus has been built yet.
	LatestCorpusBuild(ctx context.Context) (*CorpusBuild, error)

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
