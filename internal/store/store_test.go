package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "user-1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		UserID:    "user-1",
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Proficiency: map[string]TopicProficiencyData{
				"impact-analysis": {Level: 3, ConsecutiveCorrect: 1},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "user-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.UserID != "user-1" {
		t.Errorf("user_id = %q, want user-1", snap.UserID)
	}
	prof, ok := snap.Data.Proficiency["impact-analysis"]
	if !ok {
		t.Fatal("expected impact-analysis proficiency in snapshot data")
	}
	if prof.Level != 3 {
		t.Errorf("level = %d, want 3", prof.Level)
	}
}

func TestSnapshotScopedByUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	err := repo.Save(ctx, &Snapshot{
		UserID:    "user-a",
		Sequence:  1,
		Timestamp: now,
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err := repo.Latest(ctx, "user-b")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot for a different user")
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "user-1",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx, "user-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "user-1",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "user-1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx, "user-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "user-1",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, "user-1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", UserID: "user-1", Topic: "rto-rpo", Difficulty: 2, QuestionText: "q1", ReferenceAnswer: "a1", UserAnswer: "u1", Score: 0.9, Passed: true, SupportingChunkIDs: []string{"c1", "c2"}},
		{SessionID: "s1", UserID: "user-1", Topic: "rto-rpo", Difficulty: 2, QuestionText: "q2", ReferenceAnswer: "a2", UserAnswer: "u2", Score: 0.3, Passed: false, MatchedChunkIDs: []string{"c1"}},
		{SessionID: "s1", UserID: "user-1", Topic: "rto-rpo", Difficulty: 3, QuestionText: "q3", ReferenceAnswer: "a3", UserAnswer: "u3", Score: 0.8, Passed: true},
		{SessionID: "s2", UserID: "user-2", Topic: "rto-rpo", Difficulty: 1, QuestionText: "q4", ReferenceAnswer: "a4", UserAnswer: "u4", Score: 0.1, Passed: false},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	accuracy, count, err := repo.TopicAccuracy(ctx, "user-1", "rto-rpo")
	if err != nil {
		t.Fatalf("topic accuracy: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if accuracy < 0.66 || accuracy > 0.67 {
		t.Errorf("accuracy = %f, want ~0.667", accuracy)
	}

	// Unknown topic yields no answers.
	_, count, err = repo.TopicAccuracy(ctx, "user-1", "unknown")
	if err != nil {
		t.Fatalf("topic accuracy (unknown): %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestLessonSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", UserID: "user-1", Action: "start", Topic: "impact-analysis"},
		{SessionID: "s1", UserID: "user-1", Action: "complete", Topic: "impact-analysis", QuestionsAnswered: 5, CorrectAnswers: 4, SuccessRate: 80, Passed: true, FinalDifficulty: 3},
		{SessionID: "s2", UserID: "user-1", Action: "start", Topic: "impact-analysis"},
		{SessionID: "s2", UserID: "user-1", Action: "abandon", Topic: "impact-analysis", QuestionsAnswered: 2, CorrectAnswers: 1, FinalDifficulty: 3},
	}
	for i, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	summaries, err := repo.LessonSummaries(ctx, "user-1", 10)
	if err != nil {
		t.Fatalf("lesson summaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2 (start events excluded)", len(summaries))
	}
	// Newest first.
	if summaries[0].Action != "abandon" || summaries[0].SessionID != "s2" {
		t.Errorf("first summary = %s/%s, want s2/abandon", summaries[0].SessionID, summaries[0].Action)
	}
	if summaries[1].Action != "complete" || !summaries[1].Passed {
		t.Errorf("second summary = %s/passed=%v, want complete/passed", summaries[1].Action, summaries[1].Passed)
	}
}

func TestLatestCorpusBuild(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	build, err := repo.LatestCorpusBuild(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if build != nil {
		t.Fatal("expected nil build when none recorded")
	}

	for v := int64(1); v <= 3; v++ {
		err := repo.AppendCorpusBuildEvent(ctx, CorpusBuildEventData{
			Version:        v,
			Source:         "corpus.jsonl",
			RecordCount:    100,
			ChunkCount:     250,
			EmbeddingModel: "mock-32",
		})
		if err != nil {
			t.Fatalf("append %d: %v", v, err)
		}
	}

	build, err = repo.LatestCorpusBuild(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if build == nil {
		t.Fatal("expected non-nil build")
	}
	if build.Version != 3 {
		t.Errorf("version = %d, want 3", build.Version)
	}
	if build.ChunkCount != 250 {
		t.Errorf("chunk count = %d, want 250", build.ChunkCount)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	requests := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true, RequestBody: "req-1", ResponseBody: "resp-1"},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "question-gen", InputTokens: 120, OutputTokens: 60, LatencyMs: 600, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "answer-eval", InputTokens: 200, OutputTokens: 30, LatencyMs: 400, Success: false, ErrorMessage: "rate limited"},
	}
	for i, req := range requests {
		if err := repo.AppendLLMRequest(ctx, req); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	// Newest first.
	if events[0].Purpose != "answer-eval" {
		t.Errorf("first event purpose = %q, want answer-eval", events[0].Purpose)
	}

	got, err := repo.GetLLMEvent(ctx, events[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil event")
	}
	if got.RequestBody != "req-1" || got.ResponseBody != "resp-1" {
		t.Errorf("bodies = %q/%q, want req-1/resp-1", got.RequestBody, got.ResponseBody)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	requests := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "answer-eval", InputTokens: 200, OutputTokens: 30, LatencyMs: 300, Success: true},
	}
	for i, req := range requests {
		if err := repo.AppendLLMRequest(ctx, req); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	// Sorted by purpose: answer-eval, question-gen.
	if byPurpose[1].Purpose != "question-gen" || byPurpose[1].Calls != 2 {
		t.Errorf("question-gen usage = %+v", byPurpose[1])
	}
	if byPurpose[1].InputTokens != 200 || byPurpose[1].AvgLatencyMs != 600 {
		t.Errorf("question-gen tokens/latency = %d/%d, want 200/600",
			byPurpose[1].InputTokens, byPurpose[1].AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
