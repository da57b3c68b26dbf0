package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/riskdrill/internal/corpus"
	"github.com/abhisek/riskdrill/internal/evaluation"
	"github.com/abhisek/riskdrill/internal/proficiency"
	"github.com/abhisek/riskdrill/internal/questiongen"
	"github.com/abhisek/riskdrill/internal/retrieval"
	"github.com/abhisek/riskdrill/internal/session"
	"github.com/abhisek/riskdrill/internal/store"
)

type fakeRetriever struct {
	err error
}

func (r *fakeRetriever) Retrieve(_ context.Context, topic string, difficulty int) ([]corpus.Chunk, error) {
	if r.err != nil {
		return nil, r.err
	}
	return []corpus.Chunk{{ID: "c00001", Text: "Answer: the maximum tolerable outage.", Topic: topic, Difficulty: difficulty}}, nil
}

type fakeGenerator struct {
	mu       sync.Mutex
	n        int
	failures int
}

func (g *fakeGenerator) Generate(_ context.Context, input questiongen.GenerateInput) (*questiongen.QuestionRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failures > 0 {
		g.failures--
		return nil, &questiongen.GenerationFailure{Attempts: 3, Err: errors.New("model unavailable")}
	}
	g.n++
	return &questiongen.QuestionRecord{
		Text:               fmt.Sprintf("What is question %d?", g.n),
		ReferenceAnswer:    "The reference explanation.",
		SupportingChunkIDs: []string{"c00001"},
		Difficulty:         input.Difficulty,
		Topic:              input.Topic,
	}, nil
}

type fakeEvaluator struct {
	mu     sync.Mutex
	script []bool
	calls  int
}

func (e *fakeEvaluator) Evaluate(_ context.Context, input evaluation.EvaluateInput) (*evaluation.EvaluationResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pass := true
	if e.calls < len(e.script) {
		pass = e.script[e.calls]
	}
	e.calls++
	score := 0.9
	if !pass {
		score = 0.3
	}
	return &evaluation.EvaluationResult{
		Score:           score,
		IsPass:          pass,
		Rationale:       "Because of the cited material.",
		MatchedChunkIDs: input.Question.SupportingChunkIDs,
	}, nil
}

// memSnapshots is an in-memory store.SnapshotRepo.
type memSnapshots struct {
	mu    sync.Mutex
	snaps map[string][]*store.Snapshot
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{snaps: make(map[string][]*store.Snapshot)}
}

func (m *memSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *snap
	m.snaps[snap.UserID] = append(m.snaps[snap.UserID], &copied)
	return nil
}

func (m *memSnapshots) Latest(_ context.Context, userID string) (*store.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.snaps[userID]
	if len(list) == 0 {
		return nil, nil
	}
	copied := *list[len(list)-1]
	return &copied, nil
}

func (m *memSnapshots) Prune(_ context.Context, userID string, keep int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.snaps[userID]
	if len(list) > keep {
		m.snaps[userID] = list[len(list)-keep:]
	}
	return nil
}

func newController(snaps store.SnapshotRepo, script ...bool) (*Controller, *fakeRetriever) {
	prof := proficiency.NewService(proficiency.DefaultConfig(), nil)
	retriever := &fakeRetriever{}
	engine := session.NewEngine(session.DefaultConfig(), prof, retriever,
		&fakeGenerator{}, &fakeEvaluator{script: script}, nil)
	return New(engine, prof, snaps), retriever
}

func TestStartLessonIssuesFirstQuestion(t *testing.T) {
	c, _ := newController(newMemSnapshots())

	reply, err := c.StartLesson(context.Background(), "u1", "rto-rpo")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if reply.Question == nil {
		t.Fatal("expected a question")
	}
	if reply.Question.Number != 1 || reply.Question.Total != 5 {
		t.Errorf("question %d of %d, want 1 of 5", reply.Question.Number, reply.Question.Total)
	}
	if reply.Question.DifficultyName != "Beginner" {
		t.Errorf("difficulty name = %q, want Beginner", reply.Question.DifficultyName)
	}
	if !strings.Contains(reply.Message, "rto-rpo") {
		t.Errorf("message %q should name the topic", reply.Message)
	}
	if !strings.Contains(reply.Message, reply.Question.Text) {
		t.Errorf("message %q should include the question text", reply.Message)
	}
}

func TestStartLessonWhileActiveIsAMessage(t *testing.T) {
	c, _ := newController(nil)
	if _, err := c.StartLesson(context.Background(), "u1", "rto-rpo"); err != nil {
		t.Fatalf("start: %v", err)
	}

	reply, err := c.StartLesson(context.Background(), "u1", "impact-analysis")
	if err != nil {
		t.Fatalf("second start should not error: %v", err)
	}
	if reply.Question != nil {
		t.Error("no question expected")
	}
	if !strings.Contains(reply.Message, "already have a lesson") {
		t.Errorf("message = %q", reply.Message)
	}
}

func TestCorrectAnswerAdvancesToNextQuestion(t *testing.T) {
	c, _ := newController(nil)
	ctx := context.Background()
	if _, err := c.StartLesson(ctx, "u1", "rto-rpo"); err != nil {
		t.Fatalf("start: %v", err)
	}

	reply, err := c.SubmitAnswer(ctx, "u1", "the maximum tolerable outage")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.Contains(reply.Message, "Correct") {
		t.Errorf("message = %q, want correct feedback", reply.Message)
	}
	if reply.Question == nil || reply.Question.Number != 2 {
		t.Fatalf("expected question 2, got %+v", reply.Question)
	}
}

func TestIncorrectAnswerShowsReference(t *testing.T) {
	c, _ := newController(nil, false)
	ctx := context.Background()
	if _, err := c.StartLesson(ctx, "u1", "rto-rpo"); err != nil {
		t.Fatalf("start: %v", err)
	}

	reply, err := c.SubmitAnswer(ctx, "u1", "no idea")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.Contains(reply.Message, "Not quite") {
		t.Errorf("message = %q, want incorrect feedback", reply.Message)
	}
	if !strings.Contains(reply.Message, "The reference explanation.") {
		t.Errorf("message = %q, want the reference answer", reply.Message)
	}
}

func TestLevelUpNotice(t *testing.T) {
	// Streak threshold 2: the second correct answer moves level 1 -> 2.
	c, _ := newController(nil)
	ctx := context.Background()
	if _, err := c.StartLesson(ctx, "u1", "rto-rpo"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := c.SubmitAnswer(ctx, "u1", "a"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	reply, err := c.SubmitAnswer(ctx, "u1", "b")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.Contains(reply.Message, "Level up") {
		t.Errorf("message = %q, want a level-up notice", reply.Message)
	}
	if !strings.Contains(reply.Message, "Basic") {
		t.Errorf("message = %q, want the new tier name", reply.Message)
	}
	if reply.Question.DifficultyName != "Basic" {
		t.Errorf("next question difficulty = %q, want Basic", reply.Question.DifficultyName)
	}
}

func TestAnswerWithoutLessonIsAMessage(t *testing.T) {
	c, _ := newController(nil)

	reply, err := c.SubmitAnswer(context.Background(), "u1", "anything")
	if err != nil {
		t.Fatalf("submit should not error: %v", err)
	}
	if !strings.Contains(reply.Message, "No lesson is in progress") {
		t.Errorf("message = %q", reply.Message)
	}
}

func TestLessonSummaryReply(t *testing.T) {
	// 5 questions, 4 correct: 80% passes.
	c, _ := newController(nil, true, true, true, true, false)
	ctx := context.Background()
	if _, err := c.StartLesson(ctx, "u1", "rto-rpo"); err != nil {
		t.Fatalf("start: %v", err)
	}

	var reply *Reply
	var err error
	for i := 0; i < 5; i++ {
		reply, err = c.SubmitAnswer(ctx, "u1", "answer")
		if err != nil {
			t.Fatalf("submit %d: %v", i+1, err)
		}
	}

	if reply.Summary == nil {
		t.Fatal("expected a lesson summary")
	}
	if !reply.Summary.Passed {
		t.Errorf("success rate %.1f should pass", reply.Summary.SuccessRate)
	}
	if !strings.Contains(reply.Message, "Lesson complete") {
		t.Errorf("message = %q", reply.Message)
	}
	if !strings.Contains(reply.Message, "4 of 5") {
		t.Errorf("message = %q, want the score line", reply.Message)
	}
	if reply.Question != nil {
		t.Error("no further question after completion")
	}
}

func TestEmptyCorpusAbortsStart(t *testing.T) {
	c, retriever := newController(nil)
	retriever.err = retrieval.ErrCorpusExhausted
	ctx := context.Background()

	reply, err := c.StartLesson(ctx, "u1", "rto-rpo")
	if err != nil {
		t.Fatalf("start should not error: %v", err)
	}
	if !strings.Contains(reply.Message, "No study material") {
		t.Errorf("message = %q", reply.Message)
	}

	// The aborted lesson is not left dangling.
	retriever.err = nil
	if reply, err = c.StartLesson(ctx, "u1", "rto-rpo"); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if reply.Question == nil {
		t.Fatal("expected a question after restart")
	}
}

func TestGenerationFailureAtStartKeepsLesson(t *testing.T) {
	prof := proficiency.NewService(proficiency.DefaultConfig(), nil)
	gen := &fakeGenerator{failures: 1}
	engine := session.NewEngine(session.DefaultConfig(), prof, &fakeRetriever{},
		gen, &fakeEvaluator{}, nil)
	c := New(engine, prof, newMemSnapshots())
	ctx := context.Background()

	reply, err := c.StartLesson(ctx, "u1", "rto-rpo")
	if err != nil {
		t.Fatalf("start should not error: %v", err)
	}
	if reply.Question != nil {
		t.Error("no question expected when the first generation fails")
	}
	if !strings.Contains(reply.Message, "rto-rpo") || !strings.Contains(reply.Message, "Try again") {
		t.Errorf("message = %q, want the started lesson and a retry hint", reply.Message)
	}

	// The lesson survived the failure; Continue retries question one.
	next, err := c.Continue(ctx, "u1")
	if err != nil {
		t.Fatalf("continue: %v", err)
	}
	if next.Question == nil || next.Question.Number != 1 {
		t.Fatalf("expected question 1 on retry, got %+v", next.Question)
	}
}

func TestUnexpectedRetrieverErrorPropagates(t *testing.T) {
	c, retriever := newController(nil)
	if _, err := c.StartLesson(context.Background(), "u1", "rto-rpo"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := c.SubmitAnswer(context.Background(), "u1", "a"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := c.Abandon(context.Background(), "u1"); err != nil {
		t.Fatalf("abandon: %v", err)
	}

	retriever.err = errors.New("index offline")
	if _, err := c.StartLesson(context.Background(), "u1", "rto-rpo"); err == nil {
		t.Fatal("infrastructure errors must propagate, not become replies")
	}
}

func TestAbandonReply(t *testing.T) {
	c, _ := newController(nil)
	ctx := context.Background()
	if _, err := c.StartLesson(ctx, "u1", "rto-rpo"); err != nil {
		t.Fatalf("start: %v", err)
	}

	reply, err := c.Abandon(ctx, "u1")
	if err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if !strings.Contains(reply.Message, "abandoned") {
		t.Errorf("message = %q", reply.Message)
	}

	reply, err = c.Abandon(ctx, "u1")
	if err != nil {
		t.Fatalf("second abandon should not error: %v", err)
	}
	if !strings.Contains(reply.Message, "No lesson is in progress") {
		t.Errorf("message = %q", reply.Message)
	}
}

func TestContinueRepresentsPendingQuestion(t *testing.T) {
	c, _ := newController(nil)
	ctx := context.Background()
	start, err := c.StartLesson(ctx, "u1", "rto-rpo")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	reply, err := c.Continue(ctx, "u1")
	if err != nil {
		t.Fatalf("continue: %v", err)
	}
	if reply.Question == nil || reply.Question.Text != start.Question.Text {
		t.Errorf("continue should re-present the open question, got %+v", reply.Question)
	}
}

func TestResumeRestoresLessonAndProficiency(t *testing.T) {
	snaps := newMemSnapshots()
	ctx := context.Background()

	c1, _ := newController(snaps)
	if _, err := c1.StartLesson(ctx, "u1", "rto-rpo"); err != nil {
		t.Fatalf("start: %v", err)
	}
	// Two correct answers: level 2, two questions down.
	for i := 0; i < 2; i++ {
		if _, err := c1.SubmitAnswer(ctx, "u1", "answer"); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	// A fresh process.
	c2, _ := newController(snaps)
	reply, err := c2.Resume(ctx, "u1")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if reply == nil {
		t.Fatal("expected a resumed lesson")
	}
	if !strings.Contains(reply.Message, "rto-rpo") || !strings.Contains(reply.Message, "2 of 5") {
		t.Errorf("message = %q", reply.Message)
	}

	// The restored proficiency drives the next question's difficulty.
	next, err := c2.Continue(ctx, "u1")
	if err != nil {
		t.Fatalf("continue: %v", err)
	}
	if next.Question == nil {
		t.Fatal("expected a question after resume")
	}
	if next.Question.Difficulty != 2 {
		t.Errorf("difficulty = %d, want restored level 2", next.Question.Difficulty)
	}
	if next.Question.Number != 3 {
		t.Errorf("question number = %d, want 3", next.Question.Number)
	}
}

func TestResumeWithNothingSaved(t *testing.T) {
	c, _ := newController(newMemSnapshots())

	reply, err := c.Resume(context.Background(), "u1")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if reply != nil {
		t.Errorf("expected nil reply, got %+v", reply)
	}
}

func TestCompletedLessonLeavesNoLessonInSnapshot(t *testing.T) {
	snaps := newMemSnapshots()
	ctx := context.Background()

	c1, _ := newController(snaps)
	if _, err := c1.StartLesson(ctx, "u1", "rto-rpo"); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 5; i++ {
		if _, err := c1.SubmitAnswer(ctx, "u1", "answer"); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	c2, _ := newController(snaps)
	reply, err := c2.Resume(ctx, "u1")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if reply != nil {
		t.Errorf("finished lesson should not resume, got %+v", reply)
	}
	// Proficiency still restored.
	if _, err := c2.StartLesson(ctx, "u1", "rto-rpo"); err != nil {
		t.Fatalf("start: %v", err)
	}
}
