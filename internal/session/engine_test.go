package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/abhisek/riskdrill/internal/corpus"
	"github.com/abhisek/riskdrill/internal/evaluation"
	"github.com/abhisek/riskdrill/internal/proficiency"
	"github.com/abhisek/riskdrill/internal/questiongen"
	"github.com/abhisek/riskdrill/internal/store"
)

// stubRetriever returns canned passages and records requested difficulties.
type stubRetriever struct {
	mu           sync.Mutex
	difficulties []int
	err          error
}

func (r *stubRetriever) Retrieve(_ context.Context, topic string, difficulty int) ([]corpus.Chunk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.difficulties = append(r.difficulties, difficulty)
	return []corpus.Chunk{
		{ID: "c00001", Text: "Answer: Recovery Time Objective.", Topic: topic, Difficulty: difficulty},
	}, nil
}

// stubGenerator produces numbered questions, or fails n times first.
type stubGenerator struct {
	mu       sync.Mutex
	n        int
	failures int
}

func (g *stubGenerator) Generate(_ context.Context, input questiongen.GenerateInput) (*questiongen.QuestionRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failures > 0 {
		g.failures--
		return nil, &questiongen.GenerationFailure{Attempts: 3, Err: errors.New("model unavailable")}
	}
	g.n++
	return &questiongen.QuestionRecord{
		Text:               fmt.Sprintf("Question %d about %s?", g.n, input.Topic),
		ReferenceAnswer:    "Reference.",
		SupportingChunkIDs: []string{"c00001"},
		Difficulty:         input.Difficulty,
		Topic:              input.Topic,
	}, nil
}

// stubEvaluator grades answers by a scripted pass/fail sequence.
type stubEvaluator struct {
	mu     sync.Mutex
	script []bool
	calls  int
	err    error
}

func (e *stubEvaluator) Evaluate(_ context.Context, input evaluation.EvaluateInput) (*evaluation.EvaluationResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return nil, e.err
	}
	pass := true
	if e.calls < len(e.script) {
		pass = e.script[e.calls]
	}
	e.calls++
	score := 0.9
	if !pass {
		score = 0.2
	}
	return &evaluation.EvaluationResult{
		Score:           score,
		IsPass:          pass,
		Rationale:       "Scripted grade.",
		MatchedChunkIDs: input.Question.SupportingChunkIDs,
	}, nil
}

// recordingEvents captures lesson events in order.
type recordingEvents struct {
	mu        sync.Mutex
	sessions  []store.SessionEventData
	answers   []store.AnswerEventData
	answerErr error
}

func (r *recordingEvents) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, data)
	return nil
}

func (r *recordingEvents) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.answerErr != nil {
		return r.answerErr
	}
	r.answers = append(r.answers, data)
	return nil
}

func (r *recordingEvents) setAnswerErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answerErr = err
}

type fixture struct {
	engine    *Engine
	prof      *proficiency.Service
	retriever *stubRetriever
	generator *stubGenerator
	evaluator *stubEvaluator
	events    *recordingEvents
}

func newFixture(cfg Config, script ...bool) *fixture {
	f := &fixture{
		prof:      proficiency.NewService(proficiency.DefaultConfig(), nil),
		retriever: &stubRetriever{},
		generator: &stubGenerator{},
		evaluator: &stubEvaluator{script: script},
		events:    &recordingEvents{},
	}
	f.engine = NewEngine(cfg, f.prof, f.retriever, f.generator, f.evaluator, f.events)
	return f
}

func mustStart(t *testing.T, f *fixture, user, topic string) {
	t.Helper()
	if _, err := f.engine.StartLesson(context.Background(), user, topic); err != nil {
		t.Fatalf("start lesson: %v", err)
	}
}

func mustAsk(t *testing.T, f *fixture, user string) *questiongen.QuestionRecord {
	t.Helper()
	q, err := f.engine.NextQuestion(context.Background(), user)
	if err != nil {
		t.Fatalf("next question: %v", err)
	}
	return q
}

func mustAnswer(t *testing.T, f *fixture, user, answer string) *AnswerOutcome {
	t.Helper()
	out, err := f.engine.SubmitAnswer(context.Background(), user, answer)
	if err != nil {
		t.Fatalf("submit answer: %v", err)
	}
	return out
}

func TestStartLessonRejectsSecondSession(t *testing.T) {
	f := newFixture(DefaultConfig())
	mustStart(t, f, "u1", "rto-rpo")

	_, err := f.engine.StartLesson(context.Background(), "u1", "impact-analysis")
	if !errors.Is(err, ErrSessionAlreadyActive) {
		t.Fatalf("err = %v, want ErrSessionAlreadyActive", err)
	}
}

func TestSubmitWithoutSessionFails(t *testing.T) {
	f := newFixture(DefaultConfig())

	_, err := f.engine.SubmitAnswer(context.Background(), "u1", "an answer")
	if !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("err = %v, want ErrNoActiveSession", err)
	}
}

func TestSubmitBetweenQuestionsFailsUnchanged(t *testing.T) {
	f := newFixture(DefaultConfig())
	mustStart(t, f, "u1", "rto-rpo")

	before := *f.engine.Current("u1")
	_, err := f.engine.SubmitAnswer(context.Background(), "u1", "too early")
	if !errors.Is(err, ErrUnexpectedAnswer) {
		t.Fatalf("err = %v, want ErrUnexpectedAnswer", err)
	}
	after := f.engine.Current("u1")
	if after.Phase != before.Phase || after.QuestionsAnswered != before.QuestionsAnswered {
		t.Error("state changed by a rejected answer")
	}
}

func TestLessonCompletesAfterExactlyConfiguredQuestions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QuestionsPerLesson = 3
	f := newFixture(cfg)
	mustStart(t, f, "u1", "rto-rpo")

	for i := 0; i < 2; i++ {
		mustAsk(t, f, "u1")
		out := mustAnswer(t, f, "u1", "answer")
		if out.Summary != nil {
			t.Fatalf("lesson completed early at question %d", i+1)
		}
		if f.engine.Current("u1").Phase != PhaseBetweenQuestions {
			t.Fatalf("phase = %s, want between_questions", f.engine.Current("u1").Phase)
		}
	}

	mustAsk(t, f, "u1")
	out := mustAnswer(t, f, "u1", "answer")
	if out.Summary == nil {
		t.Fatal("expected lesson summary on final answer")
	}
	if out.Summary.QuestionsAnswered != 3 {
		t.Errorf("questions answered = %d, want 3", out.Summary.QuestionsAnswered)
	}

	// The lesson is gone: another answer has no session to land in.
	if _, err := f.engine.SubmitAnswer(context.Background(), "u1", "extra"); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("err = %v, want ErrNoActiveSession after completion", err)
	}
}

func TestLessonOutcomeNeedsRetry(t *testing.T) {
	// 3 questions, 2 correct: 66.7% < 80% means needs-retry.
	cfg := DefaultConfig()
	cfg.QuestionsPerLesson = 3
	f := newFixture(cfg, true, true, false)
	mustStart(t, f, "u1", "rto-rpo")

	var out *AnswerOutcome
	for i := 0; i < 3; i++ {
		mustAsk(t, f, "u1")
		out = mustAnswer(t, f, "u1", "answer")
	}

	if out.Summary == nil {
		t.Fatal("expected summary")
	}
	if out.Summary.Passed {
		t.Error("lesson at 66.7%% should need retry")
	}
	if out.Summary.SuccessRate < 66 || out.Summary.SuccessRate > 67 {
		t.Errorf("success rate = %f, want ~66.7", out.Summary.SuccessRate)
	}
	if out.Summary.CorrectAnswers != 2 {
		t.Errorf("correct = %d, want 2", out.Summary.CorrectAnswers)
	}
}

func TestLessonOutcomePassed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QuestionsPerLesson = 5
	f := newFixture(cfg, true, true, true, true, false)
	mustStart(t, f, "u1", "rto-rpo")

	var out *AnswerOutcome
	for i := 0; i < 5; i++ {
		mustAsk(t, f, "u1")
		out = mustAnswer(t, f, "u1", "answer")
	}

	if !out.Summary.Passed {
		t.Errorf("success rate = %f, want passed at 80%%", out.Summary.SuccessRate)
	}
}

func TestDifficultyAdaptsWithinLesson(t *testing.T) {
	// Streak threshold 2: after two passes the third question is
	// issued at level 2.
	f := newFixture(DefaultConfig())
	mustStart(t, f, "u1", "rto-rpo")

	for i := 0; i < 3; i++ {
		mustAsk(t, f, "u1")
		mustAnswer(t, f, "u1", "answer")
	}

	want := []int{1, 1, 2}
	f.retriever.mu.Lock()
	got := append([]int(nil), f.retriever.difficulties...)
	f.retriever.mu.Unlock()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("difficulties = %v, want %v", got, want)
		}
	}
}

func TestGenerationFailureKeepsLessonAlive(t *testing.T) {
	f := newFixture(DefaultConfig())
	f.generator.failures = 1
	mustStart(t, f, "u1", "rto-rpo")

	_, err := f.engine.NextQuestion(context.Background(), "u1")
	var gf *questiongen.GenerationFailure
	if !errors.As(err, &gf) {
		t.Fatalf("err = %v, want *GenerationFailure", err)
	}
	if phase := f.engine.Current("u1").Phase; phase != PhaseBetweenQuestions {
		t.Fatalf("phase = %s, want between_questions after failure", phase)
	}

	// The retry succeeds and the lesson continues.
	mustAsk(t, f, "u1")
	if phase := f.engine.Current("u1").Phase; phase != PhaseAwaitingAnswer {
		t.Fatalf("phase = %s, want awaiting_answer", phase)
	}
}

func TestRecordFailureAppliesNoProficiencyUpdate(t *testing.T) {
	// When the answer event cannot be recorded, nothing may commit:
	// the question stays pending, and the resubmission applies exactly
	// one proficiency update, not two.
	f := newFixture(DefaultConfig())
	mustStart(t, f, "u1", "rto-rpo")
	mustAsk(t, f, "u1")

	f.events.setAnswerErr(errors.New("disk full"))
	if _, err := f.engine.SubmitAnswer(context.Background(), "u1", "answer"); err == nil {
		t.Fatal("expected error when the answer cannot be recorded")
	}

	s := f.engine.Current("u1")
	if s.Phase != PhaseAwaitingAnswer || s.Pending == nil {
		t.Fatalf("phase = %s, want awaiting_answer with question still pending", s.Phase)
	}
	if s.QuestionsAnswered != 0 {
		t.Errorf("lesson counted %d answers before one was recorded", s.QuestionsAnswered)
	}
	p := f.prof.Current("u1", "rto-rpo")
	if p.QuestionsAnswered != 0 || p.ConsecutiveCorrect != 0 {
		t.Errorf("proficiency moved on a failed record: answered=%d streak=%d",
			p.QuestionsAnswered, p.ConsecutiveCorrect)
	}

	f.events.setAnswerErr(nil)
	out := mustAnswer(t, f, "u1", "answer")
	if out.QuestionsAnswered != 1 {
		t.Errorf("questions answered = %d, want 1", out.QuestionsAnswered)
	}
	p = f.prof.Current("u1", "rto-rpo")
	if p.QuestionsAnswered != 1 || p.ConsecutiveCorrect != 1 || p.Level != 1 {
		t.Errorf("one pass counted as more: answered=%d streak=%d level=%d",
			p.QuestionsAnswered, p.ConsecutiveCorrect, p.Level)
	}
	if len(f.events.answers) != 1 {
		t.Errorf("answer events = %d, want 1", len(f.events.answers))
	}
}

func TestNextQuestionWhileAwaitingAnswerFails(t *testing.T) {
	f := newFixture(DefaultConfig())
	mustStart(t, f, "u1", "rto-rpo")
	mustAsk(t, f, "u1")

	if _, err := f.engine.NextQuestion(context.Background(), "u1"); err == nil {
		t.Fatal("expected error issuing a question over a pending one")
	}
}

func TestAbandonDiscardsWithoutProficiencyChange(t *testing.T) {
	f := newFixture(DefaultConfig())
	mustStart(t, f, "u1", "rto-rpo")
	mustAsk(t, f, "u1")

	before := f.prof.Current("u1", "rto-rpo")
	if err := f.engine.Abandon(context.Background(), "u1"); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if after := f.prof.Current("u1", "rto-rpo"); after != before {
		t.Error("abandon changed proficiency")
	}
	if f.engine.Current("u1") != nil {
		t.Error("expected no live session after abandon")
	}

	// A fresh lesson can start.
	mustStart(t, f, "u1", "rto-rpo")
}

func TestAbandonWithoutSessionFails(t *testing.T) {
	f := newFixture(DefaultConfig())
	if err := f.engine.Abandon(context.Background(), "u1"); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("err = %v, want ErrNoActiveSession", err)
	}
}

func TestPendingQuestionInvariant(t *testing.T) {
	f := newFixture(DefaultConfig())
	mustStart(t, f, "u1", "rto-rpo")

	if s := f.engine.Current("u1"); s.Pending != nil {
		t.Error("between_questions must have no pending question")
	}
	mustAsk(t, f, "u1")
	if s := f.engine.Current("u1"); s.Pending == nil {
		t.Error("awaiting_answer must have a pending question")
	}
	mustAnswer(t, f, "u1", "answer")
	if s := f.engine.Current("u1"); s.Pending != nil {
		t.Error("pending question must be cleared after grading")
	}
}

func TestEventLogOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QuestionsPerLesson = 2
	f := newFixture(cfg)
	mustStart(t, f, "u1", "rto-rpo")
	for i := 0; i < 2; i++ {
		mustAsk(t, f, "u1")
		mustAnswer(t, f, "u1", "answer")
	}

	if len(f.events.sessions) != 2 {
		t.Fatalf("session events = %d, want 2 (start, complete)", len(f.events.sessions))
	}
	if f.events.sessions[0].Action != "start" || f.events.sessions[1].Action != "complete" {
		t.Errorf("actions = %s, %s; want start, complete",
			f.events.sessions[0].Action, f.events.sessions[1].Action)
	}
	if len(f.events.answers) != 2 {
		t.Fatalf("answer events = %d, want 2", len(f.events.answers))
	}
	if f.events.answers[0].SessionID != f.events.sessions[0].SessionID {
		t.Error("answer events should carry the lesson's session id")
	}
}

func TestRestoreResumesLesson(t *testing.T) {
	f := newFixture(DefaultConfig())
	mustStart(t, f, "u1", "rto-rpo")
	mustAsk(t, f, "u1")
	mustAnswer(t, f, "u1", "answer")
	mustAsk(t, f, "u1")

	snap := f.engine.SnapshotData("u1")
	if snap == nil {
		t.Fatal("expected snapshot data for live lesson")
	}
	if snap.Pending == nil {
		t.Fatal("expected pending question recorded in snapshot")
	}

	// Simulate a restart with a fresh engine.
	f2 := newFixture(DefaultConfig())
	if err := f2.engine.Restore("u1", snap); err != nil {
		t.Fatalf("restore: %v", err)
	}

	s := f2.engine.Current("u1")
	if s == nil {
		t.Fatal("expected restored session")
	}
	if s.Phase != PhaseBetweenQuestions {
		t.Errorf("phase = %s, want between_questions (pending question dropped)", s.Phase)
	}
	if s.QuestionsAnswered != 1 {
		t.Errorf("questions answered = %d, want 1", s.QuestionsAnswered)
	}
	if s.SessionID != snap.SessionID {
		t.Error("restored session should keep its id")
	}

	// The lesson continues to completion.
	for i := 0; i < 4; i++ {
		mustAsk(t, f2, "u1")
		out := mustAnswer(t, f2, "u1", "answer")
		if i == 3 && out.Summary == nil {
			t.Error("expected completion after 5 total answers")
		}
	}
}

func TestUsersRunIndependently(t *testing.T) {
	f := newFixture(DefaultConfig())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		user := fmt.Sprintf("u%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := context.Background()
			if _, err := f.engine.StartLesson(ctx, user, "rto-rpo"); err != nil {
				t.Errorf("%s start: %v", user, err)
				return
			}
			for j := 0; j < 5; j++ {
				if _, err := f.engine.NextQuestion(ctx, user); err != nil {
					t.Errorf("%s ask: %v", user, err)
					return
				}
				if _, err := f.engine.SubmitAnswer(ctx, user, "answer"); err != nil {
					t.Errorf("%s answer: %v", user, err)
					return
				}
			}
		}()
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		user := fmt.Sprintf("u%d", i)
		if f.engine.Current(user) != nil {
			t.Errorf("%s: expected completed (nil) session", user)
		}
	}
}
