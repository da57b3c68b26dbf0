// Package session drives a lesson: it selects topic and difficulty,
// issues grounded questions, grades answers, updates proficiency, and
// decides when the lesson ends.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/riskdrill/internal/corpus"
	"github.com/abhisek/riskdrill/internal/evaluation"
	"github.com/abhisek/riskdrill/internal/proficiency"
	"github.com/abhisek/riskdrill/internal/questiongen"
	"github.com/abhisek/riskdrill/internal/store"
)

// Retriever supplies grounded passages for a topic at a difficulty.
// Satisfied by retrieval.Retriever.
type Retriever interface {
	Retrieve(ctx context.Context, topic string, difficulty int) ([]corpus.Chunk, error)
}

// EventAppender records lesson events. Satisfied by store.EventRepo.
type EventAppender interface {
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data store.AnswerEventData) error
}

// LessonSummary is the outcome of a completed lesson.
type LessonSummary struct {
	SessionID         string
	Topic             string
	QuestionsAnswered int
	CorrectAnswers    int
	SuccessRate       float64 // percentage
	Passed            bool    // SuccessRate >= MinLessonScore
	FinalLevel        int
}

// AnswerOutcome reports the result of one graded answer, plus the
// lesson summary when the answer completed the lesson.
type AnswerOutcome struct {
	Evaluation         *evaluation.EvaluationResult
	ReferenceAnswer    string
	Level              int
	LevelChange        int
	QuestionsAnswered  int
	QuestionsRemaining int
	Summary            *LessonSummary
}

// Engine is the lesson state machine. Operations for the same user are
// serialized; different users run concurrently. The engine holds no
// timers: abandonment is the caller's decision.
type Engine struct {
	cfg         Config
	prof        *proficiency.Service
	retriever   Retriever
	generator   questiongen.Generator
	evaluator   evaluation.Evaluator
	events      EventAppender
	newID       func() string

	mu        sync.Mutex
	sessions  map[string]*State
	userLocks map[string]*sync.Mutex
}

// NewEngine creates an Engine. events may be nil to skip the event log.
func NewEngine(cfg Config, prof *proficiency.Service, retriever Retriever, generator questiongen.Generator, evaluator evaluation.Evaluator, events EventAppender) *Engine {
	return &Engine{
		cfg:       cfg,
		prof:      prof,
		retriever: retriever,
		generator: generator,
		evaluator: evaluator,
		events:    events,
		newID:     func() string { return uuid.NewString() },
		sessions:  make(map[string]*State),
		userLocks: make(map[string]*sync.Mutex),
	}
}

// userLock returns the per-user mutex, creating it on first use. All
// engine operations for a user run under this lock, giving the
// single-writer-per-session guarantee without blocking other users.
func (e *Engine) userLock(userID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		e.userLocks[userID] = l
	}
	return l
}

func (e *Engine) session(userID string) *State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessions[userID]
}

func (e *Engine) setSession(userID string, s *State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s == nil {
		delete(e.sessions, userID)
	} else {
		e.sessions[userID] = s
	}
}

// StartLesson begins a lesson on the topic. A user can hold only one
// live lesson; a second start fails with ErrSessionAlreadyActive.
func (e *Engine) StartLesson(ctx context.Context, userID, topic string) (*State, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if existing := e.session(userID); existing != nil {
		return nil, ErrSessionAlreadyActive
	}
	if topic == "" {
		return nil, fmt.Errorf("lesson topic is required")
	}

	s := &State{
		SessionID: e.newID(),
		UserID:    userID,
		Topic:     topic,
		Phase:     PhaseBetweenQuestions,
	}
	e.setSession(userID, s)

	if e.events != nil {
		err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: s.SessionID,
			UserID:    userID,
			Action:    "start",
			Topic:     topic,
		})
		if err != nil {
			return nil, fmt.Errorf("record lesson start: %w", err)
		}
	}

	state := *s
	return &state, nil
}

// NextQuestion issues the next question, moving the lesson to
// AWAITING_ANSWER. Difficulty is the user's current proficiency level
// for the topic at this moment, so adaptation shows up inside a
// lesson. On generation failure the lesson stays between questions and
// the caller may try again.
func (e *Engine) NextQuestion(ctx context.Context, userID string) (*questiongen.QuestionRecord, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s := e.session(userID)
	if s == nil {
		return nil, ErrNoActiveSession
	}
	if s.Phase != PhaseBetweenQuestions {
		return nil, fmt.Errorf("cannot issue a question in phase %s", s.Phase)
	}

	difficulty := e.prof.Current(userID, s.Topic).Level

	passages, err := e.retriever.Retrieve(ctx, s.Topic, difficulty)
	if err != nil {
		return nil, fmt.Errorf("retrieve passages: %w", err)
	}

	q, err := e.generator.Generate(ctx, questiongen.GenerateInput{
		Topic:          s.Topic,
		Difficulty:     difficulty,
		Passages:       passages,
		PriorQuestions: s.AskedQuestions,
	})
	if err != nil {
		// Phase stays BETWEEN_QUESTIONS; the question attempt is
		// aborted, not the lesson.
		return nil, err
	}

	s.Pending = q
	s.PendingPassages = passages
	s.AskedQuestions = append(s.AskedQuestions, q.Text)
	s.Phase = PhaseAwaitingAnswer
	return q, nil
}

// SubmitAnswer grades the pending question's answer, updates
// proficiency, and advances the lesson. Valid only in AWAITING_ANSWER;
// otherwise it fails with ErrUnexpectedAnswer and changes nothing.
func (e *Engine) SubmitAnswer(ctx context.Context, userID, answer string) (*AnswerOutcome, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s := e.session(userID)
	if s == nil {
		return nil, ErrNoActiveSession
	}
	if s.Phase != PhaseAwaitingAnswer || s.Pending == nil {
		return nil, ErrUnexpectedAnswer
	}

	result, err := e.evaluator.Evaluate(ctx, evaluation.EvaluateInput{
		Question:   s.Pending,
		Passages:   s.PendingPassages,
		UserAnswer: answer,
	})
	if err != nil {
		// The answer was not graded; the question stays pending so the
		// user can resubmit.
		return nil, err
	}

	// Record the answer before committing anything: if the append
	// fails the question stays pending and a resubmission must not
	// find a proficiency update already applied.
	if e.events != nil {
		err := e.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:          s.SessionID,
			UserID:             userID,
			Topic:              s.Topic,
			Difficulty:         s.Pending.Difficulty,
			QuestionText:       s.Pending.Text,
			ReferenceAnswer:    s.Pending.ReferenceAnswer,
			UserAnswer:         answer,
			Score:              result.Score,
			Passed:             result.IsPass,
			Rationale:          result.Rationale,
			SupportingChunkIDs: s.Pending.SupportingChunkIDs,
			MatchedChunkIDs:    result.MatchedChunkIDs,
		})
		if err != nil {
			return nil, fmt.Errorf("record answer: %w", err)
		}
	}

	update, err := e.prof.Update(ctx, userID, s.Topic, result.IsPass)
	if err != nil {
		return nil, err
	}

	s.QuestionsAnswered++
	if result.IsPass {
		s.CorrectAnswers++
	}
	reference := s.Pending.ReferenceAnswer
	s.Pending = nil
	s.PendingPassages = nil

	outcome := &AnswerOutcome{
		Evaluation:         result,
		ReferenceAnswer:    reference,
		Level:              update.State.Level,
		LevelChange:        update.LevelChange,
		QuestionsAnswered:  s.QuestionsAnswered,
		QuestionsRemaining: e.cfg.QuestionsPerLesson - s.QuestionsAnswered,
	}

	if s.QuestionsAnswered >= e.cfg.QuestionsPerLesson {
		summary, err := e.completeLocked(ctx, s, update.State.Level)
		if err != nil {
			return nil, err
		}
		outcome.Summary = summary
	} else {
		s.Phase = PhaseBetweenQuestions
	}

	return outcome, nil
}

func (e *Engine) completeLocked(ctx context.Context, s *State, finalLevel int) (*LessonSummary, error) {
	s.Phase = PhaseComplete

	successRate := float64(s.CorrectAnswers) / float64(s.QuestionsAnswered) * 100
	summary := &LessonSummary{
		SessionID:         s.SessionID,
		Topic:             s.Topic,
		QuestionsAnswered: s.QuestionsAnswered,
		CorrectAnswers:    s.CorrectAnswers,
		SuccessRate:       successRate,
		Passed:            successRate >= e.cfg.MinLessonScore,
		FinalLevel:        finalLevel,
	}

	if e.events != nil {
		err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:         s.SessionID,
			UserID:            s.UserID,
			Action:            "complete",
			Topic:             s.Topic,
			QuestionsAnswered: s.QuestionsAnswered,
			CorrectAnswers:    s.CorrectAnswers,
			SuccessRate:       successRate,
			Passed:            summary.Passed,
			FinalDifficulty:   finalLevel,
		})
		if err != nil {
			return nil, fmt.Errorf("record lesson completion: %w", err)
		}
	}

	e.setSession(s.UserID, nil)
	return summary, nil
}

// Abandon discards the user's live lesson without touching
// proficiency. An unanswered pending question counts as neither pass
// nor fail.
func (e *Engine) Abandon(ctx context.Context, userID string) error {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s := e.session(userID)
	if s == nil {
		return ErrNoActiveSession
	}

	if e.events != nil {
		err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:         s.SessionID,
			UserID:            userID,
			Action:            "abandon",
			Topic:             s.Topic,
			QuestionsAnswered: s.QuestionsAnswered,
			CorrectAnswers:    s.CorrectAnswers,
			FinalDifficulty:   e.prof.Current(userID, s.Topic).Level,
		})
		if err != nil {
			return fmt.Errorf("record lesson abandon: %w", err)
		}
	}

	e.setSession(userID, nil)
	return nil
}

// Config returns the engine's lesson configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Current returns a copy of the user's live lesson state, or nil.
func (e *Engine) Current(userID string) *State {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s := e.session(userID)
	if s == nil {
		return nil
	}
	state := *s
	return &state
}

// SnapshotData exports the user's live lesson for persistence, or nil
// when none is active.
func (e *Engine) SnapshotData(userID string) *store.LessonSnapshotData {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s := e.session(userID)
	if s == nil {
		return nil
	}
	return s.snapshotData()
}

// Restore resumes a lesson from a snapshot after a restart. The lesson
// re-enters BETWEEN_QUESTIONS: a question pending at snapshot time was
// never answered, so it is dropped and regenerated on the next
// NextQuestion call.
func (e *Engine) Restore(userID string, data *store.LessonSnapshotData) error {
	if data == nil {
		return nil
	}

	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if e.session(userID) != nil {
		return ErrSessionAlreadyActive
	}
	if Phase(data.Phase) == PhaseComplete {
		return nil
	}

	e.setSession(userID, &State{
		SessionID:         data.SessionID,
		UserID:            userID,
		Topic:             data.Topic,
		Phase:             PhaseBetweenQuestions,
		QuestionsAnswered: data.QuestionsAnswered,
		CorrectAnswers:    data.CorrectAnswers,
	})
	return nil
}
