// Package controller is the request/response boundary in front of the
// lesson engine. A transport (chat adapter, TUI, test harness) sends it
// start/submit/abandon requests and relays the replies verbatim; the
// controller turns engine errors into messages a learner can act on.
package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/riskdrill/internal/proficiency"
	"github.com/abhisek/riskdrill/internal/questiongen"
	"github.com/abhisek/riskdrill/internal/retrieval"
	"github.com/abhisek/riskdrill/internal/session"
	"github.com/abhisek/riskdrill/internal/store"
)

// snapshotVersion is bumped when the snapshot layout changes.
const snapshotVersion = 1

// snapshotsKept is how many snapshots Prune retains per user.
const snapshotsKept = 10

// Question is a question as presented to the learner.
type Question struct {
	Text           string
	Number         int // 1-based position within the lesson
	Total          int
	Difficulty     int
	DifficultyName string
}

// Reply is what the transport relays back to the learner. Message is
// always set; Question and Summary are set when there is a question to
// show or a finished lesson to report.
type Reply struct {
	Message  string
	Question *Question
	Summary  *session.LessonSummary
}

// Controller translates transport requests into engine operations.
type Controller struct {
	engine *session.Engine
	prof   *proficiency.Service
	snaps  store.SnapshotRepo // nil disables persistence

	now func() time.Time
}

// New creates a Controller. snaps may be nil, in which case lessons do
// not survive restarts.
func New(engine *session.Engine, prof *proficiency.Service, snaps store.SnapshotRepo) *Controller {
	return &Controller{
		engine: engine,
		prof:   prof,
		snaps:  snaps,
		now:    time.Now,
	}
}

// StartLesson begins a lesson and issues its first question. Engine
// state violations come back as a Reply message, not an error.
func (c *Controller) StartLesson(ctx context.Context, userID, topic string) (*Reply, error) {
	if _, err := c.engine.StartLesson(ctx, userID, topic); err != nil {
		if errors.Is(err, session.ErrSessionAlreadyActive) {
			return &Reply{Message: msgLessonActive}, nil
		}
		return nil, err
	}

	question, err := c.issueQuestion(ctx, userID)
	if err != nil {
		if errors.Is(err, retrieval.ErrCorpusExhausted) {
			// No material at all: do not leave an empty lesson hanging.
			if abandonErr := c.engine.Abandon(ctx, userID); abandonErr != nil {
				return nil, abandonErr
			}
			return &Reply{Message: msgCorpusEmpty}, nil
		}
		var gf *questiongen.GenerationFailure
		if errors.As(err, &gf) {
			// Transient: the lesson stays between questions and
			// Continue retries the first question.
			if err := c.save(ctx, userID); err != nil {
				return nil, err
			}
			return &Reply{Message: fmt.Sprintf(msgLessonStarted, topic) + "\n\n" + msgGenerationFailed}, nil
		}
		return nil, err
	}

	if err := c.save(ctx, userID); err != nil {
		return nil, err
	}
	return &Reply{
		Message:  fmt.Sprintf(msgLessonStarted, topic) + "\n\n" + questionMessage(question),
		Question: question,
	}, nil
}

// SubmitAnswer grades the learner's answer and replies with feedback
// plus either the next question or the lesson summary.
func (c *Controller) SubmitAnswer(ctx context.Context, userID, answer string) (*Reply, error) {
	outcome, err := c.engine.SubmitAnswer(ctx, userID, answer)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNoActiveSession):
			return &Reply{Message: msgNoLesson}, nil
		case errors.Is(err, session.ErrUnexpectedAnswer):
			return &Reply{Message: msgNoQuestionPending}, nil
		}
		var gf *questiongen.GenerationFailure
		if errors.As(err, &gf) {
			// Grading failed after retries; the question is still
			// pending and can be answered again.
			return &Reply{Message: msgGradingFailed}, nil
		}
		return nil, err
	}

	message := feedbackMessage(outcome)

	if outcome.Summary != nil {
		if err := c.save(ctx, userID); err != nil {
			return nil, err
		}
		return &Reply{
			Message: message + "\n\n" + summaryMessage(outcome.Summary),
			Summary: outcome.Summary,
		}, nil
	}

	next, err := c.nextQuestion(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, userID); err != nil {
		return nil, err
	}
	next.Message = message + "\n\n" + next.Message
	return next, nil
}

// Continue issues the next question of the live lesson. Used after a
// resume, or to retry when question generation failed.
func (c *Controller) Continue(ctx context.Context, userID string) (*Reply, error) {
	state := c.engine.Current(userID)
	if state == nil {
		return &Reply{Message: msgNoLesson}, nil
	}
	if state.Phase == session.PhaseAwaitingAnswer && state.Pending != nil {
		// Re-present the open question instead of erroring.
		question := &Question{
			Text:           state.Pending.Text,
			Number:         state.QuestionsAnswered + 1,
			Total:          c.engine.Config().QuestionsPerLesson,
			Difficulty:     state.Pending.Difficulty,
			DifficultyName: proficiency.LevelName(state.Pending.Difficulty),
		}
		return &Reply{Message: questionMessage(question), Question: question}, nil
	}
	reply, err := c.nextQuestion(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reply.Question != nil {
		if err := c.save(ctx, userID); err != nil {
			return nil, err
		}
	}
	return reply, nil
}

// Abandon ends the learner's lesson without affecting proficiency.
func (c *Controller) Abandon(ctx context.Context, userID string) (*Reply, error) {
	if err := c.engine.Abandon(ctx, userID); err != nil {
		if errors.Is(err, session.ErrNoActiveSession) {
			return &Reply{Message: msgNoLesson}, nil
		}
		return nil, err
	}
	if err := c.save(ctx, userID); err != nil {
		return nil, err
	}
	return &Reply{Message: msgLessonAbandoned}, nil
}

// issueQuestion asks the engine for the next question and formats it
// for presentation. Domain errors pass through untranslated.
func (c *Controller) issueQuestion(ctx context.Context, userID string) (*Question, error) {
	q, err := c.engine.NextQuestion(ctx, userID)
	if err != nil {
		return nil, err
	}

	state := c.engine.Current(userID)
	return &Question{
		Text:           q.Text,
		Number:         state.QuestionsAnswered + 1,
		Total:          c.engine.Config().QuestionsPerLesson,
		Difficulty:     q.Difficulty,
		DifficultyName: proficiency.LevelName(q.Difficulty),
	}, nil
}

// nextQuestion issues the next question as a Reply. Corpus exhaustion
// and generation failure become Reply messages.
func (c *Controller) nextQuestion(ctx context.Context, userID string) (*Reply, error) {
	question, err := c.issueQuestion(ctx, userID)
	if err != nil {
		if errors.Is(err, retrieval.ErrCorpusExhausted) {
			return &Reply{Message: msgCorpusEmpty}, nil
		}
		var gf *questiongen.GenerationFailure
		if errors.As(err, &gf) {
			return &Reply{Message: msgGenerationFailed}, nil
		}
		return nil, err
	}
	return &Reply{
		Message:  questionMessage(question),
		Question: question,
	}, nil
}

// save persists the learner's proficiency and any in-flight lesson.
func (c *Controller) save(ctx context.Context, userID string) error {
	if c.snaps == nil {
		return nil
	}

	data := store.SnapshotData{
		Version:     snapshotVersion,
		Proficiency: c.prof.SnapshotData(userID),
		Lesson:      c.engine.SnapshotData(userID),
	}
	snap := &store.Snapshot{
		UserID:    userID,
		Timestamp: c.now(),
		Data:      data,
	}
	if err := c.snaps.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := c.snaps.Prune(ctx, userID, snapshotsKept); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// Resume restores the learner's state from the latest snapshot. It
// returns a Reply describing the resumed lesson, or nil when there is
// nothing to resume.
func (c *Controller) Resume(ctx context.Context, userID string) (*Reply, error) {
	if c.snaps == nil {
		return nil, nil
	}

	snap, err := c.snaps.Latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return nil, nil
	}

	c.prof.Restore(userID, snap.Data.Proficiency)

	lesson := snap.Data.Lesson
	if lesson == nil {
		return nil, nil
	}
	if err := c.engine.Restore(userID, lesson); err != nil {
		return nil, err
	}
	if c.engine.Current(userID) == nil {
		return nil, nil
	}
	return &Reply{
		Message: fmt.Sprintf(msgLessonResumed, lesson.Topic,
			lesson.QuestionsAnswered, c.engine.Config().QuestionsPerLesson),
	}, nil
}
