package session

import (
	"github.com/abhisek/riskdrill/internal/corpus"
	"github.com/abhisek/riskdrill/internal/questiongen"
	"github.com/abhisek/riskdrill/internal/store"
)

// Phase is the lesson state machine phase.
type Phase string

const (
	PhaseNotStarted       Phase = "not_started"
	PhaseBetweenQuestions Phase = "between_questions"
	PhaseAwaitingAnswer   Phase = "awaiting_answer"
	PhaseComplete         Phase = "complete"
)

// State is one live lesson. Invariant: Pending is non-nil exactly in
// PhaseAwaitingAnswer.
type State struct {
	SessionID         string
	UserID            string
	Topic             string
	Phase             Phase
	QuestionsAnswered int
	CorrectAnswers    int
	AskedQuestions    []string

	Pending         *questiongen.QuestionRecord
	PendingPassages []corpus.Chunk
}

// snapshotData exports the lesson for persistence. The pending
// question, if any, is recorded for audit, but on restore the lesson
// resumes between questions and the question is regenerated.
func (s *State) snapshotData() *store.LessonSnapshotData {
	data := &store.LessonSnapshotData{
		SessionID:         s.SessionID,
		Topic:             s.Topic,
		Phase:             string(s.Phase),
		QuestionsAnswered: s.QuestionsAnswered,
		CorrectAnswers:    s.CorrectAnswers,
	}
	if s.Pending != nil {
		data.Pending = &store.PendingQuestionData{
			QuestionText:       s.Pending.Text,
			ReferenceAnswer:    s.Pending.ReferenceAnswer,
			Difficulty:         s.Pending.Difficulty,
			SupportingChunkIDs: s.Pending.SupportingChunkIDs,
		}
	}
	return data
}
