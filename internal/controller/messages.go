package controller

import (
	"fmt"

	"github.com/abhisek/riskdrill/internal/proficiency"
	"github.com/abhisek/riskdrill/internal/session"
)

const (
	msgLessonActive      = "You already have a lesson in progress. Finish it or abandon it before starting another."
	msgNoLesson          = "No lesson is in progress. Start one to get a question."
	msgNoQuestionPending = "There is no question waiting for an answer right now."
	msgCorpusEmpty       = "No study material is available for this topic yet. Build the corpus first, then try again."
	msgGenerationFailed  = "Couldn't put a question together just now. Try again in a moment."
	msgGradingFailed     = "Couldn't grade that answer just now. Your question is still open, try submitting again."
	msgLessonStarted     = "Starting a lesson on %s."
	msgLessonAbandoned   = "Lesson abandoned. Your proficiency is unchanged."
	msgLessonResumed     = "Resuming your lesson on %s (%d of %d questions answered)."
)

// questionMessage formats a question for display.
func questionMessage(q *Question) string {
	return fmt.Sprintf("Question %d of %d (%s):\n\n%s",
		q.Number, q.Total, q.DifficultyName, q.Text)
}

// feedbackMessage formats the verdict on one answer: the grade, the
// rationale, the reference answer when the learner missed, and any
// level move.
func feedbackMessage(outcome *session.AnswerOutcome) string {
	eval := outcome.Evaluation

	var msg string
	if eval.IsPass {
		msg = fmt.Sprintf("Correct (%.0f%%). %s", eval.Score*100, eval.Rationale)
	} else {
		msg = fmt.Sprintf("Not quite (%.0f%%). %s\n\nReference answer: %s",
			eval.Score*100, eval.Rationale, outcome.ReferenceAnswer)
	}

	switch {
	case outcome.LevelChange > 0:
		msg += fmt.Sprintf("\n\nLevel up! You are now %s (level %d).",
			proficiency.LevelName(outcome.Level), outcome.Level)
	case outcome.LevelChange < 0:
		msg += fmt.Sprintf("\n\nMoving down to %s (level %d) to rebuild the basics.",
			proficiency.LevelName(outcome.Level), outcome.Level)
	}
	return msg
}

// summaryMessage formats the end-of-lesson verdict.
func summaryMessage(s *session.LessonSummary) string {
	verdict := "You passed this lesson."
	if !s.Passed {
		verdict = "Not quite there yet. Run this topic again to pass."
	}
	return fmt.Sprintf("Lesson complete: %d of %d correct (%.0f%%). %s",
		s.CorrectAnswers, s.QuestionsAnswered, s.SuccessRate, verdict)
}
