package store

import (
	"context"
	"fmt"

	"github.com/abhisek/riskdrill/ent"
	"github.com/abhisek/riskdrill/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetAction(data.Action).
		SetTopic(data.Topic).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetCorrectAnswers(data.CorrectAnswers).
		SetSuccessRate(data.SuccessRate).
		SetPassed(data.Passed).
		SetFinalDifficulty(data.FinalDifficulty).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) LessonSummaries(ctx context.Context, userID string, limit int) ([]LessonSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(
			sessionevent.UserID(userID),
			sessionevent.ActionNEQ("start"),
		).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson summaries: %w", err)
	}

	summaries := make([]LessonSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, LessonSummary{
			SessionID:         e.SessionID,
			Timestamp:         e.Timestamp,
			Topic:             e.Topic,
			Action:            e.Action,
			QuestionsAnswered: e.QuestionsAnswered,
			CorrectAnswers:    e.CorrectAnswers,
			SuccessRate:       e.SuccessRate,
			Passed:            e.Passed,
			FinalDifficulty:   e.FinalDifficulty,
		})
	}
	return summaries, nil
}
