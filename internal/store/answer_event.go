package store

import (
	"context"
	"fmt"

	"github.com/abhisek/riskdrill/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetTopic(data.Topic).
		SetDifficulty(data.Difficulty).
		SetQuestionText(data.QuestionText).
		SetReferenceAnswer(data.ReferenceAnswer).
		SetUserAnswer(data.UserAnswer).
		SetScore(data.Score).
		SetPassed(data.Passed).
		SetRationale(data.Rationale)

	if len(data.SupportingChunkIDs) > 0 {
		builder = builder.SetSupportingChunks(data.SupportingChunkIDs)
	}
	if len(data.MatchedChunkIDs) > 0 {
		builder = builder.SetMatchedChunks(data.MatchedChunkIDs)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) TopicAccuracy(ctx context.Context, userID, topic string) (float64, int, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.UserID(userID),
			answerevent.Topic(topic),
		).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query topic answers: %w", err)
	}

	count := len(events)
	if count == 0 {
		return 0, 0, nil
	}

	passed := 0
	for _, e := range events {
		if e.Passed {
			passed++
		}
	}
	return float64(passed) / float64(count), count, nil
}
