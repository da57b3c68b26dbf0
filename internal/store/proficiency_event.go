package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendProficiencyEvent(ctx context.Context, data ProficiencyEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ProficiencyEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetTopic(data.Topic).
		SetPassed(data.Passed).
		SetLevelBefore(data.LevelBefore).
		SetLevelAfter(data.LevelAfter).
		SetConsecutiveCorrect(data.ConsecutiveCorrect).
		SetConsecutiveIncorrect(data.ConsecutiveIncorrect).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save proficiency event: %w", err)
	}
	return nil
}
