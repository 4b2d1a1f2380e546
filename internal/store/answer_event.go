package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionKey(data.SessionKey).
		SetNodeID(data.NodeID).
		SetQuestionID(data.QuestionID).
		SetAnswerIndex(data.AnswerIndex).
		SetCorrect(data.Correct).
		SetCompleted(data.Completed).
		SetUnlockedCount(data.UnlockedCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
