package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendTutor(ctx context.Context, data TutorEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TutorEvent.Create().
		SetSequence(seqNum).
		SetKind(data.Kind).
		SetTopic(data.Topic).
		SetQuestionText(data.QuestionText).
		SetCacheHit(data.CacheHit).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save tutor event: %w", err)
	}
	return nil
}
