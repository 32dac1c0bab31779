package app

import (
	"context"

	"hexdrill/internal/history"
	"hexdrill/internal/session"
)

// Archive stores a finished session with its rounds and every answer, and
// returns the new session id.
func Archive(ctx context.Context, db *history.DB, name string, rep session.Report) (string, error) {
	id, err := db.CreateSession(ctx, name, rep.StartedAt)
	if err != nil {
		return "", err
	}

	var events []history.AnswerEvent
	for _, res := range rep.Rounds {
		src, dst := int(res.Pair.Source), int(res.Pair.Target)
		err := db.RecordRound(ctx, history.RoundRecord{
			SessionID:  id,
			SourceBase: src,
			TargetBase: dst,
			Score:      int(res.Score),
			Correct:    res.Correct,
			Wrong:      res.Wrong,
		})
		if err != nil {
			return "", err
		}
		for _, ans := range res.Answers {
			events = append(events, history.AnswerEvent{
				SessionID:  id,
				SourceBase: src,
				TargetBase: dst,
				Operand:    int(ans.Operand),
				Input:      ans.Input,
				Correct:    ans.Correct,
				Points:     ans.Points,
				ShownAt:    ans.ShownAt,
				AnsweredAt: ans.AnsweredAt,
				ReactionMs: int(ans.Reaction().Milliseconds()),
			})
		}
	}

	if len(events) > 0 {
		if err := db.BatchRecordAnswers(ctx, events); err != nil {
			return "", err
		}
	}

	if err := db.EndSession(ctx, id, rep.EndedAt, int(rep.Total)); err != nil {
		return "", err
	}
	return id, nil
}
