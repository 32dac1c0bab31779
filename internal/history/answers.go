package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AnswerEvent struct {
	SessionID  string
	SourceBase int
	TargetBase int
	Operand    int
	Input      string
	Correct    bool
	Points     int
	ShownAt    time.Time
	AnsweredAt time.Time
	ReactionMs int
}

const insertAnswer = `
	INSERT INTO answers (id, session_id, source_base, target_base, operand, input, correct, points, shown_at, answered_at, reaction_ms)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// BatchRecordAnswers stores events in one transaction.
func (d *DB) BatchRecordAnswers(ctx context.Context, events []AnswerEvent) error {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, d.rebind(insertAnswer))
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, ev := range events {
		_, err := stmt.ExecContext(ctx,
			uuid.NewString(), ev.SessionID, ev.SourceBase, ev.TargetBase, ev.Operand, ev.Input,
			boolInt(ev.Correct), ev.Points, ev.ShownAt.UnixMilli(), ev.AnsweredAt.UnixMilli(), ev.ReactionMs)
		if err != nil {
			return fmt.Errorf("recording answer in batch: %w", err)
		}
	}

	return tx.Commit()
}
