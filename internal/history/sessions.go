package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SessionRecord struct {
	ID         string
	PlayerName string
	StartedAt  time.Time
	EndedAt    *time.Time
	TotalScore int
}

func (d *DB) CreateSession(ctx context.Context, playerName string, startedAt time.Time) (string, error) {
	id := uuid.NewString()
	_, err := d.Exec(ctx, `
		INSERT INTO sessions (id, player_name, started_at)
		VALUES (?, ?, ?)
	`, id, playerName, startedAt.Unix())
	if err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}
	return id, nil
}

func (d *DB) EndSession(ctx context.Context, sessionID string, endedAt time.Time, totalScore int) error {
	_, err := d.Exec(ctx, `
		UPDATE sessions SET ended_at = ?, total_score = ? WHERE id = ?
	`, endedAt.Unix(), totalScore, sessionID)
	if err != nil {
		return fmt.Errorf("ending session: %w", err)
	}
	return nil
}

func (d *DB) GetSession(ctx context.Context, sessionID string) (*SessionRecord, error) {
	var (
		s       SessionRecord
		started int64
		ended   *int64
	)
	err := d.QueryRow(ctx, `
		SELECT id, player_name, started_at, ended_at, total_score FROM sessions WHERE id = ?
	`, sessionID).Scan(&s.ID, &s.PlayerName, &started, &ended, &s.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("getting session: %w", err)
	}
	s.StartedAt = time.Unix(started, 0)
	if ended != nil {
		t := time.Unix(*ended, 0)
		s.EndedAt = &t
	}
	return &s, nil
}

type RoundRecord struct {
	SessionID  string
	SourceBase int
	TargetBase int
	Score      int
	Correct    int
	Wrong      int
}

func (d *DB) RecordRound(ctx context.Context, r RoundRecord) error {
	_, err := d.Exec(ctx, `
		INSERT INTO round_scores (session_id, source_base, target_base, score, correct, wrong)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (session_id, source_base, target_base)
		DO UPDATE SET score = excluded.score, correct = excluded.correct, wrong = excluded.wrong
	`, r.SessionID, r.SourceBase, r.TargetBase, r.Score, r.Correct, r.Wrong)
	if err != nil {
		return fmt.Errorf("recording round: %w", err)
	}
	return nil
}
