package stats

import (
	"context"
	"fmt"

	"hexdrill/internal/history"
	"hexdrill/internal/radix"
)

type Queries struct {
	DB *history.DB
}

func NewQueries(database *history.DB) *Queries {
	return &Queries{DB: database}
}

// LifetimeStats aggregates every finished session archived under name.
// PreviousBest and LatestTotal compare the session current against the
// ones before it; current may be empty.
func (q *Queries) LifetimeStats(ctx context.Context, name, current string) (*LifetimeStats, error) {
	stats := &LifetimeStats{PlayerName: name}

	err := q.DB.QueryRow(ctx, `
		SELECT
			COUNT(*) AS sessions_played,
			COALESCE(SUM(total_score), 0) AS total_score,
			COALESCE(MAX(total_score), 0) AS best_session
		FROM sessions
		WHERE player_name = ? AND ended_at IS NOT NULL
	`, name).Scan(&stats.SessionsPlayed, &stats.TotalScore, &stats.BestSession)
	if err != nil {
		return nil, fmt.Errorf("getting lifetime stats: %w", err)
	}

	if current != "" {
		err = q.DB.QueryRow(ctx, `
			SELECT COALESCE(MAX(total_score), 0)
			FROM sessions
			WHERE player_name = ? AND ended_at IS NOT NULL AND id <> ?
		`, name, current).Scan(&stats.PreviousBest)
		if err != nil {
			return nil, fmt.Errorf("getting previous best: %w", err)
		}

		err = q.DB.QueryRow(ctx, `SELECT total_score FROM sessions WHERE id = ?`, current).
			Scan(&stats.LatestTotal)
		if err != nil {
			return nil, fmt.Errorf("getting current session: %w", err)
		}
	}

	stats.Badges = EvaluateLifetimeBadges(*stats)

	return stats, nil
}

// PairAccuracy reports per-conversion accuracy for name, in play order.
// Pairs the player never answered are omitted.
func (q *Queries) PairAccuracy(ctx context.Context, name string) ([]PairAccuracy, error) {
	rows, err := q.DB.Query(ctx, `
		SELECT
			a.source_base,
			a.target_base,
			COUNT(*) AS answers,
			COALESCE(SUM(a.correct), 0) AS correct,
			COALESCE(AVG(a.reaction_ms), 0) AS avg_reaction
		FROM answers a
		JOIN sessions s ON s.id = a.session_id
		WHERE s.player_name = ?
		GROUP BY a.source_base, a.target_base
	`, name)
	if err != nil {
		return nil, fmt.Errorf("getting pair accuracy: %w", err)
	}
	defer rows.Close()

	byPair := make(map[radix.Pair]PairAccuracy)
	for rows.Next() {
		var (
			src, dst int
			acc      PairAccuracy
		)
		if err := rows.Scan(&src, &dst, &acc.Answers, &acc.Correct, &acc.AvgReaction); err != nil {
			return nil, err
		}
		acc.Pair = radix.Pair{Source: radix.Base(src), Target: radix.Base(dst)}
		if acc.Answers > 0 {
			acc.Rate = float64(acc.Correct) / float64(acc.Answers) * 100
		}
		byPair[acc.Pair] = acc
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var out []PairAccuracy
	for _, p := range radix.Pairs() {
		if acc, ok := byPair[p]; ok {
			out = append(out, acc)
		}
	}
	return out, nil
}
