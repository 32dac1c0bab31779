package session

import (
	"context"
	"fmt"
	"time"

	"hexdrill/internal/leaderboard"
	"hexdrill/internal/radix"
	"hexdrill/internal/round"
)

// Player plays one timed round for a pair.
type Player interface {
	Play(ctx context.Context, number int, pair radix.Pair) (round.Result, error)
}

type Report struct {
	Rounds    []round.Result
	Total     uint16
	StartedAt time.Time
	EndedAt   time.Time
}

// Score returns what the session earned in c.
func (r Report) Score(c leaderboard.Category) uint16 {
	if c.IsTotal() {
		return r.Total
	}
	pair, _ := c.Pair()
	for _, res := range r.Rounds {
		if res.Pair == pair {
			return res.Score
		}
	}
	return 0
}

type Session struct {
	player Player
	now    func() time.Time
}

func New(player Player, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{player: player, now: now}
}

// Play runs one round per pair in order. Any error, including
// round.ErrEndOfInput, stops the session and discards the report.
func (s *Session) Play(ctx context.Context) (Report, error) {
	rep := Report{StartedAt: s.now()}
	for i, pair := range radix.Pairs() {
		res, err := s.player.Play(ctx, i+1, pair)
		if err != nil {
			return Report{}, fmt.Errorf("round %d (%s): %w", i+1, pair, err)
		}
		rep.Rounds = append(rep.Rounds, res)
		rep.Total = round.AddScore(rep.Total, int(res.Score))
	}
	rep.EndedAt = s.now()
	return rep, nil
}
