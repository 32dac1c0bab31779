package stats

import (
	"time"

	"hexdrill/internal/radix"
	"hexdrill/internal/session"
)

type SessionStats struct {
	Total        int
	Correct      int
	Wrong        int
	AvgReaction  float64 // milliseconds
	BestReaction int     // milliseconds
	PairsScored  int
	Pairs        int
}

type LifetimeStats struct {
	PlayerName     string
	SessionsPlayed int
	TotalScore     int
	BestSession    int
	PreviousBest   int
	LatestTotal    int
	Badges         []Badge
}

type PairAccuracy struct {
	Pair        radix.Pair
	Answers     int
	Correct     int
	Rate        float64 // percentage of correct answers
	AvgReaction float64 // milliseconds
}

// FromReport summarizes a finished session without touching the archive.
func FromReport(rep session.Report) SessionStats {
	s := SessionStats{Total: int(rep.Total), Pairs: len(rep.Rounds)}
	var (
		reactions time.Duration
		answered  int
	)
	for _, res := range rep.Rounds {
		s.Correct += res.Correct
		s.Wrong += res.Wrong
		if res.Score > 0 {
			s.PairsScored++
		}
		for _, a := range res.Answers {
			r := a.Reaction()
			reactions += r
			answered++
			ms := int(r.Milliseconds())
			if answered == 1 || ms < s.BestReaction {
				s.BestReaction = ms
			}
		}
	}
	if answered > 0 {
		s.AvgReaction = float64(reactions.Milliseconds()) / float64(answered)
	}
	return s
}
