package round

import (
	"math"
	"time"

	"hexdrill/internal/radix"
)

type Answer struct {
	Operand    uint8
	Input      string
	Correct    bool
	Points     int
	ShownAt    time.Time
	AnsweredAt time.Time
}

func (a Answer) Reaction() time.Duration {
	return a.AnsweredAt.Sub(a.ShownAt)
}

// Result is everything one round produced.
type Result struct {
	Number    int
	Pair      radix.Pair
	Score     uint16
	Correct   int
	Wrong     int
	Answers   []Answer
	StartedAt time.Time
	EndedAt   time.Time
}

// AddScore adds points to s, saturating at the largest uint16.
func AddScore(s uint16, points int) uint16 {
	sum := int(s) + points
	if sum > math.MaxUint16 {
		return math.MaxUint16
	}
	if sum < 0 {
		return 0
	}
	return uint16(sum)
}
