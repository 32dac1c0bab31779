package session

import (
	"fmt"
	"strings"
	"time"

	"hexdrill/internal/leaderboard"
)

// DefaultName is recorded when the player enters an empty name.
const DefaultName = "anonymous"

type Placement struct {
	Category leaderboard.Category
	Position int
	Score    uint16
}

type Outcome struct {
	Placements []Placement
	Name       string
	// Persist is set when the table must be written back: something was
	// inserted, or the table had not reached capacity yet.
	Persist bool
	Records int
}

// NameFunc asks the player for the name to record.
type NameFunc func() (string, error)

// Merge ranks every category of rep against tbl, asks for a name once if
// anything placed, and inserts the placing entries stamped with at.
func Merge(tbl *leaderboard.Table, rep Report, askName NameFunc, at time.Time) (Outcome, error) {
	wasFull := tbl.Full()

	var out Outcome
	for _, c := range leaderboard.Categories() {
		score := rep.Score(c)
		if pos, ok := tbl.Rank(c, score); ok {
			out.Placements = append(out.Placements, Placement{Category: c, Position: pos, Score: score})
		}
	}

	if len(out.Placements) > 0 {
		name, err := askName()
		if err != nil {
			return Outcome{}, fmt.Errorf("asking for name: %w", err)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = DefaultName
		}
		out.Name = leaderboard.TruncateName(name)

		for _, p := range out.Placements {
			if err := tbl.Insert(p.Category, p.Position, leaderboard.NewEntry(out.Name, at, p.Score)); err != nil {
				return Outcome{}, err
			}
		}
	}

	out.Persist = len(out.Placements) > 0 || !wasFull
	out.Records = tbl.Records()
	return out, nil
}
