package term

import (
	"fmt"

	"hexdrill/internal/leaderboard"
	"hexdrill/internal/session"
	"hexdrill/internal/stats"
)

// Summary prints the per-round scores and the session total.
func (c *Console) Summary(rep session.Report) {
	c.printf("\n%s\n", c.s.header.Render("Session summary"))
	for _, res := range rep.Rounds {
		c.printf("  %-26s %6s  %s\n",
			c.title.String(res.Pair.String()),
			c.number(int(res.Score)),
			c.s.dim.Render(fmt.Sprintf("%d right, %d wrong", res.Correct, res.Wrong)))
	}
	c.printf("  %-26s %6s\n", "Total", c.s.score.Render(c.number(int(rep.Total))))
}

// Placements announces every category the session ranked in.
func (c *Console) Placements(out session.Outcome) {
	for _, p := range out.Placements {
		c.printf("New high score for %s: #%d with %s\n",
			c.title.String(p.Category.String()), p.Position+1, c.number(int(p.Score)))
	}
}

// NamePrompt asks for the name to record on the leaderboard.
func (c *Console) NamePrompt() {
	c.printf("Enter your name (up to %d characters): ", leaderboard.MaxNameLen)
}

func (c *Console) Badges(badges []stats.Badge) {
	if len(badges) == 0 {
		return
	}
	c.printf("\n%s\n", c.s.header.Render("Badges earned"))
	for _, b := range badges {
		c.printf("  %s %s  %s\n", b.Icon, c.s.badge.Render(b.Name), c.s.dim.Render(b.Description))
	}
}

func (c *Console) Lifetime(ls *stats.LifetimeStats) {
	if ls == nil || ls.SessionsPlayed == 0 {
		return
	}
	c.printf("\n%s: %s sessions, best %s, %s points overall\n",
		ls.PlayerName, c.number(ls.SessionsPlayed), c.number(ls.BestSession), c.number(ls.TotalScore))
}

func (c *Console) Accuracy(acc []stats.PairAccuracy) {
	if len(acc) == 0 {
		return
	}
	c.printf("%s\n", c.s.header.Render("Accuracy"))
	for _, a := range acc {
		c.printf("  %-26s %5.1f%%  %s\n",
			c.title.String(a.Pair.String()), a.Rate,
			c.s.dim.Render(fmt.Sprintf("avg %.0f ms over %d answers", a.AvgReaction, a.Answers)))
	}
}

// Leaderboard prints every category that has at least one entry.
func (c *Console) Leaderboard(t *leaderboard.Table) {
	if t.Records() == 0 {
		c.printf("No scores yet.\n")
		return
	}
	for i, cat := range leaderboard.Categories() {
		entries := t.Entries(cat)
		if len(entries) == 0 {
			continue
		}
		if i > 0 {
			c.printf("\n")
		}
		c.printf("%s\n", c.s.header.Render(c.title.String(cat.String())))
		for rank, e := range entries {
			c.printf("%3d. %-15s %6s  %s\n",
				rank+1, e.PlayerName(), c.number(int(e.Score)),
				c.s.dim.Render(e.Time().Format("2006-01-02 15:04")))
		}
	}
}
