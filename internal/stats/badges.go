package stats

type BadgeID string

const (
	BadgeFlawless     BadgeID = "flawless"
	BadgeQuickDraw    BadgeID = "quick_draw"
	BadgeCenturion    BadgeID = "centurion"
	BadgePolyglot     BadgeID = "polyglot"
	BadgeVeteran      BadgeID = "veteran"
	BadgePersonalBest BadgeID = "personal_best"
)

type Badge struct {
	ID          BadgeID
	Name        string
	Description string
	Icon        string
}

var AllBadges = map[BadgeID]Badge{
	BadgeFlawless:     {ID: BadgeFlawless, Name: "Flawless", Description: "No wrong answers in a session", Icon: "✨"},
	BadgeQuickDraw:    {ID: BadgeQuickDraw, Name: "Quick Draw", Description: "Average reaction under 1.5s", Icon: "⚡"},
	BadgeCenturion:    {ID: BadgeCenturion, Name: "Centurion", Description: "100+ points in a session", Icon: "💯"},
	BadgePolyglot:     {ID: BadgePolyglot, Name: "Polyglot", Description: "Scored in every conversion", Icon: "🔀"},
	BadgeVeteran:      {ID: BadgeVeteran, Name: "Veteran", Description: "Played 10+ sessions", Icon: "🏅"},
	BadgePersonalBest: {ID: BadgePersonalBest, Name: "Personal Best", Description: "Beat every earlier total", Icon: "🏆"},
}

// EvaluateSessionBadges checks which badges a player earned in one session.
func EvaluateSessionBadges(stats SessionStats) []Badge {
	var earned []Badge

	if stats.Wrong == 0 && stats.Correct > 0 {
		earned = append(earned, AllBadges[BadgeFlawless])
	}

	answered := stats.Correct + stats.Wrong
	if answered > 0 && stats.AvgReaction > 0 && stats.AvgReaction < 1500 {
		earned = append(earned, AllBadges[BadgeQuickDraw])
	}

	if stats.Total >= 100 {
		earned = append(earned, AllBadges[BadgeCenturion])
	}

	if stats.Pairs > 0 && stats.PairsScored == stats.Pairs {
		earned = append(earned, AllBadges[BadgePolyglot])
	}

	return earned
}

// EvaluateLifetimeBadges checks which badges a player earned across every
// archived session.
func EvaluateLifetimeBadges(stats LifetimeStats) []Badge {
	var earned []Badge

	if stats.SessionsPlayed >= 10 {
		earned = append(earned, AllBadges[BadgeVeteran])
	}

	// Needs an earlier session to beat.
	if stats.SessionsPlayed >= 2 && stats.LatestTotal > stats.PreviousBest {
		earned = append(earned, AllBadges[BadgePersonalBest])
	}

	return earned
}
