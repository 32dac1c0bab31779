package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"hexdrill/internal/config"
	"hexdrill/internal/history"
	"hexdrill/internal/leaderboard"
	"hexdrill/internal/round"
	"hexdrill/internal/session"
	"hexdrill/internal/stats"
	"hexdrill/internal/term"
)

func (a *App) play(ctx context.Context, cfg config.Config) int {
	console := term.New(a.Stdout, cfg.Color())

	// Without a data dir the game is still playable, nothing is saved.
	persist := true
	if err := os.MkdirAll(cfg.DataDir(), 0o755); err != nil {
		a.log.Printf("[Leaderboard] creating data dir: %v (scores will not be saved)\n", err)
		persist = false
	}

	tbl := leaderboard.NewTable()
	if persist {
		loaded, err := leaderboard.ReadFile(cfg.LeaderboardPath())
		if err != nil {
			a.log.Printf("[Leaderboard] %v (scores will not be saved)\n", err)
			persist = false
		} else {
			tbl = loaded
		}
	}

	archive := a.openHistory(cfg)
	if archive != nil {
		defer archive.Close()
	}

	seed, err := a.Seed()
	if err != nil {
		fmt.Fprintf(a.Stderr, "hexdrill: %v\n", err)
		return exitError
	}

	lines := round.NewLineReader(a.Stdin)
	engine := round.NewEngine(a.Round, a.Clock, lines, console, round.NewSampler(seed))
	rep, err := session.New(engine, a.Clock.Now).Play(ctx)
	if err != nil {
		if errors.Is(err, round.ErrEndOfInput) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(a.Stdout)
			return exitOK
		}
		fmt.Fprintf(a.Stderr, "hexdrill: %v\n", err)
		return exitError
	}
	console.Summary(rep)

	askName := func() (string, error) {
		console.NamePrompt()
		name, err := lines.ReadLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.Stdout)
			return "", nil
		}
		return name, err
	}
	outcome, err := session.Merge(tbl, rep, askName, a.Clock.Now())
	if err != nil {
		fmt.Fprintf(a.Stderr, "hexdrill: %v\n", err)
		return exitError
	}
	console.Placements(outcome)

	if persist && outcome.Persist {
		if err := leaderboard.WriteFile(cfg.LeaderboardPath(), tbl, outcome.Records); err != nil {
			a.log.Printf("[Leaderboard] %v\n", err)
		}
	}

	name := outcome.Name
	if name == "" {
		name = session.DefaultName
	}
	a.report(ctx, console, archive, name, rep)
	return exitOK
}

// openHistory connects to the session archive. Any failure leaves the game
// running without it.
func (a *App) openHistory(cfg config.Config) *history.DB {
	dsn := cfg.HistoryDSN()
	if dsn == "" {
		return nil
	}
	db, err := history.Open(dsn)
	if err != nil {
		a.log.Printf("[DB] Failed to open: %v (running without history)\n", err)
		return nil
	}
	return db
}

// report archives the session when possible and prints badges and lifetime
// stats.
func (a *App) report(ctx context.Context, console *term.Console, db *history.DB, name string, rep session.Report) {
	badges := stats.EvaluateSessionBadges(stats.FromReport(rep))
	if db == nil {
		console.Badges(badges)
		return
	}

	id, err := Archive(ctx, db, name, rep)
	if err != nil {
		a.log.Printf("[DB] Archive error: %v\n", err)
		console.Badges(badges)
		return
	}

	q := stats.NewQueries(db)
	lifetime, err := q.LifetimeStats(ctx, name, id)
	if err != nil {
		a.log.Printf("[DB] LifetimeStats error: %v\n", err)
	} else {
		badges = append(badges, lifetime.Badges...)
	}
	console.Badges(badges)
	console.Lifetime(lifetime)

	acc, err := q.PairAccuracy(ctx, name)
	if err != nil {
		a.log.Printf("[DB] PairAccuracy error: %v\n", err)
		return
	}
	console.Accuracy(acc)
}
