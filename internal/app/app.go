package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/agnivade/levenshtein"

	"hexdrill/internal/config"
	"hexdrill/internal/leaderboard"
	"hexdrill/internal/round"
	"hexdrill/internal/term"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const cmdLeaderboard = "leaderboard"

// maxSuggestDistance bounds how far a mistyped command may be from a real
// one before no suggestion is offered.
const maxSuggestDistance = 3

const usage = `Usage: hexdrill [command]

Practice converting 4-bit numbers between binary, decimal and hexadecimal.
Each of the six conversions is a 30 second round.

Commands:
  (none)        play a session
  leaderboard   show the saved high scores

Environment:
  HEXDRILL_DIR           data directory (default $HOME/.config/hexdrill)
  HEXDRILL_DATABASE_URL  postgres:// URL for the session history
  HEXDRILL_NO_HISTORY    set to true to disable the session history
  NO_COLOR               disable colored output
`

type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Clock  round.Clock
	Round  round.Config
	Seed   func() (uint64, error)

	log *log.Logger
}

// Run executes the command line args and returns the process exit code.
func Run(args []string) int {
	a := &App{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Clock:  round.SystemClock{},
		Round:  round.DefaultConfig(),
		Seed:   NewSeed,
	}
	// The first interrupt ends the session before the next prompt; a second
	// one kills the process.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	context.AfterFunc(ctx, stop)
	return a.Run(ctx, args)
}

func (a *App) Run(ctx context.Context, args []string) int {
	a.log = log.New(a.Stderr, "", log.LstdFlags)

	fs := flag.NewFlagSet("hexdrill", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(a.Stdout, usage)
			return exitOK
		}
		fmt.Fprint(a.Stderr, usage)
		return exitUsage
	}

	rest := fs.Args()
	switch {
	case len(rest) == 0:
		return a.withConfig(ctx, a.play)
	case len(rest) == 1 && rest[0] == cmdLeaderboard:
		return a.withConfig(ctx, a.showLeaderboard)
	}

	if rest[0] == cmdLeaderboard {
		fmt.Fprintf(a.Stderr, "hexdrill: unexpected arguments %q\n", rest[1:])
		fmt.Fprint(a.Stderr, "\n"+usage)
		return exitUsage
	}

	fmt.Fprintf(a.Stderr, "hexdrill: unknown command %q\n", rest[0])
	if suggestion, ok := suggest(rest[0]); ok {
		fmt.Fprintf(a.Stderr, "Did you mean %q?\n", suggestion)
	}
	fmt.Fprint(a.Stderr, "\n"+usage)
	return exitUsage
}

func (a *App) withConfig(ctx context.Context, run func(context.Context, config.Config) int) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(a.Stderr, "hexdrill: %v\n", err)
		return exitError
	}
	return run(ctx, cfg)
}

// suggest returns the command closest to arg, if any is close enough.
func suggest(arg string) (string, bool) {
	dist := levenshtein.ComputeDistance(arg, cmdLeaderboard)
	if dist == 0 || dist > maxSuggestDistance {
		return "", false
	}
	return cmdLeaderboard, true
}

func (a *App) showLeaderboard(_ context.Context, cfg config.Config) int {
	tbl, err := leaderboard.ReadFile(cfg.LeaderboardPath())
	if err != nil {
		a.log.Printf("[Leaderboard] %v\n", err)
		return exitError
	}
	term.New(a.Stdout, cfg.Color()).Leaderboard(tbl)
	return exitOK
}
