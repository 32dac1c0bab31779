package round

import "time"

type Config struct {
	CountdownTicks int
	TickLength     time.Duration
	Duration       time.Duration // measured from the first operand shown
	PollInterval   time.Duration
}

// DefaultConfig is the only timing the game is played with; the other values
// exist so tests can shrink a round.
func DefaultConfig() Config {
	return Config{
		CountdownTicks: 5,
		TickLength:     time.Second,
		Duration:       30 * time.Second,
		PollInterval:   10 * time.Millisecond,
	}
}
