package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const (
	leaderboardFile = "leaderboard.bin"
	historyFile     = "history.db"
)

type Config struct {
	Home        string `env:"HOME,required,notEmpty"`
	Dir         string `env:"HEXDRILL_DIR"`
	DatabaseURL string `env:"HEXDRILL_DATABASE_URL"`
	NoHistory   bool   `env:"HEXDRILL_NO_HISTORY" envDefault:"false"`
	NoColor     string `env:"NO_COLOR"`
}

// Load reads the configuration from the environment. A missing HOME is an
// error.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DataDir is where the leaderboard and history live.
func (c Config) DataDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return filepath.Join(c.Home, ".config", "hexdrill")
}

func (c Config) LeaderboardPath() string {
	return filepath.Join(c.DataDir(), leaderboardFile)
}

// Color reports whether styled output is allowed. Any NO_COLOR value turns
// it off.
func (c Config) Color() bool {
	return c.NoColor == ""
}

// HistoryDSN is the archive database: DatabaseURL when set, otherwise a
// SQLite file next to the leaderboard. Empty means the archive is off.
func (c Config) HistoryDSN() string {
	if c.NoHistory {
		return ""
	}
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return filepath.Join(c.DataDir(), historyFile)
}
