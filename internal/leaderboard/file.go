package leaderboard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile loads the table stored at path. A missing file is an empty table.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading leaderboard: %w", err)
	}
	t, _ := Load(data)
	return t, nil
}

// WriteFile replaces path with the first records records of t. The data is
// written to a temporary file in the same directory and renamed over path.
func WriteFile(path string, t *Table, records int) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "leaderboard-*.tmp")
	if err != nil {
		return fmt.Errorf("creating leaderboard temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(t.Serialize(records)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing leaderboard: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing leaderboard: %w", err)
	}
	cleanup = false
	return nil
}
