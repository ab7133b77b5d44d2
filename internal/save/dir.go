// Package save persists sessions to per-slot JSON files and appends
// finished battles to a JSONL run log.
package save

import (
	"os"
	"path/filepath"
)

// AppName names the data directory under $XDG_DATA_HOME.
const AppName = "arena-rpg"

// DataDir returns $XDG_DATA_HOME/arena-rpg, defaulting to
// ~/.local/share/arena-rpg.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName), nil
}
