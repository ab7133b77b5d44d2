package save

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunLog is one finished battle, appended to runs.jsonl.
type RunLog struct {
	RunID      uuid.UUID `json:"run_id"`
	SessionID  uuid.UUID `json:"session_id"`
	Time       time.Time `json:"time"`
	Class      string    `json:"class"`
	Monster    string    `json:"monster"`
	Outcome    string    `json:"outcome"`
	Turns      int       `json:"turns"`
	ArenaLevel int       `json:"arena_level"`
	Level      int       `json:"level"`
	Gold       int       `json:"gold"`
	XP         int       `json:"xp"`
}

// AppendRunLog appends entry as a single JSON line to dir/runs.jsonl, using
// DataDir() when dir is empty. Failures are logged, never returned, so a
// disk problem cannot interrupt play.
func AppendRunLog(dir string, entry RunLog, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	if entry.RunID == uuid.Nil {
		entry.RunID = uuid.New()
	}
	if dir == "" {
		d, err := DataDir()
		if err != nil {
			logger.Warn("run log: no data dir", "err", err)
			return
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("run log: mkdir", "dir", dir, "err", err)
		return
	}
	data, err := json.Marshal(entry)
	if err != nil {
		logger.Warn("run log: encode", "err", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("run log: open", "err", err)
		return
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		logger.Warn("run log: write", "err", err)
	}
}
