package save

import (
	"arena-rpg/internal/session"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"
)

var (
	ErrNotFound    = errors.New("save: slot is empty")
	ErrInvalidSlot = errors.New("save: slot must be positive")
)

var slotFile = regexp.MustCompile(`^slot_(\d+)\.json$`)

// Summary describes one occupied slot for a load menu.
type Summary struct {
	Slot        int
	Name        string
	Class       string
	Level       int
	ArenaLevel  int
	LastSavedAt time.Time
}

// Store reads and writes slot_N.json files under one directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore opens a store at dir, or at DataDir()/saves when dir is empty.
// The directory is created on first Save.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if dir == "" {
		data, err := DataDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(data, "saves")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir is the directory holding the slot files.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(slot int) string {
	return filepath.Join(s.dir, fmt.Sprintf("slot_%d.json", slot))
}

// Save writes d to its slot, replacing any previous file atomically.
func (s *Store) Save(d session.SaveData) error {
	if d.Slot < 1 {
		return ErrInvalidSlot
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("save: encode slot %d: %w", d.Slot, err)
	}
	tmp, err := os.CreateTemp(s.dir, ".slot-*.tmp")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save: write slot %d: %w", d.Slot, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save: write slot %d: %w", d.Slot, err)
	}
	if err := os.Rename(tmp.Name(), s.path(d.Slot)); err != nil {
		return fmt.Errorf("save: write slot %d: %w", d.Slot, err)
	}
	s.logger.Debug("saved", "slot", d.Slot, "session", d.SessionID)
	return nil
}

// Load reads the snapshot in slot.
func (s *Store) Load(slot int) (session.SaveData, error) {
	var d session.SaveData
	if slot < 1 {
		return d, ErrInvalidSlot
	}
	data, err := os.ReadFile(s.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return d, fmt.Errorf("%w: %d", ErrNotFound, slot)
	}
	if err != nil {
		return d, fmt.Errorf("save: read slot %d: %w", slot, err)
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("save: decode slot %d: %w", slot, err)
	}
	d.Slot = slot
	return d, nil
}

// Delete removes slot. Deleting an empty slot is not an error.
func (s *Store) Delete(slot int) error {
	if slot < 1 {
		return ErrInvalidSlot
	}
	err := os.Remove(s.path(slot))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("save: delete slot %d: %w", slot, err)
	}
	return nil
}

// List summarises every readable slot in slot order. Unreadable files are
// logged and skipped.
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}
	var out []Summary
	for _, e := range entries {
		m := slotFile.FindStringSubmatch(e.Name())
		if m == nil || e.IsDir() {
			continue
		}
		slot, err := strconv.Atoi(m[1])
		if err != nil || slot < 1 {
			continue
		}
		d, err := s.Load(slot)
		if err != nil {
			s.logger.Warn("skipping unreadable save", "slot", slot, "err", err)
			continue
		}
		out = append(out, Summary{
			Slot:        slot,
			Name:        d.Player.Name,
			Class:       d.Player.Class,
			Level:       d.Player.Level,
			ArenaLevel:  d.ArenaLevel,
			LastSavedAt: d.LastSavedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out, nil
}
