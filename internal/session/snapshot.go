package session

import (
	"arena-rpg/internal/catalog"
	"arena-rpg/internal/entity"
	"arena-rpg/internal/inventory"
	"arena-rpg/internal/powerup"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
)

// SaveVersion is bumped whenever SaveData changes shape incompatibly.
const SaveVersion = 1

var ErrSaveVersion = errors.New("session: unsupported save version")

// PlayerSnapshot is the persisted form of the player entity.
type PlayerSnapshot struct {
	Name            string            `json:"name"`
	Gender          string            `json:"gender"`
	Class           string            `json:"class"`
	Health          int               `json:"health"`
	MaxHealth       int               `json:"max_health"`
	Attributes      entity.Attributes `json:"attributes"`
	Level           int               `json:"level"`
	Experience      int               `json:"experience"`
	Gold            int               `json:"gold"`
	Inventory       []inventory.Slot  `json:"inventory"`
	UnlockedPerks   []string          `json:"unlocked_perks"`
	UnlockedClasses []string          `json:"unlocked_classes"`
}

// SaveData is everything needed to resume a session.
type SaveData struct {
	Version            int                 `json:"version"`
	SessionID          uuid.UUID           `json:"session_id"`
	Slot               int                 `json:"slot"`
	CreatedAt          time.Time           `json:"created_at"`
	LastSavedAt        time.Time           `json:"last_saved_at"`
	Playtime           time.Duration       `json:"playtime"`
	ArenaLevel         int                 `json:"arena_level"`
	Player             PlayerSnapshot      `json:"player"`
	PowerUps           []powerup.Component `json:"powerups"`
	PendingStatPoints  int                 `json:"pending_stat_points"`
	PendingPerkChoices []string            `json:"pending_perk_choices,omitempty"`
}

// GetSaveData snapshots the session as of now. It does not modify the
// session; call MarkSaved once the data has been written.
func (s *Session) GetSaveData(now time.Time) SaveData {
	p := s.Player
	return SaveData{
		Version:     SaveVersion,
		SessionID:   s.ID,
		Slot:        s.Slot,
		CreatedAt:   s.CreatedAt,
		LastSavedAt: now,
		Playtime:    s.Playtime,
		ArenaLevel:  s.ArenaLevel,
		Player: PlayerSnapshot{
			Name:            p.Name,
			Gender:          p.Player.Gender,
			Class:           p.Player.Class,
			Health:          p.Health(),
			MaxHealth:       p.MaxHealth(),
			Attributes:      s.BaseAttributes(),
			Level:           p.Player.Level,
			Experience:      p.Player.Experience,
			Gold:            p.Player.Gold,
			Inventory:       p.Player.Inventory.Slots(),
			UnlockedPerks:   sortedKeys(p.Player.UnlockedPerks),
			UnlockedClasses: sortedKeys(p.Player.UnlockedClasses),
		},
		PowerUps:           s.PowerUps.Components(),
		PendingStatPoints:  s.pendingStatPoints,
		PendingPerkChoices: append([]string(nil), s.pendingPerkChoices...),
	}
}

// LoadFromSaveData rebuilds a session from a snapshot. Perks no longer in
// the catalog are dropped; the player's class must still exist.
func LoadFromSaveData(d SaveData, cat *catalog.Catalog, logger *slog.Logger) (*Session, error) {
	if d.Version > SaveVersion {
		return nil, fmt.Errorf("%w: %d", ErrSaveVersion, d.Version)
	}
	if _, ok := cat.Class(d.Player.Class); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, d.Player.Class)
	}
	s := newSession(cat, logger)
	s.ID = d.SessionID
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.Slot = d.Slot
	s.CreatedAt = d.CreatedAt
	s.LastSavedAt = d.LastSavedAt
	s.Playtime = d.Playtime
	s.ArenaLevel = max(1, d.ArenaLevel)
	s.pendingStatPoints = max(0, d.PendingStatPoints)
	s.pendingPerkChoices = append([]string(nil), d.PendingPerkChoices...)

	snap := d.Player
	perks := make(map[string]bool, len(snap.UnlockedPerks))
	for _, id := range snap.UnlockedPerks {
		if _, ok := cat.Perk(id); ok {
			perks[id] = true
		} else {
			s.logger.Warn("dropping unknown perk from save", "perk", id)
		}
	}
	classes := make(map[string]bool, len(snap.UnlockedClasses))
	for _, id := range snap.UnlockedClasses {
		classes[id] = true
	}
	s.Player = entity.NewPlayer(snap.Name, snap.MaxHealth, snap.Attributes, entity.PlayerData{
		Gender:          snap.Gender,
		Class:           snap.Class,
		Level:           snap.Level,
		Experience:      max(0, snap.Experience),
		Gold:            max(0, snap.Gold),
		UnlockedPerks:   perks,
		UnlockedClasses: classes,
	})
	s.Player.Player.Inventory.Restore(snap.Inventory)
	s.refreshMaxHealth()
	s.Player.RestoreHealth(snap.Health)
	s.PowerUps.Restore(d.PowerUps)

	s.logger.Info("session loaded", "session", s.ID, "slot", s.Slot, "level", s.Player.Player.Level)
	return s, nil
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		if v {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
