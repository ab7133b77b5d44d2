// Package session holds one game's world context: the catalog, the player,
// owned power-ups and progression state. Every rule that needs more than a
// single entity goes through a Session instead of global state.
package session

import (
	"arena-rpg/internal/catalog"
	"arena-rpg/internal/entity"
	"arena-rpg/internal/factory"
	"arena-rpg/internal/powerup"
	"arena-rpg/internal/progression"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownClass = errors.New("session: unknown class")
	ErrClassLocked  = errors.New("session: class is locked")
)

// ChangeKind says what a Change notification is about.
type ChangeKind uint8

const (
	StatsChanged ChangeKind = iota + 1
	PerksChanged
)

// Change is delivered to observers after the session mutates the player.
type Change struct {
	Kind   ChangeKind
	PerkID string // set for PerksChanged
}

// Options configures a new character.
type Options struct {
	Name            string
	Gender          string
	ClassID         string
	Slot            int
	Now             time.Time
	UnlockedClasses []string // classes available beyond the unlocked-by-default ones
	Logger          *slog.Logger
}

// Session is the mutable state of one game. It is not safe for concurrent use.
type Session struct {
	ID          uuid.UUID
	Slot        int
	Catalog     *catalog.Catalog
	Player      *entity.Entity
	PowerUps    *powerup.Collection
	ArenaLevel  int
	CreatedAt   time.Time
	LastSavedAt time.Time
	Playtime    time.Duration

	pendingStatPoints  int
	pendingPerkChoices []string

	// inBattle holds the player's base attributes while Player.Attributes
	// carries the effective ones for a battle in progress.
	inBattle *entity.Attributes

	progression *progression.Logic
	powerups    *powerup.Factory
	logger      *slog.Logger
	observers   []func(Change)
}

// New creates a fresh character of opts.ClassID.
func New(cat *catalog.Catalog, opts Options) (*Session, error) {
	class, ok := cat.Class(opts.ClassID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, opts.ClassID)
	}
	if class.Locked && !contains(opts.UnlockedClasses, class.ID) {
		return nil, fmt.Errorf("%w: %q", ErrClassLocked, class.ID)
	}
	s := newSession(cat, opts.Logger)
	s.ID = uuid.New()
	s.Slot = opts.Slot
	s.CreatedAt = opts.Now
	s.Player = factory.NewPlayer(opts.Name, opts.Gender, class)
	for _, id := range opts.UnlockedClasses {
		s.Player.Player.UnlockedClasses[id] = true
	}
	s.logger.Info("session created", "session", s.ID, "class", class.ID, "slot", s.Slot)
	return s, nil
}

func newSession(cat *catalog.Catalog, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		Catalog:     cat,
		PowerUps:    powerup.NewCollection(),
		ArenaLevel:  1,
		progression: cat.Progression(),
		powerups:    powerup.NewFactory(cat.PowerUpTemplates()),
		logger:      logger,
	}
}

// Subscribe registers fn for every Change. Observers run synchronously in
// registration order.
func (s *Session) Subscribe(fn func(Change)) {
	s.observers = append(s.observers, fn)
}

// OnStatsChanged registers fn for StatsChanged notifications only.
func (s *Session) OnStatsChanged(fn func()) {
	s.Subscribe(func(c Change) {
		if c.Kind == StatsChanged {
			fn()
		}
	})
}

// OnPerksChanged registers fn for PerksChanged notifications only.
func (s *Session) OnPerksChanged(fn func(perkID string)) {
	s.Subscribe(func(c Change) {
		if c.Kind == PerksChanged {
			fn(c.PerkID)
		}
	})
}

func (s *Session) notify(c Change) {
	for _, fn := range s.observers {
		fn(c)
	}
}

// Tick adds wall time spent playing.
func (s *Session) Tick(d time.Duration) {
	if d > 0 {
		s.Playtime += d
	}
}

// MarkSaved records a successful save at now.
func (s *Session) MarkSaved(now time.Time) { s.LastSavedAt = now }

// Progression exposes the level logic in use.
func (s *Session) Progression() *progression.Logic { return s.progression }

// LevelForExperience resolves xp against this session's curve.
func (s *Session) LevelForExperience(xp int) int {
	return s.progression.LevelForExperience(xp)
}

// ComputeEffectiveAttributes is the player's base attributes plus unlocked
// perk bonuses plus owned attribute power-ups.
func (s *Session) ComputeEffectiveAttributes() entity.Attributes {
	attrs := s.BaseAttributes()
	for id := range s.Player.Player.UnlockedPerks {
		if p, ok := s.Catalog.Perk(id); ok {
			attrs = attrs.Plus(p.Bonus)
		}
	}
	return attrs.Plus(s.PowerUps.AttributeBonuses(s.ArenaLevel))
}

// BaseAttributes is the player's attributes without perk or power-up bonuses.
func (s *Session) BaseAttributes() entity.Attributes {
	if s.inBattle != nil {
		return *s.inBattle
	}
	return s.Player.Attributes
}

// InBattle reports whether a battle started by StartBattle is unsettled.
func (s *Session) InBattle() bool { return s.inBattle != nil }

// refreshMaxHealth recomputes max health from the class and unlocked perks.
func (s *Session) refreshMaxHealth() {
	class, ok := s.Catalog.Class(s.Player.Player.Class)
	if !ok {
		return
	}
	maxHP := class.MaxHealth
	for id := range s.Player.Player.UnlockedPerks {
		if p, ok := s.Catalog.Perk(id); ok {
			maxHP += p.MaxHealth
		}
	}
	gained := maxHP - s.Player.MaxHealth()
	s.Player.SetMaxHealth(maxHP)
	if gained > 0 {
		s.Player.Heal(gained)
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
