package entity

import "arena-rpg/internal/inventory"

// Kind tags which variant payload an Entity carries.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindMonster
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMonster:
		return "monster"
	}
	return "unknown"
}

// PlayerData is the Player-only payload of an Entity.
type PlayerData struct {
	Gender          string
	Class           string
	Level           int
	Experience      int
	Gold            int
	Inventory       *inventory.Inventory
	UnlockedPerks   map[string]bool
	UnlockedClasses map[string]bool
}

// MonsterData is the Monster-only payload of an Entity.
type MonsterData struct {
	TemplateID string
	ArenaRank  int
	Sounds     map[string]string // action type -> sound id
	XPReward   int
	GoldReward int
}

// Entity is a combatant. Exactly one of Player or Monster is set, matching Kind.
// Health is kept in [0, MaxHealth]; mutate it through TakeDamage and Heal.
type Entity struct {
	Name       string
	Attributes Attributes
	Defending  bool
	Kind       Kind
	Player     *PlayerData
	Monster    *MonsterData

	health    int
	maxHealth int

	onDeath    []func(*Entity)
	deathFired bool
}

// NewPlayer creates a player entity at full health.
func NewPlayer(name string, maxHealth int, attrs Attributes, data PlayerData) *Entity {
	if data.Level < 1 {
		data.Level = 1
	}
	if data.Inventory == nil {
		data.Inventory = inventory.New()
	}
	if data.UnlockedPerks == nil {
		data.UnlockedPerks = make(map[string]bool)
	}
	if data.UnlockedClasses == nil {
		data.UnlockedClasses = make(map[string]bool)
	}
	data.Inventory.UpdateCapacity(data.UnlockedPerks)
	e := &Entity{Name: name, Attributes: attrs, Kind: KindPlayer, Player: &data}
	e.SetMaxHealth(maxHealth)
	e.health = e.maxHealth
	return e
}

// NewMonster creates a monster entity at full health.
func NewMonster(name string, maxHealth int, attrs Attributes, data MonsterData) *Entity {
	if data.ArenaRank < 1 {
		data.ArenaRank = 1
	}
	e := &Entity{Name: name, Attributes: attrs, Kind: KindMonster, Monster: &data}
	e.SetMaxHealth(maxHealth)
	e.health = e.maxHealth
	return e
}

func (e *Entity) IsPlayer() bool  { return e.Kind == KindPlayer }
func (e *Entity) IsMonster() bool { return e.Kind == KindMonster }

func (e *Entity) Health() int    { return e.health }
func (e *Entity) MaxHealth() int { return e.maxHealth }

// IsDead reports whether health has reached 0.
func (e *Entity) IsDead() bool { return e.health <= 0 }

// HealthPercent returns current health as a 0–100 percentage.
func (e *Entity) HealthPercent() float64 {
	if e.maxHealth <= 0 {
		return 0
	}
	return float64(e.health) * 100 / float64(e.maxHealth)
}

// OnDeath registers fn to be called once when health first reaches 0.
func (e *Entity) OnDeath(fn func(*Entity)) {
	e.onDeath = append(e.onDeath, fn)
}

// TakeDamage lowers health by amount, clamped to [0, MaxHealth].
// Negative amounts are treated as 0. Returns the health actually removed.
func (e *Entity) TakeDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	before := e.health
	e.health = clamp(e.health-amount, 0, e.maxHealth)
	if e.health == 0 && !e.deathFired {
		e.deathFired = true
		for _, fn := range e.onDeath {
			fn(e)
		}
	}
	return before - e.health
}

// Heal raises health by amount, capped at MaxHealth. Dead entities stay dead.
// Returns the health actually restored.
func (e *Entity) Heal(amount int) int {
	if amount < 0 || e.IsDead() {
		return 0
	}
	before := e.health
	e.health = clamp(e.health+amount, 0, e.maxHealth)
	return e.health - before
}

// SetMaxHealth changes the health ceiling (minimum 1) and re-clamps health.
func (e *Entity) SetMaxHealth(max int) {
	if max < 1 {
		max = 1
	}
	e.maxHealth = max
	e.health = clamp(e.health, 0, e.maxHealth)
}

// RestoreHealth sets health directly, e.g. from a save snapshot. Clamped;
// does not fire death observers.
func (e *Entity) RestoreHealth(health int) {
	e.health = clamp(health, 0, e.maxHealth)
	e.deathFired = e.health == 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
