package powerup

import (
	"arena-rpg/internal/entity"
	"math"
)

// Collection holds the power-ups a player owns, one per unique key, in the
// order they were first added.
type Collection struct {
	byKey map[string]*PowerUp
	order []string
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{byKey: make(map[string]*PowerUp)}
}

// Add inserts p, or upgrades the owned instance if its key is already present.
// Returns true when an existing instance was upgraded.
func (c *Collection) Add(p *PowerUp) bool {
	if p == nil || p.Key == "" {
		return false
	}
	if owned, ok := c.byKey[p.Key]; ok {
		owned.Upgrade()
		return true
	}
	cp := *p
	c.byKey[p.Key] = &cp
	c.order = append(c.order, p.Key)
	return false
}

// Get returns the owned power-up with key.
func (c *Collection) Get(key string) (*PowerUp, bool) {
	p, ok := c.byKey[key]
	return p, ok
}

// Rank returns the owned rank for key, or 0 if not owned.
func (c *Collection) Rank(key string) Rank {
	if p, ok := c.byKey[key]; ok {
		return p.Rank
	}
	return 0
}

func (c *Collection) Len() int { return len(c.order) }

// All returns owned power-ups in insertion order.
func (c *Collection) All() []*PowerUp {
	out := make([]*PowerUp, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.byKey[k])
	}
	return out
}

// Components returns a copy of every owned component, for snapshots.
func (c *Collection) Components() []Component {
	out := make([]Component, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.byKey[k].Component)
	}
	return out
}

// Restore replaces the contents with components from a snapshot.
func (c *Collection) Restore(comps []Component) {
	c.byKey = make(map[string]*PowerUp, len(comps))
	c.order = c.order[:0]
	for _, comp := range comps {
		if comp.Key == "" {
			continue
		}
		if _, dup := c.byKey[comp.Key]; dup {
			continue
		}
		c.byKey[comp.Key] = New(comp)
		c.order = append(c.order, comp.Key)
	}
}

// ApplyMonsterDebuffs lowers m's attributes by every owned debuff. A debuff
// never takes a stat below 1.
func (c *Collection) ApplyMonsterDebuffs(m *entity.Entity, arenaLevel int) {
	if m == nil {
		return
	}
	for _, p := range c.All() {
		if p.Kind != KindMonsterDebuff {
			continue
		}
		cur := m.Attributes.Get(p.Stat)
		next := cur - roundInt(p.Value(arenaLevel))
		m.Attributes.Set(p.Stat, max(next, min(cur, 1)))
	}
}

// ApplyUtilityEffects runs the after-battle utilities on player. Heal
// utilities restore a percentage of max health. Returns health restored.
func (c *Collection) ApplyUtilityEffects(player *entity.Entity, arenaLevel int) int {
	if player == nil {
		return 0
	}
	healed := 0
	for _, p := range c.All() {
		if p.Kind != KindUtility || p.Utility != UtilityHeal {
			continue
		}
		amount := roundInt(float64(player.MaxHealth()) * p.Value(arenaLevel) / 100)
		healed += player.Heal(amount)
	}
	return healed
}

// GoldBonusPercent sums the scaled values of every gold loot modifier.
func (c *Collection) GoldBonusPercent(arenaLevel int) float64 {
	return c.lootBonus(LootGold, arenaLevel)
}

// XPBonusPercent sums the scaled values of every xp loot modifier.
func (c *Collection) XPBonusPercent(arenaLevel int) float64 {
	return c.lootBonus(LootXP, arenaLevel)
}

func (c *Collection) lootBonus(target LootTarget, arenaLevel int) float64 {
	total := 0.0
	for _, p := range c.All() {
		if p.Kind == KindLoot && p.Loot == target {
			total += p.Value(arenaLevel)
		}
	}
	return total
}

// AttributeBonuses sums every attribute modifier into one block.
func (c *Collection) AttributeBonuses(arenaLevel int) entity.Attributes {
	var out entity.Attributes
	for _, p := range c.All() {
		if p.Kind == KindAttribute {
			out.Add(p.Stat, roundInt(p.Value(arenaLevel)))
		}
	}
	return out
}

func roundInt(v float64) int { return int(math.Round(v)) }
