package progression

import "arena-rpg/internal/entity"

// Perk is an unlockable passive from the catalog. Bonus and MaxHealth are
// applied for as long as the perk is unlocked.
type Perk struct {
	ID             string            `yaml:"id"`
	Text           string            `yaml:"text"`
	MinLevel       int               `yaml:"min_level"`
	Prerequisites  []string          `yaml:"prerequisites"`
	AllowedClasses []string          `yaml:"allowed_classes"`
	Price          int               `yaml:"price"`
	Bonus          entity.Attributes `yaml:"bonus"`
	MaxHealth      int               `yaml:"max_health"`
}

// PerkPool is a tagged group of perks that random draws are made from.
type PerkPool struct {
	Tag   string `yaml:"tag"`
	Perks []Perk `yaml:"perks"`
}

// Eligibility is the player state perks are checked against. An empty Class
// skips the class restriction.
type Eligibility struct {
	Unlocked map[string]bool
	Level    int
	Class    string
}

// Eligible reports whether p can be offered: not yet unlocked, level
// requirement met, every prerequisite unlocked, and class allowed.
func (e Eligibility) Eligible(p Perk) bool {
	if p.ID == "" || e.Unlocked[p.ID] || p.MinLevel > e.Level {
		return false
	}
	for _, req := range p.Prerequisites {
		if !e.Unlocked[req] {
			return false
		}
	}
	if e.Class == "" || len(p.AllowedClasses) == 0 {
		return true
	}
	for _, c := range p.AllowedClasses {
		if c == e.Class {
			return true
		}
	}
	return false
}

// EligiblePerks filters perks down to those e allows, keeping order.
func EligiblePerks(perks []Perk, e Eligibility) []Perk {
	var out []Perk
	for _, p := range perks {
		if e.Eligible(p) {
			out = append(out, p)
		}
	}
	return out
}

// RNG is the random source for perk draws.
type RNG interface {
	Intn(n int) int
}

// PerkSelector draws random eligible perks.
type PerkSelector struct{}

// Select returns up to count eligible perks from pool in an order shuffled
// with rng. Fewer are returned when not enough are eligible.
func (PerkSelector) Select(pool PerkPool, count int, e Eligibility, rng RNG) []Perk {
	if count <= 0 {
		return nil
	}
	eligible := EligiblePerks(pool.Perks, e)
	for i := len(eligible) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		eligible[i], eligible[j] = eligible[j], eligible[i]
	}
	if len(eligible) > count {
		eligible = eligible[:count]
	}
	return eligible
}
