// Package powerup scales, generates and collects the run modifiers offered
// between arena fights.
package powerup

import (
	"arena-rpg/internal/entity"
	"fmt"
)

// Rarity is the luck-weighted quality tier of a power-up.
type Rarity uint8

const (
	Common Rarity = iota
	Rare
	Epic
	Legendary
)

var rarityNames = [...]string{"common", "rare", "epic", "legendary"}

func (r Rarity) String() string {
	if int(r) < len(rarityNames) {
		return rarityNames[r]
	}
	return fmt.Sprintf("rarity(%d)", uint8(r))
}

// Rank is the upgrade tier of an owned power-up.
type Rank uint8

const (
	RankI Rank = iota + 1
	RankII
	RankIII
)

// MaxRank is the highest rank a power-up can reach.
const MaxRank = RankIII

func (r Rank) String() string {
	switch r {
	case RankI:
		return "I"
	case RankII:
		return "II"
	case RankIII:
		return "III"
	}
	return fmt.Sprintf("rank(%d)", uint8(r))
}

// Kind tags a Component variant.
type Kind string

const (
	KindAttribute     Kind = "attribute"      // raises a player stat
	KindLoot          Kind = "loot"           // bonus percent on gold or xp
	KindMonsterDebuff Kind = "monster_debuff" // lowers a monster stat
	KindUtility       Kind = "utility"        // heal after battles, or instant gold
)

// LootTarget selects what a loot modifier boosts.
type LootTarget string

const (
	LootGold LootTarget = "gold"
	LootXP   LootTarget = "xp"
)

// UtilityEffect selects what a utility component does.
type UtilityEffect string

const (
	UtilityHeal UtilityEffect = "heal" // percent of max health after each battle
	UtilityGold UtilityEffect = "gold" // flat gold paid once on collection
)

// Component is the tagged payload of a PowerUp. Stat is used by attribute
// and debuff kinds, Loot by loot kinds, Utility by utility kinds.
type Component struct {
	Key       string        `json:"key"`
	Name      string        `json:"name"`
	Kind      Kind          `json:"kind"`
	Rarity    Rarity        `json:"rarity"`
	Rank      Rank          `json:"rank"`
	BaseValue float64       `json:"base_value"`
	Stat      entity.Stat   `json:"stat"`
	Loot      LootTarget    `json:"loot,omitempty"`
	Utility   UtilityEffect `json:"utility,omitempty"`
}

// Value is the component's effect size at arenaLevel.
func (c Component) Value(arenaLevel int) float64 {
	return Scale(c.BaseValue, c.Rarity, c.Rank, arenaLevel)
}

// PowerUp wraps one component and can be upgraded up to MaxRank.
type PowerUp struct {
	Component
}

// New wraps c, normalising an unset rank to RankI.
func New(c Component) *PowerUp {
	if c.Rank < RankI {
		c.Rank = RankI
	}
	if c.Rank > MaxRank {
		c.Rank = MaxRank
	}
	return &PowerUp{Component: c}
}

// Upgrade raises the rank by one. False if already at MaxRank.
func (p *PowerUp) Upgrade() bool {
	if p.Rank >= MaxRank {
		return false
	}
	p.Rank++
	return true
}

// Instant reports whether the power-up pays out on collection instead of
// being kept.
func (p *PowerUp) Instant() bool {
	return p.Kind == KindUtility && p.Utility == UtilityGold
}

// Describe renders a one-line summary for menus.
func (p *PowerUp) Describe(arenaLevel int) string {
	v := p.Value(arenaLevel)
	switch p.Kind {
	case KindAttribute:
		return fmt.Sprintf("%s %s: +%.0f %s", p.Name, p.Rank, v, p.Stat)
	case KindMonsterDebuff:
		return fmt.Sprintf("%s %s: monsters -%.0f %s", p.Name, p.Rank, v, p.Stat)
	case KindLoot:
		return fmt.Sprintf("%s %s: +%.0f%% %s", p.Name, p.Rank, v, p.Loot)
	case KindUtility:
		if p.Utility == UtilityGold {
			return fmt.Sprintf("%s: +%.0f gold", p.Name, p.BaseValue)
		}
		return fmt.Sprintf("%s %s: heal %.0f%% after battle", p.Name, p.Rank, v)
	}
	return p.Name
}
