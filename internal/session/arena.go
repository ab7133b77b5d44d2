package session

import (
	"arena-rpg/internal/battle"
	"arena-rpg/internal/entity"
	"arena-rpg/internal/factory"
	"arena-rpg/internal/powerup"
	"errors"
	"math"
)

// ErrNoMonsters is returned when the catalog has no monster for the arena level.
var ErrNoMonsters = errors.New("session: no monster available for arena level")

// ArenaLevelsPerRank is how many arena levels share one monster rank.
const ArenaLevelsPerRank = 3

// Weights for picking the next opponent: monsters of the current rank are
// favoured over easier ones.
const (
	currentRankWeight = 3
	lowerRankWeight   = 1
)

// RNG is the random source used for battles, perk draws and loot.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// MonsterRank maps an arena level to the highest monster rank it can field.
func MonsterRank(arenaLevel int) int {
	return 1 + max(0, arenaLevel-1)/ArenaLevelsPerRank
}

// BattleReport is what FinishBattle awarded.
type BattleReport struct {
	Outcome    battle.Outcome
	Gold       int
	Level      LevelUpReport
	Healed     int
	ArenaLevel int
}

// StartBattle picks an opponent for the current arena level, applies owned
// monster debuffs to it and opens a battle on the player's turn. Until
// FinishBattle the player fights with effective attributes.
func (s *Session) StartBattle(rng RNG) (*battle.Battle, error) {
	rank := MonsterRank(s.ArenaLevel)
	candidates := s.Catalog.MonstersUpToRank(rank)
	if len(candidates) == 0 {
		return nil, ErrNoMonsters
	}
	top := candidates[len(candidates)-1].ArenaRank
	total := 0
	for _, m := range candidates {
		total += rankWeight(m, top)
	}
	r := rng.Intn(total)
	tmpl := candidates[len(candidates)-1]
	for _, m := range candidates {
		w := rankWeight(m, top)
		if r < w {
			tmpl = m
			break
		}
		r -= w
	}

	monster := factory.NewMonster(tmpl)
	s.PowerUps.ApplyMonsterDebuffs(monster, s.ArenaLevel)
	s.Player.Defending = false
	if s.inBattle == nil {
		base := s.Player.Attributes
		s.Player.Attributes = s.ComputeEffectiveAttributes()
		s.inBattle = &base
	}
	s.logger.Debug("battle started", "session", s.ID, "monster", tmpl.ID, "arena_level", s.ArenaLevel)
	return battle.New(s.Player, monster)
}

func rankWeight(m entity.MonsterTemplate, top int) int {
	if m.ArenaRank == top {
		return currentRankWeight
	}
	return lowerRankWeight
}

// FinishBattle settles a finished battle. A win pays the monster's gold and
// xp, raises the arena level and runs after-battle utilities. A loss
// restores the player to full health without rewards; a yield pays nothing.
func (s *Session) FinishBattle(b *battle.Battle, rng RNG) BattleReport {
	report := BattleReport{Outcome: b.Outcome()}
	s.Player.Defending = false
	if s.inBattle != nil {
		s.Player.Attributes = *s.inBattle
		s.inBattle = nil
	}
	switch report.Outcome {
	case battle.OutcomeWon:
		m := b.Monster.Monster
		report.Gold = s.AddGold(m.GoldReward)
		report.Level = s.AddExperience(m.XPReward, rng)
		s.ArenaLevel++
		report.Healed = s.PowerUps.ApplyUtilityEffects(s.Player, s.ArenaLevel)
	case battle.OutcomeLost:
		s.Player.RestoreHealth(s.Player.MaxHealth())
		s.notify(Change{Kind: StatsChanged})
	}
	report.ArenaLevel = s.ArenaLevel
	s.logger.Info("battle finished", "session", s.ID, "outcome", report.Outcome.String(),
		"turns", b.Turns(), "gold", report.Gold, "xp", report.Level.XPGained, "arena_level", s.ArenaLevel)
	return report
}

// OfferPowerUps rolls the three post-battle choices.
func (s *Session) OfferPowerUps(rng RNG) []*powerup.PowerUp {
	return s.powerups.Generate(powerup.Context{
		Luck:          s.ComputeEffectiveAttributes().Luck,
		HealthPercent: s.Player.HealthPercent(),
		Owned:         s.PowerUps,
	}, rng)
}

// Collect takes a chosen power-up: instant ones pay out, the rest join the
// collection (upgrading an owned one with the same key).
func (s *Session) Collect(p *powerup.PowerUp) {
	if p == nil {
		return
	}
	if p.Instant() {
		s.Player.AddGold(int(math.Round(p.BaseValue)))
	} else {
		s.PowerUps.Add(p)
	}
	s.notify(Change{Kind: StatsChanged})
}

// BuyItem purchases qty units of an item. False when the item is unknown,
// the player cannot afford it, or it would not fit in full.
func (s *Session) BuyItem(itemID string, qty int) bool {
	def, ok := s.Catalog.Item(itemID)
	if !ok || qty <= 0 {
		return false
	}
	inv := s.Player.Player.Inventory
	if !inv.Fits(itemID, qty) || !s.Player.SpendGold(def.Price*qty) {
		return false
	}
	inv.AddItem(itemID, qty)
	s.notify(Change{Kind: StatsChanged})
	return true
}
