package session

import (
	"arena-rpg/internal/progression"
	"math"
)

// LevelUpReport summarises what one AddExperience call changed.
type LevelUpReport struct {
	XPGained      int
	FromLevel     int
	ToLevel       int
	StatPoints    int      // points granted by the levels crossed
	UnlockedPerks []string // fixed perks granted outright
	PerkChoices   []string // perk ids now pending selection
}

// LeveledUp reports whether at least one level was gained.
func (r LevelUpReport) LeveledUp() bool { return r.ToLevel > r.FromLevel }

// AddExperience grants xp (plus the xp loot bonus), resolves the new level and
// collects the rewards of every level crossed: stat points go to the pending
// pool, fixed perks unlock, and pool draws become the pending perk choices.
func (s *Session) AddExperience(xp int, rng progression.RNG) LevelUpReport {
	p := s.Player.Player
	gained := applyBonus(xp, s.PowerUps.XPBonusPercent(s.ArenaLevel))
	report := LevelUpReport{XPGained: gained, FromLevel: p.Level}
	s.Player.GainExperience(gained)

	level := max(p.Level, s.progression.LevelForExperience(p.Experience))
	report.ToLevel = level
	if level == p.Level {
		if gained > 0 {
			s.notify(Change{Kind: StatsChanged})
		}
		return report
	}
	p.Level = level

	var pools []string
	draws := 0
	for l := report.FromLevel + 1; l <= level; l++ {
		r, ok := s.progression.RewardForLevel(l)
		if !ok {
			continue
		}
		report.StatPoints += r.StatPoints
		for _, id := range r.Perks {
			if s.unlockPerk(id) {
				report.UnlockedPerks = append(report.UnlockedPerks, id)
			}
		}
		pools = append(pools, r.Pools...)
		draws = max(draws, r.PoolDraws)
	}
	s.pendingStatPoints += report.StatPoints
	if draws > 0 && len(pools) > 0 {
		s.pendingPerkChoices = s.drawPerks(pools, draws, rng)
	}
	report.PerkChoices = append([]string(nil), s.pendingPerkChoices...)

	s.logger.Info("level up", "session", s.ID, "from", report.FromLevel, "to", level,
		"stat_points", report.StatPoints, "choices", len(report.PerkChoices))
	s.notify(Change{Kind: StatsChanged})
	return report
}

// drawPerks merges the tagged pools and selects count eligible perks.
func (s *Session) drawPerks(tags []string, count int, rng progression.RNG) []string {
	merged := progression.PerkPool{}
	seen := make(map[string]bool)
	for _, tag := range tags {
		pool, ok := s.Catalog.Pool(tag)
		if !ok {
			continue
		}
		for _, perk := range pool.Perks {
			if !seen[perk.ID] {
				seen[perk.ID] = true
				merged.Perks = append(merged.Perks, perk)
			}
		}
	}
	var ids []string
	for _, perk := range (progression.PerkSelector{}).Select(merged, count, s.eligibility(), rng) {
		ids = append(ids, perk.ID)
	}
	return ids
}

func (s *Session) eligibility() progression.Eligibility {
	p := s.Player.Player
	return progression.Eligibility{Unlocked: p.UnlockedPerks, Level: p.Level, Class: p.Class}
}

// EligiblePerks lists catalog perks the player could unlock now.
func (s *Session) EligiblePerks() []progression.Perk {
	return progression.EligiblePerks(s.Catalog.Perks(), s.eligibility())
}

// PendingStatPoints is the number of unspent level-up points.
func (s *Session) PendingStatPoints() int { return s.pendingStatPoints }

// PendingPerkChoices is the perk id set currently offered.
func (s *Session) PendingPerkChoices() []string {
	return append([]string(nil), s.pendingPerkChoices...)
}

// BeginLevelUp opens a level-up model over the pending points and choices.
// Nothing changes on the player until CommitLevelUp.
func (s *Session) BeginLevelUp() *progression.LevelUpModel {
	scratch := make(map[string]bool, len(s.Player.Player.UnlockedPerks))
	for id := range s.Player.Player.UnlockedPerks {
		scratch[id] = true
	}
	m := progression.NewLevelUpModel(s.Player.Attributes, s.pendingStatPoints, scratch)
	m.SetPendingChoices(s.pendingPerkChoices)
	return m
}

// CommitLevelUp writes a model's attributes, remaining points and any
// selected perk back to the player.
func (s *Session) CommitLevelUp(m *progression.LevelUpModel) {
	s.Player.Attributes = m.Attributes()
	s.pendingStatPoints = m.Points()
	s.pendingPerkChoices = m.PendingChoices()
	if id, ok := m.Selected(); ok {
		s.unlockPerk(id)
	}
	s.notify(Change{Kind: StatsChanged})
}

// BuyPerk unlocks an eligible perk for its price. False when the perk is
// unknown, ineligible or unaffordable.
func (s *Session) BuyPerk(id string) bool {
	perk, ok := s.Catalog.Perk(id)
	if !ok || !s.eligibility().Eligible(perk) {
		return false
	}
	if !s.Player.SpendGold(perk.Price) {
		return false
	}
	s.unlockPerk(id)
	s.logger.Debug("perk bought", "session", s.ID, "perk", id, "price", perk.Price)
	return true
}

// unlockPerk unlocks a catalog perk and withdraws it from the pending
// choices. Ids the catalog does not know are ignored.
func (s *Session) unlockPerk(id string) bool {
	if _, ok := s.Catalog.Perk(id); !ok {
		s.logger.Warn("ignoring unknown perk", "session", s.ID, "perk", id)
		return false
	}
	if !s.Player.UnlockPerk(id) {
		return false
	}
	for i, p := range s.pendingPerkChoices {
		if p == id {
			s.pendingPerkChoices = append(s.pendingPerkChoices[:i:i], s.pendingPerkChoices[i+1:]...)
			break
		}
	}
	s.refreshMaxHealth()
	s.notify(Change{Kind: PerksChanged, PerkID: id})
	return true
}

// AddGold credits base gold plus the gold loot bonus; returns the amount paid.
func (s *Session) AddGold(base int) int {
	amount := applyBonus(base, s.PowerUps.GoldBonusPercent(s.ArenaLevel))
	if amount <= 0 {
		return 0
	}
	s.Player.AddGold(amount)
	s.notify(Change{Kind: StatsChanged})
	return amount
}

func applyBonus(base int, percent float64) int {
	if base <= 0 {
		return 0
	}
	return base + int(math.Round(float64(base)*percent/100))
}
