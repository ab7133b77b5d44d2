package powerup

import (
	"arena-rpg/internal/entity"
	"fmt"
)

const (
	// ChoiceCount is how many power-ups one Generate call offers.
	ChoiceCount = 3
	// maxAttempts bounds the redraws for one choice before falling back.
	maxAttempts = 10

	lowHealthPercent = 25.0
	healWeightBoost  = 3.0
	fallbackGold     = 1
)

// Template is a catalog entry power-ups are rolled from.
type Template struct {
	Key       string        `yaml:"key"`
	Name      string        `yaml:"name"`
	Kind      Kind          `yaml:"kind"`
	BaseValue float64       `yaml:"base_value"`
	Weight    float64       `yaml:"weight"`
	Stat      entity.Stat   `yaml:"stat"`
	Loot      LootTarget    `yaml:"loot"`
	Utility   UtilityEffect `yaml:"utility"`
}

// Component instantiates t at the given rarity and rank.
func (t Template) Component(rarity Rarity, rank Rank) Component {
	return Component{
		Key:       t.Key,
		Name:      t.Name,
		Kind:      t.Kind,
		Rarity:    rarity,
		Rank:      rank,
		BaseValue: t.BaseValue,
		Stat:      t.Stat,
		Loot:      t.Loot,
		Utility:   t.Utility,
	}
}

func (t Template) isHeal() bool { return t.Kind == KindUtility && t.Utility == UtilityHeal }

// DefaultTemplates is the built-in catalog used when none is configured.
var DefaultTemplates = []Template{
	{Key: "attr_strength", Name: "Iron Grip", Kind: KindAttribute, BaseValue: 1, Weight: 10, Stat: entity.Strength},
	{Key: "attr_constitution", Name: "Thick Hide", Kind: KindAttribute, BaseValue: 1, Weight: 10, Stat: entity.Constitution},
	{Key: "attr_magic", Name: "Spark Within", Kind: KindAttribute, BaseValue: 1, Weight: 8, Stat: entity.Magic},
	{Key: "attr_dexterity", Name: "Quick Feet", Kind: KindAttribute, BaseValue: 1, Weight: 8, Stat: entity.Dexterity},
	{Key: "attr_luck", Name: "Four-Leaf", Kind: KindAttribute, BaseValue: 1, Weight: 6, Stat: entity.Luck},
	{Key: "attr_defense", Name: "Stone Skin", Kind: KindAttribute, BaseValue: 1, Weight: 10, Stat: entity.Defense},
	{Key: "loot_gold", Name: "Golden Touch", Kind: KindLoot, BaseValue: 5, Weight: 7, Loot: LootGold},
	{Key: "loot_xp", Name: "Keen Mind", Kind: KindLoot, BaseValue: 5, Weight: 7, Loot: LootXP},
	{Key: "debuff_strength", Name: "Blunt Blades", Kind: KindMonsterDebuff, BaseValue: 1, Weight: 5, Stat: entity.Strength},
	{Key: "debuff_defense", Name: "Rusted Armor", Kind: KindMonsterDebuff, BaseValue: 1, Weight: 5, Stat: entity.Defense},
	{Key: "utility_heal", Name: "Second Wind", Kind: KindUtility, BaseValue: 5, Weight: 6, Utility: UtilityHeal},
}

// Context is the player state a generation batch depends on.
type Context struct {
	Luck          int
	HealthPercent float64
	Owned         *Collection // may be nil
}

// Factory rolls power-up choices from a template catalog.
type Factory struct {
	Templates []Template
}

// NewFactory returns a factory over templates, or DefaultTemplates if empty.
func NewFactory(templates []Template) *Factory {
	if len(templates) == 0 {
		templates = DefaultTemplates
	}
	return &Factory{Templates: templates}
}

// Generate returns exactly ChoiceCount power-ups with distinct keys. Each
// choice is a weighted template draw with a luck-weighted rarity; templates
// the player already owns at MaxRank are redrawn, and after maxAttempts the
// choice becomes a flat gold bonus.
func (f *Factory) Generate(ctx Context, rng RNG) []*PowerUp {
	choices := make([]*PowerUp, 0, ChoiceCount)
	picked := make(map[string]bool, ChoiceCount)
	for slot := 0; len(choices) < ChoiceCount; slot++ {
		p := f.roll(ctx, picked, rng)
		if p == nil {
			p = FallbackGold(slot)
		}
		picked[p.Key] = true
		choices = append(choices, p)
	}
	return choices
}

func (f *Factory) roll(ctx Context, picked map[string]bool, rng RNG) *PowerUp {
	boostHeal := ctx.HealthPercent < lowHealthPercent
	for attempt := 0; attempt < maxAttempts; attempt++ {
		t, ok := f.pick(picked, boostHeal, rng)
		if !ok {
			return nil
		}
		rarity := RollRarity(ctx.Luck, rng)
		rank := RankI
		if ctx.Owned != nil {
			if owned, has := ctx.Owned.Get(t.Key); has {
				if owned.Rank >= MaxRank {
					continue
				}
				rank = owned.Rank + 1
			}
		}
		return New(t.Component(rarity, rank))
	}
	return nil
}

// pick draws one template by weight, skipping keys already in the batch.
func (f *Factory) pick(picked map[string]bool, boostHeal bool, rng RNG) (Template, bool) {
	weight := func(t Template) float64 {
		if picked[t.Key] || t.Weight <= 0 {
			return 0
		}
		if boostHeal && t.isHeal() {
			return t.Weight * healWeightBoost
		}
		return t.Weight
	}
	total := 0.0
	for _, t := range f.Templates {
		total += weight(t)
	}
	if total <= 0 {
		return Template{}, false
	}
	r := rng.Float64() * total
	var last Template
	for _, t := range f.Templates {
		w := weight(t)
		if w == 0 {
			continue
		}
		if r < w {
			return t, true
		}
		r -= w
		last = t
	}
	// Float rounding can leave r just past the final bucket.
	return last, true
}

// FallbackGold is the common "+1 gold" power-up offered when nothing else
// can be drawn. slot keeps keys distinct within one batch.
func FallbackGold(slot int) *PowerUp {
	return New(Component{
		Key:       fmt.Sprintf("bonus_gold_%d", slot),
		Name:      "Loose Coin",
		Kind:      KindUtility,
		Rarity:    Common,
		Rank:      RankI,
		BaseValue: fallbackGold,
		Utility:   UtilityGold,
	})
}
