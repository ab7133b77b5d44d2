// Package factory builds combatants from catalog definitions.
package factory

import (
	"arena-rpg/internal/entity"
	"arena-rpg/internal/inventory"
)

// NewPlayer creates a level 1 player of the given class at full health,
// carrying the class's starting gold and items. The class is recorded as
// unlocked.
func NewPlayer(name, gender string, class entity.ClassDef) *entity.Entity {
	inv := inventory.New()
	for _, si := range class.StartItems {
		inv.AddItem(si.ID, si.Quantity)
	}
	return entity.NewPlayer(name, class.MaxHealth, class.Attributes, entity.PlayerData{
		Gender:          gender,
		Class:           class.ID,
		Level:           1,
		Gold:            class.StartGold,
		Inventory:       inv,
		UnlockedClasses: map[string]bool{class.ID: true},
	})
}

// NewMonster instantiates a fresh monster from its template. The template's
// sound map is copied so battles never write through to the catalog.
func NewMonster(t entity.MonsterTemplate) *entity.Entity {
	sounds := make(map[string]string, len(t.Sounds))
	for k, v := range t.Sounds {
		sounds[k] = v
	}
	name := t.Name
	if t.Emoji != "" {
		name = t.Emoji + " " + t.Name
	}
	return entity.NewMonster(name, t.MaxHealth, t.Attributes, entity.MonsterData{
		TemplateID: t.ID,
		ArenaRank:  t.ArenaRank,
		Sounds:     sounds,
		XPReward:   t.XPReward,
		GoldReward: t.GoldReward,
	})
}
