package action

import "arena-rpg/internal/entity"

// ItemLookup resolves item definitions by id.
type ItemLookup interface {
	Item(id string) (entity.ItemDef, bool)
}

// Result describes what Apply changed.
type Result struct {
	Type     Type
	Damage   int  // health removed from the target
	Healed   int  // health restored to the actor
	ItemUsed bool // one unit was consumed from the actor's inventory
	Terminal bool // Win, Lose or Yield
}

// BaseDamage is the damage a plain attack from actor does to target:
// Strength minus half of Defense, never below 1.
func BaseDamage(actor, target *entity.Entity) int {
	return max(1, actor.Attributes.Strength-target.Attributes.Defense/2)
}

// Apply performs the action's effect. Win, Lose, Yield and ChangeTurns carry
// no effect of their own; the returned Result lets the caller attach rewards.
func (a Action) Apply(items ItemLookup) Result {
	res := Result{Type: a.Type}
	if a.Actor == nil || a.Target == nil {
		return res
	}
	switch a.Type {
	case Attack:
		res.Damage = hit(a.Target, a.Damage)
	case SpecialAttack:
		res.Damage = hit(a.Target, max(1, a.Actor.Attributes.Strength))
	case Defend, Block:
		a.Actor.Defending = true
	case Item:
		res = a.applyItem(items, res)
	case Yield, Win, Lose:
		res.Terminal = true
	case ChangeTurns:
	}
	return res
}

// hit deals dmg to target, halved (minimum 1) while the target is defending.
func hit(target *entity.Entity, dmg int) int {
	if dmg <= 0 {
		return 0
	}
	if target.Defending {
		dmg = max(1, dmg/2)
	}
	return target.TakeDamage(dmg)
}

func (a Action) applyItem(items ItemLookup, res Result) Result {
	if items == nil || a.Actor.Player == nil {
		return res
	}
	inv := a.Actor.Player.Inventory
	if inv == nil || inv.Quantity(a.ItemID) == 0 {
		return res
	}
	def, ok := items.Item(a.ItemID)
	if !ok {
		return res
	}
	switch def.Kind {
	case entity.ItemHeal:
		res.Healed = a.Actor.Heal(a.Actor.MaxHealth() * def.HealPercent / 100)
	case entity.ItemDamage:
		res.Damage = hit(a.Target, def.Damage)
	default:
		return res
	}
	res.ItemUsed = inv.RemoveItem(a.ItemID, 1)
	return res
}
