package entity

// GainExperience adds xp to a player. Negative amounts are ignored so
// experience never decreases. No-op for monsters.
func (e *Entity) GainExperience(xp int) {
	if e.Player == nil || xp <= 0 {
		return
	}
	e.Player.Experience += xp
}

// AddGold credits a player's purse. Negative amounts are ignored.
func (e *Entity) AddGold(amount int) {
	if e.Player == nil || amount <= 0 {
		return
	}
	e.Player.Gold += amount
}

// SpendGold debits amount if the player can afford it.
func (e *Entity) SpendGold(amount int) bool {
	if e.Player == nil || amount < 0 || e.Player.Gold < amount {
		return false
	}
	e.Player.Gold -= amount
	return true
}

// HasPerk reports whether a player has unlocked the perk id.
func (e *Entity) HasPerk(id string) bool {
	return e.Player != nil && e.Player.UnlockedPerks[id]
}

// UnlockPerk marks a perk as unlocked and refreshes inventory capacity.
// Returns false if it was already unlocked or e is not a player.
func (e *Entity) UnlockPerk(id string) bool {
	if e.Player == nil || e.Player.UnlockedPerks[id] {
		return false
	}
	e.Player.UnlockedPerks[id] = true
	e.Player.Inventory.UpdateCapacity(e.Player.UnlockedPerks)
	return true
}

// Sound returns the sound id a monster plays for an action type, or "".
func (e *Entity) Sound(actionType string) string {
	if e.Monster == nil {
		return ""
	}
	return e.Monster.Sounds[actionType]
}
