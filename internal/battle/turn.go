package battle

import (
	"arena-rpg/internal/action"
	"arena-rpg/internal/entity"
)

// Thresholds for the monster's turn.
const (
	desperateHealthPercent = 25.0
	desperateDefendChance  = 0.30
	specialAttackChance    = 0.20
)

// Turn is one side's opportunity to act.
type Turn struct {
	Actor  *entity.Entity
	Target *entity.Entity
	Number int

	terminator func(*Turn)
	ended      bool
}

// IsPlayerTurn reports whether the acting entity is the player.
func (t *Turn) IsPlayerTurn() bool { return t.Actor.IsPlayer() }

// End finishes the turn and hands control to the terminator. Calling End
// again on the same turn does nothing.
func (t *Turn) End() {
	if t.ended {
		return
	}
	t.ended = true
	if t.terminator != nil {
		t.terminator(t)
	}
}

// Ended reports whether End has been called.
func (t *Turn) Ended() bool { return t.ended }

// MonsterMove is what the monster did on its turn.
type MonsterMove struct {
	Action action.Action
	Result action.Result
	Sound  string
}

// Execute plays the monster's turn: defend when badly hurt, otherwise a
// special or plain attack. It must only be called on a monster turn and does
// not end the turn.
func (t *Turn) Execute(rng RNG, items action.ItemLookup) (MonsterMove, error) {
	if t.IsPlayerTurn() {
		return MonsterMove{}, ErrPlayerTurn
	}
	if t.ended || t.Actor.IsDead() || t.Target.IsDead() {
		return MonsterMove{}, ErrBattleOver
	}

	var (
		a   action.Action
		err error
	)
	switch {
	case t.Actor.HealthPercent() < desperateHealthPercent && rng.Float64() < desperateDefendChance:
		a, err = action.NewDefend(t.Actor)
	case rng.Float64() < specialAttackChance:
		a, err = action.NewSpecialAttack(t.Actor, t.Target)
	default:
		a, err = action.NewAttack(t.Actor, t.Target, action.BaseDamage(t.Actor, t.Target))
	}
	if err != nil {
		return MonsterMove{}, err
	}
	return MonsterMove{
		Action: a,
		Result: a.Apply(items),
		Sound:  t.Actor.Sound(a.Type.String()),
	}, nil
}
