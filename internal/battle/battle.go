// Package battle runs the two-state turn machine between a player and a
// monster. A Battle starts on the player's turn; every Turn.End hands the
// offense to the other side until one of them dies or the player yields.
package battle

import (
	"arena-rpg/internal/action"
	"arena-rpg/internal/entity"
	"errors"
)

var (
	ErrNilCombatant = errors.New("battle: nil combatant")
	ErrPlayerTurn   = errors.New("battle: execute called on the player's turn")
	ErrWrongActor   = errors.New("battle: action actor is not the current turn's actor")
	ErrBattleOver   = errors.New("battle: battle is over")
)

// RNG is the random source for monster decisions.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// Outcome is how a battle ended, if it has.
type Outcome uint8

const (
	OutcomeNone    Outcome = iota
	OutcomeWon             // monster died
	OutcomeLost            // player died
	OutcomeYielded         // player gave up
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeYielded:
		return "yielded"
	}
	return "none"
}

// Battle pairs a player and a monster with the current Turn.
type Battle struct {
	Player  *entity.Entity
	Monster *entity.Entity

	current *Turn
	turns   int
	yielded bool
}

// New starts a battle on the player's turn.
func New(player, monster *entity.Entity) (*Battle, error) {
	if player == nil || monster == nil {
		return nil, ErrNilCombatant
	}
	b := &Battle{Player: player, Monster: monster}
	b.current = b.newTurn(player, monster)
	return b, nil
}

// CurrentTurn returns the turn in progress. After the battle is over it keeps
// returning the last turn.
func (b *Battle) CurrentTurn() *Turn { return b.current }

// Turns counts the turns constructed so far, including the current one.
func (b *Battle) Turns() int { return b.turns }

// IsOver reports whether either combatant is dead.
func (b *Battle) IsOver() bool { return b.Player.IsDead() || b.Monster.IsDead() }

// Finished reports whether no further turns will be played.
func (b *Battle) Finished() bool { return b.IsOver() || b.yielded }

// Outcome reports how the battle ended.
func (b *Battle) Outcome() Outcome {
	switch {
	case b.Player.IsDead():
		return OutcomeLost
	case b.Monster.IsDead():
		return OutcomeWon
	case b.yielded:
		return OutcomeYielded
	}
	return OutcomeNone
}

// Act applies an action for the entity whose turn it is. It does not end the
// turn. A Yield action finishes the battle.
func (b *Battle) Act(a action.Action, items action.ItemLookup) (action.Result, error) {
	if b.Finished() {
		return action.Result{}, ErrBattleOver
	}
	if a.Actor != b.current.Actor {
		return action.Result{}, ErrWrongActor
	}
	res := a.Apply(items)
	if a.Type == action.Yield && a.Actor.IsPlayer() {
		b.yielded = true
	}
	return res, nil
}

func (b *Battle) newTurn(actor, target *entity.Entity) *Turn {
	b.turns++
	actor.Defending = false
	return &Turn{
		Actor:      actor,
		Target:     target,
		Number:     b.turns,
		terminator: b.advance,
	}
}

// advance is every Turn's terminator: swap sides unless the battle is over.
func (b *Battle) advance(t *Turn) {
	if b.Finished() {
		return
	}
	b.current = b.newTurn(t.Target, t.Actor)
}
