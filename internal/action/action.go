// Package action defines the combat and menu actions a battle consumes.
//
// An Action is an immutable value tagged with its Type; Apply is the only
// operation that mutates the entities it references.
package action

import (
	"arena-rpg/internal/entity"
	"errors"
)

// Type tags an Action variant.
type Type uint8

const (
	Attack Type = iota + 1
	SpecialAttack
	Defend
	Block
	Item
	Yield
	Win
	Lose
	ChangeTurns
)

var typeNames = map[Type]string{
	Attack:        "attack",
	SpecialAttack: "special_attack",
	Defend:        "defend",
	Block:         "block",
	Item:          "item",
	Yield:         "yield",
	Win:           "win",
	Lose:          "lose",
	ChangeTurns:   "change_turns",
}

// String returns the snake_case name also used as the monster sound key.
func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

var (
	ErrNilActor  = errors.New("action: nil actor")
	ErrNilTarget = errors.New("action: nil target")
)

// Action is one move in a battle. Damage is used by Attack, ItemID by Item.
type Action struct {
	Type   Type
	Actor  *entity.Entity
	Target *entity.Entity
	Damage int
	ItemID string
}

func newAction(t Type, actor, target *entity.Entity) (Action, error) {
	if actor == nil {
		return Action{}, ErrNilActor
	}
	if target == nil {
		return Action{}, ErrNilTarget
	}
	return Action{Type: t, Actor: actor, Target: target}, nil
}

// NewAttack builds a plain attack dealing damage to target.
func NewAttack(actor, target *entity.Entity, damage int) (Action, error) {
	a, err := newAction(Attack, actor, target)
	if err != nil {
		return Action{}, err
	}
	a.Damage = max(0, damage)
	return a, nil
}

// NewSpecialAttack builds an attack whose damage is derived from the actor's
// Strength when applied.
func NewSpecialAttack(actor, target *entity.Entity) (Action, error) {
	return newAction(SpecialAttack, actor, target)
}

// NewDefend builds a self-targeted defend.
func NewDefend(actor *entity.Entity) (Action, error) {
	return newAction(Defend, actor, actor)
}

// NewBlock builds a self-targeted block.
func NewBlock(actor *entity.Entity) (Action, error) {
	return newAction(Block, actor, actor)
}

// NewItem builds an item use. target receives damage from offensive items.
func NewItem(actor, target *entity.Entity, itemID string) (Action, error) {
	a, err := newAction(Item, actor, target)
	if err != nil {
		return Action{}, err
	}
	a.ItemID = itemID
	return a, nil
}

// NewYield builds a surrender by actor.
func NewYield(actor, target *entity.Entity) (Action, error) {
	return newAction(Yield, actor, target)
}

// NewWin marks actor as the victor over target.
func NewWin(actor, target *entity.Entity) (Action, error) {
	return newAction(Win, actor, target)
}

// NewLose marks actor as defeated by target.
func NewLose(actor, target *entity.Entity) (Action, error) {
	return newAction(Lose, actor, target)
}

// NewChangeTurns marks the hand-over from actor to target.
func NewChangeTurns(actor, target *entity.Entity) (Action, error) {
	return newAction(ChangeTurns, actor, target)
}
