package battle

import (
	"arena-rpg/internal/action"
	"arena-rpg/internal/entity"
	"errors"
	"math/rand"
	"testing"

	"pgregory.net/rapid"
)

// fixedRNG returns scripted floats and always 0 from Intn.
type fixedRNG struct{ floats []float64 }

func (r *fixedRNG) Intn(int) int { return 0 }
func (r *fixedRNG) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func newBattle(t *testing.T, playerHP, monsterHP int) *Battle {
	t.Helper()
	p := entity.NewPlayer("Tess", playerHP, entity.Attributes{Strength: 6, Defense: 2}, entity.PlayerData{})
	m := entity.NewMonster("Goblin", monsterHP, entity.Attributes{Strength: 4, Defense: 2},
		entity.MonsterData{Sounds: map[string]string{"attack": "grunt", "defend": "snarl"}})
	b, err := New(p, m)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func attack(t *testing.T, b *Battle) action.Result {
	t.Helper()
	turn := b.CurrentTurn()
	a, err := action.NewAttack(turn.Actor, turn.Target, action.BaseDamage(turn.Actor, turn.Target))
	if err != nil {
		t.Fatal(err)
	}
	res, err := b.Act(a, nil)
	if err != nil {
		t.Fatalf("Act: %v", err)
	}
	return res
}

func TestNewRejectsNil(t *testing.T) {
	if _, err := New(nil, nil); !errors.Is(err, ErrNilCombatant) {
		t.Errorf("New(nil, nil) err = %v; want ErrNilCombatant", err)
	}
}

func TestPlayerActsFirst(t *testing.T) {
	b := newBattle(t, 20, 20)
	turn := b.CurrentTurn()
	if !turn.IsPlayerTurn() || turn.Number != 1 || b.Turns() != 1 {
		t.Errorf("first turn = %+v; want player turn 1", turn)
	}
}

func TestTurnsAlternate(t *testing.T) {
	b := newBattle(t, 100, 100)
	for i := 0; i < 6; i++ {
		turn := b.CurrentTurn()
		if turn.IsPlayerTurn() != (i%2 == 0) {
			t.Fatalf("turn %d: IsPlayerTurn = %v", i+1, turn.IsPlayerTurn())
		}
		attack(t, b)
		turn.End()
		turn.End() // idempotent
	}
	if b.Turns() != 7 {
		t.Errorf("Turns = %d; want 7", b.Turns())
	}
}

func TestActRejectsWrongActor(t *testing.T) {
	b := newBattle(t, 20, 20)
	a, _ := action.NewAttack(b.Monster, b.Player, 3)
	if _, err := b.Act(a, nil); !errors.Is(err, ErrWrongActor) {
		t.Errorf("Act(monster on player turn) err = %v; want ErrWrongActor", err)
	}
	if b.Player.Health() != 20 {
		t.Error("rejected action changed health")
	}
}

func TestKillEndsBattle(t *testing.T) {
	b := newBattle(t, 20, 5)
	attack(t, b)
	if !b.IsOver() || b.Outcome() != OutcomeWon {
		t.Fatalf("Outcome = %v; want won", b.Outcome())
	}
	last := b.CurrentTurn()
	last.End()
	if b.CurrentTurn() != last {
		t.Error("a new turn started after the monster died")
	}
	a, _ := action.NewAttack(b.Player, b.Monster, 1)
	if _, err := b.Act(a, nil); !errors.Is(err, ErrBattleOver) {
		t.Errorf("Act after end err = %v; want ErrBattleOver", err)
	}
}

func TestYieldFinishesBattle(t *testing.T) {
	b := newBattle(t, 20, 20)
	a, _ := action.NewYield(b.Player, b.Monster)
	if _, err := b.Act(a, nil); err != nil {
		t.Fatal(err)
	}
	if !b.Finished() || b.IsOver() || b.Outcome() != OutcomeYielded {
		t.Errorf("Finished=%v IsOver=%v Outcome=%v", b.Finished(), b.IsOver(), b.Outcome())
	}
}

func TestLoss(t *testing.T) {
	b := newBattle(t, 1, 50)
	b.CurrentTurn().End()
	if _, err := b.CurrentTurn().Execute(&fixedRNG{}, nil); err != nil {
		t.Fatal(err)
	}
	if b.Outcome() != OutcomeLost {
		t.Errorf("Outcome = %v; want lost", b.Outcome())
	}
}

func TestNewTurnClearsDefending(t *testing.T) {
	b := newBattle(t, 20, 20)
	d, _ := action.NewDefend(b.Player)
	b.Act(d, nil)
	b.CurrentTurn().End()
	if !b.Player.Defending {
		t.Fatal("defend should last through the monster's turn")
	}
	b.CurrentTurn().End()
	if b.Player.Defending {
		t.Error("Defending not cleared at the start of the player's next turn")
	}
}

func TestExecuteOnPlayerTurn(t *testing.T) {
	b := newBattle(t, 20, 20)
	if _, err := b.CurrentTurn().Execute(&fixedRNG{}, nil); !errors.Is(err, ErrPlayerTurn) {
		t.Errorf("err = %v; want ErrPlayerTurn", err)
	}
}

func TestMonsterAI(t *testing.T) {
	cases := []struct {
		name    string
		hurt    int
		floats  []float64
		want    action.Type
		wantSnd string
	}{
		{"plain attack", 0, []float64{0.5}, action.Attack, "grunt"},
		{"special", 0, []float64{0.1}, action.SpecialAttack, ""},
		{"desperate defend", 18, []float64{0.1}, action.Defend, "snarl"},
		{"desperate but brave", 18, []float64{0.9, 0.9}, action.Attack, "grunt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBattle(t, 50, 20)
			b.Monster.TakeDamage(tc.hurt)
			b.CurrentTurn().End()
			mv, err := b.CurrentTurn().Execute(&fixedRNG{floats: tc.floats}, nil)
			if err != nil {
				t.Fatal(err)
			}
			if mv.Action.Type != tc.want {
				t.Errorf("action = %v; want %v", mv.Action.Type, tc.want)
			}
			if mv.Sound != tc.wantSnd {
				t.Errorf("sound = %q; want %q", mv.Sound, tc.wantSnd)
			}
		})
	}
}

func TestOutcomeStrings(t *testing.T) {
	for o, want := range map[Outcome]string{OutcomeNone: "none", OutcomeWon: "won", OutcomeLost: "lost", OutcomeYielded: "yielded"} {
		if o.String() != want {
			t.Errorf("%d.String() = %q; want %q", o, o.String(), want)
		}
	}
}

func TestBattlesAlwaysTerminate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := entity.NewPlayer("p", rapid.IntRange(1, 60).Draw(t, "php"),
			entity.Attributes{Strength: rapid.IntRange(0, 10).Draw(t, "pstr")}, entity.PlayerData{})
		m := entity.NewMonster("m", rapid.IntRange(1, 60).Draw(t, "mhp"),
			entity.Attributes{Strength: rapid.IntRange(0, 10).Draw(t, "mstr")}, entity.MonsterData{})
		b, _ := New(p, m)
		rng := rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed")))
		for i := 0; !b.Finished(); i++ {
			if i > 1000 {
				t.Fatal("battle did not finish")
			}
			turn := b.CurrentTurn()
			if turn.IsPlayerTurn() {
				a, _ := action.NewAttack(p, m, action.BaseDamage(p, m))
				if _, err := b.Act(a, nil); err != nil {
					t.Fatal(err)
				}
			} else if _, err := turn.Execute(rng, nil); err != nil {
				t.Fatal(err)
			}
			turn.End()
			if p.IsDead() && m.IsDead() {
				t.Fatal("both combatants dead")
			}
		}
		if b.Outcome() == OutcomeNone {
			t.Fatal("finished battle has no outcome")
		}
	})
}
