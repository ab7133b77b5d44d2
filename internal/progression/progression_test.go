package progression

import (
	"arena-rpg/internal/entity"
	"errors"
	"math/rand"
	"slices"
	"testing"

	"pgregory.net/rapid"
)

func TestGenerateCurveLinear(t *testing.T) {
	got := GenerateCurve(CurveConfig{BaseXP: 100, Exponent: 1, MaxLevel: 4})
	want := []int{0, 100, 300, 600}
	if !slices.Equal(got, want) {
		t.Errorf("GenerateCurve = %v; want %v", got, want)
	}
}

func TestGenerateCurveEdgeCases(t *testing.T) {
	if got := GenerateCurve(CurveConfig{BaseXP: 100, Exponent: 1, MaxLevel: 0}); got != nil {
		t.Errorf("MaxLevel 0 = %v; want nil", got)
	}
	if got := GenerateCurve(CurveConfig{BaseXP: 100, Exponent: 1, MaxLevel: 1}); !slices.Equal(got, []int{0}) {
		t.Errorf("MaxLevel 1 = %v; want [0]", got)
	}
	huge := GenerateCurve(CurveConfig{BaseXP: 1e12, Exponent: 3, MaxLevel: 6})
	if huge[len(huge)-1] != MaxXP {
		t.Errorf("huge curve top = %d; want clamped to MaxXP", huge[len(huge)-1])
	}
}

func TestCurveIsMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := CurveConfig{
			BaseXP:   rapid.Float64Range(0, 1e6).Draw(t, "base"),
			Exponent: rapid.Float64Range(0, 4).Draw(t, "exp"),
			MaxLevel: rapid.IntRange(1, 100).Draw(t, "max"),
		}
		curve := GenerateCurve(cfg)
		if len(curve) != cfg.MaxLevel || curve[0] != 0 {
			t.Fatalf("curve len %d first %d", len(curve), curve[0])
		}
		if err := NewLogic(curve, nil).Validate(); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLevelForExperience(t *testing.T) {
	l := NewLogic([]int{0, 100, 300, 600}, nil)
	cases := []struct{ xp, want int }{
		{0, 1}, {99, 1}, {100, 2}, {299, 2}, {300, 3}, {600, 4}, {1 << 30, 4}, {-5, 1},
	}
	for _, tc := range cases {
		if got := l.LevelForExperience(tc.xp); got != tc.want {
			t.Errorf("LevelForExperience(%d) = %d; want %d", tc.xp, got, tc.want)
		}
	}
}

func TestZeroCostLevelsResolveUpward(t *testing.T) {
	l := NewLogic([]int{0, 0, 0, 50}, nil)
	if got := l.LevelForExperience(0); got != 3 {
		t.Errorf("LevelForExperience(0) = %d; want 3", got)
	}
}

func TestLevelIsMonotonicInXP(t *testing.T) {
	l := NewLogic(GenerateCurve(CurveConfig{BaseXP: 100, Exponent: 1.5, MaxLevel: 20}), nil)
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.IntRange(0, 200000).Draw(t, "a")
		b := rapid.IntRange(a, 400000).Draw(t, "b")
		if l.LevelForExperience(a) > l.LevelForExperience(b) {
			t.Fatalf("level(%d) > level(%d)", a, b)
		}
	})
}

func TestXPHelpers(t *testing.T) {
	l := NewLogic([]int{0, 100, 300, 600}, nil)
	if got := l.XPForLevel(3); got != 300 {
		t.Errorf("XPForLevel(3) = %d; want 300", got)
	}
	if got := l.XPForLevel(99); got != 600 {
		t.Errorf("XPForLevel(99) = %d; want 600", got)
	}
	if got := l.XPForLevel(0); got != 0 {
		t.Errorf("XPForLevel(0) = %d; want 0", got)
	}
	if got := l.XPToNextLevel(150); got != 150 {
		t.Errorf("XPToNextLevel(150) = %d; want 150", got)
	}
	if got := l.XPToNextLevel(700); got != 0 {
		t.Errorf("XPToNextLevel(max) = %d; want 0", got)
	}
	if l.MaxLevel() != 4 {
		t.Errorf("MaxLevel = %d; want 4", l.MaxLevel())
	}
}

func TestValidate(t *testing.T) {
	var ce *CurveError
	if err := NewLogic(nil, nil).Validate(); !errors.As(err, &ce) || ce.Level != 0 {
		t.Errorf("empty table err = %v", err)
	}
	err := NewLogic([]int{0, 100, 50}, nil).Validate()
	if !errors.As(err, &ce) || ce.Level != 3 || ce.Threshold != 50 || ce.PrevThreshold != 100 {
		t.Errorf("decreasing table err = %v", err)
	}
	if err := NewLogic([]int{0, 10, 10}, nil).Validate(); err != nil {
		t.Errorf("flat table err = %v; want nil", err)
	}
}

func TestRewardsMergePerLevel(t *testing.T) {
	l := NewLogic([]int{0, 100}, []LevelReward{
		{Level: 2, StatPoints: 2, Perks: []string{"a"}},
		{Level: 2, StatPoints: 1, Pools: []string{"combat"}, PoolDraws: 3},
	})
	r, ok := l.RewardForLevel(2)
	if !ok {
		t.Fatal("RewardForLevel(2) missing")
	}
	if r.StatPoints != 3 || !slices.Equal(r.Perks, []string{"a"}) || r.PoolDraws != 3 {
		t.Errorf("merged reward = %+v", r)
	}
	if _, ok := l.RewardForLevel(5); ok {
		t.Error("RewardForLevel(5) should be absent")
	}
}

func TestEligibility(t *testing.T) {
	e := Eligibility{Unlocked: map[string]bool{"tough": true}, Level: 5, Class: "hexer"}
	cases := []struct {
		name string
		perk Perk
		want bool
	}{
		{"plain", Perk{ID: "brute"}, true},
		{"already unlocked", Perk{ID: "tough"}, false},
		{"level too low", Perk{ID: "x", MinLevel: 6}, false},
		{"prereq met", Perk{ID: "tougher", Prerequisites: []string{"tough"}}, true},
		{"prereq missing", Perk{ID: "s2", Prerequisites: []string{"s1"}}, false},
		{"class allowed", Perk{ID: "focus", AllowedClasses: []string{"hexer"}}, true},
		{"class denied", Perk{ID: "purse", AllowedClasses: []string{"rogue"}}, false},
		{"no id", Perk{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.Eligible(tc.perk); got != tc.want {
				t.Errorf("Eligible = %v; want %v", got, tc.want)
			}
		})
	}
	classless := Eligibility{Level: 1}
	if !classless.Eligible(Perk{ID: "purse", AllowedClasses: []string{"rogue"}}) {
		t.Error("empty class should skip the class check")
	}
}

func TestSelectorOnlyReturnsEligibleDistinct(t *testing.T) {
	pool := PerkPool{Tag: "combat", Perks: []Perk{
		{ID: "a"}, {ID: "b"}, {ID: "c", MinLevel: 10}, {ID: "d"}, {ID: "e", Prerequisites: []string{"z"}},
	}}
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(0, 6).Draw(t, "count")
		rng := rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed")))
		e := Eligibility{Unlocked: map[string]bool{"d": rapid.Bool().Draw(t, "hasD")}, Level: 1}
		got := PerkSelector{}.Select(pool, count, e, rng)
		if len(got) > count {
			t.Fatalf("got %d perks; asked for %d", len(got), count)
		}
		seen := map[string]bool{}
		for _, p := range got {
			if !e.Eligible(p) {
				t.Fatalf("ineligible perk %q selected", p.ID)
			}
			if seen[p.ID] {
				t.Fatalf("perk %q selected twice", p.ID)
			}
			seen[p.ID] = true
		}
		if want := min(count, len(EligiblePerks(pool.Perks, e))); len(got) != want {
			t.Fatalf("got %d perks; want %d", len(got), want)
		}
	})
}

func TestSelectorDoesNotMutatePool(t *testing.T) {
	pool := PerkPool{Perks: []Perk{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	PerkSelector{}.Select(pool, 2, Eligibility{Level: 1}, rand.New(rand.NewSource(3)))
	if pool.Perks[0].ID != "a" || pool.Perks[2].ID != "c" {
		t.Errorf("pool reordered: %+v", pool.Perks)
	}
}

func TestLevelUpModelPoints(t *testing.T) {
	start := entity.Attributes{Strength: 3}
	m := NewLevelUpModel(start, 2, nil)
	if !m.Increment(entity.Strength) || !m.Increment(entity.Luck) {
		t.Fatal("Increment with points failed")
	}
	if m.Increment(entity.Magic) {
		t.Error("Increment with no points succeeded")
	}
	if m.Decrement(entity.Magic) {
		t.Error("Decrement below start succeeded")
	}
	if !m.Decrement(entity.Luck) || m.Points() != 1 {
		t.Errorf("Points after refund = %d; want 1", m.Points())
	}
	if got := m.Attributes().Strength; got != 4 {
		t.Errorf("Strength = %d; want 4", got)
	}
	if m.Start() != start {
		t.Error("Start changed")
	}
	if NewLevelUpModel(start, -3, nil).Points() != 0 {
		t.Error("negative points not clamped")
	}
}

func TestLevelUpModelSelectPerk(t *testing.T) {
	unlocked := map[string]bool{}
	m := NewLevelUpModel(entity.Attributes{}, 0, unlocked)
	m.SetPendingChoices([]string{"brute", "tough"})
	if m.SelectPerk("lucky") {
		t.Error("SelectPerk accepted an id that was not offered")
	}
	if _, ok := m.Selected(); ok {
		t.Error("Selected before a pick")
	}
	if !m.SelectPerk("tough") {
		t.Fatal("SelectPerk(tough) = false")
	}
	if id, ok := m.Selected(); !ok || id != "tough" {
		t.Errorf("Selected = %q, %v", id, ok)
	}
	if !unlocked["tough"] || len(m.PendingChoices()) != 0 {
		t.Errorf("unlocked=%v pending=%v", unlocked, m.PendingChoices())
	}
	if m.SelectPerk("brute") {
		t.Error("second pick allowed")
	}
}

func TestLevelUpModelRefusesUnlockedChoice(t *testing.T) {
	m := NewLevelUpModel(entity.Attributes{}, 0, map[string]bool{"tough": true})
	m.SetPendingChoices([]string{"tough", "brute"})
	if m.SelectPerk("tough") {
		t.Error("SelectPerk accepted a perk already unlocked")
	}
	if got := m.PendingChoices(); len(got) != 2 {
		t.Errorf("pending = %v; want both choices kept", got)
	}
	if !m.SelectPerk("brute") {
		t.Error("SelectPerk(brute) = false")
	}
}
