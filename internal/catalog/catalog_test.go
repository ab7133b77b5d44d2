package catalog

import (
	"arena-rpg/internal/entity"
	"arena-rpg/internal/powerup"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultParses(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(c.Classes()) == 0 || len(c.Items()) == 0 || len(c.Perks()) == 0 {
		t.Fatal("embedded catalog is missing sections")
	}
	if _, ok := c.Class("gladiator"); !ok {
		t.Error("gladiator class missing")
	}
	potion, ok := c.Item("potion")
	if !ok || potion.Kind != entity.ItemHeal || potion.HealPercent <= 0 {
		t.Errorf("potion = %+v, %v", potion, ok)
	}
	if _, ok := c.Pool("combat"); !ok {
		t.Error("combat pool missing")
	}
	if _, ok := c.Perk("satchel_1"); !ok {
		t.Error("satchel_1 perk missing")
	}
}

func TestDefaultCurve(t *testing.T) {
	c, _ := Default()
	curve := c.XPCurve()
	if len(curve) == 0 || curve[0] != 0 {
		t.Fatalf("curve = %v", curve)
	}
	l := c.Progression()
	if l.MaxLevel() != len(curve) {
		t.Errorf("MaxLevel = %d; want %d", l.MaxLevel(), len(curve))
	}
	if _, ok := l.RewardForLevel(2); !ok {
		t.Error("level 2 reward missing")
	}
}

func TestDefaultPowerUps(t *testing.T) {
	c, _ := Default()
	templates := c.PowerUpTemplates()
	if len(templates) < powerup.ChoiceCount {
		t.Fatalf("only %d power-up templates", len(templates))
	}
	for _, tmpl := range templates {
		if tmpl.Key == "" || tmpl.Weight <= 0 {
			t.Errorf("bad template %+v", tmpl)
		}
	}
}

func TestMonstersUpToRank(t *testing.T) {
	c, _ := Default()
	ms := c.MonstersUpToRank(2)
	if len(ms) == 0 {
		t.Fatal("no monsters up to rank 2")
	}
	for i, m := range ms {
		if m.ArenaRank > 2 {
			t.Errorf("%s has rank %d", m.ID, m.ArenaRank)
		}
		if i > 0 && ms[i-1].ArenaRank > m.ArenaRank {
			t.Error("monsters not sorted by rank")
		}
	}
	if len(c.MonstersUpToRank(0)) != 0 {
		t.Error("rank 0 should field nobody")
	}
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"duplicate class", "classes: [{id: a, max_health: 5}, {id: a, max_health: 5}]\nxp_curve: {base_xp: 10, exponent: 1, max_level: 3}"},
		{"monster rank", "monsters: [{id: m, max_health: 5, arena_rank: 0}]\nxp_curve: {base_xp: 10, exponent: 1, max_level: 3}"},
		{"item kind", "items: [{id: i, kind: juggle}]\nxp_curve: {base_xp: 10, exponent: 1, max_level: 3}"},
		{"pool ref", "perk_pools: [{tag: t, perks: [ghost]}]\nxp_curve: {base_xp: 10, exponent: 1, max_level: 3}"},
		{"start item", "classes: [{id: a, max_health: 5, start_items: [{id: ghost, quantity: 1}]}]\nxp_curve: {base_xp: 10, exponent: 1, max_level: 3}"},
		{"empty curve", "classes: []"},
		{"reward perk", "level_rewards: [{level: 4, stat_points: 1, perks: [ghost_perk]}]\nxp_curve: {base_xp: 10, exponent: 1, max_level: 5}"},
		{"reward pool", "level_rewards: [{level: 2, pools: [ghost], pool_draws: 1}]\nxp_curve: {base_xp: 10, exponent: 1, max_level: 3}"},
		{"power-up key", "powerups: [{name: X, kind: attribute, base_value: 1, weight: 1, stat: luck}]\nxp_curve: {base_xp: 10, exponent: 1, max_level: 3}"},
		{"power-up duplicate", "powerups: [{key: a, kind: attribute, weight: 1}, {key: a, kind: attribute, weight: 1}]\nxp_curve: {base_xp: 10, exponent: 1, max_level: 3}"},
		{"power-up kind", "powerups: [{key: a, kind: curse, weight: 1}]\nxp_curve: {base_xp: 10, exponent: 1, max_level: 3}"},
		{"power-up loot", "powerups: [{key: a, kind: loot, loot: gems, weight: 1}]\nxp_curve: {base_xp: 10, exponent: 1, max_level: 3}"},
		{"power-up utility", "powerups: [{key: a, kind: utility, weight: 1}]\nxp_curve: {base_xp: 10, exponent: 1, max_level: 3}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse err = %v; want ErrInvalid", err)
			}
		})
	}
	if _, err := Parse([]byte("classes: [")); err == nil {
		t.Error("malformed YAML parsed")
	}
}

func TestParseStatNames(t *testing.T) {
	doc := `
xp_curve: {base_xp: 10, exponent: 1, max_level: 2}
powerups:
  - {key: d, name: D, kind: monster_debuff, base_value: 1, weight: 1, stat: defense}
`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := c.PowerUpTemplates()[0].Stat; got != entity.Defense {
		t.Errorf("Stat = %v; want defense", got)
	}
}

func TestPowerUpTemplatesFallBack(t *testing.T) {
	c, err := Parse([]byte("xp_curve: {base_xp: 10, exponent: 1, max_level: 2}"))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.PowerUpTemplates()) != len(powerup.DefaultTemplates) {
		t.Error("empty powerups section should use the defaults")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(path, []byte("xp_curve: {base_xp: 10, exponent: 1, max_level: 2}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Load: %v", err)
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read catalog") {
		t.Errorf("Load(missing) err = %v", err)
	}
}
