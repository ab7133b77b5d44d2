package entity

import (
	"encoding/json"
	"testing"

	"pgregory.net/rapid"
)

func newTestPlayer(maxHP int) *Entity {
	return NewPlayer("Tess", maxHP, Attributes{Strength: 5, Defense: 2}, PlayerData{Class: "gladiator"})
}

func TestNewPlayerDefaults(t *testing.T) {
	p := newTestPlayer(30)
	if !p.IsPlayer() || p.IsMonster() {
		t.Fatal("expected a player entity")
	}
	if p.Health() != 30 || p.MaxHealth() != 30 {
		t.Errorf("health = %d/%d; want 30/30", p.Health(), p.MaxHealth())
	}
	if p.Player.Level != 1 {
		t.Errorf("Level = %d; want 1", p.Player.Level)
	}
	if p.Player.Inventory == nil || p.Player.UnlockedPerks == nil || p.Player.UnlockedClasses == nil {
		t.Error("player containers not initialised")
	}
}

func TestTakeDamageClampsAndFiresDeathOnce(t *testing.T) {
	m := NewMonster("Rat", 10, Attributes{}, MonsterData{})
	deaths := 0
	m.OnDeath(func(*Entity) { deaths++ })

	if got := m.TakeDamage(4); got != 4 {
		t.Errorf("TakeDamage(4) = %d; want 4", got)
	}
	if got := m.TakeDamage(100); got != 6 {
		t.Errorf("TakeDamage(100) = %d; want 6", got)
	}
	if !m.IsDead() || m.Health() != 0 {
		t.Errorf("health = %d; want 0 and dead", m.Health())
	}
	m.TakeDamage(5)
	if deaths != 1 {
		t.Errorf("death observers fired %d times; want 1", deaths)
	}
	if got := m.TakeDamage(-3); got != 0 {
		t.Errorf("TakeDamage(-3) = %d; want 0", got)
	}
}

func TestHeal(t *testing.T) {
	p := newTestPlayer(20)
	p.TakeDamage(15)
	if got := p.Heal(10); got != 10 {
		t.Errorf("Heal(10) = %d; want 10", got)
	}
	if got := p.Heal(50); got != 5 {
		t.Errorf("Heal(50) = %d; want 5 (capped)", got)
	}
	p.TakeDamage(100)
	if got := p.Heal(10); got != 0 || !p.IsDead() {
		t.Errorf("Heal on dead = %d, dead=%v; want 0, true", got, p.IsDead())
	}
}

func TestSetMaxHealthReclamps(t *testing.T) {
	p := newTestPlayer(20)
	p.SetMaxHealth(8)
	if p.Health() != 8 {
		t.Errorf("health = %d; want 8", p.Health())
	}
	p.SetMaxHealth(0)
	if p.MaxHealth() != 1 {
		t.Errorf("MaxHealth = %d; want 1", p.MaxHealth())
	}
}

func TestRestoreHealthRearmsDeath(t *testing.T) {
	p := newTestPlayer(10)
	deaths := 0
	p.OnDeath(func(*Entity) { deaths++ })
	p.TakeDamage(10)
	p.RestoreHealth(10)
	p.TakeDamage(10)
	if deaths != 2 {
		t.Errorf("deaths = %d; want 2 after restore", deaths)
	}
}

func TestHealthPercent(t *testing.T) {
	p := newTestPlayer(40)
	p.TakeDamage(30)
	if got := p.HealthPercent(); got != 25 {
		t.Errorf("HealthPercent = %v; want 25", got)
	}
}

func TestHealthStaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxHP := rapid.IntRange(1, 500).Draw(t, "max")
		e := NewMonster("m", maxHP, Attributes{}, MonsterData{})
		ops := rapid.SliceOfN(rapid.IntRange(-200, 200), 1, 30).Draw(t, "ops")
		for _, op := range ops {
			if op < 0 {
				e.Heal(-op)
			} else {
				e.TakeDamage(op)
			}
			if e.Health() < 0 || e.Health() > e.MaxHealth() {
				t.Fatalf("health %d outside [0, %d]", e.Health(), e.MaxHealth())
			}
		}
	})
}

func TestGoldAndExperience(t *testing.T) {
	p := newTestPlayer(10)
	p.AddGold(10)
	p.AddGold(-5)
	if p.Player.Gold != 10 {
		t.Errorf("Gold = %d; want 10", p.Player.Gold)
	}
	if p.SpendGold(11) {
		t.Error("SpendGold(11) succeeded with 10 gold")
	}
	if !p.SpendGold(4) || p.Player.Gold != 6 {
		t.Errorf("SpendGold(4) left %d; want 6", p.Player.Gold)
	}
	p.GainExperience(50)
	p.GainExperience(-20)
	if p.Player.Experience != 50 {
		t.Errorf("Experience = %d; want 50", p.Player.Experience)
	}

	m := NewMonster("Rat", 5, Attributes{}, MonsterData{})
	m.AddGold(5)
	m.GainExperience(5)
	if m.SpendGold(0) {
		t.Error("monster should not spend gold")
	}
}

func TestUnlockPerkGrowsInventory(t *testing.T) {
	p := newTestPlayer(10)
	slots := p.Player.Inventory.MaxSlots()
	if !p.UnlockPerk("satchel_1") {
		t.Fatal("UnlockPerk(satchel_1) = false")
	}
	if p.UnlockPerk("satchel_1") {
		t.Error("second UnlockPerk should report false")
	}
	if !p.HasPerk("satchel_1") {
		t.Error("HasPerk(satchel_1) = false")
	}
	if p.Player.Inventory.MaxSlots() <= slots {
		t.Errorf("MaxSlots = %d; want more than %d", p.Player.Inventory.MaxSlots(), slots)
	}
}

func TestMonsterSound(t *testing.T) {
	m := NewMonster("Rat", 5, Attributes{}, MonsterData{Sounds: map[string]string{"attack": "squeak"}})
	if got := m.Sound("attack"); got != "squeak" {
		t.Errorf("Sound(attack) = %q; want squeak", got)
	}
	if got := m.Sound("defend"); got != "" {
		t.Errorf("Sound(defend) = %q; want empty", got)
	}
	if got := newTestPlayer(1).Sound("attack"); got != "" {
		t.Errorf("player Sound = %q; want empty", got)
	}
}

func TestAttributesAccessors(t *testing.T) {
	var a Attributes
	for i, s := range AllStats {
		a.Set(s, i+1)
	}
	for i, s := range AllStats {
		if got := a.Get(s); got != i+1 {
			t.Errorf("Get(%s) = %d; want %d", s, got, i+1)
		}
	}
	sum := a.Plus(Attributes{Luck: 10})
	if sum.Luck != a.Luck+10 || sum.Strength != a.Strength {
		t.Errorf("Plus = %+v", sum)
	}
}

func TestStatText(t *testing.T) {
	for _, s := range AllStats {
		got, ok := ParseStat(s.String())
		if !ok || got != s {
			t.Errorf("ParseStat(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseStat("charisma"); ok {
		t.Error("ParseStat(charisma) should fail")
	}
	var s Stat
	if err := json.Unmarshal([]byte(`"luck"`), &s); err != nil || s != Luck {
		t.Errorf("unmarshal luck = %v, %v", s, err)
	}
	if err := json.Unmarshal([]byte(`"nope"`), &s); err == nil {
		t.Error("unmarshal of unknown stat should fail")
	}
}
