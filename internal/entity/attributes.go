package entity

import "fmt"

// Stat names one of the six attributes.
type Stat uint8

const (
	Strength Stat = iota
	Constitution
	Magic
	Dexterity
	Luck
	Defense
)

// AllStats lists every Stat in display order.
var AllStats = []Stat{Strength, Constitution, Magic, Dexterity, Luck, Defense}

var statNames = [...]string{"strength", "constitution", "magic", "dexterity", "luck", "defense"}

func (s Stat) String() string {
	if int(s) < len(statNames) {
		return statNames[s]
	}
	return fmt.Sprintf("stat(%d)", uint8(s))
}

// ParseStat maps a lowercase stat name back to its Stat.
func ParseStat(name string) (Stat, bool) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), true
		}
	}
	return 0, false
}

// MarshalText lets a Stat appear as a name in YAML and JSON documents.
func (s Stat) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Stat) UnmarshalText(b []byte) error {
	v, ok := ParseStat(string(b))
	if !ok {
		return fmt.Errorf("unknown stat %q", string(b))
	}
	*s = v
	return nil
}

// Attributes is the six-stat block shared by players and monsters.
type Attributes struct {
	Strength     int `json:"strength" yaml:"strength"`
	Constitution int `json:"constitution" yaml:"constitution"`
	Magic        int `json:"magic" yaml:"magic"`
	Dexterity    int `json:"dexterity" yaml:"dexterity"`
	Luck         int `json:"luck" yaml:"luck"`
	Defense      int `json:"defense" yaml:"defense"`
}

// Get returns the value of one stat.
func (a Attributes) Get(s Stat) int {
	switch s {
	case Strength:
		return a.Strength
	case Constitution:
		return a.Constitution
	case Magic:
		return a.Magic
	case Dexterity:
		return a.Dexterity
	case Luck:
		return a.Luck
	case Defense:
		return a.Defense
	}
	return 0
}

// Set overwrites one stat.
func (a *Attributes) Set(s Stat, v int) {
	switch s {
	case Strength:
		a.Strength = v
	case Constitution:
		a.Constitution = v
	case Magic:
		a.Magic = v
	case Dexterity:
		a.Dexterity = v
	case Luck:
		a.Luck = v
	case Defense:
		a.Defense = v
	}
}

// Add adds delta to one stat.
func (a *Attributes) Add(s Stat, delta int) { a.Set(s, a.Get(s)+delta) }

// Plus returns the stat-wise sum of a and b.
func (a Attributes) Plus(b Attributes) Attributes {
	out := a
	for _, s := range AllStats {
		out.Add(s, b.Get(s))
	}
	return out
}
