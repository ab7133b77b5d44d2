package progression

import "arena-rpg/internal/entity"

// LevelUpModel backs a level-up screen: stat points are spent and refunded
// against the attributes the session started with, and at most one perk is
// picked from the pending choices.
type LevelUpModel struct {
	start    entity.Attributes
	current  entity.Attributes
	points   int
	unlocked map[string]bool
	pending  []string
	selected string
}

// NewLevelUpModel starts a session from attrs with points to spend. unlocked
// is the player's perk set; SelectPerk writes into it.
func NewLevelUpModel(attrs entity.Attributes, points int, unlocked map[string]bool) *LevelUpModel {
	if unlocked == nil {
		unlocked = make(map[string]bool)
	}
	return &LevelUpModel{
		start:    attrs,
		current:  attrs,
		points:   max(0, points),
		unlocked: unlocked,
	}
}

func (m *LevelUpModel) Points() int                   { return m.points }
func (m *LevelUpModel) Attributes() entity.Attributes { return m.current }
func (m *LevelUpModel) Start() entity.Attributes      { return m.start }

// Increment spends one point on s. False when no points remain.
func (m *LevelUpModel) Increment(s entity.Stat) bool {
	if m.points <= 0 {
		return false
	}
	m.current.Add(s, 1)
	m.points--
	return true
}

// Decrement refunds one point from s. False when s is already at its
// starting value.
func (m *LevelUpModel) Decrement(s entity.Stat) bool {
	if m.current.Get(s) <= m.start.Get(s) {
		return false
	}
	m.current.Add(s, -1)
	m.points++
	return true
}

// SetPendingChoices replaces the perk ids offered for selection.
func (m *LevelUpModel) SetPendingChoices(ids []string) {
	m.pending = append([]string(nil), ids...)
}

// PendingChoices returns the perk ids currently offered.
func (m *LevelUpModel) PendingChoices() []string {
	return append([]string(nil), m.pending...)
}

// SelectPerk unlocks id if it is one of the pending choices and clears them.
// An id that is already unlocked is refused.
func (m *LevelUpModel) SelectPerk(id string) bool {
	if m.unlocked[id] {
		return false
	}
	for _, p := range m.pending {
		if p == id {
			m.unlocked[id] = true
			m.selected = id
			m.pending = nil
			return true
		}
	}
	return false
}

// Selected returns the perk picked with SelectPerk, if any.
func (m *LevelUpModel) Selected() (string, bool) {
	return m.selected, m.selected != ""
}
