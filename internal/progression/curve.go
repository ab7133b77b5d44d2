// Package progression turns experience into levels and levels into rewards:
// XP curve generation, level resolution, perk eligibility and the point
// allocation used on level-up screens.
package progression

import (
	"fmt"
	"math"
	"sort"
)

// MaxXP is the largest threshold a curve may hold; larger costs are clamped.
const MaxXP = math.MaxInt32

// CurveConfig parameterises GenerateCurve.
type CurveConfig struct {
	BaseXP   float64 `yaml:"base_xp"`
	Exponent float64 `yaml:"exponent"`
	MaxLevel int     `yaml:"max_level"`
}

// GenerateCurve returns cumulative XP thresholds indexed by level-1, so
// curve[0] is level 1 and is always 0. The step from level L-1 to L costs
// round(BaseXP * (L-1)^Exponent).
func GenerateCurve(cfg CurveConfig) []int {
	if cfg.MaxLevel < 1 {
		return nil
	}
	curve := make([]int, cfg.MaxLevel)
	total := 0
	for level := 2; level <= cfg.MaxLevel; level++ {
		step := math.Round(cfg.BaseXP * math.Pow(float64(level-1), cfg.Exponent))
		if math.IsNaN(step) || step < 0 {
			step = 0
		}
		if step > float64(MaxXP-total) {
			total = MaxXP
		} else {
			total += int(step)
		}
		curve[level-1] = total
	}
	return curve
}

// LevelReward is what reaching Level grants. Perks lists ids unlocked
// outright; Pools names perk pools to draw PoolDraws choices from.
type LevelReward struct {
	Level      int      `yaml:"level"`
	StatPoints int      `yaml:"stat_points"`
	Perks      []string `yaml:"perks"`
	Pools      []string `yaml:"pools"`
	PoolDraws  int      `yaml:"pool_draws"`
}

// CurveError reports a threshold table that cannot be used.
type CurveError struct {
	Level         int // offending level; 0 for an empty table
	Threshold     int
	PrevThreshold int
}

func (e *CurveError) Error() string {
	if e.Level == 0 {
		return "xp curve: threshold table is empty"
	}
	return fmt.Sprintf("xp curve: level %d threshold %d is lower than level %d threshold %d",
		e.Level, e.Threshold, e.Level-1, e.PrevThreshold)
}

// Logic answers level and reward questions for one threshold table.
type Logic struct {
	thresholds []int
	rewards    map[int]LevelReward
}

// NewLogic builds a Logic over thresholds (index 0 = level 1). The slice is
// copied. Rewards for the same level are merged.
func NewLogic(thresholds []int, rewards []LevelReward) *Logic {
	l := &Logic{
		thresholds: append([]int(nil), thresholds...),
		rewards:    make(map[int]LevelReward, len(rewards)),
	}
	for _, r := range rewards {
		prev := l.rewards[r.Level]
		prev.Level = r.Level
		prev.StatPoints += r.StatPoints
		prev.Perks = append(prev.Perks, r.Perks...)
		prev.Pools = append(prev.Pools, r.Pools...)
		prev.PoolDraws += r.PoolDraws
		l.rewards[r.Level] = prev
	}
	return l
}

// MaxLevel is the highest level the table defines.
func (l *Logic) MaxLevel() int { return len(l.thresholds) }

// Thresholds returns a copy of the cumulative table.
func (l *Logic) Thresholds() []int { return append([]int(nil), l.thresholds...) }

// Validate reports an empty or non-monotonic table.
func (l *Logic) Validate() error {
	if len(l.thresholds) == 0 {
		return &CurveError{}
	}
	for i := 1; i < len(l.thresholds); i++ {
		if l.thresholds[i] < l.thresholds[i-1] {
			return &CurveError{Level: i + 1, Threshold: l.thresholds[i], PrevThreshold: l.thresholds[i-1]}
		}
	}
	return nil
}

// LevelForExperience returns the highest level whose threshold is <= xp.
// Levels that cost nothing resolve upward. Always at least 1.
func (l *Logic) LevelForExperience(xp int) int {
	// First index whose threshold exceeds xp; every level before it is reached.
	n := sort.Search(len(l.thresholds), func(i int) bool { return l.thresholds[i] > xp })
	return max(1, n)
}

// XPForLevel returns the cumulative threshold for level, clamped to the table.
func (l *Logic) XPForLevel(level int) int {
	if len(l.thresholds) == 0 || level <= 1 {
		return 0
	}
	if level > len(l.thresholds) {
		level = len(l.thresholds)
	}
	return l.thresholds[level-1]
}

// XPToNextLevel returns how much more XP is needed to leave the level xp
// resolves to, or 0 at the top of the table.
func (l *Logic) XPToNextLevel(xp int) int {
	level := l.LevelForExperience(xp)
	if level >= len(l.thresholds) {
		return 0
	}
	return l.thresholds[level] - xp
}

// RewardForLevel returns the configured reward, or false if there is none.
func (l *Logic) RewardForLevel(level int) (LevelReward, bool) {
	r, ok := l.rewards[level]
	return r, ok
}
