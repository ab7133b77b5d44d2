package powerup

import "math"

// RNG is the random source for power-up rolls.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

var rarityMultipliers = map[Rarity]float64{
	Common:    1.0,
	Rare:      1.5,
	Epic:      2.0,
	Legendary: 3.0,
}

var rankMultipliers = map[Rank]float64{
	RankI:   1.0,
	RankII:  1.5,
	RankIII: 2.0,
}

// RarityMultiplier returns the value multiplier for r (1 if unknown).
func RarityMultiplier(r Rarity) float64 {
	if m, ok := rarityMultipliers[r]; ok {
		return m
	}
	return 1
}

// RankMultiplier returns the value multiplier for r (1 if unknown).
func RankMultiplier(r Rank) float64 {
	if m, ok := rankMultipliers[r]; ok {
		return m
	}
	return 1
}

// Scale computes base * rarity * rank * (1 + ln(arenaLevel+1)). Growth with
// arena level is logarithmic.
func Scale(base float64, rarity Rarity, rank Rank, arenaLevel int) float64 {
	if arenaLevel < 0 {
		arenaLevel = 0
	}
	return base * RarityMultiplier(rarity) * RankMultiplier(rank) * (1 + math.Log(float64(arenaLevel)+1))
}

// Base cumulative rarity thresholds; anything above epicThreshold is legendary.
const (
	commonThreshold = 0.70
	rareThreshold   = 0.90
	epicThreshold   = 0.98
	luckShift       = 0.005

	minCommon = 0.10
	rareGap   = 0.10
	epicGap   = 0.05
)

// RarityThresholds returns the cumulative common/rare/epic cut-offs after
// shifting them down by luck. Each cut-off is floored so the order holds.
func RarityThresholds(luck int) (common, rare, epic float64) {
	shift := float64(max(0, luck)) * luckShift
	common = math.Max(commonThreshold-shift, minCommon)
	rare = math.Max(rareThreshold-shift, common+rareGap)
	epic = math.Max(epicThreshold-shift, rare+epicGap)
	return common, rare, epic
}

// RollRarity draws a rarity; more luck means fewer commons.
func RollRarity(luck int, rng RNG) Rarity {
	common, rare, epic := RarityThresholds(luck)
	roll := rng.Float64()
	switch {
	case roll < common:
		return Common
	case roll < rare:
		return Rare
	case roll < epic:
		return Epic
	}
	return Legendary
}
