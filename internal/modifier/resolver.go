// Package modifier applies the active mascot's effect and the land-tier yield
// multiplier to growth time, craft time, XP, order money and harvest yield.
package modifier

import (
	"math"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/utils"
)

// Effect tuning
const (
	SpeedBasicFactor      = 0.75
	SpeedBasicMaxLevel    = 5
	SpeedAdvancedFactor   = 0.8
	SpeedAdvancedMinLevel = 10
	CraftSpeedFactor      = 0.8
	LuckyDoubleChance     = 0.15

	// TierYieldStep is the extra yield per land tier
	TierYieldStep = 0.2
)

// Resolver applies the single active mascot effect. The zero value applies no effect.
type Resolver struct {
	Effect domain.MascotEffect
}

// For returns the resolver for the given active mascot id ("" for none)
func For(activeMascot string) Resolver {
	if m, ok := catalog.Mascot(activeMascot); ok {
		return Resolver{Effect: m.Effect}
	}
	return Resolver{}
}

// GrowthTime returns the crop's growth duration under the active effect
func (r Resolver) GrowthTime(crop domain.Item) time.Duration {
	d := crop.GrowthTime
	switch {
	case r.Effect == domain.EffectSpeedBasic && crop.UnlockLevel <= SpeedBasicMaxLevel:
		return scale(d, SpeedBasicFactor)
	case r.Effect == domain.EffectSpeedAdvanced && crop.UnlockLevel >= SpeedAdvancedMinLevel:
		return scale(d, SpeedAdvancedFactor)
	default:
		return d
	}
}

// ReadyAt returns when a crop planted at plantedAt finishes growing
func (r Resolver) ReadyAt(crop domain.Item, plantedAt time.Time) time.Time {
	return plantedAt.Add(r.GrowthTime(crop))
}

// CraftTime returns the recipe's craft duration under the active effect
func (r Resolver) CraftTime(recipe domain.Recipe) time.Duration {
	if r.Effect == domain.EffectCraftSpeed {
		return scale(recipe.CraftTime, CraftSpeedFactor)
	}
	return recipe.CraftTime
}

// XP returns an XP grant under the active effect
func (r Resolver) XP(base int) int {
	if r.Effect == domain.EffectXPBoost {
		return boost(base)
	}
	return base
}

// OrderMoney returns an order's money reward under the active effect.
// No other money source is boosted.
func (r Resolver) OrderMoney(base int) int {
	if r.Effect == domain.EffectMoneyBoost {
		return boost(base)
	}
	return base
}

// Yield rolls the units produced by one harvest on a plot of the given tier.
// Tier rounding happens first; the lucky double applies to the rounded count.
func (r Resolver) Yield(rng utils.Rand, tier int) int {
	units := StochasticRound(rng, TierYieldMultiplier(tier))
	if r.Effect == domain.EffectLuckyYield && utils.Chance(rng, LuckyDoubleChance) {
		units *= 2
	}
	return units
}

// TierYieldMultiplier is 1 + 0.2 per tier
func TierYieldMultiplier(tier int) float64 {
	return 1 + float64(tier)*TierYieldStep
}

// StochasticRound returns floor(m) plus one more with probability frac(m)
func StochasticRound(rng utils.Rand, m float64) int {
	whole := math.Floor(m)
	n := int(whole)
	if frac := m - whole; frac > 1e-9 && rng.Float64() < frac {
		n++
	}
	return n
}

func scale(d time.Duration, factor float64) time.Duration {
	return time.Duration(math.Round(float64(d) * factor))
}

// boost multiplies by 1.2 and rounds up, in integer arithmetic
func boost(base int) int {
	if base <= 0 {
		return base
	}
	return (base*6 + 4) / 5
}
