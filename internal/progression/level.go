// Package progression maps experience to levels and gates catalog entries on level.
package progression

import (
	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/domain"
)

// LevelFromXP returns the highest level whose threshold is at most xp.
// Negative xp is treated as zero.
func LevelFromXP(xp int) int {
	level := 1
	for l := 2; l <= catalog.MaxLevel(); l++ {
		if xp < catalog.LevelThreshold(l) {
			break
		}
		level = l
	}
	return level
}

// IsUnlocked reports whether something gated at unlockLevel is available at level
func IsUnlocked(unlockLevel, level int) bool {
	return unlockLevel <= level
}

// UnlockedItems returns the ids of every item available at level, in catalog order
func UnlockedItems(level int) []string {
	var ids []string
	for _, it := range catalog.Items() {
		if IsUnlocked(it.UnlockLevel, level) {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// UnlockedEvents returns the event definitions available at level
func UnlockedEvents(level int) []domain.EventDefinition {
	var defs []domain.EventDefinition
	for _, e := range catalog.Events() {
		if IsUnlocked(e.UnlockLevel, level) {
			defs = append(defs, e)
		}
	}
	return defs
}

// UnlockedCatalogItems returns the full item definitions available at level
func UnlockedCatalogItems(level int) []domain.Item {
	var items []domain.Item
	for _, it := range catalog.Items() {
		if IsUnlocked(it.UnlockLevel, level) {
			items = append(items, it)
		}
	}
	return items
}

// Project recomputes the level and unlocked item projections from XP.
// It returns the previous level so callers can detect a level-up.
func Project(state *domain.GameState) (previousLevel int) {
	previousLevel = state.Level
	state.Level = LevelFromXP(state.XP)
	state.UnlockedItems = UnlockedItems(state.Level)
	return previousLevel
}

// XPToNextLevel returns how much XP is still needed for the next level,
// or 0 at the maximum level.
func XPToNextLevel(xp int) int {
	level := LevelFromXP(xp)
	if level >= catalog.MaxLevel() {
		return 0
	}
	return catalog.LevelThreshold(level+1) - xp
}
