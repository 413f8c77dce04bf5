package catalog

// levelXP[i] is the XP required to reach level i. Index 0 is unused and
// mirrors level 1 so the table can be indexed by level directly.
var levelXP = []int{
	0,
	0, 100, 300, 600, 1000,
	1500, 2200, 3000, 4000, 5500,
	7500, 10000, 13000, 17000, 22000,
	28000, 35000, 45000, 60000, 100000,
}

// expansionCosts[i] is the price of moving from expansion level i to i+1
var expansionCosts = []int{1000, 5000, 15000, 40000, 100000}

// Starting values for a fresh game
const (
	StartingMoney     = 50
	StartingHour      = 8.0
	StartingItem      = ItemWheat
	StartingItemCount = 5
)

// MaxLevel is the highest reachable level
func MaxLevel() int {
	return len(levelXP) - 1
}

// LevelThreshold returns the XP needed to reach level, clamped to the table
func LevelThreshold(level int) int {
	if level < 1 {
		return 0
	}
	if level > MaxLevel() {
		level = MaxLevel()
	}
	return levelXP[level]
}

// MaxExpansionLevel is the highest land expansion level
func MaxExpansionLevel() int {
	return len(expansionCosts)
}

// ExpansionCost returns the price of expanding from the given level.
// ok is false when the land is already fully expanded.
func ExpansionCost(currentLevel int) (cost int, ok bool) {
	if currentLevel < 0 || currentLevel >= len(expansionCosts) {
		return 0, false
	}
	return expansionCosts[currentLevel], true
}
