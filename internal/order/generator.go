// Package order synthesises procedural market orders.
package order

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/progression"
	"github.com/osse101/PixelFarm_Go/internal/utils"
)

// Generation tuning
const (
	MaxOpen     = 3
	SpawnChance = 0.05

	EmergencyChance = 0.15

	MinLines     = 1
	MaxLines     = 3
	MinCropCount = 3
	MaxCropCount = 7
	ProductCount = 1

	NormalMoneyMult    = 1.5
	NormalXPMult       = 0.5
	NormalDuration     = 5 * time.Minute
	EmergencyMoneyMult = 2.5
	EmergencyXPMult    = 1.0
	EmergencyDuration  = 2 * time.Minute
)

var requesterNames = []string{
	"Mayor Thomas", "Granny Smith", "Chef Pierre", "Wizard Zale", "Merchant Goro",
	"Little Timmy", "Farmer Joe", "Witch Hazel", "Captain Redbeard", "Lady Victoria",
	"Carpenter Robin", "Blacksmith Clint", "Dr. Harvey", "Artist Leah", "Fisherman Willy",
}

var requesterQuotes = []string{
	"I need these for my secret recipe!",
	"The festival is starting soon, hurry!",
	"I'm starving, please help.",
	"Will pay extra for fresh goods.",
	"Don't ask why I need so many...",
	"My guests will be arriving any minute!",
	"The spirits demanded this offering.",
	"Just a little snack for the road.",
	"I bet you can't grow these in time.",
	"Quality ingredients make quality meals.",
	"My cat loves these, strangely enough.",
	"It's for a science experiment!",
}

// Generator builds orders from the items unlocked at a level
type Generator struct {
	rng utils.Rand
}

// NewGenerator creates a generator drawing from rng
func NewGenerator(rng utils.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate draws a new order for a player at level. The id never collides
// with any of the open orders.
func (g *Generator) Generate(level int, open []domain.Order, now time.Time) domain.Order {
	available := progression.UnlockedCatalogItems(level)

	var lines []domain.ItemCount
	draws := utils.RandomInt(g.rng, MinLines, MaxLines)
	for i := 0; i < draws; i++ {
		item := utils.Pick(g.rng, available)
		count := ProductCount
		if item.IsCrop() {
			count = utils.RandomInt(g.rng, MinCropCount, MaxCropCount)
		}
		lines = addLine(lines, item.ID, count)
	}

	emergency := utils.Chance(g.rng, EmergencyChance)
	money, xp := Rewards(TotalValue(lines), emergency)
	duration := NormalDuration
	if emergency {
		duration = EmergencyDuration
	}

	return domain.Order{
		ID:             g.newID(open, now),
		Items:          lines,
		RewardMoney:    money,
		RewardXP:       xp,
		ExpiresAt:      now.Add(duration),
		RequesterName:  utils.Pick(g.rng, requesterNames),
		RequesterQuote: utils.Pick(g.rng, requesterQuotes),
		Emergency:      emergency,
	}
}

// addLine merges repeated draws of the same item into one line
func addLine(lines []domain.ItemCount, itemID string, count int) []domain.ItemCount {
	for i := range lines {
		if lines[i].ItemID == itemID {
			lines[i].Count += count
			return lines
		}
	}
	return append(lines, domain.ItemCount{ItemID: itemID, Count: count})
}

// TotalValue sums sellPrice x count over the lines
func TotalValue(lines []domain.ItemCount) int {
	total := 0
	for _, l := range lines {
		if it, ok := catalog.Item(l.ItemID); ok {
			total += it.SellPrice * l.Count
		}
	}
	return total
}

// Rewards prices an order worth total
func Rewards(total int, emergency bool) (money, xp int) {
	moneyMult, xpMult := NormalMoneyMult, NormalXPMult
	if emergency {
		moneyMult, xpMult = EmergencyMoneyMult, EmergencyXPMult
	}
	return int(math.Floor(float64(total) * moneyMult)), int(math.Floor(float64(total) * xpMult))
}

func (g *Generator) newID(open []domain.Order, now time.Time) string {
	for {
		id := fmt.Sprintf("order_%d_%s", now.UnixMilli(), uuid.NewString())
		if !slices.ContainsFunc(open, func(o domain.Order) bool { return o.ID == id }) {
			return id
		}
	}
}

// PruneExpired drops every order expired at now and returns the kept and dropped orders
func PruneExpired(orders []domain.Order, now time.Time) (kept, expired []domain.Order) {
	for _, o := range orders {
		if o.Expired(now) {
			expired = append(expired, o)
			continue
		}
		kept = append(kept, o)
	}
	return kept, expired
}

// ShouldSpawn rolls the per-tick spawn chance when below the open-order cap
func (g *Generator) ShouldSpawn(open int) bool {
	return open < MaxOpen && utils.Chance(g.rng, SpawnChance)
}
