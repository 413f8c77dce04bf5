// Package challenge starts timed harvest challenges and tracks their progress.
// At most one challenge is active; it ends exactly once, either completed by a
// harvest or failed by the tick that passes its deadline.
package challenge

import (
	"time"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/progression"
	"github.com/osse101/PixelFarm_Go/internal/utils"
)

// StartChance is the per-tick probability of starting a challenge when none is active
const StartChance = 0.01

// Generator rolls new challenges
type Generator struct {
	rng utils.Rand
}

// NewGenerator creates a generator drawing from rng
func NewGenerator(rng utils.Rand) *Generator {
	return &Generator{rng: rng}
}

// MaybeStart rolls StartChance and, on success, starts a challenge chosen
// uniformly among those unlocked at level. It never starts one while another
// is active.
func (g *Generator) MaybeStart(level int, active *domain.ActiveEvent, now time.Time) (*domain.ActiveEvent, bool) {
	if active != nil || !utils.Chance(g.rng, StartChance) {
		return nil, false
	}
	defs := progression.UnlockedEvents(level)
	if len(defs) == 0 {
		return nil, false
	}
	ev := Start(utils.Pick(g.rng, defs), now)
	return &ev, true
}

// Start creates a fresh instance of def
func Start(def domain.EventDefinition, now time.Time) domain.ActiveEvent {
	return domain.ActiveEvent{
		EventID:   def.ID,
		StartTime: now,
		EndTime:   now.Add(def.Duration),
	}
}

// Definition resolves the definition of a running instance
func Definition(ev *domain.ActiveEvent) (domain.EventDefinition, bool) {
	if ev == nil {
		return domain.EventDefinition{}, false
	}
	return catalog.Event(ev.EventID)
}

// Advance adds the harvested units of the challenge's target item, keyed by
// item id, and reports whether the target has been reached.
func Advance(ev *domain.ActiveEvent, harvested map[string]int) bool {
	def, ok := Definition(ev)
	if !ok {
		return false
	}
	if n := harvested[def.TargetItem]; n > 0 {
		ev.Progress += n
	}
	return ev.Progress >= def.TargetAmount
}

// Remaining returns how many units are still needed
func Remaining(ev *domain.ActiveEvent) int {
	def, ok := Definition(ev)
	if !ok {
		return 0
	}
	return max(def.TargetAmount-ev.Progress, 0)
}
