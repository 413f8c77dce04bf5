package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/challenge"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/event"
	"github.com/osse101/PixelFarm_Go/internal/grid"
	"github.com/osse101/PixelFarm_Go/internal/modifier"
)

// HarvestOne harvests the crop covering index, redirecting occupied cells to
// their root. drag marks one cell of a paint gesture; its failures are not
// announced.
func (e *Engine) HarvestOne(ctx context.Context, index int, drag bool) (*HarvestResult, error) {
	e.mu.Lock()
	now := e.clock()
	res, events, err := e.harvestOne(index, now)
	e.mu.Unlock()

	if err := e.commit(ctx, IntentHarvest, drag, events, err); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) harvestOne(index int, now time.Time) (*HarvestResult, []event.Event, error) {
	s := e.state
	if index < 0 || index >= len(s.Plots) {
		return nil, nil, fmt.Errorf("%w: index %d", domain.ErrOutOfBounds, index)
	}
	root := grid.RootOf(index, s.Plots)
	if !s.Plots[root].IsRoot() {
		return nil, nil, fmt.Errorf("%w: plot %d", domain.ErrEmptyPlot, index)
	}

	r := e.resolver()
	item, ok := catalog.Item(s.Plots[root].PlantedCrop)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnknownItem, s.Plots[root].PlantedCrop)
	}
	readyAt := r.ReadyAt(item, s.Plots[root].PlantTime)
	if now.Before(readyAt) {
		return nil, nil, fmt.Errorf("%w: %s ready in %s", domain.ErrCropNotReady, item.ID, readyAt.Sub(now).Round(time.Second))
	}

	yields := map[string]int{}
	xp := e.harvestRoot(root, item, r, yields)
	res, events := e.finishHarvest([]int{root}, yields, xp, now)
	return res, events, nil
}

// HarvestAll harvests every ready crop in plot order as one transition. The
// outcome equals harvesting the same plots one at a time in that order.
func (e *Engine) HarvestAll(ctx context.Context) (*HarvestResult, error) {
	e.mu.Lock()
	now := e.clock()
	res, events := e.harvestAll(now)
	e.mu.Unlock()

	e.publish(ctx, events...)
	return res, nil
}

func (e *Engine) harvestAll(now time.Time) (*HarvestResult, []event.Event) {
	s := e.state
	r := e.resolver()

	roots := []int{}
	yields := map[string]int{}
	xp := 0
	for i := range s.Plots {
		p := s.Plots[i]
		if !p.IsRoot() {
			continue
		}
		item, ok := catalog.Item(p.PlantedCrop)
		if !ok || now.Before(r.ReadyAt(item, p.PlantTime)) {
			continue
		}
		xp += e.harvestRoot(i, item, r, yields)
		roots = append(roots, i)
	}

	if len(roots) == 0 {
		return &HarvestResult{Plots: roots, Yields: yields, Level: s.Level}, nil
	}
	return e.finishHarvest(roots, yields, xp, now)
}

// harvestRoot rolls the yield of one ready root, credits it and clears the
// footprint. It returns the boosted XP earned. Callers hold mu.
func (e *Engine) harvestRoot(root int, item domain.Item, r modifier.Resolver, yields map[string]int) int {
	s := e.state
	units := r.Yield(e.rng, s.Plots[root].Tier)
	s.Credit(item.ID, units)
	yields[item.ID] += units

	w, h := item.Footprint()
	grid.Clear(root, w, h, s.Plots)
	return r.XP(item.XPReward)
}

// finishHarvest applies XP, challenge progress and the level projection once
// for the whole harvest. Callers hold mu.
func (e *Engine) finishHarvest(roots []int, yields map[string]int, xp int, now time.Time) (*HarvestResult, []event.Event) {
	s := e.state
	s.XP += xp

	names := make(map[string]string, len(yields))
	for id := range yields {
		if it, ok := catalog.Item(id); ok {
			names[id] = it.Name
		}
	}
	harvested := event.NewHarvestEvent(len(roots), yields, names, xp, now)
	events := []event.Event{harvested}

	res := &HarvestResult{Plots: roots, Yields: yields, XP: xp, Message: harvested.Message()}

	if ev := s.ActiveEvent; ev != nil && challenge.Advance(ev, yields) {
		def, _ := challenge.Definition(ev)
		s.Money += def.RewardMoney
		bonus := e.resolver().XP(def.RewardXP)
		s.XP += bonus
		s.ActiveEvent = nil
		res.ChallengeCompleted = def.ID
		events = append(events, event.NewChallengeCompletedEvent(def.ID, def.Title, ev.Progress, def.TargetAmount, def.RewardMoney, bonus, now))
	}

	levelUp := e.reproject(now)
	res.Level = s.Level
	res.LeveledUp = levelUp != nil
	return res, withLevelUp(events, levelUp)
}
