package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/save"
)

// TickJob advances the engine once when processed by the worker pool
type TickJob struct {
	Engine *Engine
	// Observe, when set, receives how long the tick took
	Observe func(time.Duration)
}

// Process runs one tick at the engine's current time
func (j TickJob) Process(ctx context.Context) error {
	start := time.Now()
	j.Engine.Advance(ctx)
	if j.Observe != nil {
		j.Observe(time.Since(start))
	}
	return nil
}

// AutosaveJob writes the game to a store slot without announcing it
type AutosaveJob struct {
	Engine *Engine
	Store  save.Store
	Slot   string
}

// Process saves once
func (j AutosaveJob) Process(ctx context.Context) error {
	if err := j.Engine.writeSlot(ctx, j.Store, j.Slot); err != nil {
		return fmt.Errorf("autosave %s: %w", j.Slot, err)
	}
	return nil
}
