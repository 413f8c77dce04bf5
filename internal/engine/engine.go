// Package engine owns the game state. Every intent and tick runs behind one
// lock, re-validating its preconditions against the current state, and either
// commits fully or leaves the state untouched. Notifications are published on
// the event bus after the lock is released.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/challenge"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/event"
	"github.com/osse101/PixelFarm_Go/internal/grid"
	"github.com/osse101/PixelFarm_Go/internal/logger"
	"github.com/osse101/PixelFarm_Go/internal/modifier"
	"github.com/osse101/PixelFarm_Go/internal/order"
	"github.com/osse101/PixelFarm_Go/internal/progression"
	"github.com/osse101/PixelFarm_Go/internal/utils"
	"github.com/osse101/PixelFarm_Go/internal/weather"
)

// Engine is the single writer of a GameState
type Engine struct {
	mu    sync.Mutex
	state *domain.GameState

	// saveMu orders slot writes; it is taken before mu, never inside it
	saveMu sync.Mutex

	bus     event.Bus
	rng     utils.Rand
	clock   func() time.Time
	orders  *order.Generator
	events  *challenge.Generator
	weather *weather.Roller
}

// Option configures an Engine
type Option func(*Engine)

// WithRand sets the random source used for yields, orders, events and weather
func WithRand(rng utils.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithClock sets the time source used by intents
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithState starts the engine from an existing state instead of a new game
func WithState(state *domain.GameState) Option {
	return func(e *Engine) { e.state = state.Clone() }
}

// New creates an engine publishing to bus. A nil bus disables notifications.
func New(bus event.Bus, opts ...Option) *Engine {
	e := &Engine{
		bus:   bus,
		rng:   utils.NewRand(),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.orders = order.NewGenerator(e.rng)
	e.events = challenge.NewGenerator(e.rng)
	e.weather = weather.NewRoller(e.rng)
	if e.state == nil {
		e.state = NewGame(e.rng, e.clock())
	}
	return e
}

// NewGame builds the starting state for a fresh farm
func NewGame(rng utils.Rand, now time.Time) *domain.GameState {
	w, d := weather.NewRoller(rng).Next()
	state := &domain.GameState{
		Money:          catalog.StartingMoney,
		Inventory:      map[string]int{catalog.StartingItem: catalog.StartingItemCount},
		Plots:          grid.NewPlots(grid.Size, 0),
		Orders:         []domain.Order{},
		OwnedMascots:   []string{},
		Weather:        w,
		WeatherEndTime: now.Add(d),
		GameHour:       catalog.StartingHour,
		LastSaveTime:   now,
	}
	progression.Project(state)
	return state
}

// Snapshot returns a deep copy of the current state
func (e *Engine) Snapshot() *domain.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Reset replaces the state with a fresh game
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	e.state = NewGame(e.rng, e.clock())
	e.mu.Unlock()
	logger.FromContext(ctx).Info("Game reset")
}

// resolver returns the modifier resolver for the active mascot. Callers hold mu.
func (e *Engine) resolver() modifier.Resolver {
	return modifier.For(e.state.ActiveMascot)
}

// grantXP adds boosted XP and reprojects the level. Callers hold mu.
// It returns the level-up event when a threshold was crossed.
func (e *Engine) grantXP(baseXP int, now time.Time) (gained int, levelUp *event.Event) {
	gained = e.resolver().XP(baseXP)
	e.state.XP += gained
	return gained, e.reproject(now)
}

// reproject recomputes level and unlocks. Callers hold mu.
func (e *Engine) reproject(now time.Time) *event.Event {
	prev := progression.Project(e.state)
	if e.state.Level > prev {
		ev := event.NewLevelUpEvent(prev, e.state.Level, now)
		return &ev
	}
	return nil
}

// publish delivers notifications in order. It must be called without mu held.
func (e *Engine) publish(ctx context.Context, events ...event.Event) {
	if e.bus == nil {
		return
	}
	log := logger.FromContext(ctx)
	for _, ev := range events {
		if err := e.bus.Publish(ctx, ev); err != nil {
			log.Warn("Notification handler failed", "type", ev.Type, "error", err)
		}
	}
}
