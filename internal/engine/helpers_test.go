package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/event"
	"github.com/osse101/PixelFarm_Go/internal/grid"
	"github.com/osse101/PixelFarm_Go/internal/progression"
	"github.com/osse101/PixelFarm_Go/internal/utils"
)

var t0 = time.UnixMilli(1_700_000_000_000)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// constRand always rolls f and picks the first candidate
type constRand struct {
	f float64
}

func (r constRand) Float64() float64 { return r.f }

func (r constRand) IntN(int) int { return 0 }

type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recorder) handle(_ context.Context, ev event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) types() []event.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Type, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Message()
	}
	return out
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// at returns the plot index of column x, row y
func at(x, y int) int {
	return y*grid.Size + x
}

type stateOption func(*domain.GameState)

func withXP(xp int) stateOption {
	return func(s *domain.GameState) { s.XP = xp }
}

func withMoney(money int) stateOption {
	return func(s *domain.GameState) { s.Money = money }
}

func withExpansion(level int) stateOption {
	return func(s *domain.GameState) {
		s.ExpansionLevel = level
		grid.RefreshUnlocks(s.Plots, level)
	}
}

func withInventory(items map[string]int) stateOption {
	return func(s *domain.GameState) {
		for id, n := range items {
			s.Inventory[id] = n
		}
	}
}

func withMascot(id string) stateOption {
	return func(s *domain.GameState) {
		s.OwnedMascots = append(s.OwnedMascots, id)
		s.ActiveMascot = id
	}
}

func withCrop(root int, cropID string, plantedAt time.Time) stateOption {
	return func(s *domain.GameState) {
		w, h, ok := catalog.CropFootprint(cropID)
		if !ok {
			panic("not a crop: " + cropID)
		}
		if err := grid.Place(root, cropID, w, h, plantedAt, s.Plots); err != nil {
			panic(err)
		}
	}
}

func withChallenge(id string, progress int, end time.Time) stateOption {
	return func(s *domain.GameState) {
		s.ActiveEvent = &domain.ActiveEvent{EventID: id, StartTime: end.Add(-time.Minute), EndTime: end, Progress: progress}
	}
}

func testState(opts ...stateOption) *domain.GameState {
	s := NewGame(constRand{f: 0.99}, t0)
	for _, opt := range opts {
		opt(s)
	}
	progression.Project(s)
	return s
}

type harness struct {
	engine *Engine
	clock  *fakeClock
	rec    *recorder
}

func newHarness(t *testing.T, state *domain.GameState, rng utils.Rand) *harness {
	t.Helper()
	require.NoError(t, grid.Validate(state.Plots, catalog.CropFootprint))

	clock := &fakeClock{now: t0}
	rec := &recorder{}
	bus := event.NewMemoryBus()
	event.SubscribeAll(bus, rec.handle)

	if rng == nil {
		rng = utils.NewSeededRand(42)
	}
	e := New(bus, WithState(state), WithRand(rng), WithClock(clock.Now))
	return &harness{engine: e, clock: clock, rec: rec}
}
