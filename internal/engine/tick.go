package engine

import (
	"context"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/challenge"
	"github.com/osse101/PixelFarm_Go/internal/event"
	"github.com/osse101/PixelFarm_Go/internal/order"
	"github.com/osse101/PixelFarm_Go/internal/weather"
)

// Tick advances every time-based part of the state to now: clock, weather,
// order expiry and spawning, challenge expiry and starting.
func (e *Engine) Tick(ctx context.Context, now time.Time) TickResult {
	e.mu.Lock()
	res, events := e.tick(now)
	e.mu.Unlock()

	e.publish(ctx, events...)
	return res
}

// Advance ticks at the engine clock. The clock is read under the lock, so
// concurrent ticks apply their times in the order they commit.
func (e *Engine) Advance(ctx context.Context) TickResult {
	e.mu.Lock()
	res, events := e.tick(e.clock())
	e.mu.Unlock()

	e.publish(ctx, events...)
	return res
}

func (e *Engine) tick(now time.Time) (TickResult, []event.Event) {
	s := e.state
	var res TickResult
	var events []event.Event

	// 1. Clock and weather
	s.GameHour = weather.AdvanceHour(s.GameHour)
	if weather.Expired(s.WeatherEndTime, now) {
		next, d := e.weather.Next()
		res.WeatherChanged = next != s.Weather
		s.Weather = next
		s.WeatherEndTime = now.Add(d)
		if res.WeatherChanged {
			events = append(events, event.NewWeatherChangedEvent(string(next), weather.DisplayName(next), s.WeatherEndTime, now))
		}
	}

	// 2. Orders: prune before the cap check
	kept, expired := order.PruneExpired(s.Orders, now)
	s.Orders = kept
	for _, o := range expired {
		res.OrdersExpired = append(res.OrdersExpired, o.ID)
		events = append(events, event.NewOrderExpiredEvent(o.ID, o.RequesterName, o.Emergency, now))
	}
	if e.orders.ShouldSpawn(len(s.Orders)) {
		o := e.orders.Generate(s.Level, s.Orders, now)
		s.Orders = append(s.Orders, o)
		res.OrderSpawned = o.ID
		events = append(events, event.NewOrderSpawnedEvent(o.ID, o.RequesterName, o.RewardMoney, o.RewardXP, o.Emergency, now))
	}

	// 3. Challenges: fail the overdue one, then maybe start another
	if ev := s.ActiveEvent; ev != nil && ev.Expired(now) {
		def, _ := challenge.Definition(ev)
		res.ChallengeFailed = ev.EventID
		events = append(events, event.NewChallengeFailedEvent(ev.EventID, def.Title, ev.Progress, def.TargetAmount, now))
		s.ActiveEvent = nil
	}
	if started, ok := e.events.MaybeStart(s.Level, s.ActiveEvent, now); ok {
		s.ActiveEvent = started
		def, _ := challenge.Definition(started)
		res.ChallengeStarted = started.EventID
		events = append(events, event.NewChallengeStartedEvent(def.ID, def.Title, def.TargetAmount, now))
	}

	return res, events
}
