package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/modifier"
	"github.com/osse101/PixelFarm_Go/internal/weather"
)

// awayNoticeThreshold is how long the player must be gone before the load
// summary mentions it
const awayNoticeThreshold = time.Minute

// Report summarises what happened while the game was not running
type Report struct {
	Away            time.Duration `json:"away"`
	CropsReady      int           `json:"crops_ready"`
	WeatherRerolled bool          `json:"weather_rerolled"`
	Messages        []string      `json:"messages"`
}

// AwayMinutes is the away time rounded to whole minutes
func (r Report) AwayMinutes() int {
	return int(math.Round(r.Away.Minutes()))
}

// Reconcile brings a loaded state up to now. It counts crops that finished
// growing after the last save without harvesting them, re-rolls expired
// weather and moves LastSaveTime to now.
func Reconcile(state *domain.GameState, roller *weather.Roller, now time.Time) Report {
	rep := Report{Messages: []string{}}
	if !state.LastSaveTime.IsZero() {
		rep.Away = max(now.Sub(state.LastSaveTime), 0)
	}
	r := modifier.For(state.ActiveMascot)

	for _, p := range state.Plots {
		if !p.IsRoot() || p.PlantTime.IsZero() {
			continue
		}
		item, ok := catalog.Item(p.PlantedCrop)
		if !ok {
			continue
		}
		readyAt := r.ReadyAt(item, p.PlantTime)
		if !readyAt.After(now) && readyAt.After(state.LastSaveTime) {
			rep.CropsReady++
		}
	}

	if rep.CropsReady > 0 {
		rep.Messages = append(rep.Messages, fmt.Sprintf("%d crops finished growing while you were away!", rep.CropsReady))
	}
	if rep.Away > awayNoticeThreshold {
		rep.Messages = append(rep.Messages, fmt.Sprintf("You were away for %d minutes.", rep.AwayMinutes()))
	}

	if weather.Expired(state.WeatherEndTime, now) {
		next, d := roller.Next()
		state.Weather = next
		state.WeatherEndTime = now.Add(d)
		rep.WeatherRerolled = true
	}

	state.LastSaveTime = now
	return rep
}
