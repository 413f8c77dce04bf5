// Package weather runs the cosmetic day clock and the weather state machine.
// Nothing here feeds yield, growth or reward math.
package weather

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/utils"
)

// HourStep is how far the game clock moves per tick
const HourStep = 0.04

// HoursPerDay is the clock's period
const HoursPerDay = 24.0

// Weather durations are whole minutes in [MinDurationMinutes, MaxDurationMinutes)
const (
	MinDurationMinutes = 2
	MaxDurationMinutes = 5
)

// cumulative upper bounds of the weather distribution, checked in order
var distribution = []struct {
	upTo    float64
	weather domain.Weather
}{
	{0.40, domain.WeatherSunny},
	{0.60, domain.WeatherCloudy},
	{0.75, domain.WeatherWindy},
	{0.90, domain.WeatherRainy},
	{1.00, domain.WeatherSnowy},
}

// AdvanceHour moves the clock one tick, wrapping at midnight
func AdvanceHour(hour float64) float64 {
	next := math.Mod(hour+HourStep, HoursPerDay)
	if next < 0 {
		next += HoursPerDay
	}
	return next
}

// Roller draws weather states
type Roller struct {
	rng utils.Rand
}

// NewRoller creates a roller drawing from rng
func NewRoller(rng utils.Rand) *Roller {
	return &Roller{rng: rng}
}

// Next draws the next weather state and how long it lasts
func (r *Roller) Next() (domain.Weather, time.Duration) {
	roll := r.rng.Float64()
	w := domain.WeatherSnowy
	for _, band := range distribution {
		if roll <= band.upTo {
			w = band.weather
			break
		}
	}
	minutes := MinDurationMinutes + r.rng.IntN(MaxDurationMinutes-MinDurationMinutes)
	return w, time.Duration(minutes) * time.Minute
}

// Expired reports whether the weather ending at end should be re-rolled at now
func Expired(end, now time.Time) bool {
	return now.After(end)
}

// DisplayName renders a weather state for people, e.g. "Sunny"
func DisplayName(w domain.Weather) string {
	return cases.Title(language.English).String(strings.ToLower(string(w)))
}

// Phase names the part of the day for an hour in [0,24)
func Phase(hour float64) string {
	switch {
	case hour >= 5 && hour < 8:
		return "dawn"
	case hour >= 8 && hour < 18:
		return "day"
	case hour >= 18 && hour < 21:
		return "dusk"
	default:
		return "night"
	}
}
