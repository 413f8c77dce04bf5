package domain

// Weather is the categorical sky state. It never feeds gameplay math.
type Weather string

const (
	WeatherSunny  Weather = "SUNNY"
	WeatherCloudy Weather = "CLOUDY"
	WeatherWindy  Weather = "WINDY"
	WeatherRainy  Weather = "RAINY"
	WeatherSnowy  Weather = "SNOWY"
)

// Valid reports whether w is one of the known weather states
func (w Weather) Valid() bool {
	switch w {
	case WeatherSunny, WeatherCloudy, WeatherWindy, WeatherRainy, WeatherSnowy:
		return true
	}
	return false
}
