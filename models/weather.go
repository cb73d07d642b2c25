package models

// WeatherReading is a normalized current-weather snapshot. Not persisted.
// WindSpeed is meters/second; the alert rules convert to km/h themselves.
type WeatherReading struct {
	Temperature float64 `json:"temperature"` // °C
	FeelsLike   float64 `json:"feelsLike"`   // °C
	Humidity    float64 `json:"humidity"`    // %
	Pressure    float64 `json:"pressure"`    // hPa
	WindSpeed   float64 `json:"windSpeed"`   // m/s
	Description string  `json:"description"`
	City        string  `json:"city"`
}

// CityMatch is a geocoding result from the weather provider.
type CityMatch struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	State   string  `json:"state"`
}
