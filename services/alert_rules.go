package services

import (
	"fmt"

	"backend/models"
)

// GenerateAlerts evaluates one weather reading against a user's thresholds
// and returns the candidate alerts, in rule order: cold, hot, humidity, wind.
// Pure and total: a reading with no wind data evaluates as 0 m/s. The
// candidates carry no ID, UserID or CreatedAt; the scheduler stamps those
// when it commits survivors.
func GenerateAlerts(reading *models.WeatherReading, prefs models.AlertPreferences, cityName string) []models.Notification {
	var alerts []models.Notification

	temp := reading.Temperature
	humidity := reading.Humidity
	wind := reading.WindSpeed * 3.6 // m/s -> km/h

	if temp < prefs.TempMin {
		alerts = append(alerts, models.Notification{
			Kind:     models.NotificationKindAlert,
			Title:    "Cold Weather Alert",
			Message:  fmt.Sprintf("Temperature in %s is %g°C. Dress warmly!", cityName, temp),
			CityName: cityName,
		})
	}

	if temp > prefs.TempMax {
		alerts = append(alerts, models.Notification{
			Kind:     models.NotificationKindAlert,
			Title:    "Hot Weather Alert",
			Message:  fmt.Sprintf("Temperature in %s is %g°C. Stay hydrated!", cityName, temp),
			CityName: cityName,
		})
	}

	if humidity > prefs.HumidityThreshold {
		alerts = append(alerts, models.Notification{
			Kind:     models.NotificationKindAlert,
			Title:    "High Humidity Alert",
			Message:  fmt.Sprintf("High humidity in %s (%g%%). Rain possible!", cityName, humidity),
			CityName: cityName,
		})
	}

	if wind > prefs.WindThreshold {
		alerts = append(alerts, models.Notification{
			Kind:     models.NotificationKindAlert,
			Title:    "Wind Alert",
			Message:  fmt.Sprintf("Strong winds in %s (%g km/h). Be careful outdoors!", cityName, wind),
			CityName: cityName,
		})
	}

	return alerts
}
