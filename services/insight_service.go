package services

import (
	"fmt"
	"strings"
	"time"

	"backend/models"
)

// GenerateWeatherInsights renders the rule-based "AI" insight text for one
// reading. Deterministic template, no external calls.
func GenerateWeatherInsights(reading *models.WeatherReading, cityName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🌤️ Weather in %s: %s with %g°C (feels like %g°C).\n\n",
		cityName, reading.Description, reading.Temperature, reading.FeelsLike)

	temp := reading.Temperature
	switch {
	case temp < 0:
		b.WriteString("🧥 Clothing: Heavy winter coat, gloves, hat, and warm boots essential.\n")
		b.WriteString("❄️ Activities: Ice skating, winter sports, or cozy indoor activities.\n")
	case temp < 10:
		b.WriteString("🧥 Clothing: Warm jacket, layers, and closed shoes recommended.\n")
		b.WriteString("🚶 Activities: Great for museums, cafes, or brisk walks.\n")
	case temp < 20:
		b.WriteString("👕 Clothing: Light jacket or sweater, comfortable for walking.\n")
		b.WriteString("🌳 Activities: Perfect for sightseeing, parks, and outdoor exploration.\n")
	case temp < 30:
		b.WriteString("👕 Clothing: Light clothing, t-shirt and pants ideal.\n")
		b.WriteString("☀️ Activities: Excellent for outdoor activities, hiking, and tourism.\n")
	default:
		b.WriteString("🩳 Clothing: Light, breathable clothing and sun protection.\n")
		b.WriteString("🏖️ Activities: Beach time, swimming, or early morning/evening outings.\n")
	}

	if reading.Humidity > 80 {
		b.WriteString("💧 High humidity - stay hydrated and take breaks in shade.\n")
	} else if reading.Humidity < 30 {
		b.WriteString("🌵 Low humidity - use moisturizer and drink plenty of water.\n")
	}

	if reading.WindSpeed > 10 {
		b.WriteString("💨 Windy conditions - secure loose items and dress warmly.\n")
	}

	switch {
	case strings.Contains(reading.Description, "rain"):
		b.WriteString("☔ Don't forget an umbrella and waterproof shoes!")
	case strings.Contains(reading.Description, "snow"):
		b.WriteString("❄️ Watch for slippery conditions and dress in layers.")
	case strings.Contains(reading.Description, "clear") || strings.Contains(reading.Description, "sunny"):
		b.WriteString("☀️ Great day to be outdoors! Don't forget sunscreen.")
	}

	return b.String()
}

// GenerateTravelRecommendations renders packing and seasonal advice for the
// given cities. The season is derived from now, passed in for testability.
func GenerateTravelRecommendations(cities []models.City, now time.Time) string {
	names := make([]string, len(cities))
	for i, city := range cities {
		names[i] = city.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✈️ Travel Recommendations for %s:\n\n", strings.Join(names, ", "))

	b.WriteString("🎒 Packing Essentials:\n")
	b.WriteString("• Versatile clothing for layering\n")
	b.WriteString("• Comfortable walking shoes\n")
	b.WriteString("• Weather-appropriate outerwear\n")
	b.WriteString("• Portable umbrella\n\n")

	if len(cities) > 1 {
		b.WriteString("🗺️ Multi-City Tips:\n")
		b.WriteString("• Check weather forecasts for each destination\n")
		b.WriteString("• Pack for the most extreme weather expected\n")
		b.WriteString("• Consider climate differences between cities\n\n")
	}

	switch month := now.Month(); {
	case month == time.December || month <= time.March:
		b.WriteString("❄️ Winter Travel: Pack warm layers, waterproof boots, and check for seasonal closures.")
	case month >= time.April && month <= time.June:
		b.WriteString("🌸 Spring Travel: Weather can be unpredictable - pack layers and rain gear.")
	case month >= time.July && month <= time.September:
		b.WriteString("☀️ Summer Travel: Light clothing, sun protection, and stay hydrated.")
	default:
		b.WriteString("🍂 Fall Travel: Perfect for sightseeing - pack layers for changing temperatures.")
	}

	return b.String()
}
