package services

import (
	"strings"
	"testing"
	"time"

	"backend/models"
)

func TestGenerateWeatherInsights_HotAndHumid(t *testing.T) {
	reading := &models.WeatherReading{
		Temperature: 38,
		FeelsLike:   41,
		Humidity:    85,
		WindSpeed:   16,
		Description: "sunny",
	}

	insights := GenerateWeatherInsights(reading, "Paris")

	for _, want := range []string{
		"Weather in Paris: sunny with 38°C (feels like 41°C)",
		"Light, breathable clothing",
		"High humidity - stay hydrated",
		"Windy conditions",
		"Don't forget sunscreen",
	} {
		if !strings.Contains(insights, want) {
			t.Errorf("insights missing %q:\n%s", want, insights)
		}
	}
}

func TestGenerateWeatherInsights_FreezingRain(t *testing.T) {
	reading := &models.WeatherReading{
		Temperature: -3,
		FeelsLike:   -8,
		Humidity:    50,
		WindSpeed:   2,
		Description: "light rain",
	}

	insights := GenerateWeatherInsights(reading, "Oslo")

	if !strings.Contains(insights, "Heavy winter coat") {
		t.Errorf("expected winter clothing advice:\n%s", insights)
	}
	if !strings.Contains(insights, "umbrella") {
		t.Errorf("expected rain advice:\n%s", insights)
	}
}

func TestGenerateTravelRecommendations(t *testing.T) {
	cities := []models.City{{Name: "Paris"}, {Name: "Rome"}}
	december := time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)

	recs := GenerateTravelRecommendations(cities, december)

	for _, want := range []string{
		"Travel Recommendations for Paris, Rome",
		"Packing Essentials",
		"Multi-City Tips",
		"Winter Travel",
	} {
		if !strings.Contains(recs, want) {
			t.Errorf("recommendations missing %q:\n%s", want, recs)
		}
	}
}

func TestGenerateTravelRecommendations_SingleCitySeasons(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.February, "Winter Travel"},
		{time.May, "Spring Travel"},
		{time.August, "Summer Travel"},
		{time.October, "Fall Travel"},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			now := time.Date(2024, tt.month, 10, 0, 0, 0, 0, time.UTC)
			recs := GenerateTravelRecommendations([]models.City{{Name: "Kyoto"}}, now)

			if !strings.Contains(recs, tt.want) {
				t.Errorf("expected %q for %s:\n%s", tt.want, tt.month, recs)
			}
			if strings.Contains(recs, "Multi-City Tips") {
				t.Error("single city must not include multi-city tips")
			}
		})
	}
}
