package services

import (
	"strings"
	"testing"

	"backend/models"
)

func defaultPrefs() models.AlertPreferences {
	return models.DefaultAlertPreferences()
}

func TestGenerateAlerts_ColdOnly(t *testing.T) {
	reading := &models.WeatherReading{Temperature: -5, Humidity: 40, WindSpeed: 2}

	alerts := GenerateAlerts(reading, defaultPrefs(), "Oslo")

	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Title != "Cold Weather Alert" {
		t.Errorf("expected Cold Weather Alert, got %q", alerts[0].Title)
	}
	if !strings.Contains(alerts[0].Message, "Oslo") || !strings.Contains(alerts[0].Message, "-5°C") {
		t.Errorf("message missing city or temperature: %q", alerts[0].Message)
	}
	for _, a := range alerts {
		if a.Title == "Hot Weather Alert" {
			t.Error("cold reading must never produce a Hot Weather Alert")
		}
	}
}

func TestGenerateAlerts_HotHumidWindy(t *testing.T) {
	// Paris scenario: 38°C, 85% humidity, 16 m/s (57.6 km/h).
	reading := &models.WeatherReading{Temperature: 38, Humidity: 85, WindSpeed: 16}

	alerts := GenerateAlerts(reading, defaultPrefs(), "Paris")

	want := []string{"Hot Weather Alert", "High Humidity Alert", "Wind Alert"}
	if len(alerts) != len(want) {
		t.Fatalf("expected %d alerts, got %d", len(want), len(alerts))
	}
	for i, title := range want {
		if alerts[i].Title != title {
			t.Errorf("alert %d: expected %q, got %q", i, title, alerts[i].Title)
		}
		if alerts[i].CityName != "Paris" {
			t.Errorf("alert %d: expected city Paris, got %q", i, alerts[i].CityName)
		}
		if alerts[i].Kind != models.NotificationKindAlert {
			t.Errorf("alert %d: expected kind alert, got %q", i, alerts[i].Kind)
		}
	}
}

func TestGenerateAlerts_WindConversion(t *testing.T) {
	tests := []struct {
		name      string
		windMS    float64
		threshold float64
		wantAlert bool
	}{
		{name: "20 m/s is 72 km/h, over 50", windMS: 20, threshold: 50, wantAlert: true},
		{name: "13 m/s is 46.8 km/h, under 50", windMS: 13, threshold: 50, wantAlert: false},
		{name: "missing wind treated as zero", windMS: 0, threshold: 50, wantAlert: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := defaultPrefs()
			prefs.WindThreshold = tt.threshold
			reading := &models.WeatherReading{Temperature: 20, Humidity: 50, WindSpeed: tt.windMS}

			alerts := GenerateAlerts(reading, prefs, "Chicago")

			got := len(alerts) == 1 && alerts[0].Title == "Wind Alert"
			if got != tt.wantAlert {
				t.Errorf("wantAlert=%v, got alerts %v", tt.wantAlert, alerts)
			}
		})
	}
}

func TestGenerateAlerts_WindMessageUsesKmh(t *testing.T) {
	reading := &models.WeatherReading{Temperature: 20, Humidity: 50, WindSpeed: 20}

	alerts := GenerateAlerts(reading, defaultPrefs(), "Chicago")

	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if !strings.Contains(alerts[0].Message, "72 km/h") {
		t.Errorf("expected message to report 72 km/h, got %q", alerts[0].Message)
	}
}

func TestGenerateAlerts_CalmReading(t *testing.T) {
	reading := &models.WeatherReading{Temperature: 20, Humidity: 50, WindSpeed: 3}

	if alerts := GenerateAlerts(reading, defaultPrefs(), "Lisbon"); len(alerts) != 0 {
		t.Errorf("expected no alerts, got %v", alerts)
	}
}

func TestGenerateAlerts_BoundariesAreExclusive(t *testing.T) {
	prefs := defaultPrefs()
	reading := &models.WeatherReading{
		Temperature: prefs.TempMax,
		Humidity:    prefs.HumidityThreshold,
	}

	if alerts := GenerateAlerts(reading, prefs, "Madrid"); len(alerts) != 0 {
		t.Errorf("values exactly at thresholds must not alert, got %v", alerts)
	}
}
