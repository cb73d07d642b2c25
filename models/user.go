package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email            string           `gorm:"uniqueIndex;not null" json:"email"`
	Password         string           `gorm:"not null" json:"-"`
	Name             string           `gorm:"not null" json:"name"`
	AlertPreferences AlertPreferences `gorm:"embedded;embeddedPrefix:alert_" json:"alertPreferences"`
	ResetToken       string           `json:"-"`
	ResetTokenExp    time.Time        `json:"-"`
	Cities           []City           `json:"cities"`
	Notifications    []Notification   `json:"notifications"`
}

type NotificationChannels struct {
	InApp bool `json:"inApp"`
	Email bool `json:"email"`
}

type AlertPreferences struct {
	Enabled           bool                 `json:"enabled"`
	TempMin           float64              `json:"tempMin"`
	TempMax           float64              `json:"tempMax"`
	HumidityThreshold float64              `json:"humidityThreshold"`
	WindThreshold     float64              `json:"windThreshold"`
	Notifications     NotificationChannels `gorm:"embedded;embeddedPrefix:notify_" json:"notifications"`
}

// DefaultAlertPreferences are applied to every new account.
func DefaultAlertPreferences() AlertPreferences {
	return AlertPreferences{
		Enabled:           true,
		TempMin:           0,
		TempMax:           35,
		HumidityThreshold: 80,
		WindThreshold:     50,
		Notifications:     NotificationChannels{InApp: true, Email: false},
	}
}
