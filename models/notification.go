package models

import "time"

const (
	NotificationKindWeather = "weather"
	NotificationKindAlert   = "alert"
)

// Notification is owned by exactly one user. CityName is free text, not a
// foreign key: an alert may outlive the city it was generated for until the
// retention policy garbage-collects it.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"-"`
	Kind      string    `gorm:"size:20" json:"type"` // "weather" | "alert"
	Title     string    `json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	CityName  string    `json:"city"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
