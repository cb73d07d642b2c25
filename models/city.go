package models

import "time"

type City struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index" json:"-"`
	Name       string    `gorm:"not null" json:"name"`
	Country    string    `gorm:"not null" json:"country"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	IsFavorite bool      `json:"isFavorite"`
	AddedAt    time.Time `json:"addedAt"`
}
