package services

import (
	"backend/models"

	"gorm.io/gorm"
)

// UserStore is the persistence surface the alert scheduler depends on.
type UserStore interface {
	// AlertEnabledUsers returns every user with alerting enabled, cities preloaded.
	AlertEnabledUsers() ([]models.User, error)
	// Notifications returns the user's current notification list. Always a
	// fresh read: the scheduler must see appends made earlier in the same cycle.
	Notifications(userID uint) ([]models.Notification, error)
	// AppendNotifications inserts the given notifications for the user in one write.
	AppendNotifications(userID uint, notifications []models.Notification) error
	// DeleteNotifications removes the user's notifications with the given IDs.
	DeleteNotifications(userID uint, ids []uint) error
}

type gormUserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) AlertEnabledUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Preload("Cities").Where("alert_enabled = ?", true).Find(&users).Error
	return users, err
}

func (s *gormUserStore) Notifications(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&notifications).Error
	return notifications, err
}

func (s *gormUserStore) AppendNotifications(userID uint, notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	for i := range notifications {
		notifications[i].UserID = userID
	}
	return s.db.Create(&notifications).Error
}

func (s *gormUserStore) DeleteNotifications(userID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Where("user_id = ? AND id IN ?", userID, ids).Delete(&models.Notification{}).Error
}
