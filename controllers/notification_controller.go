package controllers

import (
	"net/http"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

// GET /api/notifications
func ListNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var notifications []models.Notification
	if err := config.DB.Where("user_id = ?", uid).Order("created_at DESC").Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// PATCH /api/notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	uid := c.GetUint("userID")

	result := config.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", c.Param("id"), uid).
		Update("read", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification as read"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/notifications/preferences
func GetAlertPreferences(c *gin.Context) {
	uid := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch preferences"})
		return
	}

	c.JSON(http.StatusOK, user.AlertPreferences)
}

// PUT /api/notifications/preferences
func UpdateAlertPreferences(c *gin.Context) {
	uid := c.GetUint("userID")

	var prefs models.AlertPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preferences"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences"})
		return
	}

	// Replaced wholesale, as the client always sends the full record.
	user.AlertPreferences = prefs
	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
