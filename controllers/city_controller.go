package controllers

import (
	"net/http"
	"strings"
	"time"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

type AddCityInput struct {
	Name    string   `json:"name" binding:"required"`
	Country string   `json:"country" binding:"required"`
	Lat     *float64 `json:"lat" binding:"required"`
	Lon     *float64 `json:"lon" binding:"required"`
}

// GET /api/cities
func ListCities(c *gin.Context) {
	uid := c.GetUint("userID")

	var cities []models.City
	if err := config.DB.Where("user_id = ?", uid).Order("added_at ASC").Find(&cities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cities)
}

// POST /api/cities
func AddCity(c *gin.Context) {
	uid := c.GetUint("userID")

	var input AddCityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all city details"})
		return
	}

	var existing []models.City
	if err := config.DB.Where("user_id = ?", uid).Find(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	for _, city := range existing {
		if strings.EqualFold(city.Name, input.Name) && strings.EqualFold(city.Country, input.Country) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "City already added"})
			return
		}
	}

	city := models.City{
		UserID:  uid,
		Name:    input.Name,
		Country: input.Country,
		Lat:     *input.Lat,
		Lon:     *input.Lon,
		AddedAt: time.Now(),
	}
	if err := config.DB.Create(&city).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, city)
}

// PATCH /api/cities/:cityId/favorite
func ToggleFavorite(c *gin.Context) {
	uid := c.GetUint("userID")

	var city models.City
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("cityId"), uid).First(&city).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "City not found"})
		return
	}

	city.IsFavorite = !city.IsFavorite
	if err := config.DB.Save(&city).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, city)
}

// DELETE /api/cities/:cityId
func DeleteCity(c *gin.Context) {
	uid := c.GetUint("userID")

	result := config.DB.Where("id = ? AND user_id = ?", c.Param("cityId"), uid).Delete(&models.City{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "City not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "City removed"})
}
