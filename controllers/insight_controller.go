package controllers

import (
	"net/http"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type InsightsInput struct {
	Lat      *float64 `json:"lat" binding:"required"`
	Lon      *float64 `json:"lon" binding:"required"`
	CityName string   `json:"cityName" binding:"required"`
}

// POST /api/ai/insights
func WeatherInsights(c *gin.Context) {
	var input InsightsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required parameters"})
		return
	}

	weather, err := weatherSvc.CurrentWeather(c.Request.Context(), *input.Lat, *input.Lon)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate insights", "error": err.Error()})
		return
	}

	insights := services.GenerateWeatherInsights(weather, input.CityName)

	c.JSON(http.StatusOK, gin.H{"insights": insights, "weatherData": weather})
}

// POST /api/ai/travel-recommendations
func TravelRecommendations(c *gin.Context) {
	var input struct {
		Cities []models.City `json:"cities" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || len(input.Cities) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No cities provided"})
		return
	}

	recommendations := services.GenerateTravelRecommendations(input.Cities, time.Now())

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
