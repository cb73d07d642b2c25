package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

var weatherSvc *services.WeatherService

// InitWeather injects the shared weather client so the circuit breaker and
// cache persist across requests.
func InitWeather(ws *services.WeatherService) {
	weatherSvc = ws
}

// GET /api/weather/current/:lat/:lon
func CurrentWeather(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Param("lat"), 64)
	lon, err2 := strconv.ParseFloat(c.Param("lon"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid coordinates"})
		return
	}

	weather, err := weatherSvc.CurrentWeather(c.Request.Context(), lat, lon)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch weather data", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, weather)
}

// GET /api/weather/search/:query
func SearchCities(c *gin.Context) {
	cities, err := weatherSvc.SearchCities(c.Request.Context(), c.Param("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to search cities", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cities)
}

// GET /api/weather/forecast/:lat/:lon
func Forecast(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Param("lat"), 64)
	lon, err2 := strconv.ParseFloat(c.Param("lon"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid coordinates"})
		return
	}

	if err := weatherSvc.Forecast(c.Request.Context(), lat, lon); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrForecastUnavailable) {
			status = http.StatusNotImplemented
		}
		c.JSON(status, gin.H{"message": "Failed to fetch forecast data", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
