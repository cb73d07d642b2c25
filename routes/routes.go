package routes

import (
	"net/http"
	"time"

	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
		auth.GET("/me", middlewares.AuthMiddleware(), controllers.Me)
	}

	cities := api.Group("/cities")
	cities.Use(middlewares.AuthMiddleware())
	{
		cities.GET("", controllers.ListCities)
		cities.POST("", controllers.AddCity)
		cities.PATCH("/:cityId/favorite", controllers.ToggleFavorite)
		cities.DELETE("/:cityId", controllers.DeleteCity)
	}

	weather := api.Group("/weather")
	weather.Use(middlewares.AuthMiddleware())
	{
		weather.GET("/current/:lat/:lon", controllers.CurrentWeather)
		weather.GET("/search/:query", controllers.SearchCities)
		weather.GET("/forecast/:lat/:lon", controllers.Forecast)
	}

	notifications := api.Group("/notifications")
	notifications.Use(middlewares.AuthMiddleware())
	{
		notifications.GET("", controllers.ListNotifications)
		notifications.PATCH("/:id/read", controllers.MarkNotificationRead)
		notifications.GET("/preferences", controllers.GetAlertPreferences)
		notifications.PUT("/preferences", controllers.UpdateAlertPreferences)
	}

	ai := api.Group("/ai")
	ai.Use(middlewares.AuthMiddleware())
	{
		ai.POST("/insights", controllers.WeatherInsights)
		ai.POST("/travel-recommendations", controllers.TravelRecommendations)
	}

	return r
}
