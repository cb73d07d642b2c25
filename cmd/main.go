package main

import (
	"log"
	"time"

	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.InitDB()
	config.InitRedis()
	utils.InitSES()

	weatherSvc := services.NewWeatherService()
	controllers.InitWeather(weatherSvc)

	interval, err := time.ParseDuration(config.GetenvDefault("ALERT_CHECK_INTERVAL", "30m"))
	if err != nil {
		log.Fatalf("invalid ALERT_CHECK_INTERVAL: %v", err)
	}

	alerts := services.NewAlertService(services.NewUserStore(config.DB), weatherSvc, utils.SESMailer{}, interval)
	if err := alerts.Start(); err != nil {
		log.Fatalf("failed to start alert scheduler: %v", err)
	}
	defer alerts.Stop()

	r := routes.SetupRouter()
	r.Run(":" + config.GetenvDefault("PORT", "8080"))
}
