package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"backend/config"
	"backend/models"

	"github.com/sony/gobreaker"
)

// ErrForecastUnavailable mirrors the weatherstack free plan limitation.
var ErrForecastUnavailable = errors.New("forecast not available with current plan")

// WeatherService talks to the weatherstack API and normalizes its responses.
// A circuit breaker guards the upstream; readings are cached briefly in Redis
// when a client is configured.
type WeatherService struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker
}

func NewWeatherService() *WeatherService {
	return &WeatherService{
		baseURL: config.GetenvDefault("WEATHERSTACK_BASE_URL", "https://api.weatherstack.com"),
		apiKey:  os.Getenv("WEATHERSTACK_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "weatherstack",
			Timeout: 60 * time.Second,
		}),
	}
}

type weatherstackResponse struct {
	Error *struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
	Location struct {
		Name    string `json:"name"`
		Country string `json:"country"`
		Region  string `json:"region"`
		Lat     string `json:"lat"`
		Lon     string `json:"lon"`
	} `json:"location"`
	Current struct {
		Temperature         float64  `json:"temperature"`
		Feelslike           float64  `json:"feelslike"`
		Humidity            float64  `json:"humidity"`
		Pressure            float64  `json:"pressure"`
		WindSpeed           float64  `json:"wind_speed"` // km/h
		WeatherDescriptions []string `json:"weather_descriptions"`
	} `json:"current"`
}

func (s *WeatherService) fetchCurrent(ctx context.Context, query string) (*weatherstackResponse, error) {
	params := url.Values{}
	params.Set("access_key", s.apiKey)
	params.Set("query", query)
	params.Set("units", "m")

	u := fmt.Sprintf("%s/current?%s", s.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weatherstack request: %w", err)
	}

	result, err := s.cb.Execute(func() (interface{}, error) {
		resp, err := s.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read weatherstack response: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("weatherstack API error %d: %s", resp.StatusCode, string(body))
		}
		return body, nil
	})
	if err != nil {
		return nil, fmt.Errorf("weather API error: %w", err)
	}

	var wr weatherstackResponse
	if err := json.Unmarshal(result.([]byte), &wr); err != nil {
		return nil, fmt.Errorf("failed to parse weatherstack JSON: %w", err)
	}
	if wr.Error != nil {
		return nil, fmt.Errorf("weather API error: %s", wr.Error.Info)
	}
	return &wr, nil
}

// CurrentWeather fetches the normalized reading for coordinates.
func (s *WeatherService) CurrentWeather(ctx context.Context, lat, lon float64) (*models.WeatherReading, error) {
	cacheKey := fmt.Sprintf("weather:%.4f,%.4f", lat, lon)
	if config.RDB != nil {
		if cached, err := config.RDB.Get(ctx, cacheKey).Result(); err == nil {
			var reading models.WeatherReading
			if err := json.Unmarshal([]byte(cached), &reading); err == nil {
				return &reading, nil
			}
		}
	}

	wr, err := s.fetchCurrent(ctx, fmt.Sprintf("%g,%g", lat, lon))
	if err != nil {
		return nil, err
	}

	description := ""
	if len(wr.Current.WeatherDescriptions) > 0 {
		description = strings.ToLower(wr.Current.WeatherDescriptions[0])
	}

	reading := &models.WeatherReading{
		Temperature: wr.Current.Temperature,
		FeelsLike:   wr.Current.Feelslike,
		Humidity:    wr.Current.Humidity,
		Pressure:    wr.Current.Pressure,
		WindSpeed:   wr.Current.WindSpeed / 3.6, // weatherstack reports km/h
		Description: description,
		City:        wr.Location.Name,
	}

	if config.RDB != nil {
		if buf, err := json.Marshal(reading); err == nil {
			config.RDB.Set(ctx, cacheKey, buf, 10*time.Minute)
		}
	}

	return reading, nil
}

// SearchCities geocodes a free-text query through the same endpoint.
func (s *WeatherService) SearchCities(ctx context.Context, query string) ([]models.CityMatch, error) {
	wr, err := s.fetchCurrent(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("geocoding API error: %w", err)
	}

	lat, _ := strconv.ParseFloat(wr.Location.Lat, 64)
	lon, _ := strconv.ParseFloat(wr.Location.Lon, 64)

	return []models.CityMatch{{
		Name:    wr.Location.Name,
		Country: wr.Location.Country,
		Lat:     lat,
		Lon:     lon,
		State:   wr.Location.Region,
	}}, nil
}

// Forecast is not available on the current weatherstack plan.
func (s *WeatherService) Forecast(ctx context.Context, lat, lon float64) error {
	return ErrForecastUnavailable
}
