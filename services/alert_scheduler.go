package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"backend/models"

	"github.com/go-co-op/gocron"
)

// WeatherProvider yields a normalized current-weather reading for coordinates.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, lat, lon float64) (*models.WeatherReading, error)
}

// AlertMailer delivers an alert over the email channel. May be nil.
type AlertMailer interface {
	SendAlertEmail(to string, title string, message string) error
}

// AlertService runs the periodic weather alert check: for every user with
// alerting enabled it prunes stale notifications, fetches weather for each
// tracked city, evaluates threshold rules and commits the alerts that survive
// deduplication. All collaborators and the clock are injected so RunCycle is
// testable without timers or network.
type AlertService struct {
	store    UserStore
	weather  WeatherProvider
	mailer   AlertMailer
	now      func() time.Time
	interval time.Duration
	sched    *gocron.Scheduler
}

func NewAlertService(store UserStore, weather WeatherProvider, mailer AlertMailer, interval time.Duration) *AlertService {
	return &AlertService{
		store:    store,
		weather:  weather,
		mailer:   mailer,
		now:      time.Now,
		interval: interval,
		sched:    gocron.NewScheduler(time.UTC),
	}
}

// Start schedules the recurring alert check. SingletonMode makes gocron skip
// a tick while the previous cycle is still running, so two cycles never race
// against the same user's notification list.
func (s *AlertService) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	_, err := s.sched.Every(minutes).Minutes().SingletonMode().Do(func() {
		log.Println("alerts: running weather alert check")
		s.RunCycle()
	})
	if err != nil {
		return err
	}

	s.sched.StartAsync()
	return nil
}

func (s *AlertService) Stop() {
	if s.sched != nil {
		s.sched.Stop()
	}
}

// RunCycle processes every alert-enabled user once. Users are fanned out on
// goroutines; each user's own prune/fetch/append sequence stays serialized on
// its goroutine. A failure on one user never aborts the others.
func (s *AlertService) RunCycle() {
	users, err := s.store.AlertEnabledUsers()
	if err != nil {
		log.Printf("alerts: loading users failed: %v", err)
		return
	}

	var wg sync.WaitGroup
	for i := range users {
		user := users[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.processUser(&user); err != nil {
				log.Printf("alerts: user %d: %v", user.ID, err)
			}
		}()
	}
	wg.Wait()
}

func (s *AlertService) processUser(user *models.User) error {
	currentCityNames := make([]string, len(user.Cities))
	for i, city := range user.Cities {
		currentCityNames[i] = city.Name
	}

	// Clean up old notifications for removed cities.
	existing, err := s.store.Notifications(user.ID)
	if err != nil {
		return fmt.Errorf("loading notifications: %w", err)
	}
	if stale := StaleNotifications(existing, currentCityNames, s.now()); len(stale) > 0 {
		ids := make([]uint, len(stale))
		for i, n := range stale {
			ids[i] = n.ID
		}
		if err := s.store.DeleteNotifications(user.ID, ids); err != nil {
			return fmt.Errorf("pruning notifications: %w", err)
		}
	}

	// Cities are evaluated strictly in order: the dedup read for a later city
	// must observe alerts appended for an earlier one in this same cycle.
	for _, city := range user.Cities {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		reading, err := s.weather.CurrentWeather(ctx, city.Lat, city.Lon)
		cancel()
		if err != nil {
			log.Printf("alerts: weather fetch failed for %s: %v", city.Name, err)
			continue
		}

		candidates := GenerateAlerts(reading, user.AlertPreferences, city.Name)
		if len(candidates) == 0 {
			continue
		}

		current, err := s.store.Notifications(user.ID)
		if err != nil {
			return fmt.Errorf("loading notifications for %s: %w", city.Name, err)
		}

		fresh := FilterNewAlerts(candidates, current, s.now())
		if len(fresh) == 0 {
			continue
		}

		createdAt := s.now()
		for i := range fresh {
			fresh[i].CreatedAt = createdAt
		}
		if err := s.store.AppendNotifications(user.ID, fresh); err != nil {
			return fmt.Errorf("saving alerts for %s: %w", city.Name, err)
		}

		if s.mailer != nil && user.AlertPreferences.Notifications.Email {
			for _, n := range fresh {
				if err := s.mailer.SendAlertEmail(user.Email, n.Title, n.Message); err != nil {
					log.Printf("alerts: email to %s failed: %v", user.Email, err)
				}
			}
		}
	}

	return nil
}
