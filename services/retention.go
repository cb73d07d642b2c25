package services

import (
	"time"

	"backend/models"
)

const (
	// dedupWindow: a candidate matching a notification younger than this is a duplicate.
	dedupWindow = 2 * time.Hour
	// staleAfter: orphaned notifications older than this are garbage-collected.
	staleAfter = 24 * time.Hour
)

// FilterNewAlerts drops every candidate for which a notification with the
// same city and title already exists inside the trailing dedup window.
// Survivors keep their original order. Pure: callers commit the result.
func FilterNewAlerts(candidates []models.Notification, existing []models.Notification, now time.Time) []models.Notification {
	if len(candidates) == 0 {
		return nil
	}

	cutoff := now.Add(-dedupWindow)
	var recent []models.Notification
	for _, n := range existing {
		if n.CreatedAt.After(cutoff) {
			recent = append(recent, n)
		}
	}

	var fresh []models.Notification
	for _, cand := range candidates {
		duplicate := false
		for _, n := range recent {
			if n.CityName == cand.CityName && n.Title == cand.Title {
				duplicate = true
				break
			}
		}
		if !duplicate {
			fresh = append(fresh, cand)
		}
	}
	return fresh
}

// StaleNotifications returns the notifications eligible for removal: those
// whose city is no longer tracked AND which are older than the staleness
// window. A recently orphaned notification is kept so that removing and
// re-adding a city does not wipe its alert history.
func StaleNotifications(existing []models.Notification, currentCityNames []string, now time.Time) []models.Notification {
	cutoff := now.Add(-staleAfter)

	tracked := make(map[string]struct{}, len(currentCityNames))
	for _, name := range currentCityNames {
		tracked[name] = struct{}{}
	}

	var stale []models.Notification
	for _, n := range existing {
		if _, ok := tracked[n.CityName]; ok {
			continue
		}
		if n.CreatedAt.Before(cutoff) {
			stale = append(stale, n)
		}
	}
	return stale
}
