package services

import (
	"testing"
	"time"

	"backend/models"
)

var baseTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func notif(city, title string, age time.Duration) models.Notification {
	return models.Notification{
		Kind:      models.NotificationKindAlert,
		Title:     title,
		Message:   title + " in " + city,
		CityName:  city,
		CreatedAt: baseTime.Add(-age),
	}
}

func TestFilterNewAlerts_DedupWindow(t *testing.T) {
	candidate := notif("Paris", "Hot Weather Alert", 0)

	tests := []struct {
		name     string
		existing []models.Notification
		wantKept bool
	}{
		{
			name:     "duplicate 119 minutes old is dropped",
			existing: []models.Notification{notif("Paris", "Hot Weather Alert", 119*time.Minute)},
			wantKept: false,
		},
		{
			name:     "duplicate 121 minutes old is kept",
			existing: []models.Notification{notif("Paris", "Hot Weather Alert", 121*time.Minute)},
			wantKept: true,
		},
		{
			name:     "same title different city is kept",
			existing: []models.Notification{notif("Lyon", "Hot Weather Alert", 10*time.Minute)},
			wantKept: true,
		},
		{
			name:     "same city different title is kept",
			existing: []models.Notification{notif("Paris", "Wind Alert", 10*time.Minute)},
			wantKept: true,
		},
		{
			name:     "no history keeps candidate",
			existing: nil,
			wantKept: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fresh := FilterNewAlerts([]models.Notification{candidate}, tt.existing, baseTime)
			if kept := len(fresh) == 1; kept != tt.wantKept {
				t.Errorf("wantKept=%v, got %v", tt.wantKept, fresh)
			}
		})
	}
}

func TestFilterNewAlerts_EmptyCandidates(t *testing.T) {
	existing := []models.Notification{notif("Paris", "Hot Weather Alert", time.Minute)}
	if fresh := FilterNewAlerts(nil, existing, baseTime); fresh != nil {
		t.Errorf("expected nil for empty candidates, got %v", fresh)
	}
}

func TestFilterNewAlerts_PreservesOrder(t *testing.T) {
	candidates := []models.Notification{
		notif("Paris", "Hot Weather Alert", 0),
		notif("Paris", "High Humidity Alert", 0),
		notif("Paris", "Wind Alert", 0),
	}
	existing := []models.Notification{notif("Paris", "High Humidity Alert", 30*time.Minute)}

	fresh := FilterNewAlerts(candidates, existing, baseTime)

	if len(fresh) != 2 || fresh[0].Title != "Hot Weather Alert" || fresh[1].Title != "Wind Alert" {
		t.Errorf("expected [Hot, Wind] in order, got %v", fresh)
	}
}

// A caller committing the first surviving set and naively re-filtering the
// same candidates must get nothing back the second time.
func TestFilterNewAlerts_CommitThenRefilter(t *testing.T) {
	candidates := []models.Notification{
		notif("Paris", "Hot Weather Alert", 0),
		notif("Paris", "Wind Alert", 0),
	}

	var history []models.Notification
	first := FilterNewAlerts(candidates, history, baseTime)
	if len(first) != 2 {
		t.Fatalf("expected 2 survivors on first pass, got %d", len(first))
	}

	// Commit.
	history = append(history, first...)

	second := FilterNewAlerts(candidates, history, baseTime.Add(10*time.Minute))
	if len(second) != 0 {
		t.Errorf("expected 0 survivors after commit, got %v", second)
	}
}

func TestStaleNotifications(t *testing.T) {
	tests := []struct {
		name      string
		existing  []models.Notification
		cities    []string
		wantStale int
	}{
		{
			name:      "orphan 25 hours old is pruned",
			existing:  []models.Notification{notif("Paris", "Wind Alert", 25*time.Hour)},
			cities:    []string{"London"},
			wantStale: 1,
		},
		{
			name:      "orphan 23 hours old is retained",
			existing:  []models.Notification{notif("Paris", "Wind Alert", 23*time.Hour)},
			cities:    []string{"London"},
			wantStale: 0,
		},
		{
			name:      "tracked city 48 hours old is retained",
			existing:  []models.Notification{notif("Paris", "Wind Alert", 48*time.Hour)},
			cities:    []string{"Paris"},
			wantStale: 0,
		},
		{
			name:      "no tracked cities prunes all old notifications",
			existing:  []models.Notification{notif("Paris", "Wind Alert", 30*time.Hour), notif("Rome", "Hot Weather Alert", 40*time.Hour)},
			cities:    nil,
			wantStale: 2,
		},
		{
			name:      "mixed ages for removed city",
			existing:  []models.Notification{notif("Paris", "Wind Alert", 30*time.Hour), notif("Paris", "Hot Weather Alert", 2*time.Hour)},
			cities:    nil,
			wantStale: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stale := StaleNotifications(tt.existing, tt.cities, baseTime)
			if len(stale) != tt.wantStale {
				t.Errorf("expected %d stale, got %v", tt.wantStale, stale)
			}
		})
	}
}
