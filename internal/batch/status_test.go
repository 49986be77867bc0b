package batch

import (
	"testing"
	"time"

	"github.com/buildstock/batchgo/internal/models"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name         string
		expiry       *time.Time
		availableQty float64
		want         models.Status
	}{
		{"no expiry date", nil, 10, models.StatusActive},
		{"no expiry and depleted", nil, 0, models.StatusActive},
		{"depleted overrides expired", timePtr(now.Add(-5 * day)), 0, models.StatusCompleted},
		{"depleted overrides far future", timePtr(now.Add(100 * day)), 0, models.StatusCompleted},
		{"expired 5 days ago", timePtr(now.Add(-5 * day)), 10, models.StatusInactive},
		{"expires in 10 days", timePtr(now.Add(10 * day)), 5, models.StatusPending},
		{"expires in 29 days", timePtr(now.Add(29 * day)), 5, models.StatusPending},
		{"expires in exactly 30 days", timePtr(now.Add(30 * day)), 5, models.StatusActive},
		{"expires in 90 days", timePtr(now.Add(90 * day)), 5, models.StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.expiry, tt.availableQty, now)
			if got != tt.want {
				t.Errorf("DeriveStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDeriveStatusDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expiry := timePtr(now.Add(10 * 24 * time.Hour))

	first := DeriveStatus(expiry, 5, now)
	for i := 0; i < 10; i++ {
		if got := DeriveStatus(expiry, 5, now); got != first {
			t.Fatalf("DeriveStatus changed between evaluations: %s then %s", first, got)
		}
	}
}

func TestStatusColor(t *testing.T) {
	for _, status := range []models.Status{
		models.StatusActive,
		models.StatusPending,
		models.StatusCompleted,
		models.StatusInactive,
	} {
		if StatusColor(status) == neutralColor {
			t.Errorf("StatusColor(%s) fell through to the neutral color", status)
		}
	}

	if got := StatusColor(models.Status("bogus")); got != neutralColor {
		t.Errorf("StatusColor(bogus) = %s, want %s", got, neutralColor)
	}
}

func TestStatusColorForExpiredBatch(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	status := DeriveStatus(timePtr(now.Add(-5*24*time.Hour)), 10, now)
	if status != models.StatusInactive {
		t.Fatalf("status = %s, want %s", status, models.StatusInactive)
	}
	if got := StatusColor(status); got != statusPalette[models.StatusInactive] {
		t.Errorf("color = %s, want %s", got, statusPalette[models.StatusInactive])
	}
}
