package batch

import (
	"time"

	"github.com/buildstock/batchgo/internal/models"
)

// pendingWindow is how close to expiry a batch must be before it is
// flagged as pending. Exactly 30 days out is still active.
const pendingWindow = 30 * 24 * time.Hour

// DeriveStatus maps a batch's expiry and available quantity to its
// presentation status. The rules form an ordered decision list; the first
// match wins:
//
//  1. no expiry date          -> active
//  2. available quantity == 0 -> completed (even when already expired)
//  3. expired                 -> inactive
//  4. expires within 30 days  -> pending
//  5. otherwise               -> active
func DeriveStatus(expiry *time.Time, availableQty float64, now time.Time) models.Status {
	if expiry == nil {
		return models.StatusActive
	}
	if availableQty == 0 {
		return models.StatusCompleted
	}
	if expiry.Before(now) {
		return models.StatusInactive
	}
	if expiry.Sub(now) < pendingWindow {
		return models.StatusPending
	}
	return models.StatusActive
}

var statusPalette = map[models.Status]string{
	models.StatusActive:    "#4CAF50",
	models.StatusPending:   "#FF9800",
	models.StatusCompleted: "#2196F3",
	models.StatusInactive:  "#F44336",
}

// neutralColor is used for any status outside the palette.
const neutralColor = "#9E9E9E"

// StatusColor returns the display color for a status. Unknown values map
// to a neutral gray; the lookup never fails.
func StatusColor(status models.Status) string {
	if color, ok := statusPalette[status]; ok {
		return color
	}
	return neutralColor
}
