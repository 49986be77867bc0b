package batch

import (
	"time"

	"github.com/buildstock/batchgo/internal/models"
)

func timePtr(t time.Time) *time.Time { return &t }

// FallbackDataset is the static dataset served when the backend is
// unreachable. Content is fixed; status and color are still derived at
// call time so the records age correctly between renders.
func FallbackDataset(now time.Time) []models.BatchView {
	day := 24 * time.Hour

	entries := []struct {
		raw       models.Batch
		product   models.Product
		warehouse models.Warehouse
	}{
		{
			raw: models.Batch{
				ID:                "offline-1",
				ProductRef:        "prod-cement",
				WarehouseRef:      "wh-central",
				BatchNumber:       "CEM-2025-001",
				Quantity:          500,
				AvailableQuantity: 320,
				ManufacturingDate: timePtr(now.Add(-60 * day)),
				ExpiryDate:        timePtr(now.Add(120 * day)),
				CreatedAt:         now.Add(-60 * day),
			},
			product:   models.Product{ID: "prod-cement", Name: "Portland Cement 42.5", Price: 12.5, CategoryName: "Building Materials"},
			warehouse: models.Warehouse{ID: "wh-central", Name: "Central Warehouse"},
		},
		{
			raw: models.Batch{
				ID:                "offline-2",
				ProductRef:        "prod-tiles",
				WarehouseRef:      "wh-north",
				BatchNumber:       "TIL-2025-014",
				Quantity:          200,
				AvailableQuantity: 48,
				ManufacturingDate: timePtr(now.Add(-90 * day)),
				ExpiryDate:        timePtr(now.Add(14 * day)),
				CreatedAt:         now.Add(-90 * day),
			},
			product:   models.Product{ID: "prod-tiles", Name: "Ceramic Floor Tiles 60x60", Price: 28, CategoryName: "Finishing"},
			warehouse: models.Warehouse{ID: "wh-north", Name: "North Depot"},
		},
		{
			raw: models.Batch{
				ID:                "offline-3",
				ProductRef:        "prod-adhesive",
				WarehouseRef:      "wh-central",
				BatchNumber:       "ADH-2024-093",
				Quantity:          80,
				AvailableQuantity: 0,
				ManufacturingDate: timePtr(now.Add(-200 * day)),
				ExpiryDate:        timePtr(now.Add(-10 * day)),
				CreatedAt:         now.Add(-200 * day),
			},
			product:   models.Product{ID: "prod-adhesive", Name: "Tile Adhesive C2TE", Price: 9.8, CategoryName: "Building Materials"},
			warehouse: models.Warehouse{ID: "wh-central", Name: "Central Warehouse"},
		},
	}

	views := make([]models.BatchView, 0, len(entries))
	for _, s := range entries {
		views = append(views, buildView(s.raw, Enrichment{Product: &s.product, Warehouse: &s.warehouse}, now))
	}
	return views
}

// seedPayloads are the canonical sample records created when the backend
// is reachable but holds no data yet.
func seedPayloads(now time.Time) []models.BatchPayload {
	day := 24 * time.Hour

	return []models.BatchPayload{
		{
			ProductRef:        "prod-cement",
			WarehouseRef:      "wh-central",
			BatchNumber:       "CEM-2025-001",
			ManufacturingDate: timePtr(now.Add(-30 * day)),
			ExpiryDate:        timePtr(now.Add(180 * day)),
			Quantity:          500,
			AvailableQuantity: 500,
		},
		{
			ProductRef:        "prod-paint",
			WarehouseRef:      "wh-north",
			BatchNumber:       "PNT-2025-007",
			ManufacturingDate: timePtr(now.Add(-14 * day)),
			ExpiryDate:        timePtr(now.Add(21 * day)),
			Quantity:          120,
			AvailableQuantity: 96,
		},
		{
			ProductRef:        "prod-rebar",
			WarehouseRef:      "wh-central",
			BatchNumber:       "RBR-2025-002",
			ManufacturingDate: timePtr(now.Add(-7 * day)),
			Quantity:          1000,
			AvailableQuantity: 1000,
		},
	}
}
