package batch

import (
	"fmt"
	"time"

	"github.com/buildstock/batchgo/internal/models"
)

const (
	// defaultUnitPrice values a batch whose product lookup failed.
	defaultUnitPrice = 100.0
	// defaultCategory labels a batch whose product has no category.
	defaultCategory = "Inventory"
)

// entityLabel builds the deterministic fallback label for an unresolved
// reference, e.g. "Product P-17" or "Warehouse Unknown".
func entityLabel(kind, id string) string {
	if id == "" {
		id = "Unknown"
	}
	return kind + " " + id
}

// buildView derives the UI-facing record from a raw batch and its
// enrichment. Status and color are recomputed from the raw fields on
// every call; UpdatedAt is synthesized from CreatedAt because the backend
// carries no update timestamp.
func buildView(rec models.Batch, e Enrichment, now time.Time) models.BatchView {
	productName := entityLabel("Product", rec.ProductRef)
	price := defaultUnitPrice
	category := defaultCategory
	if e.Product != nil {
		productName = e.Product.Name
		price = e.Product.Price
		if e.Product.CategoryName != "" {
			category = e.Product.CategoryName
		}
	}

	warehouseName := entityLabel("Warehouse", rec.WarehouseRef)
	if e.Warehouse != nil {
		warehouseName = e.Warehouse.Name
	}

	status := DeriveStatus(rec.ExpiryDate, rec.AvailableQuantity, now)

	return models.BatchView{
		Batch:       rec,
		Name:        fmt.Sprintf("%s - %s", productName, rec.BatchNumber),
		Description: fmt.Sprintf("%s batch stored at %s", productName, warehouseName),
		Status:      status,
		Color:       StatusColor(status),
		TotalValue:  rec.Quantity * price,
		Category:    category,
		UpdatedAt:   rec.CreatedAt,
	}
}
