package models

import (
	"time"
)

// Status is the presentation state of a batch, derived from its
// temporal/quantity fields. It is never stored by the backend.
type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusInactive  Status = "inactive"
)

// Batch mirrors the backend 'batches' resource.
// The backend provides no update timestamp.
type Batch struct {
	ID                string     `json:"id"`
	ProductRef        string     `json:"product_ref"`
	WarehouseRef      string     `json:"warehouse_ref"`
	BatchNumber       string     `json:"batch_number"`
	Quantity          float64    `json:"quantity"`
	AvailableQuantity float64    `json:"available_quantity"`
	ManufacturingDate *time.Time `json:"manufacturing_date,omitempty"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// BatchView is the UI-facing batch record: all raw fields plus the
// computed presentation fields. Status and Color are recomputed on every
// transform; they must never be persisted.
type BatchView struct {
	Batch
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Color       string    `json:"color"`
	TotalValue  float64   `json:"total_value"`
	Category    string    `json:"category"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BatchPayload is the backend-shaped write body for POST/PUT on /batches/.
type BatchPayload struct {
	ProductRef        string     `json:"product_ref"`
	WarehouseRef      string     `json:"warehouse_ref"`
	BatchNumber       string     `json:"batch_number"`
	ManufacturingDate *time.Time `json:"manufacturing_date,omitempty"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
	Quantity          float64    `json:"quantity"`
	AvailableQuantity float64    `json:"available_quantity"`
}

// BatchInput is the caller-facing request shape for create/update.
// Field names follow the UI forms, not the backend columns; the facade
// maps them onto a BatchPayload and fills in backend-required fields the
// UI does not collect.
type BatchInput struct {
	ProductID         string     `json:"product_id"`
	WarehouseID       string     `json:"warehouse_id"`
	LotNumber         string     `json:"lot_number"`
	Quantity          float64    `json:"quantity"`
	AvailableQuantity *float64   `json:"available_quantity,omitempty"`
	ManufacturingDate *time.Time `json:"manufacturing_date,omitempty"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
}

// Payload maps the input onto the backend write shape. AvailableQuantity
// defaults to the full quantity when the form leaves it blank.
func (in BatchInput) Payload() BatchPayload {
	available := in.Quantity
	if in.AvailableQuantity != nil {
		available = *in.AvailableQuantity
	}
	return BatchPayload{
		ProductRef:        in.ProductID,
		WarehouseRef:      in.WarehouseID,
		BatchNumber:       in.LotNumber,
		ManufacturingDate: in.ManufacturingDate,
		ExpiryDate:        in.ExpiryDate,
		Quantity:          in.Quantity,
		AvailableQuantity: available,
	}
}
