package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/buildstock/batchgo/internal/models"
	"github.com/google/uuid"
)

// MemoryGateway is an in-memory Gateway used as the mock service mode and
// as the store behind the mock backend server. Failure toggles let tests
// and demos simulate an unreachable or flaky backend.
type MemoryGateway struct {
	mu         sync.RWMutex
	batches    map[string]models.Batch
	order      []string
	products   map[string]models.Product
	warehouses map[string]models.Warehouse

	// Failure injection. When a flag is set the corresponding call
	// returns an error without touching the store.
	FailList    bool
	FailGet     bool
	FailCreate  bool
	FailUpdate  bool
	FailDelete  bool
	FailLookups bool
}

// NewMemoryGateway creates an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		batches:    make(map[string]models.Batch),
		products:   make(map[string]models.Product),
		warehouses: make(map[string]models.Warehouse),
	}
}

// Code returns the gateway code for registry lookup.
func (g *MemoryGateway) Code() string { return "memory" }

// AddProduct seeds a product into the store.
func (g *MemoryGateway) AddProduct(p models.Product) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.products[p.ID] = p
}

// AddWarehouse seeds a warehouse into the store.
func (g *MemoryGateway) AddWarehouse(w models.Warehouse) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.warehouses[w.ID] = w
}

// PutBatch inserts or replaces a batch, preserving insertion order.
func (g *MemoryGateway) PutBatch(b models.Batch) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.putLocked(b)
}

func (g *MemoryGateway) putLocked(b models.Batch) {
	if _, exists := g.batches[b.ID]; !exists {
		g.order = append(g.order, b.ID)
	}
	g.batches[b.ID] = b
}

func (g *MemoryGateway) ListBatches(ctx context.Context) ([]models.Batch, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.FailList {
		return nil, fmt.Errorf("memory gateway: list unavailable")
	}
	out := make([]models.Batch, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.batches[id])
	}
	return out, nil
}

func (g *MemoryGateway) GetBatch(ctx context.Context, id string) (*models.Batch, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.FailGet {
		return nil, fmt.Errorf("memory gateway: get unavailable")
	}
	b, ok := g.batches[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (g *MemoryGateway) CreateBatch(ctx context.Context, payload models.BatchPayload) (*models.Batch, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailCreate {
		return nil, fmt.Errorf("memory gateway: create unavailable")
	}
	b := models.Batch{
		ID:                uuid.NewString(),
		ProductRef:        payload.ProductRef,
		WarehouseRef:      payload.WarehouseRef,
		BatchNumber:       payload.BatchNumber,
		Quantity:          payload.Quantity,
		AvailableQuantity: payload.AvailableQuantity,
		ManufacturingDate: payload.ManufacturingDate,
		ExpiryDate:        payload.ExpiryDate,
		CreatedAt:         time.Now().UTC(),
	}
	g.putLocked(b)
	return &b, nil
}

func (g *MemoryGateway) UpdateBatch(ctx context.Context, id string, payload models.BatchPayload) (*models.Batch, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailUpdate {
		return nil, fmt.Errorf("memory gateway: update unavailable")
	}
	b, ok := g.batches[id]
	if !ok {
		return nil, ErrNotFound
	}
	if payload.ProductRef != "" {
		b.ProductRef = payload.ProductRef
	}
	if payload.WarehouseRef != "" {
		b.WarehouseRef = payload.WarehouseRef
	}
	if payload.BatchNumber != "" {
		b.BatchNumber = payload.BatchNumber
	}
	if payload.ManufacturingDate != nil {
		b.ManufacturingDate = payload.ManufacturingDate
	}
	if payload.ExpiryDate != nil {
		b.ExpiryDate = payload.ExpiryDate
	}
	b.Quantity = payload.Quantity
	b.AvailableQuantity = payload.AvailableQuantity
	g.putLocked(b)
	return &b, nil
}

func (g *MemoryGateway) DeleteBatch(ctx context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailDelete {
		return fmt.Errorf("memory gateway: delete unavailable")
	}
	if _, ok := g.batches[id]; !ok {
		return ErrNotFound
	}
	delete(g.batches, id)
	for i, existing := range g.order {
		if existing == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return nil
}

func (g *MemoryGateway) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.FailLookups {
		return nil, fmt.Errorf("memory gateway: lookups unavailable")
	}
	p, ok := g.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (g *MemoryGateway) GetWarehouse(ctx context.Context, id string) (*models.Warehouse, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.FailLookups {
		return nil, fmt.Errorf("memory gateway: lookups unavailable")
	}
	w, ok := g.warehouses[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &w, nil
}
