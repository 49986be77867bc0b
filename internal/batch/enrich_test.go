package batch

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/buildstock/batchgo/internal/gateway"
	"github.com/buildstock/batchgo/internal/models"
)

func TestResolveAllFaultIsolation(t *testing.T) {
	gw := &stubGateway{
		productFn: func(ctx context.Context, id string) (*models.Product, error) {
			if id == "p-broken" {
				return nil, fmt.Errorf("503 service unavailable")
			}
			return &models.Product{ID: id, Name: "Steel Rebar 12mm", Price: 6.3, CategoryName: "Structural"}, nil
		},
		warehouseFn: func(ctx context.Context, id string) (*models.Warehouse, error) {
			return &models.Warehouse{ID: id, Name: "North Depot"}, nil
		},
	}
	resolver := NewResolver(gw, 4, time.Second)

	records := []models.Batch{
		rawBatch("a", "p-broken", "w-1", 10),
		rawBatch("b", "p-ok", "w-1", 10),
	}

	enrichments := resolver.ResolveAll(context.Background(), records)

	// Record A: product lookup failed, warehouse lookup unaffected.
	if enrichments[0].Product != nil {
		t.Error("record a product should be nil after lookup failure")
	}
	if enrichments[0].Warehouse == nil {
		t.Error("record a warehouse lookup must not be affected by the product failure")
	}

	// Record B: fully resolved, unaffected by A.
	if enrichments[1].Product == nil || enrichments[1].Product.Name != "Steel Rebar 12mm" {
		t.Errorf("record b product = %+v, want resolved", enrichments[1].Product)
	}
	if enrichments[1].Warehouse == nil {
		t.Error("record b warehouse should be resolved")
	}
}

func TestResolveAllEmptyRefs(t *testing.T) {
	calls := 0
	gw := &stubGateway{
		productFn: func(ctx context.Context, id string) (*models.Product, error) {
			calls++
			return nil, gateway.ErrNotFound
		},
		warehouseFn: func(ctx context.Context, id string) (*models.Warehouse, error) {
			calls++
			return nil, gateway.ErrNotFound
		},
	}
	resolver := NewResolver(gw, 4, time.Second)

	enrichments := resolver.ResolveAll(context.Background(), []models.Batch{
		rawBatch("a", "", "", 10),
	})

	if calls != 0 {
		t.Errorf("empty refs must not hit the gateway, got %d calls", calls)
	}
	if enrichments[0].Product != nil || enrichments[0].Warehouse != nil {
		t.Error("empty refs must resolve to nil")
	}
}

func TestResolveLookupTimeout(t *testing.T) {
	gw := &stubGateway{
		productFn: func(ctx context.Context, id string) (*models.Product, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
		warehouseFn: func(ctx context.Context, id string) (*models.Warehouse, error) {
			return &models.Warehouse{ID: id, Name: "Central Warehouse"}, nil
		},
	}
	resolver := NewResolver(gw, 4, 20*time.Millisecond)

	done := make(chan Enrichment, 1)
	go func() {
		done <- resolver.Resolve(context.Background(), rawBatch("a", "p-slow", "w-1", 10))
	}()

	select {
	case e := <-done:
		if e.Product != nil {
			t.Error("timed-out lookup must resolve to nil")
		}
		if e.Warehouse == nil {
			t.Error("sibling lookup must still resolve")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Resolve hung; per-lookup timeout not applied")
	}
}

func TestFallbackLabelsInTransform(t *testing.T) {
	rec := rawBatch("a", "p-17", "w-3", 10)
	v := buildView(rec, Enrichment{}, testNow)

	if v.Name != "Product p-17 - BN-a" {
		t.Errorf("Name = %q", v.Name)
	}
	if v.Description != "Product p-17 batch stored at Warehouse w-3" {
		t.Errorf("Description = %q", v.Description)
	}
	if v.Category != "Inventory" {
		t.Errorf("Category = %q, want Inventory", v.Category)
	}
	if v.TotalValue != 10*defaultUnitPrice {
		t.Errorf("TotalValue = %.2f, want %.2f", v.TotalValue, 10*defaultUnitPrice)
	}

	rec.ProductRef = ""
	v = buildView(rec, Enrichment{}, testNow)
	if v.Name != "Product Unknown - BN-a" {
		t.Errorf("Name = %q, want Product Unknown prefix", v.Name)
	}
}
