package batch

import (
	"context"
	"log"
	"time"

	"github.com/buildstock/batchgo/internal/gateway"
	"github.com/buildstock/batchgo/internal/models"
	"golang.org/x/sync/errgroup"
)

// Enrichment holds the related entities resolved for one batch. A nil
// field means the lookup failed or the reference was empty; the transform
// substitutes a deterministic fallback label.
type Enrichment struct {
	Product   *models.Product
	Warehouse *models.Warehouse
}

// Resolver resolves the product and warehouse references of batch records.
// The two lookups of a record run concurrently and independently; a
// failure in one never affects the other, nor any other record.
type Resolver struct {
	gw            gateway.Gateway
	limit         int
	lookupTimeout time.Duration
}

// NewResolver creates a resolver. limit caps the number of in-flight
// lookups across a list transform; lookupTimeout bounds each individual
// lookup so a hung transport degrades to the same fallback as an error.
func NewResolver(gw gateway.Gateway, limit int, lookupTimeout time.Duration) *Resolver {
	if limit <= 0 {
		limit = 8
	}
	if lookupTimeout <= 0 {
		lookupTimeout = 5 * time.Second
	}
	return &Resolver{gw: gw, limit: limit, lookupTimeout: lookupTimeout}
}

// ResolveAll resolves related entities for every record. The result slice
// is index-aligned with records. Lookup failures are logged and absorbed;
// ResolveAll itself never fails.
func (r *Resolver) ResolveAll(ctx context.Context, records []models.Batch) []Enrichment {
	out := make([]Enrichment, len(records))

	g := new(errgroup.Group)
	g.SetLimit(r.limit)
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			out[i].Product = r.lookupProduct(ctx, rec.ProductRef)
			return nil
		})
		g.Go(func() error {
			out[i].Warehouse = r.lookupWarehouse(ctx, rec.WarehouseRef)
			return nil
		})
	}
	g.Wait()

	return out
}

// Resolve resolves related entities for a single record.
func (r *Resolver) Resolve(ctx context.Context, record models.Batch) Enrichment {
	return r.ResolveAll(ctx, []models.Batch{record})[0]
}

func (r *Resolver) lookupProduct(ctx context.Context, ref string) *models.Product {
	if ref == "" {
		return nil
	}
	lctx, cancel := context.WithTimeout(ctx, r.lookupTimeout)
	defer cancel()

	product, err := r.gw.GetProduct(lctx, ref)
	if err != nil {
		log.Printf("enrichment: product %s lookup failed: %v", ref, err)
		return nil
	}
	return product
}

func (r *Resolver) lookupWarehouse(ctx context.Context, ref string) *models.Warehouse {
	if ref == "" {
		return nil
	}
	lctx, cancel := context.WithTimeout(ctx, r.lookupTimeout)
	defer cancel()

	warehouse, err := r.gw.GetWarehouse(lctx, ref)
	if err != nil {
		log.Printf("enrichment: warehouse %s lookup failed: %v", ref, err)
		return nil
	}
	return warehouse
}
