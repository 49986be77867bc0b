package main

import (
	"context"
	"fmt"
	"log"

	"github.com/buildstock/batchgo/internal/batch"
	"github.com/buildstock/batchgo/internal/config"
	"github.com/buildstock/batchgo/internal/gateway"
	"github.com/buildstock/batchgo/internal/models"
)

func main() {
	fmt.Println("📦 batchgo demo client")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	gw, err := selectGateway(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to select gateway: %v", err)
	}
	fmt.Printf("🔌 Gateway: %s\n\n", cfg.Gateway.Mode)

	service := batch.NewService(gw, batch.Config{
		EnrichmentLimit: cfg.Batch.EnrichmentLimit,
		LookupTimeout:   cfg.Batch.LookupTimeout,
		SeedOnEmpty:     cfg.Batch.SeedOnEmpty,
	})

	ctx := context.Background()

	views := service.List(ctx)
	fmt.Printf("📋 %d batches:\n", len(views))
	for _, v := range views {
		fmt.Printf("  %-36s %-10s %-7s qty %.0f/%.0f value %.2f\n",
			v.Name, v.Status, v.Color, v.AvailableQuantity, v.Quantity, v.TotalValue)
	}
	fmt.Println()

	result := service.Create(ctx, models.BatchInput{
		ProductID:   "prod-cement",
		WarehouseID: "wh-central",
		LotNumber:   "CEM-DEMO-001",
		Quantity:    50,
	})
	fmt.Printf("➕ Created %s (%s, origin=%s)\n", result.Record.Name, result.Record.ID, result.Origin)

	view, err := service.Get(ctx, result.Record.ID)
	if err != nil {
		fmt.Printf("🔍 Get after create: %v\n", err)
	} else {
		fmt.Printf("🔍 Fetched %s status=%s category=%s\n", view.Name, view.Status, view.Category)
	}

	deleted := service.Delete(ctx, result.Record.ID)
	fmt.Printf("🗑️  Deleted %s (origin=%s)\n", result.Record.ID, deleted.Origin)
}

// selectGateway builds the registry and picks the implementation named by
// GATEWAY_MODE. Memory mode ships with the demo catalog preloaded.
func selectGateway(cfg *config.Config) (gateway.Gateway, error) {
	registry := gateway.NewRegistry()

	if err := registry.Register(gateway.NewHTTPGateway(cfg.Gateway.BackendURL, cfg.Gateway.RequestTimeout)); err != nil {
		return nil, err
	}

	memory := gateway.NewMemoryGateway()
	memory.AddProduct(models.Product{ID: "prod-cement", Name: "Portland Cement 42.5", Price: 12.5, CategoryName: "Building Materials"})
	memory.AddWarehouse(models.Warehouse{ID: "wh-central", Name: "Central Warehouse"})
	if err := registry.Register(memory); err != nil {
		return nil, err
	}

	return registry.Get(cfg.Gateway.Mode)
}
