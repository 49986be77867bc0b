package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/buildstock/batchgo/internal/config"
	"github.com/buildstock/batchgo/internal/gateway"
	"github.com/buildstock/batchgo/internal/mockapi"
	"github.com/buildstock/batchgo/internal/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store := gateway.NewMemoryGateway()
	seedCatalog(store)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: mockapi.NewServer(store),
	}

	go func() {
		log.Printf("🚀 Mock batch backend listening on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// seedCatalog preloads the reference entities batch enrichment resolves
// against. Batches themselves start empty so the client's Seeding tier
// can be observed end to end.
func seedCatalog(store *gateway.MemoryGateway) {
	products := []models.Product{
		{ID: "prod-cement", Name: "Portland Cement 42.5", Price: 12.5, CategoryName: "Building Materials"},
		{ID: "prod-paint", Name: "Acrylic Facade Paint 10L", Price: 42, CategoryName: "Finishing"},
		{ID: "prod-rebar", Name: "Steel Rebar 12mm", Price: 6.3, CategoryName: "Structural"},
		{ID: "prod-tiles", Name: "Ceramic Floor Tiles 60x60", Price: 28, CategoryName: "Finishing"},
	}
	for _, p := range products {
		store.AddProduct(p)
	}

	warehouses := []models.Warehouse{
		{ID: "wh-central", Name: "Central Warehouse"},
		{ID: "wh-north", Name: "North Depot"},
	}
	for _, w := range warehouses {
		store.AddWarehouse(w)
	}
}
