package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	webAdapter "fulfilment-monolith/internal/adapters/web"
	"fulfilment-monolith/internal/app"
	"fulfilment-monolith/internal/core"
	"fulfilment-monolith/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	catalog := core.NewLocationCatalog()
	warehouseService := core.NewWarehouseService(pool, catalog)
	associationService := core.NewAssociationService(pool)
	productService := core.NewProductService(pool)
	storeService := core.NewStoreService(pool)
	reportingService := core.NewReportingService(pool, catalog)

	svc := app.NewAppService(warehouseService, associationService, productService, storeService, reportingService)

	dispatcher := core.NewStoreSyncDispatcher(pool, core.LoggingLegacyGateway{}, syncPollInterval())
	go dispatcher.Run(ctx)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func syncPollInterval() time.Duration {
	v := os.Getenv("SYNC_POLL_INTERVAL")
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: invalid SYNC_POLL_INTERVAL %q, using default", v)
		return 0
	}
	return d
}
