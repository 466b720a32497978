package core_test

import (
	"context"
	"testing"

	"fulfilment-monolith/internal/core"

	"github.com/shopspring/decimal"
)

func TestReporting_LocationUtilization(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	warehouseSvc := newWarehouseService(pool)
	mustCreateWarehouse(t, ctx, warehouseSvc, "MWH.001", "TILBURG-001", 30, 15)
	mustCreateWarehouse(t, ctx, warehouseSvc, "MWH.002", "TILBURG-001", 10, 5)

	// Archived warehouses must not count.
	mustCreateWarehouse(t, ctx, warehouseSvc, "MWH.003", "ZWOLLE-001", 40, 0)
	if err := warehouseSvc.ArchiveWarehouse(ctx, "MWH.003"); err != nil {
		t.Fatalf("ArchiveWarehouse failed: %v", err)
	}

	svc := core.NewReportingService(pool, core.NewLocationCatalog())
	report, err := svc.LocationUtilization(ctx)
	if err != nil {
		t.Fatalf("LocationUtilization failed: %v", err)
	}

	// Every catalogued location is reported, populated or not.
	if len(report) != 8 {
		t.Fatalf("expected 8 locations in report, got %d", len(report))
	}

	byLocation := make(map[string]core.LocationUtilization, len(report))
	for _, entry := range report {
		byLocation[entry.Location] = entry
	}

	tilburg := byLocation["TILBURG-001"]
	if tilburg.ActiveWarehouses != 2 {
		t.Errorf("expected 2 active warehouses at TILBURG-001, got %d", tilburg.ActiveWarehouses)
	}
	if tilburg.TotalCapacity != 40 || tilburg.TotalStock != 20 {
		t.Errorf("expected capacity 40 and stock 20, got %d and %d", tilburg.TotalCapacity, tilburg.TotalStock)
	}
	if tilburg.CapacityRemaining != 0 {
		t.Errorf("expected no remaining capacity, got %d", tilburg.CapacityRemaining)
	}
	if !tilburg.CapacityAllocated.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected full allocation, got %s", tilburg.CapacityAllocated)
	}
	if !tilburg.StockUtilization.Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("expected stock utilization 0.5, got %s", tilburg.StockUtilization)
	}

	zwolle := byLocation["ZWOLLE-001"]
	if zwolle.ActiveWarehouses != 0 {
		t.Errorf("expected archived warehouse to be excluded, got %d active", zwolle.ActiveWarehouses)
	}
	if zwolle.CapacityRemaining != 40 {
		t.Errorf("expected full capacity remaining, got %d", zwolle.CapacityRemaining)
	}
	if !zwolle.StockUtilization.IsZero() {
		t.Errorf("expected zero stock utilization for empty location, got %s", zwolle.StockUtilization)
	}
}
