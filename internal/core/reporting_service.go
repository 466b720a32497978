package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// LocationUtilization is a read view of one catalogued location: how much of
// its warehouse-count and capacity ceilings is currently allocated, and how
// full the allocated capacity is.
type LocationUtilization struct {
	Location              string          `json:"location"`
	MaxNumberOfWarehouses int             `json:"maxNumberOfWarehouses"`
	MaxCapacity           int             `json:"maxCapacity"`
	ActiveWarehouses      int             `json:"activeWarehouses"`
	TotalCapacity         int             `json:"totalCapacity"`
	TotalStock            int             `json:"totalStock"`
	CapacityRemaining     int             `json:"capacityRemaining"`
	CapacityAllocated     decimal.Decimal `json:"capacityAllocated"` // TotalCapacity / MaxCapacity
	StockUtilization      decimal.Decimal `json:"stockUtilization"`  // TotalStock / TotalCapacity
}

type ReportingService interface {
	// LocationUtilization reports every catalogued location, including those
	// with no active warehouses.
	LocationUtilization(ctx context.Context) ([]LocationUtilization, error)
}

type reportingService struct {
	pool    *pgxpool.Pool
	catalog *LocationCatalog
}

func NewReportingService(pool *pgxpool.Pool, catalog *LocationCatalog) ReportingService {
	return &reportingService{pool: pool, catalog: catalog}
}

func (s *reportingService) LocationUtilization(ctx context.Context) ([]LocationUtilization, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT location, COUNT(*), SUM(capacity), SUM(stock)
		FROM warehouse
		WHERE archived_at IS NULL
		GROUP BY location`,
	)
	if err != nil {
		return nil, fmt.Errorf("query location usage: %w", err)
	}
	defer rows.Close()

	type usage struct {
		count, capacity, stock int
	}
	byLocation := make(map[string]usage)
	for rows.Next() {
		var location string
		var u usage
		if err := rows.Scan(&location, &u.count, &u.capacity, &u.stock); err != nil {
			return nil, fmt.Errorf("scan location usage: %w", err)
		}
		byLocation[location] = u
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var report []LocationUtilization
	for _, loc := range s.catalog.All() {
		u := byLocation[loc.Identification]
		entry := LocationUtilization{
			Location:              loc.Identification,
			MaxNumberOfWarehouses: loc.MaxNumberOfWarehouses,
			MaxCapacity:           loc.MaxCapacity,
			ActiveWarehouses:      u.count,
			TotalCapacity:         u.capacity,
			TotalStock:            u.stock,
			CapacityRemaining:     loc.MaxCapacity - u.capacity,
			CapacityAllocated:     ratio(u.capacity, loc.MaxCapacity),
			StockUtilization:      ratio(u.stock, u.capacity),
		}
		report = append(report, entry)
	}
	return report, nil
}

// ratio returns num/den rounded to 4 places, or zero when den is zero.
func ratio(num, den int) decimal.Decimal {
	if den == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(num)).Div(decimal.NewFromInt(int64(den))).Round(4)
}
