package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WarehouseService manages the lifecycle of warehouses under per-location
// count and capacity ceilings. Create and Replace are the race-sensitive
// operations: each one reads the current counts for a location and then
// writes, so both run inside a transaction holding the location's advisory
// lock (see acquireGroupLocks).
type WarehouseService interface {
	// ListWarehouses returns all active warehouses in creation order.
	ListWarehouses(ctx context.Context) ([]Warehouse, error)

	// GetWarehouse resolves an identifier to an active warehouse, trying the
	// business unit code first and falling back to the internal numeric id.
	GetWarehouse(ctx context.Context, identifier string) (*Warehouse, error)

	// CreateWarehouse validates and persists a new active warehouse.
	CreateWarehouse(ctx context.Context, input WarehouseInput) (*Warehouse, error)

	// ReplaceWarehouse atomically retires the active warehouse carrying
	// businessUnitCode and creates a fresh active row under the same code.
	// The caller-supplied code inside input is ignored.
	ReplaceWarehouse(ctx context.Context, businessUnitCode string, input WarehouseInput) (*Warehouse, error)

	// ArchiveWarehouse soft-deletes the active warehouse matching identifier.
	ArchiveWarehouse(ctx context.Context, identifier string) error
}

type warehouseService struct {
	pool      *pgxpool.Pool
	locations LocationResolver
}

func NewWarehouseService(pool *pgxpool.Pool, locations LocationResolver) WarehouseService {
	return &warehouseService{pool: pool, locations: locations}
}

const warehouseColumns = "id, business_unit_code, location, capacity, stock, created_at, archived_at"

func scanWarehouse(row pgx.Row) (*Warehouse, error) {
	var w Warehouse
	err := row.Scan(&w.ID, &w.BusinessUnitCode, &w.Location, &w.Capacity, &w.Stock, &w.CreatedAt, &w.ArchivedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *warehouseService) ListWarehouses(ctx context.Context) ([]Warehouse, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+warehouseColumns+`
		FROM warehouse
		WHERE archived_at IS NULL
		ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		warehouses = append(warehouses, *w)
	}
	return warehouses, rows.Err()
}

func (s *warehouseService) GetWarehouse(ctx context.Context, identifier string) (*Warehouse, error) {
	w, err := findActiveWarehouse(ctx, s.pool, identifier)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, notFound("warehouse", "warehouse not found: %s", identifier)
	}
	return w, nil
}

// querier abstracts pool and transaction so warehouse resolution can run
// either standalone or inside an allocation transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// findActiveWarehouse looks the identifier up by business unit code first and
// falls back to the internal numeric id. Returns nil without error when no
// active warehouse matches.
func findActiveWarehouse(ctx context.Context, q querier, identifier string) (*Warehouse, error) {
	w, err := scanWarehouse(q.QueryRow(ctx, `
		SELECT `+warehouseColumns+`
		FROM warehouse
		WHERE business_unit_code = $1 AND archived_at IS NULL`,
		identifier,
	))
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("find warehouse by code: %w", err)
	}

	id, parseErr := strconv.ParseInt(identifier, 10, 64)
	if parseErr != nil {
		return nil, nil
	}
	w, err = scanWarehouse(q.QueryRow(ctx, `
		SELECT `+warehouseColumns+`
		FROM warehouse
		WHERE id = $1 AND archived_at IS NULL`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find warehouse by id: %w", err)
	}
	return w, nil
}

// locationUsage returns the number of active warehouses at a location and
// their total capacity, excluding the row with excludeID (0 excludes nothing).
func locationUsage(ctx context.Context, tx pgx.Tx, location string, excludeID int64) (count, totalCapacity int, err error) {
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(capacity), 0)
		FROM warehouse
		WHERE location = $1 AND archived_at IS NULL AND id <> $2`,
		location, excludeID,
	).Scan(&count, &totalCapacity)
	if err != nil {
		return 0, 0, fmt.Errorf("query location usage: %w", err)
	}
	return count, totalCapacity, nil
}

func (s *warehouseService) CreateWarehouse(ctx context.Context, input WarehouseInput) (*Warehouse, error) {
	if err := validateWarehouseInput(input); err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create warehouse: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize all allocation at this location: the count and capacity reads
	// below must not interleave with another create or replace here.
	if err := acquireGroupLocks(ctx, tx, groupLockKey("warehouse-location", input.Location)); err != nil {
		return nil, err
	}

	var duplicate bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM warehouse
			WHERE business_unit_code = $1 AND archived_at IS NULL
		)`,
		input.BusinessUnitCode,
	).Scan(&duplicate)
	if err != nil {
		return nil, fmt.Errorf("check duplicate business unit code: %w", err)
	}
	if duplicate {
		return nil, domainErrf(KindDuplicateBusinessUnitCode,
			"warehouse with business unit code already exists: %s", input.BusinessUnitCode)
	}

	location := s.locations.Resolve(input.Location)
	if location == nil {
		return nil, domainErrf(KindUnknownLocation, "invalid warehouse location: %s", input.Location)
	}

	count, totalCapacity, err := locationUsage(ctx, tx, input.Location, 0)
	if err != nil {
		return nil, err
	}
	if err := checkLocationFit(*location, count, totalCapacity, *input.Capacity); err != nil {
		return nil, err
	}

	w, err := insertWarehouse(ctx, tx, input)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create warehouse: %w", err)
	}
	return w, nil
}

func insertWarehouse(ctx context.Context, tx pgx.Tx, input WarehouseInput) (*Warehouse, error) {
	w, err := scanWarehouse(tx.QueryRow(ctx, `
		INSERT INTO warehouse (business_unit_code, location, capacity, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING `+warehouseColumns,
		input.BusinessUnitCode, input.Location, *input.Capacity, *input.Stock,
	))
	if err != nil {
		// The partial unique index backs the duplicate check against writers
		// that slipped past the advisory lock (e.g. a different location key).
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrf(KindDuplicateBusinessUnitCode,
				"warehouse with business unit code already exists: %s", input.BusinessUnitCode)
		}
		return nil, fmt.Errorf("insert warehouse: %w", err)
	}
	return w, nil
}

func (s *warehouseService) ReplaceWarehouse(ctx context.Context, businessUnitCode string, input WarehouseInput) (*Warehouse, error) {
	input.BusinessUnitCode = businessUnitCode
	if err := validateWarehouseInput(input); err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin replace warehouse: %w", err)
	}
	defer tx.Rollback(ctx)

	// Row-lock the current warehouse so two replacements of the same code
	// serialize before any location lock is taken.
	current, err := scanWarehouse(tx.QueryRow(ctx, `
		SELECT `+warehouseColumns+`
		FROM warehouse
		WHERE business_unit_code = $1 AND archived_at IS NULL
		FOR UPDATE`,
		businessUnitCode,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("warehouse", "warehouse not found: %s", businessUnitCode)
	}
	if err != nil {
		return nil, fmt.Errorf("lock current warehouse: %w", err)
	}

	location := s.locations.Resolve(input.Location)
	if location == nil {
		return nil, domainErrf(KindUnknownLocation, "invalid warehouse location: %s", input.Location)
	}

	if err := checkReplacementRules(*current, input); err != nil {
		return nil, err
	}

	// The replacement may move the unit to a different location; both the old
	// and the new location's allocation must be serialized.
	if err := acquireGroupLocks(ctx, tx,
		groupLockKey("warehouse-location", current.Location),
		groupLockKey("warehouse-location", input.Location),
	); err != nil {
		return nil, err
	}

	// The current row is about to be archived, so it no longer counts against
	// the ceilings the replacement must fit under.
	count, totalCapacity, err := locationUsage(ctx, tx, input.Location, current.ID)
	if err != nil {
		return nil, err
	}
	if err := checkLocationFit(*location, count, totalCapacity, *input.Capacity); err != nil {
		return nil, err
	}

	// Archive-then-create inside one transaction: a failure of either write
	// leaves no half-replaced state, and archiving first keeps the active
	// code unique throughout.
	tag, err := tx.Exec(ctx,
		"UPDATE warehouse SET archived_at = NOW() WHERE id = $1 AND archived_at IS NULL",
		current.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("archive current warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, notFound("warehouse", "warehouse not found: %s", businessUnitCode)
	}

	replacement, err := insertWarehouse(ctx, tx, input)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit replace warehouse: %w", err)
	}
	return replacement, nil
}

func (s *warehouseService) ArchiveWarehouse(ctx context.Context, identifier string) error {
	w, err := findActiveWarehouse(ctx, s.pool, identifier)
	if err != nil {
		return err
	}
	if w == nil {
		return notFound("warehouse", "warehouse not found: %s", identifier)
	}

	tag, err := s.pool.Exec(ctx,
		"UPDATE warehouse SET archived_at = NOW() WHERE id = $1 AND archived_at IS NULL",
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("archive warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Archived concurrently between lookup and update.
		return notFound("warehouse", "warehouse not found: %s", identifier)
	}
	return nil
}
