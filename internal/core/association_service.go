package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Cardinality ceilings for fulfilment links. These are fixed business rules,
// not configuration.
const (
	maxWarehousesPerProductStore = 2
	maxWarehousesPerStore        = 3
	maxProductsPerWarehouse      = 5
)

// Rule names reported with LIMIT_EXCEEDED rejections.
const (
	RuleProductStoreWarehouses = "product-store-warehouses"
	RuleStoreWarehouses        = "store-warehouses"
	RuleWarehouseProducts      = "warehouse-products"
)

// AssociationService creates product/store/warehouse fulfilment links under
// the distinct-cardinality ceilings. Associate is read-then-write: the count
// queries and the insert run in one transaction holding advisory locks on the
// three grouping keys involved.
type AssociationService interface {
	// ListAssociations returns every association in insertion order.
	ListAssociations(ctx context.Context) ([]FulfilmentAssociation, error)

	// Associate links a warehouse to a product/store pair. warehouseIdentifier
	// may be a business unit code or an internal numeric id; the canonical
	// code of the resolved warehouse is what gets stored.
	Associate(ctx context.Context, productID, storeID int64, warehouseIdentifier string) (*FulfilmentAssociation, error)
}

type associationService struct {
	pool *pgxpool.Pool
}

func NewAssociationService(pool *pgxpool.Pool) AssociationService {
	return &associationService{pool: pool}
}

func (s *associationService) ListAssociations(ctx context.Context) ([]FulfilmentAssociation, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, product_id, store_id, warehouse_business_unit_code, created_at
		FROM fulfilment_association
		ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query associations: %w", err)
	}
	defer rows.Close()

	var associations []FulfilmentAssociation
	for rows.Next() {
		var a FulfilmentAssociation
		if err := rows.Scan(&a.ID, &a.ProductID, &a.StoreID, &a.WarehouseBusinessUnitCode, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan association: %w", err)
		}
		associations = append(associations, a)
	}
	return associations, rows.Err()
}

func (s *associationService) Associate(ctx context.Context, productID, storeID int64, warehouseIdentifier string) (*FulfilmentAssociation, error) {
	if productID == 0 {
		return nil, missingField("productId")
	}
	if storeID == 0 {
		return nil, missingField("storeId")
	}
	if strings.TrimSpace(warehouseIdentifier) == "" {
		return nil, missingField("warehouseIdentifier")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin associate: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := checkEntityExists(ctx, tx, "product", productID); err != nil {
		return nil, err
	}
	if err := checkEntityExists(ctx, tx, "store", storeID); err != nil {
		return nil, err
	}

	warehouse, err := findActiveWarehouse(ctx, tx, warehouseIdentifier)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, notFound("warehouse", "warehouse with identifier %s does not exist", warehouseIdentifier)
	}
	code := warehouse.BusinessUnitCode

	// Serialize the cardinality checks against every grouping key this link
	// counts towards. Keys are sorted inside acquireGroupLocks.
	if err := acquireGroupLocks(ctx, tx,
		groupLockKey("assoc-product-store", fmt.Sprint(productID), fmt.Sprint(storeID)),
		groupLockKey("assoc-store", fmt.Sprint(storeID)),
		groupLockKey("assoc-warehouse", code),
	); err != nil {
		return nil, err
	}

	var duplicate bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM fulfilment_association
			WHERE product_id = $1 AND store_id = $2 AND warehouse_business_unit_code = $3
		)`,
		productID, storeID, code,
	).Scan(&duplicate)
	if err != nil {
		return nil, fmt.Errorf("check duplicate association: %w", err)
	}
	if duplicate {
		return nil, domainErrf(KindConflict, "association already exists for product/store/warehouse combination")
	}

	var pairWarehouses int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(DISTINCT warehouse_business_unit_code)
		FROM fulfilment_association
		WHERE product_id = $1 AND store_id = $2`,
		productID, storeID,
	).Scan(&pairWarehouses)
	if err != nil {
		return nil, fmt.Errorf("count warehouses for product/store: %w", err)
	}
	if pairWarehouses >= maxWarehousesPerProductStore {
		return nil, limitExceeded(RuleProductStoreWarehouses,
			"a product can be fulfilled by at most 2 warehouses per store")
	}

	// A warehouse already serving this store does not count as a new distinct
	// relationship, so the store ceiling only applies to unseen warehouses.
	known, err := rowExists(ctx, tx, `
		SELECT 1 FROM fulfilment_association
		WHERE store_id = $1 AND warehouse_business_unit_code = $2`,
		storeID, code)
	if err != nil {
		return nil, err
	}
	if !known {
		var storeWarehouses int
		err = tx.QueryRow(ctx, `
			SELECT COUNT(DISTINCT warehouse_business_unit_code)
			FROM fulfilment_association
			WHERE store_id = $1`,
			storeID,
		).Scan(&storeWarehouses)
		if err != nil {
			return nil, fmt.Errorf("count warehouses for store: %w", err)
		}
		if storeWarehouses >= maxWarehousesPerStore {
			return nil, limitExceeded(RuleStoreWarehouses,
				"a store can be fulfilled by at most 3 warehouses")
		}
	}

	// Same guard on the warehouse side: re-linking a product the warehouse
	// already carries must not trip the product-type ceiling.
	known, err = rowExists(ctx, tx, `
		SELECT 1 FROM fulfilment_association
		WHERE warehouse_business_unit_code = $1 AND product_id = $2`,
		code, productID)
	if err != nil {
		return nil, err
	}
	if !known {
		var warehouseProducts int
		err = tx.QueryRow(ctx, `
			SELECT COUNT(DISTINCT product_id)
			FROM fulfilment_association
			WHERE warehouse_business_unit_code = $1`,
			code,
		).Scan(&warehouseProducts)
		if err != nil {
			return nil, fmt.Errorf("count products for warehouse: %w", err)
		}
		if warehouseProducts >= maxProductsPerWarehouse {
			return nil, limitExceeded(RuleWarehouseProducts,
				"a warehouse can store at most 5 product types")
		}
	}

	var a FulfilmentAssociation
	err = tx.QueryRow(ctx, `
		INSERT INTO fulfilment_association (product_id, store_id, warehouse_business_unit_code)
		VALUES ($1, $2, $3)
		RETURNING id, product_id, store_id, warehouse_business_unit_code, created_at`,
		productID, storeID, code,
	).Scan(&a.ID, &a.ProductID, &a.StoreID, &a.WarehouseBusinessUnitCode, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrf(KindConflict, "association already exists for product/store/warehouse combination")
		}
		return nil, fmt.Errorf("insert association: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit associate: %w", err)
	}
	return &a, nil
}

func checkEntityExists(ctx context.Context, tx pgx.Tx, table string, id int64) error {
	exists, err := rowExists(ctx, tx, "SELECT 1 FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(table, "%s with id of %d does not exist", table, id)
	}
	return nil
}

func rowExists(ctx context.Context, tx pgx.Tx, query string, args ...any) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, "SELECT EXISTS ("+query+")", args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("existence check: %w", err)
	}
	return exists, nil
}
