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

// StoreInput carries caller-supplied fields for store writes.
type StoreInput struct {
	Name                    string
	QuantityProductsInStock *int
}

// StoreService manages stores. Every committed create or update also enqueues
// a legacy sync intent in the same transaction; the StoreSyncDispatcher
// delivers it after commit (see store_sync.go).
type StoreService interface {
	ListStores(ctx context.Context) ([]Store, error)
	GetStore(ctx context.Context, id int64) (*Store, error)
	CreateStore(ctx context.Context, input StoreInput) (*Store, error)
	UpdateStore(ctx context.Context, id int64, input StoreInput) (*Store, error)
	DeleteStore(ctx context.Context, id int64) error
}

type storeService struct {
	pool *pgxpool.Pool
}

func NewStoreService(pool *pgxpool.Pool) StoreService {
	return &storeService{pool: pool}
}

func validateStoreInput(in StoreInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return missingField("name")
	}
	if in.QuantityProductsInStock != nil && *in.QuantityProductsInStock < 0 {
		return domainErrf(KindInvalidValue, "quantityProductsInStock must be greater or equal to zero")
	}
	return nil
}

const storeColumns = "id, name, quantity_products_in_stock, created_at"

func scanStore(row pgx.Row) (*Store, error) {
	var st Store
	if err := row.Scan(&st.ID, &st.Name, &st.QuantityProductsInStock, &st.CreatedAt); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *storeService) ListStores(ctx context.Context) ([]Store, error) {
	rows, err := s.pool.Query(ctx, "SELECT "+storeColumns+" FROM store ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query stores: %w", err)
	}
	defer rows.Close()

	var stores []Store
	for rows.Next() {
		st, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, *st)
	}
	return stores, rows.Err()
}

func (s *storeService) GetStore(ctx context.Context, id int64) (*Store, error) {
	st, err := scanStore(s.pool.QueryRow(ctx, "SELECT "+storeColumns+" FROM store WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("store", "store with id of %d does not exist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query store: %w", err)
	}
	return st, nil
}

func (s *storeService) CreateStore(ctx context.Context, input StoreInput) (*Store, error) {
	if err := validateStoreInput(input); err != nil {
		return nil, err
	}
	quantity := 0
	if input.QuantityProductsInStock != nil {
		quantity = *input.QuantityProductsInStock
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create store: %w", err)
	}
	defer tx.Rollback(ctx)

	st, err := scanStore(tx.QueryRow(ctx, `
		INSERT INTO store (name, quantity_products_in_stock)
		VALUES ($1, $2)
		RETURNING `+storeColumns,
		input.Name, quantity,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrf(KindConflict, "store with name %s already exists", input.Name)
		}
		return nil, fmt.Errorf("insert store: %w", err)
	}

	if err := enqueueStoreSync(ctx, tx, SyncOpCreate, *st); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create store: %w", err)
	}
	return st, nil
}

func (s *storeService) UpdateStore(ctx context.Context, id int64, input StoreInput) (*Store, error) {
	if err := validateStoreInput(input); err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update store: %w", err)
	}
	defer tx.Rollback(ctx)

	var args []any
	set := "name = $2"
	args = append(args, id, input.Name)
	if input.QuantityProductsInStock != nil {
		set += ", quantity_products_in_stock = $3"
		args = append(args, *input.QuantityProductsInStock)
	}

	st, err := scanStore(tx.QueryRow(ctx,
		"UPDATE store SET "+set+" WHERE id = $1 RETURNING "+storeColumns,
		args...,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("store", "store with id of %d does not exist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("update store: %w", err)
	}

	if err := enqueueStoreSync(ctx, tx, SyncOpUpdate, *st); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit update store: %w", err)
	}
	return st, nil
}

func (s *storeService) DeleteStore(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM store WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("store", "store with id of %d does not exist", id)
	}
	return nil
}
