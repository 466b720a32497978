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

// ProductInput carries caller-supplied fields for product writes.
type ProductInput struct {
	Name        string
	Description string
	Stock       *int
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, input ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	pool *pgxpool.Pool
}

func NewProductService(pool *pgxpool.Pool) ProductService {
	return &productService{pool: pool}
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return missingField("name")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return domainErrf(KindInvalidValue, "stock must be greater or equal to zero")
	}
	return nil
}

const productColumns = "id, name, COALESCE(description, ''), stock, created_at"

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Stock, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := s.pool.Query(ctx, "SELECT "+productColumns+" FROM product ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*Product, error) {
	p, err := scanProduct(s.pool.QueryRow(ctx, "SELECT "+productColumns+" FROM product WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("product", "product with id of %d does not exist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	return p, nil
}

func (s *productService) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}

	p, err := scanProduct(s.pool.QueryRow(ctx, `
		INSERT INTO product (name, description, stock)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING `+productColumns,
		input.Name, input.Description, stock,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrf(KindConflict, "product with name %s already exists", input.Name)
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var args []any
	set := "name = $2, description = NULLIF($3, '')"
	args = append(args, id, input.Name, input.Description)
	if input.Stock != nil {
		set += ", stock = $4"
		args = append(args, *input.Stock)
	}

	p, err := scanProduct(s.pool.QueryRow(ctx,
		"UPDATE product SET "+set+" WHERE id = $1 RETURNING "+productColumns,
		args...,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("product", "product with id of %d does not exist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM product WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("product", "product with id of %d does not exist", id)
	}
	return nil
}
