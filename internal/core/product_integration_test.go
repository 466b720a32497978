package core_test

import (
	"context"
	"testing"

	"fulfilment-monolith/internal/core"
)

func TestProduct_CRUD(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	svc := core.NewProductService(pool)
	ctx := context.Background()

	stock := 120
	created, err := svc.CreateProduct(ctx, core.ProductInput{
		Name:        "Ceramic mug",
		Description: "Stoneware mug, 350 ml",
		Stock:       &stock,
	})
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	if created.Stock != 120 {
		t.Errorf("expected stock 120, got %d", created.Stock)
	}

	got, err := svc.GetProduct(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if got.Description != "Stoneware mug, 350 ml" {
		t.Errorf("unexpected description: %q", got.Description)
	}

	stock = 90
	updated, err := svc.UpdateProduct(ctx, created.ID, core.ProductInput{
		Name:  "Ceramic mug v2",
		Stock: &stock,
	})
	if err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}
	if updated.Name != "Ceramic mug v2" || updated.Stock != 90 {
		t.Errorf("unexpected updated product: %+v", updated)
	}
	// Omitted description clears the stored one.
	if updated.Description != "" {
		t.Errorf("expected cleared description, got %q", updated.Description)
	}

	if err := svc.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if _, err := svc.GetProduct(ctx, created.ID); core.KindOf(err) != core.KindNotFound {
		t.Errorf("expected NOT_FOUND after delete, got %v", err)
	}
}

func TestProduct_Validation(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	svc := core.NewProductService(pool)
	ctx := context.Background()

	if _, err := svc.CreateProduct(ctx, core.ProductInput{Name: "  "}); core.KindOf(err) != core.KindMissingField {
		t.Errorf("expected MISSING_FIELD for blank name, got %v", err)
	}

	stock := -1
	if _, err := svc.CreateProduct(ctx, core.ProductInput{Name: "Mug", Stock: &stock}); core.KindOf(err) != core.KindInvalidValue {
		t.Errorf("expected INVALID_VALUE for negative stock, got %v", err)
	}
}

func TestProduct_DuplicateName(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	svc := core.NewProductService(pool)
	ctx := context.Background()

	if _, err := svc.CreateProduct(ctx, core.ProductInput{Name: "Ceramic mug"}); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	_, err := svc.CreateProduct(ctx, core.ProductInput{Name: "Ceramic mug"})
	if core.KindOf(err) != core.KindConflict {
		t.Errorf("expected CONFLICT for duplicate name, got %v", err)
	}
}

func TestProduct_ListSortedByName(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	svc := core.NewProductService(pool)
	ctx := context.Background()

	for _, name := range []string{"Water bottle", "Ceramic mug", "Notebook A5"} {
		if _, err := svc.CreateProduct(ctx, core.ProductInput{Name: name}); err != nil {
			t.Fatalf("CreateProduct(%s) failed: %v", name, err)
		}
	}

	products, err := svc.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	want := []string{"Ceramic mug", "Notebook A5", "Water bottle"}
	for i, name := range want {
		if products[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, products[i].Name)
		}
	}
}

func TestStore_CRUD(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	svc := core.NewStoreService(pool)
	ctx := context.Background()

	quantity := 140
	created, err := svc.CreateStore(ctx, core.StoreInput{
		Name:                    "Utrecht Centraal",
		QuantityProductsInStock: &quantity,
	})
	if err != nil {
		t.Fatalf("CreateStore failed: %v", err)
	}

	got, err := svc.GetStore(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetStore failed: %v", err)
	}
	if got.QuantityProductsInStock != 140 {
		t.Errorf("expected quantity 140, got %d", got.QuantityProductsInStock)
	}

	quantity = 150
	updated, err := svc.UpdateStore(ctx, created.ID, core.StoreInput{
		Name:                    "Utrecht CS",
		QuantityProductsInStock: &quantity,
	})
	if err != nil {
		t.Fatalf("UpdateStore failed: %v", err)
	}
	if updated.Name != "Utrecht CS" || updated.QuantityProductsInStock != 150 {
		t.Errorf("unexpected updated store: %+v", updated)
	}

	if err := svc.DeleteStore(ctx, created.ID); err != nil {
		t.Fatalf("DeleteStore failed: %v", err)
	}
	if _, err := svc.GetStore(ctx, created.ID); core.KindOf(err) != core.KindNotFound {
		t.Errorf("expected NOT_FOUND after delete, got %v", err)
	}
}

func TestStore_DuplicateName(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	svc := core.NewStoreService(pool)
	ctx := context.Background()

	if _, err := svc.CreateStore(ctx, core.StoreInput{Name: "Utrecht Centraal"}); err != nil {
		t.Fatalf("CreateStore failed: %v", err)
	}
	_, err := svc.CreateStore(ctx, core.StoreInput{Name: "Utrecht Centraal"})
	if core.KindOf(err) != core.KindConflict {
		t.Errorf("expected CONFLICT for duplicate name, got %v", err)
	}
}
