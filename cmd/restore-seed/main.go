// restore-seed is a one-shot tool to restore the demo dataset.
// Run it when the local database has been wiped or filled with test leftovers.
//
// Usage: go run ./cmd/restore-seed
package main

import (
	"context"
	"log"
	"os"

	"fulfilment-monolith/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	log.Println("Clearing associations and outbox...")
	_, err = tx.Exec(ctx, `
		TRUNCATE fulfilment_association RESTART IDENTITY;
		TRUNCATE store_sync_outbox RESTART IDENTITY;
	`)
	if err != nil {
		log.Fatalf("Failed to clear association data: %v", err)
	}

	log.Println("Clearing warehouses, products and stores...")
	_, err = tx.Exec(ctx, `
		TRUNCATE warehouse RESTART IDENTITY;
		TRUNCATE product RESTART IDENTITY CASCADE;
		TRUNCATE store RESTART IDENTITY CASCADE;
	`)
	if err != nil {
		log.Fatalf("Failed to clear master data: %v", err)
	}

	log.Println("Restoring warehouses...")
	_, err = tx.Exec(ctx, `
		INSERT INTO warehouse (business_unit_code, location, capacity, stock)
		VALUES
		  ('MWH.001', 'ZWOLLE-001',    40, 10),
		  ('MWH.012', 'AMSTERDAM-001', 50, 25),
		  ('MWH.023', 'TILBURG-001',   30, 22);
	`)
	if err != nil {
		log.Fatalf("Failed to restore warehouses: %v", err)
	}

	log.Println("Restoring products...")
	_, err = tx.Exec(ctx, `
		INSERT INTO product (name, description, stock)
		VALUES
		  ('Ceramic mug',    'Stoneware mug, 350 ml',       120),
		  ('Desk lamp',      'Adjustable LED desk lamp',     45),
		  ('Notebook A5',    'Dotted, 96 pages',            300),
		  ('Water bottle',   'Insulated, 750 ml',            80);
	`)
	if err != nil {
		log.Fatalf("Failed to restore products: %v", err)
	}

	log.Println("Restoring stores...")
	_, err = tx.Exec(ctx, `
		INSERT INTO store (name, quantity_products_in_stock)
		VALUES
		  ('Utrecht Centraal',  140),
		  ('Rotterdam Blaak',    95),
		  ('Eindhoven Strijp',   60);
	`)
	if err != nil {
		log.Fatalf("Failed to restore stores: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}

	log.Println("Seed data restored successfully.")
	os.Exit(0)
}
