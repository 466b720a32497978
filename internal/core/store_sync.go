package core

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SyncOperation string

const (
	SyncOpCreate SyncOperation = "CREATE"
	SyncOpUpdate SyncOperation = "UPDATE"
)

// StoreSyncIntent is one pending legacy synchronization, written to the
// outbox in the same transaction as the owning store write.
type StoreSyncIntent struct {
	ID        int64
	StoreID   int64
	Operation SyncOperation
	StoreName string
	Quantity  int
	CreatedAt time.Time
}

// LegacyStoreGateway pushes store changes to the legacy store manager.
// Delivery is at-least-once; the legacy side deduplicates by store id.
type LegacyStoreGateway interface {
	CreateStoreOnLegacySystem(ctx context.Context, store Store) error
	UpdateStoreOnLegacySystem(ctx context.Context, store Store) error
}

// LoggingLegacyGateway stands in for the real legacy transport and records
// each call to the process log.
type LoggingLegacyGateway struct{}

func (LoggingLegacyGateway) CreateStoreOnLegacySystem(_ context.Context, store Store) error {
	log.Printf("legacy sync: create store %d %q (quantity %d)", store.ID, store.Name, store.QuantityProductsInStock)
	return nil
}

func (LoggingLegacyGateway) UpdateStoreOnLegacySystem(_ context.Context, store Store) error {
	log.Printf("legacy sync: update store %d %q (quantity %d)", store.ID, store.Name, store.QuantityProductsInStock)
	return nil
}

// enqueueStoreSync writes a sync intent inside the caller's transaction so
// the intent becomes visible exactly when the store write commits.
func enqueueStoreSync(ctx context.Context, tx pgx.Tx, op SyncOperation, store Store) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO store_sync_outbox (store_id, operation, store_name, quantity)
		VALUES ($1, $2, $3, $4)`,
		store.ID, string(op), store.Name, store.QuantityProductsInStock,
	)
	if err != nil {
		return fmt.Errorf("enqueue store sync: %w", err)
	}
	return nil
}

// StoreSyncDispatcher drains the outbox in the background and delivers
// intents to the legacy gateway.
type StoreSyncDispatcher struct {
	pool      *pgxpool.Pool
	gateway   LegacyStoreGateway
	interval  time.Duration
	batchSize int
}

func NewStoreSyncDispatcher(pool *pgxpool.Pool, gateway LegacyStoreGateway, interval time.Duration) *StoreSyncDispatcher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &StoreSyncDispatcher{pool: pool, gateway: gateway, interval: interval, batchSize: 50}
}

// Run polls until ctx is cancelled. Delivery failures are logged and the
// intent stays pending for the next tick.
func (d *StoreSyncDispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := d.DispatchPending(ctx); err != nil {
				log.Printf("store sync: dispatch failed: %v", err)
			} else if n > 0 {
				log.Printf("store sync: dispatched %d intent(s)", n)
			}
		}
	}
}

// DispatchPending delivers up to one batch of pending intents and marks them
// dispatched. An intent is marked only after the gateway call returns, in the
// same transaction that locked it: a crash between delivery and commit leaves
// the row pending and the intent is delivered again (at-least-once).
func (d *StoreSyncDispatcher) DispatchPending(ctx context.Context) (int, error) {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin dispatch: %w", err)
	}
	defer tx.Rollback(ctx)

	// SKIP LOCKED lets multiple dispatcher instances drain disjoint batches.
	rows, err := tx.Query(ctx, `
		SELECT id, store_id, operation, store_name, quantity, created_at
		FROM store_sync_outbox
		WHERE dispatched_at IS NULL
		ORDER BY id
		LIMIT $1
		FOR UPDATE SKIP LOCKED`,
		d.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("query pending intents: %w", err)
	}

	var intents []StoreSyncIntent
	for rows.Next() {
		var in StoreSyncIntent
		if err := rows.Scan(&in.ID, &in.StoreID, &in.Operation, &in.StoreName, &in.Quantity, &in.CreatedAt); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan intent: %w", err)
		}
		intents = append(intents, in)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate intents: %w", err)
	}

	dispatched := 0
	for _, in := range intents {
		store := Store{ID: in.StoreID, Name: in.StoreName, QuantityProductsInStock: in.Quantity}

		var deliverErr error
		switch in.Operation {
		case SyncOpCreate:
			deliverErr = d.gateway.CreateStoreOnLegacySystem(ctx, store)
		case SyncOpUpdate:
			deliverErr = d.gateway.UpdateStoreOnLegacySystem(ctx, store)
		default:
			deliverErr = fmt.Errorf("unknown sync operation %q", in.Operation)
		}
		if deliverErr != nil {
			// Stop the batch; already-delivered rows in it still commit.
			log.Printf("store sync: intent %d failed: %v", in.ID, deliverErr)
			break
		}

		if _, err := tx.Exec(ctx,
			"UPDATE store_sync_outbox SET dispatched_at = NOW() WHERE id = $1",
			in.ID,
		); err != nil {
			return 0, fmt.Errorf("mark intent %d dispatched: %w", in.ID, err)
		}
		dispatched++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit dispatch: %w", err)
	}
	return dispatched, nil
}
