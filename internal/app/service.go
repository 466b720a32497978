package app

import (
	"context"

	"fulfilment-monolith/internal/core"
)

// ApplicationService is the single interface the transport adapters call.
// It decouples presentation from the domain services and is the seam handler
// tests stub out. Implementations contain no HTTP or display logic.
type ApplicationService interface {
	// ListWarehouses returns all active warehouses.
	ListWarehouses(ctx context.Context) ([]core.Warehouse, error)

	// GetWarehouse resolves a business unit code or internal numeric id.
	GetWarehouse(ctx context.Context, identifier string) (*core.Warehouse, error)

	// CreateWarehouse creates a new active warehouse under the location ceilings.
	CreateWarehouse(ctx context.Context, req WarehouseRequest) (*core.Warehouse, error)

	// ReplaceWarehouse retires the active warehouse with businessUnitCode and
	// creates its successor under the same code.
	ReplaceWarehouse(ctx context.Context, businessUnitCode string, req WarehouseRequest) (*core.Warehouse, error)

	// ArchiveWarehouse soft-deletes an active warehouse.
	ArchiveWarehouse(ctx context.Context, identifier string) error

	// ListAssociations returns all fulfilment associations in insertion order.
	ListAssociations(ctx context.Context) ([]core.FulfilmentAssociation, error)

	// Associate links a warehouse to a product/store pair under the
	// cardinality ceilings.
	Associate(ctx context.Context, req AssociationRequest) (*core.FulfilmentAssociation, error)

	ListProducts(ctx context.Context) ([]core.Product, error)
	GetProduct(ctx context.Context, id int64) (*core.Product, error)
	CreateProduct(ctx context.Context, req ProductRequest) (*core.Product, error)
	UpdateProduct(ctx context.Context, id int64, req ProductRequest) (*core.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListStores(ctx context.Context) ([]core.Store, error)
	GetStore(ctx context.Context, id int64) (*core.Store, error)
	CreateStore(ctx context.Context, req StoreRequest) (*core.Store, error)
	UpdateStore(ctx context.Context, id int64, req StoreRequest) (*core.Store, error)
	DeleteStore(ctx context.Context, id int64) error

	// LocationUtilization reports allocation against every catalogued location.
	LocationUtilization(ctx context.Context) ([]core.LocationUtilization, error)
}
