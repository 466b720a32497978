package app

import (
	"context"

	"fulfilment-monolith/internal/core"
)

type appService struct {
	warehouses   core.WarehouseService
	associations core.AssociationService
	products     core.ProductService
	stores       core.StoreService
	reporting    core.ReportingService
}

// NewAppService wires the domain services behind the ApplicationService facade.
func NewAppService(
	warehouses core.WarehouseService,
	associations core.AssociationService,
	products core.ProductService,
	stores core.StoreService,
	reporting core.ReportingService,
) ApplicationService {
	return &appService{
		warehouses:   warehouses,
		associations: associations,
		products:     products,
		stores:       stores,
		reporting:    reporting,
	}
}

func (s *appService) ListWarehouses(ctx context.Context) ([]core.Warehouse, error) {
	return s.warehouses.ListWarehouses(ctx)
}

func (s *appService) GetWarehouse(ctx context.Context, identifier string) (*core.Warehouse, error) {
	return s.warehouses.GetWarehouse(ctx, identifier)
}

func (s *appService) CreateWarehouse(ctx context.Context, req WarehouseRequest) (*core.Warehouse, error) {
	return s.warehouses.CreateWarehouse(ctx, warehouseInput(req))
}

func (s *appService) ReplaceWarehouse(ctx context.Context, businessUnitCode string, req WarehouseRequest) (*core.Warehouse, error) {
	return s.warehouses.ReplaceWarehouse(ctx, businessUnitCode, warehouseInput(req))
}

func (s *appService) ArchiveWarehouse(ctx context.Context, identifier string) error {
	return s.warehouses.ArchiveWarehouse(ctx, identifier)
}

func (s *appService) ListAssociations(ctx context.Context) ([]core.FulfilmentAssociation, error) {
	return s.associations.ListAssociations(ctx)
}

func (s *appService) Associate(ctx context.Context, req AssociationRequest) (*core.FulfilmentAssociation, error) {
	return s.associations.Associate(ctx, req.ProductID, req.StoreID, req.WarehouseIdentifier)
}

func (s *appService) ListProducts(ctx context.Context) ([]core.Product, error) {
	return s.products.ListProducts(ctx)
}

func (s *appService) GetProduct(ctx context.Context, id int64) (*core.Product, error) {
	return s.products.GetProduct(ctx, id)
}

func (s *appService) CreateProduct(ctx context.Context, req ProductRequest) (*core.Product, error) {
	return s.products.CreateProduct(ctx, productInput(req))
}

func (s *appService) UpdateProduct(ctx context.Context, id int64, req ProductRequest) (*core.Product, error) {
	return s.products.UpdateProduct(ctx, id, productInput(req))
}

func (s *appService) DeleteProduct(ctx context.Context, id int64) error {
	return s.products.DeleteProduct(ctx, id)
}

func (s *appService) ListStores(ctx context.Context) ([]core.Store, error) {
	return s.stores.ListStores(ctx)
}

func (s *appService) GetStore(ctx context.Context, id int64) (*core.Store, error) {
	return s.stores.GetStore(ctx, id)
}

func (s *appService) CreateStore(ctx context.Context, req StoreRequest) (*core.Store, error) {
	return s.stores.CreateStore(ctx, storeInput(req))
}

func (s *appService) UpdateStore(ctx context.Context, id int64, req StoreRequest) (*core.Store, error) {
	return s.stores.UpdateStore(ctx, id, storeInput(req))
}

func (s *appService) DeleteStore(ctx context.Context, id int64) error {
	return s.stores.DeleteStore(ctx, id)
}

func (s *appService) LocationUtilization(ctx context.Context) ([]core.LocationUtilization, error) {
	return s.reporting.LocationUtilization(ctx)
}

func warehouseInput(req WarehouseRequest) core.WarehouseInput {
	return core.WarehouseInput{
		BusinessUnitCode: req.BusinessUnitCode,
		Location:         req.Location,
		Capacity:         req.Capacity,
		Stock:            req.Stock,
	}
}

func productInput(req ProductRequest) core.ProductInput {
	return core.ProductInput{Name: req.Name, Description: req.Description, Stock: req.Stock}
}

func storeInput(req StoreRequest) core.StoreInput {
	return core.StoreInput{Name: req.Name, QuantityProductsInStock: req.QuantityProductsInStock}
}
