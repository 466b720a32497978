package core

import "time"

// Warehouse is a fulfilment unit operating at a physical location.
// BusinessUnitCode is the natural, human-assigned key; it is unique among
// active rows only, so an archived code can be reused by a replacement.
type Warehouse struct {
	ID               int64      `json:"id"`
	BusinessUnitCode string     `json:"businessUnitCode"`
	Location         string     `json:"location"`
	Capacity         int        `json:"capacity"`
	Stock            int        `json:"stock"`
	CreatedAt        time.Time  `json:"createdAt"`
	ArchivedAt       *time.Time `json:"archivedAt,omitempty"`
}

// Active reports whether the warehouse participates in lookups and
// capacity accounting.
func (w Warehouse) Active() bool { return w.ArchivedAt == nil }

// WarehouseInput carries caller-supplied fields for create and replace.
// Capacity and Stock are pointers so an absent field is distinguishable
// from an explicit zero.
type WarehouseInput struct {
	BusinessUnitCode string
	Location         string
	Capacity         *int
	Stock            *int
}

// FulfilmentAssociation asserts that a warehouse may fulfil a product for a
// store. The (ProductID, StoreID, WarehouseBusinessUnitCode) triple is unique.
// Associations are created-only and kept as historical records even after the
// referenced warehouse is archived.
type FulfilmentAssociation struct {
	ID                        int64     `json:"id"`
	ProductID                 int64     `json:"productId"`
	StoreID                   int64     `json:"storeId"`
	WarehouseBusinessUnitCode string    `json:"warehouseBusinessUnitCode"`
	CreatedAt                 time.Time `json:"createdAt"`
}

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Store struct {
	ID                      int64     `json:"id"`
	Name                    string    `json:"name"`
	QuantityProductsInStock int       `json:"quantityProductsInStock"`
	CreatedAt               time.Time `json:"createdAt"`
}

// Location is a reference entity bounding how many warehouses and how much
// aggregate capacity may exist at a physical site.
type Location struct {
	Identification        string `json:"identification"`
	MaxNumberOfWarehouses int    `json:"maxNumberOfWarehouses"`
	MaxCapacity           int    `json:"maxCapacity"`
}
