package app

// WarehouseRequest is the payload for creating or replacing a warehouse.
// Capacity and Stock are pointers so that absent fields are distinguishable
// from explicit zeroes.
type WarehouseRequest struct {
	BusinessUnitCode string `json:"businessUnitCode" jsonschema_description:"Natural key of the warehouse, unique among active warehouses. Ignored on replacement (the path code wins)."`
	Location         string `json:"location" jsonschema_description:"Identifier of a catalogued location, e.g. AMSTERDAM-001"`
	Capacity         *int   `json:"capacity" jsonschema_description:"Maximum stock the warehouse can hold; must be positive and within the location ceiling"`
	Stock            *int   `json:"stock" jsonschema_description:"Current stock; between zero and capacity"`
}

// AssociationRequest is the payload for creating a fulfilment association.
type AssociationRequest struct {
	ProductID           int64  `json:"productId" jsonschema_description:"Internal id of an existing product"`
	StoreID             int64  `json:"storeId" jsonschema_description:"Internal id of an existing store"`
	WarehouseIdentifier string `json:"warehouseIdentifier" jsonschema_description:"Business unit code or internal numeric id of an active warehouse"`
}

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	Name        string `json:"name" jsonschema_description:"Unique product name"`
	Description string `json:"description,omitempty" jsonschema_description:"Optional free-form description"`
	Stock       *int   `json:"stock" jsonschema_description:"Units in stock; non-negative"`
}

// StoreRequest is the payload for creating or updating a store.
type StoreRequest struct {
	Name                    string `json:"name" jsonschema_description:"Unique store name"`
	QuantityProductsInStock *int   `json:"quantityProductsInStock" jsonschema_description:"Units currently stocked at the store; non-negative"`
}
