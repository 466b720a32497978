package core

import "strings"

// validateWarehouseInput checks field presence and shape, failing fast on the
// first violated rule.
func validateWarehouseInput(in WarehouseInput) error {
	if strings.TrimSpace(in.BusinessUnitCode) == "" {
		return missingField("businessUnitCode")
	}
	if strings.TrimSpace(in.Location) == "" {
		return missingField("location")
	}
	if in.Capacity == nil {
		return missingField("capacity")
	}
	if in.Stock == nil {
		return missingField("stock")
	}
	if *in.Capacity <= 0 {
		return domainErrf(KindInvalidValue, "capacity must be greater than zero")
	}
	if *in.Stock < 0 {
		return domainErrf(KindInvalidValue, "stock must be greater or equal to zero")
	}
	if *in.Stock > *in.Capacity {
		return domainErrf(KindInvalidValue, "stock cannot exceed warehouse capacity")
	}
	return nil
}

// checkLocationFit verifies that a warehouse with newCapacity still fits at
// the location alongside the already-active warehouses there. activeCount and
// activeCapacity describe the active warehouses currently counted against the
// location (the candidate itself excluded).
func checkLocationFit(loc Location, activeCount, activeCapacity, newCapacity int) error {
	if newCapacity > loc.MaxCapacity {
		return domainErrf(KindCapacityViolation,
			"warehouse capacity exceeds max capacity for location: %s", loc.Identification)
	}
	if activeCount >= loc.MaxNumberOfWarehouses {
		return domainErrf(KindWarehouseCountViolation,
			"max number of warehouses reached for location: %s", loc.Identification)
	}
	if activeCapacity+newCapacity > loc.MaxCapacity {
		return domainErrf(KindLocationCapacityViolation,
			"location max capacity exceeded for location: %s", loc.Identification)
	}
	return nil
}

// checkReplacementRules enforces the stock-carrying contract between the
// retiring warehouse and its replacement: stock must carry over exactly, and
// the replacement must be able to hold it.
func checkReplacementRules(current Warehouse, in WarehouseInput) error {
	if *in.Stock != current.Stock {
		return domainErrf(KindStockMismatch, "replacement stock must match current warehouse stock")
	}
	if *in.Capacity < current.Stock {
		return domainErrf(KindCapacityTooSmall, "replacement capacity must accommodate current warehouse stock")
	}
	return nil
}
