package core

// LocationResolver resolves a location identifier to its ceilings.
// Unknown identifiers resolve to nil.
type LocationResolver interface {
	Resolve(identifier string) *Location
}

// LocationCatalog is the static reference table of fulfilment sites.
// Locations are not managed through the API; the catalog is the single
// source of truth for per-site warehouse count and capacity ceilings.
type LocationCatalog struct {
	byID map[string]Location
	all  []Location
}

func NewLocationCatalog() *LocationCatalog {
	locations := []Location{
		{Identification: "ZWOLLE-001", MaxNumberOfWarehouses: 1, MaxCapacity: 40},
		{Identification: "ZWOLLE-002", MaxNumberOfWarehouses: 2, MaxCapacity: 50},
		{Identification: "AMSTERDAM-001", MaxNumberOfWarehouses: 5, MaxCapacity: 100},
		{Identification: "AMSTERDAM-002", MaxNumberOfWarehouses: 3, MaxCapacity: 75},
		{Identification: "TILBURG-001", MaxNumberOfWarehouses: 2, MaxCapacity: 40},
		{Identification: "HELMOND-001", MaxNumberOfWarehouses: 1, MaxCapacity: 45},
		{Identification: "EINDHOVEN-001", MaxNumberOfWarehouses: 2, MaxCapacity: 70},
		{Identification: "VETSBY-001", MaxNumberOfWarehouses: 4, MaxCapacity: 90},
	}

	byID := make(map[string]Location, len(locations))
	for _, l := range locations {
		byID[l.Identification] = l
	}
	return &LocationCatalog{byID: byID, all: locations}
}

func (c *LocationCatalog) Resolve(identifier string) *Location {
	if l, ok := c.byID[identifier]; ok {
		return &l
	}
	return nil
}

// All returns every catalogued location in declaration order.
func (c *LocationCatalog) All() []Location {
	out := make([]Location, len(c.all))
	copy(out, c.all)
	return out
}
