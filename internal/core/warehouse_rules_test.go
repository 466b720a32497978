package core

import "testing"

func intPtr(v int) *int { return &v }

func TestValidateWarehouseInput(t *testing.T) {
	tests := []struct {
		name     string
		input    WarehouseInput
		wantKind ErrorKind
	}{
		{
			name:  "valid input",
			input: WarehouseInput{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: intPtr(40), Stock: intPtr(10)},
		},
		{
			name:     "missing business unit code",
			input:    WarehouseInput{Location: "ZWOLLE-001", Capacity: intPtr(40), Stock: intPtr(10)},
			wantKind: KindMissingField,
		},
		{
			name:     "blank business unit code",
			input:    WarehouseInput{BusinessUnitCode: "   ", Location: "ZWOLLE-001", Capacity: intPtr(40), Stock: intPtr(10)},
			wantKind: KindMissingField,
		},
		{
			name:     "missing location",
			input:    WarehouseInput{BusinessUnitCode: "MWH.001", Capacity: intPtr(40), Stock: intPtr(10)},
			wantKind: KindMissingField,
		},
		{
			name:     "missing capacity",
			input:    WarehouseInput{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Stock: intPtr(10)},
			wantKind: KindMissingField,
		},
		{
			name:     "missing stock",
			input:    WarehouseInput{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: intPtr(40)},
			wantKind: KindMissingField,
		},
		{
			name:     "zero capacity",
			input:    WarehouseInput{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: intPtr(0), Stock: intPtr(0)},
			wantKind: KindInvalidValue,
		},
		{
			name:     "negative capacity",
			input:    WarehouseInput{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: intPtr(-5), Stock: intPtr(0)},
			wantKind: KindInvalidValue,
		},
		{
			name:     "negative stock",
			input:    WarehouseInput{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: intPtr(40), Stock: intPtr(-1)},
			wantKind: KindInvalidValue,
		},
		{
			name:     "stock exceeds capacity",
			input:    WarehouseInput{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: intPtr(40), Stock: intPtr(41)},
			wantKind: KindInvalidValue,
		},
		{
			name:  "stock equals capacity",
			input: WarehouseInput{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: intPtr(40), Stock: intPtr(40)},
		},
		{
			name:  "explicit zero stock",
			input: WarehouseInput{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: intPtr(40), Stock: intPtr(0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWarehouseInput(tt.input)
			if tt.wantKind == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if got := KindOf(err); got != tt.wantKind {
				t.Errorf("expected kind %s, got %s (err: %v)", tt.wantKind, got, err)
			}
		})
	}
}

func TestCheckLocationFit(t *testing.T) {
	// ZWOLLE-002 ceilings: at most 2 warehouses, 50 total capacity.
	loc := Location{Identification: "ZWOLLE-002", MaxNumberOfWarehouses: 2, MaxCapacity: 50}

	tests := []struct {
		name           string
		activeCount    int
		activeCapacity int
		newCapacity    int
		wantKind       ErrorKind
	}{
		{name: "fits in empty location", activeCount: 0, activeCapacity: 0, newCapacity: 50},
		{name: "fits alongside existing", activeCount: 1, activeCapacity: 20, newCapacity: 30},
		{
			name:        "single warehouse exceeds location max",
			newCapacity: 51,
			wantKind:    KindCapacityViolation,
		},
		{
			name:        "warehouse count ceiling reached",
			activeCount: 2, activeCapacity: 40, newCapacity: 10,
			wantKind: KindWarehouseCountViolation,
		},
		{
			name:        "aggregate capacity exceeded",
			activeCount: 1, activeCapacity: 30, newCapacity: 30,
			wantKind: KindLocationCapacityViolation,
		},
		{
			// Capacity check wins over count check when both would trip.
			name:        "capacity violation reported before count",
			activeCount: 2, activeCapacity: 40, newCapacity: 60,
			wantKind: KindCapacityViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkLocationFit(loc, tt.activeCount, tt.activeCapacity, tt.newCapacity)
			if tt.wantKind == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if got := KindOf(err); got != tt.wantKind {
				t.Errorf("expected kind %s, got %s (err: %v)", tt.wantKind, got, err)
			}
		})
	}
}

func TestCheckReplacementRules(t *testing.T) {
	current := Warehouse{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: 40, Stock: 10}

	tests := []struct {
		name     string
		stock    int
		capacity int
		wantKind ErrorKind
	}{
		{name: "same stock, same capacity", stock: 10, capacity: 40},
		{name: "same stock, smaller but sufficient capacity", stock: 10, capacity: 10},
		{name: "stock lower than current", stock: 5, capacity: 40, wantKind: KindStockMismatch},
		{name: "stock higher than current", stock: 15, capacity: 40, wantKind: KindStockMismatch},
		{name: "capacity below current stock", stock: 10, capacity: 9, wantKind: KindCapacityTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := WarehouseInput{
				BusinessUnitCode: current.BusinessUnitCode,
				Location:         current.Location,
				Capacity:         intPtr(tt.capacity),
				Stock:            intPtr(tt.stock),
			}
			err := checkReplacementRules(current, in)
			if tt.wantKind == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if got := KindOf(err); got != tt.wantKind {
				t.Errorf("expected kind %s, got %s (err: %v)", tt.wantKind, got, err)
			}
		})
	}
}

func TestGroupLockKey(t *testing.T) {
	// Same parts yield the same key; different part boundaries must not.
	if groupLockKey("warehouse-location", "ZWOLLE-001") != groupLockKey("warehouse-location", "ZWOLLE-001") {
		t.Error("expected identical keys for identical parts")
	}
	if groupLockKey("ab", "c") == groupLockKey("a", "bc") {
		t.Error("expected different keys when part boundaries differ")
	}
	if groupLockKey("assoc-store", "1") == groupLockKey("assoc-warehouse", "1") {
		t.Error("expected different keys for different groups")
	}
}
