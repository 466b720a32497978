package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every rejection the allocation engine can produce.
// Adapters branch on the kind; the message is safe to return to callers.
type ErrorKind string

const (
	KindMissingField              ErrorKind = "MISSING_FIELD"
	KindInvalidValue              ErrorKind = "INVALID_VALUE"
	KindUnknownLocation           ErrorKind = "UNKNOWN_LOCATION"
	KindDuplicateBusinessUnitCode ErrorKind = "DUPLICATE_BUSINESS_UNIT_CODE"
	KindCapacityViolation         ErrorKind = "CAPACITY_VIOLATION"
	KindWarehouseCountViolation   ErrorKind = "WAREHOUSE_COUNT_VIOLATION"
	KindLocationCapacityViolation ErrorKind = "LOCATION_CAPACITY_VIOLATION"
	KindStockMismatch             ErrorKind = "STOCK_MISMATCH"
	KindCapacityTooSmall          ErrorKind = "CAPACITY_TOO_SMALL"
	KindNotFound                  ErrorKind = "NOT_FOUND"
	KindConflict                  ErrorKind = "CONFLICT"
	KindLimitExceeded             ErrorKind = "LIMIT_EXCEEDED"
)

// DomainError is a machine-readable validation rejection.
type DomainError struct {
	Kind    ErrorKind
	Entity  string // set for NOT_FOUND: "product", "store" or "warehouse"
	Rule    string // set for LIMIT_EXCEEDED: the ceiling that tripped
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func domainErrf(kind ErrorKind, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func missingField(field string) *DomainError {
	return &DomainError{Kind: KindMissingField, Message: field + " is required"}
}

func notFound(entity, format string, args ...any) *DomainError {
	return &DomainError{Kind: KindNotFound, Entity: entity, Message: fmt.Sprintf(format, args...)}
}

func limitExceeded(rule, message string) *DomainError {
	return &DomainError{Kind: KindLimitExceeded, Rule: rule, Message: message}
}

// KindOf returns the ErrorKind carried by err, or "" for non-domain errors.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
