package core

import "fmt"

// EntityKind names a record collection in error reports.
type EntityKind string

const (
	EntitySupplier  EntityKind = "supplier"
	EntityInventory EntityKind = "inventory item"
	EntityOrder     EntityKind = "order"
	EntityQuotation EntityKind = "quotation"
	EntityUser      EntityKind = "user"
)

// ValidationError reports a malformed or missing field on a write. It is
// recoverable; the caller decides whether to retry with corrected input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ReferenceError reports a supplierName that does not resolve to any existing
// supplier at write time.
type ReferenceError struct {
	SupplierName string
}

func (e ReferenceError) Error() string {
	return fmt.Sprintf("unknown supplier %q", e.SupplierName)
}

// NotFoundError reports an operation targeting an id with no record.
type NotFoundError struct {
	Entity EntityKind
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// InvalidTransitionError reports a status change attempted on an order whose
// current status is terminal.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}
