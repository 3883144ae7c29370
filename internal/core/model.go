package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is a named vendor with contact details. Names are unique and are the
// key other records reference (there is no supplier foreign key).
type Supplier struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	CreatedAt    time.Time `json:"createdAt"`
}

// InventoryItem ties a component name to a supplier and a quantity on hand.
// StockLevel is set directly by the client; order flow never derives it.
type InventoryItem struct {
	ID            string    `json:"id"`
	ComponentName string    `json:"componentName"`
	SupplierName  string    `json:"supplierName"`
	StockLevel    int       `json:"stockLevel"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Order is a request for a quantity of a component from a supplier, carrying a
// lifecycle status.
type Order struct {
	ID            string      `json:"id"`
	ComponentName string      `json:"componentName"`
	SupplierName  string      `json:"supplierName"`
	Quantity      int         `json:"quantity"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// Quotation is a priced offer for a component from a supplier. Prices carry
// two-decimal precision; quotations never mutate inventory stock.
type Quotation struct {
	ID                string          `json:"id"`
	ComponentName     string          `json:"componentName"`
	SupplierName      string          `json:"supplierName"`
	Price             decimal.Decimal `json:"price"`
	AvailableQuantity int             `json:"availableQuantity"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// User is an authenticated system user. Sessions are a boundary concern; the
// core only stores credentials.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// OrderStatus is an order lifecycle state.
type OrderStatus string

// The vocabulary is the union of the two status sets the order surfaces use.
// Both spellings of the initial state (PLACED and PENDING) remain accepted.
const (
	StatusPlaced     OrderStatus = "PLACED"
	StatusPending    OrderStatus = "PENDING"
	StatusOutOfStock OrderStatus = "OUT_OF_STOCK"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// DefaultOrderStatus is assigned when an order is created without an explicit
// status.
const DefaultOrderStatus = StatusPlaced

var nonTerminalStatuses = []OrderStatus{
	StatusPlaced, StatusPending, StatusOutOfStock,
	StatusProcessing, StatusShipped,
}

// orderTransitions is the allowed-transition table: current status to the set
// of permitted next statuses. Terminal statuses map to an empty set. The policy
// is deliberately lenient (any status may move to any other status until a
// terminal one is reached); tightening it is a change to this table, not to
// call sites.
var orderTransitions = buildTransitionTable()

func buildTransitionTable() map[OrderStatus]map[OrderStatus]bool {
	table := make(map[OrderStatus]map[OrderStatus]bool, len(nonTerminalStatuses)+2)
	for _, from := range nonTerminalStatuses {
		next := make(map[OrderStatus]bool)
		for _, to := range nonTerminalStatuses {
			next[to] = true
		}
		next[StatusDelivered] = true
		next[StatusCancelled] = true
		table[from] = next
	}
	table[StatusDelivered] = map[OrderStatus]bool{}
	table[StatusCancelled] = map[OrderStatus]bool{}
	return table
}

// Valid reports whether s is part of the configured status vocabulary.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Terminal reports whether no further transition is permitted out of s.
func (s OrderStatus) Terminal() bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the table permits moving from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return orderTransitions[s][next]
}

// CheckTransition validates a status write against the transition table. Store
// adapters call it with the stored status inside the same critical section as
// the write, so a stale writer cannot move an order out of a terminal status.
func CheckTransition(from, to OrderStatus) error {
	if !from.CanTransitionTo(to) {
		return InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// OrderStatuses returns the configured vocabulary in a stable order.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, 0, len(nonTerminalStatuses)+2)
	out = append(out, nonTerminalStatuses...)
	return append(out, StatusDelivered, StatusCancelled)
}
