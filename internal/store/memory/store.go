// Package memory provides a mutex-guarded in-memory implementation of the core
// store ports. It backs the development server when no database is configured
// and the behavioral test suites.
package memory

import (
	"supplydesk/internal/core"
)

// Store bundles the in-memory entity stores.
type Store struct {
	suppliers  *SupplierStore
	inventory  *InventoryStore
	orders     *OrderStore
	quotations *QuotationStore
	users      *UserStore
}

// Verify interface compliance.
var _ core.Store = (*Store)(nil)

// NewStore constructs an empty in-memory store.
func NewStore() *Store {
	return &Store{
		suppliers:  NewSupplierStore(),
		inventory:  NewInventoryStore(),
		orders:     NewOrderStore(),
		quotations: NewQuotationStore(),
		users:      NewUserStore(),
	}
}

func (s *Store) Suppliers() core.SupplierStore   { return s.suppliers }
func (s *Store) Inventory() core.InventoryStore  { return s.inventory }
func (s *Store) Orders() core.OrderStore         { return s.orders }
func (s *Store) Quotations() core.QuotationStore { return s.quotations }
func (s *Store) Users() core.UserStore           { return s.users }

// Close releases nothing; it exists to satisfy the store lifecycle.
func (s *Store) Close() {}
