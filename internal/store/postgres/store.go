// Package postgres implements the core store ports on PostgreSQL via pgx.
// Single-statement UPDATE/DELETE keeps per-id read-modify-writes atomic with
// respect to concurrent writers; order status writes additionally lock the row
// with SELECT ... FOR UPDATE so the transition check and the write commit as
// one unit.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"supplydesk/internal/core"
)

// Store bundles the pgx-backed entity stores sharing one pool.
type Store struct {
	pool       *pgxpool.Pool
	suppliers  *SupplierStore
	inventory  *InventoryStore
	orders     *OrderStore
	quotations *QuotationStore
	users      *UserStore
}

// Verify interface compliance.
var _ core.Store = (*Store)(nil)

// NewStore constructs a Store on an existing connection pool. The caller owns
// pool configuration; Close closes the pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:       pool,
		suppliers:  &SupplierStore{pool: pool},
		inventory:  &InventoryStore{pool: pool},
		orders:     &OrderStore{pool: pool},
		quotations: &QuotationStore{pool: pool},
		users:      &UserStore{pool: pool},
	}
}

func (s *Store) Suppliers() core.SupplierStore   { return s.suppliers }
func (s *Store) Inventory() core.InventoryStore  { return s.inventory }
func (s *Store) Orders() core.OrderStore         { return s.orders }
func (s *Store) Quotations() core.QuotationStore { return s.quotations }
func (s *Store) Users() core.UserStore           { return s.users }

func (s *Store) Close() { s.pool.Close() }

// uniqueViolation is the PostgreSQL error code for unique constraint breaks.
const uniqueViolation = "23505"

// translateWriteErr maps driver-level failures onto the core error taxonomy:
// no rows → NotFoundError, unique violation → ValidationError on the named
// field. Anything else passes through wrapped by the caller.
func translateWriteErr(err error, entity core.EntityKind, id, uniqueField string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return core.NotFoundError{Entity: entity, ID: id}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return core.ValidationError{Field: uniqueField, Reason: "already in use"}
	}
	return err
}
