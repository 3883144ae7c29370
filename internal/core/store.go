package core

import "context"

// The store ports persist the four record collections plus users. Adapters
// assign fresh opaque ids on Create, replace mutable fields atomically on
// Update, and return NotFoundError for operations against unknown ids.
// List ordering is implementation-defined; secondary lookups are exact,
// case-sensitive string matches.

// SupplierStore persists supplier records. Names are unique; Create and Update
// fail with ValidationError on a duplicate name.
type SupplierStore interface {
	Create(ctx context.Context, s Supplier) (*Supplier, error)
	Get(ctx context.Context, id string) (*Supplier, error)
	GetByName(ctx context.Context, name string) (*Supplier, error)
	List(ctx context.Context) ([]Supplier, error)
	Update(ctx context.Context, id string, s Supplier) (*Supplier, error)
	Delete(ctx context.Context, id string) error
}

// InventoryStore persists inventory item records.
type InventoryStore interface {
	Create(ctx context.Context, item InventoryItem) (*InventoryItem, error)
	Get(ctx context.Context, id string) (*InventoryItem, error)
	List(ctx context.Context) ([]InventoryItem, error)
	ListByComponent(ctx context.Context, componentName string) ([]InventoryItem, error)
	ListBySupplier(ctx context.Context, supplierName string) ([]InventoryItem, error)
	Update(ctx context.Context, id string, item InventoryItem) (*InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

// OrderStore persists order records. Status writes are guarded inside the
// store's critical section: the stored status is re-read and checked against
// the transition table atomically with the write, so a concurrent writer that
// commits a terminal status first wins — the loser gets
// InvalidTransitionError, never a resurrected order.
type OrderStore interface {
	Create(ctx context.Context, o Order) (*Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	ListByComponent(ctx context.Context, componentName string) ([]Order, error)
	ListBySupplier(ctx context.Context, supplierName string) ([]Order, error)

	// Update replaces the mutable fields. Fails with InvalidTransitionError
	// when the stored status is terminal or does not permit o.Status.
	Update(ctx context.Context, id string, o Order) (*Order, error)

	// UpdateStatus transitions only the status, checking the stored status
	// against the transition table in the same critical section as the write.
	UpdateStatus(ctx context.Context, id string, status OrderStatus) (*Order, error)

	Delete(ctx context.Context, id string) error
}

// QuotationStore persists quotation records.
type QuotationStore interface {
	Create(ctx context.Context, q Quotation) (*Quotation, error)
	Get(ctx context.Context, id string) (*Quotation, error)
	List(ctx context.Context) ([]Quotation, error)
	ListByComponent(ctx context.Context, componentName string) ([]Quotation, error)
	Update(ctx context.Context, id string, q Quotation) (*Quotation, error)
	Delete(ctx context.Context, id string) error
}

// UserStore persists user credentials. Usernames are unique.
type UserStore interface {
	Create(ctx context.Context, u User) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// Store bundles the per-entity stores an adapter provides. It has an explicit
// lifecycle: constructed at process start, injected into the services, closed
// at shutdown.
type Store interface {
	Suppliers() SupplierStore
	Inventory() InventoryStore
	Orders() OrderStore
	Quotations() QuotationStore
	Users() UserStore
	Close()
}
