package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"supplydesk/internal/core"
)

// SupplierStore holds supplier records in a map keyed by id. A single RWMutex
// makes every read-modify-write a whole-store critical section, which is the
// lost-update guarantee the store contract asks for.
type SupplierStore struct {
	mu      sync.RWMutex
	records map[string]core.Supplier
}

var _ core.SupplierStore = (*SupplierStore)(nil)

func NewSupplierStore() *SupplierStore {
	return &SupplierStore{records: make(map[string]core.Supplier)}
}

func (s *SupplierStore) Create(ctx context.Context, supplier core.Supplier) (*core.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.records {
		if existing.Name == supplier.Name {
			return nil, core.ValidationError{Field: "name", Reason: "already in use"}
		}
	}
	supplier.ID = uuid.NewString()
	supplier.CreatedAt = time.Now().UTC()
	s.records[supplier.ID] = supplier
	return &supplier, nil
}

func (s *SupplierStore) Get(ctx context.Context, id string) (*core.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	supplier, ok := s.records[id]
	if !ok {
		return nil, core.NotFoundError{Entity: core.EntitySupplier, ID: id}
	}
	return &supplier, nil
}

func (s *SupplierStore) GetByName(ctx context.Context, name string) (*core.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, supplier := range s.records {
		if supplier.Name == name {
			return &supplier, nil
		}
	}
	return nil, core.NotFoundError{Entity: core.EntitySupplier, ID: name}
}

func (s *SupplierStore) List(ctx context.Context) ([]core.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Supplier, 0, len(s.records))
	for _, supplier := range s.records {
		out = append(out, supplier)
	}
	return out, nil
}

func (s *SupplierStore) Update(ctx context.Context, id string, supplier core.Supplier) (*core.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		return nil, core.NotFoundError{Entity: core.EntitySupplier, ID: id}
	}
	for otherID, existing := range s.records {
		if otherID != id && existing.Name == supplier.Name {
			return nil, core.ValidationError{Field: "name", Reason: "already in use"}
		}
	}
	current.Name = supplier.Name
	current.ContactEmail = supplier.ContactEmail
	current.ContactPhone = supplier.ContactPhone
	s.records[id] = current
	return &current, nil
}

func (s *SupplierStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return core.NotFoundError{Entity: core.EntitySupplier, ID: id}
	}
	delete(s.records, id)
	return nil
}
