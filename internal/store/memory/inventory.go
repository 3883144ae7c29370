package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"supplydesk/internal/core"
)

// InventoryStore holds inventory item records in a map keyed by id.
type InventoryStore struct {
	mu      sync.RWMutex
	records map[string]core.InventoryItem
}

var _ core.InventoryStore = (*InventoryStore)(nil)

func NewInventoryStore() *InventoryStore {
	return &InventoryStore{records: make(map[string]core.InventoryItem)}
}

func (s *InventoryStore) Create(ctx context.Context, item core.InventoryItem) (*core.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.NewString()
	item.CreatedAt = time.Now().UTC()
	s.records[item.ID] = item
	return &item, nil
}

func (s *InventoryStore) Get(ctx context.Context, id string) (*core.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.records[id]
	if !ok {
		return nil, core.NotFoundError{Entity: core.EntityInventory, ID: id}
	}
	return &item, nil
}

func (s *InventoryStore) List(ctx context.Context) ([]core.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.InventoryItem, 0, len(s.records))
	for _, item := range s.records {
		out = append(out, item)
	}
	return out, nil
}

func (s *InventoryStore) ListByComponent(ctx context.Context, componentName string) ([]core.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.InventoryItem
	for _, item := range s.records {
		if item.ComponentName == componentName {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *InventoryStore) ListBySupplier(ctx context.Context, supplierName string) ([]core.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.InventoryItem
	for _, item := range s.records {
		if item.SupplierName == supplierName {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *InventoryStore) Update(ctx context.Context, id string, item core.InventoryItem) (*core.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		return nil, core.NotFoundError{Entity: core.EntityInventory, ID: id}
	}
	current.ComponentName = item.ComponentName
	current.SupplierName = item.SupplierName
	current.StockLevel = item.StockLevel
	s.records[id] = current
	return &current, nil
}

func (s *InventoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return core.NotFoundError{Entity: core.EntityInventory, ID: id}
	}
	delete(s.records, id)
	return nil
}
