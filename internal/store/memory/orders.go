package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"supplydesk/internal/core"
)

// OrderStore holds order records in a map keyed by id.
type OrderStore struct {
	mu      sync.RWMutex
	records map[string]core.Order
}

var _ core.OrderStore = (*OrderStore)(nil)

func NewOrderStore() *OrderStore {
	return &OrderStore{records: make(map[string]core.Order)}
}

func (s *OrderStore) Create(ctx context.Context, order core.Order) (*core.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = uuid.NewString()
	order.CreatedAt = time.Now().UTC()
	s.records[order.ID] = order
	return &order, nil
}

func (s *OrderStore) Get(ctx context.Context, id string) (*core.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.records[id]
	if !ok {
		return nil, core.NotFoundError{Entity: core.EntityOrder, ID: id}
	}
	return &order, nil
}

func (s *OrderStore) List(ctx context.Context) ([]core.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Order, 0, len(s.records))
	for _, order := range s.records {
		out = append(out, order)
	}
	return out, nil
}

func (s *OrderStore) ListByComponent(ctx context.Context, componentName string) ([]core.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Order
	for _, order := range s.records {
		if order.ComponentName == componentName {
			out = append(out, order)
		}
	}
	return out, nil
}

func (s *OrderStore) ListBySupplier(ctx context.Context, supplierName string) ([]core.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Order
	for _, order := range s.records {
		if order.SupplierName == supplierName {
			out = append(out, order)
		}
	}
	return out, nil
}

func (s *OrderStore) Update(ctx context.Context, id string, order core.Order) (*core.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		return nil, core.NotFoundError{Entity: core.EntityOrder, ID: id}
	}
	if err := core.CheckTransition(current.Status, order.Status); err != nil {
		return nil, err
	}
	current.ComponentName = order.ComponentName
	current.SupplierName = order.SupplierName
	current.Quantity = order.Quantity
	current.Status = order.Status
	s.records[id] = current
	return &current, nil
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id string, status core.OrderStatus) (*core.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		return nil, core.NotFoundError{Entity: core.EntityOrder, ID: id}
	}
	if err := core.CheckTransition(current.Status, status); err != nil {
		return nil, err
	}
	current.Status = status
	s.records[id] = current
	return &current, nil
}

func (s *OrderStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return core.NotFoundError{Entity: core.EntityOrder, ID: id}
	}
	delete(s.records, id)
	return nil
}
