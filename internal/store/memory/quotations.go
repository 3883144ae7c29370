package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"supplydesk/internal/core"
)

// QuotationStore holds quotation records in a map keyed by id.
type QuotationStore struct {
	mu      sync.RWMutex
	records map[string]core.Quotation
}

var _ core.QuotationStore = (*QuotationStore)(nil)

func NewQuotationStore() *QuotationStore {
	return &QuotationStore{records: make(map[string]core.Quotation)}
}

func (s *QuotationStore) Create(ctx context.Context, quotation core.Quotation) (*core.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quotation.ID = uuid.NewString()
	quotation.CreatedAt = time.Now().UTC()
	s.records[quotation.ID] = quotation
	return &quotation, nil
}

func (s *QuotationStore) Get(ctx context.Context, id string) (*core.Quotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quotation, ok := s.records[id]
	if !ok {
		return nil, core.NotFoundError{Entity: core.EntityQuotation, ID: id}
	}
	return &quotation, nil
}

func (s *QuotationStore) List(ctx context.Context) ([]core.Quotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Quotation, 0, len(s.records))
	for _, quotation := range s.records {
		out = append(out, quotation)
	}
	return out, nil
}

func (s *QuotationStore) ListByComponent(ctx context.Context, componentName string) ([]core.Quotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Quotation
	for _, quotation := range s.records {
		if quotation.ComponentName == componentName {
			out = append(out, quotation)
		}
	}
	return out, nil
}

func (s *QuotationStore) Update(ctx context.Context, id string, quotation core.Quotation) (*core.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		return nil, core.NotFoundError{Entity: core.EntityQuotation, ID: id}
	}
	current.ComponentName = quotation.ComponentName
	current.SupplierName = quotation.SupplierName
	current.Price = quotation.Price
	current.AvailableQuantity = quotation.AvailableQuantity
	s.records[id] = current
	return &current, nil
}

func (s *QuotationStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return core.NotFoundError{Entity: core.EntityQuotation, ID: id}
	}
	delete(s.records, id)
	return nil
}
