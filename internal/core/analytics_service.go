package core

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
)

// ── Aggregate types ───────────────────────────────────────────────────────────

// AveragePrice is the arithmetic mean of quotation prices for one component,
// rounded to two decimals. Samples is the number of quotations folded in; when
// it is zero the Average is a defined no-data value of 0.00 rather than an
// error, so callers can distinguish "no quotations" from a genuine zero mean.
type AveragePrice struct {
	ComponentName string          `json:"componentName"`
	Average       decimal.Decimal `json:"averagePrice"`
	Samples       int             `json:"samples"`
}

// TotalStock is the sum of inventory stock levels for one component.
type TotalStock struct {
	ComponentName string `json:"componentName"`
	TotalStock    int    `json:"totalStock"`
}

// TotalOrders is the count of orders for one component. Every status counts,
// terminal ones included; excluding cancelled orders would be a policy change
// to this service, not to its callers.
type TotalOrders struct {
	ComponentName string `json:"componentName"`
	TotalOrders   int    `json:"totalOrders"`
}

// ── Interface ─────────────────────────────────────────────────────────────────

// AnalyticsService provides read-only aggregates per component name. Each
// aggregate is computed fresh on every query by folding over the matching
// records — a full scan per call, with no incremental maintenance and no
// caching. That is fine at back-office entity counts and is a known scaling
// limit beyond them.
type AnalyticsService interface {
	GetAveragePrice(ctx context.Context, componentName string) (*AveragePrice, error)
	GetTotalStock(ctx context.Context, componentName string) (*TotalStock, error)
	GetTotalOrders(ctx context.Context, componentName string) (*TotalOrders, error)

	// ListComponents returns the distinct componentName values across inventory
	// records, sorted. Components are a derived view, not an entity.
	ListComponents(ctx context.Context) ([]string, error)
}

type analyticsService struct {
	inventory  InventoryStore
	orders     OrderStore
	quotations QuotationStore
}

// NewAnalyticsService constructs an AnalyticsService over the three record
// collections it aggregates.
func NewAnalyticsService(inventory InventoryStore, orders OrderStore, quotations QuotationStore) AnalyticsService {
	return &analyticsService{inventory: inventory, orders: orders, quotations: quotations}
}

func (s *analyticsService) GetAveragePrice(ctx context.Context, componentName string) (*AveragePrice, error) {
	quotes, err := s.quotations.ListByComponent(ctx, componentName)
	if err != nil {
		return nil, err
	}
	result := &AveragePrice{ComponentName: componentName, Average: decimal.Zero, Samples: len(quotes)}
	if len(quotes) == 0 {
		return result, nil
	}
	sum := decimal.Zero
	for _, q := range quotes {
		sum = sum.Add(q.Price)
	}
	result.Average = sum.Div(decimal.NewFromInt(int64(len(quotes)))).Round(2)
	return result, nil
}

func (s *analyticsService) GetTotalStock(ctx context.Context, componentName string) (*TotalStock, error) {
	items, err := s.inventory.ListByComponent(ctx, componentName)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, item := range items {
		total += item.StockLevel
	}
	return &TotalStock{ComponentName: componentName, TotalStock: total}, nil
}

func (s *analyticsService) GetTotalOrders(ctx context.Context, componentName string) (*TotalOrders, error) {
	orders, err := s.orders.ListByComponent(ctx, componentName)
	if err != nil {
		return nil, err
	}
	return &TotalOrders{ComponentName: componentName, TotalOrders: len(orders)}, nil
}

func (s *analyticsService) ListComponents(ctx context.Context) ([]string, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(items))
	var components []string
	for _, item := range items {
		if !seen[item.ComponentName] {
			seen[item.ComponentName] = true
			components = append(components, item.ComponentName)
		}
	}
	sort.Strings(components)
	return components, nil
}
