package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"supplydesk/internal/core"
)

// InventoryStore persists inventory items in the inventory_items table.
type InventoryStore struct {
	pool *pgxpool.Pool
}

var _ core.InventoryStore = (*InventoryStore)(nil)

const inventoryColumns = "id, component_name, supplier_name, stock_level, created_at"

func scanInventoryItem(row pgx.Row) (*core.InventoryItem, error) {
	item := &core.InventoryItem{}
	err := row.Scan(&item.ID, &item.ComponentName, &item.SupplierName, &item.StockLevel, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (st *InventoryStore) Create(ctx context.Context, item core.InventoryItem) (*core.InventoryItem, error) {
	row := st.pool.QueryRow(ctx, `
		INSERT INTO inventory_items (id, component_name, supplier_name, stock_level)
		VALUES ($1, $2, $3, $4)
		RETURNING `+inventoryColumns,
		uuid.NewString(), item.ComponentName, item.SupplierName, item.StockLevel,
	)
	created, err := scanInventoryItem(row)
	if err != nil {
		return nil, fmt.Errorf("create inventory item for %q: %w", item.ComponentName, err)
	}
	return created, nil
}

func (st *InventoryStore) Get(ctx context.Context, id string) (*core.InventoryItem, error) {
	row := st.pool.QueryRow(ctx,
		"SELECT "+inventoryColumns+" FROM inventory_items WHERE id = $1", id)
	item, err := scanInventoryItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.NotFoundError{Entity: core.EntityInventory, ID: id}
		}
		return nil, fmt.Errorf("get inventory item %s: %w", id, err)
	}
	return item, nil
}

func (st *InventoryStore) List(ctx context.Context) ([]core.InventoryItem, error) {
	return st.query(ctx, "SELECT "+inventoryColumns+" FROM inventory_items ORDER BY component_name")
}

func (st *InventoryStore) ListByComponent(ctx context.Context, componentName string) ([]core.InventoryItem, error) {
	return st.query(ctx,
		"SELECT "+inventoryColumns+" FROM inventory_items WHERE component_name = $1", componentName)
}

func (st *InventoryStore) ListBySupplier(ctx context.Context, supplierName string) ([]core.InventoryItem, error) {
	return st.query(ctx,
		"SELECT "+inventoryColumns+" FROM inventory_items WHERE supplier_name = $1", supplierName)
}

func (st *InventoryStore) query(ctx context.Context, sql string, args ...any) ([]core.InventoryItem, error) {
	rows, err := st.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query inventory items: %w", err)
	}
	defer rows.Close()

	var items []core.InventoryItem
	for rows.Next() {
		var item core.InventoryItem
		if err := rows.Scan(&item.ID, &item.ComponentName, &item.SupplierName, &item.StockLevel, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (st *InventoryStore) Update(ctx context.Context, id string, item core.InventoryItem) (*core.InventoryItem, error) {
	row := st.pool.QueryRow(ctx, `
		UPDATE inventory_items
		SET component_name = $1, supplier_name = $2, stock_level = $3
		WHERE id = $4
		RETURNING `+inventoryColumns,
		item.ComponentName, item.SupplierName, item.StockLevel, id,
	)
	updated, err := scanInventoryItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.NotFoundError{Entity: core.EntityInventory, ID: id}
		}
		return nil, fmt.Errorf("update inventory item %s: %w", id, err)
	}
	return updated, nil
}

func (st *InventoryStore) Delete(ctx context.Context, id string) error {
	tag, err := st.pool.Exec(ctx, "DELETE FROM inventory_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete inventory item %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return core.NotFoundError{Entity: core.EntityInventory, ID: id}
	}
	return nil
}
