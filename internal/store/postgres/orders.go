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

// OrderStore persists orders in the orders table. Status strings come from the
// configured vocabulary; the table stores them verbatim.
type OrderStore struct {
	pool *pgxpool.Pool
}

var _ core.OrderStore = (*OrderStore)(nil)

const orderColumns = "id, component_name, supplier_name, quantity, status, created_at"

func scanOrder(row pgx.Row) (*core.Order, error) {
	o := &core.Order{}
	err := row.Scan(&o.ID, &o.ComponentName, &o.SupplierName, &o.Quantity, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (st *OrderStore) Create(ctx context.Context, order core.Order) (*core.Order, error) {
	row := st.pool.QueryRow(ctx, `
		INSERT INTO orders (id, component_name, supplier_name, quantity, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+orderColumns,
		uuid.NewString(), order.ComponentName, order.SupplierName, order.Quantity, order.Status,
	)
	created, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("create order for %q: %w", order.ComponentName, err)
	}
	return created, nil
}

func (st *OrderStore) Get(ctx context.Context, id string) (*core.Order, error) {
	row := st.pool.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.NotFoundError{Entity: core.EntityOrder, ID: id}
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return order, nil
}

func (st *OrderStore) List(ctx context.Context) ([]core.Order, error) {
	return st.query(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY created_at")
}

func (st *OrderStore) ListByComponent(ctx context.Context, componentName string) ([]core.Order, error) {
	return st.query(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE component_name = $1", componentName)
}

func (st *OrderStore) ListBySupplier(ctx context.Context, supplierName string) ([]core.Order, error) {
	return st.query(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE supplier_name = $1", supplierName)
}

func (st *OrderStore) query(ctx context.Context, sql string, args ...any) ([]core.Order, error) {
	rows, err := st.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []core.Order
	for rows.Next() {
		var o core.Order
		if err := rows.Scan(&o.ID, &o.ComponentName, &o.SupplierName, &o.Quantity, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (st *OrderStore) Update(ctx context.Context, id string, order core.Order) (*core.Order, error) {
	return st.guardedWrite(ctx, id, order.Status, func(tx pgx.Tx) (*core.Order, error) {
		row := tx.QueryRow(ctx, `
			UPDATE orders
			SET component_name = $1, supplier_name = $2, quantity = $3, status = $4
			WHERE id = $5
			RETURNING `+orderColumns,
			order.ComponentName, order.SupplierName, order.Quantity, order.Status, id,
		)
		return scanOrder(row)
	})
}

func (st *OrderStore) UpdateStatus(ctx context.Context, id string, status core.OrderStatus) (*core.Order, error) {
	return st.guardedWrite(ctx, id, status, func(tx pgx.Tx) (*core.Order, error) {
		row := tx.QueryRow(ctx,
			"UPDATE orders SET status = $1 WHERE id = $2 RETURNING "+orderColumns,
			status, id,
		)
		return scanOrder(row)
	})
}

// guardedWrite locks the order row, re-checks the target status against the
// stored one, and runs the write in the same transaction. The row lock
// serializes concurrent transitions so a stale writer observes the committed
// terminal status instead of overwriting it.
func (st *OrderStore) guardedWrite(ctx context.Context, id string, target core.OrderStatus, write func(pgx.Tx) (*core.Order, error)) (*core.Order, error) {
	tx, err := st.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin order write: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1 FOR UPDATE", id)
	current, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.NotFoundError{Entity: core.EntityOrder, ID: id}
		}
		return nil, fmt.Errorf("lock order %s: %w", id, err)
	}
	if err := core.CheckTransition(current.Status, target); err != nil {
		return nil, err
	}

	updated, err := write(tx)
	if err != nil {
		return nil, fmt.Errorf("update order %s: %w", id, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit order %s: %w", id, err)
	}
	return updated, nil
}

func (st *OrderStore) Delete(ctx context.Context, id string) error {
	tag, err := st.pool.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return core.NotFoundError{Entity: core.EntityOrder, ID: id}
	}
	return nil
}
