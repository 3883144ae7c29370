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

// QuotationStore persists quotations in the quotations table. Prices live in a
// NUMERIC(12,2) column and scan into shopspring decimals.
type QuotationStore struct {
	pool *pgxpool.Pool
}

var _ core.QuotationStore = (*QuotationStore)(nil)

const quotationColumns = "id, component_name, supplier_name, price, available_quantity, created_at"

func scanQuotation(row pgx.Row) (*core.Quotation, error) {
	q := &core.Quotation{}
	err := row.Scan(&q.ID, &q.ComponentName, &q.SupplierName, &q.Price, &q.AvailableQuantity, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (st *QuotationStore) Create(ctx context.Context, quotation core.Quotation) (*core.Quotation, error) {
	row := st.pool.QueryRow(ctx, `
		INSERT INTO quotations (id, component_name, supplier_name, price, available_quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+quotationColumns,
		uuid.NewString(), quotation.ComponentName, quotation.SupplierName,
		quotation.Price, quotation.AvailableQuantity,
	)
	created, err := scanQuotation(row)
	if err != nil {
		return nil, fmt.Errorf("create quotation for %q: %w", quotation.ComponentName, err)
	}
	return created, nil
}

func (st *QuotationStore) Get(ctx context.Context, id string) (*core.Quotation, error) {
	row := st.pool.QueryRow(ctx,
		"SELECT "+quotationColumns+" FROM quotations WHERE id = $1", id)
	quotation, err := scanQuotation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.NotFoundError{Entity: core.EntityQuotation, ID: id}
		}
		return nil, fmt.Errorf("get quotation %s: %w", id, err)
	}
	return quotation, nil
}

func (st *QuotationStore) List(ctx context.Context) ([]core.Quotation, error) {
	return st.query(ctx, "SELECT "+quotationColumns+" FROM quotations ORDER BY component_name")
}

func (st *QuotationStore) ListByComponent(ctx context.Context, componentName string) ([]core.Quotation, error) {
	return st.query(ctx,
		"SELECT "+quotationColumns+" FROM quotations WHERE component_name = $1", componentName)
}

func (st *QuotationStore) query(ctx context.Context, sql string, args ...any) ([]core.Quotation, error) {
	rows, err := st.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query quotations: %w", err)
	}
	defer rows.Close()

	var quotations []core.Quotation
	for rows.Next() {
		var q core.Quotation
		if err := rows.Scan(&q.ID, &q.ComponentName, &q.SupplierName, &q.Price, &q.AvailableQuantity, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		quotations = append(quotations, q)
	}
	return quotations, rows.Err()
}

func (st *QuotationStore) Update(ctx context.Context, id string, quotation core.Quotation) (*core.Quotation, error) {
	row := st.pool.QueryRow(ctx, `
		UPDATE quotations
		SET component_name = $1, supplier_name = $2, price = $3, available_quantity = $4
		WHERE id = $5
		RETURNING `+quotationColumns,
		quotation.ComponentName, quotation.SupplierName, quotation.Price, quotation.AvailableQuantity, id,
	)
	updated, err := scanQuotation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.NotFoundError{Entity: core.EntityQuotation, ID: id}
		}
		return nil, fmt.Errorf("update quotation %s: %w", id, err)
	}
	return updated, nil
}

func (st *QuotationStore) Delete(ctx context.Context, id string) error {
	tag, err := st.pool.Exec(ctx, "DELETE FROM quotations WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete quotation %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return core.NotFoundError{Entity: core.EntityQuotation, ID: id}
	}
	return nil
}
