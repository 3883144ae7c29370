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

// SupplierStore persists suppliers in the suppliers table. Name uniqueness is
// enforced by a unique index and surfaced as a ValidationError.
type SupplierStore struct {
	pool *pgxpool.Pool
}

var _ core.SupplierStore = (*SupplierStore)(nil)

const supplierColumns = "id, name, contact_email, contact_phone, created_at"

func scanSupplier(row pgx.Row) (*core.Supplier, error) {
	s := &core.Supplier{}
	err := row.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.ContactPhone, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (st *SupplierStore) Create(ctx context.Context, supplier core.Supplier) (*core.Supplier, error) {
	row := st.pool.QueryRow(ctx, `
		INSERT INTO suppliers (id, name, contact_email, contact_phone)
		VALUES ($1, $2, $3, $4)
		RETURNING `+supplierColumns,
		uuid.NewString(), supplier.Name, supplier.ContactEmail, supplier.ContactPhone,
	)
	created, err := scanSupplier(row)
	if err != nil {
		if terr := translateWriteErr(err, core.EntitySupplier, "", "name"); terr != err {
			return nil, terr
		}
		return nil, fmt.Errorf("create supplier %q: %w", supplier.Name, err)
	}
	return created, nil
}

func (st *SupplierStore) Get(ctx context.Context, id string) (*core.Supplier, error) {
	row := st.pool.QueryRow(ctx,
		"SELECT "+supplierColumns+" FROM suppliers WHERE id = $1", id)
	supplier, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.NotFoundError{Entity: core.EntitySupplier, ID: id}
		}
		return nil, fmt.Errorf("get supplier %s: %w", id, err)
	}
	return supplier, nil
}

func (st *SupplierStore) GetByName(ctx context.Context, name string) (*core.Supplier, error) {
	row := st.pool.QueryRow(ctx,
		"SELECT "+supplierColumns+" FROM suppliers WHERE name = $1", name)
	supplier, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.NotFoundError{Entity: core.EntitySupplier, ID: name}
		}
		return nil, fmt.Errorf("get supplier by name %q: %w", name, err)
	}
	return supplier, nil
}

func (st *SupplierStore) List(ctx context.Context) ([]core.Supplier, error) {
	rows, err := st.pool.Query(ctx,
		"SELECT "+supplierColumns+" FROM suppliers ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []core.Supplier
	for rows.Next() {
		var s core.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.ContactPhone, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (st *SupplierStore) Update(ctx context.Context, id string, supplier core.Supplier) (*core.Supplier, error) {
	row := st.pool.QueryRow(ctx, `
		UPDATE suppliers
		SET name = $1, contact_email = $2, contact_phone = $3
		WHERE id = $4
		RETURNING `+supplierColumns,
		supplier.Name, supplier.ContactEmail, supplier.ContactPhone, id,
	)
	updated, err := scanSupplier(row)
	if err != nil {
		if terr := translateWriteErr(err, core.EntitySupplier, id, "name"); terr != err {
			return nil, terr
		}
		return nil, fmt.Errorf("update supplier %s: %w", id, err)
	}
	return updated, nil
}

func (st *SupplierStore) Delete(ctx context.Context, id string) error {
	tag, err := st.pool.Exec(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete supplier %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return core.NotFoundError{Entity: core.EntitySupplier, ID: id}
	}
	return nil
}
