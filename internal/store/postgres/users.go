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

// UserStore persists user credentials in the users table.
type UserStore struct {
	pool *pgxpool.Pool
}

var _ core.UserStore = (*UserStore)(nil)

const userColumns = "id, username, password_hash, created_at"

func scanUser(row pgx.Row) (*core.User, error) {
	u := &core.User{}
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (st *UserStore) Create(ctx context.Context, user core.User) (*core.User, error) {
	row := st.pool.QueryRow(ctx, `
		INSERT INTO users (id, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		uuid.NewString(), user.Username, user.PasswordHash,
	)
	created, err := scanUser(row)
	if err != nil {
		if terr := translateWriteErr(err, core.EntityUser, "", "username"); terr != err {
			return nil, terr
		}
		return nil, fmt.Errorf("create user %q: %w", user.Username, err)
	}
	return created, nil
}

func (st *UserStore) Get(ctx context.Context, id string) (*core.User, error) {
	row := st.pool.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.NotFoundError{Entity: core.EntityUser, ID: id}
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return user, nil
}

func (st *UserStore) GetByUsername(ctx context.Context, username string) (*core.User, error) {
	row := st.pool.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.NotFoundError{Entity: core.EntityUser, ID: username}
		}
		return nil, fmt.Errorf("get user by username %q: %w", username, err)
	}
	return user, nil
}
