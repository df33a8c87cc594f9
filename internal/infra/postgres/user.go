package postgres

import (
	"context"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/usecase/views"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

func (r *UserStore) Save(ctx context.Context, u *user.User) (*views.UserView, error) {
	const q = `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email`

	var v views.UserView
	err := r.pool.QueryRow(ctx, q, u.Name(), u.Email()).Scan(&v.ID, &v.Name, &v.Email)
	if err != nil {
		return nil, wrapPgErr("failed to insert user", err)
	}
	return &v, nil
}

func (r *UserStore) Update(ctx context.Context, u *user.User) (*views.UserView, error) {
	const q = `
		UPDATE users
		SET name = $2, email = $3
		WHERE id = $1
		RETURNING id, name, email`

	var v views.UserView
	err := r.pool.QueryRow(ctx, q, u.ID(), u.Name(), u.Email()).Scan(&v.ID, &v.Name, &v.Email)
	if err != nil {
		return nil, wrapPgErr("failed to update user", err)
	}
	return &v, nil
}

func (r *UserStore) FindByID(ctx context.Context, id int64) (*views.UserView, error) {
	const q = `SELECT id, name, email FROM users WHERE id = $1`

	var v views.UserView
	err := r.pool.QueryRow(ctx, q, id).Scan(&v.ID, &v.Name, &v.Email)
	if err != nil {
		return nil, wrapPgErr("user not found", err)
	}
	return &v, nil
}

func (r *UserStore) FindByEmail(ctx context.Context, email string) (*views.UserView, error) {
	const q = `SELECT id, name, email FROM users WHERE email = $1`

	var v views.UserView
	err := r.pool.QueryRow(ctx, q, email).Scan(&v.ID, &v.Name, &v.Email)
	if err != nil {
		return nil, wrapPgErr("user not found by email", err)
	}
	return &v, nil
}

func (r *UserStore) FindAll(ctx context.Context) ([]*views.UserView, error) {
	const q = `SELECT id, name, email FROM users ORDER BY id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, wrapPgErr("failed to list users", err)
	}
	defer rows.Close()

	result := make([]*views.UserView, 0)
	for rows.Next() {
		var v views.UserView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email); err != nil {
			return nil, wrapPgErr("failed to scan user row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate user rows", err)
	}
	return result, nil
}

func (r *UserStore) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM users WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return wrapPgErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
