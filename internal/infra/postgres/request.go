package postgres

import (
	"context"

	"gearshare/internal/domain/request"
	"gearshare/internal/usecase/views"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const requestViewSelect = `
	SELECT r.id, r.description, r.created,
	       u.id, u.name, u.email
	FROM requests r
	JOIN users u ON u.id = r.requestor_id`

type RequestStore struct {
	pool *pgxpool.Pool
}

func NewRequestStore(pool *pgxpool.Pool) *RequestStore {
	return &RequestStore{pool: pool}
}

func scanRequestView(row pgx.Row) (*views.RequestView, error) {
	var v views.RequestView
	err := row.Scan(
		&v.ID, &v.Description, &v.Created,
		&v.Requestor.ID, &v.Requestor.Name, &v.Requestor.Email,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectRequestViews(rows pgx.Rows) ([]*views.RequestView, error) {
	defer rows.Close()

	result := make([]*views.RequestView, 0)
	for rows.Next() {
		v, err := scanRequestView(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

func (r *RequestStore) Save(ctx context.Context, req *request.ItemRequest) (*views.RequestView, error) {
	const q = `
		WITH inserted AS (
			INSERT INTO requests (description, requestor_id, created)
			VALUES ($1, $2, $3)
			RETURNING id, description, requestor_id, created
		)
		SELECT r.id, r.description, r.created,
		       u.id, u.name, u.email
		FROM inserted r
		JOIN users u ON u.id = r.requestor_id`

	v, err := scanRequestView(r.pool.QueryRow(ctx, q,
		req.Description(), req.RequestorID(), req.Created()))
	if err != nil {
		return nil, wrapPgErr("failed to insert request", err)
	}
	return v, nil
}

func (r *RequestStore) FindByID(ctx context.Context, id int64) (*views.RequestView, error) {
	q := requestViewSelect + `
	WHERE r.id = $1`

	v, err := scanRequestView(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, wrapPgErr("request not found", err)
	}
	return v, nil
}

func (r *RequestStore) FindByRequestorID(ctx context.Context, requestorID int64) ([]*views.RequestView, error) {
	q := requestViewSelect + `
	WHERE r.requestor_id = $1
	ORDER BY r.id`

	rows, err := r.pool.Query(ctx, q, requestorID)
	if err != nil {
		return nil, wrapPgErr("failed to list requests by requestor", err)
	}
	result, err := collectRequestViews(rows)
	if err != nil {
		return nil, wrapPgErr("failed to scan request rows", err)
	}
	return result, nil
}

func (r *RequestStore) FindAll(ctx context.Context) ([]*views.RequestView, error) {
	q := requestViewSelect + `
	ORDER BY r.id DESC`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, wrapPgErr("failed to list requests", err)
	}
	result, err := collectRequestViews(rows)
	if err != nil {
		return nil, wrapPgErr("failed to scan request rows", err)
	}
	return result, nil
}
