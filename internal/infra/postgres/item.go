package postgres

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/usecase/views"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const itemViewColumns = `
	i.id, i.name, i.description, i.available, i.request_id,
	o.id, o.name, o.email`

type ItemStore struct {
	pool *pgxpool.Pool
}

func NewItemStore(pool *pgxpool.Pool) *ItemStore {
	return &ItemStore{pool: pool}
}

func scanItemView(row pgx.Row) (*views.ItemView, error) {
	var v views.ItemView
	err := row.Scan(
		&v.ID, &v.Name, &v.Description, &v.Available, &v.RequestID,
		&v.Owner.ID, &v.Owner.Name, &v.Owner.Email,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectItemViews(rows pgx.Rows) ([]*views.ItemView, error) {
	defer rows.Close()

	result := make([]*views.ItemView, 0)
	for rows.Next() {
		v, err := scanItemView(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

func (r *ItemStore) Save(ctx context.Context, i *item.Item) (*views.ItemView, error) {
	const q = `
		WITH inserted AS (
			INSERT INTO items (name, description, available, owner_id, request_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, name, description, available, owner_id, request_id
		)
		SELECT i.id, i.name, i.description, i.available, i.request_id,
		       o.id, o.name, o.email
		FROM inserted i
		JOIN users o ON o.id = i.owner_id`

	v, err := scanItemView(r.pool.QueryRow(ctx, q,
		i.Name(), i.Description(), i.Available(), i.OwnerID(), i.RequestID()))
	if err != nil {
		return nil, wrapPgErr("failed to insert item", err)
	}
	return v, nil
}

func (r *ItemStore) Update(ctx context.Context, i *item.Item) (*views.ItemView, error) {
	const q = `
		WITH updated AS (
			UPDATE items
			SET name = $2, description = $3, available = $4
			WHERE id = $1
			RETURNING id, name, description, available, owner_id, request_id
		)
		SELECT i.id, i.name, i.description, i.available, i.request_id,
		       o.id, o.name, o.email
		FROM updated i
		JOIN users o ON o.id = i.owner_id`

	v, err := scanItemView(r.pool.QueryRow(ctx, q,
		i.ID(), i.Name(), i.Description(), i.Available()))
	if err != nil {
		return nil, wrapPgErr("failed to update item", err)
	}
	return v, nil
}

func (r *ItemStore) FindByID(ctx context.Context, id int64) (*views.ItemView, error) {
	q := `
		SELECT ` + itemViewColumns + `
		FROM items i
		JOIN users o ON o.id = i.owner_id
		WHERE i.id = $1`

	v, err := scanItemView(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, wrapPgErr("item not found", err)
	}
	return v, nil
}

func (r *ItemStore) FindByOwnerID(ctx context.Context, ownerID int64) ([]*views.ItemView, error) {
	q := `
		SELECT ` + itemViewColumns + `
		FROM items i
		JOIN users o ON o.id = i.owner_id
		WHERE i.owner_id = $1
		ORDER BY i.id`

	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, wrapPgErr("failed to list items by owner", err)
	}
	result, err := collectItemViews(rows)
	if err != nil {
		return nil, wrapPgErr("failed to scan item rows", err)
	}
	return result, nil
}

func (r *ItemStore) FindByRequestID(ctx context.Context, requestID int64) ([]*views.ItemView, error) {
	q := `
		SELECT ` + itemViewColumns + `
		FROM items i
		JOIN users o ON o.id = i.owner_id
		WHERE i.request_id = $1
		ORDER BY i.id`

	rows, err := r.pool.Query(ctx, q, requestID)
	if err != nil {
		return nil, wrapPgErr("failed to list items by request", err)
	}
	result, err := collectItemViews(rows)
	if err != nil {
		return nil, wrapPgErr("failed to scan item rows", err)
	}
	return result, nil
}

// Search matches available items whose name or description contains the
// text, case-insensitively. Blank text is rejected upstream.
func (r *ItemStore) Search(ctx context.Context, text string) ([]*views.ItemView, error) {
	q := `
		SELECT ` + itemViewColumns + `
		FROM items i
		JOIN users o ON o.id = i.owner_id
		WHERE i.available
		  AND (i.name ILIKE '%' || $1 || '%' OR i.description ILIKE '%' || $1 || '%')
		ORDER BY i.id`

	rows, err := r.pool.Query(ctx, q, text)
	if err != nil {
		return nil, wrapPgErr("failed to search items", err)
	}
	result, err := collectItemViews(rows)
	if err != nil {
		return nil, wrapPgErr("failed to scan item rows", err)
	}
	return result, nil
}
