package postgres

import (
	"context"

	"gearshare/internal/domain/comment"
	"gearshare/internal/usecase/views"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentStore struct {
	pool *pgxpool.Pool
}

func NewCommentStore(pool *pgxpool.Pool) *CommentStore {
	return &CommentStore{pool: pool}
}

func (r *CommentStore) Save(ctx context.Context, c *comment.Comment) (*views.CommentView, error) {
	const q = `
		WITH inserted AS (
			INSERT INTO comments (item_id, author_id, text, created)
			VALUES ($1, $2, $3, $4)
			RETURNING id, item_id, author_id, text, created
		)
		SELECT c.id, c.text, c.created,
		       a.name,
		       i.id, i.name, i.description, i.available, i.request_id,
		       o.id, o.name, o.email
		FROM inserted c
		JOIN users a ON a.id = c.author_id
		JOIN items i ON i.id = c.item_id
		JOIN users o ON o.id = i.owner_id`

	var v views.CommentView
	err := r.pool.QueryRow(ctx, q,
		c.ItemID(), c.AuthorID(), c.Text().String(), c.Created(),
	).Scan(
		&v.ID, &v.Text, &v.Created,
		&v.AuthorName,
		&v.Item.ID, &v.Item.Name, &v.Item.Description, &v.Item.Available, &v.Item.RequestID,
		&v.Item.Owner.ID, &v.Item.Owner.Name, &v.Item.Owner.Email,
	)
	if err != nil {
		return nil, wrapPgErr("failed to insert comment", err)
	}
	return &v, nil
}
