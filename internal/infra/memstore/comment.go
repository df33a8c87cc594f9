package memstore

import (
	"context"

	"gearshare/internal/domain/comment"
	"gearshare/internal/usecase/views"
)

type CommentStore struct {
	root *Store
}

func NewCommentStore(root *Store) *CommentStore {
	return &CommentStore{root: root}
}

func (r *CommentStore) Save(_ context.Context, c *comment.Comment) (*views.CommentView, error) {
	s := r.root
	s.mu.Lock()
	defer s.mu.Unlock()

	itm, ok := s.itemView(c.ItemID())
	if !ok {
		return nil, notFound("commented item not found")
	}
	author, ok := s.users[c.AuthorID()]
	if !ok {
		return nil, notFound("comment author not found")
	}

	rec := commentRecord{
		id:       s.nextSequence(),
		itemID:   c.ItemID(),
		authorID: c.AuthorID(),
		text:     c.Text().String(),
		created:  c.Created(),
	}
	s.comments[rec.id] = rec

	return &views.CommentView{
		ID:         rec.id,
		Text:       rec.text,
		Item:       itm,
		AuthorName: author.name,
		Created:    rec.created,
	}, nil
}
