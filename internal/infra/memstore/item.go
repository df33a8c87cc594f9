package memstore

import (
	"context"
	"strings"

	"gearshare/internal/domain/item"
	"gearshare/internal/usecase/views"
)

type ItemStore struct {
	root *Store
}

func NewItemStore(root *Store) *ItemStore {
	return &ItemStore{root: root}
}

func (r *ItemStore) Save(_ context.Context, i *item.Item) (*views.ItemView, error) {
	s := r.root
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[i.OwnerID()]; !ok {
		return nil, notFound("item owner not found")
	}

	rec := itemRecord{
		id:          s.nextSequence(),
		name:        i.Name(),
		description: i.Description(),
		available:   i.Available(),
		ownerID:     i.OwnerID(),
		requestID:   i.RequestID(),
	}
	s.items[rec.id] = rec
	s.itemOrder = append(s.itemOrder, rec.id)

	v, _ := s.itemView(rec.id)
	return &v, nil
}

func (r *ItemStore) Update(_ context.Context, i *item.Item) (*views.ItemView, error) {
	s := r.root
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[i.ID()]
	if !ok {
		return nil, notFound("item not found")
	}

	rec.name = i.Name()
	rec.description = i.Description()
	rec.available = i.Available()
	s.items[rec.id] = rec

	v, _ := s.itemView(rec.id)
	return &v, nil
}

func (r *ItemStore) FindByID(_ context.Context, id int64) (*views.ItemView, error) {
	s := r.root
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.itemView(id)
	if !ok {
		return nil, notFound("item not found")
	}
	return &v, nil
}

func (r *ItemStore) FindByOwnerID(_ context.Context, ownerID int64) ([]*views.ItemView, error) {
	s := r.root
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*views.ItemView, 0)
	for _, id := range s.itemOrder {
		rec, ok := s.items[id]
		if !ok || rec.ownerID != ownerID {
			continue
		}
		if v, ok := s.itemView(id); ok {
			result = append(result, &v)
		}
	}
	return result, nil
}

func (r *ItemStore) FindByRequestID(_ context.Context, requestID int64) ([]*views.ItemView, error) {
	s := r.root
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*views.ItemView, 0)
	for _, id := range s.itemOrder {
		rec, ok := s.items[id]
		if !ok || rec.requestID == nil || *rec.requestID != requestID {
			continue
		}
		if v, ok := s.itemView(id); ok {
			result = append(result, &v)
		}
	}
	return result, nil
}

// Search matches case-insensitively on name and description; only
// available items are returned.
func (r *ItemStore) Search(_ context.Context, text string) ([]*views.ItemView, error) {
	s := r.root
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(text)
	result := make([]*views.ItemView, 0)
	for _, id := range s.itemOrder {
		rec, ok := s.items[id]
		if !ok || !rec.available {
			continue
		}
		if !strings.Contains(strings.ToLower(rec.name), needle) &&
			!strings.Contains(strings.ToLower(rec.description), needle) {
			continue
		}
		if v, ok := s.itemView(id); ok {
			result = append(result, &v)
		}
	}
	return result, nil
}
