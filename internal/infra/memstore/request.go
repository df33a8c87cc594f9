package memstore

import (
	"context"

	"gearshare/internal/domain/request"
	"gearshare/internal/usecase/views"
)

type RequestStore struct {
	root *Store
}

func NewRequestStore(root *Store) *RequestStore {
	return &RequestStore{root: root}
}

func (r *RequestStore) Save(_ context.Context, req *request.ItemRequest) (*views.RequestView, error) {
	s := r.root
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[req.RequestorID()]; !ok {
		return nil, notFound("requestor not found")
	}

	rec := requestRecord{
		id:          s.nextSequence(),
		description: req.Description(),
		requestorID: req.RequestorID(),
		created:     req.Created(),
	}
	s.requests[rec.id] = rec
	s.requestOrder = append(s.requestOrder, rec.id)

	v, _ := s.requestView(rec)
	return &v, nil
}

func (r *RequestStore) FindByID(_ context.Context, id int64) (*views.RequestView, error) {
	s := r.root
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.requests[id]
	if !ok {
		return nil, notFound("request not found")
	}
	v, ok := s.requestView(rec)
	if !ok {
		return nil, notFound("request references missing requestor")
	}
	return &v, nil
}

func (r *RequestStore) FindByRequestorID(_ context.Context, requestorID int64) ([]*views.RequestView, error) {
	s := r.root
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*views.RequestView, 0)
	for _, id := range s.requestOrder {
		rec, ok := s.requests[id]
		if !ok || rec.requestorID != requestorID {
			continue
		}
		if v, ok := s.requestView(rec); ok {
			result = append(result, &v)
		}
	}
	return result, nil
}

func (r *RequestStore) FindAll(_ context.Context) ([]*views.RequestView, error) {
	s := r.root
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*views.RequestView, 0, len(s.requestOrder))
	for i := len(s.requestOrder) - 1; i >= 0; i-- {
		rec, ok := s.requests[s.requestOrder[i]]
		if !ok {
			continue
		}
		if v, ok := s.requestView(rec); ok {
			result = append(result, &v)
		}
	}
	return result, nil
}
