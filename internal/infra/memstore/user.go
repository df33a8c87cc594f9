package memstore

import (
	"context"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/usecase/views"
)

type UserStore struct {
	root *Store
}

func NewUserStore(root *Store) *UserStore {
	return &UserStore{root: root}
}

func (r *UserStore) Save(_ context.Context, u *user.User) (*views.UserView, error) {
	s := r.root
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.users {
		if rec.email == u.Email() {
			return nil, infra.WrapRepoErr("email already exists", nil, infra.KindDuplicateKey)
		}
	}

	rec := userRecord{
		id:    s.nextSequence(),
		name:  u.Name(),
		email: u.Email(),
	}
	s.users[rec.id] = rec
	s.userOrder = append(s.userOrder, rec.id)

	v, _ := s.userView(rec.id)
	return &v, nil
}

func (r *UserStore) Update(_ context.Context, u *user.User) (*views.UserView, error) {
	s := r.root
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[u.ID()]
	if !ok {
		return nil, notFound("user not found")
	}
	for _, other := range s.users {
		if other.id != u.ID() && other.email == u.Email() {
			return nil, infra.WrapRepoErr("email already exists", nil, infra.KindDuplicateKey)
		}
	}

	rec.name = u.Name()
	rec.email = u.Email()
	s.users[rec.id] = rec

	v, _ := s.userView(rec.id)
	return &v, nil
}

func (r *UserStore) FindByID(_ context.Context, id int64) (*views.UserView, error) {
	s := r.root
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.userView(id)
	if !ok {
		return nil, notFound("user not found")
	}
	return &v, nil
}

func (r *UserStore) FindByEmail(_ context.Context, email string) (*views.UserView, error) {
	s := r.root
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if rec, ok := s.users[id]; ok && rec.email == email {
			v, _ := s.userView(id)
			return &v, nil
		}
	}
	return nil, notFound("user not found")
}

func (r *UserStore) FindAll(_ context.Context) ([]*views.UserView, error) {
	s := r.root
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*views.UserView, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		if v, ok := s.userView(id); ok {
			result = append(result, &v)
		}
	}
	return result, nil
}

func (r *UserStore) Delete(_ context.Context, id int64) error {
	s := r.root
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return notFound("user not found")
	}
	delete(s.users, id)
	for i, uid := range s.userOrder {
		if uid == id {
			s.userOrder = append(s.userOrder[:i], s.userOrder[i+1:]...)
			break
		}
	}
	return nil
}
