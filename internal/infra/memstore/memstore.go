// Package memstore is the in-process store backend: mutex-guarded maps
// with monotonically increasing ids. It implements the same store
// interfaces as the Postgres backend and is selected through
// STORAGE_BACKEND=memory; tests use it to exercise usecases against a
// real store without a database.
package memstore

import (
	"sync"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/usecase/views"
)

type userRecord struct {
	id    int64
	name  string
	email string
}

type itemRecord struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64
}

type bookingRecord struct {
	id       int64
	itemID   int64
	bookerID int64
	start    time.Time
	end      time.Time
	status   booking.Status
}

type commentRecord struct {
	id       int64
	itemID   int64
	authorID int64
	text     string
	created  time.Time
}

type requestRecord struct {
	id          int64
	description string
	requestorID int64
	created     time.Time
}

// Store holds every entity map under one lock. Iteration order slices
// preserve insertion order, which listing methods rely on.
type Store struct {
	mu sync.RWMutex

	nextID int64

	users    map[int64]userRecord
	items    map[int64]itemRecord
	bookings map[int64]bookingRecord
	comments map[int64]commentRecord
	requests map[int64]requestRecord

	userOrder    []int64
	itemOrder    []int64
	bookingOrder []int64
	requestOrder []int64
}

func New() *Store {
	return &Store{
		users:    make(map[int64]userRecord),
		items:    make(map[int64]itemRecord),
		bookings: make(map[int64]bookingRecord),
		comments: make(map[int64]commentRecord),
		requests: make(map[int64]requestRecord),
	}
}

func (s *Store) nextSequence() int64 {
	s.nextID++
	return s.nextID
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// view assembly; callers hold at least the read lock

func (s *Store) userView(id int64) (views.UserView, bool) {
	rec, ok := s.users[id]
	if !ok {
		return views.UserView{}, false
	}
	return views.UserView{ID: rec.id, Name: rec.name, Email: rec.email}, true
}

func (s *Store) itemView(id int64) (views.ItemView, bool) {
	rec, ok := s.items[id]
	if !ok {
		return views.ItemView{}, false
	}
	owner, ok := s.userView(rec.ownerID)
	if !ok {
		return views.ItemView{}, false
	}
	return views.ItemView{
		ID:          rec.id,
		Name:        rec.name,
		Description: rec.description,
		Available:   rec.available,
		Owner:       owner,
		RequestID:   rec.requestID,
	}, true
}

func (s *Store) bookingView(rec bookingRecord) (views.BookingView, bool) {
	itm, ok := s.itemView(rec.itemID)
	if !ok {
		return views.BookingView{}, false
	}
	booker, ok := s.userView(rec.bookerID)
	if !ok {
		return views.BookingView{}, false
	}
	return views.BookingView{
		ID:     rec.id,
		Start:  rec.start,
		End:    rec.end,
		Status: rec.status,
		Item:   itm,
		Booker: booker,
	}, true
}

func (s *Store) requestView(rec requestRecord) (views.RequestView, bool) {
	requestor, ok := s.userView(rec.requestorID)
	if !ok {
		return views.RequestView{}, false
	}
	return views.RequestView{
		ID:          rec.id,
		Description: rec.description,
		Requestor:   requestor,
		Created:     rec.created,
	}, true
}
