package memstore

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/usecase/views"
)

type BookingStore struct {
	root *Store
}

func NewBookingStore(root *Store) *BookingStore {
	return &BookingStore{root: root}
}

func (r *BookingStore) Save(_ context.Context, b *booking.Booking) (*views.BookingView, error) {
	s := r.root
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[b.ItemID()]; !ok {
		return nil, notFound("booked item not found")
	}
	if _, ok := s.users[b.BookerID()]; !ok {
		return nil, notFound("booker not found")
	}

	rec := bookingRecord{
		id:       s.nextSequence(),
		itemID:   b.ItemID(),
		bookerID: b.BookerID(),
		start:    b.Period().Start(),
		end:      b.Period().End(),
		status:   b.Status(),
	}
	s.bookings[rec.id] = rec
	s.bookingOrder = append(s.bookingOrder, rec.id)

	v, _ := s.bookingView(rec)
	return &v, nil
}

func (r *BookingStore) UpdateStatus(_ context.Context, id int64, status booking.Status) (*views.BookingView, error) {
	s := r.root
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	rec.status = status
	s.bookings[id] = rec

	v, _ := s.bookingView(rec)
	return &v, nil
}

func (r *BookingStore) FindByID(_ context.Context, id int64) (*views.BookingView, error) {
	s := r.root
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	v, ok := s.bookingView(rec)
	if !ok {
		return nil, notFound("booking references missing rows")
	}
	return &v, nil
}

func (r *BookingStore) FindByBookerID(_ context.Context, bookerID int64) ([]*views.BookingView, error) {
	s := r.root
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*views.BookingView, 0)
	for _, id := range s.bookingOrder {
		rec, ok := s.bookings[id]
		if !ok || rec.bookerID != bookerID {
			continue
		}
		if v, ok := s.bookingView(rec); ok {
			result = append(result, &v)
		}
	}
	return result, nil
}

// FindByItemOwnerID resolves via the items map: every booking whose
// item belongs to the owner, in insertion order.
func (r *BookingStore) FindByItemOwnerID(_ context.Context, ownerID int64) ([]*views.BookingView, error) {
	s := r.root
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*views.BookingView, 0)
	for _, id := range s.bookingOrder {
		rec, ok := s.bookings[id]
		if !ok {
			continue
		}
		itm, ok := s.items[rec.itemID]
		if !ok || itm.ownerID != ownerID {
			continue
		}
		if v, ok := s.bookingView(rec); ok {
			result = append(result, &v)
		}
	}
	return result, nil
}

func (r *BookingStore) FindByItemAndBooker(_ context.Context, itemID, bookerID int64) (*views.BookingView, error) {
	s := r.root
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.bookingOrder {
		rec, ok := s.bookings[id]
		if !ok || rec.itemID != itemID || rec.bookerID != bookerID {
			continue
		}
		if v, ok := s.bookingView(rec); ok {
			return &v, nil
		}
	}
	return nil, notFound("no booking for item and booker")
}
