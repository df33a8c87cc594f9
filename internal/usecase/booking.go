package usecase

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/views"
)

type CreateBookingParams struct {
	BookerID int64
	ItemID   int64
	Start    time.Time
	End      time.Time
}

type BookingUseCase interface {
	Create(ctx context.Context, params CreateBookingParams) (*views.BookingView, error)
	Decide(ctx context.Context, actorID, bookingID int64, approved bool) (*views.BookingView, error)
	GetByID(ctx context.Context, actorID, bookingID int64) (*views.BookingView, error)
	ListByBooker(ctx context.Context, bookerID int64, state string) ([]*views.BookingView, error)
	ListByOwner(ctx context.Context, ownerID int64, state string) ([]*views.BookingView, error)
}

type bookingUseCaseImpl struct {
	bookings BookingStore
	items    ItemStore
	users    UserStore
	clock    clock.Clock
}

func NewBookingUseCase(bookings BookingStore, items ItemStore, users UserStore, clk clock.Clock) BookingUseCase {
	return &bookingUseCaseImpl{
		bookings: bookings,
		items:    items,
		users:    users,
		clock:    clk,
	}
}

// Create persists a new WAITING booking. No overlap check is made
// against existing bookings for the same item and time range; the owner
// arbitrates conflicts through Decide.
func (u *bookingUseCaseImpl) Create(ctx context.Context, params CreateBookingParams) (*views.BookingView, error) {
	booker, err := u.users.FindByID(ctx, params.BookerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find booker")
	}

	itm, err := u.items.FindByID(ctx, params.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}
	if !itm.Available {
		return nil, errs.ErrItemNotAvailable
	}

	period, err := booking.NewPeriod(params.Start, params.End, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	view, err := u.bookings.Save(ctx, booking.NewBooking(itm.ID, booker.ID, period))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Decide sets the status to APPROVED or REJECTED. Only the booked
// item's owner may decide; the booker never can. An already decided
// booking can be decided again and the status is overwritten.
func (u *bookingUseCaseImpl) Decide(ctx context.Context, actorID, bookingID int64, approved bool) (*views.BookingView, error) {
	view, err := u.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	if view.Item.Owner.ID != actorID {
		return nil, errs.ErrBookingAccess
	}

	ent := booking.ReconstructBooking(
		view.ID, view.Item.ID, view.Booker.ID,
		booking.ReconstructPeriod(view.Start, view.End),
		view.Status,
	)
	ent.Decide(approved)

	updated, err := u.bookings.UpdateStatus(ctx, ent.ID(), ent.Status())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return updated, nil
}

func (u *bookingUseCaseImpl) GetByID(ctx context.Context, actorID, bookingID int64) (*views.BookingView, error) {
	view, err := u.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	if view.Item.Owner.ID != actorID && view.Booker.ID != actorID {
		return nil, errs.ErrBookingAccess
	}
	return view, nil
}

func (u *bookingUseCaseImpl) ListByBooker(ctx context.Context, bookerID int64, state string) ([]*views.BookingView, error) {
	filter, err := booking.ParseStateFilter(state)
	if err != nil {
		return nil, errs.ErrInvalidStateParam
	}

	list, err := u.bookings.FindByBookerID(ctx, bookerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find bookings by booker")
	}
	return u.applyFilter(list, filter), nil
}

func (u *bookingUseCaseImpl) ListByOwner(ctx context.Context, ownerID int64, state string) ([]*views.BookingView, error) {
	filter, err := booking.ParseStateFilter(state)
	if err != nil {
		return nil, errs.ErrInvalidStateParam
	}

	list, err := u.bookings.FindByItemOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find bookings by item owner")
	}
	return u.applyFilter(list, filter), nil
}

// applyFilter classifies fetched bookings in place of a WHERE clause,
// preserving store order. CURRENT matches on approval status, not on
// temporal containment of now.
func (u *bookingUseCaseImpl) applyFilter(list []*views.BookingView, filter booking.StateFilter) []*views.BookingView {
	if filter == booking.FilterAll {
		return list
	}

	now := u.clock.Now()
	result := make([]*views.BookingView, 0, len(list))
	for _, b := range list {
		var keep bool
		switch filter {
		case booking.FilterCurrent:
			keep = b.Status == booking.StatusApproved
		case booking.FilterPast:
			keep = b.End.Before(now)
		case booking.FilterFuture:
			keep = b.Start.After(now)
		case booking.FilterWaiting:
			keep = b.Status == booking.StatusWaiting
		case booking.FilterRejected:
			keep = b.Status == booking.StatusRejected
		}
		if keep {
			result = append(result, b)
		}
	}
	return result
}
