package usecase

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/comment"
	"gearshare/internal/domain/item"
	"gearshare/internal/domain/request"
	"gearshare/internal/domain/user"
	"gearshare/internal/usecase/views"
)

// Store interfaces consumed by the usecases. Implementations report
// failures as infra.RepositoryError values so callers can branch on the
// kind (not found, duplicate key, ...) without knowing the backend.
//
// List methods return rows in insertion order.

type UserStore interface {
	Save(ctx context.Context, u *user.User) (*views.UserView, error)
	Update(ctx context.Context, u *user.User) (*views.UserView, error)
	FindByID(ctx context.Context, id int64) (*views.UserView, error)
	FindByEmail(ctx context.Context, email string) (*views.UserView, error)
	FindAll(ctx context.Context) ([]*views.UserView, error)
	Delete(ctx context.Context, id int64) error
}

type ItemStore interface {
	Save(ctx context.Context, i *item.Item) (*views.ItemView, error)
	Update(ctx context.Context, i *item.Item) (*views.ItemView, error)
	FindByID(ctx context.Context, id int64) (*views.ItemView, error)
	FindByOwnerID(ctx context.Context, ownerID int64) ([]*views.ItemView, error)
	FindByRequestID(ctx context.Context, requestID int64) ([]*views.ItemView, error)
	Search(ctx context.Context, text string) ([]*views.ItemView, error)
}

type BookingStore interface {
	Save(ctx context.Context, b *booking.Booking) (*views.BookingView, error)
	UpdateStatus(ctx context.Context, id int64, status booking.Status) (*views.BookingView, error)
	FindByID(ctx context.Context, id int64) (*views.BookingView, error)
	FindByBookerID(ctx context.Context, bookerID int64) ([]*views.BookingView, error)
	FindByItemOwnerID(ctx context.Context, ownerID int64) ([]*views.BookingView, error)
	// FindByItemAndBooker returns an arbitrary single booking for the
	// pair, or a not-found error when none exists.
	FindByItemAndBooker(ctx context.Context, itemID, bookerID int64) (*views.BookingView, error)
}

type CommentStore interface {
	Save(ctx context.Context, c *comment.Comment) (*views.CommentView, error)
}

type RequestStore interface {
	Save(ctx context.Context, r *request.ItemRequest) (*views.RequestView, error)
	FindByID(ctx context.Context, id int64) (*views.RequestView, error)
	FindByRequestorID(ctx context.Context, requestorID int64) ([]*views.RequestView, error)
	// FindAll returns every request, newest first.
	FindAll(ctx context.Context) ([]*views.RequestView, error)
}
