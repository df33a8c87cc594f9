//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"gearshare/internal/infra/memstore"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/usecase"
	"gearshare/internal/usecase/views"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// env wires every usecase against a shared in-memory store and a
// controllable clock.
type env struct {
	clock    *clock.MockClock
	users    usecase.UserUseCase
	items    usecase.ItemUseCase
	bookings usecase.BookingUseCase
	comments usecase.CommentUseCase
	requests usecase.RequestUseCase
}

func newEnv(_ *testing.T) *env {
	root := memstore.New()
	userStore := memstore.NewUserStore(root)
	itemStore := memstore.NewItemStore(root)
	bookingStore := memstore.NewBookingStore(root)
	commentStore := memstore.NewCommentStore(root)
	requestStore := memstore.NewRequestStore(root)

	clk := clock.NewMockClock(baseTime)

	return &env{
		clock:    clk,
		users:    usecase.NewUserUseCase(userStore),
		items:    usecase.NewItemUseCase(itemStore, userStore, requestStore),
		bookings: usecase.NewBookingUseCase(bookingStore, itemStore, userStore, clk),
		comments: usecase.NewCommentUseCase(commentStore, bookingStore, itemStore, userStore, clk),
		requests: usecase.NewRequestUseCase(requestStore, itemStore, userStore, clk),
	}
}

func mustUser(t *testing.T, e *env, name, email string) *views.UserView {
	t.Helper()
	u, err := e.users.Create(context.Background(), name, email)
	require.NoError(t, err)
	return u
}

func mustItem(t *testing.T, e *env, ownerID int64, name string, available bool) *views.ItemView {
	t.Helper()
	i, err := e.items.Create(context.Background(), ownerID, usecase.CreateItemParams{
		Name:        name,
		Description: name + " description",
		Available:   available,
	})
	require.NoError(t, err)
	return i
}

func mustBooking(t *testing.T, e *env, bookerID, itemID int64, start, end time.Time) *views.BookingView {
	t.Helper()
	b, err := e.bookings.Create(context.Background(), usecase.CreateBookingParams{
		BookerID: bookerID,
		ItemID:   itemID,
		Start:    start,
		End:      end,
	})
	require.NoError(t, err)
	return b
}
