//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// finishedBooking books the item for the author and advances the clock
// past the booking's end so a comment becomes possible.
func finishedBooking(t *testing.T, e *env, authorID, itemID int64) *views.BookingView {
	t.Helper()
	now := e.clock.Now()
	b := mustBooking(t, e, authorID, itemID, now.Add(time.Hour), now.Add(2*time.Hour))
	e.clock.Set(now.Add(3 * time.Hour))
	return b
}

func TestCommentAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("author with a finished booking can comment", func(t *testing.T) {
		e := newEnv(t)
		owner := mustUser(t, e, "Owner", "owner@example.com")
		author := mustUser(t, e, "Author", "author@example.com")
		itm := mustItem(t, e, owner.ID, "Drill", true)
		finishedBooking(t, e, author.ID, itm.ID)

		c, err := e.comments.Add(ctx, itm.ID, author.ID, "  works great  ")
		require.NoError(t, err)
		assert.Equal(t, "works great", c.Text)
		assert.Equal(t, itm.ID, c.Item.ID)
		assert.Equal(t, "Author", c.AuthorName)
		assert.True(t, c.Created.Equal(e.clock.Now()))
	})

	t.Run("booking status does not matter", func(t *testing.T) {
		e := newEnv(t)
		owner := mustUser(t, e, "Owner", "owner@example.com")
		author := mustUser(t, e, "Author", "author@example.com")
		itm := mustItem(t, e, owner.ID, "Drill", true)
		b := finishedBooking(t, e, author.ID, itm.ID)
		_, err := e.bookings.Decide(ctx, owner.ID, b.ID, false)
		require.NoError(t, err)

		_, err = e.comments.Add(ctx, itm.ID, author.ID, "still counts")
		assert.NoError(t, err)
	})

	t.Run("owner may not comment on own item", func(t *testing.T) {
		e := newEnv(t)
		owner := mustUser(t, e, "Owner", "owner@example.com")
		itm := mustItem(t, e, owner.ID, "Drill", true)

		_, err := e.comments.Add(ctx, itm.ID, owner.ID, "nice")
		assert.ErrorIs(t, err, errs.ErrCommentNotAllowed)
	})

	t.Run("no booking for the item", func(t *testing.T) {
		e := newEnv(t)
		owner := mustUser(t, e, "Owner", "owner@example.com")
		author := mustUser(t, e, "Author", "author@example.com")
		itm := mustItem(t, e, owner.ID, "Drill", true)

		_, err := e.comments.Add(ctx, itm.ID, author.ID, "nice")
		assert.ErrorIs(t, err, errs.ErrCommentNotAllowed)
	})

	t.Run("booking not yet ended", func(t *testing.T) {
		e := newEnv(t)
		owner := mustUser(t, e, "Owner", "owner@example.com")
		author := mustUser(t, e, "Author", "author@example.com")
		itm := mustItem(t, e, owner.ID, "Drill", true)
		mustBooking(t, e, author.ID, itm.ID, baseTime.Add(time.Hour), baseTime.Add(2*time.Hour))

		_, err := e.comments.Add(ctx, itm.ID, author.ID, "too early")
		assert.ErrorIs(t, err, errs.ErrCommentNotAllowed)
	})

	t.Run("booking ending exactly now is not finished", func(t *testing.T) {
		e := newEnv(t)
		owner := mustUser(t, e, "Owner", "owner@example.com")
		author := mustUser(t, e, "Author", "author@example.com")
		itm := mustItem(t, e, owner.ID, "Drill", true)
		end := baseTime.Add(2 * time.Hour)
		mustBooking(t, e, author.ID, itm.ID, baseTime.Add(time.Hour), end)
		e.clock.Set(end)

		_, err := e.comments.Add(ctx, itm.ID, author.ID, "on the dot")
		assert.ErrorIs(t, err, errs.ErrCommentNotAllowed)
	})

	t.Run("blank text", func(t *testing.T) {
		e := newEnv(t)
		owner := mustUser(t, e, "Owner", "owner@example.com")
		author := mustUser(t, e, "Author", "author@example.com")
		itm := mustItem(t, e, owner.ID, "Drill", true)
		finishedBooking(t, e, author.ID, itm.ID)

		_, err := e.comments.Add(ctx, itm.ID, author.ID, "   ")
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("unknown item", func(t *testing.T) {
		e := newEnv(t)
		author := mustUser(t, e, "Author", "author@example.com")

		_, err := e.comments.Add(ctx, 999, author.ID, "nice")
		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})

	t.Run("unknown author", func(t *testing.T) {
		e := newEnv(t)
		owner := mustUser(t, e, "Owner", "owner@example.com")
		itm := mustItem(t, e, owner.ID, "Drill", true)

		_, err := e.comments.Add(ctx, itm.ID, 999, "nice")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
