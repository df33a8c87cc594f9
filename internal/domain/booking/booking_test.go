//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gearshare/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid period", func(t *testing.T) {
		p, err := booking.NewPeriod(now.Add(time.Hour), now.Add(2*time.Hour), now)
		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Hour), p.Start())
		assert.Equal(t, now.Add(2*time.Hour), p.End())
		assert.Equal(t, time.Hour, p.Duration())
	})

	t.Run("period starting exactly now is allowed", func(t *testing.T) {
		_, err := booking.NewPeriod(now, now.Add(time.Hour), now)
		require.NoError(t, err)
	})

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "end equals start",
			start: now.Add(time.Hour),
			end:   now.Add(time.Hour),
			errIs: booking.ErrInvalidPeriod,
		},
		{
			name:  "end before start",
			start: now.Add(2 * time.Hour),
			end:   now.Add(time.Hour),
			errIs: booking.ErrInvalidPeriod,
		},
		{
			name:  "start in the past",
			start: now.Add(-time.Minute),
			end:   now.Add(time.Hour),
			errIs: booking.ErrPeriodInPast,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewPeriod(tc.start, tc.end, now)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestBookingDecide(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	period, err := booking.NewPeriod(now.Add(time.Hour), now.Add(2*time.Hour), now)
	require.NoError(t, err)

	t.Run("new booking starts waiting", func(t *testing.T) {
		b := booking.NewBooking(1, 2, period)
		assert.Equal(t, booking.StatusWaiting, b.Status())
	})

	t.Run("approve and reject", func(t *testing.T) {
		b := booking.NewBooking(1, 2, period)

		b.Decide(true)
		assert.Equal(t, booking.StatusApproved, b.Status())

		b.Decide(false)
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("later verdict overwrites earlier one", func(t *testing.T) {
		b := booking.ReconstructBooking(1, 1, 2, period, booking.StatusApproved)

		b.Decide(false)
		assert.Equal(t, booking.StatusRejected, b.Status())

		b.Decide(true)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})
}

func TestParseStateFilter(t *testing.T) {
	valid := []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			f, err := booking.ParseStateFilter(s)
			require.NoError(t, err)
			assert.Equal(t, booking.StateFilter(s), f)
		})
	}

	invalid := []string{"", "all", "APPROVED", "CANCELED", "UNKNOWN"}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			_, err := booking.ParseStateFilter(s)
			assert.ErrorIs(t, err, booking.ErrUnknownStateFilter)
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []booking.Status{
		booking.StatusWaiting, booking.StatusApproved,
		booking.StatusRejected, booking.StatusCanceled,
	} {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, booking.Status("PENDING").IsValid())
}

func TestPeriodQueries(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := booking.ReconstructPeriod(now.Add(-2*time.Hour), now.Add(-time.Hour))

	assert.True(t, p.EndedBefore(now))
	assert.False(t, p.StartsAfter(now))
	assert.False(t, p.EndedBefore(now.Add(-time.Hour)), "end equal to now is not ended")
}
