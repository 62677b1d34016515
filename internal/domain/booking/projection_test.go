//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func at(start, end time.Duration) *booking.Booking {
	return booking.ReconstructBooking(uuid.New(), uuid.New(), uuid.New(),
		booking.ReconstructTimeSlot(baseTime.Add(start), baseTime.Add(end)), booking.StatusApproved, 1, baseTime, baseTime)
}

func TestLastNext(t *testing.T) {
	now := baseTime
	b1 := at(-48*time.Hour, -47*time.Hour)
	b2 := at(-24*time.Hour, -23*time.Hour)
	b3 := at(24*time.Hour, 25*time.Hour)
	b4 := at(48*time.Hour, 49*time.Hour)

	t.Run("next is first future start and last is its predecessor", func(t *testing.T) {
		last, next := booking.LastNext([]*booking.Booking{b1, b2, b3, b4}, now)
		assert.Same(t, b2, last)
		assert.Same(t, b3, next)
	})

	t.Run("first booking is next", func(t *testing.T) {
		last, next := booking.LastNext([]*booking.Booking{b3, b4}, now)
		assert.Nil(t, last)
		assert.Same(t, b3, next)
	})

	t.Run("all in the past leaves both absent", func(t *testing.T) {
		last, next := booking.LastNext([]*booking.Booking{b1, b2}, now)
		assert.Nil(t, last)
		assert.Nil(t, next)
	})

	t.Run("no bookings", func(t *testing.T) {
		last, next := booking.LastNext(nil, now)
		assert.Nil(t, last)
		assert.Nil(t, next)
	})

	t.Run("start equal to now is not next", func(t *testing.T) {
		startsNow := at(0, time.Hour)
		last, next := booking.LastNext([]*booking.Booking{b1, startsNow, b3}, now)
		assert.Same(t, startsNow, last)
		assert.Same(t, b3, next)
	})
}

func TestCheckCommentEligibility(t *testing.T) {
	now := baseTime

	tests := []struct {
		name     string
		bookings []*booking.Booking
		errIs    error
	}{
		{name: "no bookings", errIs: booking.ErrNoBookings},
		{name: "all ended", bookings: []*booking.Booking{at(-48*time.Hour, -47*time.Hour), at(-2*time.Hour, -time.Hour)}},
		{name: "one still running", bookings: []*booking.Booking{at(-48*time.Hour, -47*time.Hour), at(-time.Hour, time.Hour)}, errIs: booking.ErrBookingInFuture},
		{name: "one in future", bookings: []*booking.Booking{at(time.Hour, 2*time.Hour)}, errIs: booking.ErrBookingInFuture},
		{name: "ends exactly now", bookings: []*booking.Booking{at(-time.Hour, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := booking.CheckCommentEligibility(tt.bookings, now)
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
			assert.ErrorIs(t, err, errs.ErrInvalidState)
		})
	}
}
