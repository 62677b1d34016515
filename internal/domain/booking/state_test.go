//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	for _, raw := range []string{"ALL", "FUTURE", "PAST", "CURRENT", "WAITING", "REJECTED", "future", " Past "} {
		t.Run(raw, func(t *testing.T) {
			_, err := booking.ParseState(raw)
			assert.NoError(t, err)
		})
	}

	for _, raw := range []string{"", "UNSUPPORTED_STATUS", "APPROVED", "CANCELED"} {
		t.Run("unsupported "+raw, func(t *testing.T) {
			_, err := booking.ParseState(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrUnsupportedFilter)
			assert.True(t, errs.Is(err, errs.ErrUnsupportedFilter))
		})
	}
}

func TestState_Matches(t *testing.T) {
	now := baseTime
	mk := func(start, end time.Duration, st booking.Status) *booking.Booking {
		return booking.ReconstructBooking(uuid.New(), uuid.New(), uuid.New(),
			booking.ReconstructTimeSlot(now.Add(start), now.Add(end)), st, 1, now, now)
	}

	past := mk(-2*time.Hour, -time.Hour, booking.StatusApproved)
	current := mk(-time.Hour, time.Hour, booking.StatusApproved)
	future := mk(time.Hour, 2*time.Hour, booking.StatusWaiting)
	rejected := mk(time.Hour, 2*time.Hour, booking.StatusRejected)
	startsNow := mk(0, time.Hour, booking.StatusWaiting)
	endsNow := mk(-time.Hour, 0, booking.StatusApproved)

	tests := []struct {
		state booking.State
		want  map[*booking.Booking]bool
	}{
		{state: booking.StateAll, want: map[*booking.Booking]bool{past: true, current: true, future: true, rejected: true, startsNow: true, endsNow: true}},
		{state: booking.StateFuture, want: map[*booking.Booking]bool{future: true, rejected: true}},
		{state: booking.StatePast, want: map[*booking.Booking]bool{past: true}},
		{state: booking.StateCurrent, want: map[*booking.Booking]bool{current: true}},
		{state: booking.StateWaiting, want: map[*booking.Booking]bool{future: true, startsNow: true}},
		{state: booking.StateRejected, want: map[*booking.Booking]bool{rejected: true}},
	}

	all := []*booking.Booking{past, current, future, rejected, startsNow, endsNow}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			for _, b := range all {
				assert.Equal(t, tt.want[b], tt.state.Matches(b, now), "start=%s end=%s status=%s", b.Start(), b.End(), b.Status())
			}
		})
	}
}

func TestState_TemporalStatesAreDisjoint(t *testing.T) {
	now := baseTime
	for _, offsets := range [][2]time.Duration{
		{-3 * time.Hour, -2 * time.Hour},
		{-time.Hour, time.Hour},
		{0, time.Hour},
		{-time.Hour, 0},
		{time.Hour, 3 * time.Hour},
	} {
		b := booking.ReconstructBooking(uuid.New(), uuid.New(), uuid.New(),
			booking.ReconstructTimeSlot(now.Add(offsets[0]), now.Add(offsets[1])), booking.StatusWaiting, 1, now, now)

		hits := 0
		for _, st := range []booking.State{booking.StateFuture, booking.StatePast, booking.StateCurrent} {
			if st.Matches(b, now) {
				hits++
			}
		}
		assert.LessOrEqual(t, hits, 1)
	}
}
