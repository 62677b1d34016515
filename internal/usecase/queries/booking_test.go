//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/memstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

type world struct {
	store   *memstore.Store
	clk     *clock.MockClock
	q       queries.BookingQueries
	ownerID uuid.UUID
	renter  uuid.UUID
	itemID  uuid.UUID
}

func newWorld(t *testing.T) *world {
	t.Helper()
	store := memstore.New()
	clk := clock.NewMockClock(baseTime)
	owner := store.AddUser("Owner", "owner@example.com", baseTime)
	renter := store.AddUser("Renter", "renter@example.com", baseTime)
	it := store.AddItem(owner.ID(), "Drill", true, baseTime)
	return &world{
		store:   store,
		clk:     clk,
		q:       queries.NewBookingQueries(store.BookingReads(), store, store, clk),
		ownerID: owner.ID(),
		renter:  renter.ID(),
		itemID:  it.ID(),
	}
}

func ids(views []*queries.BookingView) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}

func TestBookingQueries_Scenario_PastAndFuture(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	b1 := w.store.AddBooking(w.itemID, w.renter, baseTime.Add(-10*day), baseTime.Add(-5*day), booking.StatusApproved)
	b2 := w.store.AddBooking(w.itemID, w.renter, baseTime.Add(10*day), baseTime.Add(15*day), booking.StatusWaiting)
	page := shared.DefaultPage()

	all, err := w.q.ListForRenter(ctx, w.renter, "ALL", page)
	require.NoError(t, err)
	if diff := cmp.Diff([]uuid.UUID{b2.ID(), b1.ID()}, ids(all)); diff != "" {
		t.Errorf("ALL mismatch (-want +got):\n%s", diff)
	}

	past, err := w.q.ListForRenter(ctx, w.renter, "PAST", page)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b1.ID()}, ids(past))

	future, err := w.q.ListForOwner(ctx, w.ownerID, "FUTURE", page)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b2.ID()}, ids(future))
}

func TestBookingQueries_Scenario_CommentEligibility(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	projector := queries.NewItemBookingProjector(w.store.BookingReads(), w.clk)

	b2 := w.store.AddBooking(w.itemID, w.renter, baseTime.Add(10*day), baseTime.Add(15*day), booking.StatusWaiting)
	err := projector.CanComment(ctx, w.renter, w.itemID)
	assert.True(t, errors.Is(err, errs.ErrInvalidState), "got %v", err)

	w.store.AddBooking(w.itemID, w.renter, baseTime.Add(-10*day), baseTime.Add(-5*day), booking.StatusApproved)
	decide := commands.NewBookingCommands(w.store, w.store, w.store, w.store.BookingReads(), w.clk)
	_, err = decide.Decide(ctx, b2.ID(), w.ownerID, false)
	require.NoError(t, err)

	assert.NoError(t, projector.CanComment(ctx, w.renter, w.itemID))
}

func TestBookingQueries_Scenario_ApproveTwice(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	b2 := w.store.AddBooking(w.itemID, w.renter, baseTime.Add(10*day), baseTime.Add(15*day), booking.StatusWaiting)
	decide := commands.NewBookingCommands(w.store, w.store, w.store, w.store.BookingReads(), w.clk)

	v, err := decide.Decide(ctx, b2.ID(), w.ownerID, true)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", v.Status)

	for range 3 {
		_, err = decide.Decide(ctx, b2.ID(), w.ownerID, true)
		assert.True(t, errors.Is(err, errs.ErrInvalidState), "got %v", err)
	}
}

// seedSpread places bookings around now, including ones touching it exactly.
func seedSpread(w *world) {
	spans := [][2]time.Duration{
		{-10 * day, -5 * day},
		{-3 * day, -time.Hour},
		{-2 * day, 2 * day},
		{-time.Hour, time.Hour},
		{0, time.Hour},
		{-time.Hour, 0},
		{time.Hour, 2 * time.Hour},
		{5 * day, 6 * day},
	}
	statuses := []booking.Status{booking.StatusWaiting, booking.StatusApproved, booking.StatusRejected}
	for i, s := range spans {
		w.store.AddBooking(w.itemID, w.renter, baseTime.Add(s[0]), baseTime.Add(s[1]), statuses[i%len(statuses)])
	}
}

func TestBookingQueries_TemporalStates(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	seedSpread(w)
	page := shared.DefaultPage()
	now := w.clk.Now()

	list := func(viewpoint, state string) []*queries.BookingView {
		var (
			res []*queries.BookingView
			err error
		)
		if viewpoint == "renter" {
			res, err = w.q.ListForRenter(ctx, w.renter, state, page)
		} else {
			res, err = w.q.ListForOwner(ctx, w.ownerID, state, page)
		}
		require.NoError(t, err)
		return res
	}

	for _, viewpoint := range []string{"renter", "owner"} {
		t.Run(viewpoint, func(t *testing.T) {
			all := list(viewpoint, "ALL")
			require.Len(t, all, 8)

			future, past, current := list(viewpoint, "FUTURE"), list(viewpoint, "PAST"), list(viewpoint, "CURRENT")
			for _, b := range future {
				assert.True(t, b.Start.After(now))
			}
			for _, b := range past {
				assert.True(t, b.End.Before(now))
			}
			for _, b := range current {
				assert.True(t, b.Start.Before(now) && b.End.After(now))
			}

			seen := map[uuid.UUID]int{}
			for _, set := range [][]*queries.BookingView{future, past, current} {
				for _, b := range set {
					seen[b.ID]++
				}
			}
			for _, b := range all {
				switch seen[b.ID] {
				case 0:
					onBoundary := b.Start.Equal(now) || b.End.Equal(now)
					assert.True(t, onBoundary, "booking %s is in no temporal state", b.ID)
				case 1:
				default:
					t.Errorf("booking %s is in %d temporal states", b.ID, seen[b.ID])
				}
			}

			for _, b := range list(viewpoint, "WAITING") {
				assert.Equal(t, "WAITING", b.Status)
			}
			for _, b := range list(viewpoint, "REJECTED") {
				assert.Equal(t, "REJECTED", b.Status)
			}

			for _, state := range []string{"ALL", "FUTURE", "PAST", "CURRENT", "WAITING", "REJECTED"} {
				res := list(viewpoint, state)
				for i := 1; i < len(res); i++ {
					assert.False(t, res[i].Start.After(res[i-1].Start), "%s not ordered by start desc", state)
				}
			}
		})
	}
}

func TestBookingQueries_ClassificationFollowsClock(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	b := w.store.AddBooking(w.itemID, w.renter, baseTime.Add(time.Hour), baseTime.Add(2*time.Hour), booking.StatusApproved)
	page := shared.DefaultPage()

	stateOf := func() []string {
		var states []string
		for _, s := range []string{"FUTURE", "CURRENT", "PAST"} {
			res, err := w.q.ListForRenter(ctx, w.renter, s, page)
			require.NoError(t, err)
			if len(res) == 1 && res[0].ID == b.ID() {
				states = append(states, s)
			}
		}
		return states
	}

	assert.Equal(t, []string{"FUTURE"}, stateOf())
	w.clk.Set(baseTime.Add(time.Hour))
	assert.Empty(t, stateOf(), "start == now is neither future nor current")
	w.clk.Add(time.Minute)
	assert.Equal(t, []string{"CURRENT"}, stateOf())
	w.clk.Set(baseTime.Add(2 * time.Hour))
	assert.Empty(t, stateOf(), "end == now is neither current nor past")
	w.clk.Add(time.Nanosecond)
	assert.Equal(t, []string{"PAST"}, stateOf())
}

func TestBookingQueries_UnsupportedState(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)

	for _, state := range []string{"UNKNOWN", "", "pastt", "APPROVED"} {
		_, err := w.q.ListForRenter(ctx, w.renter, state, shared.DefaultPage())
		assert.True(t, errors.Is(err, booking.ErrUnsupportedState), "renter %q: %v", state, err)
		assert.True(t, errors.Is(err, errs.ErrUnsupportedFilter))

		_, err = w.q.ListForOwner(ctx, w.ownerID, state, shared.DefaultPage())
		assert.True(t, errors.Is(err, booking.ErrUnsupportedState), "owner %q: %v", state, err)
	}
}

func TestBookingQueries_StateIsCaseInsensitive(t *testing.T) {
	w := newWorld(t)
	w.store.AddBooking(w.itemID, w.renter, baseTime.Add(time.Hour), baseTime.Add(2*time.Hour), booking.StatusWaiting)

	res, err := w.q.ListForRenter(context.Background(), w.renter, "waiting", shared.DefaultPage())

	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestBookingQueries_UnknownUserBeforeState(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)

	_, err := w.q.ListForRenter(ctx, uuid.New(), "BOGUS", shared.DefaultPage())
	assert.True(t, errors.Is(err, shared.ErrUserNotFound), "got %v", err)

	_, err = w.q.ListForOwner(ctx, uuid.New(), "ALL", shared.DefaultPage())
	assert.True(t, errors.Is(err, shared.ErrUserNotFound), "got %v", err)
}

func TestBookingQueries_RenterPagination(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	var want []uuid.UUID
	for i := 5; i >= 1; i-- {
		b := w.store.AddBooking(w.itemID, w.renter, baseTime.Add(time.Duration(i)*day), baseTime.Add(time.Duration(i)*day+time.Hour), booking.StatusWaiting)
		want = append(want, b.ID())
	}

	page, err := shared.NewPage(1, 2)
	require.NoError(t, err)
	res, err := w.q.ListForRenter(ctx, w.renter, "ALL", page)

	require.NoError(t, err)
	assert.Equal(t, want[1:3], ids(res))
}

func TestBookingQueries_OwnerPaginatesOverItems(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	second := w.store.AddItem(w.ownerID, "Saw", true, baseTime.Add(time.Second))

	// item one: two bookings, item two: one booking that starts in between
	a := w.store.AddBooking(w.itemID, w.renter, baseTime.Add(1*day), baseTime.Add(2*day), booking.StatusWaiting)
	b := w.store.AddBooking(w.itemID, w.renter, baseTime.Add(5*day), baseTime.Add(6*day), booking.StatusWaiting)
	c := w.store.AddBooking(second.ID(), w.renter, baseTime.Add(3*day), baseTime.Add(4*day), booking.StatusWaiting)

	all, err := w.q.ListForOwner(ctx, w.ownerID, "ALL", shared.DefaultPage())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID(), c.ID(), a.ID()}, ids(all), "merged across items by start desc")

	firstItem, err := shared.NewPage(0, 1)
	require.NoError(t, err)
	res, err := w.q.ListForOwner(ctx, w.ownerID, "ALL", firstItem)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID(), a.ID()}, ids(res), "limit bounds items, not bookings")

	beyond, err := shared.NewPage(2, 1)
	require.NoError(t, err)
	res, err = w.q.ListForOwner(ctx, w.ownerID, "ALL", beyond)
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestBookingQueries_OwnerWithoutItems(t *testing.T) {
	w := newWorld(t)

	res, err := w.q.ListForOwner(context.Background(), w.renter, "ALL", shared.DefaultPage())

	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	b := w.store.AddBooking(w.itemID, w.renter, baseTime.Add(time.Hour), baseTime.Add(2*time.Hour), booking.StatusWaiting)

	for _, actor := range []uuid.UUID{w.renter, w.ownerID} {
		v, err := w.q.GetByID(ctx, b.ID(), actor)
		require.NoError(t, err)
		assert.Equal(t, b.ID(), v.ID)
		assert.Equal(t, "Drill", v.Item.Name)
	}

	_, err := w.q.GetByID(ctx, b.ID(), uuid.New())
	assert.True(t, errors.Is(err, errs.ErrNotFound), "strangers see not found")

	_, err = w.q.GetByID(ctx, uuid.New(), w.ownerID)
	assert.True(t, errors.Is(err, shared.ErrBookingNotFound))
}
