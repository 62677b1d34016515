//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type bookingFixture struct {
	store    *memstore.Store
	clk      *clock.MockClock
	uc       commands.BookingCommands
	ownerID  uuid.UUID
	renterID uuid.UUID
	itemID   uuid.UUID
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	store := memstore.New()
	clk := clock.NewMockClock(baseTime)

	owner := store.AddUser("Owner", "owner@example.com", baseTime)
	renter := store.AddUser("Renter", "renter@example.com", baseTime)
	it := store.AddItem(owner.ID(), "Drill", true, baseTime)

	return &bookingFixture{
		store:    store,
		clk:      clk,
		uc:       commands.NewBookingCommands(store, store, store, store.BookingReads(), clk),
		ownerID:  owner.ID(),
		renterID: renter.ID(),
		itemID:   it.ID(),
	}
}

func (f *bookingFixture) create(t *testing.T) uuid.UUID {
	t.Helper()
	v, err := f.uc.Create(context.Background(), commands.CreateBookingRequest{
		ItemID: f.itemID,
		Start:  baseTime.Add(time.Hour),
		End:    baseTime.Add(2 * time.Hour),
	}, f.renterID)
	require.NoError(t, err)
	return v.ID
}

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: waiting booking with item and booker", func(t *testing.T) {
		f := newBookingFixture(t)

		v, err := f.uc.Create(ctx, commands.CreateBookingRequest{
			ItemID: f.itemID,
			Start:  baseTime.Add(time.Hour),
			End:    baseTime.Add(2 * time.Hour),
		}, f.renterID)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusWaiting.String(), v.Status)
		assert.Equal(t, f.itemID, v.Item.ID)
		assert.Equal(t, "Drill", v.Item.Name)
		assert.Equal(t, f.ownerID, v.Item.OwnerID)
		assert.Equal(t, f.renterID, v.Booker.ID)
		assert.Equal(t, "Renter", v.Booker.Name)

		stored, ok := f.store.Booking(v.ID)
		require.True(t, ok)
		assert.Equal(t, int32(1), stored.Version())
	})

	testCases := []struct {
		name     string
		mutate   func(f *bookingFixture, req *commands.CreateBookingRequest, renterID *uuid.UUID)
		wantErr  error
		wantKind error
	}{
		{
			name: "error: end equals start",
			mutate: func(_ *bookingFixture, req *commands.CreateBookingRequest, _ *uuid.UUID) {
				req.End = req.Start
			},
			wantErr:  booking.ErrInvalidTimeSlot,
			wantKind: errs.ErrInvalidState,
		},
		{
			name: "error: end before start",
			mutate: func(_ *bookingFixture, req *commands.CreateBookingRequest, _ *uuid.UUID) {
				req.End = req.Start.Add(-time.Minute)
			},
			wantErr:  booking.ErrInvalidTimeSlot,
			wantKind: errs.ErrInvalidState,
		},
		{
			name: "error: unknown item",
			mutate: func(_ *bookingFixture, req *commands.CreateBookingRequest, _ *uuid.UUID) {
				req.ItemID = uuid.New()
			},
			wantErr:  shared.ErrItemNotFound,
			wantKind: errs.ErrNotFound,
		},
		{
			name: "error: unavailable item",
			mutate: func(f *bookingFixture, req *commands.CreateBookingRequest, _ *uuid.UUID) {
				req.ItemID = f.store.AddItem(f.ownerID, "Saw", false, baseTime).ID()
			},
			wantErr:  booking.ErrItemNotAvailable,
			wantKind: errs.ErrNotAvailable,
		},
		{
			name: "error: owner books own item",
			mutate: func(f *bookingFixture, _ *commands.CreateBookingRequest, renterID *uuid.UUID) {
				*renterID = f.ownerID
			},
			wantErr:  booking.ErrOwnItem,
			wantKind: errs.ErrNotFound,
		},
		{
			name: "error: unknown renter",
			mutate: func(_ *bookingFixture, _ *commands.CreateBookingRequest, renterID *uuid.UUID) {
				*renterID = uuid.New()
			},
			wantErr:  shared.ErrUserNotFound,
			wantKind: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBookingFixture(t)
			req := commands.CreateBookingRequest{
				ItemID: f.itemID,
				Start:  baseTime.Add(time.Hour),
				End:    baseTime.Add(2 * time.Hour),
			}
			renterID := f.renterID
			tc.mutate(f, &req, &renterID)

			v, err := f.uc.Create(ctx, req, renterID)

			require.Error(t, err)
			assert.Nil(t, v)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			assert.True(t, errors.Is(err, tc.wantKind), "got %v", err)
		})
	}
}

func TestBookingCommands_Decide(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		initial    booking.Status
		asOwner    bool
		approve    bool
		wantStatus booking.Status
		wantErr    error
	}{
		{name: "owner approves waiting", initial: booking.StatusWaiting, asOwner: true, approve: true, wantStatus: booking.StatusApproved},
		{name: "owner rejects waiting", initial: booking.StatusWaiting, asOwner: true, approve: false, wantStatus: booking.StatusRejected},
		{name: "owner approves rejected", initial: booking.StatusRejected, asOwner: true, approve: true, wantStatus: booking.StatusApproved},
		{name: "owner rejects rejected is a no-op", initial: booking.StatusRejected, asOwner: true, approve: false, wantStatus: booking.StatusRejected},
		{name: "owner approves approved", initial: booking.StatusApproved, asOwner: true, approve: true, wantStatus: booking.StatusApproved, wantErr: booking.ErrAlreadyApproved},
		{name: "owner rejects approved", initial: booking.StatusApproved, asOwner: true, approve: false, wantStatus: booking.StatusRejected},
		{name: "stranger rejects approved is ignored", initial: booking.StatusApproved, asOwner: false, approve: false, wantStatus: booking.StatusApproved},
		{name: "stranger approves", initial: booking.StatusWaiting, asOwner: false, approve: true, wantStatus: booking.StatusWaiting, wantErr: booking.ErrNotItemOwner},
		{name: "stranger rejects is ignored", initial: booking.StatusWaiting, asOwner: false, approve: false, wantStatus: booking.StatusWaiting},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBookingFixture(t)
			b := f.store.AddBooking(f.itemID, f.renterID, baseTime.Add(time.Hour), baseTime.Add(2*time.Hour), tc.initial)

			actor := f.renterID
			if tc.asOwner {
				actor = f.ownerID
			}

			v, err := f.uc.Decide(ctx, b.ID(), actor, tc.approve)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				assert.Nil(t, v)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantStatus.String(), v.Status)
			}

			stored, ok := f.store.Booking(b.ID())
			require.True(t, ok)
			assert.Equal(t, tc.wantStatus, stored.Status())
		})
	}
}

func TestBookingCommands_Decide_VersionBumpsOnlyOnChange(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	id := f.create(t)

	_, err := f.uc.Decide(ctx, id, f.renterID, false)
	require.NoError(t, err)
	stored, _ := f.store.Booking(id)
	assert.Equal(t, int32(1), stored.Version())

	_, err = f.uc.Decide(ctx, id, f.ownerID, true)
	require.NoError(t, err)
	stored, _ = f.store.Booking(id)
	assert.Equal(t, int32(2), stored.Version())
}

func TestBookingCommands_Decide_UnknownBooking(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.uc.Decide(context.Background(), uuid.New(), f.ownerID, true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrBookingNotFound))
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestBookingCommands_Decide_StaleWrite(t *testing.T) {
	f := newBookingFixture(t)
	id := f.create(t)
	f.store.BeforeBookingUpdate = f.store.BumpVersion

	_, err := f.uc.Decide(context.Background(), id, f.ownerID, true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrStaleWrite))
	assert.True(t, errors.Is(err, errs.ErrConcurrentModification))
}

func TestBookingCommands_OwnerRejectsApproved(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	id := f.create(t)

	_, err := f.uc.Decide(ctx, id, f.ownerID, true)
	require.NoError(t, err)

	for _, actor := range []uuid.UUID{f.ownerID, f.renterID, uuid.New()} {
		_, _ = f.uc.Decide(ctx, id, actor, true)
		stored, _ := f.store.Booking(id)
		assert.Equal(t, booking.StatusApproved, stored.Status())
	}
	_, err = f.uc.Decide(ctx, id, f.renterID, false)
	require.NoError(t, err)
	stored, _ := f.store.Booking(id)
	assert.Equal(t, booking.StatusApproved, stored.Status())

	v, err := f.uc.Decide(ctx, id, f.ownerID, false)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusRejected.String(), v.Status)
	stored, _ = f.store.Booking(id)
	assert.Equal(t, booking.StatusRejected, stored.Status())
}
