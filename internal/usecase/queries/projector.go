package queries

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"

	"github.com/google/uuid"
)

// ItemBookingProjector derives per-item facts from booking history.
type ItemBookingProjector interface {
	// ComputeLastNext returns the booking after now with the smallest start
	// and the one ordered right before it. Both are nil when nothing starts
	// after now.
	ComputeLastNext(ctx context.Context, itemID uuid.UUID) (last, next *BookingShort, err error)
	// CanComment returns nil only if the renter has non-rejected bookings of
	// the item and every one of them has ended.
	CanComment(ctx context.Context, renterID, itemID uuid.UUID) error
}

type itemBookingProjector struct {
	store BookingReadStore
	clock clock.Clock
}

func NewItemBookingProjector(store BookingReadStore, clk clock.Clock) ItemBookingProjector {
	return &itemBookingProjector{store: store, clock: clk}
}

func (p *itemBookingProjector) ComputeLastNext(ctx context.Context, itemID uuid.UUID) (*BookingShort, *BookingShort, error) {
	bookings, err := p.store.ListByItemAsc(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	last, next := booking.LastNext(bookings, p.clock.Now())
	return toShort(last), toShort(next), nil
}

func (p *itemBookingProjector) CanComment(ctx context.Context, renterID, itemID uuid.UUID) error {
	bookings, err := p.store.ListNonRejectedByBookerAndItem(ctx, renterID, itemID)
	if err != nil {
		return err
	}
	return booking.CheckCommentEligibility(bookings, p.clock.Now())
}

func toShort(b *booking.Booking) *BookingShort {
	if b == nil {
		return nil
	}
	return &BookingShort{
		ID:       b.ID(),
		BookerID: b.BookerID(),
		Start:    b.Start(),
		End:      b.End(),
	}
}
