package commands

import (
	"context"
	"log/slog"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/metrics"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest, renterID uuid.UUID) (*queries.BookingView, error)
	// Decide approves or rejects a booking on behalf of actorID. A reject by
	// someone other than the item owner leaves the booking untouched and
	// still returns it.
	Decide(ctx context.Context, bookingID, actorID uuid.UUID, approve bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	catalog shared.ItemCatalog
	users   shared.UserDirectory
	views   queries.BookingReadStore
	clock   clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	catalog shared.ItemCatalog,
	users shared.UserDirectory,
	views queries.BookingReadStore,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		catalog: catalog,
		users:   users,
		views:   views,
		clock:   clk,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, req CreateBookingRequest, renterID uuid.UUID) (*queries.BookingView, error) {
	slot, err := booking.NewTimeSlot(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	// availability comes from the transaction, never from the item cache
	var b *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Reads().ItemByID(ctx, req.ItemID)
		if err != nil {
			return shared.MapRepoErr(err, shared.ErrItemNotFound)
		}

		services := &booking.Services{Clock: uc.clock}
		spec := booking.ItemSpec{ID: it.ID(), OwnerID: it.OwnerID(), Available: it.Available()}
		b, err = booking.NewBooking(services, spec, renterID, slot)
		if err != nil {
			return err
		}
		if _, err := uc.users.GetUserByID(ctx, renterID); err != nil {
			return shared.MapRepoErr(err, shared.ErrUserNotFound)
		}
		// a foreign key miss here means the item vanished after the read
		return shared.MapRepoErr(tx.Bookings().Create(ctx, tx.DB(), b), shared.ErrItemNotFound)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingTransition(metrics.TransitionCreated)
	slog.InfoContext(ctx, "booking created",
		"booking_id", b.ID(), "item_id", req.ItemID, "booker_id", renterID)

	return uc.view(ctx, b.ID())
}

func (uc *bookingCommandsImpl) Decide(ctx context.Context, bookingID, actorID uuid.UUID, approve bool) (*queries.BookingView, error) {
	var outcome booking.Outcome
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			return shared.MapRepoErr(err, shared.ErrBookingNotFound)
		}

		it, err := uc.catalog.GetItemByID(ctx, b.ItemID())
		if err != nil {
			return shared.MapRepoErr(err, shared.ErrItemNotFound)
		}

		outcome, err = b.Decide(actorID, it.OwnerID, approve, uc.clock.Now())
		if err != nil || !outcome.Changed() {
			return err
		}
		return shared.MapRepoErr(tx.Bookings().UpdateStatus(ctx, tx.DB(), b), shared.ErrBookingNotFound)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingTransition(transitionLabel(outcome))
	slog.InfoContext(ctx, "booking decided",
		"booking_id", bookingID, "actor_id", actorID, "approve", approve, "outcome", string(outcome))

	return uc.view(ctx, bookingID)
}

func (uc *bookingCommandsImpl) view(ctx context.Context, bookingID uuid.UUID) (*queries.BookingView, error) {
	v, err := uc.views.FindViewByID(ctx, bookingID)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrBookingNotFound)
	}
	return v, nil
}

func transitionLabel(o booking.Outcome) string {
	switch o {
	case booking.OutcomeApproved:
		return metrics.TransitionApproved
	case booking.OutcomeRejected:
		return metrics.TransitionRejected
	default:
		return metrics.TransitionNoop
	}
}
