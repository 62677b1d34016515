package queries

import (
	"context"
	"slices"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/metrics"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	viewpointRenter = "renter"
	viewpointOwner  = "owner"
)

type BookingReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListByBooker orders by start descending and applies page to bookings.
	ListByBooker(ctx context.Context, bookerID uuid.UUID, filter booking.Filter, page shared.Page) ([]*BookingView, error)
	ListByItems(ctx context.Context, itemIDs []uuid.UUID, filter booking.Filter) ([]*BookingView, error)
	ListByItemAsc(ctx context.Context, itemID uuid.UUID) ([]*booking.Booking, error)
	ListNonRejectedByBookerAndItem(ctx context.Context, bookerID, itemID uuid.UUID) ([]*booking.Booking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, bookingID, actorID uuid.UUID) (*BookingView, error)
	ListForRenter(ctx context.Context, renterID uuid.UUID, state string, page shared.Page) ([]*BookingView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, state string, page shared.Page) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store   BookingReadStore
	catalog shared.ItemCatalog
	users   shared.UserDirectory
	clock   clock.Clock
}

func NewBookingQueries(store BookingReadStore, catalog shared.ItemCatalog, users shared.UserDirectory, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		store:   store,
		catalog: catalog,
		users:   users,
		clock:   clk,
	}
}

// GetByID hides bookings from everyone except the booker and the item owner.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, bookingID, actorID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindViewByID(ctx, bookingID)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrBookingNotFound)
	}
	if !booking.CanView(actorID, view.Booker.ID, view.Item.OwnerID) {
		return nil, booking.ErrNotVisible
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForRenter(ctx context.Context, renterID uuid.UUID, state string, page shared.Page) ([]*BookingView, error) {
	if err := q.requireUser(ctx, renterID); err != nil {
		return nil, err
	}
	st, err := booking.ParseState(state)
	if err != nil {
		return nil, err
	}

	views, err := q.store.ListByBooker(ctx, renterID, st.Filter(q.clock.Now()), page)
	if err != nil {
		return nil, err
	}
	metrics.IncBookingListQuery(viewpointRenter, st.String())
	return nonNil(views), nil
}

// ListForOwner pages over the owner's items, not over bookings: every
// matching booking of the items on the page is returned.
func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, state string, page shared.Page) ([]*BookingView, error) {
	if err := q.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	st, err := booking.ParseState(state)
	if err != nil {
		return nil, err
	}

	itemIDs, err := q.catalog.GetOwnedItemIDs(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}
	metrics.IncBookingListQuery(viewpointOwner, st.String())
	if len(itemIDs) == 0 {
		return []*BookingView{}, nil
	}

	views, err := q.store.ListByItems(ctx, itemIDs, st.Filter(q.clock.Now()))
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(views, func(a, b *BookingView) int {
		return b.Start.Compare(a.Start)
	})
	return nonNil(views), nil
}

func (q *bookingQueriesImpl) requireUser(ctx context.Context, id uuid.UUID) error {
	if _, err := q.users.GetUserByID(ctx, id); err != nil {
		return shared.MapRepoErr(err, shared.ErrUserNotFound)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
