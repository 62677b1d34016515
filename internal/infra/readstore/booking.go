package readstore

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/converter"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	ListBookingViewsByBooker(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByBookerParams) ([]sqlc.ListBookingViewsByBookerRow, error)
	ListBookingViewsByItems(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByItemsParams) ([]sqlc.ListBookingViewsByItemsRow, error)
	ListBookingsByItemAsc(ctx context.Context, db sqlc.DBTX, itemID uuid.UUID) ([]sqlc.Bookings, error)
	ListBookingsByBookerAndItemExcludingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByBookerAndItemExcludingStatusParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view", err)
	}
	return converter.BookingViewFromViewRow(row), nil
}

// ListByBooker pushes the state predicate down to SQL.
func (r *BookingReadStore) ListByBooker(ctx context.Context, bookerID uuid.UUID, filter booking.Filter, page shared.Page) ([]*queries.BookingView, error) {
	status, startAfter, endBefore, activeAt := filterParams(filter)
	rows, err := r.queries.ListBookingViewsByBooker(ctx, r.db, sqlc.ListBookingViewsByBookerParams{
		BookerID:   bookerID,
		Status:     status,
		StartAfter: startAfter,
		EndBefore:  endBefore,
		ActiveAt:   activeAt,
		PageLimit:  pgconv.IntToInt32(page.Limit),
		PageOffset: pgconv.IntToInt32(page.Offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by booker", err)
	}
	return converter.BookingViewsFromBookerRows(rows), nil
}

func (r *BookingReadStore) ListByItems(ctx context.Context, itemIDs []uuid.UUID, filter booking.Filter) ([]*queries.BookingView, error) {
	if len(itemIDs) == 0 {
		return []*queries.BookingView{}, nil
	}
	status, startAfter, endBefore, activeAt := filterParams(filter)
	rows, err := r.queries.ListBookingViewsByItems(ctx, r.db, sqlc.ListBookingViewsByItemsParams{
		ItemIds:    itemIDs,
		Status:     status,
		StartAfter: startAfter,
		EndBefore:  endBefore,
		ActiveAt:   activeAt,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by items", err)
	}
	return converter.BookingViewsFromItemRows(rows), nil
}

func (r *BookingReadStore) ListByItemAsc(ctx context.Context, itemID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByItemAsc(ctx, r.db, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by item", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *BookingReadStore) ListNonRejectedByBookerAndItem(ctx context.Context, bookerID, itemID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByBookerAndItemExcludingStatus(ctx, r.db, sqlc.ListBookingsByBookerAndItemExcludingStatusParams{
		BookerID:       bookerID,
		ItemID:         itemID,
		ExcludedStatus: booking.StatusRejected.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by booker and item", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func filterParams(f booking.Filter) (status pgtype.Text, startAfter, endBefore, activeAt pgtype.Timestamptz) {
	if f.Status != nil {
		status = pgtype.Text{String: f.Status.String(), Valid: true}
	}
	return status, pgconv.TimePtrToPgtype(f.StartAfter), pgconv.TimePtrToPgtype(f.EndBefore), pgconv.TimePtrToPgtype(f.ActiveAt)
}
