package converter

import (
	"shareit/internal/domain/booking"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:        b.ID(),
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		StartAt:   pgconv.TimeToPgtype(b.Start()),
		EndAt:     pgconv.TimeToPgtype(b.End()),
		Status:    b.Status().String(),
		Version:   b.Version(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingToStatusParams guards the write with the version b was loaded at.
func BookingToStatusParams(b *booking.Booking) sqlc.UpdateBookingStatusParams {
	return sqlc.UpdateBookingStatusParams{
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:        b.ID(),
		Version:   b.Version(),
	}
}

func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	return booking.ReconstructBooking(
		row.ID,
		row.ItemID,
		row.BookerID,
		booking.ReconstructTimeSlot(pgconv.TimeFromPgtype(row.StartAt), pgconv.TimeFromPgtype(row.EndAt)),
		booking.Status(row.Status),
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func BookingsFromRows(rows []sqlc.Bookings) []*booking.Booking {
	out := make([]*booking.Booking, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingFromRow(r))
	}
	return out
}

// The list rows share GetBookingViewByIDRow's columns, so they convert directly.
func BookingViewFromViewRow(row sqlc.GetBookingViewByIDRow) *queries.BookingView {
	return bookingView(sqlc.Bookings{
		ID: row.ID, ItemID: row.ItemID, BookerID: row.BookerID,
		StartAt: row.StartAt, EndAt: row.EndAt, Status: row.Status, CreatedAt: row.CreatedAt,
	}, row.ItemName, row.ItemOwnerID, row.BookerName)
}

func BookingViewsFromBookerRows(rows []sqlc.ListBookingViewsByBookerRow) []*queries.BookingView {
	out := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		out = append(out, BookingViewFromViewRow(sqlc.GetBookingViewByIDRow(row)))
	}
	return out
}

func BookingViewsFromItemRows(rows []sqlc.ListBookingViewsByItemsRow) []*queries.BookingView {
	out := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		out = append(out, BookingViewFromViewRow(sqlc.GetBookingViewByIDRow(row)))
	}
	return out
}

func bookingView(b sqlc.Bookings, itemName string, ownerID uuid.UUID, bookerName string) *queries.BookingView {
	return &queries.BookingView{
		ID:     b.ID,
		Start:  pgconv.TimeFromPgtype(b.StartAt),
		End:    pgconv.TimeFromPgtype(b.EndAt),
		Status: b.Status,
		Item: queries.BookingItemRef{
			ID:      b.ItemID,
			Name:    itemName,
			OwnerID: ownerID,
		},
		Booker: queries.BookingUserRef{
			ID:   b.BookerID,
			Name: bookerName,
		},
		CreatedAt: pgconv.TimeFromPgtype(b.CreatedAt),
	}
}
