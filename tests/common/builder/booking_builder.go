//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	ItemName   string
	OwnerID    uuid.UUID
	BookerID   uuid.UUID
	BookerName string
	Start      time.Time
	End        time.Time
	Status     booking.Status
	Version    int32
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		ItemName:   "Drill",
		OwnerID:    uuid.New(),
		BookerID:   uuid.New(),
		BookerName: "Renter",
		Start:      base.Add(24 * time.Hour),
		End:        base.Add(48 * time.Hour),
		Status:     booking.StatusWaiting,
		Version:    1,
		CreatedAt:  base,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.ItemID, b.BookerID,
		booking.ReconstructTimeSlot(b.Start, b.End),
		b.Status, b.Version,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:        b.ID,
		ItemID:    b.ItemID,
		BookerID:  b.BookerID,
		StartAt:   pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndAt:     pgtype.Timestamptz{Time: b.End, Valid: true},
		Status:    b.Status.String(),
		Version:   b.Version,
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildViewRow() sqlc.GetBookingViewByIDRow {
	return sqlc.GetBookingViewByIDRow{
		ID:          b.ID,
		ItemID:      b.ItemID,
		BookerID:    b.BookerID,
		StartAt:     pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndAt:       pgtype.Timestamptz{Time: b.End, Valid: true},
		Status:      b.Status.String(),
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		ItemName:    b.ItemName,
		ItemOwnerID: b.OwnerID,
		BookerName:  b.BookerName,
	}
}

func (b *BookingBuilder) BuildReadModel() *queries.BookingView {
	return &queries.BookingView{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status.String(),
		Item: queries.BookingItemRef{
			ID:      b.ItemID,
			Name:    b.ItemName,
			OwnerID: b.OwnerID,
		},
		Booker: queries.BookingUserRef{
			ID:   b.BookerID,
			Name: b.BookerName,
		},
		CreatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithStatus(st booking.Status) *BookingBuilder {
	b.Status = st
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.Start, b.End = start, end
	return b
}
