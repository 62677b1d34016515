package shared

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/itemrequest"
	"shareit/internal/domain/user"
	sqlc "shareit/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Items() ItemRepository
	Users() UserRepository
	Comments() CommentRepository
	ItemRequests() ItemRequestRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads load aggregates for modification.
type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	ItemRequestByID(ctx context.Context, id uuid.UUID) (*ItemRequestSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// UpdateStatus writes b only if the stored version still equals b.Version().
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type ItemRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) error
	Update(ctx context.Context, tx sqlc.DBTX, it *item.Item) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}

type CommentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *item.Comment) error
}

type ItemRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *itemrequest.ItemRequest) error
}
