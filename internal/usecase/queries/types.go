package queries

import (
	"time"

	"github.com/google/uuid"
)

type BookingItemRef struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"owner_id"`
}

type BookingUserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BookingView is a booking joined with the item and booker it refers to.
type BookingView struct {
	ID        uuid.UUID      `json:"id"`
	Start     time.Time      `json:"start"`
	End       time.Time      `json:"end"`
	Status    string         `json:"status"`
	Item      BookingItemRef `json:"item"`
	Booker    BookingUserRef `json:"booker"`
	CreatedAt time.Time      `json:"created_at"`
}

// BookingShort is the compact form shown as an item's last/next booking.
type BookingShort struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type ItemView struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"request_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ItemDetailView carries LastBooking/NextBooking only when the viewer owns the item.
type ItemDetailView struct {
	ItemView
	LastBooking *BookingShort  `json:"last_booking,omitempty"`
	NextBooking *BookingShort  `json:"next_booking,omitempty"`
	Comments    []*CommentView `json:"comments"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"item_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCredentials is only read by login.
type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
}

type ItemRequestView struct {
	ID          uuid.UUID   `json:"id"`
	RequesterID uuid.UUID   `json:"requester_id"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []*ItemView `json:"items"`
}
