package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingItemResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"ownerId"`
}

type BookingBookerResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingResponse struct {
	ID     uuid.UUID             `json:"id"`
	Start  time.Time             `json:"start"`
	End    time.Time             `json:"end"`
	Status string                `json:"status"`
	Item   BookingItemResponse   `json:"item"`
	Booker BookingBookerResponse `json:"booker"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID,
		Start:  v.Start,
		End:    v.End,
		Status: v.Status,
		Item: BookingItemResponse{
			ID:      v.Item.ID,
			Name:    v.Item.Name,
			OwnerID: v.Item.OwnerID,
		},
		Booker: BookingBookerResponse{
			ID:   v.Booker.ID,
			Name: v.Booker.Name,
		},
	}
}

func FromBookingList(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

// BookingShortResponse is an item's last or next booking.
type BookingShortResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func fromBookingShort(b *queries.BookingShort) *BookingShortResponse {
	if b == nil {
		return nil
	}
	return &BookingShortResponse{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
}
