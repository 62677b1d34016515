package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingShortResponse `json:"lastBooking"`
	NextBooking *BookingShortResponse `json:"nextBooking"`
	Comments    []*CommentResponse    `json:"comments"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		RequestID:   v.RequestID,
	}
}

func FromItemList(views []*queries.ItemView) []*ItemResponse {
	res := make([]*ItemResponse, len(views))
	for i, v := range views {
		res[i] = FromItemView(v)
	}
	return res
}

func FromItemDetailView(v *queries.ItemDetailView) *ItemDetailResponse {
	comments := make([]*CommentResponse, len(v.Comments))
	for i, c := range v.Comments {
		comments[i] = FromCommentView(c)
	}
	return &ItemDetailResponse{
		ItemResponse: *FromItemView(&v.ItemView),
		LastBooking:  fromBookingShort(v.LastBooking),
		NextBooking:  fromBookingShort(v.NextBooking),
		Comments:     comments,
	}
}

func FromItemDetailList(views []*queries.ItemDetailView) []*ItemDetailResponse {
	res := make([]*ItemDetailResponse, len(views))
	for i, v := range views {
		res[i] = FromItemDetailView(v)
	}
	return res
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         v.ID,
		Text:       v.Text,
		AuthorName: v.AuthorName,
		Created:    v.CreatedAt,
	}
}
