package queries

import (
	"context"
	"strings"

	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]*ItemView, error)
	// Search matches available items by case-insensitive substring of name or description.
	Search(ctx context.Context, text string, page shared.Page) ([]*ItemView, error)
	ListByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]*ItemView, error)
}

type CommentReadStore interface {
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]*CommentView, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, itemID, actorID uuid.UUID) (*ItemDetailView, error)
	ListOwned(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]*ItemDetailView, error)
	Search(ctx context.Context, text string, page shared.Page) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	items     ItemReadStore
	comments  CommentReadStore
	projector ItemBookingProjector
	users     shared.UserDirectory
}

func NewItemQueries(items ItemReadStore, comments CommentReadStore, projector ItemBookingProjector, users shared.UserDirectory) ItemQueries {
	return &itemQueriesImpl{
		items:     items,
		comments:  comments,
		projector: projector,
		users:     users,
	}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, itemID, actorID uuid.UUID) (*ItemDetailView, error) {
	it, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrItemNotFound)
	}

	comments, err := q.comments.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	detail := &ItemDetailView{ItemView: *it, Comments: nonNil(comments)}
	if actorID == it.OwnerID {
		if err := q.project(ctx, detail); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

// ListOwned returns the owner's items with their last/next bookings. Comments
// are only loaded by GetByID.
func (q *itemQueriesImpl) ListOwned(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]*ItemDetailView, error) {
	if _, err := q.users.GetUserByID(ctx, ownerID); err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrUserNotFound)
	}

	items, err := q.items.ListByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}

	out := make([]*ItemDetailView, 0, len(items))
	for _, it := range items {
		detail := &ItemDetailView{ItemView: *it, Comments: []*CommentView{}}
		if err := q.project(ctx, detail); err != nil {
			return nil, err
		}
		out = append(out, detail)
	}
	return out, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, page shared.Page) ([]*ItemView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*ItemView{}, nil
	}
	items, err := q.items.Search(ctx, text, page)
	if err != nil {
		return nil, err
	}
	return nonNil(items), nil
}

func (q *itemQueriesImpl) project(ctx context.Context, detail *ItemDetailView) error {
	last, next, err := q.projector.ComputeLastNext(ctx, detail.ID)
	if err != nil {
		return err
	}
	detail.LastBooking = last
	detail.NextBooking = next
	return nil
}
