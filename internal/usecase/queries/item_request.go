package queries

import (
	"context"

	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemRequestView, error)
	// ListByRequester orders newest first.
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*ItemRequestView, error)
	ListExcludingRequester(ctx context.Context, requesterID uuid.UUID, page shared.Page) ([]*ItemRequestView, error)
}

type ItemRequestQueries interface {
	GetByID(ctx context.Context, requestID, actorID uuid.UUID) (*ItemRequestView, error)
	ListOwn(ctx context.Context, requesterID uuid.UUID) ([]*ItemRequestView, error)
	ListOthers(ctx context.Context, actorID uuid.UUID, page shared.Page) ([]*ItemRequestView, error)
}

type itemRequestQueriesImpl struct {
	requests ItemRequestReadStore
	items    ItemReadStore
	users    shared.UserDirectory
}

func NewItemRequestQueries(requests ItemRequestReadStore, items ItemReadStore, users shared.UserDirectory) ItemRequestQueries {
	return &itemRequestQueriesImpl{
		requests: requests,
		items:    items,
		users:    users,
	}
}

func (q *itemRequestQueriesImpl) GetByID(ctx context.Context, requestID, actorID uuid.UUID) (*ItemRequestView, error) {
	if err := q.requireUser(ctx, actorID); err != nil {
		return nil, err
	}
	req, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrItemRequestNotFound)
	}
	if err := q.attachItems(ctx, []*ItemRequestView{req}); err != nil {
		return nil, err
	}
	return req, nil
}

func (q *itemRequestQueriesImpl) ListOwn(ctx context.Context, requesterID uuid.UUID) ([]*ItemRequestView, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	reqs, err := q.requests.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if err := q.attachItems(ctx, reqs); err != nil {
		return nil, err
	}
	return nonNil(reqs), nil
}

func (q *itemRequestQueriesImpl) ListOthers(ctx context.Context, actorID uuid.UUID, page shared.Page) ([]*ItemRequestView, error) {
	if err := q.requireUser(ctx, actorID); err != nil {
		return nil, err
	}
	reqs, err := q.requests.ListExcludingRequester(ctx, actorID, page)
	if err != nil {
		return nil, err
	}
	if err := q.attachItems(ctx, reqs); err != nil {
		return nil, err
	}
	return nonNil(reqs), nil
}

func (q *itemRequestQueriesImpl) attachItems(ctx context.Context, reqs []*ItemRequestView) error {
	if len(reqs) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(reqs))
	byID := make(map[uuid.UUID]*ItemRequestView, len(reqs))
	for _, r := range reqs {
		r.Items = []*ItemView{}
		ids = append(ids, r.ID)
		byID[r.ID] = r
	}

	items, err := q.items.ListByRequestIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.RequestID == nil {
			continue
		}
		if r, ok := byID[*it.RequestID]; ok {
			r.Items = append(r.Items, it)
		}
	}
	return nil
}

func (q *itemRequestQueriesImpl) requireUser(ctx context.Context, id uuid.UUID) error {
	if _, err := q.users.GetUserByID(ctx, id); err != nil {
		return shared.MapRepoErr(err, shared.ErrUserNotFound)
	}
	return nil
}
