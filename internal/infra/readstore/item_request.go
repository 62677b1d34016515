package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/converter"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemRequestReadQueries interface {
	GetItemRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ItemRequests, error)
	ListItemRequestsByRequester(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID) ([]sqlc.ItemRequests, error)
	ListItemRequestsExcludingRequester(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemRequestsExcludingRequesterParams) ([]sqlc.ItemRequests, error)
}

type ItemRequestReadStore struct {
	queries ItemRequestReadQueries
	db      sqlc.DBTX
}

func NewItemRequestReadStore(queries ItemRequestReadQueries, db sqlc.DBTX) *ItemRequestReadStore {
	return &ItemRequestReadStore{queries: queries, db: db}
}

func (r *ItemRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemRequestView, error) {
	row, err := r.queries.GetItemRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item request", err)
	}
	return converter.ItemRequestViewFromRow(row), nil
}

func (r *ItemRequestReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.ItemRequestView, error) {
	rows, err := r.queries.ListItemRequestsByRequester(ctx, r.db, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	return converter.ItemRequestViewsFromRows(rows), nil
}

func (r *ItemRequestReadStore) ListExcludingRequester(ctx context.Context, requesterID uuid.UUID, page shared.Page) ([]*queries.ItemRequestView, error) {
	rows, err := r.queries.ListItemRequestsExcludingRequester(ctx, r.db, sqlc.ListItemRequestsExcludingRequesterParams{
		RequesterID: requesterID,
		PageLimit:   pgconv.IntToInt32(page.Limit),
		PageOffset:  pgconv.IntToInt32(page.Offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	return converter.ItemRequestViewsFromRows(rows), nil
}
