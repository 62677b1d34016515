package repository

import (
	"context"

	"shareit/internal/domain/itemrequest"
	"shareit/internal/infra"
	"shareit/internal/infra/converter"
	sqlc "shareit/internal/infra/sqlc/generated"
)

type ItemRequestWriteQueries interface {
	CreateItemRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemRequestParams) error
}

type ItemRequestRepository struct {
	queries ItemRequestWriteQueries
}

func NewItemRequestRepository(queries ItemRequestWriteQueries) *ItemRequestRepository {
	return &ItemRequestRepository{queries: queries}
}

func (r *ItemRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *itemrequest.ItemRequest) error {
	if err := r.queries.CreateItemRequest(ctx, tx, converter.ItemRequestToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create item request", err)
	}
	return nil
}
