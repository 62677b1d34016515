package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/converter"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ItemWriteQueries interface {
	CreateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemParams) error
	GetItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Items, error)
	UpdateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateItemParams) error
}

type ItemRepository struct {
	queries ItemWriteQueries
	db      sqlc.DBTX
}

func NewItemRepository(queries ItemWriteQueries, db sqlc.DBTX) *ItemRepository {
	return &ItemRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ItemRepository) Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) error {
	if err := r.queries.CreateItem(ctx, tx, converter.ItemToCreateParams(it)); err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, tx sqlc.DBTX, it *item.Item) error {
	if err := r.queries.UpdateItem(ctx, tx, converter.ItemToUpdateParams(it)); err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item", err)
	}
	return converter.ItemFromRow(row), nil
}
