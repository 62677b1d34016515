package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/converter"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentReadQueries interface {
	ListCommentsByItem(ctx context.Context, db sqlc.DBTX, itemID uuid.UUID) ([]sqlc.ListCommentsByItemRow, error)
}

type CommentReadStore struct {
	queries CommentReadQueries
	db      sqlc.DBTX
}

func NewCommentReadStore(queries CommentReadQueries, db sqlc.DBTX) *CommentReadStore {
	return &CommentReadStore{queries: queries, db: db}
}

func (r *CommentReadStore) ListByItem(ctx context.Context, itemID uuid.UUID) ([]*queries.CommentView, error) {
	rows, err := r.queries.ListCommentsByItem(ctx, r.db, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	return converter.CommentViewsFromRows(rows), nil
}
