package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/converter"
	sqlc "shareit/internal/infra/sqlc/generated"
)

type CommentWriteQueries interface {
	CreateComment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCommentParams) error
}

type CommentRepository struct {
	queries CommentWriteQueries
}

func NewCommentRepository(queries CommentWriteQueries) *CommentRepository {
	return &CommentRepository{queries: queries}
}

func (r *CommentRepository) Create(ctx context.Context, tx sqlc.DBTX, c *item.Comment) error {
	if err := r.queries.CreateComment(ctx, tx, converter.CommentToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create comment", err)
	}
	return nil
}
