package commands

import (
	"context"
	"log/slog"

	"shareit/internal/domain/item"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CommentCommands interface {
	// Create stores a comment only if the author rented the item and every
	// non-rejected booking of theirs for it has already ended.
	Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error)
}

type commentCommandsImpl struct {
	uow       shared.UnitOfWork
	catalog   shared.ItemCatalog
	users     shared.UserDirectory
	projector queries.ItemBookingProjector
	clock     clock.Clock
}

func NewCommentCommands(
	uow shared.UnitOfWork,
	catalog shared.ItemCatalog,
	users shared.UserDirectory,
	projector queries.ItemBookingProjector,
	clk clock.Clock,
) CommentCommands {
	return &commentCommandsImpl{
		uow:       uow,
		catalog:   catalog,
		users:     users,
		projector: projector,
		clock:     clk,
	}
}

func (uc *commentCommandsImpl) Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error) {
	body, err := item.NewCommentText(text)
	if err != nil {
		return nil, err
	}

	if _, err := uc.catalog.GetItemByID(ctx, itemID); err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrItemNotFound)
	}
	author, err := uc.users.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrUserNotFound)
	}

	if err := uc.projector.CanComment(ctx, authorID, itemID); err != nil {
		return nil, err
	}

	c := item.NewComment(itemID, authorID, body, uc.clock.Now())
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Comments().Create(ctx, tx.DB(), c)
	})
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrItemNotFound)
	}

	slog.InfoContext(ctx, "comment created", "comment_id", c.ID(), "item_id", itemID, "author_id", authorID)
	return &queries.CommentView{
		ID:         c.ID(),
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Text:       body.String(),
		CreatedAt:  c.CreatedAt(),
	}, nil
}
