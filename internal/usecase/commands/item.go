package commands

import (
	"context"
	"log/slog"

	"shareit/internal/domain/item"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/patch"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

// UpdateItemRequest is a partial update. Nil and blank text fields are left alone.
type UpdateItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type CreateItemResult struct {
	ItemID uuid.UUID
}

type ItemCommands interface {
	Create(ctx context.Context, req CreateItemRequest, ownerID uuid.UUID) (*CreateItemResult, error)
	Update(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest, actorID uuid.UUID) error
}

type itemCommandsImpl struct {
	uow         shared.UnitOfWork
	users       shared.UserDirectory
	invalidator shared.ItemCacheInvalidator
	clock       clock.Clock
}

func NewItemCommands(uow shared.UnitOfWork, users shared.UserDirectory, invalidator shared.ItemCacheInvalidator, clk clock.Clock) ItemCommands {
	return &itemCommandsImpl{
		uow:         uow,
		users:       users,
		invalidator: invalidator,
		clock:       clk,
	}
}

func (uc *itemCommandsImpl) Create(ctx context.Context, req CreateItemRequest, ownerID uuid.UUID) (*CreateItemResult, error) {
	name, err := item.NewName(req.Name)
	if err != nil {
		return nil, err
	}
	desc, err := item.NewDescription(req.Description)
	if err != nil {
		return nil, err
	}

	if _, err := uc.users.GetUserByID(ctx, ownerID); err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrUserNotFound)
	}

	it := item.NewItem(ownerID, name, desc, req.Available, req.RequestID, uc.clock.Now())
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if req.RequestID != nil {
			if _, err := tx.Reads().ItemRequestByID(ctx, *req.RequestID); err != nil {
				return shared.MapRepoErr(err, shared.ErrItemRequestNotFound)
			}
		}
		return shared.MapRepoErr(tx.Items().Create(ctx, tx.DB(), it), shared.ErrItemRequestNotFound)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "item created", "item_id", it.ID(), "owner_id", ownerID)
	return &CreateItemResult{ItemID: it.ID()}, nil
}

func (uc *itemCommandsImpl) Update(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest, actorID uuid.UUID) error {
	p, err := buildPatch(req)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Reads().ItemByID(ctx, itemID)
		if err != nil {
			return shared.MapRepoErr(err, shared.ErrItemNotFound)
		}
		if err := it.Apply(actorID, p, uc.clock.Now()); err != nil {
			return err
		}
		return shared.MapRepoErr(tx.Items().Update(ctx, tx.DB(), it), shared.ErrItemNotFound)
	})
	if err != nil {
		return err
	}

	// the snapshot is best effort; booking creation reads availability in its own tx
	if err := uc.invalidator.Invalidate(ctx, itemID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate item cache", "item_id", itemID, "error", err.Error())
	}
	return nil
}

func buildPatch(req UpdateItemRequest) (item.Patch, error) {
	var p item.Patch
	if text := patch.CoalesceText(req.Name, ""); text != "" {
		name, err := item.NewName(text)
		if err != nil {
			return p, err
		}
		p.Name = &name
	}
	if text := patch.CoalesceText(req.Description, ""); text != "" {
		desc, err := item.NewDescription(text)
		if err != nil {
			return p, err
		}
		p.Description = &desc
	}
	p.Available = req.Available
	return p, nil
}
