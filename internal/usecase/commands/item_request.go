package commands

import (
	"context"
	"log/slog"

	"shareit/internal/domain/itemrequest"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateItemRequestResult struct {
	RequestID uuid.UUID
}

type ItemRequestCommands interface {
	Create(ctx context.Context, description string, requesterID uuid.UUID) (*CreateItemRequestResult, error)
}

type itemRequestCommandsImpl struct {
	uow   shared.UnitOfWork
	users shared.UserDirectory
	clock clock.Clock
}

func NewItemRequestCommands(uow shared.UnitOfWork, users shared.UserDirectory, clk clock.Clock) ItemRequestCommands {
	return &itemRequestCommandsImpl{uow: uow, users: users, clock: clk}
}

func (uc *itemRequestCommandsImpl) Create(ctx context.Context, description string, requesterID uuid.UUID) (*CreateItemRequestResult, error) {
	r, err := itemrequest.NewItemRequest(requesterID, description, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if _, err := uc.users.GetUserByID(ctx, requesterID); err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrUserNotFound)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.ItemRequests().Create(ctx, tx.DB(), r)
	})
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrUserNotFound)
	}

	slog.InfoContext(ctx, "item request created", "request_id", r.ID(), "requester_id", requesterID)
	return &CreateItemRequestResult{RequestID: r.ID()}, nil
}
