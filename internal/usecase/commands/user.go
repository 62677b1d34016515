package commands

import (
	"context"
	"log/slog"

	"shareit/internal/domain/user"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/password"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterUserRequest struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserRequest struct {
	Name  *string
	Email *string
}

type RegisterUserResult struct {
	UserID uuid.UUID
}

type UserCommands interface {
	Register(ctx context.Context, req RegisterUserRequest) (*RegisterUserResult, error)
	// Update changes the actor's own profile; targeting anyone else reports not found.
	Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest, actorID uuid.UUID) error
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher *password.Hasher
	clock  clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, hasher *password.Hasher, clk clock.Clock) UserCommands {
	return &userCommandsImpl{
		uow:    uow,
		hasher: hasher,
		clock:  clk,
	}
}

func (uc *userCommandsImpl) Register(ctx context.Context, req RegisterUserRequest) (*RegisterUserResult, error) {
	name, err := user.NewName(req.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u := user.NewUser(name, email, hash, uc.clock.Now())
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		return nil, mapUserWriteErr(err)
	}

	slog.InfoContext(ctx, "user registered", "user_id", u.ID())
	return &RegisterUserResult{UserID: u.ID()}, nil
}

func (uc *userCommandsImpl) Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest, actorID uuid.UUID) error {
	if userID != actorID {
		return shared.ErrUserNotFound
	}

	var (
		name  *user.Name
		email *user.Email
	)
	if req.Name != nil {
		n, err := user.NewName(*req.Name)
		if err != nil {
			return err
		}
		name = &n
	}
	if req.Email != nil {
		e, err := user.NewEmail(*req.Email)
		if err != nil {
			return err
		}
		email = &e
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return shared.MapRepoErr(err, shared.ErrUserNotFound)
		}
		u.Update(name, email, uc.clock.Now())
		return tx.Users().Update(ctx, tx.DB(), u)
	})
	if err != nil {
		return mapUserWriteErr(err)
	}
	return nil
}

func mapUserWriteErr(err error) error {
	if isDuplicate(err) {
		return shared.ErrEmailTaken
	}
	return shared.MapRepoErr(err, shared.ErrUserNotFound)
}
