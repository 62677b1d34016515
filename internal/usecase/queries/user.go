package queries

import (
	"context"

	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*UserView, error)
	List(ctx context.Context, page shared.Page) ([]*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindCredentialsByEmail(ctx context.Context, email string) (*UserCredentials, error)
	List(ctx context.Context, page shared.Page) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrUserNotFound)
	}
	return u, nil
}

func (q *userQueriesImpl) List(ctx context.Context, page shared.Page) ([]*UserView, error) {
	users, err := q.readStore.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return nonNil(users), nil
}
