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

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	ListUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersParams) ([]sqlc.Users, error)
}

// UserReadStore also serves as the booking core's UserDirectory.
type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.getRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.UserViewFromRow(row), nil
}

func (r *UserReadStore) GetUserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, err := r.getRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.UserSnapshotFromRow(row), nil
}

func (r *UserReadStore) FindCredentialsByEmail(ctx context.Context, email string) (*queries.UserCredentials, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &queries.UserCredentials{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
	}, nil
}

func (r *UserReadStore) List(ctx context.Context, page shared.Page) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db, sqlc.ListUsersParams{
		PageLimit:  pgconv.IntToInt32(page.Limit),
		PageOffset: pgconv.IntToInt32(page.Offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	out := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.UserViewFromRow(row))
	}
	return out, nil
}

func (r *UserReadStore) getRow(ctx context.Context, id uuid.UUID) (sqlc.Users, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Users{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return sqlc.Users{}, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return row, nil
}
