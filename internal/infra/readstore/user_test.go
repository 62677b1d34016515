//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/infra/readstore"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/builder"
	readstoremock "shareit/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserReadStore(t *testing.T) {
	ctx := context.Background()
	ub := builder.NewUserBuilder().WithName("Alice").WithEmail("alice@example.com").WithPasswordHash("$2a$04$hash")

	setup := func(t *testing.T) (*readstoremock.MockUserReadQueries, *mockDBTX, *readstore.UserReadStore) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
		mockDB := &mockDBTX{}
		return mockQueries, mockDB, readstore.NewUserReadStore(mockQueries, mockDB)
	}

	t.Run("FindByID", func(t *testing.T) {
		mockQueries, mockDB, store := setup(t)
		mockQueries.EXPECT().GetUserByID(ctx, mockDB, ub.ID).Return(ub.BuildInfra(), nil)

		got, err := store.FindByID(ctx, ub.ID)

		require.NoError(t, err)
		assert.Equal(t, ub.BuildReadModel(), got)
	})

	t.Run("GetUserByID snapshot", func(t *testing.T) {
		mockQueries, mockDB, store := setup(t)
		mockQueries.EXPECT().GetUserByID(ctx, mockDB, ub.ID).Return(ub.BuildInfra(), nil)

		got, err := store.GetUserByID(ctx, ub.ID)

		require.NoError(t, err)
		assert.Equal(t, &shared.UserSnapshot{ID: ub.ID, Name: "Alice", Email: "alice@example.com"}, got)
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		mockQueries, mockDB, store := setup(t)
		mockQueries.EXPECT().GetUserByID(ctx, mockDB, ub.ID).Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := store.GetUserByID(ctx, ub.ID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("FindCredentialsByEmail", func(t *testing.T) {
		mockQueries, mockDB, store := setup(t)
		mockQueries.EXPECT().FindUserByEmail(ctx, mockDB, "alice@example.com").Return(ub.BuildInfra(), nil)

		got, err := store.FindCredentialsByEmail(ctx, "alice@example.com")

		require.NoError(t, err)
		assert.Equal(t, &queries.UserCredentials{ID: ub.ID, Email: "alice@example.com", PasswordHash: "$2a$04$hash"}, got)
	})

	t.Run("FindCredentialsByEmail unknown", func(t *testing.T) {
		mockQueries, mockDB, store := setup(t)
		mockQueries.EXPECT().FindUserByEmail(ctx, mockDB, "nobody@example.com").Return(sqlc.Users{}, pgx.ErrNoRows)

		got, err := store.FindCredentialsByEmail(ctx, "nobody@example.com")

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("List pages", func(t *testing.T) {
		mockQueries, mockDB, store := setup(t)
		mockQueries.EXPECT().ListUsers(ctx, mockDB, sqlc.ListUsersParams{PageLimit: 10, PageOffset: 20}).
			Return([]sqlc.Users{ub.BuildInfra()}, nil)

		got, err := store.List(ctx, shared.Page{Offset: 20, Limit: 10})

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}
