//go:build unit

package repository_test

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/infra/repository"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/tests/common/builder"
	repositorymock "shareit/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestItemRepository(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	ib := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) { b.RequestID = &requestID })

	t.Run("create carries the request reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockItemWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewItemRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateItem(ctx, mockDB, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateItemParams) error {
				assert.True(t, arg.RequestID.Valid)
				assert.Equal(t, requestID, uuid.UUID(arg.RequestID.Bytes))
				return nil
			})

		require.NoError(t, repo.Create(ctx, mockDB, ib.BuildDomain()))
	})

	t.Run("create with unknown owner is a foreign key violation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockItemWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewItemRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateItem(ctx, mockDB, gomock.Any()).Return(&pgconn.PgError{Code: "23503"})

		err := repo.Create(ctx, mockDB, ib.BuildDomain())
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("find round-trips the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockItemWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewItemRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetItemByID(ctx, mockDB, ib.ID).Return(ib.BuildInfra(), nil)

		got, err := repo.FindByID(ctx, ib.ID)
		require.NoError(t, err)
		assert.Equal(t, ib.OwnerID, got.OwnerID())
		assert.Equal(t, "Drill", got.Name().String())
		require.NotNil(t, got.RequestID())
		assert.Equal(t, requestID, *got.RequestID())
	})

	t.Run("find missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockItemWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewItemRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetItemByID(ctx, mockDB, ib.ID).Return(sqlc.Items{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, ib.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("update failure is a db failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockItemWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewItemRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateItem(ctx, mockDB, gomock.Any()).Return(assert.AnError)

		err := repo.Update(ctx, mockDB, ib.BuildDomain())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
