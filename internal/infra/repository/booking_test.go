//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/repository"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/tests/common/builder"
	repositorymock "shareit/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking created with version 1",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) error {
						assert.Equal(t, b.ID(), arg.ID)
						assert.Equal(t, "WAITING", arg.Status)
						assert.Equal(t, int32(1), arg.Version)
						assert.True(t, arg.StartAt.Time.Equal(b.Start()))
						return nil
					})
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: item or booker row missing",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *booking.Booking, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update on table \"bookings\" violates foreign key constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: check constraint on slot",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *booking.Booking, tx sqlc.DBTX) {
				chk := &pgconn.PgError{Code: "23514", Message: "new row violates check constraint \"bookings_slot_check\""}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(chk)
			},
			expectedError: true,
			expectKind:    infra.KindCheckViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b := builder.NewBookingBuilder().BuildDomain()
			tc.setupMock(mockQueries, b, mockDB)

			actualError := repo.Create(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// UpdateStatus Tests
// =============================================================================

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: guarded by the loaded version",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				want := sqlc.UpdateBookingStatusParams{ID: b.ID(), Status: "APPROVED", Version: 3}
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error) {
						arg.UpdatedAt = want.UpdatedAt
						if diff := cmp.Diff(want, arg); diff != "" {
							t.Errorf("params mismatch (-want +got):\n%s", diff)
						}
						return 1, nil
					})
			},
			expectedError: false,
		},
		{
			name: "error: version moved on",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).Return(int64(0), errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b := builder.NewBookingBuilder().
				WithStatus(booking.StatusApproved).
				With(func(bb *builder.BookingBuilder) { bb.Version = 3 }).
				BuildDomain()
			tc.setupMock(mockQueries, b, mockDB)

			actualError := repo.UpdateStatus(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	bb := builder.NewBookingBuilder().WithStatus(booking.StatusRejected)

	t.Run("success: row becomes the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetBookingByID(ctx, mockDB, bb.ID).Return(bb.BuildInfra(), nil)

		got, err := repo.FindByID(ctx, bb.ID)

		require.NoError(t, err)
		assert.Equal(t, bb.ID, got.ID())
		assert.Equal(t, booking.StatusRejected, got.Status())
		assert.Equal(t, bb.Version, got.Version())
		assert.True(t, got.Start().Equal(bb.Start))
		assert.True(t, got.End().Equal(bb.End))
	})

	t.Run("error: no rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetBookingByID(ctx, mockDB, bb.ID).Return(sqlc.Bookings{}, pgx.ErrNoRows)

		got, err := repo.FindByID(ctx, bb.ID)

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
