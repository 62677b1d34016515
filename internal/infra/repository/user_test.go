//go:build unit

package repository

import (
	"context"
	"testing"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserWriteQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

// sqlc.DBTX implementation for MockUserWriteQueries
func (m *MockUserWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "email already taken", mockError: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, wantKind: infra.KindDuplicateKey},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := builder.NewUserBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreateUserParams) bool {
				return arg.ID == u.ID() && arg.Email == "test@example.com"
			})).Return(tt.mockError)

			repo := NewUserRepository(mockQueries, mockQueries)

			err = repo.Create(context.Background(), mockQueries, u)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserRepository_Update(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	mockQueries := new(MockUserWriteQueries)
	dup := &pgconn.PgError{Code: "23505"}
	mockQueries.On("UpdateUser", mock.Anything, mock.Anything, mock.Anything).Return(dup)

	repo := NewUserRepository(mockQueries, mockQueries)
	err = repo.Update(context.Background(), mockQueries, u)

	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	mockQueries.AssertExpectations(t)
}

func TestUserRepository_FindByID(t *testing.T) {
	ub := builder.NewUserBuilder().WithName("Alice").WithEmail("alice@example.com")

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, ub.ID).Return(ub.BuildInfra(), nil)

		got, err := NewUserRepository(mockQueries, mockQueries).FindByID(context.Background(), ub.ID)

		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name().Value())
		assert.Equal(t, "alice@example.com", got.Email().Value())
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, ub.ID).Return(sqlc.Users{}, pgx.ErrNoRows)

		got, err := NewUserRepository(mockQueries, mockQueries).FindByID(context.Background(), ub.ID)

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
