//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"shareit/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "57014"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), want: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tt.err)
			assert.True(t, infra.IsKind(err, tt.want))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestWrapRepoErr_ExplicitKindWins(t *testing.T) {
	err := infra.WrapRepoErr("stale version", nil, infra.KindConflict)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.Equal(t, "CONFLICT: stale version", err.Error())
}

func TestWrapRepoErr_KeepsPgErrorReachable(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "40001"}
	err := infra.WrapRepoErr("update failed", pgErr)

	var got *pgconn.PgError
	assert.True(t, errors.As(err, &got))
	assert.Equal(t, "40001", got.Code)
}

func TestIsKind_NonRepositoryError(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("x"), infra.KindNotFound))
}
