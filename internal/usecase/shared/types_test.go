//go:build unit

package shared_test

import (
	"testing"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		limit     int
		wantLimit int
		errIs     error
	}{
		{name: "first page", offset: 0, limit: 20, wantLimit: 20},
		{name: "large limit", offset: 5, limit: 1000, wantLimit: 1000},
		{name: "negative offset", offset: -1, limit: 10, errIs: errs.ErrValidation},
		{name: "zero limit", offset: 0, limit: 0, errIs: errs.ErrValidation},
		{name: "negative limit", offset: 0, limit: -5, errIs: errs.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := shared.NewPage(tt.offset, tt.limit)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.offset, p.Offset)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestMapRepoErr(t *testing.T) {
	notFound := shared.ErrItemNotFound

	assert.NoError(t, shared.MapRepoErr(nil, notFound))
	assert.ErrorIs(t, shared.MapRepoErr(infra.WrapRepoErr("x", pgx.ErrNoRows), notFound), errs.ErrNotFound)
	assert.ErrorIs(t, shared.MapRepoErr(infra.WrapRepoErr("x", nil, infra.KindConflict), notFound), errs.ErrConcurrentModification)
	assert.ErrorIs(t, shared.MapRepoErr(infra.WrapRepoErr("x", nil, infra.KindDuplicateKey), notFound), errs.ErrConflict)

	dbErr := infra.WrapRepoErr("x", nil, infra.KindDBFailure)
	assert.Equal(t, dbErr, shared.MapRepoErr(dbErr, notFound))
}
