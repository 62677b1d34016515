//go:build unit

package pgconv_test

import (
	"database/sql"
	"math"
	"testing"
	"time"

	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestUUIDRoundTrip(t *testing.T) {
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))

	id := uuid.New()
	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id))
	if assert.NotNil(t, got) {
		assert.Equal(t, id, *got)
	}
}

func TestTimeFromPgtype(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	local := time.Date(2026, 5, 1, 9, 0, 0, 0, tokyo)

	got := pgconv.TimeFromPgtype(pgtype.Timestamptz{Time: local, Valid: true})
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(local))

	assert.True(t, pgconv.TimeFromPgtype(pgtype.Timestamptz{}).IsZero())
	assert.False(t, pgconv.TimePtrToPgtype(nil).Valid)
	assert.True(t, pgconv.TimePtrToPgtype(&local).Valid)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(errs.Wrap(pgx.ErrNoRows, "lookup")))
	assert.False(t, pgconv.IsNoRows(errs.New("boom")))
}

func TestIntToInt32(t *testing.T) {
	assert.Equal(t, int32(20), pgconv.IntToInt32(20))
	assert.Equal(t, int32(math.MaxInt32), pgconv.IntToInt32(math.MaxInt32+1))
	assert.Equal(t, int32(math.MinInt32), pgconv.IntToInt32(math.MinInt32-1))
}
