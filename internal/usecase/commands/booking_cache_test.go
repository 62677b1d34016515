//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra/cache"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedCatalogFixture struct {
	*bookingFixture
	redis   *miniredis.Miniredis
	catalog *cache.ItemCatalogCache
	items   commands.ItemCommands
}

func newCachedCatalogFixture(t *testing.T) *cachedCatalogFixture {
	t.Helper()
	f := newBookingFixture(t)

	m := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	catalog := cache.NewItemCatalogCache(f.store, client, time.Minute)
	f.uc = commands.NewBookingCommands(f.store, catalog, f.store, f.store.BookingReads(), f.clk)

	return &cachedCatalogFixture{
		bookingFixture: f,
		redis:          m,
		catalog:        catalog,
		items:          commands.NewItemCommands(f.store, f.store, catalog, f.clk),
	}
}

func (f *cachedCatalogFixture) request() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ItemID: f.itemID,
		Start:  baseTime.Add(time.Hour),
		End:    baseTime.Add(2 * time.Hour),
	}
}

func TestBookingCommands_Create_IgnoresStaleCachedAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidate fails after item is withdrawn", func(t *testing.T) {
		f := newCachedCatalogFixture(t)

		snap, err := f.catalog.GetItemByID(ctx, f.itemID)
		require.NoError(t, err)
		require.True(t, snap.Available)

		unavailable := false
		f.redis.SetError("LOADING redis is loading the dataset in memory")
		err = f.items.Update(ctx, f.itemID, commands.UpdateItemRequest{Available: &unavailable}, f.ownerID)
		require.NoError(t, err)
		f.redis.SetError("")

		cached, err := f.catalog.GetItemByID(ctx, f.itemID)
		require.NoError(t, err)
		require.True(t, cached.Available, "cache should still hold the old snapshot")

		v, err := f.uc.Create(ctx, f.request(), f.renterID)

		require.Error(t, err)
		assert.Nil(t, v)
		assert.ErrorIs(t, err, booking.ErrItemNotAvailable)
		assert.ErrorIs(t, err, errs.ErrNotAvailable)
	})

	t.Run("snapshot written back after the update", func(t *testing.T) {
		f := newCachedCatalogFixture(t)

		unavailable := false
		err := f.items.Update(ctx, f.itemID, commands.UpdateItemRequest{Available: &unavailable}, f.ownerID)
		require.NoError(t, err)

		// a reader that loaded before the update writes its copy back late
		stale, err := json.Marshal(shared.ItemSnapshot{ID: f.itemID, OwnerID: f.ownerID, Name: "Drill", Available: true})
		require.NoError(t, err)
		require.NoError(t, f.redis.Set("shareit:item:"+f.itemID.String(), string(stale)))

		_, err = f.uc.Create(ctx, f.request(), f.renterID)

		assert.ErrorIs(t, err, errs.ErrNotAvailable)
	})

	t.Run("available item still books through the cache", func(t *testing.T) {
		f := newCachedCatalogFixture(t)

		_, err := f.catalog.GetItemByID(ctx, f.itemID)
		require.NoError(t, err)

		v, err := f.uc.Create(ctx, f.request(), f.renterID)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusWaiting.String(), v.Status)
	})
}
