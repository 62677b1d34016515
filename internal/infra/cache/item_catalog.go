package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"shareit/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const itemKeyPrefix = "shareit:item:"

// ItemCatalogCache keeps item snapshots in redis in front of another catalog.
// Redis failures degrade to the source; they are logged, never returned.
type ItemCatalogCache struct {
	source shared.ItemCatalog
	client *redis.Client
	ttl    time.Duration
}

func NewItemCatalogCache(source shared.ItemCatalog, client *redis.Client, ttl time.Duration) *ItemCatalogCache {
	return &ItemCatalogCache{
		source: source,
		client: client,
		ttl:    ttl,
	}
}

func itemKey(id uuid.UUID) string {
	return itemKeyPrefix + id.String()
}

func (c *ItemCatalogCache) GetItemByID(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	raw, err := c.client.Get(ctx, itemKey(id)).Bytes()
	switch {
	case err == nil:
		var snap shared.ItemSnapshot
		if jsonErr := json.Unmarshal(raw, &snap); jsonErr == nil {
			return &snap, nil
		}
		slog.WarnContext(ctx, "discarding malformed cached item", "item_id", id)
	case !errors.Is(err, redis.Nil):
		slog.WarnContext(ctx, "item cache read failed", "item_id", id, "error", err)
	}

	snap, err := c.source.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(snap)
	if err == nil {
		err = c.client.Set(ctx, itemKey(id), data, c.ttl).Err()
	}
	if err != nil {
		slog.WarnContext(ctx, "item cache write failed", "item_id", id, "error", err)
	}
	return snap, nil
}

func (c *ItemCatalogCache) GetOwnedItemIDs(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]uuid.UUID, error) {
	return c.source.GetOwnedItemIDs(ctx, ownerID, page)
}

func (c *ItemCatalogCache) Invalidate(ctx context.Context, itemID uuid.UUID) error {
	if err := c.client.Del(ctx, itemKey(itemID)).Err(); err != nil {
		return errors.Wrapf(err, "failed to invalidate cached item %s", itemID)
	}
	return nil
}

// NopInvalidator is used when the cache is disabled.
type NopInvalidator struct{}

func (NopInvalidator) Invalidate(context.Context, uuid.UUID) error { return nil }
