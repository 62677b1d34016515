package shared

import (
	"context"

	"github.com/google/uuid"
)

// ItemCatalog is the booking core's only view of items.
type ItemCatalog interface {
	GetItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	// GetOwnedItemIDs returns one page of the owner's items in a stable order.
	GetOwnedItemIDs(ctx context.Context, ownerID uuid.UUID, page Page) ([]uuid.UUID, error)
}

type UserDirectory interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type ItemCacheInvalidator interface {
	Invalidate(ctx context.Context, itemID uuid.UUID) error
}
