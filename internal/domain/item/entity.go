package item

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        Name
	description Description
	available   bool
	requestID   *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(ownerID uuid.UUID, name Name, description Description, available bool, requestID *uuid.UUID, now time.Time) *Item {
	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructItem(
	id, ownerID uuid.UUID,
	name Name,
	description Description,
	available bool,
	requestID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

type Patch struct {
	Name        *Name
	Description *Description
	Available   *bool
}

// Apply updates the fields set in p. Only the owner may change an item; anyone
// else gets a not-found error.
func (i *Item) Apply(actorID uuid.UUID, p Patch, now time.Time) error {
	if actorID != i.ownerID {
		return ErrNotOwner
	}
	if p.Name != nil {
		i.name = *p.Name
	}
	if p.Description != nil {
		i.description = *p.Description
	}
	if p.Available != nil {
		i.available = *p.Available
	}
	i.updatedAt = now
	return nil
}

func (i *Item) ID() uuid.UUID            { return i.id }
func (i *Item) OwnerID() uuid.UUID       { return i.ownerID }
func (i *Item) Name() Name               { return i.name }
func (i *Item) Description() Description { return i.description }
func (i *Item) Available() bool          { return i.available }
func (i *Item) RequestID() *uuid.UUID    { return i.requestID }
func (i *Item) CreatedAt() time.Time     { return i.createdAt }
func (i *Item) UpdatedAt() time.Time     { return i.updatedAt }
