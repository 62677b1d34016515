package booking

import (
	"time"

	"shareit/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock clock.Clock
}

// ItemSpec is the slice of an item a booking needs to know about.
type ItemSpec struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	slot      TimeSlot
	status    Status
	version   int32
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(services *Services, item ItemSpec, bookerID uuid.UUID, slot TimeSlot) (*Booking, error) {
	if !item.Available {
		return nil, ErrItemNotAvailable
	}
	if item.OwnerID == bookerID {
		return nil, ErrOwnItem
	}

	now := services.Clock.Now()
	return &Booking{
		id:        uuid.New(),
		itemID:    item.ID,
		bookerID:  bookerID,
		slot:      slot,
		status:    StatusWaiting,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBooking(
	id, itemID, bookerID uuid.UUID,
	slot TimeSlot,
	status Status,
	version int32,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		slot:      slot,
		status:    status,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Decide applies an owner's verdict. Approval by anyone but the owner is
// reported as not found; rejection by anyone but the owner is ignored.
// An approved booking cannot be approved again but the owner may still reject it.
func (b *Booking) Decide(actorID, ownerID uuid.UUID, approve bool, now time.Time) (Outcome, error) {
	isOwner := actorID == ownerID

	if approve {
		if !isOwner {
			return OutcomeUnchanged, ErrNotItemOwner
		}
		if b.status == StatusApproved {
			return OutcomeUnchanged, ErrAlreadyApproved
		}
		b.transition(StatusApproved, now)
		return OutcomeApproved, nil
	}

	if !isOwner {
		return OutcomeUnchanged, nil
	}
	if b.status == StatusRejected {
		return OutcomeUnchanged, nil
	}
	b.transition(StatusRejected, now)
	return OutcomeRejected, nil
}

func (b *Booking) transition(to Status, now time.Time) {
	b.status = to
	b.updatedAt = now
}

// CanView reports whether actorID may see a booking made by bookerID on an
// item owned by ownerID.
func CanView(actorID, bookerID, ownerID uuid.UUID) bool {
	return actorID == bookerID || actorID == ownerID
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Slot() TimeSlot       { return b.slot }
func (b *Booking) Start() time.Time     { return b.slot.start }
func (b *Booking) End() time.Time       { return b.slot.end }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Version() int32       { return b.version }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
