package itemrequest

import (
	"strings"
	"time"
	"unicode/utf8"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxDescriptionLength = 2000

var ErrInvalidDescription = errs.Wrap(errs.ErrValidation, "request description must be 1-2000 characters")

// ItemRequest asks the community for an item nobody lists yet. Owners answer
// by creating an item that references it.
type ItemRequest struct {
	id          uuid.UUID
	requesterID uuid.UUID
	description string
	createdAt   time.Time
}

func NewItemRequest(requesterID uuid.UUID, description string, now time.Time) (*ItemRequest, error) {
	d := strings.TrimSpace(description)
	if d == "" || utf8.RuneCountInString(d) > MaxDescriptionLength {
		return nil, ErrInvalidDescription
	}
	return &ItemRequest{
		id:          uuid.New(),
		requesterID: requesterID,
		description: d,
		createdAt:   now,
	}, nil
}

func (r *ItemRequest) ID() uuid.UUID          { return r.id }
func (r *ItemRequest) RequesterID() uuid.UUID { return r.requesterID }
func (r *ItemRequest) Description() string    { return r.description }
func (r *ItemRequest) CreatedAt() time.Time   { return r.createdAt }
