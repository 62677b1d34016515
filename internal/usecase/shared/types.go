package shared

import (
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

const DefaultPageLimit = 20

var ErrInvalidPage = errs.Wrap(errs.ErrValidation, "from must be >= 0 and size must be > 0")

// Page is an offset window. Offset counts rows, not pages.
type Page struct {
	Offset int
	Limit  int
}

func NewPage(offset, limit int) (Page, error) {
	if offset < 0 || limit <= 0 {
		return Page{}, ErrInvalidPage
	}
	return Page{Offset: offset, Limit: limit}, nil
}

func DefaultPage() Page {
	return Page{Offset: 0, Limit: DefaultPageLimit}
}

// Write-side snapshots keep commands independent of the read-side view types.
type ItemSnapshot struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Available bool
}

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ItemRequestSnapshot struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
}
