package request

import (
	"strings"
	"time"

	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required,notpast"`
	End    time.Time `json:"end" binding:"required,notpast"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ItemID: r.ItemID,
		Start:  r.Start,
		End:    r.End,
	}
}

// DecideBookingQuery binds ?approved=. A pointer so that a missing value fails "required".
type DecideBookingQuery struct {
	Approved *bool `form:"approved" binding:"required"`
}

type BookingListQuery struct {
	State string `form:"state,default=ALL"`
	PageQuery
}

// StateOrAll treats an empty ?state= like an absent one.
func (q BookingListQuery) StateOrAll() string {
	if strings.TrimSpace(q.State) == "" {
		return "ALL"
	}
	return q.State
}
