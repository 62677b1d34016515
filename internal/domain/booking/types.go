package booking

import "shareit/internal/pkg/errs"

var (
	ErrInvalidTimeSlot  = errs.Wrap(errs.ErrInvalidState, "start time must be before end time")
	ErrAlreadyApproved  = errs.Wrap(errs.ErrInvalidState, "booking already approved")
	ErrNoBookings       = errs.Wrap(errs.ErrInvalidState, "no bookings")
	ErrBookingInFuture  = errs.Wrap(errs.ErrInvalidState, "booking in future")
	ErrItemNotAvailable = errs.Wrap(errs.ErrNotAvailable, "item is not available")
	ErrOwnItem          = errs.Wrap(errs.ErrNotFound, "item cannot be booked by its owner")
	ErrNotItemOwner     = errs.Wrap(errs.ErrNotFound, "booking status can be changed only by the item owner")
	ErrNotVisible       = errs.Wrap(errs.ErrNotFound, "user is neither the item owner nor the booker")
	ErrUnsupportedState = errs.Wrap(errs.ErrUnsupportedFilter, "Unknown state: UNSUPPORTED_STATUS")
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

// Outcome is what Decide did to a booking.
type Outcome string

const (
	OutcomeApproved  Outcome = "approved"
	OutcomeRejected  Outcome = "rejected"
	OutcomeUnchanged Outcome = "unchanged"
)

func (o Outcome) Changed() bool {
	return o != OutcomeUnchanged
}
