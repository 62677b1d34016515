package booking

import (
	"strings"
	"time"
)

// State is a list filter. The temporal states are evaluated against an instant.
type State string

const (
	StateAll      State = "ALL"
	StateFuture   State = "FUTURE"
	StatePast     State = "PAST"
	StateCurrent  State = "CURRENT"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

func (s State) String() string {
	return string(s)
}

func ParseState(s string) (State, error) {
	st := State(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StateAll, StateFuture, StatePast, StateCurrent, StateWaiting, StateRejected:
		return st, nil
	default:
		return "", ErrUnsupportedState
	}
}

// Filter is the predicate set a store evaluates. Nil fields do not constrain.
type Filter struct {
	Status     *Status
	StartAfter *time.Time // start > t
	EndBefore  *time.Time // end < t
	ActiveAt   *time.Time // start < t AND end > t
}

func (s State) Filter(now time.Time) Filter {
	switch s {
	case StateFuture:
		return Filter{StartAfter: &now}
	case StatePast:
		return Filter{EndBefore: &now}
	case StateCurrent:
		return Filter{ActiveAt: &now}
	case StateWaiting:
		st := StatusWaiting
		return Filter{Status: &st}
	case StateRejected:
		st := StatusRejected
		return Filter{Status: &st}
	default:
		return Filter{}
	}
}

func (f Filter) Matches(start, end time.Time, status Status) bool {
	if f.Status != nil && status != *f.Status {
		return false
	}
	if f.StartAfter != nil && !start.After(*f.StartAfter) {
		return false
	}
	if f.EndBefore != nil && !end.Before(*f.EndBefore) {
		return false
	}
	if f.ActiveAt != nil && !(start.Before(*f.ActiveAt) && end.After(*f.ActiveAt)) {
		return false
	}
	return true
}

func (s State) Matches(b *Booking, now time.Time) bool {
	return s.Filter(now).Matches(b.Start(), b.End(), b.Status())
}
