package booking

import "time"

// TimeSlot is a half-open rental window; start is strictly before end.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

// ReconstructTimeSlot skips validation for rows already persisted.
func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) StartsAfter(t time.Time) bool {
	return ts.start.After(t)
}

func (ts TimeSlot) EndsBefore(t time.Time) bool {
	return ts.end.Before(t)
}

// Spans reports start < t < end. Both boundaries are exclusive.
func (ts TimeSlot) Spans(t time.Time) bool {
	return ts.start.Before(t) && ts.end.After(t)
}
