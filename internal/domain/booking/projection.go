package booking

import "time"

// LastNext scans bookings ordered by start ascending. next is the first one
// starting after now and last is its predecessor. When nothing starts after
// now both are nil; there is no fallback to the latest past booking.
func LastNext(ascending []*Booking, now time.Time) (last, next *Booking) {
	for i, b := range ascending {
		if b.slot.StartsAfter(now) {
			if i > 0 {
				last = ascending[i-1]
			}
			return last, b
		}
	}
	return nil, nil
}

// CheckCommentEligibility expects the renter's non-rejected bookings of one
// item. Every one of them must have ended before now.
func CheckCommentEligibility(bookings []*Booking, now time.Time) error {
	if len(bookings) == 0 {
		return ErrNoBookings
	}
	for _, b := range bookings {
		if b.slot.end.After(now) {
			return ErrBookingInFuture
		}
	}
	return nil
}
