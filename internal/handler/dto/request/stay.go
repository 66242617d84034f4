package request

import (
	"errors"
	"time"

	"hotel-booking/internal/domain/reservation"
)

var (
	ErrBadDateFormat = errors.New("dates must use the YYYY-MM-DD format")
	ErrPastDate      = errors.New("check-in and check-out dates must not be in the past")
)

// ParseStay turns the wire dates into a validated stay span. Past dates are
// rejected here at the request boundary; the engine itself accepts any
// window so historical state can be queried and tested.
func ParseStay(checkIn, checkOut string, now time.Time) (reservation.StaySpan, error) {
	in, err := time.Parse(reservation.DateLayout, checkIn)
	if err != nil {
		return reservation.StaySpan{}, ErrBadDateFormat
	}

	out, err := time.Parse(reservation.DateLayout, checkOut)
	if err != nil {
		return reservation.StaySpan{}, ErrBadDateFormat
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if in.Before(today) || out.Before(today) {
		return reservation.StaySpan{}, ErrPastDate
	}

	return reservation.NewStaySpan(in, out)
}
