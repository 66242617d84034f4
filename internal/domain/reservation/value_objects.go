package reservation

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidStaySpan = errors.New("check-in date must be before the check-out date")

// DateLayout is the wire format for stay dates.
const DateLayout = "2006-01-02"

// StaySpan is the date interval of a stay: check-in up to check-out.
type StaySpan struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStaySpan(checkIn, checkOut time.Time) (StaySpan, error) {
	if !checkIn.Before(checkOut) {
		return StaySpan{}, ErrInvalidStaySpan
	}
	return StaySpan{
		checkIn:  checkIn,
		checkOut: checkOut,
	}, nil
}

func (s StaySpan) CheckIn() time.Time {
	return s.checkIn
}

func (s StaySpan) CheckOut() time.Time {
	return s.checkOut
}

func (s StaySpan) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Conflicts reports whether two spans collide on the same room. The
// comparisons are inclusive on both ends: a stay checking in on the day
// another checks out still counts as a conflict, so back-to-back bookings
// of the same room are not possible.
func (s StaySpan) Conflicts(other StaySpan) bool {
	onOrBefore := s.checkIn.Before(other.checkOut) || s.checkIn.Equal(other.checkOut)
	onOrAfter := s.checkOut.After(other.checkIn) || s.checkOut.Equal(other.checkIn)
	return onOrBefore && onOrAfter
}

// ShiftDays moves both ends of the span forward by the given number of days,
// preserving its length.
func (s StaySpan) ShiftDays(days int) StaySpan {
	return StaySpan{
		checkIn:  s.checkIn.AddDate(0, 0, days),
		checkOut: s.checkOut.AddDate(0, 0, days),
	}
}

func (s StaySpan) String() string {
	return fmt.Sprintf("[%s, %s]", s.checkIn.Format(DateLayout), s.checkOut.Format(DateLayout))
}
