package memstore

import (
	"errors"
	"sync"

	"hotel-booking/internal/domain/customer"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
)

// ErrConflict is returned by Reserve when the requested span overlaps an
// existing reservation for the same room.
var ErrConflict = errors.New("reservation conflict")

// ReservationLedger is the append-only record of committed reservations.
// A single lock serializes writes; Reserve re-checks availability and
// appends inside the same critical section, so two racing bookings for an
// overlapping window cannot both succeed. Reads return snapshots and may
// observe state that is stale by the time the caller looks at it.
type ReservationLedger struct {
	mu           sync.RWMutex
	reservations []*reservation.Reservation
}

func NewReservationLedger() *ReservationLedger {
	return &ReservationLedger{}
}

// Reserve commits a reservation if the room is still free for the span.
func (l *ReservationLedger) Reserve(cust *customer.Customer, rm *room.Room, span reservation.StaySpan) (*reservation.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.isAvailableLocked(rm, span) {
		return nil, ErrConflict
	}

	res := reservation.NewReservation(cust, rm, span)
	l.reservations = append(l.reservations, res)
	return res, nil
}

// IsAvailable reports whether no committed reservation for the room
// conflicts with the span.
func (l *ReservationLedger) IsAvailable(rm *room.Room, span reservation.StaySpan) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.isAvailableLocked(rm, span)
}

func (l *ReservationLedger) isAvailableLocked(rm *room.Room, span reservation.StaySpan) bool {
	for _, res := range l.reservations {
		if res.Room().Equal(rm) && span.Conflicts(res.Span()) {
			return false
		}
	}
	return true
}

// ByCustomer returns all reservations held by the customer, in commit order.
// A customer with no reservations gets an empty slice.
func (l *ReservationLedger) ByCustomer(cust *customer.Customer) []*reservation.Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	matched := make([]*reservation.Reservation, 0)
	for _, res := range l.reservations {
		if res.Customer().Equal(cust) {
			matched = append(matched, res)
		}
	}
	return matched
}

// All returns a snapshot of every committed reservation in commit order.
func (l *ReservationLedger) All() []*reservation.Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	all := make([]*reservation.Reservation, len(l.reservations))
	copy(all, l.reservations)
	return all
}
