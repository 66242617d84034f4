// Package reservation holds the committed reservation record and the stay
// interval math that decides whether two stays collide.
package reservation

import (
	"hotel-booking/internal/domain/customer"
	"hotel-booking/internal/domain/room"
)

// Reservation binds one customer and one room to a stay span. It has no
// identity beyond its fields and is immutable once created. Customer and
// room are references owned by the directory and the catalog.
type Reservation struct {
	customer *customer.Customer
	room     *room.Room
	span     StaySpan
}

func NewReservation(cust *customer.Customer, rm *room.Room, span StaySpan) *Reservation {
	return &Reservation{
		customer: cust,
		room:     rm,
		span:     span,
	}
}

func (r *Reservation) Customer() *customer.Customer { return r.customer }
func (r *Reservation) Room() *room.Room             { return r.room }
func (r *Reservation) Span() StaySpan               { return r.span }
