package commands

import (
	"hotel-booking/internal/domain/customer"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
)

// Store interfaces are declared on the consumer side; memstore satisfies
// them.

type RoomCatalog interface {
	Add(r *room.Room) bool
	Find(number string) *room.Room
}

type CustomerDirectory interface {
	Add(c *customer.Customer) bool
	Find(email string) *customer.Customer
}

type ReservationLedger interface {
	Reserve(cust *customer.Customer, rm *room.Room, span reservation.StaySpan) (*reservation.Reservation, error)
}
