//go:build unit

package builder

import (
	"time"

	"hotel-booking/internal/domain/reservation"
	reqdto "hotel-booking/internal/handler/dto/request"
)

type ReservationBuilder struct {
	Customer *CustomerBuilder
	Room     *RoomBuilder
	CheckIn  time.Time
	CheckOut time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		Customer: NewCustomerBuilder(),
		Room:     NewRoomBuilder(),
		CheckIn:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) BuildSpan() (reservation.StaySpan, error) {
	return reservation.NewStaySpan(b.CheckIn, b.CheckOut)
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	span, err := b.BuildSpan()
	if err != nil {
		return nil, err
	}

	cust, err := b.Customer.BuildDomain()
	if err != nil {
		return nil, err
	}

	rm, err := b.Room.BuildDomain()
	if err != nil {
		return nil, err
	}

	return reservation.NewReservation(cust, rm, span), nil
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CustomerEmail: b.Customer.Email,
		RoomNumber:    b.Room.Number,
		CheckIn:       b.CheckIn.Format(reservation.DateLayout),
		CheckOut:      b.CheckOut.Format(reservation.DateLayout),
	}
}
