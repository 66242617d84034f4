package response

import (
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/usecase/queries"
)

type ReservationResponse struct {
	RoomNumber    string  `json:"roomNumber"`
	RoomType      string  `json:"roomType"`
	RoomPrice     float64 `json:"roomPrice"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerName  string  `json:"customerName"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
}

func FromReservation(res *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		RoomNumber:    res.Room().Number().Value(),
		RoomType:      res.Room().Type().String(),
		RoomPrice:     res.Room().Price().Value(),
		CustomerEmail: res.Customer().Email().Value(),
		CustomerName:  res.Customer().FullName(),
		CheckIn:       res.Span().CheckIn().Format(reservation.DateLayout),
		CheckOut:      res.Span().CheckOut().Format(reservation.DateLayout),
	}
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		RoomNumber:    view.RoomNumber,
		RoomType:      view.RoomType,
		RoomPrice:     view.RoomPrice,
		CustomerEmail: view.CustomerEmail,
		CustomerName:  view.CustomerName,
		CheckIn:       view.CheckIn.Format(reservation.DateLayout),
		CheckOut:      view.CheckOut.Format(reservation.DateLayout),
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	reservations := make([]*ReservationResponse, len(views))
	for i, view := range views {
		reservations[i] = FromReservationView(view)
	}
	return reservations
}
