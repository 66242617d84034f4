package queries

import "time"

// Read models (DTO for read side)

type RoomView struct {
	Number string  `json:"number"`
	Price  float64 `json:"price"`
	Type   string  `json:"type"`
	Free   bool    `json:"free"`
}

type CustomerView struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ReservationView struct {
	RoomNumber    string    `json:"room_number"`
	RoomType      string    `json:"room_type"`
	RoomPrice     float64   `json:"room_price"`
	CustomerEmail string    `json:"customer_email"`
	CustomerName  string    `json:"customer_name"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
}

// SearchResult carries the window the rooms were actually found in:
// the requested one, or the shifted one when the engine fell back to a
// recommendation.
type SearchResult struct {
	Rooms       []*RoomView `json:"rooms"`
	CheckIn     time.Time   `json:"check_in"`
	CheckOut    time.Time   `json:"check_out"`
	Recommended bool        `json:"recommended"`
}
