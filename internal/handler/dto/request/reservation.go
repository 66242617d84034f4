package request

type CreateReservationRequest struct {
	CustomerEmail string `json:"customer_email" binding:"required"`
	RoomNumber    string `json:"room_number" binding:"required"`
	CheckIn       string `json:"check_in" binding:"required"`
	CheckOut      string `json:"check_out" binding:"required"`
}
