package request

type SearchRoomsRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	// Type is one of free, paid, both.
	Type string `json:"type" binding:"required"`
}

type AddRoomInput struct {
	Number string  `json:"number" binding:"required"`
	Price  float64 `json:"price"`
	Type   string  `json:"type" binding:"required"`
}

type AddRoomsRequest struct {
	Rooms []AddRoomInput `json:"rooms" binding:"required,min=1,dive"`
}
