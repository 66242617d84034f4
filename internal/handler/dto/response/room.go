package response

import (
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/usecase/queries"
)

type RoomResponse struct {
	Number string  `json:"number"`
	Price  float64 `json:"price"`
	Type   string  `json:"type"`
	Free   bool    `json:"free"`
}

type SearchRoomsResponse struct {
	Rooms       []*RoomResponse `json:"rooms"`
	CheckIn     string          `json:"checkIn"`
	CheckOut    string          `json:"checkOut"`
	Recommended bool            `json:"recommended"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		Number: view.Number,
		Price:  view.Price,
		Type:   view.Type,
		Free:   view.Free,
	}
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	rooms := make([]*RoomResponse, len(views))
	for i, view := range views {
		rooms[i] = FromRoomView(view)
	}
	return rooms
}

func FromSearchResult(result *queries.SearchResult) *SearchRoomsResponse {
	return &SearchRoomsResponse{
		Rooms:       FromRoomViews(result.Rooms),
		CheckIn:     result.CheckIn.Format(reservation.DateLayout),
		CheckOut:    result.CheckOut.Format(reservation.DateLayout),
		Recommended: result.Recommended,
	}
}
