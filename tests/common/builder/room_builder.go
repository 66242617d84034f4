//go:build unit

package builder

import (
	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/commands"
)

type RoomBuilder struct {
	Number string
	Price  float64
	Type   string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Number: "101",
		Price:  150,
		Type:   "double",
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithNumber(number string) *RoomBuilder {
	b.Number = number
	return b
}

func (b *RoomBuilder) WithPrice(price float64) *RoomBuilder {
	b.Price = price
	return b
}

func (b *RoomBuilder) WithType(roomType string) *RoomBuilder {
	b.Type = roomType
	return b
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(b.Number, b.Price, b.Type)
}

func (b *RoomBuilder) BuildInput() commands.RoomInput {
	return commands.RoomInput{
		Number: b.Number,
		Price:  b.Price,
		Type:   b.Type,
	}
}

func (b *RoomBuilder) BuildAddRequestDTO() reqdto.AddRoomInput {
	return reqdto.AddRoomInput{
		Number: b.Number,
		Price:  b.Price,
		Type:   b.Type,
	}
}
