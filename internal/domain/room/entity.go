// Package room holds the bookable room entity. A room is immutable after
// construction and its identity is the room number alone.
package room

type Room struct {
	number   Number
	price    Price
	roomType Type
}

func NewRoom(number string, price float64, roomType string) (*Room, error) {
	num, err := NewNumber(number)
	if err != nil {
		return nil, err
	}

	prc, err := NewPrice(price)
	if err != nil {
		return nil, err
	}

	typ, err := ParseType(roomType)
	if err != nil {
		return nil, err
	}

	return &Room{
		number:   num,
		price:    prc,
		roomType: typ,
	}, nil
}

func (r *Room) Number() Number { return r.number }
func (r *Room) Price() Price   { return r.price }
func (r *Room) Type() Type     { return r.roomType }

func (r *Room) IsFree() bool {
	return r.price.IsFree()
}

// Equal compares by room number only. Two rooms with the same number are the
// same entity regardless of price or type.
func (r *Room) Equal(other *Room) bool {
	if other == nil {
		return false
	}
	return r.number.Value() == other.number.Value()
}
