package room

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidNumber = errors.New("room number must be a positive integer")
	ErrNegativePrice = errors.New("room price must be zero or positive")
)

// Number identifies a room. It is kept as the string the caller supplied,
// but must render a positive integer.
type Number struct {
	value string
}

func NewNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return Number{}, ErrInvalidNumber
	}
	return Number{value: s}, nil
}

func (n Number) Value() string {
	return n.value
}

func (n Number) Int() int {
	v, _ := strconv.Atoi(n.value)
	return v
}

// Price of a room per stay. Zero means the room is complimentary.
type Price struct {
	value float64
}

func NewPrice(v float64) (Price, error) {
	if v < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{value: v}, nil
}

func (p Price) Value() float64 {
	return p.value
}

func (p Price) IsFree() bool {
	return p.value == 0
}
