package room

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidType       = errors.New("invalid room type")
	ErrInvalidSearchType = errors.New("invalid room search type")
)

type Type string

const (
	TypeSingle Type = "single"
	TypeDouble Type = "double"
)

func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return TypeSingle, nil
	case "double":
		return TypeDouble, nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeSingle, TypeDouble:
		return true
	default:
		return false
	}
}

// SearchType selects which price class of rooms a search should return.
type SearchType string

const (
	SearchFree SearchType = "free"
	SearchPaid SearchType = "paid"
	SearchBoth SearchType = "both"
)

func ParseSearchType(s string) (SearchType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free":
		return SearchFree, nil
	case "paid":
		return SearchPaid, nil
	case "both":
		return SearchBoth, nil
	default:
		return "", ErrInvalidSearchType
	}
}

func (s SearchType) String() string {
	return string(s)
}

// Matches reports whether the room belongs to the search class. An
// unrecognized SearchType is a programming error, not user input, so it
// panics rather than returning an error.
func (s SearchType) Matches(r *Room) bool {
	switch s {
	case SearchFree:
		return r.IsFree()
	case SearchPaid:
		return !r.IsFree()
	case SearchBoth:
		return true
	default:
		panic(fmt.Sprintf("unknown room search type: %q", string(s)))
	}
}
