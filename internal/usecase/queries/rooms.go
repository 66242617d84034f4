package queries

import (
	"context"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/errs"
)

type RoomReadStore interface {
	Find(number string) *room.Room
	All() []*room.Room
}

type AvailabilityReadStore interface {
	IsAvailable(rm *room.Room, span reservation.StaySpan) bool
}

type RoomQueries interface {
	Get(ctx context.Context, number string) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	// Search returns every available room matching the search type. When
	// the requested window yields nothing, it retries exactly once with
	// both dates shifted forward by the configured offset; if that window
	// is also empty, the result is empty with the original window.
	Search(ctx context.Context, span reservation.StaySpan, searchType room.SearchType) (*SearchResult, error)
}

type roomQueriesImpl struct {
	catalog      RoomReadStore
	availability AvailabilityReadStore
	offsetDays   int
}

func NewRoomQueries(catalog RoomReadStore, availability AvailabilityReadStore, offsetDays int) RoomQueries {
	return &roomQueriesImpl{
		catalog:      catalog,
		availability: availability,
		offsetDays:   offsetDays,
	}
}

func (q *roomQueriesImpl) Get(_ context.Context, number string) (*RoomView, error) {
	rm := q.catalog.Find(number)
	if rm == nil {
		return nil, errs.ErrRoomNotFound
	}
	return toRoomView(rm), nil
}

func (q *roomQueriesImpl) List(_ context.Context) ([]*RoomView, error) {
	rooms := q.catalog.All()
	views := make([]*RoomView, len(rooms))
	for i, rm := range rooms {
		views[i] = toRoomView(rm)
	}
	return views, nil
}

func (q *roomQueriesImpl) Search(_ context.Context, span reservation.StaySpan, searchType room.SearchType) (*SearchResult, error) {
	if rooms := q.availableRooms(span, searchType); len(rooms) > 0 {
		return &SearchResult{
			Rooms:    rooms,
			CheckIn:  span.CheckIn(),
			CheckOut: span.CheckOut(),
		}, nil
	}

	shifted := span.ShiftDays(q.offsetDays)
	if rooms := q.availableRooms(shifted, searchType); len(rooms) > 0 {
		return &SearchResult{
			Rooms:       rooms,
			CheckIn:     shifted.CheckIn(),
			CheckOut:    shifted.CheckOut(),
			Recommended: true,
		}, nil
	}

	return &SearchResult{
		Rooms:    []*RoomView{},
		CheckIn:  span.CheckIn(),
		CheckOut: span.CheckOut(),
	}, nil
}

func (q *roomQueriesImpl) availableRooms(span reservation.StaySpan, searchType room.SearchType) []*RoomView {
	var views []*RoomView
	for _, rm := range q.catalog.All() {
		if q.availability.IsAvailable(rm, span) && searchType.Matches(rm) {
			views = append(views, toRoomView(rm))
		}
	}
	return views
}

func toRoomView(rm *room.Room) *RoomView {
	return &RoomView{
		Number: rm.Number().Value(),
		Price:  rm.Price().Value(),
		Type:   rm.Type().String(),
		Free:   rm.IsFree(),
	}
}
