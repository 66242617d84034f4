package queries

import (
	"context"

	"hotel-booking/internal/domain/customer"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/pkg/errs"
)

type ReservationReadStore interface {
	ByCustomer(cust *customer.Customer) []*reservation.Reservation
	All() []*reservation.Reservation
}

type CustomerReadStore interface {
	Find(email string) *customer.Customer
	All() []*customer.Customer
}

type ReservationQueries interface {
	// ListByCustomer returns the customer's reservations in commit order.
	// A customer with no reservations gets an empty slice, not an error;
	// an unknown email is an error.
	ListByCustomer(ctx context.Context, email string) ([]*ReservationView, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	ledger    ReservationReadStore
	directory CustomerReadStore
}

func NewReservationQueries(ledger ReservationReadStore, directory CustomerReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		ledger:    ledger,
		directory: directory,
	}
}

func (q *reservationQueriesImpl) ListByCustomer(_ context.Context, email string) ([]*ReservationView, error) {
	cust := q.directory.Find(email)
	if cust == nil {
		return nil, errs.ErrCustomerNotFound
	}
	return toReservationViews(q.ledger.ByCustomer(cust)), nil
}

func (q *reservationQueriesImpl) ListAll(_ context.Context) ([]*ReservationView, error) {
	return toReservationViews(q.ledger.All()), nil
}

func toReservationViews(reservations []*reservation.Reservation) []*ReservationView {
	views := make([]*ReservationView, len(reservations))
	for i, res := range reservations {
		views[i] = &ReservationView{
			RoomNumber:    res.Room().Number().Value(),
			RoomType:      res.Room().Type().String(),
			RoomPrice:     res.Room().Price().Value(),
			CustomerEmail: res.Customer().Email().Value(),
			CustomerName:  res.Customer().FullName(),
			CheckIn:       res.Span().CheckIn(),
			CheckOut:      res.Span().CheckOut(),
		}
	}
	return views
}
