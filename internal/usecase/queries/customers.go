package queries

import (
	"context"

	"hotel-booking/internal/domain/customer"
	"hotel-booking/internal/pkg/errs"
)

type CustomerQueries interface {
	Get(ctx context.Context, email string) (*CustomerView, error)
	List(ctx context.Context) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	directory CustomerReadStore
}

func NewCustomerQueries(directory CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{directory: directory}
}

func (q *customerQueriesImpl) Get(_ context.Context, email string) (*CustomerView, error) {
	cust := q.directory.Find(email)
	if cust == nil {
		return nil, errs.ErrCustomerNotFound
	}
	return toCustomerView(cust), nil
}

func (q *customerQueriesImpl) List(_ context.Context) ([]*CustomerView, error) {
	customers := q.directory.All()
	views := make([]*CustomerView, len(customers))
	for i, cust := range customers {
		views[i] = toCustomerView(cust)
	}
	return views, nil
}

func toCustomerView(cust *customer.Customer) *CustomerView {
	return &CustomerView{
		Email:     cust.Email().Value(),
		FirstName: cust.FirstName(),
		LastName:  cust.LastName(),
	}
}
