package response

import (
	"hotel-booking/internal/domain/customer"
	"hotel-booking/internal/usecase/queries"
)

type CustomerResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func FromCustomerView(view *queries.CustomerView) *CustomerResponse {
	return &CustomerResponse{
		Email:     view.Email,
		FirstName: view.FirstName,
		LastName:  view.LastName,
	}
}

func FromCustomer(cust *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		Email:     cust.Email().Value(),
		FirstName: cust.FirstName(),
		LastName:  cust.LastName(),
	}
}
