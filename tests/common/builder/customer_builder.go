//go:build unit

package builder

import (
	"hotel-booking/internal/domain/customer"
	reqdto "hotel-booking/internal/handler/dto/request"
)

type CustomerBuilder struct {
	Email     string
	FirstName string
	LastName  string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		Email:     "guest@example.com",
		FirstName: "Grace",
		LastName:  "Hopper",
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	b.Email = email
	return b
}

func (b *CustomerBuilder) WithFirstName(name string) *CustomerBuilder {
	b.FirstName = name
	return b
}

func (b *CustomerBuilder) WithLastName(name string) *CustomerBuilder {
	b.LastName = name
	return b
}

func (b *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	return customer.NewCustomer(b.Email, b.FirstName, b.LastName)
}

func (b *CustomerBuilder) BuildCreateRequestDTO() reqdto.CreateCustomerRequest {
	return reqdto.CreateCustomerRequest{
		Email:     b.Email,
		FirstName: b.FirstName,
		LastName:  b.LastName,
	}
}
