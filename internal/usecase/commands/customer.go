package commands

import (
	"context"

	"hotel-booking/internal/domain/customer"
	"hotel-booking/internal/pkg/errs"
)

type CustomerCommands interface {
	// Create registers a new customer. Identity validation happens in the
	// domain constructor; a known email is rejected, never overwritten.
	Create(ctx context.Context, email, firstName, lastName string) (*customer.Customer, error)
}

type customerCommandsImpl struct {
	directory CustomerDirectory
}

func NewCustomerCommands(directory CustomerDirectory) CustomerCommands {
	return &customerCommandsImpl{directory: directory}
}

func (c *customerCommandsImpl) Create(_ context.Context, email, firstName, lastName string) (*customer.Customer, error) {
	cust, err := customer.NewCustomer(email, firstName, lastName)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if !c.directory.Add(cust) {
		return nil, errs.ErrDuplicateCustomerEmail
	}
	return cust, nil
}
