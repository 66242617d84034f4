// Package customer holds the guest entity. Identity is the email address.
package customer

import "strings"

type Customer struct {
	email     Email
	firstName string
	lastName  string
}

func NewCustomer(email, firstName, lastName string) (*Customer, error) {
	em, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return nil, ErrEmptyFirstName
	}

	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return nil, ErrEmptyLastName
	}

	return &Customer{
		email:     em,
		firstName: firstName,
		lastName:  lastName,
	}, nil
}

func (c *Customer) Email() Email      { return c.email }
func (c *Customer) FirstName() string { return c.firstName }
func (c *Customer) LastName() string  { return c.lastName }

func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

// Equal compares by email only.
func (c *Customer) Equal(other *Customer) bool {
	if other == nil {
		return false
	}
	return c.email.Value() == other.email.Value()
}
