package memstore

import (
	"sort"
	"sync"

	"hotel-booking/internal/domain/customer"
)

// CustomerDirectory holds known customers, unique by email.
type CustomerDirectory struct {
	mu        sync.RWMutex
	customers map[string]*customer.Customer
}

func NewCustomerDirectory() *CustomerDirectory {
	return &CustomerDirectory{
		customers: make(map[string]*customer.Customer),
	}
}

// Add inserts the customer and reports whether the email was previously
// unknown.
func (d *CustomerDirectory) Add(c *customer.Customer) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := c.Email().Value()
	if _, exists := d.customers[key]; exists {
		return false
	}
	d.customers[key] = c
	return true
}

// Find returns the customer with the given email, or nil when absent.
func (d *CustomerDirectory) Find(email string) *customer.Customer {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.customers[email]
}

// All returns a snapshot of the directory sorted by email.
func (d *CustomerDirectory) All() []*customer.Customer {
	d.mu.RLock()
	defer d.mu.RUnlock()

	customers := make([]*customer.Customer, 0, len(d.customers))
	for _, c := range d.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].Email().Value() < customers[j].Email().Value()
	})
	return customers
}
