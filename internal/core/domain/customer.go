package domain

import "time"

// Customer is a person registered as a buyer. Only the CPF and email formats
// are enforced.
type Customer struct {
	Person
	ID        int64     `json:"id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCustomer builds a validated customer. An id of 0 means "not yet stored".
func NewCustomer(p Person, isActive bool, id int64) (Customer, error) {
	c := Customer{
		Person:    p,
		ID:        id,
		IsActive:  isActive,
		CreatedAt: now(),
	}
	if err := c.validate(); err != nil {
		return Customer{}, err
	}
	return c, nil
}

// Update returns a copy of c carrying the new values. c itself is never
// modified, so a failed update leaves the caller's value intact.
func (c Customer) Update(p Person, isActive bool) (Customer, error) {
	next := c
	next.Person = p
	next.IsActive = isActive
	next.UpdatedAt = now()
	if err := next.validate(); err != nil {
		return c, err
	}
	return next, nil
}

func (c Customer) validate() error {
	return check(c.cpfValid, c.emailValid)
}
