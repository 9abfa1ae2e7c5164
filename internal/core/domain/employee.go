package domain

import "time"

// Employee is a staff member able to authenticate against the API.
// PasswordHash is opaque to the entity; it is never derived here.
type Employee struct {
	Person
	ID           int64     `json:"id"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EmployeeFields is the set of values a caller supplies on create and update.
type EmployeeFields struct {
	Person
	Password string
	Role     Role
	IsActive bool
}

// NewEmployee builds a validated employee. An id of 0 means "not yet stored".
func NewEmployee(f EmployeeFields, id int64) (Employee, error) {
	e := Employee{ID: id, CreatedAt: now()}
	e.assign(f)
	if err := e.validate(); err != nil {
		return Employee{}, err
	}
	return e, nil
}

// Update returns a copy of e carrying f. The password is stored as given.
func (e Employee) Update(f EmployeeFields) (Employee, error) {
	next := e
	next.assign(f)
	next.UpdatedAt = now()
	if err := next.validate(); err != nil {
		return e, err
	}
	return next, nil
}

// WithPassword replaces the stored hash without validation.
func (e Employee) WithPassword(hash string) Employee {
	e.PasswordHash = hash
	return e
}

func (e *Employee) assign(f EmployeeFields) {
	e.Person = f.Person
	e.PasswordHash = f.Password
	e.Role = f.Role
	e.IsActive = f.IsActive
}

func (e Employee) validate() error {
	return check(
		e.cpfPresent,
		e.cpfValid,
		e.namePresent,
		e.surnamePresent,
		e.emailPresent,
		e.emailValid,
		e.birthDateSet,
		e.passwordPresent,
	)
}

func (e Employee) passwordPresent() error {
	if e.PasswordHash == "" {
		return ErrPasswordEmpty
	}
	return nil
}
