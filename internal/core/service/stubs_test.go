package service

import (
	"context"
	"sort"

	"github.com/techchallenge/user-management/internal/core/domain"
)

type stubCustomerRepo struct {
	customers   map[int64]*domain.Customer
	nextID      int64
	updateCalls int
	err         error
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[int64]*domain.Customer), nextID: 1}
}

func cloneCustomer(c *domain.Customer) *domain.Customer {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, existing := range r.customers {
		if existing.CPF == c.CPF {
			return nil, domain.ErrDuplicate
		}
	}
	stored := cloneCustomer(c)
	stored.ID = r.nextID
	r.nextID++
	r.customers[stored.ID] = stored
	return cloneCustomer(stored), nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	r.updateCalls++
	if _, ok := r.customers[c.ID]; !ok {
		return nil, domain.ErrCustomerNotFound
	}
	r.customers[c.ID] = cloneCustomer(c)
	return cloneCustomer(c), nil
}

func (r *stubCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return cloneCustomer(c), nil
}

func (r *stubCustomerRepo) GetByCPF(_ context.Context, cpf string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.CPF == cpf {
			return cloneCustomer(c), nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

type stubEmployeeRepo struct {
	employees   map[int64]*domain.Employee
	nextID      int64
	createCalls int
	updateCalls int
	deleteCalls int
	deleteCount int64
	lastSkip    int
	lastTake    int
	getAllNil   bool
	err         error
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[int64]*domain.Employee), nextID: 1, deleteCount: 1}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubEmployeeRepo) seed(e domain.Employee) *domain.Employee {
	e.ID = r.nextID
	r.nextID++
	r.employees[e.ID] = cloneEmployee(&e)
	return cloneEmployee(&e)
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	r.createCalls++
	if r.err != nil {
		return nil, r.err
	}
	return r.seed(*e), nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	r.updateCalls++
	r.employees[e.ID] = cloneEmployee(e)
	return cloneEmployee(e), nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, e *domain.Employee) (int64, error) {
	r.deleteCalls++
	delete(r.employees, e.ID)
	return r.deleteCount, nil
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	if r.err != nil {
		return nil, r.err
	}
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return cloneEmployee(e), nil
}

func (r *stubEmployeeRepo) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, e := range r.employees {
		if e.Email == email {
			return cloneEmployee(e), nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) GetAll(_ context.Context, skip, take int) ([]domain.Employee, error) {
	r.lastSkip, r.lastTake = skip, take
	if r.getAllNil {
		return nil, nil
	}

	ids := make([]int64, 0, len(r.employees))
	for id := range r.employees {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []domain.Employee{}
	for i := skip; i < len(ids) && len(out) < take; i++ {
		out = append(out, *r.employees[ids[i]])
	}
	return out, nil
}

type stubHasher struct {
	calls int
}

func (h *stubHasher) Hash(plaintext string) string {
	h.calls++
	return "hashed:" + plaintext
}
