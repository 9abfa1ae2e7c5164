package ports

import (
	"context"

	"github.com/techchallenge/user-management/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employees.
// Lookups return domain.ErrEmployeeNotFound when nothing matches.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	// Delete removes the employee and reports how many records were affected.
	Delete(ctx context.Context, employee *domain.Employee) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	// GetAll returns a page ordered by id.
	GetAll(ctx context.Context, skip, take int) ([]domain.Employee, error)
}
