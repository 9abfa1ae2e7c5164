package ports

import (
	"context"

	"github.com/techchallenge/user-management/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
// Lookups return domain.ErrCustomerNotFound when nothing matches.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Customer, error)
}
