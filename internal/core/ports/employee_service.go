package ports

import (
	"context"
	"time"

	"github.com/techchallenge/user-management/internal/core/domain"
)

type EmployeeRequest struct {
	CPF       string      `json:"cpf"        validate:"max=14"`
	Name      string      `json:"name"       validate:"max=100"`
	Surname   string      `json:"surname"    validate:"max=100"`
	Email     string      `json:"email"      validate:"max=100"`
	BirthDate Date        `json:"birth_date" swaggertype:"string" example:"1990-05-01"`
	Password  string      `json:"password"   validate:"max=255"`
	Role      domain.Role `json:"role"       validate:"required,oneof=Admin Manager Attendant"`
}

type EmployeeUpdate struct {
	ID        int64       `json:"id"`
	CPF       string      `json:"cpf"        validate:"max=14"`
	Name      string      `json:"name"       validate:"max=100"`
	Surname   string      `json:"surname"    validate:"max=100"`
	Email     string      `json:"email"      validate:"max=100"`
	BirthDate Date        `json:"birth_date" swaggertype:"string" example:"1990-05-01"`
	Password  string      `json:"password"   validate:"max=255"`
	Role      domain.Role `json:"role"       validate:"required,oneof=Admin Manager Attendant"`
	IsActive  bool        `json:"is_active"`
}

// EmployeeResponse never carries the password hash.
type EmployeeResponse struct {
	ID           int64       `json:"id"`
	CPF          string      `json:"cpf"`
	Name         string      `json:"name"`
	Surname      string      `json:"surname"`
	Email        string      `json:"email"`
	BirthDate    time.Time   `json:"birth_date"`
	Role         domain.Role `json:"role"`
	IsActive     bool        `json:"is_active"`
	Error        bool        `json:"error"`
	ErrorMessage string      `json:"error_message,omitempty"`
}

// EmployeeService is the application boundary for employees.
type EmployeeService interface {
	Create(ctx context.Context, req EmployeeRequest) (*EmployeeResponse, error)
	Update(ctx context.Context, req EmployeeUpdate) (*EmployeeResponse, error)
	Delete(ctx context.Context, id int64) (int64, error)
	GetAll(ctx context.Context, skip, take int) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (*EmployeeResponse, error)
}
