package ports

import (
	"context"
	"time"
)

type CustomerRequest struct {
	CPF       string    `json:"cpf"        validate:"max=14"`
	Name      string    `json:"name"       validate:"max=100"`
	Surname   string    `json:"surname"    validate:"max=100"`
	Email     string    `json:"email"      validate:"max=100"`
	BirthDate Date      `json:"birth_date" swaggertype:"string" example:"1990-05-01"`
}

type CustomerUpdate struct {
	ID        int64     `json:"id"`
	CPF       string    `json:"cpf"        validate:"max=14"`
	Name      string    `json:"name"       validate:"max=100"`
	Surname   string    `json:"surname"    validate:"max=100"`
	Email     string    `json:"email"      validate:"max=100"`
	BirthDate Date      `json:"birth_date" swaggertype:"string" example:"1990-05-01"`
	IsActive  bool      `json:"is_active"`
}

// CustomerResponse is returned by every customer operation. When Error is set
// the remaining fields are empty and ErrorMessage explains the failure.
type CustomerResponse struct {
	ID           int64     `json:"id"`
	CPF          string    `json:"cpf"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Email        string    `json:"email"`
	BirthDate    time.Time `json:"birth_date"`
	IsActive     bool      `json:"is_active"`
	Error        bool      `json:"error"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

// CustomerService is the application boundary for customers. Get operations
// return (nil, nil) when the customer does not exist.
type CustomerService interface {
	Create(ctx context.Context, req CustomerRequest) (*CustomerResponse, error)
	Update(ctx context.Context, req CustomerUpdate) (*CustomerResponse, error)
	GetByID(ctx context.Context, id int64) (*CustomerResponse, error)
	GetByCPF(ctx context.Context, cpf string) (*CustomerResponse, error)
}
