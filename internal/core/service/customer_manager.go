package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/techchallenge/user-management/internal/core/domain"
	"github.com/techchallenge/user-management/internal/core/ports"
	"github.com/techchallenge/user-management/internal/metrics"
)

const msgCustomerNotFound = "Customer not found."

// CustomerManager orchestrates customer use cases. Entity validation errors
// are returned to the caller as-is; only a missing customer on update is
// reported through the response.
type CustomerManager struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerManager(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerManager {
	return &CustomerManager{repo: repo, logger: logger}
}

func (m *CustomerManager) Create(ctx context.Context, req ports.CustomerRequest) (*ports.CustomerResponse, error) {
	customer, err := domain.NewCustomer(domain.Person{
		CPF:       domain.NormalizeCPF(req.CPF),
		Name:      req.Name,
		Surname:   req.Surname,
		Email:     req.Email,
		BirthDate: req.BirthDate.Time,
	}, true, 0)
	if err != nil {
		countValidationFailure(metrics.EntityCustomer, err)
		return nil, err
	}

	created, err := m.repo.Create(ctx, &customer)
	if err != nil {
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues(metrics.EntityCustomer).Inc()
	m.logger.Info().Int64("customer_id", created.ID).Msg("customer created")
	return toCustomerResponse(created), nil
}

func (m *CustomerManager) Update(ctx context.Context, req ports.CustomerUpdate) (*ports.CustomerResponse, error) {
	existing, err := m.repo.GetByID(ctx, req.ID)
	if errors.Is(err, domain.ErrCustomerNotFound) {
		return &ports.CustomerResponse{Error: true, ErrorMessage: msgCustomerNotFound}, nil
	}
	if err != nil {
		return nil, err
	}

	updated, err := existing.Update(domain.Person{
		CPF:       domain.NormalizeCPF(req.CPF),
		Name:      req.Name,
		Surname:   req.Surname,
		Email:     req.Email,
		BirthDate: req.BirthDate.Time,
	}, req.IsActive)
	if err != nil {
		countValidationFailure(metrics.EntityCustomer, err)
		return nil, err
	}

	stored, err := m.repo.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	m.logger.Info().Int64("customer_id", stored.ID).Msg("customer updated")
	return toCustomerResponse(stored), nil
}

// GetByID returns (nil, nil) when the customer does not exist.
func (m *CustomerManager) GetByID(ctx context.Context, id int64) (*ports.CustomerResponse, error) {
	return m.find(m.repo.GetByID(ctx, id))
}

// GetByCPF returns (nil, nil) when no customer holds the CPF.
func (m *CustomerManager) GetByCPF(ctx context.Context, cpf string) (*ports.CustomerResponse, error) {
	return m.find(m.repo.GetByCPF(ctx, domain.NormalizeCPF(cpf)))
}

func (m *CustomerManager) find(customer *domain.Customer, err error) (*ports.CustomerResponse, error) {
	if errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func toCustomerResponse(c *domain.Customer) *ports.CustomerResponse {
	return &ports.CustomerResponse{
		ID:        c.ID,
		CPF:       c.CPF,
		Name:      c.Name,
		Surname:   c.Surname,
		Email:     c.Email,
		BirthDate: c.BirthDate,
		IsActive:  c.IsActive,
	}
}

// countValidationFailure records err by kind when it is an entity validation
// failure.
func countValidationFailure(entity string, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		metrics.ValidationFailuresTotal.WithLabelValues(entity, string(ve.Kind)).Inc()
	}
}
