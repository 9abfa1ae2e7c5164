package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/techchallenge/user-management/internal/core/domain"
	"github.com/techchallenge/user-management/internal/core/ports"
	"github.com/techchallenge/user-management/internal/metrics"
)

const (
	msgEmployeeNotFound = "Employee not found."
	validationPrefix    = "Message: "

	defaultTake = 10
)

// EmployeeManager orchestrates employee use cases. Unlike CustomerManager it
// converts entity validation failures into error responses.
type EmployeeManager struct {
	repo   ports.EmployeeRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewEmployeeManager(repo ports.EmployeeRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *EmployeeManager {
	return &EmployeeManager{repo: repo, hasher: hasher, logger: logger}
}

// Create validates the request with the plaintext password, then stores the
// keyed hash in its place.
func (m *EmployeeManager) Create(ctx context.Context, req ports.EmployeeRequest) (*ports.EmployeeResponse, error) {
	employee, err := domain.NewEmployee(domain.EmployeeFields{
		Person: domain.Person{
			CPF:       domain.NormalizeCPF(req.CPF),
			Name:      req.Name,
			Surname:   req.Surname,
			Email:     req.Email,
			BirthDate: req.BirthDate.Time,
		},
		Password: req.Password,
		Role:     req.Role,
		IsActive: true,
	}, 0)
	if err != nil {
		return m.rejected(err)
	}

	employee = employee.WithPassword(m.hasher.Hash(req.Password))

	created, err := m.repo.Create(ctx, &employee)
	if err != nil {
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues(metrics.EntityEmployee).Inc()
	m.logger.Info().Int64("employee_id", created.ID).Str("role", created.Role.String()).Msg("employee created")
	return toEmployeeResponse(created), nil
}

// Update applies the request to a stored employee. The password is kept
// exactly as supplied; it is not hashed here.
func (m *EmployeeManager) Update(ctx context.Context, req ports.EmployeeUpdate) (*ports.EmployeeResponse, error) {
	existing, err := m.repo.GetByID(ctx, req.ID)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		return &ports.EmployeeResponse{Error: true, ErrorMessage: msgEmployeeNotFound}, nil
	}
	if err != nil {
		return nil, err
	}

	updated, err := existing.Update(domain.EmployeeFields{
		Person: domain.Person{
			CPF:       domain.NormalizeCPF(req.CPF),
			Name:      req.Name,
			Surname:   req.Surname,
			Email:     req.Email,
			BirthDate: req.BirthDate.Time,
		},
		Password: req.Password,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		return m.rejected(err)
	}

	stored, err := m.repo.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	m.logger.Info().Int64("employee_id", stored.ID).Msg("employee updated")
	return toEmployeeResponse(stored), nil
}

// Delete returns 0 without touching storage when the employee is unknown.
func (m *EmployeeManager) Delete(ctx context.Context, id int64) (int64, error) {
	existing, err := m.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	n, err := m.repo.Delete(ctx, existing)
	if err != nil {
		return 0, err
	}

	m.logger.Info().Int64("employee_id", id).Int64("affected", n).Msg("employee deleted")
	return n, nil
}

// GetAll lists a page of employees. A negative skip starts at the beginning
// and a non-positive take uses the default page size.
func (m *EmployeeManager) GetAll(ctx context.Context, skip, take int) ([]ports.EmployeeResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if take <= 0 {
		take = defaultTake
	}

	employees, err := m.repo.GetAll(ctx, skip, take)
	if err != nil {
		return nil, err
	}

	out := make([]ports.EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, *toEmployeeResponse(&employees[i]))
	}
	return out, nil
}

// GetByID returns (nil, nil) when the employee does not exist.
func (m *EmployeeManager) GetByID(ctx context.Context, id int64) (*ports.EmployeeResponse, error) {
	employee, err := m.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// rejected turns a validation failure into an error response. Any other
// error is returned unchanged.
func (m *EmployeeManager) rejected(err error) (*ports.EmployeeResponse, error) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return nil, err
	}

	metrics.ValidationFailuresTotal.WithLabelValues(metrics.EntityEmployee, string(ve.Kind)).Inc()
	m.logger.Debug().Str("kind", string(ve.Kind)).Msg("employee rejected")
	return &ports.EmployeeResponse{
		Error:        true,
		ErrorMessage: validationPrefix + ve.Error(),
	}, nil
}

func toEmployeeResponse(e *domain.Employee) *ports.EmployeeResponse {
	return &ports.EmployeeResponse{
		ID:        e.ID,
		CPF:       e.CPF,
		Name:      e.Name,
		Surname:   e.Surname,
		Email:     e.Email,
		BirthDate: e.BirthDate,
		Role:      e.Role,
		IsActive:  e.IsActive,
	}
}
