package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/techchallenge/user-management/internal/core/domain"
)

// adminPasswordHash matches the hash seeded by the SQL migrations.
const adminPasswordHash = "QBYnGddxOZ/VOBgUr1koYDLMawbe/D8NaYYxOXQ0LHN8TO/ysQ5UvBZc70kbQkfXarxn+KobEuH7KpXkiElivg=="

// SeedAdmin inserts the default administrator when no employee uses its email yet.
func SeedAdmin(ctx context.Context, repo *EmployeeRepository, log zerolog.Logger) error {
	const email = "admin@admin.com"

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return err
	}

	admin := &domain.Employee{
		Person: domain.Person{
			CPF:       "98659502000",
			Name:      "Admin",
			Surname:   "Doe",
			Email:     email,
			BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		PasswordHash: adminPasswordHash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := repo.Create(ctx, admin)
	if errors.Is(err, domain.ErrDuplicate) {
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().Int64("employee_id", created.ID).Msg("default admin seeded")
	return nil
}
