package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/techchallenge/user-management/internal/core/domain"
)

const customerColumns = `id, cpf, name, surname, email, birth_date, is_active, created_at, updated_at`

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	const query = `
        INSERT INTO customers (cpf, name, surname, email, birth_date, is_active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + customerColumns

	row := r.pool.QueryRow(ctx, query,
		c.CPF, c.Name, c.Surname, c.Email, nullableTime(c.BirthDate), c.IsActive, c.CreatedAt,
	)
	created, err := scanCustomer(row)
	if err != nil {
		return nil, translate(err, domain.ErrCustomerNotFound)
	}
	return created, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	const query = `
        UPDATE customers
        SET cpf=$1, name=$2, surname=$3, email=$4, birth_date=$5, is_active=$6, updated_at=$7
        WHERE id=$8
        RETURNING ` + customerColumns

	row := r.pool.QueryRow(ctx, query,
		c.CPF, c.Name, c.Surname, c.Email, nullableTime(c.BirthDate), c.IsActive, nullableTime(c.UpdatedAt), c.ID,
	)
	updated, err := scanCustomer(row)
	if err != nil {
		return nil, translate(err, domain.ErrCustomerNotFound)
	}
	return updated, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id=$1`, id)
	c, err := scanCustomer(row)
	if err != nil {
		return nil, translate(err, domain.ErrCustomerNotFound)
	}
	return c, nil
}

func (r *CustomerRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE cpf=$1`, cpf)
	c, err := scanCustomer(row)
	if err != nil {
		return nil, translate(err, domain.ErrCustomerNotFound)
	}
	return c, nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var (
		c         domain.Customer
		birthDate *time.Time
		updatedAt *time.Time
	)
	if err := row.Scan(
		&c.ID,
		&c.CPF,
		&c.Name,
		&c.Surname,
		&c.Email,
		&birthDate,
		&c.IsActive,
		&c.CreatedAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	c.BirthDate = fromNullable(birthDate)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = fromNullable(updatedAt)
	return &c, nil
}
