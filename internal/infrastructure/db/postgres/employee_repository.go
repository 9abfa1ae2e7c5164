package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/techchallenge/user-management/internal/core/domain"
)

const employeeColumns = `id, cpf, name, surname, email, birth_date, password, role, is_active, created_at, updated_at`

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	const query = `
        INSERT INTO employees (cpf, name, surname, email, birth_date, password, role, is_active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + employeeColumns

	row := r.pool.QueryRow(ctx, query,
		e.CPF, e.Name, e.Surname, e.Email, e.BirthDate, e.PasswordHash, e.Role.String(), e.IsActive, e.CreatedAt,
	)
	created, err := scanEmployee(row)
	if err != nil {
		return nil, translate(err, domain.ErrEmployeeNotFound)
	}
	return created, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	const query = `
        UPDATE employees
        SET cpf=$1, name=$2, surname=$3, email=$4, birth_date=$5, password=$6, role=$7, is_active=$8, updated_at=$9
        WHERE id=$10
        RETURNING ` + employeeColumns

	row := r.pool.QueryRow(ctx, query,
		e.CPF, e.Name, e.Surname, e.Email, e.BirthDate, e.PasswordHash, e.Role.String(), e.IsActive,
		nullableTime(e.UpdatedAt), e.ID,
	)
	updated, err := scanEmployee(row)
	if err != nil {
		return nil, translate(err, domain.ErrEmployeeNotFound)
	}
	return updated, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, e *domain.Employee) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id=$1`, e.ID)
	if err != nil {
		return 0, fmt.Errorf("delete employee: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id=$1`, id)
	e, err := scanEmployee(row)
	if err != nil {
		return nil, translate(err, domain.ErrEmployeeNotFound)
	}
	return e, nil
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE LOWER(email)=LOWER($1)`, email)
	e, err := scanEmployee(row)
	if err != nil {
		return nil, translate(err, domain.ErrEmployeeNotFound)
	}
	return e, nil
}

func (r *EmployeeRepository) GetAll(ctx context.Context, skip, take int) ([]domain.Employee, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY id LIMIT $1 OFFSET $2`, take, skip)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0, take)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var (
		e         domain.Employee
		role      string
		updatedAt *time.Time
	)
	if err := row.Scan(
		&e.ID,
		&e.CPF,
		&e.Name,
		&e.Surname,
		&e.Email,
		&e.BirthDate,
		&e.PasswordHash,
		&role,
		&e.IsActive,
		&e.CreatedAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	e.Role = domain.Role(role)
	e.BirthDate = e.BirthDate.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = fromNullable(updatedAt)
	return &e, nil
}
