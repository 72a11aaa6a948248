package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"employee-service/internal/domains/employee"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresRepository implements employee.Repository on top of pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new employee repository instance.
// Dependency injection pattern - receives the pool from the container.
func NewPostgresRepository(pool *pgxpool.Pool) employee.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

const employeeColumns = `
	id, employee_code, first_name,
	COALESCE(last_name, '')       AS last_name,
	date_of_birth, date_of_joining,
	COALESCE(department, '')      AS department,
	COALESCE(designation, '')     AS designation,
	email,
	COALESCE(phone_number, '')    AS phone_number,
	COALESCE(address, '')         AS address,
	COALESCE(city, '')            AS city,
	COALESCE(state, '')           AS state,
	COALESCE(postal_code, '')     AS postal_code,
	COALESCE(country, '')         AS country,
	COALESCE(employment_type, '') AS employment_type,
	salary, status`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID,
		&emp.EmployeeCode,
		&emp.FirstName,
		&emp.LastName,
		&emp.DateOfBirth,
		&emp.DateOfJoining,
		&emp.Department,
		&emp.Designation,
		&emp.Email,
		&emp.PhoneNumber,
		&emp.Address,
		&emp.City,
		&emp.State,
		&emp.PostalCode,
		&emp.Country,
		&emp.EmploymentType,
		&emp.Salary,
		&emp.Status,
	)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// FindAll retrieves every employee record.
func (r *postgresRepository) FindAll(ctx context.Context) ([]*employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*employee.Employee

	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}

	return employees, nil
}

// FindByCode retrieves an employee by business code. Absence returns (nil, nil).
func (r *postgresRepository) FindByCode(ctx context.Context, code string) (*employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_code = $1`

	emp, err := scanEmployee(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return emp, nil
}

// Save inserts a new record when the id is zero, otherwise replaces the
// stored record wholesale. The internal id never changes once assigned.
func (r *postgresRepository) Save(ctx context.Context, emp *employee.Employee) (*employee.Employee, error) {
	if emp.ID == uuid.Nil {
		emp.ID = uuid.New()
	}

	query := `
		INSERT INTO employees (
			id, employee_code, first_name, last_name, date_of_birth, date_of_joining,
			department, designation, email, phone_number, address, city, state,
			postal_code, country, employment_type, salary, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			employee_code   = EXCLUDED.employee_code,
			first_name      = EXCLUDED.first_name,
			last_name       = EXCLUDED.last_name,
			date_of_birth   = EXCLUDED.date_of_birth,
			date_of_joining = EXCLUDED.date_of_joining,
			department      = EXCLUDED.department,
			designation     = EXCLUDED.designation,
			email           = EXCLUDED.email,
			phone_number    = EXCLUDED.phone_number,
			address         = EXCLUDED.address,
			city            = EXCLUDED.city,
			state           = EXCLUDED.state,
			postal_code     = EXCLUDED.postal_code,
			country         = EXCLUDED.country,
			employment_type = EXCLUDED.employment_type,
			salary          = EXCLUDED.salary,
			status          = EXCLUDED.status
		RETURNING ` + employeeColumns

	row := r.pool.QueryRow(ctx, query,
		emp.ID, emp.EmployeeCode, emp.FirstName, nullable(emp.LastName),
		emp.DateOfBirth, emp.DateOfJoining,
		nullable(emp.Department), nullable(emp.Designation), emp.Email,
		nullable(emp.PhoneNumber), nullable(emp.Address), nullable(emp.City),
		nullable(emp.State), nullable(emp.PostalCode), nullable(emp.Country),
		nullable(emp.EmploymentType), emp.Salary, emp.Status,
	)

	saved, err := scanEmployee(row)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			if strings.Contains(err.Error(), "employees_email_key") {
				return nil, employee.ErrDuplicateEmail
			}
			return nil, employee.ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: %v", employee.ErrDatabaseQuery, err)
	}

	return saved, nil
}

// Delete removes an employee record by internal id.
func (r *postgresRepository) Delete(ctx context.Context, emp *employee.Employee) error {
	query := `DELETE FROM employees WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, emp.ID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if result.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// nullable maps empty strings to NULL so optional columns stay unset
// instead of holding empty strings.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
