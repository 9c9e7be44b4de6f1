package postgresql

import (
	"context"
	"fmt"

	"github.com/hriscore/payroll-engine-go/internal/domain/employee"
	"github.com/hriscore/payroll-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, code, first_name, last_name, gender, marital_status, children,
	country, state, department, job_position, hire_date, is_active,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Code, &e.FirstName, &e.LastName, &e.Gender, &e.MaritalStatus, &e.Children,
		&e.Country, &e.State, &e.Department, &e.JobPosition, &e.HireDate, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) GetActiveByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active = true AND id = ANY($1) ORDER BY last_name, first_name`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepository) GetAllActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active = true ORDER BY last_name, first_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
