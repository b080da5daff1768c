package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, employee_id, first_name, last_name, email, phone, password_hash,
	role, job_role, department_ref, department_name, shift_ref, shift_name,
	monthly_salary, hourly_rate, overtime_eligible, overtime_multiplier,
	overtime_rate, joining_date, is_active, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone, &emp.PasswordHash,
		&emp.Role, &emp.JobRole, &emp.DepartmentRef, &emp.DepartmentName, &emp.ShiftRef, &emp.ShiftName,
		&emp.MonthlySalary, &emp.HourlyRate, &emp.OvertimeEligible, &emp.OvertimeMultiplier,
		&emp.OvertimeRate, &emp.JoiningDate, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_id, first_name, last_name, email, phone, password_hash,
			role, job_role, department_ref, department_name, shift_ref, shift_name,
			monthly_salary, hourly_rate, overtime_eligible, overtime_multiplier,
			overtime_rate, joining_date, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeID, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.PasswordHash,
		emp.Role, emp.JobRole, emp.DepartmentRef, emp.DepartmentName, emp.ShiftRef, emp.ShiftName,
		emp.MonthlySalary, emp.HourlyRate, emp.OvertimeEligible, emp.OvertimeMultiplier,
		emp.OvertimeRate, emp.JoiningDate, emp.IsActive,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			first_name = $2,
			last_name = $3,
			phone = $4,
			job_role = $5,
			department_ref = $6,
			department_name = $7,
			shift_ref = $8,
			shift_name = $9,
			monthly_salary = $10,
			hourly_rate = $11,
			overtime_eligible = $12,
			overtime_multiplier = $13,
			overtime_rate = $14,
			is_active = $15,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.Phone, emp.JobRole,
		emp.DepartmentRef, emp.DepartmentName, emp.ShiftRef, emp.ShiftName,
		emp.MonthlySalary, emp.HourlyRate, emp.OvertimeEligible,
		emp.OvertimeMultiplier, emp.OvertimeRate, emp.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.DepartmentRef != nil {
		query += fmt.Sprintf(" AND department_ref = $%d", argPos)
		args = append(args, *filter.DepartmentRef)
		argPos++
	}
	if filter.Role != nil {
		query += fmt.Sprintf(" AND role = $%d", argPos)
		args = append(args, *filter.Role)
		argPos++
	}
	if filter.IsActive != nil {
		query += fmt.Sprintf(" AND is_active = $%d", argPos)
		args = append(args, *filter.IsActive)
		argPos++
	}
	if filter.Search != nil {
		query += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", argPos, argPos, argPos)
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY employee_id LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var out []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

// ListActiveByDepartment implements employee.EmployeeRepository.
func (r *employeeRepository) ListActiveByDepartment(ctx context.Context, departmentRef string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE department_ref = $1 AND is_active = TRUE
		ORDER BY employee_id`

	rows, err := q.Query(ctx, query, departmentRef)
	if err != nil {
		return nil, fmt.Errorf("failed to list department employees: %w", err)
	}
	defer rows.Close()

	var out []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

// EmailExists implements employee.EmployeeRepository.
func (r *employeeRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// CountActiveByDepartment implements employee.EmployeeRepository.
func (r *employeeRepository) CountActiveByDepartment(ctx context.Context, departmentRef string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE department_ref = $1 AND is_active = TRUE`,
		departmentRef,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count department employees: %w", err)
	}
	return count, nil
}
