package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/workforcehq/workforce-backend-go/internal/domain/schedule"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleColumns = `
	id, schedule_id, week, date, employee_ref, employee_name, shift_ref,
	shift_name, department_ref, created_by, created_at, updated_at`

func scanAssignment(row pgx.Row) (schedule.Assignment, error) {
	var a schedule.Assignment
	err := row.Scan(
		&a.ID, &a.ScheduleID, &a.Week, &a.Date, &a.EmployeeRef, &a.EmployeeName, &a.ShiftRef,
		&a.ShiftName, &a.DepartmentRef, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements schedule.ScheduleRepository. A unique
// (employee_ref, date) index keeps one assignment per employee per day.
func (r *scheduleRepository) Create(ctx context.Context, a schedule.Assignment) (schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_assignments (
			schedule_id, week, date, employee_ref, employee_name,
			shift_ref, shift_name, department_ref, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ScheduleID, a.Week, a.Date, a.EmployeeRef, a.EmployeeName,
		a.ShiftRef, a.ShiftName, a.DepartmentRef, a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.Assignment{}, schedule.ErrDuplicateAssignment
		}
		return schedule.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}
	return a, nil
}

// GetByEmployeeAndDate implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByEmployeeAndDate(ctx context.Context, employeeRef string, date string) (*schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAssignment(q.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM schedule_assignments WHERE employee_ref = $1 AND date = $2`,
		employeeRef, date,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return &a, nil
}

// ListByWeek implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListByWeek(ctx context.Context, week string, departmentRef *string) ([]schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM schedule_assignments WHERE week = $1`
	args := []interface{}{week}
	if departmentRef != nil {
		query += ` AND department_ref = $2`
		args = append(args, *departmentRef)
	}
	query += ` ORDER BY date, employee_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list week assignments: %w", err)
	}
	defer rows.Close()

	var out []schedule.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListByEmployee implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListByEmployee(ctx context.Context, employeeRef string, week *string) ([]schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM schedule_assignments WHERE employee_ref = $1`
	args := []interface{}{employeeRef}
	if week != nil {
		query += ` AND week = $2`
		args = append(args, *week)
	}
	query += ` ORDER BY date`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee assignments: %w", err)
	}
	defer rows.Close()

	var out []schedule.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedule_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrAssignmentNotFound
	}
	return nil
}
