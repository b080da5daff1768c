package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/workforcehq/workforce-backend-go/internal/domain/shift"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	id, shift_id, name, department_ref, department_name, start_time,
	end_time, standard_hours, is_overnight, is_active, created_by,
	created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.ShiftID, &s.Name, &s.DepartmentRef, &s.DepartmentName, &s.StartTime,
		&s.EndTime, &s.StandardHours, &s.IsOvernight, &s.IsActive, &s.CreatedBy,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			shift_id, name, department_ref, department_name, start_time,
			end_time, standard_hours, is_overnight, is_active, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ShiftID, s.Name, s.DepartmentRef, s.DepartmentName, s.StartTime,
		s.EndTime, s.StandardHours, s.IsOvernight, s.IsActive, s.CreatedBy,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanShift(q.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return s, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts SET
			name = $2,
			start_time = $3,
			end_time = $4,
			standard_hours = $5,
			is_overnight = $6,
			is_active = $7,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, s.ID, s.Name, s.StartTime, s.EndTime, s.StandardHours, s.IsOvernight, s.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// ListByDepartment implements shift.ShiftRepository.
func (r *shiftRepository) ListByDepartment(ctx context.Context, departmentRef string, activeOnly bool) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE department_ref = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY start_time`

	rows, err := q.Query(ctx, query, departmentRef)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var out []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DepartmentHasShifts implements shift.ShiftRepository.
func (r *shiftRepository) DepartmentHasShifts(ctx context.Context, departmentRef string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM shifts WHERE department_ref = $1 AND is_active = TRUE)`,
		departmentRef,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check department shifts: %w", err)
	}
	return exists, nil
}
