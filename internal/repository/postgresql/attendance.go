package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, attendance_id, employee_ref, employee_display_id, employee_name,
	department_ref, department_name, shift_ref, shift_name, date,
	entry_time, exit_time, work_duration_minutes, regular_hours,
	overtime_hours, total_hours, status, is_corrected, corrected_by,
	correction_reason, overtime_approved_by, overtime_reason, marked_by,
	created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.AttendanceID, &att.EmployeeRef, &att.EmployeeDisplayID, &att.EmployeeName,
		&att.DepartmentRef, &att.DepartmentName, &att.ShiftRef, &att.ShiftName, &att.Date,
		&att.EntryTime, &att.ExitTime, &att.WorkDurationMinutes, &att.RegularHours,
		&att.OvertimeHours, &att.TotalHours, &att.Status, &att.IsCorrected, &att.CorrectedBy,
		&att.CorrectionReason, &att.OvertimeApprovedBy, &att.OvertimeReason, &att.MarkedBy,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository. The table carries a
// unique (employee_ref, date) index, so two concurrent marks for the
// same day cannot both insert.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			attendance_id, employee_ref, employee_display_id, employee_name,
			department_ref, department_name, shift_ref, shift_name, date,
			entry_time, status, is_corrected, corrected_by, correction_reason,
			marked_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.AttendanceID,
		att.EmployeeRef,
		att.EmployeeDisplayID,
		att.EmployeeName,
		att.DepartmentRef,
		att.DepartmentName,
		att.ShiftRef,
		att.ShiftName,
		att.Date,
		att.EntryTime,
		att.Status,
		att.IsCorrected,
		att.CorrectedBy,
		att.CorrectionReason,
		att.MarkedBy,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrEntryAlreadyMarked
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeRef string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_ref = $1 AND date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeRef, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}
	return &att, nil
}

// Update implements attendance.AttendanceRepository. The (employee_ref,
// date) key is never touched here.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			entry_time = $2,
			exit_time = $3,
			work_duration_minutes = $4,
			regular_hours = $5,
			overtime_hours = $6,
			total_hours = $7,
			status = $8,
			is_corrected = $9,
			corrected_by = $10,
			correction_reason = $11,
			overtime_approved_by = $12,
			overtime_reason = $13,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.EntryTime,
		att.ExitTime,
		att.WorkDurationMinutes,
		att.RegularHours,
		att.OvertimeHours,
		att.TotalHours,
		att.Status,
		att.IsCorrected,
		att.CorrectedBy,
		att.CorrectionReason,
		att.OvertimeApprovedBy,
		att.OvertimeReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeRef != nil {
		query += fmt.Sprintf(" AND employee_ref = $%d", argPos)
		args = append(args, *filter.EmployeeRef)
		argPos++
	}
	if filter.DepartmentRef != nil {
		query += fmt.Sprintf(" AND department_ref = $%d", argPos)
		args = append(args, *filter.DepartmentRef)
		argPos++
	}
	if filter.Date != nil {
		query += fmt.Sprintf(" AND date = $%d", argPos)
		args = append(args, *filter.Date)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var out []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		out = append(out, att)
	}
	return out, rows.Err()
}

// ListRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRange(ctx context.Context, employeeRef string, startDate, endDate string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_ref = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC`

	rows, err := q.Query(ctx, query, employeeRef, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	var out []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		out = append(out, att)
	}
	return out, rows.Err()
}

// MonthlySummary implements attendance.AttendanceRepository.
func (a *attendanceRepository) MonthlySummary(ctx context.Context, employeeRef string, year int, month int) (attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, a.db)

	startDate := fmt.Sprintf("%04d-%02d-01", year, month)
	endDate := fmt.Sprintf("%04d-%02d-31", year, month)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'present'),
			COUNT(*) FILTER (WHERE status = 'absent'),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COALESCE(SUM(overtime_hours) FILTER (WHERE status = 'present'), 0)
		FROM attendances
		WHERE employee_ref = $1 AND date >= $2 AND date <= $3
	`

	var summary attendance.MonthlySummary
	err := q.QueryRow(ctx, query, employeeRef, startDate, endDate).Scan(
		&summary.TotalRecords,
		&summary.DaysPresent,
		&summary.DaysAbsent,
		&summary.DaysPending,
		&summary.OvertimeHours,
	)
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to compute monthly summary: %w", err)
	}
	return summary, nil
}

// DisplayIDExists implements attendance.AttendanceRepository.
func (a *attendanceRepository) DisplayIDExists(ctx context.Context, displayID string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendances WHERE attendance_id = $1)`, displayID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance ID: %w", err)
	}
	return exists, nil
}
