package attendance

import (
	"context"
)

// AttendanceRepository defines data access for attendance records.
// The storage layer enforces a unique (employee_ref, date) key; Create
// must surface a violation as ErrEntryAlreadyMarked so concurrent marks
// for the same day cannot both succeed.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeRef string, date string) (*Attendance, error)

	Update(ctx context.Context, att Attendance) error

	List(ctx context.Context, filter Filter) ([]Attendance, error)

	// ListRange returns records for an employee between two dates
	// inclusive, newest first.
	ListRange(ctx context.Context, employeeRef string, startDate, endDate string) ([]Attendance, error)

	MonthlySummary(ctx context.Context, employeeRef string, year int, month int) (MonthlySummary, error)

	DisplayIDExists(ctx context.Context, displayID string) (bool, error)
}
