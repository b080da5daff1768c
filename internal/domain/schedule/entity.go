package schedule

import "time"

// Assignment binds one employee to one shift on one calendar date,
// created in weekly batches.
type Assignment struct {
	ID            string
	ScheduleID    string // display ID, SCH20250610001
	Week          string // ISO week, "2025-W24"
	Date          string // YYYY-MM-DD
	EmployeeRef   string
	EmployeeName  string
	ShiftRef      string
	ShiftName     string
	DepartmentRef string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
