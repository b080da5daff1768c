package attendance

import (
	"time"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPresent, StatusAbsent, StatusHalfDay:
		return true
	}
	return false
}

// Work duration bounds enforced at exit and correction time.
const (
	MinWorkMinutes = 30
	MaxWorkMinutes = 1440
)

// Attendance is one record per (employee, calendar date). Employee,
// department and shift names are snapshots taken at mark time; they go
// stale when the directory changes and that is intentional.
type Attendance struct {
	ID           string
	AttendanceID string // display ID, ATT_XXXXXX

	EmployeeRef       string
	EmployeeDisplayID string
	EmployeeName      string
	DepartmentRef     string
	DepartmentName    string
	ShiftRef          *string
	ShiftName         *string

	// Date is the wall-clock calendar date of the entry timestamp,
	// "YYYY-MM-DD". It is the record's key together with EmployeeRef and
	// never changes after creation, even when entry/exit are corrected.
	Date string

	EntryTime *time.Time
	ExitTime  *time.Time

	WorkDurationMinutes *int
	RegularHours        *float64
	OvertimeHours       *float64
	TotalHours          *float64

	Status Status

	IsCorrected      bool
	CorrectedBy      *string
	CorrectionReason *string

	OvertimeApprovedBy *string
	OvertimeReason     *string

	MarkedBy  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthlySummary is the reduction the salary projection consumes.
type MonthlySummary struct {
	TotalRecords  int
	DaysPresent   int
	DaysAbsent    int
	DaysPending   int
	OvertimeHours float64
}
