package attendance

import (
	"strings"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type MarkEntryRequest struct {
	EmployeeRef      string  `json:"employee_id"`
	EntryTime        string  `json:"entry_time"` // RFC3339
	CorrectionReason *string `json:"correction_reason,omitempty"`
}

func (r *MarkEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeRef) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDateTime(r.EntryTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "entry_time", Message: "entry_time must be an ISO8601 timestamp"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkExitRequest struct {
	EmployeeRef    string  `json:"employee_id"`
	ExitTime       string  `json:"exit_time"` // RFC3339
	OvertimeReason *string `json:"overtime_reason,omitempty"`
}

func (r *MarkExitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeRef) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDateTime(r.ExitTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "exit_time", Message: "exit_time must be an ISO8601 timestamp"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CorrectionRequest struct {
	Reason    string  `json:"reason"`
	EntryTime *string `json:"entry_time,omitempty"` // RFC3339
	ExitTime  *string `json:"exit_time,omitempty"`  // RFC3339
	Status    *string `json:"status,omitempty"`
}

func (r *CorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(strings.TrimSpace(r.Reason)) < 10 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required and must be at least 10 characters"})
	}
	if r.EntryTime != nil {
		if _, ok := validator.IsValidDateTime(*r.EntryTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "entry_time", Message: "entry_time must be an ISO8601 timestamp"})
		}
	}
	if r.ExitTime != nil {
		if _, ok := validator.IsValidDateTime(*r.ExitTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "exit_time", Message: "exit_time must be an ISO8601 timestamp"})
		}
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: pending, present, absent, half_day"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	EmployeeRef   *string
	DepartmentRef *string
	Date          *string // YYYY-MM-DD
	Status        *string
	StartDate     *string
	EndDate       *string
	Limit         int
	Offset        int
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be a positive number"})
	}
	if f.Limit == 0 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must not exceed 200"})
	}
	if f.Offset < 0 {
		errs = append(errs, validator.ValidationError{Field: "offset", Message: "offset must not be negative"})
	}
	if f.Status != nil && !Status(*f.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: pending, present, absent, half_day"})
	}
	for field, v := range map[string]*string{"date": f.Date, "start_date": f.StartDate, "end_date": f.EndDate} {
		if v != nil {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be YYYY-MM-DD"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID                  string   `json:"id"`
	AttendanceID        string   `json:"attendance_id"`
	EmployeeRef         string   `json:"employee_id"`
	EmployeeDisplayID   string   `json:"employee_display_id"`
	EmployeeName        string   `json:"employee_name"`
	DepartmentRef       string   `json:"department_id"`
	DepartmentName      string   `json:"department_name"`
	ShiftRef            *string  `json:"shift_id,omitempty"`
	ShiftName           *string  `json:"shift_name,omitempty"`
	Date                string   `json:"date"`
	EntryTime           *string  `json:"entry_time,omitempty"`
	ExitTime            *string  `json:"exit_time,omitempty"`
	WorkDurationMinutes *int     `json:"work_duration_minutes,omitempty"`
	RegularHours        *float64 `json:"regular_hours,omitempty"`
	OvertimeHours       *float64 `json:"overtime_hours,omitempty"`
	TotalHours          *float64 `json:"total_hours,omitempty"`
	Status              string   `json:"status"`
	IsCorrected         bool     `json:"is_corrected"`
	CorrectedBy         *string  `json:"corrected_by,omitempty"`
	CorrectionReason    *string  `json:"correction_reason,omitempty"`
	OvertimeApprovedBy  *string  `json:"overtime_approved_by,omitempty"`
	OvertimeReason      *string  `json:"overtime_reason,omitempty"`
	MarkedBy            string   `json:"marked_by"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

type SummaryResponse struct {
	TotalRecords  int     `json:"total_records"`
	DaysPresent   int     `json:"days_present"`
	DaysAbsent    int     `json:"days_absent"`
	DaysPending   int     `json:"days_pending"`
	OvertimeHours float64 `json:"overtime_hours"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                  a.ID,
		AttendanceID:        a.AttendanceID,
		EmployeeRef:         a.EmployeeRef,
		EmployeeDisplayID:   a.EmployeeDisplayID,
		EmployeeName:        a.EmployeeName,
		DepartmentRef:       a.DepartmentRef,
		DepartmentName:      a.DepartmentName,
		ShiftRef:            a.ShiftRef,
		ShiftName:           a.ShiftName,
		Date:                a.Date,
		EntryTime:           timePtrToString(a.EntryTime),
		ExitTime:            timePtrToString(a.ExitTime),
		WorkDurationMinutes: a.WorkDurationMinutes,
		RegularHours:        a.RegularHours,
		OvertimeHours:       a.OvertimeHours,
		TotalHours:          a.TotalHours,
		Status:              string(a.Status),
		IsCorrected:         a.IsCorrected,
		CorrectedBy:         a.CorrectedBy,
		CorrectionReason:    a.CorrectionReason,
		OvertimeApprovedBy:  a.OvertimeApprovedBy,
		OvertimeReason:      a.OvertimeReason,
		MarkedBy:            a.MarkedBy,
		CreatedAt:           a.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:           a.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
