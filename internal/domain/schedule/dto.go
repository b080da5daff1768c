package schedule

import (
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type AssignmentInput struct {
	EmployeeRef string   `json:"employee_id"`
	ShiftRef    string   `json:"shift_id"`
	Dates       []string `json:"dates"` // YYYY-MM-DD, each within the week
}

type CreateWeeklyScheduleRequest struct {
	Week          string            `json:"week"` // ISO week, "2025-W24"
	DepartmentRef string            `json:"department_id"`
	Assignments   []AssignmentInput `json:"assignments"`
}

func (r *CreateWeeklyScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidISOWeek(r.Week) {
		errs = append(errs, validator.ValidationError{Field: "week", Message: "week must be an ISO week like 2025-W24"})
	}
	if validator.IsEmpty(r.DepartmentRef) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if len(r.Assignments) == 0 {
		errs = append(errs, validator.ValidationError{Field: "assignments", Message: "at least one assignment is required"})
	}
	for _, a := range r.Assignments {
		if validator.IsEmpty(a.EmployeeRef) || validator.IsEmpty(a.ShiftRef) || len(a.Dates) == 0 {
			errs = append(errs, validator.ValidationError{Field: "assignments", Message: "each assignment needs employee_id, shift_id and dates"})
			break
		}
		for _, d := range a.Dates {
			if _, ok := validator.IsValidDate(d); !ok {
				errs = append(errs, validator.ValidationError{Field: "assignments", Message: "assignment dates must be YYYY-MM-DD"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID            string `json:"id"`
	ScheduleID    string `json:"schedule_id"`
	Week          string `json:"week"`
	Date          string `json:"date"`
	EmployeeRef   string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	ShiftRef      string `json:"shift_id"`
	ShiftName     string `json:"shift_name"`
	DepartmentRef string `json:"department_id"`
	CreatedAt     string `json:"created_at"`
}

// WeeklyScheduleResponse groups a week's assignments with any per-item
// failures from the bulk create.
type WeeklyScheduleResponse struct {
	Week        string               `json:"week"`
	Assignments []AssignmentResponse `json:"assignments"`
	Errors      []string             `json:"errors,omitempty"`
}

func ToResponse(a Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:            a.ID,
		ScheduleID:    a.ScheduleID,
		Week:          a.Week,
		Date:          a.Date,
		EmployeeRef:   a.EmployeeRef,
		EmployeeName:  a.EmployeeName,
		ShiftRef:      a.ShiftRef,
		ShiftName:     a.ShiftName,
		DepartmentRef: a.DepartmentRef,
		CreatedAt:     a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
