package shift

import (
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name          string `json:"name"`
	DepartmentRef string `json:"department_id"`
	StartTime     string `json:"start_time"` // "HH:MM"
	EndTime       string `json:"end_time"`   // "HH:MM"
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.DepartmentRef) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be HH:MM"})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	Name      *string `json:"name,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.StartTime != nil && !validator.IsValidClockTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be HH:MM"})
	}
	if r.EndTime != nil && !validator.IsValidClockTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID             string  `json:"id"`
	ShiftID        string  `json:"shift_id"`
	Name           string  `json:"name"`
	DepartmentRef  string  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	StandardHours  float64 `json:"standard_hours"`
	IsOvernight    bool    `json:"is_overnight"`
	IsActive       bool    `json:"is_active"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:             s.ID,
		ShiftID:        s.ShiftID,
		Name:           s.Name,
		DepartmentRef:  s.DepartmentRef,
		DepartmentName: s.DepartmentName,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		StandardHours:  s.StandardHours,
		IsOvernight:    s.IsOvernight,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
