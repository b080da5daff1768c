package department

import (
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	HasShifts   bool    `json:"has_shifts"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	HasShifts   *bool   `json:"has_shifts,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID           string  `json:"id"`
	DepartmentID string  `json:"department_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	HasShifts    bool    `json:"has_shifts"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:           d.ID,
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		Description:  d.Description,
		HasShifts:    d.HasShifts,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    d.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
