package employee

import (
	"github.com/shopspring/decimal"

	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Email              string  `json:"email"`
	Phone              *string `json:"phone,omitempty"`
	Password           string  `json:"password"`
	Role               string  `json:"role"`
	JobRole            *string `json:"job_role,omitempty"`
	DepartmentRef      string  `json:"department_id"`
	ShiftRef           *string `json:"shift_id,omitempty"`
	MonthlySalary      float64 `json:"monthly_salary"`
	OvertimeEligible   bool    `json:"overtime_eligible"`
	OvertimeMultiplier float64 `json:"overtime_multiplier,omitempty"`
	JoiningDate        *string `json:"joining_date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if !Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of: super_admin, admin, employee"})
	}
	if validator.IsEmpty(r.DepartmentRef) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if r.MonthlySalary <= 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "monthly_salary must be positive"})
	}
	if r.OvertimeMultiplier < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime_multiplier", Message: "overtime_multiplier must not be negative"})
	}
	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "joining_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FirstName     *string  `json:"first_name,omitempty"`
	LastName      *string  `json:"last_name,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	JobRole       *string  `json:"job_role,omitempty"`
	ShiftRef      *string  `json:"shift_id,omitempty"`
	MonthlySalary *float64 `json:"monthly_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name must not be empty"})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name must not be empty"})
	}
	if r.MonthlySalary != nil && *r.MonthlySalary <= 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "monthly_salary must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransferRequest struct {
	DepartmentRef string  `json:"department_id"`
	Reason        *string `json:"reason,omitempty"`
}

func (r *TransferRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.DepartmentRef) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	DepartmentRef *string
	Role          *string
	IsActive      *bool
	Search        *string
	Limit         int
	Offset        int
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	Phone            *string `json:"phone,omitempty"`
	Role             string  `json:"role"`
	JobRole          *string `json:"job_role,omitempty"`
	DepartmentRef    string  `json:"department_id"`
	DepartmentName   string  `json:"department_name"`
	ShiftRef         *string `json:"shift_id,omitempty"`
	ShiftName        *string `json:"shift_name,omitempty"`
	MonthlySalary    string  `json:"monthly_salary"`
	HourlyRate       *string `json:"hourly_rate,omitempty"`
	OvertimeEligible bool    `json:"overtime_eligible"`
	OvertimeRate     *string `json:"overtime_rate,omitempty"`
	JoiningDate      string  `json:"joining_date"`
	IsActive         bool    `json:"is_active"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func decimalPtrToString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		EmployeeID:       e.EmployeeID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		Email:            e.Email,
		Phone:            e.Phone,
		Role:             string(e.Role),
		JobRole:          e.JobRole,
		DepartmentRef:    e.DepartmentRef,
		DepartmentName:   e.DepartmentName,
		ShiftRef:         e.ShiftRef,
		ShiftName:        e.ShiftName,
		MonthlySalary:    e.MonthlySalary.StringFixed(2),
		HourlyRate:       decimalPtrToString(e.HourlyRate),
		OvertimeEligible: e.OvertimeEligible,
		OvertimeRate:     decimalPtrToString(e.OvertimeRate),
		JoiningDate:      e.JoiningDate.Format("2006-01-02"),
		IsActive:         e.IsActive,
		CreatedAt:        e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
