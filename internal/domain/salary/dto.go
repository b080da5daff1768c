package salary

import (
	"github.com/shopspring/decimal"
)

// Projection is a derived monthly pay estimate. It is never persisted;
// every request recomputes it from the attendance summary and the
// employee's pay parameters.
type Projection struct {
	EmployeeRef        string          `json:"employee_id"`
	EmployeeDisplayID  string          `json:"employee_display_id"`
	EmployeeName       string          `json:"employee_name"`
	DepartmentRef      string          `json:"department_id"`
	DepartmentName     string          `json:"department_name"`
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	DaysInMonth        int             `json:"days_in_month"`
	DaysPresent        int             `json:"days_present"`
	DaysAbsent         int             `json:"days_absent"`
	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	MonthlySalary      decimal.Decimal `json:"monthly_salary"`
	DailyRate          decimal.Decimal `json:"daily_rate"`
	HourlyRate         decimal.Decimal `json:"hourly_rate"`
	OvertimeRate       decimal.Decimal `json:"overtime_rate"`
	OvertimeMultiplier decimal.Decimal `json:"overtime_multiplier"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	CalculatedSalary   decimal.Decimal `json:"calculated_salary"`
}

// DepartmentReport aggregates projections for every active employee of
// one department in a given month.
type DepartmentReport struct {
	DepartmentRef  string          `json:"department_id"`
	DepartmentName string          `json:"department_name"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	EmployeeCount  int             `json:"employee_count"`
	TotalBase      decimal.Decimal `json:"total_base_salary"`
	TotalOvertime  decimal.Decimal `json:"total_overtime_pay"`
	TotalPayout    decimal.Decimal `json:"total_payout"`
	Projections    []Projection    `json:"projections"`
}

// SystemReport reduces department reports into a company-wide payout
// estimate for a given month.
type SystemReport struct {
	Year            int                `json:"year"`
	Month           int                `json:"month"`
	DepartmentCount int                `json:"department_count"`
	EmployeeCount   int                `json:"employee_count"`
	TotalPayout     decimal.Decimal    `json:"total_payout"`
	Departments     []DepartmentReport `json:"departments"`
}
