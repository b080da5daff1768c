package salary

import "context"

type SalaryService interface {
	Calculate(ctx context.Context, employeeRef string, year, month int) (Projection, error)
	DepartmentReport(ctx context.Context, departmentRef string, year, month int) (DepartmentReport, error)
	SystemReport(ctx context.Context, year, month int) (SystemReport, error)
}
