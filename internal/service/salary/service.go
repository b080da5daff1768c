package salary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/salary"
)

var defaultOvertimeMultiplier = decimal.NewFromFloat(1.5)

// standardDayHours is the divisor for the derived hourly rate when an
// employee has no explicit rate configured.
var standardDayHours = decimal.NewFromInt(8)

type SalaryServiceImpl struct {
	employee.EmployeeRepository
	department.DepartmentRepository
	attendance.AttendanceRepository
}

func NewSalaryService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	attendanceRepo attendance.AttendanceRepository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		EmployeeRepository:   employeeRepo,
		DepartmentRepository: departmentRepo,
		AttendanceRepository: attendanceRepo,
	}
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Calculate implements salary.SalaryService. The projection is pure:
// two calls with no attendance change in between return the same result.
func (s *SalaryServiceImpl) Calculate(ctx context.Context, employeeRef string, year, month int) (salary.Projection, error) {
	if month < 1 || month > 12 || year < 2000 {
		return salary.Projection{}, salary.ErrInvalidPeriod
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeRef)
	if err != nil {
		return salary.Projection{}, err
	}
	if emp.MonthlySalary.LessThanOrEqual(decimal.Zero) {
		return salary.Projection{}, salary.ErrNoSalaryConfigured
	}

	summary, err := s.AttendanceRepository.MonthlySummary(ctx, employeeRef, year, month)
	if err != nil {
		return salary.Projection{}, fmt.Errorf("failed to read attendance summary: %w", err)
	}

	days := decimal.NewFromInt(int64(daysInMonth(year, month)))
	dailyRate := emp.MonthlySalary.Div(days)

	hourlyRate := dailyRate.Div(standardDayHours)
	if emp.HourlyRate != nil && emp.HourlyRate.GreaterThan(decimal.Zero) {
		hourlyRate = *emp.HourlyRate
	}

	multiplier := defaultOvertimeMultiplier
	if emp.OvertimeMultiplier != nil && emp.OvertimeMultiplier.GreaterThan(decimal.Zero) {
		multiplier = *emp.OvertimeMultiplier
	}

	overtimeRate := hourlyRate.Mul(multiplier)
	if emp.OvertimeRate != nil && emp.OvertimeRate.GreaterThan(decimal.Zero) {
		overtimeRate = *emp.OvertimeRate
	}

	overtimeHours := decimal.NewFromFloat(summary.OvertimeHours)
	baseSalary := dailyRate.Mul(decimal.NewFromInt(int64(summary.DaysPresent)))
	overtimePay := overtimeRate.Mul(overtimeHours)

	return salary.Projection{
		EmployeeRef:        emp.ID,
		EmployeeDisplayID:  emp.EmployeeID,
		EmployeeName:       emp.FullName(),
		DepartmentRef:      emp.DepartmentRef,
		DepartmentName:     emp.DepartmentName,
		Year:               year,
		Month:              month,
		DaysInMonth:        daysInMonth(year, month),
		DaysPresent:        summary.DaysPresent,
		DaysAbsent:         summary.DaysAbsent,
		OvertimeHours:      overtimeHours,
		MonthlySalary:      emp.MonthlySalary,
		DailyRate:          dailyRate.Round(2),
		HourlyRate:         hourlyRate.Round(2),
		OvertimeRate:       overtimeRate.Round(2),
		OvertimeMultiplier: multiplier,
		BaseSalary:         baseSalary.Round(2),
		OvertimePay:        overtimePay.Round(2),
		CalculatedSalary:   baseSalary.Add(overtimePay).Round(2),
	}, nil
}

// DepartmentReport implements salary.SalaryService. Employees without a
// configured salary are skipped rather than failing the whole report.
func (s *SalaryServiceImpl) DepartmentReport(ctx context.Context, departmentRef string, year, month int) (salary.DepartmentReport, error) {
	if month < 1 || month > 12 || year < 2000 {
		return salary.DepartmentReport{}, salary.ErrInvalidPeriod
	}

	dept, err := s.DepartmentRepository.GetByID(ctx, departmentRef)
	if err != nil {
		return salary.DepartmentReport{}, err
	}

	employees, err := s.EmployeeRepository.ListActiveByDepartment(ctx, dept.ID)
	if err != nil {
		return salary.DepartmentReport{}, fmt.Errorf("failed to list department employees: %w", err)
	}

	report := salary.DepartmentReport{
		DepartmentRef:  dept.ID,
		DepartmentName: dept.Name,
		Year:           year,
		Month:          month,
		TotalBase:      decimal.Zero,
		TotalOvertime:  decimal.Zero,
		TotalPayout:    decimal.Zero,
	}

	for _, emp := range employees {
		projection, err := s.Calculate(ctx, emp.ID, year, month)
		if err != nil {
			if errors.Is(err, salary.ErrNoSalaryConfigured) {
				continue
			}
			return salary.DepartmentReport{}, err
		}
		report.Projections = append(report.Projections, projection)
		report.EmployeeCount++
		report.TotalBase = report.TotalBase.Add(projection.BaseSalary)
		report.TotalOvertime = report.TotalOvertime.Add(projection.OvertimePay)
		report.TotalPayout = report.TotalPayout.Add(projection.CalculatedSalary)
	}

	return report, nil
}

// SystemReport implements salary.SalaryService.
func (s *SalaryServiceImpl) SystemReport(ctx context.Context, year, month int) (salary.SystemReport, error) {
	if month < 1 || month > 12 || year < 2000 {
		return salary.SystemReport{}, salary.ErrInvalidPeriod
	}

	departments, err := s.DepartmentRepository.List(ctx, true)
	if err != nil {
		return salary.SystemReport{}, fmt.Errorf("failed to list departments: %w", err)
	}

	report := salary.SystemReport{
		Year:        year,
		Month:       month,
		TotalPayout: decimal.Zero,
	}

	for _, dept := range departments {
		deptReport, err := s.DepartmentReport(ctx, dept.ID, year, month)
		if err != nil {
			return salary.SystemReport{}, err
		}
		report.Departments = append(report.Departments, deptReport)
		report.DepartmentCount++
		report.EmployeeCount += deptReport.EmployeeCount
		report.TotalPayout = report.TotalPayout.Add(deptReport.TotalPayout)
	}

	return report, nil
}
