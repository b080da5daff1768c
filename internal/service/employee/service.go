package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/audit"
	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/history"
	"github.com/workforcehq/workforce-backend-go/internal/domain/shift"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/idgen"
)

const dateLayout = "2006-01-02"

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	department.DepartmentRepository
	shift.ShiftRepository

	ids       idgen.Generator
	auditor   audit.Logger
	historian history.Recorder

	now func() time.Time
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	shiftRepo shift.ShiftRepository,
	ids idgen.Generator,
	auditor audit.Logger,
	historian history.Recorder,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository:   employeeRepo,
		DepartmentRepository: departmentRepo,
		ShiftRepository:      shiftRepo,
		ids:                  ids,
		auditor:              auditor,
		historian:            historian,
		now:                  time.Now,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest, actor employee.Actor) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.EmployeeRepository.EmailExists(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	dept, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentRef)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !dept.IsActive {
		return employee.EmployeeResponse{}, department.ErrDepartmentInactive
	}

	var shiftRef, shiftName *string
	if req.ShiftRef != nil {
		sh, err := s.ShiftRepository.GetByID(ctx, *req.ShiftRef)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if sh.DepartmentRef != dept.ID {
			return employee.EmployeeResponse{}, shift.ErrShiftDepartmentMismatch
		}
		shiftRef = &sh.ID
		shiftName = &sh.Name
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	displayID, err := s.ids.Next(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee ID: %w", err)
	}

	joiningDate := s.now()
	if req.JoiningDate != nil {
		joiningDate, _ = time.Parse(dateLayout, *req.JoiningDate)
	}

	var multiplier *decimal.Decimal
	if req.OvertimeMultiplier > 0 {
		m := decimal.NewFromFloat(req.OvertimeMultiplier)
		multiplier = &m
	}

	emp := employee.Employee{
		EmployeeID:         displayID,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Phone:              req.Phone,
		PasswordHash:       string(hash),
		Role:               employee.Role(req.Role),
		JobRole:            req.JobRole,
		DepartmentRef:      dept.ID,
		DepartmentName:     dept.Name,
		ShiftRef:           shiftRef,
		ShiftName:          shiftName,
		MonthlySalary:      decimal.NewFromFloat(req.MonthlySalary),
		OvertimeEligible:   req.OvertimeEligible,
		OvertimeMultiplier: multiplier,
		JoiningDate:        joiningDate,
		IsActive:           true,
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionEmployeeCreate,
		ActorRef:   actor.ID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		EntityType: "employee",
		EntityRef:  created.ID,
		Detail:     map[string]any{"employee_id": created.EmployeeID, "department_id": created.DepartmentRef},
	})

	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest, actor employee.Actor) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.JobRole != nil {
		emp.JobRole = req.JobRole
	}
	if req.MonthlySalary != nil {
		emp.MonthlySalary = decimal.NewFromFloat(*req.MonthlySalary)
	}
	if req.ShiftRef != nil {
		sh, err := s.ShiftRepository.GetByID(ctx, *req.ShiftRef)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if sh.DepartmentRef != emp.DepartmentRef {
			return employee.EmployeeResponse{}, shift.ErrShiftDepartmentMismatch
		}
		emp.ShiftRef = &sh.ID
		emp.ShiftName = &sh.Name
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionEmployeeUpdate,
		ActorRef:   actor.ID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		EntityType: "employee",
		EntityRef:  emp.ID,
	})

	return employee.ToResponse(emp), nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string, actor employee.Actor) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !emp.IsActive {
		return employee.ErrAlreadyDeactivated
	}

	emp.IsActive = false
	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return err
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionEmployeeDeactivate,
		ActorRef:   actor.ID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		EntityType: "employee",
		EntityRef:  emp.ID,
	})
	return nil
}

// Transfer implements employee.EmployeeService. Moving departments drops
// the shift binding since shifts are department-scoped.
func (s *EmployeeServiceImpl) Transfer(ctx context.Context, id string, req employee.TransferRequest, actor employee.Actor) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !emp.IsActive {
		return employee.EmployeeResponse{}, employee.ErrEmployeeInactive
	}

	dept, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentRef)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !dept.IsActive {
		return employee.EmployeeResponse{}, department.ErrDepartmentInactive
	}

	fromDept := emp.DepartmentRef
	before := map[string]any{
		"department_id":   emp.DepartmentRef,
		"department_name": emp.DepartmentName,
		"shift_id":        emp.ShiftRef,
	}

	emp.DepartmentRef = dept.ID
	emp.DepartmentName = dept.Name
	emp.ShiftRef = nil
	emp.ShiftName = nil

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}
	s.historian.Record(ctx, history.Entry{
		EntityType: "employee",
		EntityRef:  emp.ID,
		ChangedBy:  actor.ID,
		Reason:     reason,
		Before:     before,
		After: map[string]any{
			"department_id":   emp.DepartmentRef,
			"department_name": emp.DepartmentName,
			"shift_id":        nil,
		},
	})

	detail := map[string]any{"from_department": fromDept, "to_department": dept.ID}
	if req.Reason != nil {
		detail["reason"] = *req.Reason
	}
	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionEmployeeTransfer,
		ActorRef:   actor.ID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		EntityType: "employee",
		EntityRef:  emp.ID,
		Detail:     detail,
	})

	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	employees, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}
