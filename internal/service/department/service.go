package department

import (
	"context"
	"fmt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/audit"
	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/idgen"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
	employee.EmployeeRepository

	ids     idgen.Generator
	auditor audit.Logger
}

func NewDepartmentService(
	departmentRepo department.DepartmentRepository,
	employeeRepo employee.EmployeeRepository,
	ids idgen.Generator,
	auditor audit.Logger,
) department.DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepo,
		EmployeeRepository:   employeeRepo,
		ids:                  ids,
		auditor:              auditor,
	}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest, actor employee.Actor) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	exists, err := s.DepartmentRepository.NameExists(ctx, req.Name)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
	}
	if exists {
		return department.DepartmentResponse{}, department.ErrNameExists
	}

	displayID, err := s.ids.Next(ctx)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to generate department ID: %w", err)
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		DepartmentID: displayID,
		Name:         req.Name,
		Description:  req.Description,
		HasShifts:    req.HasShifts,
		IsActive:     true,
		CreatedBy:    actor.ID,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionDepartmentCreate,
		ActorRef:   actor.ID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		EntityType: "department",
		EntityRef:  created.ID,
		Detail:     map[string]any{"name": created.Name},
	})

	return department.ToResponse(created), nil
}

// Get implements department.DepartmentService.
func (s *DepartmentServiceImpl) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToResponse(dept), nil
}

// Update implements department.DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest, actor employee.Actor) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil && *req.Name != dept.Name {
		exists, err := s.DepartmentRepository.NameExists(ctx, *req.Name)
		if err != nil {
			return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
		}
		if exists {
			return department.DepartmentResponse{}, department.ErrNameExists
		}
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = req.Description
	}
	if req.HasShifts != nil {
		dept.HasShifts = *req.HasShifts
	}

	if err := s.DepartmentRepository.Update(ctx, dept); err != nil {
		return department.DepartmentResponse{}, err
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionDepartmentUpdate,
		ActorRef:   actor.ID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		EntityType: "department",
		EntityRef:  dept.ID,
	})

	return department.ToResponse(dept), nil
}

// Deactivate implements department.DepartmentService. A department with
// active employees cannot be deactivated; transfer them out first.
func (s *DepartmentServiceImpl) Deactivate(ctx context.Context, id string, actor employee.Actor) error {
	dept, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !dept.IsActive {
		return department.ErrDepartmentInactive
	}

	count, err := s.EmployeeRepository.CountActiveByDepartment(ctx, dept.ID)
	if err != nil {
		return fmt.Errorf("failed to count department employees: %w", err)
	}
	if count > 0 {
		return department.ErrHasActiveEmployees
	}

	dept.IsActive = false
	if err := s.DepartmentRepository.Update(ctx, dept); err != nil {
		return err
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionDepartmentUpdate,
		ActorRef:   actor.ID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		EntityType: "department",
		EntityRef:  dept.ID,
		Detail:     map[string]any{"deactivated": true},
	})
	return nil
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context, activeOnly bool) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, department.ToResponse(dept))
	}
	return responses, nil
}
