package shift

import (
	"context"
	"fmt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/audit"
	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/shift"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/idgen"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
	department.DepartmentRepository

	ids     idgen.Generator
	auditor audit.Logger
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	departmentRepo department.DepartmentRepository,
	ids idgen.Generator,
	auditor audit.Logger,
) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository:      shiftRepo,
		DepartmentRepository: departmentRepo,
		ids:                  ids,
		auditor:              auditor,
	}
}

// Create implements shift.ShiftService. Standard hours and the overnight
// flag are derived from the start/end pair, never supplied by the caller.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest, actor employee.Actor) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	dept, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentRef)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if !dept.IsActive {
		return shift.ShiftResponse{}, department.ErrDepartmentInactive
	}
	if !dept.HasShifts {
		return shift.ShiftResponse{}, shift.ErrDepartmentNoShifts
	}

	hours, overnight, err := shift.ComputeDuration(req.StartTime, req.EndTime)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	displayID, err := s.ids.Next(ctx)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to generate shift ID: %w", err)
	}

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		ShiftID:        displayID,
		Name:           req.Name,
		DepartmentRef:  dept.ID,
		DepartmentName: dept.Name,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		StandardHours:  hours,
		IsOvernight:    overnight,
		IsActive:       true,
		CreatedBy:      actor.ID,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionShiftCreate,
		ActorRef:   actor.ID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		EntityType: "shift",
		EntityRef:  created.ID,
		Detail:     map[string]any{"name": created.Name, "department_id": created.DepartmentRef},
	})

	return shift.ToResponse(created), nil
}

// Get implements shift.ShiftService.
func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(sh), nil
}

// Update implements shift.ShiftService. Changing either time recomputes
// standard hours and the overnight flag.
func (s *ShiftServiceImpl) Update(ctx context.Context, id string, req shift.UpdateShiftRequest, actor employee.Actor) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Name != nil {
		sh.Name = *req.Name
	}
	if req.IsActive != nil {
		sh.IsActive = *req.IsActive
	}
	if req.StartTime != nil || req.EndTime != nil {
		if req.StartTime != nil {
			sh.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			sh.EndTime = *req.EndTime
		}
		hours, overnight, err := shift.ComputeDuration(sh.StartTime, sh.EndTime)
		if err != nil {
			return shift.ShiftResponse{}, err
		}
		sh.StandardHours = hours
		sh.IsOvernight = overnight
	}

	if err := s.ShiftRepository.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionShiftUpdate,
		ActorRef:   actor.ID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		EntityType: "shift",
		EntityRef:  sh.ID,
	})

	return shift.ToResponse(sh), nil
}

// ListByDepartment implements shift.ShiftService.
func (s *ShiftServiceImpl) ListByDepartment(ctx context.Context, departmentRef string, activeOnly bool) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.ListByDepartment(ctx, departmentRef, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.ToResponse(sh))
	}
	return responses, nil
}
