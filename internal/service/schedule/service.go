package schedule

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/audit"
	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/schedule"
	"github.com/workforcehq/workforce-backend-go/internal/domain/shift"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/idgen"
)

const dateLayout = "2006-01-02"

type ScheduleServiceImpl struct {
	schedule.ScheduleRepository
	employee.EmployeeRepository
	department.DepartmentRepository
	shift.ShiftRepository

	ids     idgen.Generator
	auditor audit.Logger
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	shiftRepo shift.ShiftRepository,
	ids idgen.Generator,
	auditor audit.Logger,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ScheduleRepository:   scheduleRepo,
		EmployeeRepository:   employeeRepo,
		DepartmentRepository: departmentRepo,
		ShiftRepository:      shiftRepo,
		ids:                  ids,
		auditor:              auditor,
	}
}

func parseISOWeek(week string) (year, weekNum int) {
	parts := strings.SplitN(week, "-W", 2)
	year, _ = strconv.Atoi(parts[0])
	weekNum, _ = strconv.Atoi(parts[1])
	return year, weekNum
}

// CreateWeekly implements schedule.ScheduleService. Assignments are
// created one by one; a failing item is reported in the response and
// does not roll back the rest of the batch.
func (s *ScheduleServiceImpl) CreateWeekly(ctx context.Context, req schedule.CreateWeeklyScheduleRequest, actor employee.Actor) (schedule.WeeklyScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeeklyScheduleResponse{}, err
	}

	dept, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentRef)
	if err != nil {
		return schedule.WeeklyScheduleResponse{}, err
	}
	if !dept.IsActive {
		return schedule.WeeklyScheduleResponse{}, department.ErrDepartmentInactive
	}

	hasShifts, err := s.ShiftRepository.DepartmentHasShifts(ctx, dept.ID)
	if err != nil {
		return schedule.WeeklyScheduleResponse{}, fmt.Errorf("failed to check department shifts: %w", err)
	}
	if !hasShifts {
		return schedule.WeeklyScheduleResponse{}, schedule.ErrNoShiftsInDepartment
	}

	wantYear, wantWeek := parseISOWeek(req.Week)

	resp := schedule.WeeklyScheduleResponse{Week: req.Week}
	for _, input := range req.Assignments {
		emp, err := s.EmployeeRepository.GetByID(ctx, input.EmployeeRef)
		if err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("employee %s: %v", input.EmployeeRef, err))
			continue
		}
		if !emp.IsActive {
			resp.Errors = append(resp.Errors, fmt.Sprintf("employee %s: %v", input.EmployeeRef, employee.ErrEmployeeInactive))
			continue
		}
		if emp.DepartmentRef != dept.ID {
			resp.Errors = append(resp.Errors, fmt.Sprintf("employee %s: %v", input.EmployeeRef, schedule.ErrDepartmentBoundary))
			continue
		}

		sh, err := s.ShiftRepository.GetByID(ctx, input.ShiftRef)
		if err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("shift %s: %v", input.ShiftRef, err))
			continue
		}
		if sh.DepartmentRef != dept.ID {
			resp.Errors = append(resp.Errors, fmt.Sprintf("shift %s: %v", input.ShiftRef, schedule.ErrDepartmentBoundary))
			continue
		}

		for _, date := range input.Dates {
			parsed, err := time.Parse(dateLayout, date)
			if err != nil {
				resp.Errors = append(resp.Errors, fmt.Sprintf("%s: invalid date", date))
				continue
			}
			gotYear, gotWeek := parsed.ISOWeek()
			if gotYear != wantYear || gotWeek != wantWeek {
				resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", date, schedule.ErrDateOutsideWeek))
				continue
			}

			existing, err := s.ScheduleRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
			if err != nil {
				resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", date, err))
				continue
			}
			if existing != nil {
				resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", date, schedule.ErrDuplicateAssignment))
				continue
			}

			displayID, err := s.ids.Next(ctx)
			if err != nil {
				resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", date, err))
				continue
			}

			created, err := s.ScheduleRepository.Create(ctx, schedule.Assignment{
				ScheduleID:    displayID,
				Week:          req.Week,
				Date:          date,
				EmployeeRef:   emp.ID,
				EmployeeName:  emp.FullName(),
				ShiftRef:      sh.ID,
				ShiftName:     sh.Name,
				DepartmentRef: dept.ID,
				CreatedBy:     actor.ID,
			})
			if err != nil {
				resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", date, err))
				continue
			}
			resp.Assignments = append(resp.Assignments, schedule.ToResponse(created))
		}
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionScheduleCreate,
		ActorRef:   actor.ID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		EntityType: "schedule",
		EntityRef:  req.Week,
		Detail: map[string]any{
			"department_id": dept.ID,
			"created":       len(resp.Assignments),
			"failed":        len(resp.Errors),
		},
	})

	return resp, nil
}

// GetWeek implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetWeek(ctx context.Context, week string, departmentRef *string) (schedule.WeeklyScheduleResponse, error) {
	assignments, err := s.ScheduleRepository.ListByWeek(ctx, week, departmentRef)
	if err != nil {
		return schedule.WeeklyScheduleResponse{}, fmt.Errorf("failed to list week schedule: %w", err)
	}

	resp := schedule.WeeklyScheduleResponse{Week: week}
	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, schedule.ToResponse(a))
	}
	return resp, nil
}

// GetEmployeeSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetEmployeeSchedule(ctx context.Context, employeeRef string, week *string) ([]schedule.AssignmentResponse, error) {
	assignments, err := s.ScheduleRepository.ListByEmployee(ctx, employeeRef, week)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee schedule: %w", err)
	}

	responses := make([]schedule.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, schedule.ToResponse(a))
	}
	return responses, nil
}

// DeleteAssignment implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteAssignment(ctx context.Context, id string, actor employee.Actor) error {
	if err := s.ScheduleRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionScheduleDelete,
		ActorRef:   actor.ID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		EntityType: "schedule",
		EntityRef:  id,
	})
	return nil
}
