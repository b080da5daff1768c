package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/audit"
	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/history"
	"github.com/workforcehq/workforce-backend-go/internal/domain/shift"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/idgen"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	department.DepartmentRepository
	shift.ShiftRepository

	ids       idgen.Generator
	auditor   audit.Logger
	historian history.Recorder
	log       *slog.Logger

	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	shiftRepo shift.ShiftRepository,
	ids idgen.Generator,
	auditor audit.Logger,
	historian history.Recorder,
	log *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		DepartmentRepository: departmentRepo,
		ShiftRepository:      shiftRepo,
		ids:                  ids,
		auditor:              auditor,
		historian:            historian,
		log:                  log,
		now:                  time.Now,
	}
}

// MarkEntry implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkEntry(ctx context.Context, req attendance.MarkEntryRequest, actor employee.Actor) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	entryTime, _ := time.Parse(time.RFC3339, req.EntryTime)
	now := s.now()

	// The record date is the wall-clock date of the entry timestamp,
	// not UTC-normalized.
	entryDate := entryTime.Format(dateLayout)
	today := now.Format(dateLayout)

	if entryDate > today {
		return attendance.AttendanceResponse{}, attendance.ErrFutureDate
	}

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeRef, entryDate)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrEntryAlreadyMarked
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeRef)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	dept, err := s.DepartmentRepository.GetByID(ctx, emp.DepartmentRef)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !dept.IsActive {
		return attendance.AttendanceResponse{}, department.ErrDepartmentInactive
	}

	// 24-hour cutoff: entries older than a day need super-admin privilege
	// and a stated reason, and come back flagged as corrected.
	startOfEntryDate := time.Date(entryTime.Year(), entryTime.Month(), entryTime.Day(), 0, 0, 0, 0, entryTime.Location())
	backdated := now.Sub(startOfEntryDate).Hours() > 24

	var correctedBy, correctionReason *string
	if backdated {
		if !actor.Role.IsSuperAdmin() {
			return attendance.AttendanceResponse{}, attendance.ErrBackdatedEntry
		}
		if req.CorrectionReason == nil || *req.CorrectionReason == "" {
			return attendance.AttendanceResponse{}, attendance.ErrBackdateNeedsReason
		}
		actorRef := actor.ID
		correctedBy = &actorRef
		correctionReason = req.CorrectionReason
	}

	displayID, err := s.ids.Next(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to generate attendance ID: %w", err)
	}

	record := attendance.Attendance{
		AttendanceID:      displayID,
		EmployeeRef:       emp.ID,
		EmployeeDisplayID: emp.EmployeeID,
		EmployeeName:      emp.FullName(),
		DepartmentRef:     dept.ID,
		DepartmentName:    dept.Name,
		ShiftRef:          emp.ShiftRef,
		ShiftName:         emp.ShiftName,
		Date:              entryDate,
		EntryTime:         &entryTime,
		Status:            attendance.StatusPending,
		IsCorrected:       backdated,
		CorrectedBy:       correctedBy,
		CorrectionReason:  correctionReason,
		MarkedBy:          actor.ID,
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionAttendanceEntry,
		ActorRef:   actor.ID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		EntityType: "attendance",
		EntityRef:  created.ID,
		Detail: map[string]any{
			"employee_id": emp.ID,
			"date":        entryDate,
			"backdated":   backdated,
		},
	})

	return attendance.ToResponse(created), nil
}

// MarkExit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkExit(ctx context.Context, req attendance.MarkExitRequest, actor employee.Actor) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	exitTime, _ := time.Parse(time.RFC3339, req.ExitTime)
	now := s.now()

	exitDate := exitTime.Format(dateLayout)
	if exitDate > now.Format(dateLayout) {
		return attendance.AttendanceResponse{}, attendance.ErrFutureDate
	}

	record, overnight, err := s.resolveExitRecord(ctx, req.EmployeeRef, exitTime)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record.EntryTime == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoEntryMarked
	}
	if record.ExitTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrExitAlreadyMarked
	}
	if !exitTime.After(*record.EntryTime) {
		return attendance.AttendanceResponse{}, attendance.ErrExitBeforeEntry
	}
	if record.Date != exitDate && !overnight {
		return attendance.AttendanceResponse{}, attendance.ErrExitCrossMidnight
	}

	durationMinutes := int(exitTime.Sub(*record.EntryTime).Minutes())
	if durationMinutes < attendance.MinWorkMinutes {
		return attendance.AttendanceResponse{}, attendance.ErrDurationTooShort
	}
	if durationMinutes > attendance.MaxWorkMinutes {
		return attendance.AttendanceResponse{}, attendance.ErrDurationTooLong
	}

	standardHours, err := s.standardHoursFor(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	regular, overtime, total := splitHours(durationMinutes, standardHours)

	record.ExitTime = &exitTime
	record.WorkDurationMinutes = &durationMinutes
	record.RegularHours = &regular
	record.OvertimeHours = &overtime
	record.TotalHours = &total
	record.Status = attendance.StatusPresent
	if overtime > 0 {
		// Overtime is auto-approved by whoever marks the exit; there is
		// no separate approval step.
		actorRef := actor.ID
		record.OvertimeApprovedBy = &actorRef
		record.OvertimeReason = req.OvertimeReason
	}

	if err := s.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionAttendanceExit,
		ActorRef:   actor.ID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		EntityType: "attendance",
		EntityRef:  record.ID,
		Detail: map[string]any{
			"employee_id":      record.EmployeeRef,
			"date":             record.Date,
			"duration_minutes": durationMinutes,
			"overtime_hours":   overtime,
		},
	})

	return attendance.ToResponse(*record), nil
}

// resolveExitRecord finds the open record an exit belongs to. A same-day
// record always wins; the previous day's record is used only when its
// bound shift is overnight.
func (s *AttendanceServiceImpl) resolveExitRecord(ctx context.Context, employeeRef string, exitTime time.Time) (*attendance.Attendance, bool, error) {
	exitDate := exitTime.Format(dateLayout)

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeRef, exitDate)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up attendance: %w", err)
	}
	if record != nil {
		return record, false, nil
	}

	prevDate := exitTime.AddDate(0, 0, -1).Format(dateLayout)
	record, err = s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeRef, prevDate)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up attendance: %w", err)
	}
	if record == nil || record.ExitTime != nil {
		return nil, false, attendance.ErrNoEntryMarked
	}
	if record.ShiftRef == nil {
		return nil, false, attendance.ErrExitCrossMidnight
	}
	sh, err := s.ShiftRepository.GetByID(ctx, *record.ShiftRef)
	if err != nil {
		return nil, false, err
	}
	if !sh.IsOvernight {
		return nil, false, attendance.ErrExitCrossMidnight
	}
	return record, true, nil
}

func (s *AttendanceServiceImpl) standardHoursFor(ctx context.Context, record *attendance.Attendance) (float64, error) {
	if record.ShiftRef == nil {
		return shift.DefaultStandardHours, nil
	}
	sh, err := s.ShiftRepository.GetByID(ctx, *record.ShiftRef)
	if err != nil {
		return 0, err
	}
	if sh.StandardHours <= 0 {
		return shift.DefaultStandardHours, nil
	}
	return sh.StandardHours, nil
}

// Correct implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Correct(ctx context.Context, recordID string, req attendance.CorrectionRequest, actor employee.Actor) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, recordID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	today := now.Format(dateLayout)
	if record.Date == today {
		return attendance.AttendanceResponse{}, attendance.ErrCorrectionOfToday
	}

	recordDate, err := time.Parse(dateLayout, record.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("malformed attendance date %q: %w", record.Date, err)
	}
	todayMidnight, _ := time.Parse(dateLayout, today)
	if int(todayMidnight.Sub(recordDate).Hours()/24) > 7 {
		return attendance.AttendanceResponse{}, attendance.ErrCorrectionTooOld
	}

	before := snapshot(record)

	timesChanged := false
	if req.EntryTime != nil {
		t, _ := time.Parse(time.RFC3339, *req.EntryTime)
		record.EntryTime = &t
		timesChanged = true
	}
	if req.ExitTime != nil {
		t, _ := time.Parse(time.RFC3339, *req.ExitTime)
		record.ExitTime = &t
		timesChanged = true
	}

	if timesChanged && record.EntryTime != nil && record.ExitTime != nil {
		if !record.ExitTime.After(*record.EntryTime) {
			return attendance.AttendanceResponse{}, attendance.ErrExitBeforeEntry
		}
		durationMinutes := int(record.ExitTime.Sub(*record.EntryTime).Minutes())
		if durationMinutes < attendance.MinWorkMinutes {
			return attendance.AttendanceResponse{}, attendance.ErrDurationTooShort
		}
		if durationMinutes > attendance.MaxWorkMinutes {
			return attendance.AttendanceResponse{}, attendance.ErrDurationTooLong
		}

		standardHours, err := s.standardHoursFor(ctx, &record)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		regular, overtime, total := splitHours(durationMinutes, standardHours)
		record.WorkDurationMinutes = &durationMinutes
		record.RegularHours = &regular
		record.OvertimeHours = &overtime
		record.TotalHours = &total
	}

	statusChanged := false
	switch {
	case req.Status != nil:
		// An explicit status always wins over the implicit present.
		newStatus := attendance.Status(*req.Status)
		statusChanged = newStatus != record.Status
		record.Status = newStatus
	case timesChanged:
		statusChanged = record.Status != attendance.StatusPresent
		record.Status = attendance.StatusPresent
	}

	reason := req.Reason
	actorRef := actor.ID
	record.IsCorrected = true
	record.CorrectedBy = &actorRef
	record.CorrectionReason = &reason

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.historian.Record(ctx, history.Entry{
		EntityType: "attendance",
		EntityRef:  record.ID,
		ChangedBy:  actor.ID,
		Reason:     req.Reason,
		Before:     before,
		After:      snapshot(record),
	})

	s.auditor.Log(ctx, audit.Entry{
		Action:     audit.ActionAttendanceCorrect,
		ActorRef:   actor.ID,
		ActorName:  actor.Name,
		ActorRole:  string(actor.Role),
		EntityType: "attendance",
		EntityRef:  record.ID,
		Detail: map[string]any{
			"employee_id":    record.EmployeeRef,
			"date":           record.Date,
			"status_changed": statusChanged,
		},
	})

	if statusChanged {
		// Salary is a pure on-demand projection; the next read picks up
		// the corrected status without any recompute step here.
		s.log.InfoContext(ctx, "attendance status corrected, salary projections will reflect it on next read",
			slog.String("attendance_id", record.ID),
			slog.String("employee_id", record.EmployeeRef),
			slog.String("date", record.Date),
		)
	}

	return attendance.ToResponse(record), nil
}

func snapshot(a attendance.Attendance) map[string]any {
	m := map[string]any{
		"status":       string(a.Status),
		"is_corrected": a.IsCorrected,
	}
	if a.EntryTime != nil {
		m["entry_time"] = a.EntryTime.Format(time.RFC3339)
	}
	if a.ExitTime != nil {
		m["exit_time"] = a.ExitTime.Format(time.RFC3339)
	}
	if a.WorkDurationMinutes != nil {
		m["work_duration_minutes"] = *a.WorkDurationMinutes
	}
	if a.RegularHours != nil {
		m["regular_hours"] = *a.RegularHours
	}
	if a.OvertimeHours != nil {
		m["overtime_hours"] = *a.OvertimeHours
	}
	return m
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}
	return responses, nil
}

// PastWeek implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PastWeek(ctx context.Context, employeeRef string) ([]attendance.AttendanceResponse, error) {
	now := s.now()
	// Yesterday back to seven days ago, the span Correct still accepts.
	end := now.AddDate(0, 0, -1).Format(dateLayout)
	start := now.AddDate(0, 0, -7).Format(dateLayout)

	records, err := s.AttendanceRepository.ListRange(ctx, employeeRef, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list past week attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}
	return responses, nil
}

// MonthlySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlySummary(ctx context.Context, employeeRef string, year int, month int) (attendance.SummaryResponse, error) {
	if month < 1 || month > 12 || year < 2000 {
		return attendance.SummaryResponse{}, validator.ValidationErrors{
			{Field: "month", Message: "year and month must form a valid period"},
		}
	}

	summary, err := s.AttendanceRepository.MonthlySummary(ctx, employeeRef, year, month)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to compute monthly summary: %w", err)
	}

	return attendance.SummaryResponse{
		TotalRecords:  summary.TotalRecords,
		DaysPresent:   summary.DaysPresent,
		DaysAbsent:    summary.DaysAbsent,
		DaysPending:   summary.DaysPending,
		OvertimeHours: summary.OvertimeHours,
	}, nil
}
