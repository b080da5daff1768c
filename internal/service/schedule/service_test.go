package schedule

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/workforce-backend-go/internal/domain/audit"
	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/schedule"
	"github.com/workforcehq/workforce-backend-go/internal/domain/shift"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type memScheduleRepo struct {
	byID  map[string]schedule.Assignment
	byKey map[string]string
	seq   int
}

func newMemScheduleRepo() *memScheduleRepo {
	return &memScheduleRepo{
		byID:  make(map[string]schedule.Assignment),
		byKey: make(map[string]string),
	}
}

func schedKey(employeeRef, date string) string { return employeeRef + "|" + date }

func (r *memScheduleRepo) Create(_ context.Context, a schedule.Assignment) (schedule.Assignment, error) {
	key := schedKey(a.EmployeeRef, a.Date)
	if _, exists := r.byKey[key]; exists {
		// mirrors the unique (employee_ref, date) index
		return schedule.Assignment{}, schedule.ErrDuplicateAssignment
	}
	r.seq++
	a.ID = fmt.Sprintf("assign-%d", r.seq)
	r.byID[a.ID] = a
	r.byKey[key] = a.ID
	return a, nil
}

func (r *memScheduleRepo) GetByEmployeeAndDate(_ context.Context, employeeRef, date string) (*schedule.Assignment, error) {
	id, ok := r.byKey[schedKey(employeeRef, date)]
	if !ok {
		return nil, nil
	}
	a := r.byID[id]
	return &a, nil
}

func (r *memScheduleRepo) ListByWeek(_ context.Context, week string, departmentRef *string) ([]schedule.Assignment, error) {
	var out []schedule.Assignment
	for _, a := range r.byID {
		if a.Week != week {
			continue
		}
		if departmentRef != nil && a.DepartmentRef != *departmentRef {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *memScheduleRepo) ListByEmployee(_ context.Context, employeeRef string, week *string) ([]schedule.Assignment, error) {
	var out []schedule.Assignment
	for _, a := range r.byID {
		if a.EmployeeRef != employeeRef {
			continue
		}
		if week != nil && a.Week != *week {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *memScheduleRepo) Delete(_ context.Context, id string) error {
	a, ok := r.byID[id]
	if !ok {
		return schedule.ErrAssignmentNotFound
	}
	delete(r.byID, id)
	delete(r.byKey, schedKey(a.EmployeeRef, a.Date))
	return nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type stubDepartmentRepo struct {
	department.DepartmentRepository
	departments map[string]department.Department
}

func (r *stubDepartmentRepo) GetByID(_ context.Context, id string) (department.Department, error) {
	dept, ok := r.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return dept, nil
}

type stubShiftRepo struct {
	shift.ShiftRepository
	shifts    map[string]shift.Shift
	hasShifts map[string]bool
}

func (r *stubShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (r *stubShiftRepo) DepartmentHasShifts(_ context.Context, departmentRef string) (bool, error) {
	return r.hasShifts[departmentRef], nil
}

type stubIDs struct{ n int }

func (s *stubIDs) Next(_ context.Context) (string, error) {
	s.n++
	return fmt.Sprintf("SCH_%06d", s.n), nil
}

type captureAudit struct{ entries []audit.Entry }

func (c *captureAudit) Log(_ context.Context, e audit.Entry) { c.entries = append(c.entries, e) }

var admin = employee.Actor{ID: "actor-admin", Name: "Desk Admin", Role: employee.RoleAdmin}

type fixture struct {
	svc       schedule.ScheduleService
	schedules *memScheduleRepo
	auditor   *captureAudit
}

// 2025-W25 runs Monday 2025-06-16 through Sunday 2025-06-22.
const testWeek = "2025-W25"

func newFixture(t *testing.T) *fixture {
	t.Helper()

	emps := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FirstName: "Ayu", LastName: "Lestari", DepartmentRef: "dept-1", IsActive: true},
		"emp-2": {ID: "emp-2", FirstName: "Budi", LastName: "Santoso", DepartmentRef: "dept-2", IsActive: true},
		"emp-3": {ID: "emp-3", FirstName: "Citra", LastName: "Dewi", DepartmentRef: "dept-1", IsActive: false},
	}}
	depts := &stubDepartmentRepo{departments: map[string]department.Department{
		"dept-1": {ID: "dept-1", Name: "Production", HasShifts: true, IsActive: true},
		"dept-2": {ID: "dept-2", Name: "Warehouse", HasShifts: true, IsActive: true},
	}}
	shifts := &stubShiftRepo{
		shifts: map[string]shift.Shift{
			"shift-1": {ID: "shift-1", Name: "Morning", DepartmentRef: "dept-1", StartTime: "09:00", EndTime: "17:00", StandardHours: 8, IsActive: true},
			"shift-2": {ID: "shift-2", Name: "Loading", DepartmentRef: "dept-2", StartTime: "06:00", EndTime: "14:00", StandardHours: 8, IsActive: true},
		},
		hasShifts: map[string]bool{"dept-1": true},
	}

	f := &fixture{
		schedules: newMemScheduleRepo(),
		auditor:   &captureAudit{},
	}
	f.svc = NewScheduleService(f.schedules, emps, depts, shifts, &stubIDs{}, f.auditor)
	return f
}

func (f *fixture) createWeekly(t *testing.T, assignments ...schedule.AssignmentInput) schedule.WeeklyScheduleResponse {
	t.Helper()
	resp, err := f.svc.CreateWeekly(context.Background(), schedule.CreateWeeklyScheduleRequest{
		Week:          testWeek,
		DepartmentRef: "dept-1",
		Assignments:   assignments,
	}, admin)
	require.NoError(t, err)
	return resp
}

func TestCreateWeekly_CreatesAssignments(t *testing.T) {
	f := newFixture(t)

	resp := f.createWeekly(t, schedule.AssignmentInput{
		EmployeeRef: "emp-1",
		ShiftRef:    "shift-1",
		Dates:       []string{"2025-06-16", "2025-06-17"},
	})

	require.Len(t, resp.Assignments, 2)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, testWeek, resp.Assignments[0].Week)
	assert.Equal(t, "Ayu Lestari", resp.Assignments[0].EmployeeName)
	assert.Equal(t, "Morning", resp.Assignments[0].ShiftName)
	require.Len(t, f.auditor.entries, 1)
	assert.Equal(t, audit.ActionScheduleCreate, f.auditor.entries[0].Action)
	assert.Equal(t, 2, f.auditor.entries[0].Detail["created"])
}

func TestCreateWeekly_RejectsDateOutsideWeek(t *testing.T) {
	f := newFixture(t)

	resp := f.createWeekly(t, schedule.AssignmentInput{
		EmployeeRef: "emp-1",
		ShiftRef:    "shift-1",
		Dates:       []string{"2025-06-23"},
	})

	assert.Empty(t, resp.Assignments)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], schedule.ErrDateOutsideWeek.Error())
}

func TestCreateWeekly_ReportsDuplicateAndContinues(t *testing.T) {
	f := newFixture(t)
	f.createWeekly(t, schedule.AssignmentInput{
		EmployeeRef: "emp-1",
		ShiftRef:    "shift-1",
		Dates:       []string{"2025-06-16"},
	})

	resp := f.createWeekly(t, schedule.AssignmentInput{
		EmployeeRef: "emp-1",
		ShiftRef:    "shift-1",
		Dates:       []string{"2025-06-16", "2025-06-17"},
	})

	require.Len(t, resp.Assignments, 1)
	assert.Equal(t, "2025-06-17", resp.Assignments[0].Date)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], schedule.ErrDuplicateAssignment.Error())
}

func TestCreateWeekly_EmployeeFromOtherDepartment(t *testing.T) {
	f := newFixture(t)

	resp := f.createWeekly(t, schedule.AssignmentInput{
		EmployeeRef: "emp-2",
		ShiftRef:    "shift-1",
		Dates:       []string{"2025-06-16"},
	})

	assert.Empty(t, resp.Assignments)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], schedule.ErrDepartmentBoundary.Error())
}

func TestCreateWeekly_ShiftFromOtherDepartment(t *testing.T) {
	f := newFixture(t)

	resp := f.createWeekly(t, schedule.AssignmentInput{
		EmployeeRef: "emp-1",
		ShiftRef:    "shift-2",
		Dates:       []string{"2025-06-16"},
	})

	assert.Empty(t, resp.Assignments)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], schedule.ErrDepartmentBoundary.Error())
}

func TestCreateWeekly_InactiveEmployee(t *testing.T) {
	f := newFixture(t)

	resp := f.createWeekly(t, schedule.AssignmentInput{
		EmployeeRef: "emp-3",
		ShiftRef:    "shift-1",
		Dates:       []string{"2025-06-16"},
	})

	assert.Empty(t, resp.Assignments)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], employee.ErrEmployeeInactive.Error())
}

func TestCreateWeekly_DepartmentWithoutShifts(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateWeekly(context.Background(), schedule.CreateWeeklyScheduleRequest{
		Week:          testWeek,
		DepartmentRef: "dept-2",
		Assignments: []schedule.AssignmentInput{
			{EmployeeRef: "emp-2", ShiftRef: "shift-2", Dates: []string{"2025-06-16"}},
		},
	}, admin)

	assert.ErrorIs(t, err, schedule.ErrNoShiftsInDepartment)
}

func TestCreateWeekly_RejectsMalformedWeek(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateWeekly(context.Background(), schedule.CreateWeeklyScheduleRequest{
		Week:          "2025-25",
		DepartmentRef: "dept-1",
		Assignments: []schedule.AssignmentInput{
			{EmployeeRef: "emp-1", ShiftRef: "shift-1", Dates: []string{"2025-06-16"}},
		},
	}, admin)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "week", verrs[0].Field)
}

func TestGetEmployeeSchedule_FiltersByWeek(t *testing.T) {
	f := newFixture(t)
	f.createWeekly(t, schedule.AssignmentInput{
		EmployeeRef: "emp-1",
		ShiftRef:    "shift-1",
		Dates:       []string{"2025-06-16", "2025-06-18"},
	})

	week := testWeek
	got, err := f.svc.GetEmployeeSchedule(context.Background(), "emp-1", &week)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	other := "2025-W26"
	got, err = f.svc.GetEmployeeSchedule(context.Background(), "emp-1", &other)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteAssignment(t *testing.T) {
	f := newFixture(t)
	resp := f.createWeekly(t, schedule.AssignmentInput{
		EmployeeRef: "emp-1",
		ShiftRef:    "shift-1",
		Dates:       []string{"2025-06-16"},
	})

	require.NoError(t, f.svc.DeleteAssignment(context.Background(), resp.Assignments[0].ID, admin))

	err := f.svc.DeleteAssignment(context.Background(), resp.Assignments[0].ID, admin)
	assert.ErrorIs(t, err, schedule.ErrAssignmentNotFound)
}
