package attendance

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/audit"
	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/history"
	"github.com/workforcehq/workforce-backend-go/internal/domain/shift"
)

// --- in-memory fakes ---

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	byKey   map[string]string
	seq     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records: make(map[string]attendance.Attendance),
		byKey:   make(map[string]string),
	}
}

func attKey(employeeRef, date string) string { return employeeRef + "|" + date }

func (r *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := attKey(att.EmployeeRef, att.Date)
	if _, exists := r.byKey[key]; exists {
		// mirrors the unique (employee_ref, date) index
		return attendance.Attendance{}, attendance.ErrEntryAlreadyMarked
	}
	r.seq++
	att.ID = fmt.Sprintf("att-%d", r.seq)
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	r.records[att.ID] = att
	r.byKey[key] = att.ID
	return att, nil
}

func (r *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	att, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeRef, date string) (*attendance.Attendance, error) {
	id, ok := r.byKey[attKey(employeeRef, date)]
	if !ok {
		return nil, nil
	}
	att := r.records[id]
	return &att, nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	if _, ok := r.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	att.UpdatedAt = time.Now()
	r.records[att.ID] = att
	return nil
}

func (r *fakeAttendanceRepo) List(_ context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range r.records {
		if filter.EmployeeRef != nil && att.EmployeeRef != *filter.EmployeeRef {
			continue
		}
		if filter.Status != nil && string(att.Status) != *filter.Status {
			continue
		}
		out = append(out, att)
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListRange(_ context.Context, employeeRef, startDate, endDate string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range r.records {
		if att.EmployeeRef == employeeRef && att.Date >= startDate && att.Date <= endDate {
			out = append(out, att)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) MonthlySummary(_ context.Context, employeeRef string, year, month int) (attendance.MonthlySummary, error) {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	var sum attendance.MonthlySummary
	for _, att := range r.records {
		if att.EmployeeRef != employeeRef || !strings.HasPrefix(att.Date, prefix) {
			continue
		}
		sum.TotalRecords++
		switch att.Status {
		case attendance.StatusPresent:
			sum.DaysPresent++
			if att.OvertimeHours != nil {
				sum.OvertimeHours += *att.OvertimeHours
			}
		case attendance.StatusAbsent:
			sum.DaysAbsent++
		case attendance.StatusPending:
			sum.DaysPending++
		}
	}
	return sum, nil
}

func (r *fakeAttendanceRepo) DisplayIDExists(_ context.Context, _ string) (bool, error) {
	return false, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	r.employees[emp.ID] = emp
	return nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) ListActiveByDepartment(_ context.Context, departmentRef string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range r.employees {
		if emp.DepartmentRef == departmentRef && emp.IsActive {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) EmailExists(_ context.Context, _ string) (bool, error) { return false, nil }

func (r *fakeEmployeeRepo) CountActiveByDepartment(_ context.Context, _ string) (int, error) {
	return 0, nil
}

type fakeDepartmentRepo struct {
	departments map[string]department.Department
}

func (r *fakeDepartmentRepo) Create(_ context.Context, dept department.Department) (department.Department, error) {
	r.departments[dept.ID] = dept
	return dept, nil
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id string) (department.Department, error) {
	dept, ok := r.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return dept, nil
}

func (r *fakeDepartmentRepo) Update(_ context.Context, dept department.Department) error {
	r.departments[dept.ID] = dept
	return nil
}

func (r *fakeDepartmentRepo) List(_ context.Context, _ bool) ([]department.Department, error) {
	return nil, nil
}

func (r *fakeDepartmentRepo) NameExists(_ context.Context, _ string) (bool, error) {
	return false, nil
}

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
}

func (r *fakeShiftRepo) Create(_ context.Context, s shift.Shift) (shift.Shift, error) {
	r.shifts[s.ID] = s
	return s, nil
}

func (r *fakeShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (r *fakeShiftRepo) Update(_ context.Context, s shift.Shift) error {
	r.shifts[s.ID] = s
	return nil
}

func (r *fakeShiftRepo) ListByDepartment(_ context.Context, _ string, _ bool) ([]shift.Shift, error) {
	return nil, nil
}

func (r *fakeShiftRepo) DepartmentHasShifts(_ context.Context, _ string) (bool, error) {
	return true, nil
}

type stubIDs struct{ n int }

func (s *stubIDs) Next(_ context.Context) (string, error) {
	s.n++
	return fmt.Sprintf("ATT_%06d", s.n), nil
}

type captureAudit struct{ entries []audit.Entry }

func (c *captureAudit) Log(_ context.Context, e audit.Entry) { c.entries = append(c.entries, e) }

type captureHistory struct{ entries []history.Entry }

func (c *captureHistory) Record(_ context.Context, e history.Entry) {
	c.entries = append(c.entries, e)
}

// --- fixture ---

type fixture struct {
	svc     *AttendanceServiceImpl
	att     *fakeAttendanceRepo
	emps    *fakeEmployeeRepo
	depts   *fakeDepartmentRepo
	shifts  *fakeShiftRepo
	auditor *captureAudit
	hist    *captureHistory
}

// frozen clock: Sunday 2025-06-15 18:00 UTC
var testNow = time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

var (
	superAdmin = employee.Actor{ID: "actor-super", Name: "Root Admin", Role: employee.RoleSuperAdmin}
	plainAdmin = employee.Actor{ID: "actor-admin", Name: "Desk Admin", Role: employee.RoleAdmin}
)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		att:     newFakeAttendanceRepo(),
		emps:    &fakeEmployeeRepo{employees: make(map[string]employee.Employee)},
		depts:   &fakeDepartmentRepo{departments: make(map[string]department.Department)},
		shifts:  &fakeShiftRepo{shifts: make(map[string]shift.Shift)},
		auditor: &captureAudit{},
		hist:    &captureHistory{},
	}

	f.depts.departments["dept-1"] = department.Department{
		ID: "dept-1", DepartmentID: "DEPT20250601001", Name: "Engineering", IsActive: true,
	}
	f.emps.employees["emp-1"] = employee.Employee{
		ID: "emp-1", EmployeeID: "EMP_00001",
		FirstName: "Ayu", LastName: "Lestari",
		DepartmentRef: "dept-1", DepartmentName: "Engineering",
		MonthlySalary: decimal.NewFromInt(6000000),
		IsActive:      true,
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAttendanceService(f.att, f.emps, f.depts, f.shifts, &stubIDs{}, f.auditor, f.hist, log).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return testNow }
	f.svc = svc
	return f
}

func (f *fixture) bindShift(s shift.Shift) {
	f.shifts.shifts[s.ID] = s
	emp := f.emps.employees["emp-1"]
	emp.ShiftRef = &s.ID
	emp.ShiftName = &s.Name
	f.emps.employees["emp-1"] = emp
}

func (f *fixture) markEntry(t *testing.T, entry string) attendance.AttendanceResponse {
	t.Helper()
	resp, err := f.svc.MarkEntry(context.Background(), attendance.MarkEntryRequest{
		EmployeeRef: "emp-1",
		EntryTime:   entry,
	}, plainAdmin)
	require.NoError(t, err)
	return resp
}

func strPtr(s string) *string { return &s }

// --- mark entry ---

func TestMarkEntry_CreatesPendingRecord(t *testing.T) {
	f := newFixture(t)

	resp := f.markEntry(t, "2025-06-15T09:00:00Z")

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2025-06-15", resp.Date)
	assert.Equal(t, "EMP_00001", resp.EmployeeDisplayID)
	assert.Equal(t, "Ayu Lestari", resp.EmployeeName)
	assert.Equal(t, "Engineering", resp.DepartmentName)
	assert.Equal(t, "ATT_000001", resp.AttendanceID)
	assert.NotNil(t, resp.EntryTime)
	assert.Nil(t, resp.ExitTime)
	assert.Nil(t, resp.WorkDurationMinutes)
	assert.False(t, resp.IsCorrected)
	require.Len(t, f.auditor.entries, 1)
	assert.Equal(t, audit.ActionAttendanceEntry, f.auditor.entries[0].Action)
}

func TestMarkEntry_RejectsFutureDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.MarkEntry(context.Background(), attendance.MarkEntryRequest{
		EmployeeRef: "emp-1",
		EntryTime:   "2025-06-16T09:00:00Z",
	}, plainAdmin)

	assert.ErrorIs(t, err, attendance.ErrFutureDate)
}

func TestMarkEntry_RejectsDuplicate(t *testing.T) {
	f := newFixture(t)
	f.markEntry(t, "2025-06-15T09:00:00Z")

	_, err := f.svc.MarkEntry(context.Background(), attendance.MarkEntryRequest{
		EmployeeRef: "emp-1",
		EntryTime:   "2025-06-15T10:00:00Z",
	}, plainAdmin)

	assert.ErrorIs(t, err, attendance.ErrEntryAlreadyMarked)
}

func TestMarkEntry_RejectsInactiveEmployee(t *testing.T) {
	f := newFixture(t)
	emp := f.emps.employees["emp-1"]
	emp.IsActive = false
	f.emps.employees["emp-1"] = emp

	_, err := f.svc.MarkEntry(context.Background(), attendance.MarkEntryRequest{
		EmployeeRef: "emp-1",
		EntryTime:   "2025-06-15T09:00:00Z",
	}, plainAdmin)

	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestMarkEntry_RejectsInactiveDepartment(t *testing.T) {
	f := newFixture(t)
	dept := f.depts.departments["dept-1"]
	dept.IsActive = false
	f.depts.departments["dept-1"] = dept

	_, err := f.svc.MarkEntry(context.Background(), attendance.MarkEntryRequest{
		EmployeeRef: "emp-1",
		EntryTime:   "2025-06-15T09:00:00Z",
	}, plainAdmin)

	assert.ErrorIs(t, err, department.ErrDepartmentInactive)
}

func TestMarkEntry_Cutoff(t *testing.T) {
	// now is 2025-06-15 18:00; an entry dated 2025-06-14 is 42h past the
	// start of its day, so past the cutoff. 2025-06-15 entries are within.
	t.Run("within 24h needs no privilege", func(t *testing.T) {
		f := newFixture(t)
		resp := f.markEntry(t, "2025-06-15T08:00:00Z")
		assert.False(t, resp.IsCorrected)
	})

	t.Run("past cutoff rejected for admin", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.MarkEntry(context.Background(), attendance.MarkEntryRequest{
			EmployeeRef: "emp-1",
			EntryTime:   "2025-06-14T09:00:00Z",
		}, plainAdmin)
		assert.ErrorIs(t, err, attendance.ErrBackdatedEntry)
	})

	t.Run("past cutoff rejected for super admin without reason", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.MarkEntry(context.Background(), attendance.MarkEntryRequest{
			EmployeeRef: "emp-1",
			EntryTime:   "2025-06-14T09:00:00Z",
		}, superAdmin)
		assert.ErrorIs(t, err, attendance.ErrBackdateNeedsReason)
	})

	t.Run("super admin with reason creates corrected record", func(t *testing.T) {
		f := newFixture(t)
		resp, err := f.svc.MarkEntry(context.Background(), attendance.MarkEntryRequest{
			EmployeeRef:      "emp-1",
			EntryTime:        "2025-06-14T09:00:00Z",
			CorrectionReason: strPtr("forgot to mark while onsite"),
		}, superAdmin)
		require.NoError(t, err)
		assert.True(t, resp.IsCorrected)
		require.NotNil(t, resp.CorrectedBy)
		assert.Equal(t, superAdmin.ID, *resp.CorrectedBy)
	})

	t.Run("yesterday within 24h of its start needs no privilege", func(t *testing.T) {
		f := newFixture(t)
		svc := f.svc
		// 22h past the start of 2025-06-14
		svc.now = func() time.Time { return time.Date(2025, 6, 14, 22, 0, 0, 0, time.UTC) }
		resp, err := svc.MarkEntry(context.Background(), attendance.MarkEntryRequest{
			EmployeeRef: "emp-1",
			EntryTime:   "2025-06-14T09:00:00Z",
		}, plainAdmin)
		require.NoError(t, err)
		assert.False(t, resp.IsCorrected)
	})
}

// --- mark exit ---

func TestMarkExit_EightHourDay(t *testing.T) {
	f := newFixture(t)
	f.markEntry(t, "2025-06-15T09:00:00Z")

	resp, err := f.svc.MarkExit(context.Background(), attendance.MarkExitRequest{
		EmployeeRef: "emp-1",
		ExitTime:    "2025-06-15T17:00:00Z",
	}, plainAdmin)
	require.NoError(t, err)

	assert.Equal(t, "present", resp.Status)
	require.NotNil(t, resp.WorkDurationMinutes)
	assert.Equal(t, 480, *resp.WorkDurationMinutes)
	assert.Equal(t, 8.0, *resp.RegularHours)
	assert.Equal(t, 0.0, *resp.OvertimeHours)
	assert.Equal(t, 8.0, *resp.TotalHours)
	assert.Nil(t, resp.OvertimeApprovedBy)
}

func TestMarkExit_TenHoursSplitsOvertime(t *testing.T) {
	f := newFixture(t)
	f.markEntry(t, "2025-06-15T08:00:00Z")

	resp, err := f.svc.MarkExit(context.Background(), attendance.MarkExitRequest{
		EmployeeRef:    "emp-1",
		ExitTime:       "2025-06-15T18:00:00Z",
		OvertimeReason: strPtr("release night"),
	}, plainAdmin)
	require.NoError(t, err)

	assert.Equal(t, 600, *resp.WorkDurationMinutes)
	assert.Equal(t, 8.0, *resp.RegularHours)
	assert.Equal(t, 2.0, *resp.OvertimeHours)
	assert.Equal(t, 10.0, *resp.TotalHours)
	require.NotNil(t, resp.OvertimeApprovedBy)
	assert.Equal(t, plainAdmin.ID, *resp.OvertimeApprovedBy)
	require.NotNil(t, resp.OvertimeReason)
	assert.Equal(t, "release night", *resp.OvertimeReason)
}

func TestMarkExit_HalfHourOvertimeScenario(t *testing.T) {
	// 08:00 to 16:30 is 510 minutes: 8 regular hours plus 0.5 overtime.
	f := newFixture(t)
	f.markEntry(t, "2025-06-15T08:00:00Z")

	resp, err := f.svc.MarkExit(context.Background(), attendance.MarkExitRequest{
		EmployeeRef: "emp-1",
		ExitTime:    "2025-06-15T16:30:00Z",
	}, plainAdmin)
	require.NoError(t, err)

	assert.Equal(t, 510, *resp.WorkDurationMinutes)
	assert.Equal(t, 8.0, *resp.RegularHours)
	assert.Equal(t, 0.5, *resp.OvertimeHours)
	assert.Equal(t, 8.5, *resp.TotalHours)
}

func TestMarkExit_UsesShiftStandardHours(t *testing.T) {
	f := newFixture(t)
	f.bindShift(shift.Shift{
		ID: "shift-1", Name: "Short Day",
		StartTime: "09:00", EndTime: "15:00",
		StandardHours: 6, IsActive: true,
	})
	f.markEntry(t, "2025-06-15T09:00:00Z")

	resp, err := f.svc.MarkExit(context.Background(), attendance.MarkExitRequest{
		EmployeeRef: "emp-1",
		ExitTime:    "2025-06-15T17:00:00Z",
	}, plainAdmin)
	require.NoError(t, err)

	assert.Equal(t, 6.0, *resp.RegularHours)
	assert.Equal(t, 2.0, *resp.OvertimeHours)
}

func TestMarkExit_RejectsWithoutEntry(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.MarkExit(context.Background(), attendance.MarkExitRequest{
		EmployeeRef: "emp-1",
		ExitTime:    "2025-06-15T17:00:00Z",
	}, plainAdmin)

	assert.ErrorIs(t, err, attendance.ErrNoEntryMarked)
}

func TestMarkExit_RejectsDuplicateExit(t *testing.T) {
	f := newFixture(t)
	f.markEntry(t, "2025-06-15T09:00:00Z")

	_, err := f.svc.MarkExit(context.Background(), attendance.MarkExitRequest{
		EmployeeRef: "emp-1", ExitTime: "2025-06-15T17:00:00Z",
	}, plainAdmin)
	require.NoError(t, err)

	_, err = f.svc.MarkExit(context.Background(), attendance.MarkExitRequest{
		EmployeeRef: "emp-1", ExitTime: "2025-06-15T17:30:00Z",
	}, plainAdmin)
	assert.ErrorIs(t, err, attendance.ErrExitAlreadyMarked)
}

func TestMarkExit_RejectsExitBeforeEntry(t *testing.T) {
	f := newFixture(t)
	f.markEntry(t, "2025-06-15T09:00:00Z")

	_, err := f.svc.MarkExit(context.Background(), attendance.MarkExitRequest{
		EmployeeRef: "emp-1", ExitTime: "2025-06-15T08:00:00Z",
	}, plainAdmin)

	assert.ErrorIs(t, err, attendance.ErrExitBeforeEntry)
}

func TestMarkExit_RejectsTooShortDuration(t *testing.T) {
	f := newFixture(t)
	f.markEntry(t, "2025-06-15T09:00:00Z")

	_, err := f.svc.MarkExit(context.Background(), attendance.MarkExitRequest{
		EmployeeRef: "emp-1", ExitTime: "2025-06-15T09:15:00Z",
	}, plainAdmin)

	assert.ErrorIs(t, err, attendance.ErrDurationTooShort)
}

func TestMarkExit_OvernightPolicy(t *testing.T) {
	entryClock := func() time.Time { return time.Date(2025, 6, 14, 23, 0, 0, 0, time.UTC) }
	exitClock := func() time.Time { return time.Date(2025, 6, 15, 6, 30, 0, 0, time.UTC) }

	t.Run("next day exit rejected without overnight shift", func(t *testing.T) {
		f := newFixture(t)
		f.svc.now = entryClock
		f.markEntry(t, "2025-06-14T22:00:00Z")
		f.svc.now = exitClock

		_, err := f.svc.MarkExit(context.Background(), attendance.MarkExitRequest{
			EmployeeRef: "emp-1", ExitTime: "2025-06-15T06:00:00Z",
		}, plainAdmin)

		assert.ErrorIs(t, err, attendance.ErrExitCrossMidnight)
	})

	t.Run("overnight shift allows next day exit", func(t *testing.T) {
		f := newFixture(t)
		f.bindShift(shift.Shift{
			ID: "shift-night", Name: "Night",
			StartTime: "22:00", EndTime: "06:00",
			StandardHours: 8, IsOvernight: true, IsActive: true,
		})
		f.svc.now = entryClock
		f.markEntry(t, "2025-06-14T22:00:00Z")
		f.svc.now = exitClock

		resp, err := f.svc.MarkExit(context.Background(), attendance.MarkExitRequest{
			EmployeeRef: "emp-1", ExitTime: "2025-06-15T06:00:00Z",
		}, plainAdmin)
		require.NoError(t, err)

		assert.Equal(t, "2025-06-14", resp.Date)
		assert.Equal(t, 480, *resp.WorkDurationMinutes)
		assert.Equal(t, "present", resp.Status)
	})
}

// --- correction ---

func (f *fixture) presentRecord(t *testing.T, date string) string {
	t.Helper()
	entry := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	exit := entry.Add(8 * time.Hour)
	parsed, err := time.Parse(dateLayout, date)
	require.NoError(t, err)
	entry = entry.AddDate(0, 0, parsed.Day()-10)
	exit = exit.AddDate(0, 0, parsed.Day()-10)
	dur := 480
	reg, ot, total := 8.0, 0.0, 8.0
	created, err := f.att.Create(context.Background(), attendance.Attendance{
		AttendanceID: "ATT_SEEDED",
		EmployeeRef:  "emp-1", EmployeeDisplayID: "EMP_00001", EmployeeName: "Ayu Lestari",
		DepartmentRef: "dept-1", DepartmentName: "Engineering",
		Date:      date,
		EntryTime: &entry, ExitTime: &exit,
		WorkDurationMinutes: &dur,
		RegularHours:        &reg, OvertimeHours: &ot, TotalHours: &total,
		Status:   attendance.StatusPresent,
		MarkedBy: "actor-admin",
	})
	require.NoError(t, err)
	return created.ID
}

func TestCorrect_RejectsTodaysRecord(t *testing.T) {
	f := newFixture(t)
	id := f.presentRecord(t, "2025-06-15")

	_, err := f.svc.Correct(context.Background(), id, attendance.CorrectionRequest{
		Reason: "typo in the exit time",
	}, superAdmin)

	assert.ErrorIs(t, err, attendance.ErrCorrectionOfToday)
}

func TestCorrect_SevenDayWindow(t *testing.T) {
	t.Run("seven days old is correctable", func(t *testing.T) {
		f := newFixture(t)
		id := f.presentRecord(t, "2025-06-08")

		status := "absent"
		resp, err := f.svc.Correct(context.Background(), id, attendance.CorrectionRequest{
			Reason: "was on unreported leave",
			Status: &status,
		}, superAdmin)
		require.NoError(t, err)
		assert.Equal(t, "absent", resp.Status)
		assert.True(t, resp.IsCorrected)
	})

	t.Run("eight days old is immutable", func(t *testing.T) {
		f := newFixture(t)
		id := f.presentRecord(t, "2025-06-07")

		_, err := f.svc.Correct(context.Background(), id, attendance.CorrectionRequest{
			Reason: "was on unreported leave",
		}, superAdmin)
		assert.ErrorIs(t, err, attendance.ErrCorrectionTooOld)
	})
}

func TestCorrect_ReasonLength(t *testing.T) {
	f := newFixture(t)
	id := f.presentRecord(t, "2025-06-12")

	// nine characters after trimming fails, ten passes
	_, err := f.svc.Correct(context.Background(), id, attendance.CorrectionRequest{
		Reason: "  too short  ",
	}, superAdmin)
	assert.Error(t, err)

	_, err = f.svc.Correct(context.Background(), id, attendance.CorrectionRequest{
		Reason: "a valid ten",
	}, superAdmin)
	assert.NoError(t, err)
}

func TestCorrect_TimesChangedForcePresent(t *testing.T) {
	f := newFixture(t)
	id := f.presentRecord(t, "2025-06-12")

	// shrink to a half day: 09:00 to 13:00
	resp, err := f.svc.Correct(context.Background(), id, attendance.CorrectionRequest{
		Reason:   "clock drift on the terminal",
		ExitTime: strPtr("2025-06-12T13:00:00Z"),
	}, superAdmin)
	require.NoError(t, err)

	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, 240, *resp.WorkDurationMinutes)
	assert.Equal(t, 4.0, *resp.RegularHours)
	assert.Equal(t, 0.0, *resp.OvertimeHours)
	assert.True(t, resp.IsCorrected)
	require.NotNil(t, resp.CorrectedBy)
	assert.Equal(t, superAdmin.ID, *resp.CorrectedBy)
}

func TestCorrect_ExplicitStatusWins(t *testing.T) {
	f := newFixture(t)
	id := f.presentRecord(t, "2025-06-12")

	status := "half_day"
	resp, err := f.svc.Correct(context.Background(), id, attendance.CorrectionRequest{
		Reason:   "left early, only half the day worked",
		ExitTime: strPtr("2025-06-12T13:00:00Z"),
		Status:   &status,
	}, superAdmin)
	require.NoError(t, err)

	assert.Equal(t, "half_day", resp.Status)
	assert.Equal(t, 240, *resp.WorkDurationMinutes)
}

func TestCorrect_DurationBounds(t *testing.T) {
	t.Run("under half an hour", func(t *testing.T) {
		f := newFixture(t)
		id := f.presentRecord(t, "2025-06-12")

		_, err := f.svc.Correct(context.Background(), id, attendance.CorrectionRequest{
			Reason:    "testing bad correction input",
			EntryTime: strPtr("2025-06-12T09:00:00Z"),
			ExitTime:  strPtr("2025-06-12T09:10:00Z"),
		}, superAdmin)
		assert.ErrorIs(t, err, attendance.ErrDurationTooShort)
	})

	t.Run("over a full day", func(t *testing.T) {
		f := newFixture(t)
		id := f.presentRecord(t, "2025-06-12")

		// 25 hours between entry and exit
		_, err := f.svc.Correct(context.Background(), id, attendance.CorrectionRequest{
			Reason:    "testing bad correction input",
			EntryTime: strPtr("2025-06-12T09:00:00Z"),
			ExitTime:  strPtr("2025-06-13T10:00:00Z"),
		}, superAdmin)
		assert.ErrorIs(t, err, attendance.ErrDurationTooLong)
	})
}

func TestCorrect_WritesHistorySnapshot(t *testing.T) {
	f := newFixture(t)
	id := f.presentRecord(t, "2025-06-12")

	_, err := f.svc.Correct(context.Background(), id, attendance.CorrectionRequest{
		Reason:   "clock drift on the terminal",
		ExitTime: strPtr("2025-06-12T13:00:00Z"),
	}, superAdmin)
	require.NoError(t, err)

	require.Len(t, f.hist.entries, 1)
	entry := f.hist.entries[0]
	assert.Equal(t, "attendance", entry.EntityType)
	assert.Equal(t, id, entry.EntityRef)
	assert.Equal(t, superAdmin.ID, entry.ChangedBy)
	assert.Equal(t, 480, entry.Before["work_duration_minutes"])
	assert.Equal(t, 240, entry.After["work_duration_minutes"])
}

func TestCorrect_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Correct(context.Background(), "missing", attendance.CorrectionRequest{
		Reason: "does not matter here",
	}, superAdmin)

	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

// --- summary and listings ---

func TestMonthlySummary(t *testing.T) {
	f := newFixture(t)

	seed := func(date string, status attendance.Status, overtime float64) {
		att := attendance.Attendance{
			EmployeeRef: "emp-1", Date: date, Status: status, MarkedBy: "actor-admin",
		}
		if status == attendance.StatusPresent {
			att.OvertimeHours = &overtime
		}
		_, err := f.att.Create(context.Background(), att)
		require.NoError(t, err)
	}

	seed("2025-06-02", attendance.StatusPresent, 1.5)
	seed("2025-06-03", attendance.StatusPresent, 0)
	seed("2025-06-04", attendance.StatusAbsent, 0)
	seed("2025-06-05", attendance.StatusPending, 0)
	seed("2025-05-30", attendance.StatusPresent, 3) // outside the month

	summary, err := f.svc.MonthlySummary(context.Background(), "emp-1", 2025, 6)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalRecords)
	assert.Equal(t, 2, summary.DaysPresent)
	assert.Equal(t, 1, summary.DaysAbsent)
	assert.Equal(t, 1, summary.DaysPending)
	assert.Equal(t, 1.5, summary.OvertimeHours)
}

func TestMonthlySummary_InvalidPeriod(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.MonthlySummary(context.Background(), "emp-1", 2025, 13)
	assert.Error(t, err)
}

func TestPastWeek(t *testing.T) {
	f := newFixture(t)

	// with the clock on 2025-06-15 the window is 06-08 through 06-14
	for _, date := range []string{"2025-06-07", "2025-06-08", "2025-06-12", "2025-06-14", "2025-06-15"} {
		_, err := f.att.Create(context.Background(), attendance.Attendance{
			EmployeeRef: "emp-1", Date: date, Status: attendance.StatusPresent, MarkedBy: "actor-admin",
		})
		require.NoError(t, err)
	}

	records, err := f.svc.PastWeek(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, records, 3)

	dates := make([]string, 0, len(records))
	for _, r := range records {
		dates = append(dates, r.Date)
	}
	assert.NotContains(t, dates, "2025-06-15") // today is not yet correctable
	assert.NotContains(t, dates, "2025-06-07") // past the correction window
	assert.Contains(t, dates, "2025-06-08")    // oldest still-correctable day
	assert.Contains(t, dates, "2025-06-14")
}

func TestPastWeek_ListsOldestCorrectableDay(t *testing.T) {
	f := newFixture(t)
	id := f.presentRecord(t, "2025-06-08")

	records, err := f.svc.PastWeek(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2025-06-08", records[0].Date)

	// the same record is still inside Correct's seven-day window
	status := "absent"
	_, err = f.svc.Correct(context.Background(), id, attendance.CorrectionRequest{
		Reason: "was on unreported leave",
		Status: &status,
	}, superAdmin)
	assert.NoError(t, err)
}

// --- worktime ---

func TestSplitHours(t *testing.T) {
	tests := []struct {
		name            string
		minutes         int
		standard        float64
		regular, ot, tt float64
	}{
		{"exact standard day", 480, 8, 8, 0, 8},
		{"two hours over", 600, 8, 8, 2, 10},
		{"half hour over", 510, 8, 8, 0.5, 8.5},
		{"under standard", 240, 8, 4, 0, 4},
		{"minimum duration", 30, 8, 0.5, 0, 0.5},
		{"six hour standard", 480, 6, 6, 2, 8},
		{"full day cap", 1440, 8, 8, 16, 24},
		{"uneven minutes round", 500, 8, 8, 0.33, 8.33},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			regular, overtime, total := splitHours(tc.minutes, tc.standard)
			assert.Equal(t, tc.regular, regular)
			assert.Equal(t, tc.ot, overtime)
			assert.Equal(t, tc.tt, total)
		})
	}
}
