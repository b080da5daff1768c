package audit

import "time"

// Actions recorded by the audit sink.
const (
	ActionLogin               = "auth.login"
	ActionLogout              = "auth.logout"
	ActionTokenRefresh        = "auth.token_refresh"
	ActionAttendanceEntry     = "attendance.mark_entry"
	ActionAttendanceExit      = "attendance.mark_exit"
	ActionAttendanceCorrect   = "attendance.correct"
	ActionEmployeeCreate      = "employee.create"
	ActionEmployeeUpdate      = "employee.update"
	ActionEmployeeDeactivate  = "employee.deactivate"
	ActionEmployeeTransfer    = "employee.transfer"
	ActionDepartmentCreate    = "department.create"
	ActionDepartmentUpdate    = "department.update"
	ActionShiftCreate         = "shift.create"
	ActionShiftUpdate         = "shift.update"
	ActionScheduleCreate      = "schedule.create"
	ActionScheduleDelete      = "schedule.delete"
)

// Entry is one audit event. Writes are best effort and must never fail
// the operation being audited.
type Entry struct {
	ID         string
	Action     string
	ActorRef   string
	ActorName  string
	ActorRole  string
	EntityType string
	EntityRef  string
	Detail     map[string]any
	CreatedAt  time.Time
}
