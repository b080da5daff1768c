package schedule

import (
	"context"

	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
)

type ScheduleService interface {
	CreateWeekly(ctx context.Context, req CreateWeeklyScheduleRequest, actor employee.Actor) (WeeklyScheduleResponse, error)
	GetWeek(ctx context.Context, week string, departmentRef *string) (WeeklyScheduleResponse, error)
	GetEmployeeSchedule(ctx context.Context, employeeRef string, week *string) ([]AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, id string, actor employee.Actor) error
}
