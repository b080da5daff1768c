package schedule

import "context"

type ScheduleRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByEmployeeAndDate(ctx context.Context, employeeRef string, date string) (*Assignment, error)
	ListByWeek(ctx context.Context, week string, departmentRef *string) ([]Assignment, error)
	ListByEmployee(ctx context.Context, employeeRef string, week *string) ([]Assignment, error)
	Delete(ctx context.Context, id string) error
}
