package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	Update(ctx context.Context, s Shift) error
	ListByDepartment(ctx context.Context, departmentRef string, activeOnly bool) ([]Shift, error)
	DepartmentHasShifts(ctx context.Context, departmentRef string) (bool, error)
}
