package shift

import (
	"context"

	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
)

type ShiftService interface {
	Create(ctx context.Context, req CreateShiftRequest, actor employee.Actor) (ShiftResponse, error)
	Get(ctx context.Context, id string) (ShiftResponse, error)
	Update(ctx context.Context, id string, req UpdateShiftRequest, actor employee.Actor) (ShiftResponse, error)
	ListByDepartment(ctx context.Context, departmentRef string, activeOnly bool) ([]ShiftResponse, error)
}
