package department

import (
	"context"

	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
)

type DepartmentService interface {
	Create(ctx context.Context, req CreateDepartmentRequest, actor employee.Actor) (DepartmentResponse, error)
	Get(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest, actor employee.Actor) (DepartmentResponse, error)
	Deactivate(ctx context.Context, id string, actor employee.Actor) error
	List(ctx context.Context, activeOnly bool) ([]DepartmentResponse, error)
}
