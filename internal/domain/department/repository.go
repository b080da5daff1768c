package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	Update(ctx context.Context, dept Department) error
	List(ctx context.Context, activeOnly bool) ([]Department, error)
	NameExists(ctx context.Context, name string) (bool, error)
}
